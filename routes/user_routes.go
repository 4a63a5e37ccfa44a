package routes

import (
	"github.com/Govind-619/SkillSphere/controllers"
	"github.com/Govind-619/SkillSphere/middleware"
	"github.com/gin-gonic/gin"
)

// initUserRoutes initializes registration and session routes
func initUserRoutes(router *gin.RouterGroup) {
	users := router.Group("/users")
	{
		users.POST("/register", controllers.RegisterUser)
		users.POST("/login", controllers.LoginUser)
		users.POST("/logout", middleware.AuthMiddleware(), controllers.LogoutUser)
	}
}
