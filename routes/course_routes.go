package routes

import (
	"github.com/Govind-619/SkillSphere/controllers"
	"github.com/Govind-619/SkillSphere/middleware"
	"github.com/Govind-619/SkillSphere/models"
	"github.com/gin-gonic/gin"
)

// initCourseRoutes initializes catalog and purchase routes
func initCourseRoutes(router *gin.RouterGroup) {
	courses := router.Group("/courses")
	{
		// Public catalog
		courses.GET("", controllers.ListCourses)
		courses.GET("/:id", controllers.GetCourseDetail)

		auth := courses.Group("", middleware.AuthMiddleware())
		{
			auth.POST("/:id/purchase", middleware.RequirePermission(models.PermPurchaseCourse), controllers.PurchaseCourse)

			// Course management
			auth.POST("", middleware.RequirePermission(models.PermManageCourses), controllers.CreateCourse)
			auth.PUT("/:id", middleware.RequirePermission(models.PermManageCourses), controllers.UpdateCourse)
		}
	}
}
