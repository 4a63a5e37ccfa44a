package routes

import (
	"github.com/Govind-619/SkillSphere/controllers"
	"github.com/Govind-619/SkillSphere/utils"
	"github.com/gin-gonic/gin"
)

// SetupRouter initializes and returns the Gin router with all routes
func SetupRouter() *gin.Engine {
	router := gin.New()

	router.Use(utils.RequestIDMiddleware())
	router.Use(utils.LoggerMiddleware())
	router.Use(utils.MetricsMiddleware())
	router.Use(utils.RecoveryMiddleware())
	router.Use(utils.SecurityHeadersMiddleware())

	router.GET("/healthz", controllers.HealthCheck)
	router.GET("/metrics", utils.MetricsHandler())

	api := router.Group(utils.APIBasePath)
	{
		initUserRoutes(api)
		initCourseRoutes(api)
		initCouponRoutes(api)
		initTransactionRoutes(api)
	}

	return router
}
