package routes

import (
	"github.com/Govind-619/SkillSphere/controllers"
	"github.com/Govind-619/SkillSphere/middleware"
	"github.com/Govind-619/SkillSphere/models"
	"github.com/gin-gonic/gin"
)

// initCouponRoutes initializes coupon listing and management routes
func initCouponRoutes(router *gin.RouterGroup) {
	coupons := router.Group("/coupons")
	{
		coupons.GET("", controllers.ListCoupons)

		admin := coupons.Group("", middleware.AuthMiddleware(), middleware.RequirePermission(models.PermManageCoupons))
		{
			admin.POST("", controllers.CreateCoupon)
			admin.PUT("/:id", controllers.UpdateCoupon)
			admin.DELETE("/:id", controllers.DeleteCoupon)
		}
	}
}
