package routes

import (
	"github.com/Govind-619/SkillSphere/controllers"
	"github.com/Govind-619/SkillSphere/middleware"
	"github.com/Govind-619/SkillSphere/models"
	"github.com/gin-gonic/gin"
)

// initTransactionRoutes initializes purchase history routes
func initTransactionRoutes(router *gin.RouterGroup) {
	transactions := router.Group("/transactions", middleware.AuthMiddleware())
	{
		transactions.GET("", middleware.RequirePermission(models.PermViewOwnTransactions), controllers.ListTransactions)
		transactions.GET("/export", middleware.RequirePermission(models.PermExportTransactions), controllers.ExportTransactions)
		transactions.GET("/:id/receipt", middleware.RequirePermission(models.PermViewOwnTransactions), controllers.DownloadReceipt)
	}
}
