package controllers

import (
	"net/http"

	"github.com/Govind-619/SkillSphere/config"
	"github.com/Govind-619/SkillSphere/utils"
	"github.com/gin-gonic/gin"
)

// HealthCheck reports whether the service and its database are reachable
func HealthCheck(c *gin.Context) {
	sqlDB, err := config.DB.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		utils.LogError("Health check failed: %v", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
