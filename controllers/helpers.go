package controllers

import (
	"strconv"

	"github.com/Govind-619/SkillSphere/utils"
	"github.com/gin-gonic/gin"
)

// parseID reads a positive numeric path parameter
func parseID(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, utils.ValidationErr(utils.ErrInvalidID, err)
	}
	return uint(id), nil
}

// bindJSON binds the request body, answering 422 on malformed input
func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		utils.LogError("Invalid request format on %s: %v", c.FullPath(), err)
		utils.ValidationError(c, "Validation error: invalid request body.", err.Error())
		return false
	}
	return true
}
