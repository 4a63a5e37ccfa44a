package controllers

import (
	"github.com/Govind-619/SkillSphere/config"
	"github.com/Govind-619/SkillSphere/services"
	"github.com/Govind-619/SkillSphere/utils"
	"github.com/gin-gonic/gin"
)

// RegisterRequest represents the registration request body
type RegisterRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterUser handles student sign-up
func RegisterUser(c *gin.Context) {
	utils.LogInfo("RegisterUser called")

	var req RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	_, err := services.RegisterUser(c.Request.Context(), config.DB, services.RegisterInput{
		Username: req.Username,
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.LogError("Registration failed for %s: %v", req.Email, err)
		utils.RespondError(c, err)
		return
	}

	utils.Success(c, utils.MsgRegisterSuccess, nil)
}

// LoginUser handles user login
func LoginUser(c *gin.Context) {
	utils.LogInfo("LoginUser called")

	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := services.Login(c.Request.Context(), config.DB, req.Email, req.Password)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Success(c, utils.MsgLoginSuccess, result)
}

// LogoutUser acknowledges a logout. Tokens are stateless, so the client discards its own.
func LogoutUser(c *gin.Context) {
	utils.Success(c, utils.MsgLogoutSuccess, nil)
}
