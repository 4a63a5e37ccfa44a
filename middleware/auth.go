package middleware

import (
	"strings"

	"github.com/Govind-619/SkillSphere/config"
	"github.com/Govind-619/SkillSphere/models"
	"github.com/Govind-619/SkillSphere/utils"
	"github.com/gin-gonic/gin"
)

const userKey = "user"

// AuthMiddleware verifies the bearer token and loads the user it names
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.LogError("Missing Authorization header")
			utils.Unauthorized(c, utils.ErrInvalidToken)
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			utils.LogError("Invalid Bearer token format")
			utils.Unauthorized(c, utils.ErrInvalidToken)
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			utils.LogError("Invalid token: %v", err)
			utils.Unauthorized(c, utils.ErrInvalidToken)
			c.Abort()
			return
		}

		var user models.User
		if err := config.DB.WithContext(c.Request.Context()).First(&user, claims.UserID).Error; err != nil {
			utils.LogError("User %d from token not found: %v", claims.UserID, err)
			utils.Unauthorized(c, utils.ErrInvalidToken)
			c.Abort()
			return
		}

		c.Set(userKey, user)
		utils.LogDebug("User %d authenticated", user.ID)
		c.Next()
	}
}

// RequirePermission aborts with 403 unless the authenticated user's role grants perm.
// It must run after AuthMiddleware.
func RequirePermission(perm models.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			utils.LogError("User not found in context")
			utils.Unauthorized(c, utils.ErrInvalidToken)
			c.Abort()
			return
		}

		if !user.Role.Can(perm) {
			utils.LogError("User %d (%s) denied %s", user.ID, user.Role, perm)
			utils.Forbidden(c, utils.ErrForbidden)
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser returns the user stored by AuthMiddleware
func CurrentUser(c *gin.Context) (models.User, bool) {
	v, exists := c.Get(userKey)
	if !exists {
		return models.User{}, false
	}
	user, ok := v.(models.User)
	return user, ok
}
