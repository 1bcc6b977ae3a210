package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/SurajDXC/crime-report/models"
	"github.com/SurajDXC/crime-report/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Context keys set by JWTAuth for downstream handlers.
const (
	UserIDKey      = "user_id"
	CurrentUserKey = "currentUser"
)

func extractBearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")

	if authHeader == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing"})
		c.Abort()
		return "", false
	}

	authHeader = strings.Trim(authHeader, "\"' ")

	if !strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		authHeader = "Bearer " + authHeader
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization format, expected: Bearer <token>"})
		c.Abort()
		return "", false
	}

	return strings.Trim(parts[1], "\"' "), true
}

// JWTAuth verifies the bearer token and resolves it to a user record. A valid
// token held by a deleted user is rejected the same way as a bad token.
func JWTAuth(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := extractBearerToken(c)
		if !ok {
			return
		}

		claims, err := utils.DecodeJWT(tokenString)
		if err != nil {
			if errors.Is(err, utils.ErrTokenExpired) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Token expired"})
			} else {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			}
			c.Abort()
			return
		}

		userID := claims["user_id"].(string)

		var user models.User
		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading user: " + err.Error()})
			}
			c.Abort()
			return
		}

		c.Set(UserIDKey, user.ID)
		c.Set(CurrentUserKey, user)
		c.Next()
	}
}

// AdminAuth gates admin-only operations. It must run after JWTAuth and checks
// the admin flag on the stored user record, not the token claim.
func AdminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
			c.Abort()
			return
		}

		if !user.IsAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied: admin privileges required"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// CurrentUser returns the authenticated user stored by JWTAuth.
func CurrentUser(c *gin.Context) (models.User, bool) {
	value, exists := c.Get(CurrentUserKey)
	if !exists {
		return models.User{}, false
	}
	user, ok := value.(models.User)
	return user, ok
}
