package middleware

import (
	"net/http"
	"strings"

	"lmsplatform/internal/infrastructure/security"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserID  = "userId"
	ContextIsAdmin = "isAdmin"
)

// Auth checks the Bearer token and stores the caller's identity in the
// gin context for downstream handlers.
func Auth(tokenManager *security.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			return
		}

		identity, err := tokenManager.Validate(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(ContextUserID, identity.UserID.String())
		c.Set(ContextIsAdmin, identity.IsAdmin)

		c.Next()
	}
}

// AdminOnly must run after Auth. Non-admin identities get 403.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool(ContextIsAdmin) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin privileges required"})
			return
		}
		c.Next()
	}
}
