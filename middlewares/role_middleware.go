package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireRole gates a workspace on the stored role, re-read on every request
// by AuthMiddleware. Sessions without a role are pointed at the role
// selection flow; sessions with the other role at their own workspace.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required", "redirect": "/login"})
			return
		}
		if user.Role == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "role not assigned", "redirect": "/choose-role"})
			return
		}
		if user.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "wrong workspace", "redirect": "/" + user.Role})
			return
		}
		c.Next()
	}
}
