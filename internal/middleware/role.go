package middleware

import (
	"net/http" // HTTP status codes

	"github.com/gin-gonic/gin" // Gin web framework
)

// RequireRole gates a route on the role claim of the verified token.
// Tokens are self-contained, so the role is read from the context set by
// JWTAuthMiddleware rather than re-queried from the database. The guard runs
// before the handler, so callers without the role are rejected even when the
// target resource does not exist.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		got, exists := c.Get(CtxRole) // Get role from context
		// Check if the role claim was set by the auth middleware
		if !exists {
			// If not, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		// Check the role claim against the required policy
		if got != role {
			// If insufficient, abort with forbidden status
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": role + " access required"})
			return
		}
		// If allowed, proceed to the next handler
		c.Next()
	}
}
