package middleware

import (
	"net/http" // HTTP status codes
	"strings"  // String manipulation

	"product_catalog/internal/utils" // JWT utility functions

	"github.com/gin-gonic/gin" // Gin web framework
)

// Context keys set by JWTAuthMiddleware
const (
	CtxUserID   = "userID"   // Numeric user id from the subject claim
	CtxUsername = "username" // Username claim
	CtxRole     = "role"     // Role claim
)

// JWTAuthMiddleware validates bearer tokens and extracts identity claims
func JWTAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization") // Get Authorization header
		// Check if the Authorization header is present and properly formatted
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			// If not, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ") // Extract the token string and parse it
		claims, err := utils.ParseJWT(tokenStr, secret)       // Parse the JWT token
		if err != nil {
			// If parsing fails, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}
		c.Set(CtxUserID, claims.UserID())   // Store user id in context
		c.Set(CtxUsername, claims.Username) // Store username in context
		c.Set(CtxRole, claims.Role)         // Store role in context
		c.Next()                            // Proceed to the next handler
	}
}
