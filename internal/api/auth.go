package api

import (
	"errors"   // Error matching
	"net/http" // HTTP status codes
	"time"     // Token expiration

	"product_catalog/internal/domain" // Domain models and errors
	"product_catalog/internal/store"  // Persistence interfaces
	"product_catalog/internal/utils"  // Utility functions

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"golang.org/x/crypto/bcrypt" // Password hashing
)

// LoginRequest is the credential payload
type LoginRequest struct {
	Username string `json:"username" binding:"required"` // Username must be provided
	Password string `json:"password" binding:"required"` // Password must be provided
}

// LoginResponse carries the issued access token
type LoginResponse struct {
	Token      string    `json:"token"`      // Signed JWT
	Username   string    `json:"username"`   // Authenticated username
	Role       string    `json:"role"`       // Role asserted in the token
	Expiration time.Time `json:"expiration"` // Token expiration time
}

// dummyHash is a structurally valid bcrypt hash that matches no password.
// Comparing against it keeps the unknown-username path as expensive as a
// real comparison, so the two failures cannot be told apart by timing.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// LoginHandler authenticates a user and returns a signed access token.
// Unknown usernames and wrong passwords produce the identical response.
func LoginHandler(users store.UserStore, jwtSecret string, tokenTTL time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Fetch user by exact username match
		user, err := users.GetByUsername(c.Request.Context(), req.Username)
		if err != nil {
			if !errors.Is(err, domain.ErrNotFound) {
				// Unexpected store failure, never surfaced to the client
				logrus.WithField("error", err.Error()).Error("Login lookup failed")
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
				return
			}
			// Burn a bcrypt comparison so this path costs the same as a mismatch
			_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(req.Password))
			logrus.WithField("username", req.Username).Warn("Login failed") // Audit log, username only
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		// Compare provided password with stored hash
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
			logrus.WithField("username", req.Username).Warn("Login failed") // Audit log, username only
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		expiration := time.Now().Add(tokenTTL) // Expires exactly one TTL after issuance
		// Generate the access token
		token, err := utils.GenerateJWT(user.ID, user.Username, user.Email, user.Role, jwtSecret, tokenTTL)
		if err != nil {
			// If token generation fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}
		logrus.WithField("username", user.Username).Info("Login succeeded") // Audit log, username only
		// Return the token in the response
		c.JSON(http.StatusOK, LoginResponse{
			Token:      token,         // Signed JWT
			Username:   user.Username, // Authenticated username
			Role:       user.Role,     // Role asserted in the token
			Expiration: expiration,    // Token expiration time
		})
	}
}
