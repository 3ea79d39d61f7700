package api

import (
	"context"  // Context for Redis operations
	"errors"   // Error matching
	"net/http" // HTTP status codes
	"regexp"   // Regular expressions
	"strconv"  // String conversion
	"strings"  // String manipulation
	"time"     // Time durations

	"product_catalog/internal/domain" // Domain models and errors
	"product_catalog/internal/store"  // Persistence interfaces
	"product_catalog/internal/utils"  // Utility functions

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
	"golang.org/x/crypto/bcrypt"   // Password hashing
)

// CreateUserRequest is the admin payload for provisioning an account
type CreateUserRequest struct {
	Username string `json:"username" binding:"required"` // Username must be provided
	Password string `json:"password" binding:"required"` // Password must be provided
	Email    string `json:"email"`                       // Contact email
	Role     string `json:"role"`                        // Role, defaults to User
}

// isValidUsername checks if the username contains only alphabetic characters
func isValidUsername(username string) bool {
	matched, _ := regexp.MatchString(`^[A-Za-z]+$`, username) // Regex to match alphabetic characters only
	return matched                                            // Return whether it matched
}

// isValidPassword checks if the password length is between 8 and 15 characters
func isValidPassword(password string) bool {
	return len(password) >= 8 && len(password) <= 15 // Return true if length is valid
}

// CreateUserHandler provisions a new account. Users are only ever created
// this way or by the seed migration, never by self-registration.
func CreateUserHandler(users store.UserStore, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateUserRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Validate username and password
		if !isValidUsername(req.Username) {
			// If username is invalid, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username must be alphabetic only"})
			return
		}
		// Validate password length
		if !isValidPassword(req.Password) {
			// If password is invalid, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Password must be 8-15 characters"})
			return
		}
		role := req.Role // Requested role
		if role == "" {
			role = domain.RoleUser // Default role
		}
		// Only the two known roles are assignable
		if role != domain.RoleUser && role != domain.RoleAdmin {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown role"})
			return
		}
		// Hash the password and create the user
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			// If hashing fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}
		// Create user with lowercase username to ensure uniqueness
		user := domain.User{
			Username: strings.ToLower(req.Username), // Lowercase username
			Password: string(hash),                  // Bcrypt hash
			Email:    req.Email,                     // Contact email
			Role:     role,                          // Assigned role
		}
		// Attempt to create the user in the store
		if err := users.Create(c.Request.Context(), &user); err != nil {
			if errors.Is(err, domain.ErrDuplicate) {
				// If the username is taken, return conflict
				c.JSON(http.StatusConflict, gin.H{"error": "Username already exists"})
				return
			}
			logrus.WithFields(logrus.Fields{
				"username": user.Username, // Username
				"error":    err.Error(),   // Error message
			}).Error("Failed to create user") // Log failure
			// Return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
			return
		}
		// Log successful user creation
		logrus.WithFields(logrus.Fields{
			"user_id":  user.ID,       // Assigned user id
			"username": user.Username, // Username
			"role":     user.Role,     // Assigned role
		}).Info("User created") // Log user creation
		// Invalidate the cached user listing (simple version: delete first 5 pages)
		ctx := context.Background()
		for i := 1; i <= 5; i++ {
			// Delete cache entries
			_ = utils.DeleteCache(ctx, rdb, "admin:users:page="+strconv.Itoa(i)+":size=20")
		}
		// Return the created user (password is never serialized)
		c.JSON(http.StatusCreated, user)
	}
}

// ListUsersHandler returns one page of users
func ListUsersHandler(users store.UserStore, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background() // Use background context for Redis
		// Create a cache key based on pagination parameters
		cacheKey := "admin:users:page=" + c.DefaultQuery("page", "1") + ":size=" + c.DefaultQuery("page_size", "20")
		// Try to get cached response
		var cached struct {
			Users      []domain.User `json:"users"`       // List of users
			Page       int           `json:"page"`        // Current page
			PageSize   int           `json:"page_size"`   // Page size
			Total      int64         `json:"total"`       // Total number of users
			TotalPages int           `json:"total_pages"` // Total pages
		}
		// If cached data found, return it
		found, err := utils.GetCache(ctx, rdb, cacheKey, &cached)
		if err == nil && found {
			c.JSON(http.StatusOK, gin.H{
				"users":       cached.Users,      // List of users
				"page":        cached.Page,       // Current page
				"page_size":   cached.PageSize,   // Page size
				"total":       cached.Total,      // Total number of users
				"total_pages": cached.TotalPages, // Total pages
				"cached":      true,              // Indicate response is from cache
			})
			return
		}
		page := 1      // Default page number
		pageSize := 20 // Default page size
		if p := c.Query("page"); p != "" {
			if v, err := strconv.Atoi(p); err == nil && v > 0 {
				page = v // Set page if valid
			}
		}
		// Check and set page size within limits
		if ps := c.Query("page_size"); ps != "" {
			// If valid, set page size
			if v, err := strconv.Atoi(ps); err == nil && v > 0 && v <= 100 {
				pageSize = v // Set page size
			}
		}
		offset := (page - 1) * pageSize // Calculate offset for pagination
		// Fetch one page of users plus the total count
		list, total, err := users.List(c.Request.Context(), offset, pageSize)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"}) // Return on error
			return
		}
		// The total number of pages
		totalPages := (int(total) + pageSize - 1) / pageSize // Calculate total pages
		// Prepare final response data
		respData := gin.H{
			"users":       list,       // List of users
			"page":        page,       // Current page
			"page_size":   pageSize,   // Page size
			"total":       total,      // Total number of users
			"total_pages": totalPages, // Total pages
			"cached":      false,      // Indicate response is not from cache
		}
		// Cache the response for future requests
		_ = utils.SetCache(ctx, rdb, cacheKey, respData, 60*time.Second)
		c.JSON(http.StatusOK, respData) // Return the response
	}
}
