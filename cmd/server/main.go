package main

import (
	"context" // context package is needed for Redis operations
	"log"     // log package is needed for logging

	"product_catalog/internal/api"        // Custom package for API handlers
	"product_catalog/internal/config"     // Custom package for configuration
	"product_catalog/internal/domain"     // Custom package for domain models
	"product_catalog/internal/middleware" // Custom package for middleware
	"product_catalog/internal/store"      // Custom package for persistence

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
	"gorm.io/driver/mysql"         // MySQL driver for GORM
	"gorm.io/gorm"                 // GORM ORM library
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Setup Data Source Name (DSN) and connect to the database
	dsn := cfg.DBUser + ":" + cfg.DBPassword + "@tcp(" + cfg.DBHost + ":" + cfg.DBPort + ")/" + cfg.DBName + "?parseTime=true"
	conn, err := gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}

	// Setup Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr, // Redis server address
		Password: cfg.RedisPass, // Redis password
		DB:       cfg.RedisDB,   // Redis database number
	})

	// Test Redis connection
	_, err = redisClient.Ping(context.Background()).Result()
	if err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.Default() // Gin router instance

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	// Stores wrap the persistence handle
	productStore := store.NewGormProductStore(conn) // Product persistence
	userStore := store.NewGormUserStore(conn)       // User persistence

	// Liveness route
	r.GET("/health", api.HealthHandler()) // Health endpoint

	// Auth routes
	r.POST("/api/auth/login", api.LoginHandler(userStore, cfg.JWTSecret, cfg.TokenTTL)) // Login endpoint

	// Product routes (reads are public)
	products := r.Group("/api/products")
	products.GET("", api.ListProductsHandler(productStore, redisClient))    // List products endpoint
	products.GET("/:id", api.GetProductHandler(productStore, redisClient)) // Get product endpoint

	// Mutating product routes (protected, admin only). The role guard runs
	// before the handler, so non-admins are rejected before any lookup.
	adminProducts := products.Group("", middleware.JWTAuthMiddleware(cfg.JWTSecret), middleware.RequireRole(domain.RoleAdmin))
	adminProducts.POST("", api.CreateProductHandler(productStore, redisClient))        // Create product endpoint
	adminProducts.PUT("/:id", api.UpdateProductHandler(productStore, redisClient))     // Update product endpoint
	adminProducts.DELETE("/:id", api.DeleteProductHandler(productStore, redisClient)) // Delete product endpoint

	// Admin routes (protected, admin only)
	adminGroup := r.Group("/api/admin")
	// Protect admin routes with JWT and role middleware
	adminGroup.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret), middleware.RequireRole(domain.RoleAdmin))
	adminGroup.GET("/users", api.ListUsersHandler(userStore, redisClient))   // List users endpoint
	adminGroup.POST("/users", api.CreateUserHandler(userStore, redisClient)) // Create user endpoint

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}
