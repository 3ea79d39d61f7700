package db

import (
	"product_catalog/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus"

	"golang.org/x/crypto/bcrypt" // Password hashing for the seed admin
	"gorm.io/driver/mysql"       // MySQL driver for GORM
	"gorm.io/gorm"               // GORM ORM library
)

// Migrate performs automatic migration for the database schema and returns
// the open handle for seeding
func Migrate(dsn string) *gorm.DB {
	// Open a connection to the database
	conn, err := gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err) // Log fatal error if connection fails
	}
	// AutoMigrate will create tables, missing foreign keys, constraints, columns and indexes.
	// Order and OrderDetail are migrated for schema parity only.
	err = conn.AutoMigrate(&domain.User{}, &domain.Product{}, &domain.Order{}, &domain.OrderDetail{})
	if err != nil {
		logrus.Fatalf("migration failed: %v", err) // Log fatal error if migration fails
	}
	logrus.Info("Migration completed.") // Log successful migration
	return conn
}

// SeedAdmin creates the initial admin account. Accounts are only created by
// this seed or by an admin through the API, never by self-registration.
// Seeding is skipped when the username already exists.
func SeedAdmin(conn *gorm.DB, username, password, email string) {
	if username == "" || password == "" {
		logrus.Warn("Admin seed skipped: ADMIN_USERNAME or ADMIN_PASSWORD not set")
		return
	}
	var existing domain.User
	// Skip if the account is already present
	if err := conn.Where("username = ?", username).First(&existing).Error; err == nil {
		logrus.WithField("username", username).Info("Admin seed skipped: user exists")
		return
	}
	// Hash the seed password
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logrus.Fatalf("failed to hash admin password: %v", err)
	}
	admin := domain.User{
		Username: username,         // Seed admin username
		Password: string(hash),     // Bcrypt hash
		Email:    email,            // Seed admin email
		Role:     domain.RoleAdmin, // Admin role
	}
	// Create the seed admin
	if err := conn.Create(&admin).Error; err != nil {
		logrus.Fatalf("failed to seed admin user: %v", err)
	}
	logrus.WithField("username", username).Info("Admin user seeded")
}
