package main

import (
	"product_catalog/internal/config" // Custom import path (Config)
	"product_catalog/internal/db"     // Custom import path (Database)
)

// Main entry point for migration and seeding
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Database Source Name (DSN) for MySQL connection
	dsn := cfg.DBUser + ":" + cfg.DBPassword + "@tcp(" + cfg.DBHost + ":" + cfg.DBPort + ")/" + cfg.DBName + "?parseTime=true"
	conn := db.Migrate(dsn)                                          // Run schema migration
	db.SeedAdmin(conn, cfg.AdminUser, cfg.AdminPass, cfg.AdminEmail) // Seed the initial admin account
}
