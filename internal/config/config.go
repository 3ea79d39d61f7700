package config

import (
	"os"      // For environment variables
	"strconv" // For string to int conversion
	"time"    // For token TTL parsing

	"github.com/joho/godotenv" // For loading .env files
)

// Config holds the application configuration
type Config struct {
	AppPort    string        // Application port
	DBUser     string        // Database user
	DBPassword string        // Database password
	DBHost     string        // Database host
	DBPort     string        // Database port
	DBName     string        // Database name
	JWTSecret  string        // JWT signing secret
	TokenTTL   time.Duration // Access token lifetime
	RedisAddr  string        // Redis server address
	RedisPass  string        // Redis password
	RedisDB    int           // Redis database number
	AdminUser  string        // Seed admin username (cmd/migrate)
	AdminPass  string        // Seed admin password (cmd/migrate)
	AdminEmail string        // Seed admin email (cmd/migrate)
	IsProd     bool          // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	tokenTTL := time.Hour // Tokens expire 1 hour after issuance by default
	if v := os.Getenv("TOKEN_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			tokenTTL = d
		}
	}
	return &Config{
		AppPort:    os.Getenv("APP_PORT"),          // Application port
		DBUser:     os.Getenv("DB_USER"),           // Database user
		DBPassword: os.Getenv("DB_PASSWORD"),       // Database password
		DBHost:     os.Getenv("DB_HOST"),           // Database host
		DBPort:     os.Getenv("DB_PORT"),           // Database port
		DBName:     os.Getenv("DB_NAME"),           // Database name
		JWTSecret:  os.Getenv("JWT_SECRET"),        // JWT signing secret
		TokenTTL:   tokenTTL,                       // Access token lifetime
		RedisAddr:  os.Getenv("REDIS_ADDR"),        // Redis server address
		RedisPass:  os.Getenv("REDIS_PASS"),        // Redis password
		RedisDB:    redisDB,                        // Redis database number
		AdminUser:  os.Getenv("ADMIN_USERNAME"),    // Seed admin username
		AdminPass:  os.Getenv("ADMIN_PASSWORD"),    // Seed admin password
		AdminEmail: os.Getenv("ADMIN_EMAIL"),       // Seed admin email
		IsProd:     os.Getenv("IS_PROD") == "true", // Is production environment
	}
}
