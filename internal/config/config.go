package config

import (
	"encoding/hex"
	"fmt"
	"os"
	"time"

	"github.com/gorilla/securecookie"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	// Server
	Port        string
	Environment string // development, production

	// Database, optional: account details fall back to token claims
	DatabaseURL string

	// Redis, optional: profile lookups go straight to the database
	RedisURL        string
	ProfileCacheTTL time.Duration

	// Firebase
	FirebaseCredentialsPath string
	FirebaseAPIKey          string
	FirebaseAuthDomain      string
	FirebaseProjectID       string
	SessionMaxAge           time.Duration

	// Shell UI state cookie
	ShellSecret string
}

// Load reads configuration from environment variables.
// A .env file is loaded first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENV", "development"),

		DatabaseURL: os.Getenv("DATABASE_URL"),

		RedisURL: os.Getenv("REDIS_URL"),

		FirebaseCredentialsPath: getEnv("FIREBASE_CREDENTIALS_PATH", "./firebase-service-account.json"),
		FirebaseAPIKey:          os.Getenv("FIREBASE_API_KEY"),
		FirebaseAuthDomain:      os.Getenv("FIREBASE_AUTH_DOMAIN"),
		FirebaseProjectID:       os.Getenv("FIREBASE_PROJECT_ID"),
		SessionMaxAge:           5 * 24 * time.Hour,

		ShellSecret: os.Getenv("SHELL_COOKIE_SECRET"),
	}

	ttl, err := time.ParseDuration(getEnv("PROFILE_CACHE_TTL", "10m"))
	if err != nil {
		return nil, fmt.Errorf("invalid PROFILE_CACHE_TTL: %w", err)
	}
	cfg.ProfileCacheTTL = ttl

	if cfg.ShellSecret == "" {
		if cfg.IsProduction() {
			return nil, fmt.Errorf("SHELL_COOKIE_SECRET is required in production")
		}
		// Development only: sidebar state is lost on restart.
		cfg.ShellSecret = hex.EncodeToString(securecookie.GenerateRandomKey(32))
	}
	if len(cfg.ShellSecret) < 64 {
		return nil, fmt.Errorf("SHELL_COOKIE_SECRET must be at least 64 characters, got %d", len(cfg.ShellSecret))
	}

	return cfg, nil
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv returns the value of an environment variable or a fallback default.
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
