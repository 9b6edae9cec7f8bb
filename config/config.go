package config

import (
	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	// Server configuration
	Server struct {
		Port string `env:"SERVER_PORT" envDefault:"5250"`

		// Origins allowed to call the API, comma separated
		AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`
	}

	// Database configuration. When PostgresDSN is set the server connects
	// to Postgres; otherwise it falls back to a local SQLite file.
	Database struct {
		PostgresDSN string `env:"DATABASE_URL"`
		SQLitePath  string `env:"SQLITE_PATH" envDefault:"database/rentdesk.db"`
	}

	// Auth configuration
	Auth struct {
		JWTSecret string `env:"JWT_SECRET" envDefault:"change-me-in-production"`

		// Token lifetime in hours
		TokenTTL int `env:"JWT_TTL_HOURS" envDefault:"24"`

		// Seed account created on first boot when no manager exists
		SeedManagerEmail    string `env:"SEED_MANAGER_EMAIL"`
		SeedManagerPassword string `env:"SEED_MANAGER_PASSWORD"`
	}

	// Redis configuration; the sign-out token blacklist is disabled when
	// Addr is empty.
	Redis struct {
		Addr     string `env:"REDIS_ADDR"`
		Password string `env:"REDIS_PASSWORD"`
		DB       int    `env:"REDIS_DB" envDefault:"0"`
	}

	// Payment gateway configuration
	Payments struct {
		GatewayURL string `env:"PAYMENT_GATEWAY_URL"`
		APIKey     string `env:"PAYMENT_GATEWAY_API_KEY"`

		// Webhook signing secret shared with the gateway
		WebhookSecret string `env:"PAYMENT_WEBHOOK_SECRET"`
	}

	// File storage configuration
	Storage struct {
		// Directory where uploaded objects are kept
		Dir string `env:"STORAGE_DIR" envDefault:"storage/uploads"`

		// Base URL prefixed to stored object paths
		PublicBaseURL string `env:"STORAGE_PUBLIC_URL" envDefault:"http://localhost:5250/uploads"`

		// Maximum upload size in megabytes
		MaxUploadMB int64 `env:"STORAGE_MAX_UPLOAD_MB" envDefault:"25"`
	}
}

func LoadConfig() (*Config, error) {
	// Best effort; env vars may be set without a .env file
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
