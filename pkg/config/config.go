package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	DatabaseURL     string
	ACWebhookSecret string
	SyncLimit       int
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	syncLimit := 1000
	if raw := os.Getenv("SYNC_DEFAULT_LIMIT"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			syncLimit = parsed
		}
	}

	return &Config{
		Port:            getEnv("PORT", "8080"),
		DatabaseURL:     getEnv("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=acsync port=5432 sslmode=disable"),
		ACWebhookSecret: getEnv("AC_WEBHOOK_SECRET", ""),
		SyncLimit:       syncLimit,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
