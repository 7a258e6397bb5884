package config

import (
	"os"

	"github.com/joho/godotenv"
)

// parseEnv overlays cfg from environment variables, loading a .env file
// first when one exists in the working directory.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v, ok := os.LookupEnv("LIFEKEEPER_DATABASE_PATH"); ok {
		cfg.DatabasePath = v
	}
	if v, ok := os.LookupEnv("LIFEKEEPER_LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
}
