// Package config loads runtime configuration from the environment.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config carries the runtime settings for bmitrack.
type Config struct {
	// HistoryPath is the JSON history file used by the json backend.
	HistoryPath string

	// Store selects the storage backend: "json" or "sqlite".
	Store string

	// DBPath is the database file used by the sqlite backend.
	DBPath string

	// LogLevel is the slog level name (debug, info, warn, error).
	LogLevel string
}

// Load reads .env if present, then the environment, falling back to
// defaults. A missing .env file is not an error.
func Load() Config {
	_ = godotenv.Load()
	return Config{
		HistoryPath: getEnv("BMI_HISTORY_PATH", "bmi_history.json"),
		Store:       getEnv("BMI_STORE", "json"),
		DBPath:      getEnv("BMI_DB_PATH", "./data/bmi.db"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
