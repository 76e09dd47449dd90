package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// AppConfig holds everything read from the environment at startup.
type AppConfig struct {
	DataFile       string
	JournalDB      string
	ClickUpBaseURL string
	LogLevel       string
	HTTPTimeout    time.Duration
}

// Load reads .env (if present) and the environment into an AppConfig.
func Load() *AppConfig {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded, relying on environment", "error", err)
	}

	cfg := &AppConfig{
		DataFile:       getEnv("SALARY_DATA_FILE", defaultPath("salary_data.json")),
		JournalDB:      getEnv("SALARY_DB", defaultPath("journal.db")),
		ClickUpBaseURL: os.Getenv("CLICKUP_BASE_URL"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		HTTPTimeout:    12 * time.Second,
	}

	if raw := os.Getenv("HTTP_TIMEOUT_SECONDS"); raw != "" {
		if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
			cfg.HTTPTimeout = time.Duration(secs) * time.Second
		} else {
			slog.Warn("invalid HTTP_TIMEOUT_SECONDS, using default", "value", raw)
		}
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func defaultPath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return name
	}
	return filepath.Join(home, ".salarycounter", name)
}
