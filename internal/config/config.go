// Package config provides application configuration loading from environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	// WorkspacePath is the SQLite database file backing the workspace.
	// Ignored when DatabaseURL is set.
	WorkspacePath string
	// DatabaseURL selects the PostgreSQL backend when non-empty.
	DatabaseURL        string
	LogLevel           string
	LogFormat          string
	ExchangeAPIURL     string
	ExchangeCacheTTL   time.Duration
	ReminderEnabled    bool
	ReminderCheckEvery time.Duration
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		WorkspacePath:  os.Getenv("WORKSPACE_DB"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		LogLevel:       os.Getenv("LOG_LEVEL"),
		LogFormat:      os.Getenv("LOG_FORMAT"),
		ExchangeAPIURL: os.Getenv("EXCHANGE_API_URL"),
	}

	if cfg.WorkspacePath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory for default workspace path: %w", err)
		}
		cfg.WorkspacePath = filepath.Join(home, ".trip-workspace", "workspace.db")
	}

	cfg.ExchangeCacheTTL = 12 * time.Hour
	if ttlStr := os.Getenv("EXCHANGE_CACHE_TTL_HOURS"); ttlStr != "" {
		if h, err := strconv.Atoi(ttlStr); err == nil && h > 0 {
			cfg.ExchangeCacheTTL = time.Duration(h) * time.Hour
		}
	}

	cfg.ReminderEnabled = os.Getenv("REMINDERS_ENABLED") == "true"
	cfg.ReminderCheckEvery = 30 * time.Minute
	if minStr := os.Getenv("REMINDER_CHECK_INTERVAL_MINUTES"); minStr != "" {
		if m, err := strconv.Atoi(minStr); err == nil && m > 0 {
			cfg.ReminderCheckEvery = time.Duration(m) * time.Minute
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate checks that the configuration is usable.
func (c *Config) validate() error {
	var errs []string

	if c.DatabaseURL == "" && c.WorkspacePath == "" {
		errs = append(errs, "either WORKSPACE_DB or DATABASE_URL is required")
	}

	if c.DatabaseURL != "" &&
		!strings.HasPrefix(c.DatabaseURL, "postgres://") &&
		!strings.HasPrefix(c.DatabaseURL, "postgresql://") {
		errs = append(errs, "DATABASE_URL must be a postgres:// URL")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}
