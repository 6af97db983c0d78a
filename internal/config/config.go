package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config keeps runtime settings for the server.
type Config struct {
	DatabaseURL   string
	HTTPPort      string
	JWTSecret     string
	LogLevel      string
	LogJSON       bool
	ProbeInterval time.Duration
}

// Load reads configuration from environment variables with sane defaults.
// A .env file is honored when present.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		DatabaseURL:   strings.TrimSpace(os.Getenv("DATABASE_URL")),
		HTTPPort:      strings.TrimSpace(os.Getenv("HTTP_PORT")),
		JWTSecret:     strings.TrimSpace(os.Getenv("JWT_SECRET")),
		LogLevel:      strings.TrimSpace(os.Getenv("LOG_LEVEL")),
		LogJSON:       os.Getenv("LOG_JSON") == "true",
		ProbeInterval: parseInterval(strings.TrimSpace(os.Getenv("HEALTH_PROBE_SECONDS"))),
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "sqlite:task_manager.db"
	}

	if cfg.HTTPPort == "" {
		cfg.HTTPPort = "8080"
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	if cfg.ProbeInterval == 0 {
		cfg.ProbeInterval = time.Minute
	}

	if cfg.JWTSecret == "" {
		return cfg, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

func parseInterval(raw string) time.Duration {
	if raw == "" {
		return 0
	}
	seconds, err := time.ParseDuration(raw + "s")
	if err != nil || seconds <= 0 {
		return 0
	}
	return seconds
}
