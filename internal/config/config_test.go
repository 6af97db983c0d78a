package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("HTTP_PORT", "")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_JSON", "")
	t.Setenv("HEALTH_PROBE_SECONDS", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DatabaseURL != "sqlite:task_manager.db" {
		t.Errorf("DatabaseURL = %q", cfg.DatabaseURL)
	}
	if cfg.HTTPPort != "8080" {
		t.Errorf("HTTPPort = %q", cfg.HTTPPort)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
	if cfg.LogJSON {
		t.Error("LogJSON should default to false")
	}
	if cfg.ProbeInterval != time.Minute {
		t.Errorf("ProbeInterval = %v", cfg.ProbeInterval)
	}
}

func TestLoadRequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing JWT_SECRET")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "sqlite:/var/lib/app/tasks.db")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("JWT_SECRET", "s")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_JSON", "true")
	t.Setenv("HEALTH_PROBE_SECONDS", "30")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DatabaseURL != "sqlite:/var/lib/app/tasks.db" {
		t.Errorf("DatabaseURL = %q", cfg.DatabaseURL)
	}
	if cfg.HTTPPort != "9090" {
		t.Errorf("HTTPPort = %q", cfg.HTTPPort)
	}
	if cfg.LogLevel != "debug" || !cfg.LogJSON {
		t.Errorf("log settings = %q/%v", cfg.LogLevel, cfg.LogJSON)
	}
	if cfg.ProbeInterval != 30*time.Second {
		t.Errorf("ProbeInterval = %v", cfg.ProbeInterval)
	}
}

func TestParseInterval(t *testing.T) {
	cases := []struct {
		in   string
		want time.Duration
	}{
		{"", 0},
		{"60", time.Minute},
		{"5", 5 * time.Second},
		{"-1", 0},
		{"abc", 0},
	}
	for _, tc := range cases {
		if got := parseInterval(tc.in); got != tc.want {
			t.Errorf("parseInterval(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
