package config

import (
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENVIRONMENT", "DATABASE_URL", "DATABASE_NAME", "CORS_ORIGINS"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.Port != "8000" {
		t.Errorf("Port = %q, want 8000", cfg.Port)
	}
	if cfg.Environment != "dev" {
		t.Errorf("Environment = %q, want dev", cfg.Environment)
	}
	if cfg.DatabaseURL != "" {
		t.Errorf("DatabaseURL = %q, want empty", cfg.DatabaseURL)
	}
	if cfg.DatabaseName != "seedcodes" {
		t.Errorf("DatabaseName = %q, want seedcodes", cfg.DatabaseName)
	}
	if cfg.CORSOrigins != "*" {
		t.Errorf("CORSOrigins = %q, want *", cfg.CORSOrigins)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9001")
	t.Setenv("ENVIRONMENT", "prod")
	t.Setenv("DATABASE_URL", "mongodb://db:27017")
	t.Setenv("DATABASE_NAME", "portfolio")
	t.Setenv("CORS_ORIGINS", "https://seedcodes.dev")

	cfg := Load()

	if cfg.Port != "9001" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.Environment != "prod" {
		t.Errorf("Environment = %q", cfg.Environment)
	}
	if cfg.DatabaseURL != "mongodb://db:27017" {
		t.Errorf("DatabaseURL = %q", cfg.DatabaseURL)
	}
	if cfg.DatabaseName != "portfolio" {
		t.Errorf("DatabaseName = %q", cfg.DatabaseName)
	}
	if cfg.CORSOrigins != "https://seedcodes.dev" {
		t.Errorf("CORSOrigins = %q", cfg.CORSOrigins)
	}
}
