package config

import (
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DATABASE_NAME", "")
	t.Setenv("UPLOAD_DIR", "")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8000" {
		t.Errorf("expected default port 8000, got %s", cfg.Port)
	}
	if cfg.UploadDir != "uploads" {
		t.Errorf("expected default upload dir uploads, got %s", cfg.UploadDir)
	}
	if cfg.DatabaseName != "prestige_car_hire" {
		t.Errorf("expected default database name, got %s", cfg.DatabaseName)
	}
	if cfg.HasDatabase() {
		t.Error("expected no database without DATABASE_URL")
	}
	if cfg.Addr() != ":8000" {
		t.Errorf("expected addr :8000, got %s", cfg.Addr())
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_URL", "mongodb://localhost:27017")
	t.Setenv("DATABASE_NAME", "hire")
	t.Setenv("UPLOAD_DIR", "/tmp/claims")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "9090" {
		t.Errorf("expected port 9090, got %s", cfg.Port)
	}
	if !cfg.HasDatabase() || cfg.DatabaseURL != "mongodb://localhost:27017" {
		t.Errorf("expected DATABASE_URL to be set, got %q", cfg.DatabaseURL)
	}
	if cfg.DatabaseName != "hire" {
		t.Errorf("expected database name hire, got %s", cfg.DatabaseName)
	}
	if cfg.UploadDir != "/tmp/claims" {
		t.Errorf("expected upload dir /tmp/claims, got %s", cfg.UploadDir)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected log level debug, got %s", cfg.LogLevel)
	}
}
