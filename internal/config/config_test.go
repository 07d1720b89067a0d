package config

import (
	"log/slog"
	"testing"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "DATABASE_DRIVER", "DATABASE_URL", "BASE_URL", "PAGE_SIZE", "LOG_LEVEL", "S3_BUCKET", "AWS_REGION", "S3_ENDPOINT", "RABBITMQ_URL"} {
		t.Setenv(k, "")
	}

	cfg := FromEnv()
	if cfg.Port != "8080" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.DatabaseDriver != "postgres" {
		t.Errorf("DatabaseDriver = %q", cfg.DatabaseDriver)
	}
	if cfg.PageSize != DefaultPageSize {
		t.Errorf("PageSize = %d", cfg.PageSize)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v", cfg.LogLevel)
	}
	if cfg.AWSRegion != "us-east-1" {
		t.Errorf("AWSRegion = %q", cfg.AWSRegion)
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("PAGE_SIZE", "25")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("BASE_URL", "https://blog.example.com/")
	t.Setenv("DATABASE_DRIVER", "sqlite3")

	cfg := FromEnv()
	if cfg.PageSize != 25 {
		t.Errorf("PageSize = %d", cfg.PageSize)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v", cfg.LogLevel)
	}
	if cfg.BaseURL != "https://blog.example.com" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.DatabaseDriver != "sqlite3" {
		t.Errorf("DatabaseDriver = %q", cfg.DatabaseDriver)
	}
}

func TestGetEnvInt_Invalid(t *testing.T) {
	for _, v := range []string{"abc", "0", "-3"} {
		t.Setenv("PAGE_SIZE", v)
		if got := getEnvInt("PAGE_SIZE", 10); got != 10 {
			t.Errorf("getEnvInt(%q) = %d, want fallback", v, got)
		}
	}
}
