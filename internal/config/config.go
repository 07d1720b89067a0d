package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const DefaultPageSize = 10

type Config struct {
	Port           string
	DatabaseDriver string
	DatabaseURL    string
	// BaseURL overrides the scheme and host used in pagination links.
	BaseURL     string
	PageSize    int
	LogLevel    slog.Level
	S3Bucket    string
	AWSRegion   string
	S3Endpoint  string
	RabbitMQURL string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Default().Warn("loading .env failed", "error", err)
	}
	return FromEnv()
}

// FromEnv reads the configuration from the process environment only.
func FromEnv() *Config {
	return &Config{
		Port:           getEnv("PORT", "8080"),
		DatabaseDriver: getEnv("DATABASE_DRIVER", "postgres"),
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		BaseURL:        strings.TrimSuffix(getEnv("BASE_URL", ""), "/"),
		PageSize:       getEnvInt("PAGE_SIZE", DefaultPageSize),
		LogLevel:       parseLevel(getEnv("LOG_LEVEL", "info")),
		S3Bucket:       getEnv("S3_BUCKET", ""),
		AWSRegion:      getEnv("AWS_REGION", "us-east-1"),
		S3Endpoint:     getEnv("S3_ENDPOINT", ""),
		RabbitMQURL:    getEnv("RABBITMQ_URL", ""),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		slog.Default().Warn("invalid integer env var, using default", "key", key, "value", value, "default", fallback)
		return fallback
	}
	return n
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return level
}
