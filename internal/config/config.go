package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the full runtime configuration. Callers receive an explicit
// value from LoadConfig and pass it down; nothing reads the environment after
// startup.
type Config struct {
	// Server
	Port        string
	Environment string
	LogLevel    slog.Level

	// Database
	DatabaseURL string

	// Redis (optional; empty disables caching)
	RedisURL string

	// Kafka (optional; empty disables event publishing)
	KafkaBrokers []string

	// Pagination defaults
	QuestionsPerPage  int
	CategoriesPerPage int
	MaxItemsPerPage   int
}

// LoadConfig reads configuration from the environment, with .env as a
// development convenience.
func LoadConfig() (*Config, error) {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := &Config{
		Port:              getEnv("PORT", "8080"),
		Environment:       getEnv("ENVIRONMENT", "development"),
		LogLevel:          parseLogLevel(getEnv("LOG_LEVEL", "info")),
		DatabaseURL:       getEnv("DATABASE_URL", ""),
		RedisURL:          getEnv("REDIS_URL", ""),
		KafkaBrokers:      splitList(getEnv("KAFKA_BROKERS", "")),
		QuestionsPerPage:  getEnvInt("QUESTIONS_PER_PAGE", 10),
		CategoriesPerPage: getEnvInt("CATEGORIES_PER_PAGE", 10),
		MaxItemsPerPage:   getEnvInt("MAX_ITEMS_PER_PAGE", 100),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.QuestionsPerPage <= 0 || c.CategoriesPerPage <= 0 {
		return fmt.Errorf("page sizes must be positive")
	}
	if c.MaxItemsPerPage < c.QuestionsPerPage || c.MaxItemsPerPage < c.CategoriesPerPage {
		return fmt.Errorf("MAX_ITEMS_PER_PAGE must not be below the default page sizes")
	}
	return nil
}

// IsProduction reports whether the service runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
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
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func parseLogLevel(value string) slog.Level {
	switch strings.ToLower(value) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
