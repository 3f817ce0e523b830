package internal

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env      string
	Port     int
	LogLevel string

	// Secret key used to sign flash cookies. The "change-me" default is
	// acceptable in development only.
	SecretKey string

	// Path to the append-only lead log file.
	LeadsFile string

	// SMTP Configuration
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	EmailFrom    string
	EmailTo      string
	SMTPTimeout  time.Duration

	// Metrics endpoint authentication
	// If both are empty, the /metrics endpoint will be unprotected (not recommended)
	MetricsUsername string
	MetricsPassword string
}

// DefaultSecretKey is the development fallback for SECRET_KEY.
const DefaultSecretKey = "change-me"

func NewConfig() (*Config, error) {
	// Load .env file if it exists (ignored in production)
	_ = godotenv.Load()

	cfg := &Config{
		Env:      getEnv("ENV", "development"),
		Port:     getEnvInt("PORT", 8080),
		LogLevel: getEnv("LOG_LEVEL", "debug"),

		SecretKey: getEnv("SECRET_KEY", DefaultSecretKey),
		LeadsFile: getEnv("LEADS_FILE", "contacts.csv"),

		// SMTP settings. The notifier treats empty values as "not configured"
		// rather than failing startup, since mail delivery is best-effort.
		SMTPHost:     getEnv("SMTP_HOST", ""),
		SMTPPort:     getEnvInt("SMTP_PORT", 587),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		EmailFrom:    getEnv("EMAIL_FROM", ""),
		EmailTo:      getEnv("EMAIL_TO", ""),
		SMTPTimeout:  getEnvDuration("SMTP_TIMEOUT", 10*time.Second),

		// Metrics authentication
		MetricsUsername: getEnv("METRICS_USERNAME", ""),
		MetricsPassword: getEnv("METRICS_PASSWORD", ""),
	}

	if cfg.Env == "production" && cfg.SecretKey == DefaultSecretKey {
		return nil, fmt.Errorf("SECRET_KEY must be set in production")
	}

	if cfg.LeadsFile == "" {
		return nil, fmt.Errorf("LEADS_FILE must not be empty")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
