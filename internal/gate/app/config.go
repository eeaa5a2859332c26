package app

import (
	"errors"
	"os"
	"strconv"
	"time"
)

type Config struct {
	BaseURL           string // Required: public base URL used to compose invitation links
	AdminPasswordHash string // Required: argon2id hash of the operator password
	AdminTokenSecret  string // Required: HMAC secret for signing admin tokens

	Issuer               string        // Optional: issuer claim for admin tokens (default: demogate)
	DatabaseFile         string        // Optional: path to SQLite database file (default: ./gate.db)
	SessionTTL           time.Duration // Optional: invited-user session lifetime (default: 24h)
	AdminTokenTTL        time.Duration // Optional: admin token lifetime (default: 12h)
	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Expired session sweep interval (default: 1h)
}

func LoadConfig() Config {
	return Config{
		BaseURL:              getEnvOrDefault("GATE_BASE_URL", "http://localhost:8080"),
		AdminPasswordHash:    os.Getenv("GATE_ADMIN_PASSWORD_HASH"),
		AdminTokenSecret:     os.Getenv("GATE_ADMIN_TOKEN_SECRET"),
		Issuer:               getEnvOrDefault("GATE_ISSUER", "demogate"),
		DatabaseFile:         getEnvOrDefault("GATE_DATABASE_FILE", "gate.db"),
		SessionTTL:           getEnvDurationOrDefault("GATE_SESSION_TTL", 24*time.Hour),
		AdminTokenTTL:        getEnvDurationOrDefault("GATE_ADMIN_TOKEN_TTL", 12*time.Hour),
		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}
}

// Validate rejects configurations that cannot possibly serve. The admin
// credential and signing secret have no usable defaults.
func (cfg Config) Validate() error {
	if cfg.AdminPasswordHash == "" {
		return errors.New("GATE_ADMIN_PASSWORD_HASH is required")
	}
	if cfg.AdminTokenSecret == "" {
		return errors.New("GATE_ADMIN_TOKEN_SECRET is required")
	}
	return nil
}

// CookieSecure reports whether session cookies should be marked Secure.
// Local development runs over plain HTTP.
func (cfg Config) CookieSecure() bool {
	return cfg.Env != "dev"
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes (for backwards compatibility)
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
