package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration.
// Values are loaded from environment variables with sensible defaults.
type Config struct {
	// Server
	Port     int
	LogLevel string

	// CORS: comma-separated list of allowed SPA origins.
	CORSOrigins []string

	// MongoDB. An empty URI selects the in-memory backend.
	MongoURI     string
	MongoDB      string
	MongoTimeout time.Duration

	// Sessions
	SessionSecret string
	SessionTTL    time.Duration

	// Dashboard: the warm-lead floor was 60 in one legacy backend and 50
	// in the other; configurable until product picks one.
	WarmLeadFloor int

	// Observability
	OTLPEndpoint string
}

// Load reads configuration from environment variables with defaults.
func Load() *Config {
	return &Config{
		Port:     getEnvInt("PORT", 8080),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		CORSOrigins: splitCSV(getEnv("CORS_ORIGIN",
			"http://localhost:5173,http://localhost:5174,http://localhost:5175")),

		MongoURI:     getEnv("MONGODB_URI", ""),
		MongoDB:      getEnv("MONGODB_DB", "campaignforge"),
		MongoTimeout: getEnvDuration("MONGODB_TIMEOUT", 10*time.Second),

		SessionSecret: getEnv("SESSION_SECRET", "campaignforge-dev-secret-change-me"),
		SessionTTL:    getEnvDuration("SESSION_TTL", 7*24*time.Hour),

		WarmLeadFloor: getEnvInt("WARM_LEAD_FLOOR", 60),

		OTLPEndpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
