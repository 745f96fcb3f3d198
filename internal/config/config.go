package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerAddress          string
	PostgresConn           string
	PostgresDatabase       string
	MigrationsPath         string
	RedisURL               string
	NameCacheTTL           time.Duration
	TeamServiceURL         string
	NotificationServiceURL string
	ClientTimeout          time.Duration
	ClientRateLimit        float64
	LogLevel               string
	Environment            string
}

// Load reads the configuration from the environment, after an optional .env file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	return &Config{
		ServerAddress:          getEnv("SERVER_ADDRESS", "0.0.0.0:8080"),
		PostgresConn:           getEnv("POSTGRES_CONN", ""),
		PostgresDatabase:       getEnv("POSTGRES_DATABASE", "recruit"),
		MigrationsPath:         getEnv("MIGRATIONS_PATH", "file://migrations"),
		RedisURL:               getEnv("REDIS_URL", ""),
		NameCacheTTL:           getDurationEnv("NAME_CACHE_TTL", 10*time.Minute),
		TeamServiceURL:         getEnv("TEAM_SERVICE_URL", "http://sportshub-team:8083"),
		NotificationServiceURL: getEnv("NOTIFICATION_SERVICE_URL", "http://sportshub-notification:8085"),
		ClientTimeout:          getDurationEnv("CLIENT_TIMEOUT", 3*time.Second),
		ClientRateLimit:        getFloatEnv("CLIENT_RATE_LIMIT", 20),
		LogLevel:               getEnv("LOG_LEVEL", "info"),
		Environment:            getEnv("ENVIRONMENT", "production"),
	}, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getFloatEnv(key string, fallback float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil && parsed > 0 {
			return parsed
		}
	}
	return fallback
}
