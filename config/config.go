package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type Config struct {
	Port string

	// DBDriver is "sqlite" (default, in-memory) or "mysql".
	DBDriver     string
	SQLiteDSN    string
	SeedDemoData bool

	LogLevel  string
	LogFormat string

	// SessionStore is "memory" or "redis".
	SessionStore string
	SessionTTL   time.Duration
	Redis        RedisConfig

	// CORSOrigins is the raw comma separated CORS_ORIGINS value.
	CORSOrigins string
}

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func envBool(key string, def bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return def
	}
	return v
}

func envInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

func envDuration(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := time.ParseDuration(raw)
	if err != nil || v <= 0 {
		return def
	}
	return v
}

// Load reads the configuration from the environment. Call godotenv.Load
// beforehand if a .env file should be honoured.
func Load() *Config {
	return &Config{
		Port:         envOrDefault("PORT", "8080"),
		DBDriver:     strings.ToLower(envOrDefault("DB_DRIVER", "sqlite")),
		SQLiteDSN:    envOrDefault("SQLITE_DSN", ":memory:"),
		SeedDemoData: envBool("SEED_DEMO_DATA", true),
		LogLevel:     strings.ToLower(envOrDefault("LOG_LEVEL", "info")),
		LogFormat:    strings.ToLower(envOrDefault("LOG_FORMAT", "json")),
		SessionStore: strings.ToLower(envOrDefault("SESSION_STORE", "memory")),
		SessionTTL:   envDuration("SESSION_TTL", 12*time.Hour),
		Redis: RedisConfig{
			Addr:     envOrDefault("REDIS_ADDR", "127.0.0.1:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       envInt("REDIS_DB", 0),
		},
		CORSOrigins: os.Getenv("CORS_ORIGINS"),
	}
}
