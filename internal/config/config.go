package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port        string
	Environment string
	LogLevel    string

	ShopAPIURL     string
	ShopAPITimeout time.Duration
	ShopAPIRetries int

	RedisURL string

	SessionTTL          time.Duration
	SessionCookieName   string
	SessionCookieSecure bool

	CORSOrigins string

	CommentMaxDepth    int
	CommentMaxChildren int

	DefaultLocale string
}

func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		ShopAPIURL:     getEnv("SHOP_API_URL", "http://localhost:8000"),
		ShopAPITimeout: getDurationEnv("SHOP_API_TIMEOUT", 10*time.Second),
		ShopAPIRetries: getIntEnv("SHOP_API_RETRIES", 2),

		RedisURL: getEnv("REDIS_URL", ""),

		SessionTTL:          getDurationEnv("SESSION_TTL", 2*time.Hour),
		SessionCookieName:   getEnv("SESSION_COOKIE_NAME", "storefront_session"),
		SessionCookieSecure: getBoolEnv("SESSION_COOKIE_SECURE", false),

		CORSOrigins: getEnv("CORS_ORIGINS", "http://localhost:5173"),

		CommentMaxDepth:    getIntEnv("COMMENT_MAX_DEPTH", 3),
		CommentMaxChildren: getIntEnv("COMMENT_MAX_CHILDREN", 3),

		DefaultLocale: strings.ToLower(getEnv("DEFAULT_LOCALE", "ru")),
	}
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.ParseBool(value)
		if err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		parsed, err := time.ParseDuration(value)
		if err == nil {
			return parsed
		}
	}
	return defaultValue
}
