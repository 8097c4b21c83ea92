package config

import (
	"os"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

type Config struct {
	Environment string
	Port        string
	RedisURL    string

	// Upstream fleet API
	FleetAPIURL     string
	FleetAPITimeout time.Duration

	// Refresh cycles
	DashboardRefreshInterval time.Duration
	AlertRefreshInterval     time.Duration

	// Rate limiting
	RateLimitRequest int
	RateLimitWindow  int // minutes
}

func Load() *Config {
	return &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Port:        getEnv("PORT", "8080"),
		RedisURL:    getEnv("REDIS_URL", "redis://localhost:6379"),

		// Upstream
		FleetAPIURL:     getEnv("FLEET_API_URL", "http://localhost:8000"),
		FleetAPITimeout: getEnvAsDuration("FLEET_API_TIMEOUT_SECONDS", 15*time.Second),

		// Refresh cycles
		DashboardRefreshInterval: getEnvAsDuration("DASHBOARD_REFRESH_SECONDS", 30*time.Second),
		AlertRefreshInterval:     getEnvAsDuration("ALERT_REFRESH_SECONDS", 10*time.Second),

		// Rate limiting
		RateLimitRequest: getEnvAsInt("RATE_LIMIT_REQUESTS", 100),
		RateLimitWindow:  getEnvAsInt("RATE_LIMIT_WINDOW_MINUTES", 1),
	}
}

func InitRedis(cfg *Config) *redis.Client {
	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		// Fallback to default config
		opt = &redis.Options{
			Addr:     "localhost:6379",
			Password: "",
			DB:       0,
		}
	}

	client := redis.NewClient(opt)
	return client
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if seconds, err := strconv.Atoi(value); err == nil && seconds > 0 {
			return time.Duration(seconds) * time.Second
		}
	}
	return defaultValue
}
