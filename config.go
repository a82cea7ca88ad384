package main

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all configuration for the inventory service. Database
// credentials are read by the database package itself.
type Config struct {
	Port               string
	Env                string
	JWTSecret          string
	RedisAddr          string
	RedisPassword      string
	CacheTTLSeconds    int
	LowStockThreshold  int
	RateLimitPerSecond int
	RateLimitBurst     int
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		Env:                getEnv("APP_ENV", "development"),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		RedisAddr:          os.Getenv("REDIS_ADDR"),
		RedisPassword:      os.Getenv("REDIS_PASSWORD"),
		CacheTTLSeconds:    getEnvInt("CACHE_TTL_SECONDS", 300),
		LowStockThreshold:  getEnvInt("LOW_STOCK_THRESHOLD", 10),
		RateLimitPerSecond: getEnvInt("RATE_LIMIT_PER_SECOND", 20),
		RateLimitBurst:     getEnvInt("RATE_LIMIT_BURST", 40),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return fallback
}
