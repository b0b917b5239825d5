package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port          string
	APIPrefix     string
	FrontendURL   string
	MobileAppURL  string
	ThrottleTTL   time.Duration
	ThrottleLimit int
	SeedOnStart   bool
}

func LoadConfig() *Config {
	return &Config{
		Port:          getEnv("PORT", "3000"),
		APIPrefix:     getEnv("API_PREFIX", "api/v1"),
		FrontendURL:   getEnv("FRONTEND_URL", "http://localhost:3001"),
		MobileAppURL:  getEnv("MOBILE_APP_URL", "exp://localhost:19000"),
		ThrottleTTL:   time.Duration(getEnvInt("THROTTLE_TTL", 60)) * time.Second,
		ThrottleLimit: getEnvInt("THROTTLE_LIMIT", 100),
		SeedOnStart:   getEnv("SEED_ON_START", "false") == "true",
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
