package config

import (
	"os"
	"time"
)

var JWTSecret []byte
var AccessTokenExpiry time.Duration
var RefreshTokenExpiry time.Duration

func init() {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "your-secret-key-change-this-in-production"
	}
	JWTSecret = []byte(secret)
	AccessTokenExpiry = parseExpiry("JWT_EXPIRES_IN", 15*time.Minute)
	RefreshTokenExpiry = parseExpiry("JWT_REFRESH_EXPIRES_IN", 168*time.Hour)
}

func parseExpiry(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
