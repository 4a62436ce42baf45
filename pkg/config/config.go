package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port             string
	DatabaseURL      string
	JWTAccessSecret  string
	JWTRefreshSecret string
	JWTAccessExpiry  time.Duration
	JWTRefreshExpiry time.Duration
	FastAPIURL       string
	CloudinaryURL    string
	RedisAddr        string
	RecommendTTL     time.Duration
	CORSOrigin       string
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	return &Config{
		Port:             getEnv("PORT", "8080"),
		DatabaseURL:      getEnv("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=learning_buddy port=5432 sslmode=disable"),
		JWTAccessSecret:  getEnv("ACCESS_TOKEN_SECRET", "access-secret-change-in-production"),
		JWTRefreshSecret: getEnv("REFRESH_TOKEN_SECRET", "refresh-secret-change-in-production"),
		JWTAccessExpiry:  getDuration("ACCESS_TOKEN_EXPIRY", 15*time.Minute),
		JWTRefreshExpiry: getDuration("REFRESH_TOKEN_EXPIRY", 168*time.Hour),
		FastAPIURL:       getEnv("FASTAPI_URL", "http://localhost:8000"),
		CloudinaryURL:    getEnv("CLOUDINARY_URL", ""),
		RedisAddr:        getEnv("REDIS_ADDR", ""),
		RecommendTTL:     getDuration("RECOMMEND_CACHE_TTL", 15*time.Minute),
		CORSOrigin:       getEnv("CORS_ORIGIN", "*"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if raw := os.Getenv(key); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			return parsed
		}
	}
	return defaultValue
}
