package config

import (
	"os"
)

type Config struct {
	Port         string
	Environment  string
	DatabaseURL  string
	DatabaseName string
	CORSOrigins  string
}

func Load() *Config {
	return &Config{
		Port:         getEnv("PORT", "8000"),
		Environment:  getEnv("ENVIRONMENT", "dev"),
		DatabaseURL:  getEnv("DATABASE_URL", ""),
		DatabaseName: getEnv("DATABASE_NAME", "seedcodes"),
		CORSOrigins:  getEnv("CORS_ORIGINS", "*"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
