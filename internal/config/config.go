package config

import (
	"os"
	"strings"
)

// Config carries everything the process reads from the environment.
// main loads .env first (when present), so a plain text file next to the
// binary is enough to configure a shop machine.
type Config struct {
	ListenAddr        string
	DatabasePath      string
	JWTSecret         string
	LogLevel          string
	Environment       string
	AllowRegistration bool
	AdminUser         string
	AdminPassword     string
	GeminiAPIKey      string
	CORSOrigins       []string
}

// Load reads the configuration with sensible local defaults.
func Load() *Config {
	return &Config{
		ListenAddr:        getEnv("LISTEN_ADDR", ":8080"),
		DatabasePath:      getEnv("DB_PATH", "puntoventa.db"),
		JWTSecret:         getEnv("JWT_SECRET", "change-me-in-production"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		Environment:       getEnv("APP_ENV", "development"),
		AllowRegistration: getEnv("ALLOW_REGISTRATION", "") == "true",
		AdminUser:         getEnv("ADMIN_USER", "admin"),
		AdminPassword:     getEnv("ADMIN_PASSWORD", "admin123"),
		GeminiAPIKey:      os.Getenv("GEMINI_API_KEY"),
		CORSOrigins:       strings.Split(getEnv("CORS_ORIGINS", "http://localhost:5173"), ","),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
