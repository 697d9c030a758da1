package config

import (
	"os"
	"time"
)

// Tokens stay valid for 7 days after login.
const TokenValidity = 7 * 24 * time.Hour

type Config struct {
	Port         string
	StoreBackend string
	DataDir      string
	DBDriver     string
	DBHost       string
	DBPort       string
	DBUser       string
	DBPassword   string
	DBName       string
	JWTSecret    string
	GinMode      string
}

func Load() *Config {
	return &Config{
		Port:         getEnv("PORT", "8080"),
		StoreBackend: getEnv("STORE_BACKEND", "db"),
		DataDir:      getEnv("DATA_DIR", "./data"),
		DBDriver:     getEnv("DB_DRIVER", "postgres"),
		DBHost:       getEnv("DB_HOST", "localhost"),
		DBPort:       getEnv("DB_PORT", "5432"),
		DBUser:       getEnv("DB_USER", "studyuser"),
		DBPassword:   getEnv("DB_PASSWORD", "studypassword"),
		DBName:       getEnv("DB_NAME", "study_log"),
		JWTSecret:    getEnv("JWT_SECRET", "default-secret-key-change-me"),
		GinMode:      getEnv("GIN_MODE", "debug"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
