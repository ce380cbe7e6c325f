// Package config provides configuration for the studio service.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the studio configuration.
type Config struct {
	// Server settings
	HTTPPort int

	// Storage
	DatabaseURL     string
	StorageCapacity int // max bytes per stored value

	// LLM backend
	LLMBaseURL string
	LLMAPIKey  string
	LLMModel   string
	LLMTimeout time.Duration

	// Policy
	PolicyFile string

	// Logging
	LogLevel string
}

// Load loads configuration from environment variables.
func Load() *Config {
	cfg := &Config{
		HTTPPort:        getEnvInt("HTTP_PORT", 8080),
		DatabaseURL:     getEnv("DATABASE_URL", "file:studio.db?cache=shared&mode=rwc"),
		StorageCapacity: getEnvInt("STORAGE_CAPACITY_BYTES", 0),
		LLMBaseURL:      getEnv("LLM_BASE_URL", "http://localhost:4000"),
		LLMAPIKey:       getEnv("LLM_API_KEY", ""),
		LLMModel:        getEnv("LLM_MODEL", "gpt-4o-mini"),
		LLMTimeout:      time.Duration(getEnvInt("LLM_TIMEOUT_MS", 120000)) * time.Millisecond,
		PolicyFile:      getEnv("STUDIO_POLICY_FILE", ""),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
	}
	return cfg
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
	}
	return defaultVal
}
