package config

import "os"

type Config struct {
	DatabasePath string
	LogLevel     string
	Port         string
}

func Load() Config {
	return Config{
		DatabasePath: envOrDefault("DATABASE_PATH", "./data/rooma.db"),
		LogLevel:     envOrDefault("LOG_LEVEL", "info"),
		Port:         envOrDefault("PORT", "5000"),
	}
}

func envOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
