package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultAppName  = "Brookbank"
	defaultAppEnv   = "development"
	defaultLogLevel = "info"
	defaultCurrency = "USD"
)

var knownEnvs = map[string]bool{
	"development": true,
	"staging":     true,
	"production":  true,
}

// Config captures application runtime configuration loaded from environment
// variables.
type Config struct {
	AppName  string
	AppEnv   string
	LogLevel string
	Currency string
}

// Load reads configuration from the environment, after merging in a .env
// file when one is present, and populates a Config instance.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		AppName:  getEnv("APP_NAME", defaultAppName),
		AppEnv:   strings.ToLower(getEnv("APP_ENV", defaultAppEnv)),
		LogLevel: strings.ToLower(getEnv("LOG_LEVEL", defaultLogLevel)),
		Currency: strings.ToUpper(getEnv("CURRENCY", defaultCurrency)),
	}

	if !knownEnvs[cfg.AppEnv] {
		return Config{}, fmt.Errorf("unknown APP_ENV %q", cfg.AppEnv)
	}
	if len(cfg.Currency) != 3 {
		return Config{}, fmt.Errorf("CURRENCY must be a 3-letter code, got %q", cfg.Currency)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
