// Package config loads runtime settings from the environment and an optional .env file.
package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DefaultDatabaseURL    = "sqlite:///./jobtrackr.db"
	DefaultAllowedOrigins = "http://localhost:3000"
)

type Config struct {
	DatabaseURL    string
	AllowedOrigins []string
	Port           string
	LogLevel       string
	LogFormat      string
}

// Load reads .env (if present) and then the process environment.
func Load() *Config {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("DATABASE_URL", DefaultDatabaseURL)
	v.SetDefault("ALLOWED_ORIGINS", DefaultAllowedOrigins)
	v.SetDefault("PORT", "8000")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")

	return &Config{
		DatabaseURL:    v.GetString("DATABASE_URL"),
		AllowedOrigins: ParseOrigins(v.GetString("ALLOWED_ORIGINS")),
		Port:           v.GetString("PORT"),
		LogLevel:       strings.ToLower(v.GetString("LOG_LEVEL")),
		LogFormat:      strings.ToLower(v.GetString("LOG_FORMAT")),
	}
}

// ParseOrigins splits a comma-separated origin list, dropping blanks.
// An empty result falls back to the default local origin.
func ParseOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		return []string{DefaultAllowedOrigins}
	}
	return origins
}
