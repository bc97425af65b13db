// Package config loads service configuration from the environment with
// sane development defaults.
package config

import (
	"os"
	"time"
)

type Config struct {
	Port        string
	Environment string

	// BackendURL is the base URL of the wiki REST API this service
	// proxies.
	BackendURL string

	// PublicOrigin is the origin relative href/src values resolve
	// against during sanitization.
	PublicOrigin string

	// CacheTTL is the freshness window for backend payloads.
	CacheTTL time.Duration

	CORSOrigins string
}

func Load() *Config {
	return &Config{
		Port:         getEnv("PORT", "8080"),
		Environment:  getEnv("ENVIRONMENT", "dev"),
		BackendURL:   getEnv("BACKEND_URL", "http://localhost:9090"),
		PublicOrigin: getEnv("PUBLIC_ORIGIN", "http://localhost:8080"),
		CacheTTL:     getDuration("CACHE_TTL", 5*time.Minute),
		CORSOrigins:  getEnv("CORS_ORIGINS", "http://localhost:3000"),
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

// getDuration parses a duration from the environment; malformed values
// fall back to the default rather than failing startup.
func getDuration(key string, defaultValue time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return defaultValue
	}
	return d
}
