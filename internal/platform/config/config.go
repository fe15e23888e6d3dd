// Package config loads service configuration from the environment so main
// stays lean.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config aggregates all runtime configuration.
type Config struct {
	Server   Server
	Postgres Postgres
	Redis    Redis
	Analyzer Analyzer
}

// Server captures HTTP server level configuration.
type Server struct {
	Addr            string
	ShutdownTimeout time.Duration
}

// Postgres captures the process store connection settings.
// An empty URL selects the in-memory store.
type Postgres struct {
	URL string
}

// Redis captures the pending-patch store connection settings.
// An empty URL selects the in-memory fallback.
type Redis struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Analyzer captures the external document-analysis service settings.
type Analyzer struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// PendingPatchTTL bounds how long an unsaved merge patch is retained for retry.
const PendingPatchTTL = 72 * time.Hour

// FromEnv builds the full configuration from environment variables.
func FromEnv() Config {
	return Config{
		Server: Server{
			Addr:            envOr("DOSSIER_ADDR", ":8080"),
			ShutdownTimeout: envDuration("DOSSIER_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Postgres: Postgres{
			URL: os.Getenv("DOSSIER_POSTGRES_URL"),
		},
		Redis: Redis{
			URL:          os.Getenv("DOSSIER_REDIS_URL"),
			PoolSize:     envInt("DOSSIER_REDIS_POOL_SIZE", 10),
			MinIdleConns: envInt("DOSSIER_REDIS_MIN_IDLE", 2),
			DialTimeout:  envDuration("DOSSIER_REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  envDuration("DOSSIER_REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: envDuration("DOSSIER_REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		Analyzer: Analyzer{
			BaseURL: os.Getenv("DOSSIER_ANALYZER_URL"),
			APIKey:  os.Getenv("DOSSIER_ANALYZER_API_KEY"),
			Timeout: envDuration("DOSSIER_ANALYZER_TIMEOUT", 60*time.Second),
		},
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
