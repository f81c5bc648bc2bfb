package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/subosito/gotenv"
)

type Config struct {
	API       APIConfig
	Session   SessionConfig
	Cache     CacheConfig
	Log       LogConfig
	Telemetry TelemetryConfig
}

type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

type SessionConfig struct {
	// File holding the bearer token. Empty file or missing file means logged out.
	TokenPath string
	// Path of the UI preferences file (theme).
	PreferencesPath string
}

type CacheConfig struct {
	// Backend is "memory" or "redis".
	Backend  string
	RedisURL string
	TTL      time.Duration
}

type LogConfig struct {
	Level       string
	Environment string
}

type TelemetryConfig struct {
	Enabled      bool
	ServiceName  string
	OTLPEndpoint string
	MetricsPort  string
}

func Load() (*Config, error) {
	// .env is optional; real env vars win either way.
	_ = gotenv.Load()

	timeout, err := time.ParseDuration(getEnv("SALARY_HTTP_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid SALARY_HTTP_TIMEOUT: %w", err)
	}

	cacheTTL, err := time.ParseDuration(getEnv("SALARY_CACHE_TTL", "60s"))
	if err != nil {
		return nil, fmt.Errorf("invalid SALARY_CACHE_TTL: %w", err)
	}

	stateDir, err := defaultStateDir()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		API: APIConfig{
			BaseURL: strings.TrimRight(getEnv("SALARY_API_URL", ""), "/"),
			Timeout: timeout,
		},
		Session: SessionConfig{
			TokenPath:       getEnv("SALARY_SESSION_FILE", filepath.Join(stateDir, "session")),
			PreferencesPath: getEnv("SALARY_PREFERENCES_FILE", filepath.Join(stateDir, "preferences")),
		},
		Cache: CacheConfig{
			Backend:  strings.ToLower(getEnv("SALARY_CACHE_BACKEND", "memory")),
			RedisURL: getEnv("SALARY_REDIS_URL", "localhost:6379"),
			TTL:      cacheTTL,
		},
		Log: LogConfig{
			Level:       getEnv("LOG_LEVEL", "info"),
			Environment: strings.ToLower(getEnv("APP_ENV", "development")),
		},
		Telemetry: TelemetryConfig{
			Enabled:      getBoolEnv("OTEL_ENABLED", false),
			ServiceName:  getEnv("OTEL_SERVICE_NAME", "manage-salary-cli"),
			OTLPEndpoint: getEnv("OTEL_EXPORTER_ENDPOINT", "localhost:4317"),
			MetricsPort:  getEnv("OTEL_METRICS_PORT", "9464"),
		},
	}

	// Validate required fields
	if cfg.API.BaseURL == "" {
		return nil, fmt.Errorf("SALARY_API_URL is required")
	}
	if cfg.Cache.Backend != "memory" && cfg.Cache.Backend != "redis" {
		return nil, fmt.Errorf("SALARY_CACHE_BACKEND must be \"memory\" or \"redis\", got %q", cfg.Cache.Backend)
	}
	if cfg.Cache.Backend == "redis" && cfg.Cache.RedisURL == "" {
		return nil, fmt.Errorf("SALARY_REDIS_URL is required when SALARY_CACHE_BACKEND=redis")
	}

	return cfg, nil
}

func defaultStateDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", "manage-salary"), nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	switch strings.ToLower(value) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultValue
}
