package config

import (
	"testing"
	"time"
)

func setRequiredEnvVars(t *testing.T) {
	t.Helper()
	t.Setenv("SALARY_API_URL", "https://api.example.test")
}

func TestLoad_Success(t *testing.T) {
	setRequiredEnvVars(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.API.BaseURL != "https://api.example.test" {
		t.Errorf("API.BaseURL = %q, want %q", cfg.API.BaseURL, "https://api.example.test")
	}
	if cfg.API.Timeout != 30*time.Second {
		t.Errorf("API.Timeout = %v, want %v", cfg.API.Timeout, 30*time.Second)
	}
	if cfg.Cache.Backend != "memory" {
		t.Errorf("Cache.Backend = %q, want %q", cfg.Cache.Backend, "memory")
	}
	if cfg.Cache.TTL != 60*time.Second {
		t.Errorf("Cache.TTL = %v, want %v", cfg.Cache.TTL, 60*time.Second)
	}
}

func TestLoad_TrimsTrailingSlash(t *testing.T) {
	t.Setenv("SALARY_API_URL", "https://api.example.test/")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.API.BaseURL != "https://api.example.test" {
		t.Errorf("API.BaseURL = %q, want trailing slash removed", cfg.API.BaseURL)
	}
}

func TestLoad_MissingAPIURL(t *testing.T) {
	t.Setenv("SALARY_API_URL", "")

	_, err := Load()
	if err == nil {
		t.Error("Load() expected error for missing SALARY_API_URL, got nil")
	}
}

func TestLoad_InvalidTimeout(t *testing.T) {
	setRequiredEnvVars(t)
	t.Setenv("SALARY_HTTP_TIMEOUT", "not-a-duration")

	_, err := Load()
	if err == nil {
		t.Error("Load() expected error for invalid SALARY_HTTP_TIMEOUT, got nil")
	}
}

func TestLoad_InvalidCacheBackend(t *testing.T) {
	setRequiredEnvVars(t)
	t.Setenv("SALARY_CACHE_BACKEND", "memcached")

	_, err := Load()
	if err == nil {
		t.Error("Load() expected error for unsupported SALARY_CACHE_BACKEND, got nil")
	}
}

func TestLoad_RedisBackend(t *testing.T) {
	setRequiredEnvVars(t)
	t.Setenv("SALARY_CACHE_BACKEND", "redis")
	t.Setenv("SALARY_REDIS_URL", "redis.internal:6379")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Cache.RedisURL != "redis.internal:6379" {
		t.Errorf("Cache.RedisURL = %q, want %q", cfg.Cache.RedisURL, "redis.internal:6379")
	}
}

func TestLoad_SessionFileOverride(t *testing.T) {
	setRequiredEnvVars(t)
	t.Setenv("SALARY_SESSION_FILE", "/tmp/salary-session")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Session.TokenPath != "/tmp/salary-session" {
		t.Errorf("Session.TokenPath = %q, want %q", cfg.Session.TokenPath, "/tmp/salary-session")
	}
}
