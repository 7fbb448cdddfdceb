package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Fetcher.Timeout != 30*time.Second {
		t.Errorf("Fetcher.Timeout = %s, want 30s", cfg.Fetcher.Timeout)
	}
	if cfg.Fetcher.MaxBodyBytes != 10*1024*1024 {
		t.Errorf("Fetcher.MaxBodyBytes = %d, want 10MB", cfg.Fetcher.MaxBodyBytes)
	}
	if cfg.Worker.Count != 4 {
		t.Errorf("Worker.Count = %d, want 4", cfg.Worker.Count)
	}
	if cfg.Worker.QueueSize != 256 {
		t.Errorf("Worker.QueueSize = %d, want 256", cfg.Worker.QueueSize)
	}
	if cfg.Auth.Enabled {
		t.Error("Auth.Enabled = true, want false by default")
	}
	if cfg.RateLimit.RequestsPerSecond != 5.0 {
		t.Errorf("RateLimit.RequestsPerSecond = %f, want 5", cfg.RateLimit.RequestsPerSecond)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want json", cfg.Log.Format)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SITEGAUGE_PORT", "9090")
	t.Setenv("SITEGAUGE_FETCH_TIMEOUT", "5s")
	t.Setenv("SITEGAUGE_WORKERS", "8")
	t.Setenv("SITEGAUGE_AUTH_ENABLED", "true")
	t.Setenv("SITEGAUGE_API_KEYS", "key-a, key-b")
	t.Setenv("SITEGAUGE_DATA_DIR", "/var/lib/sitegauge")

	cfg := Load()

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Fetcher.Timeout != 5*time.Second {
		t.Errorf("Fetcher.Timeout = %s, want 5s", cfg.Fetcher.Timeout)
	}
	if cfg.Worker.Count != 8 {
		t.Errorf("Worker.Count = %d, want 8", cfg.Worker.Count)
	}
	if !cfg.Auth.Enabled {
		t.Error("Auth.Enabled = false, want true")
	}
	if len(cfg.Auth.APIKeys) != 2 || cfg.Auth.APIKeys[0] != "key-a" || cfg.Auth.APIKeys[1] != "key-b" {
		t.Errorf("Auth.APIKeys = %v, want [key-a key-b]", cfg.Auth.APIKeys)
	}
	if cfg.Store.DataDir != "/var/lib/sitegauge" {
		t.Errorf("Store.DataDir = %q", cfg.Store.DataDir)
	}
}

func TestLoad_InvalidEnvFallsBack(t *testing.T) {
	t.Setenv("SITEGAUGE_PORT", "not-a-number")
	t.Setenv("SITEGAUGE_FETCH_TIMEOUT", "soon")

	cfg := Load()

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want default 8080 on bad value", cfg.Server.Port)
	}
	if cfg.Fetcher.Timeout != 30*time.Second {
		t.Errorf("Fetcher.Timeout = %s, want default 30s on bad value", cfg.Fetcher.Timeout)
	}
}
