package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "voxa.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadParsesAndDefaults(t *testing.T) {
	path := writeConfig(t, `
api:
  key: file-key
  base_url: https://api.example.com
  timeout_seconds: 10
  max_retries: 5
  poll_interval_seconds: 1
jobs:
  redis_url: redis://localhost:6379/0
`)
	t.Setenv("VOXA_API_KEY", "")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.API.Key != "file-key" {
		t.Errorf("Key = %q, want file-key", cfg.API.Key)
	}
	if cfg.API.Timeout() != 10*time.Second {
		t.Errorf("Timeout = %v, want 10s", cfg.API.Timeout())
	}
	if cfg.API.PollInterval() != time.Second {
		t.Errorf("PollInterval = %v, want 1s", cfg.API.PollInterval())
	}
	if cfg.API.MaxRetries != 5 {
		t.Errorf("MaxRetries = %d, want 5", cfg.API.MaxRetries)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Level = %q, want default info", cfg.Logging.Level)
	}
	if cfg.Jobs.RedisURL != "redis://localhost:6379/0" {
		t.Errorf("RedisURL = %q", cfg.Jobs.RedisURL)
	}
}

func TestLoadExpandsEnvironment(t *testing.T) {
	t.Setenv("TEST_VOXA_BASE", "https://staging.example.com")
	path := writeConfig(t, `
api:
  base_url: ${TEST_VOXA_BASE}
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.API.BaseURL != "https://staging.example.com" {
		t.Errorf("BaseURL = %q, want expanded env value", cfg.API.BaseURL)
	}
}

func TestLoadEnvKeyOverridesFile(t *testing.T) {
	path := writeConfig(t, `
api:
  key: file-key
`)
	t.Setenv("VOXA_API_KEY", "env-key")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.API.Key != "env-key" {
		t.Errorf("Key = %q, want the environment to win", cfg.API.Key)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("VOXA_API_KEY", "env-only-key")

	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.API.Key != "env-only-key" {
		t.Errorf("Key = %q, want env-only-key", cfg.API.Key)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Level = %q, want info", cfg.Logging.Level)
	}
}
