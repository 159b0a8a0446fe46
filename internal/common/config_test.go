package common

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestConfig_DefaultBaseURL(t *testing.T) {
	cfg := NewDefaultConfig()
	if cfg.API.BaseURL != "http://localhost:5000/api" {
		t.Errorf("API.BaseURL default = %q, want %q", cfg.API.BaseURL, "http://localhost:5000/api")
	}
}

func TestConfig_BaseURLEnvOverride(t *testing.T) {
	t.Setenv("OXYCARE_API_URL", "https://api.oxycare.example/api/")

	cfg := NewDefaultConfig()
	applyEnvOverrides(cfg)

	// Trailing slash is trimmed so path joining stays predictable
	if cfg.API.BaseURL != "https://api.oxycare.example/api" {
		t.Errorf("API.BaseURL = %q after env override, want %q", cfg.API.BaseURL, "https://api.oxycare.example/api")
	}
}

func TestConfig_TimeoutDefaults(t *testing.T) {
	cfg := NewDefaultConfig()
	if got := cfg.API.GetTimeout(); got != 30*time.Second {
		t.Errorf("GetTimeout() = %v, want 30s", got)
	}
	if got := cfg.API.GetRefreshTimeout(); got != 10*time.Second {
		t.Errorf("GetRefreshTimeout() = %v, want 10s", got)
	}
	if got := cfg.Notify.GetClearAfter(); got != 5*time.Second {
		t.Errorf("GetClearAfter() = %v, want 5s", got)
	}
}

func TestConfig_InvalidDurationFallsBack(t *testing.T) {
	cfg := &APIConfig{Timeout: "not-a-duration", RefreshTimeout: ""}
	if got := cfg.GetTimeout(); got != 30*time.Second {
		t.Errorf("GetTimeout() with invalid value = %v, want 30s fallback", got)
	}
	if got := cfg.GetRefreshTimeout(); got != 10*time.Second {
		t.Errorf("GetRefreshTimeout() with empty value = %v, want 10s fallback", got)
	}
}

func TestLoadConfig_FileThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "oxycare.toml")
	content := `
environment = "staging"

[api]
base_url = "http://backend:5000/api"
rate_limit = 3

[notify]
clear_after = "2s"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("OXYCARE_API_RATE_LIMIT", "7")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}

	if cfg.Environment != "staging" {
		t.Errorf("Environment = %q, want staging", cfg.Environment)
	}
	if cfg.API.BaseURL != "http://backend:5000/api" {
		t.Errorf("API.BaseURL = %q, want file value", cfg.API.BaseURL)
	}
	if cfg.API.RateLimit != 7 {
		t.Errorf("API.RateLimit = %d, want env override 7", cfg.API.RateLimit)
	}
	if cfg.Notify.GetClearAfter() != 2*time.Second {
		t.Errorf("Notify.GetClearAfter() = %v, want 2s", cfg.Notify.GetClearAfter())
	}
}

func TestLoadConfig_MissingFileSkipped(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("LoadConfig with missing file returned error: %v", err)
	}
	if cfg.API.BaseURL != "http://localhost:5000/api" {
		t.Errorf("missing file should leave defaults, got %q", cfg.API.BaseURL)
	}
}

func TestConfig_IsProduction(t *testing.T) {
	cfg := NewDefaultConfig()
	if cfg.IsProduction() {
		t.Error("development config reported as production")
	}
	cfg.Environment = " Production "
	if !cfg.IsProduction() {
		t.Error("production config not detected")
	}
}
