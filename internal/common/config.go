// Package common provides shared utilities for Oxycare
package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds all configuration for the Oxycare client
type Config struct {
	Environment string        `toml:"environment"`
	API         APIConfig     `toml:"api"`
	Storage     StorageConfig `toml:"storage"`
	Notify      NotifyConfig  `toml:"notify"`
	Logging     LoggingConfig `toml:"logging"`
}

// APIConfig holds backend API connection configuration
type APIConfig struct {
	BaseURL        string `toml:"base_url"`
	Timeout        string `toml:"timeout"`
	RefreshTimeout string `toml:"refresh_timeout"` // timeout for the token refresh call specifically
	RateLimit      int    `toml:"rate_limit"`
}

// GetTimeout parses and returns the request timeout duration
func (c *APIConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

// GetRefreshTimeout parses and returns the refresh call timeout duration
func (c *APIConfig) GetRefreshTimeout() time.Duration {
	d, err := time.ParseDuration(c.RefreshTimeout)
	if err != nil {
		return 10 * time.Second
	}
	return d
}

// StorageConfig holds the local session store location
type StorageConfig struct {
	Path string `toml:"path"`
}

// NotifyConfig holds transient message configuration
type NotifyConfig struct {
	ClearAfter string `toml:"clear_after"` // duration string, default "5s"
}

// GetClearAfter parses and returns the message auto-clear delay
func (c *NotifyConfig) GetClearAfter() time.Duration {
	d, err := time.ParseDuration(c.ClearAfter)
	if err != nil {
		return 5 * time.Second
	}
	return d
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// NewDefaultConfig returns a Config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		API: APIConfig{
			BaseURL:        "http://localhost:5000/api",
			Timeout:        "30s",
			RefreshTimeout: "10s",
			RateLimit:      10,
		},
		Storage: StorageConfig{
			Path: "data/session",
		},
		Notify: NotifyConfig{
			ClearAfter: "5s",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// LoadConfig loads configuration from files with environment overrides
func LoadConfig(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	// Load and merge each config file in order (later files override earlier)
	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue // Skip missing files
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("OXYCARE_ENV"); env != "" {
		config.Environment = env
	}

	if url := os.Getenv("OXYCARE_API_URL"); url != "" {
		config.API.BaseURL = strings.TrimRight(url, "/")
	}

	if timeout := os.Getenv("OXYCARE_API_TIMEOUT"); timeout != "" {
		config.API.Timeout = timeout
	}

	if rl := os.Getenv("OXYCARE_API_RATE_LIMIT"); rl != "" {
		if n, err := strconv.Atoi(rl); err == nil {
			config.API.RateLimit = n
		}
	}

	if path := os.Getenv("OXYCARE_DATA_PATH"); path != "" {
		config.Storage.Path = path
	}

	if level := os.Getenv("OXYCARE_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	env := strings.ToLower(strings.TrimSpace(c.Environment))
	return env == "production" || env == "prod"
}
