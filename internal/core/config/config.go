// Package config handles configuration loading and validation for reelmood.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/reelmood/reelmood/internal/core/styles"
)

// DefaultEndpoint matches the demo backend's default listen address.
const DefaultEndpoint = "http://localhost:10000"

// Config holds the application configuration.
type Config struct {
	// Endpoint is the base URL of the sentiment backend.
	Endpoint string `yaml:"endpoint"`
	// Theme names a built-in color palette.
	Theme string `yaml:"theme"`
	// TimeoutSeconds bounds each backend request. The demo UI itself has
	// no cancellation; this is the only thing keeping a hung request from
	// pinning the Busy state forever.
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		Endpoint:       DefaultEndpoint,
		Theme:          styles.DefaultTheme,
		TimeoutSeconds: 30,
	}
}

// Load reads the config file at configPath, falling back to defaults when
// the file does not exist. Zero values are backfilled with defaults before
// validation.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults backfills zero values left by a partial config file.
func (c *Config) applyDefaults() {
	def := DefaultConfig()
	if c.Endpoint == "" {
		c.Endpoint = def.Endpoint
	}
	if c.Theme == "" {
		c.Theme = def.Theme
	}
	if c.TimeoutSeconds == 0 {
		c.TimeoutSeconds = def.TimeoutSeconds
	}
}

// RequestTimeout returns the per-request timeout as a duration.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
