// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for
// talk2me-tui.
//
// Configuration sources, in order of precedence:
//   - Environment variables (TALK2ME_*)
//   - ~/.talk2me/config.toml
//   - Built-in defaults
package config

import (
	"bytes"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/suhasdevmane/talk2me-tui/internal/util"
)

// =============================================================================
// CONFIG STRUCTURE
// =============================================================================

// Config represents the complete talk2me-tui configuration.
type Config struct {
	// Endpoint is the conversational agent webhook URL.
	Endpoint string `toml:"endpoint"`

	// TimeoutSeconds bounds each webhook request.
	TimeoutSeconds int `toml:"timeout_seconds"`

	// DatabasePath is the local record store location.
	// Empty means ~/.talk2me/talk2me.db.
	DatabasePath string `toml:"database_path"`

	// ExportDir is where chatHistory.json / chatHistory.md are written.
	ExportDir string `toml:"export_dir"`

	// Theme selects the UI color theme: "dark" or "light".
	Theme string `toml:"theme"`
}

// Default returns the built-in default configuration.
func Default() *Config {
	return &Config{
		Endpoint:       "http://localhost:5005/webhooks/rest/webhook",
		TimeoutSeconds: 30,
		DatabasePath:   "", // resolved by the storage package
		ExportDir:      ".",
		Theme:          "dark",
	}
}

// Timeout returns the webhook timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// =============================================================================
// LOADING
// =============================================================================

// ConfigPath returns the config file location (~/.talk2me/config.toml).
func ConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".talk2me", "config.toml"), nil
}

// Load builds the effective configuration: defaults, overlaid with the TOML
// file when present, overlaid with environment overrides, then validated.
// A missing config file is not an error.
func Load() (*Config, error) {
	cfg := Default()

	path, err := ConfigPath()
	if err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			if err := LoadTOML(cfg, path); err != nil {
				return nil, fmt.Errorf("failed to load config: %w", err)
			}
		}
	}

	cfg.ApplyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// LoadTOML merges a TOML file into the config.
func LoadTOML(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return toml.Unmarshal(data, cfg)
}

// ApplyEnvOverrides applies TALK2ME_* environment variables on top of the
// loaded values. Unparseable numeric overrides are ignored rather than
// fatal.
func (c *Config) ApplyEnvOverrides() {
	if endpoint := os.Getenv("TALK2ME_ENDPOINT"); endpoint != "" {
		c.Endpoint = endpoint
	}
	if db := os.Getenv("TALK2ME_DB"); db != "" {
		c.DatabasePath = db
	}
	if dir := os.Getenv("TALK2ME_EXPORT_DIR"); dir != "" {
		c.ExportDir = dir
	}
	if theme := os.Getenv("TALK2ME_THEME"); theme != "" {
		c.Theme = theme
	}
	if timeout := os.Getenv("TALK2ME_TIMEOUT_SECONDS"); timeout != "" {
		if secs, err := strconv.Atoi(timeout); err == nil && secs > 0 {
			c.TimeoutSeconds = secs
		}
	}
}

// Validate checks the configuration for usable values.
func (c *Config) Validate() error {
	parsed, err := url.Parse(c.Endpoint)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("endpoint %q is not a valid URL", c.Endpoint)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("endpoint scheme %q is not supported", parsed.Scheme)
	}

	if c.TimeoutSeconds <= 0 {
		return fmt.Errorf("timeout_seconds must be positive, got %d", c.TimeoutSeconds)
	}

	if c.Theme != "dark" && c.Theme != "light" {
		return fmt.Errorf("theme %q is not supported (dark, light)", c.Theme)
	}

	return nil
}

// =============================================================================
// SAVING
// =============================================================================

// Save writes the configuration to the default location atomically.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return SaveTOML(cfg, path)
}

// SaveTOML writes the configuration as TOML to a path.
func SaveTOML(cfg *Config, path string) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return util.AtomicWriteFile(path, buf.Bytes(), 0644)
}
