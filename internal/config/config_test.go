// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Endpoint != "http://localhost:5005/webhooks/rest/webhook" {
		t.Errorf("unexpected default endpoint: %s", cfg.Endpoint)
	}
	if cfg.TimeoutSeconds != 30 {
		t.Errorf("expected 30s default timeout, got %d", cfg.TimeoutSeconds)
	}
	if cfg.Theme != "dark" {
		t.Errorf("expected dark default theme, got %s", cfg.Theme)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestTimeout(t *testing.T) {
	cfg := Default()
	cfg.TimeoutSeconds = 12
	if got := cfg.Timeout(); got != 12*time.Second {
		t.Errorf("expected 12s, got %v", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"https endpoint", func(c *Config) { c.Endpoint = "https://bot.example.com/webhooks/rest/webhook" }, false},
		{"light theme", func(c *Config) { c.Theme = "light" }, false},
		{"empty endpoint", func(c *Config) { c.Endpoint = "" }, true},
		{"relative endpoint", func(c *Config) { c.Endpoint = "/webhooks/rest/webhook" }, true},
		{"bad scheme", func(c *Config) { c.Endpoint = "ftp://example.com/hook" }, true},
		{"zero timeout", func(c *Config) { c.TimeoutSeconds = 0 }, true},
		{"negative timeout", func(c *Config) { c.TimeoutSeconds = -5 }, true},
		{"unknown theme", func(c *Config) { c.Theme = "solarized" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := `
endpoint = "http://example.com:5005/webhooks/rest/webhook"
timeout_seconds = 45
theme = "light"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := Default()
	if err := LoadTOML(cfg, path); err != nil {
		t.Fatalf("LoadTOML failed: %v", err)
	}

	if cfg.Endpoint != "http://example.com:5005/webhooks/rest/webhook" {
		t.Errorf("endpoint not loaded: %s", cfg.Endpoint)
	}
	if cfg.TimeoutSeconds != 45 {
		t.Errorf("timeout not loaded: %d", cfg.TimeoutSeconds)
	}
	if cfg.Theme != "light" {
		t.Errorf("theme not loaded: %s", cfg.Theme)
	}
	// Unmentioned keys keep defaults.
	if cfg.ExportDir != "." {
		t.Errorf("export dir should keep default: %s", cfg.ExportDir)
	}
}

func TestLoadTOMLMissingFile(t *testing.T) {
	cfg := Default()
	if err := LoadTOML(cfg, filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("TALK2ME_ENDPOINT", "http://override:5005/hook")
	t.Setenv("TALK2ME_DB", "/tmp/override.db")
	t.Setenv("TALK2ME_TIMEOUT_SECONDS", "90")
	t.Setenv("TALK2ME_THEME", "light")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	if cfg.Endpoint != "http://override:5005/hook" {
		t.Errorf("endpoint override not applied: %s", cfg.Endpoint)
	}
	if cfg.DatabasePath != "/tmp/override.db" {
		t.Errorf("db override not applied: %s", cfg.DatabasePath)
	}
	if cfg.TimeoutSeconds != 90 {
		t.Errorf("timeout override not applied: %d", cfg.TimeoutSeconds)
	}
	if cfg.Theme != "light" {
		t.Errorf("theme override not applied: %s", cfg.Theme)
	}
}

func TestApplyEnvOverridesBadTimeout(t *testing.T) {
	t.Setenv("TALK2ME_TIMEOUT_SECONDS", "soon")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	if cfg.TimeoutSeconds != 30 {
		t.Errorf("unparseable timeout should keep default, got %d", cfg.TimeoutSeconds)
	}
}

func TestSaveTOMLRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	cfg := Default()
	cfg.Endpoint = "http://bot.local:5005/webhooks/rest/webhook"
	cfg.Theme = "light"

	if err := SaveTOML(cfg, path); err != nil {
		t.Fatalf("SaveTOML failed: %v", err)
	}

	loaded := Default()
	if err := LoadTOML(loaded, path); err != nil {
		t.Fatalf("LoadTOML failed: %v", err)
	}
	if loaded.Endpoint != cfg.Endpoint || loaded.Theme != cfg.Theme {
		t.Errorf("round trip mismatch: %+v vs %+v", loaded, cfg)
	}
}
