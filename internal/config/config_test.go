package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Search.BaseURL != "https://soundcloud.com" {
		t.Errorf("unexpected base URL: %q", cfg.Search.BaseURL)
	}
	if cfg.Search.TimeoutSeconds != 10 {
		t.Errorf("expected default timeout 10, got %d", cfg.Search.TimeoutSeconds)
	}
	if cfg.Search.CacheSize != 100 {
		t.Errorf("expected default cache size 100, got %d", cfg.Search.CacheSize)
	}
	if cfg.Stream.URLTemplate != "https://api.soundcloud.com/tracks/%s/stream" {
		t.Errorf("unexpected stream template: %q", cfg.Stream.URLTemplate)
	}
	if cfg.History.Path == "" {
		t.Error("expected a default history path")
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("STRUM_SEARCH_BASE_URL", "https://mirror.example")
	t.Setenv("STRUM_SEARCH_CACHE_SIZE", "5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Search.BaseURL != "https://mirror.example" {
		t.Errorf("expected env override for base URL, got %q", cfg.Search.BaseURL)
	}
	if cfg.Search.CacheSize != 5 {
		t.Errorf("expected env override for cache size, got %d", cfg.Search.CacheSize)
	}
}

func TestSaveRoundTrips(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	cfg.Search.BaseURL = "https://mirror.example"
	cfg.Search.CacheSize = 42
	if err := cfg.Save(); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	configFile := filepath.Join(GetConfigDir(), "config.yaml")
	if _, err := os.Stat(configFile); err != nil {
		t.Fatalf("expected config file at %s: %v", configFile, err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("failed to reload config: %v", err)
	}
	if loaded.Search.BaseURL != "https://mirror.example" {
		t.Errorf("expected saved base URL, got %q", loaded.Search.BaseURL)
	}
	if loaded.Search.CacheSize != 42 {
		t.Errorf("expected saved cache size, got %d", loaded.Search.CacheSize)
	}
}

func TestGetConfigDirUnderHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := GetConfigDir()
	if dir != filepath.Join(home, ".config", "strum") {
		t.Errorf("unexpected config dir: %q", dir)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("expected config dir to be created: %v", err)
	}
}
