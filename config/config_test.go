package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultMatchesSpecDefaults(t *testing.T) {
	cfg := Default()
	if cfg.MaxCallDepth != 1000 {
		t.Errorf("got MaxCallDepth %d, want 1000", cfg.MaxCallDepth)
	}
	if cfg.LogLevel != "warning" {
		t.Errorf("got LogLevel %q, want %q", cfg.LogLevel, "warning")
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("maxCallDepth: 50\nlogLevel: debug\n"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.MaxCallDepth != 50 {
		t.Errorf("got MaxCallDepth %d, want 50", cfg.MaxCallDepth)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("got LogLevel %q, want %q", cfg.LogLevel, "debug")
	}
}

func TestLoadKeepsDefaultsForMissingFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("logLevel: error\n"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.MaxCallDepth != DefaultMaxCallDepth {
		t.Errorf("got MaxCallDepth %d, want default %d", cfg.MaxCallDepth, DefaultMaxCallDepth)
	}
	if cfg.LogLevel != "error" {
		t.Errorf("got LogLevel %q, want %q", cfg.LogLevel, "error")
	}
}

func TestLoadMissingFileReturnsError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatalf("expected an error for a missing config file")
	}
}
