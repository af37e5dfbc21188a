package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"Plox/internal/logger"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plox.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[log]
dir = "/tmp/plox-logs"
level = "debug"

[server]
addr = ":9090"

[render]
color = true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Log.Dir != "/tmp/plox-logs" {
		t.Errorf("Expected log dir /tmp/plox-logs, got %s", cfg.Log.Dir)
	}
	if cfg.LogLevel() != logger.DEBUG {
		t.Errorf("Expected DEBUG level, got %v", cfg.LogLevel())
	}
	if cfg.Server.Addr != ":9090" {
		t.Errorf("Expected addr :9090, got %s", cfg.Server.Addr)
	}
	if !cfg.Render.Color {
		t.Errorf("Expected color to be enabled")
	}
	if cfg.Repl.Prompt != "> " {
		t.Errorf("Expected default prompt, got %q", cfg.Repl.Prompt)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestLoadInvalidLevel(t *testing.T) {
	path := writeConfig(t, "[log]\nlevel = \"chatty\"\n")
	if _, err := Load(path); err == nil {
		t.Errorf("Expected invalid level to be rejected")
	}
}

func TestLoadMalformed(t *testing.T) {
	path := writeConfig(t, "[log\nlevel = ")
	if _, err := Load(path); err == nil {
		t.Errorf("Expected malformed TOML to be rejected")
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Log.Dir != "logs" || cfg.Server.Addr != "localhost:8080" {
		t.Errorf("Unexpected defaults: %+v", cfg)
	}
	if cfg.LogLevel() != logger.ERROR {
		t.Errorf("Expected default level ERROR, got %v", cfg.LogLevel())
	}
	if cfg.Render.Color {
		t.Errorf("Expected color disabled by default")
	}
}

func TestLoadFromEnv(t *testing.T) {
	path := writeConfig(t, "[server]\naddr = \"127.0.0.1:7000\"\n")
	t.Setenv("PLOX_CONFIG", path)

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv failed: %v", err)
	}
	if cfg.Server.Addr != "127.0.0.1:7000" {
		t.Errorf("Expected addr from PLOX_CONFIG, got %s", cfg.Server.Addr)
	}
}
