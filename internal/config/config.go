package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"Plox/internal/logger"
)

// Config holds the complete application configuration
type Config struct {
	Log    LogConfig    `toml:"log"`
	Server ServerConfig `toml:"server"`
	Repl   ReplConfig   `toml:"repl"`
	Render RenderConfig `toml:"render"`
}

type LogConfig struct {
	Dir   string `toml:"dir"`
	Level string `toml:"level"`
}

type ServerConfig struct {
	Addr string `toml:"addr"`
}

type ReplConfig struct {
	Prompt      string `toml:"prompt"`
	HistoryFile string `toml:"history_file"`
}

type RenderConfig struct {
	Color bool `toml:"color"`
}

var ErrNotFound = errors.New("config file not found")

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadFromEnv loads the file named by PLOX_CONFIG, falling back to
// ./plox.toml and then to Default.
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv("PLOX_CONFIG"); path != "" {
		return Load(path)
	}

	if _, err := os.Stat("plox.toml"); err == nil {
		return Load("plox.toml")
	}

	return Default(), nil
}

func (c *Config) applyDefaults() {
	if c.Log.Dir == "" {
		c.Log.Dir = "logs"
	}
	if c.Log.Level == "" {
		c.Log.Level = "error"
	}
	if c.Server.Addr == "" {
		c.Server.Addr = "localhost:8080"
	}
	if c.Repl.Prompt == "" {
		c.Repl.Prompt = "> "
	}
	if c.Repl.HistoryFile == "" {
		c.Repl.HistoryFile = filepath.Join(os.TempDir(), ".plox_history")
	}
}

func (c *Config) Validate() error {
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid [log] level: %w", err)
	}
	return nil
}

// LogLevel returns the parsed [log] level. Validate has already rejected
// unknown names for loaded configs.
func (c *Config) LogLevel() logger.LogLevel {
	level, err := logger.ParseLevel(c.Log.Level)
	if err != nil {
		return logger.ERROR
	}
	return level
}
