package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config defines the clock configuration.
type Config struct {
	DB    DBConfig    `yaml:"db"`
	Log   LogConfig   `yaml:"log"`
	Watch WatchConfig `yaml:"watch"`
}

type DBConfig struct {
	Path string `yaml:"path"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	// Path is a log file; empty logs to stderr.
	Path string `yaml:"path"`
}

type WatchConfig struct {
	// Interval is the refresh period in seconds.
	Interval int `yaml:"interval"`
}

// RefreshInterval returns the watch interval as a duration.
func (w WatchConfig) RefreshInterval() time.Duration {
	return time.Duration(w.Interval) * time.Second
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		DB: DBConfig{
			Path: "~/.clockdb",
		},
		Log: LogConfig{
			Level: "warn",
		},
		Watch: WatchConfig{
			Interval: 1,
		},
	}
}

// Load reads configuration from an optional YAML file and environment variables.
// path overrides CLOCK_CONFIG_PATH when non-empty.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("CLOCK_CONFIG_PATH")
	}
	if path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if dbPath := os.Getenv("CLOCK_DB_PATH"); dbPath != "" {
		cfg.DB.Path = dbPath
	}
	if level := os.Getenv("CLOCK_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if logPath := os.Getenv("CLOCK_LOG_PATH"); logPath != "" {
		cfg.Log.Path = logPath
	}
	if intervalStr := os.Getenv("CLOCK_WATCH_INTERVAL"); intervalStr != "" {
		interval, err := strconv.Atoi(intervalStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid CLOCK_WATCH_INTERVAL: %w", err)
		}
		cfg.Watch.Interval = interval
	}

	if cfg.Watch.Interval <= 0 {
		return Config{}, fmt.Errorf("watch interval must be positive, got %d", cfg.Watch.Interval)
	}

	expanded, err := ExpandHome(cfg.DB.Path)
	if err != nil {
		return Config{}, err
	}
	cfg.DB.Path = expanded

	return cfg, nil
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
