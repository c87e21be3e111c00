// Package config loads the optional config-store configuration file.
//
// The file is YAML and currently carries only the database location:
//
//	database:
//	  path: /var/lib/config-store/store.db
//
// Precedence is decided by the CLI: an explicit --db flag wins over the
// config file, which wins over the built-in default.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultDBPath is the database location used when neither the --db flag
// nor a config file provides one. /tmp means values persist for the
// lifetime of a boot, which is the intended deployment.
const DefaultDBPath = "/tmp/config-store.db"

// Config represents the complete config-store configuration.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
}

// DatabaseConfig holds database configuration.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Database: DatabaseConfig{Path: DefaultDBPath},
	}
}

// DefaultPath returns the default config file location,
// $XDG_CONFIG_HOME/config-store/config.yaml (falling back to
// ~/.config/config-store/config.yaml).
func DefaultPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "config-store", "config.yaml")
}

// Load reads and parses the config file at the given path.
// Unset fields fall back to the built-in defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = DefaultDBPath
	}

	return cfg, nil
}

// LoadDefault loads the config file from the default location if one
// exists. A missing file is not an error and yields the defaults.
func LoadDefault() (*Config, error) {
	path := DefaultPath()
	if path == "" {
		return Default(), nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}
