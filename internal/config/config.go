package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the configuration for one explode invocation.
// Source and Destination come from the command line; Settings may be
// pre-seeded from the defaults file and overridden by flags.
type Config struct {
	Source      string `yaml:"-"`           // Directory to explode (never read from file)
	Destination string `yaml:"destination"` // Default destination directory
	Settings    struct {
		Verbose bool `yaml:"verbose"` // Print progress lines
		DryRun  bool `yaml:"dry_run"` // Simulate only, no filesystem mutation
		Force   bool `yaml:"force"`   // Overwrite existing destination entries
	} `yaml:"settings"`
}

// New returns the default configuration.
func New() *Config {
	cfg := &Config{}
	cfg.Destination = "."
	return cfg
}

// LoadConfig loads configuration from the default location
// (~/.config/explode/config.yaml).
func LoadConfig() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	configPath := filepath.Join(home, ".config", "explode", "config.yaml")
	return LoadConfigFile(configPath)
}

// LoadConfigFile loads configuration from a specific file path.
// If the file doesn't exist, returns default configuration.
func LoadConfigFile(path string) (*Config, error) {
	cfg := New()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if file doesn't exist
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Unmarshal into a temporary config to preserve defaults for unset fields
	var tempCfg Config
	if err := yaml.Unmarshal(data, &tempCfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if tempCfg.Destination != "" {
		cfg.Destination = tempCfg.Destination
	}
	cfg.Settings = tempCfg.Settings

	return cfg, nil
}
