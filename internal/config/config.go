// Package config manages showroom configuration and the .showroom profile
// directory. It handles loading, saving, and initializing the profile.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

const (
	ProfileDir   = ".showroom"
	ConfigFile   = "config"
	DatabaseFile = "showroom.db"
)

// Config represents the showroom profile configuration.
type Config struct {
	SeedURL string `toml:"seed_url"` // static JSON document used to seed an empty catalog
	Driver  string `toml:"driver"`   // kvstore driver: bolt or sqlite
	path    string // path to the .showroom directory
}

// FindRoot finds the .showroom directory by walking up from the current
// directory.
func FindRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		profilePath := filepath.Join(dir, ProfileDir)
		if info, err := os.Stat(profilePath); err == nil && info.IsDir() {
			return profilePath, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not a showroom profile (or any parent up to root)")
		}
		dir = parent
	}
}

// Load loads the configuration from the .showroom directory.
func Load() (*Config, error) {
	profilePath, err := FindRoot()
	if err != nil {
		return nil, err
	}

	configPath := filepath.Join(profilePath, ConfigFile)
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.path = profilePath
	return &cfg, nil
}

// Save saves the configuration to disk.
func (c *Config) Save() error {
	configPath := filepath.Join(c.path, ConfigFile)
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(configPath, data, 0644)
}

// ProfilePath returns the path to the .showroom directory.
func (c *Config) ProfilePath() string {
	return c.path
}

// DatabasePath returns the path to the embedded database.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.path, DatabaseFile)
}

// Initialize creates a new .showroom directory with initial configuration.
func Initialize(seedURL, driver string) (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	profilePath := filepath.Join(cwd, ProfileDir)

	// Check if already initialized
	if _, err := os.Stat(profilePath); err == nil {
		return nil, fmt.Errorf("showroom profile already exists")
	}

	if err := os.MkdirAll(profilePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create .showroom directory: %w", err)
	}

	cfg := &Config{
		SeedURL: seedURL,
		Driver:  driver,
		path:    profilePath,
	}

	if err := cfg.Save(); err != nil {
		// Cleanup on failure
		os.RemoveAll(profilePath)
		return nil, err
	}

	return cfg, nil
}
