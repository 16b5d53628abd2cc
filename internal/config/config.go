// Package config provides configuration management for keyline. It loads a
// YAML config file from the keyline directory, applies compiled defaults
// and environment variable overrides, and provides thread-safe access.
package config

import (
	"os"
	"path/filepath"
)

// Default value constants to avoid magic strings.
const (
	// DefaultDirName is the per-user keyline directory under $HOME.
	DefaultDirName = ".keyline"

	// ConfigFileName is the config file name inside the keyline directory.
	ConfigFileName = "config.yaml"

	// StateFileName is the sqlite state database name inside the keyline
	// directory.
	StateFileName = "state.db"

	DefaultBaseURL  = "http://localhost:8080"
	DefaultEditor   = "user"
	DefaultLogLevel = "info"
)

// APIConfig is the sync client section.
type APIConfig struct {
	// BaseURL is the localization service root, e.g.
	// "https://i18n.example.com/api".
	BaseURL string `yaml:"base_url"`
}

// UserConfig identifies the editor for updated_by stamps.
type UserConfig struct {
	Name string `yaml:"name"`
}

// SystemConfig is the system section.
type SystemConfig struct {
	LogLevel       string `yaml:"log_level"`
	NoColor        bool   `yaml:"no_color"`
	NonInteractive bool   `yaml:"non_interactive"`
}

// Config is the root configuration aggregate.
type Config struct {
	API    APIConfig    `yaml:"api"`
	User   UserConfig   `yaml:"user"`
	System SystemConfig `yaml:"system"`
}

// NewDefaultConfig returns a Config populated with compiled defaults.
func NewDefaultConfig() *Config {
	return &Config{
		API:    APIConfig{BaseURL: DefaultBaseURL},
		User:   UserConfig{Name: DefaultEditor},
		System: SystemConfig{LogLevel: DefaultLogLevel},
	}
}

// DefaultDir returns the keyline directory, honoring the KEYLINE_DIR
// environment variable and falling back to $HOME/.keyline.
func DefaultDir() string {
	if dir := os.Getenv("KEYLINE_DIR"); dir != "" {
		return filepath.Clean(dir)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultDirName
	}
	return filepath.Join(home, DefaultDirName)
}
