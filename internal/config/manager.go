package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// Manager provides thread-safe configuration management. It must be
// initialized via Load() before use.
type Manager struct {
	mu     sync.RWMutex
	config *Config
	dir    string
	loaded bool
}

// NewManager creates a Manager in uninitialized state.
func NewManager() *Manager {
	return &Manager{}
}

// Load reads the config file from the given keyline directory, merging file
// values with compiled defaults and applying environment variable
// overrides. A missing file is not an error: defaults apply until the first
// Save.
func (m *Manager) Load(dir string) (*Config, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cfg := NewDefaultConfig()
	path := filepath.Join(filepath.Clean(dir), ConfigFileName)

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		slog.Debug("config file not found, using defaults", "path", path)
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", ConfigFileName, ErrInvalidYAML)
		}
	}

	applyEnvOverrides(cfg)

	if err := validate(cfg); err != nil {
		return nil, err
	}

	m.config = cfg
	m.dir = dir
	m.loaded = true
	return cfg, nil
}

// Get returns the current in-memory configuration, or nil before Load().
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config
}

// Dir returns the keyline directory the configuration was loaded from.
func (m *Manager) Dir() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.dir
}

// StatePath returns the path of the sqlite state database inside the
// keyline directory.
func (m *Manager) StatePath() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return filepath.Join(m.dir, StateFileName)
}

// Set replaces the in-memory configuration. Returns ErrNotInitialized
// before Load().
func (m *Manager) Set(cfg Config) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.loaded {
		return ErrNotInitialized
	}
	if err := validate(&cfg); err != nil {
		return err
	}
	m.config = &cfg
	return nil
}

// Save persists the current configuration atomically via temp file +
// os.Rename. Returns ErrNotInitialized before Load().
func (m *Manager) Save() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.loaded {
		return ErrNotInitialized
	}
	if err := os.MkdirAll(m.dir, 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	data, err := yaml.Marshal(m.config)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return atomicWrite(filepath.Join(m.dir, ConfigFileName), data)
}

// applyEnvOverrides applies environment variable overrides. Environment
// variables have higher priority than file values.
func applyEnvOverrides(cfg *Config) {
	if u := os.Getenv("KEYLINE_API_URL"); u != "" {
		cfg.API.BaseURL = u
	}
	if name := os.Getenv("KEYLINE_EDITOR"); name != "" {
		cfg.User.Name = name
	}
	if level := os.Getenv("KEYLINE_LOG_LEVEL"); level != "" {
		cfg.System.LogLevel = level
	}
	if noColor := os.Getenv("KEYLINE_NO_COLOR"); noColor == "true" || noColor == "1" {
		cfg.System.NoColor = true
	}
}

// validate checks the merged configuration.
func validate(cfg *Config) error {
	u, err := url.Parse(cfg.API.BaseURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("%w (got %q)", ErrInvalidBaseURL, cfg.API.BaseURL)
	}
	return nil
}

// atomicWrite writes data to a file atomically using temp file + os.Rename.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".keyline-config-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }() // cleanup on error path

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	return os.Rename(tmpName, path)
}
