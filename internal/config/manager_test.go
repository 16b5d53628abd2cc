package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	m := NewManager()
	cfg, err := m.Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.API.BaseURL != DefaultBaseURL {
		t.Errorf("BaseURL = %q, want default %q", cfg.API.BaseURL, DefaultBaseURL)
	}
	if cfg.User.Name != DefaultEditor {
		t.Errorf("User.Name = %q, want default %q", cfg.User.Name, DefaultEditor)
	}
	if cfg.System.LogLevel != DefaultLogLevel {
		t.Errorf("LogLevel = %q, want default %q", cfg.System.LogLevel, DefaultLogLevel)
	}
}

func TestLoadFileValues(t *testing.T) {
	dir := t.TempDir()
	content := `api:
  base_url: https://i18n.example.com/api
user:
  name: alice
system:
  log_level: debug
`
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	m := NewManager()
	cfg, err := m.Load(dir)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.API.BaseURL != "https://i18n.example.com/api" {
		t.Errorf("BaseURL = %q", cfg.API.BaseURL)
	}
	if cfg.User.Name != "alice" {
		t.Errorf("User.Name = %q, want alice", cfg.User.Name)
	}
	if cfg.System.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.System.LogLevel)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("api: [unclosed"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	m := NewManager()
	if _, err := m.Load(dir); !errors.Is(err, ErrInvalidYAML) {
		t.Errorf("Load() error = %v, want ErrInvalidYAML", err)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("KEYLINE_API_URL", "http://override:9999")
	t.Setenv("KEYLINE_EDITOR", "bob")
	t.Setenv("KEYLINE_NO_COLOR", "1")

	m := NewManager()
	cfg, err := m.Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.API.BaseURL != "http://override:9999" {
		t.Errorf("BaseURL = %q, want env override", cfg.API.BaseURL)
	}
	if cfg.User.Name != "bob" {
		t.Errorf("User.Name = %q, want bob", cfg.User.Name)
	}
	if !cfg.System.NoColor {
		t.Error("NoColor = false, want env override true")
	}
}

func TestValidateRejectsBadBaseURL(t *testing.T) {
	t.Setenv("KEYLINE_API_URL", "not a url")

	m := NewManager()
	if _, err := m.Load(t.TempDir()); !errors.Is(err, ErrInvalidBaseURL) {
		t.Errorf("Load() error = %v, want ErrInvalidBaseURL", err)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()

	m := NewManager()
	if err := m.Save(); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Save() before Load() = %v, want ErrNotInitialized", err)
	}

	if _, err := m.Load(dir); err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	cfg := *m.Get()
	cfg.User.Name = "carol"
	cfg.API.BaseURL = "https://i18n.example.com"
	if err := m.Set(cfg); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	if err := m.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	reloaded := NewManager()
	got, err := reloaded.Load(dir)
	if err != nil {
		t.Fatalf("reload error: %v", err)
	}
	if got.User.Name != "carol" || got.API.BaseURL != "https://i18n.example.com" {
		t.Errorf("reloaded config = %+v, want saved values", got)
	}
}

func TestStatePath(t *testing.T) {
	dir := t.TempDir()
	m := NewManager()
	if _, err := m.Load(dir); err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	want := filepath.Join(dir, StateFileName)
	if got := m.StatePath(); got != want {
		t.Errorf("StatePath() = %q, want %q", got, want)
	}
}
