package ui

import (
	"maps"
	"os"

	"github.com/mattn/go-isatty"
)

// HeadlessManager detects whether the CLI runs without a terminal and
// carries default answers for prompts that cannot be shown in that mode.
// Non-interactive mode can also be forced through configuration.
type HeadlessManager struct {
	forced   *bool
	defaults map[string]string
}

// NewHeadlessManager creates a HeadlessManager that detects headless mode
// from the TTY state of os.Stdin.
func NewHeadlessManager() *HeadlessManager {
	return &HeadlessManager{}
}

// IsHeadless returns true when prompts and animated output must be
// suppressed. ForceHeadless overrides TTY detection.
func (h *HeadlessManager) IsHeadless() bool {
	if h.forced != nil {
		return *h.forced
	}
	fd := os.Stdin.Fd()
	return !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)
}

// ForceHeadless overrides TTY detection. Pass true to force headless mode,
// or false to force interactive mode regardless of TTY state.
func (h *HeadlessManager) ForceHeadless(force bool) {
	h.forced = &force
}

// SetDefaults stores answers used instead of prompts in headless mode.
// Keys match the prompt field names ("base_url", "editor").
func (h *HeadlessManager) SetDefaults(defaults map[string]string) {
	if len(defaults) == 0 {
		h.defaults = nil
		return
	}
	h.defaults = maps.Clone(defaults)
}

// GetDefault retrieves a headless default by key. The second return value
// indicates whether the key was set.
func (h *HeadlessManager) GetDefault(key string) (string, bool) {
	v, ok := h.defaults[key]
	return v, ok
}
