package config

import "errors"

// Sentinel errors for configuration operations.
var (
	// ErrNotInitialized indicates the Manager has not been initialized via
	// Load().
	ErrNotInitialized = errors.New("config: manager not initialized, call Load() first")

	// ErrInvalidYAML indicates invalid YAML syntax in the config file.
	ErrInvalidYAML = errors.New("config: invalid YAML syntax")

	// ErrInvalidBaseURL indicates an api.base_url that is empty or not an
	// absolute http(s) URL.
	ErrInvalidBaseURL = errors.New("config: api.base_url must be an absolute http or https URL")
)
