package config

import "errors"

// Sentinel errors for configuration operations.
var (
	// ErrInvalidConfig indicates the configuration failed validation.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrInvalidLogLevel indicates an unrecognized log level value.
	ErrInvalidLogLevel = errors.New("config: invalid log_level, must be one of: debug, info, warn, error")

	// ErrInvalidLogFormat indicates an unrecognized log format value.
	ErrInvalidLogFormat = errors.New("config: invalid log_format, must be one of: text, json")

	// ErrNotInitialized indicates the Manager has not been initialized via Load().
	ErrNotInitialized = errors.New("config: manager not initialized, call Load() first")

	// ErrInvalidYAML indicates invalid YAML syntax in the configuration file.
	ErrInvalidYAML = errors.New("config: invalid YAML syntax")
)
