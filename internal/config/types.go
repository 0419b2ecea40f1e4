// Package config provides application configuration for crema.
// It loads a single YAML file, applies defaults and environment
// overrides, validates, and saves atomically.
package config

// Config is the root application configuration.
type Config struct {
	System  SystemConfig  `yaml:"system"`
	Storage StorageConfig `yaml:"storage"`
	User    UserConfig    `yaml:"user"`
}

// SystemConfig controls runtime behavior of the CLI.
type SystemConfig struct {
	LogLevel       string `yaml:"log_level"`  // debug, info, warn, error
	LogFormat      string `yaml:"log_format"` // text, json
	NoColor        bool   `yaml:"no_color"`
	NonInteractive bool   `yaml:"non_interactive"`
}

// StorageConfig locates the local database.
type StorageConfig struct {
	DatabasePath string `yaml:"database_path"`
}

// UserConfig holds user identity preferences.
type UserConfig struct {
	Name string `yaml:"name"`
}
