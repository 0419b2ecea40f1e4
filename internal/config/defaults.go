package config

import (
	"os"
	"path/filepath"

	"github.com/crema-app/crema/internal/defs"
)

// Valid enum values for the system section.
var (
	validLogLevels  = []string{"debug", "info", "warn", "error"}
	validLogFormats = []string{"text", "json"}
)

// NewDefaultConfig returns the compiled-in default configuration.
// The database lives next to the config file under the crema home
// directory.
func NewDefaultConfig() *Config {
	return &Config{
		System: SystemConfig{
			LogLevel:  "info",
			LogFormat: "text",
		},
		Storage: StorageConfig{
			DatabasePath: filepath.Join(DefaultDir(), defs.DatabaseFile),
		},
	}
}

// DefaultDir returns the crema home directory, ~/.crema by default.
// The CREMA_CONFIG_DIR environment variable overrides it.
func DefaultDir() string {
	if dir := os.Getenv("CREMA_CONFIG_DIR"); dir != "" {
		return filepath.Clean(dir)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return defs.CremaDir
	}
	return filepath.Join(home, defs.CremaDir)
}
