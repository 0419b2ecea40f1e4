package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/crema-app/crema/internal/defs"
)

// configFile is the configuration file name under the crema directory.
const configFile = defs.ConfigYAML

// Manager provides thread-safe configuration management.
// It must be initialized via Load() before use.
type Manager struct {
	mu          sync.RWMutex
	config      *Config
	dir         string
	initialized bool
}

// NewManager creates a Manager in uninitialized state.
func NewManager() *Manager {
	return &Manager{}
}

// Load reads the configuration file from dir, merging file values with
// compiled defaults and applying environment variable overrides. A
// missing file is not an error; defaults are used. The merged
// configuration is validated before being stored.
func (m *Manager) Load(dir string) (*Config, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cfg := NewDefaultConfig()

	path := filepath.Join(filepath.Clean(dir), configFile)
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		slog.Debug("config file not found, using defaults", "path", path)
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
		}
	}

	applyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	m.config = cfg
	m.dir = dir
	m.initialized = true

	return cfg, nil
}

// Get returns the current in-memory configuration.
// Returns nil if the manager has not been initialized via Load().
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config
}

// Set replaces the in-memory configuration after validating it.
func (m *Manager) Set(cfg *Config) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return ErrNotInitialized
	}
	if err := Validate(cfg); err != nil {
		return err
	}
	m.config = cfg
	return nil
}

// Save persists the current configuration to disk atomically using a
// temp file + os.Rename.
func (m *Manager) Save() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return ErrNotInitialized
	}

	dir := filepath.Clean(m.dir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := yaml.Marshal(m.config)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return atomicWrite(filepath.Join(dir, configFile), data)
}

// Validate checks the configuration for correctness.
func Validate(cfg *Config) error {
	if cfg.System.LogLevel != "" && !slices.Contains(validLogLevels, cfg.System.LogLevel) {
		return fmt.Errorf("%w (got: %q)", ErrInvalidLogLevel, cfg.System.LogLevel)
	}
	if cfg.System.LogFormat != "" && !slices.Contains(validLogFormats, cfg.System.LogFormat) {
		return fmt.Errorf("%w (got: %q)", ErrInvalidLogFormat, cfg.System.LogFormat)
	}
	if cfg.Storage.DatabasePath == "" {
		return fmt.Errorf("%w: storage.database_path must not be empty", ErrInvalidConfig)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides.
// Environment variables have higher priority than file values.
func applyEnvOverrides(cfg *Config) {
	if level := os.Getenv("CREMA_LOG_LEVEL"); level != "" {
		cfg.System.LogLevel = level
	}
	if format := os.Getenv("CREMA_LOG_FORMAT"); format != "" {
		cfg.System.LogFormat = format
	}
	if noColor := os.Getenv("CREMA_NO_COLOR"); noColor == "true" || noColor == "1" {
		cfg.System.NoColor = true
	}
	if path := os.Getenv("CREMA_DB_PATH"); path != "" {
		cfg.Storage.DatabasePath = path
	}
}

// atomicWrite writes data to a file atomically using temp file + os.Rename.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".crema-config-*.tmp")
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
