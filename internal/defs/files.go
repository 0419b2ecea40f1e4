package defs

// Common file and directory names used across crema.
const (
	// CremaDir is the per-user crema home directory name.
	CremaDir = ".crema"

	// ConfigYAML is the application configuration file.
	ConfigYAML = "config.yaml"

	// DatabaseFile is the local SQLite database file.
	DatabaseFile = "crema.db"
)
