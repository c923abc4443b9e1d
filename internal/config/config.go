// Package config resolves ftag settings from the environment and the
// global config file.
package config

import (
	"os"
	"path/filepath"
	"strconv"
)

const (
	// DefaultDBFile is the store filename used when nothing overrides it.
	DefaultDBFile = ".ftagdb"

	// EnvDatabase overrides the store filename.
	EnvDatabase = "FTAG_DATABASE"
	// EnvDir pins the store to a directory, disabling the ascent search.
	EnvDir = "FTAG_DIR"
	// EnvShowHidden includes dot-prefixed values in query results.
	EnvShowHidden = "FTAG_SHOW_HIDDEN"
)

// GetDatabase returns the store filename to use when no flag overrides it:
// the FTAG_DATABASE environment variable, then the global config, then
// DefaultDBFile.
func GetDatabase() string {
	if name := os.Getenv(EnvDatabase); name != "" {
		return name
	}
	cfg, err := LoadGlobalConfig()
	if err == nil && cfg.Database != "" {
		return cfg.Database
	}
	return DefaultDBFile
}

// GetStoreDir returns the explicit store directory from the environment,
// expanded, or empty when the ascent search should run.
func GetStoreDir() string {
	return ExpandPath(os.Getenv(EnvDir))
}

// GetShowHidden returns the default for showing dot-prefixed values:
// the FTAG_SHOW_HIDDEN environment variable, then the global config.
func GetShowHidden() bool {
	if raw := os.Getenv(EnvShowHidden); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			return v
		}
	}
	cfg, err := LoadGlobalConfig()
	if err != nil {
		return false
	}
	return cfg.ShowHidden
}

// ExpandPath expands ~ to the user's home directory.
// Returns the original path unchanged if it doesn't start with ~.
func ExpandPath(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path // Return original if we can't get home directory
	}

	return filepath.Join(home, path[1:])
}
