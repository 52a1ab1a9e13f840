package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Home returns the ff configuration directory.
// Priority order:
//  1. FF_CONFIG_DIR environment variable (if set)
//  2. the user config directory (e.g. ~/.config/ff)
//
// The directory is created if it doesn't exist.
func Home() (string, error) {
	if home := os.Getenv("FF_CONFIG_DIR"); home != "" {
		if err := os.MkdirAll(home, 0755); err != nil {
			return "", fmt.Errorf("create config directory: %w", err)
		}
		return home, nil
	}

	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config directory: %w", err)
	}

	home := filepath.Join(base, "ff")
	if err := os.MkdirAll(home, 0755); err != nil {
		return "", fmt.Errorf("create config directory: %w", err)
	}

	return home, nil
}

// Path returns the config file path: <Home>/config.yaml
func Path() (string, error) {
	home, err := Home()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "config.yaml"), nil
}

// HistoryDBPath returns the absolute path to the query history database.
// Always returns: <Home>/history.db
func HistoryDBPath() (string, error) {
	home, err := Home()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "history.db"), nil
}
