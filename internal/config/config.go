// Package config loads and persists ff configuration.
//
// Configuration lives in a single YAML file under the ff config directory
// (see Home). Missing files are not an error: every knob has a default, and
// the file only needs to exist once the user changes one.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents ff configuration options
type Config struct {
	// Root is the search root used when the query names no folder.
	// Empty means fall back to the user's home directory.
	Root string `yaml:"root"`

	// Opener is the command used by the open action (-o).
	// Empty means the platform default (xdg-open on Linux, open on macOS).
	Opener string `yaml:"opener"`

	// History enables recording of queries in the history database
	History bool `yaml:"history"`

	// LogLevel sets the diagnostic verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		Root:     "",
		Opener:   "",
		History:  true,
		LogLevel: "warn",
	}
}

// Load loads configuration from the specified file path.
// If the file doesn't exist, returns default configuration without error.
// If the file exists but is malformed, returns an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply non-empty values from file (merging with defaults)
	if fileCfg.Root != "" {
		cfg.Root = fileCfg.Root
	}
	if fileCfg.Opener != "" {
		cfg.Opener = fileCfg.Opener
	}
	if fileCfg.LogLevel != "" {
		cfg.LogLevel = fileCfg.LogLevel
	}

	// History defaults to true, so zero-value merging would swallow an
	// explicit "history: false". Detect presence in the raw document.
	var rawMap map[string]interface{}
	if err := yaml.Unmarshal(data, &rawMap); err == nil {
		if _, exists := rawMap["history"]; exists {
			cfg.History = fileCfg.History
		}
	}

	return cfg, nil
}

// LoadDefault loads configuration from the default path (see Path).
// A missing config directory behaves like a missing file: defaults apply.
func LoadDefault() (*Config, error) {
	path, err := Path()
	if err != nil {
		return DefaultConfig(), nil
	}
	return Load(path)
}

// DefaultRoot resolves the search root used when the query names no folder.
// Priority order:
//  1. FF_ROOT environment variable (if set)
//  2. root from the config file
//  3. the user's home directory
func (c *Config) DefaultRoot() (string, error) {
	if root := os.Getenv("FF_ROOT"); root != "" {
		return root, nil
	}

	if c.Root != "" {
		return c.Root, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return home, nil
}

// Set updates a single supported key from its string representation.
// Returns an error for unknown keys or unparseable values.
func (c *Config) Set(key, value string) error {
	switch key {
	case "root":
		c.Root = value
	case "opener":
		c.Opener = value
	case "history":
		switch value {
		case "true", "yes", "on":
			c.History = true
		case "false", "no", "off":
			c.History = false
		default:
			return fmt.Errorf("invalid history value %q, must be true or false", value)
		}
	case "log_level":
		c.LogLevel = value
	default:
		return fmt.Errorf("unknown config key %q, must be one of: root, opener, history, log_level", key)
	}
	return nil
}

// Validate validates the configuration values
// Returns an error if any values are invalid
func (c *Config) Validate() error {
	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}

	if c.Root != "" {
		info, err := os.Stat(c.Root)
		if err != nil {
			return fmt.Errorf("configured root %q is not accessible: %w", c.Root, err)
		}
		if !info.IsDir() {
			return fmt.Errorf("configured root %q is not a directory", c.Root)
		}
	}

	return nil
}
