// Package config provides configuration management for the pylay installer.
// It handles loading, validating and saving application settings from a
// YAML configuration file, with sensible defaults when no file exists.
package config

import (
	"os"
	"path/filepath"
	"slices"

	"github.com/glorpus-work/pylay/pkg/errors"
	"github.com/glorpus-work/pylay/pkg/fsutil"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Settings Settings `yaml:"settings"`
}

// Settings represents general application settings.
type Settings struct {
	// Python is the default target interpreter when none is given on the
	// command line.
	Python string `yaml:"python,omitempty"`

	// Deps is the default dependency policy: none, production, develop, all.
	Deps string `yaml:"deps,omitempty"`

	// HooksEnabled controls whether project install hooks are executed.
	HooksEnabled bool `yaml:"hooks_enabled"`

	// Output settings.
	LogLevel string `yaml:"log_level"` // panic, fatal, error, warn, info, debug, trace
	NoColor  bool   `yaml:"no_color"`
}

var validLogLevels = []string{"panic", "fatal", "error", "warn", "info", "debug", "trace"}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		Settings: Settings{
			Python:       "python3",
			Deps:         "all",
			HooksEnabled: true,
			LogLevel:     "info",
			NoColor:      false,
		},
	}
}

// GetDefaultConfigPath returns the default configuration file location.
func GetDefaultConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "pylay", "config.yaml"), nil
}

// LoadConfig loads the configuration from the given path. A missing file
// yields the defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, errors.ErrEmptyConfigPath
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", path)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(errors.ErrConfigParse, "%s: %v", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if !slices.Contains(validLogLevels, c.Settings.LogLevel) {
		return errors.Wrapf(errors.ErrInvalidLogLevel, "%q, must be one of: panic, fatal, error, warn, info, debug, trace", c.Settings.LogLevel)
	}
	switch c.Settings.Deps {
	case "none", "production", "develop", "all":
	default:
		return errors.Wrapf(errors.ErrConfigValidation, "invalid deps policy %q", c.Settings.Deps)
	}
	return nil
}

// Save writes the configuration to the given path, creating the parent
// directory if needed.
func (c *Config) Save(path string) error {
	if path == "" {
		return errors.ErrEmptyConfigPath
	}
	if err := fsutil.EnsureFileDir(path); err != nil {
		return errors.Wrap(errors.ErrConfigDirectory, err.Error())
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}
	return os.WriteFile(path, data, fsutil.FileModeDefault)
}
