package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/glorpus-work/pylay/pkg/config"
	"github.com/glorpus-work/pylay/pkg/project"
)

// These variables will be set by the main package
var (
	ConfigPath *string
	Verbose    *bool
	NoColor    *bool
)

// loadConfig loads the configuration from the flag-provided path or the
// default location, then applies CLI flag overrides.
func loadConfig() (*config.Config, error) {
	configPath := ""
	if ConfigPath != nil {
		configPath = *ConfigPath
	}
	if configPath == "" {
		defaultPath, err := config.GetDefaultConfigPath()
		if err != nil {
			return nil, fmt.Errorf("failed to get default config path: %w", err)
		}
		configPath = defaultPath
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if Verbose != nil && *Verbose {
		cfg.Settings.LogLevel = "debug"
	}
	if NoColor != nil && *NoColor {
		cfg.Settings.NoColor = true
	}
	return cfg, nil
}

// descriptorPath turns the optional positional argument into the
// descriptor file to load: a directory argument means the default
// descriptor inside it, no argument means the current directory.
func descriptorPath(args []string) (string, error) {
	path := "."
	if len(args) > 0 {
		path = args[0]
	}
	info, err := os.Stat(path)
	if err == nil && info.IsDir() {
		return filepath.Join(path, project.DescriptorName), nil
	}
	return path, nil
}
