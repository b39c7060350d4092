package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/glorpus-work/pylay/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.yaml"))
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("empty path", func(t *testing.T) {
		_, err := LoadConfig("")
		assert.ErrorIs(t, err, errors.ErrEmptyConfigPath)
	})

	t.Run("partial file keeps defaults for the rest", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("settings:\n  python: python3.12\n  log_level: debug\n  hooks_enabled: true\n"), 0o644))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "python3.12", cfg.Settings.Python)
		assert.Equal(t, "debug", cfg.Settings.LogLevel)
		assert.Equal(t, "all", cfg.Settings.Deps)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("settings: ["), 0o644))

		_, err := LoadConfig(path)
		assert.ErrorIs(t, err, errors.ErrConfigParse)
	})
}

func TestConfig_Validate(t *testing.T) {
	t.Run("defaults are valid", func(t *testing.T) {
		assert.NoError(t, DefaultConfig().Validate())
	})

	t.Run("bad log level", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Settings.LogLevel = "verbose"
		assert.ErrorIs(t, cfg.Validate(), errors.ErrInvalidLogLevel)
	})

	t.Run("bad deps policy", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Settings.Deps = "most"
		assert.ErrorIs(t, cfg.Validate(), errors.ErrConfigValidation)
	})
}

func TestConfig_SaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.Settings.Python = "python3.11"
	cfg.Settings.Deps = "develop"
	require.NoError(t, cfg.Save(path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestConfig_SaveEmptyPath(t *testing.T) {
	assert.ErrorIs(t, DefaultConfig().Save(""), errors.ErrEmptyConfigPath)
}
