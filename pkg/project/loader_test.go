package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/glorpus-work/pylay/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDescriptor(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, DescriptorName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeDescriptor(t, `
[project]
name = "Package-Dist1"
version = "0.1.0"
modules = ["mymod"]
requires = ["toml", 'requests; extra == "test"']
extras = ["test"]

[project.scripts]
mycmd = "mymod:main"

[project.entry-points.myplugins]
frobnicate = "mymod:frob"

[project.hooks]
pre-install = "hooks/pre.tengo"
`)

	meta, srcRoot, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Package-Dist1", meta.Name)
	assert.Equal(t, "0.1.0", meta.Version)
	assert.Equal(t, []string{"mymod"}, meta.Modules)
	assert.Equal(t, []string{"toml", `requests; extra == "test"`}, meta.RequiresDist)
	assert.Equal(t, []string{"test"}, meta.Extras)
	assert.Equal(t, map[string]string{"mycmd": "mymod:main"}, meta.Scripts)
	assert.Equal(t, "mymod:frob", meta.EntryPoints["myplugins"]["frobnicate"])
	assert.Equal(t, map[string]string{"pre-install": "hooks/pre.tengo"}, meta.Hooks)

	assert.Equal(t, filepath.Dir(path), srcRoot)
	assert.True(t, filepath.IsAbs(srcRoot))
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, _, err := Load(filepath.Join(t.TempDir(), DescriptorName))
		assert.ErrorIs(t, err, errors.ErrDescriptorNotFound)
	})

	t.Run("malformed toml", func(t *testing.T) {
		path := writeDescriptor(t, `[project`)
		_, _, err := Load(path)
		assert.ErrorIs(t, err, errors.ErrDescriptorParse)
	})

	t.Run("fails validation", func(t *testing.T) {
		path := writeDescriptor(t, `
[project]
name = "pkg"
version = "0.1.0"
`)
		_, _, err := Load(path)
		assert.ErrorIs(t, err, errors.ErrNoModules)
	})

	t.Run("bad version", func(t *testing.T) {
		path := writeDescriptor(t, `
[project]
name = "pkg"
version = "not.a.version"
modules = ["pkg"]
`)
		_, _, err := Load(path)
		assert.ErrorIs(t, err, errors.ErrInvalidVersion)
	})
}
