package hook

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/glorpus-work/pylay/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScript(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestManager_LoadAndExecute(t *testing.T) {
	srcRoot := t.TempDir()
	writeScript(t, srcRoot, "pre.tengo", `
fmt := import("fmt")
fmt.println("installing ", projectName, " ", projectVersion)
`)

	mgr := NewManager()
	err := mgr.Load(map[string]string{"pre-install": "pre.tengo"}, srcRoot)
	require.NoError(t, err)

	assert.True(t, mgr.HasHook(PreInstall))
	assert.False(t, mgr.HasHook(PostInstall))

	err = mgr.Execute(PreInstall, Context{
		ProjectName:    "package_dist1",
		ProjectVersion: "0.1.0",
		SourceRoot:     srcRoot,
	})
	assert.NoError(t, err)
}

func TestManager_ExecuteScriptError(t *testing.T) {
	srcRoot := t.TempDir()
	writeScript(t, srcRoot, "post.tengo", `
err := ""
if purelibDir == "" {
	err = "purelib dir not set"
}
`)

	mgr := NewManager()
	require.NoError(t, mgr.Load(map[string]string{"post-install": "post.tengo"}, srcRoot))

	err := mgr.Execute(PostInstall, Context{ProjectName: "package_dist1"})
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrHookScript)
	assert.Contains(t, err.Error(), "purelib dir not set")

	// With the directory set the same script passes.
	err = mgr.Execute(PostInstall, Context{ProjectName: "package_dist1", PurelibDir: "/env/site-packages"})
	assert.NoError(t, err)
}

func TestManager_ExecuteCompileError(t *testing.T) {
	srcRoot := t.TempDir()
	writeScript(t, srcRoot, "broken.tengo", `if {`)

	mgr := NewManager()
	require.NoError(t, mgr.Load(map[string]string{"pre-install": "broken.tengo"}, srcRoot))

	err := mgr.Execute(PreInstall, Context{})
	assert.ErrorIs(t, err, errors.ErrHookExecution)
}

func TestManager_LoadErrors(t *testing.T) {
	srcRoot := t.TempDir()
	writeScript(t, srcRoot, "hook.tengo", `x := 1`)

	t.Run("unsupported event", func(t *testing.T) {
		err := NewManager().Load(map[string]string{"pre-build": "hook.tengo"}, srcRoot)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported hook event")
	})

	t.Run("wrong extension", func(t *testing.T) {
		err := NewManager().Load(map[string]string{"pre-install": "hook.py"}, srcRoot)
		assert.ErrorIs(t, err, errors.ErrHookLoad)
	})

	t.Run("missing file", func(t *testing.T) {
		err := NewManager().Load(map[string]string{"pre-install": "missing.tengo"}, srcRoot)
		assert.ErrorIs(t, err, errors.ErrHookLoad)
	})
}

func TestManager_ExecuteWithoutScript(t *testing.T) {
	mgr := NewManager()
	assert.NoError(t, mgr.Execute(PreInstall, Context{}))
}
