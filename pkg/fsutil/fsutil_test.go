package fsutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")
	require.NoError(t, EnsureDir(dir))
	assert.DirExists(t, dir)

	// Idempotent on an existing directory.
	assert.NoError(t, EnsureDir(dir))
}

func TestEnsureFileDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "file.txt")
	require.NoError(t, EnsureFileDir(path))
	assert.DirExists(t, filepath.Dir(path))
	assert.NoFileExists(t, path)
}

func TestCopy(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.txt")
	dst := filepath.Join(dir, "dst.txt")
	require.NoError(t, os.WriteFile(src, []byte("hello"), 0o644))

	require.NoError(t, Copy(src, dst))

	content, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(content))
}

func TestCopy_PreservesExecutableBit(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("no executable bit on windows")
	}

	dir := t.TempDir()
	src := filepath.Join(dir, "src.sh")
	dst := filepath.Join(dir, "dst.sh")
	require.NoError(t, os.WriteFile(src, []byte("#!/bin/sh\n"), 0o755))

	require.NoError(t, Copy(src, dst))

	info, err := os.Stat(dst)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&0o111)
}

func TestCopyDir(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	require.NoError(t, os.MkdirAll(filepath.Join(src, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "a.py"), []byte("a"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(src, "sub", "b.py"), []byte("b"), 0o644))

	dst := filepath.Join(dir, "dst")
	require.NoError(t, CopyDir(src, dst))
	assert.FileExists(t, filepath.Join(dst, "a.py"))
	assert.FileExists(t, filepath.Join(dst, "sub", "b.py"))
}

func TestCopyDir_ReplacesExisting(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	require.NoError(t, os.MkdirAll(src, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "a.py"), []byte("new"), 0o644))

	dst := filepath.Join(dir, "dst")
	require.NoError(t, os.MkdirAll(dst, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dst, "stale.py"), []byte("old"), 0o644))

	require.NoError(t, CopyDir(src, dst))
	assert.FileExists(t, filepath.Join(dst, "a.py"))
	assert.NoFileExists(t, filepath.Join(dst, "stale.py"))
}
