package wheel

import (
	"archive/zip"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/glorpus-work/pylay/pkg/errors"
	"github.com/glorpus-work/pylay/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSourceFixture(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(root, "mymod.py"), []byte("def main():\n    return 0\n"), 0o644))

	pkgDir := filepath.Join(root, "mypkg")
	require.NoError(t, os.MkdirAll(pkgDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(pkgDir, "__init__.py"), []byte("value = 1\n"), 0o644))

	return root
}

// readWheel opens the built archive and returns its entries by name.
func readWheel(t *testing.T, path string) map[string]string {
	t.Helper()
	r, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer r.Close()

	entries := make(map[string]string)
	for _, f := range r.File {
		if strings.HasSuffix(f.Name, "/") {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		content, err := io.ReadAll(rc)
		rc.Close()
		require.NoError(t, err)
		entries[f.Name] = string(content)
	}
	return entries
}

func TestZipBuilder_Build(t *testing.T) {
	srcRoot := writeSourceFixture(t)
	meta := &model.ProjectMetadata{
		Name:         "Package-Dist1",
		Version:      "0.1.0",
		Modules:      []string{"mymod", "mypkg"},
		Scripts:      map[string]string{"mycmd": "mymod:main"},
		RequiresDist: []string{"toml", `requests; extra == "test"`},
		Extras:       []string{"test"},
	}

	builder := NewZipBuilder("pylay 0.1.0")
	wheelPath, err := builder.Build(context.Background(), meta, srcRoot, t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "package_dist1-0.1.0-py3-none-any.whl", filepath.Base(wheelPath))

	entries := readWheel(t, wheelPath)
	distInfo := "package_dist1-0.1.0.dist-info"

	assert.Contains(t, entries, "mymod.py")
	assert.Contains(t, entries, "mypkg/__init__.py")
	assert.Equal(t, "def main():\n    return 0\n", entries["mymod.py"])

	metadata := entries[distInfo+"/METADATA"]
	assert.Contains(t, metadata, "Metadata-Version: 2.1\n")
	assert.Contains(t, metadata, "Name: Package-Dist1\n")
	assert.Contains(t, metadata, "Version: 0.1.0\n")
	assert.Contains(t, metadata, "Provides-Extra: test\n")
	assert.Contains(t, metadata, "Requires-Dist: toml\n")
	assert.Contains(t, metadata, `Requires-Dist: requests; extra == "test"`+"\n")

	wheelFile := entries[distInfo+"/WHEEL"]
	assert.Contains(t, wheelFile, "Wheel-Version: 1.0\n")
	assert.Contains(t, wheelFile, "Generator: pylay 0.1.0\n")
	assert.Contains(t, wheelFile, "Root-Is-Purelib: true\n")
	assert.Contains(t, wheelFile, "Tag: py3-none-any\n")

	entryPoints := entries[distInfo+"/entry_points.txt"]
	assert.Contains(t, entryPoints, "[console_scripts]")
	assert.Contains(t, entryPoints, "mycmd = mymod:main")
}

func TestZipBuilder_Record(t *testing.T) {
	srcRoot := writeSourceFixture(t)
	meta := &model.ProjectMetadata{
		Name:    "Package-Dist1",
		Version: "0.1.0",
		Modules: []string{"mymod"},
	}

	builder := NewZipBuilder("pylay 0.1.0")
	wheelPath, err := builder.Build(context.Background(), meta, srcRoot, t.TempDir())
	require.NoError(t, err)

	entries := readWheel(t, wheelPath)
	record := entries["package_dist1-0.1.0.dist-info/RECORD"]
	require.NotEmpty(t, record)

	lines := strings.Split(strings.TrimSpace(record), "\n")
	byPath := make(map[string]string)
	for _, line := range lines {
		path, rest, found := strings.Cut(line, ",")
		require.True(t, found, "malformed RECORD row %q", line)
		byPath[path] = rest
	}

	// Every archived file appears; RECORD lists itself without hash or size.
	assert.Contains(t, byPath, "mymod.py")
	assert.True(t, strings.HasPrefix(byPath["mymod.py"], "sha256="))
	assert.Equal(t, ",", byPath["package_dist1-0.1.0.dist-info/RECORD"])
}

func TestZipBuilder_MissingModule(t *testing.T) {
	srcRoot := writeSourceFixture(t)
	meta := &model.ProjectMetadata{
		Name:    "Package-Dist1",
		Version: "0.1.0",
		Modules: []string{"ghost"},
	}

	builder := NewZipBuilder("pylay 0.1.0")
	_, err := builder.Build(context.Background(), meta, srcRoot, t.TempDir())
	assert.ErrorIs(t, err, errors.ErrModuleNotFound)
}
