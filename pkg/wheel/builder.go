// Package wheel builds a distributable wheel archive for a project. The
// wheel is a plain zip holding the project's purelib files plus a dist-info
// directory with METADATA, WHEEL, RECORD and entry point declarations.
package wheel

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/glorpus-work/pylay/pkg/errors"
	"github.com/glorpus-work/pylay/pkg/fsutil"
	"github.com/glorpus-work/pylay/pkg/model"
	"github.com/mholt/archives"
)

// wheelTag is the compatibility tag for pure-Python wheels built here.
const wheelTag = "py3-none-any"

// Builder creates a wheel for a project and returns its file path.
type Builder interface {
	Build(ctx context.Context, meta *model.ProjectMetadata, srcRoot, outputDir string) (string, error)
}

// ZipBuilder stages the wheel contents in a temporary directory and zips
// them into <name>-<version>-py3-none-any.whl.
type ZipBuilder struct {
	generator string
}

// NewZipBuilder returns a Builder identifying itself as the given generator
// in the WHEEL file.
func NewZipBuilder(generator string) *ZipBuilder {
	return &ZipBuilder{generator: generator}
}

// Build implements Builder.
func (b *ZipBuilder) Build(ctx context.Context, meta *model.ProjectMetadata, srcRoot, outputDir string) (string, error) {
	stage, err := os.MkdirTemp("", "pylay-wheel")
	if err != nil {
		return "", err
	}
	defer os.RemoveAll(stage)

	for _, module := range meta.Modules {
		src, isPackage, err := model.ModuleSource(srcRoot, module)
		if err != nil {
			return "", err
		}
		if isPackage {
			err = fsutil.CopyDir(src, filepath.Join(stage, module))
		} else {
			err = fsutil.Copy(src, filepath.Join(stage, module+".py"))
		}
		if err != nil {
			return "", errors.Wrapf(err, "failed to stage module %s", module)
		}
	}

	if err := b.writeDistInfo(meta, stage); err != nil {
		return "", err
	}
	if err := writeRecord(stage, meta.DistInfoName()); err != nil {
		return "", err
	}

	if err := fsutil.EnsureDir(outputDir); err != nil {
		return "", err
	}
	out := filepath.Join(outputDir, meta.WheelName())
	if err := createArchive(ctx, stage, out); err != nil {
		return "", err
	}
	return out, nil
}

// writeDistInfo writes METADATA, WHEEL and entry_points.txt into the staged
// dist-info directory.
func (b *ZipBuilder) writeDistInfo(meta *model.ProjectMetadata, stage string) error {
	distInfo := filepath.Join(stage, meta.DistInfoName())
	if err := fsutil.EnsureDir(distInfo); err != nil {
		return err
	}

	var md strings.Builder
	md.WriteString("Metadata-Version: 2.1\n")
	md.WriteString("Name: " + meta.Name + "\n")
	md.WriteString("Version: " + meta.Version + "\n")
	for _, extra := range meta.Extras {
		md.WriteString("Provides-Extra: " + extra + "\n")
	}
	for _, req := range meta.RequiresDist {
		md.WriteString("Requires-Dist: " + req + "\n")
	}
	if err := os.WriteFile(filepath.Join(distInfo, "METADATA"), []byte(md.String()), fsutil.FileModeDefault); err != nil {
		return err
	}

	wheelMeta := fmt.Sprintf("Wheel-Version: 1.0\nGenerator: %s\nRoot-Is-Purelib: true\nTag: %s\n", b.generator, wheelTag)
	if err := os.WriteFile(filepath.Join(distInfo, "WHEEL"), []byte(wheelMeta), fsutil.FileModeDefault); err != nil {
		return err
	}

	if meta.HasEntryPoints() {
		if err := os.WriteFile(filepath.Join(distInfo, "entry_points.txt"), []byte(meta.EntryPointsText()), fsutil.FileModeDefault); err != nil {
			return err
		}
	}
	return nil
}

// writeRecord hashes every staged file and writes the RECORD manifest. The
// RECORD row for RECORD itself carries no hash or size.
func writeRecord(stage, distInfoName string) error {
	var rows []string
	err := filepath.WalkDir(stage, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		relPath, err := filepath.Rel(stage, path)
		if err != nil {
			return err
		}
		digest, size, err := hashFile(path)
		if err != nil {
			return err
		}
		rows = append(rows, fmt.Sprintf("%s,sha256=%s,%d", filepath.ToSlash(relPath), digest, size))
		return nil
	})
	if err != nil {
		return err
	}

	sort.Strings(rows)
	recordPath := distInfoName + "/RECORD"
	rows = append(rows, recordPath+",,")
	content := strings.Join(rows, "\n") + "\n"
	return os.WriteFile(filepath.Join(stage, filepath.FromSlash(recordPath)), []byte(content), fsutil.FileModeDefault)
}

// hashFile returns the urlsafe-base64 sha256 digest and size of a file.
func hashFile(path string) (string, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", 0, err
	}
	defer f.Close()

	h := sha256.New()
	size, err := io.Copy(h, f)
	if err != nil {
		return "", 0, err
	}
	return base64.RawURLEncoding.EncodeToString(h.Sum(nil)), size, nil
}

// createArchive zips the staged tree into the output wheel file.
func createArchive(ctx context.Context, stage, archivePath string) error {
	// Normalize source root to forward slashes to avoid mixed separators on Windows
	srcRoot := filepath.ToSlash(stage)
	if !strings.HasSuffix(srcRoot, "/") {
		srcRoot += "/"
	}
	archiveFiles, err := archives.FilesFromDisk(ctx, nil, map[string]string{
		srcRoot: "",
	})
	if err != nil {
		return errors.Wrap(err, "failed to read staged wheel files")
	}

	file, err := os.Create(archivePath)
	if err != nil {
		return errors.Wrapf(err, "failed to create output file %s", archivePath)
	}
	// Ensure data is flushed and handle is released promptly on Windows
	defer func() {
		_ = file.Sync()
		_ = file.Close()
	}()

	format := archives.Zip{}
	if err := format.Archive(ctx, file, archiveFiles); err != nil {
		return errors.Wrapf(err, "failed to write wheel %s", archivePath)
	}
	return nil
}
