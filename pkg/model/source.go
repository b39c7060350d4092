package model

import (
	"os"
	"path/filepath"

	"github.com/glorpus-work/pylay/pkg/errors"
)

// ModuleSource locates the on-disk source for a top-level module or package
// under the project source root. A directory wins over a same-named file.
func ModuleSource(srcRoot, module string) (path string, isPackage bool, err error) {
	pkgDir := filepath.Join(srcRoot, module)
	if info, statErr := os.Stat(pkgDir); statErr == nil && info.IsDir() {
		return pkgDir, true, nil
	}
	file := filepath.Join(srcRoot, module+".py")
	if _, statErr := os.Stat(file); statErr == nil {
		return file, false, nil
	}
	return "", false, errors.Wrapf(errors.ErrModuleNotFound, "%s (looked for %s and %s)", module, pkgDir, file)
}
