package pyenv

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/glorpus-work/pylay/pkg/platform"
)

// WritableDir reports whether the directory can be written to. It never
// returns an error: a nonexistent or permission-denied path reports false.
// Any probe artifact is removed before returning, on every path.
func WritableDir(path string) bool {
	if platform.IsWindows() {
		return writableDirWin(path)
	}
	f, err := os.CreateTemp(path, ".pylay-write-test-")
	if err != nil {
		return false
	}
	name := f.Name()
	_ = f.Close()
	_ = os.Remove(name)
	return true
}

// writableDirWin probes writability with an explicit create attempt under a
// fixed name scheme. os.CreateTemp's delete-on-close behavior is unreliable
// on Windows network shares, so the marker is created and removed by hand,
// retrying past name collisions.
func writableDirWin(path string) bool {
	for i := 0; i < 10; i++ {
		name := filepath.Join(path, ".pylay-write-test-"+strconv.Itoa(i))
		f, err := os.OpenFile(name, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
		if err != nil {
			if errors.Is(err, fs.ErrExist) {
				continue // marker left over from a crashed probe, try another name
			}
			return false
		}
		_ = f.Close()
		_ = os.Remove(name)
		return true
	}
	return false
}
