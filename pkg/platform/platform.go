// Package platform provides OS detection helpers used to pick
// platform-specific install strategies.
package platform

import "runtime"

// OS name constants.
const (
	OSWindows = "windows"
	OSDarwin  = "darwin"
	OSLinux   = "linux"
)

// IsWindows reports whether the installer is running on the Windows
// platform family.
func IsWindows() bool {
	return runtime.GOOS == OSWindows
}
