package installer

import "fmt"

// Error types for specific error conditions.
type (
	// DependencyInstallError is returned when the external installer
	// subprocess fails while installing the project's requirements.
	DependencyInstallError struct {
		Err error
	}

	// ExternalInstallError is returned when the external installer
	// subprocess fails while installing the built wheel.
	ExternalInstallError struct {
		Artifact string
		Err      error
	}
)

// Error implements the error interface for DependencyInstallError.
func (e *DependencyInstallError) Error() string {
	return fmt.Sprintf("failed to install requirements: %v", e.Err)
}

// Unwrap returns the underlying error for DependencyInstallError.
func (e *DependencyInstallError) Unwrap() error {
	return e.Err
}

// Error implements the error interface for ExternalInstallError.
func (e *ExternalInstallError) Error() string {
	return fmt.Sprintf("failed to install artifact %s: %v", e.Artifact, e.Err)
}

// Unwrap returns the underlying error for ExternalInstallError.
func (e *ExternalInstallError) Unwrap() error {
	return e.Err
}
