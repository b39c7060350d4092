package pyenv

import "fmt"

// EnvironmentResolutionError is returned when the target interpreter cannot
// be spawned or its probe output cannot be parsed. Resolution failures are
// fatal and never retried.
type EnvironmentResolutionError struct {
	Python string
	Err    error
}

// Error implements the error interface for EnvironmentResolutionError.
func (e *EnvironmentResolutionError) Error() string {
	return fmt.Sprintf("failed to resolve environment for interpreter %s: %v", e.Python, e.Err)
}

// Unwrap returns the underlying error for EnvironmentResolutionError.
func (e *EnvironmentResolutionError) Unwrap() error {
	return e.Err
}
