package requirement

import (
	"fmt"
	"strings"
)

// Error types for specific error conditions.
type (
	// FormatError is returned when a dependency declaration is malformed
	// and the name token cannot be isolated.
	FormatError struct {
		Declaration string
	}

	// DependencyError is returned for a conflicting dependency policy and
	// extras combination.
	DependencyError struct {
		Policy string
		Extras []string
	}
)

// Error implements the error interface for FormatError.
func (e *FormatError) Error() string {
	return fmt.Sprintf("malformed dependency declaration: %q", e.Declaration)
}

// Error implements the error interface for DependencyError.
func (e *DependencyError) Error() string {
	return fmt.Sprintf("to install extras [%s], the dependency policy cannot be %q",
		strings.Join(e.Extras, ", "), e.Policy)
}
