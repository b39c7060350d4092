// Package errors provides a common error handling system for pylay.
// It defines sentinel errors shared across packages and wrapping helpers
// for adding context as errors propagate up the call stack.
package errors

import "fmt"

// Common error types.
var (
	// Project metadata errors.
	ErrProjectNameEmpty    = fmt.Errorf("project name cannot be empty")
	ErrProjectVersionEmpty = fmt.Errorf("project version cannot be empty")
	ErrInvalidVersion      = fmt.Errorf("invalid project version")
	ErrNoModules           = fmt.Errorf("project declares no modules or packages")
	ErrModuleNotFound      = fmt.Errorf("module source not found")
	ErrInvalidScriptTarget = fmt.Errorf("invalid script target (expected module:callable)")

	// Installer configuration errors.
	ErrPlacementConflict = fmt.Errorf("symlink and pth placement modes cannot be combined")
	ErrInvalidDepsPolicy = fmt.Errorf("invalid dependency policy")

	// Descriptor errors.
	ErrDescriptorParse    = fmt.Errorf("failed to parse project descriptor")
	ErrDescriptorNotFound = fmt.Errorf("project descriptor not found")

	// Config errors.
	ErrEmptyConfigPath  = fmt.Errorf("config file path cannot be empty")
	ErrConfigParse      = fmt.Errorf("failed to parse config")
	ErrConfigValidation = fmt.Errorf("invalid configuration")
	ErrConfigDirectory  = fmt.Errorf("failed to create config directory")
	ErrInvalidLogLevel  = fmt.Errorf("invalid log level")

	// Hook errors.
	ErrHookExecution = fmt.Errorf("error executing hook")
	ErrHookScript    = fmt.Errorf("hook script error")
	ErrHookLoad      = fmt.Errorf("failed to load hook")
)

// Wrap wraps an error with additional context.
// If the error is nil, Wrap returns nil.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Wrapf wraps an error with additional formatted context.
// If the error is nil, Wrapf returns nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
