//go:generate mockgen -destination=./mocks/runner.go -package=mocks . Runner

// Package pyexec runs target-interpreter subprocesses for probes and for
// external installer invocations. Every call is a single blocking
// subprocess; the calling goroutine suspends until it exits.
package pyexec

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Runner executes a command and reports failure with the captured standard
// error. It exists as an interface so installer and resolver logic can be
// tested without spawning real interpreters.
type Runner interface {
	// Output runs the command and returns its standard output.
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
	// Run runs the command and discards its standard output.
	Run(ctx context.Context, name string, args ...string) error
}

// ExecRunner is the os/exec backed Runner used outside of tests.
type ExecRunner struct{}

// NewExecRunner returns a Runner backed by os/exec.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Output implements Runner.
func (r *ExecRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, subprocessError(name, args, err, stderr.String())
	}
	return stdout.Bytes(), nil
}

// Run implements Runner.
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return subprocessError(name, args, err, stderr.String())
	}
	return nil
}

// subprocessError wraps a subprocess failure with the exit status and the
// tail of the captured standard error.
func subprocessError(name string, args []string, err error, stderr string) error {
	stderr = strings.TrimSpace(stderr)
	if stderr == "" {
		return fmt.Errorf("%s %s: %w", name, strings.Join(args, " "), err)
	}
	return fmt.Errorf("%s %s: %w: %s", name, strings.Join(args, " "), err, stderr)
}
