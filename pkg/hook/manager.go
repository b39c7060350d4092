package hook

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/glorpus-work/pylay/pkg/errors"
)

// Manager loads a project's declared hook scripts and executes them on
// install events.
type Manager struct {
	executor *TengoExecutor
}

// NewManager creates an empty hook manager.
func NewManager() *Manager {
	return &Manager{executor: NewTengoExecutor()}
}

// ErrUnsupportedHookEvent is returned when a descriptor declares a hook for
// an event pylay does not run.
func ErrUnsupportedHookEvent(event string) error {
	return fmt.Errorf("unsupported hook event: %s", event)
}

// Load reads the declared hook scripts. Script paths are relative to the
// project source root and must use the .tengo extension.
func (m *Manager) Load(hooks map[string]string, srcRoot string) error {
	for event, scriptPath := range hooks {
		hookType := Type(event)
		if hookType != PreInstall && hookType != PostInstall {
			return ErrUnsupportedHookEvent(event)
		}
		if !strings.HasSuffix(scriptPath, ".tengo") {
			return errors.Wrapf(errors.ErrHookLoad, "%s: script %s must have the .tengo extension", event, scriptPath)
		}
		content, err := os.ReadFile(filepath.Join(srcRoot, scriptPath))
		if err != nil {
			return errors.Wrapf(errors.ErrHookLoad, "%s: %v", event, err)
		}
		m.executor.AddScript(hookType, string(content))
	}
	return nil
}

// Execute runs the hook registered for the event, if any.
func (m *Manager) Execute(hookType Type, ctx Context) error {
	return m.executor.Execute(hookType, ctx)
}

// HasHook checks if a hook of the specified type is loaded.
func (m *Manager) HasHook(hookType Type) bool {
	return m.executor.HasScript(hookType)
}
