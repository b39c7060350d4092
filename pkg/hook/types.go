// Package hook executes optional Tengo scripts around install runs. A
// project descriptor may declare scripts for the supported install events;
// they run in-process with the project and target environment bound into
// the script scope.
package hook

// Type represents the install event a hook runs on.
type Type string

// Supported hook events.
const (
	PreInstall  Type = "pre-install"
	PostInstall Type = "post-install"
)

// Context carries the values exposed to a hook script.
type Context struct {
	ProjectName    string
	ProjectVersion string
	SourceRoot     string
	PurelibDir     string
	ScriptsDir     string
	Vars           map[string]interface{}
}
