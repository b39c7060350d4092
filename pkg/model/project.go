// Package model provides data structures and types for representing projects,
// target environments, and install configuration in the pylay installer.
package model

import (
	"regexp"
	"strings"

	"github.com/glorpus-work/pylay/pkg/errors"
	"github.com/hashicorp/go-version"
)

// ProjectMetadata describes a project as loaded from its descriptor: the
// distribution identity, the importable modules and packages to place, the
// console scripts and entry points to expose, and the declared dependencies.
// It is immutable once loaded and owned by a single Installer for its lifetime.
type ProjectMetadata struct {
	// Name is the distribution name (may differ from the import names).
	Name    string `json:"name"`
	Version string `json:"version"`

	// Modules lists the top-level modules or packages to install. A module
	// maps to <name>.py under the source root, a package to a directory.
	Modules []string `json:"modules"`

	// Scripts maps console script names to "module:callable" targets.
	Scripts map[string]string `json:"scripts,omitempty"`

	// EntryPoints maps entry point group names to name -> target mappings.
	// Console scripts are merged into the console_scripts group on output.
	EntryPoints map[string]map[string]string `json:"entry_points,omitempty"`

	// RequiresDist holds dependency declarations in requires-dist form:
	// `name (version-spec); marker`, where the marker clause may carry an
	// extra qualifier such as `extra == "dev"`.
	RequiresDist []string `json:"requires_dist,omitempty"`

	// Extras lists the named optional dependency groups the project declares.
	Extras []string `json:"extras,omitempty"`

	// Hooks maps install events (pre-install, post-install) to Tengo script
	// paths relative to the source root.
	Hooks map[string]string `json:"hooks,omitempty"`
}

var normalizeRe = regexp.MustCompile(`[-_.]+`)

// NormalizedName returns the distribution name normalized for use in
// filesystem artifacts: lowercased with runs of separators collapsed to
// a single underscore.
func (m *ProjectMetadata) NormalizedName() string {
	return normalizeRe.ReplaceAllString(strings.ToLower(m.Name), "_")
}

// DistInfoName returns the name of the dist-info metadata directory for
// this project, e.g. "package_dist1-0.1.dist-info".
func (m *ProjectMetadata) DistInfoName() string {
	return m.NormalizedName() + "-" + m.Version + ".dist-info"
}

// WheelName returns the file name of the wheel built for this project.
func (m *ProjectMetadata) WheelName() string {
	return m.NormalizedName() + "-" + m.Version + "-py3-none-any.whl"
}

// GetVersion returns the parsed version of this project, or nil if the
// version string does not parse.
func (m *ProjectMetadata) GetVersion() *version.Version {
	v, err := version.NewVersion(m.Version)
	if err != nil {
		return nil
	}
	return v
}

// ScriptTarget splits a "module:callable" script target into its parts.
func ScriptTarget(target string) (module, callable string, err error) {
	module, callable, ok := strings.Cut(target, ":")
	if !ok || module == "" || callable == "" {
		return "", "", errors.Wrapf(errors.ErrInvalidScriptTarget, "%q", target)
	}
	return module, callable, nil
}

// Validate checks the metadata for the minimum the installer needs.
func (m *ProjectMetadata) Validate() error {
	if m.Name == "" {
		return errors.ErrProjectNameEmpty
	}
	if m.Version == "" {
		return errors.ErrProjectVersionEmpty
	}
	if _, err := version.NewVersion(m.Version); err != nil {
		return errors.Wrapf(errors.ErrInvalidVersion, "%q", m.Version)
	}
	if len(m.Modules) == 0 {
		return errors.ErrNoModules
	}
	for name, target := range m.Scripts {
		if _, _, err := ScriptTarget(target); err != nil {
			return errors.Wrapf(err, "script %s", name)
		}
	}
	for group, points := range m.EntryPoints {
		for name, target := range points {
			if _, _, err := ScriptTarget(target); err != nil {
				return errors.Wrapf(err, "entry point %s in group %s", name, group)
			}
		}
	}
	return nil
}

// HasEntryPoints reports whether the project exposes any entry points,
// counting console scripts.
func (m *ProjectMetadata) HasEntryPoints() bool {
	return len(m.Scripts) > 0 || len(m.EntryPoints) > 0
}
