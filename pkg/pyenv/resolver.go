//go:generate mockgen -destination=./mocks/resolver.go -package=mocks . Resolver

// Package pyenv resolves the install directories of a target Python
// interpreter. The interpreter is treated as an oracle for its own layout:
// a short inline probe program is spawned with `python -c` and its
// structured stdout payload is parsed. pylay itself is never the target
// runtime, so every resolution goes through the subprocess probe; callers
// cache the result per install run.
package pyenv

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/glorpus-work/pylay/pkg/model"
	"github.com/glorpus-work/pylay/pkg/pyexec"
)

// dirsProbe reports the interpreter's scripts and purelib directories as a
// JSON object. The last argv entry selects the user scheme.
const dirsProbe = `import json, os, sys, sysconfig
if sys.argv[-1] == "user":
    if sys.platform == "darwin" and sysconfig.get_config_var("PYTHONFRAMEWORK"):
        scheme = "osx_framework_user"
    else:
        scheme = os.name + "_user"
    paths = sysconfig.get_paths(scheme)
else:
    paths = sysconfig.get_paths()
print(json.dumps({"purelib": paths["purelib"], "scripts": paths["scripts"]}))
`

// userSiteProbe reports whether user-site installs are enabled and the
// default purelib directory, one per line.
const userSiteProbe = `import site, sysconfig
print(site.ENABLE_USER_SITE)
print(sysconfig.get_path("purelib"))
`

// Resolver determines where a target interpreter's writable script and
// library directories live. It is a swappable collaborator so tests can
// replace the subprocess probe.
type Resolver interface {
	// Dirs resolves the scripts and purelib directories, using the
	// interpreter's user scheme when user is set.
	Dirs(ctx context.Context, python string, user bool) (model.TargetEnvironment, error)

	// AutoUser decides whether an install should default to the user
	// site: true when user-site installs are enabled and the default
	// purelib directory is not writable.
	AutoUser(ctx context.Context, python string) (bool, error)
}

// ProbeResolver resolves directories by spawning the target interpreter.
type ProbeResolver struct {
	runner pyexec.Runner
}

// NewProbeResolver returns a Resolver backed by subprocess probes.
func NewProbeResolver(runner pyexec.Runner) *ProbeResolver {
	return &ProbeResolver{runner: runner}
}

// Dirs implements Resolver.
func (r *ProbeResolver) Dirs(ctx context.Context, python string, user bool) (model.TargetEnvironment, error) {
	scheme := "system"
	if user {
		scheme = "user"
	}
	out, err := r.runner.Output(ctx, python, "-c", dirsProbe, scheme)
	if err != nil {
		return model.TargetEnvironment{}, &EnvironmentResolutionError{Python: python, Err: err}
	}

	var payload struct {
		Purelib string `json:"purelib"`
		Scripts string `json:"scripts"`
	}
	if err := json.Unmarshal(out, &payload); err != nil {
		return model.TargetEnvironment{}, &EnvironmentResolutionError{Python: python, Err: err}
	}
	if payload.Purelib == "" || payload.Scripts == "" {
		return model.TargetEnvironment{}, &EnvironmentResolutionError{
			Python: python,
			Err:    fmt.Errorf("probe payload missing purelib or scripts: %q", string(out)),
		}
	}

	return model.TargetEnvironment{
		Python:     python,
		ScriptsDir: payload.Scripts,
		PurelibDir: payload.Purelib,
		UserSite:   user,
	}, nil
}

// AutoUser implements Resolver.
func (r *ProbeResolver) AutoUser(ctx context.Context, python string) (bool, error) {
	out, err := r.runner.Output(ctx, python, "-c", userSiteProbe)
	if err != nil {
		return false, &EnvironmentResolutionError{Python: python, Err: err}
	}

	enabledToken, purelib, found := strings.Cut(strings.TrimSpace(string(out)), "\n")
	if !found {
		return false, &EnvironmentResolutionError{
			Python: python,
			Err:    fmt.Errorf("user-site probe payload malformed: %q", string(out)),
		}
	}

	if !strings.EqualFold(strings.TrimSpace(enabledToken), "true") {
		// No user site packages, probably a virtualenv.
		return false, nil
	}
	return !WritableDir(strings.TrimSpace(purelib)), nil
}
