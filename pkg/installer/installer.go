//go:generate mockgen -destination=./mocks/installer.go -package=mocks . WheelBuilder

// Package installer places a project into a target Python environment. It
// resolves the environment's directories through the pyenv oracle, selects
// and installs the declared dependencies with pip, and materializes the
// project by copy, symlink or path-redirect file, or as a built wheel.
package installer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/glorpus-work/pylay/pkg/errors"
	"github.com/glorpus-work/pylay/pkg/fsutil"
	"github.com/glorpus-work/pylay/pkg/hook"
	"github.com/glorpus-work/pylay/pkg/logger"
	"github.com/glorpus-work/pylay/pkg/model"
	"github.com/glorpus-work/pylay/pkg/pyenv"
	"github.com/glorpus-work/pylay/pkg/pyexec"
	"github.com/glorpus-work/pylay/pkg/requirement"
	"github.com/sirupsen/logrus"
)

// defaultPython is the interpreter used when none is configured.
const defaultPython = "python3"

// WheelBuilder is the subset of the wheel builder used by the installer.
type WheelBuilder interface {
	Build(ctx context.Context, meta *model.ProjectMetadata, srcRoot, outputDir string) (string, error)
}

// Options configure an install run. The zero value copies the project into
// the default interpreter's environment with all dependencies.
type Options struct {
	// Python is the target interpreter. It may name a different
	// interpreter than any on this machine's default PATH entry; all
	// environment questions are answered by probing it.
	Python string

	// User selects user-site installation. Left nil, the installer probes
	// the target interpreter and falls back to the user site when the
	// system purelib directory is not writable.
	User *bool

	// Symlink links modules into purelib instead of copying.
	Symlink bool

	// Pth writes a single path-redirect file instead of copying.
	Pth bool

	// Deps is the dependency policy: none, production, develop or all.
	// Defaults to all.
	Deps string

	// Extras restricts dependency selection to the named extras (plus the
	// production baseline where the policy carries it).
	Extras []string
}

// Installer orchestrates a single project's installation. It owns the
// project metadata for its lifetime; the resolved target environment is
// cached after first use and only recomputed by constructing a new
// Installer.
type Installer struct {
	meta    *model.ProjectMetadata
	srcRoot string

	python   string
	userFlag *bool
	mode     model.PlacementMode
	deps     model.DependencyPolicy
	extras   []string

	resolver pyenv.Resolver
	builder  WheelBuilder
	runner   pyexec.Runner
	hooks    *hook.Manager

	user *bool                    // effective user scope, resolved on first need
	env  *model.TargetEnvironment // cached directories
}

// New validates the install configuration and returns an Installer. The
// placement flags are mutually exclusive, and requesting extras while the
// dependency policy is none is a conflict rejected here, before any
// subprocess is spawned. hooks may be nil.
func New(meta *model.ProjectMetadata, srcRoot string, opts Options, resolver pyenv.Resolver, builder WheelBuilder, runner pyexec.Runner, hooks *hook.Manager) (*Installer, error) {
	if err := meta.Validate(); err != nil {
		return nil, err
	}

	mode, err := model.ParsePlacementMode(opts.Symlink, opts.Pth)
	if err != nil {
		return nil, err
	}

	depsValue := opts.Deps
	if depsValue == "" {
		depsValue = string(model.DepsAll)
	}
	deps, err := model.ParseDependencyPolicy(depsValue)
	if err != nil {
		return nil, err
	}
	if deps == model.DepsNone && len(opts.Extras) > 0 {
		return nil, &requirement.DependencyError{Policy: string(deps), Extras: opts.Extras}
	}

	python := opts.Python
	if python == "" {
		python = defaultPython
	}

	absRoot, err := filepath.Abs(srcRoot)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve source root %s", srcRoot)
	}

	return &Installer{
		meta:     meta,
		srcRoot:  absRoot,
		python:   python,
		userFlag: opts.User,
		mode:     mode,
		deps:     deps,
		extras:   opts.Extras,
		resolver: resolver,
		builder:  builder,
		runner:   runner,
		hooks:    hooks,
	}, nil
}

// Mode returns the configured placement mode.
func (i *Installer) Mode() model.PlacementMode {
	return i.mode
}

// effectiveUser resolves the user-scope flag, probing the target
// interpreter once when it was left unset.
func (i *Installer) effectiveUser(ctx context.Context) (bool, error) {
	if i.user != nil {
		return *i.user, nil
	}
	if i.userFlag != nil {
		i.user = i.userFlag
		return *i.user, nil
	}
	auto, err := i.resolver.AutoUser(ctx, i.python)
	if err != nil {
		return false, err
	}
	logger.Debug("auto-detected install scope", logrus.Fields{"user": auto, "python": i.python})
	i.user = &auto
	return auto, nil
}

// environment resolves and caches the target directories.
func (i *Installer) environment(ctx context.Context) (*model.TargetEnvironment, error) {
	if i.env != nil {
		return i.env, nil
	}
	user, err := i.effectiveUser(ctx)
	if err != nil {
		return nil, err
	}
	env, err := i.resolver.Dirs(ctx, i.python, user)
	if err != nil {
		return nil, err
	}
	i.env = &env
	return i.env, nil
}

// InstallDirectly places the project into the target environment without
// invoking the external installer: modules by copy, symlink or redirect
// file per the placement mode, console scripts into the scripts directory,
// and the dist-info metadata directory. Dependencies are not touched.
func (i *Installer) InstallDirectly(ctx context.Context) error {
	env, err := i.environment(ctx)
	if err != nil {
		return err
	}
	if err := fsutil.EnsureDir(env.PurelibDir); err != nil {
		return err
	}
	if err := fsutil.EnsureDir(env.ScriptsDir); err != nil {
		return err
	}

	if err := i.runHook(hook.PreInstall, env); err != nil {
		return err
	}

	if err := i.placeModules(env); err != nil {
		return err
	}
	if err := i.installScripts(env); err != nil {
		return err
	}
	if err := i.writeDistInfo(env); err != nil {
		return err
	}

	if err := i.runHook(hook.PostInstall, env); err != nil {
		return err
	}

	logger.Success("installed "+i.meta.Name, logrus.Fields{
		"version": i.meta.Version,
		"mode":    i.mode.String(),
		"purelib": env.PurelibDir,
	})
	return nil
}

// placeModules materializes the project code under purelib according to
// the placement mode.
func (i *Installer) placeModules(env *model.TargetEnvironment) error {
	if i.mode == model.PlacementPth {
		// One redirect file covers every module: the source root becomes
		// importable as-is.
		pthFile := filepath.Join(env.PurelibDir, i.meta.NormalizedName()+".pth")
		logger.Debug("writing path file", logrus.Fields{"path": pthFile})
		return os.WriteFile(pthFile, []byte(i.srcRoot), fsutil.FileModeDefault)
	}

	for _, module := range i.meta.Modules {
		src, isPackage, err := model.ModuleSource(i.srcRoot, module)
		if err != nil {
			return err
		}
		dst := filepath.Join(env.PurelibDir, module)
		if !isPackage {
			dst += ".py"
		}

		switch i.mode {
		case model.PlacementSymlink:
			if err := os.RemoveAll(dst); err != nil {
				return errors.Wrapf(err, "failed to remove existing %s", dst)
			}
			logger.Debug("symlinking module", logrus.Fields{"src": src, "dst": dst})
			if err := os.Symlink(src, dst); err != nil {
				return errors.Wrapf(err, "failed to symlink module %s", module)
			}
		default:
			logger.Debug("copying module", logrus.Fields{"src": src, "dst": dst})
			if isPackage {
				err = fsutil.CopyDir(src, dst)
			} else {
				err = fsutil.Copy(src, dst)
			}
			if err != nil {
				return errors.Wrapf(err, "failed to copy module %s", module)
			}
		}
	}
	return nil
}

// installScripts writes one executable launcher per console script. The
// shebang references the target interpreter, which is not necessarily the
// interpreter found first on PATH here.
func (i *Installer) installScripts(env *model.TargetEnvironment) error {
	names := make([]string, 0, len(i.meta.Scripts))
	for name := range i.meta.Scripts {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		module, callable, err := model.ScriptTarget(i.meta.Scripts[name])
		if err != nil {
			return err
		}
		scriptFile := filepath.Join(env.ScriptsDir, name)
		logger.Info("writing script", logrus.Fields{"path": scriptFile})

		var b strings.Builder
		fmt.Fprintf(&b, "#!%s\n", i.python)
		fmt.Fprintf(&b, "import sys\n")
		fmt.Fprintf(&b, "from %s import %s\n", module, callable)
		fmt.Fprintf(&b, "if __name__ == '__main__':\n")
		fmt.Fprintf(&b, "    sys.exit(%s())\n", callable)

		if err := os.WriteFile(scriptFile, []byte(b.String()), fsutil.FileModeExec); err != nil {
			return errors.Wrapf(err, "failed to write script %s", name)
		}
	}
	return nil
}

// writeDistInfo writes the dist-info metadata directory, replacing any
// previous install's copy in full.
func (i *Installer) writeDistInfo(env *model.TargetEnvironment) error {
	distInfo := filepath.Join(env.PurelibDir, i.meta.DistInfoName())
	if err := os.RemoveAll(distInfo); err != nil {
		return errors.Wrapf(err, "failed to remove existing %s", distInfo)
	}
	if err := fsutil.EnsureDir(distInfo); err != nil {
		return err
	}
	if i.meta.HasEntryPoints() {
		entryPoints := filepath.Join(distInfo, "entry_points.txt")
		if err := os.WriteFile(entryPoints, []byte(i.meta.EntryPointsText()), fsutil.FileModeDefault); err != nil {
			return errors.Wrapf(err, "failed to write %s", entryPoints)
		}
	}
	return nil
}

// InstallRequirements installs the selected subset of the project's
// declared dependencies with pip. An empty selection spawns nothing.
func (i *Installer) InstallRequirements(ctx context.Context) error {
	selected, err := requirement.Select(i.meta.RequiresDist, i.deps, i.extras)
	if err != nil {
		return err
	}
	if len(selected) == 0 {
		logger.Debug("no requirements to install", logrus.Fields{"deps": string(i.deps)})
		return nil
	}

	lines := make([]string, 0, len(selected))
	for _, req := range selected {
		translated, err := requirement.ToPipRequirement(req)
		if err != nil {
			return err
		}
		lines = append(lines, translated)
	}

	reqsFile, err := os.CreateTemp("", "requirements-*.txt")
	if err != nil {
		return err
	}
	defer os.Remove(reqsFile.Name())

	if _, err := reqsFile.WriteString(strings.Join(lines, "\n")); err != nil {
		reqsFile.Close()
		return errors.Wrap(err, "failed to write requirements file")
	}
	if err := reqsFile.Close(); err != nil {
		return err
	}

	user, err := i.effectiveUser(ctx)
	if err != nil {
		return err
	}

	logger.Info("installing requirements", logrus.Fields{"count": len(lines), "python": i.python})
	args := []string{"-m", "pip", "install"}
	if user {
		args = append(args, "--user")
	}
	args = append(args, "-r", reqsFile.Name())
	if err := i.runner.Run(ctx, i.python, args...); err != nil {
		return &DependencyInstallError{Err: err}
	}
	return nil
}

// Install performs a full install run: requirements first (unless the
// policy is none), then either a wheel build handed to pip, or, for the
// symlink and pth modes, the same direct placement as InstallDirectly —
// those modes are development conveniences that an isolated wheel install
// would defeat.
func (i *Installer) Install(ctx context.Context) error {
	if i.deps != model.DepsNone {
		if err := i.InstallRequirements(ctx); err != nil {
			return err
		}
	}

	if i.mode != model.PlacementCopy {
		return i.InstallDirectly(ctx)
	}

	outDir, err := os.MkdirTemp("", "pylay-dist")
	if err != nil {
		return err
	}
	defer os.RemoveAll(outDir)

	wheelPath, err := i.builder.Build(ctx, i.meta, i.srcRoot, outDir)
	if err != nil {
		return errors.Wrap(err, "failed to build wheel")
	}

	user, err := i.effectiveUser(ctx)
	if err != nil {
		return err
	}

	logger.Info("installing wheel", logrus.Fields{"wheel": filepath.Base(wheelPath), "python": i.python})
	args := []string{"-m", "pip", "install"}
	if user {
		args = append(args, "--user")
	}
	args = append(args, wheelPath)
	if err := i.runner.Run(ctx, i.python, args...); err != nil {
		return &ExternalInstallError{Artifact: wheelPath, Err: err}
	}

	logger.Success("installed "+i.meta.Name, logrus.Fields{"version": i.meta.Version, "python": i.python})
	return nil
}

// runHook executes the project's script for the event, if one is loaded.
func (i *Installer) runHook(hookType hook.Type, env *model.TargetEnvironment) error {
	if i.hooks == nil || !i.hooks.HasHook(hookType) {
		return nil
	}
	return i.hooks.Execute(hookType, hook.Context{
		ProjectName:    i.meta.Name,
		ProjectVersion: i.meta.Version,
		SourceRoot:     i.srcRoot,
		PurelibDir:     env.PurelibDir,
		ScriptsDir:     env.ScriptsDir,
	})
}
