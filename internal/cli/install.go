package cli

import (
	"fmt"

	"github.com/glorpus-work/pylay/pkg/hook"
	"github.com/glorpus-work/pylay/pkg/installer"
	"github.com/glorpus-work/pylay/pkg/logger"
	"github.com/glorpus-work/pylay/pkg/project"
	"github.com/glorpus-work/pylay/pkg/pyenv"
	"github.com/glorpus-work/pylay/pkg/pyexec"
	"github.com/glorpus-work/pylay/pkg/wheel"
	"github.com/spf13/cobra"
)

// NewInstallCmd creates the install command.
func NewInstallCmd() *cobra.Command {
	var (
		python  string
		symlink bool
		pth     bool
		deps    string
		extras  []string
		direct  bool
		user    bool
		system  bool
	)

	cmd := &cobra.Command{
		Use:   "install [PROJECT]",
		Short: "Install a project into a Python environment",
		Long: `Install the project described by its descriptor into the target
interpreter's environment. By default the project is built into a wheel and
handed to pip together with its dependencies; the --symlink and --pth modes
place the source tree directly for development use.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var userFlag *bool
			switch {
			case user && system:
				return fmt.Errorf("--user and --system cannot be combined")
			case user:
				t := true
				userFlag = &t
			case system:
				f := false
				userFlag = &f
			}
			return runInstall(cmd, args, installOptions{
				python:  python,
				symlink: symlink,
				pth:     pth,
				deps:    deps,
				extras:  extras,
				direct:  direct,
				user:    userFlag,
			})
		},
	}

	cmd.Flags().StringVar(&python, "python", "", "Target interpreter (defaults to config)")
	cmd.Flags().BoolVar(&user, "user", false, "Install to the user site")
	cmd.Flags().BoolVar(&system, "system", false, "Install system-wide (disables user-site auto-detection)")
	cmd.Flags().BoolVar(&symlink, "symlink", false, "Symlink modules instead of copying")
	cmd.Flags().BoolVar(&pth, "pth", false, "Write a path file pointing at the source tree instead of copying")
	cmd.Flags().StringVar(&deps, "deps", "", "Dependency policy: none, production, develop, all (defaults to config)")
	cmd.Flags().StringSliceVar(&extras, "extras", nil, "Named extras to install dependencies for")
	cmd.Flags().BoolVar(&direct, "direct", false, "Place files directly without pip or dependency installation")

	return cmd
}

type installOptions struct {
	python  string
	symlink bool
	pth     bool
	deps    string
	extras  []string
	direct  bool
	user    *bool
}

func runInstall(cmd *cobra.Command, args []string, opts installOptions) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger.InitLogger(cfg.Settings.LogLevel, cfg.Settings.NoColor)

	path, err := descriptorPath(args)
	if err != nil {
		return err
	}
	meta, srcRoot, err := project.Load(path)
	if err != nil {
		return err
	}

	var hooks *hook.Manager
	if cfg.Settings.HooksEnabled && len(meta.Hooks) > 0 {
		hooks = hook.NewManager()
		if err := hooks.Load(meta.Hooks, srcRoot); err != nil {
			return err
		}
	}

	python := opts.python
	if python == "" {
		python = cfg.Settings.Python
	}
	depsPolicy := opts.deps
	if depsPolicy == "" {
		depsPolicy = cfg.Settings.Deps
	}

	runner := pyexec.NewExecRunner()
	ins, err := installer.New(meta, srcRoot, installer.Options{
		Python:  python,
		User:    opts.user,
		Symlink: opts.symlink,
		Pth:     opts.pth,
		Deps:    depsPolicy,
		Extras:  opts.extras,
	}, pyenv.NewProbeResolver(runner), wheel.NewZipBuilder("pylay "+Version), runner, hooks)
	if err != nil {
		return err
	}

	if opts.direct {
		return ins.InstallDirectly(cmd.Context())
	}
	return ins.Install(cmd.Context())
}
