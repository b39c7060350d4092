package cli

import (
	"fmt"

	"github.com/glorpus-work/pylay/pkg/logger"
	"github.com/glorpus-work/pylay/pkg/model"
	"github.com/glorpus-work/pylay/pkg/project"
	"github.com/glorpus-work/pylay/pkg/requirement"
	"github.com/spf13/cobra"
)

// NewRequirementsCmd creates the requirements command.
func NewRequirementsCmd() *cobra.Command {
	var (
		deps   string
		extras []string
	)

	cmd := &cobra.Command{
		Use:   "requirements [PROJECT]",
		Short: "Print the requirements a policy would install",
		Long: `Select and translate the project's dependency declarations the same
way install would, and print the resulting pip requirements without
installing anything.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			logger.InitLogger(cfg.Settings.LogLevel, cfg.Settings.NoColor)

			path, err := descriptorPath(args)
			if err != nil {
				return err
			}
			meta, _, err := project.Load(path)
			if err != nil {
				return err
			}

			if deps == "" {
				deps = cfg.Settings.Deps
			}
			policy, err := model.ParseDependencyPolicy(deps)
			if err != nil {
				return err
			}

			selected, err := requirement.Select(meta.RequiresDist, policy, extras)
			if err != nil {
				return err
			}
			for _, req := range selected {
				translated, err := requirement.ToPipRequirement(req)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), translated)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&deps, "deps", "", "Dependency policy: none, production, develop, all (defaults to config)")
	cmd.Flags().StringSliceVar(&extras, "extras", nil, "Named extras to select dependencies for")

	return cmd
}
