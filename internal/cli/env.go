package cli

import (
	"encoding/json"
	"fmt"

	"github.com/glorpus-work/pylay/pkg/logger"
	"github.com/glorpus-work/pylay/pkg/pyenv"
	"github.com/glorpus-work/pylay/pkg/pyexec"
	"github.com/spf13/cobra"
)

// NewEnvCmd creates the env command.
func NewEnvCmd() *cobra.Command {
	var (
		python string
		user   bool
	)

	cmd := &cobra.Command{
		Use:   "env",
		Short: "Show the target interpreter's install directories",
		Long:  "Resolve and print the scripts and purelib directories of the target interpreter.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			logger.InitLogger(cfg.Settings.LogLevel, cfg.Settings.NoColor)

			if python == "" {
				python = cfg.Settings.Python
			}

			resolver := pyenv.NewProbeResolver(pyexec.NewExecRunner())
			env, err := resolver.Dirs(cmd.Context(), python, user)
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(env, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	cmd.Flags().StringVar(&python, "python", "", "Target interpreter (defaults to config)")
	cmd.Flags().BoolVar(&user, "user", false, "Resolve the user-site scheme")

	return cmd
}
