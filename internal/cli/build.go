package cli

import (
	"fmt"

	"github.com/glorpus-work/pylay/pkg/logger"
	"github.com/glorpus-work/pylay/pkg/project"
	"github.com/glorpus-work/pylay/pkg/wheel"
	"github.com/spf13/cobra"
)

// NewBuildCmd creates the build command.
func NewBuildCmd() *cobra.Command {
	var outputDir string

	cmd := &cobra.Command{
		Use:   "build [PROJECT]",
		Short: "Build a wheel for a project",
		Long:  "Build a distributable wheel for the project without installing it.",
		Args:  cobra.MaximumNArgs(1),
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
			meta, srcRoot, err := project.Load(path)
			if err != nil {
				return err
			}

			builder := wheel.NewZipBuilder("pylay " + Version)
			out, err := builder.Build(cmd.Context(), meta, srcRoot, outputDir)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&outputDir, "outdir", "dist", "Directory to write the wheel to")

	return cmd
}
