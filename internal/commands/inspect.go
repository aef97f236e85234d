package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idelchi/ghostenc/internal/config"
	"github.com/idelchi/ghostenc/internal/logic"
)

// NewInspectCommand creates a new cobra command for the inspect subcommand.
func NewInspectCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect [flags] files...",
		Short: "Describe capsules, verifying them when a seed is given",
		Args:  cobra.MinimumNArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			// Inspection runs sequentially and never deletes.
			viper.SetDefault("parallel", 1)

			return preRun(cfg, config.Inspect)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return logic.RunInspect(cfg, cmd.OutOrStdout())
		},
	}

	return cmd
}
