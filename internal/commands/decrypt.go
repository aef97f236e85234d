package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/ghostenc/internal/config"
	"github.com/idelchi/ghostenc/internal/logic"
)

// NewDecryptCommand creates a new cobra command for the decrypt subcommand.
func NewDecryptCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "decrypt [flags] files...",
		Aliases: []string{"dec"},
		Short:   "Decrypt files",
		Args:    cobra.MinimumNArgs(1),
		PreRunE: preRun(cfg, config.Decrypt),
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(cfg)
			if err != nil {
				return err
			}

			return logic.Run(cfg, logger, cmd.ErrOrStderr())
		},
	}

	addProcessingFlags(cmd)

	return cmd
}
