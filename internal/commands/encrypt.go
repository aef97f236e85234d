package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/ghostenc/internal/config"
	"github.com/idelchi/ghostenc/internal/logic"
)

// NewEncryptCommand creates a new cobra command for the encrypt subcommand.
func NewEncryptCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "encrypt [flags] files...",
		Aliases: []string{"enc"},
		Short:   "Encrypt files",
		Args:    cobra.MinimumNArgs(1),
		PreRunE: preRun(cfg, config.Encrypt),
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
