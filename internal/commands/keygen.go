package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/ghostenc/internal/logic"
)

// NewKeygenCommand creates a new cobra command that prints a random seed.
func NewKeygenCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "keygen",
		Aliases: []string{"gen"},
		Short:   "Generate a new hex-encoded seed",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return logic.RunKeygen(cmd.OutOrStdout())
		},
	}
}
