package commands

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/idelchi/gogen/pkg/cobraext"
	"github.com/idelchi/ghostenc/internal/config"
	"github.com/idelchi/ghostenc/internal/kem"
	"github.com/idelchi/ghostenc/internal/pipeline"
)

// NewRootCommand creates the root command with common configuration.
// It sets up environment variable binding and flag handling.
func NewRootCommand(cfg *config.Config, version string) *cobra.Command {
	root := cobraext.NewDefaultRootCommand(version, loadConfigFile)

	root.Use = "ghostenc [flags] command [flags]"
	root.Short = "Capsule file encryption utility"
	root.Long = `Seals files into capsules of public value, tag and ciphertext derived from a single seed,
and opens them again. Seeds come from a hex string, a hex file or a passphrase.
Every flag can also be set through a GHOSTENC_ environment variable or a JSONC config file.`

	flags := root.PersistentFlags()

	flags.BoolP("show", "s", false, "Show the configuration and exit")
	flags.String("config", "", "Path to a JSONC configuration file")
	flags.String("log-level", "info", "Log level (trace, debug, info, warn, error)")
	flags.BoolP("quiet", "q", false, "Suppress non-error output")

	flags.StringP("seed", "k", "", "Seed, hex-encoded")
	flags.StringP("seed-file", "f", "", "Path to a file with the hex-encoded seed")
	flags.StringP("passphrase", "p", "", "Passphrase to derive the seed from")

	flags.String("kem", kem.NameDeterministic, "KEM strategy (deterministic, hybrid)")
	flags.String("policy", kem.PolicyRederive.String(), "Decapsulation policy (rederive, bound)")
	flags.IntP("rounds", "r", pipeline.DefaultRounds, "Cipher round count (1-64)")
	flags.Bool("adaptive", false, "Let the payload entropy and size choose the round count")
	flags.Bool("legacy", false, "Use capsules without a round field (always 9 rounds)")

	flags.String("encrypt-ext", ".gh", "Suffix to append to encrypted files")
	flags.String("decrypt-ext", "", "Suffix to append to decrypted files, after stripping the encrypted suffix")

	root.AddCommand(
		NewEncryptCommand(cfg),
		NewDecryptCommand(cfg),
		NewInspectCommand(cfg),
		NewKeygenCommand(),
	)

	return root
}

// Execute runs the root command. Showing the configuration counts as success.
func Execute(cfg *config.Config, version string) error {
	switch err := NewRootCommand(cfg, version).Execute(); {
	case errors.Is(err, cobraext.ErrExitGracefully):
		return nil
	case err != nil:
		return fmt.Errorf("executing command: %w", err)
	default:
		return nil
	}
}

// addProcessingFlags registers the flags shared by encrypt and decrypt.
func addProcessingFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("parallel", "j", runtime.NumCPU(), "Number of parallel workers, defaults to number of CPUs")
	cmd.Flags().BoolP("delete", "d", false, "Delete the original file after successful encryption/decryption")
	cmd.Flags().Bool("stats", false, "Print statistics after processing")
	cmd.Flags().Bool("preserve-timestamps", false, "Carry the modification time over to the output")
}
