// Package commands provides the command-line interface for the ghostenc tool.
//
// It implements commands for:
//   - encryption
//   - decryption
//   - capsule inspection
//   - seed generation
//
// The package handles command-line parsing, configuration validation,
// and environment variable binding through cobra and viper.
package commands

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idelchi/gogen/pkg/cobraext"
	"github.com/idelchi/ghostenc/internal/config"
	"github.com/idelchi/ghostenc/internal/logging"
)

// loadConfigFile merges the file named by --config into the bound flags and environment.
func loadConfigFile(_ *cobra.Command, _ []string) error {
	if path := viper.GetString("config"); path != "" {
		return config.LoadFile(viper.GetViper(), path)
	}

	return nil
}

// preRun returns a PreRunE handler that stores positional args in cfg.Files
// and validates the configuration.
func preRun(cfg *config.Config, op config.Operation) func(*cobra.Command, []string) error {
	return func(_ *cobra.Command, args []string) error {
		cfg.Operation = op
		cfg.Files = args

		return cobraext.Validate(cfg, cfg)
	}
}

func newLogger(cfg *config.Config) (*logrus.Logger, error) {
	return logging.New(cfg.LogLevel, cfg.Quiet)
}
