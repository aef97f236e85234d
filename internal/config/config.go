// Package config holds the runtime configuration of the command line tool.
package config

import (
	"errors"
	"fmt"

	"github.com/idelchi/gogen/pkg/validator"

	"github.com/idelchi/ghostenc/internal/kem"
	"github.com/idelchi/ghostenc/internal/pipeline"
)

// Operation is the command the configuration drives.
type Operation int

const (
	// Encrypt seals files into capsules.
	Encrypt Operation = iota
	// Decrypt opens capsules.
	Decrypt
	// Inspect reports on capsules without decrypting them.
	Inspect
)

// ErrInvalid is returned when the configuration fails validation.
var ErrInvalid = errors.New("invalid configuration")

// Suffixes control output file naming.
type Suffixes struct {
	Encrypt string `mapstructure:"encrypt-ext" validate:"required" label:"--encrypt-ext"`
	Decrypt string `mapstructure:"decrypt-ext"                     label:"--decrypt-ext"`
}

// Config is populated from flags, environment variables and an optional config file.
type Config struct {
	Seed     Seed     `mapstructure:",squash"`
	Suffixes Suffixes `mapstructure:",squash"`

	Parallel           int  `validate:"min=1"                label:"--parallel"`
	Quiet              bool `label:"--quiet"`
	Delete             bool `label:"--delete"`
	Stats              bool `label:"--stats"`
	PreserveTimestamps bool `mapstructure:"preserve-timestamps" label:"--preserve-timestamps"`

	// KEM strategy and decapsulation policy.
	Strategy string `mapstructure:"kem"    validate:"oneof=deterministic hybrid" label:"--kem"`
	Policy   string `mapstructure:"policy" validate:"oneof=rederive bound"       label:"--policy"`
	// Rounds pins the cipher round count; zero keeps the default of 9.
	Rounds   int  `validate:"min=0,max=64" label:"--rounds"`
	Adaptive bool `label:"--adaptive"`
	Legacy   bool `label:"--legacy"`

	// Show enables output display
	Show bool `label:"--show"`

	LogLevel string `mapstructure:"log-level" validate:"oneof=trace debug info warn warning error fatal panic" label:"--log-level"` //nolint:lll

	Operation Operation `mapstructure:"-"`
	Files     []string  `mapstructure:"-" validate:"min=1" label:"files"`
}

// Display returns the value of the Show field.
func (c Config) Display() bool {
	return c.Show
}

// Validate checks the struct tags of config, then the seed source and the rounds/format combination of c.
func (c Config) Validate(config any) error {
	validator := validator.NewValidator()

	if err := registerExclusive(validator); err != nil {
		return err
	}

	errs := validator.Validate(config)

	if c.Operation != Inspect && !c.Seed.Set() {
		errs = append(errs, ErrNoSeed)
	}

	if c.Legacy && (c.Adaptive || (c.Rounds != 0 && c.Rounds != pipeline.LegacyRounds)) {
		errs = append(errs, fmt.Errorf("--legacy requires %d fixed rounds", pipeline.LegacyRounds))
	}

	switch {
	case len(errs) == 0:
		return nil
	case len(errs) == 1:
		return fmt.Errorf("%w: %w", ErrInvalid, errs[0])
	default:
		return fmt.Errorf("%w:\n%w", ErrInvalid, errors.Join(errs...))
	}
}

// KEM returns the configured strategy.
func (c Config) KEM() (kem.Strategy, error) {
	policy, err := kem.ParsePolicy(c.Policy)
	if err != nil {
		return nil, err
	}

	return kem.ByName(c.Strategy, policy)
}

// PipelineOptions translates the configuration into pipeline options.
func (c Config) PipelineOptions() ([]pipeline.Option, error) {
	strategy, err := c.KEM()
	if err != nil {
		return nil, err
	}

	opts := []pipeline.Option{pipeline.WithStrategy(strategy)}

	switch {
	case c.Adaptive:
		opts = append(opts, pipeline.WithAdaptiveRounds())
	case c.Rounds > 0:
		opts = append(opts, pipeline.WithFixedRounds(c.Rounds))
	}

	if c.Legacy {
		opts = append(opts, pipeline.WithLegacyFormat())
	}

	return opts, nil
}

// Format returns the capsule format selected by the configuration.
func (c Config) Format() pipeline.Format {
	if c.Legacy {
		return pipeline.FormatLegacy
	}

	return pipeline.FormatTagged
}
