package config

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/crypto/hkdf"

	"github.com/idelchi/gogen/pkg/key"
)

// SeedSize is the length of generated and passphrase-derived seeds.
const SeedSize = 32

// seedInfo separates passphrase stretching from other HKDF uses.
const seedInfo = "ghostenc/seed"

// ErrNoSeed is returned when no seed source is configured.
var ErrNoSeed = errors.New("one of --seed, --seed-file or --passphrase is required")

// Seed lists the mutually exclusive seed sources.
type Seed struct {
	Hex        string `mapstructure:"seed"       mask:"filled" validate:"exclusive=--seed-file,exclusive=--passphrase" label:"--seed"`
	File       string `mapstructure:"seed-file"                validate:"exclusive=--passphrase"                        label:"--seed-file"`
	Passphrase string `mapstructure:"passphrase" mask:"filled"                                                          label:"--passphrase"`
}

// Set reports whether any source is configured.
func (s Seed) Set() bool {
	return s.Hex != "" || s.File != "" || s.Passphrase != ""
}

// Resolve returns the seed bytes from the configured source.
func (s Seed) Resolve() ([]byte, error) {
	switch {
	case s.Hex != "":
		seed, err := key.FromHex(strings.TrimSpace(s.Hex))
		if err != nil {
			return nil, fmt.Errorf("decoding seed: %w", err)
		}

		return nonEmpty(seed)
	case s.File != "":
		data, err := os.ReadFile(filepath.Clean(s.File))
		if err != nil {
			return nil, fmt.Errorf("reading seed file: %w", err)
		}

		seed, err := key.FromHex(strings.TrimSpace(string(data)))
		if err != nil {
			return nil, fmt.Errorf("decoding seed file %q: %w", s.File, err)
		}

		return nonEmpty(seed)
	case s.Passphrase != "":
		return stretch(s.Passphrase)
	default:
		return nil, ErrNoSeed
	}
}

// stretch derives SeedSize bytes from a passphrase with HKDF-SHA256.
func stretch(passphrase string) ([]byte, error) {
	reader := hkdf.New(sha256.New, []byte(passphrase), nil, []byte(seedInfo))
	seed := make([]byte, SeedSize)

	if _, err := io.ReadFull(reader, seed); err != nil {
		return nil, fmt.Errorf("deriving seed: %w", err)
	}

	return seed, nil
}

func nonEmpty(seed []byte) ([]byte, error) {
	if len(seed) == 0 {
		return nil, fmt.Errorf("%w: seed is empty", ErrInvalid)
	}

	return seed, nil
}
