package logic

import (
	"fmt"
	"io"

	"github.com/idelchi/gogen/pkg/key"

	"github.com/idelchi/ghostenc/internal/config"
)

// RunKeygen writes a random hex encoded seed of config.SeedSize bytes to w.
func RunKeygen(w io.Writer) error {
	seed, err := key.New(config.SeedSize)
	if err != nil {
		return fmt.Errorf("generating seed: %w", err)
	}

	if _, err := fmt.Fprintln(w, seed.AsHex()); err != nil {
		return fmt.Errorf("writing seed: %w", err)
	}

	return nil
}
