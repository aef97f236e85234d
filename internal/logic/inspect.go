package logic

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"

	"github.com/idelchi/ghostenc/internal/config"
	"github.com/idelchi/ghostenc/internal/fileutil"
	"github.com/idelchi/ghostenc/internal/pipeline"
)

// ErrInspect is returned when at least one file could not be inspected or failed verification.
var ErrInspect = errors.New("inspection failed")

// RunInspect describes each configured capsule. With a seed it also verifies the tag
// and compares the public value against the configured KEM strategy.
func RunInspect(cfg *config.Config, w io.Writer) error {
	var encryptor *pipeline.Encryptor

	if cfg.Seed.Set() {
		seed, err := cfg.Seed.Resolve()
		if err != nil {
			return fmt.Errorf("reading seed: %w", err)
		}

		opts, err := cfg.PipelineOptions()
		if err != nil {
			return fmt.Errorf("configuring pipeline: %w", err)
		}

		if encryptor, err = pipeline.New(seed, opts...); err != nil {
			return fmt.Errorf("creating encryptor: %w", err)
		}
	}

	failed := 0

	for _, file := range cfg.Files {
		ok, err := inspectFile(w, file, cfg.Format(), encryptor)
		if err != nil {
			fmt.Fprintf(w, "%s: %v\n", file, err)
		}

		if err != nil || !ok {
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d file(s)", ErrInspect, failed, len(cfg.Files))
	}

	return nil
}

func inspectFile(w io.Writer, file string, format pipeline.Format, encryptor *pipeline.Encryptor) (bool, error) {
	data, err := fileutil.ReadRegular(file)
	if err != nil {
		return false, err
	}

	var report pipeline.Report

	if encryptor != nil {
		report, err = encryptor.Inspect(data)
	} else {
		report, err = pipeline.Inspect(data, format)
	}

	if err != nil {
		return false, err
	}

	printReport(w, file, uint64(len(data)), report)

	ok := report.RoundsErr == nil
	if report.Checked {
		ok = ok && report.TagValid
	}

	return ok, nil
}

func printReport(w io.Writer, file string, size uint64, r pipeline.Report) {
	fmt.Fprintf(w, "%s\n", file)
	fmt.Fprintf(w, "  Size:         %s\n", humanize.IBytes(size))
	fmt.Fprintf(w, "  Format:       %s\n", r.Format)
	fmt.Fprintf(w, "  Public value: %s\n", hex.EncodeToString(r.Capsule.PublicValue))
	fmt.Fprintf(w, "  Tag:          %s\n", hex.EncodeToString(r.Capsule.Tag))

	if r.RoundsErr != nil {
		fmt.Fprintf(w, "  Rounds:       invalid (%v)\n", r.RoundsErr)
	} else {
		fmt.Fprintf(w, "  Rounds:       %d\n", r.Rounds)
	}

	fmt.Fprintf(w, "  Ciphertext:   %s\n", humanize.IBytes(uint64(r.Ciphertext))) //nolint:gosec

	if r.Checked {
		fmt.Fprintf(w, "  Tag valid:    %t\n", r.TagValid)
		fmt.Fprintf(w, "  Public match: %t\n", r.PublicValueMatch)
	}
}
