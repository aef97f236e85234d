// Package logic implements the business logic behind the commands.
package logic

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"

	"github.com/idelchi/ghostenc/internal/config"
	"github.com/idelchi/ghostenc/internal/encryption"
)

// Run encrypts or decrypts the configured files.
func Run(cfg *config.Config, logger logrus.FieldLogger, stats io.Writer) error {
	start := time.Now()

	proc, err := encryption.NewProcessor(cfg, logger)
	if err != nil {
		return fmt.Errorf("creating processor: %w", err)
	}

	summary, err := proc.ProcessFiles()

	if cfg.Stats {
		printStats(stats, len(cfg.Files), summary, time.Since(start))
	}

	if err != nil {
		return fmt.Errorf("running logic: %w", err)
	}

	return nil
}

func printStats(w io.Writer, scanned int, summary encryption.Summary, duration time.Duration) {
	fmt.Fprintf(w, "\nStats\n")
	fmt.Fprintf(w, "  Scanned:   %d\n", scanned)
	fmt.Fprintf(w, "  Processed: %d\n", summary.Processed)
	fmt.Fprintf(w, "  Deleted:   %d\n", summary.Deleted)
	fmt.Fprintf(w, "  Errors:    %d\n", summary.Errored)
	//nolint:gosec // sizes are sums of file sizes
	fmt.Fprintf(w, "  Input:     %s\n", humanize.IBytes(uint64(max(0, summary.InputSize))))
	//nolint:gosec // sizes are sums of file sizes
	fmt.Fprintf(w, "  Output:    %s\n", humanize.IBytes(uint64(max(0, summary.OutputSize))))
	fmt.Fprintf(w, "  Duration:  %s\n", duration.Round(time.Millisecond))
}
