package encryption

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/idelchi/ghostenc/internal/config"
	"github.com/idelchi/ghostenc/internal/fileutil"
	"github.com/idelchi/ghostenc/internal/logging"
	"github.com/idelchi/ghostenc/internal/pipeline"
)

// Processor handles the encryption and decryption of files.
type Processor struct {
	// cfg contains runtime configuration options
	cfg *config.Config

	// encryptor is shared by all workers
	encryptor *pipeline.Encryptor

	logger logrus.FieldLogger

	// results channels processing outcomes to the reporting goroutine
	results chan Result
}

// NewProcessor resolves the seed and builds the pipeline described by cfg.
func NewProcessor(cfg *config.Config, logger logrus.FieldLogger) (*Processor, error) {
	seed, err := cfg.Seed.Resolve()
	if err != nil {
		return nil, fmt.Errorf("reading seed: %w", err)
	}

	opts, err := cfg.PipelineOptions()
	if err != nil {
		return nil, fmt.Errorf("configuring pipeline: %w", err)
	}

	opts = append(opts, pipeline.WithObserver(logging.Observer(logger)))

	encryptor, err := pipeline.New(seed, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating encryptor: %w", err)
	}

	return &Processor{
		cfg:       cfg,
		encryptor: encryptor,
		logger:    logger,
		results:   make(chan Result, len(cfg.Files)),
	}, nil
}

// ProcessFiles concurrently processes all files specified in the configuration.
// Failures of individual files are counted and logged; the returned error reports the first one.
//
//nolint:cyclop
func (p *Processor) ProcessFiles() (Summary, error) {
	var summary Summary

	group := errgroup.Group{}
	group.SetLimit(p.cfg.Parallel)

	done := make(chan struct{})

	go func() {
		defer close(done)

		for result := range p.results {
			log := p.logger.WithField("input", result.Input)

			if result.Error != nil {
				summary.Errored++

				log.WithError(result.Error).Error("processing failed")

				continue
			}

			summary.Processed++
			summary.InputSize += result.InputSize
			summary.OutputSize += result.OutputSize

			log.WithField("output", result.Output).Info("processed")

			if !p.cfg.Delete {
				continue
			}

			if err := os.Remove(result.Input); err != nil {
				log.WithError(err).Error("deleting input failed")

				continue
			}

			summary.Deleted++

			log.Info("deleted")
		}
	}()

	for _, file := range p.cfg.Files {
		group.Go(func() error {
			outPath := p.outputPath(file)

			inSize, outSize, err := p.processFile(file, outPath)
			if err != nil {
				p.results <- Result{Input: file, Error: err}

				return fmt.Errorf("%q: %w", file, err)
			}

			p.results <- Result{Input: file, Output: outPath, InputSize: inSize, OutputSize: outSize}

			return nil
		})
	}

	err := group.Wait()

	close(p.results)

	<-done

	if err != nil {
		return summary, fmt.Errorf("processing files: %w", err)
	}

	return summary, nil
}

// processFile seals or opens a single file.
// It writes into a temporary file and performs an atomic rename on completion.
func (p *Processor) processFile(filename, outPath string) (inSize, outSize int64, err error) {
	if filepath.Clean(filename) == filepath.Clean(outPath) {
		return 0, 0, fmt.Errorf("%w: %q", ErrSameOutput, outPath)
	}

	input, err := fileutil.ReadRegular(filename)
	if err != nil {
		return 0, 0, err
	}

	var output []byte

	if p.cfg.Operation == config.Decrypt {
		output, err = p.encryptor.Decrypt(input)
		if err != nil {
			return 0, 0, fmt.Errorf("decrypting file: %w", err)
		}
	} else {
		output, err = p.encryptor.Encrypt(input)
		if err != nil {
			return 0, 0, fmt.Errorf("encrypting file: %w", err)
		}
	}

	outSize, err = fileutil.WriteAtomic(filename, outPath, output, p.cfg.PreserveTimestamps)
	if err != nil {
		return 0, 0, err
	}

	return int64(len(input)), outSize, nil
}

// outputPath generates the output file path based on the input filename
// and the configured suffixes for encryption/decryption.
func (p *Processor) outputPath(filename string) string {
	return OutputPath(filename, p.cfg)
}

// OutputPath returns where the result of processing filename is written.
func OutputPath(filename string, cfg *config.Config) string {
	ext := cfg.Suffixes.Encrypt

	if cfg.Operation == config.Decrypt {
		filename = strings.TrimSuffix(filename, cfg.Suffixes.Encrypt)
		ext = cfg.Suffixes.Decrypt
	}

	return filepath.Join(filepath.Dir(filename), filepath.Base(filename)+ext)
}
