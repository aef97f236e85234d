// Package logging configures the logrus logger and adapts it to pipeline events.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/idelchi/ghostenc/internal/pipeline"
)

// New returns a text logger writing to stderr at the given level.
// Quiet raises the level to warn unless it is already stricter.
func New(level string, quiet bool) (*logrus.Logger, error) {
	return NewWithOutput(os.Stderr, level, quiet)
}

// NewWithOutput is New with a custom writer.
func NewWithOutput(w io.Writer, level string, quiet bool) (*logrus.Logger, error) {
	if level == "" {
		level = logrus.InfoLevel.String()
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parsing log level: %w", err)
	}

	if quiet && lvl > logrus.WarnLevel {
		lvl = logrus.WarnLevel
	}

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	logger.SetOutput(w)
	logger.SetLevel(lvl)

	return logger, nil
}

// Observer logs pipeline events: transitions at debug, round plans at info and failures at warn.
func Observer(logger logrus.FieldLogger) pipeline.Observer {
	return pipeline.ObserverFunc(func(ev pipeline.Event) {
		entry := logger.WithFields(logrus.Fields{
			"op":    ev.Op.String(),
			"state": ev.State.String(),
		})

		switch {
		case ev.Err != nil:
			entry.WithError(ev.Err).Warn("pipeline failed")
		case ev.Plan != nil:
			fields := logrus.Fields{
				"strength": ev.Plan.Level.String(),
				"rounds":   ev.Plan.Rounds,
				"size":     ev.Size,
			}

			if ev.Suggested != nil {
				fields["adaptive"] = ev.Adaptive
				fields["suggested"] = ev.Suggested.Rounds
				fields["entropy"] = fmt.Sprintf("%.3f", ev.Entropy)
			}

			entry.WithFields(fields).Info("round plan")
		default:
			entry.WithField("size", ev.Size).Debug("state transition")
		}
	})
}
