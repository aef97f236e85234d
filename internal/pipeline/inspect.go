package pipeline

import (
	"github.com/idelchi/ghostenc/internal/mac"
)

// Report describes a capsule without decrypting it.
type Report struct {
	Capsule Capsule
	Format  Format
	// Rounds is zero when the round field could not be read.
	Rounds     int
	RoundsErr  error
	Ciphertext int

	// Checked is set when the fields below were computed with a seed.
	Checked bool
	// TagValid reports whether the tag authenticates the section.
	TagValid bool
	// PublicValueMatch reports whether the configured strategy derives the same public value.
	PublicValueMatch bool
}

// Inspect parses a capsule in the given format.
// Only a capsule shorter than HeaderSize is an error; a bad round field is reported in RoundsErr.
func Inspect(data []byte, format Format) (Report, error) {
	capsule, err := ParseCapsule(data)
	if err != nil {
		return Report{}, err
	}

	report := Report{Capsule: capsule, Format: format}

	rounds, ciphertext, err := capsule.Rounds(format)
	if err != nil {
		report.RoundsErr = err
		report.Ciphertext = len(capsule.Section)

		return report, nil
	}

	report.Rounds = rounds
	report.Ciphertext = len(ciphertext)

	return report, nil
}

// Inspect parses a capsule in the Encryptor's format and checks it against the seed.
func (e *Encryptor) Inspect(data []byte) (Report, error) {
	report, err := Inspect(data, e.format)
	if err != nil {
		return Report{}, err
	}

	enc, err := e.strategy.Encapsulate(e.seed)
	if err != nil {
		return Report{}, err
	}

	report.Checked = true
	report.TagValid = e.mac.Verify(report.Capsule.Section, report.Capsule.Tag)
	report.PublicValueMatch = mac.Equal(enc.PublicValue, report.Capsule.PublicValue)

	return report, nil
}
