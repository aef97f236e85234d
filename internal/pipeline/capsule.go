package pipeline

import (
	"fmt"

	"github.com/idelchi/ghostenc/internal/kem"
	"github.com/idelchi/ghostenc/internal/mac"
)

const (
	// PublicValueSize is the width of the leading public value.
	PublicValueSize = kem.PublicValueSize
	// TagSize is the width of the MAC tag following the public value.
	TagSize = mac.TagSize
	// HeaderSize is the minimum capsule length.
	HeaderSize = PublicValueSize + TagSize

	// MaxRounds is the largest round count a tagged capsule may carry.
	MaxRounds = 64
	// LegacyRounds is the fixed round count of FormatLegacy capsules.
	LegacyRounds = 9
	// DefaultRounds is the round count used unless another is configured.
	DefaultRounds = LegacyRounds

	maxRoundFieldLen = 4
)

// Format selects how the round count travels with a capsule.
type Format int

const (
	// FormatTagged prefixes the ciphertext with a length-prefixed round count.
	FormatTagged Format = iota
	// FormatLegacy carries no round field and always uses LegacyRounds.
	FormatLegacy
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatTagged:
		return "tagged"
	case FormatLegacy:
		return "legacy"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// Capsule is a parsed PublicValue ∥ Tag ∥ Section buffer.
// The fields alias the parsed buffer.
type Capsule struct {
	PublicValue []byte
	Tag         []byte
	// Section is everything the tag authenticates: the optional round field and the ciphertext.
	Section []byte
}

// ParseCapsule splits data into its fixed-width fields.
func ParseCapsule(data []byte) (Capsule, error) {
	if len(data) < HeaderSize {
		return Capsule{}, fmt.Errorf("%w: %d bytes, need at least %d", ErrMalformedCapsule, len(data), HeaderSize)
	}

	return Capsule{
		PublicValue: data[:PublicValueSize],
		Tag:         data[PublicValueSize:HeaderSize],
		Section:     data[HeaderSize:],
	}, nil
}

// Bytes serializes the capsule.
func (c Capsule) Bytes() []byte {
	out := make([]byte, 0, HeaderSize+len(c.Section))
	out = append(out, c.PublicValue...)
	out = append(out, c.Tag...)

	return append(out, c.Section...)
}

// Rounds splits the section according to format, returning the round count and the ciphertext.
func (c Capsule) Rounds(format Format) (int, []byte, error) {
	if format == FormatLegacy {
		return LegacyRounds, c.Section, nil
	}

	return decodeRounds(c.Section)
}

// encodeRounds returns the minimal length-prefixed big-endian encoding of n.
func encodeRounds(n int) []byte {
	var digits []byte

	for v := n; v > 0; v >>= 8 {
		digits = append([]byte{byte(v)}, digits...)
	}

	return append([]byte{byte(len(digits))}, digits...)
}

func decodeRounds(section []byte) (int, []byte, error) {
	if len(section) == 0 {
		return 0, nil, fmt.Errorf("%w: missing round field", ErrMalformedCapsule)
	}

	width := int(section[0])
	if width < 1 || width > maxRoundFieldLen {
		return 0, nil, fmt.Errorf("%w: round field width %d", ErrMalformedCapsule, width)
	}

	if len(section) < 1+width {
		return 0, nil, fmt.Errorf("%w: truncated round field", ErrMalformedCapsule)
	}

	rounds := 0
	for _, b := range section[1 : 1+width] {
		rounds = rounds<<8 | int(b)
	}

	if rounds < 1 || rounds > MaxRounds {
		return 0, nil, fmt.Errorf("%w: round count %d outside 1..%d", ErrMalformedCapsule, rounds, MaxRounds)
	}

	return rounds, section[1+width:], nil
}
