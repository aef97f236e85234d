package pipeline

import (
	"fmt"
	"unicode/utf8"
)

// ToBytes is implemented by inputs that can present themselves as a byte sequence.
type ToBytes interface {
	ToBytes() ([]byte, error)
}

// Bytes is binary input.
type Bytes []byte

// ToBytes returns a copy of b.
func (b Bytes) ToBytes() ([]byte, error) {
	return append([]byte{}, b...), nil
}

// Text is UTF-8 encoded input.
type Text string

// ToBytes returns the UTF-8 bytes of t.
func (t Text) ToBytes() ([]byte, error) {
	if !utf8.ValidString(string(t)) {
		return nil, fmt.Errorf("%w: text is not valid UTF-8", ErrInvalidInput)
	}

	return []byte(t), nil
}
