// Package operator implements the reversible position-dependent byte transform applied to
// compressed frames before ciphering.
package operator

import "errors"

// ErrEmptySeed is returned when an Operator is constructed without a seed.
var ErrEmptySeed = errors.New("operator: seed must not be empty")

// Operator rotates a buffer by one byte and XORs it with a cyclic seed stream.
// It is immutable and safe for concurrent use.
type Operator struct {
	seed []byte
}

// New creates an Operator keyed with a copy of seed.
func New(seed []byte) (*Operator, error) {
	if len(seed) == 0 {
		return nil, ErrEmptySeed
	}

	return &Operator{seed: append([]byte(nil), seed...)}, nil
}

// Apply moves the last byte to the front, then XORs every byte with the seed stream.
// The result is a new slice; data is left untouched.
func (o *Operator) Apply(data []byte) []byte {
	out := make([]byte, len(data))
	if len(data) == 0 {
		return out
	}

	out[0] = data[len(data)-1]
	copy(out[1:], data[:len(data)-1])

	o.xor(out)

	return out
}

// Reverse undoes Apply: XOR with the seed stream, then move the first byte to the end.
func (o *Operator) Reverse(data []byte) []byte {
	out := make([]byte, len(data))
	if len(data) == 0 {
		return out
	}

	tmp := append([]byte(nil), data...)
	o.xor(tmp)

	copy(out, tmp[1:])
	out[len(out)-1] = tmp[0]

	return out
}

func (o *Operator) xor(buf []byte) {
	for i := range buf {
		buf[i] ^= o.seed[i%len(o.seed)]
	}
}
