// Package gcbc implements the chained XOR block mode.
//
// One round XORs every byte with the IV and the key, both indexed cyclically. The mode is
// an involution for a fixed (iv, key, rounds): the same Transform encrypts and decrypts.
// An odd round count behaves like a single round and an even count like the identity, so
// both sides must agree on the exact round count.
package gcbc

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyKey is returned when a Cipher is constructed without a key.
	ErrEmptyKey = errors.New("gcbc: key must not be empty")
	// ErrEmptyIV is returned when Transform is called without an IV.
	ErrEmptyIV = errors.New("gcbc: iv must not be empty")
	// ErrInvalidRounds is returned for negative round counts.
	ErrInvalidRounds = errors.New("gcbc: invalid round count")
)

// Cipher holds the key. It is immutable and safe for concurrent use.
type Cipher struct {
	key []byte
}

// New creates a Cipher with a copy of key.
func New(key []byte) (*Cipher, error) {
	if len(key) == 0 {
		return nil, ErrEmptyKey
	}

	return &Cipher{key: append([]byte(nil), key...)}, nil
}

// Transform applies rounds chained-XOR rounds to data and returns a new slice.
func (c *Cipher) Transform(data, iv []byte, rounds int) ([]byte, error) {
	if len(iv) == 0 {
		return nil, ErrEmptyIV
	}

	if rounds < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRounds, rounds)
	}

	out := append(make([]byte, 0, len(data)), data...)

	for range rounds {
		c.round(out, iv)
	}

	return out, nil
}

func (c *Cipher) round(buf, iv []byte) {
	for i := range buf {
		buf[i] ^= iv[i%len(iv)] ^ c.key[i%len(c.key)]
	}
}
