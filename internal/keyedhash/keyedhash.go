// Package keyedhash implements the 64-byte keyed hash that backs the MAC and the
// key-encapsulation derivations.
//
// The hash is a sequential fold: every input byte updates the accumulator and two
// running scalars (entropy and theta), so byte order matters and the computation
// cannot be split across goroutines.
package keyedhash

import (
	"errors"
	"math/bits"
)

// Size is the length of every digest in bytes.
const Size = 64

// ErrEmptyKey is returned when a hash is constructed with a zero-length key.
var ErrEmptyKey = errors.New("keyed hash: key must not be empty")

// Hash holds a key and the values derived from it once at construction.
// It is safe for concurrent use.
type Hash struct {
	key []byte

	// keySum is sum(key) mod 256, the initial entropy of every fold.
	keySum int
}

// New returns a Hash keyed with a copy of key.
func New(key []byte) (*Hash, error) {
	if len(key) == 0 {
		return nil, ErrEmptyKey
	}

	k := make([]byte, len(key))
	copy(k, key)

	sum := 0
	for _, b := range k {
		sum += int(b)
	}

	return &Hash{key: k, keySum: sum % 256}, nil
}

// Sum returns the 64-byte digest of data.
func (h *Hash) Sum(data []byte) []byte {
	var acc [Size]byte

	keyLen := len(h.key)
	entropy := h.keySum
	theta := len(data) ^ keyLen

	for i, b := range data {
		idx := (i + theta) % Size
		gVal := int(h.key[i%keyLen]) ^ entropy ^ ((i * 17) % 251)
		rotated := int(bits.RotateLeft8(b^byte(gVal), (i+entropy)%8))

		acc[idx] = byte((int(acc[idx]) + rotated + gVal + theta) % 256)

		entropy = (entropy + rotated + int(acc[idx]) + i) % 256
		theta = (theta ^ rotated ^ entropy) % 256
	}

	return acc[:]
}

// Sum is a convenience wrapper for New(key).Sum(data).
// It panics if key is empty.
func Sum(key, data []byte) []byte {
	h, err := New(key)
	if err != nil {
		panic(err)
	}

	return h.Sum(data)
}
