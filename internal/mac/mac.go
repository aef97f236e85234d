// Package mac authenticates ciphertext with the keyed hash.
package mac

import (
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/idelchi/ghostenc/internal/keyedhash"
)

// TagSize is the length of a tag in bytes.
const TagSize = keyedhash.Size

// ErrIntegrity is returned when a tag does not match the data it claims to authenticate.
var ErrIntegrity = errors.New("integrity check failed")

// MAC generates and verifies tags under a fixed key. It is safe for concurrent use.
type MAC struct {
	hash *keyedhash.Hash
}

// New creates a MAC keyed with key.
func New(key []byte) (*MAC, error) {
	h, err := keyedhash.New(key)
	if err != nil {
		return nil, fmt.Errorf("creating mac: %w", err)
	}

	return &MAC{hash: h}, nil
}

// Generate returns the tag of data.
func (m *MAC) Generate(data []byte) []byte {
	return m.hash.Sum(data)
}

// Verify reports whether tag authenticates data.
func (m *MAC) Verify(data, tag []byte) bool {
	return Equal(m.Generate(data), tag)
}

// Check is Verify reporting failure as ErrIntegrity.
func (m *MAC) Check(data, tag []byte) error {
	if !m.Verify(data, tag) {
		return ErrIntegrity
	}

	return nil
}

// Generate returns the tag of data under key. It panics if key is empty.
func Generate(key, data []byte) []byte {
	return keyedhash.Sum(key, data)
}

// Verify reports whether tag authenticates data under key.
func Verify(key, data, tag []byte) bool {
	m, err := New(key)
	if err != nil {
		return false
	}

	return m.Verify(data, tag)
}

// Equal compares a and b in time that depends only on their length.
// Buffers of different length are never equal.
func Equal(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}
