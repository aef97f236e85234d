// Package kem implements the deterministic pseudo key-encapsulation mechanism.
//
// Nothing here is a real KEM: every value is a deterministic function of the seed,
// derived with the keyed hash over seed ∥ context. Strategies are selected explicitly
// through the Strategy interface, never by definition order.
package kem

import (
	"errors"
	"fmt"

	"github.com/idelchi/ghostenc/internal/keyedhash"
	"github.com/idelchi/ghostenc/internal/mac"
)

const (
	// PublicValueSize is the length of a public value in bytes.
	PublicValueSize = 32
	// SharedSecretSize is the length of a Deterministic shared secret in bytes.
	SharedSecretSize = keyedhash.Size
	// HybridSharedSecretSize is the length of a Hybrid shared secret in bytes.
	HybridSharedSecretSize = 32
	// SessionKeySize is the prefix of the shared secret used as session key.
	SessionKeySize = 32
	// IVSize is the prefix of the session key used as initialization vector.
	IVSize = 16
)

// Derivation contexts.
const (
	ContextPublic = "pubkey-context"
	ContextShared = "shared-context"
)

var (
	// ErrEmptySeed is returned when a derivation is requested for an empty seed.
	ErrEmptySeed = errors.New("kem: seed must not be empty")
	// ErrContextMismatch is returned when a public value was not produced by the decapsulating strategy.
	ErrContextMismatch = errors.New("kem: public value does not match derivation context")
	// ErrUnknownStrategy is returned by ByName for unsupported names.
	ErrUnknownStrategy = errors.New("kem: unknown strategy")
	// ErrUnknownPolicy is returned by ParsePolicy for unsupported names.
	ErrUnknownPolicy = errors.New("kem: unknown decapsulation policy")
)

// derivationKey keys the hash for every derivation; the seed enters through the data.
var derivationKey = []byte("default_seed") //nolint:gochecknoglobals

// Encapsulation is the output of Encapsulate.
type Encapsulation struct {
	PublicValue  []byte
	SharedSecret []byte
}

// SessionKey returns the first SessionKeySize bytes of the shared secret.
func (e Encapsulation) SessionKey() []byte {
	return e.SharedSecret[:SessionKeySize]
}

// IV returns the first IVSize bytes of the session key.
func (e Encapsulation) IV() []byte {
	return IV(e.SharedSecret)
}

// IV returns the initialization vector embedded in a shared secret.
func IV(sharedSecret []byte) []byte {
	return sharedSecret[:IVSize]
}

// Strategy derives key material from a seed.
type Strategy interface {
	// Name identifies the strategy in configuration and logs.
	Name() string
	// Encapsulate derives the public value and shared secret for seed.
	Encapsulate(seed []byte) (Encapsulation, error)
	// Decapsulate recovers the shared secret that Encapsulate produced for seed.
	Decapsulate(seed, publicValue []byte) ([]byte, error)
}

// Policy controls how Decapsulate treats the transmitted public value.
type Policy int

const (
	// PolicyRederive re-derives the shared secret from the seed and ignores the public value.
	PolicyRederive Policy = iota
	// PolicyBound additionally requires the public value to equal the re-derived one.
	PolicyBound
)

// String returns the configuration name of the policy.
func (p Policy) String() string {
	switch p {
	case PolicyRederive:
		return "rederive"
	case PolicyBound:
		return "bound"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy maps a configuration name to a Policy.
func ParsePolicy(name string) (Policy, error) {
	switch name {
	case "", "rederive":
		return PolicyRederive, nil
	case "bound":
		return PolicyBound, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
	}
}

// ByName returns the strategy registered under name.
func ByName(name string, policy Policy) (Strategy, error) {
	switch name {
	case "", NameDeterministic:
		return Deterministic{Policy: policy}, nil
	case NameHybrid:
		return Hybrid{Policy: policy}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// decapsulate applies policy on behalf of a strategy.
func decapsulate(s Strategy, policy Policy, seed, publicValue []byte) ([]byte, error) {
	enc, err := s.Encapsulate(seed)
	if err != nil {
		return nil, err
	}

	if policy == PolicyBound && !mac.Equal(enc.PublicValue, publicValue) {
		return nil, fmt.Errorf("%w: strategy %s", ErrContextMismatch, s.Name())
	}

	return enc.SharedSecret, nil
}

// derive hashes seed ∥ context under the derivation key.
func derive(seed []byte, context string) []byte {
	input := make([]byte, 0, len(seed)+len(context))
	input = append(input, seed...)
	input = append(input, context...)

	return keyedhash.Sum(derivationKey, input)
}
