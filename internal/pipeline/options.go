package pipeline

import (
	"github.com/idelchi/ghostenc/internal/kem"
	"github.com/idelchi/ghostenc/internal/symbolic"
)

// Option configures an Encryptor.
type Option func(*Encryptor)

// WithStrategy selects the KEM strategy, and through it the decapsulation policy.
// The default is kem.Deterministic with kem.PolicyRederive.
func WithStrategy(s kem.Strategy) Option {
	return func(e *Encryptor) {
		e.strategy = s
	}
}

// WithObserver registers an observer for state transitions.
func WithObserver(o Observer) Option {
	return func(e *Encryptor) {
		e.observer = o
	}
}

// WithFixedRounds sets the cipher round count, 1 to MaxRounds. The default is DefaultRounds.
// An even count makes the cipher an identity.
func WithFixedRounds(n int) Option {
	return func(e *Encryptor) {
		e.rounds = n
		e.adaptive = false
	}
}

// WithAdaptiveRounds lets the autotuner's plan choose the round count of every capsule.
// The plan may pick an even count, which leaves the ciphertext equal to the transformed payload.
func WithAdaptiveRounds() Option {
	return func(e *Encryptor) {
		e.adaptive = true
	}
}

// WithLegacyFormat produces and accepts capsules without a round field.
func WithLegacyFormat() Option {
	return func(e *Encryptor) {
		e.format = FormatLegacy
	}
}

// WithCompressorOptions forwards options to the symbolic compressor.
func WithCompressorOptions(opts ...symbolic.Option) Option {
	return func(e *Encryptor) {
		e.compressorOpts = append(e.compressorOpts, opts...)
	}
}
