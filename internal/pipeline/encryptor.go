// Package pipeline composes the primitives into the capsule format.
//
// Encrypt runs compress → operator → encapsulate → cipher → MAC → frame,
// Decrypt runs the mirror sequence and verifies the tag before touching the ciphertext.
package pipeline

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/idelchi/ghostenc/internal/autotune"
	"github.com/idelchi/ghostenc/internal/gcbc"
	"github.com/idelchi/ghostenc/internal/kem"
	"github.com/idelchi/ghostenc/internal/mac"
	"github.com/idelchi/ghostenc/internal/operator"
	"github.com/idelchi/ghostenc/internal/symbolic"
)

// Encryptor turns plaintexts into capsules and back.
// It is immutable after New and safe for concurrent use.
type Encryptor struct {
	seed []byte

	compressor *symbolic.Compressor
	operator   *operator.Operator
	cipher     *gcbc.Cipher
	mac        *mac.MAC

	strategy kem.Strategy
	observer Observer

	rounds         int
	adaptive       bool
	format         Format
	compressorOpts []symbolic.Option
}

// New builds an Encryptor around seed. The seed is copied.
func New(seed []byte, opts ...Option) (*Encryptor, error) {
	if len(seed) == 0 {
		return nil, fmt.Errorf("%w: seed must not be empty", ErrInvalidInput)
	}

	e := &Encryptor{
		seed:     bytes.Clone(seed),
		rounds:   DefaultRounds,
		strategy: kem.Deterministic{},
		observer: nopObserver{},
	}

	for _, opt := range opts {
		opt(e)
	}

	if e.strategy == nil || e.observer == nil {
		return nil, fmt.Errorf("%w: nil strategy or observer", ErrInvalidInput)
	}

	if e.rounds < 1 || e.rounds > MaxRounds {
		return nil, fmt.Errorf("%w: rounds %d outside 1..%d", ErrInvalidInput, e.rounds, MaxRounds)
	}

	if e.format == FormatLegacy && (e.adaptive || e.rounds != LegacyRounds) {
		return nil, fmt.Errorf("%w: legacy format requires %d fixed rounds", ErrInvalidInput, LegacyRounds)
	}

	var err error

	if e.compressor, err = symbolic.New(e.seed, e.compressorOpts...); err != nil {
		return nil, err
	}

	if e.operator, err = operator.New(e.seed); err != nil {
		return nil, err
	}

	if e.cipher, err = gcbc.New(e.seed); err != nil {
		return nil, err
	}

	if e.mac, err = mac.New(e.seed); err != nil {
		return nil, err
	}

	return e, nil
}

// Strategy returns the configured KEM strategy.
func (e *Encryptor) Strategy() kem.Strategy {
	return e.strategy
}

// Format returns the capsule format.
func (e *Encryptor) Format() Format {
	return e.format
}

// Encrypt seals plaintext into a capsule.
func (e *Encryptor) Encrypt(plaintext []byte) ([]byte, error) {
	r := run{op: OpEncrypt, observer: e.observer}

	r.enter(StateIdle, len(plaintext))
	r.enter(StateCompressing, len(plaintext))

	compressed, err := e.compressor.Compress(plaintext)
	if err != nil {
		return nil, r.fail(fmt.Errorf("compressing: %w", err))
	}

	r.enter(StateTransforming, len(compressed))

	transformed := e.operator.Apply(compressed)

	r.enter(StateEncapsulating, len(transformed))

	enc, err := e.strategy.Encapsulate(e.seed)
	if err != nil {
		return nil, r.fail(fmt.Errorf("encapsulating: %w", err))
	}

	rounds := e.selectRounds(r, compressed, len(transformed))

	ciphertext, err := e.cipher.Transform(transformed, enc.IV(), rounds)
	if err != nil {
		return nil, r.fail(fmt.Errorf("ciphering: %w", err))
	}

	section := ciphertext
	if e.format == FormatTagged {
		section = append(encodeRounds(rounds), ciphertext...)
	}

	r.enter(StateAuthenticating, len(section))

	capsule := Capsule{
		PublicValue: enc.PublicValue,
		Tag:         e.mac.Generate(section),
		Section:     section,
	}.Bytes()

	r.enter(StateFramed, len(capsule))

	return capsule, nil
}

// EncryptFrom encrypts any input that can present itself as bytes.
func (e *Encryptor) EncryptFrom(src ToBytes) ([]byte, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: nil input", ErrInvalidInput)
	}

	data, err := src.ToBytes()
	if err != nil {
		return nil, err
	}

	return e.Encrypt(data)
}

// Decrypt opens a capsule. The tag is verified before anything else is derived from the ciphertext.
func (e *Encryptor) Decrypt(data []byte) ([]byte, error) {
	r := run{op: OpDecrypt, observer: e.observer}

	r.enter(StateFramed, len(data))

	capsule, err := ParseCapsule(data)
	if err != nil {
		return nil, r.fail(err)
	}

	r.enter(StateVerifyingMAC, len(capsule.Section))

	if err := e.mac.Check(capsule.Section, capsule.Tag); err != nil {
		return nil, r.fail(err)
	}

	rounds, ciphertext, err := capsule.Rounds(e.format)
	if err != nil {
		return nil, r.fail(err)
	}

	applied := autotune.PlanForRounds(rounds)
	r.emit(Event{State: StateDeciphering, Size: len(ciphertext), Plan: &applied})

	sharedSecret, err := e.strategy.Decapsulate(e.seed, capsule.PublicValue)
	if err != nil {
		return nil, r.fail(fmt.Errorf("decapsulating: %w", err))
	}

	transformed, err := e.cipher.Transform(ciphertext, kem.IV(sharedSecret), rounds)
	if err != nil {
		return nil, r.fail(fmt.Errorf("deciphering: %w", err))
	}

	r.enter(StateReversingTransform, len(transformed))

	compressed := e.operator.Reverse(transformed)

	r.enter(StateDecompressing, len(compressed))

	plaintext, err := e.compressor.Decompress(compressed)
	if err != nil {
		return nil, r.fail(err)
	}

	r.enter(StateIdle, len(plaintext))

	return plaintext, nil
}

// DecryptText decrypts a capsule whose plaintext must be valid UTF-8.
func (e *Encryptor) DecryptText(data []byte) (string, error) {
	plaintext, err := e.Decrypt(data)
	if err != nil {
		return "", err
	}

	if !utf8.Valid(plaintext) {
		return "", fmt.Errorf("%w: plaintext is not valid UTF-8", ErrInvalidInput)
	}

	return string(plaintext), nil
}

// selectRounds returns the round count for one encryption and enters StateCiphering with it.
// The autotuner's plan is always computed and reported; it decides the count only in adaptive mode.
func (e *Encryptor) selectRounds(r run, compressed []byte, size int) int {
	suggested, entropy := autotune.SuggestFor(compressed)

	applied := autotune.PlanForRounds(e.rounds)
	if e.adaptive {
		applied = suggested
	}

	r.emit(Event{
		State:     StateCiphering,
		Size:      size,
		Plan:      &applied,
		Suggested: &suggested,
		Adaptive:  e.adaptive,
		Entropy:   entropy,
	})

	return applied.Rounds
}
