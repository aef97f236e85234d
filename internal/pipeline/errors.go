package pipeline

import (
	"errors"
	"fmt"

	"github.com/idelchi/ghostenc/internal/mac"
	"github.com/idelchi/ghostenc/internal/symbolic"
)

var (
	// ErrFraming is returned for frames and capsules that do not follow the wire format.
	ErrFraming = symbolic.ErrFraming
	// ErrUnknownKind is returned when a compressed frame carries an unrecognized kind byte.
	ErrUnknownKind = symbolic.ErrUnknownKind
	// ErrDecompression is returned when the decoded payload does not inflate.
	ErrDecompression = symbolic.ErrDecompression
	// ErrIntegrity is returned when the capsule tag does not authenticate its ciphertext.
	ErrIntegrity = mac.ErrIntegrity
	// ErrMalformedCapsule is returned for capsules that are too short or carry an invalid round field.
	ErrMalformedCapsule = fmt.Errorf("malformed capsule: %w", ErrFraming)
	// ErrInvalidInput is returned for inputs and options the pipeline cannot accept.
	ErrInvalidInput = errors.New("invalid input")
)
