package symbolic

import "errors"

var (
	// ErrFraming is returned when a frame is missing its marker or kind byte, or carries bytes it must not.
	ErrFraming = errors.New("invalid symbolic frame")
	// ErrUnknownKind is returned when the kind byte is neither KindEmpty nor KindCompressed.
	ErrUnknownKind = errors.New("unknown symbolic frame kind")
	// ErrDecompression is returned when the generic decompressor rejects the decoded payload.
	ErrDecompression = errors.New("decompressing symbolic payload")
	// ErrEmptySeed is returned when a Compressor is constructed without a seed.
	ErrEmptySeed = errors.New("symbolic: seed must not be empty")
)
