// Package symbolic implements the framed compressor: zlib compression followed by a
// seed-keyed XOR re-encoding of the compressed bytes.
//
// Frame layout:
//
//	Marker[2] ∥ Kind[1] ∥ Payload
//
// KindEmpty frames carry no payload. KindCompressed frames carry the encoded zlib stream.
package symbolic

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"
)

// Marker prefixes every frame.
var Marker = [2]byte{0x00, 'G'} //nolint:gochecknoglobals

// Kind identifies the payload of a frame.
type Kind byte

const (
	// KindEmpty marks a frame produced from empty input.
	KindEmpty Kind = 0x00
	// KindCompressed marks a frame with an encoded zlib payload.
	KindCompressed Kind = 0x01
)

const (
	// HeaderSize is the length of marker plus kind.
	HeaderSize = len(Marker) + 1

	// DefaultMaxSize bounds the inflated size of a single frame.
	DefaultMaxSize = 256 << 20

	// adaptiveThreshold is the input size above which the adaptive level switches to best compression.
	adaptiveThreshold = 1024
)

// Compressor compresses and decompresses frames. It is immutable and safe for concurrent use.
type Compressor struct {
	seed     []byte
	adaptive bool
	maxSize  int64
}

// Option configures a Compressor.
type Option func(*Compressor)

// WithAdaptiveLevel selects best compression for inputs over 1 KiB and best speed otherwise.
func WithAdaptiveLevel() Option {
	return func(c *Compressor) {
		c.adaptive = true
	}
}

// WithMaxSize bounds the decompressed size of a frame. Values <= 0 keep the default.
func WithMaxSize(n int64) Option {
	return func(c *Compressor) {
		if n > 0 {
			c.maxSize = n
		}
	}
}

// New creates a Compressor keyed with a copy of seed.
func New(seed []byte, opts ...Option) (*Compressor, error) {
	if len(seed) == 0 {
		return nil, ErrEmptySeed
	}

	c := &Compressor{
		seed:    append([]byte(nil), seed...),
		maxSize: DefaultMaxSize,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Compress returns the frame for data.
func (c *Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return header(KindEmpty), nil
	}

	var buf bytes.Buffer

	buf.Write(header(KindCompressed))

	zw, err := zlib.NewWriterLevel(&buf, c.level(len(data)))
	if err != nil {
		return nil, fmt.Errorf("creating zlib writer: %w", err)
	}

	if _, err := zw.Write(data); err != nil {
		return nil, fmt.Errorf("compressing: %w", err)
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("flushing zlib stream: %w", err)
	}

	frame := buf.Bytes()
	c.encode(frame[HeaderSize:])

	return frame, nil
}

// Decompress validates frame and returns the original data.
func (c *Compressor) Decompress(frame []byte) ([]byte, error) {
	if len(frame) < len(Marker) || !bytes.Equal(frame[:len(Marker)], Marker[:]) {
		return nil, fmt.Errorf("%w: missing marker", ErrFraming)
	}

	if len(frame) < HeaderSize {
		return nil, fmt.Errorf("%w: missing kind byte", ErrFraming)
	}

	kind := Kind(frame[len(Marker)])
	payload := frame[HeaderSize:]

	switch kind {
	case KindEmpty:
		if len(payload) != 0 {
			return nil, fmt.Errorf("%w: %d trailing bytes after empty frame", ErrFraming, len(payload))
		}

		return []byte{}, nil
	case KindCompressed:
		decoded := append([]byte(nil), payload...)
		c.encode(decoded)

		return c.inflate(decoded)
	default:
		return nil, fmt.Errorf("%w: 0x%02x", ErrUnknownKind, byte(kind))
	}
}

// encode XORs data in place with the cyclic seed stream. It is its own inverse.
func (c *Compressor) encode(data []byte) {
	for i := range data {
		data[i] ^= c.seed[i%len(c.seed)]
	}
}

func (c *Compressor) inflate(stream []byte) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(stream))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecompression, err)
	}
	defer zr.Close()

	out, err := io.ReadAll(io.LimitReader(zr, c.maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecompression, err)
	}

	if int64(len(out)) > c.maxSize {
		return nil, fmt.Errorf("%w: output exceeds %d bytes", ErrDecompression, c.maxSize)
	}

	return out, nil
}

func (c *Compressor) level(size int) int {
	switch {
	case !c.adaptive:
		return zlib.DefaultCompression
	case size > adaptiveThreshold:
		return zlib.BestCompression
	default:
		return zlib.BestSpeed
	}
}

func header(kind Kind) []byte {
	return []byte{Marker[0], Marker[1], byte(kind)}
}
