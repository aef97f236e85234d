package symbolic

import (
	"bytes"
	"crypto/rand"
	"errors"
	"testing"
)

func newCompressor(t *testing.T, opts ...Option) *Compressor {
	t.Helper()

	c, err := New([]byte("g25final"), opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	return c
}

func TestCompress_RoundTrip(t *testing.T) {
	random := make([]byte, 4096)
	if _, err := rand.Read(random); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		data []byte
	}{
		{"empty", []byte{}},
		{"single byte", []byte{0x42}},
		{"text", []byte("Teste de compressão G simbólica Ghost V25G Final!")},
		{"repetitive", bytes.Repeat([]byte("abc"), 5000)},
		{"random", random},
		{"zeros", make([]byte, 2048)},
	}

	compressors := map[string]*Compressor{
		"default":  newCompressor(t),
		"adaptive": newCompressor(t, WithAdaptiveLevel()),
	}

	for cname, c := range compressors {
		for _, tt := range tests {
			t.Run(cname+"/"+tt.name, func(t *testing.T) {
				frame, err := c.Compress(tt.data)
				if err != nil {
					t.Fatalf("Compress() error = %v", err)
				}

				got, err := c.Decompress(frame)
				if err != nil {
					t.Fatalf("Decompress() error = %v", err)
				}

				if !bytes.Equal(got, tt.data) {
					t.Errorf("round trip mismatch: got %d bytes, want %d", len(got), len(tt.data))
				}
			})
		}
	}
}

func TestCompress_EmptyFrame(t *testing.T) {
	c := newCompressor(t)

	frame, err := c.Compress(nil)
	if err != nil {
		t.Fatal(err)
	}

	want := []byte{0x00, 'G', 0x00}
	if !bytes.Equal(frame, want) {
		t.Errorf("Compress(empty) = %x, want %x", frame, want)
	}

	got, err := c.Decompress(want)
	if err != nil {
		t.Fatalf("Decompress(empty frame) error = %v", err)
	}

	if len(got) != 0 {
		t.Errorf("Decompress(empty frame) = %x, want empty", got)
	}
}

func TestCompress_FrameHeader(t *testing.T) {
	c := newCompressor(t)

	frame, err := c.Compress([]byte("hello world"))
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(frame[:2], Marker[:]) {
		t.Errorf("frame marker = %x, want %x", frame[:2], Marker)
	}

	if Kind(frame[2]) != KindCompressed {
		t.Errorf("frame kind = 0x%02x, want 0x%02x", frame[2], KindCompressed)
	}
}

func TestCompress_PayloadIsSeedEncoded(t *testing.T) {
	a, err := New([]byte("seed-a"))
	if err != nil {
		t.Fatal(err)
	}

	b, err := New([]byte("seed-b"))
	if err != nil {
		t.Fatal(err)
	}

	data := []byte("identical input for both compressors")

	fa, _ := a.Compress(data)
	fb, _ := b.Compress(data)

	if bytes.Equal(fa, fb) {
		t.Error("frames under different seeds should differ")
	}

	if _, err := b.Decompress(fa); err == nil {
		t.Error("decompressing with the wrong seed should fail")
	}
}

func TestDecompress_Errors(t *testing.T) {
	c := newCompressor(t)

	tests := []struct {
		name  string
		frame []byte
		want  error
	}{
		{"nil", nil, ErrFraming},
		{"one byte", []byte{0x00}, ErrFraming},
		{"wrong marker", []byte{0x01, 'G', 0x00}, ErrFraming},
		{"marker only", []byte{0x00, 'G'}, ErrFraming},
		{"empty with trailing bytes", []byte{0x00, 'G', 0x00, 0xaa}, ErrFraming},
		{"unknown kind", []byte{0x00, 'G', 0x02}, ErrUnknownKind},
		{"unknown kind high", []byte{0x00, 'G', 0xff, 0x01}, ErrUnknownKind},
		{"compressed without payload", []byte{0x00, 'G', 0x01}, ErrDecompression},
		{"compressed garbage", []byte{0x00, 'G', 0x01, 0xde, 0xad, 0xbe, 0xef}, ErrDecompression},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Decompress(tt.frame)
			if !errors.Is(err, tt.want) {
				t.Errorf("Decompress() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestDecompress_TruncatedStream(t *testing.T) {
	c := newCompressor(t)

	frame, err := c.Compress(bytes.Repeat([]byte("truncate me "), 200))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := c.Decompress(frame[:len(frame)-4]); !errors.Is(err, ErrDecompression) {
		t.Errorf("Decompress(truncated) error = %v, want ErrDecompression", err)
	}
}

func TestDecompress_MaxSize(t *testing.T) {
	c := newCompressor(t, WithMaxSize(1024))

	frame, err := c.Compress(make([]byte, 4096))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := c.Decompress(frame); !errors.Is(err, ErrDecompression) {
		t.Errorf("Decompress(oversized) error = %v, want ErrDecompression", err)
	}

	frame, err = c.Compress(make([]byte, 1024))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := c.Decompress(frame); err != nil {
		t.Errorf("Decompress(at limit) error = %v", err)
	}
}

func TestDecompress_DoesNotModifyInput(t *testing.T) {
	c := newCompressor(t)

	frame, err := c.Compress([]byte("keep my bytes"))
	if err != nil {
		t.Fatal(err)
	}

	snapshot := append([]byte(nil), frame...)

	if _, err := c.Decompress(frame); err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(frame, snapshot) {
		t.Error("Decompress modified its input")
	}
}

func TestNew_EmptySeed(t *testing.T) {
	if _, err := New(nil); !errors.Is(err, ErrEmptySeed) {
		t.Errorf("New(nil) error = %v, want ErrEmptySeed", err)
	}
}
