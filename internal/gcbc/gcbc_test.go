package gcbc

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"
)

var testIV = []byte("ivivivivivivivi!") //nolint:gochecknoglobals

func newCipher(t *testing.T, key string) *Cipher {
	t.Helper()

	c, err := New([]byte(key))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	return c
}

func TestTransform_KnownVector(t *testing.T) {
	c := newCipher(t, "secret")

	got, err := c.Transform([]byte("hello world"), testIV, 9)
	if err != nil {
		t.Fatal(err)
	}

	if hex.EncodeToString(got) != "7276666863226d7c786868" {
		t.Errorf("Transform() = %x, want 7276666863226d7c786868", got)
	}
}

func TestTransform_Involution(t *testing.T) {
	c := newCipher(t, "secret")
	data := []byte("chained xor mode round trip")

	for _, rounds := range []int{1, 2, 3, 6, 9, 11, 13} {
		once, err := c.Transform(data, testIV, rounds)
		if err != nil {
			t.Fatal(err)
		}

		twice, err := c.Transform(once, testIV, rounds)
		if err != nil {
			t.Fatal(err)
		}

		if !bytes.Equal(twice, data) {
			t.Errorf("rounds=%d: Transform(Transform(x)) != x", rounds)
		}
	}
}

func TestTransform_Parity(t *testing.T) {
	c := newCipher(t, "secret")
	data := []byte("parity decides the outcome")

	single, err := c.Transform(data, testIV, 1)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		rounds int
		want   []byte
	}{
		{0, data},
		{1, single},
		{2, data},
		{6, data},
		{9, single},
		{13, single},
	}

	for _, tt := range tests {
		got, err := c.Transform(data, testIV, tt.rounds)
		if err != nil {
			t.Fatal(err)
		}

		if !bytes.Equal(got, tt.want) {
			t.Errorf("rounds=%d: got %x, want %x", tt.rounds, got, tt.want)
		}
	}

	if bytes.Equal(single, data) {
		t.Error("a single round should change the data")
	}
}

func TestTransform_Errors(t *testing.T) {
	c := newCipher(t, "secret")

	if _, err := c.Transform([]byte("x"), nil, 1); !errors.Is(err, ErrEmptyIV) {
		t.Errorf("empty iv error = %v, want ErrEmptyIV", err)
	}

	if _, err := c.Transform([]byte("x"), testIV, -1); !errors.Is(err, ErrInvalidRounds) {
		t.Errorf("negative rounds error = %v, want ErrInvalidRounds", err)
	}

	if _, err := New(nil); !errors.Is(err, ErrEmptyKey) {
		t.Errorf("New(nil) error = %v, want ErrEmptyKey", err)
	}
}

func TestTransform_Empty(t *testing.T) {
	c := newCipher(t, "secret")

	got, err := c.Transform(nil, testIV, 9)
	if err != nil {
		t.Fatal(err)
	}

	if len(got) != 0 {
		t.Errorf("Transform(empty) = %x, want empty", got)
	}
}
