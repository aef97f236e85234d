package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/idelchi/gogen/pkg/validator"
	"github.com/spf13/viper"

	"github.com/idelchi/ghostenc/internal/kem"
	"github.com/idelchi/ghostenc/internal/pipeline"
)

const testHex = "000102030405060708090a0b0c0d0e0f"

func valid() Config {
	return Config{
		Seed:      Seed{Hex: testHex},
		Suffixes:  Suffixes{Encrypt: ".gh"},
		Parallel:  2,
		Strategy:  "deterministic",
		Policy:    "rederive",
		LogLevel:  "info",
		Operation: Encrypt,
		Files:     []string{"a.txt"},
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid"},
		{name: "passphrase only", mutate: func(c *Config) { c.Seed = Seed{Passphrase: "hunter2"} }},
		{name: "inspect without seed", mutate: func(c *Config) { c.Seed = Seed{}; c.Operation = Inspect }},
		{name: "legacy nine rounds", mutate: func(c *Config) { c.Legacy = true; c.Rounds = 9 }},
		{name: "adaptive", mutate: func(c *Config) { c.Adaptive = true }},
		{
			name:    "seed and passphrase",
			mutate:  func(c *Config) { c.Seed.Passphrase = "hunter2" },
			wantErr: "--seed is mutually exclusive with --passphrase",
		},
		{
			name:    "seed and file",
			mutate:  func(c *Config) { c.Seed.File = "seed.hex" },
			wantErr: "--seed is mutually exclusive with --seed-file",
		},
		{
			name:    "file and passphrase",
			mutate:  func(c *Config) { c.Seed = Seed{File: "seed.hex", Passphrase: "p"} },
			wantErr: "--seed-file is mutually exclusive with --passphrase",
		},
		{
			name:    "no seed",
			mutate:  func(c *Config) { c.Seed = Seed{} },
			wantErr: "is required",
		},
		{
			name:    "no files",
			mutate:  func(c *Config) { c.Files = nil },
			wantErr: "files",
		},
		{
			name:    "unknown strategy",
			mutate:  func(c *Config) { c.Strategy = "kyber" },
			wantErr: "--kem must be one of",
		},
		{
			name:    "unknown policy",
			mutate:  func(c *Config) { c.Policy = "trust" },
			wantErr: "--policy must be one of",
		},
		{
			name:    "too many rounds",
			mutate:  func(c *Config) { c.Rounds = 65 },
			wantErr: "--rounds",
		},
		{
			name:    "zero workers",
			mutate:  func(c *Config) { c.Parallel = 0 },
			wantErr: "--parallel",
		},
		{
			name:    "missing suffix",
			mutate:  func(c *Config) { c.Suffixes.Encrypt = "" },
			wantErr: "--encrypt-ext is a required field",
		},
		{
			name:    "legacy with other rounds",
			mutate:  func(c *Config) { c.Legacy = true; c.Rounds = 11 },
			wantErr: "--legacy",
		},
		{
			name:    "legacy adaptive",
			mutate:  func(c *Config) { c.Legacy = true; c.Adaptive = true },
			wantErr: "--legacy requires 9 fixed rounds",
		},
		{
			name:    "several errors",
			mutate:  func(c *Config) { c.Parallel = 0; c.Strategy = "kyber" },
			wantErr: "--kem must be one of",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			if tt.mutate != nil {
				tt.mutate(&cfg)
			}

			err := cfg.Validate(cfg)

			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v", err)
				}

				return
			}

			if !errors.Is(err, ErrInvalid) {
				t.Fatalf("Validate() error = %v, want ErrInvalid", err)
			}

			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_ValidationMessages(t *testing.T) {
	cfg := valid()
	cfg.Seed.Passphrase = "hunter2"
	cfg.Parallel = 0

	err := cfg.Validate(cfg)
	if !errors.Is(err, validator.ErrValidation) {
		t.Fatalf("Validate() error = %v, want validator.ErrValidation", err)
	}

	for _, want := range []string{
		"--seed is mutually exclusive with --passphrase",
		"--parallel must be 1 or greater",
	} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Validate() error = %q, want it to contain %q", err, want)
		}
	}

	if cfg.Display() {
		t.Errorf("Display() = true without --show")
	}

	cfg.Show = true
	if !cfg.Display() {
		t.Errorf("Display() = false with --show")
	}
}

func TestConfig_RoundOptions(t *testing.T) {
	capsuleRounds := func(cfg Config) byte {
		t.Helper()

		opts, err := cfg.PipelineOptions()
		if err != nil {
			t.Fatalf("PipelineOptions() error = %v", err)
		}

		e, err := pipeline.New([]byte("seed"), opts...)
		if err != nil {
			t.Fatalf("pipeline.New() error = %v", err)
		}

		capsule, err := e.Encrypt([]byte("round options"))
		if err != nil {
			t.Fatalf("Encrypt() error = %v", err)
		}

		return capsule[pipeline.HeaderSize+1]
	}

	cfg := valid()
	if got := capsuleRounds(cfg); got != pipeline.DefaultRounds {
		t.Errorf("default rounds = %d, want %d", got, pipeline.DefaultRounds)
	}

	cfg.Rounds = 13
	if got := capsuleRounds(cfg); got != 13 {
		t.Errorf("fixed rounds = %d, want 13", got)
	}
}

func TestSeed_Resolve(t *testing.T) {
	dir := t.TempDir()

	file := filepath.Join(dir, "seed.hex")
	if err := os.WriteFile(file, []byte(testHex+"\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	want := []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}

	for name, seed := range map[string]Seed{
		"hex":  {Hex: testHex},
		"file": {File: file},
	} {
		got, err := seed.Resolve()
		if err != nil {
			t.Fatalf("%s: Resolve() error = %v", name, err)
		}

		if !bytes.Equal(got, want) {
			t.Errorf("%s: Resolve() = %x, want %x", name, got, want)
		}
	}

	a, err := Seed{Passphrase: "correct horse"}.Resolve()
	if err != nil {
		t.Fatalf("Resolve(passphrase) error = %v", err)
	}

	b, _ := Seed{Passphrase: "correct horse"}.Resolve()
	c, _ := Seed{Passphrase: "battery staple"}.Resolve()

	if len(a) != SeedSize || !bytes.Equal(a, b) || bytes.Equal(a, c) {
		t.Errorf("passphrase seeds: %x %x %x", a, b, c)
	}

	if _, err := (Seed{}).Resolve(); !errors.Is(err, ErrNoSeed) {
		t.Errorf("Resolve() without source error = %v, want ErrNoSeed", err)
	}

	if _, err := (Seed{Hex: "zz"}).Resolve(); err == nil {
		t.Errorf("Resolve(invalid hex) succeeded")
	}

	if _, err := (Seed{File: filepath.Join(dir, "missing")}).Resolve(); err == nil {
		t.Errorf("Resolve(missing file) succeeded")
	}
}

func TestConfig_PipelineOptions(t *testing.T) {
	cfg := valid()
	cfg.Strategy = "hybrid"
	cfg.Policy = "bound"
	cfg.Legacy = true

	strategy, err := cfg.KEM()
	if err != nil {
		t.Fatalf("KEM() error = %v", err)
	}

	if _, ok := strategy.(kem.Hybrid); !ok || strategy.(kem.Hybrid).Policy != kem.PolicyBound {
		t.Errorf("KEM() = %#v, want bound hybrid", strategy)
	}

	opts, err := cfg.PipelineOptions()
	if err != nil {
		t.Fatalf("PipelineOptions() error = %v", err)
	}

	e, err := pipeline.New([]byte("seed"), opts...)
	if err != nil {
		t.Fatalf("pipeline.New() error = %v", err)
	}

	if e.Format() != pipeline.FormatLegacy || cfg.Format() != pipeline.FormatLegacy {
		t.Errorf("format = %v, want legacy", e.Format())
	}

	if e.Strategy().Name() != kem.NameHybrid {
		t.Errorf("strategy = %s, want hybrid", e.Strategy().Name())
	}

	cfg.Policy = "trust"
	if _, err := cfg.PipelineOptions(); !errors.Is(err, kem.ErrUnknownPolicy) {
		t.Errorf("PipelineOptions() error = %v, want ErrUnknownPolicy", err)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ghostenc.jsonc")

	content := `{
	// KEM selection
	"kem": "hybrid",
	"rounds": 11, /* fixed */
	"encrypt-ext": ".ghost",
}`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	v := viper.New()
	v.SetDefault("policy", "rederive")

	if err := LoadFile(v, path); err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if cfg.Strategy != "hybrid" || cfg.Rounds != 11 || cfg.Suffixes.Encrypt != ".ghost" || cfg.Policy != "rederive" {
		t.Errorf("unexpected config: %+v", cfg)
	}

	if err := LoadFile(v, filepath.Join(t.TempDir(), "missing.jsonc")); err == nil {
		t.Errorf("LoadFile(missing) succeeded")
	}
}
