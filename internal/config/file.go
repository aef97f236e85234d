package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"github.com/tidwall/jsonc"
)

// LoadFile merges a JSON-with-comments configuration file into v.
// Keys use the flag names, e.g. {"kem": "hybrid", "rounds": 11}.
func LoadFile(v *viper.Viper, path string) error {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	v.SetConfigType("json")

	if err := v.MergeConfig(bytes.NewReader(jsonc.ToJSON(data))); err != nil {
		return fmt.Errorf("parsing config file %q: %w", path, err)
	}

	return nil
}
