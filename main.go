// Command ghostenc seals files into seed-derived capsules and opens them again.
package main

import (
	"fmt"
	"os"

	"github.com/idelchi/ghostenc/internal/commands"
	"github.com/idelchi/ghostenc/internal/config"
)

// version is set at build time.
var version = "unknown - unofficial & generated by unknown"

func main() {
	if err := commands.Execute(&config.Config{}, version); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())

		os.Exit(1)
	}
}
