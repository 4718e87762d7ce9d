package app

import (
	"fmt"
	"io"
)

// Version is the application version, overridden at build time via
// -ldflags "-X github.com/Oureyelet/funclab/internal/app.Version=v1.2.3".
var Version = "dev"

// HasVersionFlag reports whether the arguments request the version.
// Checked before flag parsing so -version works without a valid config.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		if arg == "-version" || arg == "--version" {
			return true
		}
	}
	return false
}

// PrintVersion writes the version line.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "funclab %s\n", Version)
}
