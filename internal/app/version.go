package app

import (
	"fmt"
	"io"
)

// Version is the algcalc release version, overridable at link time with
// -ldflags "-X .../internal/app.Version=v1.2.3".
var Version = "dev"

// HasVersionFlag reports whether args request the version and nothing else.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		if arg == "-version" || arg == "--version" {
			return true
		}
	}
	return false
}

// PrintVersion writes the version line.
func PrintVersion(w io.Writer) {
	fmt.Fprintf(w, "algcalc %s\n", Version)
}
