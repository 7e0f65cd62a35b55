package app

import (
	"fmt"
	"io"
)

// HasVersionFlag reports whether args contains a version flag. It is checked
// before full flag parsing so "primkit -version" works even alongside
// otherwise-invalid flags.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		if arg == "-version" || arg == "--version" {
			return true
		}
	}
	return false
}

// PrintVersion writes the version banner.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "primkit %s\n", Version)
}
