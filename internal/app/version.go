package app

import (
	"fmt"
	"io"
)

// Version is the application version. Overridable at build time via
// -ldflags "-X github.com/agbru/readnum/internal/app.Version=v1.2.3".
var Version = "dev"

// HasVersionFlag reports whether the arguments request version output.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "-version", "--version", "-V":
			return true
		}
	}
	return false
}

// PrintVersion writes the version banner.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "readnum %s\n", Version)
}
