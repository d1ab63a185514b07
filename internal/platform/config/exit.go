package config

import (
	"fmt"
	"os"
)

// ExitPrefix is prepended to fatal messages written by Exitf.
const ExitPrefix = "avatargen: "

// Exitf writes a formatted error message to stderr and exits with code 1.
// Command entry points use it for startup failures before logging is set up.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, ExitPrefix+format+"\n", args...)
	os.Exit(1)
}
