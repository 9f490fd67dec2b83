// Package term provides terminal detection for log color decisions.
package term

import (
	"os"
	"strings"
)

// ColorsEnabled reports whether colored log output should be used: stdout
// must be a TTY, NO_COLOR unset (https://no-color.org), and TERM not dumb.
func ColorsEnabled() bool {
	return IsTerminal(os.Stdout) &&
		os.Getenv("NO_COLOR") == "" &&
		strings.ToLower(os.Getenv("TERM")) != "dumb"
}

// IsTerminal reports whether f is attached to a TTY (character device).
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}
