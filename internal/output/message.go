package output

import (
	"fmt"
	"os"
)

// Warn prints a warning to stderr. The CLI uses it for non-fatal
// conditions: an unreadable config file, a logger that fails to close.
func Warn(msg string) {
	_, _ = fmt.Fprintln(os.Stderr, "warning: "+msg)
}

// Warnf is Warn with printf formatting.
func Warnf(format string, args ...any) {
	Warn(fmt.Sprintf(format, args...))
}
