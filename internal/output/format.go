// Package output renders gfshard CLI results: shard and share listings,
// operation summaries, and sanitized errors, as plain text for a
// terminal or JSON for pipelines.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Format selects how results are rendered.
type Format string

// Supported output formats. FormatAuto resolves to text on a TTY and
// JSON otherwise, so scripted callers get machine-readable output
// without passing a flag.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatAuto Format = "auto"
)

// ParseFormat maps the --output flag value to a Format. Anything other
// than "text" or "json" means auto-detection.
func ParseFormat(s string) Format {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON
	case "text":
		return FormatText
	default:
		return FormatAuto
	}
}

// DetectFormat resolves FormatAuto against the actual output target:
// text when w is a terminal, JSON when output is piped or redirected.
// Explicit formats pass through unchanged.
func DetectFormat(w io.Writer, explicit Format) Format {
	if explicit != FormatAuto {
		return explicit
	}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) { //nolint:gosec // G115: Fd fits in int on supported platforms
		return FormatText
	}
	return FormatJSON
}

// Formatter renders result values in a fixed format to a fixed writer,
// resolved once at CLI startup.
type Formatter struct {
	format Format
	writer io.Writer
}

// NewFormatter creates a formatter writing to w in the given format.
func NewFormatter(format Format, w io.Writer) *Formatter {
	return &Formatter{format: format, writer: w}
}

// Format returns the resolved output format.
func (f *Formatter) Format() Format {
	return f.format
}

// Print renders v: indented JSON in JSON mode, v's natural text form
// otherwise (fmt.Stringer values such as Table render via String).
func (f *Formatter) Print(v any) error {
	if f.format == FormatJSON {
		enc := json.NewEncoder(f.writer)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	if s, ok := v.(fmt.Stringer); ok {
		_, err := fmt.Fprintln(f.writer, s.String())
		return err
	}
	_, err := fmt.Fprintf(f.writer, "%v\n", v)
	return err
}
