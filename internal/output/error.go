package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	sherr "github.com/mrz1836/gfshard/pkg/errors"
)

// ErrorOutput represents a structured error for JSON output. Message is
// always the sanitized, non-parametric text for the error's Category;
// no internal detail (indices, coefficients, hash bytes) ever reaches it.
type ErrorOutput struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains the public-facing error fields.
type ErrorDetail struct {
	Category string `json:"category"`
	Message  string `json:"message"`
}

// FormatError formats an error for display, sanitizing it through
// pkg/errors so that only a fixed category and non-parametric message
// are ever shown to the caller.
func FormatError(w io.Writer, err error, format Format) error {
	if err == nil {
		return nil
	}

	category, message := categorize(err)

	if format == FormatJSON {
		output := ErrorOutput{Error: ErrorDetail{Category: category, Message: message}}
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(output)
	}

	_, writeErr := fmt.Fprintf(w, "Error: %s\n", message)
	return writeErr
}

// categorize extracts the public Category and sanitized message from err.
// Errors that are not a *sherr.Error are reported under the generic
// OperationFailed category.
func categorize(err error) (category, message string) {
	var se *sherr.Error
	if errors.As(err, &se) {
		return string(sherr.CategoryOf(se.Kind)), sherr.Sanitize(se)
	}
	return string(sherr.CategoryOperationFailed), sherr.Sanitize(err)
}

// FormatSuccess formats a success message.
func FormatSuccess(w io.Writer, message string, format Format) error {
	if format == FormatJSON {
		output := map[string]string{"status": "success", "message": message}
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(output)
	}
	_, err := fmt.Fprintln(w, message)
	return err
}
