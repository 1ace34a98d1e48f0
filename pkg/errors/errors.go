// Package errors provides the shared error taxonomy and sanitization layer
// used by the rs and sss packages. Internal failures carry rich detail for
// debugging (via Unwrap), but every user-visible message is generated
// through Sanitize and never includes indices, coefficients, hash bytes, or
// other internal state.
//
//nolint:revive // Package name intentionally shadows stdlib for domain-specific error handling
package errors

import stderrors "errors"

// Kind identifies the internal failure category of an Error. Kinds are
// finer-grained than the public Category they map to.
type Kind string

// Internal error kinds, per the error handling taxonomy.
const (
	KindInvalidConfig        Kind = "invalid_config"
	KindInvalidInput         Kind = "invalid_input"
	KindInvalidSecret        Kind = "invalid_secret"
	KindInvalidShare         Kind = "invalid_share"
	KindInsufficientShares   Kind = "insufficient_shares"
	KindIncompatibleShares   Kind = "incompatible_shares"
	KindSingular             Kind = "singular"
	KindCorruptedShards      Kind = "corrupted_shards"
	KindReconstructionFailed Kind = "reconstruction_failed"
	KindIncompleteStream     Kind = "incomplete_stream"
	KindDivByZero            Kind = "div_by_zero"
	KindZeroInverse          Kind = "zero_inverse"
)

// Category is one of the fixed, public-facing error categories. Every
// message shown to a caller is generated from a Category, never from a
// Kind or an underlying cause directly.
type Category string

// Public error categories.
const (
	CategoryInvalidConfig      Category = "InvalidConfig"
	CategoryInsufficientShares Category = "InsufficientShares"
	CategoryInvalidShareFormat Category = "InvalidShareFormat"
	CategoryIncompatibleShares Category = "IncompatibleShares"
	CategoryValidationFailed   Category = "ValidationFailed"
	CategoryOperationFailed    Category = "OperationFailed"
)

// categoryMessages holds the fixed, non-parametric message for each
// category. These strings are the only text ever shown to a caller.
//
//nolint:gochecknoglobals // read-only lookup table
var categoryMessages = map[Category]string{
	CategoryInvalidConfig:      "the supplied configuration is invalid",
	CategoryInsufficientShares: "not enough shares or shards were supplied",
	CategoryInvalidShareFormat: "a share or shard could not be parsed",
	CategoryIncompatibleShares: "the supplied shares or shards are not from the same operation",
	CategoryValidationFailed:   "validation failed",
	CategoryOperationFailed:    "the operation failed",
}

// kindCategory maps each internal Kind to the Category it is sanitized to.
//
//nolint:gochecknoglobals // read-only lookup table
var kindCategory = map[Kind]Category{
	KindInvalidConfig:        CategoryInvalidConfig,
	KindInvalidInput:         CategoryInvalidConfig,
	KindInvalidSecret:        CategoryInvalidConfig,
	KindInvalidShare:         CategoryInvalidShareFormat,
	KindInsufficientShares:   CategoryInsufficientShares,
	KindIncompatibleShares:   CategoryIncompatibleShares,
	KindSingular:             CategoryOperationFailed,
	KindCorruptedShards:      CategoryValidationFailed,
	KindReconstructionFailed: CategoryValidationFailed,
	KindIncompleteStream:     CategoryOperationFailed,
	KindDivByZero:            CategoryOperationFailed,
	KindZeroInverse:          CategoryOperationFailed,
}

// Error is the structured error type shared by rs and sss. It carries an
// internal Kind and an optional cause for debugging, but its Error()
// string is always the sanitized category message.
type Error struct {
	Kind  Kind
	Cause error
}

// New builds an Error of the given kind wrapping cause. cause may be nil.
func New(kind Kind, cause error) *Error {
	return &Error{Kind: kind, Cause: cause}
}

// Error implements the error interface. It intentionally returns only the
// sanitized, non-parametric message for the error's category so that
// indices, coefficients, and hash bytes never leak into logs or output
// that a caller might display verbatim.
func (e *Error) Error() string {
	return Sanitize(e)
}

// Unwrap exposes the underlying cause for errors.Is/errors.As, allowing
// callers (and tests) to inspect internal detail without it being part of
// the default error string.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error with the same Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// CategoryOf returns the public Category for a Kind.
func CategoryOf(kind Kind) Category {
	if c, ok := kindCategory[kind]; ok {
		return c
	}
	return CategoryOperationFailed
}

// Sanitize returns the fixed, non-parametric message for err's category.
// If err is not an *Error, it is treated as CategoryOperationFailed. This
// is the only function that should ever be used to build a user-visible
// error string.
func Sanitize(err error) string {
	e, ok := err.(*Error)
	if !ok {
		return categoryMessages[CategoryOperationFailed]
	}
	cat := CategoryOf(e.Kind)
	msg, ok := categoryMessages[cat]
	if !ok {
		return categoryMessages[CategoryOperationFailed]
	}
	return msg
}

// Is reports whether err is (or wraps) an *Error of the given kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if !stderrors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}

// Exit codes returned to the shell by the CLI layer.
const (
	ExitSuccess = 0
	ExitGeneral = 1
	ExitUsage   = 2
)

// categoryExitCode maps each public Category to the process exit code the
// CLI should return when an operation fails with that category.
//
//nolint:gochecknoglobals // read-only lookup table
var categoryExitCode = map[Category]int{
	CategoryInvalidConfig:      ExitUsage,
	CategoryInsufficientShares: ExitUsage,
	CategoryInvalidShareFormat: ExitUsage,
	CategoryIncompatibleShares: ExitUsage,
	CategoryValidationFailed:   ExitGeneral,
	CategoryOperationFailed:    ExitGeneral,
}

// ExitCode returns the process exit code appropriate for err. A nil err
// yields ExitSuccess; any error that is not an *Error yields ExitGeneral.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	e, ok := err.(*Error)
	if !ok {
		return ExitGeneral
	}
	if code, ok := categoryExitCode[CategoryOf(e.Kind)]; ok {
		return code
	}
	return ExitGeneral
}
