package argcheck

import (
	"errors"
	"fmt"
)

// Sentinel errors identifying each validation failure kind. Use errors.Is
// to check which constraint was violated.
var (
	// ErrNullArgument is returned when a value (or the argument name
	// itself) is nil at a point that requires it to be non-nil.
	ErrNullArgument = errors.New("argument is nil")

	// ErrOnlyWhitespace is returned when NotOnlyWhitespace is requested
	// and the value is empty or consists entirely of whitespace.
	ErrOnlyWhitespace = errors.New("argument is empty or whitespace-only")

	// ErrZeroLength is returned when NotZeroLength is requested and the
	// value has zero length.
	ErrZeroLength = errors.New("argument has zero length")

	// ErrInvalidRange is returned when the minimum length exceeds the
	// maximum length.
	ErrInvalidRange = errors.New("minimum length exceeds maximum length")

	// ErrLengthMismatch is returned when an exact length is required and
	// the actual length differs.
	ErrLengthMismatch = errors.New("argument length differs from required length")

	// ErrLengthBelowMinimum is returned when the actual length is below
	// the minimum.
	ErrLengthBelowMinimum = errors.New("argument length below minimum")

	// ErrLengthAboveMaximum is returned when the actual length exceeds
	// the maximum.
	ErrLengthAboveMaximum = errors.New("argument length above maximum")
)

// Error describes a single validation failure. Name is the caller-declared
// argument name; Actual, Min and Max are populated for length and range
// failures. The failure kind is the wrapped sentinel, so errors.Is works
// against the package sentinels while errors.As recovers the details.
type Error struct {
	Name   string
	Actual int
	Min    int
	Max    int

	kind error
}

func (e *Error) Error() string {
	switch e.kind {
	case ErrInvalidRange:
		return fmt.Sprintf("%s: %s (%d > %d)", e.Name, e.kind, e.Min, e.Max)
	case ErrLengthMismatch:
		return fmt.Sprintf("%s: %s (got %d, want %d)", e.Name, e.kind, e.Actual, e.Min)
	case ErrLengthBelowMinimum:
		return fmt.Sprintf("%s: %s (got %d, want at least %d)", e.Name, e.kind, e.Actual, e.Min)
	case ErrLengthAboveMaximum:
		return fmt.Sprintf("%s: %s (got %d, want at most %d)", e.Name, e.kind, e.Actual, e.Max)
	default:
		return fmt.Sprintf("%s: %s", e.Name, e.kind)
	}
}

// Unwrap exposes the failure-kind sentinel for errors.Is and errors.As.
func (e *Error) Unwrap() error { return e.kind }

func newError(kind error, name string) *Error {
	return &Error{Name: name, kind: kind}
}

func newLengthError(kind error, name string, actual, min, max int) *Error {
	return &Error{Name: name, Actual: actual, Min: min, Max: max, kind: kind}
}
