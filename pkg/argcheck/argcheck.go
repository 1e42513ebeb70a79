package argcheck

import (
	"math"
	"strings"
)

// NoMaxLength is the default upper length bound, meaning no restriction
// beyond the content checks.
const NoMaxLength = math.MaxInt

// Validate checks value against the All constraints with no length
// restriction. Shorthand for ValidateLen(value, name, All, 0, NoMaxLength).
func Validate(value *string, name string) error {
	return ValidateLen(value, name, All, 0, NoMaxLength)
}

// ValidateWith checks value against cs with no length restriction.
func ValidateWith(value *string, name string, cs Constraints) error {
	return ValidateLen(value, name, cs, 0, NoMaxLength)
}

// ValidateExactLen checks value against cs and requires its length to
// equal length exactly.
func ValidateExactLen(value *string, name string, cs Constraints, length int) error {
	return ValidateLen(value, name, cs, length, length)
}

// ValidateLen checks value against cs and the inclusive length range
// [minLen, maxLen], returning nil on success or the first violation found.
//
// Checks run in a fixed order: the content checks selected by cs (nil,
// whitespace-only, zero length), then range consistency, then the length
// bounds. Supplying None suppresses the content checks only; the range
// checks always run and still require a non-nil value, so None does not
// turn ValidateLen into a no-op.
//
// A nil value under NotOnlyWhitespace without NotNull fails with
// ErrOnlyWhitespace rather than ErrNullArgument: nil counts as
// whitespace-only and the whitespace check runs first. Callers rely on
// this ordering.
func ValidateLen(value *string, name string, cs Constraints, minLen, maxLen int) error {
	if name == "" {
		return newError(ErrNullArgument, "name")
	}

	if !cs.Has(None) {
		if cs.Has(NotNull) && value == nil {
			return newError(ErrNullArgument, name)
		}
		if cs.Has(NotOnlyWhitespace) && (value == nil || strings.TrimSpace(*value) == "") {
			return newError(ErrOnlyWhitespace, name)
		}
		// Length cannot be measured on nil, whether or not NotNull was
		// requested.
		if value == nil {
			return newError(ErrNullArgument, name)
		}
		if cs.Has(NotZeroLength) && len(*value) == 0 {
			return newError(ErrZeroLength, name)
		}
	}

	if minLen > maxLen {
		return newLengthError(ErrInvalidRange, name, 0, minLen, maxLen)
	}
	if value == nil {
		return newError(ErrNullArgument, name)
	}

	actual := len(*value)
	if minLen == maxLen {
		if actual != minLen {
			return newLengthError(ErrLengthMismatch, name, actual, minLen, maxLen)
		}
		return nil
	}
	if actual < minLen {
		return newLengthError(ErrLengthBelowMinimum, name, actual, minLen, maxLen)
	}
	if actual > maxLen {
		return newLengthError(ErrLengthAboveMaximum, name, actual, minLen, maxLen)
	}
	return nil
}

// NotNil checks that value is non-nil, for argument types other than
// strings. It fails with ErrNullArgument when name is empty or value is
// nil.
func NotNil[T any](value *T, name string) error {
	if name == "" {
		return newError(ErrNullArgument, "name")
	}
	if value == nil {
		return newError(ErrNullArgument, name)
	}
	return nil
}
