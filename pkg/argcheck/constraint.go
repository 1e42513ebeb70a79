package argcheck

// Constraints is a bit set selecting which content checks apply to a
// validated value. Values combine with | and are immutable, so shared
// constants are safe to reuse across concurrent validation calls.
type Constraints uint8

const (
	// None suppresses all content checks, including any other constraint
	// bits present in the same set. It does not suppress length-range
	// checks, which always run.
	None Constraints = 1 << iota

	// NotNull requires the value to be non-nil.
	NotNull

	// NotOnlyWhitespace requires the value to contain at least one
	// non-whitespace character. A nil value counts as whitespace-only.
	NotOnlyWhitespace

	// NotZeroLength requires the value to have a length greater than zero.
	NotZeroLength

	// All requests every content check. It does not include None.
	All = NotNull | NotOnlyWhitespace | NotZeroLength
)

// Has reports whether every bit of flag is present in c.
func (c Constraints) Has(flag Constraints) bool {
	return c&flag == flag
}
