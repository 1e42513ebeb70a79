// Package argcheck provides declarative precondition checks for function
// arguments, replacing repetitive manual nil/empty/length guards with a
// single call at the boundary of a public operation.
//
// A call combines a value, a human-readable argument name for error
// reporting, a Constraints bit set selecting which content checks apply,
// and an inclusive length range. Checks run in a fixed order and the first
// violation is returned as a structured *Error wrapping one of the
// package's sentinel errors; there is no aggregation.
//
// # Architecture
//
// Constraints is a plain bitmask value (`constraint.go`) with no behavior
// beyond union and membership; all evaluation lives in the engine
// (`argcheck.go`). The engine is completely stateless and goroutine-safe:
// every call operates solely on its own arguments, so shared Constraints
// constants can be reused across any number of concurrent calls.
//
// The evaluation order is part of the contract. Content checks (nil,
// whitespace-only, zero length) run before length-range checks, and every
// length measurement is preceded by a nil re-assertion, so no length check
// ever dereferences a nil value. Supplying the None constraint suppresses
// the content checks only; the range checks still run, so a true
// pass-through also needs the full [0, NoMaxLength] range.
//
// # Usage
//
//	func CreateTable(name *string) error {
//	    if err := argcheck.ValidateLen(name, "name", argcheck.All, 1, 63); err != nil {
//	        return err
//	    }
//	    // ...
//	}
//
// Failures are distinguishable with errors.Is against the sentinel for
// each kind, and errors.As recovers the *Error carrying the offending
// argument's name and the actual versus expected lengths:
//
//	err := argcheck.ValidateExactLen(&code, "code", argcheck.None, 6)
//	if errors.Is(err, argcheck.ErrLengthMismatch) {
//	    var argErr *argcheck.Error
//	    errors.As(err, &argErr) // argErr.Actual, argErr.Min
//	}
//
// # Error Handling
//
// Validation failures are programmer or input errors: they are reported
// synchronously at the call site, never corrected or defaulted, and carry
// no retry semantics.
package argcheck
