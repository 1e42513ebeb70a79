package argcheck_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/argkit/pkg/argcheck"
)

func TestErrorMessages(t *testing.T) {
	t.Run("nil argument names the argument", func(t *testing.T) {
		err := argcheck.Validate(nil, "table")
		require.Error(t, err)
		assert.Equal(t, "table: argument is nil", err.Error())
	})

	t.Run("length mismatch reports actual and required", func(t *testing.T) {
		err := argcheck.ValidateExactLen(ptr("abc"), "code", argcheck.None, 5)
		require.Error(t, err)
		assert.Equal(t, "code: argument length differs from required length (got 3, want 5)", err.Error())
	})

	t.Run("below minimum reports the bound", func(t *testing.T) {
		err := argcheck.ValidateLen(ptr("ab"), "code", argcheck.None, 3, 5)
		require.Error(t, err)
		assert.Equal(t, "code: argument length below minimum (got 2, want at least 3)", err.Error())
	})

	t.Run("above maximum reports the bound", func(t *testing.T) {
		err := argcheck.ValidateLen(ptr("abcdef"), "code", argcheck.None, 3, 5)
		require.Error(t, err)
		assert.Equal(t, "code: argument length above maximum (got 6, want at most 5)", err.Error())
	})

	t.Run("invalid range reports both bounds", func(t *testing.T) {
		err := argcheck.ValidateLen(ptr("abc"), "code", argcheck.None, 5, 3)
		require.Error(t, err)
		assert.Equal(t, "code: minimum length exceeds maximum length (5 > 3)", err.Error())
	})
}

func TestErrorUnwrap(t *testing.T) {
	t.Run("every failure unwraps to its sentinel", func(t *testing.T) {
		err := argcheck.Validate(ptr("  "), "v")
		require.Error(t, err)

		var argErr *argcheck.Error
		require.ErrorAs(t, err, &argErr)
		assert.ErrorIs(t, argErr.Unwrap(), argcheck.ErrOnlyWhitespace)
	})

	t.Run("sentinels are distinguishable", func(t *testing.T) {
		err := argcheck.ValidateWith(ptr(""), "v", argcheck.NotZeroLength)
		assert.True(t, errors.Is(err, argcheck.ErrZeroLength))
		assert.False(t, errors.Is(err, argcheck.ErrOnlyWhitespace))
		assert.False(t, errors.Is(err, argcheck.ErrNullArgument))
	})
}
