package guard_test

import (
	"errors"
	"testing"

	"sales/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expectedError := errors.New("entity not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

func TestConstructorGuardUsageExample(t *testing.T) {
	type lineNumber struct {
		value int
		guard guard.ConstructorGuard
	}

	errLineNumberNotConstructed := errors.New("LineNumber must be created via NewLineNumber")

	newLineNumber := func(value int) (lineNumber, error) {
		if value <= 0 {
			return lineNumber{}, errors.New("line number must be positive")
		}
		return lineNumber{value: value, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		n, err := newLineNumber(3)

		require.NoError(t, err)
		require.NoError(t, n.guard.Validate(errLineNumberNotConstructed))
		assert.Equal(t, 3, n.value)
	})

	t.Run("zero_value_construction_validation", func(t *testing.T) {
		var n lineNumber

		assert.Equal(t, errLineNumberNotConstructed, n.guard.Validate(errLineNumberNotConstructed))
	})
}
