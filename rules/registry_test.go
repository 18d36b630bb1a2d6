package rules_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/paramkit/rules"
)

func TestRegistry(t *testing.T) {
	t.Parallel()

	t.Run("registers and resolves", func(t *testing.T) {
		t.Parallel()
		reg := rules.NewRegistry()
		require.NoError(t, reg.Register("qty", rules.PositiveInt()))

		capability, ok := reg.Resolve("qty")
		require.True(t, ok)
		_, err := capability.Check(1)
		assert.NoError(t, err)
	})

	t.Run("rejects duplicate names", func(t *testing.T) {
		t.Parallel()
		reg := rules.NewRegistry()
		require.NoError(t, reg.Register("qty", rules.PositiveInt()))
		err := reg.Register("qty", rules.Int())
		assert.ErrorIs(t, err, rules.ErrDuplicateRule)
	})

	t.Run("rejects empty name and nil capability", func(t *testing.T) {
		t.Parallel()
		reg := rules.NewRegistry()
		assert.Error(t, reg.Register("", rules.Int()))
		assert.Error(t, reg.Register("x", nil))
	})

	t.Run("resolve misses unknown names", func(t *testing.T) {
		t.Parallel()
		_, ok := rules.NewRegistry().Resolve("nope")
		assert.False(t, ok)
	})
}

func TestBuiltin(t *testing.T) {
	t.Parallel()

	t.Run("contains every parameterless rule", func(t *testing.T) {
		t.Parallel()
		reg := rules.Builtin()
		assert.Equal(t, []string{
			"bool",
			"float",
			"int",
			"non_empty_string",
			"non_negative_int",
			"positive_int",
			"string",
			"uuid",
		}, reg.Names())
	})

	t.Run("returns independent registries", func(t *testing.T) {
		t.Parallel()
		first := rules.Builtin()
		second := rules.Builtin()
		require.NoError(t, first.Register("custom", rules.Func("custom", func(v any) (any, error) {
			return nil, errors.New("never valid")
		})))

		_, ok := second.Resolve("custom")
		assert.False(t, ok)
	})
}
