package rules_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/paramkit/rules"
)

func TestNonEmptyString(t *testing.T) {
	t.Parallel()
	rule := rules.NonEmptyString()

	t.Run("accepts a non-empty string unchanged", func(t *testing.T) {
		t.Parallel()
		got, err := rule.Check("Teddy Bear")
		require.NoError(t, err)
		assert.Equal(t, "Teddy Bear", got)
	})

	t.Run("keeps surrounding whitespace on accept", func(t *testing.T) {
		t.Parallel()
		got, err := rule.Check("  x  ")
		require.NoError(t, err)
		assert.Equal(t, "  x  ", got)
	})

	t.Run("rejects empty and whitespace-only strings", func(t *testing.T) {
		t.Parallel()
		for _, value := range []string{"", "   ", "\t\n"} {
			_, err := rule.Check(value)
			assert.Error(t, err, "value %q", value)
		}
	})

	t.Run("rejects non-strings without coercion", func(t *testing.T) {
		t.Parallel()
		_, err := rule.Check(42)
		assert.Error(t, err)
	})
}

func TestMinLenMaxLen(t *testing.T) {
	t.Parallel()

	t.Run("counts runes not bytes", func(t *testing.T) {
		t.Parallel()
		_, err := rules.MinLen(3).Check("héé")
		assert.NoError(t, err)
		_, err = rules.MaxLen(3).Check("héé")
		assert.NoError(t, err)
	})

	t.Run("enforces bounds", func(t *testing.T) {
		t.Parallel()
		_, err := rules.MinLen(3).Check("ab")
		assert.Error(t, err)
		_, err = rules.MaxLen(2).Check("abc")
		assert.Error(t, err)
	})

	t.Run("names embed the bound", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "min_len(3)", rules.MinLen(3).Name())
		assert.Equal(t, "max_len(2)", rules.MaxLen(2).Name())
	})
}

func TestMatches(t *testing.T) {
	t.Parallel()
	rule := rules.Matches(regexp.MustCompile(`^SKU-\d{4}$`))

	t.Run("accepts matching strings", func(t *testing.T) {
		t.Parallel()
		got, err := rule.Check("SKU-1234")
		require.NoError(t, err)
		assert.Equal(t, "SKU-1234", got)
	})

	t.Run("rejects non-matching strings", func(t *testing.T) {
		t.Parallel()
		_, err := rule.Check("SKU-12")
		assert.Error(t, err)
	})

	t.Run("name embeds the pattern", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, `matches(^SKU-\d{4}$)`, rule.Name())
	})
}
