package paramkit_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/paramkit"
	"github.com/dmitrymomot/paramkit/rules"
)

func TestDefine(t *testing.T) {
	t.Parallel()

	t.Run("repeated calls return the same instance", func(t *testing.T) {
		t.Parallel()
		set := paramkit.MustSpecSet(
			paramkit.Required("cache_a", rules.NonEmptyString()),
			paramkit.Optional("cache_b", rules.PositiveInt(), 1),
		)

		first, err := paramkit.Define(set)
		require.NoError(t, err)
		second, err := paramkit.Define(set)
		require.NoError(t, err)
		assert.Same(t, first, second)
	})

	t.Run("structurally identical specs share one validator", func(t *testing.T) {
		t.Parallel()
		build := func() *paramkit.SpecSet {
			return paramkit.MustSpecSet(
				paramkit.Required("cache_c", rules.NonEmptyString()),
				paramkit.Optional("cache_d", rules.IntRange(1, 10), 5),
			)
		}

		first, err := paramkit.Define(build())
		require.NoError(t, err)
		second, err := paramkit.Define(build())
		require.NoError(t, err)
		assert.Same(t, first, second)
	})

	t.Run("different options compile different validators", func(t *testing.T) {
		t.Parallel()
		set := paramkit.MustSpecSet(paramkit.Required("cache_e", rules.Int()))

		mapped, err := paramkit.Define(set)
		require.NoError(t, err)
		list, err := paramkit.Define(set, paramkit.WithOutputMode(paramkit.OutputList))
		require.NoError(t, err)
		assert.NotSame(t, mapped, list)
	})

	t.Run("anonymous capabilities cache by spec identity only", func(t *testing.T) {
		t.Parallel()
		build := func() *paramkit.SpecSet {
			return paramkit.MustSpecSet(paramkit.Required("cache_f", anonCap{}))
		}

		set := build()
		first, err := paramkit.Define(set)
		require.NoError(t, err)
		second, err := paramkit.Define(set)
		require.NoError(t, err)
		assert.Same(t, first, second)

		other, err := paramkit.Define(build())
		require.NoError(t, err)
		assert.NotSame(t, first, other)
	})

	t.Run("delimiter characters in rule names cannot alias another spec", func(t *testing.T) {
		t.Parallel()
		// A rule whose name spells out a second descriptor field must not
		// make a one-param set share a cache slot with a real two-param set.
		crafted := rules.New(`int";"cache_j":opt:"int`, func(value any) (any, error) {
			return value, nil
		})
		narrow := paramkit.MustSpecSet(paramkit.Required("cache_i", crafted))
		wide := paramkit.MustSpecSet(
			paramkit.Required("cache_i", rules.Int()),
			paramkit.Optional("cache_j", rules.Int(), 1),
		)

		first, err := paramkit.Define(narrow)
		require.NoError(t, err)
		second, err := paramkit.Define(wide)
		require.NoError(t, err)
		assert.NotSame(t, first, second)

		res, err := second.Validate(map[string]any{"cache_i": 1, "cache_j": 2})
		require.NoError(t, err)
		v, ok := res.Get("cache_j")
		require.True(t, ok)
		assert.Equal(t, int64(2), v)
	})

	t.Run("nil spec set fails", func(t *testing.T) {
		t.Parallel()
		_, err := paramkit.Define(nil)
		assert.ErrorIs(t, err, paramkit.ErrSpecDefinition)
	})

	t.Run("concurrent callers receive one validator", func(t *testing.T) {
		t.Parallel()
		set := paramkit.MustSpecSet(
			paramkit.Required("cache_g", rules.UUID()),
			paramkit.Optional("cache_h", rules.Bool(), true),
		)

		const callers = 64
		var (
			wg   sync.WaitGroup
			got  [callers]*paramkit.CompiledValidator
			errs [callers]error
		)
		start := make(chan struct{})
		for i := 0; i < callers; i++ {
			wg.Add(1)
			go func(n int) {
				defer wg.Done()
				<-start
				got[n], errs[n] = paramkit.Define(set)
			}(i)
		}
		close(start)
		wg.Wait()

		for i := 0; i < callers; i++ {
			require.NoError(t, errs[i])
			assert.Same(t, got[0], got[i])
		}
	})
}

// anonCap implements Capability without a name or inline support.
type anonCap struct{}

func (anonCap) Check(value any) (any, error) { return value, nil }
