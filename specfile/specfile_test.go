package specfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/paramkit"
	"github.com/dmitrymomot/paramkit/rules"
	"github.com/dmitrymomot/paramkit/specfile"
)

const giftDoc = `
params:
  - name: present_name
    rule: non_empty_string
    required: true
  - name: qty
    rule: positive_int
    default: 1
options:
  source: named
  output: mapped
  strict: true
`

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("builds a working validator from YAML", func(t *testing.T) {
		t.Parallel()
		set, opts, err := specfile.Parse([]byte(giftDoc), rules.Builtin())
		require.NoError(t, err)
		assert.Equal(t, []string{"present_name", "qty"}, set.Names())

		v, err := paramkit.New(set, opts...)
		require.NoError(t, err)

		res, err := v.Validate(map[string]any{"present_name": "Teddy Bear"})
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"present_name": "Teddy Bear", "qty": int64(1)}, res.Map())

		_, err = v.Validate(map[string]any{"present_name": "x", "extra": 1})
		assert.ErrorIs(t, err, paramkit.ErrUnknownParameter)
	})

	t.Run("nil registry falls back to builtins", func(t *testing.T) {
		t.Parallel()
		_, _, err := specfile.Parse([]byte(giftDoc), nil)
		assert.NoError(t, err)
	})

	t.Run("parses positional list output with lenient keys", func(t *testing.T) {
		t.Parallel()
		doc := `
params:
  - name: a
    rule: int
    required: true
options:
  source: positional
  output: list
  strict: false
`
		set, opts, err := specfile.Parse([]byte(doc), nil)
		require.NoError(t, err)

		v, err := paramkit.New(set, opts...)
		require.NoError(t, err)
		assert.Equal(t, paramkit.SourcePositional, v.Source())
		assert.Equal(t, paramkit.OutputList, v.Output())

		res, err := v.Validate([]any{"7"})
		require.NoError(t, err)
		assert.Equal(t, []any{int64(7)}, res.Values())
	})

	t.Run("fails on unknown rule name", func(t *testing.T) {
		t.Parallel()
		doc := `
params:
  - name: a
    rule: telepathy
    required: true
`
		_, _, err := specfile.Parse([]byte(doc), nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, specfile.ErrUnknownRule)
		assert.Contains(t, err.Error(), "telepathy")
	})

	t.Run("fails on required param with default", func(t *testing.T) {
		t.Parallel()
		doc := `
params:
  - name: a
    rule: int
    required: true
    default: 1
`
		_, _, err := specfile.Parse([]byte(doc), nil)
		assert.ErrorIs(t, err, paramkit.ErrSpecDefinition)
	})

	t.Run("fails on default rejected by its rule", func(t *testing.T) {
		t.Parallel()
		doc := `
params:
  - name: a
    rule: positive_int
    default: -3
`
		_, _, err := specfile.Parse([]byte(doc), nil)
		assert.ErrorIs(t, err, paramkit.ErrSpecDefinition)
	})

	t.Run("fails on invalid yaml", func(t *testing.T) {
		t.Parallel()
		_, _, err := specfile.Parse([]byte("params: ["), nil)
		assert.ErrorIs(t, err, specfile.ErrParse)
	})

	t.Run("fails on unknown document keys", func(t *testing.T) {
		t.Parallel()
		doc := `
parameters:
  - name: a
`
		_, _, err := specfile.Parse([]byte(doc), nil)
		assert.ErrorIs(t, err, specfile.ErrParse)
	})

	t.Run("fails on empty document", func(t *testing.T) {
		t.Parallel()
		_, _, err := specfile.Parse(nil, nil)
		assert.ErrorIs(t, err, specfile.ErrParse)
	})

	t.Run("fails on invalid mode strings", func(t *testing.T) {
		t.Parallel()
		doc := `
params:
  - name: a
    rule: int
    required: true
options:
  source: telepathic
`
		_, _, err := specfile.Parse([]byte(doc), nil)
		assert.ErrorIs(t, err, specfile.ErrParse)
	})
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("reads a spec from disk", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "params.yaml")
		require.NoError(t, os.WriteFile(path, []byte(giftDoc), 0o600))

		set, _, err := specfile.Load(path, nil)
		require.NoError(t, err)
		assert.Equal(t, 2, set.Len())
	})

	t.Run("fails on missing file", func(t *testing.T) {
		t.Parallel()
		_, _, err := specfile.Load(filepath.Join(t.TempDir(), "absent.yaml"), nil)
		assert.ErrorIs(t, err, specfile.ErrParse)
	})
}
