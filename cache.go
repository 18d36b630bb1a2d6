package paramkit

import (
	"fmt"
	"log/slog"
	"sync"
)

// validatorCache is the process-wide descriptor→validator store. Entries are
// created lazily, never evicted (a compiled validator is small relative to
// call-site cardinality), and torn down with the process. The per-key
// sync.Once gives single-flight semantics: concurrent callers for one
// descriptor await a single compilation instead of each compiling.
type validatorCache struct {
	mu     sync.RWMutex
	values map[string]*CompiledValidator
	onces  map[string]*sync.Once
}

var globalValidators = &validatorCache{
	values: make(map[string]*CompiledValidator),
	onces:  make(map[string]*sync.Once),
}

// Define returns the compiled validator for the spec set and options,
// compiling at most once per distinct descriptor for the life of the process.
// Structurally identical spec sets built from named capabilities share one
// validator instance.
//
// Example:
//
//	gift := paramkit.MustSpecSet(
//		paramkit.Required("present_name", rules.NonEmptyString()),
//		paramkit.Optional("qty", rules.PositiveInt(), 1),
//	)
//	v, err := paramkit.Define(gift)
//	res, err := v.Validate(map[string]any{"present_name": "Teddy Bear"})
func Define(set *SpecSet, opts ...Option) (*CompiledValidator, error) {
	if set == nil {
		return nil, fmt.Errorf("%w: nil spec set", ErrSpecDefinition)
	}
	o := buildOptions(opts...)
	key := o.descriptor(set)
	return globalValidators.getOrCompile(key, func() *CompiledValidator {
		return compile(set, o)
	}), nil
}

// New compiles a validator without consulting the process-wide cache. Useful
// for short-lived specs and for comparing fast and generic paths in tests.
func New(set *SpecSet, opts ...Option) (*CompiledValidator, error) {
	if set == nil {
		return nil, fmt.Errorf("%w: nil spec set", ErrSpecDefinition)
	}
	return compile(set, buildOptions(opts...)), nil
}

// compile runs the planner and builder. Compilation cannot fail: every spec
// problem was rejected by NewSpecSet, and options are validated as they are
// applied.
func compile(set *SpecSet, o options) *CompiledValidator {
	plan := planValidation(set, o)
	v := buildValidator(plan)
	if l := o.logger; l != nil {
		l.Debug("compiled parameter validator",
			slog.Int("params", set.Len()),
			slog.Bool("specialized", v.specialized),
			slog.String("source", string(o.source)),
			slog.String("output", string(o.output)),
		)
	}
	return v
}

func (c *validatorCache) getOrCompile(key string, compile func() *CompiledValidator) *CompiledValidator {
	c.mu.RLock()
	if v, ok := c.values[key]; ok {
		c.mu.RUnlock()
		return v
	}
	c.mu.RUnlock()

	c.mu.Lock()
	once, ok := c.onces[key]
	if !ok {
		once = new(sync.Once)
		c.onces[key] = once
	}
	c.mu.Unlock()

	once.Do(func() {
		v := compile()
		c.mu.Lock()
		c.values[key] = v
		c.mu.Unlock()
	})

	// Once.Do returns only after the winning compilation stored its result,
	// so every caller observes a fully constructed entry.
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.values[key]
}
