package paramkit

// CompiledValidator is the product of compilation: a pure, reusable check
// routine for one spec set and one source/output mode combination. It holds
// no mutable state; a published validator may be shared by any number of
// concurrent callers.
type CompiledValidator struct {
	set         *SpecSet
	opts        options
	fn          validateFunc
	specialized bool
}

// Validate checks raw arguments against the compiled spec. Named-mode
// validators expect a map[string]any; positional-mode validators expect an
// []any no longer than the declared parameter count.
//
// On success the result contains every declared parameter, each either the
// caller-supplied value (post check, possibly coerced) or its default.
// Validation is fail-fast: parameters are checked in declaration order and
// the first violation is the one reported.
func (v *CompiledValidator) Validate(args any) (Result, error) {
	return v.fn(args)
}

// Spec returns the spec set this validator was compiled from.
func (v *CompiledValidator) Spec() *SpecSet { return v.set }

// Source returns the compiled source mode.
func (v *CompiledValidator) Source() SourceMode { return v.opts.source }

// Output returns the compiled output mode.
func (v *CompiledValidator) Output() OutputMode { return v.opts.output }

// Specialized reports whether the fast path was compiled. False means at
// least one capability lacked inline support, or the generic path was forced.
func (v *CompiledValidator) Specialized() bool { return v.specialized }

// Result holds validated values in declaration order.
type Result struct {
	set    *SpecSet
	values []any
	output OutputMode
}

func newResult(plan *compilationPlan, values []any) Result {
	return Result{set: plan.set, values: values, output: plan.opts.output}
}

// Len returns the number of validated values, which always equals the number
// of declared parameters.
func (r Result) Len() int { return len(r.values) }

// Get returns the validated value for name.
func (r Result) Get(name string) (any, bool) {
	if r.set == nil {
		return nil, false
	}
	i, ok := r.set.byName[name]
	if !ok {
		return nil, false
	}
	return r.values[i], true
}

// List returns the values in declaration order. The slice is a copy.
func (r Result) List() []any {
	out := make([]any, len(r.values))
	copy(out, r.values)
	return out
}

// Map returns the values keyed by parameter name. The map is freshly built.
func (r Result) Map() map[string]any {
	out := make(map[string]any, len(r.values))
	if r.set == nil {
		return out
	}
	for name, i := range r.set.byName {
		out[name] = r.values[i]
	}
	return out
}

// Values returns the result in the validator's declared output shape: a
// map[string]any for mapped output, an []any in declaration order for list
// output.
func (r Result) Values() any {
	if r.output == OutputList {
		return r.List()
	}
	return r.Map()
}
