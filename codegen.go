package paramkit

import (
	"fmt"
	"sort"
	"strconv"
)

// validateFunc is the compiled body of a validator.
type validateFunc func(raw any) (Result, error)

// buildValidator turns a plan into a compiled validator. It runs exactly once
// per distinct spec/options descriptor; everything per-call lives inside the
// returned closure.
func buildValidator(plan *compilationPlan) *CompiledValidator {
	var fn validateFunc
	if plan.specialized {
		fn = buildSpecialized(plan)
	} else {
		fn = buildGeneric(plan)
	}
	return &CompiledValidator{
		set:         plan.set,
		opts:        plan.opts,
		fn:          fn,
		specialized: plan.specialized,
	}
}

// buildSpecialized composes the fast path: one monomorphic closure per step,
// with the fetch strategy, default handling and inline check all resolved at
// build time. The per-call loop runs plain function values — no interface
// dispatch, no plan consultation.
func buildSpecialized(plan *compilationPlan) validateFunc {
	n := plan.set.Len()

	if plan.opts.source == SourcePositional {
		steps := make([]func(args, out []any) *ParamError, n)
		for i, st := range plan.steps {
			steps[i] = bindPositionalStep(st)
		}
		return func(raw any) (Result, error) {
			args, ok := raw.([]any)
			if !ok {
				return Result{}, shapeErr(SourcePositional, raw)
			}
			if len(args) > n {
				return Result{}, excessErr(n, len(args))
			}
			out := make([]any, n)
			for _, step := range steps {
				if perr := step(args, out); perr != nil {
					return Result{}, perr
				}
			}
			return newResult(plan, out), nil
		}
	}

	steps := make([]func(args map[string]any, out []any) *ParamError, n)
	for i, st := range plan.steps {
		steps[i] = bindNamedStep(st)
	}
	strict := plan.opts.strict
	declared := plan.set.byName
	return func(raw any) (Result, error) {
		args, ok := raw.(map[string]any)
		if !ok {
			return Result{}, shapeErr(SourceNamed, raw)
		}
		if strict {
			if perr := rejectUnknownKeys(args, declared); perr != nil {
				return Result{}, perr
			}
		}
		out := make([]any, n)
		for _, step := range steps {
			if perr := step(args, out); perr != nil {
				return Result{}, perr
			}
		}
		return newResult(plan, out), nil
	}
}

// bindNamedStep specializes one named-mode step. The required/default branch
// is decided here, once, so the returned closure carries no conditionals
// beyond presence and the check itself.
func bindNamedStep(st planStep) func(args map[string]any, out []any) *ParamError {
	var (
		name  = st.param.name
		idx   = st.index
		check = st.inline
	)
	switch {
	case st.param.required:
		return func(args map[string]any, out []any) *ParamError {
			raw, ok := args[name]
			if !ok {
				return missingErr(name)
			}
			v, err := check(raw)
			if err != nil {
				return mismatchErr(name, err)
			}
			out[idx] = v
			return nil
		}
	case st.param.defFactory != nil:
		factory := st.param.defFactory
		return func(args map[string]any, out []any) *ParamError {
			raw, ok := args[name]
			if !ok {
				// Factory products may vary call to call, so they go
				// through the check like a caller-supplied value.
				raw = factory()
			}
			v, err := check(raw)
			if err != nil {
				return mismatchErr(name, err)
			}
			out[idx] = v
			return nil
		}
	default:
		def := st.param.def
		return func(args map[string]any, out []any) *ParamError {
			raw, ok := args[name]
			if !ok {
				// Literal defaults were normalized at spec construction.
				out[idx] = def
				return nil
			}
			v, err := check(raw)
			if err != nil {
				return mismatchErr(name, err)
			}
			out[idx] = v
			return nil
		}
	}
}

// bindPositionalStep is bindNamedStep for index-based fetching.
func bindPositionalStep(st planStep) func(args, out []any) *ParamError {
	var (
		name  = st.param.name
		idx   = st.index
		check = st.inline
	)
	switch {
	case st.param.required:
		return func(args, out []any) *ParamError {
			if idx >= len(args) {
				return missingErr(name)
			}
			v, err := check(args[idx])
			if err != nil {
				return mismatchErr(name, err)
			}
			out[idx] = v
			return nil
		}
	case st.param.defFactory != nil:
		factory := st.param.defFactory
		return func(args, out []any) *ParamError {
			var raw any
			if idx < len(args) {
				raw = args[idx]
			} else {
				raw = factory()
			}
			v, err := check(raw)
			if err != nil {
				return mismatchErr(name, err)
			}
			out[idx] = v
			return nil
		}
	default:
		def := st.param.def
		return func(args, out []any) *ParamError {
			if idx >= len(args) {
				out[idx] = def
				return nil
			}
			v, err := check(args[idx])
			if err != nil {
				return mismatchErr(name, err)
			}
			out[idx] = v
			return nil
		}
	}
}

// buildGeneric is the fallback: a loop over the step list invoking each
// capability's Check through the interface. Externally indistinguishable from
// the fast path; only the per-call cost differs.
func buildGeneric(plan *compilationPlan) validateFunc {
	n := plan.set.Len()

	if plan.opts.source == SourcePositional {
		steps := plan.steps
		return func(raw any) (Result, error) {
			args, ok := raw.([]any)
			if !ok {
				return Result{}, shapeErr(SourcePositional, raw)
			}
			if len(args) > n {
				return Result{}, excessErr(n, len(args))
			}
			out := make([]any, n)
			for _, st := range steps {
				var (
					value   any
					present bool
				)
				if st.index < len(args) {
					value, present = args[st.index], true
				}
				v, perr := resolveStep(st, value, present)
				if perr != nil {
					return Result{}, perr
				}
				out[st.index] = v
			}
			return newResult(plan, out), nil
		}
	}

	steps := plan.steps
	strict := plan.opts.strict
	declared := plan.set.byName
	return func(raw any) (Result, error) {
		args, ok := raw.(map[string]any)
		if !ok {
			return Result{}, shapeErr(SourceNamed, raw)
		}
		if strict {
			if perr := rejectUnknownKeys(args, declared); perr != nil {
				return Result{}, perr
			}
		}
		out := make([]any, n)
		for _, st := range steps {
			value, present := args[st.param.name]
			v, perr := resolveStep(st, value, present)
			if perr != nil {
				return Result{}, perr
			}
			out[st.index] = v
		}
		return newResult(plan, out), nil
	}
}

// resolveStep applies one generic step: default substitution on absence, then
// the capability check. Kept in lockstep with the specialized bindings —
// behavioral equivalence between the two paths is the builder's contract.
func resolveStep(st planStep, value any, present bool) (any, *ParamError) {
	if !present {
		switch {
		case st.param.required:
			return nil, missingErr(st.param.name)
		case st.param.defFactory != nil:
			value = st.param.defFactory()
		default:
			return st.param.def, nil
		}
	}
	v, err := st.param.capability.Check(value)
	if err != nil {
		return nil, mismatchErr(st.param.name, err)
	}
	return v, nil
}

// rejectUnknownKeys enforces strict named mode. Map iteration order is
// randomized, so the offending keys are sorted and the smallest is reported
// to keep failures deterministic.
func rejectUnknownKeys(args map[string]any, declared map[string]int) *ParamError {
	var offending []string
	for k := range args {
		if _, ok := declared[k]; !ok {
			offending = append(offending, k)
		}
	}
	if len(offending) == 0 {
		return nil
	}
	sort.Strings(offending)
	return unknownErr(offending[0])
}

func excessErr(declared, got int) *ParamError {
	return &ParamError{
		Param:  "arg[" + strconv.Itoa(declared) + "]",
		Reason: fmt.Sprintf("got %d positional arguments, at most %d declared", got, declared),
		kind:   ErrUnknownParameter,
	}
}

func shapeErr(mode SourceMode, raw any) error {
	want := "map[string]any"
	if mode == SourcePositional {
		want = "[]any"
	}
	return fmt.Errorf("%w: %s source expects %s, got %T", ErrInvalidArguments, mode, want, raw)
}
