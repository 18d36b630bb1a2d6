package rules

import "github.com/dmitrymomot/paramkit"

// Rule is a named capability whose check can be handed to the compiler as a
// precompiled closure, making it eligible for the specialized fast path. The
// zero Rule is invalid; use the constructors in this package or New.
type Rule struct {
	name  string
	check paramkit.CheckFunc
}

// New builds an inline-capable rule from a name and a check function. The
// name must be canonical: the validator cache treats two rules with the same
// name as interchangeable.
func New(name string, check paramkit.CheckFunc) Rule {
	return Rule{name: name, check: check}
}

// Name returns the canonical rule name used in cache descriptors and by the
// registry.
func (r Rule) Name() string { return r.name }

// Check validates value, returning the possibly coerced result.
func (r Rule) Check(value any) (any, error) { return r.check(value) }

// InlineCheck exposes the precompiled check for fast-path composition.
func (r Rule) InlineCheck() paramkit.CheckFunc { return r.check }

// opaqueRule wraps a predicate that offers no inline form. Any spec using one
// compiles to the generic fallback.
type opaqueRule struct {
	name  string
	check paramkit.CheckFunc
}

// Func wraps an opaque predicate as a capability without inline support.
// Reach for it when the check closes over state the compiler should not bake
// into a specialized routine, or to deliberately exercise the generic path.
func Func(name string, check func(value any) (any, error)) paramkit.Capability {
	return opaqueRule{name: name, check: check}
}

func (r opaqueRule) Name() string { return r.name }

func (r opaqueRule) Check(value any) (any, error) { return r.check(value) }
