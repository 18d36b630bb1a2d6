// Package rules provides ready-made capabilities for paramkit specs: string
// shape checks, numeric checks with coercion, choice sets, booleans and
// UUIDs.
//
// Every rule here is inline-capable, so specs built purely from this package
// compile to the specialized fast path. Func wraps an arbitrary predicate
// without inline support for cases where the generic fallback is wanted.
//
// # Coercion
//
// Numeric rules accept Go integer types, integral floats and base-10 numeric
// strings, normalizing to int64 (or float64 for Float). Bool accepts the
// string forms strconv.ParseBool understands. String rules never coerce.
//
// # Registry
//
// Registry maps rule names to capabilities for declarative spec sources such
// as the specfile package; Builtin returns one preloaded with every
// parameterless rule.
package rules
