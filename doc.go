// Package paramkit compiles declarative parameter specifications into fast,
// reusable validation routines.
//
// The package separates a one-time compilation phase from the hot execution
// phase. A SpecSet describes the expected parameters (names, capabilities,
// optionality, defaults) and is compiled exactly once into a
// CompiledValidator; call sites then run only the compiled routine — no spec
// walking, no re-planning, no reflection.
//
// # Architecture
//
// Compilation runs in three stages. The planner walks the declarations in
// order and records, per parameter, the fetch strategy (name or position),
// default applicability, and whether the capability offers an inline check.
// The builder then picks one of two execution strategies for the whole plan:
// when every capability implements Inliner, it composes the precompiled
// closures into a specialized routine with no interface dispatch on the hot
// path; otherwise it emits a generic loop over the step list invoking each
// capability's Check. The two paths are behaviorally indistinguishable;
// only the per-call cost differs.
//
// Core building blocks:
//   - Param / SpecSet      – immutable parameter declarations
//   - Capability / Inliner – the pluggable type-check contract
//   - CompiledValidator    – the pure, shareable compiled routine
//   - Define               – process-wide, single-flight validator cache
//
// # Usage
//
//	gift := paramkit.MustSpecSet(
//	    paramkit.Required("present_name", rules.NonEmptyString()),
//	    paramkit.Optional("qty", rules.PositiveInt(), 1),
//	)
//
//	v, err := paramkit.Define(gift)
//	if err != nil {
//	    // handle spec error
//	}
//
//	res, err := v.Validate(map[string]any{"present_name": "Teddy Bear"})
//	// res.Map() == map[string]any{"present_name": "Teddy Bear", "qty": int64(1)}
//
// # Error Handling
//
// Spec problems (duplicate names, defaults on required parameters, defaults
// failing their own capability) surface at construction wrapped in
// ErrSpecDefinition and never reach call time. Call-time failures are
// fail-fast in declaration order and carry the offending parameter name via
// ParamError, which unwraps to ErrMissingRequired, ErrUnknownParameter or
// ErrTypeMismatch for errors.Is/As detection.
//
// # Concurrency
//
// A published CompiledValidator is a pure function of its input: it touches
// no mutable state, performs no I/O, and is safe for arbitrarily many
// concurrent callers. The Define cache synchronizes check-then-insert so a
// descriptor is compiled once even under concurrent first requests.
//
// # Performance Considerations
//
// Validation never allocates beyond the result buffer. The specialized path
// binds every per-parameter decision (fetch, default, check) at build time;
// set PARAMKIT_DISABLE_FASTPATH=true to force the generic fallback when
// diagnosing a suspected divergence between the two.
package paramkit
