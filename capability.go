package paramkit

// CheckFunc is a precompiled validation step. It receives a raw value and
// returns the value to keep, or an error describing why the value was
// rejected. Capabilities may coerce on success: a numeric rule handed the
// string "22" is free to return int64(22).
type CheckFunc func(value any) (any, error)

// Capability validates a single parameter value. It is the only contract a
// type check has to satisfy to participate in a spec; everything else in this
// package treats it as opaque.
//
// Implementations must be stateless with respect to Check: the same value
// must always produce the same outcome, and concurrent calls must be safe.
type Capability interface {
	Check(value any) (any, error)
}

// Inliner is the optional half of the capability contract. A capability that
// can hand the builder a self-contained closure implements it; when every
// capability in a spec does, the builder composes those closures into a
// specialized validator with no interface dispatch on the hot path. A
// capability without Inliner is still fully usable — it routes the whole plan
// through the generic fallback.
type Inliner interface {
	InlineCheck() CheckFunc
}

// namedCapability contributes a canonical name to the cache descriptor so
// that independently built but structurally identical spec sets share one
// compiled validator. Capabilities without a name make their spec set
// cacheable by identity only.
type namedCapability interface {
	Name() string
}
