// Package specfile builds paramkit spec sets from declarative YAML
// documents, resolving rule names through a rules.Registry.
//
// It lets services keep parameter contracts next to their configuration
// instead of in code:
//
//	set, opts, err := specfile.Load("params.yaml", rules.Builtin())
//	if err != nil {
//	    // definition error: bad YAML, unknown rule, invalid spec
//	}
//	v, err := paramkit.Define(set, opts...)
//
// All definition problems — YAML syntax, unknown rule names, invalid specs —
// surface at load time; a validator is never produced for a bad document.
package specfile
