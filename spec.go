package paramkit

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
)

// Param declares one expected parameter: its name, the capability that
// validates it, and either a required flag or a default. Build params with
// Required, Optional or OptionalFunc; NewParam exists for declarative
// front-ends that assemble params from raw fields.
type Param struct {
	name       string
	capability Capability
	required   bool
	def        any
	defFactory func() any
	hasDefault bool
}

// Required declares a parameter that must be supplied by the caller.
func Required(name string, c Capability) Param {
	return Param{name: name, capability: c, required: true}
}

// Optional declares a parameter substituted with def when absent. The default
// is checked against the capability at spec construction, never at call time.
func Optional(name string, c Capability, def any) Param {
	return Param{name: name, capability: c, def: def, hasDefault: true}
}

// OptionalFunc declares a parameter whose default is produced by factory on
// each call where the value is absent. The factory is probed once at spec
// construction; because it may produce varying values, its product is also
// checked on every substitution.
func OptionalFunc(name string, c Capability, factory func() any) Param {
	return Param{name: name, capability: c, defFactory: factory, hasDefault: factory != nil}
}

// NewParam assembles a parameter from raw fields. A nil def means no default.
// Prefer the typed constructors; this one lets illegal combinations (required
// with a default) be expressed so NewSpecSet can reject them, which is what
// declarative sources such as spec files need.
func NewParam(name string, c Capability, required bool, def any) Param {
	return Param{name: name, capability: c, required: required, def: def, hasDefault: def != nil}
}

// Name returns the declared parameter name.
func (p Param) Name() string { return p.name }

// IsRequired reports whether the parameter must be supplied by the caller.
func (p Param) IsRequired() bool { return p.required }

// SpecSet is an immutable, ordered set of parameter declarations. Declaration
// order is significant: it defines positional matching, ordered-list output,
// and the fail-fast check order.
type SpecSet struct {
	params     []Param
	byName     map[string]int
	descriptor string
}

// specSetSeq disambiguates descriptors of spec sets that contain unnamed
// capabilities; such sets are cached by identity, not structure.
var specSetSeq atomic.Uint64

// NewSpecSet validates and freezes a parameter declaration list. All spec
// problems surface here, wrapped in ErrSpecDefinition; a compiled validator
// is never produced for an invalid spec.
func NewSpecSet(params ...Param) (*SpecSet, error) {
	set := &SpecSet{
		params: make([]Param, 0, len(params)),
		byName: make(map[string]int, len(params)),
	}

	var (
		desc      strings.Builder
		anonymous bool
	)
	for i, p := range params {
		if p.name == "" {
			return nil, fmt.Errorf("%w: parameter at position %d has no name", ErrSpecDefinition, i)
		}
		if p.capability == nil {
			return nil, fmt.Errorf("%w: parameter %q has no capability", ErrSpecDefinition, p.name)
		}
		if _, dup := set.byName[p.name]; dup {
			return nil, fmt.Errorf("%w: duplicate parameter name %q", ErrSpecDefinition, p.name)
		}
		if p.required && p.hasDefault {
			return nil, fmt.Errorf("%w: required parameter %q cannot have a default", ErrSpecDefinition, p.name)
		}
		if !p.required && !p.hasDefault {
			return nil, fmt.Errorf("%w: optional parameter %q needs a default", ErrSpecDefinition, p.name)
		}

		if p.hasDefault {
			probe := p.def
			if p.defFactory != nil {
				probe = p.defFactory()
			}
			normalized, err := p.capability.Check(probe)
			if err != nil {
				return nil, fmt.Errorf("%w: default for parameter %q rejected: %v", ErrSpecDefinition, p.name, err)
			}
			if p.defFactory == nil {
				// Literal defaults are stored pre-normalized so call-time
				// substitution skips the capability entirely.
				p.def = normalized
			}
		}

		set.byName[p.name] = len(set.params)
		set.params = append(set.params, p)

		// Names are quoted so delimiter characters inside a parameter or
		// rule name cannot forge another spec's cache key.
		desc.WriteString(strconv.Quote(p.name))
		desc.WriteByte(':')
		if p.required {
			desc.WriteString("req")
		} else {
			desc.WriteString("opt")
		}
		desc.WriteByte(':')
		if nc, ok := p.capability.(namedCapability); ok {
			desc.WriteString(strconv.Quote(nc.Name()))
		} else {
			anonymous = true
			desc.WriteString(strconv.Quote(fmt.Sprintf("%T", p.capability)))
		}
		desc.WriteByte(';')
	}

	if anonymous {
		desc.WriteByte('#')
		desc.WriteString(strconv.FormatUint(specSetSeq.Add(1), 10))
	}
	set.descriptor = desc.String()

	return set, nil
}

// MustSpecSet is NewSpecSet that panics on an invalid declaration. Intended
// for package-level spec definitions where a bad spec should prevent startup.
func MustSpecSet(params ...Param) *SpecSet {
	set, err := NewSpecSet(params...)
	if err != nil {
		panic(err)
	}
	return set
}

// Len returns the number of declared parameters.
func (s *SpecSet) Len() int { return len(s.params) }

// Params returns the declarations in declaration order. The slice is a copy;
// the set itself stays immutable.
func (s *SpecSet) Params() []Param {
	out := make([]Param, len(s.params))
	copy(out, s.params)
	return out
}

// Lookup returns the declaration for name.
func (s *SpecSet) Lookup(name string) (Param, bool) {
	i, ok := s.byName[name]
	if !ok {
		return Param{}, false
	}
	return s.params[i], true
}

// Names returns the declared parameter names in declaration order.
func (s *SpecSet) Names() []string {
	out := make([]string, len(s.params))
	for i, p := range s.params {
		out[i] = p.name
	}
	return out
}
