package rules

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/dmitrymomot/paramkit"
)

// ErrDuplicateRule is returned when a name is registered twice.
var ErrDuplicateRule = errors.New("rules: duplicate rule name")

// Registry maps rule names to capabilities so declarative spec sources can
// reference checks by name. Safe for concurrent use.
type Registry struct {
	mu   sync.RWMutex
	caps map[string]paramkit.Capability
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{caps: make(map[string]paramkit.Capability)}
}

// Register binds name to a capability. Re-registering a name fails instead of
// silently replacing: two spec sources disagreeing on what a name means is a
// definition bug.
func (r *Registry) Register(name string, c paramkit.Capability) error {
	if name == "" {
		return errors.New("rules: empty rule name")
	}
	if c == nil {
		return fmt.Errorf("rules: nil capability for %q", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.caps[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateRule, name)
	}
	r.caps[name] = c
	return nil
}

// Resolve returns the capability bound to name.
func (r *Registry) Resolve(name string) (paramkit.Capability, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.caps[name]
	return c, ok
}

// Names returns the registered rule names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.caps))
	for name := range r.caps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Builtin returns a fresh registry preloaded with every parameterless rule in
// this package. Callers may add their own rules on top; each call returns an
// independent registry.
func Builtin() *Registry {
	r := NewRegistry()
	for _, rule := range []Rule{
		String(),
		NonEmptyString(),
		Int(),
		PositiveInt(),
		NonNegativeInt(),
		Float(),
		Bool(),
		UUID(),
	} {
		// Registration cannot collide: builtin names are distinct.
		_ = r.Register(rule.Name(), rule)
	}
	return r
}
