package paramkit

import (
	"fmt"
	"log/slog"
	"strconv"
	"sync"

	"github.com/dmitrymomot/paramkit/config"
)

// SourceMode selects how raw arguments arrive at a compiled validator.
type SourceMode string

const (
	// SourceNamed expects a string-keyed map matched by parameter name.
	SourceNamed SourceMode = "named"
	// SourcePositional expects an ordered slice matched by declaration order.
	SourcePositional SourceMode = "positional"
)

// OutputMode selects the shape of a successful validation result.
type OutputMode string

const (
	// OutputMapped exposes validated values keyed by parameter name.
	OutputMapped OutputMode = "mapped"
	// OutputList exposes validated values as a slice in declaration order.
	OutputList OutputMode = "list"
)

// Settings tunes compilation from the environment. Loaded once per process
// through the config package, so operators can flip these without a rebuild.
type Settings struct {
	// DisableFastPath forces every validator onto the generic fallback,
	// useful when chasing a suspected fast/generic divergence in the field.
	DisableFastPath bool `env:"PARAMKIT_DISABLE_FASTPATH" envDefault:"false"`

	// TraceCompile emits a debug log line per compilation on slog.Default
	// even when no logger was injected.
	TraceCompile bool `env:"PARAMKIT_TRACE_COMPILE" envDefault:"false"`
}

var (
	settingsOnce sync.Once
	settings     Settings
)

func loadSettings() Settings {
	settingsOnce.Do(func() {
		// A malformed environment must not take validation down; fall back
		// to defaults and keep going.
		if err := config.Load(&settings); err != nil {
			settings = Settings{}
		}
	})
	return settings
}

type options struct {
	source       SourceMode
	output       OutputMode
	strict       bool
	forceGeneric bool
	logger       *slog.Logger
}

// Option configures validator compilation.
type Option func(*options)

// WithSourceMode sets how raw arguments arrive. Panics on an unknown mode to
// enforce fail-fast initialization; a misconfigured call site should prevent
// startup rather than misvalidate at runtime.
func WithSourceMode(m SourceMode) Option {
	return func(o *options) {
		switch m {
		case SourceNamed, SourcePositional:
			o.source = m
		default:
			panic(fmt.Errorf("invalid source mode %q: must be %q or %q", m, SourceNamed, SourcePositional))
		}
	}
}

// WithOutputMode sets the result shape. Panics on an unknown mode.
func WithOutputMode(m OutputMode) Option {
	return func(o *options) {
		switch m {
		case OutputMapped, OutputList:
			o.output = m
		default:
			panic(fmt.Errorf("invalid output mode %q: must be %q or %q", m, OutputMapped, OutputList))
		}
	}
}

// WithLenientKeys disables strict named-mode key checking: undeclared keys in
// the raw arguments are ignored instead of rejected.
func WithLenientKeys() Option {
	return func(o *options) { o.strict = false }
}

// WithoutFastPath forces the generic fallback even when every capability
// supports inlining. Behavior is identical either way; only the per-call cost
// differs.
func WithoutFastPath() Option {
	return func(o *options) { o.forceGeneric = true }
}

// WithLogger injects a logger for compile-time tracing. Validation itself
// never logs.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

func buildOptions(opts ...Option) options {
	s := loadSettings()
	o := options{
		source:       SourceNamed,
		output:       OutputMapped,
		strict:       true,
		forceGeneric: s.DisableFastPath,
	}
	if s.TraceCompile {
		o.logger = slog.Default()
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// descriptor extends a spec-set descriptor with everything else that affects
// compilation output, forming the cache key.
func (o options) descriptor(set *SpecSet) string {
	return set.descriptor + "|" + string(o.source) + "|" + string(o.output) +
		"|strict=" + strconv.FormatBool(o.strict) +
		"|generic=" + strconv.FormatBool(o.forceGeneric)
}
