package specfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/paramkit"
	"github.com/dmitrymomot/paramkit/rules"
)

var (
	// ErrParse wraps YAML syntax and structure problems.
	ErrParse = errors.New("specfile: failed to parse spec file")

	// ErrUnknownRule is returned when a param references a rule name absent
	// from the registry.
	ErrUnknownRule = errors.New("specfile: unknown rule")
)

type document struct {
	Params  []paramDoc `yaml:"params"`
	Options optionDoc  `yaml:"options"`
}

type paramDoc struct {
	Name     string `yaml:"name"`
	Rule     string `yaml:"rule"`
	Required bool   `yaml:"required"`
	Default  any    `yaml:"default"`
}

type optionDoc struct {
	Source string `yaml:"source"`
	Output string `yaml:"output"`
	Strict *bool  `yaml:"strict"`
}

// Parse turns a YAML parameter declaration into a spec set plus compile
// options, resolving rule names against reg. Spec-level problems (duplicate
// names, defaults on required params, defaults failing their rule) surface
// through paramkit.ErrSpecDefinition exactly as with hand-built specs.
//
// Document format:
//
//	params:
//	  - name: present_name
//	    rule: non_empty_string
//	    required: true
//	  - name: qty
//	    rule: positive_int
//	    default: 1
//	options:
//	  source: named   # named | positional
//	  output: mapped  # mapped | list
//	  strict: true
func Parse(data []byte, reg *rules.Registry) (*paramkit.SpecSet, []paramkit.Option, error) {
	if reg == nil {
		reg = rules.Builtin()
	}

	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	// Unknown document keys are definition mistakes, same as unknown
	// argument keys at call time.
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if len(doc.Params) == 0 {
		return nil, nil, fmt.Errorf("%w: no params declared", ErrParse)
	}

	params := make([]paramkit.Param, 0, len(doc.Params))
	for i, p := range doc.Params {
		if p.Name == "" {
			return nil, nil, fmt.Errorf("%w: param %d has no name", ErrParse, i)
		}
		capability, ok := reg.Resolve(p.Rule)
		if !ok {
			return nil, nil, fmt.Errorf("%w: %q (param %q)", ErrUnknownRule, p.Rule, p.Name)
		}
		params = append(params, paramkit.NewParam(p.Name, capability, p.Required, p.Default))
	}

	opts, err := doc.Options.compileOptions()
	if err != nil {
		return nil, nil, err
	}

	set, err := paramkit.NewSpecSet(params...)
	if err != nil {
		return nil, nil, err
	}
	return set, opts, nil
}

// Load reads and parses a YAML spec file from disk.
func Load(path string, reg *rules.Registry) (*paramkit.SpecSet, []paramkit.Option, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return Parse(data, reg)
}

// compileOptions validates option strings here rather than letting the
// paramkit option constructors panic on data from a file.
func (o optionDoc) compileOptions() ([]paramkit.Option, error) {
	var opts []paramkit.Option

	switch o.Source {
	case "", string(paramkit.SourceNamed):
	case string(paramkit.SourcePositional):
		opts = append(opts, paramkit.WithSourceMode(paramkit.SourcePositional))
	default:
		return nil, fmt.Errorf("%w: invalid source mode %q", ErrParse, o.Source)
	}

	switch o.Output {
	case "", string(paramkit.OutputMapped):
	case string(paramkit.OutputList):
		opts = append(opts, paramkit.WithOutputMode(paramkit.OutputList))
	default:
		return nil, fmt.Errorf("%w: invalid output mode %q", ErrParse, o.Output)
	}

	if o.Strict != nil && !*o.Strict {
		opts = append(opts, paramkit.WithLenientKeys())
	}

	return opts, nil
}
