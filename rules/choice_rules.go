package rules

import (
	"fmt"
	"strconv"
	"strings"
)

// OneOf validates a string against a fixed set of allowed values.
func OneOf(choices ...string) Rule {
	allowed := make(map[string]struct{}, len(choices))
	quoted := make([]string, len(choices))
	for i, c := range choices {
		allowed[c] = struct{}{}
		quoted[i] = strconv.Quote(c)
	}
	// Quoting keeps the name injective: OneOf("a|b") and OneOf("a", "b")
	// are different capabilities and must not share a cache identity.
	name := "one_of(" + strings.Join(quoted, ",") + ")"
	return New(name, func(value any) (any, error) {
		s, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("must be a string, got %T", value)
		}
		if _, ok := allowed[s]; !ok {
			return nil, fmt.Errorf("must be one of [%s], got %q", strings.Join(choices, ", "), s)
		}
		return s, nil
	})
}

// Bool validates a boolean, coercing the string forms strconv.ParseBool
// accepts ("true", "1", "f", ...).
func Bool() Rule {
	return New("bool", func(value any) (any, error) {
		switch b := value.(type) {
		case bool:
			return b, nil
		case string:
			parsed, err := strconv.ParseBool(strings.TrimSpace(b))
			if err != nil {
				return nil, fmt.Errorf("must be a boolean, got %q", b)
			}
			return parsed, nil
		default:
			return nil, fmt.Errorf("must be a boolean, got %T", value)
		}
	})
}
