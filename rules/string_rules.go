package rules

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// String validates that the value is a string. No coercion is applied.
func String() Rule {
	return New("string", func(value any) (any, error) {
		s, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("must be a string, got %T", value)
		}
		return s, nil
	})
}

// NonEmptyString validates a string with at least one non-whitespace
// character. The original value is kept; trimming is only used for the test.
func NonEmptyString() Rule {
	return New("non_empty_string", func(value any) (any, error) {
		s, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("must be a string, got %T", value)
		}
		if strings.TrimSpace(s) == "" {
			return nil, errors.New("must not be empty")
		}
		return s, nil
	})
}

// MinLen validates a string of at least n characters, counted in runes.
func MinLen(n int) Rule {
	name := fmt.Sprintf("min_len(%d)", n)
	return New(name, func(value any) (any, error) {
		s, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("must be a string, got %T", value)
		}
		if utf8.RuneCountInString(s) < n {
			return nil, fmt.Errorf("must be at least %d characters", n)
		}
		return s, nil
	})
}

// MaxLen validates a string of at most n characters, counted in runes.
func MaxLen(n int) Rule {
	name := fmt.Sprintf("max_len(%d)", n)
	return New(name, func(value any) (any, error) {
		s, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("must be a string, got %T", value)
		}
		if utf8.RuneCountInString(s) > n {
			return nil, fmt.Errorf("must be at most %d characters", n)
		}
		return s, nil
	})
}

// Matches validates a string against a compiled pattern. The pattern source
// becomes part of the rule name, so equal patterns share cached validators.
func Matches(re *regexp.Regexp) Rule {
	name := fmt.Sprintf("matches(%s)", re.String())
	return New(name, func(value any) (any, error) {
		s, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("must be a string, got %T", value)
		}
		if !re.MatchString(s) {
			return nil, fmt.Errorf("must match %s", re.String())
		}
		return s, nil
	})
}
