package rules

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// coerceInt64 accepts Go integer types, integral floats and base-10 numeric
// strings, normalizing all of them to int64. Anything else is rejected with
// the reason the caller will see in the validation error.
func coerceInt64(value any) (int64, error) {
	switch n := value.(type) {
	case int:
		return int64(n), nil
	case int8:
		return int64(n), nil
	case int16:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case int64:
		return n, nil
	case uint:
		return int64(n), nil
	case uint8:
		return int64(n), nil
	case uint16:
		return int64(n), nil
	case uint32:
		return int64(n), nil
	case uint64:
		if n > math.MaxInt64 {
			return 0, fmt.Errorf("integer overflow: %d", n)
		}
		return int64(n), nil
	case float64:
		// math.MaxInt64 rounds up to 1<<63 as a float64, so the upper
		// bound is exclusive; 1<<63 itself would wrap int64(n) negative.
		if math.Trunc(n) != n || n < math.MinInt64 || n >= math.MaxInt64 {
			return 0, fmt.Errorf("must be an integer, got %v", n)
		}
		return int64(n), nil
	case float32:
		return coerceInt64(float64(n))
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("must be an integer, got %q", n)
		}
		return i, nil
	default:
		return 0, fmt.Errorf("must be an integer, got %T", value)
	}
}

func coerceFloat64(value any) (float64, error) {
	switch n := value.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int8:
		return float64(n), nil
	case int16:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint:
		return float64(n), nil
	case uint8:
		return float64(n), nil
	case uint16:
		return float64(n), nil
	case uint32:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, fmt.Errorf("must be a number, got %q", n)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("must be a number, got %T", value)
	}
}

// Int validates any integer value, coercing numeric strings and integral
// floats to int64.
func Int() Rule {
	return New("int", func(value any) (any, error) {
		n, err := coerceInt64(value)
		if err != nil {
			return nil, err
		}
		return n, nil
	})
}

// PositiveInt validates an integer strictly greater than zero.
func PositiveInt() Rule {
	return New("positive_int", func(value any) (any, error) {
		n, err := coerceInt64(value)
		if err != nil {
			return nil, fmt.Errorf("must be a positive integer: %w", err)
		}
		if n <= 0 {
			return nil, fmt.Errorf("must be a positive integer, got %d", n)
		}
		return n, nil
	})
}

// NonNegativeInt validates an integer greater than or equal to zero.
func NonNegativeInt() Rule {
	return New("non_negative_int", func(value any) (any, error) {
		n, err := coerceInt64(value)
		if err != nil {
			return nil, err
		}
		if n < 0 {
			return nil, fmt.Errorf("must not be negative, got %d", n)
		}
		return n, nil
	})
}

// IntRange validates an integer within [min, max] inclusive.
func IntRange(min, max int64) Rule {
	name := fmt.Sprintf("int_range(%d,%d)", min, max)
	return New(name, func(value any) (any, error) {
		n, err := coerceInt64(value)
		if err != nil {
			return nil, err
		}
		if n < min || n > max {
			return nil, fmt.Errorf("must be between %d and %d, got %d", min, max, n)
		}
		return n, nil
	})
}

// Float validates any numeric value, coercing to float64. NaN is rejected.
func Float() Rule {
	return New("float", func(value any) (any, error) {
		f, err := coerceFloat64(value)
		if err != nil {
			return nil, err
		}
		if math.IsNaN(f) {
			return nil, errors.New("must be a number, got NaN")
		}
		return f, nil
	})
}
