package expectations

import (
	"encoding/json"
	"fmt"
)

// kwargs wraps an expectation's raw kwargs with typed accessors. Suite
// documents are decoded with json.Number preserved, so numeric kwargs can
// arrive as json.Number, float64 or int depending on the caller.
type kwargs map[string]any

func (k kwargs) column() (string, error) {
	s, ok := k["column"].(string)
	if !ok || s == "" {
		return "", fmt.Errorf("kwarg %q must be a non-empty string", "column")
	}
	return s, nil
}

func (k kwargs) str(key string) (string, bool, error) {
	v, ok := k[key]
	if !ok {
		return "", false, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", true, fmt.Errorf("kwarg %q must be a string", key)
	}
	return s, true, nil
}

func (k kwargs) float(key string) (float64, bool, error) {
	v, ok := k[key]
	if !ok || v == nil {
		return 0, false, nil
	}
	f, err := toFloat(v)
	if err != nil {
		return 0, true, fmt.Errorf("kwarg %q: %w", key, err)
	}
	return f, true, nil
}

func (k kwargs) integer(key string) (int, bool, error) {
	f, ok, err := k.float(key)
	if err != nil || !ok {
		return 0, ok, err
	}
	n := int(f)
	if float64(n) != f {
		return 0, true, fmt.Errorf("kwarg %q must be an integer", key)
	}
	return n, true, nil
}

func (k kwargs) boolean(key string) bool {
	b, _ := k[key].(bool)
	return b
}

func (k kwargs) booleanDefault(key string, def bool) bool {
	if v, ok := k[key]; ok {
		if b, isBool := v.(bool); isBool {
			return b
		}
	}
	return def
}

func (k kwargs) list(key string) ([]any, bool, error) {
	v, ok := k[key]
	if !ok {
		return nil, false, nil
	}
	l, ok := v.([]any)
	if !ok {
		return nil, true, fmt.Errorf("kwarg %q must be a list", key)
	}
	return l, true, nil
}

func (k kwargs) stringList(key string) ([]string, error) {
	l, ok, err := k.list(key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("kwarg %q is required", key)
	}
	out := make([]string, len(l))
	for i, item := range l {
		s, isStr := item.(string)
		if !isStr {
			return nil, fmt.Errorf("kwarg %q must contain only strings", key)
		}
		out[i] = s
	}
	return out, nil
}

// mostly returns the success-ratio threshold for column-map expectations,
// defaulting to 1.0 (every considered value must satisfy the rule).
func (k kwargs) mostly() (float64, error) {
	m, ok, err := k.float("mostly")
	if err != nil {
		return 0, err
	}
	if !ok {
		return 1.0, nil
	}
	if m < 0 || m > 1 {
		return 0, fmt.Errorf("kwarg %q must be between 0 and 1, got %v", "mostly", m)
	}
	return m, nil
}

// bounds describes a min/max interval with optional strict endpoints.
type bounds struct {
	min, max             *float64
	strictMin, strictMax bool
}

// bounds reads min_value/max_value/strict_min/strict_max. At least one
// bound must be present.
func (k kwargs) bounds() (bounds, error) {
	var b bounds
	if v, ok, err := k.float("min_value"); err != nil {
		return b, err
	} else if ok {
		b.min = &v
	}
	if v, ok, err := k.float("max_value"); err != nil {
		return b, err
	} else if ok {
		b.max = &v
	}
	if b.min == nil && b.max == nil {
		return b, fmt.Errorf("at least one of min_value and max_value must be provided")
	}
	b.strictMin = k.boolean("strict_min")
	b.strictMax = k.boolean("strict_max")
	return b, nil
}

// contains reports whether v falls inside the interval.
func (b bounds) contains(v float64) bool {
	if b.min != nil {
		if b.strictMin && v <= *b.min {
			return false
		}
		if !b.strictMin && v < *b.min {
			return false
		}
	}
	if b.max != nil {
		if b.strictMax && v >= *b.max {
			return false
		}
		if !b.strictMax && v > *b.max {
			return false
		}
	}
	return true
}

func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case json.Number:
		return n.Float64()
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("expected a number, got %T", v)
	}
}
