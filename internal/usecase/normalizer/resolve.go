package normalizer

import (
	"strings"

	"github.com/shopspring/decimal"
)

// lookup walks a dot-separated path through nested map[string]any values.
func lookup(record map[string]any, path string) (any, bool) {
	if record == nil {
		return nil, false
	}
	current := any(record)
	for _, part := range strings.Split(path, ".") {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = m[part]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// firstNum resolves the first candidate path holding a numeric value.
func firstNum(record map[string]any, paths ...string) (decimal.Decimal, bool) {
	for _, path := range paths {
		if v, ok := lookup(record, path); ok {
			if d, ok := numValue(v); ok {
				return d, true
			}
		}
	}
	return decimal.Zero, false
}

// num is firstNum with a zero default.
func num(record map[string]any, paths ...string) decimal.Decimal {
	d, _ := firstNum(record, paths...)
	return d
}

// integer resolves the first numeric candidate as an int, defaulting to 0.
func integer(record map[string]any, paths ...string) int {
	d, ok := firstNum(record, paths...)
	if !ok {
		return 0
	}
	return int(d.IntPart())
}

// str resolves the first non-empty string candidate, else def.
func str(record map[string]any, def string, paths ...string) string {
	for _, path := range paths {
		if v, ok := lookup(record, path); ok {
			if s, ok := v.(string); ok && s != "" {
				return s
			}
		}
	}
	return def
}

// boolish resolves the first candidate holding a yes/no-like value. Accepts
// booleans, nonzero numbers, and affirmative strings; defaults to false.
func boolish(record map[string]any, paths ...string) bool {
	for _, path := range paths {
		if v, ok := lookup(record, path); ok {
			if b, ok := boolValue(v); ok {
				return b
			}
		}
	}
	return false
}

// array resolves a path to a slice. Anything that is not an array coerces to
// nil so the caller aggregates over an empty collection.
func array(record map[string]any, paths ...string) []any {
	for _, path := range paths {
		if v, ok := lookup(record, path); ok {
			if items, ok := v.([]any); ok {
				return items
			}
		}
	}
	return nil
}

func numValue(v any) (decimal.Decimal, bool) {
	switch n := v.(type) {
	case float64:
		return decimal.NewFromFloat(n), true
	case int:
		return decimal.NewFromInt(int64(n)), true
	case int64:
		return decimal.NewFromInt(n), true
	case string:
		trimmed := strings.TrimSpace(strings.ReplaceAll(n, ",", ""))
		if trimmed == "" {
			return decimal.Zero, false
		}
		d, err := decimal.NewFromString(trimmed)
		if err != nil {
			return decimal.Zero, false
		}
		return d, true
	default:
		return decimal.Zero, false
	}
}

func boolValue(v any) (bool, bool) {
	switch b := v.(type) {
	case bool:
		return b, true
	case float64:
		return b != 0, true
	case string:
		switch strings.ToLower(strings.TrimSpace(b)) {
		case "y", "yes", "true", "1", "o":
			return true, true
		case "n", "no", "false", "0", "x", "":
			return false, true
		}
		return false, false
	default:
		return false, false
	}
}
