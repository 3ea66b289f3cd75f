package search

import (
	"fmt"
	"sort"
)

type filterKind int

const (
	kindScalar filterKind = iota
	kindList
	kindRange
)

// Filter is one validated filter value: a scalar, a list of values, or an
// inclusive numeric range. Caller-shaped JSON is converted into this form
// once, at the boundary, by ParseFilters.
type Filter struct {
	kind   filterKind
	scalar any
	list   []any
	min    *float64
	max    *float64
}

// Scalar builds an exact-match filter.
func Scalar(value any) Filter {
	return Filter{kind: kindScalar, scalar: value}
}

// List builds an exact-term-membership filter.
func List(values ...any) Filter {
	return Filter{kind: kindList, list: values}
}

// Range builds an inclusive range filter. A nil bound leaves that side open.
func Range(min, max *float64) Filter {
	return Filter{kind: kindRange, min: min, max: max}
}

// Filters maps attribute names to validated filter values. It lives only
// for the duration of one search call.
type Filters map[string]Filter

// ParseFilters validates a raw JSON filter object into tagged filter
// values. Null values and empty lists are dropped. Object values must
// carry numeric gte/lte bounds; anything else is rejected.
func ParseFilters(raw map[string]any) (Filters, error) {
	filters := make(Filters, len(raw))
	for key, value := range raw {
		switch v := value.(type) {
		case nil:
			continue
		case []any:
			if len(v) == 0 {
				continue
			}
			filters[key] = List(v...)
		case map[string]any:
			rangeFilter, err := parseRange(key, v)
			if err != nil {
				return nil, err
			}
			filters[key] = rangeFilter
		case string, bool, float64, int, int32, int64:
			filters[key] = Scalar(v)
		default:
			return nil, fmt.Errorf("filter %q has unsupported type %T", key, value)
		}
	}
	return filters, nil
}

func parseRange(key string, raw map[string]any) (Filter, error) {
	var min, max *float64
	for bound, value := range raw {
		number, ok := toFloat(value)
		if !ok {
			return Filter{}, fmt.Errorf("filter %q bound %q is not numeric", key, bound)
		}
		switch bound {
		case "gte", "min":
			min = &number
		case "lte", "max":
			max = &number
		default:
			return Filter{}, fmt.Errorf("filter %q has unknown bound %q", key, bound)
		}
	}
	if min == nil && max == nil {
		return Filter{}, fmt.Errorf("filter %q has no bounds", key)
	}
	return Range(min, max), nil
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}

// sortedKeys returns filter keys in a stable order so the produced
// expression is deterministic for a given filter set.
func (f Filters) sortedKeys() []string {
	keys := make([]string, 0, len(f))
	for key := range f {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
