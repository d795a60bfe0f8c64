package dataframe

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// toFloat reports the float64 value of v when v holds a Go integer or
// floating point number. Booleans and strings are not numeric.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case uintptr:
		return float64(n), true
	}
	return 0, false
}

// floats converts every value, failing on the first non-numeric one.
func floats(values []any) ([]float64, error) {
	out := make([]float64, len(values))
	for i, v := range values {
		f, ok := toFloat(v)
		if !ok {
			return nil, fmt.Errorf("%w: %v (%T) at position %d", ErrNonNumericValue, v, v, i)
		}
		out[i] = f
	}
	return out, nil
}

// sortKeys extracts an ordering key per value. All values must be numeric
// or all must be strings.
func sortKeys(values []any) (nums []float64, strs []string, err error) {
	if len(values) == 0 {
		return nil, nil, nil
	}
	if _, ok := values[0].(string); ok {
		strs = make([]string, len(values))
		for i, v := range values {
			s, ok := v.(string)
			if !ok {
				return nil, nil, fmt.Errorf("%w: %v (%T) among strings at position %d", ErrNonComparableValue, v, v, i)
			}
			strs[i] = s
		}
		return nil, strs, nil
	}
	nums = make([]float64, len(values))
	for i, v := range values {
		f, ok := toFloat(v)
		if !ok || math.IsNaN(f) {
			return nil, nil, fmt.Errorf("%w: %v (%T) at position %d", ErrNonComparableValue, v, v, i)
		}
		nums[i] = f
	}
	return nums, nil, nil
}

// sequence returns the elements of v when v is a slice or array.
func sequence(v any) ([]any, bool) {
	if v == nil {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}
		return out, true
	}
	return nil, false
}

// formatValue renders a single scalar for tabular output.
func formatValue(v any) string {
	switch n := v.(type) {
	case string:
		return n
	case float64:
		return formatFloat(n, 64)
	case float32:
		return formatFloat(float64(n), 32)
	}
	if elems, ok := sequence(v); ok {
		parts := make([]string, len(elems))
		for i, e := range elems {
			parts[i] = formatValue(e)
		}
		return "[" + strings.Join(parts, " ") + "]"
	}
	return fmt.Sprint(v)
}

// formatFloat keeps a decimal point on whole finite numbers, so 4.0
// renders as "4.0" rather than "4".
func formatFloat(f float64, bitSize int) string {
	out := strconv.FormatFloat(f, 'f', -1, bitSize)
	if math.IsInf(f, 0) || math.IsNaN(f) || strings.ContainsRune(out, '.') {
		return out
	}
	return out + ".0"
}

// hashable reports whether v can be used as a map key without panicking.
// Comparable types such as [1]any or struct{ X any } can still hold a
// slice or map at run time, so interface contents are inspected.
func hashable(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Invalid:
		return false
	case reflect.Slice, reflect.Map, reflect.Func:
		return false
	case reflect.Interface:
		if v.IsNil() {
			return true
		}
		return hashable(v.Elem())
	case reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if !hashable(v.Index(i)) {
				return false
			}
		}
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			if !hashable(v.Field(i)) {
				return false
			}
		}
	}
	return true
}

// validKey reports whether k can key a series: hashable, not nil and not
// NaN (a NaN key can never be looked up again).
func validKey(k any) bool {
	if k == nil || !hashable(reflect.ValueOf(k)) {
		return false
	}
	if f, ok := toFloat(k); ok && math.IsNaN(f) {
		return false
	}
	return true
}
