// Package dataframe provides labeled series and tabular frames.
package dataframe

import (
	"fmt"
	"io"
	"reflect"
	"sort"
	"strings"

	"github.com/sartorproj/goframe/stats"
)

// Entry is one key/value pair of a Series.
type Entry struct {
	Key   any
	Value any
}

// Series is an ordered association of unique keys to values with an
// optional name.
type Series struct {
	name   string
	keys   []any
	values []any
	byKey  map[any]int
}

// SeriesOption configures NewSeries.
type SeriesOption func(*seriesConfig)

type seriesConfig struct {
	index    []any
	hasIndex bool
	name     string
}

// WithIndex supplies explicit keys, one per value. It is ignored when the
// data already carries its keys (a []Entry or a map).
func WithIndex(keys ...any) SeriesOption {
	return func(c *seriesConfig) {
		c.index = keys
		c.hasIndex = true
	}
}

// WithName names the series.
func WithName(name string) SeriesOption {
	return func(c *seriesConfig) {
		c.name = name
	}
}

// NewSeries creates a series from data.
//
// data may be a slice or array of values, a []Entry, or a map. Slice
// values are keyed by the WithIndex keys or by their position. Map entries
// are ordered by key, so map keys must be all numeric or all strings.
func NewSeries(data any, opts ...SeriesOption) (*Series, error) {
	var cfg seriesConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if data == nil {
		return nil, fmt.Errorf("%w: series data is nil", ErrInvalidInput)
	}

	var keys, values []any
	switch d := data.(type) {
	case []Entry:
		if d == nil {
			return nil, fmt.Errorf("%w: series data is nil", ErrInvalidInput)
		}
		keys = make([]any, len(d))
		values = make([]any, len(d))
		for i, e := range d {
			keys[i] = e.Key
			values[i] = e.Value
		}
	default:
		rv := reflect.ValueOf(data)
		switch rv.Kind() {
		case reflect.Map:
			var err error
			keys, values, err = mapEntries(rv)
			if err != nil {
				return nil, err
			}
		case reflect.Slice, reflect.Array:
			if rv.Kind() == reflect.Slice && rv.IsNil() {
				return nil, fmt.Errorf("%w: series data is nil", ErrInvalidInput)
			}
			values, _ = sequence(data)
			if cfg.hasIndex {
				if len(cfg.index) != len(values) {
					return nil, fmt.Errorf("%w: index length %d does not match data length %d",
						ErrInvalidInput, len(cfg.index), len(values))
				}
				keys = append([]any(nil), cfg.index...)
			} else {
				keys = positions(len(values))
			}
		default:
			return nil, fmt.Errorf("%w: unsupported series data %T", ErrInvalidInput, data)
		}
	}

	return newSeries(cfg.name, keys, values)
}

func newSeries(name string, keys, values []any) (*Series, error) {
	byKey := make(map[any]int, len(keys))
	for i, k := range keys {
		if !validKey(k) {
			return nil, fmt.Errorf("%w: key %v (%T) is not a valid key", ErrInvalidInput, k, k)
		}
		if _, dup := byKey[k]; dup {
			return nil, fmt.Errorf("%w: duplicate key %v", ErrInvalidInput, k)
		}
		byKey[k] = i
	}
	return &Series{
		name:   name,
		keys:   keys,
		values: values,
		byKey:  byKey,
	}, nil
}

// mapEntries flattens a map into key-ordered entries.
func mapEntries(rv reflect.Value) ([]any, []any, error) {
	if rv.IsNil() {
		return nil, nil, fmt.Errorf("%w: series data is nil", ErrInvalidInput)
	}
	keys := make([]any, 0, rv.Len())
	vals := make([]any, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		k := iter.Key().Interface()
		if !validKey(k) {
			return nil, nil, fmt.Errorf("%w: map key %v (%T) is not a valid key", ErrInvalidInput, k, k)
		}
		keys = append(keys, k)
		vals = append(vals, iter.Value().Interface())
	}
	perm, err := stablePermutation(keys)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: map keys cannot be ordered: %v", ErrInvalidInput, err)
	}
	orderedKeys := make([]any, len(keys))
	values := make([]any, len(keys))
	for j, p := range perm {
		orderedKeys[j] = keys[p]
		values[j] = vals[p]
	}
	return orderedKeys, values, nil
}

func positions(n int) []any {
	out := make([]any, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// Name returns the series name.
func (s *Series) Name() string {
	return s.name
}

// Size returns the number of entries.
func (s *Series) Size() int {
	return len(s.values)
}

// Keys returns a copy of the keys in entry order.
func (s *Series) Keys() []any {
	return append([]any(nil), s.keys...)
}

// Values returns a copy of the values in entry order.
func (s *Series) Values() []any {
	return append([]any(nil), s.values...)
}

// Entries returns the key/value pairs in entry order.
func (s *Series) Entries() []Entry {
	out := make([]Entry, len(s.values))
	for i := range s.values {
		out[i] = Entry{Key: s.keys[i], Value: s.values[i]}
	}
	return out
}

// ValueAt returns the value at the zero-based entry position.
func (s *Series) ValueAt(pos int) (any, error) {
	if pos < 0 || pos >= len(s.values) {
		return nil, fmt.Errorf("%w: position %d, size %d", ErrIndexOutOfRange, pos, len(s.values))
	}
	return s.values[pos], nil
}

// Lookup returns the value bound to key.
func (s *Series) Lookup(key any) (any, bool) {
	if !validKey(key) {
		return nil, false
	}
	i, ok := s.byKey[key]
	if !ok {
		return nil, false
	}
	return s.values[i], true
}

// IsNumeric reports whether every value is a Go integer or float.
func (s *Series) IsNumeric() bool {
	for _, v := range s.values {
		if _, ok := toFloat(v); !ok {
			return false
		}
	}
	return true
}

// numeric returns the values as float64, checking the reduction
// preconditions.
func (s *Series) numeric() ([]float64, error) {
	vals, err := floats(s.values)
	if err != nil {
		return nil, err
	}
	if len(vals) == 0 {
		return nil, ErrEmptySeries
	}
	return vals, nil
}

func (s *Series) reduce(op string, fn func([]float64) float64) (float64, error) {
	vals, err := s.numeric()
	if err != nil {
		return 0, fmt.Errorf("series %q: %s: %w", s.name, op, err)
	}
	return fn(vals), nil
}

// Min returns the smallest value.
func (s *Series) Min() (float64, error) {
	return s.reduce("min", stats.Min)
}

// Max returns the largest value.
func (s *Series) Max() (float64, error) {
	return s.reduce("max", stats.Max)
}

// Mean returns the arithmetic mean of the values.
func (s *Series) Mean() (float64, error) {
	return s.reduce("mean", stats.Mean)
}

// Sum returns the sum of the values.
func (s *Series) Sum() (float64, error) {
	return s.reduce("sum", stats.Sum)
}

// Median returns the median of the values.
func (s *Series) Median() (float64, error) {
	return s.reduce("median", stats.Median)
}

// Std returns the sample standard deviation of the values.
func (s *Series) Std() (float64, error) {
	return s.reduce("std", stats.Std)
}

// reorder rebinds values to keys: the value at input position perm[j]
// moves to position j. Keys keep their order, so the caller must permute
// any row labels itself.
func (s *Series) reorder(perm []int) error {
	if len(perm) != len(s.values) {
		return fmt.Errorf("%w: permutation length %d, size %d", ErrIndexOutOfRange, len(perm), len(s.values))
	}
	out := make([]any, len(perm))
	for j, p := range perm {
		if p < 0 || p >= len(s.values) {
			return fmt.Errorf("%w: permutation entry %d, size %d", ErrIndexOutOfRange, p, len(s.values))
		}
		out[j] = s.values[p]
	}
	s.values = out
	return nil
}

// clone returns a deep copy of the series.
func (s *Series) clone() *Series {
	byKey := make(map[any]int, len(s.byKey))
	for k, v := range s.byKey {
		byKey[k] = v
	}
	return &Series{
		name:   s.name,
		keys:   s.Keys(),
		values: s.Values(),
		byKey:  byKey,
	}
}

// Render writes one line per entry: the key, a tab, then the value (or
// each element of a slice value) followed by a tab.
func (s *Series) Render(w io.Writer) error {
	var b strings.Builder
	for i, k := range s.keys {
		b.WriteString(formatValue(k))
		b.WriteByte('\t')
		if elems, ok := sequence(s.values[i]); ok {
			for _, e := range elems {
				b.WriteString(formatValue(e))
				b.WriteByte('\t')
			}
		} else {
			b.WriteString(formatValue(s.values[i]))
			b.WriteByte('\t')
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// String renders the series.
func (s *Series) String() string {
	var b strings.Builder
	_ = s.Render(&b)
	return b.String()
}

// stablePermutation returns the positions of values in ascending value
// order, keeping equal values in their original relative order.
func stablePermutation(values []any) ([]int, error) {
	nums, strs, err := sortKeys(values)
	if err != nil {
		return nil, err
	}
	perm := make([]int, len(values))
	for i := range perm {
		perm[i] = i
	}
	if strs != nil {
		sort.SliceStable(perm, func(a, b int) bool { return strs[perm[a]] < strs[perm[b]] })
	} else {
		sort.SliceStable(perm, func(a, b int) bool { return nums[perm[a]] < nums[perm[b]] })
	}
	return perm, nil
}
