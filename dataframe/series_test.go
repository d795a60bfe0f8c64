package dataframe

import (
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSeries(t *testing.T) {
	s, err := NewSeries([]int{5, 3, 9}, WithName("x"))
	require.NoError(t, err)

	assert.Equal(t, "x", s.Name())
	assert.Equal(t, 3, s.Size())
	assert.Equal(t, []any{0, 1, 2}, s.Keys())
	assert.Equal(t, []any{5, 3, 9}, s.Values())
}

func TestNewSeriesWithIndex(t *testing.T) {
	s, err := NewSeries([]float64{1.5, 2.5}, WithIndex("a", "b"))
	require.NoError(t, err)

	assert.Equal(t, []Entry{{Key: "a", Value: 1.5}, {Key: "b", Value: 2.5}}, s.Entries())

	v, ok := s.Lookup("b")
	assert.True(t, ok)
	assert.Equal(t, 2.5, v)

	_, ok = s.Lookup("z")
	assert.False(t, ok)
}

func TestNewSeriesFromEntries(t *testing.T) {
	entries := []Entry{{Key: "z", Value: 1}, {Key: "a", Value: 2}}

	s, err := NewSeries(entries, WithIndex(10, 20, 30))
	require.NoError(t, err, "index is ignored for explicit entries")

	assert.Equal(t, []any{"z", "a"}, s.Keys())
	assert.Equal(t, []any{1, 2}, s.Values())
}

func TestNewSeriesFromMap(t *testing.T) {
	s, err := NewSeries(map[string]int{"b": 2, "c": 3, "a": 1})
	require.NoError(t, err)

	assert.Equal(t, []any{"a", "b", "c"}, s.Keys())
	assert.Equal(t, []any{1, 2, 3}, s.Values())
}

func TestNewSeriesInvalid(t *testing.T) {
	tests := []struct {
		name string
		data any
		opts []SeriesOption
	}{
		{"nil", nil, nil},
		{"nil slice", []int(nil), nil},
		{"nil map", map[string]int(nil), nil},
		{"nil entries", []Entry(nil), nil},
		{"scalar", 42, nil},
		{"string", "abc", nil},
		{"index too short", []int{1, 2, 3}, []SeriesOption{WithIndex("a", "b")}},
		{"index too long", []int{1}, []SeriesOption{WithIndex("a", "b")}},
		{"duplicate keys", []int{1, 2}, []SeriesOption{WithIndex("a", "a")}},
		{"non-comparable key", []int{1}, []SeriesOption{WithIndex([]int{1})}},
		{"nil key", []int{1}, []SeriesOption{WithIndex(nil)}},
		{"NaN key", []int{1}, []SeriesOption{WithIndex(math.NaN())}},
		{"array holding slice key", []int{1}, []SeriesOption{WithIndex([1]any{[]int{1}})}},
		{"struct holding map key", []int{1}, []SeriesOption{WithIndex(struct{ X any }{map[int]int{}})}},
		{"NaN map key", map[float64]int{math.NaN(): 1, 2: 3}, nil},
		{"unordered map keys", map[any]int{1: 1, "a": 2}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSeries(tt.data, tt.opts...)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Nil(t, s)
		})
	}
}

func TestSeriesReductions(t *testing.T) {
	s, err := NewSeries([]int{5, 3, 9})
	require.NoError(t, err)

	min, err := s.Min()
	require.NoError(t, err)
	assert.Equal(t, 3.0, min)

	max, err := s.Max()
	require.NoError(t, err)
	assert.Equal(t, 9.0, max)

	mean, err := s.Mean()
	require.NoError(t, err)
	assert.InDelta(t, 17.0/3.0, mean, 1e-12)

	sum, err := s.Sum()
	require.NoError(t, err)
	assert.Equal(t, 17.0, sum)

	median, err := s.Median()
	require.NoError(t, err)
	assert.Equal(t, 5.0, median)

	std, err := s.Std()
	require.NoError(t, err)
	assert.InDelta(t, 3.0550504633, std, 1e-9)
}

func TestSeriesReductionsMixedNumericKinds(t *testing.T) {
	s, err := NewSeries([]any{int8(1), uint16(2), float32(3), int64(4), 5.0})
	require.NoError(t, err)

	assert.True(t, s.IsNumeric())
	mean, err := s.Mean()
	require.NoError(t, err)
	assert.Equal(t, 3.0, mean)
}

func TestSeriesReductionErrors(t *testing.T) {
	tests := []struct {
		name string
		data any
		want error
	}{
		{"strings", []string{"x", "y"}, ErrNonNumericValue},
		{"mixed", []any{1, "y"}, ErrNonNumericValue},
		{"bools", []bool{true, false}, ErrNonNumericValue},
		{"nested", []any{[]int{1, 2}}, ErrNonNumericValue},
		{"empty", []float64{}, ErrEmptySeries},
	}

	reductions := map[string]func(*Series) (float64, error){
		"min":  (*Series).Min,
		"max":  (*Series).Max,
		"mean": (*Series).Mean,
	}

	for _, tt := range tests {
		s, err := NewSeries(tt.data)
		require.NoError(t, err)
		for op, reduce := range reductions {
			t.Run(tt.name+"/"+op, func(t *testing.T) {
				_, err := reduce(s)
				assert.ErrorIs(t, err, tt.want)
			})
		}
	}
}

func TestSeriesMeanBetweenMinAndMax(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 50; trial++ {
		values := make([]float64, 1+rng.Intn(20))
		for i := range values {
			values[i] = rng.NormFloat64() * 100
		}
		s, err := NewSeries(values)
		require.NoError(t, err)
		assert.Equal(t, len(values), s.Size())

		min, err := s.Min()
		require.NoError(t, err)
		max, err := s.Max()
		require.NoError(t, err)
		mean, err := s.Mean()
		require.NoError(t, err)

		assert.LessOrEqual(t, min, mean+1e-9)
		assert.LessOrEqual(t, mean, max+1e-9)
	}
}

func TestValueAt(t *testing.T) {
	s, err := NewSeries([]string{"a", "b"}, WithIndex(10, 20))
	require.NoError(t, err)

	v, err := s.ValueAt(1)
	require.NoError(t, err)
	assert.Equal(t, "b", v)

	_, err = s.ValueAt(2)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = s.ValueAt(-1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestReorderMovesValuesOnly(t *testing.T) {
	s, err := NewSeries([]int{3, 1, 2}, WithIndex("a", "b", "c"))
	require.NoError(t, err)

	require.NoError(t, s.reorder([]int{1, 2, 0}))

	assert.Equal(t, []any{"a", "b", "c"}, s.Keys())
	assert.Equal(t, []any{1, 2, 3}, s.Values())

	v, ok := s.Lookup("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestReorderInvalidPermutation(t *testing.T) {
	tests := []struct {
		name string
		perm []int
	}{
		{"short", []int{0, 1}},
		{"long", []int{0, 1, 2, 0}},
		{"out of range", []int{0, 1, 3}},
		{"negative", []int{0, -1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSeries([]int{3, 1, 2})
			require.NoError(t, err)

			err = s.reorder(tt.perm)
			assert.ErrorIs(t, err, ErrIndexOutOfRange)
			assert.Equal(t, []any{3, 1, 2}, s.Values(), "failed reorder must not mutate")
		})
	}
}

func TestStablePermutation(t *testing.T) {
	perm, err := stablePermutation([]any{2, 1, 2, 1.0, 0})
	require.NoError(t, err)
	assert.Equal(t, []int{4, 1, 3, 0, 2}, perm)

	perm, err = stablePermutation([]any{"pear", "apple", "fig"})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 0}, perm)

	_, err = stablePermutation([]any{"a", 1})
	assert.ErrorIs(t, err, ErrNonComparableValue)

	_, err = stablePermutation([]any{1, true})
	assert.ErrorIs(t, err, ErrNonComparableValue)
}

func TestSeriesRender(t *testing.T) {
	s, err := NewSeries([]any{1, []int{2, 3}, "x", 2.5}, WithIndex("a", "b", "c", "d"))
	require.NoError(t, err)

	var b strings.Builder
	require.NoError(t, s.Render(&b))

	expected := "a\t1\t\n" +
		"b\t2\t3\t\n" +
		"c\tx\t\n" +
		"d\t2.5\t\n"
	assert.Equal(t, expected, b.String())
	assert.Equal(t, expected, s.String())
}

func TestCompositeKeys(t *testing.T) {
	s, err := NewSeries([]string{"a", "b"}, WithIndex([2]int{0, 1}, [1]any{"x"}))
	require.NoError(t, err)

	v, ok := s.Lookup([2]int{0, 1})
	assert.True(t, ok)
	assert.Equal(t, "a", v)

	v, ok = s.Lookup([1]any{"x"})
	assert.True(t, ok)
	assert.Equal(t, "b", v)

	assert.NotPanics(t, func() {
		_, ok = s.Lookup([1]any{[]int{1}})
	})
	assert.False(t, ok)

	_, ok = s.Lookup(math.NaN())
	assert.False(t, ok)
}

func TestReductionsPropagateNaN(t *testing.T) {
	s, err := NewSeries([]float64{1, math.NaN(), 3})
	require.NoError(t, err)

	mean, err := s.Mean()
	require.NoError(t, err)
	assert.True(t, math.IsNaN(mean))
}

func TestStablePermutationRejectsNaN(t *testing.T) {
	_, err := stablePermutation([]any{3.0, math.NaN(), 1.0})
	assert.ErrorIs(t, err, ErrNonComparableValue)

	_, err = stablePermutation([]any{float32(math.NaN())})
	assert.ErrorIs(t, err, ErrNonComparableValue)

	perm, err := stablePermutation([]any{math.Inf(1), 1, math.Inf(-1)})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1, 0}, perm)
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		input    any
		expected string
	}{
		{4.0, "4.0"},
		{4.5, "4.5"},
		{float32(20), "20.0"},
		{-3.0, "-3.0"},
		{math.Inf(1), "+Inf"},
		{math.NaN(), "NaN"},
		{5, "5"},
		{"x", "x"},
		{[]float64{1, 2.5}, "[1.0 2.5]"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatValue(tt.input))
		})
	}
}
