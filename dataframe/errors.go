package dataframe

import "errors"

var (
	// ErrInvalidInput reports malformed or mismatched construction arguments.
	ErrInvalidInput = errors.New("dataframe: invalid input")

	// ErrNonNumericValue reports a numeric reduction over non-numeric values.
	ErrNonNumericValue = errors.New("dataframe: non-numeric value")

	// ErrEmptySeries reports a reduction over a series with no entries.
	ErrEmptySeries = errors.New("dataframe: empty series")

	// ErrIndexOutOfRange reports an invalid position or permutation entry.
	ErrIndexOutOfRange = errors.New("dataframe: index out of range")

	// ErrNonComparableValue reports sort key values that cannot be ordered.
	ErrNonComparableValue = errors.New("dataframe: non-comparable value")
)
