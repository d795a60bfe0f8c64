// Package goframe provides labeled series and tabular data frames.
//
// GoFrame is a small Go package for column-oriented tables: named series
// indexed by labels, and frames that group several series under a shared
// row index.
//
// # Features
//
//   - Series with positional or explicit keys
//   - Numeric reductions (min, max, mean, sum, median, standard deviation)
//   - Frames with a shared row index and per-column reductions that skip
//     non-numeric columns
//   - Stable ascending sort of a frame by one column
//   - Aligned text rendering and CSV encoding
//
// # Quick Start
//
//	df, err := dataframe.NewFrame([]dataframe.Column{
//	    {Name: "A", Data: []int{3, 1, 2}},
//	    {Name: "B", Data: []int{10, 20, 30}},
//	})
//	df.SortByColumn("A")
//	df.Render(os.Stdout)
//	df.PrintMean(os.Stdout)
//
// # Packages
//
// The library is organized into the following packages:
//
//   - dataframe: Series, Frame, rendering and CSV codec
//   - stats: descriptive statistics over float64 samples
//
// The goframe command in cmd/goframe exposes the library on CSV input.
package goframe

// Version is the current release of goframe.
const Version = "0.1.0"
