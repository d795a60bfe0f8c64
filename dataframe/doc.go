// Package dataframe provides labeled series and tabular frames.
//
// A Series is an ordered association of unique keys to values. A Frame
// is a set of named Series sharing one row index.
//
// # Creating a Series
//
// Values are keyed by position unless an index is supplied:
//
//	s, err := dataframe.NewSeries([]int{5, 3, 9}, dataframe.WithName("x"))
//	s, err := dataframe.NewSeries([]float64{1.5, 2.5}, dataframe.WithIndex("a", "b"))
//
// Explicit key/value pairs keep their order:
//
//	s, err := dataframe.NewSeries([]dataframe.Entry{{Key: "a", Value: 1}, {Key: "b", Value: 2}})
//
// # Reductions
//
// Min, Max, Mean, Sum, Median and Std require numeric values and at least
// one entry:
//
//	mean, err := s.Mean()
//	if errors.Is(err, dataframe.ErrNonNumericValue) {
//	    // the series holds strings or other non-numeric values
//	}
//
// # Creating a Frame
//
//	df, err := dataframe.NewFrame([]dataframe.Column{
//	    {Name: "Sun Hours", Data: []float64{4.5, 4.0, 5.1, 5}},
//	    {Name: "Rain (mm)", Data: []int{82, 109, 65, 76}},
//	}, dataframe.WithRowIndex("Clare", "Galway", "Dublin", "Wexford"))
//
// Frame reductions skip columns that are not numeric:
//
//	results, err := df.ColumnMean()
//	err = df.PrintMean(os.Stdout)
//
// # Sorting
//
// SortByColumn reorders every column and the row index together, stably
// and in ascending order:
//
//	err = df.SortByColumn("Rain (mm)")
//	err = df.Render(os.Stdout)
//
// # CSV
//
// Frames can be decoded from and encoded to CSV streams:
//
//	opts := dataframe.DefaultCSVOptions()
//	opts.IndexColumn = "county"
//	df, err := dataframe.ReadCSV(reader, opts)
//	err = df.WriteCSV(writer, true)
package dataframe
