// Package stats provides descriptive statistics over float64 samples.
//
// The functions here are the numeric kernels behind the reductions of
// dataframe.Series. They work on plain slices and never fail: an empty
// sample yields NaN (or 0 for Sum), so callers that need a stricter
// contract check the length themselves.
//
// # Reductions
//
//	values := []float64{5, 3, 9}
//	stats.Min(values)    // 3
//	stats.Max(values)    // 9
//	stats.Mean(values)   // 5.666...
//	stats.Median(values) // 5
//
// # Dispersion
//
//	stats.Variance(values) // sample variance (n-1 denominator)
//	stats.Std(values)      // sqrt of the sample variance
package stats
