// Command goframe renders, sorts and summarizes tabular data.
//
// Tables are read as CSV from standard input:
//
//	goframe print --index county < weather.csv
//	goframe sort --by "Rain (mm)" --index county < weather.csv
//	goframe reduce --op mean < weather.csv
//
// The demo command prints the built-in weather dataset.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
