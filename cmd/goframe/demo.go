package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sartorproj/goframe/dataframe"
)

// weatherColumns is the sample dataset shown by the demo command.
var weatherColumns = []dataframe.Column{
	{Name: "Sun Hours", Data: []float64{4.5, 4.0, 5.1, 5}},
	{Name: "Max Temp", Data: []float64{19.6, 19.1, 19.6, 20.0}},
	{Name: "Min Temp", Data: []float64{12.7, 12.5, 13.3, 12.1}},
	{Name: "Rain (mm)", Data: []int{82, 109, 65, 76}},
	{Name: "Rain Days", Data: []any{13, 20, 10, 9.7}},
}

var weatherCounties = []any{"Clare", "Galway", "Dublin", "Wexford"}

func newDemoCmd(a *app) *cobra.Command {
	var sortBy string
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Print the sample weather frame before and after sorting",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := append(a.frameOptions(), dataframe.WithRowIndex(weatherCounties...))
			df, err := dataframe.NewFrame(weatherColumns, opts...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if err := df.Render(out); err != nil {
				return err
			}
			if err := df.SortByColumn(sortBy); err != nil {
				return err
			}
			fmt.Fprintln(out)
			if err := df.Render(out); err != nil {
				return err
			}
			fmt.Fprintln(out)
			return df.PrintMean(out)
		},
	}
	cmd.Flags().StringVar(&sortBy, "by", "Rain (mm)", "Column to sort the sample by")
	return cmd
}
