package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sartorproj/goframe/dataframe"
)

// input holds the CSV flags shared by the table commands.
type input struct {
	index     string
	delimiter string
	noHeader  bool
}

func (in *input) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&in.index, "index", "", "CSV column holding the row labels")
	cmd.Flags().StringVar(&in.delimiter, "delimiter", ",", "CSV field delimiter")
	cmd.Flags().BoolVar(&in.noHeader, "no-header", false, "CSV has no header row")
}

func (in *input) read(cmd *cobra.Command, a *app) (*dataframe.Frame, error) {
	opts := dataframe.DefaultCSVOptions()
	opts.IndexColumn = in.index
	opts.HasHeader = !in.noHeader
	r := []rune(in.delimiter)
	if len(r) != 1 {
		return nil, fmt.Errorf("delimiter must be a single character, got %q", in.delimiter)
	}
	opts.Delimiter = r[0]
	df, err := dataframe.ReadCSV(cmd.InOrStdin(), opts, a.frameOptions()...)
	if err != nil {
		return nil, fmt.Errorf("read table: %w", err)
	}
	rows, cols := df.Shape()
	a.logger.Debug("table loaded", "rows", rows, "columns", cols)
	return df, nil
}

func newPrintCmd(a *app) *cobra.Command {
	var in input
	cmd := &cobra.Command{
		Use:   "print",
		Short: "Render a CSV table from stdin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			df, err := in.read(cmd, a)
			if err != nil {
				return err
			}
			return df.Render(cmd.OutOrStdout())
		},
	}
	in.register(cmd)
	return cmd
}

func newSortCmd(a *app) *cobra.Command {
	var (
		in    input
		by    string
		asCSV bool
	)
	cmd := &cobra.Command{
		Use:   "sort",
		Short: "Sort a CSV table from stdin by one column",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			df, err := in.read(cmd, a)
			if err != nil {
				return err
			}
			if err := df.SortByColumn(by); err != nil {
				return err
			}
			if asCSV {
				return df.WriteCSV(cmd.OutOrStdout(), in.index != "")
			}
			return df.Render(cmd.OutOrStdout())
		},
	}
	in.register(cmd)
	cmd.Flags().StringVar(&by, "by", "", "Column to sort by")
	cmd.Flags().BoolVar(&asCSV, "csv", false, "Write the sorted table as CSV")
	_ = cmd.MarkFlagRequired("by")
	return cmd
}

func newReduceCmd(a *app) *cobra.Command {
	var (
		in input
		op string
	)
	cmd := &cobra.Command{
		Use:   "reduce",
		Short: "Print min, max or mean of every numeric column",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			df, err := in.read(cmd, a)
			if err != nil {
				return err
			}
			var results []dataframe.ColumnResult
			switch op {
			case "min":
				results, err = df.ColumnMin()
			case "max":
				results, err = df.ColumnMax()
			case "mean":
				results, err = df.ColumnMean()
			default:
				return fmt.Errorf("unknown reduction %q (want min, max or mean)", op)
			}
			if err != nil {
				return err
			}
			for _, r := range results {
				if r.Skipped {
					a.logger.Debug("column skipped", "column", r.Column, "reason", r.Reason)
				}
			}
			return df.WriteReductions(cmd.OutOrStdout(), results)
		},
	}
	in.register(cmd)
	cmd.Flags().StringVar(&op, "op", "mean", "Reduction: min, max or mean")
	return cmd
}
