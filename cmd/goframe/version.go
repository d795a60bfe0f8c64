package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sartorproj/goframe"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of goframe",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "goframe version %s\n", goframe.Version)
		},
	}
}
