package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/sartorproj/goframe/dataframe"
	"github.com/sartorproj/goframe/internal/config"
	"github.com/sartorproj/goframe/internal/logging"
)

// app carries the settings resolved before any subcommand runs.
type app struct {
	configPath string
	logLevel   string

	layout dataframe.Layout
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:           "goframe",
		Short:         "goframe works with labeled series and data frames",
		Long:          `goframe reads CSV tables, renders them as aligned text, sorts them by a column and prints per-column statistics.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to a YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides the config file")

	rootCmd.AddCommand(
		newDemoCmd(a),
		newPrintCmd(a),
		newSortCmd(a),
		newReduceCmd(a),
		newVersionCmd(),
	)
	return rootCmd
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	a.layout = cfg.Layout
	a.logger = logging.New(level, cmd.ErrOrStderr())
	return nil
}

// frameOptions returns the options every command builds frames with.
func (a *app) frameOptions() []dataframe.FrameOption {
	return []dataframe.FrameOption{
		dataframe.WithLayout(a.layout),
		dataframe.WithLogger(a.logger),
	}
}
