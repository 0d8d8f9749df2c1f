package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/Gatis224/uzskaite/bootstrap"
	"github.com/Gatis224/uzskaite/config"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "uzskaite",
		Short: "Generate next month's duty roster from this month's workbook",
		Long: `uzskaite reads a roster workbook whose header names a month
(e.g. "2025.decembris") and writes the roster for the following month with
the day columns, shift codes and holidays filled in.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a TOML config file")

	load := func() (*config.Config, *slog.Logger, error) {
		cfg, err := config.Load(configPath)
		if err != nil {
			return nil, nil, err
		}
		return cfg, bootstrap.NewLogger(cfg.Log, os.Stderr), nil
	}

	rootCmd.AddCommand(
		newGenerateCmd(load),
		newServeCmd(load),
		newSampleCmd(),
	)
	return rootCmd
}

// loader loads the configuration named by the global --config flag.
type loader func() (*config.Config, *slog.Logger, error)
