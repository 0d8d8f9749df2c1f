package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Gatis224/uzskaite/calendar"
	"github.com/Gatis224/uzskaite/processor"
	"github.com/spf13/cobra"
)

func newGenerateCmd(load loader) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "generate INPUT.xlsx",
		Short: "Write next month's roster next to INPUT or to --output",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := load()
			if err != nil {
				return err
			}

			resolver, err := calendar.New(cfg.Roster.Country)
			if err != nil {
				return err
			}

			input := args[0]
			res, err := processor.New(resolver, log).ProcessFile(input)
			if err != nil {
				return fmt.Errorf("generate from %s: %w", input, err)
			}

			path, err := outputPath(input, output, res.FileName)
			if err != nil {
				return err
			}
			if err := os.WriteFile(path, res.Data, 0o644); err != nil {
				return fmt.Errorf("save: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "done:", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file or directory (default: suggested name next to INPUT)")
	return cmd
}

// outputPath resolves where the roster is written. An empty output means the
// suggested name in input's directory; an existing directory gets the
// suggested name inside it; anything else is used as the file path.
func outputPath(input, output, suggested string) (string, error) {
	if output == "" {
		return filepath.Join(filepath.Dir(input), suggested), nil
	}

	info, err := os.Stat(output)
	switch {
	case err == nil && info.IsDir():
		return filepath.Join(output, suggested), nil
	case err == nil || os.IsNotExist(err):
		return output, nil
	default:
		return "", fmt.Errorf("stat output: %w", err)
	}
}
