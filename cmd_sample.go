package main

import (
	"fmt"
	"time"

	"github.com/Gatis224/uzskaite/employee"
	"github.com/spf13/cobra"
)

func newSampleCmd() *cobra.Command {
	now := time.Now()
	var (
		output  string
		year    int
		month   int
		workers int
	)

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Write a demo roster template with fake workers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if workers < 1 {
				return fmt.Errorf("workers must be at least 1, got %d", workers)
			}

			t := employee.Template{
				Year:      year,
				Month:     month,
				Employees: employee.GenerateFake(workers),
			}
			if err := employee.WriteToFile(t, output); err != nil {
				return fmt.Errorf("write sample: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "done:", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "sample.xlsx", "output file")
	cmd.Flags().IntVar(&year, "year", now.Year(), "header year")
	cmd.Flags().IntVar(&month, "month", int(now.Month()), "header month (1-12)")
	cmd.Flags().IntVar(&workers, "workers", 10, "number of worker rows")
	return cmd
}
