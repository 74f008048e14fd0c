package main

import (
	"fmt"
	"math"
	"time"

	"github.com/spf13/cobra"

	"github.com/jmcpheron/ancient-number-converter/internal/sweep"
	"github.com/jmcpheron/ancient-number-converter/pkg/numeral"
)

func (a *app) sweepCmd() *cobra.Command {
	var (
		minN, maxN int
		workers    int
	)
	cmd := &cobra.Command{
		Use:   "sweep [system]...",
		Short: "Verify round trips across whole ranges",
		Long: `Verify every integer of each system's range, in parallel. --min and
--max narrow the range; they are clamped to each system's own range.

Examples:
  numerals sweep
  numerals sweep roman greekAttic
  numerals sweep babylonian --max 100000 --workers 4`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := sweep.Options{Workers: a.cfg.Sweep.Workers, Logger: a.logger}
			for _, id := range args {
				opts.Systems = append(opts.Systems, numeral.ID(id))
			}
			if cmd.Flags().Changed("workers") {
				opts.Workers = workers
			}
			if cmd.Flags().Changed("min") || cmd.Flags().Changed("max") {
				opts.Range = &numeral.Range{Min: minN, Max: maxN}
			}

			report, err := sweep.Run(cmd.Context(), opts)
			if err != nil {
				return err
			}
			if a.json() {
				if err := a.out.JSON(report); err != nil {
					return err
				}
			} else {
				a.printSweep(report)
			}
			if !report.Passed() {
				return errFailed
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&minN, "min", 0, "lowest number to check")
	cmd.Flags().IntVar(&maxN, "max", math.MaxInt, "highest number to check (default: each system's maximum)")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "parallel workers (default from config, 0 = one per CPU)")
	return cmd
}

func (a *app) printSweep(report sweep.Report) {
	for _, sr := range report.Systems {
		line := fmt.Sprintf("%-12s %s  %d checked in %s", sr.System, sr.Range, sr.Checked, sr.Elapsed.Round(time.Millisecond))
		if sr.Passed() {
			a.out.Success(line)
			continue
		}
		a.out.Error(fmt.Sprintf("%s, %d failed", line, sr.Failed))
		for _, f := range sr.Failures {
			a.out.Bullet("%d: %s", f.Number, f.Error)
		}
	}
}
