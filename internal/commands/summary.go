package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"timegrid/internal/clock"
	"timegrid/internal/domain"
)

func (c *Commands) summaryCmd() *cobra.Command {
	var (
		rangeName string
		from      string
		to        string
	)
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Aggregate per-category and per-day totals over a date range",
		RunE: func(cmd *cobra.Command, args []string) error {
			if from == "" && to == "" {
				var err error
				from, to, err = clock.PresetRange(rangeName, time.Now())
				if err != nil {
					return err
				}
			}
			if from == "" || to == "" {
				return fmt.Errorf("%w: --from and --to must be given together", domain.ErrInvalidInput)
			}

			summary, err := c.App.Summary().Run(cmd.Context(), from, to)
			if err != nil {
				return err
			}

			fmt.Printf("Range %s .. %s\n\n", summary.From, summary.To)
			if summary.TotalMinutes == 0 {
				fmt.Println("No entries in range")
				return nil
			}

			rows := make([][]string, 0, len(summary.PerCategory))
			for _, ct := range summary.PerCategory {
				rows = append(rows, []string{ct.Name, fmt.Sprintf("%d min", ct.Minutes), formatMinutes(ct.Minutes)})
			}
			printTable(
				[]string{"CATEGORY", "MINUTES", "DURATION"},
				rows,
				[]string{"Total", fmt.Sprintf("%d min", summary.TotalMinutes), formatMinutes(summary.TotalMinutes)},
			)

			// Per-day series, zero days included so gaps are visible.
			maxDay := 0
			for _, d := range summary.PerDay {
				if d.Minutes > maxDay {
					maxDay = d.Minutes
				}
			}
			fmt.Println()
			for _, d := range summary.PerDay {
				fmt.Printf("%s  %-8s %s\n", d.Date, formatMinutes(d.Minutes), bar(d.Minutes, maxDay, 40))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&rangeName, "range", clock.RangeToday, "preset range: today, week, last7, month, year")
	cmd.Flags().StringVar(&from, "from", "", "range start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "range end date (YYYY-MM-DD), inclusive")
	return cmd
}
