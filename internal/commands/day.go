package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"timegrid/internal/clock"
)

func (c *Commands) dayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "day [date]",
		Short: "Show the entries of one date",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date := clock.FormatDate(time.Now())
			if len(args) == 1 {
				if _, err := clock.ParseDate(args[0]); err != nil {
					return err
				}
				date = args[0]
			}

			blocks, err := c.App.DayView().Run(cmd.Context(), date)
			if err != nil {
				return err
			}
			if len(blocks) == 0 {
				fmt.Printf("No entries on %s\n", date)
				return nil
			}

			total := 0
			rows := make([][]string, 0, len(blocks))
			for _, b := range blocks {
				total += b.Entry.Duration()
				rows = append(rows, []string{
					b.Time,
					b.Label,
					b.Entry.Category,
					formatMinutes(b.Entry.Duration()),
					b.Entry.ID,
				})
			}
			printTable(
				[]string{"TIME", "LABEL", "CATEGORY", "DURATION", "ID"},
				rows,
				[]string{"", "", "Total", formatMinutes(total), ""},
			)
			return nil
		},
	}
}
