package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"timegrid/internal/clock"
	"timegrid/internal/domain"
)

func (c *Commands) addCmd() *cobra.Command {
	var (
		id       string
		date     string
		start    string
		end      string
		category string
		label    string
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create or update a time entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			if date == "" {
				date = clock.FormatDate(time.Now())
			}
			startMin, err := clock.ClockToMinutes(start)
			if err != nil {
				return err
			}
			endMin, err := clock.ClockToMinutes(end)
			if err != nil {
				return err
			}
			if id == "" {
				id = domain.NewEntryID()
			}
			entry := domain.Entry{
				ID:       id,
				Date:     date,
				Start:    startMin,
				End:      endMin,
				Category: category,
				Label:    label,
			}
			saved, err := c.App.Store.UpsertEntry(cmd.Context(), entry)
			if err != nil {
				return err
			}
			fmt.Printf("Saved %s %s (%s) id=%s\n", saved.Date, clock.FormatRange(saved.Start, saved.End), saved.Category, saved.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&id, "id", "", "entry id to update (omit to create)")
	cmd.Flags().StringVar(&date, "date", "", "entry date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&start, "start", "", "start time (HH:MM, on the 15-minute grid)")
	cmd.Flags().StringVar(&end, "end", "", "end time (HH:MM, exclusive; 24:00 allowed)")
	cmd.Flags().StringVar(&category, "category", "", "category id")
	cmd.Flags().StringVar(&label, "label", "", "optional free-text label")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
	_ = cmd.MarkFlagRequired("category")
	return cmd
}

func (c *Commands) rmCmd() *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "rm <entry-id>",
		Short: "Delete a time entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if date == "" {
				date = clock.FormatDate(time.Now())
			}
			// Deleting an id that is already gone is a no-op by contract.
			err := c.App.Store.DeleteEntry(cmd.Context(), domain.Entry{ID: args[0], Date: date})
			if err != nil {
				return err
			}
			fmt.Printf("Deleted %s from %s\n", args[0], date)
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "date bucket holding the entry (default today)")
	return cmd
}
