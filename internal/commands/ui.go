package commands

import (
	"github.com/spf13/cobra"

	"timegrid/internal/tui"
)

func (c *Commands) uiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive day grid (drag with the mouse to add entries)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(cmd.Context(), c.App)
		},
	}
}
