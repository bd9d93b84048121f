package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func (c *Commands) exportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export [file]",
		Short: "Write all categories and entries as JSON (stdout by default)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := os.Stdout
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Create(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				out = f
			}
			return c.App.Archive().Export(cmd.Context(), out)
		},
	}
}

func (c *Commands) importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace stored data from an export file",
		Long: "Replace stored data from an export file. A present categories array\n" +
			"replaces the category list wholesale; a present entries map replaces all\n" +
			"entries wholesale. A malformed file leaves existing data untouched.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			if err := c.App.Archive().Import(cmd.Context(), f); err != nil {
				return err
			}
			fmt.Println("Import successful")
			return nil
		},
	}
}
