package commands

import (
	"fmt"
	"math/rand"
	"regexp"

	"github.com/spf13/cobra"

	"timegrid/internal/domain"
)

var hexColorPattern = regexp.MustCompile(`(?i)^#([0-9a-f]{3}|[0-9a-f]{6})$`)

func (c *Commands) categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			cats, err := c.App.Store.ListCategories(cmd.Context())
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(cats))
			for _, cat := range cats {
				rows = append(rows, []string{cat.ID, cat.Name, cat.Color})
			}
			printTable([]string{"ID", "NAME", "COLOR"}, rows, nil)
			return nil
		},
	}

	var color string
	addCmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if name == "" {
				return fmt.Errorf("%w: category name is required", domain.ErrInvalidInput)
			}
			if !hexColorPattern.MatchString(color) {
				color = fmt.Sprintf("hsl(%d 70%% 60%%)", rand.Intn(360))
			}

			cats, err := c.App.Store.ListCategories(cmd.Context())
			if err != nil {
				return err
			}
			taken := make(map[string]bool, len(cats))
			for _, cat := range cats {
				taken[cat.ID] = true
			}
			id := domain.CategoryID(name, func(id string) bool { return taken[id] })

			created, err := c.App.Store.AddCategory(cmd.Context(), domain.Category{ID: id, Name: name, Color: color})
			if err != nil {
				return err
			}
			fmt.Printf("Created category %s (%s, %s)\n", created.Name, created.ID, created.Color)
			return nil
		},
	}
	addCmd.Flags().StringVar(&color, "color", "", "display color, e.g. #33cc88 (random when omitted)")
	cmd.AddCommand(addCmd)
	return cmd
}
