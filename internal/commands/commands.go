// Package commands builds the cobra command tree. The backing store is
// opened once per invocation, after flags are parsed, so -v affects backend
// startup logging too.
package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"timegrid/internal/app"
	"timegrid/internal/config"
)

// Commands carries state shared by the subcommands.
type Commands struct {
	App   *app.App
	Cfg   config.Config
	Level *slog.LevelVar
	Log   *slog.Logger
}

// Setup wires the root command and all subcommands.
func Setup(log *slog.Logger, level *slog.LevelVar) *cobra.Command {
	c := &Commands{Level: level, Log: log}

	var verbose bool
	rootCmd := &cobra.Command{
		Use:           "timegrid",
		Short:         "A 15-minute-grid personal time tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				c.Level.Set(slog.LevelDebug)
			}
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			c.App, err = app.New(cmd.Context(), c.Log, cfg)
			if err != nil {
				return fmt.Errorf("initialize store: %w", err)
			}
			c.Cfg = cfg
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if c.App != nil {
				return c.App.Close()
			}
			return nil
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	rootCmd.AddCommand(c.dayCmd())
	rootCmd.AddCommand(c.summaryCmd())
	rootCmd.AddCommand(c.addCmd())
	rootCmd.AddCommand(c.rmCmd())
	rootCmd.AddCommand(c.categoriesCmd())
	rootCmd.AddCommand(c.exportCmd())
	rootCmd.AddCommand(c.importCmd())
	rootCmd.AddCommand(c.serveCmd())
	rootCmd.AddCommand(c.uiCmd())

	return rootCmd
}
