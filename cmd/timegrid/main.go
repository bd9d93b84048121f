package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"timegrid/internal/commands"
)

func main() {
	// Logger; the -v flag raises the level to debug once flags are parsed.
	level := new(slog.LevelVar)
	level.Set(slog.LevelInfo)
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	logger := slog.New(handler)
	slog.SetDefault(logger)

	// Context with signal handling
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rootCmd := commands.Setup(logger, level)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logger.Error("command failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
