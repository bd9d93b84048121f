package app

import (
	"context"
	"io"
	"log/slog"

	localstore "timegrid/internal/adapter/local"
	mysqlstore "timegrid/internal/adapter/mysql"
	"timegrid/internal/config"
	"timegrid/internal/migrate"
	"timegrid/internal/ports"
	"timegrid/internal/usecase"
)

// App wires the configured backend to the use cases. The backend choice is
// made once here and never changes for the process lifetime.
type App struct {
	Log   *slog.Logger
	Store ports.Store

	closer io.Closer
}

func New(ctx context.Context, log *slog.Logger, cfg config.Config) (*App, error) {
	a := &App{Log: log}
	if cfg.RemoteEnabled() {
		if err := migrate.Run(ctx, cfg.MySQL.DSN, log); err != nil {
			return nil, err
		}
		st, err := mysqlstore.New(ctx, cfg.MySQL.DSN, log)
		if err != nil {
			return nil, err
		}
		a.Store = st
		a.closer = st
		log.Info("store ready", slog.String("backend", "mysql"))
	} else {
		st, err := localstore.New(cfg.Local.Dir, log)
		if err != nil {
			return nil, err
		}
		a.Store = st
		log.Info("store ready", slog.String("backend", "local"), slog.String("dir", cfg.Local.Dir))
	}
	return a, nil
}

// Close releases backend resources, if any.
func (a *App) Close() error {
	if a.closer != nil {
		return a.closer.Close()
	}
	return nil
}

// Summary returns the range-aggregation use case.
func (a *App) Summary() *usecase.SummaryUseCase {
	return &usecase.SummaryUseCase{Log: a.Log, Store: a.Store}
}

// DayView returns the day-composition use case.
func (a *App) DayView() *usecase.DayViewUseCase {
	return &usecase.DayViewUseCase{Log: a.Log, Store: a.Store}
}

// Archive returns the export/import use case.
func (a *App) Archive() *usecase.Archive {
	return &usecase.Archive{Log: a.Log, Store: a.Store}
}
