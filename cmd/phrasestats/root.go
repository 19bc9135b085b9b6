package main

import (
	"context"
	"log/slog"
	"time"

	"phrase-views/internal/config"
	"phrase-views/internal/phrasestats/adapters/postgres"
	"phrase-views/internal/phrasestats/core/ports"

	"github.com/spf13/cobra"
)

type app struct {
	cfg    *config.Config
	logger *slog.Logger
	now    func() time.Time

	// openReader returns the events reader and a func releasing it.
	openReader func(ctx context.Context) (ports.PhraseViewsReaderPort, func() error, error)
}

func newApp(cfg *config.Config, logger *slog.Logger) *app {
	a := &app{
		cfg:    cfg,
		logger: logger,
		now:    time.Now,
	}
	a.openReader = a.openPostgresReader
	return a
}

func (a *app) openPostgresReader(ctx context.Context) (ports.PhraseViewsReaderPort, func() error, error) {
	if err := a.cfg.RequireDSN(); err != nil {
		return nil, nil, err
	}

	db, err := postgres.Connect(ctx, a.cfg.DB.DSN, postgres.PoolConfig{
		MaxOpenConns:    a.cfg.DB.MaxOpenConns,
		MaxIdleConns:    a.cfg.DB.MaxIdleConns,
		ConnMaxLifetime: a.cfg.DB.ConnMaxLifetime,
	})
	if err != nil {
		return nil, nil, err
	}

	repo, err := postgres.NewPhraseViewsRepository(postgres.NewSQLDB(db), a.cfg.DB.EventsTable)
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	a.logger.Debug("connected to events store", slog.String("table", a.cfg.DB.EventsTable))

	return repo, db.Close, nil
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "phrasestats",
		Short:         "Hourly phrase view reports for advertising campaigns",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newReportCmd(a))
	root.AddCommand(newMigrateCmd(a))

	return root
}
