package main

import (
	"errors"
	"fmt"
	"log/slog"

	"phrase-views/internal/config"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/spf13/cobra"
)

// newMigrateCmd applies the development schema for the events table. The
// report never writes; production tables are owned by the ingestion side.
func newMigrateCmd(a *app) *cobra.Command {
	var down bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply (or roll back) the events table schema",
		Long: `Apply (or roll back) the development schema for the events table.

The migrations create the default "events" table only. When EVENTS_TABLE
names another table, report reads that table and migrate does not create
it; provision it separately with the same columns.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.cfg.RequireDSN(); err != nil {
				return err
			}

			if table := a.cfg.DB.EventsTable; table != "" && table != config.DefaultEventsTable {
				a.logger.Warn("migrations only create the default events table",
					slog.String("events_table", table),
					slog.String("migrated_table", config.DefaultEventsTable),
				)
			}

			source := "file://" + a.cfg.DB.MigrationsPath
			m, err := migrate.New(source, a.cfg.DB.DSN)
			if err != nil {
				return fmt.Errorf("init migrations from %s: %w", source, err)
			}
			defer func() {
				srcErr, dbErr := m.Close()
				if err := errors.Join(srcErr, dbErr); err != nil {
					a.logger.Warn("failed to close migrator", slog.Any("error", err))
				}
			}()

			direction := "up"
			if down {
				direction = "down"
				err = m.Down()
			} else {
				err = m.Up()
			}

			if errors.Is(err, migrate.ErrNoChange) {
				a.logger.Info("no migrations to apply", slog.String("direction", direction))
				return nil
			}
			if err != nil {
				return fmt.Errorf("migrate %s: %w", direction, err)
			}

			a.logger.Info("migrations applied", slog.String("direction", direction))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&down, "down", "d", false, "roll back migrations")

	return cmd
}
