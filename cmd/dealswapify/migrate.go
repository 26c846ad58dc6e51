package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"dealswapify/internal/database"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage postgres schema migrations",
	Long: `Apply, roll back or inspect the SQL migrations under MIGRATIONS_PATH.

Examples:
  # Apply pending migrations and load seed data
  dealswapify migrate up

  # Revert the last migration
  dealswapify migrate down

  # Show the current schema version
  dealswapify migrate status`,
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply pending migrations and seed data",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrationRunner(func(runner *database.MigrationRunner) error {
			return runner.Run()
		})
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Revert the most recent migration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrationRunner(func(runner *database.MigrationRunner) error {
			return runner.RollbackMigration()
		})
	},
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print the current schema version",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrationRunner(func(runner *database.MigrationRunner) error {
			version, dirty, err := runner.GetMigrationStatus()
			if errors.Is(err, migrate.ErrNilVersion) {
				fmt.Fprintln(cmd.OutOrStdout(), "no migrations applied")
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "version: %d\ndirty: %t\n", version, dirty)
			return nil
		})
	},
}

func init() {
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateDownCmd)
	migrateCmd.AddCommand(migrateStatusCmd)
}

// withMigrationRunner opens a plain database/sql connection, since
// golang-migrate drives postgres through lib/pq rather than gorm
func withMigrationRunner(fn func(runner *database.MigrationRunner) error) error {
	cfg, logger, err := bootstrap()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if cfg.Database.IsSQLite() {
		return errors.New("SQL migrations target postgres; sqlite schemas are created by the server on startup")
	}

	db, err := sql.Open("postgres", cfg.Database.URL())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn(context.Background(), "failed to close database", zap.Error(err))
		}
	}()

	return fn(database.NewMigrationRunner(db, &cfg.Database, logger))
}
