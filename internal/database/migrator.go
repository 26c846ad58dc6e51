package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"dealswapify/internal/config"
	"dealswapify/internal/logging"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"go.uber.org/zap"
)

var (
	maxRetries    = 30
	retryInterval = 2 * time.Second
)

var ErrMigrationsDirNotFound = errors.New("migrations directory not found")

// MigrationRunner applies SQL migrations and seed files to a postgres database
type MigrationRunner struct {
	db             *sql.DB
	migrationsPath string
	seedsPath      string
	autoMigrate    bool
	seed           bool
	log            *logging.Logger
}

// NewMigrationRunner creates a new migration runner
func NewMigrationRunner(db *sql.DB, cfg *config.DatabaseConfig, log *logging.Logger) *MigrationRunner {
	return &MigrationRunner{
		db:             db,
		migrationsPath: cfg.MigrationsPath,
		seedsPath:      cfg.SeedsPath,
		autoMigrate:    cfg.AutoMigrate,
		seed:           cfg.SeedDatabase,
		log:            log.Named("migrator"),
	}
}

// WaitForDatabase waits for the database to be ready
func (mr *MigrationRunner) WaitForDatabase() error {
	ctx := context.Background()
	mr.log.Info(ctx, "waiting for database to be ready")

	for i := 0; i < maxRetries; i++ {
		err := mr.db.Ping()
		if err == nil {
			mr.log.Info(ctx, "database is ready")
			return nil
		}

		mr.log.Warn(ctx, "database not ready",
			zap.Int("attempt", i+1), zap.Int("max_attempts", maxRetries), zap.Error(err))
		time.Sleep(retryInterval)
	}

	return fmt.Errorf("database not ready after %d attempts", maxRetries)
}

func (mr *MigrationRunner) newMigrate() (*migrate.Migrate, error) {
	if _, err := os.Stat(mr.migrationsPath); os.IsNotExist(err) {
		return nil, ErrMigrationsDirNotFound
	}

	absPath, err := filepath.Abs(mr.migrationsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path for migrations: %w", err)
	}

	driver, err := postgres.WithInstance(mr.db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(fmt.Sprintf("file://%s", absPath), "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migration instance: %w", err)
	}
	return m, nil
}

// RunMigrations executes all pending migrations
func (mr *MigrationRunner) RunMigrations() error {
	ctx := context.Background()

	m, err := mr.newMigrate()
	if errors.Is(err, ErrMigrationsDirNotFound) {
		mr.log.Warn(ctx, "migrations directory not found, skipping migrations", zap.String("path", mr.migrationsPath))
		return nil
	}
	if err != nil {
		return err
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	if dirty {
		mr.log.Warn(ctx, "database is in dirty state, forcing version", zap.Uint("version", version))
		if err := m.Force(int(version)); err != nil {
			return fmt.Errorf("failed to force version: %w", err)
		}
	}

	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		mr.log.Info(ctx, "no new migrations to apply", zap.Uint("version", version))
		return nil
	}
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	newVersion, _, err := m.Version()
	if err != nil {
		return fmt.Errorf("failed to get new migration version: %w", err)
	}
	mr.log.Info(ctx, "applied migrations", zap.Uint("version", newVersion))
	return nil
}

// RollbackMigration reverts the most recently applied migration
func (mr *MigrationRunner) RollbackMigration() error {
	m, err := mr.newMigrate()
	if err != nil {
		return err
	}
	if err := m.Steps(-1); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("rollback failed: %w", err)
	}
	return nil
}

// LoadSeeds loads seed data into the database. A failing seed file is
// logged and skipped; an unreadable one aborts.
func (mr *MigrationRunner) LoadSeeds() error {
	ctx := context.Background()

	if !mr.seed {
		mr.log.Info(ctx, "seed data loading disabled")
		return nil
	}

	if _, err := os.Stat(mr.seedsPath); os.IsNotExist(err) {
		mr.log.Warn(ctx, "seeds directory not found, skipping seed data", zap.String("path", mr.seedsPath))
		return nil
	}

	files, err := filepath.Glob(filepath.Join(mr.seedsPath, "*.sql"))
	if err != nil {
		return fmt.Errorf("failed to find seed files: %w", err)
	}

	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read seed file %s: %w", file, err)
		}

		if _, err := mr.db.Exec(string(content)); err != nil {
			mr.log.Warn(ctx, "failed to execute seed file", zap.String("file", filepath.Base(file)), zap.Error(err))
			continue
		}

		mr.log.Info(ctx, "executed seed file", zap.String("file", filepath.Base(file)))
	}

	return nil
}

// GetMigrationStatus returns the current migration status
func (mr *MigrationRunner) GetMigrationStatus() (version uint, dirty bool, err error) {
	m, err := mr.newMigrate()
	if err != nil {
		return 0, false, err
	}
	return m.Version()
}

// Run waits for the database, applies migrations and loads seeds.
func (mr *MigrationRunner) Run() error {
	if err := mr.WaitForDatabase(); err != nil {
		return fmt.Errorf("database readiness check failed: %w", err)
	}

	if err := mr.RunMigrations(); err != nil {
		return fmt.Errorf("migration execution failed: %w", err)
	}

	if err := mr.LoadSeeds(); err != nil {
		mr.log.Warn(context.Background(), "seed data loading failed", zap.Error(err))
	}

	return nil
}

// RunIfEnabled runs migrations when AUTO_MIGRATE is enabled
func (mr *MigrationRunner) RunIfEnabled() error {
	if !mr.autoMigrate {
		mr.log.Info(context.Background(), "auto-migration disabled")
		return nil
	}
	return mr.Run()
}
