package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dealswapify/internal/config"
	"dealswapify/internal/logging"
	"dealswapify/internal/models"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DB struct {
	*gorm.DB
	config *config.DatabaseConfig
}

func New(cfg *config.DatabaseConfig) (*DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	dialector := postgres.Open(cfg.DSN())
	if cfg.IsSQLite() {
		dialector = sqlite.Open(cfg.SQLitePath)
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxConnections)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{
		DB:     db,
		config: cfg,
	}, nil
}

func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(
		&models.Category{},
		&models.Listing{},
		&models.Donation{},
		&models.Payment{},
	)
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (db *DB) HealthCheck(ctx context.Context) error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (db *DB) CreateIndexes(log *logging.Logger) error {
	queries := []string{
		"CREATE INDEX IF NOT EXISTS idx_categories_visit_count ON categories(visit_count)",
		"CREATE INDEX IF NOT EXISTS idx_listings_category_id ON listings(category_id)",
		"CREATE INDEX IF NOT EXISTS idx_listings_seller_id ON listings(seller_id)",
		"CREATE INDEX IF NOT EXISTS idx_listings_listing_type ON listings(listing_type)",
		"CREATE INDEX IF NOT EXISTS idx_listings_status ON listings(status)",
		"CREATE INDEX IF NOT EXISTS idx_listings_created_at ON listings(created_at)",
		"CREATE INDEX IF NOT EXISTS idx_listings_category_type_status ON listings(category_id, listing_type, status)",
		"CREATE INDEX IF NOT EXISTS idx_payments_seller_id ON payments(seller_id)",
	}

	for _, query := range queries {
		if err := db.DB.Exec(query).Error; err != nil {
			log.Warn(context.Background(), "failed to create index", zap.String("query", query), zap.Error(err))
		}
	}

	return nil
}

// SeedCategories inserts the named categories that do not exist yet.
// Used by sqlite deployments, which skip the SQL seed files.
func (db *DB) SeedCategories(names []string) error {
	for _, name := range names {
		var existing models.Category
		err := db.DB.Where("name = ?", name).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to look up category %q: %w", name, err)
		}
		if err := db.DB.Create(&models.Category{Name: name}).Error; err != nil {
			return fmt.Errorf("failed to seed category %q: %w", name, err)
		}
	}
	return nil
}

// Initialize creates and configures the database connection
func Initialize(cfg *config.Config, log *logging.Logger) (*DB, error) {
	db, err := New(&cfg.Database)
	if err != nil {
		return nil, err
	}

	return setup(db, cfg, log)
}

// setup prepares an open database. The connection pool is closed when any
// step fails.
func setup(db *DB, cfg *config.Config, log *logging.Logger) (*DB, error) {
	if err := db.prepare(cfg, log); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			log.Warn(context.Background(), "failed to close database after setup error", zap.Error(closeErr))
		}
		return nil, err
	}

	log.Info(context.Background(), "database initialized", zap.String("driver", cfg.Database.Driver))

	return db, nil
}

// prepare brings the schema up to date and seeds sqlite deployments
func (db *DB) prepare(cfg *config.Config, log *logging.Logger) error {
	ctx := context.Background()

	if cfg.Database.IsSQLite() {
		if err := db.AutoMigrate(); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		if cfg.Database.SeedDatabase {
			keywords, err := config.LoadCategoryKeywords(cfg.Matcher.KeywordsFile)
			if err != nil {
				return err
			}
			if err := db.SeedCategories(keywords.Names()); err != nil {
				return err
			}
		}
	} else {
		sqlDB, err := db.DB.DB()
		if err != nil {
			return fmt.Errorf("failed to get sql.DB: %w", err)
		}

		runner := NewMigrationRunner(sqlDB, &cfg.Database, log)
		if err := runner.RunIfEnabled(); err != nil {
			log.Warn(ctx, "migration runner failed, falling back to GORM AutoMigrate", zap.Error(err))
			if err := db.AutoMigrate(); err != nil {
				return fmt.Errorf("failed to run migrations: %w", err)
			}
		}
	}

	if err := db.CreateIndexes(log); err != nil {
		log.Warn(ctx, "failed to create some indexes", zap.Error(err))
	}

	return nil
}
