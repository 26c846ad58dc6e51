package database

import (
	"context"
	"path/filepath"
	"testing"

	"dealswapify/internal/config"
	"dealswapify/internal/logging"
	"dealswapify/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAutoMigrate_CreatesTables(t *testing.T) {
	db := SetupTestDB(t)

	assert.True(t, db.Migrator().HasTable(&models.Category{}))
	assert.True(t, db.Migrator().HasTable(&models.Listing{}))
	assert.True(t, db.Migrator().HasTable(&models.Donation{}))
	assert.True(t, db.Migrator().HasTable(&models.Payment{}))
	assert.NoError(t, db.HealthCheck(context.Background()))
}

func TestSeedCategories_IsIdempotent(t *testing.T) {
	db := SetupTestDB(t)
	CreateTestCategory(t, db, "Books")

	names := models.DefaultCategoryKeywordTable().Names()
	require.NoError(t, db.SeedCategories(names))
	require.NoError(t, db.SeedCategories(names))

	var count int64
	require.NoError(t, db.Model(&models.Category{}).Count(&count).Error)
	assert.Equal(t, int64(len(names)), count)
}

func TestCleanupTestDB(t *testing.T) {
	db := SetupTestDB(t)
	CreateTestCategory(t, db, "Tools")

	CleanupTestDB(t, db)

	var count int64
	require.NoError(t, db.Model(&models.Category{}).Count(&count).Error)
	assert.Zero(t, count)
}

func sqliteConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Database: config.DatabaseConfig{
			Driver:         "sqlite",
			SQLitePath:     filepath.Join(t.TempDir(), "dealswapify.db"),
			MaxConnections: 1,
			MaxIdleConns:   1,
			SeedDatabase:   true,
		},
	}
}

func TestInitialize_SQLiteSeedsDefaultCategories(t *testing.T) {
	log := logging.NewTestLogger()

	db, err := Initialize(sqliteConfig(t), log.Logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var count int64
	require.NoError(t, db.Model(&models.Category{}).Count(&count).Error)
	assert.Equal(t, int64(models.DefaultCategoryKeywordTable().Len()), count)
}

func TestSetup_ClosesPoolOnFailure(t *testing.T) {
	db := SetupTestDB(t)
	cfg := sqliteConfig(t)
	cfg.Matcher.KeywordsFile = filepath.Join(t.TempDir(), "missing.yaml")

	got, err := setup(db, cfg, logging.NewTestLogger().Logger)

	require.Error(t, err)
	assert.Nil(t, got)
	assert.Error(t, db.HealthCheck(context.Background()), "pool should be closed after a failed setup")
}
