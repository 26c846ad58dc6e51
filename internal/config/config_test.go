package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"dealswapify/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "testing")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("LOOKUP_TIMEOUT", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.False(t, cfg.Database.IsSQLite())
	assert.Equal(t, 2*time.Second, cfg.Matcher.LookupTimeout)
	assert.Equal(t, 5, cfg.Matcher.BreakerFailureThreshold)
	assert.NotEmpty(t, cfg.JWT.Secret)
	assert.True(t, cfg.IsTesting())
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowOrigins)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_ISSUER", "https://id.dealswapify.app")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("LOOKUP_TIMEOUT", "750ms")
	t.Setenv("AUTO_MIGRATE", "true")
	t.Setenv("RATE_LIMIT_PER_SECOND", "not-a-number")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "s3cret", cfg.JWT.Secret)
	assert.Equal(t, "https://id.dealswapify.app", cfg.JWT.Issuer)
	assert.True(t, cfg.Database.IsSQLite())
	assert.True(t, cfg.Database.AutoMigrate)
	assert.Equal(t, 750*time.Millisecond, cfg.Matcher.LookupTimeout)
	assert.Equal(t, 10, cfg.Security.RateLimitPerSecond)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSAllowOrigins)
}

func TestLoad_ProductionRequiresSecret(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.ErrorIs(t, err, ErrJWTSecretRequired)
}

func TestDatabaseConfig_ConnectionStrings(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db",
		Port:     "5433",
		User:     "u",
		Password: "p",
		Name:     "market",
		SSLMode:  "require",
	}

	assert.Equal(t, "host=db port=5433 user=u password=p dbname=market sslmode=require", cfg.DSN())
	assert.Equal(t, "postgres://u:p@db:5433/market?sslmode=require", cfg.URL())
}

func TestLoadCategoryKeywords_DefaultTable(t *testing.T) {
	table, err := LoadCategoryKeywords("")
	require.NoError(t, err)

	assert.Equal(t, 9, table.Len())
	assert.True(t, table.Has(models.CategoryOthers))
}

func TestLoadCategoryKeywords_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keywords.yaml")
	content := `categories:
  - name: Garden
    keywords: [Shovel, " rake "]
  - name: Electronics
    keywords: [phone]
  - name: Others
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	table, err := LoadCategoryKeywords(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Garden", "Electronics", "Others"}, table.Names())
	assert.Equal(t, []string{"shovel", "rake"}, table.Keywords("Garden"))
}

func TestLoadCategoryKeywords_Errors(t *testing.T) {
	_, err := LoadCategoryKeywords(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = ParseCategoryKeywords([]byte("categories: [::"))
	assert.Error(t, err)

	_, err = ParseCategoryKeywords([]byte("categories: []"))
	assert.ErrorIs(t, err, models.ErrEmptyKeywordTable)

	_, err = ParseCategoryKeywords([]byte("categories:\n  - name: Books\n  - name: Books\n"))
	assert.ErrorIs(t, err, models.ErrDuplicateKeywordEntry)

	_, err = ParseCategoryKeywords([]byte("categories:\n  - name: Books\n    keywords: [book]\n  - name: Others\n    keywords: [stuff]\n"))
	assert.ErrorIs(t, err, models.ErrReservedCategoryKeywords)
}

func TestShippedKeywordFileMatchesDefaults(t *testing.T) {
	table, err := LoadCategoryKeywords(filepath.Join("..", "..", "config", "categories.yaml"))
	require.NoError(t, err)

	defaults := models.DefaultCategoryKeywordTable()
	require.Equal(t, defaults.Names(), table.Names())
	for _, name := range defaults.Names() {
		assert.ElementsMatch(t, defaults.Keywords(name), table.Keywords(name), name)
	}
}
