package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "feed-exporter", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 15*time.Second, cfg.HTTP.ReadTimeout)
	assert.False(t, cfg.Feed.Enabled)
	assert.Equal(t, 12, cfg.Feed.ExportDurationMonths)
	assert.Equal(t, "USD", cfg.Feed.Currency)
	assert.False(t, cfg.Feed.CompatOrderLookup)
	assert.Empty(t, cfg.Feed.OrderStatuses)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("FEED_DATABASE_HOST", "db.internal")
	t.Setenv("FEED_FEED_ENABLED", "true")
	t.Setenv("FEED_FEED_ACCESS_HASH", "s3cret")
	t.Setenv("FEED_FEED_CURRENCY", "EUR")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.True(t, cfg.Feed.Enabled)
	assert.Equal(t, "s3cret", cfg.Feed.AccessHash)
	assert.Equal(t, "EUR", cfg.Feed.Currency)
}

func TestLoad_EnabledWithoutHashFails(t *testing.T) {
	t.Setenv("FEED_FEED_ENABLED", "true")

	_, err := Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "access_hash")
}

func TestValidate_NegativeWindow(t *testing.T) {
	cfg := &Config{}
	cfg.Feed.ExportDurationMonths = -1

	assert.Error(t, cfg.Validate())
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "postgres",
		Password: "pw",
		DBName:   "store",
		SSLMode:  "disable",
	}

	assert.Equal(t, "host=localhost port=5432 user=postgres password=pw dbname=store sslmode=disable", cfg.DSN())
}
