package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDSN(t *testing.T) {
	dsn := BuildDSN(Database{
		Driver:   "postgres",
		User:     "app",
		Password: "segredo",
		URL:      "db:5432/strategy?sslmode=disable",
	})

	assert.Equal(t, "postgres://app:segredo@db:5432/strategy?sslmode=disable", dsn)
}

func TestNewConfig_FromEnv(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,https://painel.empresa.com")
	t.Setenv("TOKEN_TTL", "2h")
	t.Setenv("MONTHLY_SNAPSHOT_SYNC_MAX_CONCURRENT_JOBS", "0")
	t.Setenv("MONTHLY_SNAPSHOT_SYNC_MONTH_LOOKBACK", "3")
	t.Setenv("STRATEGY_DEFAULTS_FILE", "configs/strategy_defaults.yml")
	t.Setenv("DATABASE_MAX_OPEN_CONNS", "4")
	t.Setenv("DATABASE_MAX_IDLE_CONNS", "8")
	t.Setenv("DATABASE_CONN_MAX_LIFETIME", "5m")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, []string{"http://localhost:3000", "https://painel.empresa.com"}, cfg.Cors.AllowedOrigins)
	assert.Equal(t, 2*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 1, cfg.MonthlySnapshotSync.MaxConcurrentJobs)
	assert.Equal(t, 3, cfg.MonthlySnapshotSync.MonthLookBack)
	assert.Equal(t, "configs/strategy_defaults.yml", cfg.Strategy.DefaultsFile)
	assert.Contains(t, cfg.Database.DSN, "postgres://")
	assert.Equal(t, 4, cfg.Database.MaxOpenConns)
	assert.Equal(t, 4, cfg.Database.MaxIdleConns)
	assert.Equal(t, 5*time.Minute, cfg.Database.ConnMaxLifetime)
}
