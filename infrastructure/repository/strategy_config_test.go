package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/strategy-dashboard-api/internal/domain"
)

func TestStrategyConfigRepository_UpsertReturnsStoredValues(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	cfg := domain.DefaultStrategyConfig()
	cfg.UserID = 7
	cfg.UnitPrice = 300000.005
	cfg.ConversionRate = 22.333

	now := time.Date(2025, 4, 10, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO strategy_configs")).
		WithArgs(7, 300000.005, 22.333, cfg.VisitRate, cfg.GrossMargin, cfg.AnnualTarget, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{
			"unit_price", "conversion_rate", "visit_rate", "gross_margin", "annual_target", "created_at", "updated_at",
		}).AddRow(300000.01, 22.33, 40.0, 35.0, 12000000.0, now, now))

	stored, err := NewStrategyConfigRepository(db).Upsert(context.Background(), cfg)
	require.NoError(t, err)

	assert.Equal(t, 300000.01, stored.UnitPrice)
	assert.Equal(t, 22.33, stored.ConversionRate)
	assert.Equal(t, now, stored.UpdatedAt)
	assert.Equal(t, cfg.SeasonalDistribution, stored.SeasonalDistribution)
	assert.Equal(t, 22.333, cfg.ConversionRate)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStrategyConfigRepository_GetByUserIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM strategy_configs")).
		WithArgs(9).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}))

	cfg, err := NewStrategyConfigRepository(db).GetByUserID(context.Background(), 9)
	require.NoError(t, err)
	assert.Nil(t, cfg)

	require.NoError(t, mock.ExpectationsWereMet())
}
