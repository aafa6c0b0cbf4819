package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/strategy-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/strategy-dashboard-api/internal/domain"
)

const (
	strategyConfigsTable = "strategy_configs"
)

type StrategyConfigRepository interface {
	GetByUserID(ctx context.Context, userID int) (*domain.StrategyConfig, error)
	Upsert(ctx context.Context, cfg *domain.StrategyConfig) (*domain.StrategyConfig, error)
}

type strategyConfigRepository struct {
	conn postgres.Queryer
}

func NewStrategyConfigRepository(conn postgres.Queryer) StrategyConfigRepository {
	return &strategyConfigRepository{
		conn: conn,
	}
}

// GetByUserID devolve nil, nil quando o usuário ainda não tem plano salvo
func (r *strategyConfigRepository) GetByUserID(ctx context.Context, userID int) (*domain.StrategyConfig, error) {
	query, args, err := squirrel.
		Select("user_id", "unit_price", "conversion_rate", "visit_rate", "gross_margin",
			"annual_target", "seasonal_distribution", "created_at", "updated_at").
		From(strategyConfigsTable).
		Where(squirrel.Eq{"user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var (
		cfg          domain.StrategyConfig
		distribution []byte
	)

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&cfg.UserID,
		&cfg.UnitPrice,
		&cfg.ConversionRate,
		&cfg.VisitRate,
		&cfg.GrossMargin,
		&cfg.AnnualTarget,
		&distribution,
		&cfg.CreatedAt,
		&cfg.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar configuração do usuário %d: %w", userID, err)
	}

	if len(distribution) > 0 {
		if err := json.Unmarshal(distribution, &cfg.SeasonalDistribution); err != nil {
			return nil, fmt.Errorf("erro ao deserializar distribuição sazonal: %w", err)
		}
	}

	return &cfg, nil
}

func (r *strategyConfigRepository) Upsert(ctx context.Context, cfg *domain.StrategyConfig) (*domain.StrategyConfig, error) {
	distribution, err := json.Marshal(cfg.SeasonalDistribution)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar distribuição sazonal: %w", err)
	}

	query, args, err := squirrel.
		Insert(strategyConfigsTable).
		Columns("user_id", "unit_price", "conversion_rate", "visit_rate", "gross_margin",
			"annual_target", "seasonal_distribution").
		Values(cfg.UserID, cfg.UnitPrice, cfg.ConversionRate, cfg.VisitRate, cfg.GrossMargin,
			cfg.AnnualTarget, distribution).
		Suffix(`
			ON CONFLICT (user_id) DO UPDATE SET
				unit_price = EXCLUDED.unit_price,
				conversion_rate = EXCLUDED.conversion_rate,
				visit_rate = EXCLUDED.visit_rate,
				gross_margin = EXCLUDED.gross_margin,
				annual_target = EXCLUDED.annual_target,
				seasonal_distribution = EXCLUDED.seasonal_distribution,
				updated_at = NOW()
			RETURNING unit_price, conversion_rate, visit_rate, gross_margin, annual_target, created_at, updated_at
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	// As colunas NUMERIC guardam duas casas; a resposta reflete o que foi gravado
	stored := cfg.Clone()
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&stored.UnitPrice,
		&stored.ConversionRate,
		&stored.VisitRate,
		&stored.GrossMargin,
		&stored.AnnualTarget,
		&stored.CreatedAt,
		&stored.UpdatedAt,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return nil, fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return nil, fmt.Errorf("erro ao salvar configuração do usuário %d: %w", cfg.UserID, err)
	}

	return stored, nil
}
