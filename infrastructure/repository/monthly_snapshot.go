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
	monthlySnapshotsTable = "monthly_kpi_snapshots"
)

type MonthlySnapshotRepository interface {
	SaveOrUpdate(ctx context.Context, snapshot *domain.MonthlyKPISnapshot) error
	GetByUserAndPeriod(ctx context.Context, userID int, period string) (*domain.MonthlyKPISnapshot, error)
	ListPeriods(ctx context.Context, userID int) ([]string, error)
	ListByPeriods(ctx context.Context, userID int, periods []string) ([]*domain.MonthlyKPISnapshot, error)
}

type monthlySnapshotRepository struct {
	conn postgres.Queryer
}

func NewMonthlySnapshotRepository(conn postgres.Queryer) MonthlySnapshotRepository {
	return &monthlySnapshotRepository{
		conn: conn,
	}
}

// snapshotPayload é o conteúdo armazenado na coluna JSONB metrics
type snapshotPayload struct {
	Totals domain.Totals        `json:"totals"`
	KPIs   domain.KPIs          `json:"kpis"`
	Rollup domain.MonthlyRollup `json:"rollup"`
}

func (r *monthlySnapshotRepository) SaveOrUpdate(ctx context.Context, snapshot *domain.MonthlyKPISnapshot) error {
	metrics, err := json.Marshal(snapshotPayload{
		Totals: snapshot.Totals,
		KPIs:   snapshot.KPIs,
		Rollup: snapshot.Rollup,
	})
	if err != nil {
		return fmt.Errorf("erro ao serializar métricas para JSON: %w", err)
	}

	query, args, err := squirrel.StatementBuilder.
		Insert(monthlySnapshotsTable).
		Columns("user_id", "period", "entries", "metrics").
		Values(snapshot.UserID, snapshot.Period, snapshot.Entries, metrics).
		Suffix(`
			ON CONFLICT (user_id, period) DO UPDATE SET
				entries = EXCLUDED.entries,
				metrics = EXCLUDED.metrics,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err = r.conn.ExecContext(ctx, query, args...); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

// GetByUserAndPeriod devolve nil, nil quando o mês ainda não foi fechado
func (r *monthlySnapshotRepository) GetByUserAndPeriod(ctx context.Context, userID int, period string) (*domain.MonthlyKPISnapshot, error) {
	query, args, err := squirrel.
		Select("id", "user_id", "period", "entries", "metrics", "created_at", "updated_at").
		From(monthlySnapshotsTable).
		Where(squirrel.Eq{"user_id": userID, "period": period}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	snapshot, err := scanSnapshot(r.conn.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear fechamento mensal: %w", err)
	}

	return snapshot, nil
}

// ListByPeriods busca vários fechamentos de uma vez, ordenados por período
func (r *monthlySnapshotRepository) ListByPeriods(ctx context.Context, userID int, periods []string) ([]*domain.MonthlyKPISnapshot, error) {
	if len(periods) == 0 {
		return []*domain.MonthlyKPISnapshot{}, nil
	}

	query, args, err := squirrel.
		Select("id", "user_id", "period", "entries", "metrics", "created_at", "updated_at").
		From(monthlySnapshotsTable).
		Where(squirrel.Eq{"user_id": userID}).
		Where("period = ANY(?)", pq.Array(periods)).
		OrderBy("to_date(period, 'MM-YYYY') ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	snapshots := make([]*domain.MonthlyKPISnapshot, 0)
	for rows.Next() {
		snapshot, err := scanSnapshot(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear fechamento mensal: %w", err)
		}
		snapshots = append(snapshots, snapshot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return snapshots, nil
}

// ListPeriods devolve os períodos fechados do usuário, do mais recente para o mais antigo
func (r *monthlySnapshotRepository) ListPeriods(ctx context.Context, userID int) ([]string, error) {
	query, args, err := squirrel.
		Select("period").
		From(monthlySnapshotsTable).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("to_date(period, 'MM-YYYY') DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	periods := make([]string, 0)
	for rows.Next() {
		var period string
		if err := rows.Scan(&period); err != nil {
			return nil, fmt.Errorf("erro ao escanear período: %w", err)
		}
		periods = append(periods, period)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return periods, nil
}

func scanSnapshot(row rowScanner) (*domain.MonthlyKPISnapshot, error) {
	var (
		snapshot domain.MonthlyKPISnapshot
		metrics  []byte
	)

	err := row.Scan(
		&snapshot.ID,
		&snapshot.UserID,
		&snapshot.Period,
		&snapshot.Entries,
		&metrics,
		&snapshot.CreatedAt,
		&snapshot.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(metrics) > 0 {
		var payload snapshotPayload
		if err := json.Unmarshal(metrics, &payload); err != nil {
			return nil, fmt.Errorf("erro ao deserializar métricas: %w", err)
		}
		snapshot.Totals = payload.Totals
		snapshot.KPIs = payload.KPIs
		snapshot.Rollup = payload.Rollup
	}

	return &snapshot, nil
}
