package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/strategy-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/strategy-dashboard-api/internal/domain"
)

const (
	weeklyEntriesTable = "weekly_entries"
)

type WeeklyEntryRepository interface {
	Create(ctx context.Context, entry *domain.WeeklyEntry) error
	ListByUser(ctx context.Context, userID int) ([]*domain.WeeklyEntry, error)
}

type weeklyEntryRepository struct {
	conn postgres.Queryer
}

func NewWeeklyEntryRepository(conn postgres.Queryer) WeeklyEntryRepository {
	return &weeklyEntryRepository{
		conn: conn,
	}
}

func (r *weeklyEntryRepository) Create(ctx context.Context, entry *domain.WeeklyEntry) error {
	query, args, err := squirrel.
		Insert(weeklyEntriesTable).
		Columns("id", "user_id", "week", "measurements", "visits", "signings",
			"output_value", "gross_profit", "created_at").
		Values(entry.ID, entry.UserID, entry.Week, entry.Measurements, entry.Visits, entry.Signings,
			entry.OutputValue, entry.GrossProfit, entry.CreatedAt).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao inserir lançamento semanal: %w", err)
	}

	return nil
}

// ListByUser devolve os lançamentos do usuário do mais recente para o mais antigo
func (r *weeklyEntryRepository) ListByUser(ctx context.Context, userID int) ([]*domain.WeeklyEntry, error) {
	query, args, err := squirrel.
		Select("id", "user_id", "week", "measurements", "visits", "signings",
			"output_value", "gross_profit", "created_at").
		From(weeklyEntriesTable).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar lançamentos semanais: %w", err)
	}
	defer rows.Close()

	entries := make([]*domain.WeeklyEntry, 0)
	for rows.Next() {
		var entry domain.WeeklyEntry
		if err := rows.Scan(
			&entry.ID,
			&entry.UserID,
			&entry.Week,
			&entry.Measurements,
			&entry.Visits,
			&entry.Signings,
			&entry.OutputValue,
			&entry.GrossProfit,
			&entry.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear lançamento semanal: %w", err)
		}
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}
