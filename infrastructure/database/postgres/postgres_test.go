package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/strategy-dashboard-api/internal/config"
)

func newMockConnection(t *testing.T) (*Connection, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return &Connection{DB: db}, mock
}

func TestConnection_RunInTransaction(t *testing.T) {
	errFn := errors.New("falha ao gravar lançamento")

	tests := []struct {
		name        string
		setup       func(mock sqlmock.Sqlmock)
		fn          func(tx *sql.Tx) error
		expectedErr error
		errContains string
	}{
		{
			name: "confirma quando fn termina sem erro",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE strategy_configs").WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
			fn: func(tx *sql.Tx) error {
				_, err := tx.Exec("UPDATE strategy_configs SET unit_price = 1")
				return err
			},
		},
		{
			name: "desfaz e devolve o erro de fn",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectRollback()
			},
			fn:          func(tx *sql.Tx) error { return errFn },
			expectedErr: errFn,
		},
		{
			name: "rollback com falha preserva o erro de fn",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectRollback().WillReturnError(errors.New("conexão perdida"))
			},
			fn:          func(tx *sql.Tx) error { return errFn },
			expectedErr: errFn,
			errContains: "conexão perdida",
		},
		{
			name: "falha ao iniciar",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin().WillReturnError(errors.New("pool esgotado"))
			},
			fn:          func(tx *sql.Tx) error { return nil },
			errContains: "erro ao iniciar transação",
		},
		{
			name: "falha ao confirmar",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectCommit().WillReturnError(errors.New("serialização"))
			},
			fn:          func(tx *sql.Tx) error { return nil },
			errContains: "erro ao confirmar transação",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, mock := newMockConnection(t)
			tt.setup(mock)

			err := conn.RunInTransaction(context.Background(), tt.fn)

			switch {
			case tt.expectedErr == nil && tt.errContains == "":
				assert.NoError(t, err)
			default:
				require.Error(t, err)
				if tt.expectedErr != nil {
					assert.True(t, errors.Is(err, tt.expectedErr))
				}
				if tt.errContains != "" {
					assert.Contains(t, err.Error(), tt.errContains)
				}
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestConnection_RunInTransactionPanic(t *testing.T) {
	conn, mock := newMockConnection(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.PanicsWithValue(t, "falhou", func() {
		_ = conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
			panic("falhou")
		})
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyPool(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	applyPool(db, config.Database{MaxOpenConns: 3, ConnMaxLifetime: time.Minute})

	assert.Equal(t, 3, db.Stats().MaxOpenConnections)
}
