package main

import (
	"context"
	"database/sql"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/strategy-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/strategy-dashboard-api/internal/config"
	"github.com/vfg2006/strategy-dashboard-api/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

var schema = []struct {
	name string
	ddl  string
}{
	{"roles", `
		CREATE TABLE IF NOT EXISTS roles (
			id   INTEGER PRIMARY KEY,
			name VARCHAR(32) NOT NULL UNIQUE
		)`},
	{"users", `
		CREATE TABLE IF NOT EXISTS users (
			id            SERIAL PRIMARY KEY,
			username      VARCHAR(32) NOT NULL UNIQUE,
			name          VARCHAR(120) NOT NULL,
			email         VARCHAR(255) NOT NULL UNIQUE,
			password_hash VARCHAR(255) NOT NULL,
			active        BOOLEAN NOT NULL DEFAULT TRUE,
			role_id       INTEGER NOT NULL REFERENCES roles (id),
			deleted       BOOLEAN NOT NULL DEFAULT FALSE,
			deleted_at    TIMESTAMPTZ,
			created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`},
	{"strategy_configs", `
		CREATE TABLE IF NOT EXISTS strategy_configs (
			user_id               INTEGER PRIMARY KEY REFERENCES users (id),
			unit_price            NUMERIC(14, 2) NOT NULL,
			conversion_rate       NUMERIC(6, 2) NOT NULL,
			visit_rate            NUMERIC(6, 2) NOT NULL,
			gross_margin          NUMERIC(6, 2) NOT NULL,
			annual_target         NUMERIC(16, 2) NOT NULL,
			seasonal_distribution JSONB NOT NULL,
			created_at            TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at            TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`},
	{"weekly_entries", `
		CREATE TABLE IF NOT EXISTS weekly_entries (
			id           VARCHAR(16) PRIMARY KEY,
			user_id      INTEGER NOT NULL REFERENCES users (id),
			week         INTEGER NOT NULL CHECK (week BETWEEN 1 AND 53),
			measurements INTEGER NOT NULL CHECK (measurements >= 0),
			visits       INTEGER NOT NULL CHECK (visits >= 0),
			signings     INTEGER NOT NULL CHECK (signings >= 0),
			output_value NUMERIC(16, 2) NOT NULL CHECK (output_value >= 0),
			gross_profit NUMERIC(16, 2) NOT NULL,
			created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`},
	{"weekly_entries_user_idx", `
		CREATE INDEX IF NOT EXISTS weekly_entries_user_created_idx
			ON weekly_entries (user_id, created_at DESC)`},
	{"monthly_kpi_snapshots", `
		CREATE TABLE IF NOT EXISTS monthly_kpi_snapshots (
			id         BIGSERIAL PRIMARY KEY,
			user_id    INTEGER NOT NULL REFERENCES users (id),
			period     VARCHAR(7) NOT NULL,
			entries    INTEGER NOT NULL DEFAULT 0,
			metrics    JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			CONSTRAINT monthly_kpi_snapshots_user_period_unique UNIQUE (user_id, period)
		)`},
}

var roles = map[int]string{
	domain.RoleAdmin:      "admin",
	domain.RoleSupervisor: "supervisor",
	domain.RoleSeller:     "seller",
}

func createTables(ctx context.Context, tx *sql.Tx) error {
	for _, step := range schema {
		startTime := time.Now()
		if _, err := tx.ExecContext(ctx, step.ddl); err != nil {
			logrus.WithError(err).WithField("step", step.name).Error("ERRO ao aplicar schema")
			return err
		}
		logrus.WithFields(logrus.Fields{
			"step":     step.name,
			"duration": time.Since(startTime).String(),
		}).Info("Schema aplicado")
	}
	return nil
}

func seedRoles(ctx context.Context, tx *sql.Tx) error {
	for id, name := range roles {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO roles (id, name) VALUES ($1, $2) ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name`,
			id, name)
		if err != nil {
			return err
		}
	}
	logrus.Infof("%d roles garantidos", len(roles))
	return nil
}

// seedAdmin cria o primeiro administrador a partir de ADMIN_USERNAME,
// ADMIN_EMAIL e ADMIN_PASSWORD. Se o email já existe, nada é alterado.
func seedAdmin(ctx context.Context, tx *sql.Tx) error {
	username := os.Getenv("ADMIN_USERNAME")
	email := strings.ToLower(strings.TrimSpace(os.Getenv("ADMIN_EMAIL")))
	password := os.Getenv("ADMIN_PASSWORD")

	if username == "" || email == "" || password == "" {
		logrus.Warn("ADMIN_USERNAME, ADMIN_EMAIL ou ADMIN_PASSWORD ausentes, administrador não criado")
		return nil
	}

	var exists bool
	if err := tx.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists); err != nil {
		return err
	}
	if exists {
		logrus.WithField("email", email).Info("Administrador já existe")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO users (username, name, email, password_hash, active, role_id) VALUES ($1, $2, $3, $4, TRUE, $5)`,
		username, username, email, string(hash), domain.RoleAdmin)
	if err != nil {
		return err
	}

	logrus.WithField("email", email).Info("Administrador criado com sucesso")
	return nil
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: time.RFC3339})
	logrus.Info("Iniciando script de migração...")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao carregar configuração")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao conectar ao banco de dados")
	}
	defer conn.Close()
	logrus.Info("Conexão com o banco de dados estabelecida com sucesso")

	startTime := time.Now()

	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, step := range []func(context.Context, *sql.Tx) error{createTables, seedRoles, seedAdmin} {
			if err := step(ctx, tx); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		logrus.WithError(err).Fatal("Migração abortada, transação revertida")
	}

	logrus.Infof("Migração concluída em %v!", time.Since(startTime))
}
