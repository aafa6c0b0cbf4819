package main

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/strategy-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/strategy-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/strategy-dashboard-api/infrastructure/session"
	"github.com/vfg2006/strategy-dashboard-api/internal/api"
	"github.com/vfg2006/strategy-dashboard-api/internal/api/handler"
	"github.com/vfg2006/strategy-dashboard-api/internal/config"
	"github.com/vfg2006/strategy-dashboard-api/internal/scheduler"
	"github.com/vfg2006/strategy-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/strategy-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/strategy-dashboard-api/internal/usecases/strategizing"
	"github.com/vfg2006/strategy-dashboard-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// O plano padrão é validado antes de qualquer conexão
	defaults, err := strategizing.LoadDefaults(cfg.Strategy.DefaultsFile)
	if err != nil {
		logrus.WithError(err).WithField("file", cfg.Strategy.DefaultsFile).Fatal("Plano estratégico padrão inválido")
	}

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	redisClient := redisconn(ctx, cfg.Redis)
	defer redisClient.Close()

	userRepo := repository.NewUserRepository(pgConn)
	strategyRepo := repository.NewStrategyConfigRepository(pgConn)
	weeklyEntryRepo := repository.NewWeeklyEntryRepository(pgConn)
	snapshotRepo := repository.NewMonthlySnapshotRepository(pgConn)

	revocations := session.NewRevocationStore(redisClient)
	authenticator := authenticating.NewService(userRepo, revocations, cfg)

	configStore := strategizing.NewService(strategyRepo, defaults)
	reporter := reporting.NewService(weeklyEntryRepo, snapshotRepo, configStore)

	monthlySnapshotSyncService := scheduler.NewMonthlySnapshotSyncService(userRepo, reporter, cfg)

	if err := monthlySnapshotSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do fechamento mensal de KPIs")
	} else {
		logrus.Info("Agendador do fechamento mensal de KPIs iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		DB:            pgConn,
		Authenticator: authenticator,
		ConfigStore:   configStore,
		Reporter:      reporter,
		CronJobs: handler.CronJobServices{
			handler.CronJobTypeMonthlySnapshots: monthlySnapshotSyncService,
		},
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}

// redisconn cria o cliente do Redis usado na revogação de tokens
func redisconn(ctx context.Context, redisConfig config.Redis) *redis.Client {
	client, err := session.NewClient(ctx, redisConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao Redis")
	}

	logrus.Info("Conexão com Redis estabelecida com sucesso")
	return client
}
