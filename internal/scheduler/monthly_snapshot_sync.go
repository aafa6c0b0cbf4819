package scheduler

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/strategy-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/strategy-dashboard-api/internal/config"
	"github.com/vfg2006/strategy-dashboard-api/internal/domain"
	"github.com/vfg2006/strategy-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/strategy-dashboard-api/pkg/utils"
)

// Job é um agendador que pode ser disparado manualmente pela API
type Job interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// MonthlySnapshotSyncConfig representa a configuração do fechamento mensal
type MonthlySnapshotSyncConfig struct {
	CronSchedule      string
	MaxConcurrentJobs int
	SyncEnabled       bool
	MonthLookBack     int
}

// MonthlySnapshotSyncService consolida os KPIs do mês de cada usuário ativo
type MonthlySnapshotSyncService struct {
	scheduler           *gocron.Scheduler
	config              MonthlySnapshotSyncConfig
	userRepo            repository.UserRepository
	reporter            reporting.Reporter
	now                 func() time.Time
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncSaved       int
	lastSyncFailed      int
}

func NewMonthlySnapshotSyncService(
	userRepo repository.UserRepository,
	reporter reporting.Reporter,
	appConfig *config.Config,
) *MonthlySnapshotSyncService {
	syncConfig := MonthlySnapshotSyncConfig{
		CronSchedule:      appConfig.MonthlySnapshotSync.CronSchedule,
		MaxConcurrentJobs: appConfig.MonthlySnapshotSync.MaxConcurrentJobs,
		SyncEnabled:       appConfig.MonthlySnapshotSync.Enabled,
		MonthLookBack:     appConfig.MonthlySnapshotSync.MonthLookBack,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       syncConfig.CronSchedule,
		"max_concurrent_jobs": syncConfig.MaxConcurrentJobs,
		"sync_enabled":        syncConfig.SyncEnabled,
		"month_lookback":      syncConfig.MonthLookBack,
	}).Info("Configuração do fechamento mensal de KPIs carregada")

	return &MonthlySnapshotSyncService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    syncConfig,
		userRepo:  userRepo,
		reporter:  reporter,
		now:       time.Now,
	}
}

// Start inicia o agendador
func (s *MonthlySnapshotSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Fechamento mensal de KPIs desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador do fechamento mensal de KPIs")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncMonthlySnapshots(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar fechamento mensal de KPIs: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador do fechamento mensal de KPIs")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *MonthlySnapshotSyncService) begin() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	return true
}

// syncMonthlySnapshots fecha os últimos MonthLookBack meses para todos os usuários ativos
func (s *MonthlySnapshotSyncService) syncMonthlySnapshots(ctx context.Context) {
	if !s.begin() {
		logrus.Info("Fechamento mensal de KPIs já em andamento, ignorando")
		return
	}
	s.run(ctx)
}

func (s *MonthlySnapshotSyncService) run(ctx context.Context) {
	startTime := s.now()
	var saved, failed int

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = s.now()
		s.lastSyncSaved = saved
		s.lastSyncFailed = failed
		s.syncMutex.Unlock()
	}()

	users, err := s.userRepo.ListActiveUsers(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar usuários para o fechamento mensal de KPIs")
		return
	}

	if len(users) == 0 {
		logrus.Info("Nenhum usuário ativo para o fechamento mensal de KPIs")
		return
	}

	for _, reference := range s.referenceMonths() {
		logrus.WithField("period", utils.Period(reference)).Info("Período do fechamento mensal de KPIs")

		ok, ko := s.processMonth(ctx, users, reference)
		saved += ok
		failed += ko
	}

	logrus.WithFields(logrus.Fields{
		"duration": time.Since(startTime).String(),
		"users":    len(users),
		"saved":    saved,
		"failed":   failed,
	}).Info("Fechamento mensal de KPIs concluído")
}

// referenceMonths devolve o primeiro dia de cada mês já encerrado, do mais antigo ao mais recente
func (s *MonthlySnapshotSyncService) referenceMonths() []time.Time {
	lookBack := s.config.MonthLookBack
	if lookBack <= 0 {
		lookBack = 1
	}

	now := s.now()
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	months := make([]time.Time, 0, lookBack)
	for i := lookBack; i >= 1; i-- {
		months = append(months, firstOfMonth.AddDate(0, -i, 0))
	}
	return months
}

func (s *MonthlySnapshotSyncService) processMonth(ctx context.Context, users []*domain.User, reference time.Time) (int, int) {
	maxJobs := s.config.MaxConcurrentJobs
	if maxJobs <= 0 {
		maxJobs = 1
	}

	semaphore := make(chan struct{}, maxJobs)
	var wg sync.WaitGroup
	var saved, failed atomic.Int64

	for _, user := range users {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(u *domain.User) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			snapshot, err := s.reporter.CloseMonth(ctx, u.ID, reference)
			if err != nil {
				failed.Add(1)
				logrus.WithError(err).WithFields(logrus.Fields{
					"user_id": u.ID,
					"period":  utils.Period(reference),
				}).Error("Erro ao fechar KPIs do mês")
				return
			}

			saved.Add(1)
			logrus.WithFields(logrus.Fields{
				"user_id": u.ID,
				"period":  snapshot.Period,
				"entries": snapshot.Entries,
			}).Debug("KPIs do mês salvos")
		}(user)
	}

	wg.Wait()
	return int(saved.Load()), int(failed.Load())
}

// TriggerManualSync dispara o fechamento em background. Retorna false
// quando já existe uma execução em andamento.
func (s *MonthlySnapshotSyncService) TriggerManualSync() bool {
	if !s.begin() {
		logrus.Info("Fechamento mensal de KPIs já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando fechamento manual dos KPIs mensais")
	go s.run(context.Background())
	return true
}

// GetStatus retorna o status atual do fechamento
func (s *MonthlySnapshotSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"month_lookback":         s.config.MonthLookBack,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_saved":        s.lastSyncSaved,
		"last_sync_failed":       s.lastSyncFailed,
	}
}
