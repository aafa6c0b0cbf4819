// Package reporting liga o motor de métricas ao armazenamento: grava os
// lançamentos semanais e monta o painel, a exportação e os fechamentos mensais.
package reporting

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/strategy-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/strategy-dashboard-api/internal/domain"
	"github.com/vfg2006/strategy-dashboard-api/internal/usecases/measuring"
	"github.com/vfg2006/strategy-dashboard-api/internal/usecases/planning"
	"github.com/vfg2006/strategy-dashboard-api/internal/usecases/strategizing"
	"github.com/vfg2006/strategy-dashboard-api/pkg/utils"
)

type Reporter interface {
	CreateWeeklyEntry(ctx context.Context, userID int, input *domain.WeeklyEntryInput) (*domain.WeeklyEntryView, error)
	ListWeeklyEntries(ctx context.Context, userID int) ([]*domain.WeeklyEntryView, error)
	GetTargets(ctx context.Context, userID int) (*domain.StrategicTargets, error)
	GetDashboard(ctx context.Context, userID, year int) (*domain.Dashboard, error)
	Export(ctx context.Context, userID, year int) (*domain.DashboardExport, error)
	GetMonthlyReport(ctx context.Context, userID int) ([]domain.MonthlyRollup, error)
	GetQuarterlyReport(ctx context.Context, userID, year int) ([]domain.QuarterlyRollup, error)
	CloseMonth(ctx context.Context, userID int, reference time.Time) (*domain.MonthlyKPISnapshot, error)
	GetSnapshot(ctx context.Context, userID int, period string) (*domain.MonthlyKPISnapshot, error)
	GetSnapshotHistory(ctx context.Context, userID, year int) ([]*domain.MonthlyKPISnapshot, error)
	ListSnapshotPeriods(ctx context.Context, userID int) (*domain.AvailablePeriods, error)
}

type Service struct {
	entryRepo    repository.WeeklyEntryRepository
	snapshotRepo repository.MonthlySnapshotRepository
	configStore  strategizing.ConfigStore
	now          func() time.Time
}

func NewService(
	entryRepo repository.WeeklyEntryRepository,
	snapshotRepo repository.MonthlySnapshotRepository,
	configStore strategizing.ConfigStore,
) Reporter {
	return &Service{
		entryRepo:    entryRepo,
		snapshotRepo: snapshotRepo,
		configStore:  configStore,
		now:          time.Now,
	}
}

func (s *Service) CreateWeeklyEntry(ctx context.Context, userID int, input *domain.WeeklyEntryInput) (*domain.WeeklyEntryView, error) {
	entry, err := validateEntry(input)
	if err != nil {
		return nil, err
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "falha ao gerar id do lançamento")
	}

	entry.ID = id
	entry.UserID = userID
	entry.CreatedAt = s.now().UTC()

	if err := s.entryRepo.Create(ctx, entry); err != nil {
		return nil, errors.Wrap(err, "falha ao salvar lançamento semanal")
	}

	logrus.WithFields(logrus.Fields{
		"user_id":  userID,
		"entry_id": entry.ID,
		"week":     entry.Week,
	}).Info("Lançamento semanal registrado")

	return &domain.WeeklyEntryView{WeeklyEntry: entry, Rates: measuring.Rates(entry)}, nil
}

func (s *Service) ListWeeklyEntries(ctx context.Context, userID int) ([]*domain.WeeklyEntryView, error) {
	entries, err := s.entries(ctx, userID)
	if err != nil {
		return nil, err
	}

	views := make([]*domain.WeeklyEntryView, 0, len(entries))
	for _, entry := range entries {
		views = append(views, &domain.WeeklyEntryView{WeeklyEntry: entry, Rates: measuring.Rates(entry)})
	}

	return views, nil
}

func (s *Service) GetTargets(ctx context.Context, userID int) (*domain.StrategicTargets, error) {
	effective, err := s.configStore.GetEffectiveConfig(ctx, userID)
	if err != nil {
		return nil, err
	}

	return planning.Plan(effective.Config)
}

// GetDashboard busca configuração e lançamentos uma única vez e deriva tudo a partir deles.
// Totais e KPIs usam todos os lançamentos; o detalhamento trimestral usa apenas o ano pedido.
func (s *Service) GetDashboard(ctx context.Context, userID, year int) (*domain.Dashboard, error) {
	if year <= 0 {
		year = s.now().UTC().Year()
	}

	effective, err := s.configStore.GetEffectiveConfig(ctx, userID)
	if err != nil {
		return nil, err
	}
	cfg := effective.Config

	entries, err := s.entries(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Um plano que não permite calcular o funil não derruba o restante do painel
	targets, err := planning.Plan(cfg)
	var targetsError []string
	if err != nil {
		var invalidCfg *planning.InvalidConfigurationError
		if !errors.As(err, &invalidCfg) {
			return nil, err
		}
		targetsError = invalidCfg.Fields
		logrus.WithFields(logrus.Fields{
			"user_id": userID,
			"fields":  strings.Join(targetsError, ","),
		}).Warn("Metas do funil omitidas do painel")
	}

	totals := measuring.Totals(entries)
	kpis := measuring.KPIs(totals, cfg)

	return &domain.Dashboard{
		Year:         year,
		Config:       cfg,
		IsDefault:    effective.IsDefault,
		Totals:       totals,
		KPIs:         kpis,
		Targets:      targets,
		TargetsError: targetsError,
		Monthly:      measuring.ApplyMonthlyTargets(measuring.MonthlyRollup(entries), cfg),
		Quarterly:    measuring.QuarterlyRollup(entries, cfg, year),
		Funnel:       totals,
		Performance:  measuring.Performance(kpis),
		Summary:      measuring.Summary(kpis),
	}, nil
}

func (s *Service) Export(ctx context.Context, userID, year int) (*domain.DashboardExport, error) {
	dashboard, err := s.GetDashboard(ctx, userID, year)
	if err != nil {
		return nil, err
	}

	return &domain.DashboardExport{
		Timestamp: s.now().UTC(),
		Metrics: domain.ExportMetrics{
			AnnualCompletion:  dashboard.KPIs.AnnualCompletion,
			ConversionRate:    dashboard.KPIs.ConversionRate.Actual,
			VisitRate:         dashboard.KPIs.VisitRate.Actual,
			GrossMargin:       dashboard.KPIs.GrossMargin.Actual,
			TotalOutput:       dashboard.Totals.Output,
			TotalProfit:       dashboard.Totals.Profit,
			TotalMeasurements: dashboard.Totals.Measurements,
			TotalVisits:       dashboard.Totals.Visits,
			TotalSignings:     dashboard.Totals.Signings,
		},
		Charts: domain.ExportCharts{
			MonthlyTrend:       dashboard.Monthly,
			QuarterlyBreakdown: dashboard.Quarterly,
			ConversionFunnel:   dashboard.Funnel,
		},
		Summary: dashboard.Summary,
	}, nil
}

func (s *Service) GetMonthlyReport(ctx context.Context, userID int) ([]domain.MonthlyRollup, error) {
	effective, err := s.configStore.GetEffectiveConfig(ctx, userID)
	if err != nil {
		return nil, err
	}

	entries, err := s.entries(ctx, userID)
	if err != nil {
		return nil, err
	}

	return measuring.ApplyMonthlyTargets(measuring.MonthlyRollup(entries), effective.Config), nil
}

func (s *Service) GetQuarterlyReport(ctx context.Context, userID, year int) ([]domain.QuarterlyRollup, error) {
	if year <= 0 {
		year = s.now().UTC().Year()
	}

	effective, err := s.configStore.GetEffectiveConfig(ctx, userID)
	if err != nil {
		return nil, err
	}

	entries, err := s.entries(ctx, userID)
	if err != nil {
		return nil, err
	}

	return measuring.QuarterlyRollup(entries, effective.Config, year), nil
}

// CloseMonth consolida o mês de reference e grava (ou substitui) o fechamento
func (s *Service) CloseMonth(ctx context.Context, userID int, reference time.Time) (*domain.MonthlyKPISnapshot, error) {
	effective, err := s.configStore.GetEffectiveConfig(ctx, userID)
	if err != nil {
		return nil, err
	}
	cfg := effective.Config

	entries, err := s.entries(ctx, userID)
	if err != nil {
		return nil, err
	}

	monthEntries := measuring.EntriesInMonth(entries, reference)
	totals := measuring.Totals(monthEntries)

	rollup := domain.MonthlyRollup{Month: utils.MonthKey(reference)}
	if rollups := measuring.MonthlyRollup(monthEntries); len(rollups) > 0 {
		rollup = rollups[0]
	}
	rollup = measuring.ApplyMonthlyTargets([]domain.MonthlyRollup{rollup}, cfg)[0]

	snapshot := &domain.MonthlyKPISnapshot{
		UserID:  userID,
		Period:  utils.Period(reference),
		Totals:  totals,
		KPIs:    measuring.KPIs(totals, cfg),
		Rollup:  rollup,
		Entries: len(monthEntries),
	}

	if err := s.snapshotRepo.SaveOrUpdate(ctx, snapshot); err != nil {
		return nil, errors.Wrapf(err, "falha ao salvar fechamento %s do usuário %d", snapshot.Period, userID)
	}

	return snapshot, nil
}

func (s *Service) GetSnapshot(ctx context.Context, userID int, period string) (*domain.MonthlyKPISnapshot, error) {
	if _, err := utils.ParsePeriod(period); err != nil {
		return nil, strategizing.ValidationErrors{{Field: "period", Message: "use o formato mm-yyyy"}}
	}

	snapshot, err := s.snapshotRepo.GetByUserAndPeriod(ctx, userID, period)
	if err != nil {
		return nil, errors.Wrap(err, "falha ao buscar fechamento mensal")
	}

	if snapshot == nil {
		return nil, ErrSnapshotNotFound
	}

	return snapshot, nil
}

// GetSnapshotHistory devolve os fechamentos existentes dos doze meses do ano
func (s *Service) GetSnapshotHistory(ctx context.Context, userID, year int) ([]*domain.MonthlyKPISnapshot, error) {
	if year <= 0 {
		year = s.now().UTC().Year()
	}

	periods := make([]string, 0, 12)
	for month := time.January; month <= time.December; month++ {
		periods = append(periods, utils.Period(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)))
	}

	snapshots, err := s.snapshotRepo.ListByPeriods(ctx, userID, periods)
	if err != nil {
		return nil, errors.Wrap(err, "falha ao buscar histórico de fechamentos")
	}

	return snapshots, nil
}

func (s *Service) ListSnapshotPeriods(ctx context.Context, userID int) (*domain.AvailablePeriods, error) {
	periods, err := s.snapshotRepo.ListPeriods(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "falha ao listar períodos")
	}

	years := make(map[string]struct{})
	months := make(map[string]struct{})
	for _, period := range periods {
		parts := strings.Split(period, "-")
		if len(parts) != 2 {
			continue
		}
		months[parts[0]] = struct{}{}
		years[parts[1]] = struct{}{}
	}

	return &domain.AvailablePeriods{
		Periods: periods,
		Years:   sortedKeys(years, true),
		Months:  sortedKeys(months, false),
	}, nil
}

func (s *Service) entries(ctx context.Context, userID int) ([]*domain.WeeklyEntry, error) {
	entries, err := s.entryRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "falha ao buscar lançamentos semanais")
	}

	return entries, nil
}

func sortedKeys(set map[string]struct{}, desc bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}

	sort.Slice(keys, func(i, j int) bool {
		if desc {
			return keys[i] > keys[j]
		}
		return keys[i] < keys[j]
	})

	return keys
}
