// Package measuring deriva totais, taxas e agregações mensais/trimestrais
// a partir dos lançamentos semanais e do plano estratégico. Todas as funções
// são puras: a mesma entrada produz sempre o mesmo resultado.
package measuring

import (
	"sort"
	"time"

	"github.com/vfg2006/strategy-dashboard-api/internal/domain"
	"github.com/vfg2006/strategy-dashboard-api/pkg/utils"
)

// Totals soma todos os lançamentos, sem filtro de data
func Totals(entries []*domain.WeeklyEntry) domain.Totals {
	var totals domain.Totals

	for _, entry := range entries {
		if entry == nil {
			continue
		}

		totals.Measurements += entry.Measurements
		totals.Visits += entry.Visits
		totals.Signings += entry.Signings
		totals.Output += entry.OutputValue
		totals.Profit += entry.GrossProfit
	}

	return totals
}

// ConversionRate = assinaturas / visitas * 100
func ConversionRate(t domain.Totals) float64 {
	return utils.Percentage(float64(t.Signings), float64(t.Visits))
}

// VisitRate = visitas / medições * 100
func VisitRate(t domain.Totals) float64 {
	return utils.Percentage(float64(t.Visits), float64(t.Measurements))
}

// GrossMarginPct = lucro / produção * 100
func GrossMarginPct(t domain.Totals) float64 {
	return utils.Percentage(t.Profit, t.Output)
}

// AnnualCompletion é o percentual da meta anual atingido, com uma casa decimal
func AnnualCompletion(actualOutput, annualTarget float64) float64 {
	return Completion(actualOutput, annualTarget)
}

// Completion aplica a mesma regra de conclusão para mês, trimestre ou ano
func Completion(actual, target float64) float64 {
	if target <= 0 {
		return 0
	}

	return utils.RoundWithOneDecimalPlace(actual / target * 100)
}

// Rates calcula as taxas de um único lançamento
func Rates(entry *domain.WeeklyEntry) domain.EntryRates {
	t := Totals([]*domain.WeeklyEntry{entry})

	return domain.EntryRates{
		ConversionRate: ConversionRate(t),
		VisitRate:      VisitRate(t),
		GrossMargin:    GrossMarginPct(t),
	}
}

// KPIs compara as taxas realizadas com as metas do plano
func KPIs(t domain.Totals, cfg *domain.StrategyConfig) domain.KPIs {
	kpis := domain.KPIs{
		ConversionRate: domain.RateKPI{Actual: ConversionRate(t)},
		VisitRate:      domain.RateKPI{Actual: VisitRate(t)},
		GrossMargin:    domain.RateKPI{Actual: GrossMarginPct(t)},
		AnnualActual:   t.Output,
	}

	if cfg != nil {
		kpis.ConversionRate.Target = cfg.ConversionRate
		kpis.VisitRate.Target = cfg.VisitRate
		kpis.GrossMargin.Target = cfg.GrossMargin
		kpis.AnnualTarget = cfg.AnnualTarget
		kpis.AnnualCompletion = AnnualCompletion(t.Output, cfg.AnnualTarget)
	}

	return kpis
}

// MonthlyRollup agrupa os lançamentos pelo mês civil de CreatedAt (UTC).
// As metas ficam zeradas; ver ApplyMonthlyTargets.
func MonthlyRollup(entries []*domain.WeeklyEntry) []domain.MonthlyRollup {
	byMonth := make(map[string]*domain.MonthlyRollup)

	for _, entry := range entries {
		if entry == nil {
			continue
		}

		key := utils.MonthKey(entry.CreatedAt)
		month, ok := byMonth[key]
		if !ok {
			month = &domain.MonthlyRollup{Month: key}
			byMonth[key] = month
		}

		month.ActualOutput += entry.OutputValue
		month.ActualProfit += entry.GrossProfit
	}

	rollups := make([]domain.MonthlyRollup, 0, len(byMonth))
	for _, month := range byMonth {
		month.GrossMargin = utils.Percentage(month.ActualProfit, month.ActualOutput)
		rollups = append(rollups, *month)
	}

	// YYYY-MM ordena cronologicamente como string
	sort.Slice(rollups, func(i, j int) bool {
		return rollups[i].Month < rollups[j].Month
	})

	return rollups
}

// ApplyMonthlyTargets distribui a meta do trimestre igualmente entre seus três
// meses e deriva a meta de lucro pela margem bruta planejada.
func ApplyMonthlyTargets(rollups []domain.MonthlyRollup, cfg *domain.StrategyConfig) []domain.MonthlyRollup {
	result := make([]domain.MonthlyRollup, len(rollups))
	copy(result, rollups)

	if cfg == nil {
		return result
	}

	for i := range result {
		month, err := time.Parse("2006-01", result[i].Month)
		if err != nil {
			continue
		}

		quarter := cfg.SeasonalDistribution[domain.QuarterOf(month.Month())]
		result[i].TargetOutput = quarter.Target / 3
		result[i].TargetProfit = result[i].TargetOutput * cfg.GrossMargin / 100
		result[i].Completion = Completion(result[i].ActualOutput, result[i].TargetOutput)
	}

	return result
}

// QuarterlyRollup soma a produção por trimestre civil de CreatedAt,
// considerando apenas os lançamentos do ano informado.
func QuarterlyRollup(entries []*domain.WeeklyEntry, cfg *domain.StrategyConfig, year int) []domain.QuarterlyRollup {
	actuals := make(map[domain.Quarter]float64, len(domain.Quarters))

	for _, entry := range entries {
		if entry == nil {
			continue
		}

		createdAt := entry.CreatedAt.UTC()
		if createdAt.Year() != year {
			continue
		}

		actuals[domain.QuarterOf(createdAt.Month())] += entry.OutputValue
	}

	rollups := make([]domain.QuarterlyRollup, 0, len(domain.Quarters))
	for _, q := range domain.Quarters {
		rollup := domain.QuarterlyRollup{
			Quarter: q,
			Actual:  actuals[q],
		}

		if cfg != nil {
			planned := cfg.SeasonalDistribution[q]
			rollup.Target = planned.Target
			rollup.Weight = planned.Weight
			rollup.Completion = Completion(rollup.Actual, rollup.Target)
		}

		rollups = append(rollups, rollup)
	}

	return rollups
}

// EntriesInMonth filtra os lançamentos criados no mês de reference (UTC)
func EntriesInMonth(entries []*domain.WeeklyEntry, reference time.Time) []*domain.WeeklyEntry {
	start, end := utils.MonthBounds(reference)

	filtered := make([]*domain.WeeklyEntry, 0)
	for _, entry := range entries {
		if entry == nil {
			continue
		}

		createdAt := entry.CreatedAt.UTC()
		if !createdAt.Before(start) && createdAt.Before(end) {
			filtered = append(filtered, entry)
		}
	}

	return filtered
}
