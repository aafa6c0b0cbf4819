// Package planning inverte o funil de vendas: a partir da meta de receita,
// calcula quantas assinaturas, visitas e medições são necessárias.
package planning

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/strategy-dashboard-api/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// Plan calcula o funil anual e o de cada trimestre
func Plan(cfg *domain.StrategyConfig) (*domain.StrategicTargets, error) {
	if err := check(cfg); err != nil {
		return nil, err
	}

	annual := funnel(cfg.AnnualTarget, cfg)

	quarters := make([]domain.QuarterFunnel, 0, len(domain.Quarters))
	for _, q := range domain.Quarters {
		target := cfg.SeasonalDistribution[q].Target
		quarters = append(quarters, domain.QuarterFunnel{
			Quarter: q,
			Target:  target,
			Funnel:  funnel(target, cfg),
		})
	}

	return &domain.StrategicTargets{
		AnnualTarget: cfg.AnnualTarget,
		Annual:       annual,
		Quarters:     quarters,
	}, nil
}

// Funnel calcula o volume necessário para uma meta de receita qualquer
func Funnel(target float64, cfg *domain.StrategyConfig) (domain.FunnelTargets, error) {
	if err := check(cfg); err != nil {
		return domain.FunnelTargets{}, err
	}

	return funnel(target, cfg), nil
}

// Cada etapa parte do valor já arredondado da etapa anterior
func funnel(target float64, cfg *domain.StrategyConfig) domain.FunnelTargets {
	if target <= 0 {
		return domain.FunnelTargets{}
	}

	signings := decimal.NewFromFloat(target).
		Div(decimal.NewFromFloat(cfg.UnitPrice)).
		Ceil()

	visits := signings.Mul(hundred).
		Div(decimal.NewFromFloat(cfg.ConversionRate)).
		Ceil()

	leads := visits.Mul(hundred).
		Div(decimal.NewFromFloat(cfg.VisitRate)).
		Ceil()

	return domain.FunnelTargets{
		RequiredLeads:    leads.IntPart(),
		RequiredVisits:   visits.IntPart(),
		RequiredSignings: signings.IntPart(),
	}
}

func check(cfg *domain.StrategyConfig) error {
	if cfg == nil {
		return &InvalidConfigurationError{Fields: []string{"unitPrice", "conversionRate", "visitRate"}}
	}

	var fields []string
	if cfg.UnitPrice <= 0 {
		fields = append(fields, "unitPrice")
	}
	if cfg.ConversionRate <= 0 {
		fields = append(fields, "conversionRate")
	}
	if cfg.VisitRate <= 0 {
		fields = append(fields, "visitRate")
	}

	if len(fields) > 0 {
		return &InvalidConfigurationError{Fields: fields}
	}

	return nil
}
