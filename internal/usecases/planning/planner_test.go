package planning

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/strategy-dashboard-api/internal/domain"
)

func TestPlan(t *testing.T) {
	t.Run("Plano padrão gera 40 assinaturas, 182 visitas e 455 medições", func(t *testing.T) {
		targets, err := Plan(domain.DefaultStrategyConfig())
		require.NoError(t, err)

		assert.Equal(t, 12000000.0, targets.AnnualTarget)
		assert.Equal(t, domain.FunnelTargets{
			RequiredLeads:    455,
			RequiredVisits:   182,
			RequiredSignings: 40,
		}, targets.Annual)

		require.Len(t, targets.Quarters, 4)
		assert.Equal(t, domain.Q1, targets.Quarters[0].Quarter)
		assert.Equal(t, int64(10), targets.Quarters[0].Funnel.RequiredSignings)
		assert.Equal(t, int64(46), targets.Quarters[0].Funnel.RequiredVisits)
		assert.Equal(t, int64(115), targets.Quarters[0].Funnel.RequiredLeads)
		assert.Equal(t, int64(20), targets.Quarters[1].Funnel.RequiredSignings)
	})

	t.Run("Receita fracionada arredonda para cima", func(t *testing.T) {
		cfg := domain.DefaultStrategyConfig()
		cfg.AnnualTarget = 12000001

		targets, err := Plan(cfg)
		require.NoError(t, err)
		assert.Equal(t, int64(41), targets.Annual.RequiredSignings)
	})

	t.Run("Meta zero não exige volume", func(t *testing.T) {
		funnel, err := Funnel(0, domain.DefaultStrategyConfig())
		require.NoError(t, err)
		assert.Equal(t, domain.FunnelTargets{}, funnel)
	})
}

func TestPlanInvalidConfiguration(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cfg *domain.StrategyConfig)
		fields []string
	}{
		{
			name:   "Preço unitário zero",
			mutate: func(cfg *domain.StrategyConfig) { cfg.UnitPrice = 0 },
			fields: []string{"unitPrice"},
		},
		{
			name:   "Taxa de conversão negativa",
			mutate: func(cfg *domain.StrategyConfig) { cfg.ConversionRate = -1 },
			fields: []string{"conversionRate"},
		},
		{
			name: "Todos os divisores inválidos",
			mutate: func(cfg *domain.StrategyConfig) {
				cfg.UnitPrice = 0
				cfg.ConversionRate = 0
				cfg.VisitRate = 0
			},
			fields: []string{"unitPrice", "conversionRate", "visitRate"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := domain.DefaultStrategyConfig()
			tt.mutate(cfg)

			targets, err := Plan(cfg)
			assert.Nil(t, targets)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfiguration))

			var invalid *InvalidConfigurationError
			require.True(t, errors.As(err, &invalid))
			assert.Equal(t, tt.fields, invalid.Fields)
		})
	}

	_, err := Plan(nil)
	assert.True(t, errors.Is(err, ErrInvalidConfiguration))
}

func TestFunnelNarrowsUpward(t *testing.T) {
	prices := []float64{1, 999.99, 300000, 1234567}
	rates := []float64{0.5, 1, 13.7, 22, 33.3, 40, 99.9, 100}
	targets := []float64{1, 1000, 12000000, 98765432.1}

	for _, price := range prices {
		for _, conversion := range rates {
			for _, visit := range rates {
				cfg := domain.DefaultStrategyConfig()
				cfg.UnitPrice = price
				cfg.ConversionRate = conversion
				cfg.VisitRate = visit

				for _, target := range targets {
					funnel, err := Funnel(target, cfg)
					require.NoError(t, err)

					assert.LessOrEqual(t, funnel.RequiredSignings, funnel.RequiredVisits)
					assert.LessOrEqual(t, funnel.RequiredVisits, funnel.RequiredLeads)
				}
			}
		}
	}
}
