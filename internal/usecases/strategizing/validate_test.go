package strategizing

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/strategy-dashboard-api/internal/domain"
)

func validInput() *domain.StrategyConfigInput {
	return ToInput(domain.DefaultStrategyConfig())
}

func TestValidate(t *testing.T) {
	t.Run("Plano padrão é válido", func(t *testing.T) {
		cfg, err := Validate(validInput())
		require.NoError(t, err)

		expected := domain.DefaultStrategyConfig()
		assert.Equal(t, expected.UnitPrice, cfg.UnitPrice)
		assert.Equal(t, expected.GrossMargin, cfg.GrossMargin)
		assert.Equal(t, expected.SeasonalDistribution, cfg.SeasonalDistribution)
	})

	t.Run("Limites das taxas são inclusivos", func(t *testing.T) {
		input := validInput()
		input.ConversionRate = floatPtr(0)
		input.VisitRate = floatPtr(100)
		input.SeasonalDistribution[domain.Q1].Target = floatPtr(0)

		_, err := Validate(input)
		assert.NoError(t, err)
	})
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(input *domain.StrategyConfigInput)
		fields []string
	}{
		{
			name:   "Sem margem bruta",
			mutate: func(input *domain.StrategyConfigInput) { input.GrossMargin = nil },
			fields: []string{"grossMargin"},
		},
		{
			name: "Lista todos os campos inválidos",
			mutate: func(input *domain.StrategyConfigInput) {
				input.UnitPrice = floatPtr(0)
				input.ConversionRate = floatPtr(120)
				input.VisitRate = floatPtr(-1)
				input.AnnualTarget = nil
			},
			fields: []string{"unitPrice", "conversionRate", "visitRate", "annualTarget"},
		},
		{
			name:   "Valor não numérico",
			mutate: func(input *domain.StrategyConfigInput) { input.UnitPrice = floatPtr(math.NaN()) },
			fields: []string{"unitPrice"},
		},
		{
			name:   "Sem distribuição sazonal",
			mutate: func(input *domain.StrategyConfigInput) { input.SeasonalDistribution = nil },
			fields: []string{"seasonalDistribution"},
		},
		{
			name: "Trimestres ausentes e inválidos",
			mutate: func(input *domain.StrategyConfigInput) {
				delete(input.SeasonalDistribution, domain.Q2)
				input.SeasonalDistribution[domain.Q3].Weight = floatPtr(101)
				input.SeasonalDistribution[domain.Q4].Target = floatPtr(-10)
				input.SeasonalDistribution[domain.Q4].Weight = nil
			},
			fields: []string{
				"seasonalDistribution.Q2",
				"seasonalDistribution.Q3.weight",
				"seasonalDistribution.Q4.target",
				"seasonalDistribution.Q4.weight",
			},
		},
		{
			name: "Trimestre desconhecido",
			mutate: func(input *domain.StrategyConfigInput) {
				input.SeasonalDistribution["Q5"] = &domain.QuarterTargetInput{Target: floatPtr(1), Weight: floatPtr(1)}
			},
			fields: []string{"seasonalDistribution.Q5"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(input)

			cfg, err := Validate(input)
			assert.Nil(t, cfg)
			require.Error(t, err)

			var validationErrs ValidationErrors
			require.True(t, errors.As(err, &validationErrs))
			assert.Equal(t, tt.fields, validationErrs.Fields())
		})
	}

	t.Run("Entrada nula lista todos os obrigatórios", func(t *testing.T) {
		_, err := Validate(nil)

		var validationErrs ValidationErrors
		require.True(t, errors.As(err, &validationErrs))
		assert.Equal(t, []string{
			"unitPrice", "conversionRate", "visitRate", "grossMargin", "annualTarget", "seasonalDistribution",
		}, validationErrs.Fields())
	})
}

func TestWarnings(t *testing.T) {
	t.Run("Distribuição consistente não gera aviso", func(t *testing.T) {
		cfg := domain.DefaultStrategyConfig()
		cfg.SeasonalDistribution = map[domain.Quarter]domain.QuarterTarget{
			domain.Q1: {Target: 3000000, Weight: 25},
			domain.Q2: {Target: 3000000, Weight: 25},
			domain.Q3: {Target: 3000000, Weight: 25},
			domain.Q4: {Target: 3050000, Weight: 25.5},
		}

		assert.Empty(t, Warnings(cfg))
	})

	t.Run("Plano padrão diverge na soma das metas e dos pesos", func(t *testing.T) {
		assert.Len(t, Warnings(domain.DefaultStrategyConfig()), 2)
	})
}

func TestParseDefaults(t *testing.T) {
	t.Run("YAML válido", func(t *testing.T) {
		data := []byte(`
unitPrice: 150000
conversionRate: 25
visitRate: 50
grossMargin: 30
annualTarget: 6000000
seasonalDistribution:
  Q1: {target: 1500000, weight: 25}
  Q2: {target: 1500000, weight: 25}
  Q3: {target: 1500000, weight: 25}
  Q4: {target: 1500000, weight: 25}
`)

		cfg, err := ParseDefaults(data)
		require.NoError(t, err)
		assert.Equal(t, 150000.0, cfg.UnitPrice)
		assert.Equal(t, 1500000.0, cfg.SeasonalDistribution[domain.Q4].Target)
		assert.Empty(t, Warnings(cfg))
	})

	t.Run("YAML sem margem bruta", func(t *testing.T) {
		data := []byte(`
unitPrice: 150000
conversionRate: 25
visitRate: 50
annualTarget: 6000000
seasonalDistribution:
  Q1: {target: 1500000, weight: 25}
  Q2: {target: 1500000, weight: 25}
  Q3: {target: 1500000, weight: 25}
  Q4: {target: 1500000, weight: 25}
`)

		_, err := ParseDefaults(data)

		var validationErrs ValidationErrors
		require.True(t, errors.As(err, &validationErrs))
		assert.Equal(t, []string{"grossMargin"}, validationErrs.Fields())
	})

	t.Run("YAML malformado", func(t *testing.T) {
		_, err := ParseDefaults([]byte("unitPrice: [1, 2"))

		var validationErrs ValidationErrors
		require.True(t, errors.As(err, &validationErrs))
		assert.True(t, validationErrs.Has("yaml"))
	})

	t.Run("Caminho vazio usa o plano embutido", func(t *testing.T) {
		cfg, err := LoadDefaults("")
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultStrategyConfig(), cfg)
	})

	t.Run("Arquivo do repositório é válido", func(t *testing.T) {
		cfg, err := LoadDefaults("../../../configs/strategy_defaults.yml")
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultStrategyConfig().SeasonalDistribution, cfg.SeasonalDistribution)
	})
}
