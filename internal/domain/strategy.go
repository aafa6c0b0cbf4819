package domain

import "time"

type Quarter string

const (
	Q1 Quarter = "Q1"
	Q2 Quarter = "Q2"
	Q3 Quarter = "Q3"
	Q4 Quarter = "Q4"
)

// Quarters mantém a ordem de exibição dos trimestres
var Quarters = []Quarter{Q1, Q2, Q3, Q4}

// QuarterOf retorna o trimestre civil de um mês
func QuarterOf(month time.Month) Quarter {
	return Quarters[(int(month)-1)/3]
}

type QuarterTarget struct {
	Target float64 `json:"target" yaml:"target"`
	Weight float64 `json:"weight" yaml:"weight"`
}

// StrategyConfig é o plano estratégico de um usuário
type StrategyConfig struct {
	UserID               int                       `json:"userId,omitempty" yaml:"-"`
	UnitPrice            float64                   `json:"unitPrice" yaml:"unitPrice"`
	ConversionRate       float64                   `json:"conversionRate" yaml:"conversionRate"`
	VisitRate            float64                   `json:"visitRate" yaml:"visitRate"`
	GrossMargin          float64                   `json:"grossMargin" yaml:"grossMargin"`
	AnnualTarget         float64                   `json:"annualTarget" yaml:"annualTarget"`
	SeasonalDistribution map[Quarter]QuarterTarget `json:"seasonalDistribution" yaml:"seasonalDistribution"`
	CreatedAt            time.Time                 `json:"createdAt,omitempty" yaml:"-"`
	UpdatedAt            time.Time                 `json:"updatedAt,omitempty" yaml:"-"`
}

// QuarterTargetInput usa ponteiros para distinguir campo ausente de zero
type QuarterTargetInput struct {
	Target *float64 `json:"target" yaml:"target"`
	Weight *float64 `json:"weight" yaml:"weight"`
}

type StrategyConfigInput struct {
	UnitPrice            *float64                       `json:"unitPrice" yaml:"unitPrice"`
	ConversionRate       *float64                       `json:"conversionRate" yaml:"conversionRate"`
	VisitRate            *float64                       `json:"visitRate" yaml:"visitRate"`
	GrossMargin          *float64                       `json:"grossMargin" yaml:"grossMargin"`
	AnnualTarget         *float64                       `json:"annualTarget" yaml:"annualTarget"`
	SeasonalDistribution map[Quarter]*QuarterTargetInput `json:"seasonalDistribution" yaml:"seasonalDistribution"`
}

// StrategyConfigResponse é o retorno de leitura/gravação da configuração
type StrategyConfigResponse struct {
	Config    *StrategyConfig `json:"config"`
	IsDefault bool            `json:"isDefault"`
	Warnings  []string        `json:"warnings,omitempty"`
}

// DefaultStrategyConfig é o plano usado quando o usuário ainda não salvou o seu
func DefaultStrategyConfig() *StrategyConfig {
	return &StrategyConfig{
		UnitPrice:      300000,
		ConversionRate: 22,
		VisitRate:      40,
		GrossMargin:    35,
		AnnualTarget:   12000000,
		SeasonalDistribution: map[Quarter]QuarterTarget{
			Q1: {Target: 3000000, Weight: 25},
			Q2: {Target: 6000000, Weight: 50},
			Q3: {Target: 4000000, Weight: 33},
			Q4: {Target: 2400000, Weight: 20},
		},
	}
}

// Clone devolve uma cópia independente, incluindo o mapa de trimestres
func (c *StrategyConfig) Clone() *StrategyConfig {
	if c == nil {
		return nil
	}

	clone := *c
	clone.SeasonalDistribution = make(map[Quarter]QuarterTarget, len(c.SeasonalDistribution))
	for q, t := range c.SeasonalDistribution {
		clone.SeasonalDistribution[q] = t
	}

	return &clone
}
