package strategizing

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/vfg2006/strategy-dashboard-api/internal/domain"
)

// ValidationError descreve um problema em um único campo
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors agrega todos os campos inválidos de uma entrada
type ValidationErrors []ValidationError

func (errs ValidationErrors) Error() string {
	parts := make([]string, 0, len(errs))
	for _, e := range errs {
		parts = append(parts, e.Error())
	}
	return strings.Join(parts, "; ")
}

// Fields devolve os nomes dos campos inválidos na ordem em que foram encontrados
func (errs ValidationErrors) Fields() []string {
	fields := make([]string, 0, len(errs))
	for _, e := range errs {
		fields = append(fields, e.Field)
	}
	return fields
}

// Has indica se o campo aparece entre os erros
func (errs ValidationErrors) Has(field string) bool {
	for _, e := range errs {
		if e.Field == field {
			return true
		}
	}
	return false
}

const (
	msgRequired = "campo obrigatório"
	msgNumeric  = "deve ser numérico"
	msgPositive = "deve ser maior que zero"
	msgPercent  = "deve estar entre 0 e 100"
	msgNegative = "não pode ser negativo"
)

// Margens aceitas antes de emitir um aviso sobre a distribuição sazonal
const (
	targetSumTolerance = 0.01
	weightSumTolerance = 1.0
)

// Validate confere o payload inteiro e devolve a configuração pronta para uso.
// Em caso de erro, todos os campos inválidos são listados.
func Validate(input *domain.StrategyConfigInput) (*domain.StrategyConfig, error) {
	if input == nil {
		input = &domain.StrategyConfigInput{}
	}

	var errs ValidationErrors

	positive := func(field string, v *float64) float64 {
		switch {
		case v == nil:
			errs = append(errs, ValidationError{Field: field, Message: msgRequired})
		case !finite(*v):
			errs = append(errs, ValidationError{Field: field, Message: msgNumeric})
		case *v <= 0:
			errs = append(errs, ValidationError{Field: field, Message: msgPositive})
		default:
			return *v
		}
		return 0
	}

	percent := func(field string, v *float64) float64 {
		switch {
		case v == nil:
			errs = append(errs, ValidationError{Field: field, Message: msgRequired})
		case !finite(*v):
			errs = append(errs, ValidationError{Field: field, Message: msgNumeric})
		case *v < 0 || *v > 100:
			errs = append(errs, ValidationError{Field: field, Message: msgPercent})
		default:
			return *v
		}
		return 0
	}

	nonNegative := func(field string, v *float64) float64 {
		switch {
		case v == nil:
			errs = append(errs, ValidationError{Field: field, Message: msgRequired})
		case !finite(*v):
			errs = append(errs, ValidationError{Field: field, Message: msgNumeric})
		case *v < 0:
			errs = append(errs, ValidationError{Field: field, Message: msgNegative})
		default:
			return *v
		}
		return 0
	}

	cfg := &domain.StrategyConfig{
		UnitPrice:            positive("unitPrice", input.UnitPrice),
		ConversionRate:       percent("conversionRate", input.ConversionRate),
		VisitRate:            percent("visitRate", input.VisitRate),
		GrossMargin:          percent("grossMargin", input.GrossMargin),
		AnnualTarget:         positive("annualTarget", input.AnnualTarget),
		SeasonalDistribution: make(map[domain.Quarter]domain.QuarterTarget, len(domain.Quarters)),
	}

	if input.SeasonalDistribution == nil {
		errs = append(errs, ValidationError{Field: "seasonalDistribution", Message: msgRequired})
	} else {
		for _, q := range domain.Quarters {
			field := "seasonalDistribution." + string(q)

			quarter, ok := input.SeasonalDistribution[q]
			if !ok || quarter == nil {
				errs = append(errs, ValidationError{Field: field, Message: msgRequired})
				continue
			}

			cfg.SeasonalDistribution[q] = domain.QuarterTarget{
				Target: nonNegative(field+".target", quarter.Target),
				Weight: percent(field+".weight", quarter.Weight),
			}
		}

		unknown := make([]string, 0)
		for q := range input.SeasonalDistribution {
			if !isQuarter(q) {
				unknown = append(unknown, string(q))
			}
		}
		sort.Strings(unknown)
		for _, q := range unknown {
			errs = append(errs, ValidationError{Field: "seasonalDistribution." + q, Message: "trimestre desconhecido, use Q1 a Q4"})
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return cfg, nil
}

// Warnings aponta inconsistências da distribuição sazonal que não impedem o uso do plano
func Warnings(cfg *domain.StrategyConfig) []string {
	if cfg == nil {
		return nil
	}

	var targetSum, weightSum float64
	for _, q := range domain.Quarters {
		targetSum += cfg.SeasonalDistribution[q].Target
		weightSum += cfg.SeasonalDistribution[q].Weight
	}

	warnings := make([]string, 0)

	if cfg.AnnualTarget > 0 && math.Abs(targetSum-cfg.AnnualTarget) > cfg.AnnualTarget*targetSumTolerance {
		warnings = append(warnings, fmt.Sprintf(
			"a soma das metas trimestrais (%.2f) difere da meta anual (%.2f)", targetSum, cfg.AnnualTarget))
	}

	if math.Abs(weightSum-100) > weightSumTolerance {
		warnings = append(warnings, fmt.Sprintf(
			"a soma dos pesos trimestrais (%.2f) difere de 100", weightSum))
	}

	return warnings
}

// ToInput converte uma configuração pronta de volta para o formato de entrada
func ToInput(cfg *domain.StrategyConfig) *domain.StrategyConfigInput {
	input := &domain.StrategyConfigInput{
		UnitPrice:            floatPtr(cfg.UnitPrice),
		ConversionRate:       floatPtr(cfg.ConversionRate),
		VisitRate:            floatPtr(cfg.VisitRate),
		GrossMargin:          floatPtr(cfg.GrossMargin),
		AnnualTarget:         floatPtr(cfg.AnnualTarget),
		SeasonalDistribution: make(map[domain.Quarter]*domain.QuarterTargetInput, len(cfg.SeasonalDistribution)),
	}

	for q, t := range cfg.SeasonalDistribution {
		input.SeasonalDistribution[q] = &domain.QuarterTargetInput{
			Target: floatPtr(t.Target),
			Weight: floatPtr(t.Weight),
		}
	}

	return input
}

func isQuarter(q domain.Quarter) bool {
	for _, known := range domain.Quarters {
		if q == known {
			return true
		}
	}
	return false
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func floatPtr(v float64) *float64 {
	return &v
}
