package reporting

import (
	"math"

	"github.com/vfg2006/strategy-dashboard-api/internal/domain"
	"github.com/vfg2006/strategy-dashboard-api/internal/usecases/strategizing"
)

const (
	minWeek = 1
	maxWeek = 53
)

// validateEntry exige os seis campos e lista todos os que faltam ou estão fora da faixa
func validateEntry(input *domain.WeeklyEntryInput) (*domain.WeeklyEntry, error) {
	if input == nil {
		input = &domain.WeeklyEntryInput{}
	}

	var errs strategizing.ValidationErrors

	count := func(field string, v *int) int {
		switch {
		case v == nil:
			errs = append(errs, strategizing.ValidationError{Field: field, Message: "campo obrigatório"})
		case *v < 0:
			errs = append(errs, strategizing.ValidationError{Field: field, Message: "não pode ser negativo"})
		default:
			return *v
		}
		return 0
	}

	amount := func(field string, v *float64, allowNegative bool) float64 {
		switch {
		case v == nil:
			errs = append(errs, strategizing.ValidationError{Field: field, Message: "campo obrigatório"})
		case math.IsNaN(*v) || math.IsInf(*v, 0):
			errs = append(errs, strategizing.ValidationError{Field: field, Message: "deve ser numérico"})
		case !allowNegative && *v < 0:
			errs = append(errs, strategizing.ValidationError{Field: field, Message: "não pode ser negativo"})
		default:
			return *v
		}
		return 0
	}

	week := 0
	switch {
	case input.Week == nil:
		errs = append(errs, strategizing.ValidationError{Field: "week", Message: "campo obrigatório"})
	case *input.Week < minWeek || *input.Week > maxWeek:
		errs = append(errs, strategizing.ValidationError{Field: "week", Message: "deve estar entre 1 e 53"})
	default:
		week = *input.Week
	}

	entry := &domain.WeeklyEntry{
		Week:         week,
		Measurements: count("measurements", input.Measurements),
		Visits:       count("visits", input.Visits),
		Signings:     count("signings", input.Signings),
		OutputValue:  amount("outputValue", input.OutputValue, false),
		// prejuízo na semana é permitido
		GrossProfit: amount("grossProfit", input.GrossProfit, true),
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return entry, nil
}

// DecodeEntryInput lê o lançamento enviado pelo cliente, listando juntos os
// campos com tipo errado, ausentes ou fora da faixa.
func DecodeEntryInput(data []byte) (*domain.WeeklyEntryInput, error) {
	fields, err := strategizing.ParseFields(data)
	if err != nil {
		return nil, err
	}

	input := &domain.WeeklyEntryInput{
		Week:         fields.Int("week"),
		Measurements: fields.Int("measurements"),
		Visits:       fields.Int("visits"),
		Signings:     fields.Int("signings"),
		OutputValue:  fields.Float("outputValue"),
		GrossProfit:  fields.Float("grossProfit"),
	}

	if len(fields.Errs) > 0 {
		_, ruleErr := validateEntry(input)
		return nil, strategizing.MergeErrors(fields.Errs, ruleErr)
	}

	return input, nil
}
