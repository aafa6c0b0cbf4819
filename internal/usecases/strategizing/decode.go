package strategizing

import (
	"bytes"
	"sort"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/strategy-dashboard-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var ErrMalformedBody = errors.New("o corpo deve ser um objeto JSON")

const (
	msgInteger = "deve ser um número inteiro"
	msgObject  = "deve ser um objeto"
)

var jsonNull = []byte("null")

// Fields guarda um objeto JSON com os valores ainda não decodificados. Cada
// leitura registra em Errs o campo com tipo errado em vez de abortar.
type Fields struct {
	raw  map[string]jsoniter.RawMessage
	path string
	Errs ValidationErrors
}

// ParseFields lê o corpo como objeto JSON. Só falha quando o corpo não é um objeto.
func ParseFields(data []byte) (*Fields, error) {
	var raw map[string]jsoniter.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(ErrMalformedBody, err.Error())
	}
	if raw == nil {
		return nil, ErrMalformedBody
	}

	return &Fields{raw: raw}, nil
}

func (f *Fields) field(name string) string {
	if f.path == "" {
		return name
	}
	return f.path + "." + name
}

// value devolve o valor bruto, nil quando ausente ou null
func (f *Fields) value(name string) jsoniter.RawMessage {
	v, ok := f.raw[name]
	if !ok || bytes.Equal(bytes.TrimSpace(v), jsonNull) {
		return nil
	}
	return v
}

func (f *Fields) Float(name string) *float64 {
	raw := f.value(name)
	if raw == nil {
		return nil
	}

	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		f.Errs = append(f.Errs, ValidationError{Field: f.field(name), Message: msgNumeric})
		return nil
	}
	return &v
}

func (f *Fields) Int(name string) *int {
	raw := f.value(name)
	if raw == nil {
		return nil
	}

	var v int
	if err := json.Unmarshal(raw, &v); err != nil {
		f.Errs = append(f.Errs, ValidationError{Field: f.field(name), Message: msgInteger})
		return nil
	}
	return &v
}

// Object abre um objeto aninhado. Os erros dele são acumulados no objeto pai.
func (f *Fields) Object(name string, read func(*Fields)) bool {
	raw := f.value(name)
	if raw == nil {
		return false
	}

	var nested map[string]jsoniter.RawMessage
	if err := json.Unmarshal(raw, &nested); err != nil {
		f.Errs = append(f.Errs, ValidationError{Field: f.field(name), Message: msgObject})
		return false
	}

	child := &Fields{raw: nested, path: f.field(name)}
	read(child)
	f.Errs = append(f.Errs, child.Errs...)
	return true
}

// Keys devolve as chaves presentes em ordem alfabética
func (f *Fields) Keys() []string {
	keys := make([]string, 0, len(f.raw))
	for k := range f.raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// MergeErrors junta os erros de tipo aos de regra. Um campo com tipo errado
// também aparece como ausente na validação; nesse caso vale o erro de tipo.
func MergeErrors(typeErrs ValidationErrors, err error) ValidationErrors {
	var ruleErrs ValidationErrors
	errors.As(err, &ruleErrs)

	byField := make(map[string]ValidationError, len(typeErrs))
	for _, e := range typeErrs {
		byField[e.Field] = e
	}

	merged := make(ValidationErrors, 0, len(typeErrs)+len(ruleErrs))
	for _, e := range ruleErrs {
		if typeErr, ok := byField[e.Field]; ok {
			merged = append(merged, typeErr)
			delete(byField, e.Field)
			continue
		}
		merged = append(merged, e)
	}

	for _, e := range typeErrs {
		if _, pending := byField[e.Field]; pending {
			merged = append(merged, e)
		}
	}

	return merged
}

// DecodeInput lê o plano enviado pelo cliente. Campos com tipo errado são
// listados junto com os ausentes e fora da faixa, num único ValidationErrors.
func DecodeInput(data []byte) (*domain.StrategyConfigInput, error) {
	fields, err := ParseFields(data)
	if err != nil {
		return nil, err
	}

	input := &domain.StrategyConfigInput{
		UnitPrice:      fields.Float("unitPrice"),
		ConversionRate: fields.Float("conversionRate"),
		VisitRate:      fields.Float("visitRate"),
		GrossMargin:    fields.Float("grossMargin"),
		AnnualTarget:   fields.Float("annualTarget"),
	}

	fields.Object("seasonalDistribution", func(seasonal *Fields) {
		input.SeasonalDistribution = make(map[domain.Quarter]*domain.QuarterTargetInput, len(seasonal.raw))
		for _, key := range seasonal.Keys() {
			seasonal.Object(key, func(quarter *Fields) {
				input.SeasonalDistribution[domain.Quarter(key)] = &domain.QuarterTargetInput{
					Target: quarter.Float("target"),
					Weight: quarter.Float("weight"),
				}
			})
		}
	})

	if len(fields.Errs) > 0 {
		_, ruleErr := Validate(input)
		return nil, MergeErrors(fields.Errs, ruleErr)
	}

	return input, nil
}
