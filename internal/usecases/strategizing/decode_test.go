package strategizing

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/strategy-dashboard-api/internal/domain"
)

const validBody = `{"unitPrice":300000,"conversionRate":22,"visitRate":40,"grossMargin":35,"annualTarget":12000000,
	"seasonalDistribution":{"Q1":{"target":3000000,"weight":25},"Q2":{"target":6000000,"weight":50},
	"Q3":{"target":4000000,"weight":33},"Q4":{"target":2400000,"weight":20}}}`

func TestDecodeInput_Valid(t *testing.T) {
	input, err := DecodeInput([]byte(validBody))
	require.NoError(t, err)

	cfg, err := Validate(input)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultStrategyConfig().SeasonalDistribution, cfg.SeasonalDistribution)
	assert.Equal(t, 300000.0, cfg.UnitPrice)
}

func TestDecodeInput_NullIsMissing(t *testing.T) {
	input, err := DecodeInput([]byte(`{"unitPrice":null}`))
	require.NoError(t, err)
	assert.Nil(t, input.UnitPrice)
	assert.Nil(t, input.SeasonalDistribution)
}

func TestDecodeInput_TypeErrors(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected ValidationErrors
	}{
		{
			name: "escalares",
			body: `{"unitPrice":"abc","conversionRate":true,"visitRate":40,"grossMargin":35,"annualTarget":12000000,
				"seasonalDistribution":{"Q1":{"target":1,"weight":25},"Q2":{"target":1,"weight":25},
				"Q3":{"target":1,"weight":25},"Q4":{"target":1,"weight":25}}}`,
			expected: ValidationErrors{
				{Field: "unitPrice", Message: msgNumeric},
				{Field: "conversionRate", Message: msgNumeric},
			},
		},
		{
			name: "trimestre desconhecido com tipo errado",
			body: `{"unitPrice":1,"conversionRate":1,"visitRate":1,"grossMargin":1,"annualTarget":1,
				"seasonalDistribution":{"Q1":{"target":1,"weight":25},"Q2":{"target":1,"weight":25},
				"Q3":{"target":1,"weight":25},"Q4":{"target":-1,"weight":25},"Q5":7}}`,
			expected: ValidationErrors{
				{Field: "seasonalDistribution.Q4.target", Message: msgNegative},
				{Field: "seasonalDistribution.Q5", Message: msgObject},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input, err := DecodeInput([]byte(tt.body))
			assert.Nil(t, input)

			var errs ValidationErrors
			require.True(t, errors.As(err, &errs))
			assert.Equal(t, tt.expected, errs)
		})
	}
}

func TestDecodeInput_MalformedBody(t *testing.T) {
	for _, body := range []string{`[1]`, `null`, `{"unitPrice":`, `"texto"`} {
		_, err := DecodeInput([]byte(body))
		assert.True(t, errors.Is(err, ErrMalformedBody), body)
	}
}

func TestMergeErrors(t *testing.T) {
	typeErrs := ValidationErrors{
		{Field: "grossMargin", Message: msgNumeric},
		{Field: "extra", Message: msgObject},
	}
	ruleErrs := ValidationErrors{
		{Field: "unitPrice", Message: msgPositive},
		{Field: "grossMargin", Message: msgRequired},
	}

	assert.Equal(t, ValidationErrors{
		{Field: "unitPrice", Message: msgPositive},
		{Field: "grossMargin", Message: msgNumeric},
		{Field: "extra", Message: msgObject},
	}, MergeErrors(typeErrs, ruleErrs))

	assert.Equal(t, typeErrs, MergeErrors(typeErrs, nil))
}
