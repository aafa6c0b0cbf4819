package measuring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/strategy-dashboard-api/internal/domain"
)

func TestSummary(t *testing.T) {
	tests := []struct {
		name       string
		kpis       domain.KPIs
		wantStatus string
		wantCodes  []string
	}{
		{
			name: "Tudo acima dos limites e meta concluída",
			kpis: domain.KPIs{
				ConversionRate:   domain.RateKPI{Actual: 25},
				VisitRate:        domain.RateKPI{Actual: 40},
				GrossMargin:      domain.RateKPI{Actual: 35},
				AnnualCompletion: 100,
			},
			wantStatus: domain.SummaryStatusCompleted,
			wantCodes:  []string{},
		},
		{
			name:       "Sem dados gera todas as recomendações",
			kpis:       domain.KPIs{},
			wantStatus: domain.SummaryStatusInProgress,
			wantCodes: []string{
				RecommendationLowConversion,
				RecommendationLowVisit,
				RecommendationLowMargin,
				RecommendationLowCompletion,
			},
		},
		{
			name: "Limites são exclusivos",
			kpis: domain.KPIs{
				ConversionRate:   domain.RateKPI{Actual: 20},
				VisitRate:        domain.RateKPI{Actual: 34.9},
				GrossMargin:      domain.RateKPI{Actual: 30},
				AnnualCompletion: 80,
			},
			wantStatus: domain.SummaryStatusInProgress,
			wantCodes:  []string{RecommendationLowVisit},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := Summary(tt.kpis)

			assert.Equal(t, tt.wantStatus, summary.Status)
			assert.Equal(t, tt.kpis.AnnualCompletion, summary.CompletionRate)

			codes := make([]string, 0, len(summary.Recommendations))
			for _, r := range summary.Recommendations {
				codes = append(codes, r.Code)
				assert.NotEmpty(t, r.Message)
			}
			assert.Equal(t, tt.wantCodes, codes)
		})
	}
}

func TestPerformance(t *testing.T) {
	kpis := domain.KPIs{
		ConversionRate:   domain.RateKPI{Target: 22, Actual: 18},
		VisitRate:        domain.RateKPI{Target: 40, Actual: 45},
		GrossMargin:      domain.RateKPI{Target: 35, Actual: 31},
		AnnualCompletion: 42.5,
	}

	performance := Performance(kpis)
	assert.Len(t, performance.Labels, 4)
	assert.Equal(t, []float64{22, 40, 35, 100}, performance.Target)
	assert.Equal(t, []float64{18, 45, 31, 42.5}, performance.Actual)
}
