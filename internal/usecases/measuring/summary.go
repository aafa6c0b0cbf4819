package measuring

import "github.com/vfg2006/strategy-dashboard-api/internal/domain"

// Limites abaixo dos quais uma recomendação é emitida
const (
	MinConversionRate   = 20.0
	MinVisitRate        = 35.0
	MinGrossMargin      = 30.0
	MinAnnualCompletion = 80.0
)

const (
	RecommendationLowConversion = "LOW_CONVERSION_RATE"
	RecommendationLowVisit      = "LOW_VISIT_RATE"
	RecommendationLowMargin     = "LOW_GROSS_MARGIN"
	RecommendationLowCompletion = "LOW_ANNUAL_COMPLETION"
)

func Summary(kpis domain.KPIs) domain.Summary {
	status := domain.SummaryStatusInProgress
	if kpis.AnnualCompletion >= 100 {
		status = domain.SummaryStatusCompleted
	}

	return domain.Summary{
		Status:          status,
		CompletionRate:  kpis.AnnualCompletion,
		Recommendations: Recommendations(kpis),
	}
}

func Recommendations(kpis domain.KPIs) []domain.Recommendation {
	recommendations := make([]domain.Recommendation, 0)

	if kpis.ConversionRate.Actual < MinConversionRate {
		recommendations = append(recommendations, domain.Recommendation{
			Code:    RecommendationLowConversion,
			Message: "Taxa de conversão baixa, otimize o processo de vendas e o acompanhamento dos clientes",
		})
	}

	if kpis.VisitRate.Actual < MinVisitRate {
		recommendations = append(recommendations, domain.Recommendation{
			Code:    RecommendationLowVisit,
			Message: "Taxa de visita baixa, melhore a qualidade das medições e a comunicação com o cliente",
		})
	}

	if kpis.GrossMargin.Actual < MinGrossMargin {
		recommendations = append(recommendations, domain.Recommendation{
			Code:    RecommendationLowMargin,
			Message: "Margem bruta baixa, revise o controle de custos e a estratégia de preços",
		})
	}

	if kpis.AnnualCompletion < MinAnnualCompletion {
		recommendations = append(recommendations, domain.Recommendation{
			Code:    RecommendationLowCompletion,
			Message: "Conclusão anual baixa, aumente o investimento em marketing e os incentivos da equipe",
		})
	}

	return recommendations
}

// Performance monta a comparação meta x realizado na ordem
// conversão, visita, margem e conclusão anual.
func Performance(kpis domain.KPIs) domain.PerformanceComparison {
	return domain.PerformanceComparison{
		Labels: []string{"conversionRate", "visitRate", "grossMargin", "annualCompletion"},
		Target: []float64{
			kpis.ConversionRate.Target,
			kpis.VisitRate.Target,
			kpis.GrossMargin.Target,
			100,
		},
		Actual: []float64{
			kpis.ConversionRate.Actual,
			kpis.VisitRate.Actual,
			kpis.GrossMargin.Actual,
			kpis.AnnualCompletion,
		},
	}
}
