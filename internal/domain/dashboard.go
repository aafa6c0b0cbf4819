package domain

import "time"

const (
	SummaryStatusCompleted  = "completed"
	SummaryStatusInProgress = "in_progress"
)

type Recommendation struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type Summary struct {
	Status          string           `json:"status"`
	CompletionRate  float64          `json:"completionRate"`
	Recommendations []Recommendation `json:"recommendations"`
}

// PerformanceComparison alimenta o radar: conversão, visita, margem e conclusão
type PerformanceComparison struct {
	Labels []string  `json:"labels"`
	Target []float64 `json:"target"`
	Actual []float64 `json:"actual"`
}

type Dashboard struct {
	Year      int               `json:"year"`
	Config    *StrategyConfig   `json:"config"`
	IsDefault bool              `json:"isDefault"`
	Totals    Totals            `json:"totals"`
	KPIs      KPIs              `json:"kpis"`
	Targets   *StrategicTargets `json:"targets"`
	// TargetsError lista os campos do plano que impediram o cálculo do funil; Targets fica nulo
	TargetsError []string              `json:"targetsError,omitempty"`
	Monthly      []MonthlyRollup       `json:"monthly"`
	Quarterly    []QuarterlyRollup     `json:"quarterly"`
	Funnel       Totals                `json:"funnel"`
	Performance  PerformanceComparison `json:"performance"`
	Summary      Summary               `json:"summary"`
}

type ExportMetrics struct {
	AnnualCompletion  float64 `json:"annualCompletion"`
	ConversionRate    float64 `json:"conversionRate"`
	VisitRate         float64 `json:"visitRate"`
	GrossMargin       float64 `json:"grossMargin"`
	TotalOutput       float64 `json:"totalOutput"`
	TotalProfit       float64 `json:"totalProfit"`
	TotalMeasurements int     `json:"totalMeasurements"`
	TotalVisits       int     `json:"totalVisits"`
	TotalSignings     int     `json:"totalSignings"`
}

type ExportCharts struct {
	MonthlyTrend       []MonthlyRollup   `json:"monthlyTrend"`
	QuarterlyBreakdown []QuarterlyRollup `json:"quarterlyBreakdown"`
	ConversionFunnel   Totals            `json:"conversionFunnel"`
}

type DashboardExport struct {
	Timestamp time.Time     `json:"timestamp"`
	Metrics   ExportMetrics `json:"metrics"`
	Charts    ExportCharts  `json:"charts"`
	Summary   Summary       `json:"summary"`
}
