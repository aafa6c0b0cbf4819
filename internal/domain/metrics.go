package domain

type Totals struct {
	Measurements int     `json:"measurements"`
	Visits       int     `json:"visits"`
	Signings     int     `json:"signings"`
	Output       float64 `json:"output"`
	Profit       float64 `json:"profit"`
}

type RateKPI struct {
	Target float64 `json:"target"`
	Actual float64 `json:"actual"`
}

type KPIs struct {
	ConversionRate   RateKPI `json:"conversionRate"`
	VisitRate        RateKPI `json:"visitRate"`
	GrossMargin      RateKPI `json:"grossMargin"`
	AnnualTarget     float64 `json:"annualTarget"`
	AnnualActual     float64 `json:"annualActual"`
	AnnualCompletion float64 `json:"annualCompletion"`
}

// MonthlyRollup agrega os lançamentos de um mês civil (chave YYYY-MM)
type MonthlyRollup struct {
	Month        string  `json:"month"`
	ActualOutput float64 `json:"actualOutput"`
	ActualProfit float64 `json:"actualProfit"`
	TargetOutput float64 `json:"targetOutput"`
	TargetProfit float64 `json:"targetProfit"`
	Completion   float64 `json:"completion"`
	GrossMargin  float64 `json:"grossMargin"`
}

type QuarterlyRollup struct {
	Quarter    Quarter `json:"quarter"`
	Target     float64 `json:"target"`
	Weight     float64 `json:"weight"`
	Actual     float64 `json:"actual"`
	Completion float64 `json:"completion"`
}

// FunnelTargets é o volume necessário em cada etapa do funil para bater a meta
type FunnelTargets struct {
	RequiredLeads    int64 `json:"totalLeads"`
	RequiredVisits   int64 `json:"totalVisits"`
	RequiredSignings int64 `json:"totalSignings"`
}

type QuarterFunnel struct {
	Quarter Quarter       `json:"quarter"`
	Target  float64       `json:"target"`
	Funnel  FunnelTargets `json:"funnel"`
}

type StrategicTargets struct {
	AnnualTarget float64         `json:"annualTarget"`
	Annual       FunnelTargets   `json:"annual"`
	Quarters     []QuarterFunnel `json:"quarters"`
}
