package domain

import "time"

// WeeklyEntry é o lançamento semanal de um usuário. Imutável depois de criado.
type WeeklyEntry struct {
	ID           string    `json:"id"`
	UserID       int       `json:"userId"`
	Week         int       `json:"week"`
	Measurements int       `json:"measurements"`
	Visits       int       `json:"visits"`
	Signings     int       `json:"signings"`
	OutputValue  float64   `json:"outputValue"`
	GrossProfit  float64   `json:"grossProfit"`
	CreatedAt    time.Time `json:"createdAt"`
}

type WeeklyEntryInput struct {
	Week         *int     `json:"week"`
	Measurements *int     `json:"measurements"`
	Visits       *int     `json:"visits"`
	Signings     *int     `json:"signings"`
	OutputValue  *float64 `json:"outputValue"`
	GrossProfit  *float64 `json:"grossProfit"`
}

type EntryRates struct {
	ConversionRate float64 `json:"conversionRate"`
	VisitRate      float64 `json:"visitRate"`
	GrossMargin    float64 `json:"grossMargin"`
}

type WeeklyEntryView struct {
	*WeeklyEntry
	Rates EntryRates `json:"rates"`
}
