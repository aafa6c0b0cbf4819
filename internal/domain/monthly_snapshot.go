package domain

import (
	"time"
)

// MonthlyKPISnapshot é o fechamento mensal armazenado pelo agendador
type MonthlyKPISnapshot struct {
	ID        int64         `json:"id"`
	UserID    int           `json:"userId"`
	Period    string        `json:"period"` // Período no formato mm-yyyy
	Totals    Totals        `json:"totals"`
	KPIs      KPIs          `json:"kpis"`
	Rollup    MonthlyRollup `json:"rollup"`
	Entries   int           `json:"entries"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}
