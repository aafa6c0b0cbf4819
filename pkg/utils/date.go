package utils

import (
	"fmt"
	"time"
)

// MonthKey formata a chave de agrupamento mensal (YYYY-MM)
func MonthKey(t time.Time) string {
	return t.UTC().Format("2006-01")
}

// Period formata o período no padrão mm-yyyy usado pelos fechamentos
func Period(t time.Time) string {
	return fmt.Sprintf("%02d-%04d", int(t.Month()), t.Year())
}

// ParsePeriod converte mm-yyyy para o primeiro instante do mês em UTC
func ParsePeriod(period string) (time.Time, error) {
	t, err := time.Parse("01-2006", period)
	if err != nil {
		return time.Time{}, fmt.Errorf("período inválido %q, use mm-yyyy: %w", period, err)
	}

	return t, nil
}

// MonthBounds devolve o início do mês e o início do mês seguinte
func MonthBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}
