package utils

import (
	"math"

	"github.com/shopspring/decimal"
)

// RoundWithOneDecimalPlace arredonda meio para cima com uma casa decimal.
// Usa a representação decimal do número para que 0.05 vire 0.1.
func RoundWithOneDecimalPlace(f float64) float64 {
	if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}

	rounded, _ := decimal.NewFromFloat(f).Round(1).Float64()
	return rounded
}

// Percentage calcula part/whole*100, zero quando whole não é positivo
func Percentage(part, whole float64) float64 {
	if whole <= 0 {
		return 0
	}

	return part / whole * 100
}
