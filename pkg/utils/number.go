package utils

import (
	"fmt"
	"math"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return f
	}

	return math.Round(f*100) / 100
}

// Percentage retorna part/whole*100, ou 0 quando whole é zero
func Percentage(part, whole int) float64 {
	if whole > 0 {
		return float64(part) / float64(whole) * 100
	}
	return 0
}

// PercentageText formata part/whole*100 com duas casas ("60.00").
// Sem base de cálculo devolve "0", preservando o texto esperado pelas telas.
func PercentageText(part, whole int) string {
	if whole == 0 {
		return "0"
	}
	return fmt.Sprintf("%.2f", float64(part)/float64(whole)*100)
}

// SafeDivide divide a por b e devolve 0 quando b é zero
func SafeDivide(a, b float64) float64 {
	if b != 0 {
		return a / b
	}
	return 0
}
