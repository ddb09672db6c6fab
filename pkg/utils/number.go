package utils

import (
	"math"
	"strconv"
)

// FractionToPercentage converte uma fração [0,1] em porcentagem sem arredondar
func FractionToPercentage(f float64) float64 {
	return f * 100
}

// FormatFloat usa a menor representação que preserva o valor exato.
// Valores inteiros mantêm uma casa decimal (70 vira "70.0").
func FormatFloat(f float64) string {
	if !math.IsInf(f, 0) && f == math.Trunc(f) {
		return strconv.FormatFloat(f, 'f', 1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
