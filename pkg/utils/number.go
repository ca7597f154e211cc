package utils

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// FormatMoney formata com separador de milhar e duas casas: 1234.5 -> 1,234.50
func FormatMoney(f float64) string {
	return printer.Sprintf("%.2f", f)
}

// FormatInteger formata com separador de milhar: 1234567 -> 1,234,567
func FormatInteger(n int64) string {
	return printer.Sprintf("%d", n)
}

// Mean devolve 0 para lista vazia
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return Sum(values) / float64(len(values))
}

func Sum(values []float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	return total
}

func MinMax(values []float64) (float64, float64) {
	if len(values) == 0 {
		return 0, 0
	}

	lowest, highest := values[0], values[0]
	for _, v := range values[1:] {
		lowest = math.Min(lowest, v)
		highest = math.Max(highest, v)
	}
	return lowest, highest
}
