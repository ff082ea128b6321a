package utils

import "github.com/shopspring/decimal"

func RoundWithTwoDecimalPlace(f float64) float64 {
	return Round(f, 2)
}

// Round arredonda usando decimal para evitar erros de representação (ex.: 2.675)
func Round(f float64, places int32) float64 {
	if f == 0 {
		return 0
	}

	return decimal.NewFromFloat(f).Round(places).InexactFloat64()
}

// Money converte um decimal para float com duas casas
func Money(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
