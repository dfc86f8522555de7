package utils

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// FormatCurrency formata um valor com separador de milhar e o símbolo informado.
// Ex: FormatCurrency(d, "R", 2) => "R1,234.56"
func FormatCurrency(value decimal.Decimal, symbol string, places int32) string {
	negative := value.IsNegative()
	fixed := value.Abs().StringFixed(places)

	intPart := fixed
	fracPart := ""
	if idx := strings.IndexByte(fixed, '.'); idx >= 0 {
		intPart = fixed[:idx]
		fracPart = fixed[idx:]
	}

	// sinal depois do símbolo: R-1,234
	var sb strings.Builder
	sb.WriteString(symbol)
	if negative {
		sb.WriteByte('-')
	}
	for i, c := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(c)
	}
	sb.WriteString(fracPart)

	return sb.String()
}
