// Package format produz as representações pt-BR de moeda e percentual usadas
// nos painéis (separador de milhar "." e vírgula decimal).
package format

import (
	"strconv"
	"strings"
)

// Currency formata um valor como "R$ 1.234,56".
func Currency(value float64) string {
	return "R$ " + decimalComma(value)
}

// Percentage formata um valor como "55,43%".
func Percentage(value float64) string {
	return decimalComma(value) + "%"
}

func decimalComma(value float64) string {
	raw := strconv.FormatFloat(value, 'f', 2, 64)

	sign := ""
	if strings.HasPrefix(raw, "-") {
		sign = "-"
		raw = raw[1:]
	}

	parts := strings.SplitN(raw, ".", 2)
	return sign + groupThousands(parts[0]) + "," + parts[1]
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(".")
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
