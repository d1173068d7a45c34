package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected string
	}{
		{name: "Valor com milhar e centavo", value: 1234.5, expected: "R$ 1.234,50"},
		{name: "Valor abaixo de mil", value: 999.99, expected: "R$ 999,99"},
		{name: "Zero", value: 0, expected: "R$ 0,00"},
		{name: "Milhões agrupados", value: 1234567.89, expected: "R$ 1.234.567,89"},
		{name: "Valor negativo (estorno)", value: -1234.5, expected: "R$ -1.234,50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Currency(tt.value))
		})
	}
}

func TestPercentage(t *testing.T) {
	assert.Equal(t, "55,43%", Percentage(55.4321))
	assert.Equal(t, "0,00%", Percentage(0))
	assert.Equal(t, "100,00%", Percentage(100))
}
