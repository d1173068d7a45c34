package normalizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Nome acentuado vira forma sem acentos e minúscula",
			input:    "José da Silva",
			expected: "jose da silva",
		},
		{
			name:     "Maiúsculas da planilha produzem a mesma forma canônica",
			input:    "JOSE DA SILVA",
			expected: "jose da silva",
		},
		{
			name:     "Espaços nas pontas e internos são colapsados",
			input:    "  Maria   Conceição ",
			expected: "maria conceicao",
		},
		{
			name:     "Cedilha e til são decompostos",
			input:    "João Gonçalves",
			expected: "joao goncalves",
		},
		{
			name:     "String vazia permanece vazia",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestNormalizeIsStable(t *testing.T) {
	input := "André Luís de Assunção"

	first := Normalize(input)
	second := Normalize(first)

	// Normalizar duas vezes não muda o resultado
	assert.Equal(t, first, second)
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal("José da Silva", "JOSE DA SILVA"))
	assert.False(t, Equal("José da Silva", "José de Souza"))
}
