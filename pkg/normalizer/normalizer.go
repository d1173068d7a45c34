// Package normalizer canonicaliza nomes de vendedores para comparação entre
// o cadastro de usuários e os valores livres vindos da planilha.
package normalizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize devolve a forma canônica de um nome: sem acentos, minúsculo,
// sem espaços nas pontas e com espaços internos colapsados. É determinística
// e nunca falha; entradas inválidas passam pelo caminho sem transformação.
func Normalize(s string) string {
	out, _, err := transform.String(stripAccents, s)
	if err != nil {
		out = s
	}

	out = strings.ToLower(strings.TrimSpace(out))
	return strings.Join(strings.Fields(out), " ")
}

// Equal compara dois nomes pela forma canônica.
func Equal(a, b string) bool {
	return Normalize(a) == Normalize(b)
}
