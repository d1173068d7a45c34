package ingesting

import (
	"errors"
	"fmt"
	"strings"
)

// Erros de ingestão de planilha
var (
	ErrHeaderNotFound   = errors.New("linha de cabeçalho não encontrada na planilha")
	ErrUploadInProgress = errors.New("já existe uma conciliação em andamento")
	ErrEmptySpreadsheet = errors.New("planilha sem linhas válidas")
)

// MissingColumnsError indica que o cabeçalho foi encontrado mas colunas
// obrigatórias estão ausentes.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("colunas obrigatórias ausentes na planilha: %s", strings.Join(e.Columns, ", "))
}

// ReconciliationError envolve uma falha durante a aplicação da conciliação.
// A transação já foi revertida quando este erro é devolvido.
type ReconciliationError struct {
	Err error
}

func (e *ReconciliationError) Error() string {
	return fmt.Sprintf("conciliação revertida: %v", e.Err)
}

func (e *ReconciliationError) Unwrap() error {
	return e.Err
}
