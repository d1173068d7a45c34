package ingesting

import (
	"bytes"
	"testing"
	"time"

	"github.com/TeuSpnl/comisys/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func testConfig() *config.Config {
	return &config.Config{
		Ingestion: config.Ingestion{
			HeaderSentinel:    "data",
			ExcludedCustomers: []string{"comagro", "comagro oficina"},
		},
	}
}

// buildWorkbook monta uma planilha em memória com as linhas fornecidas
func buildWorkbook(t *testing.T, rows [][]any) *bytes.Reader {
	t.Helper()

	workbook := excelize.NewFile()
	sheet := workbook.GetSheetName(0)

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, workbook.SetSheetRow(sheet, cell, &row))
	}

	buf, err := workbook.WriteToBuffer()
	require.NoError(t, err)
	require.NoError(t, workbook.Close())

	return bytes.NewReader(buf.Bytes())
}

func TestExtractorExtract(t *testing.T) {
	extractor := NewExtractor(testConfig())

	// Planilha no formato do ERP: linhas de lixo antes do cabeçalho real
	file := buildWorkbook(t, [][]any{
		{"Relatório de Vendas"},
		{"Período: Janeiro/2024"},
		{},
		{"Data", "Valor Total", "Nº Ped/ OS/ PRQ", "Vendedor", "Cliente"},
		{"02/01/2024", "1.234,56", "P100", "José da Silva", "Cliente Bom"},
		{"05/01/2024", "500,00", "P101", "Maria Souza", "COMAGRO PEÇAS E SERVIÇOS"},
		{"data ruim", "100,00", "P102", "Maria Souza", "Outro Cliente"},
		{"15/01/2024", "1500.50", "P103", "Maria Souza", "Outro Cliente"},
		{},
		{"20/01/2024", "abc", "P104", "José da Silva", "Outro Cliente"},
		{"21/01/2024", "50,00", "P105", "", "Cliente Sem Dono"},
		{"22/01/2024", "60,00", "P106", "Maria Souza", ""},
	})

	result, err := extractor.Extract(file)
	require.NoError(t, err)

	// Descartadas: data ruim, valor ilegível, vendedor vazio e cliente vazio;
	// a linha do COMAGRO cai pela exclusão de cliente interno
	assert.Equal(t, 7, result.RowsRead)
	assert.Equal(t, 5, result.RowsDropped)
	require.Len(t, result.Records, 2)

	first := result.Records[0]
	assert.Equal(t, time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC), first.Date)
	assert.Equal(t, 1234.56, first.Amount)
	assert.Equal(t, "P100", first.OrderNumber)
	assert.Equal(t, "José da Silva", first.SellerName)

	second := result.Records[1]
	assert.Equal(t, 1500.50, second.Amount)
	assert.Equal(t, "P103", second.OrderNumber)
}

func TestExtractorExtractHeaderNotFound(t *testing.T) {
	extractor := NewExtractor(testConfig())

	file := buildWorkbook(t, [][]any{
		{"Relatório de Vendas"},
		{"Valor", "Pedido", "Cliente"},
		{"100,00", "P1", "Fulano"},
	})

	_, err := extractor.Extract(file)
	assert.ErrorIs(t, err, ErrHeaderNotFound)
}

func TestExtractorExtractMissingColumns(t *testing.T) {
	extractor := NewExtractor(testConfig())

	// Cabeçalho encontrado (tem a coluna sentinela), mas incompleto
	file := buildWorkbook(t, [][]any{
		{"Data", "Vendedor"},
		{"02/01/2024", "José"},
	})

	_, err := extractor.Extract(file)

	var missingErr *MissingColumnsError
	require.ErrorAs(t, err, &missingErr)
	assert.ElementsMatch(t, []string{"valor total", "nº ped/ os/ prq", "cliente"}, missingErr.Columns)
}

func TestExtractorHeaderMatchingIgnoresCaseAndAccents(t *testing.T) {
	extractor := NewExtractor(testConfig())

	file := buildWorkbook(t, [][]any{
		{"DATA", "VALOR TOTAL", "nº ped/ os/ prq", "VENDEDOR", "CLIENTE"},
		{"02/01/2024", "10,00", "P1", "Ana", "Cliente"},
	})

	result, err := extractor.Extract(file)
	require.NoError(t, err)
	assert.Len(t, result.Records, 1)
}

func TestParseAmountCell(t *testing.T) {
	tests := []struct {
		raw      string
		expected float64
	}{
		{"1234.56", 1234.56},
		{"1.234,56", 1234.56},
		{"R$ 1.234,56", 1234.56},
		{"500,00", 500},
		{"42", 42},
	}

	for _, tt := range tests {
		amount, err := parseAmountCell(tt.raw)
		require.NoError(t, err, tt.raw)
		assert.Equal(t, tt.expected, amount, tt.raw)
	}

	_, err := parseAmountCell("abc")
	assert.Error(t, err)

	_, err = parseAmountCell("")
	assert.Error(t, err)
}
