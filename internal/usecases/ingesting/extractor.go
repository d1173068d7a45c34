package ingesting

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/TeuSpnl/comisys/internal/config"
	"github.com/TeuSpnl/comisys/internal/domain"
	"github.com/TeuSpnl/comisys/pkg/normalizer"
	"github.com/TeuSpnl/comisys/pkg/utils"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

// Colunas obrigatórias da planilha, já normalizadas
const (
	colDate     = "data"
	colAmount   = "valor total"
	colOrder    = "nº ped/ os/ prq"
	colSeller   = "vendedor"
	colCustomer = "cliente"
)

var requiredColumns = []string{colDate, colAmount, colOrder, colSeller, colCustomer}

// ExtractResult é o resultado da extração de uma planilha: linhas válidas e
// a contagem do que foi lido e descartado.
type ExtractResult struct {
	Records     []domain.SaleRecord
	RowsRead    int
	RowsDropped int
}

// Extractor lê planilhas de vendas exportadas do ERP. A planilha traz linhas
// de lixo antes do cabeçalho real, então a linha de cabeçalho é localizada
// pela coluna sentinela e tudo acima dela é ignorado.
type Extractor struct {
	headerSentinel    string
	excludedCustomers []string
}

func NewExtractor(cfg *config.Config) *Extractor {
	excluded := make([]string, 0, len(cfg.Ingestion.ExcludedCustomers))
	for _, customer := range cfg.Ingestion.ExcludedCustomers {
		excluded = append(excluded, normalizer.Normalize(customer))
	}

	return &Extractor{
		headerSentinel:    normalizer.Normalize(cfg.Ingestion.HeaderSentinel),
		excludedCustomers: excluded,
	}
}

// Extract lê a primeira aba da planilha e devolve as linhas de venda válidas.
// Linhas em branco, datas ou valores ilegíveis, células obrigatórias vazias e
// pedidos dos clientes excluídos são descartados e contados em RowsDropped.
func (e *Extractor) Extract(file io.Reader) (*ExtractResult, error) {
	workbook, err := excelize.OpenReader(file)
	if err != nil {
		return nil, err
	}
	defer workbook.Close()

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrHeaderNotFound
	}

	rows, err := workbook.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}

	headerIdx, columns, err := e.locateHeader(rows)
	if err != nil {
		return nil, err
	}

	result := &ExtractResult{}
	for _, row := range rows[headerIdx+1:] {
		if isBlankRow(row) {
			continue
		}

		result.RowsRead++

		record, ok := e.parseRow(row, columns)
		if !ok {
			result.RowsDropped++
			continue
		}

		result.Records = append(result.Records, record)
	}

	return result, nil
}

// locateHeader varre as linhas até achar a que contém a coluna sentinela e
// monta o mapa de nome normalizado -> índice de coluna.
func (e *Extractor) locateHeader(rows [][]string) (int, map[string]int, error) {
	for idx, row := range rows {
		columns := map[string]int{}
		found := false

		for colIdx, cell := range row {
			name := normalizer.Normalize(cell)
			if name == "" {
				continue
			}
			if _, exists := columns[name]; !exists {
				columns[name] = colIdx
			}
			if name == e.headerSentinel {
				found = true
			}
		}

		if !found {
			continue
		}

		var missing []string
		for _, required := range requiredColumns {
			if _, exists := columns[required]; !exists {
				missing = append(missing, required)
			}
		}
		if len(missing) > 0 {
			return 0, nil, &MissingColumnsError{Columns: missing}
		}

		return idx, columns, nil
	}

	return 0, nil, ErrHeaderNotFound
}

func (e *Extractor) parseRow(row []string, columns map[string]int) (domain.SaleRecord, bool) {
	date, err := parseDateCell(cellAt(row, columns[colDate]))
	if err != nil {
		logrus.Debugf("Linha descartada por data ilegível: %q", cellAt(row, columns[colDate]))
		return domain.SaleRecord{}, false
	}

	amount, err := parseAmountCell(cellAt(row, columns[colAmount]))
	if err != nil {
		logrus.Debugf("Linha descartada por valor ilegível: %q", cellAt(row, columns[colAmount]))
		return domain.SaleRecord{}, false
	}

	orderNumber := strings.TrimSpace(cellAt(row, columns[colOrder]))
	if orderNumber == "" {
		return domain.SaleRecord{}, false
	}

	sellerName := strings.TrimSpace(cellAt(row, columns[colSeller]))
	if sellerName == "" {
		logrus.Debugf("Linha descartada por vendedor vazio: pedido %q", orderNumber)
		return domain.SaleRecord{}, false
	}

	customer := strings.TrimSpace(cellAt(row, columns[colCustomer]))
	if customer == "" {
		logrus.Debugf("Linha descartada por cliente vazio: pedido %q", orderNumber)
		return domain.SaleRecord{}, false
	}
	if e.isExcludedCustomer(customer) {
		return domain.SaleRecord{}, false
	}

	return domain.SaleRecord{
		Date:        date,
		Amount:      amount,
		OrderNumber: orderNumber,
		SellerName:  sellerName,
		Customer:    customer,
	}, true
}

// isExcludedCustomer descarta pedidos internos entre as filiais da empresa,
// que não contam como venda de ninguém.
func (e *Extractor) isExcludedCustomer(customer string) bool {
	normalized := normalizer.Normalize(customer)
	for _, excluded := range e.excludedCustomers {
		if strings.Contains(normalized, excluded) {
			return true
		}
	}
	return false
}

func cellAt(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return row[idx]
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// parseDateCell aceita o formato dia/mês/ano da planilha e, como fallback, o
// formato ISO que o excelize devolve quando a célula é uma data tipada.
func parseDateCell(raw string) (time.Time, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return time.Time{}, errors.New("data vazia")
	}

	date, err := utils.ParseBRDate(value)
	if err == nil {
		return date, nil
	}

	return time.Parse("2006-01-02", strings.Fields(value)[0])
}

// parseAmountCell aceita tanto "1234.56" quanto o formato brasileiro
// "1.234,56", com ou sem o prefixo R$.
func parseAmountCell(raw string) (float64, error) {
	value := strings.TrimSpace(raw)
	value = strings.TrimPrefix(value, "R$")
	value = strings.TrimSpace(value)

	if strings.Contains(value, ",") {
		value = strings.ReplaceAll(value, ".", "")
		value = strings.ReplaceAll(value, ",", ".")
	}

	return strconv.ParseFloat(value, 64)
}
