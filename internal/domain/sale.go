package domain

import "time"

// Sale é um pedido atribuído a um vendedor. UserID é nulo quando o nome do
// vendedor da planilha não foi reconhecido; a venda continua valendo para os
// totais da empresa.
type Sale struct {
	ID          int64     `json:"id"`
	Date        time.Time `json:"date"`
	Amount      float64   `json:"amount"`
	UserID      *int      `json:"user_id"`
	OrderNumber string    `json:"order_number"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SaleRecord é uma linha validada extraída da planilha de vendas.
type SaleRecord struct {
	Date        time.Time
	Amount      float64
	OrderNumber string
	SellerName  string
	Customer    string
}

// ResolvedRecord é um SaleRecord com o vendedor já resolvido para um usuário.
type ResolvedRecord struct {
	SaleRecord
	UserID *int
}

// MonthWindow identifica um mês de apuração.
type MonthWindow struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

// Contains verifica se a data cai dentro da janela.
func (w MonthWindow) Contains(date time.Time) bool {
	return date.Year() == w.Year && date.Month() == w.Month
}

// ReconciliationReport resume uma passada de conciliação de planilha.
type ReconciliationReport struct {
	BatchID          string        `json:"batch_id"`
	Window           []MonthWindow `json:"window"`
	RowsRead         int           `json:"rows_read"`
	RowsDropped      int           `json:"rows_dropped"`
	Inserted         int           `json:"inserted"`
	Updated          int           `json:"updated"`
	Removed          int           `json:"removed"`
	UnmatchedSellers []string      `json:"unmatched_sellers"`
}
