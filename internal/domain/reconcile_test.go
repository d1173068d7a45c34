package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func record(orderNumber string, day time.Time, amount float64) ResolvedRecord {
	return ResolvedRecord{
		SaleRecord: SaleRecord{
			Date:        day,
			Amount:      amount,
			OrderNumber: orderNumber,
		},
	}
}

func sale(id int64, orderNumber string, day time.Time, amount float64) *Sale {
	return &Sale{
		ID:          id,
		Date:        day,
		Amount:      amount,
		OrderNumber: orderNumber,
	}
}

func TestBuildReconciliationPlan(t *testing.T) {
	window := []MonthWindow{{Year: 2024, Month: time.January}}

	tests := []struct {
		name     string
		existing []*Sale
		records  []ResolvedRecord
		validate func(t *testing.T, plan ReconciliationPlan)
	}{
		{
			name:     "Banco vazio - todas as linhas viram inserções",
			existing: nil,
			records: []ResolvedRecord{
				record("100", date(2024, time.January, 2), 150),
				record("101", date(2024, time.January, 3), 300),
			},
			validate: func(t *testing.T, plan ReconciliationPlan) {
				assert.Len(t, plan.Inserts, 2)
				assert.Empty(t, plan.DeleteIDs)
				assert.Equal(t, 2, plan.Inserted)
				assert.Equal(t, 0, plan.Updated)
				assert.Equal(t, 0, plan.Removed)
			},
		},
		{
			name: "Pedido com data posterior substitui a versão armazenada",
			existing: []*Sale{
				sale(1, "123", date(2024, time.January, 1), 100),
			},
			records: []ResolvedRecord{
				record("123", date(2024, time.January, 5), 150),
			},
			validate: func(t *testing.T, plan ReconciliationPlan) {
				assert.Equal(t, []int64{1}, plan.DeleteIDs)
				assert.Len(t, plan.Inserts, 1)
				assert.Equal(t, 150.0, plan.Inserts[0].Amount)
				assert.Equal(t, date(2024, time.January, 5), plan.Inserts[0].Date)
				assert.Equal(t, 0, plan.Inserted)
				assert.Equal(t, 1, plan.Updated)
				assert.Equal(t, 0, plan.Removed)
			},
		},
		{
			name: "Pedido ausente do novo retrato é devolução integral",
			existing: []*Sale{
				sale(1, "456", date(2024, time.January, 10), 200),
				sale(2, "789", date(2024, time.January, 11), 80),
			},
			records: []ResolvedRecord{
				record("789", date(2024, time.January, 11), 80),
			},
			validate: func(t *testing.T, plan ReconciliationPlan) {
				assert.Equal(t, []int64{1}, plan.DeleteIDs)
				assert.Empty(t, plan.Inserts)
				assert.Equal(t, 1, plan.Removed)
			},
		},
		{
			name: "Mesma data e valor - versão armazenada prevalece sem mutação",
			existing: []*Sale{
				sale(1, "555", date(2024, time.January, 8), 120),
			},
			records: []ResolvedRecord{
				record("555", date(2024, time.January, 1), 120),
			},
			validate: func(t *testing.T, plan ReconciliationPlan) {
				assert.Empty(t, plan.DeleteIDs)
				assert.Empty(t, plan.Inserts)
				assert.Equal(t, 0, plan.Inserted)
				assert.Equal(t, 0, plan.Updated)
				assert.Equal(t, 0, plan.Removed)
			},
		},
		{
			name: "Valor diferente é correção mesmo com data anterior",
			existing: []*Sale{
				sale(1, "555", date(2024, time.January, 8), 120),
			},
			records: []ResolvedRecord{
				record("555", date(2024, time.January, 1), 99),
			},
			validate: func(t *testing.T, plan ReconciliationPlan) {
				assert.Equal(t, []int64{1}, plan.DeleteIDs)
				assert.Len(t, plan.Inserts, 1)
				assert.Equal(t, 99.0, plan.Inserts[0].Amount)
				assert.Equal(t, 1, plan.Updated)
			},
		},
		{
			name: "Pedido repetido no upload - a linha mais recente vence",
			existing: []*Sale{
				sale(1, "777", date(2024, time.January, 2), 50),
			},
			records: []ResolvedRecord{
				record("777", date(2024, time.January, 3), 60),
				record("777", date(2024, time.January, 9), 75),
			},
			validate: func(t *testing.T, plan ReconciliationPlan) {
				assert.Equal(t, []int64{1}, plan.DeleteIDs)
				assert.Len(t, plan.Inserts, 1)
				assert.Equal(t, 75.0, plan.Inserts[0].Amount)
			},
		},
		{
			name: "Duplicatas remanescentes - fica só a de data mais recente",
			existing: []*Sale{
				sale(1, "888", date(2024, time.January, 2), 100),
				sale(2, "888", date(2024, time.January, 9), 100),
			},
			records: []ResolvedRecord{
				record("888", date(2024, time.January, 2), 100),
			},
			validate: func(t *testing.T, plan ReconciliationPlan) {
				// O upload confirma o pedido; a varredura final remove a cópia antiga
				assert.Equal(t, []int64{1}, plan.DeleteIDs)
				assert.Empty(t, plan.Inserts)
				assert.Equal(t, 1, plan.Removed)
			},
		},
		{
			name: "Venda fora da janela não é removida por ausência",
			existing: []*Sale{
				sale(1, "999", date(2023, time.December, 20), 400),
			},
			records: []ResolvedRecord{
				record("111", date(2024, time.January, 5), 10),
			},
			validate: func(t *testing.T, plan ReconciliationPlan) {
				assert.Empty(t, plan.DeleteIDs)
				assert.Len(t, plan.Inserts, 1)
				assert.Equal(t, 0, plan.Removed)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := BuildReconciliationPlan(tt.existing, tt.records, window)
			tt.validate(t, plan)
		})
	}
}

// Reaplicar o mesmo upload sobre o estado resultante não gera mutações novas.
func TestBuildReconciliationPlan_Idempotence(t *testing.T) {
	window := []MonthWindow{{Year: 2024, Month: time.January}}

	records := []ResolvedRecord{
		record("100", date(2024, time.January, 2), 150),
		record("200", date(2024, time.January, 7), 300),
	}

	first := BuildReconciliationPlan(nil, records, window)
	assert.Equal(t, 2, first.Inserted)

	// Estado após aplicar a primeira passada
	var existing []*Sale
	for i, rec := range first.Inserts {
		existing = append(existing, sale(int64(i+1), rec.OrderNumber, rec.Date, rec.Amount))
	}

	second := BuildReconciliationPlan(existing, records, window)
	assert.Empty(t, second.Inserts)
	assert.Empty(t, second.DeleteIDs)
	assert.Equal(t, 0, second.Inserted)
	assert.Equal(t, 0, second.Updated)
	assert.Equal(t, 0, second.Removed)
}

func TestBuildReconciliationPlan_MultiMonthWindow(t *testing.T) {
	window := []MonthWindow{
		{Year: 2024, Month: time.January},
		{Year: 2024, Month: time.February},
	}

	existing := []*Sale{
		sale(1, "jan", date(2024, time.January, 15), 100),
		sale(2, "fev", date(2024, time.February, 10), 200),
	}

	records := []ResolvedRecord{
		record("jan", date(2024, time.January, 15), 100),
	}

	plan := BuildReconciliationPlan(existing, records, window)

	// O upload cobre os dois meses, então o pedido de fevereiro ausente sai
	assert.Equal(t, []int64{2}, plan.DeleteIDs)
	assert.Equal(t, 1, plan.Removed)
}
