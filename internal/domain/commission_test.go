package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBranchRateTableBonusRateFor(t *testing.T) {
	table := BranchRateTable{
		BaseRate: 0.01,
		BonusTiers: []BonusTier{
			{Threshold: 225000, Rate: 0.006},
			{Threshold: 170000, Rate: 0.004},
			{Threshold: 130000, Rate: 0.003},
		},
	}

	tests := []struct {
		name       string
		totalSales float64
		expected   float64
	}{
		{"Abaixo do primeiro degrau não há bônus", 50000, 0},
		{"Exatamente no limiar ganha a taxa do degrau", 130000, 0.003},
		{"Entre degraus vale o degrau inferior", 200000, 0.004},
		{"Acima do maior degrau vale a maior taxa", 300000, 0.006},
		{"Degraus não acumulam", 225000, 0.006},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, table.BonusRateFor(tt.totalSales))
		})
	}
}

func TestBranchRateTableBonusRateForUnsortedTiers(t *testing.T) {
	// A ordem dos degraus na configuração não importa
	table := BranchRateTable{
		BonusTiers: []BonusTier{
			{Threshold: 130000, Rate: 0.003},
			{Threshold: 225000, Rate: 0.006},
			{Threshold: 170000, Rate: 0.004},
		},
	}

	assert.Equal(t, 0.006, table.BonusRateFor(250000))
	assert.Equal(t, 0.003, table.BonusRateFor(135000))
}

func TestMonthWindowContains(t *testing.T) {
	w := MonthWindow{Year: 2024, Month: 1}

	assert.True(t, w.Contains(date(2024, 1, 1)))
	assert.True(t, w.Contains(date(2024, 1, 31)))
	assert.False(t, w.Contains(date(2024, 2, 1)))
	assert.False(t, w.Contains(date(2023, 1, 15)))
}
