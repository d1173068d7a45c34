package dashboarding

import (
	"testing"

	"github.com/TeuSpnl/comisys/internal/domain"
	"github.com/stretchr/testify/assert"
)

var lojaTable = domain.BranchRateTable{
	BaseRate: 0.01,
	BonusTiers: []domain.BonusTier{
		{Threshold: 225000, Rate: 0.006},
		{Threshold: 170000, Rate: 0.004},
		{Threshold: 130000, Rate: 0.003},
	},
}

var oficinaTable = domain.BranchRateTable{
	BaseRate:         0.005,
	UpgradeRate:      0.01,
	UpgradeThreshold: 500000,
}

func TestCommissionForLoja(t *testing.T) {
	tests := []struct {
		name               string
		sellerTotal        float64
		expectedCommission float64
		expectedBonus      float64
	}{
		{"Vendedor abaixo de todos os degraus só tem a comissão base", 50000, 500, 0},
		{"Vendedor no degrau mais alto ganha comissão e bônus", 225000, 2250, 1350},
		{"Vendedor no degrau intermediário", 180000, 1800, 720},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := commissionFor(lojaTable, tt.sellerTotal, 0)

			assert.Equal(t, 0.01, result.CommissionRate)
			assert.Equal(t, tt.expectedCommission, result.Commission)
			assert.Equal(t, tt.expectedBonus, result.Bonus)
		})
	}
}

func TestCommissionForOficina(t *testing.T) {
	t.Run("Filial abaixo do limiar usa a taxa base", func(t *testing.T) {
		result := commissionFor(oficinaTable, 100000, 400000)

		assert.Equal(t, 0.005, result.CommissionRate)
		assert.Equal(t, 500.0, result.Commission)
		assert.Equal(t, 0.0, result.Bonus)
	})

	t.Run("Filial no limiar promove a taxa de todos os vendedores", func(t *testing.T) {
		result := commissionFor(oficinaTable, 100000, 500000)

		assert.Equal(t, 0.01, result.CommissionRate)
		assert.Equal(t, 1000.0, result.Commission)
	})
}

func TestPercentageOfGoal(t *testing.T) {
	assert.Equal(t, 55.43, percentageOfGoal(55430, 100000))
	assert.Equal(t, 120.0, percentageOfGoal(120000, 100000))

	// Meta zero ou ausente nunca divide por zero
	assert.Equal(t, 0.0, percentageOfGoal(50000, 0))
	assert.Equal(t, 0.0, percentageOfGoal(0, 0))
}
