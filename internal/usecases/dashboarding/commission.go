package dashboarding

import (
	"github.com/TeuSpnl/comisys/internal/domain"
	"github.com/TeuSpnl/comisys/pkg/utils"
)

// commissionFor calcula comissão e bônus de um vendedor. A taxa base pode ser
// promovida pelo desempenho da filial inteira (caso da Oficina); o bônus por
// degrau olha apenas o total individual do vendedor.
func commissionFor(table domain.BranchRateTable, sellerTotal, branchTotal float64) domain.CommissionResult {
	rate := table.BaseRate
	if table.UpgradeThreshold > 0 && branchTotal >= table.UpgradeThreshold {
		rate = table.UpgradeRate
	}

	bonusRate := table.BonusRateFor(sellerTotal)

	return domain.CommissionResult{
		CommissionRate: rate,
		BonusRate:      bonusRate,
		Commission:     utils.RoundWithTwoDecimalPlace(sellerTotal * rate),
		Bonus:          utils.RoundWithTwoDecimalPlace(sellerTotal * bonusRate),
	}
}

// percentageOfGoal devolve o progresso em pontos percentuais; meta zero ou
// ausente resulta em 0 em vez de divisão por zero.
func percentageOfGoal(total, goal float64) float64 {
	if goal <= 0 {
		return 0
	}
	return utils.RoundWithTwoDecimalPlace(total / goal * 100)
}
