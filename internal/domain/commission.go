package domain

import "sort"

// BonusTier é um degrau de bônus: atingiu o limiar, ganha a taxa. Os degraus
// não são cumulativos; vale apenas o maior limiar atingido.
type BonusTier struct {
	Threshold float64 `json:"threshold"`
	Rate      float64 `json:"rate"`
}

// BranchRateTable descreve as regras de comissionamento de uma filial.
// UpgradeThreshold zero significa que a filial não tem taxa promovida.
type BranchRateTable struct {
	BaseRate         float64     `json:"base_rate"`
	UpgradeRate      float64     `json:"upgrade_rate"`
	UpgradeThreshold float64     `json:"upgrade_threshold"`
	BonusTiers       []BonusTier `json:"bonus_tiers"`
}

// CommissionTables mapeia filial -> tabela de taxas.
type CommissionTables map[string]BranchRateTable

// CommissionResult é o resultado do cálculo de comissão de um vendedor.
type CommissionResult struct {
	CommissionRate float64 `json:"commission_rate"`
	BonusRate      float64 `json:"bonus_rate"`
	Commission     float64 `json:"commission"`
	Bonus          float64 `json:"bonus"`
}

// BonusRateFor devolve a taxa do maior degrau atingido pelo total de vendas.
func (t BranchRateTable) BonusRateFor(totalSales float64) float64 {
	tiers := make([]BonusTier, len(t.BonusTiers))
	copy(tiers, t.BonusTiers)
	sort.Slice(tiers, func(i, j int) bool {
		return tiers[i].Threshold > tiers[j].Threshold
	})

	for _, tier := range tiers {
		if totalSales >= tier.Threshold {
			return tier.Rate
		}
	}
	return 0
}
