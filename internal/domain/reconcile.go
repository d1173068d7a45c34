package domain

import "time"

// ReconciliationPlan é o conjunto de mutações de uma passada de conciliação.
// O plano é calculado em memória e aplicado pelo repositório dentro de uma
// única transação, então nenhum leitor enxerga estado intermediário.
type ReconciliationPlan struct {
	Inserts   []ResolvedRecord
	DeleteIDs []int64

	Inserted int
	Updated  int
	Removed  int
}

// BuildReconciliationPlan aplica a semântica de "retrato completo da janela":
// cada upload substitui integralmente os meses que ele cobre.
//
//  1. Toda venda existente dentro da janela começa marcada para remoção.
//  2. Cada linha do upload faz upsert pela chave natural order_number: a linha
//     nova vence quando a data é estritamente posterior ou quando o valor
//     mudou (correção); vencer significa apagar a linha antiga e reinserir.
//     Linha idêntica à armazenada não vence, então reenviar o mesmo retrato
//     não gera nenhuma mutação.
//  3. Pedidos presentes no upload saem da marcação de remoção.
//  4. Vendas ainda marcadas são removidas: pedidos ausentes do novo retrato
//     são cancelamentos/devoluções integrais.
//  5. Varredura final: se sobrar mais de uma venda por order_number, fica só a
//     de data mais recente.
//
// existing deve conter todas as vendas da janela e também qualquer venda fora
// dela que compartilhe order_number com o upload.
func BuildReconciliationPlan(existing []*Sale, records []ResolvedRecord, window []MonthWindow) ReconciliationPlan {
	plan := ReconciliationPlan{}

	// Vendas da janela ficam pendentes de remoção até o upload confirmá-las
	pending := make(map[int64]bool)
	for _, sale := range existing {
		for _, w := range window {
			if w.Contains(sale.Date) {
				pending[sale.ID] = true
				break
			}
		}
	}

	existingByOrder := make(map[string][]*Sale)
	for _, sale := range existing {
		existingByOrder[sale.OrderNumber] = append(existingByOrder[sale.OrderNumber], sale)
	}

	deleted := make(map[int64]bool)
	insertByOrder := make(map[string]int) // order_number -> índice em plan.Inserts

	for _, rec := range records {
		// Upload com o mesmo pedido repetido: a linha mais recente vence
		if idx, ok := insertByOrder[rec.OrderNumber]; ok {
			prev := plan.Inserts[idx]
			if recWins(rec, prev.Date, prev.Amount) {
				plan.Inserts[idx] = rec
			}
			continue
		}

		group := existingByOrder[rec.OrderNumber]
		if len(group) == 0 {
			insertByOrder[rec.OrderNumber] = len(plan.Inserts)
			plan.Inserts = append(plan.Inserts, rec)
			plan.Inserted++
			continue
		}

		latest := latestSale(group)
		if recWins(rec, latest.Date, latest.Amount) {
			for _, sale := range group {
				if !deleted[sale.ID] {
					deleted[sale.ID] = true
					plan.DeleteIDs = append(plan.DeleteIDs, sale.ID)
				}
				delete(pending, sale.ID)
			}
			insertByOrder[rec.OrderNumber] = len(plan.Inserts)
			plan.Inserts = append(plan.Inserts, rec)
			plan.Updated++
			continue
		}

		// A versão armazenada prevalece; apenas confirma o pedido na janela
		for _, sale := range group {
			delete(pending, sale.ID)
		}
	}

	// Pedidos ausentes do retrato são devoluções integrais
	for _, sale := range existing {
		if pending[sale.ID] && !deleted[sale.ID] {
			deleted[sale.ID] = true
			plan.DeleteIDs = append(plan.DeleteIDs, sale.ID)
			plan.Removed++
		}
	}

	// Varredura de integridade: duplicatas remanescentes por order_number
	survivorsByOrder := make(map[string][]*Sale)
	for _, sale := range existing {
		if !deleted[sale.ID] {
			survivorsByOrder[sale.OrderNumber] = append(survivorsByOrder[sale.OrderNumber], sale)
		}
	}

	for _, group := range survivorsByOrder {
		if len(group) <= 1 {
			continue
		}
		keep := latestSale(group)
		for _, sale := range group {
			if sale.ID == keep.ID || deleted[sale.ID] {
				continue
			}
			deleted[sale.ID] = true
			plan.DeleteIDs = append(plan.DeleteIDs, sale.ID)
			plan.Removed++
		}
	}

	return plan
}

// recWins decide se a linha do upload substitui a versão armazenada: data
// estritamente posterior ou valor diferente (correção de pedido). Empate de
// data e valor mantém a venda armazenada, preservando a idempotência do
// reenvio.
func recWins(rec ResolvedRecord, storedDate time.Time, storedAmount float64) bool {
	return rec.Date.After(storedDate) || rec.Amount != storedAmount
}

func latestSale(group []*Sale) *Sale {
	latest := group[0]
	for _, sale := range group[1:] {
		if sale.Date.After(latest.Date) {
			latest = sale
		}
	}
	return latest
}
