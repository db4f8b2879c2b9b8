package domain

import "github.com/shopspring/decimal"

// RevenueBreakdown separa a receita dos pedidos pagos nas quatro divisões de negócio.
// Os campos de lucro existem para manter o formato de saída; o custo não é modelado,
// então permanecem sempre zerados.
type RevenueBreakdown struct {
	IncomeFromRepairs  decimal.Decimal `json:"incomeFromRepairs"`
	IncomeFromServices decimal.Decimal `json:"incomeFromServices"`
	IncomeFromProducts decimal.Decimal `json:"incomeFromProducts"`
	IncomeFromCustom   decimal.Decimal `json:"incomeFromCustom"`
	TotalIncome        decimal.Decimal `json:"totalIncome"`
	ProfitFromRepairs  decimal.Decimal `json:"profitFromRepairs"`
	ProfitFromServices decimal.Decimal `json:"profitFromServices"`
	ProfitFromProducts decimal.Decimal `json:"profitFromProducts"`
	ProfitFromCustom   decimal.Decimal `json:"profitFromCustom"`
	TotalProfit        decimal.Decimal `json:"totalProfit"`
}

// ClassifyRevenue soma price*quantity de cada item de pedido pago no bucket do seu tipo.
// Pedidos com status diferente de PAID são ignorados.
func ClassifyRevenue(orders []*Order) RevenueBreakdown {
	buckets := map[ItemType]decimal.Decimal{
		ItemTypeRepair:  decimal.Zero,
		ItemTypeService: decimal.Zero,
		ItemTypeProduct: decimal.Zero,
		ItemTypeCustom:  decimal.Zero,
	}

	for _, order := range orders {
		if order == nil || order.Status != OrderStatusPaid {
			continue
		}
		for _, item := range order.Items {
			t := item.Type()
			buckets[t] = buckets[t].Add(item.Total())
		}
	}

	breakdown := RevenueBreakdown{
		IncomeFromRepairs:  buckets[ItemTypeRepair],
		IncomeFromServices: buckets[ItemTypeService],
		IncomeFromProducts: buckets[ItemTypeProduct],
		IncomeFromCustom:   buckets[ItemTypeCustom],
	}
	breakdown.TotalIncome = breakdown.IncomeFromRepairs.
		Add(breakdown.IncomeFromServices).
		Add(breakdown.IncomeFromProducts).
		Add(breakdown.IncomeFromCustom)

	return breakdown
}
