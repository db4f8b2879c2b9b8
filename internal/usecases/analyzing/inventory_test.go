package analyzing

import (
	"math"
	"testing"

	"github.com/repairdesk/backoffice-analytics/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReduceItems_EstoqueBaixo(t *testing.T) {
	tests := []struct {
		name       string
		stock      int
		lowStock   int
		outOfStock int
		value      string
	}{
		{name: "estoque zerado é baixo e esgotado com valor zero", stock: 0, lowStock: 1, outOfStock: 1, value: "0"},
		{name: "estoque 3 é baixo mas não esgotado", stock: 3, lowStock: 1, outOfStock: 0, value: "30"},
		{name: "estoque 5 ainda é baixo", stock: 5, lowStock: 1, outOfStock: 0, value: "50"},
		{name: "estoque 6 não é baixo", stock: 6, lowStock: 0, outOfStock: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := []*domain.InventoryItem{
				{
					Name: "Película",
					Variations: []domain.Variation{
						{Name: "iPhone 13", SKU: strPtr("PEL-13"), Price: dec("10"), Stock: tt.stock},
					},
				},
			}

			metrics := reduceItems(items)

			assert.Equal(t, tt.lowStock, metrics.LowStockCount)
			assert.Equal(t, tt.outOfStock, metrics.OutOfStockCount)
			require.Len(t, metrics.LowStockItems, tt.lowStock)
			if tt.lowStock > 0 {
				assert.Equal(t, "Película", metrics.LowStockItems[0].ItemName)
				assert.Equal(t, tt.stock, metrics.LowStockItems[0].Stock)
				assert.Equal(t, tt.value, metrics.LowStockItems[0].Value.String())
			}
		})
	}
}

func TestReduceItems_TotaisECategorias(t *testing.T) {
	items := []*domain.InventoryItem{
		{
			Name:       "Tela",
			Categories: []string{"Peças", "Telas"},
			Variations: []domain.Variation{
				{Name: "A", Price: dec("100"), Stock: 2},
				{Name: "B", Price: dec("150"), Stock: 10},
			},
		},
		{
			Name:       "Capa",
			Variations: []domain.Variation{{Name: "Preta", Price: dec("25.5"), Stock: 4}},
		},
	}

	metrics := reduceItems(items)

	assert.Equal(t, 2, metrics.TotalItems)
	assert.Equal(t, 3, metrics.TotalVariations)
	assert.Equal(t, 16, metrics.TotalStock)
	assert.Equal(t, "1802", metrics.TotalValue.String())
	assert.InDelta(t, 600.6667, float64(metrics.AvgProductValue), 0.001)
	assert.Equal(t, map[string]int{"Peças": 1, "Telas": 1, "Uncategorized": 1}, metrics.ByCategory)
}

func TestReduceItems_SemVariacoesProduzNaN(t *testing.T) {
	metrics := reduceItems([]*domain.InventoryItem{{Name: "Sem variações"}})

	assert.True(t, math.IsNaN(float64(metrics.AvgProductValue)))
	assert.False(t, metrics.AvgProductValue.IsFinite())
}

func TestReduceInventory_PDV(t *testing.T) {
	period := domain.ResolvePeriod(domain.PeriodMonthly, nil, nil, testNow)
	records := inventoryRecords{
		adjustments: []*domain.InventoryAdjustment{
			{Type: domain.AdjustmentIncrease, Quantity: 10},
			{Type: domain.AdjustmentDecrease, Quantity: 3},
		},
		specialParts: []*domain.SpecialPart{
			{Status: domain.SpecialPartRequested, Cost: dec("10")},
			{Status: domain.SpecialPartOrdered, Cost: dec("20")},
			{Status: domain.SpecialPartInstalled, Cost: dec("30")},
		},
		warrantyClaims: []*domain.WarrantyClaim{
			{Status: domain.ClaimStatusPaid, ClaimAmount: dec("200")},
			{Status: domain.ClaimStatusDenied, ClaimAmount: dec("50")},
		},
		orders: []*domain.Order{
			{Status: domain.OrderStatusPaid, Total: dec("100")},
			{Status: domain.OrderStatusPaid, Total: dec("50")},
			{Status: domain.OrderStatusCancelled, Total: dec("70")},
		},
		refunds: []*domain.Refund{
			{Status: domain.RefundStatusCompleted, Amount: dec("15")},
			{Status: domain.RefundStatusPending, Amount: dec("5")},
		},
		discounts: []*domain.Discount{
			{Type: domain.DiscountTypePercentage, Active: true, UsageCount: 3},
			{Type: domain.DiscountTypeFixed, UsageCount: 1},
		},
		revenue: domain.RevenueBreakdown{IncomeFromProducts: dec("150")},
	}

	metrics := reduceInventory(period, records)

	assert.Equal(t, 7, metrics.Adjustments.NetQuantity)
	assert.Equal(t, 2, metrics.SpecialParts.Pending)
	assert.Equal(t, "60", metrics.SpecialParts.TotalCost.String())
	assert.Equal(t, "250", metrics.Warranty.TotalClaimed.String())
	assert.Equal(t, "200", metrics.Warranty.TotalPaid.String())
	assert.Equal(t, 2, metrics.Sales.Paid)
	assert.Equal(t, "150", metrics.Sales.TotalSales.String())
	assert.Equal(t, 75.0, metrics.Sales.AverageOrderValue)
	assert.Equal(t, "15", metrics.Refunds.TotalRefunded.String())
	assert.Equal(t, domain.DiscountMetrics{Total: 2, Active: 1, Percentage: 1, Fixed: 1, TotalUsage: 4}, metrics.Discounts)
	assert.Equal(t, "150", metrics.ProductRevenue.String())
	assert.Equal(t, 0.0, metrics.ProductProfitMargin)
}
