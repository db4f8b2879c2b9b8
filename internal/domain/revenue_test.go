package domain

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string {
	return &s
}

func item(itemType *string, price string, quantity int) OrderItem {
	return OrderItem{ItemType: itemType, Price: decimal.RequireFromString(price), Quantity: quantity}
}

func TestClassifyRevenue(t *testing.T) {
	tests := []struct {
		name     string
		orders   []*Order
		expected map[string]string
	}{
		{
			name:   "Sem pedidos - tudo zerado",
			orders: nil,
			expected: map[string]string{
				"repairs": "0", "services": "0", "products": "0", "custom": "0", "total": "0",
			},
		},
		{
			name: "Itens distribuídos pelos quatro buckets",
			orders: []*Order{
				{
					Status: OrderStatusPaid,
					Items: []OrderItem{
						item(strPtr("repair"), "100.00", 2),
						item(strPtr("service"), "35.50", 1),
						item(strPtr("product"), "9.99", 3),
						item(strPtr("custom"), "12.00", 1),
					},
				},
			},
			expected: map[string]string{
				"repairs": "200", "services": "35.5", "products": "29.97", "custom": "12", "total": "277.47",
			},
		},
		{
			name: "Tipo ausente ou desconhecido conta como produto",
			orders: []*Order{
				{
					Status: OrderStatusPaid,
					Items: []OrderItem{
						item(nil, "10", 1),
						item(strPtr("gift-card"), "5", 2),
					},
				},
			},
			expected: map[string]string{
				"repairs": "0", "services": "0", "products": "20", "custom": "0", "total": "20",
			},
		},
		{
			name: "Pedidos não pagos são ignorados",
			orders: []*Order{
				{Status: OrderStatusPending, Items: []OrderItem{item(strPtr("repair"), "50", 1)}},
				{Status: OrderStatusRefunded, Items: []OrderItem{item(strPtr("repair"), "50", 1)}},
				nil,
				{Status: OrderStatusPaid, Items: []OrderItem{item(strPtr("repair"), "70", 1)}},
			},
			expected: map[string]string{
				"repairs": "70", "services": "0", "products": "0", "custom": "0", "total": "70",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			breakdown := ClassifyRevenue(tt.orders)

			assert.Equal(t, tt.expected["repairs"], breakdown.IncomeFromRepairs.String())
			assert.Equal(t, tt.expected["services"], breakdown.IncomeFromServices.String())
			assert.Equal(t, tt.expected["products"], breakdown.IncomeFromProducts.String())
			assert.Equal(t, tt.expected["custom"], breakdown.IncomeFromCustom.String())
			assert.Equal(t, tt.expected["total"], breakdown.TotalIncome.String())

			sum := breakdown.IncomeFromRepairs.
				Add(breakdown.IncomeFromServices).
				Add(breakdown.IncomeFromProducts).
				Add(breakdown.IncomeFromCustom)
			assert.True(t, sum.Equal(breakdown.TotalIncome))
			assert.True(t, breakdown.TotalProfit.IsZero())
		})
	}
}

func TestNewServiceDistribution(t *testing.T) {
	t.Run("Receita zero - todas as fatias zeradas", func(t *testing.T) {
		total, distribution := NewServiceDistribution(RevenueBreakdown{})

		assert.True(t, total.IsZero())
		assert.Equal(t, ServiceDistribution{}, distribution)
	})

	t.Run("Fatias somam 100", func(t *testing.T) {
		revenue := RevenueBreakdown{
			IncomeFromRepairs:  decimal.NewFromInt(100),
			IncomeFromServices: decimal.NewFromInt(50),
			IncomeFromProducts: decimal.NewFromInt(33),
			IncomeFromCustom:   decimal.NewFromInt(17),
		}

		total, distribution := NewServiceDistribution(revenue)

		assert.Equal(t, "200", total.String())
		assert.InDelta(t, 50.0, distribution.Repairs, 1e-9)
		assert.InDelta(t, 25.0, distribution.ServiceDivision, 1e-9)
		assert.InDelta(t, 16.5, distribution.SalesDivision, 1e-9)
		assert.InDelta(t, 8.5, distribution.CustomDivision, 1e-9)
		assert.InDelta(t, 100.0,
			distribution.Repairs+distribution.ServiceDivision+distribution.SalesDivision+distribution.CustomDivision,
			1e-9)
	})

	t.Run("Divisões com dízima ainda somam 100", func(t *testing.T) {
		revenue := RevenueBreakdown{
			IncomeFromRepairs:  decimal.NewFromInt(1),
			IncomeFromServices: decimal.NewFromInt(1),
			IncomeFromProducts: decimal.NewFromInt(1),
		}

		_, distribution := NewServiceDistribution(revenue)

		assert.InDelta(t, 100.0,
			distribution.Repairs+distribution.ServiceDivision+distribution.SalesDivision+distribution.CustomDivision,
			1e-6)
		assert.Zero(t, distribution.CustomDivision)
	})
}

func TestPercentChange(t *testing.T) {
	tests := []struct {
		name     string
		current  decimal.Decimal
		previous decimal.Decimal
		expected float64
	}{
		{"Anterior zero e atual positivo", decimal.NewFromInt(50), decimal.Zero, 100},
		{"Ambos zero", decimal.Zero, decimal.Zero, 0},
		{"Crescimento", decimal.NewFromInt(150), decimal.NewFromInt(100), 50},
		{"Queda", decimal.NewFromInt(25), decimal.NewFromInt(100), -75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, PercentChange(tt.current, tt.previous), 1e-9)
		})
	}
}

func TestFloat_JSONAndString(t *testing.T) {
	payload, err := json.Marshal(map[string]Float{
		"finite": Float(12.5),
		"nan":    Float(math.NaN()),
		"inf":    Float(math.Inf(1)),
	})

	assert.NoError(t, err)
	assert.JSONEq(t, `{"finite":12.5,"nan":null,"inf":null}`, string(payload))
	assert.Equal(t, "NaN", Float(math.NaN()).String())
	assert.Equal(t, "Infinity", Float(math.Inf(1)).String())
	assert.Equal(t, "-Infinity", Float(math.Inf(-1)).String())
	assert.Equal(t, "12.5", Float(12.5).String())
}

func TestOrderItem_Type(t *testing.T) {
	assert.Equal(t, ItemTypeProduct, OrderItem{}.Type())
	assert.Equal(t, ItemTypeRepair, OrderItem{ItemType: strPtr("repair")}.Type())
	assert.Equal(t, ItemTypeProduct, OrderItem{ItemType: strPtr("REPAIR")}.Type())
}

func TestReportType_IsValid(t *testing.T) {
	assert.True(t, ReportComprehensive.IsValid())
	assert.True(t, ReportStaff.IsValid())
	assert.False(t, ReportType("pdf").IsValid())
}
