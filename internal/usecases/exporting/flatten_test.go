package exporting

import (
	"math"
	"testing"
	"time"

	"github.com/repairdesk/backoffice-analytics/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlatten_EstruturaAninhada(t *testing.T) {
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.FixedZone("BRT", -3*60*60))

	metrics := domain.RepairMetrics{
		Period:    domain.PeriodCustom,
		DateRange: domain.DateRange{StartDate: &start},
		Tickets: domain.TicketMetrics{
			Total:          10,
			Completed:      6,
			CompletionRate: "60.00",
			ByStatus:       map[string]int{"NEW": 4, "DONE": 6},
		},
		Brands: map[string]int{"Samsung": 1, "Apple": 3},
		Revenue: domain.RepairRevenue{
			Repairs: decimal.RequireFromString("10.50"),
		},
	}

	rows := Flatten(metrics)
	values := map[string]string{}
	for _, row := range rows {
		values[row.Metric] = row.Value
	}

	assert.Equal(t, "period", rows[0].Metric)
	assert.Equal(t, "custom", rows[0].Value)
	assert.Equal(t, "2024-05-01T03:00:00.000Z", values["dateRange_startDate"])
	assert.Equal(t, "", values["dateRange_endDate"])
	assert.Equal(t, "60.00", values["tickets_completionRate"])
	assert.Equal(t, "6", values["tickets_byStatus_DONE"])
	assert.Equal(t, "10.5", values["revenue_repairs"])
	assert.Equal(t, "0", values["tickets_averageCompletionHours"])

	// Chaves de mapa saem ordenadas
	var brandKeys []string
	for _, row := range rows {
		if row.Metric == "brands_Apple" || row.Metric == "brands_Samsung" {
			brandKeys = append(brandKeys, row.Metric)
		}
	}
	assert.Equal(t, []string{"brands_Apple", "brands_Samsung"}, brandKeys)
}

func TestFlatten_ListasViramJSON(t *testing.T) {
	items := domain.ItemMetrics{
		LowStockItems: []domain.LowStockItem{
			{ItemName: "Tela", VariationName: "A", Stock: 2, Value: decimal.NewFromInt(20)},
		},
		AvgProductValue: domain.Float(math.NaN()),
	}

	values := map[string]string{}
	for _, row := range Flatten(items) {
		values[row.Metric] = row.Value
	}

	assert.Equal(t, `[{"itemName":"Tela","variationName":"A","sku":null,"stock":2,"value":"20"}]`, values["lowStockItems"])
	assert.Equal(t, "NaN", values["avgProductValue"])
	assert.Equal(t, "[]", Flatten(struct {
		List []int `json:"list"`
	}{})[0].Value)
}

func TestFlatten_ValoresNaoFinitos(t *testing.T) {
	rows := Flatten(map[string]any{
		"inf":    domain.Float(math.Inf(1)),
		"negInf": math.Inf(-1),
		"nil":    nil,
	})

	require.Len(t, rows, 3)
	assert.Equal(t, ReportRow{Metric: "inf", Value: "Infinity"}, rows[0])
	assert.Equal(t, ReportRow{Metric: "negInf", Value: "-Infinity"}, rows[1])
	assert.Equal(t, ReportRow{Metric: "nil", Value: ""}, rows[2])
}

func TestFlatten_IdempotenteEmEntradaPlana(t *testing.T) {
	flat := map[string]any{
		"total":     12,
		"rate":      45.5,
		"label":     "Loja Centro",
		"active":    true,
		"createdAt": time.Date(2024, 1, 2, 3, 4, 5, 6000000, time.UTC),
	}

	first := Flatten(flat)

	reshaped := map[string]string{}
	for _, row := range first {
		reshaped[row.Metric] = row.Value
	}
	second := Flatten(reshaped)

	assert.Equal(t, first, second)
	assert.Contains(t, first, ReportRow{Metric: "createdAt", Value: "2024-01-02T03:04:05.006Z"})
}

func TestFlatten_RelatorioCompletoNulo(t *testing.T) {
	var report *domain.ComprehensiveReport

	assert.Equal(t, []ReportRow{{Metric: "", Value: ""}}, Flatten(report))
}
