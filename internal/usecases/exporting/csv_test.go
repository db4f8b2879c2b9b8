package exporting

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/repairdesk/backoffice-analytics/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCSV_RelatorioPlano(t *testing.T) {
	var buf bytes.Buffer

	metrics := &domain.RevenueMetrics{
		Period: domain.PeriodMonthly,
		Revenue: domain.RevenueBreakdown{
			IncomeFromRepairs: decimal.NewFromInt(200),
			TotalIncome:       decimal.NewFromInt(200),
		},
	}

	require.NoError(t, WriteCSV(&buf, domain.ReportRevenue, metrics))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, "Metric,Value", lines[0])
	assert.Equal(t, "period,monthly", lines[1])
	assert.Contains(t, lines, "revenue_incomeFromRepairs,200")
	assert.Contains(t, lines, "revenue_totalIncome,200")
}

func TestWriteCSV_LojasEmBlocos(t *testing.T) {
	var buf bytes.Buffer

	metrics := &domain.LocationMetrics{
		Locations: []domain.LocationSummary{
			{LocationID: "loc-1", Name: "Centro", Tickets: 3, Revenue: decimal.NewFromInt(10)},
			{LocationID: "loc-2", Name: "Zona Sul, Shopping", TotalStock: 8},
		},
	}

	require.NoError(t, WriteCSV(&buf, domain.ReportLocations, metrics))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "Metric,Value\nLocation: Centro,\nlocationId,loc-1\n"))
	assert.Contains(t, out, "tickets,3\n")
	assert.Contains(t, out, "\n\n\"Location: Zona Sul, Shopping\",\n")
	assert.Contains(t, out, "totalStock,8\n")
	assert.True(t, strings.HasSuffix(out, "lowStockCount,0\n\n"))
}

func TestWriteCSV_EquipeEmBlocos(t *testing.T) {
	var buf bytes.Buffer

	metrics := domain.StaffMetrics{
		Productivity: []domain.StaffProductivity{
			{StaffID: "s1", Name: "Ana", TicketCount: 4, CompletionRate: 75},
		},
	}

	require.NoError(t, WriteCSV(&buf, domain.ReportStaff, metrics))

	out := buf.String()
	assert.Contains(t, out, "Staff: Ana,\nstaffId,s1\n")
	assert.Contains(t, out, "completionRate,75\n")
}

func TestWriteCSV_TipoDeDadoInesperadoCaiNoFormatoPlano(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WriteCSV(&buf, domain.ReportLocations, map[string]int{"total": 1}))

	assert.Equal(t, "Metric,Value\ntotal,1\n", buf.String())
}

func TestFileName(t *testing.T) {
	now := time.Date(2024, 5, 17, 14, 30, 0, 0, time.UTC)

	assert.Equal(t, "repairs-2024-05-17.csv", FileName(domain.ReportRepairs, now))
}
