package analyzing

import (
	"context"
	"testing"
	"time"

	"github.com/repairdesk/backoffice-analytics/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func ticketsWithStatus(statuses ...domain.TicketStatus) []*domain.Ticket {
	tickets := make([]*domain.Ticket, 0, len(statuses))
	for i, status := range statuses {
		tickets = append(tickets, &domain.Ticket{
			ID:        string(rune('a' + i)),
			Status:    status,
			CreatedAt: testNow.Add(-48 * time.Hour),
		})
	}
	return tickets
}

func TestReduceTickets(t *testing.T) {
	tests := []struct {
		name           string
		tickets        []*domain.Ticket
		completed      int
		pending        int
		cancelled      int
		completionRate string
	}{
		{
			name:           "sem tickets devolve taxa \"0\"",
			tickets:        nil,
			completionRate: "0",
		},
		{
			name: "10 tickets com 6 concluídos",
			tickets: ticketsWithStatus(
				domain.TicketStatusDone, domain.TicketStatusDone, domain.TicketStatusDone,
				domain.TicketStatusDone, domain.TicketStatusDone, domain.TicketStatusDone,
				domain.TicketStatusNew, domain.TicketStatusInProgress,
				domain.TicketStatusAwaitingParts, domain.TicketStatusCancelled,
			),
			completed:      6,
			pending:        1,
			cancelled:      1,
			completionRate: "60.00",
		},
		{
			name:           "um terço concluído arredonda com duas casas",
			tickets:        ticketsWithStatus(domain.TicketStatusDone, domain.TicketStatusNew, domain.TicketStatusNew),
			completed:      1,
			pending:        2,
			completionRate: "33.33",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metrics := reduceTickets(tt.tickets)

			assert.Equal(t, len(tt.tickets), metrics.Total)
			assert.Equal(t, tt.completed, metrics.Completed)
			assert.Equal(t, tt.pending, metrics.Pending)
			assert.Equal(t, tt.cancelled, metrics.Cancelled)
			assert.Equal(t, tt.completionRate, metrics.CompletionRate)
			assert.LessOrEqual(t, metrics.Completed+metrics.Pending+metrics.Cancelled, metrics.Total)
		})
	}
}

func TestReduceTickets_TempoMedioDeConclusao(t *testing.T) {
	created := testNow.Add(-10 * time.Hour)
	tickets := []*domain.Ticket{
		{Status: domain.TicketStatusDone, CreatedAt: created, CompletedAt: timePtr(created.Add(4 * time.Hour))},
		{Status: domain.TicketStatusDone, CreatedAt: created, CompletedAt: timePtr(created.Add(9 * time.Hour))},
		{Status: domain.TicketStatusDone, CreatedAt: created},
		{Status: domain.TicketStatusNew, CreatedAt: created},
	}

	metrics := reduceTickets(tickets)

	assert.Equal(t, 6.5, metrics.AverageCompletionHours)
	assert.Equal(t, map[string]int{"DONE": 3, "NEW": 1}, metrics.ByStatus)
}

func TestReduceQuotes(t *testing.T) {
	past := testNow.Add(-time.Hour)
	future := testNow.Add(time.Hour)

	tests := []struct {
		name     string
		quotes   []*domain.Quote
		accepted int
		expired  int
		pending  int
		rate     string
	}{
		{
			name:    "orçamento não convertido e vencido é expirado",
			quotes:  []*domain.Quote{{Amount: dec("80"), ExpiresAt: past}},
			expired: 1,
			rate:    "0.00",
		},
		{
			name:    "orçamento não convertido e no prazo é pendente",
			quotes:  []*domain.Quote{{Amount: dec("80"), ExpiresAt: future}},
			pending: 1,
			rate:    "0.00",
		},
		{
			name: "convertido conta como aceito mesmo vencido",
			quotes: []*domain.Quote{
				{Amount: dec("100"), ConvertedToTicket: true, ExpiresAt: past},
				{Amount: dec("50"), ExpiresAt: future},
				{Amount: dec("25"), ExpiresAt: past},
				{Amount: dec("10"), ConvertedToTicket: true, ExpiresAt: future},
			},
			accepted: 2,
			expired:  1,
			pending:  1,
			rate:     "50.00",
		},
		{
			name: "sem orçamentos",
			rate: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metrics := reduceQuotes(tt.quotes, testNow)

			assert.Equal(t, tt.accepted, metrics.Accepted)
			assert.Equal(t, tt.expired, metrics.Expired)
			assert.Equal(t, tt.pending, metrics.Pending)
			assert.Equal(t, metrics.Total, metrics.Accepted+metrics.Expired+metrics.Pending)
			assert.Equal(t, tt.rate, metrics.ConversionRate)
		})
	}
}

func TestReduceRepairs_MarcasETiposDeReparo(t *testing.T) {
	period := domain.ResolvePeriod(domain.PeriodMonthly, nil, nil, testNow)
	tickets := []*domain.Ticket{
		{
			Status: domain.TicketStatusDone,
			Devices: []domain.RepairDevice{
				{
					BrandName: strPtr("Apple"),
					RepairOptions: []domain.RepairOption{
						{RepairTypeName: strPtr("Screen")},
						{RepairTypeName: strPtr("Battery")},
					},
				},
				{
					RepairOptions: []domain.RepairOption{{}},
				},
			},
		},
		{
			Status: domain.TicketStatusNew,
			Devices: []domain.RepairDevice{
				{BrandName: strPtr("Apple"), RepairOptions: []domain.RepairOption{{RepairTypeName: strPtr("Screen")}}},
			},
		},
	}
	diagnostics := []*domain.Diagnostic{
		{Status: domain.DiagnosticStatusCompleted, ConvertedToTicket: true, Fee: dec("20")},
		{Status: domain.DiagnosticStatusPending, Fee: dec("20")},
	}
	revenue := domain.RevenueBreakdown{IncomeFromRepairs: dec("300"), IncomeFromServices: dec("45.5")}

	metrics := reduceRepairs(period, testNow, tickets, nil, diagnostics, revenue)

	assert.Equal(t, map[string]int{"Apple": 2, "Unknown": 1}, metrics.Brands)
	assert.Equal(t, map[string]int{"Screen": 2, "Battery": 1, "Unknown": 1}, metrics.RepairTypes)
	assert.Equal(t, "50.00", metrics.Diagnostics.ConversionRate)
	assert.Equal(t, "40", metrics.Diagnostics.TotalFees.String())
	assert.Equal(t, "345.5", metrics.Revenue.Total.String())
	assert.Equal(t, "0", metrics.Quotes.ConversionRate)
}

func TestGetRepairAnalytics_UsaJanelaResolvida(t *testing.T) {
	service, m := newTestService(t)
	period := domain.ResolvePeriod(domain.PeriodQuarterly, nil, nil, testNow)

	m.repairs.EXPECT().ListTickets(gomock.Any(), period.StartDate, period.EndDate).
		Return(ticketsWithStatus(domain.TicketStatusDone, domain.TicketStatusNew), nil)
	m.repairs.EXPECT().ListQuotes(gomock.Any(), period.StartDate, period.EndDate).Return(nil, nil)
	m.repairs.EXPECT().ListDiagnostics(gomock.Any(), period.StartDate, period.EndDate).Return(nil, nil)
	m.sales.EXPECT().ListPaidOrders(gomock.Any(), period.StartDate, period.EndDate).Return(nil, nil)

	metrics, err := service.GetRepairAnalytics(context.Background(), domain.PeriodRequest{Token: domain.PeriodQuarterly})
	require.NoError(t, err)

	assert.Equal(t, domain.PeriodQuarterly, metrics.Period)
	assert.Equal(t, "50.00", metrics.Tickets.CompletionRate)
}
