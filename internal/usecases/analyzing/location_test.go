package analyzing

import (
	"context"
	"errors"
	"testing"

	"github.com/repairdesk/backoffice-analytics/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetLocationAnalytics(t *testing.T) {
	service, m := newTestService(t)

	locations := []*domain.Location{
		{ID: "loc-centro", Name: "Centro", Active: true},
		{ID: "loc-norte", Name: "Zona Norte", Active: true},
		{ID: "loc-sul", Name: "Zona Sul"},
	}

	m.locations.EXPECT().ListLocations(gomock.Any()).Return(locations, nil)
	m.repairs.EXPECT().ListTickets(gomock.Any(), gomock.Any(), gomock.Any()).Return([]*domain.Ticket{
		{LocationID: strPtr("loc-centro"), Status: domain.TicketStatusDone},
		{LocationID: strPtr("loc-centro"), Status: domain.TicketStatusNew},
		{LocationID: strPtr("loc-norte"), Status: domain.TicketStatusDone},
		{LocationID: strPtr("loc-fechada"), Status: domain.TicketStatusDone},
		{Status: domain.TicketStatusDone},
	}, nil)
	m.sales.EXPECT().ListOrders(gomock.Any(), gomock.Any(), gomock.Any()).Return([]*domain.Order{
		{LocationID: strPtr("loc-centro"), Status: domain.OrderStatusPaid, Total: dec("120")},
		{LocationID: strPtr("loc-centro"), Status: domain.OrderStatusPending, Total: dec("999")},
		{LocationID: strPtr("loc-sul"), Status: domain.OrderStatusPaid, Total: dec("30.5")},
	}, nil)

	m.locations.EXPECT().ListStockByLocation(gomock.Any(), "loc-centro").Return([]*domain.StockLevel{
		{Quantity: 10, Price: dec("5")},
		{Quantity: 4, Price: dec("20")},
	}, nil)
	m.locations.EXPECT().ListStockByLocation(gomock.Any(), "loc-norte").Return([]*domain.StockLevel{
		{Quantity: 5, Price: dec("10")},
	}, nil)
	m.locations.EXPECT().ListStockByLocation(gomock.Any(), "loc-sul").Return(nil, nil)

	metrics, err := service.GetLocationAnalytics(context.Background(), domain.PeriodRequest{Token: domain.PeriodMonthly})
	require.NoError(t, err)

	require.Len(t, metrics.Locations, 3)
	assert.Equal(t, []string{"loc-centro", "loc-norte", "loc-sul"}, []string{
		metrics.Locations[0].LocationID,
		metrics.Locations[1].LocationID,
		metrics.Locations[2].LocationID,
	})

	centro := metrics.Locations[0]
	assert.Equal(t, 2, centro.Tickets)
	assert.Equal(t, 1, centro.CompletedTickets)
	assert.Equal(t, 1, centro.SalesCount)
	assert.Equal(t, "120", centro.Revenue.String())
	assert.Equal(t, 14, centro.TotalStock)
	assert.Equal(t, "130", centro.StockValue.String())
	assert.Equal(t, 1, centro.LowStockCount)

	// Na loja, 5 unidades não contam como estoque baixo
	assert.Equal(t, 0, metrics.Locations[1].LowStockCount)

	assert.Equal(t, 3, metrics.TotalLocations)
	assert.Equal(t, 2, metrics.ActiveLocations)
	assert.Equal(t, 3, metrics.TotalTickets)
	assert.Equal(t, "150.5", metrics.TotalRevenue.String())
	assert.Equal(t, "180", metrics.TotalStockValue.String())

	var stockSum int
	for _, summary := range metrics.Locations {
		stockSum += summary.TotalStock
	}
	assert.Equal(t, metrics.TotalStock, stockSum)
	assert.Equal(t, 19, metrics.TotalStock)
}

func TestGetLocationAnalytics_FalhaNoEstoqueDeUmaLoja(t *testing.T) {
	service, m := newTestService(t)
	dbErr := errors.New("erro ao listar estoque")

	m.locations.EXPECT().ListLocations(gomock.Any()).Return([]*domain.Location{{ID: "loc-1"}, {ID: "loc-2"}}, nil)
	m.repairs.EXPECT().ListTickets(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	m.sales.EXPECT().ListOrders(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	m.locations.EXPECT().ListStockByLocation(gomock.Any(), "loc-1").Return(nil, dbErr).MaxTimes(1)
	m.locations.EXPECT().ListStockByLocation(gomock.Any(), "loc-2").Return(nil, nil).MaxTimes(1)

	metrics, err := service.GetLocationAnalytics(context.Background(), domain.PeriodRequest{})
	assert.Nil(t, metrics)
	assert.ErrorIs(t, err, dbErr)
}
