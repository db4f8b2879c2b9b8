package analyzing

import (
	"context"
	"time"

	"github.com/repairdesk/backoffice-analytics/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

func (s *Service) GetLocationAnalytics(ctx context.Context, req domain.PeriodRequest) (*domain.LocationMetrics, error) {
	startedAt := time.Now()
	period := s.resolve(req)

	var (
		locations []*domain.Location
		tickets   []*domain.Ticket
		orders    []*domain.Order
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		locations, err = s.repos.Locations.ListLocations(gctx)
		return err
	})
	g.Go(func() (err error) {
		tickets, err = s.repos.Repairs.ListTickets(gctx, period.StartDate, period.EndDate)
		return err
	})
	g.Go(func() (err error) {
		orders, err = s.repos.Sales.ListOrders(gctx, period.StartDate, period.EndDate)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stock, err := s.fetchStockByLocation(ctx, locations)
	if err != nil {
		return nil, err
	}

	metrics := reduceLocations(period, locations, stock, tickets, orders)
	logReduce(ctx, "locations", period, startedAt)

	return metrics, nil
}

// fetchStockByLocation faz uma consulta de estoque por loja, limitada por
// ANALYTICS_LOCATION_CONCURRENCY. O resultado é indexado pela posição da loja na lista.
func (s *Service) fetchStockByLocation(ctx context.Context, locations []*domain.Location) ([][]*domain.StockLevel, error) {
	stock := make([][]*domain.StockLevel, len(locations))

	g, gctx := errgroup.WithContext(ctx)
	if limit := s.locationConcurrency(); limit > 0 {
		g.SetLimit(limit)
	}

	for i, location := range locations {
		g.Go(func() error {
			levels, err := s.repos.Locations.ListStockByLocation(gctx, location.ID)
			if err != nil {
				return err
			}
			stock[i] = levels
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return stock, nil
}

// reduceLocations monta um resumo por loja, na ordem em que as lojas foram buscadas.
// Aqui estoque baixo é estritamente menor que o limite (< 5).
func reduceLocations(
	period domain.Period,
	locations []*domain.Location,
	stock [][]*domain.StockLevel,
	tickets []*domain.Ticket,
	orders []*domain.Order,
) *domain.LocationMetrics {
	metrics := &domain.LocationMetrics{
		Period:         period.Token,
		DateRange:      period.DateRange(),
		TotalLocations: len(locations),
		Locations:      make([]domain.LocationSummary, 0, len(locations)),
	}

	index := make(map[string]int, len(locations))
	for i, location := range locations {
		index[location.ID] = i
		if location.Active {
			metrics.ActiveLocations++
		}

		summary := domain.LocationSummary{
			LocationID: location.ID,
			Name:       location.Name,
			Active:     location.Active,
		}
		if i < len(stock) {
			for _, level := range stock[i] {
				summary.TotalStock += level.Quantity
				summary.StockValue = summary.StockValue.Add(level.Price.Mul(decimal.NewFromInt(int64(level.Quantity))))
				if level.Quantity < domain.LowStockThreshold {
					summary.LowStockCount++
				}
			}
		}
		metrics.Locations = append(metrics.Locations, summary)
	}

	for _, ticket := range tickets {
		if ticket.LocationID == nil {
			continue
		}
		i, ok := index[*ticket.LocationID]
		if !ok {
			continue
		}
		metrics.Locations[i].Tickets++
		if ticket.Status == domain.TicketStatusDone {
			metrics.Locations[i].CompletedTickets++
		}
	}

	for _, order := range orders {
		if order.LocationID == nil || order.Status != domain.OrderStatusPaid {
			continue
		}
		i, ok := index[*order.LocationID]
		if !ok {
			continue
		}
		metrics.Locations[i].SalesCount++
		metrics.Locations[i].Revenue = metrics.Locations[i].Revenue.Add(order.Total)
	}

	for _, summary := range metrics.Locations {
		metrics.TotalTickets += summary.Tickets
		metrics.TotalRevenue = metrics.TotalRevenue.Add(summary.Revenue)
		metrics.TotalStock += summary.TotalStock
		metrics.TotalStockValue = metrics.TotalStockValue.Add(summary.StockValue)
	}

	return metrics
}
