package analyzing

import (
	"context"
	"time"

	"github.com/repairdesk/backoffice-analytics/internal/domain"
)

// ClassifyRevenue busca os pedidos pagos da janela e separa a receita por divisão.
// Erros da busca sobem sem tratamento.
func (s *Service) ClassifyRevenue(ctx context.Context, period domain.Period) (domain.RevenueBreakdown, error) {
	orders, err := s.repos.Sales.ListPaidOrders(ctx, period.StartDate, period.EndDate)
	if err != nil {
		return domain.RevenueBreakdown{}, err
	}

	return domain.ClassifyRevenue(orders), nil
}

func (s *Service) GetRevenueAnalytics(ctx context.Context, req domain.PeriodRequest) (*domain.RevenueMetrics, error) {
	startedAt := time.Now()
	period := s.resolve(req)

	revenue, err := s.ClassifyRevenue(ctx, period)
	if err != nil {
		return nil, err
	}

	logReduce(ctx, "revenue", period, startedAt)

	return &domain.RevenueMetrics{
		Period:    period.Token,
		DateRange: period.DateRange(),
		Revenue:   revenue,
	}, nil
}
