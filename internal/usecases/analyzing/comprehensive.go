package analyzing

import (
	"context"
	"time"

	"github.com/repairdesk/backoffice-analytics/internal/domain"
	"golang.org/x/sync/errgroup"
)

// GetComprehensiveAnalytics dispara receita, os seis domínios e o bloco de transações em paralelo.
// Cada goroutine escreve em um campo próprio do relatório; o primeiro erro cancela as demais
// e nenhum resultado parcial é devolvido.
func (s *Service) GetComprehensiveAnalytics(ctx context.Context, req domain.PeriodRequest) (*domain.ComprehensiveReport, error) {
	startedAt := time.Now()
	period := s.resolve(req)

	var (
		report  domain.ComprehensiveReport
		revenue domain.RevenueBreakdown
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		revenue, err = s.ClassifyRevenue(gctx, period)
		return err
	})
	g.Go(func() (err error) {
		report.Repairs, err = s.GetRepairAnalytics(gctx, req)
		return err
	})
	g.Go(func() (err error) {
		report.Communications, err = s.GetCommunicationAnalytics(gctx, req)
		return err
	})
	g.Go(func() (err error) {
		report.Inventory, err = s.GetInventoryAnalytics(gctx, req)
		return err
	})
	g.Go(func() (err error) {
		report.Customers, err = s.GetCustomerAnalytics(gctx, req)
		return err
	})
	g.Go(func() (err error) {
		report.Financial, err = s.GetFinancialAnalytics(gctx, req)
		return err
	})
	g.Go(func() (err error) {
		report.Locations, err = s.GetLocationAnalytics(gctx, req)
		return err
	})
	g.Go(func() error {
		report.Transactions = transactionMetrics()
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report.Period = period.Token
	report.DateRange = composedDateRange(req, report.Repairs)

	totalRevenue, distribution := domain.NewServiceDistribution(revenue)
	report.BusinessMetrics = domain.BusinessMetrics{
		TotalRevenue:        totalRevenue,
		ServiceDistribution: distribution,
	}
	report.GeneratedAt = s.now()

	logReduce(ctx, "comprehensive", period, startedAt)

	return &report, nil
}

// composedDateRange ecoa o intervalo customizado informado pelo chamador; sem ele,
// usa o intervalo que o reducer de reparos resolveu.
func composedDateRange(req domain.PeriodRequest, repairs *domain.RepairMetrics) domain.DateRange {
	if req.CustomStart != nil {
		return domain.DateRange{StartDate: req.CustomStart, EndDate: req.CustomEnd}
	}
	if repairs == nil {
		return domain.DateRange{}
	}
	return repairs.DateRange
}

// transactionMetrics existe só para manter o formato do relatório
func transactionMetrics() domain.TransactionMetrics {
	return domain.TransactionMetrics{}
}
