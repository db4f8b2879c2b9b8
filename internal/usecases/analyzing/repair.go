package analyzing

import (
	"context"
	"time"

	"github.com/repairdesk/backoffice-analytics/internal/domain"
	"github.com/repairdesk/backoffice-analytics/pkg/utils"
	"golang.org/x/sync/errgroup"
)

const unknownLabel = "Unknown"

func (s *Service) GetRepairAnalytics(ctx context.Context, req domain.PeriodRequest) (*domain.RepairMetrics, error) {
	startedAt := time.Now()
	period := s.resolve(req)

	var (
		tickets     []*domain.Ticket
		quotes      []*domain.Quote
		diagnostics []*domain.Diagnostic
		revenue     domain.RevenueBreakdown
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		tickets, err = s.repos.Repairs.ListTickets(gctx, period.StartDate, period.EndDate)
		return err
	})
	g.Go(func() (err error) {
		quotes, err = s.repos.Repairs.ListQuotes(gctx, period.StartDate, period.EndDate)
		return err
	})
	g.Go(func() (err error) {
		diagnostics, err = s.repos.Repairs.ListDiagnostics(gctx, period.StartDate, period.EndDate)
		return err
	})
	g.Go(func() (err error) {
		revenue, err = s.ClassifyRevenue(gctx, period)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	metrics := reduceRepairs(period, s.now(), tickets, quotes, diagnostics, revenue)
	logReduce(ctx, "repairs", period, startedAt)

	return metrics, nil
}

func reduceRepairs(
	period domain.Period,
	now time.Time,
	tickets []*domain.Ticket,
	quotes []*domain.Quote,
	diagnostics []*domain.Diagnostic,
	revenue domain.RevenueBreakdown,
) *domain.RepairMetrics {
	repairTypes := map[string]int{}
	brands := map[string]int{}

	for _, ticket := range tickets {
		for _, device := range ticket.Devices {
			brands[labelOrUnknown(device.BrandName)]++
			for _, option := range device.RepairOptions {
				repairTypes[labelOrUnknown(option.RepairTypeName)]++
			}
		}
	}

	return &domain.RepairMetrics{
		Period:      period.Token,
		DateRange:   period.DateRange(),
		Tickets:     reduceTickets(tickets),
		Quotes:      reduceQuotes(quotes, now),
		Diagnostics: reduceDiagnostics(diagnostics),
		RepairTypes: repairTypes,
		Brands:      brands,
		Revenue: domain.RepairRevenue{
			Repairs:  revenue.IncomeFromRepairs,
			Services: revenue.IncomeFromServices,
			Total:    revenue.IncomeFromRepairs.Add(revenue.IncomeFromServices),
		},
	}
}

func reduceTickets(tickets []*domain.Ticket) domain.TicketMetrics {
	metrics := domain.TicketMetrics{
		Total:    len(tickets),
		ByStatus: map[string]int{},
	}

	var (
		completionHours float64
		timedTickets    int
	)

	for _, ticket := range tickets {
		metrics.ByStatus[string(ticket.Status)]++

		switch ticket.Status {
		case domain.TicketStatusDone:
			metrics.Completed++
			if ticket.CompletedAt != nil {
				completionHours += ticket.CompletedAt.Sub(ticket.CreatedAt).Hours()
				timedTickets++
			}
		case domain.TicketStatusNew:
			metrics.Pending++
		case domain.TicketStatusInProgress:
			metrics.InProgress++
		case domain.TicketStatusCancelled:
			metrics.Cancelled++
		}
	}

	metrics.CompletionRate = utils.PercentageText(metrics.Completed, metrics.Total)
	metrics.AverageCompletionHours = utils.RoundWithTwoDecimalPlace(
		utils.SafeDivide(completionHours, float64(timedTickets)),
	)

	return metrics
}

// reduceQuotes classifica cada orçamento em exatamente um grupo:
// convertido, expirado (expiresAt < now) ou pendente.
func reduceQuotes(quotes []*domain.Quote, now time.Time) domain.QuoteMetrics {
	metrics := domain.QuoteMetrics{Total: len(quotes)}

	for _, quote := range quotes {
		metrics.TotalValue = metrics.TotalValue.Add(quote.Amount)

		switch {
		case quote.ConvertedToTicket:
			metrics.Accepted++
			metrics.AcceptedValue = metrics.AcceptedValue.Add(quote.Amount)
		case quote.ExpiresAt.Before(now):
			metrics.Expired++
		default:
			metrics.Pending++
		}
	}

	metrics.ConversionRate = utils.PercentageText(metrics.Accepted, metrics.Total)

	return metrics
}

func reduceDiagnostics(diagnostics []*domain.Diagnostic) domain.DiagnosticMetrics {
	metrics := domain.DiagnosticMetrics{Total: len(diagnostics)}

	for _, diagnostic := range diagnostics {
		if diagnostic.Status == domain.DiagnosticStatusCompleted {
			metrics.Completed++
		}
		if diagnostic.ConvertedToTicket {
			metrics.Converted++
		}
		metrics.TotalFees = metrics.TotalFees.Add(diagnostic.Fee)
	}

	metrics.ConversionRate = utils.PercentageText(metrics.Converted, metrics.Total)

	return metrics
}

func labelOrUnknown(name *string) string {
	if name == nil || *name == "" {
		return unknownLabel
	}
	return *name
}
