package analyzing

import (
	"context"
	"time"

	"github.com/repairdesk/backoffice-analytics/internal/domain"
	"github.com/repairdesk/backoffice-analytics/pkg/utils"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type financialRecords struct {
	bills           []*domain.Bill
	payroll         []*domain.Payroll
	goals           []*domain.Goal
	revenue         domain.RevenueBreakdown
	previousBills   []*domain.Bill
	previousPayroll []*domain.Payroll
	previousRevenue domain.RevenueBreakdown
}

func (s *Service) GetFinancialAnalytics(ctx context.Context, req domain.PeriodRequest) (*domain.FinancialMetrics, error) {
	startedAt := time.Now()
	period := s.resolve(req)
	previous := domain.PreviousPeriod(period)

	var records financialRecords
	finance := s.repos.Finance

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		records.bills, err = finance.ListBills(gctx, period.StartDate, period.EndDate)
		return err
	})
	g.Go(func() (err error) {
		records.payroll, err = finance.ListPayroll(gctx, period.StartDate, period.EndDate)
		return err
	})
	g.Go(func() (err error) {
		records.goals, err = finance.ListGoals(gctx, period.StartDate, period.EndDate)
		return err
	})
	g.Go(func() (err error) {
		records.revenue, err = s.ClassifyRevenue(gctx, period)
		return err
	})
	g.Go(func() (err error) {
		records.previousBills, err = finance.ListBills(gctx, previous.StartDate, previous.EndDate)
		return err
	})
	g.Go(func() (err error) {
		records.previousPayroll, err = finance.ListPayroll(gctx, previous.StartDate, previous.EndDate)
		return err
	})
	g.Go(func() (err error) {
		records.previousRevenue, err = s.ClassifyRevenue(gctx, previous)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	metrics := reduceFinancial(period, previous, records)
	logReduce(ctx, "financial", period, startedAt)

	return metrics, nil
}

// reduceFinancial: despesas são contas a pagar mais folha; transações é um bloco sempre zerado
func reduceFinancial(period, previous domain.Period, records financialRecords) *domain.FinancialMetrics {
	bills := reduceBills(records.bills)
	payroll := reducePayroll(records.payroll)

	metrics := &domain.FinancialMetrics{
		Period:       period.Token,
		DateRange:    period.DateRange(),
		Bills:        bills,
		Payroll:      payroll,
		Goals:        reduceGoals(records.goals),
		Transactions: domain.TransactionMetrics{},
		Income:       records.revenue.TotalIncome,
		Expenses:     bills.TotalAmount.Add(payroll.TotalAmount),
	}
	metrics.NetProfit = metrics.Income.Sub(metrics.Expenses)

	if metrics.Income.IsPositive() {
		metrics.ProfitMargin = utils.RoundWithTwoDecimalPlace(
			metrics.NetProfit.Div(metrics.Income).Mul(decimal.NewFromInt(100)).InexactFloat64(),
		)
	}

	previousExpenses := reduceBills(records.previousBills).TotalAmount.
		Add(reducePayroll(records.previousPayroll).TotalAmount)

	metrics.Comparison = domain.PeriodComparison{
		PreviousPeriod:   previous.DateRange(),
		PreviousIncome:   records.previousRevenue.TotalIncome,
		PreviousExpenses: previousExpenses,
		IncomeChange: utils.RoundWithTwoDecimalPlace(
			domain.PercentChange(metrics.Income, records.previousRevenue.TotalIncome),
		),
		ExpenseChange: utils.RoundWithTwoDecimalPlace(
			domain.PercentChange(metrics.Expenses, previousExpenses),
		),
	}

	return metrics
}

func reduceBills(bills []*domain.Bill) domain.BillMetrics {
	metrics := domain.BillMetrics{Total: len(bills)}

	for _, bill := range bills {
		metrics.TotalAmount = metrics.TotalAmount.Add(bill.Amount)

		switch bill.Status {
		case domain.BillStatusPaid:
			metrics.Paid++
			metrics.PaidAmount = metrics.PaidAmount.Add(bill.Amount)
		case domain.BillStatusUnpaid:
			metrics.Unpaid++
			metrics.UnpaidAmount = metrics.UnpaidAmount.Add(bill.Amount)
		case domain.BillStatusOverdue:
			metrics.Overdue++
			metrics.UnpaidAmount = metrics.UnpaidAmount.Add(bill.Amount)
		}
	}

	return metrics
}

func reducePayroll(payroll []*domain.Payroll) domain.PayrollMetrics {
	metrics := domain.PayrollMetrics{Total: len(payroll)}

	for _, entry := range payroll {
		metrics.TotalAmount = metrics.TotalAmount.Add(entry.Amount)

		switch entry.Status {
		case domain.PayrollStatusPaid:
			metrics.Paid++
			metrics.PaidAmount = metrics.PaidAmount.Add(entry.Amount)
		case domain.PayrollStatusPending:
			metrics.Pending++
		}
	}

	return metrics
}

func reduceGoals(goals []*domain.Goal) domain.GoalMetrics {
	metrics := domain.GoalMetrics{
		Total:      len(goals),
		ByCategory: map[string]domain.GoalCategory{},
	}

	for _, goal := range goals {
		name := domain.UncategorizedLabel
		if goal.CategoryName != nil && *goal.CategoryName != "" {
			name = *goal.CategoryName
		}

		category := metrics.ByCategory[name]
		category.Count++
		category.Target = category.Target.Add(goal.Target)
		category.Current = category.Current.Add(goal.Current)
		metrics.ByCategory[name] = category
	}

	return metrics
}
