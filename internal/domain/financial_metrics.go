package domain

import "github.com/shopspring/decimal"

const UncategorizedLabel = "Uncategorized"

type FinancialMetrics struct {
	Period       PeriodToken        `json:"period"`
	DateRange    DateRange          `json:"dateRange"`
	Bills        BillMetrics        `json:"bills"`
	Payroll      PayrollMetrics     `json:"payroll"`
	Goals        GoalMetrics        `json:"goals"`
	Transactions TransactionMetrics `json:"transactions"`
	Income       decimal.Decimal    `json:"income"`
	Expenses     decimal.Decimal    `json:"expenses"`
	NetProfit    decimal.Decimal    `json:"netProfit"`
	ProfitMargin float64            `json:"profitMargin"`
	Comparison   PeriodComparison   `json:"comparison"`
}

type BillMetrics struct {
	Total        int             `json:"total"`
	Paid         int             `json:"paid"`
	Unpaid       int             `json:"unpaid"`
	Overdue      int             `json:"overdue"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	PaidAmount   decimal.Decimal `json:"paidAmount"`
	UnpaidAmount decimal.Decimal `json:"unpaidAmount"`
}

type PayrollMetrics struct {
	Total       int             `json:"total"`
	Paid        int             `json:"paid"`
	Pending     int             `json:"pending"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	PaidAmount  decimal.Decimal `json:"paidAmount"`
}

type GoalMetrics struct {
	Total      int                     `json:"total"`
	ByCategory map[string]GoalCategory `json:"byCategory"`
}

type GoalCategory struct {
	Count   int             `json:"count"`
	Target  decimal.Decimal `json:"target"`
	Current decimal.Decimal `json:"current"`
}

type PeriodComparison struct {
	PreviousPeriod   DateRange       `json:"previousPeriod"`
	PreviousIncome   decimal.Decimal `json:"previousIncome"`
	PreviousExpenses decimal.Decimal `json:"previousExpenses"`
	IncomeChange     float64         `json:"incomeChange"`
	ExpenseChange    float64         `json:"expenseChange"`
}

// PercentChange aplica a regra de variação entre períodos:
// anterior zerado vira 100 se o atual for positivo, senão 0.
func PercentChange(current, previous decimal.Decimal) float64 {
	if previous.IsZero() {
		if current.IsPositive() {
			return 100
		}
		return 0
	}
	return current.Sub(previous).Div(previous).Mul(decimal.NewFromInt(100)).InexactFloat64()
}
