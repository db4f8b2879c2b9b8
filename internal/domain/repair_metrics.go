package domain

import "github.com/shopspring/decimal"

type RepairMetrics struct {
	Period      PeriodToken       `json:"period"`
	DateRange   DateRange         `json:"dateRange"`
	Tickets     TicketMetrics     `json:"tickets"`
	Quotes      QuoteMetrics      `json:"quotes"`
	Diagnostics DiagnosticMetrics `json:"diagnostics"`
	RepairTypes map[string]int    `json:"repairTypes"`
	Brands      map[string]int    `json:"brands"`
	Revenue     RepairRevenue     `json:"revenue"`
}

// TicketMetrics: CompletionRate é texto com duas casas ("60.00") ou "0" sem tickets
type TicketMetrics struct {
	Total                  int            `json:"total"`
	Completed              int            `json:"completed"`
	Pending                int            `json:"pending"`
	InProgress             int            `json:"inProgress"`
	Cancelled              int            `json:"cancelled"`
	CompletionRate         string         `json:"completionRate"`
	AverageCompletionHours float64        `json:"averageCompletionHours"`
	ByStatus               map[string]int `json:"byStatus"`
}

type QuoteMetrics struct {
	Total          int             `json:"total"`
	Accepted       int             `json:"accepted"`
	Expired        int             `json:"expired"`
	Pending        int             `json:"pending"`
	ConversionRate string          `json:"conversionRate"`
	TotalValue     decimal.Decimal `json:"totalValue"`
	AcceptedValue  decimal.Decimal `json:"acceptedValue"`
}

type DiagnosticMetrics struct {
	Total          int             `json:"total"`
	Completed      int             `json:"completed"`
	Converted      int             `json:"converted"`
	ConversionRate string          `json:"conversionRate"`
	TotalFees      decimal.Decimal `json:"totalFees"`
}

type RepairRevenue struct {
	Repairs  decimal.Decimal `json:"repairs"`
	Services decimal.Decimal `json:"services"`
	Total    decimal.Decimal `json:"total"`
}
