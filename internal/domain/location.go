package domain

import "github.com/shopspring/decimal"

type Location struct {
	ID      string
	Name    string
	Address *string
	Active  bool
}

type LocationMetrics struct {
	Period          PeriodToken       `json:"period"`
	DateRange       DateRange         `json:"dateRange"`
	TotalLocations  int               `json:"totalLocations"`
	ActiveLocations int               `json:"activeLocations"`
	TotalTickets    int               `json:"totalTickets"`
	TotalRevenue    decimal.Decimal   `json:"totalRevenue"`
	TotalStock      int               `json:"totalStock"`
	TotalStockValue decimal.Decimal   `json:"totalStockValue"`
	Locations       []LocationSummary `json:"locations"`
}

// LocationSummary: LowStockCount conta estoques estritamente abaixo de 5 (< 5)
type LocationSummary struct {
	LocationID       string          `json:"locationId"`
	Name             string          `json:"name"`
	Active           bool            `json:"active"`
	Tickets          int             `json:"tickets"`
	CompletedTickets int             `json:"completedTickets"`
	SalesCount       int             `json:"salesCount"`
	Revenue          decimal.Decimal `json:"revenue"`
	TotalStock       int             `json:"totalStock"`
	StockValue       decimal.Decimal `json:"stockValue"`
	LowStockCount    int             `json:"lowStockCount"`
}
