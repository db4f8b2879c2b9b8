package domain

import (
	"math"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// ReportType identifica qual relatório foi pedido (JSON ou CSV)
type ReportType string

const (
	ReportComprehensive  ReportType = "comprehensive"
	ReportRepairs        ReportType = "repairs"
	ReportCommunications ReportType = "communications"
	ReportInventory      ReportType = "inventory"
	ReportCustomers      ReportType = "customers"
	ReportFinancial      ReportType = "financial"
	ReportLocations      ReportType = "locations"
	ReportStaff          ReportType = "staff"
	ReportRevenue        ReportType = "revenue"
)

var reportTypes = map[ReportType]bool{
	ReportComprehensive:  true,
	ReportRepairs:        true,
	ReportCommunications: true,
	ReportInventory:      true,
	ReportCustomers:      true,
	ReportFinancial:      true,
	ReportLocations:      true,
	ReportStaff:          true,
	ReportRevenue:        true,
}

func (t ReportType) IsValid() bool {
	return reportTypes[t]
}

// Float é um float64 que pode carregar NaN ou ±Inf (avgProductValue não é protegido contra
// divisão por zero). No JSON esses valores saem como null.
type Float float64

func (f Float) IsFinite() bool {
	v := float64(f)
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func (f Float) MarshalJSON() ([]byte, error) {
	if !f.IsFinite() {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(float64(f), 'f', -1, 64)), nil
}

// String usa a grafia NaN / Infinity / -Infinity para os valores não finitos
func (f Float) String() string {
	v := float64(f)
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// TransactionMetrics é mantido só pelo formato de saída; o recurso de transações não existe
// e o bloco sai sempre zerado.
type TransactionMetrics struct {
	Total       int             `json:"total"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Income      decimal.Decimal `json:"income"`
	Expenses    decimal.Decimal `json:"expenses"`
}

type RevenueMetrics struct {
	Period    PeriodToken      `json:"period"`
	DateRange DateRange        `json:"dateRange"`
	Revenue   RevenueBreakdown `json:"revenue"`
}

type ServiceDistribution struct {
	Repairs         float64 `json:"repairs"`
	ServiceDivision float64 `json:"serviceDivision"`
	SalesDivision   float64 `json:"salesDivision"`
	CustomDivision  float64 `json:"customDivision"`
}

type BusinessMetrics struct {
	TotalRevenue        decimal.Decimal     `json:"totalRevenue"`
	ServiceDistribution ServiceDistribution `json:"serviceDistribution"`
}

type ComprehensiveReport struct {
	Period          PeriodToken           `json:"period"`
	DateRange       DateRange             `json:"dateRange"`
	Repairs         *RepairMetrics        `json:"repairs"`
	Communications  *CommunicationMetrics `json:"communications"`
	Inventory       *InventoryMetrics     `json:"inventory"`
	Customers       *CustomerMetrics      `json:"customers"`
	Financial       *FinancialMetrics     `json:"financial"`
	Locations       *LocationMetrics      `json:"locations"`
	Transactions    TransactionMetrics    `json:"transactions"`
	BusinessMetrics BusinessMetrics       `json:"businessMetrics"`
	GeneratedAt     time.Time             `json:"generatedAt"`
}

// NewServiceDistribution calcula o percentual de cada divisão sobre a receita total.
// Com receita zero as quatro fatias ficam em zero.
func NewServiceDistribution(revenue RevenueBreakdown) (decimal.Decimal, ServiceDistribution) {
	total := revenue.IncomeFromRepairs.
		Add(revenue.IncomeFromServices).
		Add(revenue.IncomeFromProducts).
		Add(revenue.IncomeFromCustom)

	if !total.IsPositive() {
		return total, ServiceDistribution{}
	}

	share := func(bucket decimal.Decimal) float64 {
		return bucket.Div(total).Mul(decimal.NewFromInt(100)).InexactFloat64()
	}

	return total, ServiceDistribution{
		Repairs:         share(revenue.IncomeFromRepairs),
		ServiceDivision: share(revenue.IncomeFromServices),
		SalesDivision:   share(revenue.IncomeFromProducts),
		CustomDivision:  share(revenue.IncomeFromCustom),
	}
}
