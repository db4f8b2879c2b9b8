package analyzing

import (
	"context"

	"github.com/repairdesk/backoffice-analytics/internal/domain"
)

// RevenueAnalyzer expõe a classificação de receita dos pedidos pagos
type RevenueAnalyzer interface {
	// ClassifyRevenue separa a receita do período nas quatro divisões de negócio
	ClassifyRevenue(ctx context.Context, period domain.Period) (domain.RevenueBreakdown, error)

	GetRevenueAnalytics(ctx context.Context, req domain.PeriodRequest) (*domain.RevenueMetrics, error)
}

// Analyzer é a interface completa do motor de analytics: um relatório por domínio e o relatório completo
type Analyzer interface {
	RevenueAnalyzer

	GetRepairAnalytics(ctx context.Context, req domain.PeriodRequest) (*domain.RepairMetrics, error)
	GetCommunicationAnalytics(ctx context.Context, req domain.PeriodRequest) (*domain.CommunicationMetrics, error)
	GetInventoryAnalytics(ctx context.Context, req domain.PeriodRequest) (*domain.InventoryMetrics, error)
	GetCustomerAnalytics(ctx context.Context, req domain.PeriodRequest) (*domain.CustomerMetrics, error)
	GetStaffAnalytics(ctx context.Context, req domain.PeriodRequest) (*domain.StaffMetrics, error)
	GetFinancialAnalytics(ctx context.Context, req domain.PeriodRequest) (*domain.FinancialMetrics, error)
	GetLocationAnalytics(ctx context.Context, req domain.PeriodRequest) (*domain.LocationMetrics, error)

	// GetComprehensiveAnalytics roda todos os domínios em paralelo e monta o relatório consolidado.
	// Qualquer falha derruba o relatório inteiro.
	GetComprehensiveAnalytics(ctx context.Context, req domain.PeriodRequest) (*domain.ComprehensiveReport, error)
}
