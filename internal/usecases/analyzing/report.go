package analyzing

import (
	"context"
	"errors"

	"github.com/repairdesk/backoffice-analytics/internal/domain"
)

var ErrUnknownReport = errors.New("tipo de relatório desconhecido")

// BuildReport despacha o tipo de relatório para o método correspondente do Analyzer
func BuildReport(ctx context.Context, analyzer Analyzer, reportType domain.ReportType, req domain.PeriodRequest) (any, error) {
	switch reportType {
	case domain.ReportComprehensive:
		return analyzer.GetComprehensiveAnalytics(ctx, req)
	case domain.ReportRepairs:
		return analyzer.GetRepairAnalytics(ctx, req)
	case domain.ReportCommunications:
		return analyzer.GetCommunicationAnalytics(ctx, req)
	case domain.ReportInventory:
		return analyzer.GetInventoryAnalytics(ctx, req)
	case domain.ReportCustomers:
		return analyzer.GetCustomerAnalytics(ctx, req)
	case domain.ReportStaff:
		return analyzer.GetStaffAnalytics(ctx, req)
	case domain.ReportFinancial:
		return analyzer.GetFinancialAnalytics(ctx, req)
	case domain.ReportLocations:
		return analyzer.GetLocationAnalytics(ctx, req)
	case domain.ReportRevenue:
		return analyzer.GetRevenueAnalytics(ctx, req)
	default:
		return nil, ErrUnknownReport
	}
}
