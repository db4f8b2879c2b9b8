package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/repairdesk/backoffice-analytics/internal/api/handler/router"
	"github.com/repairdesk/backoffice-analytics/internal/config"
	"github.com/repairdesk/backoffice-analytics/internal/domain"
	"github.com/repairdesk/backoffice-analytics/internal/usecases/analyzing/mocks"
	"github.com/repairdesk/backoffice-analytics/pkg/apiErrors"
	"github.com/repairdesk/backoffice-analytics/pkg/middleware"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testConfig = &config.Config{
	Analytics: config.Analytics{
		DefaultPeriod:  "monthly",
		RequestTimeout: 5 * time.Second,
	},
}

// serve passa a requisição pelas rotas com as claims já no contexto, como faria o AuthMiddleware
func serve(routes []router.Route, method, target string, roleID int) *httptest.ResponseRecorder {
	rt := router.New(router.WithRoutes(routes...))

	req := httptest.NewRequest(method, target, nil)
	if roleID > 0 {
		claims := &domain.Claims{UserID: 1, UserRoleID: roleID}
		req = req.WithContext(context.WithValue(req.Context(), middleware.ContextKeyUser, claims))
	}

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)
	return rec
}

func decodeAPIError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()
	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr
}

func TestGetAnalytics_ValidacaoDeParametros(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		wantStatus int
		wantCode   string
	}{
		{
			name:       "tipo desconhecido",
			target:     "/v1/analytics/marketing",
			wantStatus: http.StatusNotFound,
			wantCode:   apiErrors.ErrUnknownReport,
		},
		{
			name:       "start_date mal formatada",
			target:     "/v1/analytics/repairs?start_date=17/05/2024",
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidFormat,
		},
		{
			name:       "end_date mal formatada",
			target:     "/v1/analytics/repairs?start_date=2024-05-01&end_date=ontem",
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidFormat,
		},
		{
			name:       "início depois do fim",
			target:     "/v1/analytics/repairs?start_date=2024-05-10&end_date=2024-05-01",
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidFormat,
		},
		{
			name:       "início no futuro sem fim",
			target:     "/v1/analytics/repairs?start_date=2999-01-01",
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			analyzer := mocks.NewMockAnalyzer(ctrl)

			rec := serve(Analytics(analyzer, testConfig), http.MethodGet, tt.target, middleware.RoleTechnician)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, decodeAPIError(t, rec).Code)
		})
	}
}

func TestGetAnalytics_UsaPeriodoPadraoDaConfiguracao(t *testing.T) {
	ctrl := gomock.NewController(t)
	analyzer := mocks.NewMockAnalyzer(ctrl)

	analyzer.EXPECT().
		GetRepairAnalytics(gomock.Any(), domain.PeriodRequest{Token: domain.PeriodMonthly}).
		Return(&domain.RepairMetrics{
			Period:  domain.PeriodMonthly,
			Tickets: domain.TicketMetrics{Total: 10, Completed: 6, CompletionRate: "60.00"},
		}, nil)

	rec := serve(Analytics(analyzer, testConfig), http.MethodGet, "/v1/analytics/repairs", middleware.RoleTechnician)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body domain.RepairMetrics
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, domain.PeriodMonthly, body.Period)
	assert.Equal(t, 10, body.Tickets.Total)
	assert.Equal(t, "60.00", body.Tickets.CompletionRate)
}

func TestGetAnalytics_DatasExplicitasViramIntervaloCustomizado(t *testing.T) {
	ctrl := gomock.NewController(t)
	analyzer := mocks.NewMockAnalyzer(ctrl)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC)

	analyzer.EXPECT().
		GetFinancialAnalytics(gomock.Any(), domain.PeriodRequest{
			Token:       domain.PeriodCustom,
			CustomStart: &start,
			CustomEnd:   &end,
		}).
		Return(&domain.FinancialMetrics{Period: domain.PeriodCustom}, nil)

	rec := serve(Analytics(analyzer, testConfig), http.MethodGet, "/v1/analytics/financial?start_date=2024-01-01&end_date=2024-01-31", middleware.RoleManager)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetAnalytics_TokenExplicitoPrevalece(t *testing.T) {
	ctrl := gomock.NewController(t)
	analyzer := mocks.NewMockAnalyzer(ctrl)

	analyzer.EXPECT().
		GetComprehensiveAnalytics(gomock.Any(), domain.PeriodRequest{Token: domain.PeriodQuarterly}).
		Return(&domain.ComprehensiveReport{Period: domain.PeriodQuarterly}, nil)

	rec := serve(Analytics(analyzer, testConfig), http.MethodGet, "/v1/analytics/comprehensive?period=quarterly", middleware.RoleAdmin)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"period":"quarterly"`)
}

func TestGetAnalytics_FalhaDoServico(t *testing.T) {
	ctrl := gomock.NewController(t)
	analyzer := mocks.NewMockAnalyzer(ctrl)

	analyzer.EXPECT().
		GetLocationAnalytics(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("timeout na consulta de estoque"))

	rec := serve(Analytics(analyzer, testConfig), http.MethodGet, "/v1/analytics/locations", middleware.RoleAdmin)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	apiErr := decodeAPIError(t, rec)
	assert.Equal(t, apiErrors.ErrDatabaseOperation, apiErr.Code)
	assert.NotContains(t, apiErr.Message, "timeout")
}

func TestGetAnalytics_SemAutenticacao(t *testing.T) {
	ctrl := gomock.NewController(t)
	analyzer := mocks.NewMockAnalyzer(ctrl)

	rec := serve(Analytics(analyzer, testConfig), http.MethodGet, "/v1/analytics/repairs", 0)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestExportReport_CSVDeLojas(t *testing.T) {
	ctrl := gomock.NewController(t)
	analyzer := mocks.NewMockAnalyzer(ctrl)

	analyzer.EXPECT().
		GetLocationAnalytics(gomock.Any(), domain.PeriodRequest{Token: domain.PeriodWeekly}).
		Return(&domain.LocationMetrics{
			Period:         domain.PeriodWeekly,
			TotalLocations: 1,
			Locations: []domain.LocationSummary{
				{LocationID: "loc-1", Name: "Centro", Active: true, Tickets: 4, Revenue: decimal.NewFromInt(250)},
			},
		}, nil)

	rec := serve(Exports(analyzer, testConfig), http.MethodGet, "/v1/exports/locations?period=weekly", middleware.RoleManager)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Disposition"), `attachment; filename="locations-`))

	lines := strings.Split(rec.Body.String(), "\n")
	assert.Equal(t, "Metric,Value", lines[0])
	assert.Equal(t, "Location: Centro,", lines[1])
	assert.Contains(t, rec.Body.String(), "tickets,4\n")
	assert.Contains(t, rec.Body.String(), "revenue,250\n")
}

func TestExportReport_TecnicoNaoPodeExportar(t *testing.T) {
	ctrl := gomock.NewController(t)
	analyzer := mocks.NewMockAnalyzer(ctrl)

	rec := serve(Exports(analyzer, testConfig), http.MethodGet, "/v1/exports/repairs", middleware.RoleTechnician)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, apiErrors.ErrInsufficientPrivilege, decodeAPIError(t, rec).Code)
}
