package handler

import (
	"context"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/repairdesk/backoffice-analytics/internal/config"
	"github.com/repairdesk/backoffice-analytics/internal/domain"
	"github.com/repairdesk/backoffice-analytics/internal/usecases/analyzing"
	"github.com/repairdesk/backoffice-analytics/pkg/apiErrors"
	"github.com/repairdesk/backoffice-analytics/pkg/log"
	"github.com/repairdesk/backoffice-analytics/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// reportRequest é o resultado da leitura e validação dos parâmetros comuns aos relatórios
type reportRequest struct {
	reportType domain.ReportType
	period     domain.PeriodRequest
}

// parseReportRequest lê :type, period, start_date e end_date. Em caso de erro a resposta já foi escrita.
func parseReportRequest(w http.ResponseWriter, r *http.Request, cfg *config.Config, now time.Time) (reportRequest, bool) {
	logger := log.ForContext(r.Context())

	reportType := domain.ReportType(httprouter.ParamsFromContext(r.Context()).ByName("type"))
	if !reportType.IsValid() {
		logger.WithField("type", reportType).Warn("analytics: unknown report type")
		apiErrors.WriteError(w, apiErrors.ErrUnknownReport, "Tipo de relatório desconhecido", map[string]any{"type": reportType})
		return reportRequest{}, false
	}

	token := domain.PeriodToken(r.URL.Query().Get("period"))
	if token == "" && cfg != nil {
		token = domain.PeriodToken(cfg.Analytics.DefaultPeriod)
	}

	startDate, err := utils.ParseDate(r.URL.Query().Get("start_date"))
	if err != nil {
		logger.WithFields(log.Fields{
			"start_date": r.URL.Query().Get("start_date"),
			"error":      err.Error(),
		}).Warn("analytics: invalid start_date parameter")
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "start_date deve estar no formato YYYY-MM-DD", nil)
		return reportRequest{}, false
	}

	endDate, err := utils.ParseDate(r.URL.Query().Get("end_date"))
	if err != nil {
		logger.WithFields(log.Fields{
			"end_date": r.URL.Query().Get("end_date"),
			"error":    err.Error(),
		}).Warn("analytics: invalid end_date parameter")
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "end_date deve estar no formato YYYY-MM-DD", nil)
		return reportRequest{}, false
	}

	if endDate != nil {
		end := utils.EndOfDay(*endDate)
		endDate = &end
	}

	if startDate != nil && endDate != nil && startDate.After(*endDate) {
		logger.Warn("analytics: start_date after end_date")
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "start_date não pode ser posterior a end_date", nil)
		return reportRequest{}, false
	}

	if startDate != nil && endDate == nil && startDate.After(now) {
		logger.Warn("analytics: start_date in the future")
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "start_date não pode estar no futuro", nil)
		return reportRequest{}, false
	}

	// Datas explícitas sem token viram intervalo customizado
	if startDate != nil && r.URL.Query().Get("period") == "" {
		token = domain.PeriodCustom
	}

	return reportRequest{
		reportType: reportType,
		period: domain.PeriodRequest{
			Token:       token,
			CustomStart: startDate,
			CustomEnd:   endDate,
		},
	}, true
}

func withRequestTimeout(ctx context.Context, cfg *config.Config) (context.Context, context.CancelFunc) {
	if cfg == nil || cfg.Analytics.RequestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, cfg.Analytics.RequestTimeout)
}

// GetAnalytics devolve o relatório pedido em JSON
func GetAnalytics(analyzer analyzing.Analyzer, cfg *config.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		req, ok := parseReportRequest(w, r, cfg, time.Now())
		if !ok {
			return
		}

		ctx, cancel := withRequestTimeout(r.Context(), cfg)
		defer cancel()

		report, err := analyzing.BuildReport(ctx, analyzer, req.reportType, req.period)
		if err != nil {
			logger.WithFields(log.Fields{
				"type":   req.reportType,
				"period": req.period.Token,
				"error":  err.Error(),
			}).Error("analytics: failed to build report")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao gerar relatório", nil)
			return
		}

		logger.WithFields(log.Fields{
			"type":   req.reportType,
			"period": req.period.Token,
		}).Info("analytics: report generated")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(report)
	})
}
