package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/repairdesk/backoffice-analytics/internal/config"
	"github.com/repairdesk/backoffice-analytics/internal/usecases/analyzing"
	"github.com/repairdesk/backoffice-analytics/internal/usecases/exporting"
	"github.com/repairdesk/backoffice-analytics/pkg/apiErrors"
	"github.com/repairdesk/backoffice-analytics/pkg/log"
)

// ExportReport devolve o relatório pedido como anexo CSV
func ExportReport(analyzer analyzing.Analyzer, cfg *config.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		now := time.Now()
		req, ok := parseReportRequest(w, r, cfg, now)
		if !ok {
			return
		}

		ctx, cancel := withRequestTimeout(r.Context(), cfg)
		defer cancel()

		report, err := analyzing.BuildReport(ctx, analyzer, req.reportType, req.period)
		if err != nil {
			logger.WithFields(log.Fields{
				"type":  req.reportType,
				"error": err.Error(),
			}).Error("exports: failed to build report")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao gerar relatório", nil)
			return
		}

		// Monta o CSV em memória para conseguir responder com erro JSON se a escrita falhar
		var buf bytes.Buffer
		if err := exporting.WriteCSV(&buf, req.reportType, report); err != nil {
			logger.WithError(err).Error("exports: failed to write csv")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar arquivo CSV", nil)
			return
		}

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exporting.FileName(req.reportType, now)))
		if _, err := w.Write(buf.Bytes()); err != nil {
			logger.WithError(err).Warn("exports: failed to write response")
		}
	})
}
