package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/repairdesk/backoffice-analytics/internal/scheduler"
	"github.com/repairdesk/backoffice-analytics/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeReportExport = "report-export"
)

// CronJobServices contém os serviços de cron que podem ser executados manualmente
type CronJobServices struct {
	ReportExportService *scheduler.ReportExportService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeReportExport:
			if services.ReportExportService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de exportação de relatórios não disponível", nil)
				return
			}
			if !services.ReportExportService.TriggerManualSync() {
				apiErrors.WriteError(w, apiErrors.ErrJobAlreadyRunning, "Exportação de relatórios já está em execução", nil)
				return
			}
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: report-export", nil)
			return
		}

		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		json.NewEncoder(w).Encode(response)
	})
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{}
		if services.ReportExportService != nil {
			status[CronJobTypeReportExport] = services.ReportExportService.GetStatus()
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(status)
	})
}
