package handler

import (
	"net/http"

	"github.com/repairdesk/backoffice-analytics/internal/api/handler/router"
	"github.com/repairdesk/backoffice-analytics/internal/config"
	"github.com/repairdesk/backoffice-analytics/internal/usecases/analyzing"
	"github.com/repairdesk/backoffice-analytics/pkg/middleware"
)

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

func Analytics(analyzer analyzing.Analyzer, cfg *config.Config) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/analytics/:type",
			Method:      http.MethodGet,
			Handler:     GetAnalytics(analyzer, cfg),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Exports(analyzer analyzing.Analyzer, cfg *config.Config) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/exports/:type",
			Method:      http.MethodGet,
			Handler:     ExportReport(analyzer, cfg),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
	}
}
