package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/repairdesk/backoffice-analytics/internal/api/handler"
	"github.com/repairdesk/backoffice-analytics/internal/api/handler/router"
	"github.com/repairdesk/backoffice-analytics/internal/config"
	"github.com/repairdesk/backoffice-analytics/internal/scheduler"
	"github.com/repairdesk/backoffice-analytics/internal/usecases/analyzing"
	"github.com/repairdesk/backoffice-analytics/internal/usecases/authenticating"
	"github.com/repairdesk/backoffice-analytics/pkg/middleware"
	"github.com/sirupsen/logrus"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	analyzer analyzing.Analyzer,
	authenticator authenticating.Authenticator,
	reportExportService *scheduler.ReportExportService,
	db handler.Pinger,
) (*Server, error) {
	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           NewHandler(config, analyzer, authenticator, reportExportService, db),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// NewHandler monta as rotas e a cadeia global de middlewares
func NewHandler(
	config *config.Config,
	analyzer analyzing.Analyzer,
	authenticator authenticating.Authenticator,
	reportExportService *scheduler.ReportExportService,
	db handler.Pinger,
) http.Handler {
	cronServices := handler.CronJobServices{
		ReportExportService: reportExportService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(db)...),
		router.WithRoutes(handler.Analytics(analyzer, config)...),
		router.WithRoutes(handler.Exports(analyzer, config)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(authenticator),
	}

	return alice.New(middlewares...).Then(rt)
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	// Aguardar pelo sinal ou pelo cancelamento do contexto
	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	// Define timeout para desligamento
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Log de início do desligamento
	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	logrus.Info("Executando operações de limpeza antes do desligamento")

	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
