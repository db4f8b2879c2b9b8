package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/repairdesk/backoffice-analytics/infrastructure/database/postgres"
	"github.com/repairdesk/backoffice-analytics/infrastructure/repository"
	"github.com/repairdesk/backoffice-analytics/internal/api"
	"github.com/repairdesk/backoffice-analytics/internal/config"
	"github.com/repairdesk/backoffice-analytics/internal/scheduler"
	"github.com/repairdesk/backoffice-analytics/internal/usecases/analyzing"
	"github.com/repairdesk/backoffice-analytics/internal/usecases/authenticating"
	"github.com/repairdesk/backoffice-analytics/pkg/log"
	"github.com/sirupsen/logrus"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define formato e nível de log com base na configuração
	if err := log.Configure(cfg.App.LogLevel); err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
	}
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	repos := analyzing.Repositories{
		Sales:          repository.NewSalesRepository(pgConn),
		Repairs:        repository.NewRepairRepository(pgConn),
		Communications: repository.NewCommunicationRepository(pgConn),
		Inventory:      repository.NewInventoryRepository(pgConn),
		Customers:      repository.NewCustomerRepository(pgConn),
		Staff:          repository.NewStaffRepository(pgConn),
		Finance:        repository.NewFinanceRepository(pgConn),
		Locations:      repository.NewLocationRepository(pgConn),
	}

	analyticsService := analyzing.NewService(cfg, repos)
	authenticator := authenticating.NewService(cfg)

	reportExportService := scheduler.NewReportExportService(analyticsService, cfg)
	if err := reportExportService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de exportação de relatórios")
	} else {
		logrus.Info("Agendador de exportação de relatórios iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		analyticsService,
		authenticator,
		reportExportService,
		pgConn,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
