// Package scheduler contém os serviços agendados que rodam fora do ciclo de requisições
package scheduler

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/pkg/errors"
	"github.com/repairdesk/backoffice-analytics/internal/config"
	"github.com/repairdesk/backoffice-analytics/internal/domain"
	"github.com/repairdesk/backoffice-analytics/internal/usecases/analyzing"
	"github.com/repairdesk/backoffice-analytics/internal/usecases/exporting"
	"github.com/repairdesk/backoffice-analytics/pkg/utils"
	"github.com/sirupsen/logrus"
)

const exportIDLength = 8

type ReportExportConfig struct {
	CronSchedule string
	Enabled      bool
	Directory    string
	Period       domain.PeriodToken
	Timeout      time.Duration
}

// ReportExportService gera periodicamente o relatório completo em CSV no diretório configurado
type ReportExportService struct {
	scheduler           *gocron.Scheduler
	analyzer            analyzing.Analyzer
	config              ReportExportConfig
	now                 func() time.Time
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastFile            string
	lastError           string
}

func NewReportExportService(analyzer analyzing.Analyzer, cfg *config.Config) *ReportExportService {
	exportConfig := ReportExportConfig{
		CronSchedule: cfg.ReportExport.CronSchedule, // Default: segunda-feira às 6h
		Enabled:      cfg.ReportExport.Enabled,      // Default: desabilitado
		Directory:    cfg.ReportExport.Directory,
		Period:       domain.PeriodToken(cfg.ReportExport.Period),
		Timeout:      cfg.Analytics.RequestTimeout,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": exportConfig.CronSchedule,
		"directory":     exportConfig.Directory,
		"period":        exportConfig.Period,
	}).Info("Configuração do agendador de exportação de relatórios carregada")

	return &ReportExportService{
		scheduler: gocron.NewScheduler(time.Local),
		analyzer:  analyzer,
		config:    exportConfig,
		now:       time.Now,
	}
}

func (s *ReportExportService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de exportação de relatórios desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de exportação de relatórios")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.ExportComprehensiveReport(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro na exportação do relatório completo")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar exportação de relatórios: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de exportação de relatórios")
		s.scheduler.Stop()
	}()

	return nil
}

// ExportComprehensiveReport gera o relatório completo do período configurado e grava o CSV.
// Retorna o caminho do arquivo gerado.
func (s *ReportExportService) ExportComprehensiveReport(ctx context.Context) (string, error) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Exportação do relatório completo já está em execução")
		return "", nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	path, err := s.export(ctx)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = s.now()
	s.lastError = ""
	if err != nil {
		s.lastError = err.Error()
	} else {
		s.lastFile = path
	}
	s.syncMutex.Unlock()

	return path, err
}

func (s *ReportExportService) export(ctx context.Context) (string, error) {
	if s.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.Timeout)
		defer cancel()
	}

	logrus.WithField("period", s.config.Period).Info("Iniciando exportação do relatório completo")

	report, err := s.analyzer.GetComprehensiveAnalytics(ctx, domain.PeriodRequest{Token: s.config.Period})
	if err != nil {
		return "", errors.Wrap(err, "erro ao montar relatório completo")
	}

	if err := os.MkdirAll(s.config.Directory, 0o755); err != nil {
		return "", errors.Wrapf(err, "erro ao criar diretório %s", s.config.Directory)
	}

	id, err := utils.GenerateID(exportIDLength)
	if err != nil {
		return "", errors.Wrap(err, "erro ao gerar identificador do arquivo")
	}

	name := strings.TrimSuffix(exporting.FileName(domain.ReportComprehensive, s.now()), ".csv")
	path := filepath.Join(s.config.Directory, fmt.Sprintf("%s-%s.csv", name, id))

	file, err := os.Create(path)
	if err != nil {
		return "", errors.Wrapf(err, "erro ao criar arquivo %s", path)
	}
	defer file.Close()

	if err := exporting.WriteCSV(file, domain.ReportComprehensive, report); err != nil {
		return "", errors.Wrapf(err, "erro ao gravar arquivo %s", path)
	}

	logrus.WithField("file", path).Info("Exportação do relatório completo concluída")

	return path, nil
}

// IsRunning informa se existe uma exportação em andamento
func (s *ReportExportService) IsRunning() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	return s.syncRunning
}

// TriggerManualSync inicia manualmente uma exportação. Retorna false se já houver uma em andamento.
func (s *ReportExportService) TriggerManualSync() bool {
	if s.IsRunning() {
		logrus.Info("Exportação de relatório já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando exportação manual do relatório completo")
	go func() {
		if _, err := s.ExportComprehensiveReport(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro na exportação manual do relatório completo")
		}
	}()

	return true
}

// GetStatus retorna o status atual do agendador
func (s *ReportExportService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"export_enabled":         s.config.Enabled,
		"export_cron":            s.config.CronSchedule,
		"export_directory":       s.config.Directory,
		"export_period":          s.config.Period,
		"running":                s.syncRunning,
		"last_file":              s.lastFile,
		"last_error":             s.lastError,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
