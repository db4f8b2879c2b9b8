package scheduler

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/repairdesk/backoffice-analytics/internal/config"
	"github.com/repairdesk/backoffice-analytics/internal/domain"
	"github.com/repairdesk/backoffice-analytics/internal/usecases/analyzing/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newExportService(t *testing.T, analyzer *mocks.MockAnalyzer, enabled bool) *ReportExportService {
	t.Helper()

	cfg := &config.Config{
		ReportExport: config.ReportExport{
			CronSchedule: "0 6 * * 1",
			Enabled:      enabled,
			Directory:    filepath.Join(t.TempDir(), "exports"),
			Period:       "weekly",
		},
		Analytics: config.Analytics{RequestTimeout: 5 * time.Second},
	}

	service := NewReportExportService(analyzer, cfg)
	service.now = func() time.Time { return time.Date(2024, 5, 20, 6, 0, 0, 0, time.UTC) }
	return service
}

func TestReportExportService_GravaRelatorioCompleto(t *testing.T) {
	ctrl := gomock.NewController(t)
	analyzer := mocks.NewMockAnalyzer(ctrl)
	service := newExportService(t, analyzer, true)

	analyzer.EXPECT().
		GetComprehensiveAnalytics(gomock.Any(), domain.PeriodRequest{Token: domain.PeriodWeekly}).
		Return(&domain.ComprehensiveReport{Period: domain.PeriodWeekly}, nil)

	path, err := service.ExportComprehensiveReport(context.Background())
	require.NoError(t, err)

	assert.Equal(t, service.config.Directory, filepath.Dir(path))
	assert.True(t, strings.HasPrefix(filepath.Base(path), "comprehensive-2024-05-20-"))
	assert.True(t, strings.HasSuffix(path, ".csv"))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(content), "Metric,Value\n"))
	assert.Contains(t, string(content), "period,weekly")

	status := service.GetStatus()
	assert.Equal(t, path, status["last_file"])
	assert.Equal(t, "", status["last_error"])
	assert.Equal(t, false, status["running"])
}

func TestReportExportService_ErroDoRelatorioNaoGeraArquivo(t *testing.T) {
	ctrl := gomock.NewController(t)
	analyzer := mocks.NewMockAnalyzer(ctrl)
	service := newExportService(t, analyzer, true)

	analyzer.EXPECT().
		GetComprehensiveAnalytics(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("conexão recusada"))

	path, err := service.ExportComprehensiveReport(context.Background())
	require.Error(t, err)
	assert.Empty(t, path)
	assert.Contains(t, err.Error(), "conexão recusada")

	_, statErr := os.Stat(service.config.Directory)
	assert.True(t, os.IsNotExist(statErr))

	status := service.GetStatus()
	assert.Contains(t, status["last_error"], "conexão recusada")
}

func TestReportExportService_IgnoraExecucaoConcorrente(t *testing.T) {
	ctrl := gomock.NewController(t)
	analyzer := mocks.NewMockAnalyzer(ctrl)
	service := newExportService(t, analyzer, true)

	service.syncRunning = true

	path, err := service.ExportComprehensiveReport(context.Background())
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.False(t, service.TriggerManualSync())
}

func TestReportExportService_DesabilitadoNaoAgenda(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := newExportService(t, mocks.NewMockAnalyzer(ctrl), false)

	require.NoError(t, service.Start(context.Background()))
	assert.Empty(t, service.scheduler.Jobs())
}
