package analyzing

import (
	"context"
	"time"

	"github.com/repairdesk/backoffice-analytics/infrastructure/repository"
	"github.com/repairdesk/backoffice-analytics/internal/config"
	"github.com/repairdesk/backoffice-analytics/internal/domain"
	"github.com/repairdesk/backoffice-analytics/pkg/log"
)

// Repositories agrupa as fontes de dados somente leitura usadas pelos reducers
type Repositories struct {
	Sales          repository.SalesRepository
	Repairs        repository.RepairRepository
	Communications repository.CommunicationRepository
	Inventory      repository.InventoryRepository
	Customers      repository.CustomerRepository
	Staff          repository.StaffRepository
	Finance        repository.FinanceRepository
	Locations      repository.LocationRepository
}

// Service implementa Analyzer. Não guarda estado entre chamadas: cada relatório é
// calculado do zero sobre o snapshot atual do banco.
type Service struct {
	cfg   *config.Config
	repos Repositories
	now   func() time.Time
}

// NewService cria uma nova instância do serviço de analytics
func NewService(cfg *config.Config, repos Repositories) Analyzer {
	return &Service{
		cfg:   cfg,
		repos: repos,
		now:   time.Now,
	}
}

// WithClock troca o relógio do serviço (usado nos testes e na exportação agendada)
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) resolve(req domain.PeriodRequest) domain.Period {
	return domain.ResolvePeriod(req.Token, req.CustomStart, req.CustomEnd, s.now())
}

func (s *Service) locationConcurrency() int {
	if s.cfg == nil {
		return 0
	}
	return s.cfg.Analytics.LocationConcurrency
}

// logReduce registra o tempo gasto por um reducer
func logReduce(ctx context.Context, area string, period domain.Period, startedAt time.Time) {
	log.ForContext(ctx).WithFields(log.Fields{
		"area":        area,
		"period":      period.Token,
		"start_date":  period.StartDate.Format(time.RFC3339),
		"end_date":    period.EndDate.Format(time.RFC3339),
		"duration_ms": time.Since(startedAt).Milliseconds(),
	}).Debug("analytics: métricas calculadas")
}
