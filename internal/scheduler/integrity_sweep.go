package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/TeuSpnl/comisys/infrastructure/repository"
	"github.com/TeuSpnl/comisys/internal/config"
	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
)

// IntegritySweepService agenda a rotina de integridade do banco: remove
// duplicatas de order_number que escaparam de conciliações antigas e metas
// cujo vendedor já foi excluído.
type IntegritySweepService struct {
	scheduler *gocron.Scheduler
	appConfig *config.Config
	saleRepo  repository.SaleRepository
	goalRepo  repository.GoalRepository

	sweepRunning         bool
	sweepMutex           sync.Mutex
	lastSweepStartedAt   time.Time
	lastSweepCompletedAt time.Time
}

// NewIntegritySweepService cria uma nova instância do serviço de varredura de integridade
func NewIntegritySweepService(
	saleRepo repository.SaleRepository,
	goalRepo repository.GoalRepository,
	appConfig *config.Config,
) *IntegritySweepService {
	logrus.WithFields(logrus.Fields{
		"cron_schedule": appConfig.IntegritySweep.CronSchedule,
		"sweep_enabled": appConfig.IntegritySweep.Enabled,
	}).Info("Configuração do agendador de varredura de integridade carregada")

	return &IntegritySweepService{
		scheduler: gocron.NewScheduler(time.Local),
		appConfig: appConfig,
		saleRepo:  saleRepo,
		goalRepo:  goalRepo,
	}
}

// Start inicia o agendador
func (s *IntegritySweepService) Start(ctx context.Context) error {
	if !s.appConfig.IntegritySweep.Enabled {
		logrus.Info("Varredura de integridade desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.appConfig.IntegritySweep.CronSchedule).
		Info("Iniciando agendador de varredura de integridade")

	_, err := s.scheduler.Cron(s.appConfig.IntegritySweep.CronSchedule).Do(func() {
		s.runSweep(context.Background())
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar varredura de integridade: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de varredura de integridade")
		s.scheduler.Stop()
	}()

	return nil
}

// runSweep executa uma passada de varredura; passadas concorrentes são ignoradas
func (s *IntegritySweepService) runSweep(ctx context.Context) {
	s.sweepMutex.Lock()
	if s.sweepRunning {
		s.sweepMutex.Unlock()
		logrus.Info("Varredura de integridade já em andamento, ignorando")
		return
	}
	s.sweepRunning = true
	s.sweepMutex.Unlock()

	startTime := time.Now()
	s.lastSweepStartedAt = startTime

	defer func() {
		s.sweepMutex.Lock()
		s.sweepRunning = false
		s.sweepMutex.Unlock()
	}()

	logrus.Info("Iniciando varredura de integridade")

	duplicates, err := s.saleRepo.SweepDuplicateOrders(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao remover pedidos duplicados")
	}

	orphanGoals, err := s.goalRepo.DeleteOrphanGoals()
	if err != nil {
		logrus.WithError(err).Error("Erro ao remover metas órfãs")
	}

	logrus.WithFields(logrus.Fields{
		"duration":           time.Since(startTime).String(),
		"duplicates_removed": duplicates,
		"orphan_goals":       orphanGoals,
	}).Info("Varredura de integridade concluída")

	s.lastSweepCompletedAt = time.Now()
}

// TriggerManualSweep inicia manualmente uma varredura de integridade
func (s *IntegritySweepService) TriggerManualSweep() {
	s.sweepMutex.Lock()
	if s.sweepRunning {
		s.sweepMutex.Unlock()
		logrus.Info("Varredura de integridade já em andamento, ignorando solicitação manual")
		return
	}
	s.sweepMutex.Unlock()

	logrus.Info("Iniciando varredura manual de integridade")
	go s.runSweep(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *IntegritySweepService) GetStatus() map[string]any {
	return map[string]any{
		"sweep_enabled":           s.appConfig.IntegritySweep.Enabled,
		"sweep_cron":              s.appConfig.IntegritySweep.CronSchedule,
		"last_sweep_started_at":   s.lastSweepStartedAt,
		"last_sweep_completed_at": s.lastSweepCompletedAt,
	}
}
