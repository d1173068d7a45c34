package scheduler

import (
	"context"
	"testing"

	"github.com/TeuSpnl/comisys/infrastructure/repository/mocks"
	"github.com/TeuSpnl/comisys/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestSweepService(ctrl *gomock.Controller, enabled bool) (*IntegritySweepService, *mocks.MockSaleRepository, *mocks.MockGoalRepository) {
	saleRepo := mocks.NewMockSaleRepository(ctrl)
	goalRepo := mocks.NewMockGoalRepository(ctrl)

	cfg := &config.Config{
		IntegritySweep: config.IntegritySweep{
			Enabled:      enabled,
			CronSchedule: "0 5 * * *",
		},
	}

	return NewIntegritySweepService(saleRepo, goalRepo, cfg), saleRepo, goalRepo
}

func TestIntegritySweepService_runSweep(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, saleRepo, goalRepo := newTestSweepService(ctrl, true)

	t.Run("Varredura remove duplicatas e metas órfãs", func(t *testing.T) {
		saleRepo.EXPECT().SweepDuplicateOrders(gomock.Any()).Return(int64(2), nil)
		goalRepo.EXPECT().DeleteOrphanGoals().Return(int64(1), nil)

		service.runSweep(context.Background())

		status := service.GetStatus()
		assert.Equal(t, true, status["sweep_enabled"])
		assert.Equal(t, "0 5 * * *", status["sweep_cron"])
		assert.False(t, service.lastSweepStartedAt.IsZero())
		assert.False(t, service.lastSweepCompletedAt.IsZero())
		assert.False(t, service.lastSweepCompletedAt.Before(service.lastSweepStartedAt))
	})

	t.Run("Passada concorrente é ignorada", func(t *testing.T) {
		// Nenhuma chamada esperada nos mocks: a trava de execução barra a passada
		service.sweepMutex.Lock()
		service.sweepRunning = true
		service.sweepMutex.Unlock()

		service.runSweep(context.Background())

		service.sweepMutex.Lock()
		service.sweepRunning = false
		service.sweepMutex.Unlock()
	})

	t.Run("Erro em uma etapa não impede a outra", func(t *testing.T) {
		saleRepo.EXPECT().SweepDuplicateOrders(gomock.Any()).Return(int64(0), assert.AnError)
		goalRepo.EXPECT().DeleteOrphanGoals().Return(int64(3), nil)

		service.runSweep(context.Background())
	})
}

func TestIntegritySweepService_StartDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, _ := newTestSweepService(ctrl, false)

	// Desabilitado por configuração: nada é agendado e nenhum repositório é tocado
	err := service.Start(context.Background())
	require.NoError(t, err)

	status := service.GetStatus()
	assert.Equal(t, false, status["sweep_enabled"])
}
