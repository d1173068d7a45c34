package goalsetting

import (
	"testing"
	"time"

	"github.com/TeuSpnl/comisys/infrastructure/repository/mocks"
	"github.com/TeuSpnl/comisys/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSetIndividualGoal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)
	goalRepo := mocks.NewMockGoalRepository(ctrl)
	service := NewService(userRepo, goalRepo)

	t.Run("Meta válida é gravada", func(t *testing.T) {
		userRepo.EXPECT().GetUserByID(1).Return(&domain.User{ID: 1}, nil)
		goalRepo.EXPECT().
			UpsertIndividualGoal(&domain.IndividualGoal{
				UserID: 1,
				Goal:   150000,
				Year:   2024,
				Month:  time.March,
			}).
			Return(nil)

		err := service.SetIndividualGoal(1, 150000, 2024, time.March)
		assert.NoError(t, err)
	})

	t.Run("Meta negativa é rejeitada", func(t *testing.T) {
		err := service.SetIndividualGoal(1, -10, 2024, time.March)
		assert.ErrorIs(t, err, ErrInvalidGoal)
	})

	t.Run("Vendedor inexistente", func(t *testing.T) {
		userRepo.EXPECT().GetUserByID(42).Return(nil, nil)

		err := service.SetIndividualGoal(42, 1000, 2024, time.March)
		assert.ErrorIs(t, err, ErrSellerNotFound)
	})

	t.Run("Período inválido", func(t *testing.T) {
		err := service.SetIndividualGoal(1, 1000, 2024, time.Month(13))
		assert.ErrorIs(t, err, ErrInvalidPeriod)
	})
}

func TestListSellerGoals(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)
	goalRepo := mocks.NewMockGoalRepository(ctrl)
	service := NewService(userRepo, goalRepo)

	userRepo.EXPECT().ListActiveSellers().Return([]*domain.User{
		{ID: 1, Name: "Ana"},
		{ID: 2, Name: "Bruno"},
	}, nil)

	goalRepo.EXPECT().ListIndividualGoals(2024, time.March).Return([]*domain.IndividualGoal{
		{UserID: 1, Goal: 120000, Year: 2024, Month: time.March},
	}, nil)

	goals, err := service.ListSellerGoals(2024, time.March)
	require.NoError(t, err)
	require.Len(t, goals, 2)

	assert.Equal(t, 120000.0, goals[0].Goal)

	// Vendedor sem meta cadastrada aparece com meta zero
	assert.Equal(t, "Bruno", goals[1].Name)
	assert.Equal(t, 0.0, goals[1].Goal)
}
