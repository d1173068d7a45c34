package dashboarding

import (
	"testing"
	"time"

	"github.com/TeuSpnl/comisys/infrastructure/repository/mocks"
	"github.com/TeuSpnl/comisys/internal/config"
	"github.com/TeuSpnl/comisys/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testDashboardConfig() *config.Config {
	return &config.Config{
		Commission: config.Commission{
			DefaultBranch: domain.BranchLoja,
		},
		CommissionTables: domain.CommissionTables{
			domain.BranchLoja:    lojaTable,
			domain.BranchOficina: oficinaTable,
		},
	}
}

func TestSellerDashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)
	saleRepo := mocks.NewMockSaleRepository(ctrl)
	goalRepo := mocks.NewMockGoalRepository(ctrl)

	service := NewService(userRepo, saleRepo, goalRepo, testDashboardConfig())

	branch := domain.BranchLoja
	seller := &domain.User{ID: 1, Name: "Ana", Role: domain.RoleSeller, Branch: &branch}

	userRepo.EXPECT().GetUserByID(1).Return(seller, nil)
	saleRepo.EXPECT().TotalByUserAndPeriod(1, 2024, time.March).Return(225000.0, nil)
	saleRepo.EXPECT().ListByUserAndPeriod(1, 2024, time.March).Return(nil, nil)
	goalRepo.EXPECT().GetIndividualGoal(1, 2024, time.March).Return(&domain.IndividualGoal{
		UserID: 1, Goal: 200000, Year: 2024, Month: time.March,
	}, nil)
	saleRepo.EXPECT().TotalByBranchAndPeriod(domain.BranchLoja, 2024, time.March).Return(400000.0, nil)

	dashboard, err := service.SellerDashboard(1, 2024, time.March)
	require.NoError(t, err)
	require.NotNil(t, dashboard)

	assert.Equal(t, 225000.0, dashboard.TotalSales)
	assert.Equal(t, "R$ 225.000,00", dashboard.TotalSalesFormatted)

	assert.Equal(t, 112.5, dashboard.GoalPercentage)
	assert.Equal(t, "112,50%", dashboard.GoalPercentageFormatted)

	// Loja: 1% de comissão + bônus do degrau de 225 mil (0,6%)
	assert.Equal(t, 2250.0, dashboard.Commission.Commission)
	assert.Equal(t, 1350.0, dashboard.Commission.Bonus)
	assert.Equal(t, "R$ 2.250,00", dashboard.CommissionFormatted)
	assert.Equal(t, "R$ 1.350,00", dashboard.BonusFormatted)
}

func TestSellerDashboardWithoutGoal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)
	saleRepo := mocks.NewMockSaleRepository(ctrl)
	goalRepo := mocks.NewMockGoalRepository(ctrl)

	service := NewService(userRepo, saleRepo, goalRepo, testDashboardConfig())

	// Sem filial definida: vale a tabela da filial padrão (Loja)
	seller := &domain.User{ID: 2, Name: "Bruno", Role: domain.RoleSeller}

	userRepo.EXPECT().GetUserByID(2).Return(seller, nil)
	saleRepo.EXPECT().TotalByUserAndPeriod(2, 2024, time.March).Return(50000.0, nil)
	saleRepo.EXPECT().ListByUserAndPeriod(2, 2024, time.March).Return(nil, nil)
	goalRepo.EXPECT().GetIndividualGoal(2, 2024, time.March).Return(nil, nil)
	saleRepo.EXPECT().TotalByBranchAndPeriod(domain.BranchLoja, 2024, time.March).Return(50000.0, nil)

	dashboard, err := service.SellerDashboard(2, 2024, time.March)
	require.NoError(t, err)

	// Meta ausente: progresso zero em vez de divisão por zero
	assert.Equal(t, 0.0, dashboard.GoalPercentage)
	assert.Equal(t, 500.0, dashboard.Commission.Commission)
	assert.Equal(t, 0.0, dashboard.Commission.Bonus)
}

func TestCompanyDashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)
	saleRepo := mocks.NewMockSaleRepository(ctrl)
	goalRepo := mocks.NewMockGoalRepository(ctrl)

	service := NewService(userRepo, saleRepo, goalRepo, testDashboardConfig())

	loja := domain.BranchLoja
	oficina := domain.BranchOficina

	saleRepo.EXPECT().TotalByCompanyAndPeriod(2024, time.March).Return(800000.0, nil)
	goalRepo.EXPECT().GetGeneralGoal(2024, time.March).Return(&domain.GeneralGoal{
		Goal: 1000000, Year: 2024, Month: time.March,
	}, nil)
	userRepo.EXPECT().ListActiveSellers().Return([]*domain.User{
		{ID: 1, Name: "Ana", Branch: &loja},
		{ID: 2, Name: "Bruno", Branch: &oficina},
	}, nil)
	goalRepo.EXPECT().ListIndividualGoals(2024, time.March).Return(nil, nil)

	saleRepo.EXPECT().TotalByUserAndPeriod(1, 2024, time.March).Return(100000.0, nil)
	saleRepo.EXPECT().TotalByUserAndPeriod(2, 2024, time.March).Return(200000.0, nil)

	// Total por filial é consultado uma única vez por filial
	saleRepo.EXPECT().TotalByBranchAndPeriod(domain.BranchLoja, 2024, time.March).Return(300000.0, nil)
	saleRepo.EXPECT().TotalByBranchAndPeriod(domain.BranchOficina, 2024, time.March).Return(500000.0, nil)

	dashboard, err := service.CompanyDashboard(2024, time.March)
	require.NoError(t, err)

	assert.Equal(t, 800000.0, dashboard.TotalSales)
	assert.Equal(t, 80.0, dashboard.GoalPercentage)
	require.Len(t, dashboard.Sellers, 2)

	// Oficina bateu o limiar de 500 mil: taxa promovida a 1%
	assert.Equal(t, 0.01, dashboard.Sellers[1].Commission.CommissionRate)
	assert.Equal(t, 2000.0, dashboard.Sellers[1].Commission.Commission)
}
