package ingesting

import (
	"context"
	"testing"

	"github.com/TeuSpnl/comisys/infrastructure/repository/mocks"
	"github.com/TeuSpnl/comisys/internal/domain"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func intPtr(v int) *int {
	return &v
}

func TestIngestSpreadsheet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	mockSaleRepo := mocks.NewMockSaleRepository(ctrl)

	service := NewService(NewExtractor(testConfig()), mockUserRepo, mockSaleRepo)

	file := buildWorkbook(t, [][]any{
		{"Data", "Valor Total", "Nº Ped/ OS/ PRQ", "Vendedor", "Cliente"},
		{"02/01/2024", "100,00", "P1", "JOSE DA SILVA", "Cliente A"},
		{"03/01/2024", "200,00", "P2", "Desconhecido", "Cliente B"},
		{"04/01/2024", "300,00", "P3", "Desconhecido", "Cliente C"},
	})

	mockUserRepo.EXPECT().
		ListActiveSellers().
		Return([]*domain.User{
			{ID: 7, Name: "José da Silva", Role: domain.RoleSeller},
		}, nil)

	mockSaleRepo.EXPECT().
		Reconcile(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, records []domain.ResolvedRecord, window []domain.MonthWindow) (*domain.ReconciliationPlan, error) {
			require.Len(t, records, 3)

			// O nome da planilha casa com o vendedor apesar de caixa e acentos
			assert.Equal(t, intPtr(7), records[0].UserID)

			// Vendas de vendedor não reconhecido seguem sem dono
			assert.Nil(t, records[1].UserID)
			assert.Nil(t, records[2].UserID)

			require.Len(t, window, 1)
			assert.Equal(t, domain.MonthWindow{Year: 2024, Month: 1}, window[0])

			return &domain.ReconciliationPlan{Inserted: 3}, nil
		})

	report, err := service.IngestSpreadsheet(context.Background(), file)
	require.NoError(t, err)

	assert.Equal(t, 3, report.RowsRead)
	assert.Equal(t, 0, report.RowsDropped)
	assert.Equal(t, 3, report.Inserted)
	assert.NotEmpty(t, report.BatchID)

	// Vendedor não reconhecido aparece uma única vez no relatório
	assert.Equal(t, []string{"Desconhecido"}, report.UnmatchedSellers)
}

func TestIngestSpreadsheetHeaderNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	mockSaleRepo := mocks.NewMockSaleRepository(ctrl)

	service := NewService(NewExtractor(testConfig()), mockUserRepo, mockSaleRepo)

	file := buildWorkbook(t, [][]any{
		{"Relatório sem cabeçalho"},
	})

	// Falha de extração não toca o banco: nenhuma chamada esperada nos mocks
	_, err := service.IngestSpreadsheet(context.Background(), file)
	assert.ErrorIs(t, err, ErrHeaderNotFound)
}

func TestIngestSpreadsheetReconcileFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	mockSaleRepo := mocks.NewMockSaleRepository(ctrl)

	service := NewService(NewExtractor(testConfig()), mockUserRepo, mockSaleRepo)

	file := buildWorkbook(t, [][]any{
		{"Data", "Valor Total", "Nº Ped/ OS/ PRQ", "Vendedor", "Cliente"},
		{"02/01/2024", "100,00", "P1", "José", "Cliente A"},
	})

	mockUserRepo.EXPECT().ListActiveSellers().Return(nil, nil)

	mockSaleRepo.EXPECT().
		Reconcile(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("deadlock detected"))

	_, err := service.IngestSpreadsheet(context.Background(), file)

	var reconcileErr *ReconciliationError
	assert.ErrorAs(t, err, &reconcileErr)
}

func TestIngestSpreadsheetEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	mockSaleRepo := mocks.NewMockSaleRepository(ctrl)

	service := NewService(NewExtractor(testConfig()), mockUserRepo, mockSaleRepo)

	file := buildWorkbook(t, [][]any{
		{"Data", "Valor Total", "Nº Ped/ OS/ PRQ", "Vendedor", "Cliente"},
	})

	_, err := service.IngestSpreadsheet(context.Background(), file)
	assert.ErrorIs(t, err, ErrEmptySpreadsheet)
}
