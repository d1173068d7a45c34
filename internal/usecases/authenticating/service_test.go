package authenticating

import (
	"context"
	"testing"

	"github.com/TeuSpnl/comisys/infrastructure/repository/mocks"
	"github.com/TeuSpnl/comisys/internal/config"
	"github.com/TeuSpnl/comisys/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func testUser(t *testing.T, password string) *domain.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return &domain.User{
		ID:           1,
		Username:     "jose",
		Name:         "José da Silva",
		PasswordHash: string(hash),
		Role:         domain.RoleSeller,
		Active:       true,
		TokenVersion: 3,
	}
}

func newTestService(ctrl *gomock.Controller) (*Service, *mocks.MockUserRepository, *mocks.MockGoalRepository) {
	userRepo := mocks.NewMockUserRepository(ctrl)
	goalRepo := mocks.NewMockGoalRepository(ctrl)

	service := NewService(userRepo, goalRepo, &config.Config{SecretKey: "chave-de-teste"}).(*Service)
	return service, userRepo, goalRepo
}

func TestLoginUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, userRepo, _ := newTestService(ctrl)
	user := testUser(t, "senha123")

	t.Run("Login com credenciais corretas emite token válido", func(t *testing.T) {
		userRepo.EXPECT().GetUserByUsername("jose").Return(user, nil)

		token, err := service.LoginUser("JOSE ", "senha123")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		// O token emitido passa na validação e carrega a versão atual
		userRepo.EXPECT().GetUserByID(1).Return(user, nil)

		claims, err := service.ValidateToken(context.Background(), token)
		require.NoError(t, err)
		assert.Equal(t, 1, claims.UserID)
		assert.Equal(t, "jose", claims.Username)
		assert.Equal(t, 3, claims.TokenVersion)
	})

	t.Run("Senha incorreta", func(t *testing.T) {
		userRepo.EXPECT().GetUserByUsername("jose").Return(user, nil)

		_, err := service.LoginUser("jose", "errada")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Usuário desativado", func(t *testing.T) {
		disabled := testUser(t, "senha123")
		disabled.Active = false

		userRepo.EXPECT().GetUserByUsername("jose").Return(disabled, nil)

		_, err := service.LoginUser("jose", "senha123")
		assert.ErrorIs(t, err, ErrUserDisabled)
	})

	t.Run("Usuário inexistente", func(t *testing.T) {
		userRepo.EXPECT().GetUserByUsername("ninguem").Return(nil, nil)

		_, err := service.LoginUser("ninguem", "senha123")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestValidateTokenRevocation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, userRepo, _ := newTestService(ctrl)
	user := testUser(t, "senha123")

	userRepo.EXPECT().GetUserByUsername("jose").Return(user, nil)

	token, err := service.LoginUser("jose", "senha123")
	require.NoError(t, err)

	t.Run("Versão de token antiga é rejeitada", func(t *testing.T) {
		// Simula a revogação: o banco já tem uma versão mais nova
		bumped := *user
		bumped.TokenVersion = 4

		userRepo.EXPECT().GetUserByID(1).Return(&bumped, nil)

		_, err := service.ValidateToken(context.Background(), token)
		assert.ErrorIs(t, err, ErrRevokedToken)
	})

	t.Run("Usuário excluído perde a sessão", func(t *testing.T) {
		userRepo.EXPECT().GetUserByID(1).Return(nil, nil)

		_, err := service.ValidateToken(context.Background(), token)
		assert.ErrorIs(t, err, ErrRevokedToken)
	})

	t.Run("Usuário desativado perde a sessão", func(t *testing.T) {
		disabled := *user
		disabled.Active = false

		userRepo.EXPECT().GetUserByID(1).Return(&disabled, nil)

		_, err := service.ValidateToken(context.Background(), token)
		assert.ErrorIs(t, err, ErrRevokedToken)
	})

	t.Run("Token adulterado é rejeitado", func(t *testing.T) {
		_, err := service.ValidateToken(context.Background(), token+"x")
		assert.Error(t, err)
	})
}

func TestCreateUserValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, userRepo, _ := newTestService(ctrl)

	t.Run("Papel desconhecido", func(t *testing.T) {
		_, err := service.CreateUser(&domain.User{
			Username:     "novo",
			Name:         "Novo",
			PasswordHash: "senha123",
			Role:         "gerente",
		})
		assert.ErrorIs(t, err, ErrInvalidRole)
	})

	t.Run("Filial desconhecida", func(t *testing.T) {
		branch := "Depósito"
		_, err := service.CreateUser(&domain.User{
			Username:     "novo",
			Name:         "Novo",
			PasswordHash: "senha123",
			Role:         domain.RoleSeller,
			Branch:       &branch,
		})
		assert.ErrorIs(t, err, ErrInvalidBranch)
	})

	t.Run("Username duplicado sem diferenciar maiúsculas", func(t *testing.T) {
		userRepo.EXPECT().
			GetUserByUsername("novo").
			Return(&domain.User{ID: 2, Username: "novo"}, nil)

		_, err := service.CreateUser(&domain.User{
			Username:     "NOVO",
			Name:         "Novo",
			PasswordHash: "senha123",
			Role:         domain.RoleSeller,
		})
		assert.ErrorIs(t, err, ErrUserAlreadyExists)
	})
}

func TestDeleteSeller(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, userRepo, goalRepo := newTestService(ctrl)
	actor := &domain.Claims{UserID: 99, UserRole: domain.RoleMaster}

	t.Run("Exclusão revoga tokens e remove metas", func(t *testing.T) {
		seller := testUser(t, "senha123")

		userRepo.EXPECT().GetUserByID(1).Return(seller, nil)
		userRepo.EXPECT().UpdateUser(gomock.Any()).DoAndReturn(func(u *domain.User) error {
			assert.True(t, u.Deleted)
			assert.False(t, u.Active)
			assert.NotNil(t, u.DeletedAt)
			return nil
		})
		userRepo.EXPECT().BumpTokenVersion(1).Return(nil)
		goalRepo.EXPECT().DeleteGoalsByUser(1).Return(nil)

		err := service.DeleteSeller(actor, 1)
		assert.NoError(t, err)
	})

	t.Run("Outro master não pode ser excluído", func(t *testing.T) {
		master := testUser(t, "senha123")
		master.ID = 2
		master.Role = domain.RoleMaster

		userRepo.EXPECT().GetUserByID(2).Return(master, nil)

		err := service.DeleteSeller(actor, 2)
		assert.ErrorIs(t, err, ErrInsufficientPrivilege)
	})
}
