package authenticating

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/TeuSpnl/comisys/infrastructure/repository"
	"github.com/TeuSpnl/comisys/internal/config"
	"github.com/TeuSpnl/comisys/internal/domain"
	"github.com/TeuSpnl/comisys/pkg/apiErrors"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type Authenticator interface {
	CreateUser(user *domain.User) (*domain.User, error)
	UpdateUser(actor *domain.Claims, req *domain.UpdateUserRequest) error
	DeleteSeller(actor *domain.Claims, userID int) error
	ListUsers() ([]*domain.User, error)
	LoginUser(username, password string) (string, error)
	GetUserProfile(userID int) (*domain.User, error)
	ValidateToken(ctx context.Context, tokenString string) (*domain.Claims, error)
	GenerateStrongPassword(targetUserID int) (string, error)
	ChangePassword(userID int, currentPassword, newPassword string) error
}

type Service struct {
	userRepo repository.UserRepository
	goalRepo repository.GoalRepository
	cfg      *config.Config
}

func NewService(userRepo repository.UserRepository, goalRepo repository.GoalRepository, cfg *config.Config) Authenticator {
	return &Service{
		userRepo: userRepo,
		goalRepo: goalRepo,
		cfg:      cfg,
	}
}

func (s *Service) CreateUser(user *domain.User) (*domain.User, error) {
	if user.Username == "" || user.Name == "" || user.PasswordHash == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Username, nome e senha são obrigatórios")
	}

	if user.Role != domain.RoleMaster && user.Role != domain.RoleSeller {
		return nil, NewAuthError(ErrInvalidRole, apiErrors.ErrInvalidFormat, fmt.Sprintf("Papel desconhecido: %s", user.Role))
	}

	if err := validateBranch(user.Branch); err != nil {
		return nil, NewAuthError(err, apiErrors.ErrInvalidFormat, "Filial desconhecida")
	}

	user.Username = handleUsername(user.Username)

	existing, err := s.userRepo.GetUserByUsername(user.Username)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário")
	}
	if existing != nil {
		return nil, NewAuthError(ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, "Username já cadastrado")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.PasswordHash), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user.PasswordHash = string(hashedPassword)
	user.Active = true

	user, err = s.userRepo.CreateUser(user)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao criar usuário")
	}

	user.PasswordHash = ""
	return user, nil
}

// handleUsername normaliza o username para o cadastro; a comparação no banco
// também ignora maiúsculas
func handleUsername(s string) string {
	username := strings.ToLower(s)
	username = strings.TrimSpace(username)
	username = strings.ReplaceAll(username, " ", "")
	return username
}

func validateBranch(branch *string) error {
	if branch == nil || *branch == "" {
		return nil
	}
	if *branch != domain.BranchLoja && *branch != domain.BranchOficina {
		return ErrInvalidBranch
	}
	return nil
}

func (s *Service) UpdateUser(actor *domain.Claims, req *domain.UpdateUserRequest) error {
	if req.ID == 0 {
		return NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "ID é obrigatório")
	}

	user, err := s.userRepo.GetUserByID(req.ID)
	if err != nil {
		return err
	}
	if user == nil {
		return NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, fmt.Sprintf("Usuário não encontrado para o ID %d", req.ID))
	}

	revokeTokens := false

	if req.Name != nil {
		user.Name = *req.Name
	}

	if req.Role != nil {
		if *req.Role != domain.RoleMaster && *req.Role != domain.RoleSeller {
			return NewAuthError(ErrInvalidRole, apiErrors.ErrInvalidFormat, fmt.Sprintf("Papel desconhecido: %s", *req.Role))
		}
		user.Role = *req.Role
		revokeTokens = true
	}

	if req.Branch != nil {
		if err := validateBranch(req.Branch); err != nil {
			return NewAuthError(err, apiErrors.ErrInvalidFormat, "Filial desconhecida")
		}
		user.Branch = req.Branch
	}

	if req.Password != nil && *req.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user.PasswordHash = string(hashedPassword)
		revokeTokens = true
	} else {
		user.PasswordHash = ""
	}

	if req.Active != nil {
		user.Active = *req.Active
		if !*req.Active {
			revokeTokens = true
		}
	}

	if req.Deleted != nil && *req.Deleted {
		now := time.Now()
		user.Deleted = true
		user.DeletedAt = &now
		revokeTokens = true
	}

	if err := s.userRepo.UpdateUser(user); err != nil {
		return NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao atualizar usuário")
	}

	// Desativar ou excluir encerra as sessões abertas do usuário; se o
	// próprio ator se desativou, o token dele morre junto
	if revokeTokens {
		if err := s.userRepo.BumpTokenVersion(user.ID); err != nil {
			logrus.WithError(err).Warnf("Erro ao revogar tokens do usuário %d", user.ID)
		}
	}

	return nil
}

// DeleteSeller exclui (soft delete) um vendedor, revoga os tokens dele e
// limpa as metas associadas. As vendas ficam: o histórico da empresa não
// desaparece junto com o vendedor.
func (s *Service) DeleteSeller(actor *domain.Claims, userID int) error {
	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, fmt.Sprintf("Usuário não encontrado para o ID %d", userID))
	}

	if user.IsMaster() && actor.UserID != userID {
		return NewAuthError(ErrInsufficientPrivilege, apiErrors.ErrInsufficientPrivilege, "Não é permitido excluir outro usuário master")
	}

	now := time.Now()
	user.Deleted = true
	user.DeletedAt = &now
	user.Active = false
	user.PasswordHash = ""

	if err := s.userRepo.UpdateUser(user); err != nil {
		return NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao excluir usuário")
	}

	if err := s.userRepo.BumpTokenVersion(userID); err != nil {
		logrus.WithError(err).Warnf("Erro ao revogar tokens do usuário %d", userID)
	}

	if err := s.goalRepo.DeleteGoalsByUser(userID); err != nil {
		logrus.WithError(err).Warnf("Erro ao remover metas do usuário %d", userID)
	}

	return nil
}

func (s *Service) ListUsers() ([]*domain.User, error) {
	users, err := s.userRepo.ListUsers()
	if err != nil {
		return nil, err
	}

	for _, user := range users {
		user.PasswordHash = ""
	}

	return users, nil
}

func (s *Service) LoginUser(username, password string) (string, error) {
	if username == "" || password == "" {
		return "", NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Username e senha são obrigatórios")
	}

	username = handleUsername(username)

	user, err := s.userRepo.GetUserByUsername(username)
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário no banco de dados")
	}

	if user == nil {
		return "", NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, "Usuário não encontrado")
	}

	if !user.Active {
		return "", NewUserAuthError(ErrUserDisabled, apiErrors.ErrUserDisabled, user.ID, "Conta desativada")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", NewUserAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, user.ID, "Senha incorreta")
	}

	token, err := generateJWT(user, s.cfg.SecretKey)
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar token de autenticação")
	}

	return token, nil
}

func (s *Service) GetUserProfile(userID int) (*domain.User, error) {
	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		logrus.Error(err)
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	user.PasswordHash = ""
	return user, nil
}

func generateJWT(user *domain.User, secretKey string) (string, error) {
	claims := domain.Claims{
		UserID:       user.ID,
		Username:     user.Username,
		UserName:     user.Name,
		UserRole:     user.Role,
		UserBranch:   user.Branch,
		TokenVersion: user.TokenVersion,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secretKey))
}

// ValidateToken confere a assinatura e revalida o usuário no banco: conta
// excluída, desativada ou com token_version antigo perde a sessão na hora.
func (s *Service) ValidateToken(ctx context.Context, tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	user, err := s.userRepo.GetUserByID(claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.Active {
		return nil, ErrRevokedToken
	}
	if user.TokenVersion != claims.TokenVersion {
		return nil, ErrRevokedToken
	}

	return claims, nil
}

// GenerateStrongPassword gera uma senha forte para o usuário alvo e revoga as
// sessões antigas dele. A restrição a masters fica no middleware de papel.
func (s *Service) GenerateStrongPassword(targetUserID int) (string, error) {
	targetUser, err := s.userRepo.GetUserByID(targetUserID)
	if err != nil {
		return "", err
	}
	if targetUser == nil {
		return "", NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, "Usuário alvo não encontrado")
	}

	newPassword, err := generateStrongPassword(12)
	if err != nil {
		return "", err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	targetUser.PasswordHash = string(hashedPassword)
	if err := s.userRepo.UpdateUser(targetUser); err != nil {
		return "", err
	}

	if err := s.userRepo.BumpTokenVersion(targetUserID); err != nil {
		logrus.WithError(err).Warnf("Erro ao revogar tokens do usuário %d", targetUserID)
	}

	return newPassword, nil
}

// generateStrongPassword gera uma senha com letras maiúsculas, minúsculas,
// números e caracteres especiais
func generateStrongPassword(length int) (string, error) {
	if length < 8 {
		length = 8
	}

	const (
		lowerChars   = "abcdefghijklmnopqrstuvwxyz"
		upperChars   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
		numberChars  = "0123456789"
		specialChars = "!@#$%^&*()-_=+[]{}|;:,.<>?"
		allChars     = lowerChars + upperChars + numberChars + specialChars
	)

	password := make([]byte, length)

	charsets := []string{lowerChars, upperChars, numberChars, specialChars}
	for i, charset := range charsets {
		randomChar, err := getRandomChar(charset)
		if err != nil {
			return "", err
		}
		password[i] = randomChar
	}

	for i := len(charsets); i < length; i++ {
		randomChar, err := getRandomChar(allChars)
		if err != nil {
			return "", err
		}
		password[i] = randomChar
	}

	// Embaralhar para que os tipos de caractere não fiquem em posição fixa
	for i := range password {
		j, err := randomInt(int64(len(password)))
		if err != nil {
			return "", err
		}
		password[i], password[j] = password[j], password[i]
	}

	return string(password), nil
}

func getRandomChar(charset string) (byte, error) {
	n, err := randomInt(int64(len(charset)))
	if err != nil {
		return 0, err
	}
	return charset[n], nil
}

func randomInt(max int64) (int, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(max))
	if err != nil {
		return 0, err
	}
	return int(n.Int64()), nil
}

// ChangePassword permite que um usuário altere a própria senha. Sessões
// antigas são revogadas; o handler devolve um token novo via novo login.
func (s *Service) ChangePassword(userID int, currentPassword, newPassword string) error {
	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, "Usuário não encontrado")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return NewUserAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, userID, "Senha atual incorreta")
	}

	if len(newPassword) < 8 {
		return NewAuthError(ErrMissingRequiredData, apiErrors.ErrInvalidFormat, "A senha deve conter pelo menos 8 caracteres")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.PasswordHash = string(hashedPassword)
	if err := s.userRepo.UpdateUser(user); err != nil {
		return err
	}

	if err := s.userRepo.BumpTokenVersion(userID); err != nil {
		logrus.WithError(err).Warnf("Erro ao revogar tokens do usuário %d", userID)
	}

	return nil
}
