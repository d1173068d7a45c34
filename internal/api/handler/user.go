package handler

import (
	"net/http"

	"github.com/TeuSpnl/comisys/internal/domain"
	"github.com/TeuSpnl/comisys/internal/usecases/authenticating"
	"github.com/TeuSpnl/comisys/pkg/apiErrors"
	"github.com/TeuSpnl/comisys/pkg/middleware"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// GetUser retorna informações do usuário por ID
func GetUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := userIDFromPath(w, r)
		if !ok {
			return
		}

		// Vendedor só enxerga o próprio perfil
		userClaims, claimsOK := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !claimsOK || (userClaims.UserID != id && userClaims.UserRole != domain.RoleMaster) {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para ver este usuário", nil)
			return
		}

		user, err := service.GetUserProfile(id)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar usuário", nil)
			return
		}

		if user == nil {
			apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "Usuário não encontrado", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(user)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

type CreateUserRequest struct {
	Username string  `json:"username"`
	Name     string  `json:"name"`
	Password string  `json:"password"`
	Role     string  `json:"role"`
	Branch   *string `json:"branch"`
}

// CreateUser cria um novo usuário
func CreateUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateUser")

		var req CreateUserRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if req.Username == "" || req.Name == "" || req.Password == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Username, nome e senha são obrigatórios", nil)
			return
		}

		if req.Role == "" {
			req.Role = domain.RoleSeller
		}

		user, err := service.CreateUser(&domain.User{
			Username:     req.Username,
			Name:         req.Name,
			PasswordHash: req.Password,
			Role:         req.Role,
			Branch:       req.Branch,
		})
		if err != nil {
			logrus.Error(err)

			if errors.Is(err, authenticating.ErrUserAlreadyExists) {
				apiErrors.WriteError(w, apiErrors.ErrUserAlreadyExists, "Username já cadastrado", nil)
				return
			} else if errors.Is(err, authenticating.ErrMissingRequiredData) {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
				return
			}

			var authErr *authenticating.AuthError
			if errors.As(err, &authErr) {
				apiErrors.WriteError(w, authErr.Code, authErr.Details, nil)
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao criar usuário", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		err = json.NewEncoder(w).Encode(user)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// ListUsers lista todos os usuários
func ListUsers(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := service.ListUsers()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar usuários", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(users)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// UpdateUser atualiza informações do usuário
func UpdateUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateUser")

		id, ok := userIDFromPath(w, r)
		if !ok {
			return
		}

		// O usuário pode editar apenas o próprio perfil, a menos que seja master
		userClaims, claimsOK := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !claimsOK || (userClaims.UserID != id && userClaims.UserRole != domain.RoleMaster) {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para editar este usuário", nil)
			return
		}

		var updateReq domain.UpdateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		updateReq.ID = id

		// Papel, filial e status só mudam pela mão de um master
		if userClaims.UserRole != domain.RoleMaster &&
			(updateReq.Role != nil || updateReq.Branch != nil || updateReq.Active != nil || updateReq.Deleted != nil) {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas masters podem alterar papel, filial ou status", nil)
			return
		}

		err := service.UpdateUser(userClaims, &updateReq)
		if err != nil {
			logrus.Error(err)

			if errors.Is(err, authenticating.ErrUserNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "Usuário não encontrado", nil)
				return
			}

			var authErr *authenticating.AuthError
			if errors.As(err, &authErr) {
				apiErrors.WriteError(w, authErr.Code, authErr.Details, nil)
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao atualizar usuário", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
	}
}

// DeleteUser exclui (soft delete) um usuário. As vendas históricas dele são
// preservadas; as metas são removidas junto.
func DeleteUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteUser")

		id, ok := userIDFromPath(w, r)
		if !ok {
			return
		}

		userClaims, claimsOK := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !claimsOK {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Não autorizado", nil)
			return
		}

		err := service.DeleteSeller(userClaims, id)
		if err != nil {
			logrus.Error(err)

			switch {
			case errors.Is(err, authenticating.ErrUserNotFound):
				apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "Usuário não encontrado", nil)

			case errors.Is(err, authenticating.ErrInsufficientPrivilege):
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Não é permitido excluir outro usuário master", nil)

			default:
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao excluir usuário", nil)
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
