package handler

import (
	"net/http"
	"time"

	"github.com/TeuSpnl/comisys/internal/usecases/goalsetting"
	"github.com/TeuSpnl/comisys/pkg/apiErrors"
	"github.com/TeuSpnl/comisys/pkg/utils"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type SetGoalRequest struct {
	Goal  float64 `json:"goal"`
	Year  int     `json:"year"`
	Month int     `json:"month"`
}

// SetSellerGoal cria ou sobrescreve a meta mensal de um vendedor
func SetSellerGoal(service goalsetting.GoalSetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - SetSellerGoal")

		id, ok := userIDFromPath(w, r)
		if !ok {
			return
		}

		req, ok := decodeGoalRequest(w, r)
		if !ok {
			return
		}

		err := service.SetIndividualGoal(id, req.Goal, req.Year, time.Month(req.Month))
		if err != nil {
			handleGoalError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
	}
}

// SetGeneralGoal cria ou sobrescreve a meta mensal da empresa
func SetGeneralGoal(service goalsetting.GoalSetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - SetGeneralGoal")

		req, ok := decodeGoalRequest(w, r)
		if !ok {
			return
		}

		err := service.SetGeneralGoal(req.Goal, req.Year, time.Month(req.Month))
		if err != nil {
			handleGoalError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
	}
}

// ListSellerGoals lista os vendedores ativos com as metas do período
func ListSellerGoals(service goalsetting.GoalSetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		year, month, ok := periodFromQuery(w, r)
		if !ok {
			return
		}

		goals, err := service.ListSellerGoals(year, month)
		if err != nil {
			handleGoalError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(goals)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

func decodeGoalRequest(w http.ResponseWriter, r *http.Request) (SetGoalRequest, bool) {
	var req SetGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
		return SetGoalRequest{}, false
	}

	if req.Year == 0 || req.Month == 0 {
		year, month := utils.CurrentPeriod()
		if req.Year == 0 {
			req.Year = year
		}
		if req.Month == 0 {
			req.Month = int(month)
		}
	}

	return req, true
}

func handleGoalError(w http.ResponseWriter, err error) {
	logrus.Error(err)

	switch {
	case errors.Is(err, goalsetting.ErrInvalidGoal):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Meta deve ser um valor positivo", nil)

	case errors.Is(err, goalsetting.ErrInvalidPeriod):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Período inválido", nil)

	case errors.Is(err, goalsetting.ErrSellerNotFound):
		apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "Vendedor não encontrado", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao salvar meta", nil)
	}
}
