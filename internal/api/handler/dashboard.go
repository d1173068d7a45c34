package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/TeuSpnl/comisys/internal/domain"
	"github.com/TeuSpnl/comisys/internal/usecases/dashboarding"
	"github.com/TeuSpnl/comisys/pkg/apiErrors"
	"github.com/TeuSpnl/comisys/pkg/middleware"
	"github.com/TeuSpnl/comisys/pkg/utils"
	"github.com/sirupsen/logrus"
)

// GetMyDashboard retorna o painel mensal do vendedor logado
func GetMyDashboard(service dashboarding.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		year, month, ok := periodFromQuery(w, r)
		if !ok {
			return
		}

		writeSellerDashboard(w, service, userClaims.UserID, year, month)
	}
}

// GetSellerDashboard retorna o painel mensal de um vendedor específico.
// Restrito a masters pelo middleware de papel.
func GetSellerDashboard(service dashboarding.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := userIDFromPath(w, r)
		if !ok {
			return
		}

		year, month, ok := periodFromQuery(w, r)
		if !ok {
			return
		}

		writeSellerDashboard(w, service, id, year, month)
	}
}

// GetCompanyDashboard retorna o painel consolidado da empresa no mês
func GetCompanyDashboard(service dashboarding.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		year, month, ok := periodFromQuery(w, r)
		if !ok {
			return
		}

		dashboard, err := service.CompanyDashboard(year, month)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao montar painel da empresa", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(dashboard)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

func writeSellerDashboard(w http.ResponseWriter, service dashboarding.Dashboarder, userID int, year int, month time.Month) {
	dashboard, err := service.SellerDashboard(userID, year, month)
	if err != nil {
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao montar painel do vendedor", nil)
		return
	}

	if dashboard == nil {
		apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "Vendedor não encontrado", nil)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(dashboard)
	if err != nil {
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		return
	}
}

// periodFromQuery lê year e month da query string; sem parâmetros, o período
// corrente é usado.
func periodFromQuery(w http.ResponseWriter, r *http.Request) (int, time.Month, bool) {
	year, month := utils.CurrentPeriod()

	if yearStr := r.URL.Query().Get("year"); yearStr != "" {
		parsed, err := strconv.Atoi(yearStr)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro year inválido", nil)
			return 0, 0, false
		}
		year = parsed
	}

	if monthStr := r.URL.Query().Get("month"); monthStr != "" {
		parsed, err := strconv.Atoi(monthStr)
		if err != nil || parsed < 1 || parsed > 12 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro month inválido", nil)
			return 0, 0, false
		}
		month = time.Month(parsed)
	}

	return year, month, true
}
