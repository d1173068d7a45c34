package handler

import (
	"net/http"

	"github.com/TeuSpnl/comisys/internal/scheduler"
	"github.com/TeuSpnl/comisys/pkg/apiErrors"
	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
)

// Tipos de rotina agendada que podem ser disparadas manualmente
const (
	CronJobTypeIntegrity = "integrity"
)

// CronJobServices contém os serviços agendados expostos para execução manual
type CronJobServices struct {
	IntegritySweepService *scheduler.IntegritySweepService
}

// RunCronJob executa manualmente uma rotina agendada específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de rotina não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeIntegrity:
			if services.IntegritySweepService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de varredura de integridade não disponível", nil)
				return
			}
			services.IntegritySweepService.TriggerManualSweep()

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de rotina inválido. Valores aceitos: integrity", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"status": "started",
			"type":   cronType,
		})
	}
}

// GetCronStatus retorna o status das rotinas agendadas
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}

		if services.IntegritySweepService != nil {
			status["integrity"] = services.IntegritySweepService.GetStatus()
		}

		w.Header().Set("Content-Type", "application/json")
		err := json.NewEncoder(w).Encode(status)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}
