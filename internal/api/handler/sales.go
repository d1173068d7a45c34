package handler

import (
	"net/http"
	"strconv"

	"github.com/TeuSpnl/comisys/infrastructure/repository"
	"github.com/TeuSpnl/comisys/pkg/apiErrors"
	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
)

// DeleteSale remove uma venda pelo ID. Correção manual de carga; o caminho
// normal de remoção é a própria conciliação.
func DeleteSale(saleRepo repository.SaleRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteSale")

		idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if idStr == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da venda não fornecido", nil)
			return
		}

		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID da venda inválido", nil)
			return
		}

		if err := saleRepo.DeleteByID(id); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao remover venda", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// DeleteSalesByUser remove todas as vendas atribuídas a um usuário
func DeleteSalesByUser(saleRepo repository.SaleRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteSalesByUser")

		id, ok := userIDFromPath(w, r)
		if !ok {
			return
		}

		if err := saleRepo.DeleteByUser(id); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao remover vendas do usuário", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
