package handler

import (
	"net/http"

	"github.com/TeuSpnl/comisys/internal/usecases/ingesting"
	"github.com/TeuSpnl/comisys/pkg/apiErrors"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Limite de tamanho do upload de planilha (20 MB)
const maxUploadSize = 20 << 20

// UploadSpreadsheet recebe a planilha de vendas exportada do ERP e dispara a
// conciliação. A resposta é o relatório da passada: contagens e vendedores
// não reconhecidos.
func UploadSpreadsheet(service ingesting.Ingestor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UploadSpreadsheet")

		r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)

		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Arquivo muito grande ou requisição malformada", nil)
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Arquivo da planilha não enviado no campo 'file'", nil)
			return
		}
		defer file.Close()

		logrus.WithFields(logrus.Fields{
			"filename": header.Filename,
			"size":     header.Size,
		}).Info("Planilha recebida para conciliação")

		report, err := service.IngestSpreadsheet(r.Context(), file)
		if err != nil {
			handleIngestError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(report)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

func handleIngestError(w http.ResponseWriter, err error) {
	logrus.Error(err)

	var missingCols *ingesting.MissingColumnsError
	var reconcileErr *ingesting.ReconciliationError

	switch {
	case errors.Is(err, ingesting.ErrHeaderNotFound):
		apiErrors.WriteError(w, apiErrors.ErrHeaderNotFound, "Linha de cabeçalho não encontrada na planilha", nil)

	case errors.As(err, &missingCols):
		apiErrors.WriteError(w, apiErrors.ErrMissingColumns, "Colunas obrigatórias ausentes na planilha", map[string]any{
			"columns": missingCols.Columns,
		})

	case errors.Is(err, ingesting.ErrUploadInProgress):
		apiErrors.WriteError(w, apiErrors.ErrUploadInProgress, "Já existe uma conciliação em andamento, tente novamente em instantes", nil)

	case errors.Is(err, ingesting.ErrEmptySpreadsheet):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Planilha sem linhas de venda válidas", nil)

	case errors.As(err, &reconcileErr):
		apiErrors.WriteError(w, apiErrors.ErrReconciliationFailed, "Falha ao aplicar a conciliação; nenhuma alteração foi feita", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao processar planilha", nil)
	}
}
