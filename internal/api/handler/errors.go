package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/ads-analytics-api/internal/domain"
	"github.com/vfg2006/ads-analytics-api/internal/scheduler"
	"github.com/vfg2006/ads-analytics-api/internal/usecases/fetching"
	"github.com/vfg2006/ads-analytics-api/internal/usecases/reporting"
	"github.com/vfg2006/ads-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/ads-analytics-api/pkg/log"
)

// handleServiceError traduz os erros dos usecases para a resposta padronizada
func handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	logger := log.ForContext(r.Context()).WithError(err)

	var fetchErr *fetching.FetchError
	if errors.As(err, &fetchErr) {
		logger.WithField("table", fetchErr.Table).Error("Erro ao processar snapshot")
		apiErrors.WriteError(w, fetchErr.Code, fetchErr.Error(), map[string]any{
			"table": fetchErr.Table,
		})
		return
	}

	switch {
	case errors.Is(err, domain.ErrInvalidAccountID):
		apiErrors.WriteError(w, apiErrors.ErrInvalidAccountID, err.Error(), nil)

	case errors.Is(err, scheduler.ErrSyncInProgress):
		apiErrors.WriteError(w, apiErrors.ErrSyncInProgress, "Sincronização já em andamento", nil)

	case errors.Is(err, fetching.ErrNoData):
		apiErrors.WriteError(w, apiErrors.ErrNoData, err.Error(), nil)

	case errors.Is(err, reporting.ErrUnknownTable):
		apiErrors.WriteError(w, apiErrors.ErrTableNotFound, err.Error(), nil)

	case errors.Is(err, reporting.ErrUnknownFormat):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)

	default:
		logger.Error("Erro inesperado")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao processar a requisição", nil)
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao codificar resposta")
	}
}
