package handler

import (
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/ads-analytics-api/internal/usecases/querying"
	"github.com/vfg2006/ads-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/ads-analytics-api/pkg/log"
)

// maxQueryBodyBytes limita o corpo de /v1/query; a pergunta vai inteira para o prompt
const maxQueryBodyBytes = 16 << 10

type QueryRequest struct {
	Question string `json:"question"`
}

// ProcessQuery responde 200 mesmo quando a consulta falha: o motivo vem no
// campo error do resultado.
func ProcessQuery(service querying.QueryService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxQueryBodyBytes)

		var req QueryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Requisição excede o tamanho máximo", map[string]any{
					"max_bytes": maxErr.Limit,
				})
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if strings.TrimSpace(req.Question) == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Pergunta não informada", nil)
			return
		}

		result := service.ProcessQuery(r.Context(), req.Question)

		logger := log.ForContext(r.Context()).WithField("query_type", result.QueryType)
		if result.Failed() {
			logger.WithField("error", result.Error).Warn("Consulta finalizada com erro")
		} else {
			logger.Info("Consulta processada")
		}

		writeJSON(w, r, http.StatusOK, result)
	})
}

func GetQuerySchema(service querying.QueryService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, service.Schema())
	})
}
