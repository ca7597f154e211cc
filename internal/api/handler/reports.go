package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/ads-analytics-api/internal/domain"
	"github.com/vfg2006/ads-analytics-api/internal/usecases/reporting"
	"github.com/vfg2006/ads-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/ads-analytics-api/pkg/log"
)

func GetOverview(service reporting.ReportService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		overview, err := service.Overview(r.Context())
		if err != nil {
			handleServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, overview)
	})
}

func GetPerformance(service reporting.ReportService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		performance, err := service.Performance(r.Context())
		if err != nil {
			handleServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, performance)
	})
}

// ExportTable devolve uma tabela inteira como anexo. Formato padrão: json.
func ExportTable(service reporting.ReportService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := httprouter.ParamsFromContext(r.Context()).ByName("table")

		table, ok := domain.ParseTable(name)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrTableNotFound, "Tabela desconhecida", map[string]any{
				"table":     name,
				"available": []domain.Table{domain.TableCampaigns, domain.TableAdSets, domain.TableAds, domain.TableInsights},
			})
			return
		}

		format := domain.ExportFormat(strings.ToLower(r.URL.Query().Get("format")))
		if format == "" {
			format = domain.ExportFormatJSON
		}

		export, err := service.Export(r.Context(), table, format)
		if err != nil {
			handleServiceError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", export.ContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, export.Filename))
		w.WriteHeader(http.StatusOK)

		if _, err := w.Write(export.Content); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("Erro ao enviar exportação")
		}
	})
}
