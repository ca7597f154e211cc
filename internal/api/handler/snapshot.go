package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/ads-analytics-api/internal/usecases/fetching"
	"github.com/vfg2006/ads-analytics-api/pkg/log"
)

// FetchAccount busca a conta na Graph API e substitui as quatro tabelas
func FetchAccount(service fetching.FetchService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accountID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		log.ForContext(r.Context()).WithField("account_id", accountID).Info("Buscando dados da conta")

		summary, err := service.Fetch(r.Context(), accountID)
		if err != nil {
			handleServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, summary)
	})
}

func GetSnapshot(service fetching.FetchService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		snapshot, err := service.LoadExisting(r.Context())
		if err != nil {
			handleServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, snapshot)
	})
}
