package handler

import (
	"net/http"

	"github.com/vfg2006/ads-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/ads-analytics-api/pkg/log"
)

const CronJobTypeSnapshot = "snapshot"

// SnapshotSyncer é o agendador de sincronização do snapshot
type SnapshotSyncer interface {
	TriggerManualSync() error
	GetStatus() map[string]any
}

// RunSnapshotSync dispara a sincronização do snapshot fora do agendamento
func RunSnapshotSync(syncer SnapshotSyncer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if syncer == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização de snapshot não disponível", nil)
			return
		}

		if err := syncer.TriggerManualSync(); err != nil {
			handleServiceError(w, r, err)
			return
		}

		log.ForContext(r.Context()).WithField("type", CronJobTypeSnapshot).Info("Cron job iniciada manualmente")

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    CronJobTypeSnapshot,
		})
	})
}

func GetCronStatus(syncer SnapshotSyncer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if syncer != nil {
			status[CronJobTypeSnapshot] = syncer.GetStatus()
		}

		writeJSON(w, r, http.StatusOK, status)
	})
}
