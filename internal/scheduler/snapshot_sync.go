package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-analytics-api/internal/config"
	"github.com/vfg2006/ads-analytics-api/internal/domain"
	"github.com/vfg2006/ads-analytics-api/internal/usecases/fetching"
)

var ErrSyncInProgress = errors.New("sincronização de snapshot já em andamento")

// SnapshotSyncService renova periodicamente o snapshot de uma conta
type SnapshotSyncService struct {
	scheduler           *gocron.Scheduler
	config              config.SnapshotSync
	fetcher             fetching.FetchService
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSummary         *domain.FetchSummary
	lastError           string
}

func NewSnapshotSyncService(fetcher fetching.FetchService, appConfig *config.Config) *SnapshotSyncService {
	syncConfig := appConfig.SnapshotSync

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"account_id":    syncConfig.AccountID,
		"sync_enabled":  syncConfig.Enabled,
	}).Info("Configuração do agendador de snapshot carregada")

	return &SnapshotSyncService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    syncConfig,
		fetcher:   fetcher,
	}
}

// Start agenda a sincronização e para o agendador quando o contexto termina
func (s *SnapshotSyncService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Sincronização de snapshot desabilitada por configuração")
		return nil
	}

	if _, err := domain.NormalizeAccountID(s.config.AccountID); err != nil {
		return fmt.Errorf("erro ao iniciar sincronização de snapshot: %w", err)
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de snapshot")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncSnapshot(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de snapshot: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de snapshot")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *SnapshotSyncService) syncSnapshot(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de snapshot já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	s.runSync(ctx)
}

func (s *SnapshotSyncService) runSync(ctx context.Context) {
	startTime := time.Now()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.WithField("account_id", s.config.AccountID).Info("Iniciando sincronização de snapshot")

	summary, err := s.fetcher.Fetch(ctx, s.config.AccountID)

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if err != nil {
		s.lastError = err.Error()
		logrus.WithFields(logrus.Fields{
			"account_id": s.config.AccountID,
			"error":      err.Error(),
		}).Error("Erro ao sincronizar snapshot")
		return
	}

	s.lastError = ""
	s.lastSummary = summary
	s.lastSyncCompletedAt = time.Now()

	logrus.WithFields(logrus.Fields{
		"duration":  time.Since(startTime).String(),
		"campaigns": summary.Campaigns,
		"adsets":    summary.AdSets,
		"ads":       summary.Ads,
		"insights":  summary.Insights,
	}).Info("Sincronização de snapshot concluída")
}

// TriggerManualSync dispara uma sincronização fora do agendamento. Falha com
// domain.ErrInvalidAccountID se a conta configurada for inválida e com
// ErrSyncInProgress quando já existe uma em andamento.
func (s *SnapshotSyncService) TriggerManualSync() error {
	if _, err := domain.NormalizeAccountID(s.config.AccountID); err != nil {
		logrus.WithField("account_id", s.config.AccountID).Warn("Conta de sincronização inválida, ignorando solicitação manual")
		return fmt.Errorf("erro ao disparar sincronização de snapshot: %w", err)
	}

	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de snapshot já em andamento, ignorando solicitação manual")
		return ErrSyncInProgress
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de snapshot")
	go s.runSync(context.Background())
	return nil
}

// GetStatus retorna o status atual do agendador
func (s *SnapshotSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.Enabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_account_id":        s.config.AccountID,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_summary":           s.lastSummary,
		"last_error":             s.lastError,
	}
}
