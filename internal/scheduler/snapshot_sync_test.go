package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-analytics-api/internal/config"
	"github.com/vfg2006/ads-analytics-api/internal/domain"
	"github.com/vfg2006/ads-analytics-api/internal/usecases/fetching/mocks"
	"go.uber.org/mock/gomock"
)

func newSyncService(t *testing.T, syncConfig config.SnapshotSync) (*SnapshotSyncService, *mocks.MockFetchService) {
	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockFetchService(ctrl)
	return NewSnapshotSyncService(fetcher, &config.Config{SnapshotSync: syncConfig}), fetcher
}

func TestStart(t *testing.T) {
	tests := []struct {
		name        string
		config      config.SnapshotSync
		expectError bool
	}{
		{
			name:   "Desabilitado não agenda nada",
			config: config.SnapshotSync{Enabled: false, CronSchedule: "0 3 * * *"},
		},
		{
			name:        "Habilitado sem conta válida",
			config:      config.SnapshotSync{Enabled: true, CronSchedule: "0 3 * * *", AccountID: "123"},
			expectError: true,
		},
		{
			name:        "Cron inválido",
			config:      config.SnapshotSync{Enabled: true, CronSchedule: "a cada hora", AccountID: "act_1"},
			expectError: true,
		},
		{
			name:   "Habilitado com conta válida",
			config: config.SnapshotSync{Enabled: true, CronSchedule: "0 3 * * *", AccountID: "act_1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _ := newSyncService(t, tt.config)

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			err := service.Start(ctx)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestSyncSnapshot(t *testing.T) {
	service, fetcher := newSyncService(t, config.SnapshotSync{Enabled: true, AccountID: "act_1"})

	summary := &domain.FetchSummary{AccountID: "act_1", Campaigns: 2, Insights: 60}
	fetcher.EXPECT().Fetch(gomock.Any(), "act_1").Return(summary, nil)

	service.syncSnapshot(context.Background())

	status := service.GetStatus()
	assert.Equal(t, summary, status["last_summary"])
	assert.Equal(t, "", status["last_error"])
	assert.Equal(t, false, status["sync_running"])
	assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())
}

func TestSyncSnapshotFailure(t *testing.T) {
	service, fetcher := newSyncService(t, config.SnapshotSync{Enabled: true, AccountID: "act_1"})

	fetcher.EXPECT().Fetch(gomock.Any(), "act_1").Return(nil, errors.New("banco indisponível"))

	service.syncSnapshot(context.Background())

	status := service.GetStatus()
	assert.Equal(t, "banco indisponível", status["last_error"])
	assert.True(t, status["last_sync_completed_at"].(time.Time).IsZero())
}

func TestSyncSnapshotSkipsWhenRunning(t *testing.T) {
	service, _ := newSyncService(t, config.SnapshotSync{Enabled: true, AccountID: "act_1"})
	service.syncRunning = true

	// sem expectativa no mock: Fetch não pode ser chamado
	service.syncSnapshot(context.Background())
	assert.ErrorIs(t, service.TriggerManualSync(), ErrSyncInProgress)
}

func TestTriggerManualSyncRejectsInvalidAccount(t *testing.T) {
	tests := []struct {
		name      string
		accountID string
	}{
		{name: "Conta vazia", accountID: ""},
		{name: "Conta sem prefixo", accountID: "123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// sem expectativa no mock: Fetch não pode ser chamado
			service, _ := newSyncService(t, config.SnapshotSync{AccountID: tt.accountID})

			err := service.TriggerManualSync()

			assert.ErrorIs(t, err, domain.ErrInvalidAccountID)
			assert.Equal(t, false, service.GetStatus()["sync_running"])
		})
	}
}

func TestTriggerManualSync(t *testing.T) {
	service, fetcher := newSyncService(t, config.SnapshotSync{AccountID: "act_1"})

	done := make(chan struct{})
	fetcher.EXPECT().Fetch(gomock.Any(), "act_1").DoAndReturn(
		func(ctx context.Context, accountID string) (*domain.FetchSummary, error) {
			defer close(done)
			return &domain.FetchSummary{AccountID: accountID}, nil
		},
	)

	require.NoError(t, service.TriggerManualSync())

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("sincronização manual não executou")
	}

	assert.Eventually(t, func() bool {
		return service.GetStatus()["sync_running"] == false
	}, 2*time.Second, 10*time.Millisecond)
}
