package fetching

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cachemocks "github.com/vfg2006/ads-analytics-api/infrastructure/cache/mocks"
	metamocks "github.com/vfg2006/ads-analytics-api/infrastructure/integrator/meta/mocks"
	repomocks "github.com/vfg2006/ads-analytics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-analytics-api/internal/domain"
	"github.com/vfg2006/ads-analytics-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	service    *Service
	integrator *metamocks.MockIntegrator
	campaigns  *repomocks.MockTableRepository[domain.Campaign]
	adSets     *repomocks.MockTableRepository[domain.AdSet]
	ads        *repomocks.MockTableRepository[domain.Ad]
	insights   *repomocks.MockTableRepository[domain.Insight]
	cache      *cachemocks.MockQueryCache
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)

	f := &fixture{
		integrator: metamocks.NewMockIntegrator(ctrl),
		campaigns:  repomocks.NewMockTableRepository[domain.Campaign](ctrl),
		adSets:     repomocks.NewMockTableRepository[domain.AdSet](ctrl),
		ads:        repomocks.NewMockTableRepository[domain.Ad](ctrl),
		insights:   repomocks.NewMockTableRepository[domain.Insight](ctrl),
		cache:      cachemocks.NewMockQueryCache(ctrl),
	}

	f.service = NewService(f.integrator, Repositories{
		Campaigns: f.campaigns,
		AdSets:    f.adSets,
		Ads:       f.ads,
		Insights:  f.insights,
	}, f.cache)
	f.service.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }

	return f
}

func (f *fixture) expectFetches(accountID string) {
	f.integrator.EXPECT().FetchCampaigns(gomock.Any(), accountID).Return([]domain.Campaign{{ID: "c1"}, {ID: "c2"}})
	f.integrator.EXPECT().FetchAdSets(gomock.Any(), accountID).Return([]domain.AdSet{{ID: "s1"}})
	f.integrator.EXPECT().FetchAds(gomock.Any(), accountID).Return([]domain.Ad{{ID: "a1"}, {ID: "a2"}, {ID: "a3"}})
	f.integrator.EXPECT().FetchInsights(gomock.Any(), accountID).Return([]domain.Insight{})
}

func TestFetch(t *testing.T) {
	f := newFixture(t)
	f.expectFetches("act_123")

	gomock.InOrder(
		f.campaigns.EXPECT().ReplaceAll(gomock.Any(), []domain.Campaign{{ID: "c1"}, {ID: "c2"}}).Return(nil),
		f.adSets.EXPECT().ReplaceAll(gomock.Any(), gomock.Len(1)).Return(nil),
		f.ads.EXPECT().ReplaceAll(gomock.Any(), gomock.Len(3)).Return(nil),
		f.insights.EXPECT().ReplaceAll(gomock.Any(), gomock.Len(0)).Return(nil),
		f.cache.EXPECT().Invalidate(gomock.Any()).Return(nil),
	)

	summary, err := f.service.Fetch(context.Background(), "  act_123 ")
	require.NoError(t, err)

	assert.Equal(t, &domain.FetchSummary{
		AccountID: "act_123",
		Campaigns: 2,
		AdSets:    1,
		Ads:       3,
		Insights:  0,
		FetchedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}, summary)
}

func TestFetchInvalidAccount(t *testing.T) {
	tests := []struct {
		name      string
		accountID string
	}{
		{name: "Sem prefixo act_", accountID: "123"},
		{name: "Vazio", accountID: ""},
		{name: "Letras após o prefixo", accountID: "act_abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			_, err := f.service.Fetch(context.Background(), tt.accountID)
			assert.ErrorIs(t, err, domain.ErrInvalidAccountID)
		})
	}
}

func TestFetchStopsOnStoreFailure(t *testing.T) {
	f := newFixture(t)
	f.expectFetches("act_1")

	f.campaigns.EXPECT().ReplaceAll(gomock.Any(), gomock.Any()).Return(nil)
	f.adSets.EXPECT().ReplaceAll(gomock.Any(), gomock.Any()).Return(errors.New("conexão perdida"))

	_, err := f.service.Fetch(context.Background(), "act_1")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStoreSnapshot)

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, "adsets", fetchErr.Table)
	assert.Equal(t, apiErrors.ErrDatabaseOperation, fetchErr.Code)
	assert.Contains(t, err.Error(), "conexão perdida")
}

func TestFetchIgnoresCacheFailure(t *testing.T) {
	f := newFixture(t)
	f.expectFetches("act_1")

	f.campaigns.EXPECT().ReplaceAll(gomock.Any(), gomock.Any()).Return(nil)
	f.adSets.EXPECT().ReplaceAll(gomock.Any(), gomock.Any()).Return(nil)
	f.ads.EXPECT().ReplaceAll(gomock.Any(), gomock.Any()).Return(nil)
	f.insights.EXPECT().ReplaceAll(gomock.Any(), gomock.Any()).Return(nil)
	f.cache.EXPECT().Invalidate(gomock.Any()).Return(errors.New("redis fora"))

	summary, err := f.service.Fetch(context.Background(), "act_1")
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Campaigns)
}

func TestLoadExisting(t *testing.T) {
	tests := []struct {
		name        string
		setup       func(f *fixture)
		expectedErr error
		campaigns   int
	}{
		{
			name: "Snapshot completo",
			setup: func(f *fixture) {
				f.campaigns.EXPECT().List(gomock.Any()).Return([]domain.Campaign{{ID: "c1"}}, nil)
				f.adSets.EXPECT().List(gomock.Any()).Return([]domain.AdSet{}, nil)
				f.ads.EXPECT().List(gomock.Any()).Return([]domain.Ad{}, nil)
				f.insights.EXPECT().List(gomock.Any()).Return([]domain.Insight{{ID: "i1"}}, nil)
			},
			campaigns: 1,
		},
		{
			name: "Sem campanhas",
			setup: func(f *fixture) {
				f.campaigns.EXPECT().List(gomock.Any()).Return([]domain.Campaign{}, nil)
			},
			expectedErr: ErrNoData,
		},
		{
			name: "Erro ao ler anúncios",
			setup: func(f *fixture) {
				f.campaigns.EXPECT().List(gomock.Any()).Return([]domain.Campaign{{ID: "c1"}}, nil)
				f.adSets.EXPECT().List(gomock.Any()).Return([]domain.AdSet{}, nil)
				f.ads.EXPECT().List(gomock.Any()).Return(nil, errors.New("timeout"))
			},
			expectedErr: ErrLoadSnapshot,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			snapshot, err := f.service.LoadExisting(context.Background())
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, snapshot)
				return
			}

			require.NoError(t, err)
			assert.Len(t, snapshot.Campaigns, tt.campaigns)
			assert.Len(t, snapshot.Insights, 1)
		})
	}
}
