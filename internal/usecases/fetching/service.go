package fetching

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-analytics-api/infrastructure/cache"
	"github.com/vfg2006/ads-analytics-api/infrastructure/integrator/meta"
	"github.com/vfg2006/ads-analytics-api/infrastructure/repository"
	"github.com/vfg2006/ads-analytics-api/internal/domain"
	"github.com/vfg2006/ads-analytics-api/pkg/apiErrors"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

type FetchService interface {
	// Fetch busca as quatro entidades da conta e substitui o snapshot gravado
	Fetch(ctx context.Context, accountID string) (*domain.FetchSummary, error)
	// LoadExisting lê o snapshot atual. Sem campanhas devolve ErrNoData.
	LoadExisting(ctx context.Context) (*domain.Snapshot, error)
}

type Repositories struct {
	Campaigns repository.TableRepository[domain.Campaign]
	AdSets    repository.TableRepository[domain.AdSet]
	Ads       repository.TableRepository[domain.Ad]
	Insights  repository.TableRepository[domain.Insight]
}

type Service struct {
	integrator meta.Integrator
	repos      Repositories
	queryCache cache.QueryCache
	now        func() time.Time
}

func NewService(integrator meta.Integrator, repos Repositories, queryCache cache.QueryCache) *Service {
	if queryCache == nil {
		queryCache = cache.NopCache{}
	}

	return &Service{
		integrator: integrator,
		repos:      repos,
		queryCache: queryCache,
		now:        time.Now,
	}
}

func (s *Service) Fetch(ctx context.Context, accountID string) (*domain.FetchSummary, error) {
	accountID, err := domain.NormalizeAccountID(accountID)
	if err != nil {
		return nil, err
	}

	logger := logrus.WithField("account_id", accountID)
	logger.Info("Iniciando busca de dados na Graph API")

	campaigns := s.integrator.FetchCampaigns(ctx, accountID)
	adSets := s.integrator.FetchAdSets(ctx, accountID)
	ads := s.integrator.FetchAds(ctx, accountID)
	insights := s.integrator.FetchInsights(ctx, accountID)

	// A ordem de gravação é fixa. Uma falha interrompe a sequência e as
	// tabelas já gravadas permanecem substituídas.
	if err := s.repos.Campaigns.ReplaceAll(ctx, campaigns); err != nil {
		return nil, storeError(err, domain.TableCampaigns)
	}
	if err := s.repos.AdSets.ReplaceAll(ctx, adSets); err != nil {
		return nil, storeError(err, domain.TableAdSets)
	}
	if err := s.repos.Ads.ReplaceAll(ctx, ads); err != nil {
		return nil, storeError(err, domain.TableAds)
	}
	if err := s.repos.Insights.ReplaceAll(ctx, insights); err != nil {
		return nil, storeError(err, domain.TableInsights)
	}

	if err := s.queryCache.Invalidate(ctx); err != nil {
		logger.WithError(err).Warn("Erro ao invalidar cache de consultas")
	}

	summary := &domain.FetchSummary{
		AccountID: accountID,
		Campaigns: len(campaigns),
		AdSets:    len(adSets),
		Ads:       len(ads),
		Insights:  len(insights),
		FetchedAt: s.now(),
	}

	logger.WithFields(logrus.Fields{
		"campaigns": summary.Campaigns,
		"adsets":    summary.AdSets,
		"ads":       summary.Ads,
		"insights":  summary.Insights,
	}).Info("Snapshot gravado com sucesso")

	return summary, nil
}

func (s *Service) LoadExisting(ctx context.Context) (*domain.Snapshot, error) {
	campaigns, err := s.repos.Campaigns.List(ctx)
	if err != nil {
		return nil, loadError(err, domain.TableCampaigns)
	}

	if len(campaigns) == 0 {
		return nil, ErrNoData
	}

	adSets, err := s.repos.AdSets.List(ctx)
	if err != nil {
		return nil, loadError(err, domain.TableAdSets)
	}

	ads, err := s.repos.Ads.List(ctx)
	if err != nil {
		return nil, loadError(err, domain.TableAds)
	}

	insights, err := s.repos.Insights.List(ctx)
	if err != nil {
		return nil, loadError(err, domain.TableInsights)
	}

	return &domain.Snapshot{
		Campaigns: campaigns,
		AdSets:    adSets,
		Ads:       ads,
		Insights:  insights,
	}, nil
}

func storeError(err error, table domain.Table) error {
	logrus.WithError(err).WithField("table", table).Error("Erro ao gravar tabela do snapshot")
	return NewFetchError(
		fmt.Errorf("%w: %w", ErrStoreSnapshot, err),
		apiErrors.ErrDatabaseOperation,
		string(table),
		"Falha ao gravar "+string(table),
	)
}

func loadError(err error, table domain.Table) error {
	logrus.WithError(err).WithField("table", table).Error("Erro ao ler tabela do snapshot")
	return NewFetchError(
		fmt.Errorf("%w: %w", ErrLoadSnapshot, err),
		apiErrors.ErrDatabaseOperation,
		string(table),
		"Falha ao ler "+string(table),
	)
}
