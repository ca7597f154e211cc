package meta

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-analytics-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-analytics-api/internal/config"
	"github.com/vfg2006/ads-analytics-api/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

var (
	campaignFields = []string{
		"id", "name", "status", "objective", "created_time", "updated_time",
		"start_time", "stop_time", "budget_remaining", "daily_budget",
		"lifetime_budget", "account_id",
	}
	adSetFields = []string{
		"id", "name", "status", "campaign_id", "optimization_goal",
		"billing_event", "bid_amount", "daily_budget", "lifetime_budget",
		"start_time", "end_time", "created_time", "updated_time", "account_id",
	}
	adFields = []string{
		"id", "name", "status", "campaign_id", "adset_id",
		"created_time", "updated_time", "account_id",
	}
	insightFields = []string{
		"impressions", "clicks", "spend", "reach", "frequency",
		"cpm", "cpc", "ctr", "cpp", "actions", "cost_per_action_type",
		"campaign_id", "adset_id", "ad_id", "date_start", "date_stop",
	}
)

// Integrator busca as entidades de uma conta. Nenhum método devolve erro: em
// caso de falha na Graph API o resultado é o conjunto de exemplo.
type Integrator interface {
	FetchCampaigns(ctx context.Context, accountID string) []domain.Campaign
	FetchAdSets(ctx context.Context, accountID string) []domain.AdSet
	FetchAds(ctx context.Context, accountID string) []domain.Ad
	FetchInsights(ctx context.Context, accountID string) []domain.Insight
}

type MetaIntegrator struct {
	cfg    *config.Config
	Client metaclient.Client
	now    func() time.Time
}

func New(cfg *config.Config, client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		cfg:    cfg,
		Client: client,
		now:    time.Now,
	}
}

// WithClock troca o relógio usado para montar os dados de exemplo
func (s *MetaIntegrator) WithClock(now func() time.Time) *MetaIntegrator {
	s.now = now
	return s
}

func (s *MetaIntegrator) FetchCampaigns(ctx context.Context, accountID string) []domain.Campaign {
	records, err := s.Client.Paginate(ctx, accountID+"/campaigns", fieldParams(campaignFields))
	if err != nil {
		logFallback(accountID, "campaigns", err)
		return SampleCampaigns(accountID, s.now())
	}

	campaigns, err := FactoryCampaigns(accountID, records)
	if err != nil {
		logFallback(accountID, "campaigns", err)
		return SampleCampaigns(accountID, s.now())
	}

	return campaigns
}

func (s *MetaIntegrator) FetchAdSets(ctx context.Context, accountID string) []domain.AdSet {
	records, err := s.Client.Paginate(ctx, accountID+"/adsets", fieldParams(adSetFields))
	if err != nil {
		logFallback(accountID, "adsets", err)
		return SampleAdSets(accountID, s.now())
	}

	adSets, err := FactoryAdSets(accountID, records)
	if err != nil {
		logFallback(accountID, "adsets", err)
		return SampleAdSets(accountID, s.now())
	}

	return adSets
}

func (s *MetaIntegrator) FetchAds(ctx context.Context, accountID string) []domain.Ad {
	records, err := s.Client.Paginate(ctx, accountID+"/ads", fieldParams(adFields))
	if err != nil {
		logFallback(accountID, "ads", err)
		return SampleAds(accountID, s.now())
	}

	ads, err := FactoryAds(accountID, records)
	if err != nil {
		logFallback(accountID, "ads", err)
		return SampleAds(accountID, s.now())
	}

	return ads
}

func (s *MetaIntegrator) FetchInsights(ctx context.Context, accountID string) []domain.Insight {
	params := fieldParams(insightFields)
	params.Set("date_preset", s.datePreset())
	params.Set("time_increment", strconv.Itoa(1))

	records, err := s.Client.Paginate(ctx, accountID+"/insights", params)
	if err != nil {
		logFallback(accountID, "insights", err)
		return SampleInsights(accountID, s.now())
	}

	insights, err := FactoryInsights(accountID, records)
	if err != nil {
		logFallback(accountID, "insights", err)
		return SampleInsights(accountID, s.now())
	}

	return insights
}

func (s *MetaIntegrator) datePreset() string {
	if s.cfg == nil || s.cfg.Meta.DatePreset == "" {
		return "last_30d"
	}
	return s.cfg.Meta.DatePreset
}

func fieldParams(fields []string) url.Values {
	params := url.Values{}
	params.Set("fields", strings.Join(fields, ","))
	return params
}

func logFallback(accountID, entity string, err error) {
	logrus.WithFields(logrus.Fields{
		"account_id": accountID,
		"entity":     entity,
		"error":      err.Error(),
	}).Error("meta: falha ao buscar dados, usando conjunto de exemplo")
}
