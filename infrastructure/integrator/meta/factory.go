package meta

import (
	"encoding/json"
	"fmt"
	"time"

	metadomain "github.com/vfg2006/ads-analytics-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-analytics-api/internal/domain"
)

var dateTimeLayouts = []string{
	"2006-01-02T15:04:05-0700",
	time.DateTime,
}

func FactoryCampaigns(accountID string, records []json.RawMessage) ([]domain.Campaign, error) {
	campaigns := make([]domain.Campaign, 0, len(records))
	for _, raw := range records {
		var c metadomain.Campaign
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, fmt.Errorf("erro ao decodificar campanha: %w", err)
		}

		campaigns = append(campaigns, domain.Campaign{
			ID:              c.ID.String(),
			AccountID:       accountID,
			Name:            c.Name.String(),
			Status:          c.Status.String(),
			Objective:       c.Objective.String(),
			CreatedTime:     ParseDateTime(c.CreatedTime.String()),
			UpdatedTime:     ParseDateTime(c.UpdatedTime.String()),
			StartTime:       ParseDateTime(c.StartTime.String()),
			StopTime:        ParseDateTime(c.StopTime.String()),
			BudgetRemaining: c.BudgetRemaining.Float(),
			DailyBudget:     c.DailyBudget.Float(),
			LifetimeBudget:  c.LifetimeBudget.Float(),
			Data:            raw,
		})
	}
	return campaigns, nil
}

func FactoryAdSets(accountID string, records []json.RawMessage) ([]domain.AdSet, error) {
	adSets := make([]domain.AdSet, 0, len(records))
	for _, raw := range records {
		var a metadomain.AdSet
		if err := json.Unmarshal(raw, &a); err != nil {
			return nil, fmt.Errorf("erro ao decodificar conjunto de anúncios: %w", err)
		}

		adSets = append(adSets, domain.AdSet{
			ID:               a.ID.String(),
			AccountID:        accountID,
			CampaignID:       a.CampaignID.String(),
			Name:             a.Name.String(),
			Status:           a.Status.String(),
			OptimizationGoal: a.OptimizationGoal.String(),
			BillingEvent:     a.BillingEvent.String(),
			BidAmount:        a.BidAmount.Float(),
			DailyBudget:      a.DailyBudget.Float(),
			LifetimeBudget:   a.LifetimeBudget.Float(),
			StartTime:        ParseDateTime(a.StartTime.String()),
			EndTime:          ParseDateTime(a.EndTime.String()),
			CreatedTime:      ParseDateTime(a.CreatedTime.String()),
			UpdatedTime:      ParseDateTime(a.UpdatedTime.String()),
			Data:             raw,
		})
	}
	return adSets, nil
}

func FactoryAds(accountID string, records []json.RawMessage) ([]domain.Ad, error) {
	ads := make([]domain.Ad, 0, len(records))
	for _, raw := range records {
		var a metadomain.Ad
		if err := json.Unmarshal(raw, &a); err != nil {
			return nil, fmt.Errorf("erro ao decodificar anúncio: %w", err)
		}

		ads = append(ads, domain.Ad{
			ID:          a.ID.String(),
			AccountID:   accountID,
			CampaignID:  a.CampaignID.String(),
			AdSetID:     a.AdSetID.String(),
			Name:        a.Name.String(),
			Status:      a.Status.String(),
			CreatedTime: ParseDateTime(a.CreatedTime.String()),
			UpdatedTime: ParseDateTime(a.UpdatedTime.String()),
			Data:        raw,
		})
	}
	return ads, nil
}

// FactoryInsights gera o id <campaign_id>-<date_start>-<ordinal>, sendo o
// ordinal a posição do registro nesta busca.
func FactoryInsights(accountID string, records []json.RawMessage) ([]domain.Insight, error) {
	insights := make([]domain.Insight, 0, len(records))
	for i, raw := range records {
		var in metadomain.Insight
		if err := json.Unmarshal(raw, &in); err != nil {
			return nil, fmt.Errorf("erro ao decodificar insight: %w", err)
		}

		insights = append(insights, domain.Insight{
			ID:            fmt.Sprintf("%s-%s-%d", in.CampaignID, in.DateStart, i),
			AccountID:     accountID,
			CampaignID:    in.CampaignID.String(),
			AdSetID:       in.AdSetID.String(),
			AdID:          in.AdID.String(),
			DateStart:     ParseDate(in.DateStart.String()),
			DateStop:      ParseDate(in.DateStop.String()),
			Impressions:   in.Impressions.Int(),
			Clicks:        in.Clicks.Int(),
			Spend:         in.Spend.Float(),
			Reach:         in.Reach.Int(),
			Frequency:     in.Frequency.Float(),
			CPM:           in.CPM.Float(),
			CPC:           in.CPC.Float(),
			CTR:           in.CTR.Float(),
			CPP:           in.CPP.Float(),
			Actions:       nullableJSON(in.Actions),
			CostPerAction: nullableJSON(in.CostPerActionType),
			Data:          raw,
		})
	}
	return insights, nil
}

// ParseDateTime devolve nil para vazio ou formato desconhecido
func ParseDateTime(value string) *time.Time {
	if value == "" {
		return nil
	}

	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return &t
		}
	}
	return nil
}

func ParseDate(value string) *time.Time {
	if value == "" {
		return nil
	}

	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return nil
	}
	return &t
}

func nullableJSON(raw json.RawMessage) json.RawMessage {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	return raw
}
