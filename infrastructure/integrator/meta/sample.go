package meta

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-analytics-api/internal/domain"
)

const sampleDays = 30

var (
	emptyObject = json.RawMessage(`{}`)
	emptyList   = json.RawMessage(`[]`)
)

func daysAgo(now time.Time, days int) *time.Time {
	t := now.AddDate(0, 0, -days)
	return &t
}

func dayOnly(t time.Time) *time.Time {
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return &d
}

// SampleCampaigns é usado quando a Graph API não responde
func SampleCampaigns(accountID string, now time.Time) []domain.Campaign {
	logrus.Info("Retornando campanhas de exemplo")

	return []domain.Campaign{
		{
			ID:              "camp_001",
			AccountID:       accountID,
			Name:            "Holiday Sales Campaign",
			Status:          "ACTIVE",
			Objective:       "CONVERSIONS",
			CreatedTime:     daysAgo(now, 30),
			UpdatedTime:     daysAgo(now, 1),
			StartTime:       daysAgo(now, 30),
			BudgetRemaining: 5000,
			DailyBudget:     100,
			Data:            emptyObject,
		},
		{
			ID:              "camp_002",
			AccountID:       accountID,
			Name:            "Brand Awareness Campaign",
			Status:          "ACTIVE",
			Objective:       "BRAND_AWARENESS",
			CreatedTime:     daysAgo(now, 20),
			UpdatedTime:     daysAgo(now, 2),
			StartTime:       daysAgo(now, 20),
			BudgetRemaining: 3000,
			DailyBudget:     75,
			Data:            emptyObject,
		},
	}
}

func SampleAdSets(accountID string, now time.Time) []domain.AdSet {
	logrus.Info("Retornando conjuntos de anúncios de exemplo")

	return []domain.AdSet{
		{
			ID:               "adset_001",
			AccountID:        accountID,
			CampaignID:       "camp_001",
			Name:             "Holiday Sales - Desktop",
			Status:           "ACTIVE",
			OptimizationGoal: "CONVERSIONS",
			BillingEvent:     "IMPRESSIONS",
			BidAmount:        2.50,
			DailyBudget:      50,
			StartTime:        daysAgo(now, 30),
			CreatedTime:      daysAgo(now, 30),
			UpdatedTime:      daysAgo(now, 1),
			Data:             emptyObject,
		},
		{
			ID:               "adset_002",
			AccountID:        accountID,
			CampaignID:       "camp_001",
			Name:             "Holiday Sales - Mobile",
			Status:           "ACTIVE",
			OptimizationGoal: "CONVERSIONS",
			BillingEvent:     "IMPRESSIONS",
			BidAmount:        2.00,
			DailyBudget:      50,
			StartTime:        daysAgo(now, 30),
			CreatedTime:      daysAgo(now, 30),
			UpdatedTime:      daysAgo(now, 1),
			Data:             emptyObject,
		},
	}
}

func SampleAds(accountID string, now time.Time) []domain.Ad {
	logrus.Info("Retornando anúncios de exemplo")

	return []domain.Ad{
		{
			ID:          "ad_001",
			AccountID:   accountID,
			CampaignID:  "camp_001",
			AdSetID:     "adset_001",
			Name:        "Holiday Sale - Desktop Video",
			Status:      "ACTIVE",
			CreatedTime: daysAgo(now, 30),
			UpdatedTime: daysAgo(now, 1),
			Data:        emptyObject,
		},
		{
			ID:          "ad_002",
			AccountID:   accountID,
			CampaignID:  "camp_001",
			AdSetID:     "adset_002",
			Name:        "Holiday Sale - Mobile Image",
			Status:      "ACTIVE",
			CreatedTime: daysAgo(now, 30),
			UpdatedTime: daysAgo(now, 1),
			Data:        emptyObject,
		},
	}
}

// SampleInsights gera 30 dias com uma linha por campanha de exemplo, do dia
// atual para trás.
func SampleInsights(accountID string, now time.Time) []domain.Insight {
	logrus.Info("Retornando insights de exemplo")

	insights := make([]domain.Insight, 0, sampleDays*2)
	for i := 0; i < sampleDays; i++ {
		day := dayOnly(now.AddDate(0, 0, -i))
		f := float64(i)

		insights = append(insights,
			domain.Insight{
				ID:            fmt.Sprintf("insight_%d_1", i),
				AccountID:     accountID,
				CampaignID:    "camp_001",
				AdSetID:       "adset_001",
				AdID:          "ad_001",
				DateStart:     day,
				DateStop:      day,
				Impressions:   int64(1000 + i*50),
				Clicks:        int64(50 + i*2),
				Spend:         45.50 + f*1.5,
				Reach:         int64(800 + i*30),
				Frequency:     1.2 + f*0.01,
				CPM:           45.50,
				CPC:           0.91,
				CTR:           5.0,
				CPP:           0.057,
				Actions:       emptyList,
				CostPerAction: emptyList,
				Data:          emptyObject,
			},
			domain.Insight{
				ID:            fmt.Sprintf("insight_%d_2", i),
				AccountID:     accountID,
				CampaignID:    "camp_002",
				AdSetID:       "adset_002",
				AdID:          "ad_002",
				DateStart:     day,
				DateStop:      day,
				Impressions:   int64(800 + i*40),
				Clicks:        int64(40 + f*1.5),
				Spend:         35.75 + f*1.2,
				Reach:         int64(650 + i*25),
				Frequency:     1.1 + f*0.008,
				CPM:           44.69,
				CPC:           0.89,
				CTR:           5.2,
				CPP:           0.055,
				Actions:       emptyList,
				CostPerAction: emptyList,
				Data:          emptyObject,
			},
		)
	}
	return insights
}
