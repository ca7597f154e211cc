package repository

import (
	"database/sql"

	"github.com/vfg2006/ads-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-analytics-api/internal/domain"
)

var insightMapper = tableMapper[domain.Insight]{
	table: string(domain.TableInsights),
	columns: []string{
		"id", "account_id", "campaign_id", "adset_id", "ad_id",
		"date_start", "date_stop", "impressions", "clicks", "spend",
		"reach", "frequency", "cpm", "cpc", "ctr", "cpp",
		"actions", "cost_per_action_type", "data",
	},
	orderBy: "date_start DESC",
	values: func(i domain.Insight) []any {
		return []any{
			i.ID,
			i.AccountID,
			nullString(i.CampaignID),
			nullString(i.AdSetID),
			nullString(i.AdID),
			nullTime(i.DateStart),
			nullTime(i.DateStop),
			i.Impressions,
			i.Clicks,
			i.Spend,
			i.Reach,
			i.Frequency,
			i.CPM,
			i.CPC,
			i.CTR,
			i.CPP,
			jsonValue(i.Actions),
			jsonValue(i.CostPerAction),
			jsonValue(i.Data),
		}
	},
	scan: scanInsight,
}

func NewInsightRepository(conn *postgres.Connection) TableRepository[domain.Insight] {
	return newTableRepository(conn, insightMapper)
}

func scanInsight(row scanner) (domain.Insight, error) {
	var (
		insight                      domain.Insight
		campaignID, adSetID, adID    sql.NullString
		dateStart, dateStop          sql.NullTime
		impressions, clicks, reach   sql.NullInt64
		spend, frequency             sql.NullFloat64
		cpm, cpc, ctr, cpp           sql.NullFloat64
		actions, costPerAction, data []byte
	)

	err := row.Scan(
		&insight.ID,
		&insight.AccountID,
		&campaignID,
		&adSetID,
		&adID,
		&dateStart,
		&dateStop,
		&impressions,
		&clicks,
		&spend,
		&reach,
		&frequency,
		&cpm,
		&cpc,
		&ctr,
		&cpp,
		&actions,
		&costPerAction,
		&data,
	)
	if err != nil {
		return insight, err
	}

	insight.CampaignID = campaignID.String
	insight.AdSetID = adSetID.String
	insight.AdID = adID.String
	insight.DateStart = timePtr(dateStart)
	insight.DateStop = timePtr(dateStop)
	insight.Impressions = impressions.Int64
	insight.Clicks = clicks.Int64
	insight.Spend = spend.Float64
	insight.Reach = reach.Int64
	insight.Frequency = frequency.Float64
	insight.CPM = cpm.Float64
	insight.CPC = cpc.Float64
	insight.CTR = ctr.Float64
	insight.CPP = cpp.Float64
	insight.Actions = rawJSON(actions)
	insight.CostPerAction = rawJSON(costPerAction)
	insight.Data = rawJSON(data)

	return insight, nil
}
