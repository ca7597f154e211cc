package repository

import (
	"database/sql"

	"github.com/vfg2006/ads-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-analytics-api/internal/domain"
)

var adSetMapper = tableMapper[domain.AdSet]{
	table: string(domain.TableAdSets),
	columns: []string{
		"id", "account_id", "campaign_id", "name", "status",
		"optimization_goal", "billing_event", "bid_amount", "daily_budget", "lifetime_budget",
		"start_time", "end_time", "created_time", "updated_time", "data",
	},
	orderBy: "created_time DESC",
	values: func(a domain.AdSet) []any {
		return []any{
			a.ID,
			a.AccountID,
			nullString(a.CampaignID),
			a.Name,
			nullString(a.Status),
			nullString(a.OptimizationGoal),
			nullString(a.BillingEvent),
			a.BidAmount,
			a.DailyBudget,
			a.LifetimeBudget,
			nullTime(a.StartTime),
			nullTime(a.EndTime),
			nullTime(a.CreatedTime),
			nullTime(a.UpdatedTime),
			jsonValue(a.Data),
		}
	},
	scan: scanAdSet,
}

func NewAdSetRepository(conn *postgres.Connection) TableRepository[domain.AdSet] {
	return newTableRepository(conn, adSetMapper)
}

func scanAdSet(row scanner) (domain.AdSet, error) {
	var (
		adSet                             domain.AdSet
		campaignID, status, goal, billing sql.NullString
		bid, daily, lifetime              sql.NullFloat64
		start, end, created, updated      sql.NullTime
		data                              []byte
	)

	err := row.Scan(
		&adSet.ID,
		&adSet.AccountID,
		&campaignID,
		&adSet.Name,
		&status,
		&goal,
		&billing,
		&bid,
		&daily,
		&lifetime,
		&start,
		&end,
		&created,
		&updated,
		&data,
	)
	if err != nil {
		return adSet, err
	}

	adSet.CampaignID = campaignID.String
	adSet.Status = status.String
	adSet.OptimizationGoal = goal.String
	adSet.BillingEvent = billing.String
	adSet.BidAmount = bid.Float64
	adSet.DailyBudget = daily.Float64
	adSet.LifetimeBudget = lifetime.Float64
	adSet.StartTime = timePtr(start)
	adSet.EndTime = timePtr(end)
	adSet.CreatedTime = timePtr(created)
	adSet.UpdatedTime = timePtr(updated)
	adSet.Data = rawJSON(data)

	return adSet, nil
}
