package repository

import (
	"database/sql"

	"github.com/vfg2006/ads-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-analytics-api/internal/domain"
)

var campaignMapper = tableMapper[domain.Campaign]{
	table: string(domain.TableCampaigns),
	columns: []string{
		"id", "account_id", "name", "status", "objective",
		"created_time", "updated_time", "start_time", "stop_time",
		"budget_remaining", "daily_budget", "lifetime_budget", "data",
	},
	orderBy: "created_time DESC",
	values: func(c domain.Campaign) []any {
		return []any{
			c.ID,
			c.AccountID,
			c.Name,
			nullString(c.Status),
			nullString(c.Objective),
			nullTime(c.CreatedTime),
			nullTime(c.UpdatedTime),
			nullTime(c.StartTime),
			nullTime(c.StopTime),
			c.BudgetRemaining,
			c.DailyBudget,
			c.LifetimeBudget,
			jsonValue(c.Data),
		}
	},
	scan: scanCampaign,
}

func NewCampaignRepository(conn *postgres.Connection) TableRepository[domain.Campaign] {
	return newTableRepository(conn, campaignMapper)
}

func scanCampaign(row scanner) (domain.Campaign, error) {
	var (
		campaign                         domain.Campaign
		status, objective                sql.NullString
		created, updated, start, stop    sql.NullTime
		budgetRemaining, daily, lifetime sql.NullFloat64
		data                             []byte
	)

	err := row.Scan(
		&campaign.ID,
		&campaign.AccountID,
		&campaign.Name,
		&status,
		&objective,
		&created,
		&updated,
		&start,
		&stop,
		&budgetRemaining,
		&daily,
		&lifetime,
		&data,
	)
	if err != nil {
		return campaign, err
	}

	campaign.Status = status.String
	campaign.Objective = objective.String
	campaign.CreatedTime = timePtr(created)
	campaign.UpdatedTime = timePtr(updated)
	campaign.StartTime = timePtr(start)
	campaign.StopTime = timePtr(stop)
	campaign.BudgetRemaining = budgetRemaining.Float64
	campaign.DailyBudget = daily.Float64
	campaign.LifetimeBudget = lifetime.Float64
	campaign.Data = rawJSON(data)

	return campaign, nil
}
