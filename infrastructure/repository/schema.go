package repository

import "github.com/vfg2006/ads-analytics-api/internal/domain"

// SchemaInfo descreve as tabelas para o prompt de geração de SQL. Os IDs de
// campanha, conjunto e anúncio dos insights ficam de fora: os
// dados vêm agregados por conta.
func SchemaInfo() []domain.SchemaTable {
	return []domain.SchemaTable{
		{
			Table:       string(domain.TableCampaigns),
			Description: "Facebook advertising campaigns data with campaign details",
			Columns: []string{
				"id", "account_id", "name", "status", "objective",
				"created_time", "updated_time", "start_time", "stop_time",
				"budget_remaining", "daily_budget", "lifetime_budget",
			},
		},
		{
			Table:       string(domain.TableAdSets),
			Description: "Facebook ad sets data linked to campaigns",
			Columns: []string{
				"id", "account_id", "campaign_id", "name", "status",
				"optimization_goal", "billing_event", "bid_amount",
				"daily_budget", "lifetime_budget", "start_time", "end_time",
			},
		},
		{
			Table:       string(domain.TableAds),
			Description: "Individual Facebook ads linked to campaigns and adsets",
			Columns: []string{
				"id", "account_id", "campaign_id", "adset_id", "name",
				"status", "created_time", "updated_time",
			},
		},
		{
			Table:       string(domain.TableInsights),
			Description: "Account-level performance metrics by date. NOTE: campaign_id, adset_id, ad_id are mostly NULL - this contains account-level aggregated data",
			Columns: []string{
				"id", "account_id", "date_start", "date_stop",
				"impressions", "clicks", "spend", "reach", "frequency",
				"cpm", "cpc", "ctr", "cpp",
			},
		},
	}
}
