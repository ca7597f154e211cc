package domain

import (
	"encoding/json"
	"time"
)

// Campaign é a campanha de anúncios normalizada a partir da Graph API
type Campaign struct {
	ID              string          `json:"id" csv:"id"`
	AccountID       string          `json:"account_id" csv:"account_id"`
	Name            string          `json:"name" csv:"name"`
	Status          string          `json:"status" csv:"status"`
	Objective       string          `json:"objective" csv:"objective"`
	CreatedTime     *time.Time      `json:"created_time" csv:"created_time"`
	UpdatedTime     *time.Time      `json:"updated_time" csv:"updated_time"`
	StartTime       *time.Time      `json:"start_time" csv:"start_time"`
	StopTime        *time.Time      `json:"stop_time" csv:"stop_time"`
	BudgetRemaining float64         `json:"budget_remaining" csv:"budget_remaining"`
	DailyBudget     float64         `json:"daily_budget" csv:"daily_budget"`
	LifetimeBudget  float64         `json:"lifetime_budget" csv:"lifetime_budget"`
	Data            json.RawMessage `json:"data,omitempty" csv:"-"`
}

type AdSet struct {
	ID               string          `json:"id" csv:"id"`
	CampaignID       string          `json:"campaign_id" csv:"campaign_id"`
	AccountID        string          `json:"account_id" csv:"account_id"`
	Name             string          `json:"name" csv:"name"`
	Status           string          `json:"status" csv:"status"`
	OptimizationGoal string          `json:"optimization_goal" csv:"optimization_goal"`
	BillingEvent     string          `json:"billing_event" csv:"billing_event"`
	BidAmount        float64         `json:"bid_amount" csv:"bid_amount"`
	DailyBudget      float64         `json:"daily_budget" csv:"daily_budget"`
	LifetimeBudget   float64         `json:"lifetime_budget" csv:"lifetime_budget"`
	CreatedTime      *time.Time      `json:"created_time" csv:"created_time"`
	UpdatedTime      *time.Time      `json:"updated_time" csv:"updated_time"`
	StartTime        *time.Time      `json:"start_time" csv:"start_time"`
	EndTime          *time.Time      `json:"end_time" csv:"end_time"`
	Data             json.RawMessage `json:"data,omitempty" csv:"-"`
}

type Ad struct {
	ID          string          `json:"id" csv:"id"`
	AdSetID     string          `json:"adset_id" csv:"adset_id"`
	CampaignID  string          `json:"campaign_id" csv:"campaign_id"`
	AccountID   string          `json:"account_id" csv:"account_id"`
	Name        string          `json:"name" csv:"name"`
	Status      string          `json:"status" csv:"status"`
	CreatedTime *time.Time      `json:"created_time" csv:"created_time"`
	UpdatedTime *time.Time      `json:"updated_time" csv:"updated_time"`
	Data        json.RawMessage `json:"data,omitempty" csv:"-"`
}

// Insight é uma linha diária de métricas. Os IDs de campanha, conjunto e
// anúncio ficam vazios quando o dado vem agregado por conta.
type Insight struct {
	ID            string          `json:"id" csv:"id"`
	AccountID     string          `json:"account_id" csv:"account_id"`
	CampaignID    string          `json:"campaign_id" csv:"campaign_id"`
	AdSetID       string          `json:"adset_id" csv:"adset_id"`
	AdID          string          `json:"ad_id" csv:"ad_id"`
	DateStart     *time.Time      `json:"date_start" csv:"date_start"`
	DateStop      *time.Time      `json:"date_stop" csv:"date_stop"`
	Impressions   int64           `json:"impressions" csv:"impressions"`
	Clicks        int64           `json:"clicks" csv:"clicks"`
	Spend         float64         `json:"spend" csv:"spend"`
	Reach         int64           `json:"reach" csv:"reach"`
	Frequency     float64         `json:"frequency" csv:"frequency"`
	CPM           float64         `json:"cpm" csv:"cpm"`
	CPC           float64         `json:"cpc" csv:"cpc"`
	CTR           float64         `json:"ctr" csv:"ctr"`
	CPP           float64         `json:"cpp" csv:"cpp"`
	Actions       json.RawMessage `json:"actions,omitempty" csv:"-"`
	CostPerAction json.RawMessage `json:"cost_per_action_type,omitempty" csv:"-"`
	Data          json.RawMessage `json:"data,omitempty" csv:"-"`
}
