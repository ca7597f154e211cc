package metadomain

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Value aceita string, número ou null. A Graph API devolve números como
// string na maioria dos campos, mas não em todos.
type Value string

func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*v = ""
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = Value(s)
		return nil
	}

	*v = Value(data)
	return nil
}

func (v Value) String() string {
	return string(v)
}

// Float retorna 0 para vazio ou inválido
func (v Value) Float() float64 {
	if v == "" {
		return 0
	}
	f, err := strconv.ParseFloat(string(v), 64)
	if err != nil {
		return 0
	}
	return f
}

// Int retorna 0 para vazio ou inválido, inclusive valores fracionários
func (v Value) Int() int64 {
	if v == "" {
		return 0
	}
	i, err := strconv.ParseInt(string(v), 10, 64)
	if err != nil {
		return 0
	}
	return i
}

type Campaign struct {
	ID              Value `json:"id"`
	AccountID       Value `json:"account_id"`
	Name            Value `json:"name"`
	Status          Value `json:"status"`
	Objective       Value `json:"objective"`
	CreatedTime     Value `json:"created_time"`
	UpdatedTime     Value `json:"updated_time"`
	StartTime       Value `json:"start_time"`
	StopTime        Value `json:"stop_time"`
	BudgetRemaining Value `json:"budget_remaining"`
	DailyBudget     Value `json:"daily_budget"`
	LifetimeBudget  Value `json:"lifetime_budget"`
}

type AdSet struct {
	ID               Value `json:"id"`
	AccountID        Value `json:"account_id"`
	CampaignID       Value `json:"campaign_id"`
	Name             Value `json:"name"`
	Status           Value `json:"status"`
	OptimizationGoal Value `json:"optimization_goal"`
	BillingEvent     Value `json:"billing_event"`
	BidAmount        Value `json:"bid_amount"`
	DailyBudget      Value `json:"daily_budget"`
	LifetimeBudget   Value `json:"lifetime_budget"`
	StartTime        Value `json:"start_time"`
	EndTime          Value `json:"end_time"`
	CreatedTime      Value `json:"created_time"`
	UpdatedTime      Value `json:"updated_time"`
}

type Ad struct {
	ID          Value `json:"id"`
	AccountID   Value `json:"account_id"`
	CampaignID  Value `json:"campaign_id"`
	AdSetID     Value `json:"adset_id"`
	Name        Value `json:"name"`
	Status      Value `json:"status"`
	CreatedTime Value `json:"created_time"`
	UpdatedTime Value `json:"updated_time"`
}

type Insight struct {
	CampaignID        Value           `json:"campaign_id"`
	AdSetID           Value           `json:"adset_id"`
	AdID              Value           `json:"ad_id"`
	DateStart         Value           `json:"date_start"`
	DateStop          Value           `json:"date_stop"`
	Impressions       Value           `json:"impressions"`
	Clicks            Value           `json:"clicks"`
	Spend             Value           `json:"spend"`
	Reach             Value           `json:"reach"`
	Frequency         Value           `json:"frequency"`
	CPM               Value           `json:"cpm"`
	CPC               Value           `json:"cpc"`
	CTR               Value           `json:"ctr"`
	CPP               Value           `json:"cpp"`
	Actions           json.RawMessage `json:"actions"`
	CostPerActionType json.RawMessage `json:"cost_per_action_type"`
}

type Action struct {
	ActionType string `json:"action_type"`
	Value      Value  `json:"value"`
}

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

type Paging struct {
	Cursors  Cursors `json:"cursors"`
	Next     string  `json:"next,omitempty"`
	Previous string  `json:"previous,omitempty"`
}

// Page é uma página de qualquer aresta da Graph API. Data nil indica que a
// resposta não trouxe o campo data.
type Page struct {
	Data   []json.RawMessage `json:"data"`
	Paging *Paging           `json:"paging,omitempty"`
}
