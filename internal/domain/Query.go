package domain

import "time"

type QueryType string

const (
	QueryTypeLookup     QueryType = "lookup"
	QueryTypeAnalytical QueryType = "analytical"
)

// AnalyticalSQLLabel ocupa o campo SQL das respostas analíticas
const AnalyticalSQLLabel = "Analytical Query (No SQL Required)"

// QueryResult é a resposta do motor de consultas. Falhas chegam como texto em Error.
type QueryResult struct {
	ID          string     `json:"id"`
	Question    string     `json:"question"`
	QueryType   QueryType  `json:"query_type"`
	SQL         string     `json:"sql_query,omitempty"`
	Data        *ResultSet `json:"data,omitempty"`
	Insights    string     `json:"insights,omitempty"`
	Error       string     `json:"error,omitempty"`
	Cached      bool       `json:"cached"`
	ProcessedAt time.Time  `json:"processed_at"`
}

func (q *QueryResult) Failed() bool {
	return q.Error != ""
}

// SchemaTable descreve uma tabela para o prompt de geração de SQL
type SchemaTable struct {
	Table       string   `json:"table"`
	Description string   `json:"description"`
	Columns     []string `json:"columns"`
}

type CampaignSummary struct {
	TotalCampaigns   int64   `json:"total_campaigns"`
	ActiveCampaigns  int64   `json:"active_campaigns"`
	AvgDailyBudget   float64 `json:"avg_daily_budget"`
	TotalDailyBudget float64 `json:"total_daily_budget"`
}

type AdsSummary struct {
	TotalAds  int64 `json:"total_ads"`
	ActiveAds int64 `json:"active_ads"`
	PausedAds int64 `json:"paused_ads"`
}
