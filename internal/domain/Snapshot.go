package domain

import "time"

// Snapshot é o conteúdo atual das quatro tabelas
type Snapshot struct {
	Campaigns []Campaign `json:"campaigns"`
	AdSets    []AdSet    `json:"adsets"`
	Ads       []Ad       `json:"ads"`
	Insights  []Insight  `json:"insights"`
}

type FetchSummary struct {
	AccountID string    `json:"account_id"`
	Campaigns int       `json:"campaigns"`
	AdSets    int       `json:"adsets"`
	Ads       int       `json:"ads"`
	Insights  int       `json:"insights"`
	FetchedAt time.Time `json:"fetched_at"`
}

// Table identifica uma das quatro tabelas persistidas
type Table string

const (
	TableCampaigns Table = "campaigns"
	TableAdSets    Table = "adsets"
	TableAds       Table = "ads"
	TableInsights  Table = "insights"
)

func ParseTable(name string) (Table, bool) {
	switch Table(name) {
	case TableCampaigns, TableAdSets, TableAds, TableInsights:
		return Table(name), true
	}
	return "", false
}
