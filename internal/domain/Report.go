package domain

import "time"

type Overview struct {
	TotalSpend          float64          `json:"total_spend"`
	TotalImpressions    int64            `json:"total_impressions"`
	TotalClicks         int64            `json:"total_clicks"`
	AverageCTR          float64          `json:"average_ctr"`
	TopCampaignsBySpend []CampaignMetric `json:"top_campaigns_by_spend"`
	TopCampaignsByCTR   []CampaignMetric `json:"top_campaigns_by_ctr"`
}

type CampaignMetric struct {
	CampaignID  string  `json:"campaign_id"`
	Name        string  `json:"name"`
	Spend       float64 `json:"spend"`
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	CTR         float64 `json:"ctr"`
}

type DailyPerformance struct {
	Date        time.Time `json:"date"`
	Spend       float64   `json:"spend"`
	Impressions int64     `json:"impressions"`
	Clicks      int64     `json:"clicks"`
	CTR         float64   `json:"ctr"`
}

type HistogramBucket struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
	Count int     `json:"count"`
}

type Performance struct {
	Daily             []DailyPerformance `json:"daily"`
	SpendDistribution []HistogramBucket  `json:"spend_distribution"`
	CTRDistribution   []HistogramBucket  `json:"ctr_distribution"`
}

type ExportFormat string

const (
	ExportFormatJSON ExportFormat = "json"
	ExportFormatCSV  ExportFormat = "csv"
	ExportFormatXLSX ExportFormat = "xlsx"
)

// Export é um arquivo pronto para download
type Export struct {
	Filename    string
	ContentType string
	Content     []byte
}
