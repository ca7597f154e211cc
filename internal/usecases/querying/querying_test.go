package querying

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ads-analytics-api/internal/domain"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		question string
		expected domain.QueryType
	}{
		{name: "Tendência de ROAS", question: "ROAS trend", expected: domain.QueryTypeAnalytical},
		{name: "Top campanhas", question: "top 5 campaigns", expected: domain.QueryTypeLookup},
		{name: "Comparação ontem e hoje", question: "Yesterday vs today spend", expected: domain.QueryTypeAnalytical},
		{name: "Últimos 7 dias", question: "How did we do in the past 7 days?", expected: domain.QueryTypeAnalytical},
		{name: "Contagem simples", question: "How many ads are active?", expected: domain.QueryTypeLookup},
		{name: "Palavra contendo vs", question: "show canvs ads", expected: domain.QueryTypeAnalytical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.question))
		})
	}
}

func TestCleanSQL(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "Cerca sql com quebra de linha", input: "```sql\nSELECT * FROM ads\n```", expected: "SELECT * FROM ads;"},
		{name: "Cerca simples", input: "```SELECT 1;```", expected: "SELECT 1;"},
		{name: "Sem ponto e vírgula", input: "  SELECT name FROM campaigns  \n", expected: "SELECT name FROM campaigns;"},
		{name: "Já limpo", input: "SELECT COUNT(*) FROM ads;", expected: "SELECT COUNT(*) FROM ads;"},
		{name: "Vazio", input: "", expected: ";"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanSQL(tt.input))
		})
	}
}

func TestIsSelect(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected bool
	}{
		{name: "SELECT maiúsculo", query: "SELECT * FROM ads;", expected: true},
		{name: "select minúsculo com espaços", query: "   select 1;", expected: true},
		{name: "DELETE", query: "DELETE FROM ads;", expected: false},
		{name: "WITH não é aceito", query: "WITH x AS (SELECT 1) SELECT * FROM x;", expected: false},
		{name: "DROP", query: "drop table campaigns;", expected: false},
		{name: "Vazio", query: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsSelect(tt.query))
		})
	}
}

func TestBuildSQLPrompt(t *testing.T) {
	schema := []domain.SchemaTable{
		{Table: "campaigns", Description: "Campaign data", Columns: []string{"id", "name"}},
	}

	prompt := BuildSQLPrompt(schema, "campaign count")

	assert.True(t, strings.HasPrefix(prompt, "You are a PostgreSQL expert."))
	assert.Contains(t, prompt, "Table: campaigns\nDescription: Campaign data\nColumns: id, name\n")
	assert.Contains(t, prompt, "User Query: campaign count")
	assert.Contains(t, prompt, `"campaign count" → SELECT COUNT(*) as campaign_count FROM campaigns;`)
	assert.True(t, strings.HasSuffix(prompt, "SQL Query:\n"))

	assert.Equal(t, "Convert to SQL: top ads\nUse these tables: campaigns, adsets, ads, insights", SimpleSQLPrompt("top ads"))
}

func campaignResult() *domain.ResultSet {
	return &domain.ResultSet{
		Columns: []string{"name", "spend", "clicks", "ctr"},
		Rows: [][]any{
			{"A", 1000.5, int64(100), 2.5},
			{"B", 2500.3, int64(300), 3.5},
		},
	}
}

func TestDataSummary(t *testing.T) {
	summary := DataSummary(campaignResult())

	assert.Contains(t, summary, "Rows: 2, Columns: 4\n")
	assert.Contains(t, summary, "Columns: name, spend, clicks, ctr\n")
	assert.Contains(t, summary, "spend: min=1000.50, max=2500.30, mean=1750.40\n")
	assert.Contains(t, summary, "clicks: min=100.00, max=300.00, mean=200.00\n")
	assert.Contains(t, summary, "ctr: min=2.50, max=3.50, mean=3.00\n")
	assert.Contains(t, summary, "Sample Data (first 3 rows):\n")
	assert.Contains(t, summary, "2500.3")
}

func TestDataSummaryLimitsNumericColumns(t *testing.T) {
	data := &domain.ResultSet{
		Columns: []string{"a", "b", "c", "d"},
		Rows:    [][]any{{1.0, 2.0, 3.0, 4.0}},
	}

	summary := DataSummary(data)
	assert.Contains(t, summary, "c: min=3.00")
	assert.NotContains(t, summary, "d: min=")
}

func TestFallbackInsights(t *testing.T) {
	expected := "Found 2 records matching your query. " +
		"Total spend: $3,500.80, Average: $1,750.40 " +
		"Total clicks: 400 " +
		"Average ctr: 3.00% " +
		"Top performer by spend: B"

	assert.Equal(t, expected, FallbackInsights(campaignResult()))
}

func TestFallbackInsightsSingleRow(t *testing.T) {
	data := &domain.ResultSet{
		Columns: []string{"name", "impressions"},
		Rows:    [][]any{{"Única", int64(1234567)}},
	}

	assert.Equal(t, "Found 1 records matching your query. Total impressions: 1,234,567", FallbackInsights(data))
}

func analyticalInsights() *domain.ResultSet {
	day1 := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)

	return &domain.ResultSet{
		Columns: []string{"date_start", "spend", "impressions", "clicks", "actual_ctr", "actual_cpm", "actual_cpc"},
		Rows: [][]any{
			{day2, 60.0, int64(2000), int64(40), 2.0, 30.0, 1.5},
			{day1, 40.0, int64(1000), int64(10), 1.0, 40.0, 4.0},
		},
	}
}

func TestAnalyticalSummary(t *testing.T) {
	campaigns := &domain.CampaignSummary{TotalCampaigns: 2, ActiveCampaigns: 1, AvgDailyBudget: 87.5, TotalDailyBudget: 175}
	ads := &domain.AdsSummary{TotalAds: 2, ActiveAds: 2}

	expected := strings.Join([]string{
		"Recent Performance (Last 30 data points):",
		"- Total Spend: $100.00",
		"- Total Impressions: 3,000",
		"- Total Clicks: 50",
		"- Average CTR: 1.50%",
		"- Average CPM: $35.00",
		"- Average CPC: $2.75",
		"- Latest day spend: $60.00 (Change: +50.0%)",
		"",
		"Campaign Overview:",
		"- Total Campaigns: 2",
		"- Active Campaigns: 1",
		"- Total Daily Budget: $175.00",
		"",
		"Ads Overview:",
		"- Total Ads: 2",
		"- Active Ads: 2",
		"- Paused Ads: 0",
	}, "\n")

	assert.Equal(t, expected, AnalyticalSummary(analyticalInsights(), campaigns, ads))
}

func TestFallbackAnalytical(t *testing.T) {
	text := FallbackAnalytical("What is my ROAS and CAC this week?", analyticalInsights())

	assert.True(t, strings.HasPrefix(text, "**Performance Summary:**\nTotal Spend: $100.00\n"))
	assert.Contains(t, text, "\n\n**Trend Analysis:**\nLatest day spend: $60.00\nPrevious day spend: $40.00\nDay-over-day change: +50.0%")
	assert.Contains(t, text, "**Note:** ROAS calculation requires conversion/revenue data")
	assert.Contains(t, text, "**Note:** CAC calculation requires conversion count data")

	single := &domain.ResultSet{
		Columns: []string{"date_start", "spend"},
		Rows:    [][]any{{time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), 10.0}},
	}
	text = FallbackAnalytical("spend spikes", single)
	assert.NotContains(t, text, "Trend Analysis")
	assert.NotContains(t, text, "Note")

	assert.Equal(t, "No data available for analysis.", FallbackAnalytical("roas", &domain.ResultSet{}))
}
