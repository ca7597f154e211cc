package querying

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/vfg2006/ads-analytics-api/internal/domain"
	"github.com/vfg2006/ads-analytics-api/pkg/utils"
)

const (
	recentInsightsLimit = 30
	noRecentInsights    = "No recent insights data available for analysis."
)

const analyticalPrompt = `You are a Facebook Ads performance analyst. Analyze the provided data and answer the user's question with detailed insights, calculations, and recommendations.

User Question: %s

Available Data Summary:
%s

Please provide:
1. Direct answer to the user's question
2. Relevant calculations (ROAS, CAC, CPR, CTR trends, etc.)
3. Performance insights and patterns
4. Actionable recommendations
5. Any notable anomalies or concerns

Format your response as a comprehensive analysis with clear sections and specific numbers where available.
If the question asks for comparisons (vs yesterday, last week, etc.), calculate and present the differences.
If the question asks about trends, analyze the progression over time.
If the question asks about performance, identify best and worst performers with specific metrics.

Make calculations based on the actual data provided. For metrics not directly available, explain what additional data would be needed.
`

// analyticalData reúne as três agregações fixas
type analyticalData struct {
	insights  *domain.ResultSet
	campaigns *domain.CampaignSummary
	ads       *domain.AdsSummary
}

type recentMetrics struct {
	spend       float64
	impressions float64
	clicks      float64
	avgCTR      float64
	avgCPM      float64
	avgCPC      float64
}

func computeRecentMetrics(insights *domain.ResultSet) recentMetrics {
	return recentMetrics{
		spend:       utils.Sum(insights.Values("spend")),
		impressions: utils.Sum(insights.Values("impressions")),
		clicks:      utils.Sum(insights.Values("clicks")),
		avgCTR:      utils.Mean(insights.Values("actual_ctr")),
		avgCPM:      utils.Mean(insights.Values("actual_cpm")),
		avgCPC:      utils.Mean(insights.Values("actual_cpc")),
	}
}

// dailySpend soma o gasto por data, em ordem crescente
func dailySpend(insights *domain.ResultSet) []float64 {
	dateCol := insights.ColumnIndex("date_start")
	spendCol := insights.ColumnIndex("spend")
	if dateCol < 0 || spendCol < 0 {
		return nil
	}

	totals := make(map[string]float64)
	for i := range insights.Rows {
		if insights.Rows[i][dateCol] == nil {
			continue
		}
		spend, _ := insights.Float(i, spendCol)
		totals[insights.Text(i, dateCol)] += spend
	}

	days := make([]string, 0, len(totals))
	for day := range totals {
		days = append(days, day)
	}
	sort.Strings(days)

	series := make([]float64, 0, len(days))
	for _, day := range days {
		series = append(series, totals[day])
	}
	return series
}

// dayOverDay devolve o último dia, o anterior e a variação percentual.
// ok é false com menos de dois dias.
func dayOverDay(insights *domain.ResultSet) (latest, previous, change float64, ok bool) {
	series := dailySpend(insights)
	if len(series) < 2 {
		return 0, 0, 0, false
	}

	latest = series[len(series)-1]
	previous = series[len(series)-2]
	if previous > 0 {
		change = (latest - previous) / previous * 100
	}
	return latest, previous, change, true
}

func AnalyticalSummary(insights *domain.ResultSet, campaigns *domain.CampaignSummary, ads *domain.AdsSummary) string {
	summary := make([]string, 0, 16)

	if !insights.Empty() {
		m := computeRecentMetrics(insights)
		summary = append(summary,
			fmt.Sprintf("Recent Performance (Last %d data points):", recentInsightsLimit),
			fmt.Sprintf("- Total Spend: $%s", utils.FormatMoney(m.spend)),
			fmt.Sprintf("- Total Impressions: %s", formatCount(m.impressions)),
			fmt.Sprintf("- Total Clicks: %s", formatCount(m.clicks)),
			fmt.Sprintf("- Average CTR: %.2f%%", m.avgCTR),
			fmt.Sprintf("- Average CPM: $%.2f", m.avgCPM),
			fmt.Sprintf("- Average CPC: $%.2f", m.avgCPC),
		)

		if latest, _, change, ok := dayOverDay(insights); ok {
			summary = append(summary, fmt.Sprintf("- Latest day spend: $%.2f (Change: %+.1f%%)", latest, change))
		}
	}

	if campaigns != nil {
		summary = append(summary,
			"\nCampaign Overview:",
			fmt.Sprintf("- Total Campaigns: %d", campaigns.TotalCampaigns),
			fmt.Sprintf("- Active Campaigns: %d", campaigns.ActiveCampaigns),
			fmt.Sprintf("- Total Daily Budget: $%s", utils.FormatMoney(campaigns.TotalDailyBudget)),
		)
	}

	if ads != nil {
		summary = append(summary,
			"\nAds Overview:",
			fmt.Sprintf("- Total Ads: %d", ads.TotalAds),
			fmt.Sprintf("- Active Ads: %d", ads.ActiveAds),
			fmt.Sprintf("- Paused Ads: %d", ads.PausedAds),
		)
	}

	return strings.Join(summary, "\n")
}

func BuildAnalyticalPrompt(question, summary string) string {
	return fmt.Sprintf(analyticalPrompt, question, summary)
}

// FallbackAnalytical é usado quando não há modelo configurado
func FallbackAnalytical(question string, insights *domain.ResultSet) string {
	if insights.Empty() {
		return "No data available for analysis."
	}

	m := computeRecentMetrics(insights)
	lines := []string{
		"**Performance Summary:**",
		fmt.Sprintf("Total Spend: $%s", utils.FormatMoney(m.spend)),
		fmt.Sprintf("Total Impressions: %s", formatCount(m.impressions)),
		fmt.Sprintf("Total Clicks: %s", formatCount(m.clicks)),
		fmt.Sprintf("Average CTR: %.2f%%", m.avgCTR),
		fmt.Sprintf("Average CPM: $%.2f", m.avgCPM),
	}

	if latest, previous, change, ok := dayOverDay(insights); ok {
		lines = append(lines,
			"\n**Trend Analysis:**",
			fmt.Sprintf("Latest day spend: $%.2f", latest),
			fmt.Sprintf("Previous day spend: $%.2f", previous),
			fmt.Sprintf("Day-over-day change: %+.1f%%", change),
		)
	}

	lower := strings.ToLower(question)
	if strings.Contains(lower, "roas") || strings.Contains(lower, "return") {
		lines = append(lines, "\n**Note:** ROAS calculation requires conversion/revenue data which is not available in current dataset.")
	}
	if strings.Contains(lower, "cac") {
		lines = append(lines, "\n**Note:** CAC calculation requires conversion count data which is not available in current dataset.")
	}

	return strings.Join(lines, "\n")
}

func formatCount(total float64) string {
	return utils.FormatInteger(int64(math.Round(total)))
}
