package reporting

import (
	"sort"
	"time"

	"github.com/vfg2006/ads-analytics-api/internal/domain"
	"github.com/vfg2006/ads-analytics-api/pkg/utils"
)

const (
	topCampaigns     = 10
	histogramBuckets = 10
)

func ctr(clicks, impressions int64) float64 {
	if impressions <= 0 {
		return 0
	}
	return utils.RoundWithTwoDecimalPlace(float64(clicks) / float64(impressions) * 100)
}

// BuildOverview agrega os insights por campanha. Linhas sem campaign_id
// (nível de conta) entram nos totais mas não no ranking.
func BuildOverview(snapshot *domain.Snapshot) *domain.Overview {
	names := make(map[string]string, len(snapshot.Campaigns))
	for _, c := range snapshot.Campaigns {
		names[c.ID] = c.Name
	}

	overview := &domain.Overview{}
	byCampaign := make(map[string]*domain.CampaignMetric)
	for _, in := range snapshot.Insights {
		overview.TotalSpend += in.Spend
		overview.TotalImpressions += in.Impressions
		overview.TotalClicks += in.Clicks

		if in.CampaignID == "" {
			continue
		}

		metric, ok := byCampaign[in.CampaignID]
		if !ok {
			name, found := names[in.CampaignID]
			if !found {
				name = in.CampaignID
			}
			metric = &domain.CampaignMetric{CampaignID: in.CampaignID, Name: name}
			byCampaign[in.CampaignID] = metric
		}
		metric.Spend += in.Spend
		metric.Impressions += in.Impressions
		metric.Clicks += in.Clicks
	}

	overview.TotalSpend = utils.RoundWithTwoDecimalPlace(overview.TotalSpend)
	overview.AverageCTR = ctr(overview.TotalClicks, overview.TotalImpressions)

	metrics := make([]domain.CampaignMetric, 0, len(byCampaign))
	for _, m := range byCampaign {
		m.Spend = utils.RoundWithTwoDecimalPlace(m.Spend)
		m.CTR = ctr(m.Clicks, m.Impressions)
		metrics = append(metrics, *m)
	}

	overview.TopCampaignsBySpend = topBy(metrics, func(m domain.CampaignMetric) float64 { return m.Spend })
	overview.TopCampaignsByCTR = topBy(metrics, func(m domain.CampaignMetric) float64 { return m.CTR })

	return overview
}

// topBy ordena de forma decrescente, desempatando pelo campaign_id
func topBy(metrics []domain.CampaignMetric, value func(domain.CampaignMetric) float64) []domain.CampaignMetric {
	sorted := make([]domain.CampaignMetric, len(metrics))
	copy(sorted, metrics)

	sort.Slice(sorted, func(i, j int) bool {
		vi, vj := value(sorted[i]), value(sorted[j])
		if vi != vj {
			return vi > vj
		}
		return sorted[i].CampaignID < sorted[j].CampaignID
	})

	return sorted[:min(topCampaigns, len(sorted))]
}

func BuildPerformance(insights []domain.Insight) *domain.Performance {
	byDay := make(map[time.Time]*domain.DailyPerformance)
	spends := make([]float64, 0, len(insights))
	ctrs := make([]float64, 0, len(insights))

	for _, in := range insights {
		spends = append(spends, in.Spend)
		if in.Impressions > 0 {
			ctrs = append(ctrs, float64(in.Clicks)/float64(in.Impressions)*100)
		}

		if in.DateStart == nil {
			continue
		}

		day := in.DateStart.UTC().Truncate(24 * time.Hour)
		daily, ok := byDay[day]
		if !ok {
			daily = &domain.DailyPerformance{Date: day}
			byDay[day] = daily
		}
		daily.Spend += in.Spend
		daily.Impressions += in.Impressions
		daily.Clicks += in.Clicks
	}

	series := make([]domain.DailyPerformance, 0, len(byDay))
	for _, daily := range byDay {
		daily.Spend = utils.RoundWithTwoDecimalPlace(daily.Spend)
		daily.CTR = ctr(daily.Clicks, daily.Impressions)
		series = append(series, *daily)
	}
	sort.Slice(series, func(i, j int) bool {
		return series[i].Date.Before(series[j].Date)
	})

	return &domain.Performance{
		Daily:             series,
		SpendDistribution: Histogram(spends, histogramBuckets),
		CTRDistribution:   Histogram(ctrs, histogramBuckets),
	}
}

// Histogram divide [min, max] em buckets de mesma largura. O último bucket
// é fechado dos dois lados.
func Histogram(values []float64, buckets int) []domain.HistogramBucket {
	if len(values) == 0 || buckets <= 0 {
		return []domain.HistogramBucket{}
	}

	lowest, highest := utils.MinMax(values)
	if lowest == highest {
		return []domain.HistogramBucket{{Lower: lowest, Upper: highest, Count: len(values)}}
	}

	width := (highest - lowest) / float64(buckets)
	histogram := make([]domain.HistogramBucket, buckets)
	for i := range histogram {
		histogram[i].Lower = lowest + float64(i)*width
		histogram[i].Upper = lowest + float64(i+1)*width
	}
	histogram[buckets-1].Upper = highest

	for _, v := range values {
		idx := int((v - lowest) / width)
		if idx >= buckets {
			idx = buckets - 1
		}
		histogram[idx].Count++
	}

	return histogram
}
