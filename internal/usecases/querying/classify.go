package querying

import (
	"strings"

	"github.com/vfg2006/ads-analytics-api/internal/domain"
)

// analyticalKeywords são buscadas como substring da pergunta em minúsculas.
// "vs" casa inclusive dentro de outras palavras.
var analyticalKeywords = []string{
	"roas", "cac", "cpr", "ctr trend", "vs", "compared to", "comparison",
	"best performing", "worst performing", "burning budget", "low performance",
	"drops", "spikes", "anomalies", "top creatives", "learning phase",
	"limited by budget", "audience size", "impact of changes", "budget shifts",
	"over-spending", "under-spending", "unexpected spike", "same day last week",
	"yesterday vs today", "past 7 days", "trend analysis", "performance analysis",
}

func Classify(question string) domain.QueryType {
	lower := strings.ToLower(question)
	for _, keyword := range analyticalKeywords {
		if strings.Contains(lower, keyword) {
			return domain.QueryTypeAnalytical
		}
	}
	return domain.QueryTypeLookup
}
