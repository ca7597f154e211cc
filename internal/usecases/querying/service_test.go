package querying

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cachemocks "github.com/vfg2006/ads-analytics-api/infrastructure/cache/mocks"
	geminimocks "github.com/vfg2006/ads-analytics-api/infrastructure/integrator/gemini/mocks"
	repomocks "github.com/vfg2006/ads-analytics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-analytics-api/internal/domain"
	"github.com/vfg2006/ads-analytics-api/pkg/utils"
	"go.uber.org/mock/gomock"
)

type queryFixture struct {
	service   *Service
	generator *geminimocks.MockGenerator
	executor  *repomocks.MockQueryExecutor
	analytics *repomocks.MockAnalyticsRepository
	cache     *cachemocks.MockQueryCache
}

var processedAt = time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

func newQueryFixture(t *testing.T) *queryFixture {
	f := newUncachedQueryFixture(t)
	f.cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	return f
}

// newUncachedQueryFixture deixa as chamadas de Set para cada teste
func newUncachedQueryFixture(t *testing.T) *queryFixture {
	ctrl := gomock.NewController(t)

	f := &queryFixture{
		generator: geminimocks.NewMockGenerator(ctrl),
		executor:  repomocks.NewMockQueryExecutor(ctrl),
		analytics: repomocks.NewMockAnalyticsRepository(ctrl),
		cache:     cachemocks.NewMockQueryCache(ctrl),
	}
	f.service = NewService(f.generator, f.executor, f.analytics, f.cache)
	f.service.now = func() time.Time { return processedAt }

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, false).AnyTimes()

	return f
}

func TestProcessQueryLookup(t *testing.T) {
	f := newQueryFixture(t)
	data := campaignResult()

	f.generator.EXPECT().Available().Return(true).AnyTimes()
	f.generator.EXPECT().Generate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, prompt string) (string, error) {
			if strings.HasPrefix(prompt, "You are a PostgreSQL expert.") {
				assert.Contains(t, prompt, "User Query: top 5 campaigns by spend")
				return "```sql\nSELECT name, spend FROM campaigns LIMIT 5\n```", nil
			}
			assert.Contains(t, prompt, "SQL Query: SELECT name, spend FROM campaigns LIMIT 5;")
			assert.Contains(t, prompt, "Rows: 2, Columns: 4")
			return "Campanha B lidera o gasto.", nil
		}).Times(2)
	f.executor.EXPECT().Execute(gomock.Any(), "SELECT name, spend FROM campaigns LIMIT 5;").Return(data, nil)

	result := f.service.ProcessQuery(context.Background(), "  top 5 campaigns by spend ")

	assert.True(t, strings.HasPrefix(result.ID, utils.QueryIDPrefix))
	assert.Len(t, result.ID, 12)
	assert.Equal(t, "top 5 campaigns by spend", result.Question)
	assert.Equal(t, domain.QueryTypeLookup, result.QueryType)
	assert.Equal(t, "SELECT name, spend FROM campaigns LIMIT 5;", result.SQL)
	assert.Equal(t, data, result.Data)
	assert.Equal(t, "Campanha B lidera o gasto.", result.Insights)
	assert.Empty(t, result.Error)
	assert.Equal(t, processedAt, result.ProcessedAt)
}

func TestProcessQueryLookupFailures(t *testing.T) {
	tests := []struct {
		name          string
		setup         func(f *queryFixture)
		expectedError string
		expectedSQL   string
	}{
		{
			name: "Sem modelo configurado",
			setup: func(f *queryFixture) {
				f.generator.EXPECT().Available().Return(false).AnyTimes()
			},
			expectedError: "Failed to generate SQL query",
		},
		{
			name: "Modelo falha nas duas tentativas",
			setup: func(f *queryFixture) {
				f.generator.EXPECT().Available().Return(true).AnyTimes()
				f.generator.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("", errors.New("quota")).Times(2)
			},
			expectedError: "Failed to generate SQL query",
		},
		{
			name: "SQL que não é SELECT",
			setup: func(f *queryFixture) {
				f.generator.EXPECT().Available().Return(true).AnyTimes()
				f.generator.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("DELETE FROM campaigns", nil)
			},
			expectedError: "Only SELECT queries are allowed",
			expectedSQL:   "DELETE FROM campaigns;",
		},
		{
			name: "Erro na execução",
			setup: func(f *queryFixture) {
				f.generator.EXPECT().Available().Return(true).AnyTimes()
				f.generator.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("SELECT foo FROM ads", nil)
				f.executor.EXPECT().Execute(gomock.Any(), "SELECT foo FROM ads;").
					Return(nil, errors.New(`pq: column "foo" does not exist`))
			},
			expectedError: `pq: column "foo" does not exist`,
			expectedSQL:   "SELECT foo FROM ads;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newQueryFixture(t)
			tt.setup(f)

			result := f.service.ProcessQuery(context.Background(), "list ads")

			assert.Equal(t, tt.expectedError, result.Error)
			assert.Equal(t, tt.expectedSQL, result.SQL)
			assert.Nil(t, result.Data)
			assert.Empty(t, result.Insights)
		})
	}
}

func TestProcessQueryRetriesWithSimplePrompt(t *testing.T) {
	f := newQueryFixture(t)

	f.generator.EXPECT().Available().Return(true).AnyTimes()
	gomock.InOrder(
		f.generator.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("", errors.New("timeout")),
		f.generator.EXPECT().Generate(gomock.Any(), "Convert to SQL: count ads\nUse these tables: campaigns, adsets, ads, insights").
			Return("SELECT COUNT(*) FROM ads", nil),
	)
	f.executor.EXPECT().Execute(gomock.Any(), "SELECT COUNT(*) FROM ads;").
		Return(&domain.ResultSet{Columns: []string{"count"}}, nil)

	result := f.service.ProcessQuery(context.Background(), "count ads")

	assert.Empty(t, result.Error)
	assert.Equal(t, "No data found for the given query.", result.Insights)
}

func TestProcessQueryNarrationFallsBack(t *testing.T) {
	f := newUncachedQueryFixture(t)
	f.cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	f.generator.EXPECT().Available().Return(true).AnyTimes()
	gomock.InOrder(
		f.generator.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("SELECT name, spend, clicks, ctr FROM x", nil),
		f.generator.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("", errors.New("quota")),
	)
	f.executor.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(campaignResult(), nil)

	result := f.service.ProcessQuery(context.Background(), "campaign spend")

	assert.Empty(t, result.Error)
	assert.Equal(t, FallbackInsights(campaignResult()), result.Insights)
}

func TestProcessQueryAnalytical(t *testing.T) {
	campaigns := &domain.CampaignSummary{TotalCampaigns: 2, ActiveCampaigns: 2, TotalDailyBudget: 175}
	ads := &domain.AdsSummary{TotalAds: 2, ActiveAds: 2}

	tests := []struct {
		name             string
		setup            func(f *queryFixture)
		expectedInsights string
		expectData       bool
		cached           bool
	}{
		{
			name: "Análise pelo modelo",
			setup: func(f *queryFixture) {
				f.analytics.EXPECT().RecentInsights(gomock.Any(), uint64(30)).Return(analyticalInsights(), nil)
				f.analytics.EXPECT().CampaignSummary(gomock.Any()).Return(campaigns, nil)
				f.analytics.EXPECT().AdsSummary(gomock.Any()).Return(ads, nil)
				f.generator.EXPECT().Available().Return(true).AnyTimes()
				f.generator.EXPECT().Generate(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, prompt string) (string, error) {
						assert.Contains(t, prompt, "User Question: ROAS trend")
						assert.Contains(t, prompt, "- Total Spend: $100.00")
						assert.Contains(t, prompt, "- Total Campaigns: 2")
						return "ROAS precisa de receita.", nil
					})
			},
			expectedInsights: "ROAS precisa de receita.",
			expectData:       true,
			cached:           true,
		},
		{
			name: "Sem modelo usa texto padrão",
			setup: func(f *queryFixture) {
				f.analytics.EXPECT().RecentInsights(gomock.Any(), gomock.Any()).Return(analyticalInsights(), nil)
				f.analytics.EXPECT().CampaignSummary(gomock.Any()).Return(campaigns, nil)
				f.analytics.EXPECT().AdsSummary(gomock.Any()).Return(ads, nil)
				f.generator.EXPECT().Available().Return(false).AnyTimes()
			},
			expectedInsights: FallbackAnalytical("ROAS trend", analyticalInsights()),
			expectData:       true,
			cached:           true,
		},
		{
			name: "Erro do modelo",
			setup: func(f *queryFixture) {
				f.analytics.EXPECT().RecentInsights(gomock.Any(), gomock.Any()).Return(analyticalInsights(), nil)
				f.analytics.EXPECT().CampaignSummary(gomock.Any()).Return(campaigns, nil)
				f.analytics.EXPECT().AdsSummary(gomock.Any()).Return(ads, nil)
				f.generator.EXPECT().Available().Return(true).AnyTimes()
				f.generator.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("", errors.New("503 overloaded"))
			},
			expectedInsights: "Error analyzing data: 503 overloaded",
			expectData:       true,
		},
		{
			name: "Sem insights recentes",
			setup: func(f *queryFixture) {
				f.analytics.EXPECT().RecentInsights(gomock.Any(), gomock.Any()).
					Return(&domain.ResultSet{Columns: []string{"date_start"}}, nil)
				f.analytics.EXPECT().CampaignSummary(gomock.Any()).Return(campaigns, nil)
				f.analytics.EXPECT().AdsSummary(gomock.Any()).Return(ads, nil)
			},
			expectedInsights: "No recent insights data available for analysis.",
			cached:           true,
		},
		{
			name: "Falha no banco é tratada como ausência de dados",
			setup: func(f *queryFixture) {
				f.analytics.EXPECT().RecentInsights(gomock.Any(), gomock.Any()).Return(nil, errors.New("conexão recusada"))
			},
			expectedInsights: "No recent insights data available for analysis.",
		},
		{
			name: "Falha no resumo de campanhas não vai para o cache",
			setup: func(f *queryFixture) {
				f.analytics.EXPECT().RecentInsights(gomock.Any(), gomock.Any()).Return(analyticalInsights(), nil)
				f.analytics.EXPECT().CampaignSummary(gomock.Any()).Return(nil, errors.New("timeout"))
			},
			expectedInsights: "No recent insights data available for analysis.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newUncachedQueryFixture(t)
			tt.setup(f)
			if tt.cached {
				f.cache.EXPECT().Set(gomock.Any(), "ROAS trend", gomock.Any()).Times(1)
			} else {
				f.cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			}

			result := f.service.ProcessQuery(context.Background(), "ROAS trend")

			assert.Equal(t, domain.QueryTypeAnalytical, result.QueryType)
			assert.Equal(t, "Analytical Query (No SQL Required)", result.SQL)
			assert.Equal(t, tt.expectedInsights, result.Insights)
			assert.Empty(t, result.Error)
			require.NotNil(t, result.Data)
			assert.Equal(t, tt.expectData, !result.Data.Empty())
		})
	}
}

func TestProcessQueryReturnsCachedResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	queryCache := cachemocks.NewMockQueryCache(ctrl)
	cached := &domain.QueryResult{ID: "abc123", Question: "count ads", Cached: true}

	queryCache.EXPECT().Get(gomock.Any(), "count ads").Return(cached, true)

	service := NewService(
		geminimocks.NewMockGenerator(ctrl),
		repomocks.NewMockQueryExecutor(ctrl),
		repomocks.NewMockAnalyticsRepository(ctrl),
		queryCache,
	)

	assert.Same(t, cached, service.ProcessQuery(context.Background(), "count ads"))
}

func TestSchema(t *testing.T) {
	service := NewService(nil, nil, nil, nil)

	tables := make([]string, 0, 4)
	for _, table := range service.Schema() {
		tables = append(tables, table.Table)
	}
	assert.Equal(t, []string{"campaigns", "adsets", "ads", "insights"}, tables)
}
