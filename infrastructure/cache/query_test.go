package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-analytics-api/internal/config"
	"github.com/vfg2006/ads-analytics-api/internal/domain"
)

func TestQuestionKey(t *testing.T) {
	base := QuestionKey(0, "Top 5 campaigns by spend")

	assert.Equal(t, base, QuestionKey(0, "  top 5   CAMPAIGNS by spend "))
	assert.NotEqual(t, base, QuestionKey(1, "Top 5 campaigns by spend"))
	assert.NotEqual(t, base, QuestionKey(0, "Top 10 campaigns by spend"))
	assert.Contains(t, base, "ads-analytics:query:0:")
}

func TestNewQueryCacheFallsBackToNop(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Redis
	}{
		{name: "Sem URL", cfg: config.Redis{}},
		{name: "URL inválida", cfg: config.Redis{URL: "http://nao-e-redis"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewQueryCache(context.Background(), tt.cfg)
			assert.IsType(t, NopCache{}, c)

			c.Set(context.Background(), "q", &domain.QueryResult{Insights: "x"})
			_, ok := c.Get(context.Background(), "q")
			assert.False(t, ok)
			assert.NoError(t, c.Invalidate(context.Background()))
		})
	}
}

func TestRedisQueryCache(t *testing.T) {
	redisURL := os.Getenv("TEST_REDIS_URL")
	if redisURL == "" {
		t.Skip("TEST_REDIS_URL não configurada")
	}

	opt, err := redis.ParseURL(redisURL)
	require.NoError(t, err)
	client := redis.NewClient(opt)
	defer client.Close()

	ctx := context.Background()
	require.NoError(t, client.Del(ctx, generationKey()).Err())

	c := NewRedisQueryCache(client, time.Minute)
	question := "How many active campaigns?"

	_, ok := c.Get(ctx, question)
	assert.False(t, ok)

	c.Set(ctx, question, &domain.QueryResult{
		ID:        "abc",
		Question:  question,
		QueryType: domain.QueryTypeLookup,
		SQL:       "SELECT COUNT(*) FROM campaigns;",
		Insights:  "Found 1 records matching your query.",
	})

	cached, ok := c.Get(ctx, "how many ACTIVE campaigns?")
	require.True(t, ok)
	assert.True(t, cached.Cached)
	assert.Equal(t, "abc", cached.ID)

	c.Set(ctx, "falhou", &domain.QueryResult{Error: "Only SELECT queries are allowed"})
	_, ok = c.Get(ctx, "falhou")
	assert.False(t, ok)

	require.NoError(t, c.Invalidate(ctx))
	_, ok = c.Get(ctx, question)
	assert.False(t, ok)
}
