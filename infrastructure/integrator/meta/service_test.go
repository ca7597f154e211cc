package meta

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-analytics-api/infrastructure/integrator/meta/metaclient/mocks"
	"github.com/vfg2006/ads-analytics-api/internal/config"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

func newIntegrator(t *testing.T) (*MetaIntegrator, *mocks.MockClient) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	cfg := &config.Config{Meta: config.Meta{DatePreset: "last_7d"}}
	return New(cfg, client).WithClock(func() time.Time { return fixedNow }), client
}

func raws(values ...string) []json.RawMessage {
	out := make([]json.RawMessage, 0, len(values))
	for _, v := range values {
		out = append(out, json.RawMessage(v))
	}
	return out
}

func TestFetchCampaigns(t *testing.T) {
	integrator, client := newIntegrator(t)

	client.EXPECT().
		Paginate(gomock.Any(), "act_123/campaigns", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, params url.Values) ([]json.RawMessage, error) {
			assert.Equal(t, "id,name,status,objective,created_time,updated_time,start_time,stop_time,budget_remaining,daily_budget,lifetime_budget,account_id", params.Get("fields"))
			return raws(`{"id":"1","account_id":"999","name":"Black Friday","status":"ACTIVE","objective":"OUTCOME_SALES","created_time":"2024-01-10T08:00:00-0300","start_time":"2024-01-10 09:00:00","stop_time":"amanhã","daily_budget":"1500","lifetime_budget":""}`), nil
		})

	campaigns := integrator.FetchCampaigns(context.Background(), "act_123")
	require.Len(t, campaigns, 1)

	c := campaigns[0]
	assert.Equal(t, "1", c.ID)
	assert.Equal(t, "act_123", c.AccountID)
	assert.Equal(t, "Black Friday", c.Name)
	require.NotNil(t, c.CreatedTime)
	assert.Equal(t, time.Date(2024, 1, 10, 11, 0, 0, 0, time.UTC), c.CreatedTime.UTC())
	require.NotNil(t, c.StartTime)
	assert.Equal(t, 9, c.StartTime.Hour())
	assert.Nil(t, c.StopTime)
	assert.Nil(t, c.UpdatedTime)
	assert.Equal(t, 1500.0, c.DailyBudget)
	assert.Zero(t, c.LifetimeBudget)
	assert.Zero(t, c.BudgetRemaining)
	assert.JSONEq(t, `{"id":"1","account_id":"999","name":"Black Friday","status":"ACTIVE","objective":"OUTCOME_SALES","created_time":"2024-01-10T08:00:00-0300","start_time":"2024-01-10 09:00:00","stop_time":"amanhã","daily_budget":"1500","lifetime_budget":""}`, string(c.Data))
}

func TestFetchInsights(t *testing.T) {
	integrator, client := newIntegrator(t)

	client.EXPECT().
		Paginate(gomock.Any(), "act_123/insights", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, params url.Values) ([]json.RawMessage, error) {
			assert.Equal(t, "last_7d", params.Get("date_preset"))
			assert.Equal(t, "1", params.Get("time_increment"))
			return raws(
				`{"campaign_id":"c1","date_start":"2024-03-01","date_stop":"2024-03-01","impressions":"1000","clicks":"25","spend":"12.5","ctr":"2.5","actions":[{"action_type":"link_click","value":"20"}]}`,
				`{"campaign_id":"c1","date_start":"2024-03-01","impressions":"abc","clicks":null,"spend":7}`,
			), nil
		})

	insights := integrator.FetchInsights(context.Background(), "act_123")
	require.Len(t, insights, 2)

	assert.Equal(t, "c1-2024-03-01-0", insights[0].ID)
	assert.Equal(t, "c1-2024-03-01-1", insights[1].ID)
	assert.Equal(t, "act_123", insights[0].AccountID)
	assert.Equal(t, int64(1000), insights[0].Impressions)
	assert.Equal(t, int64(25), insights[0].Clicks)
	assert.Equal(t, 12.5, insights[0].Spend)
	assert.JSONEq(t, `[{"action_type":"link_click","value":"20"}]`, string(insights[0].Actions))
	assert.Nil(t, insights[0].CostPerAction)
	require.NotNil(t, insights[0].DateStart)
	assert.Equal(t, "2024-03-01", insights[0].DateStart.Format(time.DateOnly))

	assert.Zero(t, insights[1].Impressions)
	assert.Zero(t, insights[1].Clicks)
	assert.Equal(t, 7.0, insights[1].Spend)
	assert.Nil(t, insights[1].DateStop)
}

func TestFetchFallsBackToSampleData(t *testing.T) {
	integrator, client := newIntegrator(t)

	client.EXPECT().Paginate(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("token inválido")).Times(4)

	ctx := context.Background()

	campaigns := integrator.FetchCampaigns(ctx, "act_9")
	require.Len(t, campaigns, 2)
	assert.Equal(t, "camp_001", campaigns[0].ID)
	assert.Equal(t, "act_9", campaigns[0].AccountID)
	assert.Equal(t, fixedNow.AddDate(0, 0, -30), *campaigns[0].CreatedTime)
	assert.Nil(t, campaigns[0].StopTime)

	adSets := integrator.FetchAdSets(ctx, "act_9")
	require.Len(t, adSets, 2)
	assert.Equal(t, 2.5, adSets[0].BidAmount)

	ads := integrator.FetchAds(ctx, "act_9")
	require.Len(t, ads, 2)
	assert.Equal(t, "adset_002", ads[1].AdSetID)

	insights := integrator.FetchInsights(ctx, "act_9")
	require.Len(t, insights, 60)
	assert.Equal(t, "insight_0_1", insights[0].ID)
	assert.Equal(t, "2024-03-15", insights[0].DateStart.Format(time.DateOnly))

	last := insights[59]
	assert.Equal(t, "insight_29_2", last.ID)
	assert.Equal(t, "camp_002", last.CampaignID)
	assert.Equal(t, "2024-02-15", last.DateStart.Format(time.DateOnly))
	assert.Equal(t, int64(800+29*40), last.Impressions)
	assert.Equal(t, int64(83), last.Clicks)
	assert.InDelta(t, 35.75+29*1.2, last.Spend, 1e-9)
}

func TestFetchFallsBackOnMalformedRecord(t *testing.T) {
	integrator, client := newIntegrator(t)

	client.EXPECT().Paginate(gomock.Any(), "act_1/ads", gomock.Any()).
		Return(raws(`["not","an","object"]`), nil)

	ads := integrator.FetchAds(context.Background(), "act_1")
	require.Len(t, ads, 2)
	assert.Equal(t, "ad_001", ads[0].ID)
}

func TestParseDateTime(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "Formato ISO com offset", input: "2024-02-01T12:00:00+0000", expected: "2024-02-01 12:00:00"},
		{name: "Formato com espaço", input: "2024-02-01 08:15:00", expected: "2024-02-01 08:15:00"},
		{name: "Vazio", input: "", expected: ""},
		{name: "Inválido", input: "01/02/2024", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed := ParseDateTime(tt.input)
			if tt.expected == "" {
				assert.Nil(t, parsed)
				return
			}
			require.NotNil(t, parsed)
			assert.Equal(t, tt.expected, parsed.UTC().Format(time.DateTime))
		})
	}
}
