package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ads-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-analytics-api/internal/domain"
)

//go:generate mockgen -source=analytics.go -destination=mocks/analytics.go -package=mocks

// AnalyticsRepository reúne as agregações fixas usadas nas perguntas analíticas
type AnalyticsRepository interface {
	RecentInsights(ctx context.Context, limit uint64) (*domain.ResultSet, error)
	CampaignSummary(ctx context.Context) (*domain.CampaignSummary, error)
	AdsSummary(ctx context.Context) (*domain.AdsSummary, error)
}

type analyticsRepository struct {
	conn *postgres.Connection
}

func NewAnalyticsRepository(conn *postgres.Connection) AnalyticsRepository {
	return &analyticsRepository{
		conn: conn,
	}
}

func recentInsightsQuery(limit uint64) (string, []any, error) {
	return squirrel.
		Select(
			"date_start",
			"spend",
			"impressions",
			"clicks",
			"reach",
			"frequency",
			"cpm",
			"cpc",
			"ctr",
			"CASE WHEN clicks > 0 THEN spend / clicks ELSE 0 END AS actual_cpc",
			"CASE WHEN impressions > 0 THEN (clicks::float / impressions::float) * 100 ELSE 0 END AS actual_ctr",
			"CASE WHEN impressions > 0 THEN (spend / impressions) * 1000 ELSE 0 END AS actual_cpm",
		).
		From(string(domain.TableInsights)).
		Where(squirrel.Gt{"spend": 0}).
		OrderBy("date_start DESC").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func (r *analyticsRepository) RecentInsights(ctx context.Context, limit uint64) (*domain.ResultSet, error) {
	query, args, err := recentInsightsQuery(limit)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar insights recentes: %w", wrapDBError(err))
	}
	defer rows.Close()

	return scanResultSet(rows)
}

func (r *analyticsRepository) CampaignSummary(ctx context.Context) (*domain.CampaignSummary, error) {
	query, args, err := squirrel.
		Select(
			"COUNT(*)",
			"COUNT(CASE WHEN status = 'ACTIVE' THEN 1 END)",
			"COALESCE(AVG(daily_budget), 0)",
			"COALESCE(SUM(daily_budget), 0)",
		).
		From(string(domain.TableCampaigns)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	summary := &domain.CampaignSummary{}
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&summary.TotalCampaigns,
		&summary.ActiveCampaigns,
		&summary.AvgDailyBudget,
		&summary.TotalDailyBudget,
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao resumir campanhas: %w", wrapDBError(err))
	}

	return summary, nil
}

func (r *analyticsRepository) AdsSummary(ctx context.Context) (*domain.AdsSummary, error) {
	query, args, err := squirrel.
		Select(
			"COUNT(*)",
			"COUNT(CASE WHEN status = 'ACTIVE' THEN 1 END)",
			"COUNT(CASE WHEN status = 'PAUSED' THEN 1 END)",
		).
		From(string(domain.TableAds)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	summary := &domain.AdsSummary{}
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&summary.TotalAds,
		&summary.ActiveAds,
		&summary.PausedAds,
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao resumir anúncios: %w", wrapDBError(err))
	}

	return summary, nil
}
