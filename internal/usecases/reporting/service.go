package reporting

import (
	"context"
	"errors"
	"fmt"

	"github.com/vfg2006/ads-analytics-api/internal/domain"
	"github.com/vfg2006/ads-analytics-api/internal/usecases/fetching"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

var (
	ErrUnknownTable  = errors.New("tabela desconhecida")
	ErrUnknownFormat = errors.New("formato de exportação desconhecido")
)

type ReportService interface {
	Overview(ctx context.Context) (*domain.Overview, error)
	Performance(ctx context.Context) (*domain.Performance, error)
	Export(ctx context.Context, table domain.Table, format domain.ExportFormat) (*domain.Export, error)
}

// Service monta as visões do painel a partir do snapshot gravado. Sem
// snapshot todas as operações devolvem fetching.ErrNoData.
type Service struct {
	snapshots fetching.FetchService
}

func NewService(snapshots fetching.FetchService) *Service {
	return &Service{
		snapshots: snapshots,
	}
}

func (s *Service) Overview(ctx context.Context) (*domain.Overview, error) {
	snapshot, err := s.snapshots.LoadExisting(ctx)
	if err != nil {
		return nil, err
	}
	return BuildOverview(snapshot), nil
}

func (s *Service) Performance(ctx context.Context) (*domain.Performance, error) {
	snapshot, err := s.snapshots.LoadExisting(ctx)
	if err != nil {
		return nil, err
	}
	return BuildPerformance(snapshot.Insights), nil
}

func (s *Service) Export(ctx context.Context, table domain.Table, format domain.ExportFormat) (*domain.Export, error) {
	snapshot, err := s.snapshots.LoadExisting(ctx)
	if err != nil {
		return nil, err
	}

	var records any
	switch table {
	case domain.TableCampaigns:
		records = snapshot.Campaigns
	case domain.TableAdSets:
		records = snapshot.AdSets
	case domain.TableAds:
		records = snapshot.Ads
	case domain.TableInsights:
		records = snapshot.Insights
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownTable, table)
	}

	return ExportRecords(string(table), records, format)
}
