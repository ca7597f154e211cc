package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/ads-analytics-api/internal/api/handler/router"
	"github.com/vfg2006/ads-analytics-api/internal/usecases/fetching"
	"github.com/vfg2006/ads-analytics-api/internal/usecases/querying"
	"github.com/vfg2006/ads-analytics-api/internal/usecases/reporting"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
		},
	}
}

func Snapshot(service fetching.FetchService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/accounts/:id/fetch",
			Method:  http.MethodPost,
			Handler: FetchAccount(service),
		},
		{
			Path:    "/v1/snapshot",
			Method:  http.MethodGet,
			Handler: GetSnapshot(service),
		},
	}
}

func Reports(service reporting.ReportService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/overview",
			Method:  http.MethodGet,
			Handler: GetOverview(service),
		},
		{
			Path:    "/v1/performance",
			Method:  http.MethodGet,
			Handler: GetPerformance(service),
		},
		{
			Path:    "/v1/data/:table",
			Method:  http.MethodGet,
			Handler: ExportTable(service),
		},
	}
}

func Query(service querying.QueryService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/query",
			Method:  http.MethodPost,
			Handler: ProcessQuery(service),
		},
		{
			Path:    "/v1/query/schema",
			Method:  http.MethodGet,
			Handler: GetQuerySchema(service),
		},
	}
}

func CronJobs(syncer SnapshotSyncer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/snapshot/run",
			Method:  http.MethodPost,
			Handler: RunSnapshotSync(syncer),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(syncer),
		},
	}
}
