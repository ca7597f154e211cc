package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total de requisições HTTP por método, rota e status",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duração das requisições HTTP",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"method", "route"},
	)

	httpInflightRequests = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "http_inflight_requests",
		Help: "Requisições HTTP em andamento",
	})
)

// MetricsMiddleware mede cada requisição. O rótulo route usa o padrão
// registrado no router (/v1/data/:table) para não explodir a cardinalidade.
func MetricsMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			httpInflightRequests.Inc()
			defer httpInflightRequests.Dec()

			route := ""
			r = r.WithContext(context.WithValue(r.Context(), routeKey{}, &route))

			sr := newStatusRecorder(w)
			start := time.Now()

			next.ServeHTTP(sr, r)

			if route == "" {
				route = "unmatched"
			}
			httpRequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
			httpRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(sr.statusCode)).Inc()
		})
	}
}

type routeKey struct{}

// WithRoutePattern marca a rota casada para o MetricsMiddleware
func WithRoutePattern(path string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if holder, ok := r.Context().Value(routeKey{}).(*string); ok {
				*holder = path
			}
			next.ServeHTTP(w, r)
		})
	}
}
