package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-analytics-api/internal/api/handler"
	"github.com/vfg2006/ads-analytics-api/internal/api/handler/router"
	"github.com/vfg2006/ads-analytics-api/internal/config"
	"github.com/vfg2006/ads-analytics-api/internal/usecases/fetching"
	"github.com/vfg2006/ads-analytics-api/internal/usecases/querying"
	"github.com/vfg2006/ads-analytics-api/internal/usecases/reporting"
	"github.com/vfg2006/ads-analytics-api/pkg/middleware"
)

// Consultas ao LLM e a busca paginada na Graph API podem levar dezenas de segundos
const writeTimeout = 5 * time.Minute

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	fetchService fetching.FetchService,
	queryService querying.QueryService,
	reportService reporting.ReportService,
	snapshotSync handler.SnapshotSyncer,
) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           NewHandler(config, fetchService, queryService, reportService, snapshotSync),
			ReadHeaderTimeout: 2 * time.Second,
			WriteTimeout:      writeTimeout,
		},
	}
}

// NewHandler monta o router com a cadeia de middlewares global
func NewHandler(
	config *config.Config,
	fetchService fetching.FetchService,
	queryService querying.QueryService,
	reportService reporting.ReportService,
	snapshotSync handler.SnapshotSyncer,
) http.Handler {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Snapshot(fetchService)...),
		router.WithRoutes(handler.Reports(reportService)...),
		router.WithRoutes(handler.Query(queryService)...),
		router.WithRoutes(handler.CronJobs(snapshotSync)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.MetricsMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.App.AllowedOrigins),
	}

	return alice.New(middlewares...).Then(rt)
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	// Aguardar pelo sinal ou pelo cancelamento do contexto
	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	// Define timeout para desligamento
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Log de início do desligamento
	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	logrus.Info("Executando operações de limpeza antes do desligamento")

	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
