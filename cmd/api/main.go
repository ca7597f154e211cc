package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-analytics-api/infrastructure/cache"
	"github.com/vfg2006/ads-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-analytics-api/infrastructure/integrator/gemini"
	"github.com/vfg2006/ads-analytics-api/infrastructure/integrator/meta"
	"github.com/vfg2006/ads-analytics-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-analytics-api/infrastructure/migration"
	"github.com/vfg2006/ads-analytics-api/infrastructure/repository"
	"github.com/vfg2006/ads-analytics-api/internal/api"
	"github.com/vfg2006/ads-analytics-api/internal/config"
	"github.com/vfg2006/ads-analytics-api/internal/scheduler"
	"github.com/vfg2006/ads-analytics-api/internal/usecases/fetching"
	"github.com/vfg2006/ads-analytics-api/internal/usecases/querying"
	"github.com/vfg2006/ads-analytics-api/internal/usecases/reporting"
	"github.com/vfg2006/ads-analytics-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel, cfg.App.LogFile)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	if err := migration.Up(ctx, pgConn); err != nil {
		logrus.WithError(err).Fatal("Erro ao criar as tabelas")
	}

	repos := fetching.Repositories{
		Campaigns: repository.NewCampaignRepository(pgConn),
		AdSets:    repository.NewAdSetRepository(pgConn),
		Ads:       repository.NewAdRepository(pgConn),
		Insights:  repository.NewInsightRepository(pgConn),
	}

	metaClient := metaclient.NewClient(cfg)
	metaIntegrator := meta.New(cfg, metaClient)

	generator := gemini.NewGenerator(ctx, cfg.Gemini)

	queryCache := cache.NewQueryCache(ctx, cfg.Redis)

	fetchService := fetching.NewService(metaIntegrator, repos, queryCache)
	queryService := querying.NewService(
		generator,
		repository.NewQueryExecutor(pgConn),
		repository.NewAnalyticsRepository(pgConn),
		queryCache,
	)
	reportService := reporting.NewService(fetchService)

	snapshotSyncService := scheduler.NewSnapshotSyncService(fetchService, cfg)
	if err := snapshotSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de snapshot")
	}

	server := api.New(cfg, fetchService, queryService, reportService, snapshotSyncService)

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	conn, err := postgres.NewConnection(connectCtx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
