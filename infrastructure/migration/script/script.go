package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-analytics-api/infrastructure/migration"
	"github.com/vfg2006/ads-analytics-api/internal/config"
)

// Executa apenas a migração, sem subir a API
func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	logrus.Info("Iniciando script de migração...")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar configuração")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	if err := migration.Up(ctx, conn); err != nil {
		logrus.WithError(err).Fatal("ERRO na migração")
	}

	logrus.Info("Migração concluída")
}
