package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-analytics-api/infrastructure/database/postgres"
)

var statements = []string{
	`CREATE TABLE IF NOT EXISTS campaigns (
		id               VARCHAR(50) PRIMARY KEY,
		account_id       VARCHAR(50) NOT NULL,
		name             TEXT NOT NULL,
		status           VARCHAR(50),
		objective        VARCHAR(100),
		created_time     TIMESTAMPTZ,
		updated_time     TIMESTAMPTZ,
		start_time       TIMESTAMPTZ,
		stop_time        TIMESTAMPTZ,
		budget_remaining DOUBLE PRECISION,
		daily_budget     DOUBLE PRECISION,
		lifetime_budget  DOUBLE PRECISION,
		data             JSONB,
		inserted_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS adsets (
		id                VARCHAR(50) PRIMARY KEY,
		account_id        VARCHAR(50) NOT NULL,
		campaign_id       VARCHAR(50),
		name              TEXT NOT NULL,
		status            VARCHAR(50),
		optimization_goal VARCHAR(100),
		billing_event     VARCHAR(100),
		bid_amount        DOUBLE PRECISION,
		daily_budget      DOUBLE PRECISION,
		lifetime_budget   DOUBLE PRECISION,
		start_time        TIMESTAMPTZ,
		end_time          TIMESTAMPTZ,
		created_time      TIMESTAMPTZ,
		updated_time      TIMESTAMPTZ,
		data              JSONB,
		inserted_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS ads (
		id           VARCHAR(50) PRIMARY KEY,
		account_id   VARCHAR(50) NOT NULL,
		campaign_id  VARCHAR(50),
		adset_id     VARCHAR(50),
		name         TEXT NOT NULL,
		status       VARCHAR(50),
		created_time TIMESTAMPTZ,
		updated_time TIMESTAMPTZ,
		data         JSONB,
		inserted_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS insights (
		id                   VARCHAR(100) PRIMARY KEY,
		account_id           VARCHAR(50) NOT NULL,
		campaign_id          VARCHAR(50),
		adset_id             VARCHAR(50),
		ad_id                VARCHAR(50),
		date_start           DATE,
		date_stop            DATE,
		impressions          BIGINT,
		clicks               BIGINT,
		spend                DOUBLE PRECISION,
		reach                BIGINT,
		frequency            DOUBLE PRECISION,
		cpm                  DOUBLE PRECISION,
		cpc                  DOUBLE PRECISION,
		ctr                  DOUBLE PRECISION,
		cpp                  DOUBLE PRECISION,
		actions              JSONB,
		cost_per_action_type JSONB,
		data                 JSONB,
		inserted_at          TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_insights_date_start ON insights (date_start)`,
	// bancos criados antes de name virar TEXT
	`ALTER TABLE campaigns ALTER COLUMN name TYPE TEXT`,
	`ALTER TABLE adsets ALTER COLUMN name TYPE TEXT`,
	`ALTER TABLE ads ALTER COLUMN name TYPE TEXT`,
}

// Up cria as quatro tabelas quando ainda não existem
func Up(ctx context.Context, conn *postgres.Connection) error {
	startTime := time.Now()
	logrus.Info("Iniciando criação do esquema")

	err := conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for i, stmt := range statements {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("erro ao executar migração [%d/%d]: %w", i+1, len(statements), err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	logrus.WithField("duration", time.Since(startTime).String()).Info("Esquema criado com sucesso")
	return nil
}
