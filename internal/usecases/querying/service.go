package querying

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-analytics-api/infrastructure/cache"
	"github.com/vfg2006/ads-analytics-api/infrastructure/integrator/gemini"
	"github.com/vfg2006/ads-analytics-api/infrastructure/repository"
	"github.com/vfg2006/ads-analytics-api/internal/domain"
	"github.com/vfg2006/ads-analytics-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

// Mensagens devolvidas ao usuário no campo error do resultado
var (
	ErrSQLGeneration = errors.New("Failed to generate SQL query")
	ErrOnlySelect    = errors.New("Only SELECT queries are allowed")
)

type QueryService interface {
	// ProcessQuery nunca devolve erro: falhas ficam em QueryResult.Error
	ProcessQuery(ctx context.Context, question string) *domain.QueryResult
	Schema() []domain.SchemaTable
}

type Service struct {
	generator  gemini.Generator
	executor   repository.QueryExecutor
	analytics  repository.AnalyticsRepository
	queryCache cache.QueryCache
	schema     []domain.SchemaTable
	now        func() time.Time
}

func NewService(
	generator gemini.Generator,
	executor repository.QueryExecutor,
	analytics repository.AnalyticsRepository,
	queryCache cache.QueryCache,
) *Service {
	if queryCache == nil {
		queryCache = cache.NopCache{}
	}

	return &Service{
		generator:  generator,
		executor:   executor,
		analytics:  analytics,
		queryCache: queryCache,
		schema:     repository.SchemaInfo(),
		now:        time.Now,
	}
}

func (s *Service) Schema() []domain.SchemaTable {
	return s.schema
}

func (s *Service) ProcessQuery(ctx context.Context, question string) *domain.QueryResult {
	question = strings.TrimSpace(question)

	if cached, ok := s.queryCache.Get(ctx, question); ok {
		logrus.WithField("question", question).Debug("Resposta encontrada no cache")
		return cached
	}

	id, err := utils.NewQueryID()
	if err != nil {
		logrus.WithError(err).Warn("Erro ao gerar ID da consulta")
	}

	result := &domain.QueryResult{
		ID:          id,
		Question:    question,
		QueryType:   Classify(question),
		ProcessedAt: s.now(),
	}

	logger := logrus.WithFields(logrus.Fields{
		"query_id":   result.ID,
		"query_type": result.QueryType,
	})
	logger.Info("Processando pergunta")

	var degraded bool
	if result.QueryType == domain.QueryTypeAnalytical {
		degraded = s.processAnalytical(ctx, result)
	} else {
		degraded = s.processLookup(ctx, result)
	}

	if result.Failed() {
		logger.WithField("error", result.Error).Warn("Pergunta terminou com erro")
	}

	// respostas degradadas por falha transitória não vão para o cache
	if degraded {
		logger.Warn("Resposta degradada, cache ignorado")
		return result
	}

	s.queryCache.Set(ctx, question, result)
	return result
}

// processLookup retorna true quando a resposta foi degradada por falha do modelo
func (s *Service) processLookup(ctx context.Context, result *domain.QueryResult) bool {
	query, err := s.generateSQL(ctx, result.Question)
	if err != nil {
		result.Error = err.Error()
		return false
	}
	result.SQL = query

	if !IsSelect(query) {
		result.Error = ErrOnlySelect.Error()
		return false
	}

	data, err := s.executor.Execute(ctx, query)
	if err != nil {
		logrus.WithError(err).WithField("sql", query).Error("Erro ao executar SQL gerado")
		result.Error = err.Error()
		return false
	}

	result.Data = data

	insights, degraded := s.narrate(ctx, result.Question, query, data)
	result.Insights = insights
	return degraded
}

// generateSQL tenta o prompt completo e, se o modelo falhar, uma vez o prompt curto
func (s *Service) generateSQL(ctx context.Context, question string) (string, error) {
	if !s.generator.Available() {
		logrus.Error("Modelo Gemini indisponível, GEMINI_API_KEY é necessária para gerar SQL")
		return "", ErrSQLGeneration
	}

	text, err := s.generator.Generate(ctx, BuildSQLPrompt(s.schema, question))
	if err == nil {
		query := CleanSQL(text)
		logrus.WithField("sql", query).Info("SQL gerado")
		return query, nil
	}

	logrus.WithError(err).Error("Erro ao gerar SQL, tentando prompt simplificado")

	text, err = s.generator.Generate(ctx, SimpleSQLPrompt(question))
	if err != nil {
		logrus.WithError(err).Error("Erro ao gerar SQL com prompt simplificado")
		return "", ErrSQLGeneration
	}

	return CleanSQL(text), nil
}

func (s *Service) narrate(ctx context.Context, question, query string, data *domain.ResultSet) (string, bool) {
	if data.Empty() {
		return noDataMessage, false
	}

	if !s.generator.Available() {
		return FallbackInsights(data), false
	}

	text, err := s.generator.Generate(ctx, BuildInsightPrompt(question, query, data))
	if err != nil {
		logrus.WithError(err).Error("Erro ao gerar análise, usando texto padrão")
		return FallbackInsights(data), true
	}

	return text, false
}

// processAnalytical retorna true quando o banco ou o modelo falharam
func (s *Service) processAnalytical(ctx context.Context, result *domain.QueryResult) bool {
	result.SQL = domain.AnalyticalSQLLabel

	data, loaded := s.loadAnalyticalData(ctx)
	result.Data = data.insights

	if data.insights.Empty() {
		result.Insights = noRecentInsights
		return !loaded
	}

	if !s.generator.Available() {
		result.Insights = FallbackAnalytical(result.Question, data.insights)
		return false
	}

	summary := AnalyticalSummary(data.insights, data.campaigns, data.ads)
	text, err := s.generator.Generate(ctx, BuildAnalyticalPrompt(result.Question, summary))
	if err != nil {
		logrus.WithError(err).Error("Erro ao gerar análise")
		result.Insights = fmt.Sprintf("Error analyzing data: %s", err)
		return true
	}

	result.Insights = text
	return false
}

// loadAnalyticalData trata qualquer falha como ausência de dados; loaded indica se o banco respondeu
func (s *Service) loadAnalyticalData(ctx context.Context) (data analyticalData, loaded bool) {
	empty := analyticalData{insights: &domain.ResultSet{}}

	insights, err := s.analytics.RecentInsights(ctx, recentInsightsLimit)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar insights recentes")
		return empty, false
	}

	campaigns, err := s.analytics.CampaignSummary(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao resumir campanhas")
		return empty, false
	}

	ads, err := s.analytics.AdsSummary(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao resumir anúncios")
		return empty, false
	}

	if insights == nil {
		insights = &domain.ResultSet{}
	}

	return analyticalData{
		insights:  insights,
		campaigns: campaigns,
		ads:       ads,
	}, true
}
