package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-analytics-api/internal/config"
	"github.com/vfg2006/ads-analytics-api/internal/domain"
)

//go:generate mockgen -source=query.go -destination=mocks/query.go -package=mocks

const keyPrefix = "ads-analytics:query"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// QueryCache guarda respostas de perguntas já processadas. Invalidate
// descarta tudo de uma vez, e é chamado a cada novo snapshot.
type QueryCache interface {
	Get(ctx context.Context, question string) (*domain.QueryResult, bool)
	Set(ctx context.Context, question string, result *domain.QueryResult)
	Invalidate(ctx context.Context) error
}

type RedisQueryCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewQueryCache devolve NopCache quando REDIS_URL não está configurada ou o
// servidor não responde.
func NewQueryCache(ctx context.Context, cfg config.Redis) QueryCache {
	if cfg.URL == "" {
		logrus.Info("REDIS_URL não configurada, cache de consultas desabilitado")
		return NopCache{}
	}

	opt, err := redis.ParseURL(cfg.URL)
	if err != nil {
		logrus.WithError(err).Error("REDIS_URL inválida, cache de consultas desabilitado")
		return NopCache{}
	}

	client := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		logrus.WithError(err).Error("Erro ao conectar no redis, cache de consultas desabilitado")
		return NopCache{}
	}

	logrus.WithField("ttl", cfg.QueryCacheTTL.String()).Info("Cache de consultas no redis habilitado")
	return NewRedisQueryCache(client, cfg.QueryCacheTTL)
}

func NewRedisQueryCache(client *redis.Client, ttl time.Duration) *RedisQueryCache {
	return &RedisQueryCache{client: client, ttl: ttl}
}

func (c *RedisQueryCache) Get(ctx context.Context, question string) (*domain.QueryResult, bool) {
	generation, err := c.generation(ctx)
	if err != nil {
		logrus.WithError(err).Warn("Erro ao ler geração do cache")
		return nil, false
	}

	payload, err := c.client.Get(ctx, QuestionKey(generation, question)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logrus.WithError(err).Warn("Erro ao ler resposta do cache")
		}
		return nil, false
	}

	var result domain.QueryResult
	if err := json.Unmarshal(payload, &result); err != nil {
		logrus.WithError(err).Warn("Resposta inválida no cache")
		return nil, false
	}

	result.Cached = true
	return &result, true
}

// Set ignora resultados com erro
func (c *RedisQueryCache) Set(ctx context.Context, question string, result *domain.QueryResult) {
	if result == nil || result.Failed() {
		return
	}

	generation, err := c.generation(ctx)
	if err != nil {
		logrus.WithError(err).Warn("Erro ao ler geração do cache")
		return
	}

	payload, err := json.Marshal(result)
	if err != nil {
		logrus.WithError(err).Warn("Erro ao serializar resposta para o cache")
		return
	}

	if err := c.client.Set(ctx, QuestionKey(generation, question), payload, c.ttl).Err(); err != nil {
		logrus.WithError(err).Warn("Erro ao gravar resposta no cache")
	}
}

func (c *RedisQueryCache) Invalidate(ctx context.Context) error {
	if err := c.client.Incr(ctx, generationKey()).Err(); err != nil {
		return fmt.Errorf("erro ao invalidar cache de consultas: %w", err)
	}
	return nil
}

func (c *RedisQueryCache) generation(ctx context.Context) (int64, error) {
	generation, err := c.client.Get(ctx, generationKey()).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return generation, err
}

func generationKey() string {
	return keyPrefix + ":generation"
}

// QuestionKey ignora caixa e espaços repetidos da pergunta
func QuestionKey(generation int64, question string) string {
	normalized := strings.Join(strings.Fields(strings.ToLower(question)), " ")
	sum := sha256.Sum256([]byte(normalized))
	return fmt.Sprintf("%s:%d:%s", keyPrefix, generation, hex.EncodeToString(sum[:]))
}

type NopCache struct{}

func (NopCache) Get(context.Context, string) (*domain.QueryResult, bool) {
	return nil, false
}

func (NopCache) Set(context.Context, string, *domain.QueryResult) {}

func (NopCache) Invalidate(context.Context) error {
	return nil
}
