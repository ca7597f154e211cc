package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-analytics-api/internal/config"
	"google.golang.org/genai"
)

//go:generate mockgen -source=client.go -destination=mocks/client.go -package=mocks

var (
	ErrUnavailable   = errors.New("modelo de linguagem não configurado")
	ErrEmptyResponse = errors.New("resposta vazia do modelo")
)

// Generator gera texto a partir de um prompt
type Generator interface {
	Available() bool
	Generate(ctx context.Context, prompt string) (string, error)
}

type Option func(*genai.ClientConfig)

// WithBaseURL aponta o cliente para outro endpoint, usado nos testes
func WithBaseURL(baseURL string) Option {
	return func(c *genai.ClientConfig) {
		c.HTTPOptions.BaseURL = baseURL
	}
}

type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGenerator nunca falha: sem GEMINI_API_KEY, ou se o cliente não puder
// ser criado, devolve um Generator indisponível.
func NewGenerator(ctx context.Context, cfg config.Gemini, opts ...Option) Generator {
	if cfg.APIKey == "" {
		logrus.Warn("GEMINI_API_KEY não configurada, respostas usarão o texto padrão")
		return Unavailable{}
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	for _, opt := range opts {
		opt(clientConfig)
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar cliente Gemini")
		return Unavailable{}
	}

	logrus.WithField("model", cfg.Model).Info("Cliente Gemini inicializado")

	return &GeminiClient{
		client: client,
		model:  cfg.Model,
	}
}

func (c *GeminiClient) Available() bool {
	return true
}

func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("erro ao gerar conteúdo: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", ErrEmptyResponse
	}

	return text, nil
}

// Unavailable representa a ausência de modelo configurado
type Unavailable struct{}

func (Unavailable) Available() bool {
	return false
}

func (Unavailable) Generate(context.Context, string) (string, error) {
	return "", ErrUnavailable
}
