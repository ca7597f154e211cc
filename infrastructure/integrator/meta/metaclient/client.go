package metaclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-analytics-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-analytics-api/internal/config"
)

//go:generate mockgen -source=client.go -destination=mocks/client.go -package=mocks

type Client interface {
	GetPage(ctx context.Context, endpoint string, params url.Values) (*metadomain.Page, error)
	Paginate(ctx context.Context, endpoint string, params url.Values) ([]json.RawMessage, error)
}

type MetaClient struct {
	Cfg        *config.Config
	HTTPClient *http.Client
	sleep      func(ctx context.Context, d time.Duration) error
}

type Option func(*MetaClient)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *MetaClient) {
		c.HTTPClient = httpClient
	}
}

func WithSleeper(sleep func(ctx context.Context, d time.Duration) error) Option {
	return func(c *MetaClient) {
		c.sleep = sleep
	}
}

func NewClient(cfg *config.Config, opts ...Option) Client {
	if cfg.Meta.AccessToken == "" {
		logrus.Warn("FACEBOOK_ACCESS_TOKEN não configurado, as chamadas à Graph API vão falhar")
	}

	client := &MetaClient{
		Cfg:        cfg,
		HTTPClient: &http.Client{Timeout: cfg.Meta.HTTPTimeout},
		sleep:      sleepContext,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// GetPage faz um único GET em <base>/<versão>/<endpoint>
func (c *MetaClient) GetPage(ctx context.Context, endpoint string, params url.Values) (*metadomain.Page, error) {
	query := url.Values{}
	query.Set("access_token", c.Cfg.Meta.AccessToken)
	if c.Cfg.Meta.PageLimit > 0 {
		query.Set("limit", strconv.Itoa(c.Cfg.Meta.PageLimit))
	}
	for key, values := range params {
		query[key] = append([]string(nil), values...)
	}

	requestURL := fmt.Sprintf("%s/%s?%s", c.Cfg.Meta.URL, strings.TrimLeft(endpoint, "/"), query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		logrus.WithError(redact(err)).Error("Erro ao criar a requisição")
		return nil, redact(err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		err = redact(err)
		logrus.WithError(err).WithField("endpoint", endpoint).Error("Erro ao fazer a requisição")
		return nil, err
	}
	defer resp.Body.Close()

	body, err := c.HandleResponse(resp)
	if err != nil {
		return nil, err
	}

	var page metadomain.Page
	if err := json.Unmarshal(body, &page); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, fmt.Errorf("erro ao decodificar página de %s: %w", endpoint, err)
	}

	return &page, nil
}

// HandleResponse devolve o corpo das respostas 200 e converte as demais em GraphError
func (c *MetaClient) HandleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta: %w", err)
	}

	if resp.StatusCode == http.StatusOK {
		return body, nil
	}

	graphErr := &metadomain.GraphError{
		StatusCode: resp.StatusCode,
		Body:       string(body),
	}

	var errorResp metadomain.ErrorResponse
	if err := json.Unmarshal(body, &errorResp); err == nil && errorResp.Error.Code != 0 {
		graphErr.Details = &errorResp.Error
	}

	if graphErr.TokenExpired() {
		logrus.Warnf("Token expirado detectado pela API Meta. Código: %d, Subcódigo: %d. Gere um novo FACEBOOK_ACCESS_TOKEN",
			graphErr.Details.Code, graphErr.Details.ErrorSubcode)
	}

	return nil, graphErr
}

// redact remove a URL (que carrega o access_token) dos erros de transporte
func redact(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("%s: %w", urlErr.Op, urlErr.Err)
	}
	return err
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
