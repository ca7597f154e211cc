package metaclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/sirupsen/logrus"
)

// Paginate segue paging.next até a última página. Qualquer falha no meio do
// caminho descarta o que já foi lido e devolve o erro.
func (c *MetaClient) Paginate(ctx context.Context, endpoint string, params url.Values) ([]json.RawMessage, error) {
	page, err := c.GetPage(ctx, endpoint, params)
	if err != nil {
		return nil, fmt.Errorf("erro na requisição paginada de %s: %w", endpoint, err)
	}

	records := make([]json.RawMessage, 0, len(page.Data))
	records = append(records, page.Data...)

	for page.Paging != nil && page.Paging.Next != "" {
		logrus.WithFields(logrus.Fields{
			"endpoint": endpoint,
			"count":    len(records),
		}).Debug("Buscando próxima página")

		after := afterCursor(page.Paging.Next)
		if after == "" {
			break
		}

		nextParams := cloneValues(params)
		nextParams.Set("after", after)

		page, err = c.GetPage(ctx, endpoint, nextParams)
		if err != nil {
			return nil, fmt.Errorf("erro na requisição paginada de %s: %w", endpoint, err)
		}

		if page.Data == nil {
			break
		}
		records = append(records, page.Data...)

		if err := c.sleep(ctx, c.Cfg.Meta.PageDelay); err != nil {
			return nil, err
		}
	}

	logrus.WithFields(logrus.Fields{
		"endpoint": endpoint,
		"count":    len(records),
	}).Info("Registros buscados na Graph API")

	return records, nil
}

// afterCursor extrai o parâmetro after da URL de próxima página
func afterCursor(next string) string {
	parsed, err := url.Parse(next)
	if err != nil {
		return ""
	}
	return parsed.Query().Get("after")
}

func cloneValues(values url.Values) url.Values {
	cloned := make(url.Values, len(values)+1)
	for key, v := range values {
		cloned[key] = append([]string(nil), v...)
	}
	return cloned
}
