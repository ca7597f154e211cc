package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/vfg2006/ads-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-analytics-api/internal/domain"
)

//go:generate mockgen -source=query.go -destination=mocks/query.go -package=mocks

// QueryExecutor executa SQL arbitrário e devolve o resultado tabular.
// As consultas rodam numa transação somente leitura.
type QueryExecutor interface {
	Execute(ctx context.Context, query string) (*domain.ResultSet, error)
}

type queryExecutor struct {
	conn *postgres.Connection
}

func NewQueryExecutor(conn *postgres.Connection) QueryExecutor {
	return &queryExecutor{
		conn: conn,
	}
}

func (e *queryExecutor) Execute(ctx context.Context, query string) (*domain.ResultSet, error) {
	var result *domain.ResultSet

	err := e.conn.RunReadOnly(ctx, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, query)
		if err != nil {
			return wrapDBError(err)
		}
		defer rows.Close()

		result, err = scanResultSet(rows)
		return err
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func scanResultSet(rows *sql.Rows) (*domain.ResultSet, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("erro ao ler colunas: %w", err)
	}

	columnTypes, err := rows.ColumnTypes()
	if err != nil {
		return nil, fmt.Errorf("erro ao ler tipos das colunas: %w", err)
	}

	result := &domain.ResultSet{
		Columns: columns,
		Rows:    make([][]any, 0),
	}

	for rows.Next() {
		values := make([]any, len(columns))
		pointers := make([]any, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}

		if err := rows.Scan(pointers...); err != nil {
			return nil, fmt.Errorf("erro ao escanear linha: %w", err)
		}

		for i, value := range values {
			values[i] = normalizeCell(value, columnTypes[i].DatabaseTypeName())
		}
		result.Rows = append(result.Rows, values)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return result, nil
}

// normalizeCell converte os []byte devolvidos pelo driver em número ou texto
func normalizeCell(value any, databaseType string) any {
	raw, ok := value.([]byte)
	if !ok {
		return value
	}

	switch strings.ToUpper(databaseType) {
	case "NUMERIC", "DECIMAL":
		if f, err := strconv.ParseFloat(string(raw), 64); err == nil {
			return f
		}
	}

	return string(raw)
}
