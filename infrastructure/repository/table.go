package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/ads-analytics-api/infrastructure/database/postgres"
)

//go:generate mockgen -source=table.go -destination=mocks/table.go -package=mocks

// maxPlaceholders é o limite de parâmetros por statement do protocolo do Postgres
const (
	maxPlaceholders  = 65535
	defaultBatchSize = 500
)

// TableRepository grava e lê uma tabela inteira. ReplaceAll descarta o
// conteúdo anterior: depois dele a tabela contém exatamente os registros
// informados.
type TableRepository[T any] interface {
	ReplaceAll(ctx context.Context, records []T) error
	List(ctx context.Context) ([]T, error)
}

type scanner interface {
	Scan(dest ...any) error
}

type tableMapper[T any] struct {
	table   string
	columns []string
	orderBy string
	values  func(T) []any
	scan    func(scanner) (T, error)
}

type statement struct {
	sql  string
	args []any
}

type tableRepository[T any] struct {
	conn   *postgres.Connection
	mapper tableMapper[T]
}

func newTableRepository[T any](conn *postgres.Connection, mapper tableMapper[T]) *tableRepository[T] {
	return &tableRepository[T]{
		conn:   conn,
		mapper: mapper,
	}
}

func (r *tableRepository[T]) ReplaceAll(ctx context.Context, records []T) error {
	statements, err := buildReplaceStatements(r.mapper, records)
	if err != nil {
		return err
	}

	err = r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, stmt := range statements {
			if _, err := tx.ExecContext(ctx, stmt.sql, stmt.args...); err != nil {
				return wrapDBError(err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("erro ao substituir registros de %s: %w", r.mapper.table, err)
	}

	return nil
}

func (r *tableRepository[T]) List(ctx context.Context) ([]T, error) {
	query, args, err := squirrel.
		Select(r.mapper.columns...).
		From(r.mapper.table).
		OrderBy(r.mapper.orderBy).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", wrapDBError(err))
	}
	defer rows.Close()

	records := make([]T, 0)
	for rows.Next() {
		record, err := r.mapper.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear %s: %w", r.mapper.table, err)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

// buildReplaceStatements gera o DELETE seguido dos INSERTs em lotes
func buildReplaceStatements[T any](mapper tableMapper[T], records []T) ([]statement, error) {
	deleteSQL, deleteArgs, err := squirrel.
		Delete(mapper.table).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	statements := []statement{{sql: deleteSQL, args: deleteArgs}}
	rows := uniqueRows(mapper, records)

	batchSize := batchSizeFor(len(mapper.columns))
	for start := 0; start < len(rows); start += batchSize {
		end := min(start+batchSize, len(rows))

		insert := squirrel.
			Insert(mapper.table).
			Columns(mapper.columns...).
			PlaceholderFormat(squirrel.Dollar)

		for _, row := range rows[start:end] {
			insert = insert.Values(row...)
		}

		query, args, err := insert.ToSql()
		if err != nil {
			return nil, fmt.Errorf("erro ao construir a query: %w", err)
		}
		statements = append(statements, statement{sql: query, args: args})
	}

	return statements, nil
}

// uniqueRows mantém a última ocorrência de cada id; a primeira coluna é sempre a chave
func uniqueRows[T any](mapper tableMapper[T], records []T) [][]any {
	rows := make([][]any, 0, len(records))
	positions := make(map[any]int, len(records))

	for _, record := range records {
		row := mapper.values(record)
		if pos, ok := positions[row[0]]; ok {
			rows[pos] = row
			continue
		}
		positions[row[0]] = len(rows)
		rows = append(rows, row)
	}

	return rows
}

func batchSizeFor(columns int) int {
	if columns == 0 {
		return defaultBatchSize
	}
	return min(defaultBatchSize, maxPlaceholders/columns)
}

func wrapDBError(err error) error {
	if pqErr, ok := err.(*pq.Error); ok {
		return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
	}
	return err
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}

// jsonValue envia JSONB como texto; vazio vira NULL
func jsonValue(raw json.RawMessage) any {
	if len(raw) == 0 {
		return nil
	}
	return string(raw)
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

func rawJSON(data []byte) json.RawMessage {
	if len(data) == 0 {
		return nil
	}
	return json.RawMessage(data)
}
