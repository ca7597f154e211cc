package fetching

import (
	"errors"
	"fmt"
)

var (
	ErrNoData        = errors.New("nenhum dado encontrado, busque os dados de uma conta primeiro")
	ErrStoreSnapshot = errors.New("erro ao gravar snapshot")
	ErrLoadSnapshot  = errors.New("erro ao carregar snapshot")
)

// FetchError é um erro com contexto adicional para a busca e gravação do snapshot
type FetchError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Table   string // Tabela envolvida (quando aplicável)
	Details string // Detalhes adicionais
}

func (e *FetchError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

func NewFetchError(err error, code, table, details string) *FetchError {
	return &FetchError{
		Err:     err,
		Code:    code,
		Table:   table,
		Details: details,
	}
}
