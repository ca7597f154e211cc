package domain

import (
	"fmt"
	"strconv"
	"time"
)

// ResultSet é o resultado tabular de uma consulta arbitrária. As células
// podem ser int64, float64, string, bool, time.Time ou nil.
type ResultSet struct {
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

func (r *ResultSet) Len() int {
	if r == nil {
		return 0
	}
	return len(r.Rows)
}

func (r *ResultSet) Empty() bool {
	return r.Len() == 0
}

// ColumnIndex retorna -1 quando a coluna não existe
func (r *ResultSet) ColumnIndex(name string) int {
	if r == nil {
		return -1
	}

	for i, column := range r.Columns {
		if column == name {
			return i
		}
	}
	return -1
}

func (r *ResultSet) HasColumn(name string) bool {
	return r.ColumnIndex(name) >= 0
}

// Float lê uma célula numérica. Células nulas ou não numéricas retornam false.
func (r *ResultSet) Float(row, col int) (float64, bool) {
	if r == nil || row < 0 || row >= len(r.Rows) || col < 0 || col >= len(r.Rows[row]) {
		return 0, false
	}
	return ToFloat(r.Rows[row][col])
}

// Values retorna os valores numéricos não nulos de uma coluna
func (r *ResultSet) Values(name string) []float64 {
	col := r.ColumnIndex(name)
	if col < 0 {
		return nil
	}

	values := make([]float64, 0, len(r.Rows))
	for i := range r.Rows {
		if v, ok := r.Float(i, col); ok {
			values = append(values, v)
		}
	}
	return values
}

// NumericColumns lista, na ordem original, as colunas cujas células não nulas
// são todas numéricas. Colunas inteiramente nulas não entram.
func (r *ResultSet) NumericColumns() []string {
	if r == nil {
		return nil
	}

	numeric := make([]string, 0, len(r.Columns))
	for col, name := range r.Columns {
		seen := false
		isNumeric := true
		for _, row := range r.Rows {
			if col >= len(row) || row[col] == nil {
				continue
			}
			if _, ok := ToFloat(row[col]); !ok {
				isNumeric = false
				break
			}
			seen = true
		}

		if seen && isNumeric {
			numeric = append(numeric, name)
		}
	}
	return numeric
}

// Head devolve as primeiras n linhas compartilhando as colunas
func (r *ResultSet) Head(n int) *ResultSet {
	if r == nil {
		return nil
	}
	if n > len(r.Rows) {
		n = len(r.Rows)
	}
	return &ResultSet{Columns: r.Columns, Rows: r.Rows[:n]}
}

// Text lê uma célula como texto
func (r *ResultSet) Text(row, col int) string {
	if r == nil || row < 0 || row >= len(r.Rows) || col < 0 || col >= len(r.Rows[row]) {
		return ""
	}

	return FormatCell(r.Rows[row][col])
}

// FormatCell converte uma célula para exibição em texto
func FormatCell(value any) string {
	switch v := value.(type) {
	case nil:
		return "None"
	case string:
		return v
	case []byte:
		return string(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(v, 10)
	case time.Time:
		if v.Hour() == 0 && v.Minute() == 0 && v.Second() == 0 && v.Nanosecond() == 0 {
			return v.Format(time.DateOnly)
		}
		return v.Format(time.DateTime)
	default:
		return fmt.Sprint(v)
	}
}

func ToFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case int64:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case float64:
		return v, true
	case float32:
		return float64(v), true
	default:
		return 0, false
	}
}
