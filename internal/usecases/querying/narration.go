package querying

import (
	"fmt"
	"math"
	"strings"
	"text/tabwriter"

	"github.com/vfg2006/ads-analytics-api/internal/domain"
	"github.com/vfg2006/ads-analytics-api/pkg/utils"
)

const (
	noDataMessage     = "No data found for the given query."
	summaryNumericMax = 3
	summarySampleRows = 3
)

const insightPrompt = `Analyze the following data and provide insights based on the user's question.

User Question: %s
SQL Query: %s
Data Summary: %s

Provide a concise analysis with:
1. Key findings from the data
2. Notable trends or patterns
3. Actionable insights or recommendations

Keep the response under 200 words and focus on business value.

Analysis:
`

func BuildInsightPrompt(question, query string, data *domain.ResultSet) string {
	return fmt.Sprintf(insightPrompt, question, query, DataSummary(data))
}

// DataSummary descreve o formato do resultado, as três primeiras colunas
// numéricas e as três primeiras linhas.
func DataSummary(data *domain.ResultSet) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Rows: %d, Columns: %d\n", data.Len(), len(data.Columns))
	fmt.Fprintf(&b, "Columns: %s\n", strings.Join(data.Columns, ", "))

	numeric := data.NumericColumns()
	if len(numeric) > 0 {
		b.WriteString("Numeric Data Summary:\n")
		for _, col := range numeric[:min(summaryNumericMax, len(numeric))] {
			values := data.Values(col)
			lowest, highest := utils.MinMax(values)
			fmt.Fprintf(&b, "%s: min=%.2f, max=%.2f, mean=%.2f\n", col, lowest, highest, utils.Mean(values))
		}
	}

	if !data.Empty() {
		fmt.Fprintf(&b, "\nSample Data (first %d rows):\n%s", summarySampleRows, renderTable(data.Head(summarySampleRows)))
	}

	return b.String()
}

func renderTable(data *domain.ResultSet) string {
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "\t%s\n", strings.Join(data.Columns, "\t"))
	for i, row := range data.Rows {
		cells := make([]string, len(row))
		for j, cell := range row {
			cells[j] = domain.FormatCell(cell)
		}
		fmt.Fprintf(w, "%d\t%s\n", i, strings.Join(cells, "\t"))
	}
	w.Flush()

	return strings.TrimRight(b.String(), "\n")
}

// FallbackInsights monta uma frase por coluna numérica a partir do nome da coluna
func FallbackInsights(data *domain.ResultSet) string {
	insights := []string{fmt.Sprintf("Found %d records matching your query.", data.Len())}

	numeric := data.NumericColumns()
	for _, col := range numeric {
		lower := strings.ToLower(col)
		values := data.Values(col)

		switch {
		case strings.Contains(lower, "spend"):
			insights = append(insights, fmt.Sprintf("Total %s: $%s, Average: $%s",
				col, utils.FormatMoney(utils.Sum(values)), utils.FormatMoney(utils.Mean(values))))
		case strings.Contains(lower, "ctr"):
			insights = append(insights, fmt.Sprintf("Average %s: %.2f%%", col, utils.Mean(values)))
		case lower == "impressions" || lower == "clicks":
			insights = append(insights, fmt.Sprintf("Total %s: %s", col, formatTotal(utils.Sum(values))))
		}
	}

	if data.Len() > 1 && data.HasColumn("name") && len(numeric) > 0 {
		if name, ok := topPerformer(data, numeric[0]); ok {
			insights = append(insights, fmt.Sprintf("Top performer by %s: %s", numeric[0], name))
		}
	}

	return strings.Join(insights, " ")
}

// topPerformer devolve o name da primeira linha com o maior valor da coluna
func topPerformer(data *domain.ResultSet, column string) (string, bool) {
	col := data.ColumnIndex(column)
	nameCol := data.ColumnIndex("name")

	best := -1
	bestValue := math.Inf(-1)
	for i := range data.Rows {
		v, ok := data.Float(i, col)
		if !ok {
			continue
		}
		if v > bestValue {
			best, bestValue = i, v
		}
	}

	if best < 0 {
		return "", false
	}
	return data.Text(best, nameCol), true
}

func formatTotal(total float64) string {
	if total == math.Trunc(total) {
		return utils.FormatInteger(int64(total))
	}
	return utils.FormatMoney(total)
}
