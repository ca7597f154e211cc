package querying

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/vfg2006/ads-analytics-api/internal/domain"
)

var (
	sqlFence   = regexp.MustCompile("```sql\n?")
	plainFence = regexp.MustCompile("```\n?")
)

const sqlPrompt = `You are a PostgreSQL expert. Convert this natural language query to SQL.

Database Schema:
%s

User Query: %s

Important Guidelines:
- Return ONLY the SQL query, no explanations or markdown
- insights table contains account-level data by date, NOT individual ad/campaign data
- For ad/campaign specific queries, use the ads/campaigns/adsets tables directly
- insights table is mainly useful for time-based analysis and account totals
- Use appropriate aggregations (SUM, AVG, COUNT)
- Limit results appropriately (5-20 rows for "top" queries)
- Use clear column aliases

Examples:
"top 5 ads by name" → SELECT name FROM ads WHERE status = 'ACTIVE' ORDER BY name LIMIT 5;
"top 5 campaigns by budget" → SELECT name, daily_budget FROM campaigns WHERE daily_budget > 0 ORDER BY daily_budget DESC LIMIT 5;
"total spend by date" → SELECT date_start, spend FROM insights WHERE spend > 0 ORDER BY date_start;
"campaign count" → SELECT COUNT(*) as campaign_count FROM campaigns;

SQL Query:
`

func BuildSQLPrompt(schema []domain.SchemaTable, question string) string {
	return fmt.Sprintf(sqlPrompt, SchemaContext(schema), question)
}

// SimpleSQLPrompt é a segunda tentativa, sem o contexto do schema
func SimpleSQLPrompt(question string) string {
	return fmt.Sprintf("Convert to SQL: %s\nUse these tables: campaigns, adsets, ads, insights", question)
}

func SchemaContext(schema []domain.SchemaTable) string {
	var b strings.Builder
	for _, table := range schema {
		fmt.Fprintf(&b, "\nTable: %s\n", table.Table)
		fmt.Fprintf(&b, "Description: %s\n", table.Description)
		fmt.Fprintf(&b, "Columns: %s\n", strings.Join(table.Columns, ", "))
	}
	return b.String()
}

// CleanSQL remove as cercas de markdown e garante o ponto e vírgula final
func CleanSQL(response string) string {
	response = sqlFence.ReplaceAllString(response, "")
	response = plainFence.ReplaceAllString(response, "")
	response = strings.TrimSpace(response)

	if !strings.HasSuffix(response, ";") {
		response += ";"
	}
	return response
}

// IsSelect só confere o prefixo. Não impede comandos encadeados depois do
// SELECT; a execução em transação somente leitura cobre esse caso.
func IsSelect(query string) bool {
	return strings.HasPrefix(strings.ToUpper(strings.TrimSpace(query)), "SELECT")
}
