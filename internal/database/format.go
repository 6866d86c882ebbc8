package database

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// RenderGrid formats a result set as a human-readable text table with a row
// count header and a truncation notice when rows were cut off.
func RenderGrid(rs *ResultSet) string {
	if rs == nil || len(rs.Rows) == 0 {
		return "No results found."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Results: %d rows\n", len(rs.Rows))

	table := tablewriter.NewWriter(&b)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)

	headers := make([]string, len(rs.Columns))
	for i, col := range rs.Columns {
		headers[i] = col.Name
	}
	table.SetHeader(headers)

	for _, row := range rs.Rows {
		cells := make([]string, len(rs.Columns))
		for i, col := range rs.Columns {
			cells[i] = formatCell(row[col.Name])
		}
		table.Append(cells)
	}
	table.Render()

	if rs.Truncated {
		b.WriteString("... more rows available, raise max_rows to fetch them")
	}
	return b.String()
}

func formatCell(v any) string {
	if v == nil {
		return "NULL"
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}
