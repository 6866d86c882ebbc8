package database

// Column describes one column of a result set.
type Column struct {
	Name string `json:"name"`
	Type string `json:"type,omitempty"`
}

// Row maps column names to values for a single result row.
type Row map[string]any

// ResultSet is the bounded outcome of a query. Rows never exceeds the row
// limit the query was executed with; Truncated reports whether the warehouse
// had more rows than were collected.
type ResultSet struct {
	Columns   []Column `json:"columns"`
	Rows      []Row    `json:"rows"`
	Truncated bool     `json:"truncated"`
}

// ColumnDescriptor describes one column of a table definition.
type ColumnDescriptor struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Nullable bool   `json:"nullable"`
}
