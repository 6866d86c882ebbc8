package query

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// QueryDatabaseInput represents the input arguments for the query-database tool
type QueryDatabaseInput struct {
	Query             string `json:"query" jsonschema:"description=The SQL statement or natural language question to execute"`
	IsNaturalLanguage bool   `json:"is_natural_language,omitempty" jsonschema:"default=false,description=Whether the query is natural language (true) or SQL (false)"`
	MaxRows           int    `json:"max_rows,omitempty" jsonschema:"default=20,description=Maximum number of rows to return"`
}

func QueryDatabaseSpec() mcp.Tool {
	return mcp.NewTool("query-database",
		mcp.WithDescription(`Execute an SQL query or natural language question against the Snowflake database.

Pass SQL directly, or set is_natural_language=true to have the question translated
into SQL first. Results are limited to max_rows rows (default 20); the response
reports whether rows were truncated and includes the executed SQL, the structured
rows with column metadata, and a formatted text grid.

Statements are not restricted to reads. Use a Snowflake role with appropriately
limited privileges if the assistant should not modify data.`),
		mcp.WithInputSchema[QueryDatabaseInput](),
		mcp.WithTitleAnnotation("Query Snowflake Database"),
		mcp.WithReadOnlyHintAnnotation(false),
		mcp.WithDestructiveHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
