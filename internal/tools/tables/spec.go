package tables

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// ListTablesInput represents the input arguments for the list-tables tool
type ListTablesInput struct {
	Schema string `json:"schema,omitempty" jsonschema:"description=The schema to list tables from; defaults to the configured schema"`
}

func ListTablesSpec() mcp.Tool {
	return mcp.NewTool("list-tables",
		mcp.WithDescription(`List all tables in the Snowflake database.

Tables are listed from the given schema, or from the configured default schema
when none is provided. The full list is returned; no row limit applies.`),
		mcp.WithInputSchema[ListTablesInput](),
		mcp.WithTitleAnnotation("List Snowflake Tables"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
