package schema

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// GetTableSchemaInput represents the input arguments for the get-table-schema tool
type GetTableSchemaInput struct {
	TableName string `json:"table_name" jsonschema:"description=The name of the table to describe"`
	Schema    string `json:"schema,omitempty" jsonschema:"description=The schema containing the table; defaults to the configured schema"`
}

func GetTableSchemaSpec() mcp.Tool {
	return mcp.NewTool("get-table-schema",
		mcp.WithDescription(`Get the column definitions of a Snowflake table.

Returns the table's columns in definition order with their declared data types
and nullability. The table is resolved in the given schema, or in the configured
default schema when none is provided.`),
		mcp.WithInputSchema[GetTableSchemaInput](),
		mcp.WithTitleAnnotation("Get Snowflake Table Schema"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
