package schema

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/frosthollow/snowflake-mcp/internal/database"
	"github.com/frosthollow/snowflake-mcp/internal/tools"
)

// GetTableSchemaResponse represents the data returned by the get-table-schema tool
type GetTableSchemaResponse struct {
	Table   string                      `json:"table"`
	Schema  string                      `json:"schema"`
	Columns []database.ColumnDescriptor `json:"columns"`
}

// GetTableSchemaHandler returns a handler function for the get-table-schema tool
func GetTableSchemaHandler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleGetTableSchema(ctx, deps, request)
	}
}

func handleGetTableSchema(ctx context.Context, deps *tools.ToolDependencies, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if deps.DBService == nil {
		errMessage := "database service is not initialized"
		slog.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}

	if deps.AnalyticsService != nil {
		deps.AnalyticsService.EmitEvent(deps.AnalyticsService.NewToolsEvent("get-table-schema"))
	}

	var args GetTableSchemaInput
	if err := request.BindArguments(&args); err != nil {
		return tools.ErrorResult(database.NewInvalidArgumentError(err.Error())), nil
	}
	if args.TableName == "" {
		return tools.ErrorResult(database.NewInvalidArgumentError("table_name is required")), nil
	}

	slog.Info("handling get-table-schema request", "table", args.TableName, "schema", args.Schema)

	columns, err := deps.DBService.DescribeTable(ctx, args.TableName, args.Schema)
	if err != nil {
		slog.Error("failed to describe table", "table", args.TableName, "error", err)
		return tools.ErrorResult(err), nil
	}

	schema := args.Schema
	if schema == "" {
		schema = deps.DBService.GetSchemaName()
	}

	response := GetTableSchemaResponse{
		Table:   args.TableName,
		Schema:  schema,
		Columns: columns,
	}

	result, err := tools.JSONResult(response)
	if err != nil {
		slog.Error("failed to serialize table schema", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	return result, nil
}
