package tables

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/frosthollow/snowflake-mcp/internal/database"
	"github.com/frosthollow/snowflake-mcp/internal/tools"
)

// ListTablesResponse represents the data returned by the list-tables tool
type ListTablesResponse struct {
	Schema string   `json:"schema"`
	Tables []string `json:"tables"`
	Count  int      `json:"count"`
}

// ListTablesHandler returns a handler function for the list-tables tool
func ListTablesHandler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleListTables(ctx, deps, request)
	}
}

func handleListTables(ctx context.Context, deps *tools.ToolDependencies, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if deps.DBService == nil {
		errMessage := "database service is not initialized"
		slog.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}

	if deps.AnalyticsService != nil {
		deps.AnalyticsService.EmitEvent(deps.AnalyticsService.NewToolsEvent("list-tables"))
	}

	var args ListTablesInput
	if err := request.BindArguments(&args); err != nil {
		return tools.ErrorResult(database.NewInvalidArgumentError(err.Error())), nil
	}

	slog.Info("handling list-tables request", "schema", args.Schema)

	tableNames, err := deps.DBService.ListTables(ctx, args.Schema)
	if err != nil {
		slog.Error("failed to list tables", "schema", args.Schema, "error", err)
		return tools.ErrorResult(err), nil
	}

	schema := args.Schema
	if schema == "" {
		schema = deps.DBService.GetSchemaName()
	}

	response := ListTablesResponse{
		Schema: schema,
		Tables: tableNames,
		Count:  len(tableNames),
	}

	result, err := tools.JSONResult(response)
	if err != nil {
		slog.Error("failed to serialize table list", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	return result, nil
}
