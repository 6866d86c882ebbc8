package query

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/frosthollow/snowflake-mcp/internal/database"
	"github.com/frosthollow/snowflake-mcp/internal/tools"
)

const defaultMaxRows = 20

// QueryDatabaseResponse represents the data returned by the query-database tool
type QueryDatabaseResponse struct {
	SQL       string            `json:"sql"`
	Columns   []database.Column `json:"columns"`
	Rows      []database.Row    `json:"rows"`
	RowCount  int               `json:"row_count"`
	Truncated bool              `json:"truncated"`
	Results   string            `json:"results"`
}

// QueryDatabaseHandler returns a handler function for the query-database tool
func QueryDatabaseHandler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleQueryDatabase(ctx, deps, request)
	}
}

func handleQueryDatabase(ctx context.Context, deps *tools.ToolDependencies, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if deps.DBService == nil {
		errMessage := "database service is not initialized"
		slog.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}

	if deps.AnalyticsService != nil {
		deps.AnalyticsService.EmitEvent(deps.AnalyticsService.NewToolsEvent("query-database"))
	}

	args := QueryDatabaseInput{MaxRows: defaultMaxRows}
	if err := request.BindArguments(&args); err != nil {
		return tools.ErrorResult(database.NewInvalidArgumentError(err.Error())), nil
	}

	// Parameter validation happens before any warehouse I/O.
	if args.Query == "" {
		return tools.ErrorResult(database.NewInvalidArgumentError("query cannot be empty")), nil
	}
	if args.MaxRows <= 0 {
		return tools.ErrorResult(database.NewInvalidArgumentError("max_rows must be a positive integer")), nil
	}

	sqlText := args.Query
	if args.IsNaturalLanguage {
		if deps.Translator == nil {
			errMessage := "translator is not initialized"
			slog.Error(errMessage)
			return mcp.NewToolResultError(errMessage), nil
		}
		translated, err := deps.Translator.Translate(ctx, args.Query)
		if err != nil {
			slog.Warn("natural language translation failed", "question", args.Query, "error", err)
			return tools.ErrorResult(err), nil
		}
		slog.Info("translated natural language query", "sql", translated)
		sqlText = translated
	}

	slog.Info("handling query-database request", "max_rows", args.MaxRows, "natural_language", args.IsNaturalLanguage)

	rs, err := deps.DBService.ExecuteQuery(ctx, sqlText, args.MaxRows)
	if err != nil {
		slog.Error("query execution failed", "error", err)
		return tools.ErrorResult(err), nil
	}

	response := QueryDatabaseResponse{
		SQL:       sqlText,
		Columns:   rs.Columns,
		Rows:      rs.Rows,
		RowCount:  len(rs.Rows),
		Truncated: rs.Truncated,
		Results:   database.RenderGrid(rs),
	}

	result, err := tools.JSONResult(response)
	if err != nil {
		slog.Error("failed to serialize query response", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	return result, nil
}
