package saved

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/frosthollow/snowflake-mcp/internal/database"
	"github.com/frosthollow/snowflake-mcp/internal/tools"
)

const defaultMaxRows = 20

// SavedQueryResponse represents the data returned by a saved-query tool
type SavedQueryResponse struct {
	SQL       string            `json:"sql"`
	Columns   []database.Column `json:"columns"`
	Rows      []database.Row    `json:"rows"`
	RowCount  int               `json:"row_count"`
	Truncated bool              `json:"truncated"`
	Results   string            `json:"results"`
}

// NewSavedQueryHandler creates a handler function for a saved-query tool
func NewSavedQueryHandler(config *SavedQueryConfig, deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleSavedQuery(ctx, request, config, deps)
	}
}

func handleSavedQuery(ctx context.Context, request mcp.CallToolRequest, config *SavedQueryConfig, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
	if deps.DBService == nil {
		errMessage := "database service is not initialized"
		slog.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}

	if deps.AnalyticsService != nil {
		deps.AnalyticsService.EmitEvent(deps.AnalyticsService.NewToolsEvent(config.Name))
	}

	bindings, err := bindParameters(config.Parameters, request.GetArguments())
	if err != nil {
		return tools.ErrorResult(err), nil
	}

	slog.Info("handling saved-query request", "tool", config.Name, "category", config.Category)

	maxRows := config.MaxRows
	if maxRows == 0 {
		maxRows = defaultMaxRows
	}

	rs, err := deps.DBService.ExecuteQuery(ctx, config.SQL, maxRows, bindings...)
	if err != nil {
		slog.Error("saved query failed", "tool", config.Name, "error", err)
		return tools.ErrorResult(err), nil
	}

	response := SavedQueryResponse{
		SQL:       config.SQL,
		Columns:   rs.Columns,
		Rows:      rs.Rows,
		RowCount:  len(rs.Rows),
		Truncated: rs.Truncated,
		Results:   database.RenderGrid(rs),
	}

	result, err := tools.JSONResult(response)
	if err != nil {
		slog.Error("failed to serialize saved query response", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	return result, nil
}

// bindParameters resolves the declared parameters against the request
// arguments in declaration order, filling defaults and rejecting missing
// required values.
func bindParameters(params []ParameterConfig, args map[string]any) ([]any, error) {
	bindings := make([]any, 0, len(params))
	for _, param := range params {
		value, ok := args[param.Name]
		if !ok || value == nil {
			if param.Default != nil {
				bindings = append(bindings, param.Default)
				continue
			}
			if param.Required {
				return nil, database.NewInvalidArgumentError(
					fmt.Sprintf("parameter %q is required", param.Name))
			}
			bindings = append(bindings, nil)
			continue
		}

		coerced, err := coerceParameter(param, value)
		if err != nil {
			return nil, err
		}
		bindings = append(bindings, coerced)
	}
	return bindings, nil
}

// coerceParameter narrows JSON-decoded values to the declared type. JSON
// numbers arrive as float64; integer parameters convert to int64 for the
// driver.
func coerceParameter(param ParameterConfig, value any) (any, error) {
	switch param.Type {
	case "integer":
		switch n := value.(type) {
		case float64:
			return int64(n), nil
		case int:
			return int64(n), nil
		case int64:
			return n, nil
		}
	case "number":
		switch n := value.(type) {
		case float64:
			return n, nil
		case int:
			return float64(n), nil
		}
	case "boolean":
		if b, ok := value.(bool); ok {
			return b, nil
		}
	case "string", "":
		if s, ok := value.(string); ok {
			return s, nil
		}
	}
	return nil, database.NewInvalidArgumentError(
		fmt.Sprintf("parameter %q expects type %s", param.Name, param.Type))
}
