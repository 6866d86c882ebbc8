//go:build integration

// Integration tests against a real Snowflake account. They are skipped
// unless SNOWFLAKE_ACCOUNT (and the other SNOWFLAKE_* variables) are set:
//
//	SNOWFLAKE_ACCOUNT=... SNOWFLAKE_USER=... SNOWFLAKE_PASSWORD=... \
//	SNOWFLAKE_DATABASE=... go test -tags integration ./test/integration/...
package integration

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/require"

	"github.com/frosthollow/snowflake-mcp/internal/config"
	"github.com/frosthollow/snowflake-mcp/internal/database"
	"github.com/frosthollow/snowflake-mcp/internal/nlsql"
	"github.com/frosthollow/snowflake-mcp/internal/tools"
	"github.com/frosthollow/snowflake-mcp/internal/tools/query"
	"github.com/frosthollow/snowflake-mcp/internal/tools/tables"
)

const testTimeout = 60 * time.Second

func newTestService(t *testing.T) *database.SnowflakeService {
	t.Helper()
	if os.Getenv("SNOWFLAKE_ACCOUNT") == "" {
		t.Skip("SNOWFLAKE_ACCOUNT not set, skipping Snowflake integration tests")
	}

	cfg := config.FromEnv()
	require.NoError(t, cfg.Validate())

	svc, err := database.NewSnowflakeService(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = svc.Close() })
	return svc
}

func callTool(t *testing.T, handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error), name string, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()

	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args

	result, err := handler(ctx, req)
	require.NoError(t, err)
	require.NotNil(t, result)
	return result
}

func parseJSON(t *testing.T, result *mcp.CallToolResult, v any) {
	t.Helper()
	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", result.Content[0])
	require.NoError(t, json.Unmarshal([]byte(text.Text), v))
}

func TestSessionLifecycle(t *testing.T) {
	svc := newTestService(t)

	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()

	require.False(t, svc.IsConnected())
	require.NoError(t, svc.Connect(ctx))
	require.True(t, svc.IsConnected())

	// The same session serves repeated queries.
	for i := 0; i < 2; i++ {
		rs, err := svc.ExecuteQuery(ctx, "SELECT CURRENT_USER() AS U", 1)
		require.NoError(t, err)
		require.Len(t, rs.Rows, 1)
	}

	require.NoError(t, svc.Close())
	require.NoError(t, svc.Close())
}

func TestQueryDatabaseTool(t *testing.T) {
	svc := newTestService(t)
	deps := &tools.ToolDependencies{DBService: svc, Translator: nlsql.NewKeywordTranslator(svc)}

	result := callTool(t, query.QueryDatabaseHandler(deps), "query-database", map[string]any{
		"query":    "SELECT 1 AS N UNION ALL SELECT 2 UNION ALL SELECT 3 ORDER BY N",
		"max_rows": 2,
	})
	require.False(t, result.IsError)

	var response query.QueryDatabaseResponse
	parseJSON(t, result, &response)
	require.Len(t, response.Rows, 2)
	require.True(t, response.Truncated)
	require.NotEmpty(t, response.Results)
}

func TestListTablesTool(t *testing.T) {
	svc := newTestService(t)
	deps := &tools.ToolDependencies{DBService: svc}

	result := callTool(t, tables.ListTablesHandler(deps), "list-tables", nil)
	require.False(t, result.IsError)

	var response tables.ListTablesResponse
	parseJSON(t, result, &response)
	require.Equal(t, len(response.Tables), response.Count)
	require.NotEmpty(t, response.Schema)
}

func TestQueryFailureSurfacesStructuredError(t *testing.T) {
	svc := newTestService(t)
	deps := &tools.ToolDependencies{DBService: svc}

	result := callTool(t, query.QueryDatabaseHandler(deps), "query-database", map[string]any{
		"query": "SELEC 1",
	})
	require.True(t, result.IsError)

	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok)
	require.Contains(t, text.Text, string(database.KindQueryExecution))
}
