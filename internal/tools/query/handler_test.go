package query_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/mock/gomock"

	"github.com/frosthollow/snowflake-mcp/internal/analytics"
	analytics_mocks "github.com/frosthollow/snowflake-mcp/internal/analytics/mocks"
	"github.com/frosthollow/snowflake-mcp/internal/database"
	database_mocks "github.com/frosthollow/snowflake-mcp/internal/database/mocks"
	"github.com/frosthollow/snowflake-mcp/internal/tools"
	"github.com/frosthollow/snowflake-mcp/internal/tools/query"
)

// stubTranslator returns a fixed statement or error.
type stubTranslator struct {
	sql string
	err error
}

func (s stubTranslator) Translate(ctx context.Context, question string) (string, error) {
	return s.sql, s.err
}

func newRequest(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Name = "query-database"
	req.Params.Arguments = args
	return req
}

func newDeps(t *testing.T, ctrl *gomock.Controller) (*tools.ToolDependencies, *database_mocks.MockService) {
	t.Helper()
	db := database_mocks.NewMockService(ctrl)
	an := analytics_mocks.NewMockService(ctrl)
	an.EXPECT().NewToolsEvent(gomock.Any()).Return(analytics.TrackEvent{}).AnyTimes()
	an.EXPECT().EmitEvent(gomock.Any()).AnyTimes()
	return &tools.ToolDependencies{DBService: db, AnalyticsService: an}, db
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if len(result.Content) == 0 {
		t.Fatal("result has no content")
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("unexpected content type %T", result.Content[0])
	}
	return text.Text
}

func decodeResponse(t *testing.T, result *mcp.CallToolResult) query.QueryDatabaseResponse {
	t.Helper()
	var response query.QueryDatabaseResponse
	if err := json.Unmarshal([]byte(resultText(t, result)), &response); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	return response
}

func rowsOf(n int) []database.Row {
	rows := make([]database.Row, n)
	for i := range rows {
		rows[i] = database.Row{"ID": i + 1}
	}
	return rows
}

func TestQueryDatabaseTruncatesAtMaxRows(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deps, db := newDeps(t, ctrl)
	db.EXPECT().ExecuteQuery(gomock.Any(), "SELECT * FROM T", 5).Return(&database.ResultSet{
		Columns:   []database.Column{{Name: "ID", Type: "FIXED"}},
		Rows:      rowsOf(5),
		Truncated: true,
	}, nil)

	request := newRequest(map[string]any{
		"query":               "SELECT * FROM T",
		"is_natural_language": false,
		"max_rows":            5,
	})

	result, err := query.QueryDatabaseHandler(deps)(context.Background(), request)
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected error result: %s", resultText(t, result))
	}

	response := decodeResponse(t, result)
	if response.RowCount != 5 || len(response.Rows) != 5 {
		t.Errorf("expected 5 rows, got %d", len(response.Rows))
	}
	if !response.Truncated {
		t.Error("expected truncation flag to be set")
	}
	if response.SQL != "SELECT * FROM T" {
		t.Errorf("sql = %q", response.SQL)
	}
}

func TestQueryDatabaseNaturalLanguage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deps, db := newDeps(t, ctrl)
	deps.Translator = stubTranslator{sql: "SELECT * FROM T LIMIT 3"}
	db.EXPECT().ExecuteQuery(gomock.Any(), "SELECT * FROM T LIMIT 3", 20).Return(&database.ResultSet{
		Columns: []database.Column{{Name: "ID", Type: "FIXED"}},
		Rows:    rowsOf(3),
	}, nil)

	request := newRequest(map[string]any{
		"query":               "show me 3 rows from T",
		"is_natural_language": true,
	})

	result, err := query.QueryDatabaseHandler(deps)(context.Background(), request)
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected error result: %s", resultText(t, result))
	}

	response := decodeResponse(t, result)
	if len(response.Rows) != 3 {
		t.Errorf("expected 3 rows, got %d", len(response.Rows))
	}
	if response.Truncated {
		t.Error("expected truncation flag to be false")
	}
	if response.SQL != "SELECT * FROM T LIMIT 3" {
		t.Errorf("response should carry the translated sql, got %q", response.SQL)
	}
}

func TestQueryDatabaseRejectsNonPositiveMaxRows(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No ExecuteQuery expectation: validation failures must not reach the
	// warehouse.
	deps, _ := newDeps(t, ctrl)

	for _, maxRows := range []int{0, -1} {
		request := newRequest(map[string]any{
			"query":    "SELECT 1",
			"max_rows": maxRows,
		})

		result, err := query.QueryDatabaseHandler(deps)(context.Background(), request)
		if err != nil {
			t.Fatalf("handler returned error: %v", err)
		}
		if !result.IsError {
			t.Fatalf("max_rows=%d should produce an error result", maxRows)
		}
		if !strings.Contains(resultText(t, result), string(database.KindInvalidArgument)) {
			t.Errorf("expected an invalid_argument failure, got %s", resultText(t, result))
		}
	}
}

func TestQueryDatabaseDefaultsMaxRows(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deps, db := newDeps(t, ctrl)
	db.EXPECT().ExecuteQuery(gomock.Any(), "SELECT 1", 20).Return(&database.ResultSet{
		Columns: []database.Column{{Name: "1", Type: "FIXED"}},
		Rows:    rowsOf(1),
	}, nil)

	request := newRequest(map[string]any{"query": "SELECT 1"})

	result, err := query.QueryDatabaseHandler(deps)(context.Background(), request)
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected error result: %s", resultText(t, result))
	}
}

func TestQueryDatabaseRejectsEmptyQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deps, _ := newDeps(t, ctrl)
	request := newRequest(map[string]any{"query": ""})

	result, err := query.QueryDatabaseHandler(deps)(context.Background(), request)
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if !result.IsError {
		t.Fatal("empty query should produce an error result")
	}
	if !strings.Contains(resultText(t, result), string(database.KindInvalidArgument)) {
		t.Errorf("expected an invalid_argument failure, got %s", resultText(t, result))
	}
}

func TestQueryDatabaseTranslationFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deps, _ := newDeps(t, ctrl)
	deps.Translator = stubTranslator{err: database.NewTranslationError("no table mentioned")}

	request := newRequest(map[string]any{
		"query":               "how is the weather?",
		"is_natural_language": true,
	})

	result, err := query.QueryDatabaseHandler(deps)(context.Background(), request)
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if !result.IsError {
		t.Fatal("translation failure should produce an error result")
	}
	if !strings.Contains(resultText(t, result), string(database.KindTranslation)) {
		t.Errorf("expected a translation_error failure, got %s", resultText(t, result))
	}
}

func TestQueryDatabaseExecutionFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deps, db := newDeps(t, ctrl)
	db.EXPECT().ExecuteQuery(gomock.Any(), "SELEC 1", 20).
		Return(nil, database.NewQueryExecutionError(sqlSyntaxError{}))

	request := newRequest(map[string]any{"query": "SELEC 1"})

	result, err := query.QueryDatabaseHandler(deps)(context.Background(), request)
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if !result.IsError {
		t.Fatal("execution failure should produce an error result")
	}
	text := resultText(t, result)
	if !strings.Contains(text, string(database.KindQueryExecution)) {
		t.Errorf("expected a query_execution_error failure, got %s", text)
	}
	if !strings.Contains(text, "syntax error line 1") {
		t.Errorf("driver message should pass through unmodified, got %s", text)
	}
}

type sqlSyntaxError struct{}

func (sqlSyntaxError) Error() string { return "syntax error line 1 at position 0 unexpected 'SELEC'" }
