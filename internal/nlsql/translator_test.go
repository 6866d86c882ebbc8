package nlsql_test

import (
	"context"
	"errors"
	"testing"

	"github.com/frosthollow/snowflake-mcp/internal/database"
	"github.com/frosthollow/snowflake-mcp/internal/nlsql"
)

type fakeLister struct {
	tables   []string
	database string
	schema   string
	err      error
	calls    int
}

func (f *fakeLister) ListTables(ctx context.Context, schema string) ([]string, error) {
	f.calls++
	return f.tables, f.err
}

func (f *fakeLister) GetDatabaseName() string { return f.database }
func (f *fakeLister) GetSchemaName() string   { return f.schema }

func TestTranslateTableListing(t *testing.T) {
	tests := []struct {
		name     string
		question string
		database string
		schema   string
		want     string
	}{
		{
			name:     "show tables with full scope",
			question: "Show me the tables in the database",
			database: "ANALYTICS",
			schema:   "PUBLIC",
			want:     "SHOW TABLES IN ANALYTICS.PUBLIC",
		},
		{
			name:     "list tables",
			question: "list all tables please",
			database: "ANALYTICS",
			schema:   "PUBLIC",
			want:     "SHOW TABLES IN ANALYTICS.PUBLIC",
		},
		{
			name:     "what are phrasing",
			question: "what are the tables here?",
			database: "ANALYTICS",
			schema:   "PUBLIC",
			want:     "SHOW TABLES IN ANALYTICS.PUBLIC",
		},
		{
			name:     "no configured scope",
			question: "show tables",
			want:     "SHOW TABLES",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lister := &fakeLister{database: tt.database, schema: tt.schema}
			tr := nlsql.NewKeywordTranslator(lister)

			got, err := tr.Translate(context.Background(), tt.question)
			if err != nil {
				t.Fatalf("Translate returned error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Translate = %q, want %q", got, tt.want)
			}
			if lister.calls != 0 {
				t.Errorf("table listing questions should not hit the warehouse, got %d calls", lister.calls)
			}
		})
	}
}

func TestTranslateTableSelect(t *testing.T) {
	tests := []struct {
		name     string
		question string
		tables   []string
		want     string
	}{
		{
			name:     "row count from question",
			question: "show me 3 rows from T",
			tables:   []string{"T"},
			want:     "SELECT * FROM T LIMIT 3",
		},
		{
			name:     "default row limit",
			question: "what does ORDERS contain?",
			tables:   []string{"CUSTOMERS", "ORDERS"},
			want:     "SELECT * FROM ORDERS LIMIT 10",
		},
		{
			name:     "table name must match a whole word",
			question: "anything interesting today in ORDERS?",
			tables:   []string{"DAY", "ORDERS"},
			want:     "SELECT * FROM ORDERS LIMIT 10",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := nlsql.NewKeywordTranslator(&fakeLister{tables: tt.tables})

			got, err := tr.Translate(context.Background(), tt.question)
			if err != nil {
				t.Fatalf("Translate returned error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Translate = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTranslateFailsWhenNothingMatches(t *testing.T) {
	tr := nlsql.NewKeywordTranslator(&fakeLister{tables: []string{"ORDERS"}})

	_, err := tr.Translate(context.Background(), "how is the weather?")
	if err == nil {
		t.Fatal("expected a translation error")
	}
	if kind, ok := database.KindOf(err); !ok || kind != database.KindTranslation {
		t.Errorf("error kind = %v, want %v", kind, database.KindTranslation)
	}
}

func TestTranslatePropagatesListerFailure(t *testing.T) {
	wantErr := database.NewConnectionError("failed to connect to Snowflake", errors.New("dial timeout"))
	tr := nlsql.NewKeywordTranslator(&fakeLister{err: wantErr})

	_, err := tr.Translate(context.Background(), "rows from ORDERS")
	if !errors.Is(err, wantErr) {
		t.Errorf("Translate error = %v, want %v", err, wantErr)
	}
}
