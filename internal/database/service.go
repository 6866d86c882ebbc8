package database

//go:generate mockgen -destination=mocks/mock_database.go -package=database_mocks -typed github.com/frosthollow/snowflake-mcp/internal/database Service

import "context"

// Service is the warehouse-facing surface consumed by the MCP tools.
type Service interface {
	// Connect opens the session eagerly. Lazy callers can skip it; the first
	// query opens the session on demand.
	Connect(ctx context.Context) error
	// Close shuts the session down. Safe to call repeatedly.
	Close() error
	IsConnected() bool

	// ExecuteQuery runs a SQL statement and collects at most maxRows rows.
	// maxRows <= 0 disables the limit.
	ExecuteQuery(ctx context.Context, query string, maxRows int, args ...any) (*ResultSet, error)
	// ListTables returns the table names in the given schema, or in the
	// configured default schema when schema is empty.
	ListTables(ctx context.Context, schema string) ([]string, error)
	// DescribeTable returns the column descriptors of a table in definition
	// order.
	DescribeTable(ctx context.Context, table, schema string) ([]ColumnDescriptor, error)

	GetDatabaseName() string
	GetSchemaName() string
}
