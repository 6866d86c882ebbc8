package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/frosthollow/snowflake-mcp/internal/config"
)

// SnowflakeService implements Service over a single shared Snowflake
// session. The database/sql handle is pinned to one connection so the
// process holds at most one warehouse session at a time.
type SnowflakeService struct {
	dsn      string
	database string
	schema   string

	opener func(dsn string) (*sql.DB, error)

	mu       sync.Mutex
	db       *sql.DB
	lastUsed time.Time
}

// Option configures a SnowflakeService.
type Option func(*SnowflakeService)

// WithOpener replaces the function used to open the underlying handle.
func WithOpener(opener func(dsn string) (*sql.DB, error)) Option {
	return func(s *SnowflakeService) { s.opener = opener }
}

// NewSnowflakeService builds the service from connection settings. No
// network I/O happens here; the session opens on Connect or on the first
// query.
func NewSnowflakeService(cfg *config.Config, opts ...Option) (*SnowflakeService, error) {
	dsn, err := buildDSN(cfg)
	if err != nil {
		return nil, NewConnectionError("invalid Snowflake connection settings", err)
	}
	s := &SnowflakeService{
		dsn:      dsn,
		database: cfg.Database,
		schema:   cfg.Schema,
		opener:   openSnowflake,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func openSnowflake(dsn string) (*sql.DB, error) {
	return sql.Open("snowflake", dsn)
}

// Connect opens the session now instead of on first use.
func (s *SnowflakeService) Connect(ctx context.Context) error {
	if _, err := s.acquire(ctx); err != nil {
		return err
	}
	s.release()
	return nil
}

// Close shuts the shared session down. Safe to call when already closed.
func (s *SnowflakeService) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	if err != nil {
		return NewConnectionError("error closing Snowflake session", err)
	}
	slog.Info("snowflake session closed")
	return nil
}

// IsConnected reports whether a session handle is currently open.
func (s *SnowflakeService) IsConnected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db != nil
}

// acquire returns the shared session handle, opening it when absent and
// replacing it when the liveness check fails. At most one dial attempt is
// made per call.
func (s *SnowflakeService) acquire(ctx context.Context) (*sql.DB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db != nil {
		err := s.db.PingContext(ctx)
		if err == nil {
			return s.db, nil
		}
		slog.Warn("snowflake session failed liveness check, reconnecting", "error", err)
		s.db.Close()
		s.db = nil
	}

	db, err := s.openSession(ctx)
	if err != nil {
		return nil, NewConnectionError("failed to connect to Snowflake", err)
	}
	s.db = db
	slog.Info("connected to Snowflake", "database", s.database, "schema", s.schema)
	return db, nil
}

// release marks the shared handle as recently used. The handle stays open
// for the next call.
func (s *SnowflakeService) release() {
	s.mu.Lock()
	s.lastUsed = time.Now()
	s.mu.Unlock()
}

func (s *SnowflakeService) openSession(ctx context.Context) (*sql.DB, error) {
	db, err := s.opener(s.dsn)
	if err != nil {
		return nil, err
	}
	// Single shared session, not a pool.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// ExecuteQuery runs a statement against the shared session and collects at
// most maxRows rows. Statement cancellation follows ctx.
func (s *SnowflakeService) ExecuteQuery(ctx context.Context, query string, maxRows int, args ...any) (*ResultSet, error) {
	db, err := s.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer s.release()

	slog.Debug("executing statement", "query", query, "max_rows", maxRows)
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, classifyQueryError(err)
	}
	defer rows.Close()

	rs, err := collectRows(rows, maxRows)
	if err != nil {
		return nil, classifyQueryError(err)
	}
	return rs, nil
}

// collectRows drains at most maxRows rows, peeking one row further to set
// the truncation flag. maxRows <= 0 reads the full result.
func collectRows(rows *sql.Rows, maxRows int) (*ResultSet, error) {
	names, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	types, err := rows.ColumnTypes()
	if err != nil {
		return nil, err
	}

	rs := &ResultSet{
		Columns: make([]Column, len(names)),
		Rows:    make([]Row, 0),
	}
	for i, name := range names {
		col := Column{Name: name}
		if i < len(types) && types[i] != nil {
			col.Type = types[i].DatabaseTypeName()
		}
		rs.Columns[i] = col
	}

	values := make([]any, len(names))
	ptrs := make([]any, len(names))
	for i := range values {
		ptrs[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		row := make(Row, len(names))
		for i, name := range names {
			row[name] = normalizeValue(values[i])
		}
		rs.Rows = append(rs.Rows, row)

		if maxRows > 0 && len(rs.Rows) == maxRows {
			rs.Truncated = rows.Next()
			break
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return rs, nil
}

// normalizeValue converts driver byte slices to strings so rows marshal as
// text instead of base64.
func normalizeValue(v any) any {
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return v
}

// ListTables returns the table names visible in the resolved schema.
func (s *SnowflakeService) ListTables(ctx context.Context, schema string) ([]string, error) {
	rs, err := s.ExecuteQuery(ctx, s.showTablesStatement(schema), 0)
	if err != nil {
		return nil, err
	}
	tables := make([]string, 0, len(rs.Rows))
	for _, row := range rs.Rows {
		if name, ok := row["name"].(string); ok {
			tables = append(tables, name)
		}
	}
	return tables, nil
}

// DescribeTable returns the column descriptors of a table in definition
// order. A missing table surfaces as NotFound.
func (s *SnowflakeService) DescribeTable(ctx context.Context, table, schema string) ([]ColumnDescriptor, error) {
	if table == "" {
		return nil, NewInvalidArgumentError("table name is required")
	}
	rs, err := s.ExecuteQuery(ctx, s.describeTableStatement(table, schema), 0)
	if err != nil {
		return nil, err
	}
	descriptors := make([]ColumnDescriptor, 0, len(rs.Rows))
	for _, row := range rs.Rows {
		name, ok := row["name"].(string)
		if !ok {
			continue
		}
		typeName, _ := row["type"].(string)
		nullable, _ := row["null?"].(string)
		descriptors = append(descriptors, ColumnDescriptor{
			Name:     name,
			Type:     typeName,
			Nullable: strings.EqualFold(nullable, "Y"),
		})
	}
	return descriptors, nil
}

// resolveSchema applies the schema resolution order: the explicit parameter
// wins, then the configured default. An empty result defers to the
// session's current schema.
func (s *SnowflakeService) resolveSchema(schema string) string {
	if schema != "" {
		return schema
	}
	return s.schema
}

func (s *SnowflakeService) qualifiedSchema(schema string) string {
	resolved := s.resolveSchema(schema)
	if resolved == "" {
		return ""
	}
	if s.database == "" {
		return resolved
	}
	return s.database + "." + resolved
}

// showTablesStatement scopes SHOW TABLES to the resolved schema. Identifiers
// pass through unquoted and unnormalized.
func (s *SnowflakeService) showTablesStatement(schema string) string {
	qualified := s.qualifiedSchema(schema)
	if qualified == "" {
		return "SHOW TABLES"
	}
	return fmt.Sprintf("SHOW TABLES IN %s", qualified)
}

func (s *SnowflakeService) describeTableStatement(table, schema string) string {
	qualified := s.qualifiedSchema(schema)
	if qualified == "" {
		return fmt.Sprintf("DESCRIBE TABLE %s", table)
	}
	return fmt.Sprintf("DESCRIBE TABLE %s.%s", qualified, table)
}

// GetDatabaseName returns the configured database.
func (s *SnowflakeService) GetDatabaseName() string { return s.database }

// GetSchemaName returns the configured default schema.
func (s *SnowflakeService) GetSchemaName() string { return s.schema }
