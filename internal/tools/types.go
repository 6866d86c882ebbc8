package tools

import (
	"github.com/frosthollow/snowflake-mcp/internal/analytics"
	"github.com/frosthollow/snowflake-mcp/internal/database"
	"github.com/frosthollow/snowflake-mcp/internal/nlsql"
)

// ToolDependencies contains all dependencies needed by tools
type ToolDependencies struct {
	DBService        database.Service
	AnalyticsService analytics.Service
	Translator       nlsql.Translator
}
