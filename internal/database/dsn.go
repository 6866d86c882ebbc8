package database

import (
	"github.com/snowflakedb/gosnowflake"

	"github.com/frosthollow/snowflake-mcp/internal/config"
)

// clientApplication identifies this server in Snowflake query history.
const clientApplication = "snowflake-mcp"

// buildDSN renders the driver connection string from the configured
// connection settings.
func buildDSN(cfg *config.Config) (string, error) {
	return gosnowflake.DSN(&gosnowflake.Config{
		Account:     cfg.Account,
		User:        cfg.User,
		Password:    cfg.Password,
		Database:    cfg.Database,
		Schema:      cfg.Schema,
		Warehouse:   cfg.Warehouse,
		Role:        cfg.Role,
		Application: clientApplication,
	})
}
