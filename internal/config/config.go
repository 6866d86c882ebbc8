package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Transport values the server can serve on.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

const (
	defaultSchema          = "PUBLIC"
	defaultServerName      = "snowflake-mcp"
	defaultServerVersion   = "1.0.0"
	defaultHTTPAddr        = ":8080"
	defaultSavedQueriesDir = "queries/library"
)

// Config holds the Snowflake connection settings and the server runtime
// options. Everything comes from the environment; cmd flags may override the
// transport fields.
type Config struct {
	// Snowflake connection settings.
	Account   string
	User      string
	Password  string
	Database  string
	Warehouse string
	Schema    string
	Role      string

	// EagerConnect opens the Snowflake session at startup instead of on the
	// first tool call. A startup failure is logged, not fatal; the next tool
	// call retries.
	EagerConnect bool

	// Server identity and transport.
	ServerName    string
	ServerVersion string
	Transport     string
	HTTPAddr      string

	// SavedQueriesDir is the on-disk fallback for saved query definitions
	// when the embedded library is empty.
	SavedQueriesDir string

	// Usage analytics. Events are only emitted when an endpoint is set and
	// AnalyticsDisabled is false.
	AnalyticsEndpoint string
	AnalyticsDisabled bool

	LogLevel string
}

// FromEnv builds a Config from environment variables.
func FromEnv() *Config {
	return &Config{
		Account:   os.Getenv("SNOWFLAKE_ACCOUNT"),
		User:      os.Getenv("SNOWFLAKE_USER"),
		Password:  os.Getenv("SNOWFLAKE_PASSWORD"),
		Database:  os.Getenv("SNOWFLAKE_DATABASE"),
		Warehouse: os.Getenv("SNOWFLAKE_WAREHOUSE"),
		Schema:    getEnv("SNOWFLAKE_SCHEMA", defaultSchema),
		Role:      os.Getenv("SNOWFLAKE_ROLE"),

		EagerConnect: parseBool(os.Getenv("SNOWFLAKE_EAGER_CONNECT")),

		ServerName:    getEnv("MCP_SERVER_NAME", defaultServerName),
		ServerVersion: getEnv("MCP_SERVER_VERSION", defaultServerVersion),
		Transport:     strings.ToLower(getEnv("MCP_TRANSPORT", TransportStdio)),
		HTTPAddr:      getEnv("MCP_HTTP_ADDR", defaultHTTPAddr),

		SavedQueriesDir: getEnv("MCP_SAVED_QUERIES_DIR", defaultSavedQueriesDir),

		AnalyticsEndpoint: os.Getenv("MCP_ANALYTICS_ENDPOINT"),
		AnalyticsDisabled: parseBool(os.Getenv("MCP_ANALYTICS_DISABLED")),

		LogLevel: parseLogLevel(os.Getenv("LOG_LEVEL")),
	}
}

// Validate checks that the settings required to reach Snowflake are present
// and that the transport is one the server knows how to serve.
func (c *Config) Validate() error {
	var missing []string
	if c.Account == "" {
		missing = append(missing, "SNOWFLAKE_ACCOUNT")
	}
	if c.User == "" {
		missing = append(missing, "SNOWFLAKE_USER")
	}
	if c.Password == "" {
		missing = append(missing, "SNOWFLAKE_PASSWORD")
	}
	if c.Database == "" {
		missing = append(missing, "SNOWFLAKE_DATABASE")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	switch c.Transport {
	case TransportStdio, TransportHTTP:
	default:
		return fmt.Errorf("unsupported transport %q: expected %q or %q", c.Transport, TransportStdio, TransportHTTP)
	}
	if c.Transport == TransportHTTP && c.HTTPAddr == "" {
		return fmt.Errorf("MCP_HTTP_ADDR must be set when the http transport is selected")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseBool(v string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	return err == nil && b
}

// parseLogLevel tolerates inline "#" comments that leak in from .env files.
func parseLogLevel(v string) string {
	if i := strings.Index(v, "#"); i >= 0 {
		v = v[:i]
	}
	v = strings.TrimSpace(v)
	if v == "" {
		return "INFO"
	}
	return strings.ToUpper(v)
}
