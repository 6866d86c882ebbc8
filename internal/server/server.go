// Package server wires the Snowflake database service, the translator and
// the analytics emitter into an MCP server and serves it over stdio or
// streamable HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"github.com/frosthollow/snowflake-mcp/internal/analytics"
	"github.com/frosthollow/snowflake-mcp/internal/config"
	"github.com/frosthollow/snowflake-mcp/internal/database"
	"github.com/frosthollow/snowflake-mcp/internal/nlsql"
	"github.com/frosthollow/snowflake-mcp/internal/tools/saved"
	"github.com/frosthollow/snowflake-mcp/queries"
)

const httpShutdownTimeout = 5 * time.Second

// SnowflakeMCPServer bundles the MCP server with the services its tools
// depend on.
type SnowflakeMCPServer struct {
	config     *config.Config
	MCPServer  *server.MCPServer
	dbService  database.Service
	anService  analytics.Service
	translator nlsql.Translator
}

// New builds the MCP server and registers all tools.
func New(cfg *config.Config, dbService database.Service, anService analytics.Service, translator nlsql.Translator) (*SnowflakeMCPServer, error) {
	mcpServer := server.NewMCPServer(
		cfg.ServerName,
		cfg.ServerVersion,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)

	s := &SnowflakeMCPServer{
		config:     cfg,
		MCPServer:  mcpServer,
		dbService:  dbService,
		anService:  anService,
		translator: translator,
	}

	saved.EmbeddedFS = queries.Library
	if err := s.registerTools(); err != nil {
		return nil, fmt.Errorf("failed to register tools: %w", err)
	}
	return s, nil
}

// Start serves the configured transport until ctx is cancelled or the
// client disconnects.
func (s *SnowflakeMCPServer) Start(ctx context.Context) error {
	switch s.config.Transport {
	case config.TransportHTTP:
		return s.serveHTTP(ctx)
	default:
		slog.Info("serving MCP over stdio", "server", s.config.ServerName)
		return server.ServeStdio(s.MCPServer)
	}
}

func (s *SnowflakeMCPServer) serveHTTP(ctx context.Context) error {
	httpServer := server.NewStreamableHTTPServer(s.MCPServer)

	errCh := make(chan error, 1)
	go func() {
		slog.Info("serving MCP over streamable HTTP", "addr", s.config.HTTPAddr)
		errCh <- httpServer.Start(s.config.HTTPAddr)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), httpShutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			slog.Warn("http server shutdown failed", "error", err)
		}
		return ctx.Err()
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// Shutdown closes the database session. Safe to call more than once.
func (s *SnowflakeMCPServer) Shutdown() error {
	if s.dbService == nil {
		return nil
	}
	if err := s.dbService.Close(); err != nil {
		return fmt.Errorf("failed to close database service: %w", err)
	}
	return nil
}
