package server

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/server"

	"github.com/frosthollow/snowflake-mcp/internal/tools"
	"github.com/frosthollow/snowflake-mcp/internal/tools/query"
	"github.com/frosthollow/snowflake-mcp/internal/tools/saved"
	"github.com/frosthollow/snowflake-mcp/internal/tools/schema"
	"github.com/frosthollow/snowflake-mcp/internal/tools/tables"
)

// registerTools registers all MCP tools and adds them to the provided MCP
// server: the three core database tools plus any saved queries found in the
// query library.
func (s *SnowflakeMCPServer) registerTools() error {
	deps := &tools.ToolDependencies{
		DBService:        s.dbService,
		AnalyticsService: s.anService,
		Translator:       s.translator,
	}

	toolDefs := s.getAllToolsDefs(deps)
	serverTools := make([]server.ServerTool, 0, len(toolDefs))
	for _, toolDef := range toolDefs {
		serverTools = append(serverTools, toolDef.definition)
	}
	s.MCPServer.AddTools(serverTools...)
	return nil
}

type toolCategory int

const (
	queryCategory    toolCategory = 0
	metadataCategory toolCategory = 1
	savedCategory    toolCategory = 2 // YAML-defined saved-query tools
)

type ToolDefinition struct {
	category   toolCategory
	definition server.ServerTool
}

// getAllToolsDefs returns all available tools with their specs and handlers
func (s *SnowflakeMCPServer) getAllToolsDefs(deps *tools.ToolDependencies) []ToolDefinition {
	toolDefs := []ToolDefinition{
		{
			category: queryCategory,
			definition: server.ServerTool{
				Tool:    query.QueryDatabaseSpec(),
				Handler: query.QueryDatabaseHandler(deps),
			},
		},
		{
			category: metadataCategory,
			definition: server.ServerTool{
				Tool:    tables.ListTablesSpec(),
				Handler: tables.ListTablesHandler(deps),
			},
		},
		{
			category: metadataCategory,
			definition: server.ServerTool{
				Tool:    schema.GetTableSchemaSpec(),
				Handler: schema.GetTableSchemaHandler(deps),
			},
		},
	}

	toolDefs = append(toolDefs, s.loadSavedQueryTools(deps)...)
	return toolDefs
}

// loadSavedQueryTools loads tools from the YAML query library
func (s *SnowflakeMCPServer) loadSavedQueryTools(deps *tools.ToolDependencies) []ToolDefinition {
	registry := saved.NewRegistry(s.config.SavedQueriesDir)

	if err := registry.Load(); err != nil {
		slog.Error("failed to load saved queries", "error", err)
		return []ToolDefinition{}
	}

	if registry.Count() == 0 {
		slog.Info("no saved queries found in query library")
		return []ToolDefinition{}
	}

	serverTools := registry.ServerTools(deps)
	toolDefs := make([]ToolDefinition, 0, len(serverTools))
	for _, serverTool := range serverTools {
		toolDefs = append(toolDefs, ToolDefinition{
			category:   savedCategory,
			definition: serverTool,
		})
	}
	return toolDefs
}
