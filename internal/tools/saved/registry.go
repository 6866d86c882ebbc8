package saved

import (
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/frosthollow/snowflake-mcp/internal/tools"
)

// Registry manages the loading and registration of saved-query tools.
type Registry struct {
	libraryDir string
	configs    []*SavedQueryConfig
}

// NewRegistry creates a registry reading from the given OS directory when
// the embedded library is empty.
func NewRegistry(libraryDir string) *Registry {
	return &Registry{
		libraryDir: libraryDir,
		configs:    make([]*SavedQueryConfig, 0),
	}
}

// Load reads all saved-query definitions from the library.
func (r *Registry) Load() error {
	configs, err := WalkQueryLibrary(r.libraryDir)
	if err != nil {
		return fmt.Errorf("failed to load saved queries: %w", err)
	}

	r.configs = configs
	slog.Info("loaded saved queries", "count", len(configs), "libraryDir", r.libraryDir)
	return nil
}

// Count returns the number of loaded saved queries.
func (r *Registry) Count() int {
	return len(r.configs)
}

// Configs returns all loaded saved-query definitions.
func (r *Registry) Configs() []*SavedQueryConfig {
	return r.configs
}

// ServerTools converts all loaded definitions into MCP server tools.
func (r *Registry) ServerTools(deps *tools.ToolDependencies) []server.ServerTool {
	serverTools := make([]server.ServerTool, 0, len(r.configs))
	for _, config := range r.configs {
		serverTools = append(serverTools, r.buildServerTool(config, deps))
	}
	return serverTools
}

func (r *Registry) buildServerTool(config *SavedQueryConfig, deps *tools.ToolDependencies) server.ServerTool {
	title := config.Title
	if title == "" {
		title = config.Name
	}

	opts := []mcp.ToolOption{
		mcp.WithDescription(config.Description),
		mcp.WithTitleAnnotation(title),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	}
	for _, param := range config.Parameters {
		opts = append(opts, parameterOption(param))
	}

	slog.Debug("built saved-query tool", "name", config.Name, "category", config.Category)

	return server.ServerTool{
		Tool:    mcp.NewTool(config.Name, opts...),
		Handler: NewSavedQueryHandler(config, deps),
	}
}

func parameterOption(param ParameterConfig) mcp.ToolOption {
	var propOpts []mcp.PropertyOption
	if param.Description != "" {
		propOpts = append(propOpts, mcp.Description(param.Description))
	}
	if param.Required {
		propOpts = append(propOpts, mcp.Required())
	}

	switch param.Type {
	case "integer", "number":
		if def, ok := toFloat(param.Default); ok {
			propOpts = append(propOpts, mcp.DefaultNumber(def))
		}
		return mcp.WithNumber(param.Name, propOpts...)
	case "boolean":
		if def, ok := param.Default.(bool); ok {
			propOpts = append(propOpts, mcp.DefaultBool(def))
		}
		return mcp.WithBoolean(param.Name, propOpts...)
	default:
		if def, ok := param.Default.(string); ok {
			propOpts = append(propOpts, mcp.DefaultString(def))
		}
		return mcp.WithString(param.Name, propOpts...)
	}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
