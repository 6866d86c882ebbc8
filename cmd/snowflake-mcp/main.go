package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	flag "github.com/spf13/pflag"

	"github.com/frosthollow/snowflake-mcp/internal/analytics"
	"github.com/frosthollow/snowflake-mcp/internal/config"
	"github.com/frosthollow/snowflake-mcp/internal/database"
	"github.com/frosthollow/snowflake-mcp/internal/nlsql"
	"github.com/frosthollow/snowflake-mcp/internal/server"
)

var (
	// Set by LDFLAGS
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const eagerConnectTimeout = 30 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	var (
		envFile     = flag.String("env-file", ".env", "path to an env file with connection settings")
		transport   = flag.String("transport", "", "transport to serve on: stdio or http (overrides MCP_TRANSPORT)")
		listenAddr  = flag.String("listen-addr", "", "listen address for the http transport (overrides MCP_HTTP_ADDR)")
		verbose     = flag.BoolP("verbose", "v", false, "enable debug logging")
		showVersion = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("version: %s, commit: %s, date: %s\n", version, commit, date)
		return nil
	}

	// Missing env file is fine; settings may come from the environment.
	if err := godotenv.Load(*envFile); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to load env file %s: %w", *envFile, err)
	}

	cfg := config.FromEnv()
	if *transport != "" {
		cfg.Transport = *transport
	}
	if *listenAddr != "" {
		cfg.HTTPAddr = *listenAddr
	}

	newLogger(cfg, *verbose)

	if err := cfg.Validate(); err != nil {
		return err
	}

	anService := analytics.NewTelemetryService(cfg.AnalyticsEndpoint)
	if cfg.AnalyticsDisabled {
		anService.Disable()
	}

	dbService, err := database.NewSnowflakeService(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := dbService.Close(); err != nil {
			slog.Error("failed to close Snowflake session", "error", err)
		}
	}()

	if cfg.EagerConnect {
		ctx, cancel := context.WithTimeout(context.Background(), eagerConnectTimeout)
		if err := dbService.Connect(ctx); err != nil {
			// The next tool call re-attempts the connection.
			slog.Warn("eager connect failed, deferring to first request", "error", err)
		}
		cancel()
	}

	translator := nlsql.NewKeywordTranslator(dbService)

	mcpServer, err := server.New(cfg, dbService, anService, translator)
	if err != nil {
		return err
	}
	defer func() {
		if err := mcpServer.Shutdown(); err != nil {
			slog.Error("server shutdown failed", "error", err)
		}
	}()

	anService.EmitEvent(anService.NewStartupEvent(analytics.StartupEventInfo{
		ServerVersion: cfg.ServerVersion,
		Transport:     cfg.Transport,
		EagerConnect:  cfg.EagerConnect,
	}))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	slog.Info("starting Snowflake MCP server",
		"name", cfg.ServerName,
		"version", cfg.ServerVersion,
		"transport", cfg.Transport,
		"database", cfg.Database,
		"schema", cfg.Schema,
	)
	return mcpServer.Start(ctx)
}

func newLogger(cfg *config.Config, verbose bool) {
	level := slog.LevelInfo
	switch {
	case verbose, cfg.LogLevel == "DEBUG":
		level = slog.LevelDebug
	case cfg.LogLevel == "WARN", cfg.LogLevel == "WARNING":
		level = slog.LevelWarn
	case cfg.LogLevel == "ERROR":
		level = slog.LevelError
	}

	// Logs go to stderr: stdout carries the MCP stdio transport.
	handler := tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	})
	slog.SetDefault(slog.New(handler))
}
