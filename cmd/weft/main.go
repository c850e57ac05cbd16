// Weft runtime core server. Hosts the provider orchestration API and the
// realtime collaboration socket.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/weft-labs/weft/pkg/api"
	"github.com/weft-labs/weft/pkg/collab"
	"github.com/weft-labs/weft/pkg/config"
	"github.com/weft-labs/weft/pkg/database"
	"github.com/weft-labs/weft/pkg/providers"
	"github.com/weft-labs/weft/pkg/ratelimit"
	"github.com/weft-labs/weft/pkg/services"
	"github.com/weft-labs/weft/pkg/tools"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// staticSubscriptions resolves every caller to the plan named by WEFT_PLAN.
// It stands in for a billing backend in single-tenant deployments; when
// WEFT_PLAN_REFERENCE_ID is set, team and enterprise callers share that
// quota pool.
type staticSubscriptions struct {
	plan        ratelimit.Plan
	referenceID string
}

func (r staticSubscriptions) Resolve(_ context.Context, _ string) (*ratelimit.Subscription, error) {
	return &ratelimit.Subscription{Plan: r.plan, ReferenceID: r.referenceID}, nil
}

// mcpServerConfig converts one configured MCP server into the tools wiring.
func mcpServerConfig(name string, server config.MCPServerConfig) tools.ServerConfig {
	return tools.ServerConfig{
		Name:      name,
		Transport: server.Transport.Type,
		Command:   server.Transport.Command,
		Args:      server.Transport.Args,
		Env:       server.Transport.Env,
		URL:       server.Transport.URL,
		Timeout:   time.Duration(server.Transport.Timeout) * time.Second,
	}
}

func main() {
	// Load .env before anything reads the environment
	if err := godotenv.Load(); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment", "error", err)
	}

	ctx := context.Background()

	// 1. Load configuration (defaults, optional YAML file, environment)
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// 2. Structured logging at the configured level
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))
	slog.Info("Starting weft", "addr", cfg.Addr())

	// 3. Database (runs embedded migrations)
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 4. Domain services
	workflowService := services.NewWorkflowService(dbClient.Client)
	accessService := services.NewAccessService(dbClient.Client)
	operationService := services.NewOperationService(dbClient.Client)
	fieldService := services.NewFieldService(dbClient.Client)
	slog.Info("Services initialized")

	// 5. Tool registry and MCP servers. A server that fails to connect is
	// logged and skipped: chat has to come up even when a tool server is down.
	toolRegistry := tools.NewRegistry()
	var mcpExecutors []*tools.MCPExecutor
	for _, name := range cfg.MCPServerNames() {
		server := cfg.MCPServers[name]
		if server.Disabled {
			slog.Info("Skipping disabled MCP server", "server", name)
			continue
		}
		executor, err := tools.ConnectMCP(ctx, mcpServerConfig(name, server), toolRegistry)
		if err != nil {
			slog.Error("Failed to connect MCP server, continuing without it",
				"server", name, "error", err)
			continue
		}
		mcpExecutors = append(mcpExecutors, executor)
	}
	slog.Info("Tool registry initialized",
		"servers", len(mcpExecutors), "tools", len(toolRegistry.Names()))

	// 6. Provider registry
	registry := providers.New(providers.Config{
		OllamaURL: cfg.Providers.OllamaURL,
		Tools:     toolRegistry,
	})
	slog.Info("Provider registry initialized", "providers", registry.IDs())

	// 7. Rate limiter, sharing the database pool with ent
	limiter := ratelimit.New(dbClient.DB(), dbClient.Client, ratelimit.ConfigFromEnv())

	// 8. Collaboration stack
	rooms := collab.NewRooms(accessService, workflowService)
	collabOps := collab.NewOperations(rooms, operationService)
	updater := collab.NewUpdater(rooms, fieldService)
	collabManager := collab.NewManager(rooms, collabOps, updater, cfg.CollabWriteTimeout())

	// 9. HTTP server
	httpServer := api.NewServer(dbClient, registry, limiter, collabManager, accessService, nil)
	httpServer.SetSubscriptionResolver(staticSubscriptions{
		plan:        ratelimit.Plan(getEnv("WEFT_PLAN", string(ratelimit.PlanFree))),
		referenceID: os.Getenv("WEFT_PLAN_REFERENCE_ID"),
	})

	// 10. Start HTTP server (non-blocking)
	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", cfg.Addr())
		if err := httpServer.Start(cfg.Addr()); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("weft started successfully")

	// 11. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 12. Graceful shutdown. Stop accepting requests first; websocket
	// connections are hijacked so http.Shutdown does not wait for them, the
	// collab manager flushes pending writes and closes them itself.
	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	collabManager.Shutdown()

	for _, executor := range mcpExecutors {
		if err := executor.Close(); err != nil {
			slog.Error("Error closing MCP session", "error", err)
		}
	}

	slog.Info("Shutdown complete")
}
