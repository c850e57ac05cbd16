package tools

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/weft-labs/weft/pkg/version"
)

// Supported MCP transports.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// mcpConnectTimeout bounds the initial handshake with a server.
const mcpConnectTimeout = 30 * time.Second

// ServerConfig describes one MCP server to connect to.
type ServerConfig struct {
	Name      string
	Transport string // stdio | http
	Command   string
	Args      []string
	Env       map[string]string
	URL       string
	Timeout   time.Duration
}

// MCPExecutor proxies tool calls to one MCP server session. Tools are
// exposed under "<server>.<tool>" names.
type MCPExecutor struct {
	server  string
	session *mcpsdk.ClientSession
	logger  *slog.Logger
}

// ConnectMCP dials the server, registers every tool it lists on the
// registry and returns the executor so the caller can Close it at
// shutdown.
func ConnectMCP(ctx context.Context, cfg ServerConfig, registry *Registry) (*MCPExecutor, error) {
	transport, err := buildTransport(cfg)
	if err != nil {
		return nil, err
	}

	connectCtx, cancel := context.WithTimeout(ctx, mcpConnectTimeout)
	defer cancel()

	client := mcpsdk.NewClient(&mcpsdk.Implementation{
		Name:    version.AppName,
		Version: version.GitCommit,
	}, nil)

	session, err := client.Connect(connectCtx, transport, nil)
	if err != nil {
		if closer, ok := transport.(io.Closer); ok {
			_ = closer.Close()
		}
		return nil, fmt.Errorf("failed to connect to MCP server %q: %w", cfg.Name, err)
	}

	e := &MCPExecutor{
		server:  cfg.Name,
		session: session,
		logger:  slog.With("component", "tools", "server", cfg.Name),
	}

	listed, err := session.ListTools(connectCtx, nil)
	if err != nil {
		_ = session.Close()
		return nil, fmt.Errorf("failed to list tools on %q: %w", cfg.Name, err)
	}
	for _, tool := range listed.Tools {
		registry.Register(fmt.Sprintf("%s.%s", cfg.Name, tool.Name), e)
	}
	e.logger.Info("Connected MCP server", "tools", len(listed.Tools))
	return e, nil
}

// Execute proxies one call. MCP errors come back as failed results, not
// Go errors, so the loop engine feeds them to the model.
func (e *MCPExecutor) Execute(ctx context.Context, name string, params map[string]any) (*ToolResult, error) {
	toolName := strings.TrimPrefix(name, e.server+".")
	result, err := e.session.CallTool(ctx, &mcpsdk.CallToolParams{
		Name:      toolName,
		Arguments: params,
	})
	if err != nil {
		return &ToolResult{
			Success: false,
			Error:   fmt.Sprintf("MCP tool execution failed: %s", err),
		}, nil
	}

	content := extractTextContent(result)
	if result.IsError {
		return &ToolResult{Success: false, Error: content}, nil
	}
	return &ToolResult{Success: true, Output: content}, nil
}

// Close releases the session and any child process behind it.
func (e *MCPExecutor) Close() error {
	return e.session.Close()
}

func buildTransport(cfg ServerConfig) (mcpsdk.Transport, error) {
	switch cfg.Transport {
	case TransportStdio:
		if cfg.Command == "" {
			return nil, fmt.Errorf("stdio transport requires command")
		}
		cmd := exec.Command(cfg.Command, cfg.Args...)
		env := os.Environ()
		for k, v := range cfg.Env {
			env = append(env, fmt.Sprintf("%s=%s", k, v))
		}
		cmd.Env = env
		return &mcpsdk.CommandTransport{Command: cmd}, nil
	case TransportHTTP:
		if cfg.URL == "" {
			return nil, fmt.Errorf("http transport requires url")
		}
		return &mcpsdk.StreamableClientTransport{Endpoint: cfg.URL}, nil
	default:
		return nil, fmt.Errorf("unsupported MCP transport type: %s", cfg.Transport)
	}
}

// extractTextContent concatenates the text items of a call result.
// Non-text content is skipped.
func extractTextContent(result *mcpsdk.CallToolResult) string {
	var parts []string
	for _, c := range result.Content {
		if tc, ok := c.(*mcpsdk.TextContent); ok {
			parts = append(parts, tc.Text)
		} else {
			slog.Debug("MCP tool returned non-text content, skipping",
				"content_type", fmt.Sprintf("%T", c))
		}
	}
	return strings.Join(parts, "\n")
}
