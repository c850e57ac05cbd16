package config

import "fmt"

// Supported MCP transport types.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// MCPServerConfig defines one MCP server the tool registry connects to
// at startup.
type MCPServerConfig struct {
	Transport TransportConfig `yaml:"transport"`

	// Disabled skips the server without removing its entry.
	Disabled bool `yaml:"disabled,omitempty"`
}

// TransportConfig defines how to reach an MCP server.
type TransportConfig struct {
	Type string `yaml:"type"`

	// For stdio transport
	Command string            `yaml:"command,omitempty"`
	Args    []string          `yaml:"args,omitempty"`
	Env     map[string]string `yaml:"env,omitempty"` // Environment overrides for the subprocess

	// For http transport
	URL     string `yaml:"url,omitempty"`
	Timeout int    `yaml:"timeout,omitempty"` // In seconds
}

// validateMCPServer checks one server entry for the fields its
// transport requires.
func validateMCPServer(name string, server MCPServerConfig) error {
	switch server.Transport.Type {
	case TransportStdio:
		if server.Transport.Command == "" {
			return NewValidationError("mcp_server", name, "transport.command", ErrMissingRequiredField)
		}
	case TransportHTTP:
		if server.Transport.URL == "" {
			return NewValidationError("mcp_server", name, "transport.url", ErrMissingRequiredField)
		}
	case "":
		return NewValidationError("mcp_server", name, "transport.type", ErrMissingRequiredField)
	default:
		return NewValidationError("mcp_server", name, "transport.type",
			fmt.Errorf("%w: %q (expected %s or %s)", ErrInvalidValue, server.Transport.Type, TransportStdio, TransportHTTP))
	}
	return nil
}
