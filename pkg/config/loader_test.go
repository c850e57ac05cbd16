package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfigFile writes a weft.yaml into a temp dir and points
// WEFT_CONFIG at it for the duration of the test.
func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "weft.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	t.Setenv(EnvConfigPath, path)
	return path
}

func TestLoadDefaults(t *testing.T) {
	// Empty WEFT_CONFIG means the default path; the package directory
	// carries no weft.yaml, so compiled defaults apply.
	t.Setenv(EnvConfigPath, "")

	cfg, err := Load()

	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Empty(t, cfg.Providers.OllamaURL)
	assert.Equal(t, 10, cfg.Collab.WriteTimeout)
	assert.Empty(t, cfg.MCPServers)
}

func TestLoadYAMLFile(t *testing.T) {
	writeConfigFile(t, `
server:
  port: 9090
  log_level: debug

providers:
  ollama_url: "http://ollama.internal:11434"

collab:
  write_timeout: 30

mcp_servers:
  github:
    transport:
      type: "stdio"
      command: "github-mcp-server"
      args: ["--stdio"]
  search:
    transport:
      type: "http"
      url: "http://search-mcp:8080/mcp"
      timeout: 20
`)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "http://ollama.internal:11434", cfg.Providers.OllamaURL)
	assert.Equal(t, 30, cfg.Collab.WriteTimeout)

	require.Len(t, cfg.MCPServers, 2)
	github := cfg.MCPServers["github"]
	assert.Equal(t, TransportStdio, github.Transport.Type)
	assert.Equal(t, "github-mcp-server", github.Transport.Command)
	assert.Equal(t, []string{"--stdio"}, github.Transport.Args)
	search := cfg.MCPServers["search"]
	assert.Equal(t, TransportHTTP, search.Transport.Type)
	assert.Equal(t, "http://search-mcp:8080/mcp", search.Transport.URL)
	assert.Equal(t, 20, search.Transport.Timeout)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	writeConfigFile(t, `
providers:
  ollama_url: "http://localhost:11435"
`)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:11435", cfg.Providers.OllamaURL)

	// Unset sections keep their compiled defaults.
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, 10, cfg.Collab.WriteTimeout)
}

func TestLoadExpandsEnvironmentVariables(t *testing.T) {
	t.Setenv("WEFT_TEST_MCP_URL", "http://mcp.example.com/mcp")
	writeConfigFile(t, `
mcp_servers:
  remote:
    transport:
      type: "http"
      url: "{{.WEFT_TEST_MCP_URL}}"
`)

	cfg, err := Load()

	require.NoError(t, err)
	require.Contains(t, cfg.MCPServers, "remote")
	assert.Equal(t, "http://mcp.example.com/mcp", cfg.MCPServers["remote"].Transport.URL)
}

func TestLoadEnvironmentOverridesFile(t *testing.T) {
	writeConfigFile(t, `
server:
  port: 9090
  log_level: debug
providers:
  ollama_url: "http://from-file:11434"
`)
	t.Setenv("WEFT_PORT", "7070")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("OLLAMA_URL", "http://from-env:11434")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Server.LogLevel)
	assert.Equal(t, "http://from-env:11434", cfg.Providers.OllamaURL)
}

func TestLoadInvalidPortEnvIgnored(t *testing.T) {
	writeConfigFile(t, `
server:
  port: 9090
`)
	t.Setenv("WEFT_PORT", "not-a-port")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
}

func TestLoadExplicitFileNotFound(t *testing.T) {
	t.Setenv(EnvConfigPath, filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load")
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestLoadInvalidYAML(t *testing.T) {
	writeConfigFile(t, `{{{`)

	_, err := Load()

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidYAML)
}

func TestLoadValidationFailures(t *testing.T) {
	tests := []struct {
		name     string
		yaml     string
		env      map[string]string
		contains string
	}{
		{
			name:     "port out of range",
			yaml:     "server:\n  port: 99999\n",
			contains: "server.port",
		},
		{
			name:     "unknown log level",
			yaml:     "server:\n  log_level: chatty\n",
			contains: "server.log_level",
		},
		{
			name:     "log level env override validated",
			yaml:     "",
			env:      map[string]string{"LOG_LEVEL": "loud"},
			contains: "server.log_level",
		},
		{
			name:     "stdio server without command",
			yaml:     "mcp_servers:\n  broken:\n    transport:\n      type: stdio\n",
			contains: "transport.command",
		},
		{
			name:     "http server without url",
			yaml:     "mcp_servers:\n  broken:\n    transport:\n      type: http\n",
			contains: "transport.url",
		},
		{
			name:     "unknown transport type",
			yaml:     "mcp_servers:\n  broken:\n    transport:\n      type: carrier-pigeon\n      command: x\n",
			contains: "transport.type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			writeConfigFile(t, tt.yaml)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load()

			require.Error(t, err)
			assert.Contains(t, err.Error(), "validation failed")
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestLoadDisabledServerSkipsValidation(t *testing.T) {
	writeConfigFile(t, `
mcp_servers:
  parked:
    disabled: true
    transport:
      type: stdio
`)

	cfg, err := Load()

	require.NoError(t, err)
	require.Contains(t, cfg.MCPServers, "parked")
	assert.True(t, cfg.MCPServers["parked"].Disabled)
}
