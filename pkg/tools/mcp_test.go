package tools

import (
	"testing"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTransport_Stdio(t *testing.T) {
	cfg := ServerConfig{
		Name:      "kubernetes",
		Transport: TransportStdio,
		Command:   "npx",
		Args:      []string{"-y", "kubernetes-mcp-server@0.0.54"},
		Env:       map[string]string{"KUBECONFIG": "/home/test/.kube/config"},
	}

	transport, err := buildTransport(cfg)
	require.NoError(t, err)

	cmdTransport, ok := transport.(*mcpsdk.CommandTransport)
	require.True(t, ok)
	// exec.Command resolves the full path, so check Args for the originals
	assert.Contains(t, cmdTransport.Command.Path, "npx")
	assert.Contains(t, cmdTransport.Command.Args, "-y")
	assert.Contains(t, cmdTransport.Command.Args, "kubernetes-mcp-server@0.0.54")

	found := false
	for _, e := range cmdTransport.Command.Env {
		if e == "KUBECONFIG=/home/test/.kube/config" {
			found = true
			break
		}
	}
	assert.True(t, found, "expected KUBECONFIG env override in command environment")
}

func TestBuildTransport_Stdio_MissingCommand(t *testing.T) {
	_, err := buildTransport(ServerConfig{Name: "k8s", Transport: TransportStdio})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "requires command")
}

func TestBuildTransport_HTTP(t *testing.T) {
	cfg := ServerConfig{
		Name:      "search",
		Transport: TransportHTTP,
		URL:       "https://mcp.example.com/v1",
	}

	transport, err := buildTransport(cfg)
	require.NoError(t, err)

	httpTransport, ok := transport.(*mcpsdk.StreamableClientTransport)
	require.True(t, ok)
	assert.Equal(t, "https://mcp.example.com/v1", httpTransport.Endpoint)
}

func TestBuildTransport_HTTP_MissingURL(t *testing.T) {
	_, err := buildTransport(ServerConfig{Name: "search", Transport: TransportHTTP})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "requires url")
}

func TestBuildTransport_UnknownType(t *testing.T) {
	_, err := buildTransport(ServerConfig{Name: "x", Transport: "grpc"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported MCP transport type")
}

func TestExtractTextContent(t *testing.T) {
	result := &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{
			&mcpsdk.TextContent{Text: "line one"},
			&mcpsdk.TextContent{Text: "line two"},
		},
	}
	assert.Equal(t, "line one\nline two", extractTextContent(result))
}

func TestExtractTextContent_Empty(t *testing.T) {
	assert.Equal(t, "", extractTextContent(&mcpsdk.CallToolResult{}))
}
