package providers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func anthropicTestServer(t *testing.T, header *http.Header, body *map[string]any, respond func(w http.ResponseWriter)) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		*header = r.Header.Clone()
		require.NoError(t, json.NewDecoder(r.Body).Decode(body))
		respond(w)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestAnthropicChatRequestAssembly(t *testing.T) {
	var header http.Header
	var body map[string]any
	server := anthropicTestServer(t, &header, &body, func(w http.ResponseWriter) {
		_, _ = w.Write([]byte(`{"content":[{"type":"text","text":"ok"}],"usage":{"input_tokens":1,"output_tokens":1}}`))
	})

	backend := &anthropicBackend{baseURL: server.URL, version: anthropicVersion, client: server.Client()}
	req := &Request{
		Model:  "claude-test",
		APIKey: "ak-test",
		Tools:  []Tool{{ID: "lookup", Description: "find", Parameters: map[string]any{"type": "object"}}},
	}
	msgs := []Message{
		{Role: RoleSystem, Content: "rule one"},
		{Role: RoleSystem, Content: "rule two"},
		{Role: RoleUser, Content: "question"},
		{Role: RoleAssistant, Content: "checking", ToolCalls: []ToolCallRequest{{ID: "tu_1", Name: "lookup", Arguments: `{"q":"x"}`}}},
		{Role: RoleTool, Content: "found it", ToolCallID: "tu_1", Name: "lookup"},
	}

	_, err := backend.chat(context.Background(), req, msgs, turnOptions{withTools: true})
	require.NoError(t, err)

	assert.Equal(t, "ak-test", header.Get("x-api-key"))
	assert.Equal(t, anthropicVersion, header.Get("anthropic-version"))

	// System turns fold into the dedicated field, never the messages.
	assert.Equal(t, "rule one\n\nrule two", body["system"])
	assert.Equal(t, float64(defaultAnthropicMaxTokens), body["max_tokens"])

	messages := body["messages"].([]any)
	require.Len(t, messages, 3)

	assistant := messages[1].(map[string]any)
	blocks := assistant["content"].([]any)
	require.Len(t, blocks, 2)
	assert.Equal(t, "text", blocks[0].(map[string]any)["type"])
	toolUse := blocks[1].(map[string]any)
	assert.Equal(t, "tool_use", toolUse["type"])
	assert.Equal(t, "tu_1", toolUse["id"])
	assert.Equal(t, "x", toolUse["input"].(map[string]any)["q"])

	toolResult := messages[2].(map[string]any)
	assert.Equal(t, "user", toolResult["role"])
	block := toolResult["content"].([]any)[0].(map[string]any)
	assert.Equal(t, "tool_result", block["type"])
	assert.Equal(t, "tu_1", block["tool_use_id"])
	assert.Equal(t, "found it", block["content"])

	toolDefs := body["tools"].([]any)
	require.Len(t, toolDefs, 1)
	assert.Equal(t, "lookup", toolDefs[0].(map[string]any)["name"])
	assert.Contains(t, toolDefs[0].(map[string]any), "input_schema")
}

func TestAnthropicMaxTokensOverride(t *testing.T) {
	var header http.Header
	var body map[string]any
	server := anthropicTestServer(t, &header, &body, func(w http.ResponseWriter) {
		_, _ = w.Write([]byte(`{"content":[{"type":"text","text":"ok"}]}`))
	})

	backend := &anthropicBackend{baseURL: server.URL, version: anthropicVersion, client: server.Client()}
	maxTok := 100
	_, err := backend.chat(context.Background(), &Request{Model: "claude-test", APIKey: "k", MaxTokens: &maxTok},
		[]Message{{Role: RoleUser, Content: "q"}}, turnOptions{})
	require.NoError(t, err)
	assert.Equal(t, float64(100), body["max_tokens"])
}

func TestAnthropicChatParsesBlocks(t *testing.T) {
	var header http.Header
	var body map[string]any
	server := anthropicTestServer(t, &header, &body, func(w http.ResponseWriter) {
		_, _ = w.Write([]byte(`{
			"content":[
				{"type":"text","text":"let me look"},
				{"type":"tool_use","id":"tu_9","name":"lookup","input":{"q":"x"}}
			],
			"stop_reason":"tool_use",
			"usage":{"input_tokens":12,"output_tokens":8}
		}`))
	})

	backend := &anthropicBackend{baseURL: server.URL, version: anthropicVersion, client: server.Client()}
	turn, err := backend.chat(context.Background(), &Request{Model: "claude-test", APIKey: "k"},
		[]Message{{Role: RoleUser, Content: "q"}}, turnOptions{withTools: true})
	require.NoError(t, err)

	assert.Equal(t, "let me look", turn.content)
	require.Len(t, turn.toolCalls, 1)
	assert.Equal(t, "tu_9", turn.toolCalls[0].ID)
	assert.JSONEq(t, `{"q":"x"}`, turn.toolCalls[0].Arguments)
	require.NotNil(t, turn.usage)
	assert.Equal(t, 12, turn.usage.Prompt)
	assert.Equal(t, 8, turn.usage.Completion)
	assert.Equal(t, 20, turn.usage.Total)
}

func TestAnthropicStreamChat(t *testing.T) {
	var header http.Header
	var body map[string]any
	server := anthropicTestServer(t, &header, &body, func(w http.ResponseWriter) {
		w.Header().Set("Content-Type", "text/event-stream")
		flusher := w.(http.Flusher)
		for _, line := range []string{
			`event: message_start`,
			`data: {"type":"message_start","message":{"usage":{"input_tokens":9}}}`,
			``,
			`event: content_block_delta`,
			`data: {"type":"content_block_delta","index":0,"delta":{"type":"text_delta","text":"Hel"}}`,
			``,
			`data: {"type":"content_block_delta","index":0,"delta":{"type":"text_delta","text":"lo"}}`,
			``,
			`data: {"type":"message_delta","usage":{"output_tokens":4}}`,
			``,
			`data: {"type":"message_stop"}`,
			``,
		} {
			_, _ = w.Write([]byte(line + "\n"))
			flusher.Flush()
		}
	})

	backend := &anthropicBackend{baseURL: server.URL, version: anthropicVersion, client: server.Client()}
	events, err := backend.streamChat(context.Background(), &Request{Model: "claude-test", APIKey: "k"},
		[]Message{{Role: RoleUser, Content: "q"}}, turnOptions{})
	require.NoError(t, err)

	var text string
	var sawUsage *TokenUsage
	var sawDone bool
	for ev := range events {
		switch {
		case ev.err != nil:
			t.Fatalf("unexpected stream error: %v", ev.err)
		case ev.usage != nil:
			sawUsage = ev.usage
		case ev.done:
			sawDone = true
		default:
			text += ev.text
		}
	}

	assert.Equal(t, "Hello", text)
	require.NotNil(t, sawUsage)
	assert.Equal(t, 9, sawUsage.Prompt)
	assert.Equal(t, 4, sawUsage.Completion)
	assert.Equal(t, 13, sawUsage.Total)
	assert.True(t, sawDone)
	assert.Equal(t, true, body["stream"])
}

func TestAnthropicErrorStatusPreserved(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"message":"max_tokens too large"}}`))
	}))
	t.Cleanup(server.Close)

	backend := &anthropicBackend{baseURL: server.URL, version: anthropicVersion, client: server.Client()}
	_, err := backend.chat(context.Background(), &Request{Model: "claude-test", APIKey: "k"},
		[]Message{{Role: RoleUser, Content: "q"}}, turnOptions{})

	var ae *apiError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, http.StatusBadRequest, ae.status)
	assert.Equal(t, "max_tokens too large", ae.message)
}
