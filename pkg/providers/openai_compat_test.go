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

// capturedRequest decodes the chat-completions body a test server saw.
type capturedRequest struct {
	header http.Header
	body   map[string]any
}

func openaiTestServer(t *testing.T, captured *capturedRequest, respond func(w http.ResponseWriter)) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		captured.header = r.Header.Clone()
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured.body))
		respond(w)
	}))
	t.Cleanup(server.Close)
	return server
}

func respondJSON(body string) func(w http.ResponseWriter) {
	return func(w http.ResponseWriter) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}
}

func TestOpenAIChatRequestAssembly(t *testing.T) {
	var captured capturedRequest
	server := openaiTestServer(t, &captured, respondJSON(`{"choices":[{"message":{"content":"ok"}}]}`))

	backend := &openaiCompatBackend{id: "openai", baseURL: server.URL, toolChoice: true, client: server.Client()}
	temp := 0.2
	maxTok := 512
	req := &Request{
		Model:       "gpt-test",
		APIKey:      "sk-test",
		Temperature: &temp,
		MaxTokens:   &maxTok,
		Tools: []Tool{
			{ID: "lookup", Description: "find things", Parameters: map[string]any{"type": "object"}},
			{ID: "hidden", UsageControl: UsageNone},
		},
		ResponseFormat: &ResponseFormat{Name: "out", Schema: map[string]any{"type": "object"}},
	}
	msgs := []Message{
		{Role: RoleSystem, Content: "sys"},
		{Role: RoleUser, Content: "ctx"},
		{Role: RoleUser, Content: "question"},
	}

	_, err := backend.chat(context.Background(), req, msgs, turnOptions{withTools: true, toolChoice: forcedChoice("lookup")})
	require.NoError(t, err)

	assert.Equal(t, "Bearer sk-test", captured.header.Get("Authorization"))
	assert.Equal(t, "gpt-test", captured.body["model"])
	assert.Equal(t, 0.2, captured.body["temperature"])
	assert.Equal(t, float64(512), captured.body["max_tokens"])

	messages := captured.body["messages"].([]any)
	require.Len(t, messages, 3)
	first := messages[0].(map[string]any)
	assert.Equal(t, "system", first["role"])

	// usageControl none never reaches the wire.
	toolList := captured.body["tools"].([]any)
	require.Len(t, toolList, 1)
	fn := toolList[0].(map[string]any)["function"].(map[string]any)
	assert.Equal(t, "lookup", fn["name"])

	choice := captured.body["tool_choice"].(map[string]any)
	assert.Equal(t, "function", choice["type"])
	assert.Equal(t, "lookup", choice["function"].(map[string]any)["name"])

	// Tools are on the request, so the response format is dropped.
	assert.NotContains(t, captured.body, "response_format")
}

func TestOpenAIResponseFormatWithoutTools(t *testing.T) {
	var captured capturedRequest
	server := openaiTestServer(t, &captured, respondJSON(`{"choices":[{"message":{"content":"{}"}}]}`))

	backend := &openaiCompatBackend{id: "openai", baseURL: server.URL, toolChoice: true, client: server.Client()}
	req := &Request{
		Model:          "gpt-test",
		APIKey:         "sk-test",
		ResponseFormat: &ResponseFormat{Name: "out", Schema: map[string]any{"type": "object"}, Strict: true},
	}

	_, err := backend.chat(context.Background(), req, []Message{{Role: RoleUser, Content: "q"}}, turnOptions{})
	require.NoError(t, err)

	rf := captured.body["response_format"].(map[string]any)
	assert.Equal(t, "json_schema", rf["type"])
	schema := rf["json_schema"].(map[string]any)
	assert.Equal(t, "out", schema["name"])
	assert.Equal(t, true, schema["strict"])
}

func TestGroqPrefixStripAndChoiceCoercion(t *testing.T) {
	var captured capturedRequest
	server := openaiTestServer(t, &captured, respondJSON(`{"choices":[{"message":{"content":"ok"}}]}`))

	backend := &openaiCompatBackend{id: "groq", baseURL: server.URL, modelPrefix: "groq/", client: server.Client()}
	req := &Request{
		Model:  "groq/llama-3.3-70b",
		APIKey: "gsk-test",
		Tools:  []Tool{{ID: "lookup"}},
	}

	_, err := backend.chat(context.Background(), req, []Message{{Role: RoleUser, Content: "q"}}, turnOptions{withTools: true, toolChoice: forcedChoice("lookup")})
	require.NoError(t, err)

	assert.Equal(t, "llama-3.3-70b", captured.body["model"])
	// No forced-selection support: the explicit choice degrades to auto.
	assert.Equal(t, "auto", captured.body["tool_choice"])
}

func TestOpenAIChatParsesToolCallsAndUsage(t *testing.T) {
	var captured capturedRequest
	server := openaiTestServer(t, &captured, respondJSON(`{
		"choices":[{"message":{"content":"calling","tool_calls":[
			{"id":"call_1","type":"function","function":{"name":"lookup","arguments":"{\"q\":\"x\"}"}}
		]},"finish_reason":"tool_calls"}],
		"usage":{"prompt_tokens":11,"completion_tokens":4,"total_tokens":15}
	}`))

	backend := &openaiCompatBackend{id: "openai", baseURL: server.URL, toolChoice: true, client: server.Client()}
	turn, err := backend.chat(context.Background(), &Request{Model: "gpt-test", APIKey: "k"},
		[]Message{{Role: RoleUser, Content: "q"}}, turnOptions{withTools: true})
	require.NoError(t, err)

	assert.Equal(t, "calling", turn.content)
	require.Len(t, turn.toolCalls, 1)
	assert.Equal(t, "call_1", turn.toolCalls[0].ID)
	assert.Equal(t, "lookup", turn.toolCalls[0].Name)
	assert.JSONEq(t, `{"q":"x"}`, turn.toolCalls[0].Arguments)
	require.NotNil(t, turn.usage)
	assert.Equal(t, 15, turn.usage.Total)
}

func TestOpenAIChatToolResultRoundTrip(t *testing.T) {
	var captured capturedRequest
	server := openaiTestServer(t, &captured, respondJSON(`{"choices":[{"message":{"content":"ok"}}]}`))

	backend := &openaiCompatBackend{id: "openai", baseURL: server.URL, toolChoice: true, client: server.Client()}
	msgs := []Message{
		{Role: RoleUser, Content: "q"},
		{Role: RoleAssistant, Content: "", ToolCalls: []ToolCallRequest{{ID: "call_1", Name: "lookup", Arguments: `{"q":"x"}`}}},
		{Role: RoleTool, Content: `{"answer":42}`, ToolCallID: "call_1", Name: "lookup"},
	}

	_, err := backend.chat(context.Background(), &Request{Model: "gpt-test", APIKey: "k"}, msgs, turnOptions{withTools: true})
	require.NoError(t, err)

	messages := captured.body["messages"].([]any)
	require.Len(t, messages, 3)
	assistant := messages[1].(map[string]any)
	calls := assistant["tool_calls"].([]any)
	require.Len(t, calls, 1)
	assert.Equal(t, "call_1", calls[0].(map[string]any)["id"])

	toolMsg := messages[2].(map[string]any)
	assert.Equal(t, "tool", toolMsg["role"])
	assert.Equal(t, "call_1", toolMsg["tool_call_id"])
}

func TestOpenAIChatErrorStatusPreserved(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"rate limited"}}`))
	}))
	t.Cleanup(server.Close)

	backend := &openaiCompatBackend{id: "openai", baseURL: server.URL, toolChoice: true, client: server.Client()}
	_, err := backend.chat(context.Background(), &Request{Model: "gpt-test", APIKey: "k"},
		[]Message{{Role: RoleUser, Content: "q"}}, turnOptions{})

	var ae *apiError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, http.StatusTooManyRequests, ae.status)
	assert.Equal(t, "rate limited", ae.message)
}

func TestOllamaSkipsAuthHeader(t *testing.T) {
	var captured capturedRequest
	server := openaiTestServer(t, &captured, respondJSON(`{"choices":[{"message":{"content":"ok"}}]}`))

	backend := &openaiCompatBackend{id: "ollama", baseURL: server.URL, client: server.Client()}
	_, err := backend.chat(context.Background(), &Request{Model: "llama3"},
		[]Message{{Role: RoleUser, Content: "q"}}, turnOptions{})
	require.NoError(t, err)
	assert.Empty(t, captured.header.Get("Authorization"))
}

func TestOpenAIStreamChat(t *testing.T) {
	var captured capturedRequest
	server := openaiTestServer(t, &captured, func(w http.ResponseWriter) {
		w.Header().Set("Content-Type", "text/event-stream")
		flusher := w.(http.Flusher)
		for _, line := range []string{
			`data: {"choices":[{"delta":{"content":"Hel"}}]}`,
			`data: {"choices":[{"delta":{"content":"lo"}}]}`,
			`data: {"choices":[],"usage":{"prompt_tokens":3,"completion_tokens":2,"total_tokens":5}}`,
			`data: [DONE]`,
		} {
			_, _ = w.Write([]byte(line + "\n\n"))
			flusher.Flush()
		}
	})

	backend := &openaiCompatBackend{id: "openai", baseURL: server.URL, toolChoice: true, client: server.Client()}
	events, err := backend.streamChat(context.Background(), &Request{Model: "gpt-test", APIKey: "k"},
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
	assert.Equal(t, 5, sawUsage.Total)
	assert.True(t, sawDone)

	// Usage only arrives in the terminal chunk when explicitly requested.
	assert.Equal(t, true, captured.body["stream"])
	opts := captured.body["stream_options"].(map[string]any)
	assert.Equal(t, true, opts["include_usage"])
}

func TestDecodeSSELine(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		wantText string
		wantDone bool
	}{
		{"delta", `data: {"choices":[{"delta":{"content":"hi"}}]}`, "hi", false},
		{"done", `data: [DONE]`, "", true},
		{"comment", `: keepalive`, "", false},
		{"blank", ``, "", false},
		{"garbage", `data: {not json`, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, _, done := decodeSSELine([]byte(tt.line + "\n"))
			assert.Equal(t, tt.wantText, text)
			assert.Equal(t, tt.wantDone, done)
		})
	}
}
