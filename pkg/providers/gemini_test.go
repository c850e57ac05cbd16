package providers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeminiRequestAssembly(t *testing.T) {
	var gotPath, gotKey string
	var body map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"ok"}]}}]}`))
	}))
	t.Cleanup(server.Close)

	backend := &geminiBackend{baseURL: server.URL, client: server.Client()}
	temp := 0.5
	req := &Request{
		Model:       "gemini-test",
		APIKey:      "g-key",
		Temperature: &temp,
		Tools: []Tool{{
			ID:          "lookup",
			Description: "find",
			Parameters: map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"properties": map[string]any{
					"q": map[string]any{"type": "string", "$schema": "x"},
				},
			},
		}},
	}
	msgs := []Message{
		{Role: RoleSystem, Content: "sys"},
		{Role: RoleUser, Content: "question"},
		{Role: RoleAssistant, ToolCalls: []ToolCallRequest{{ID: "c1", Name: "lookup", Arguments: `{"q":"x"}`}}},
		{Role: RoleTool, Content: "result text", ToolCallID: "c1", Name: "lookup"},
	}

	_, err := backend.chat(context.Background(), req, msgs, turnOptions{withTools: true})
	require.NoError(t, err)

	assert.Equal(t, "/v1beta/models/gemini-test:generateContent", gotPath)
	assert.Equal(t, "g-key", gotKey)

	system := body["systemInstruction"].(map[string]any)
	parts := system["parts"].([]any)
	assert.Equal(t, "sys", parts[0].(map[string]any)["text"])

	contents := body["contents"].([]any)
	require.Len(t, contents, 3)
	assert.Equal(t, "user", contents[0].(map[string]any)["role"])

	model := contents[1].(map[string]any)
	assert.Equal(t, "model", model["role"])
	fc := model["parts"].([]any)[0].(map[string]any)["functionCall"].(map[string]any)
	assert.Equal(t, "lookup", fc["name"])
	assert.Equal(t, "x", fc["args"].(map[string]any)["q"])

	toolReply := contents[2].(map[string]any)
	assert.Equal(t, "user", toolReply["role"])
	fr := toolReply["parts"].([]any)[0].(map[string]any)["functionResponse"].(map[string]any)
	assert.Equal(t, "lookup", fr["name"])
	assert.Equal(t, "result text", fr["response"].(map[string]any)["content"])

	genCfg := body["generationConfig"].(map[string]any)
	assert.Equal(t, 0.5, genCfg["temperature"])

	// Rejected schema keywords are stripped at every level.
	decl := body["tools"].([]any)[0].(map[string]any)["functionDeclarations"].([]any)[0].(map[string]any)
	params := decl["parameters"].(map[string]any)
	assert.NotContains(t, params, "additionalProperties")
	q := params["properties"].(map[string]any)["q"].(map[string]any)
	assert.NotContains(t, q, "$schema")
	assert.Equal(t, "string", q["type"])
}

func TestGeminiResponseFormatRules(t *testing.T) {
	t.Run("attached without tools", func(t *testing.T) {
		var body map[string]any
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"{}"}]}}]}`))
		}))
		t.Cleanup(server.Close)

		backend := &geminiBackend{baseURL: server.URL, client: server.Client()}
		req := &Request{
			Model:          "gemini-test",
			APIKey:         "k",
			ResponseFormat: &ResponseFormat{Name: "out", Schema: map[string]any{"type": "object", "additionalProperties": false}},
		}
		_, err := backend.chat(context.Background(), req, []Message{{Role: RoleUser, Content: "q"}}, turnOptions{})
		require.NoError(t, err)

		genCfg := body["generationConfig"].(map[string]any)
		assert.Equal(t, "application/json", genCfg["responseMimeType"])
		schema := genCfg["responseSchema"].(map[string]any)
		assert.NotContains(t, schema, "additionalProperties")
	})

	t.Run("dropped with tools", func(t *testing.T) {
		var body map[string]any
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"ok"}]}}]}`))
		}))
		t.Cleanup(server.Close)

		backend := &geminiBackend{baseURL: server.URL, client: server.Client()}
		req := &Request{
			Model:          "gemini-test",
			APIKey:         "k",
			Tools:          []Tool{{ID: "lookup"}},
			ResponseFormat: &ResponseFormat{Name: "out", Schema: map[string]any{"type": "object"}},
		}
		_, err := backend.chat(context.Background(), req, []Message{{Role: RoleUser, Content: "q"}}, turnOptions{withTools: true})
		require.NoError(t, err)

		if genCfg, ok := body["generationConfig"].(map[string]any); ok {
			assert.NotContains(t, genCfg, "responseMimeType")
			assert.NotContains(t, genCfg, "responseSchema")
		}
	})
}

func TestGeminiChatParsesFunctionCalls(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"candidates":[{"content":{"role":"model","parts":[
				{"text":"let me check"},
				{"functionCall":{"name":"lookup","args":{"q":"x"}}}
			]},"finishReason":"STOP"}],
			"usageMetadata":{"promptTokenCount":7,"candidatesTokenCount":3,"totalTokenCount":10}
		}`))
	}))
	t.Cleanup(server.Close)

	backend := &geminiBackend{baseURL: server.URL, client: server.Client()}
	turn, err := backend.chat(context.Background(), &Request{Model: "gemini-test", APIKey: "k"},
		[]Message{{Role: RoleUser, Content: "q"}}, turnOptions{withTools: true})
	require.NoError(t, err)

	assert.Equal(t, "let me check", turn.content)
	require.Len(t, turn.toolCalls, 1)
	assert.Equal(t, "lookup", turn.toolCalls[0].Name)
	assert.JSONEq(t, `{"q":"x"}`, turn.toolCalls[0].Arguments)
	assert.NotEmpty(t, turn.toolCalls[0].ID)
	assert.Equal(t, 10, turn.usage.Total)
}

func TestGeminiUnexpectedToolCallContinues(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"partial"}]},"finishReason":"UNEXPECTED_TOOL_CALL"}]}`))
	}))
	t.Cleanup(server.Close)

	backend := &geminiBackend{baseURL: server.URL, client: server.Client()}
	turn, err := backend.chat(context.Background(), &Request{Model: "gemini-test", APIKey: "k"},
		[]Message{{Role: RoleUser, Content: "q"}}, turnOptions{})
	require.NoError(t, err)
	assert.Equal(t, "partial", turn.content)
}

func TestScanJSONObjects(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		wantObjs []string
		wantRest string
	}{
		{
			name:     "single object",
			in:       `[{"a":1}`,
			wantObjs: []string{`{"a":1}`},
			wantRest: "",
		},
		{
			name:     "two objects",
			in:       `[{"a":1},{"b":2}]`,
			wantObjs: []string{`{"a":1}`, `{"b":2}`},
			wantRest: "]",
		},
		{
			name:     "partial tail kept",
			in:       `[{"a":1},{"b":`,
			wantObjs: []string{`{"a":1}`},
			wantRest: `{"b":`,
		},
		{
			name:     "braces inside strings",
			in:       `[{"text":"a } b { c"}`,
			wantObjs: []string{`{"text":"a } b { c"}`},
			wantRest: "",
		},
		{
			name:     "escaped quotes inside strings",
			in:       `[{"text":"say \"}\" loudly"}`,
			wantObjs: []string{`{"text":"say \"}\" loudly"}`},
			wantRest: "",
		},
		{
			name:     "nested objects",
			in:       `[{"a":{"b":{"c":1}}}`,
			wantObjs: []string{`{"a":{"b":{"c":1}}}`},
			wantRest: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			objs, rest := scanJSONObjects([]byte(tt.in))
			var got []string
			for _, o := range objs {
				got = append(got, string(o))
			}
			assert.Equal(t, tt.wantObjs, got)
			assert.Equal(t, tt.wantRest, string(rest))
		})
	}
}

func TestGeminiStreamChat(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, ":streamGenerateContent")
		flusher := w.(http.Flusher)
		// Chunk boundaries deliberately do not align with object
		// boundaries.
		for _, piece := range []string{
			`[{"candidates":[{"content":{"parts":[{"te`,
			`xt":"Hel"}]}}]},{"candidates":[{"content":{"parts":[{"text":"lo"}]}}]`,
			`,"usageMetadata":{"promptTokenCount":3,"candidatesTokenCount":2,"totalTokenCount":5}}]`,
		} {
			_, _ = w.Write([]byte(piece))
			flusher.Flush()
		}
	}))
	t.Cleanup(server.Close)

	backend := &geminiBackend{baseURL: server.URL, client: server.Client()}
	events, err := backend.streamChat(context.Background(), &Request{Model: "gemini-test", APIKey: "k"},
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
}

func TestGeminiStreamFunctionCallClosesEarly(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"candidates":[{"content":{"parts":[{"text":"before"}]}}]},` +
			`{"candidates":[{"content":{"parts":[{"functionCall":{"name":"lookup","args":{}}}]}}]}]`))
	}))
	t.Cleanup(server.Close)

	backend := &geminiBackend{baseURL: server.URL, client: server.Client()}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	events, err := backend.streamChat(ctx, &Request{Model: "gemini-test", APIKey: "k"},
		[]Message{{Role: RoleUser, Content: "q"}}, turnOptions{})
	require.NoError(t, err)

	exec := &Response{Model: "gemini-test"}
	stream := newStreamingExecution(ctx, cancel, events, exec, newTimeTracker(), "gemini")

	data, err := io.ReadAll(stream.Stream)
	require.NoError(t, err)
	assert.Equal(t, "before", string(data))

	select {
	case <-stream.Done:
	case <-time.After(2 * time.Second):
		t.Fatal("stream did not close after function call")
	}
	assert.True(t, stream.FunctionCallSeen)
	assert.Equal(t, "before", exec.Content)
}

// Two-phase streaming: tools resolve over non-streaming calls, a probe
// confirms the model is done, then the final answer streams.
func TestGeminiTwoPhaseStreaming(t *testing.T) {
	var paths []string
	var probeBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		switch len(paths) {
		case 1:
			_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"functionCall":{"name":"lookup","args":{"q":"x"}}}]}}],"usageMetadata":{"promptTokenCount":5,"candidatesTokenCount":2,"totalTokenCount":7}}`))
		case 2:
			require.NoError(t, json.NewDecoder(r.Body).Decode(&probeBody))
			_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"probe done"}]}}]}`))
		default:
			_, _ = w.Write([]byte(`[{"candidates":[{"content":{"parts":[{"text":"final ans"}]}}],"usageMetadata":{"promptTokenCount":6,"candidatesTokenCount":3,"totalTokenCount":9}}]`))
		}
	}))
	t.Cleanup(server.Close)

	backend := &geminiBackend{baseURL: server.URL, client: server.Client()}
	executor := &echoExecutor{}
	result, err := newEngine(backend, executor).run(context.Background(), &Request{
		Model:    "gemini-test",
		APIKey:   "k",
		Messages: []Message{{Role: RoleUser, Content: "question"}},
		Tools:    []Tool{{ID: "lookup"}},
		Stream:   true,
	})
	require.NoError(t, err)
	require.NotNil(t, result.Stream)

	data, err := io.ReadAll(result.Stream.Stream)
	require.NoError(t, err)
	assert.Equal(t, "final ans", string(data))
	<-result.Stream.Done

	require.Len(t, paths, 3)
	assert.True(t, strings.HasSuffix(paths[0], ":generateContent"))
	assert.True(t, strings.HasSuffix(paths[1], ":generateContent"))
	assert.True(t, strings.HasSuffix(paths[2], ":streamGenerateContent"))

	// The probe carried the tool result back to the model.
	contents := probeBody["contents"].([]any)
	last := contents[len(contents)-1].(map[string]any)
	_, hasFunctionResponse := last["parts"].([]any)[0].(map[string]any)["functionResponse"]
	assert.True(t, hasFunctionResponse)

	assert.Equal(t, []string{"lookup"}, executor.executed)
	exec := result.Stream.Execution
	assert.Equal(t, "final ans", exec.Content)
	assert.Equal(t, 16, exec.Tokens.Total) // 7 tool round + 9 stream
	assert.Len(t, exec.ToolCalls, 1)
}
