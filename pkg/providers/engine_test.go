package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weft-labs/weft/pkg/tools"
)

// ============================================================================
// Scripted backend
// ============================================================================

// recordedCall captures one backend invocation for assertions.
type recordedCall struct {
	msgs      []Message
	opts      turnOptions
	streaming bool
}

// scriptedBackend replays canned turns and stream scripts while recording
// every invocation.
type scriptedBackend struct {
	id          string
	choice      bool
	dedup       bool
	streamTools bool

	turns        []*turn
	turnErrs     []error
	streamScript []streamEvent
	streamStall  bool // keep the stream open after the script until cancelled

	calls []recordedCall
}

func (s *scriptedBackend) name() string             { return s.id }
func (s *scriptedBackend) supportsToolChoice() bool { return s.choice }
func (s *scriptedBackend) dedupsToolCalls() bool    { return s.dedup }
func (s *scriptedBackend) streamsWithTools() bool   { return s.streamTools }

func (s *scriptedBackend) chat(_ context.Context, _ *Request, msgs []Message, opts turnOptions) (*turn, error) {
	idx := 0
	for _, c := range s.calls {
		if !c.streaming {
			idx++
		}
	}
	s.calls = append(s.calls, recordedCall{msgs: append([]Message(nil), msgs...), opts: opts})
	if idx < len(s.turnErrs) && s.turnErrs[idx] != nil {
		return nil, s.turnErrs[idx]
	}
	if idx >= len(s.turns) {
		panic("scripted backend exhausted")
	}
	return s.turns[idx], nil
}

func (s *scriptedBackend) streamChat(ctx context.Context, _ *Request, msgs []Message, opts turnOptions) (<-chan streamEvent, error) {
	s.calls = append(s.calls, recordedCall{msgs: append([]Message(nil), msgs...), opts: opts, streaming: true})
	events := make(chan streamEvent, len(s.streamScript)+1)
	go func() {
		defer close(events)
		for _, ev := range s.streamScript {
			if !sendEvent(ctx, events, ev) {
				return
			}
		}
		if s.streamStall {
			<-ctx.Done()
		}
	}()
	return events, nil
}

// echoExecutor returns a deterministic payload per tool; failTools fail.
type echoExecutor struct {
	failTools map[string]bool
	executed  []string
}

func (e *echoExecutor) Execute(_ context.Context, name string, params map[string]any) (*tools.ToolResult, error) {
	e.executed = append(e.executed, name)
	if e.failTools[name] {
		return &tools.ToolResult{Success: false, Error: "boom"}, nil
	}
	return &tools.ToolResult{Success: true, Output: map[string]any{"tool": name, "params": params}}, nil
}

func toolCall(id, name, args string) ToolCallRequest {
	return ToolCallRequest{ID: id, Name: name, Arguments: args}
}

func usage(p, c int) *TokenUsage {
	return &TokenUsage{Prompt: p, Completion: c, Total: p + c}
}

// ============================================================================
// Loop semantics
// ============================================================================

func TestEngineMultiToolRoundTrip(t *testing.T) {
	backend := &scriptedBackend{
		id:     "openai",
		choice: true,
		turns: []*turn{
			{toolCalls: []ToolCallRequest{
				toolCall("c1", "get_weather", `{"city":"Oslo"}`),
				toolCall("c2", "get_time", `{"zone":"CET"}`),
			}, usage: usage(10, 5)},
			{content: "Sunny at noon.", usage: usage(20, 7)},
		},
	}
	executor := &echoExecutor{}

	result, err := newEngine(backend, executor).run(context.Background(), &Request{
		Model:        "gpt-test",
		SystemPrompt: "Be brief.",
		Messages:     []Message{{Role: RoleUser, Content: "Weather and time?"}},
		Tools: []Tool{
			{ID: "get_weather", Description: "weather"},
			{ID: "get_time", Description: "time"},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, result.Response)

	resp := result.Response
	assert.Equal(t, "Sunny at noon.", resp.Content)
	assert.Equal(t, []string{"get_weather", "get_time"}, executor.executed)
	require.Len(t, resp.ToolCalls, 2)
	assert.True(t, resp.ToolCalls[0].Success)
	assert.Len(t, resp.ToolResults, 2)

	// Token usage is additive across both round-trips.
	assert.Equal(t, 30, resp.Tokens.Prompt)
	assert.Equal(t, 12, resp.Tokens.Completion)
	assert.Equal(t, 42, resp.Tokens.Total)

	// Second call must carry the assistant turn plus one tool message per
	// call, after system + user.
	require.Len(t, backend.calls, 2)
	msgs := backend.calls[1].msgs
	require.Len(t, msgs, 5)
	assert.Equal(t, RoleSystem, msgs[0].Role)
	assert.Equal(t, RoleUser, msgs[1].Role)
	assert.Equal(t, RoleAssistant, msgs[2].Role)
	require.Len(t, msgs[2].ToolCalls, 2)
	assert.Equal(t, RoleTool, msgs[3].Role)
	assert.Equal(t, "c1", msgs[3].ToolCallID)
	assert.Equal(t, RoleTool, msgs[4].Role)

	timing := resp.Timing
	require.NotNil(t, timing)
	assert.Equal(t, 2, timing.Iterations)
	assert.Len(t, timing.TimeSegments, 4) // model, tool, tool, model
}

func TestEngineForcedToolSequencing(t *testing.T) {
	backend := &scriptedBackend{
		id:     "openai",
		choice: true,
		turns: []*turn{
			{toolCalls: []ToolCallRequest{toolCall("c1", "alpha", `{}`)}},
			{toolCalls: []ToolCallRequest{toolCall("c2", "beta", `{}`)}},
			{content: "done"},
		},
	}

	result, err := newEngine(backend, &echoExecutor{}).run(context.Background(), &Request{
		Model:    "gpt-test",
		Messages: []Message{{Role: RoleUser, Content: "go"}},
		Tools: []Tool{
			{ID: "alpha", UsageControl: UsageForce},
			{ID: "beta", UsageControl: UsageForce},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "done", result.Response.Content)

	require.Len(t, backend.calls, 3)
	assert.Equal(t, choiceForce, backend.calls[0].opts.toolChoice.mode)
	assert.Equal(t, "alpha", backend.calls[0].opts.toolChoice.name)
	assert.Equal(t, choiceForce, backend.calls[1].opts.toolChoice.mode)
	assert.Equal(t, "beta", backend.calls[1].opts.toolChoice.name)
	// Every forced tool fired: the choice is auto from here on.
	assert.Equal(t, choiceAuto, backend.calls[2].opts.toolChoice.mode)
}

func TestEngineForcedCoercedWithoutSupport(t *testing.T) {
	backend := &scriptedBackend{
		id: "groq",
		turns: []*turn{
			{toolCalls: []ToolCallRequest{toolCall("c1", "alpha", `{}`)}},
			{content: "done"},
		},
	}

	_, err := newEngine(backend, &echoExecutor{}).run(context.Background(), &Request{
		Model:    "groq/llama",
		Messages: []Message{{Role: RoleUser, Content: "go"}},
		Tools:    []Tool{{ID: "alpha", UsageControl: UsageForce}},
	})
	require.NoError(t, err)
	for _, c := range backend.calls {
		assert.Equal(t, choiceAuto, c.opts.toolChoice.mode)
	}
}

func TestEngineIterationBound(t *testing.T) {
	var turns []*turn
	for i := 0; i < maxIterations+5; i++ {
		turns = append(turns, &turn{
			content:   fmt.Sprintf("thinking %d", i),
			toolCalls: []ToolCallRequest{toolCall(fmt.Sprintf("c%d", i), "probe", fmt.Sprintf(`{"round":%d}`, i))},
		})
	}
	backend := &scriptedBackend{id: "openai", choice: true, turns: turns}

	result, err := newEngine(backend, &echoExecutor{}).run(context.Background(), &Request{
		Model:    "gpt-test",
		Messages: []Message{{Role: RoleUser, Content: "loop"}},
		Tools:    []Tool{{ID: "probe"}},
	})
	require.NoError(t, err)
	assert.Len(t, backend.calls, maxIterations)
	assert.Equal(t, fmt.Sprintf("thinking %d", maxIterations-1), result.Response.Content)
	assert.Equal(t, maxIterations, result.Response.Timing.Iterations)
}

func TestEngineDuplicateSuppression(t *testing.T) {
	backend := &scriptedBackend{
		id:    "cerebras",
		dedup: true,
		turns: []*turn{
			{toolCalls: []ToolCallRequest{toolCall("c1", "lookup", `{"q":"x"}`)}},
			{toolCalls: []ToolCallRequest{toolCall("c2", "lookup", `{"q":"x"}`)}},
			{content: "final answer"},
		},
	}
	executor := &echoExecutor{}

	result, err := newEngine(backend, executor).run(context.Background(), &Request{
		Model:    "cerebras/llama",
		Messages: []Message{{Role: RoleUser, Content: "go"}},
		Tools:    []Tool{{ID: "lookup"}},
	})
	require.NoError(t, err)

	// The repeated signature is executed once; the follow-up turn is forced
	// tool-free and ends the loop.
	assert.Equal(t, []string{"lookup"}, executor.executed)
	require.Len(t, backend.calls, 3)
	assert.Equal(t, choiceNone, backend.calls[2].opts.toolChoice.mode)
	assert.Equal(t, "final answer", result.Response.Content)
}

func TestEngineToolFailureIsolation(t *testing.T) {
	backend := &scriptedBackend{
		id:     "openai",
		choice: true,
		turns: []*turn{
			{toolCalls: []ToolCallRequest{
				toolCall("c1", "broken", `{}`),
				toolCall("c2", "working", `{}`),
			}},
			{content: "recovered"},
		},
	}
	executor := &echoExecutor{failTools: map[string]bool{"broken": true}}

	result, err := newEngine(backend, executor).run(context.Background(), &Request{
		Model:    "gpt-test",
		Messages: []Message{{Role: RoleUser, Content: "go"}},
		Tools:    []Tool{{ID: "broken"}, {ID: "working"}},
	})
	require.NoError(t, err)

	resp := result.Response
	require.Len(t, resp.ToolCalls, 2)
	assert.False(t, resp.ToolCalls[0].Success)
	assert.Equal(t, "boom", resp.ToolCalls[0].Error)
	assert.True(t, resp.ToolCalls[1].Success)
	// Only the successful output lands in ToolResults.
	assert.Len(t, resp.ToolResults, 1)

	// The model sees the failure as a structured error payload.
	msgs := backend.calls[1].msgs
	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(msgs[len(msgs)-2].Content), &payload))
	assert.Equal(t, true, payload["error"])
	assert.Equal(t, "broken", payload["tool"])
}

func TestEngineDropsDisabledTools(t *testing.T) {
	backend := &scriptedBackend{
		id:     "openai",
		choice: true,
		turns:  []*turn{{content: "plain"}},
	}

	_, err := newEngine(backend, &echoExecutor{}).run(context.Background(), &Request{
		Model:    "gpt-test",
		Messages: []Message{{Role: RoleUser, Content: "go"}},
		Tools:    []Tool{{ID: "hidden", UsageControl: UsageNone}},
	})
	require.NoError(t, err)
	require.Len(t, backend.calls, 1)
	assert.False(t, backend.calls[0].opts.withTools)
}

func TestEngineStripsFencedContent(t *testing.T) {
	backend := &scriptedBackend{
		id:     "openai",
		choice: true,
		turns:  []*turn{{content: "```json\n{\"ok\":true}\n```"}},
	}

	result, err := newEngine(backend, nil).run(context.Background(), &Request{
		Model:    "gpt-test",
		Messages: []Message{{Role: RoleUser, Content: "go"}},
	})
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, result.Response.Content)
}

func TestEngineFailureCarriesTiming(t *testing.T) {
	backend := &scriptedBackend{
		id:       "openai",
		choice:   true,
		turnErrs: []error{&apiError{status: 401, message: "bad key"}},
	}

	_, err := newEngine(backend, nil).run(context.Background(), &Request{
		Model:    "gpt-test",
		Messages: []Message{{Role: RoleUser, Content: "go"}},
	})
	var failure *ProviderFailure
	require.ErrorAs(t, err, &failure)
	assert.Equal(t, "openai", failure.Provider)
	assert.Equal(t, 401, failure.StatusCode)
	require.NotNil(t, failure.Timing)
	assert.Len(t, failure.Timing.TimeSegments, 1)
}

// ============================================================================
// Streaming paths
// ============================================================================

func TestEngineStreamsDirectlyWithoutTools(t *testing.T) {
	backend := &scriptedBackend{
		id:     "openai",
		choice: true,
		streamScript: []streamEvent{
			{text: "Hello "},
			{text: "world"},
			{usage: usage(5, 2)},
			{done: true},
		},
	}

	result, err := newEngine(backend, nil).run(context.Background(), &Request{
		Model:    "gpt-test",
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
		Stream:   true,
	})
	require.NoError(t, err)
	require.NotNil(t, result.Stream)

	data, err := io.ReadAll(result.Stream.Stream)
	require.NoError(t, err)
	assert.Equal(t, "Hello world", string(data))

	<-result.Stream.Done
	exec := result.Stream.Execution
	assert.Equal(t, "Hello world", exec.Content)
	assert.Equal(t, 7, exec.Tokens.Total)
	require.NotNil(t, exec.Timing)
	assert.Equal(t, 1, exec.Timing.Iterations)

	require.Len(t, backend.calls, 1)
	assert.True(t, backend.calls[0].streaming)
}

func TestEngineStreamsFinalAnswerAfterTools(t *testing.T) {
	backend := &scriptedBackend{
		id:          "openai",
		choice:      true,
		streamTools: true,
		turns: []*turn{
			{toolCalls: []ToolCallRequest{toolCall("c1", "lookup", `{}`)}, usage: usage(10, 3)},
			{content: "ignored probe"},
		},
		streamScript: []streamEvent{
			{text: "final"},
			{usage: usage(15, 4)},
			{done: true},
		},
	}
	executor := &echoExecutor{}

	result, err := newEngine(backend, executor).run(context.Background(), &Request{
		Model:    "gpt-test",
		Messages: []Message{{Role: RoleUser, Content: "go"}},
		Tools:    []Tool{{ID: "lookup", UsageControl: UsageForce}},
		Stream:   true,
	})
	require.NoError(t, err)
	require.NotNil(t, result.Stream)

	data, err := io.ReadAll(result.Stream.Stream)
	require.NoError(t, err)
	assert.Equal(t, "final", string(data))
	<-result.Stream.Done

	// Non-streaming probe resolved the tools, then the final call streamed
	// with tool_choice back at auto.
	require.Len(t, backend.calls, 3)
	assert.False(t, backend.calls[0].streaming)
	assert.False(t, backend.calls[1].streaming)
	require.True(t, backend.calls[2].streaming)
	assert.True(t, backend.calls[2].opts.withTools)
	assert.Equal(t, choiceAuto, backend.calls[2].opts.toolChoice.mode)

	exec := result.Stream.Execution
	assert.Equal(t, "final", exec.Content)
	assert.Equal(t, []string{"lookup"}, executor.executed)
	assert.Len(t, exec.ToolCalls, 1)
	// 10+3 from the tool round, unknown probe usage, 15+4 from the stream.
	assert.Equal(t, 32, exec.Tokens.Total)
}

func TestEngineStreamDropsToolsWhenBackendCannot(t *testing.T) {
	backend := &scriptedBackend{
		id: "gemini",
		turns: []*turn{
			{toolCalls: []ToolCallRequest{toolCall("c1", "lookup", `{}`)}},
			{content: "probe says done"},
		},
		streamScript: []streamEvent{{text: "streamed"}, {done: true}},
	}

	result, err := newEngine(backend, &echoExecutor{}).run(context.Background(), &Request{
		Model:    "gemini-test",
		Messages: []Message{{Role: RoleUser, Content: "go"}},
		Tools:    []Tool{{ID: "lookup"}},
		Stream:   true,
	})
	require.NoError(t, err)

	data, err := io.ReadAll(result.Stream.Stream)
	require.NoError(t, err)
	assert.Equal(t, "streamed", string(data))
	<-result.Stream.Done

	final := backend.calls[len(backend.calls)-1]
	require.True(t, final.streaming)
	assert.False(t, final.opts.withTools)
}

func TestEngineStreamRequestedButNoToolCalls(t *testing.T) {
	// Tools offered, model answers directly: the already-complete response
	// is returned instead of a redundant streaming round-trip.
	backend := &scriptedBackend{
		id:     "openai",
		choice: true,
		turns:  []*turn{{content: "direct answer"}},
	}

	result, err := newEngine(backend, &echoExecutor{}).run(context.Background(), &Request{
		Model:    "gpt-test",
		Messages: []Message{{Role: RoleUser, Content: "go"}},
		Tools:    []Tool{{ID: "lookup"}},
		Stream:   true,
	})
	require.NoError(t, err)
	assert.Nil(t, result.Stream)
	require.NotNil(t, result.Response)
	assert.Equal(t, "direct answer", result.Response.Content)
}

func TestEngineStreamCloseCancelsUpstream(t *testing.T) {
	backend := &scriptedBackend{
		id:          "openai",
		choice:      true,
		streamStall: true,
		streamScript: []streamEvent{
			{text: "partial"},
			// No done event: the script stalls until cancellation.
		},
	}

	result, err := newEngine(backend, nil).run(context.Background(), &Request{
		Model:    "gpt-test",
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
		Stream:   true,
	})
	require.NoError(t, err)

	buf := make([]byte, 16)
	n, err := result.Stream.Stream.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, "partial", string(buf[:n]))

	require.NoError(t, result.Stream.Stream.Close())
	select {
	case <-result.Stream.Done:
	case <-time.After(2 * time.Second):
		t.Fatal("stream did not finalise after Close")
	}
	assert.Equal(t, "partial", result.Stream.Execution.Content)
}

func TestEngineStreamStartFailure(t *testing.T) {
	backend := &failingStreamBackend{scriptedBackend{id: "openai", choice: true}}

	_, err := newEngine(backend, nil).run(context.Background(), &Request{
		Model:    "gpt-test",
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
		Stream:   true,
	})
	var failure *ProviderFailure
	require.ErrorAs(t, err, &failure)
	assert.Equal(t, 503, failure.StatusCode)
}

type failingStreamBackend struct{ scriptedBackend }

func (f *failingStreamBackend) streamChat(context.Context, *Request, []Message, turnOptions) (<-chan streamEvent, error) {
	return nil, &apiError{status: 503, message: "unavailable"}
}

// ============================================================================
// Helpers
// ============================================================================

func TestStripFencedJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"no fence", "plain text", "plain text"},
		{"unterminated fence", "```json\n{\"a\":1}", "```json\n{\"a\":1}"},
		{"fence mid-text", "see ```json\n{}\n``` above", "see ```json\n{}\n``` above"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripFencedJSON(tt.in))
		})
	}
}

func TestAssembleMessages(t *testing.T) {
	msgs := assembleMessages(&Request{
		SystemPrompt: "sys",
		Context:      "ctx",
		Messages:     []Message{{Role: RoleUser, Content: "q"}},
	})
	require.Len(t, msgs, 3)
	assert.Equal(t, RoleSystem, msgs[0].Role)
	assert.Equal(t, "ctx", msgs[1].Content)
	assert.Equal(t, RoleUser, msgs[1].Role)
	assert.Equal(t, "q", msgs[2].Content)
}

func TestEngineNilExecutorFeedsErrorBack(t *testing.T) {
	backend := &scriptedBackend{
		id:     "openai",
		choice: true,
		turns: []*turn{
			{toolCalls: []ToolCallRequest{toolCall("c1", "lookup", `{}`)}},
			{content: "done"},
		},
	}

	result, err := newEngine(backend, nil).run(context.Background(), &Request{
		Model:    "gpt-test",
		Messages: []Message{{Role: RoleUser, Content: "go"}},
		Tools:    []Tool{{ID: "lookup"}},
	})
	require.NoError(t, err)
	require.Len(t, result.Response.ToolCalls, 1)
	assert.False(t, result.Response.ToolCalls[0].Success)
	assert.Contains(t, result.Response.ToolCalls[0].Error, "no tool executor")
}
