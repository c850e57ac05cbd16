package providers

import (
	"context"
	"io"
	"time"
)

// Message roles shared by every backend.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)

// UsageControl governs whether a tool may, must, or must not be offered
// to the model.
type UsageControl string

const (
	UsageAuto  UsageControl = "auto"
	UsageForce UsageControl = "force"
	UsageNone  UsageControl = "none"
)

// Provider executes a normalised request against one LLM backend.
type Provider interface {
	ID() string
	Execute(ctx context.Context, req *Request) (*Result, error)
}

// Request is the backend-neutral input to a provider.
type Request struct {
	Model           string          `json:"model"`
	APIKey          string          `json:"apiKey,omitempty"`
	SystemPrompt    string          `json:"systemPrompt,omitempty"`
	Context         string          `json:"context,omitempty"`
	Messages        []Message       `json:"messages,omitempty"`
	Tools           []Tool          `json:"tools,omitempty"`
	ResponseFormat  *ResponseFormat `json:"responseFormat,omitempty"`
	Temperature     *float64        `json:"temperature,omitempty"`
	MaxTokens       *int            `json:"maxTokens,omitempty"`
	ReasoningEffort string          `json:"reasoningEffort,omitempty"`
	Verbosity       string          `json:"verbosity,omitempty"`
	Stream          bool            `json:"stream,omitempty"`
}

// Message is one turn of the conversation.
type Message struct {
	Role       string            `json:"role"`
	Content    string            `json:"content"`
	ToolCalls  []ToolCallRequest `json:"toolCalls,omitempty"`
	ToolCallID string            `json:"toolCallId,omitempty"`
	Name       string            `json:"name,omitempty"` // tool name on tool-result messages
}

// ToolCallRequest is the model's request to invoke a tool.
type ToolCallRequest struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Arguments string `json:"arguments"` // raw JSON
}

// Tool describes one callable tool offered to the model.
type Tool struct {
	ID           string         `json:"id"`
	Description  string         `json:"description,omitempty"`
	Parameters   map[string]any `json:"parameters,omitempty"`
	UsageControl UsageControl   `json:"usageControl,omitempty"`
}

// ResponseFormat requests schema-constrained JSON output. Backends that
// forbid combining it with tools drop it with a logged warning.
type ResponseFormat struct {
	Name   string         `json:"name"`
	Schema map[string]any `json:"schema"`
	Strict bool           `json:"strict,omitempty"`
}

// TokenUsage is the additive token count across every round-trip of a
// request.
type TokenUsage struct {
	Prompt     int `json:"prompt"`
	Completion int `json:"completion"`
	Total      int `json:"total"`
}

// ToolCallRecord is the telemetry record of one tool invocation, success
// or failure.
type ToolCallRecord struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments,omitempty"`
	StartTime time.Time      `json:"startTime"`
	EndTime   time.Time      `json:"endTime"`
	Duration  int64          `json:"duration"` // ms
	Result    any            `json:"result,omitempty"`
	Success   bool           `json:"success"`
	Error     string         `json:"error,omitempty"`
}

// Response is the non-streaming result of a provider execution.
type Response struct {
	Content     string           `json:"content"`
	Model       string           `json:"model"`
	Tokens      TokenUsage       `json:"tokens"`
	ToolCalls   []ToolCallRecord `json:"toolCalls,omitempty"`
	ToolResults []any            `json:"toolResults,omitempty"`
	Timing      *Timing          `json:"timing,omitempty"`
}

// StreamingExecution is the streaming result of a provider execution.
// Stream carries UTF-8 text deltas; closing it cancels the upstream
// request. Execution is filled progressively and is complete once Done
// is closed. FunctionCallSeen is valid only after Done closes.
type StreamingExecution struct {
	Stream           io.ReadCloser
	Execution        *Response
	Done             <-chan struct{}
	FunctionCallSeen bool
}

// Result holds exactly one of Response or Stream.
type Result struct {
	Response *Response           `json:"response,omitempty"`
	Stream   *StreamingExecution `json:"-"`
}
