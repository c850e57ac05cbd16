package providers

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
)

// defaultAnthropicMaxTokens fills the required max_tokens field when the
// request leaves it unset.
const defaultAnthropicMaxTokens = 4096

// anthropicBackend speaks the /v1/messages wire format: content blocks
// instead of flat strings, x-api-key auth, typed SSE events.
type anthropicBackend struct {
	baseURL string
	version string
	client  *http.Client
}

func (b *anthropicBackend) name() string             { return "anthropic" }
func (b *anthropicBackend) supportsToolChoice() bool { return false }

type anthropicRequest struct {
	Model       string             `json:"model"`
	Messages    []anthropicMessage `json:"messages"`
	System      string             `json:"system,omitempty"`
	MaxTokens   int                `json:"max_tokens"`
	Temperature *float64           `json:"temperature,omitempty"`
	Stream      bool               `json:"stream,omitempty"`
	Tools       []anthropicTool    `json:"tools,omitempty"`
}

type anthropicMessage struct {
	Role    string             `json:"role"`
	Content []anthropicContent `json:"content"`
}

type anthropicContent struct {
	Type      string         `json:"type"`
	Text      string         `json:"text,omitempty"`
	ID        string         `json:"id,omitempty"`
	Name      string         `json:"name,omitempty"`
	Input     map[string]any `json:"input,omitempty"`
	ToolUseID string         `json:"tool_use_id,omitempty"`
	Content   string         `json:"content,omitempty"`
}

type anthropicTool struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	InputSchema map[string]any `json:"input_schema"`
}

type anthropicResponse struct {
	Content    []anthropicContent `json:"content"`
	Model      string             `json:"model"`
	StopReason string             `json:"stop_reason"`
	Usage      *anthropicUsage    `json:"usage"`
}

type anthropicUsage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}

type anthropicStreamFrame struct {
	Type  string `json:"type"`
	Index int    `json:"index"`
	Delta *struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"delta"`
	Message *struct {
		Usage *anthropicUsage `json:"usage"`
	} `json:"message"`
	Usage *anthropicUsage `json:"usage"`
}

func (b *anthropicBackend) buildRequest(req *Request, msgs []Message, opts turnOptions, stream bool) *anthropicRequest {
	out := &anthropicRequest{
		Model:       req.Model,
		Temperature: req.Temperature,
		MaxTokens:   defaultAnthropicMaxTokens,
		Stream:      stream,
	}
	if req.MaxTokens != nil {
		out.MaxTokens = *req.MaxTokens
	}

	var systemParts []string
	for _, m := range msgs {
		switch m.Role {
		case RoleSystem:
			systemParts = append(systemParts, m.Content)
		case RoleAssistant:
			var blocks []anthropicContent
			if m.Content != "" {
				blocks = append(blocks, anthropicContent{Type: "text", Text: m.Content})
			}
			for _, tc := range m.ToolCalls {
				input := map[string]any{}
				if tc.Arguments != "" {
					_ = json.Unmarshal([]byte(tc.Arguments), &input)
				}
				blocks = append(blocks, anthropicContent{
					Type:  "tool_use",
					ID:    tc.ID,
					Name:  tc.Name,
					Input: input,
				})
			}
			out.Messages = append(out.Messages, anthropicMessage{Role: "assistant", Content: blocks})
		case RoleTool:
			out.Messages = append(out.Messages, anthropicMessage{
				Role: "user",
				Content: []anthropicContent{{
					Type:      "tool_result",
					ToolUseID: m.ToolCallID,
					Content:   m.Content,
				}},
			})
		default:
			out.Messages = append(out.Messages, anthropicMessage{
				Role:    "user",
				Content: []anthropicContent{{Type: "text", Text: m.Content}},
			})
		}
	}
	if len(systemParts) > 0 {
		out.System = strings.Join(systemParts, "\n\n")
	}

	if opts.withTools && opts.toolChoice.mode != choiceNone {
		for _, t := range activeTools(req.Tools) {
			out.Tools = append(out.Tools, anthropicTool{
				Name:        t.ID,
				Description: t.Description,
				InputSchema: t.Parameters,
			})
		}
	}

	if req.ResponseFormat != nil {
		// The messages API has no schema-constrained output mode; keep the
		// behaviour observable instead of silently ignoring the field.
		slog.Warn("Dropping response format: not supported by the messages API",
			"provider", b.name(), "format", req.ResponseFormat.Name)
	}
	return out
}

func (b *anthropicBackend) post(ctx context.Context, apiKey string, body *anthropicRequest) (*http.Response, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, b.baseURL+"/v1/messages", bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", apiKey)
	httpReq.Header.Set("anthropic-version", b.version)

	resp, err := b.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		raw, _ := io.ReadAll(resp.Body)
		return nil, &apiError{status: resp.StatusCode, message: parseAPIError(raw)}
	}
	return resp, nil
}

func (b *anthropicBackend) chat(ctx context.Context, req *Request, msgs []Message, opts turnOptions) (*turn, error) {
	resp, err := b.post(ctx, req.APIKey, b.buildRequest(req, msgs, opts, false))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var out anthropicResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	t := &turn{}
	var text strings.Builder
	for _, block := range out.Content {
		switch block.Type {
		case "text":
			text.WriteString(block.Text)
		case "tool_use":
			args, _ := json.Marshal(block.Input)
			t.toolCalls = append(t.toolCalls, ToolCallRequest{
				ID:        block.ID,
				Name:      block.Name,
				Arguments: string(args),
			})
		}
	}
	t.content = text.String()
	if out.Usage != nil {
		t.usage = &TokenUsage{
			Prompt:     out.Usage.InputTokens,
			Completion: out.Usage.OutputTokens,
			Total:      out.Usage.InputTokens + out.Usage.OutputTokens,
		}
	}
	return t, nil
}

// streamChat decodes the typed SSE event stream: text arrives in
// content_block_delta frames, input tokens in message_start, output
// tokens in message_delta, and message_stop terminates the stream.
func (b *anthropicBackend) streamChat(ctx context.Context, req *Request, msgs []Message, opts turnOptions) (<-chan streamEvent, error) {
	resp, err := b.post(ctx, req.APIKey, b.buildRequest(req, msgs, opts, true))
	if err != nil {
		return nil, err
	}

	events := make(chan streamEvent, 16)
	go func() {
		defer close(events)
		defer resp.Body.Close()

		usage := TokenUsage{}
		reader := bufio.NewReader(resp.Body)
		for {
			line, readErr := reader.ReadBytes('\n')
			if len(line) > 0 {
				if stop := b.emitFrame(ctx, events, line, &usage); stop {
					return
				}
			}
			if readErr != nil {
				if readErr != io.EOF && ctx.Err() == nil {
					sendEvent(ctx, events, streamEvent{err: fmt.Errorf("failed to read stream: %w", readErr)})
					return
				}
				sendEvent(ctx, events, streamEvent{done: true})
				return
			}
		}
	}()
	return events, nil
}

func (b *anthropicBackend) emitFrame(ctx context.Context, events chan<- streamEvent, line []byte, usage *TokenUsage) bool {
	line = bytes.TrimSpace(line)
	if len(line) == 0 || !bytes.HasPrefix(line, []byte("data: ")) {
		return false
	}

	var frame anthropicStreamFrame
	if err := json.Unmarshal(bytes.TrimPrefix(line, []byte("data: ")), &frame); err != nil {
		return false
	}

	switch frame.Type {
	case "message_start":
		if frame.Message != nil && frame.Message.Usage != nil {
			usage.Prompt = frame.Message.Usage.InputTokens
		}
	case "content_block_delta":
		if frame.Delta != nil && frame.Delta.Text != "" {
			if !sendEvent(ctx, events, streamEvent{text: frame.Delta.Text}) {
				return true
			}
		}
	case "message_delta":
		if frame.Usage != nil {
			usage.Completion = frame.Usage.OutputTokens
		}
	case "message_stop":
		usage.Total = usage.Prompt + usage.Completion
		sendEvent(ctx, events, streamEvent{usage: &TokenUsage{
			Prompt:     usage.Prompt,
			Completion: usage.Completion,
			Total:      usage.Total,
		}})
		sendEvent(ctx, events, streamEvent{done: true})
		return true
	}
	return false
}
