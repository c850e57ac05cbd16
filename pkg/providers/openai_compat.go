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

// openaiCompatBackend speaks the OpenAI chat-completions wire format.
// openai, ollama, groq, cerebras and mistral differ only in the capability
// fields, not in code.
type openaiCompatBackend struct {
	id          string
	baseURL     string
	modelPrefix string // route prefix stripped from the model id, e.g. "groq/"
	toolChoice  bool   // explicit forced tool selection supported
	dedup       bool   // repeated tool-call signatures terminate the loop
	client      *http.Client
}

func (b *openaiCompatBackend) name() string             { return b.id }
func (b *openaiCompatBackend) supportsToolChoice() bool { return b.toolChoice }
func (b *openaiCompatBackend) dedupsToolCalls() bool    { return b.dedup }

type openaiRequest struct {
	Model           string                `json:"model"`
	Messages        []openaiMessage       `json:"messages"`
	Temperature     *float64              `json:"temperature,omitempty"`
	MaxTokens       *int                  `json:"max_tokens,omitempty"`
	Stream          bool                  `json:"stream,omitempty"`
	StreamOptions   *openaiStreamOptions  `json:"stream_options,omitempty"`
	Tools           []openaiTool          `json:"tools,omitempty"`
	ToolChoice      any                   `json:"tool_choice,omitempty"`
	ResponseFormat  *openaiResponseFormat `json:"response_format,omitempty"`
	ReasoningEffort string                `json:"reasoning_effort,omitempty"`
	Verbosity       string                `json:"verbosity,omitempty"`
}

type openaiStreamOptions struct {
	IncludeUsage bool `json:"include_usage"`
}

type openaiMessage struct {
	Role       string           `json:"role"`
	Content    string           `json:"content"`
	ToolCalls  []openaiToolCall `json:"tool_calls,omitempty"`
	ToolCallID string           `json:"tool_call_id,omitempty"`
}

type openaiToolCall struct {
	ID       string         `json:"id"`
	Type     string         `json:"type"`
	Function openaiFunction `json:"function"`
}

type openaiFunction struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

type openaiTool struct {
	Type     string             `json:"type"`
	Function openaiToolFunction `json:"function"`
}

type openaiToolFunction struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Parameters  map[string]any `json:"parameters,omitempty"`
}

type openaiResponseFormat struct {
	Type       string            `json:"type"`
	JSONSchema *openaiJSONSchema `json:"json_schema,omitempty"`
}

type openaiJSONSchema struct {
	Name   string         `json:"name"`
	Schema map[string]any `json:"schema"`
	Strict bool           `json:"strict"`
}

type openaiResponse struct {
	Choices []openaiChoice `json:"choices"`
	Usage   *openaiUsage   `json:"usage"`
}

type openaiChoice struct {
	Message      *openaiChoiceMessage `json:"message"`
	Delta        *openaiChoiceMessage `json:"delta"`
	FinishReason string               `json:"finish_reason"`
}

type openaiChoiceMessage struct {
	Content   string           `json:"content"`
	ToolCalls []openaiToolCall `json:"tool_calls"`
}

type openaiUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

func (b *openaiCompatBackend) buildRequest(req *Request, msgs []Message, opts turnOptions, stream bool) *openaiRequest {
	out := &openaiRequest{
		Model:           strings.TrimPrefix(req.Model, b.modelPrefix),
		Temperature:     req.Temperature,
		MaxTokens:       req.MaxTokens,
		ReasoningEffort: req.ReasoningEffort,
		Verbosity:       req.Verbosity,
	}

	for _, m := range msgs {
		om := openaiMessage{Role: m.Role, Content: m.Content, ToolCallID: m.ToolCallID}
		for _, tc := range m.ToolCalls {
			om.ToolCalls = append(om.ToolCalls, openaiToolCall{
				ID:   tc.ID,
				Type: "function",
				Function: openaiFunction{
					Name:      tc.Name,
					Arguments: tc.Arguments,
				},
			})
		}
		out.Messages = append(out.Messages, om)
	}

	if opts.withTools {
		for _, t := range activeTools(req.Tools) {
			out.Tools = append(out.Tools, openaiTool{
				Type: "function",
				Function: openaiToolFunction{
					Name:        t.ID,
					Description: t.Description,
					Parameters:  t.Parameters,
				},
			})
		}
		switch opts.toolChoice.mode {
		case choiceNone:
			out.ToolChoice = "none"
		case choiceForce:
			if b.toolChoice {
				out.ToolChoice = map[string]any{
					"type":     "function",
					"function": map[string]any{"name": opts.toolChoice.name},
				}
			} else {
				out.ToolChoice = "auto"
			}
		default:
			out.ToolChoice = "auto"
		}
	}

	if req.ResponseFormat != nil {
		if opts.withTools {
			slog.Warn("Dropping response format: cannot combine with tools",
				"provider", b.id, "format", req.ResponseFormat.Name)
		} else {
			out.ResponseFormat = &openaiResponseFormat{
				Type: "json_schema",
				JSONSchema: &openaiJSONSchema{
					Name:   req.ResponseFormat.Name,
					Schema: req.ResponseFormat.Schema,
					Strict: req.ResponseFormat.Strict,
				},
			}
		}
	}

	if stream {
		out.Stream = true
		out.StreamOptions = &openaiStreamOptions{IncludeUsage: true}
	}
	return out
}

// post issues the chat-completions call and returns the open response
// body. Non-2xx replies come back as an apiError.
func (b *openaiCompatBackend) post(ctx context.Context, apiKey string, body *openaiRequest) (*http.Response, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, b.baseURL+"/chat/completions", bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+apiKey)
	}

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

func (b *openaiCompatBackend) chat(ctx context.Context, req *Request, msgs []Message, opts turnOptions) (*turn, error) {
	resp, err := b.post(ctx, req.APIKey, b.buildRequest(req, msgs, opts, false))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var out openaiResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if len(out.Choices) == 0 || out.Choices[0].Message == nil {
		return nil, fmt.Errorf("response contained no choices")
	}

	msg := out.Choices[0].Message
	t := &turn{content: msg.Content}
	for _, tc := range msg.ToolCalls {
		t.toolCalls = append(t.toolCalls, ToolCallRequest{
			ID:        tc.ID,
			Name:      tc.Function.Name,
			Arguments: tc.Function.Arguments,
		})
	}
	if out.Usage != nil {
		t.usage = &TokenUsage{
			Prompt:     out.Usage.PromptTokens,
			Completion: out.Usage.CompletionTokens,
			Total:      out.Usage.TotalTokens,
		}
	}
	return t, nil
}

// streamChat issues the call with stream enabled and decodes the SSE body
// into stream events. Usage arrives only in the terminal chunk, requested
// via stream_options.include_usage.
func (b *openaiCompatBackend) streamChat(ctx context.Context, req *Request, msgs []Message, opts turnOptions) (<-chan streamEvent, error) {
	resp, err := b.post(ctx, req.APIKey, b.buildRequest(req, msgs, opts, true))
	if err != nil {
		return nil, err
	}

	events := make(chan streamEvent, 16)
	go func() {
		defer close(events)
		defer resp.Body.Close()

		reader := bufio.NewReader(resp.Body)
		for {
			line, err := reader.ReadBytes('\n')
			if len(line) > 0 {
				if text, usage, done := decodeSSELine(line); done {
					sendEvent(ctx, events, streamEvent{done: true})
					return
				} else if usage != nil {
					if !sendEvent(ctx, events, streamEvent{usage: usage}) {
						return
					}
				} else if text != "" {
					if !sendEvent(ctx, events, streamEvent{text: text}) {
						return
					}
				}
			}
			if err != nil {
				if err != io.EOF && ctx.Err() == nil {
					sendEvent(ctx, events, streamEvent{err: fmt.Errorf("failed to read stream: %w", err)})
					return
				}
				sendEvent(ctx, events, streamEvent{done: true})
				return
			}
		}
	}()
	return events, nil
}

// decodeSSELine parses one "data: {...}" line of a chat-completions
// stream.
func decodeSSELine(line []byte) (text string, usage *TokenUsage, done bool) {
	line = bytes.TrimSpace(line)
	if len(line) == 0 || !bytes.HasPrefix(line, []byte("data: ")) {
		return "", nil, false
	}
	payload := bytes.TrimPrefix(line, []byte("data: "))
	if bytes.Equal(payload, []byte("[DONE]")) {
		return "", nil, true
	}

	var chunk openaiResponse
	if err := json.Unmarshal(payload, &chunk); err != nil {
		return "", nil, false
	}
	if chunk.Usage != nil {
		return "", &TokenUsage{
			Prompt:     chunk.Usage.PromptTokens,
			Completion: chunk.Usage.CompletionTokens,
			Total:      chunk.Usage.TotalTokens,
		}, false
	}
	if len(chunk.Choices) > 0 && chunk.Choices[0].Delta != nil {
		return chunk.Choices[0].Delta.Content, nil, false
	}
	return "", nil, false
}
