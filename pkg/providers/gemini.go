package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

// geminiBackend speaks the generativelanguage.googleapis.com wire format:
// contents/parts bodies, function calls carried in parts, key auth in the
// query string. It cannot stream while tools are declared, so the engine
// resolves tools non-streaming and re-requests the final answer as a
// stream.
type geminiBackend struct {
	baseURL string
	client  *http.Client
}

func (b *geminiBackend) name() string             { return "gemini" }
func (b *geminiBackend) supportsToolChoice() bool { return false }
func (b *geminiBackend) streamsWithTools() bool   { return false }

type geminiRequest struct {
	Contents          []geminiContent   `json:"contents"`
	SystemInstruction *geminiContent    `json:"systemInstruction,omitempty"`
	GenerationConfig  *geminiGenConfig  `json:"generationConfig,omitempty"`
	Tools             []geminiToolGroup `json:"tools,omitempty"`
}

type geminiContent struct {
	Role  string           `json:"role,omitempty"`
	Parts []map[string]any `json:"parts"`
}

type geminiGenConfig struct {
	Temperature      *float64       `json:"temperature,omitempty"`
	MaxOutputTokens  *int           `json:"maxOutputTokens,omitempty"`
	ResponseMimeType string         `json:"responseMimeType,omitempty"`
	ResponseSchema   map[string]any `json:"responseSchema,omitempty"`
}

type geminiToolGroup struct {
	FunctionDeclarations []geminiFunctionDecl `json:"functionDeclarations"`
}

type geminiFunctionDecl struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Parameters  map[string]any `json:"parameters,omitempty"`
}

type geminiResponse struct {
	Candidates    []geminiCandidate `json:"candidates"`
	UsageMetadata *geminiUsage      `json:"usageMetadata"`
}

type geminiCandidate struct {
	Content      *geminiCandidateContent `json:"content"`
	FinishReason string                  `json:"finishReason"`
}

type geminiCandidateContent struct {
	Role  string       `json:"role"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text         string          `json:"text,omitempty"`
	FunctionCall *geminiFuncCall `json:"functionCall,omitempty"`
}

type geminiFuncCall struct {
	Name string         `json:"name"`
	Args map[string]any `json:"args"`
}

type geminiUsage struct {
	PromptTokenCount     int `json:"promptTokenCount"`
	CandidatesTokenCount int `json:"candidatesTokenCount"`
	TotalTokenCount      int `json:"totalTokenCount"`
}

func (b *geminiBackend) buildRequest(req *Request, msgs []Message, opts turnOptions) *geminiRequest {
	out := &geminiRequest{}

	var systemParts []string
	for _, m := range msgs {
		switch m.Role {
		case RoleSystem:
			systemParts = append(systemParts, m.Content)
		case RoleAssistant:
			var parts []map[string]any
			if m.Content != "" {
				parts = append(parts, map[string]any{"text": m.Content})
			}
			for _, tc := range m.ToolCalls {
				args := map[string]any{}
				if tc.Arguments != "" {
					_ = json.Unmarshal([]byte(tc.Arguments), &args)
				}
				parts = append(parts, map[string]any{
					"functionCall": map[string]any{"name": tc.Name, "args": args},
				})
			}
			out.Contents = append(out.Contents, geminiContent{Role: "model", Parts: parts})
		case RoleTool:
			out.Contents = append(out.Contents, geminiContent{
				Role: "user",
				Parts: []map[string]any{{
					"functionResponse": map[string]any{
						"name":     m.Name,
						"response": map[string]any{"content": m.Content},
					},
				}},
			})
		default:
			out.Contents = append(out.Contents, geminiContent{
				Role:  "user",
				Parts: []map[string]any{{"text": m.Content}},
			})
		}
	}
	if len(systemParts) > 0 {
		out.SystemInstruction = &geminiContent{
			Parts: []map[string]any{{"text": strings.Join(systemParts, "\n\n")}},
		}
	}

	if req.Temperature != nil || req.MaxTokens != nil {
		out.GenerationConfig = &geminiGenConfig{
			Temperature:     req.Temperature,
			MaxOutputTokens: req.MaxTokens,
		}
	}

	if opts.withTools {
		var decls []geminiFunctionDecl
		for _, t := range activeTools(req.Tools) {
			decls = append(decls, geminiFunctionDecl{
				Name:        t.ID,
				Description: t.Description,
				Parameters:  sanitiseGeminiSchema(t.Parameters),
			})
		}
		if len(decls) > 0 {
			out.Tools = []geminiToolGroup{{FunctionDeclarations: decls}}
		}
	}

	if req.ResponseFormat != nil {
		if opts.withTools {
			slog.Warn("Dropping response format: gemini forbids combining it with tools",
				"provider", b.name(), "format", req.ResponseFormat.Name)
		} else {
			if out.GenerationConfig == nil {
				out.GenerationConfig = &geminiGenConfig{}
			}
			out.GenerationConfig.ResponseMimeType = "application/json"
			out.GenerationConfig.ResponseSchema = sanitiseGeminiSchema(req.ResponseFormat.Schema)
		}
	}
	return out
}

// geminiRejectedKeywords are JSON-Schema keywords the backend rejects in
// function parameters and response schemas.
var geminiRejectedKeywords = map[string]bool{
	"additionalProperties": true,
	"$schema":              true,
	"$defs":                true,
	"definitions":          true,
}

// sanitiseGeminiSchema deep-copies a JSON schema with the rejected
// keywords removed at every nesting level.
func sanitiseGeminiSchema(schema map[string]any) map[string]any {
	if schema == nil {
		return nil
	}
	out := make(map[string]any, len(schema))
	for k, v := range schema {
		if geminiRejectedKeywords[k] {
			continue
		}
		out[k] = sanitiseGeminiValue(v)
	}
	return out
}

func sanitiseGeminiValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return sanitiseGeminiSchema(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = sanitiseGeminiValue(item)
		}
		return out
	default:
		return v
	}
}

func (b *geminiBackend) endpoint(model, apiKey, method string) string {
	return fmt.Sprintf("%s/v1beta/models/%s:%s?key=%s", b.baseURL, model, method, url.QueryEscape(apiKey))
}

func (b *geminiBackend) post(ctx context.Context, endpoint string, body *geminiRequest) (*http.Response, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

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

func (b *geminiBackend) chat(ctx context.Context, req *Request, msgs []Message, opts turnOptions) (*turn, error) {
	resp, err := b.post(ctx, b.endpoint(req.Model, req.APIKey, "generateContent"), b.buildRequest(req, msgs, opts))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var out geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if len(out.Candidates) == 0 {
		return nil, fmt.Errorf("response contained no candidates")
	}

	candidate := out.Candidates[0]
	if candidate.FinishReason == "UNEXPECTED_TOOL_CALL" {
		slog.Warn("Gemini reported an unexpected tool call; continuing with returned content",
			"provider", b.name(), "model", req.Model)
	}

	t := &turn{}
	if candidate.Content != nil {
		var text strings.Builder
		for _, part := range candidate.Content.Parts {
			if part.Text != "" {
				text.WriteString(part.Text)
			}
			if part.FunctionCall != nil {
				args, _ := json.Marshal(part.FunctionCall.Args)
				t.toolCalls = append(t.toolCalls, ToolCallRequest{
					ID:        uuid.NewString(),
					Name:      part.FunctionCall.Name,
					Arguments: string(args),
				})
			}
		}
		t.content = text.String()
	}
	if out.UsageMetadata != nil {
		t.usage = &TokenUsage{
			Prompt:     out.UsageMetadata.PromptTokenCount,
			Completion: out.UsageMetadata.CandidatesTokenCount,
			Total:      out.UsageMetadata.TotalTokenCount,
		}
	}
	return t, nil
}

// streamChat reads the progressive JSON array that streamGenerateContent
// returns and slices it into chunk objects with a brace-balanced scanner;
// Gemini does not frame chunks on line boundaries.
func (b *geminiBackend) streamChat(ctx context.Context, req *Request, msgs []Message, opts turnOptions) (<-chan streamEvent, error) {
	resp, err := b.post(ctx, b.endpoint(req.Model, req.APIKey, "streamGenerateContent"), b.buildRequest(req, msgs, opts))
	if err != nil {
		return nil, err
	}

	events := make(chan streamEvent, 16)
	go func() {
		defer close(events)
		defer resp.Body.Close()

		var pending []byte
		chunk := make([]byte, 2048)
		for {
			n, readErr := resp.Body.Read(chunk)
			if n > 0 {
				pending = append(pending, chunk[:n]...)
				objects, rest := scanJSONObjects(pending)
				for _, obj := range objects {
					var gr geminiResponse
					if err := json.Unmarshal(obj, &gr); err != nil {
						slog.Debug("Skipping undecodable gemini chunk", "error", err)
						continue
					}
					if !b.emitChunk(ctx, events, &gr) {
						return
					}
				}
				// The object slices alias pending, so compact only after
				// they are decoded.
				pending = append([]byte(nil), rest...)
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

// emitChunk translates one streamed response object into events. A
// function-call part ends the stream: content so far is final and the
// caller switches to a non-streaming follow-up.
func (b *geminiBackend) emitChunk(ctx context.Context, events chan<- streamEvent, gr *geminiResponse) bool {
	if gr.UsageMetadata != nil {
		usage := &TokenUsage{
			Prompt:     gr.UsageMetadata.PromptTokenCount,
			Completion: gr.UsageMetadata.CandidatesTokenCount,
			Total:      gr.UsageMetadata.TotalTokenCount,
		}
		if !sendEvent(ctx, events, streamEvent{usage: usage}) {
			return false
		}
	}
	for _, candidate := range gr.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part.FunctionCall != nil {
				sendEvent(ctx, events, streamEvent{functionCall: true})
				return false
			}
			if part.Text != "" {
				if !sendEvent(ctx, events, streamEvent{text: part.Text}) {
					return false
				}
			}
		}
	}
	return true
}

// scanJSONObjects extracts every complete top-level JSON object from buf
// and returns the unconsumed remainder. String literals and escape
// sequences are honoured so braces inside values never split an object.
func scanJSONObjects(buf []byte) (objects [][]byte, rest []byte) {
	depth := 0
	inString := false
	escaped := false
	start := -1
	consumed := 0

	for i := 0; i < len(buf); i++ {
		c := buf[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			if depth == 0 {
				start = i
			}
			depth++
		case '}':
			if depth > 0 {
				depth--
				if depth == 0 && start >= 0 {
					objects = append(objects, buf[start:i+1])
					start = -1
					consumed = i + 1
				}
			}
		}
	}

	if start >= 0 {
		return objects, buf[start:]
	}
	return objects, buf[consumed:]
}
