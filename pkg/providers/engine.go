package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/weft-labs/weft/pkg/tools"
)

// maxIterations bounds the tool-calling loop. Hitting the bound returns
// the last model content without an error.
const maxIterations = 10

// chatBackend is the wire-level surface each adapter implements. The loop
// engine drives every backend through this interface.
type chatBackend interface {
	name() string
	supportsToolChoice() bool
	chat(ctx context.Context, req *Request, msgs []Message, opts turnOptions) (*turn, error)
	streamChat(ctx context.Context, req *Request, msgs []Message, opts turnOptions) (<-chan streamEvent, error)
}

// signatureDeduper marks backends that repeat identical tool calls; the
// engine suppresses re-execution and terminates the loop for them.
type signatureDeduper interface {
	dedupsToolCalls() bool
}

// streamToolLimited marks backends that cannot stream while tools are
// declared on the request.
type streamToolLimited interface {
	streamsWithTools() bool
}

type toolChoiceMode int

const (
	choiceAuto toolChoiceMode = iota
	choiceNone
	choiceForce
)

// toolChoice is the engine's per-turn tool selection directive. The zero
// value is auto.
type toolChoice struct {
	mode toolChoiceMode
	name string
}

func forcedChoice(name string) toolChoice {
	return toolChoice{mode: choiceForce, name: name}
}

// turnOptions select what one backend call may do with tools.
type turnOptions struct {
	withTools  bool
	toolChoice toolChoice
}

// turn is one non-streaming model response.
type turn struct {
	content   string
	toolCalls []ToolCallRequest
	usage     *TokenUsage
}

// streamEvent is one normalised event from a streaming backend call.
type streamEvent struct {
	text         string
	usage        *TokenUsage
	functionCall bool
	err          error
	done         bool
}

// engine drives the multi-round tool-calling loop for one request.
type engine struct {
	backend  chatBackend
	executor tools.Executor
	logger   *slog.Logger
}

func newEngine(backend chatBackend, executor tools.Executor) *engine {
	return &engine{
		backend:  backend,
		executor: executor,
		logger:   slog.With("component", "providers", "provider", backend.name()),
	}
}

func (e *engine) run(ctx context.Context, req *Request) (*Result, error) {
	tracker := newTimeTracker()
	msgs := assembleMessages(req)
	active := activeTools(req.Tools)
	forced := forcedToolNames(active)
	forcedSet := forcedNames(forced)
	usedForced := make(map[string]bool)
	seenSignatures := make(map[string]bool)

	dedup := false
	if d, ok := e.backend.(signatureDeduper); ok {
		dedup = d.dedupsToolCalls()
	}

	// No tools to resolve: stream directly when asked to.
	if req.Stream && len(active) == 0 {
		return e.startStream(ctx, req, msgs, turnOptions{}, &Response{Model: req.Model}, tracker)
	}

	response := &Response{Model: req.Model}
	toolIterations := 0
	forceNoneNext := false

	for iteration := 0; iteration < maxIterations; iteration++ {
		opts := turnOptions{withTools: len(active) > 0}
		switch {
		case forceNoneNext:
			opts.toolChoice = toolChoice{mode: choiceNone}
		case e.backend.supportsToolChoice():
			if name, ok := nextForcedTool(forced, usedForced); ok {
				opts.toolChoice = forcedChoice(name)
			}
		}

		seg := tracker.begin(segmentModel, e.backend.name())
		t, err := e.backend.chat(ctx, req, msgs, opts)
		tracker.finish(seg)
		tracker.addIteration()
		if err != nil {
			return nil, e.failure(err, tracker)
		}

		mergeUsage(&response.Tokens, t.usage)
		response.Content = stripFencedJSON(t.content)

		if len(t.toolCalls) == 0 || forceNoneNext {
			break
		}

		// The assistant turn carries every call the model made, executed
		// or not, so backends see a coherent transcript.
		msgs = append(msgs, Message{
			Role:      RoleAssistant,
			Content:   t.content,
			ToolCalls: t.toolCalls,
		})

		repeated := false
		for _, call := range t.toolCalls {
			if forcedSet[call.Name] {
				usedForced[call.Name] = true
			}
			if dedup {
				sig := call.Name + "-" + call.Arguments
				if seenSignatures[sig] {
					e.logger.Debug("Suppressing repeated tool call", "tool", call.Name)
					repeated = true
					continue
				}
				seenSignatures[sig] = true
			}
			record, msg := e.invokeTool(ctx, call, tracker)
			response.ToolCalls = append(response.ToolCalls, record)
			if record.Success {
				response.ToolResults = append(response.ToolResults, record.Result)
			}
			msgs = append(msgs, msg)
		}
		toolIterations++

		if repeated {
			forceNoneNext = true
		}
	}

	// Resolve tools first, then stream the final answer. tool_choice stays
	// auto so forced tools do not re-fire on the final call.
	if req.Stream && toolIterations > 0 {
		opts := turnOptions{}
		if backendStreamsWithTools(e.backend) && len(active) > 0 {
			opts.withTools = true
		}
		return e.startStream(ctx, req, msgs, opts, response, tracker)
	}

	response.Timing = tracker.build()
	return &Result{Response: response}, nil
}

// startStream issues one streaming backend call and hands the event
// channel to the normaliser.
func (e *engine) startStream(ctx context.Context, req *Request, msgs []Message, opts turnOptions, exec *Response, tracker *timeTracker) (*Result, error) {
	streamCtx, cancel := context.WithCancel(ctx)
	events, err := e.backend.streamChat(streamCtx, req, msgs, opts)
	if err != nil {
		cancel()
		return nil, e.failure(err, tracker)
	}
	return &Result{Stream: newStreamingExecution(streamCtx, cancel, events, exec, tracker, e.backend.name())}, nil
}

// invokeTool executes one tool call, records its telemetry and builds the
// tool message fed back to the model. Failures are isolated: the model
// sees an error payload and the loop continues.
func (e *engine) invokeTool(ctx context.Context, call ToolCallRequest, tracker *timeTracker) (ToolCallRecord, Message) {
	params := make(map[string]any)
	var failure string
	if call.Arguments != "" {
		if err := json.Unmarshal([]byte(call.Arguments), &params); err != nil {
			failure = fmt.Sprintf("invalid tool arguments: %v", err)
		}
	}

	seg := tracker.begin(segmentTool, call.Name)
	var output any
	if failure == "" {
		switch {
		case e.executor == nil:
			failure = "no tool executor configured"
		default:
			result, err := e.executor.Execute(ctx, call.Name, params)
			switch {
			case err != nil:
				failure = err.Error()
			case !result.Success:
				failure = result.Error
			default:
				output = result.Output
			}
		}
	}
	tracker.finish(seg)

	record := ToolCallRecord{
		Name:      call.Name,
		Arguments: params,
		StartTime: seg.StartTime,
		EndTime:   seg.EndTime,
		Duration:  seg.Duration,
		Result:    output,
		Success:   failure == "",
		Error:     failure,
	}

	var content string
	if failure != "" {
		e.logger.Warn("Tool execution failed", "tool", call.Name, "error", failure)
		content = marshalToolPayload(map[string]any{
			"error":   true,
			"message": failure,
			"tool":    call.Name,
		})
	} else {
		content = marshalToolPayload(output)
	}

	return record, Message{
		Role:       RoleTool,
		Content:    content,
		ToolCallID: call.ID,
		Name:       call.Name,
	}
}

func (e *engine) failure(err error, tracker *timeTracker) error {
	return &ProviderFailure{
		Provider:   e.backend.name(),
		StatusCode: statusCodeOf(err),
		Message:    err.Error(),
		Timing:     tracker.build(),
		Err:        err,
	}
}

// assembleMessages builds the conversation in contract order: system
// prompt, context, then the request messages.
func assembleMessages(req *Request) []Message {
	msgs := make([]Message, 0, len(req.Messages)+2)
	if req.SystemPrompt != "" {
		msgs = append(msgs, Message{Role: RoleSystem, Content: req.SystemPrompt})
	}
	if req.Context != "" {
		msgs = append(msgs, Message{Role: RoleUser, Content: req.Context})
	}
	return append(msgs, req.Messages...)
}

// activeTools drops tools whose usage control is none.
func activeTools(all []Tool) []Tool {
	var out []Tool
	for _, t := range all {
		if t.UsageControl != UsageNone {
			out = append(out, t)
		}
	}
	return out
}

func forcedToolNames(all []Tool) []string {
	var out []string
	for _, t := range all {
		if t.UsageControl == UsageForce {
			out = append(out, t.ID)
		}
	}
	return out
}

func forcedNames(forced []string) map[string]bool {
	set := make(map[string]bool, len(forced))
	for _, name := range forced {
		set[name] = true
	}
	return set
}

// nextForcedTool returns the first forced tool the model has not invoked
// yet. Once every forced tool fired the choice stays auto.
func nextForcedTool(forced []string, used map[string]bool) (string, bool) {
	for _, name := range forced {
		if !used[name] {
			return name, true
		}
	}
	return "", false
}

func backendStreamsWithTools(b chatBackend) bool {
	if l, ok := b.(streamToolLimited); ok {
		return l.streamsWithTools()
	}
	return true
}

func mergeUsage(total *TokenUsage, u *TokenUsage) {
	if u == nil {
		return
	}
	total.Prompt += u.Prompt
	total.Completion += u.Completion
	total.Total += u.Total
}

// stripFencedJSON removes surrounding ```json fences the model sometimes
// wraps structured output in.
func stripFencedJSON(content string) string {
	trimmed := strings.TrimSpace(content)
	if len(trimmed) < 6 || !strings.HasPrefix(trimmed, "```") || !strings.HasSuffix(trimmed, "```") {
		return content
	}
	inner := strings.TrimSuffix(trimmed, "```")
	inner = strings.TrimPrefix(inner, "```json")
	inner = strings.TrimPrefix(inner, "```")
	return strings.TrimSpace(inner)
}

func marshalToolPayload(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}
