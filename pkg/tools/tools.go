// Package tools provides the tool execution surface the provider loop
// engine dispatches model tool calls through.
package tools

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// ToolResult is the outcome of one tool invocation. Failures travel as
// results, not Go errors, so the model sees them and can recover.
type ToolResult struct {
	Success bool
	Output  any
	Error   string
}

// Executor runs one named tool.
type Executor interface {
	Execute(ctx context.Context, name string, params map[string]any) (*ToolResult, error)
}

// Func adapts an in-process function to Executor.
type Func func(ctx context.Context, params map[string]any) (*ToolResult, error)

func (f Func) Execute(ctx context.Context, _ string, params map[string]any) (*ToolResult, error) {
	return f(ctx, params)
}

// Registry dispatches tool calls by name. Safe for concurrent use;
// registration happens at bootstrap but MCP reconnects may re-register.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]Executor
}

func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]Executor)}
}

// Register binds a name to an executor, replacing any previous binding.
func (r *Registry) Register(name string, exec Executor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tools[name] = exec
}

// Names lists the registered tool names in stable order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Execute routes a call to the named tool. Unknown names come back as a
// failed result so the model can correct itself.
func (r *Registry) Execute(ctx context.Context, name string, params map[string]any) (*ToolResult, error) {
	r.mu.RLock()
	exec, ok := r.tools[name]
	r.mu.RUnlock()
	if !ok {
		return &ToolResult{
			Success: false,
			Error:   fmt.Sprintf("tool %q is not registered", name),
		}, nil
	}
	return exec.Execute(ctx, name, params)
}
