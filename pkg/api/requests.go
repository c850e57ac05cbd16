package api

import (
	"github.com/weft-labs/weft/pkg/providers"
)

// ChatRequest is the HTTP request body for POST /api/v1/chat: a provider id
// plus the backend-neutral request passed through to it.
type ChatRequest struct {
	Provider string `json:"provider"`
	providers.Request
}

// ExecuteWorkflowRequest is the HTTP request body for
// POST /api/v1/workflows/:id/executions. All fields are optional; an empty
// body is a synchronous api-triggered execution.
type ExecuteWorkflowRequest struct {
	TriggerType string         `json:"triggerType,omitempty"`
	Async       bool           `json:"async,omitempty"`
	Input       map[string]any `json:"input,omitempty"`
}
