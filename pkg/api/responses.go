package api

import (
	"time"
)

// ExecuteWorkflowResponse is returned by POST /api/v1/workflows/:id/executions
// when the execution is accepted.
type ExecuteWorkflowResponse struct {
	ExecutionID string `json:"executionId"`
	WorkflowID  string `json:"workflowId"`
	Status      string `json:"status"`
}

// RateLimitExceededResponse is returned with 429 when the caller's window
// is exhausted.
type RateLimitExceededResponse struct {
	Error   string    `json:"error"`
	ResetAt time.Time `json:"resetAt"`
}

// HealthCheck is one component's probe result inside HealthResponse.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status  string                 `json:"status"`
	Version string                 `json:"version"`
	Checks  map[string]HealthCheck `json:"checks"`
}

// VersionResponse is returned by GET /version.
type VersionResponse struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}
