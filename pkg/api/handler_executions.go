package api

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	echo "github.com/labstack/echo/v5"

	"github.com/weft-labs/weft/pkg/ratelimit"
)

// SubscriptionResolver looks up the billing plan a user's executions are
// gated against.
type SubscriptionResolver interface {
	Resolve(ctx context.Context, userID string) (*ratelimit.Subscription, error)
}

// ExecutionJob is an accepted execution handed to the engine.
type ExecutionJob struct {
	ExecutionID string
	WorkflowID  string
	UserID      string
	TriggerType string
	Async       bool
	Input       map[string]any
}

// Dispatcher hands accepted executions to the workflow engine. The runtime
// core gates and acknowledges; running the workflow is the engine's job.
type Dispatcher interface {
	Dispatch(ctx context.Context, job ExecutionJob) error
}

// executeWorkflowHandler handles POST /api/v1/workflows/:id/executions:
// authenticate, verify access, consume a rate-limit slot, acknowledge.
func (s *Server) executeWorkflowHandler(c *echo.Context) error {
	// 1. Validate workflow ID
	workflowID := c.Param("id")
	if workflowID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "workflow id is required")
	}

	// 2. Authenticate
	userID, _, err := s.auth.Authenticate(c.Request())
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	if userID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	// 3. Bind request body (optional; empty body = sync api execution)
	var req ExecuteWorkflowRequest
	if c.Request().ContentLength != 0 {
		if err := c.Bind(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
	}

	// 4. Verify workflow access
	access, err := s.access.VerifyWorkflowAccess(c.Request().Context(), userID, workflowID)
	if err != nil {
		return mapServiceError(err)
	}
	if !access.HasAccess {
		return echo.NewHTTPError(http.StatusForbidden, "access denied")
	}

	// 5. Consume a rate-limit slot
	trigger := ratelimit.TriggerType(req.TriggerType)
	if trigger == "" {
		trigger = ratelimit.TriggerAPI
	}
	sub := s.resolveSubscription(c.Request().Context(), userID)
	decision := s.limiter.CheckAndConsume(c.Request().Context(), userID, sub, trigger, req.Async)
	if !decision.Allowed {
		return c.JSON(http.StatusTooManyRequests, &RateLimitExceededResponse{
			Error:   "rate limit exceeded",
			ResetAt: decision.ResetAt,
		})
	}

	// 6. Hand off to the engine when one is wired
	executionID := uuid.New().String()
	if s.dispatcher != nil {
		job := ExecutionJob{
			ExecutionID: executionID,
			WorkflowID:  workflowID,
			UserID:      userID,
			TriggerType: string(trigger),
			Async:       req.Async,
			Input:       req.Input,
		}
		if err := s.dispatcher.Dispatch(c.Request().Context(), job); err != nil {
			return mapServiceError(err)
		}
	}

	// 7. Return 202 Accepted
	return c.JSON(http.StatusAccepted, &ExecuteWorkflowResponse{
		ExecutionID: executionID,
		WorkflowID:  workflowID,
		Status:      "accepted",
	})
}

// resolveSubscription asks the resolver for the caller's plan. Lookup
// failures gate the request as the free plan rather than blocking it.
func (s *Server) resolveSubscription(ctx context.Context, userID string) *ratelimit.Subscription {
	if s.subscriptions == nil {
		return nil
	}
	sub, err := s.subscriptions.Resolve(ctx, userID)
	if err != nil {
		s.logger.Warn("Subscription lookup failed, gating as free plan",
			"user_id", userID, "error", err)
		return nil
	}
	return sub
}
