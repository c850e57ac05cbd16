package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weft-labs/weft/pkg/ratelimit"
	"github.com/weft-labs/weft/pkg/services"
)

type fakeGate struct {
	decision  ratelimit.Decision
	status    *ratelimit.Status
	statusErr error

	calls       int
	lastTrigger ratelimit.TriggerType
	lastAsync   bool
	lastSub     *ratelimit.Subscription
}

func (f *fakeGate) CheckAndConsume(_ context.Context, _ string, sub *ratelimit.Subscription, trigger ratelimit.TriggerType, isAsync bool) ratelimit.Decision {
	f.calls++
	f.lastTrigger = trigger
	f.lastAsync = isAsync
	f.lastSub = sub
	return f.decision
}

func (f *fakeGate) Status(_ context.Context, _ string, sub *ratelimit.Subscription, trigger ratelimit.TriggerType, isAsync bool) (*ratelimit.Status, error) {
	f.lastTrigger = trigger
	f.lastAsync = isAsync
	f.lastSub = sub
	return f.status, f.statusErr
}

type fakeVerifier struct {
	result *services.AccessResult
	err    error
}

func (f *fakeVerifier) VerifyWorkflowAccess(context.Context, string, string) (*services.AccessResult, error) {
	return f.result, f.err
}

type fakeSubscriptions struct {
	sub *ratelimit.Subscription
	err error
}

func (f *fakeSubscriptions) Resolve(context.Context, string) (*ratelimit.Subscription, error) {
	return f.sub, f.err
}

type fakeDispatcher struct {
	jobs []ExecutionJob
	err  error
}

func (f *fakeDispatcher) Dispatch(_ context.Context, job ExecutionJob) error {
	f.jobs = append(f.jobs, job)
	return f.err
}

func executionServer(gate ExecutionGate, access AccessVerifier) *Server {
	return NewServer(nil, nil, gate, nil, access, nil)
}

func postExecution(s *Server, workflowID, body string, asUser string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/workflows/"+workflowID+"/executions", strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if asUser != "" {
		req.Header.Set("X-User-Id", asUser)
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func TestExecuteWorkflowHandler_MissingID(t *testing.T) {
	s := &Server{}

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/workflows//executions", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := s.executeWorkflowHandler(c)
	if assert.Error(t, err) {
		he, ok := err.(*echo.HTTPError)
		if assert.True(t, ok, "expected echo.HTTPError") {
			assert.Equal(t, http.StatusBadRequest, he.Code)
			assert.Contains(t, he.Message, "workflow id")
		}
	}
}

func TestExecuteWorkflowHandler_RequiresAuthentication(t *testing.T) {
	s := executionServer(&fakeGate{}, &fakeVerifier{})

	rec := postExecution(s, "wf-1", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestExecuteWorkflowHandler_AccessDenied(t *testing.T) {
	gate := &fakeGate{decision: ratelimit.Decision{Allowed: true}}
	s := executionServer(gate, &fakeVerifier{result: &services.AccessResult{HasAccess: false}})

	rec := postExecution(s, "wf-1", "", "alice")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Zero(t, gate.calls, "denied requests must not consume a slot")
}

func TestExecuteWorkflowHandler_WorkflowNotFound(t *testing.T) {
	s := executionServer(&fakeGate{}, &fakeVerifier{err: services.ErrWorkflowNotFound})

	rec := postExecution(s, "wf-gone", "", "alice")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestExecuteWorkflowHandler_RateLimited(t *testing.T) {
	resetAt := time.Now().UTC().Add(42 * time.Second)
	gate := &fakeGate{decision: ratelimit.Decision{Allowed: false, ResetAt: resetAt}}
	s := executionServer(gate, &fakeVerifier{result: &services.AccessResult{HasAccess: true, Role: "admin"}})

	rec := postExecution(s, "wf-1", "", "alice")
	require.Equal(t, http.StatusTooManyRequests, rec.Code)

	var resp RateLimitExceededResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "rate limit exceeded", resp.Error)
	assert.WithinDuration(t, resetAt, resp.ResetAt, time.Second)
}

func TestExecuteWorkflowHandler_Accepted(t *testing.T) {
	gate := &fakeGate{decision: ratelimit.Decision{Allowed: true, Remaining: 9}}
	dispatcher := &fakeDispatcher{}
	s := executionServer(gate, &fakeVerifier{result: &services.AccessResult{HasAccess: true, Role: "write"}})
	s.SetDispatcher(dispatcher)

	rec := postExecution(s, "wf-1", `{"async":true,"input":{"city":"Oslo"}}`, "alice")
	require.Equal(t, http.StatusAccepted, rec.Code)

	var resp ExecuteWorkflowResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.ExecutionID)
	assert.Equal(t, "wf-1", resp.WorkflowID)
	assert.Equal(t, "accepted", resp.Status)

	// Defaulted trigger, async flag and input make it to the gate and engine.
	assert.Equal(t, ratelimit.TriggerAPI, gate.lastTrigger)
	assert.True(t, gate.lastAsync)
	require.Len(t, dispatcher.jobs, 1)
	job := dispatcher.jobs[0]
	assert.Equal(t, resp.ExecutionID, job.ExecutionID)
	assert.Equal(t, "alice", job.UserID)
	assert.True(t, job.Async)
	assert.Equal(t, "Oslo", job.Input["city"])
}

func TestExecuteWorkflowHandler_TriggerTypePassthrough(t *testing.T) {
	gate := &fakeGate{decision: ratelimit.Decision{Allowed: true}}
	s := executionServer(gate, &fakeVerifier{result: &services.AccessResult{HasAccess: true, Role: "admin"}})

	rec := postExecution(s, "wf-1", `{"triggerType":"api-endpoint"}`, "alice")
	require.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, ratelimit.TriggerAPIEndpoint, gate.lastTrigger)
	assert.False(t, gate.lastAsync)
}

func TestExecuteWorkflowHandler_SubscriptionResolution(t *testing.T) {
	t.Run("resolved plan reaches the gate", func(t *testing.T) {
		gate := &fakeGate{decision: ratelimit.Decision{Allowed: true}}
		s := executionServer(gate, &fakeVerifier{result: &services.AccessResult{HasAccess: true, Role: "admin"}})
		s.SetSubscriptionResolver(&fakeSubscriptions{
			sub: &ratelimit.Subscription{Plan: ratelimit.PlanTeam, ReferenceID: "org-1"},
		})

		rec := postExecution(s, "wf-1", "", "alice")
		require.Equal(t, http.StatusAccepted, rec.Code)
		require.NotNil(t, gate.lastSub)
		assert.Equal(t, ratelimit.PlanTeam, gate.lastSub.Plan)
		assert.Equal(t, "org-1", gate.lastSub.ReferenceID)
	})

	t.Run("resolver failure gates as free plan", func(t *testing.T) {
		gate := &fakeGate{decision: ratelimit.Decision{Allowed: true}}
		s := executionServer(gate, &fakeVerifier{result: &services.AccessResult{HasAccess: true, Role: "admin"}})
		s.SetSubscriptionResolver(&fakeSubscriptions{err: errors.New("billing down")})

		rec := postExecution(s, "wf-1", "", "alice")
		require.Equal(t, http.StatusAccepted, rec.Code)
		assert.Nil(t, gate.lastSub)
	})
}

func TestExecuteWorkflowHandler_DispatchFailure(t *testing.T) {
	gate := &fakeGate{decision: ratelimit.Decision{Allowed: true}}
	s := executionServer(gate, &fakeVerifier{result: &services.AccessResult{HasAccess: true, Role: "admin"}})
	s.SetDispatcher(&fakeDispatcher{err: errors.New("engine offline")})

	rec := postExecution(s, "wf-1", "", "alice")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestExecuteWorkflowHandler_NoDispatcherStillAccepts(t *testing.T) {
	gate := &fakeGate{decision: ratelimit.Decision{Allowed: true}}
	s := executionServer(gate, &fakeVerifier{result: &services.AccessResult{HasAccess: true, Role: "admin"}})

	rec := postExecution(s, "wf-1", "", "alice")
	assert.Equal(t, http.StatusAccepted, rec.Code)
}
