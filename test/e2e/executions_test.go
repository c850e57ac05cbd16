package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weft-labs/weft/pkg/api"
	"github.com/weft-labs/weft/pkg/ratelimit"
)

// doJSON issues one HTTP request with identity headers and decodes the JSON
// response body.
func doJSON(t *testing.T, method, url, userID string, body any) (int, map[string]any) {
	t.Helper()

	var reqBody *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewBuffer(data)
	} else {
		reqBody = &bytes.Buffer{}
	}

	req, err := http.NewRequest(method, url, reqBody)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != "" {
		req.Header.Set("X-User-Id", userID)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp.StatusCode, decoded
}

// tinyQuota returns a config whose free plan is exhausted in two sync calls.
func tinyQuota() ratelimit.Config {
	cfg := ratelimit.DefaultConfig()
	cfg.Plans[ratelimit.PlanFree] = ratelimit.PlanLimits{
		SyncPerWindow:        2,
		AsyncPerWindow:       1,
		APIEndpointPerWindow: 1,
	}
	return cfg
}

func TestExecuteWorkflowGating(t *testing.T) {
	app := NewTestApp(t, WithRateLimitConfig(tinyQuota()))
	workflowID := app.CreateWorkflow("alice")
	url := fmt.Sprintf("%s/api/v1/workflows/%s/executions", app.BaseURL, workflowID)

	// Two sync slots, then the window is exhausted.
	for i := 0; i < 2; i++ {
		status, body := doJSON(t, http.MethodPost, url, "alice", nil)
		require.Equal(t, http.StatusAccepted, status)
		assert.NotEmpty(t, body["executionId"])
		assert.Equal(t, workflowID, body["workflowId"])
		assert.Equal(t, "accepted", body["status"])
	}

	status, body := doJSON(t, http.MethodPost, url, "alice", nil)
	require.Equal(t, http.StatusTooManyRequests, status)
	assert.Equal(t, "rate limit exceeded", body["error"])
	resetAt, err := time.Parse(time.RFC3339Nano, body["resetAt"].(string))
	require.NoError(t, err)
	assert.True(t, resetAt.After(time.Now().Add(-time.Minute)))

	t.Run("manual trigger bypasses the exhausted window", func(t *testing.T) {
		status, body := doJSON(t, http.MethodPost, url, "alice",
			map[string]any{"triggerType": "manual"})
		require.Equal(t, http.StatusAccepted, status)
		assert.Equal(t, "accepted", body["status"])
	})

	t.Run("anonymous caller", func(t *testing.T) {
		status, _ := doJSON(t, http.MethodPost, url, "", nil)
		assert.Equal(t, http.StatusUnauthorized, status)
	})

	t.Run("caller without access", func(t *testing.T) {
		status, _ := doJSON(t, http.MethodPost, url, "mallory", nil)
		assert.Equal(t, http.StatusForbidden, status)
	})

	t.Run("unknown workflow", func(t *testing.T) {
		missing := fmt.Sprintf("%s/api/v1/workflows/no-such-workflow/executions", app.BaseURL)
		status, _ := doJSON(t, http.MethodPost, missing, "alice", nil)
		assert.Equal(t, http.StatusNotFound, status)
	})
}

// recordingDispatcher captures the jobs the server hands off.
type recordingDispatcher struct {
	jobs chan api.ExecutionJob
}

func (d *recordingDispatcher) Dispatch(_ context.Context, job api.ExecutionJob) error {
	d.jobs <- job
	return nil
}

func TestExecuteWorkflowDispatchesJob(t *testing.T) {
	dispatcher := &recordingDispatcher{jobs: make(chan api.ExecutionJob, 1)}
	app := NewTestApp(t, WithDispatcher(dispatcher))
	workflowID := app.CreateWorkflow("alice")
	url := fmt.Sprintf("%s/api/v1/workflows/%s/executions", app.BaseURL, workflowID)

	status, body := doJSON(t, http.MethodPost, url, "alice", map[string]any{
		"async": true,
		"input": map[string]any{"city": "Oslo"},
	})
	require.Equal(t, http.StatusAccepted, status)

	select {
	case job := <-dispatcher.jobs:
		assert.Equal(t, body["executionId"], job.ExecutionID)
		assert.Equal(t, workflowID, job.WorkflowID)
		assert.Equal(t, "alice", job.UserID)
		assert.Equal(t, "api", job.TriggerType)
		assert.True(t, job.Async)
		assert.Equal(t, map[string]any{"city": "Oslo"}, job.Input)
	case <-time.After(waitTimeout):
		t.Fatal("dispatcher never received the job")
	}
}

func TestRateLimitStatus(t *testing.T) {
	cfg := ratelimit.DefaultConfig()
	cfg.Plans[ratelimit.PlanFree] = ratelimit.PlanLimits{
		SyncPerWindow:        5,
		AsyncPerWindow:       5,
		APIEndpointPerWindow: 5,
	}
	app := NewTestApp(t, WithRateLimitConfig(cfg))
	workflowID := app.CreateWorkflow("alice")
	statusURL := app.BaseURL + "/api/v1/rate-limit"

	// Fresh window.
	status, body := doJSON(t, http.MethodGet, statusURL, "alice", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(0), body["used"])
	assert.Equal(t, float64(5), body["limit"])
	assert.Equal(t, float64(5), body["remaining"])

	// Reading the status never consumes a slot; an execution does.
	execURL := fmt.Sprintf("%s/api/v1/workflows/%s/executions", app.BaseURL, workflowID)
	s, _ := doJSON(t, http.MethodPost, execURL, "alice", nil)
	require.Equal(t, http.StatusAccepted, s)

	status, body = doJSON(t, http.MethodGet, statusURL, "alice", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(1), body["used"])
	assert.Equal(t, float64(4), body["remaining"])

	t.Run("manual trigger reports the parity limit", func(t *testing.T) {
		status, body := doJSON(t, http.MethodGet, statusURL+"?triggerType=manual", "alice", nil)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, float64(0), body["used"])
		assert.Equal(t, body["limit"], body["remaining"])
	})

	t.Run("anonymous caller", func(t *testing.T) {
		status, _ := doJSON(t, http.MethodGet, statusURL, "", nil)
		assert.Equal(t, http.StatusUnauthorized, status)
	})
}

func TestTeamPlanSharesQuotaPool(t *testing.T) {
	cfg := ratelimit.DefaultConfig()
	cfg.Plans[ratelimit.PlanTeam] = ratelimit.PlanLimits{
		SyncPerWindow:        2,
		AsyncPerWindow:       2,
		APIEndpointPerWindow: 2,
	}
	app := NewTestApp(t,
		WithRateLimitConfig(cfg),
		WithSubscription(&ratelimit.Subscription{Plan: ratelimit.PlanTeam, ReferenceID: "org-1"}),
	)

	aliceWorkflow := app.CreateWorkflow("alice")
	bobWorkflow := app.CreateWorkflow("bob")

	aliceURL := fmt.Sprintf("%s/api/v1/workflows/%s/executions", app.BaseURL, aliceWorkflow)
	bobURL := fmt.Sprintf("%s/api/v1/workflows/%s/executions", app.BaseURL, bobWorkflow)

	// Two team members drain the organisation's shared pool together.
	status, _ := doJSON(t, http.MethodPost, aliceURL, "alice", nil)
	require.Equal(t, http.StatusAccepted, status)
	status, _ = doJSON(t, http.MethodPost, bobURL, "bob", nil)
	require.Equal(t, http.StatusAccepted, status)

	status, _ = doJSON(t, http.MethodPost, aliceURL, "alice", nil)
	assert.Equal(t, http.StatusTooManyRequests, status)
	status, _ = doJSON(t, http.MethodPost, bobURL, "bob", nil)
	assert.Equal(t, http.StatusTooManyRequests, status)
}

func TestHealthAndVersion(t *testing.T) {
	app := NewTestApp(t)

	status, body := doJSON(t, http.MethodGet, app.BaseURL+"/health", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "healthy", body["status"])
	checks := body["checks"].(map[string]any)
	database := checks["database"].(map[string]any)
	assert.Equal(t, "healthy", database["status"])
	collaboration := checks["collaboration"].(map[string]any)
	assert.Equal(t, "healthy", collaboration["status"])

	status, body = doJSON(t, http.MethodGet, app.BaseURL+"/version", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "weft", body["name"])
	assert.NotEmpty(t, body["version"])
}
