package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weft-labs/weft/pkg/ratelimit"
)

func getRateLimit(s *Server, query, asUser string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/rate-limit"+query, nil)
	if asUser != "" {
		req.Header.Set("X-User-Id", asUser)
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func TestRateLimitStatusHandler_RequiresAuthentication(t *testing.T) {
	s := executionServer(&fakeGate{}, &fakeVerifier{})

	rec := getRateLimit(s, "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRateLimitStatusHandler_ReportsWindow(t *testing.T) {
	resetAt := time.Now().UTC().Add(30 * time.Second)
	gate := &fakeGate{status: &ratelimit.Status{Used: 3, Limit: 10, Remaining: 7, ResetAt: resetAt}}
	s := executionServer(gate, &fakeVerifier{})

	rec := getRateLimit(s, "", "alice")
	require.Equal(t, http.StatusOK, rec.Code)

	var status ratelimit.Status
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, 3, status.Used)
	assert.Equal(t, 10, status.Limit)
	assert.Equal(t, 7, status.Remaining)
	assert.WithinDuration(t, resetAt, status.ResetAt, time.Second)

	// No query parameters: the sync api counter.
	assert.Equal(t, ratelimit.TriggerAPI, gate.lastTrigger)
	assert.False(t, gate.lastAsync)
}

func TestRateLimitStatusHandler_QueryParameters(t *testing.T) {
	gate := &fakeGate{status: &ratelimit.Status{Limit: 50, Remaining: 50}}
	s := executionServer(gate, &fakeVerifier{})

	rec := getRateLimit(s, "?triggerType=api-endpoint&async=true", "alice")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, ratelimit.TriggerAPIEndpoint, gate.lastTrigger)
	assert.True(t, gate.lastAsync)
}

func TestRateLimitStatusHandler_StorageFailure(t *testing.T) {
	gate := &fakeGate{statusErr: errors.New("pool exhausted")}
	s := executionServer(gate, &fakeVerifier{})

	rec := getRateLimit(s, "", "alice")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
