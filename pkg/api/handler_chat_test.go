package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weft-labs/weft/pkg/providers"
)

// chatServer builds a Server whose ollama provider is pointed at the given
// backend handler. Ollama needs no API key, so tests reach the full
// execution path without credentials.
func chatServer(t *testing.T, backend http.HandlerFunc) *Server {
	t.Helper()
	upstream := httptest.NewServer(backend)
	t.Cleanup(upstream.Close)

	registry := providers.New(providers.Config{OllamaURL: upstream.URL})
	return NewServer(nil, registry, nil, nil, nil, nil)
}

func postChat(s *Server, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func TestChatHandler_Validation(t *testing.T) {
	s := &Server{}

	tests := []struct {
		name   string
		body   string
		errMsg string
	}{
		{
			name:   "missing provider",
			body:   `{"model":"llama3"}`,
			errMsg: "provider is required",
		},
		{
			name:   "missing model",
			body:   `{"provider":"ollama"}`,
			errMsg: "model is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := s.chatHandler(c)
			if assert.Error(t, err) {
				he, ok := err.(*echo.HTTPError)
				if assert.True(t, ok, "expected echo.HTTPError") {
					assert.Equal(t, http.StatusBadRequest, he.Code)
					assert.Contains(t, he.Message, tt.errMsg)
				}
			}
		})
	}
}

func TestChatHandler_UnknownProvider(t *testing.T) {
	registry := providers.New(providers.Config{})
	s := NewServer(nil, registry, nil, nil, nil, nil)

	rec := postChat(s, `{"provider":"telepathy","model":"m1"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "unknown provider")
}

func TestChatHandler_MissingAPIKey(t *testing.T) {
	registry := providers.New(providers.Config{})
	s := NewServer(nil, registry, nil, nil, nil, nil)

	// openai requires a key; the check fires before any network I/O.
	rec := postChat(s, `{"provider":"openai","model":"gpt-test"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "API key is required")
}

func TestChatHandler_NonStreaming(t *testing.T) {
	s := chatServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"choices":[{"message":{"content":"hi there"}}],
			"usage":{"prompt_tokens":3,"completion_tokens":4,"total_tokens":7}
		}`))
	})

	rec := postChat(s, `{"provider":"ollama","model":"llama3","messages":[{"role":"user","content":"hello"}]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
	assert.Contains(t, rec.Body.String(), `"content":"hi there"`)
	assert.Contains(t, rec.Body.String(), `"total":7`)
}

func TestChatHandler_BackendFailureIsBadGateway(t *testing.T) {
	s := chatServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"message":"model exploded"}}`))
	})

	rec := postChat(s, `{"provider":"ollama","model":"llama3","messages":[{"role":"user","content":"hello"}]}`)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "model exploded")
}

func TestChatHandler_StreamingRelay(t *testing.T) {
	s := chatServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		_, _ = w.Write([]byte(
			"data: {\"choices\":[{\"delta\":{\"content\":\"Hel\"}}]}\n\n" +
				"data: {\"choices\":[{\"delta\":{\"content\":\"lo\"}}]}\n\n" +
				"data: {\"usage\":{\"prompt_tokens\":5,\"completion_tokens\":2,\"total_tokens\":7}}\n\n" +
				"data: [DONE]\n\n"))
	})

	rec := postChat(s, `{"provider":"ollama","model":"llama3","stream":true,"messages":[{"role":"user","content":"hello"}]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
	assert.Equal(t, "Hello", rec.Body.String())
}

func TestChatHandler_MalformedBody(t *testing.T) {
	registry := providers.New(providers.Config{})
	s := NewServer(nil, registry, nil, nil, nil, nil)

	rec := postChat(s, `{"provider": not-json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
