package api

import (
	"errors"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/weft-labs/weft/pkg/providers"
)

// chatHandler handles POST /api/v1/chat: one provider execution, tool loop
// included. Non-streaming requests return the full response as JSON;
// streaming requests relay text deltas as they arrive.
func (s *Server) chatHandler(c *echo.Context) error {
	// 1. Bind and validate request body
	var req ChatRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Provider == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "provider is required")
	}
	if req.Model == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "model is required")
	}

	// 2. Resolve the provider adapter
	p, err := s.providers.Get(req.Provider)
	if err != nil {
		return mapProviderError(err)
	}

	// 3. Execute against the backend
	result, err := p.Execute(c.Request().Context(), &req.Request)
	if err != nil {
		return mapProviderError(err)
	}

	// 4. Non-streaming: full response as JSON
	if result.Response != nil {
		return c.JSON(http.StatusOK, result.Response)
	}

	// 5. Streaming: relay deltas, log telemetry once the stream drains
	return s.relayChatStream(c, req.Provider, result.Stream)
}

// relayChatStream copies the provider's text deltas to the client, flushing
// after every chunk. The response is committed as 200 text/plain before the
// first byte, so upstream failures mid-stream can only truncate the body.
func (s *Server) relayChatStream(c *echo.Context, providerID string, stream *providers.StreamingExecution) error {
	defer func() { _ = stream.Stream.Close() }()

	w := c.Response()
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	rc := http.NewResponseController(w)

	buf := make([]byte, 4096)
	for {
		n, readErr := stream.Stream.Read(buf)
		if n > 0 {
			if _, writeErr := w.Write(buf[:n]); writeErr != nil {
				// Client went away. Close the reader now so the provider's
				// pipe writer unblocks and Done can close.
				_ = stream.Stream.Close()
				break
			}
			_ = rc.Flush()
		}
		if readErr != nil {
			break
		}
	}

	// Execution telemetry is complete only after Done closes.
	<-stream.Done
	exec := stream.Execution
	attrs := []any{
		"provider", providerID,
		"model", exec.Model,
		"total_tokens", exec.Tokens.Total,
		"tool_calls", len(exec.ToolCalls),
	}
	if exec.Timing != nil {
		attrs = append(attrs,
			"duration_ms", exec.Timing.Duration,
			"model_ms", exec.Timing.ModelTime,
			"tools_ms", exec.Timing.ToolsTime,
			"iterations", exec.Timing.Iterations,
		)
	}
	s.logger.Info("Chat stream completed", attrs...)
	return nil
}

// mapProviderError maps provider orchestration errors to HTTP errors.
// Configuration problems are the caller's fault; backend failures after
// execution started are a bad gateway.
func mapProviderError(err error) *echo.HTTPError {
	var cfgErr *providers.ConfigError
	if errors.As(err, &cfgErr) {
		return echo.NewHTTPError(http.StatusBadRequest, cfgErr.Error())
	}

	var failure *providers.ProviderFailure
	if errors.As(err, &failure) {
		return echo.NewHTTPError(http.StatusBadGateway, failure.Error())
	}

	return echo.NewHTTPError(http.StatusInternalServerError, "chat execution failed")
}
