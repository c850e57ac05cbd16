package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/weft-labs/weft/pkg/ratelimit"
)

// rateLimitStatusHandler handles GET /api/v1/rate-limit?triggerType=&async=.
// Reports the caller's current window without consuming a slot.
func (s *Server) rateLimitStatusHandler(c *echo.Context) error {
	// 1. Authenticate
	userID, _, err := s.auth.Authenticate(c.Request())
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	if userID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	// 2. Parse query parameters
	trigger := ratelimit.TriggerType(c.QueryParam("triggerType"))
	if trigger == "" {
		trigger = ratelimit.TriggerAPI
	}
	isAsync := c.QueryParam("async") == "true"

	// 3. Read the window
	sub := s.resolveSubscription(c.Request().Context(), userID)
	status, err := s.limiter.Status(c.Request().Context(), userID, sub, trigger, isAsync)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, status)
}
