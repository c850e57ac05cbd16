package api

import (
	"log/slog"
	"time"

	echo "github.com/labstack/echo/v5"
)

// securityHeaders returns middleware that sets standard security response headers.
func securityHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			h := c.Response().Header()
			h.Set("X-Frame-Options", "DENY")
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			return next(c)
		}
	}
}

// requestLogger returns middleware that logs one line per completed request.
// The websocket route is skipped: it blocks for the lifetime of the
// connection and would log hours-long "requests".
func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			if c.Request().URL.Path == "/api/v1/ws" {
				return next(c)
			}

			start := time.Now()
			err := next(c)

			attrs := []any{
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"duration_ms", time.Since(start).Milliseconds(),
			}
			if err != nil {
				logger.Warn("HTTP request failed", append(attrs, "error", err)...)
				return err
			}
			logger.Info("HTTP request", attrs...)
			return nil
		}
	}
}
