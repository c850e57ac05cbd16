package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/weft-labs/weft/pkg/database"
	"github.com/weft-labs/weft/pkg/version"
)

const (
	healthStatusHealthy   = "healthy"
	healthStatusUnhealthy = "unhealthy"
)

// healthHandler handles GET /health.
// Only weft's own components are checked; external dependencies (LLM
// backends, MCP servers) are excluded so an upstream outage does not make
// the orchestrator restart a healthy process.
func (s *Server) healthHandler(c *echo.Context) error {
	reqCtx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]HealthCheck)
	status := healthStatusHealthy

	if s.dbClient != nil {
		_, err := database.Health(reqCtx, s.dbClient.DB())
		if err != nil {
			status = healthStatusUnhealthy
			checks["database"] = HealthCheck{Status: healthStatusUnhealthy, Message: err.Error()}
		} else {
			checks["database"] = HealthCheck{Status: healthStatusHealthy}
		}
	}

	if s.collab != nil {
		checks["collaboration"] = HealthCheck{Status: healthStatusHealthy}
	}

	httpStatus := http.StatusOK
	if status == healthStatusUnhealthy {
		httpStatus = http.StatusServiceUnavailable
	}

	return c.JSON(httpStatus, &HealthResponse{
		Status:  status,
		Version: version.GitCommit,
		Checks:  checks,
	})
}

// versionHandler handles GET /version.
func (s *Server) versionHandler(c *echo.Context) error {
	return c.JSON(http.StatusOK, &VersionResponse{
		Name:    version.AppName,
		Version: version.GitCommit,
	})
}
