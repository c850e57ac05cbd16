// Package api exposes the HTTP and websocket surface of the runtime core:
// chat execution against the provider registry, workflow execution gating,
// and the realtime collaboration socket.
package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/weft-labs/weft/pkg/collab"
	"github.com/weft-labs/weft/pkg/database"
	"github.com/weft-labs/weft/pkg/providers"
	"github.com/weft-labs/weft/pkg/ratelimit"
	"github.com/weft-labs/weft/pkg/services"
)

// AccessVerifier answers "may this user touch this workflow, and as what
// role". Satisfied by services.AccessService.
type AccessVerifier interface {
	VerifyWorkflowAccess(ctx context.Context, userID, workflowID string) (*services.AccessResult, error)
}

// ExecutionGate enforces per-plan execution quotas. Satisfied by
// ratelimit.Limiter.
type ExecutionGate interface {
	CheckAndConsume(ctx context.Context, userID string, sub *ratelimit.Subscription, trigger ratelimit.TriggerType, isAsync bool) ratelimit.Decision
	Status(ctx context.Context, userID string, sub *ratelimit.Subscription, trigger ratelimit.TriggerType, isAsync bool) (*ratelimit.Status, error)
}

// Server hosts the HTTP API.
type Server struct {
	echo   *echo.Echo
	http   *http.Server
	logger *slog.Logger

	dbClient  *database.Client
	providers *providers.Registry
	limiter   ExecutionGate
	collab    *collab.Manager
	access    AccessVerifier
	auth      Authenticator

	subscriptions SubscriptionResolver
	dispatcher    Dispatcher
}

// NewServer creates the HTTP server and registers all routes.
func NewServer(dbClient *database.Client, registry *providers.Registry, limiter ExecutionGate, collabMgr *collab.Manager, access AccessVerifier, auth Authenticator) *Server {
	s := &Server{
		echo:      echo.New(),
		logger:    slog.With("component", "api"),
		dbClient:  dbClient,
		providers: registry,
		limiter:   limiter,
		collab:    collabMgr,
		access:    access,
		auth:      auth,
	}
	if s.auth == nil {
		s.auth = HeaderAuthenticator{}
	}

	s.echo.Use(securityHeaders())
	s.echo.Use(requestLogger(s.logger))
	s.registerRoutes()

	s.http = &http.Server{
		Handler:           s.echo,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// SetSubscriptionResolver wires the billing plan lookup used by the
// execution endpoints. Without one every caller is gated as the free plan.
func (s *Server) SetSubscriptionResolver(r SubscriptionResolver) {
	s.subscriptions = r
}

// SetDispatcher wires the execution engine hand-off. Without one accepted
// executions are acknowledged and dropped.
func (s *Server) SetDispatcher(d Dispatcher) {
	s.dispatcher = d
}

func (s *Server) registerRoutes() {
	s.echo.GET("/health", s.healthHandler)
	s.echo.GET("/version", s.versionHandler)

	s.echo.GET("/api/v1/ws", s.wsHandler)
	s.echo.POST("/api/v1/chat", s.chatHandler)
	s.echo.POST("/api/v1/workflows/:id/executions", s.executeWorkflowHandler)
	s.echo.GET("/api/v1/rate-limit", s.rateLimitStatusHandler)
}

// Start begins serving on addr. Blocks until the listener fails or
// Shutdown is called.
func (s *Server) Start(addr string) error {
	s.http.Addr = addr
	return s.http.ListenAndServe()
}

// StartWithListener serves on an existing listener. Tests use it to bind an
// OS-assigned port.
func (s *Server) StartWithListener(ln net.Listener) error {
	return s.http.Serve(ln)
}

// Shutdown stops the HTTP listener, waiting for in-flight requests up to
// the context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
