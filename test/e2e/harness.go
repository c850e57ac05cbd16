// Package e2e boots a complete weft instance against a real PostgreSQL
// database and exercises it over HTTP and websocket, the way clients do.
package e2e

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/weft-labs/weft/ent/permission"
	"github.com/weft-labs/weft/pkg/api"
	"github.com/weft-labs/weft/pkg/collab"
	"github.com/weft-labs/weft/pkg/database"
	"github.com/weft-labs/weft/pkg/models"
	"github.com/weft-labs/weft/pkg/providers"
	"github.com/weft-labs/weft/pkg/ratelimit"
	"github.com/weft-labs/weft/pkg/services"
	testdb "github.com/weft-labs/weft/test/database"
)

// TestApp is a full weft instance on an OS-assigned port.
type TestApp struct {
	DBClient *database.Client

	Workflows *services.WorkflowService
	Access    *services.AccessService

	Rooms   *collab.Rooms
	Manager *collab.Manager
	Limiter *ratelimit.Limiter
	Server  *api.Server

	BaseURL string // e.g. "http://127.0.0.1:54321"
	WSURL   string // e.g. "ws://127.0.0.1:54321/api/v1/ws"

	t *testing.T
}

// testAppConfig holds options accumulated before creating the TestApp.
type testAppConfig struct {
	rateLimits   *ratelimit.Config
	subscription *ratelimit.Subscription
	dispatcher   api.Dispatcher
	writeTimeout time.Duration
}

// TestAppOption configures the test app.
type TestAppOption func(*testAppConfig)

// WithRateLimitConfig replaces the stock quotas, usually with tiny ones so a
// test can exhaust a window in a few requests.
func WithRateLimitConfig(cfg ratelimit.Config) TestAppOption {
	return func(c *testAppConfig) { c.rateLimits = &cfg }
}

// WithSubscription resolves every caller to the given subscription. Without
// it callers are gated as the free plan.
func WithSubscription(sub *ratelimit.Subscription) TestAppOption {
	return func(c *testAppConfig) { c.subscription = sub }
}

// WithDispatcher wires an execution engine stand-in so tests can observe the
// hand-off of accepted executions.
func WithDispatcher(d api.Dispatcher) TestAppOption {
	return func(c *testAppConfig) { c.dispatcher = d }
}

// fixedSubscription satisfies api.SubscriptionResolver with a constant plan.
type fixedSubscription struct {
	sub *ratelimit.Subscription
}

func (f fixedSubscription) Resolve(context.Context, string) (*ratelimit.Subscription, error) {
	return f.sub, nil
}

// NewTestApp creates and starts a full weft test instance. Shutdown is
// registered via t.Cleanup automatically.
func NewTestApp(t *testing.T, opts ...TestAppOption) *TestApp {
	t.Helper()

	tc := &testAppConfig{writeTimeout: 5 * time.Second}
	for _, opt := range opts {
		opt(tc)
	}

	// 1. Database: real PostgreSQL, isolated schema per test.
	dbClient := testdb.NewTestClient(t)
	entClient := dbClient.Client

	// 2. Domain services.
	workflowService := services.NewWorkflowService(entClient)
	accessService := services.NewAccessService(entClient)
	operationService := services.NewOperationService(entClient)
	fieldService := services.NewFieldService(entClient)

	// 3. Provider registry. Chat against live backends is out of e2e scope;
	// the registry is wired so routing and error paths stay reachable.
	registry := providers.New(providers.Config{})

	// 4. Rate limiter.
	limits := ratelimit.DefaultConfig()
	if tc.rateLimits != nil {
		limits = *tc.rateLimits
	}
	limiter := ratelimit.New(dbClient.DB(), entClient, limits)

	// 5. Collaboration stack.
	rooms := collab.NewRooms(accessService, workflowService)
	collabOps := collab.NewOperations(rooms, operationService)
	updater := collab.NewUpdater(rooms, fieldService)
	manager := collab.NewManager(rooms, collabOps, updater, tc.writeTimeout)

	// 6. HTTP server on an OS-assigned port.
	server := api.NewServer(dbClient, registry, limiter, manager, accessService, nil)
	if tc.subscription != nil {
		server.SetSubscriptionResolver(fixedSubscription{sub: tc.subscription})
	}
	if tc.dispatcher != nil {
		server.SetDispatcher(tc.dispatcher)
	}

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	go func() {
		_ = server.StartWithListener(ln)
	}()

	addr := ln.Addr().String()
	app := &TestApp{
		DBClient:  dbClient,
		Workflows: workflowService,
		Access:    accessService,
		Rooms:     rooms,
		Manager:   manager,
		Limiter:   limiter,
		Server:    server,
		BaseURL:   fmt.Sprintf("http://%s", addr),
		WSURL:     fmt.Sprintf("ws://%s/api/v1/ws", addr),
		t:         t,
	}

	t.Cleanup(func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
		manager.Shutdown()
	})

	return app
}

// CreateWorkflow creates a workflow owned by userID and returns its ID.
func (a *TestApp) CreateWorkflow(userID string) string {
	a.t.Helper()
	wf, err := a.Workflows.CreateWorkflow(context.Background(), services.CreateWorkflowRequest{UserID: userID})
	require.NoError(a.t, err)
	return wf.ID
}

// GrantRole gives userID the named role on the workflow.
func (a *TestApp) GrantRole(workflowID, userID string, role permission.PermissionType) {
	a.t.Helper()
	err := a.Access.GrantPermission(context.Background(), userID, "workflow", workflowID, role)
	require.NoError(a.t, err)
}

// State loads the workflow document straight from storage.
func (a *TestApp) State(workflowID string) *models.WorkflowState {
	a.t.Helper()
	state, err := a.Workflows.GetWorkflowState(context.Background(), workflowID)
	require.NoError(a.t, err)
	return state
}

// Connect opens a websocket as the given user. An empty userID connects
// anonymously. The client is closed via t.Cleanup.
func (a *TestApp) Connect(userID, userName string) *WSClient {
	a.t.Helper()

	header := http.Header{}
	if userID != "" {
		header.Set("X-User-Id", userID)
		header.Set("X-User-Name", userName)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	a.t.Cleanup(cancel)

	client, err := WSConnect(ctx, a.WSURL, header)
	require.NoError(a.t, err)
	a.t.Cleanup(func() { _ = client.Close() })
	return client
}
