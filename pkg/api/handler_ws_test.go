package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weft-labs/weft/pkg/collab"
	"github.com/weft-labs/weft/pkg/models"
	"github.com/weft-labs/weft/pkg/services"
)

type wsAccess struct{}

func (wsAccess) VerifyWorkflowAccess(context.Context, string, string) (*services.AccessResult, error) {
	return &services.AccessResult{HasAccess: true, Role: "admin"}, nil
}

type wsState struct{}

func (wsState) GetWorkflowState(_ context.Context, workflowID string) (*models.WorkflowState, error) {
	return &models.WorkflowState{
		ID:        workflowID,
		Name:      "Test Workflow",
		Blocks:    map[string]models.BlockState{},
		Edges:     []models.EdgeState{},
		Variables: map[string]models.Variable{},
	}, nil
}

type wsOpStore struct{}

func (wsOpStore) ApplyOperation(context.Context, services.OperationInput) (time.Time, error) {
	return time.Now(), nil
}

type wsFieldStore struct{}

func (wsFieldStore) WorkflowExists(context.Context, string) (bool, error) { return true, nil }
func (wsFieldStore) MergeSubblockValue(context.Context, string, string, string, any) error {
	return nil
}
func (wsFieldStore) MergeVariableField(context.Context, string, string, string, any) error {
	return nil
}

// wsTestServer builds a Server whose websocket route is backed by a real
// collaboration manager over in-memory stores.
func wsTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	rooms := collab.NewRooms(wsAccess{}, wsState{})
	ops := collab.NewOperations(rooms, wsOpStore{})
	updater := collab.NewUpdater(rooms, wsFieldStore{})
	manager := collab.NewManager(rooms, ops, updater, 5*time.Second)

	s := NewServer(nil, nil, nil, manager, wsAccess{}, nil)
	server := httptest.NewServer(s.echo)
	t.Cleanup(server.Close)
	t.Cleanup(manager.Shutdown)
	return server
}

func dialWS(t *testing.T, ctx context.Context, server *httptest.Server, headers http.Header) *websocket.Conn {
	t.Helper()
	url := "ws" + server.URL[len("http"):] + "/api/v1/ws"
	conn, _, err := websocket.Dial(ctx, url, &websocket.DialOptions{HTTPHeader: headers})
	require.NoError(t, err)
	return conn
}

func sendWSEvent(t *testing.T, ctx context.Context, conn *websocket.Conn, event string, payload any) {
	t.Helper()
	frame, err := json.Marshal(map[string]any{"event": event, "payload": payload})
	require.NoError(t, err)
	require.NoError(t, conn.Write(ctx, websocket.MessageText, frame))
}

func readWSEvent(t *testing.T, ctx context.Context, conn *websocket.Conn) (string, map[string]any) {
	t.Helper()
	readCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, data, err := conn.Read(readCtx)
	require.NoError(t, err)

	var env struct {
		Event   string          `json:"event"`
		Payload json.RawMessage `json:"payload"`
	}
	require.NoError(t, json.Unmarshal(data, &env))

	payload := map[string]any{}
	if len(env.Payload) > 0 {
		require.NoError(t, json.Unmarshal(env.Payload, &payload))
	}
	return env.Event, payload
}

func TestWSHandler_JoinDeliversState(t *testing.T) {
	server := wsTestServer(t)
	ctx := context.Background()

	headers := http.Header{}
	headers.Set("X-User-Id", "alice")
	headers.Set("X-User-Name", "Alice")
	conn := dialWS(t, ctx, server, headers)
	defer conn.Close(websocket.StatusNormalClosure, "")

	sendWSEvent(t, ctx, conn, "join-workflow", map[string]any{"workflowId": "wf-1"})

	event, payload := readWSEvent(t, ctx, conn)
	assert.Equal(t, "workflow-state", event)
	assert.Equal(t, "wf-1", payload["id"])
	assert.Equal(t, "Test Workflow", payload["name"])
}

func TestWSHandler_AnonymousSocketCannotJoin(t *testing.T) {
	server := wsTestServer(t)
	ctx := context.Background()

	conn := dialWS(t, ctx, server, nil)
	defer conn.Close(websocket.StatusNormalClosure, "")

	sendWSEvent(t, ctx, conn, "join-workflow", map[string]any{"workflowId": "wf-1"})

	event, payload := readWSEvent(t, ctx, conn)
	assert.Equal(t, "join-workflow-error", event)
	assert.Equal(t, "Authentication required", payload["error"])
}

func TestWSHandler_UnavailableWithoutManager(t *testing.T) {
	s := NewServer(nil, nil, nil, nil, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/ws", nil)
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
