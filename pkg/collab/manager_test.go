package collab

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weft-labs/weft/pkg/models"
	"github.com/weft-labs/weft/pkg/services"
)

// fakeAccess implements AccessChecker. Users absent from roles have no access.
type fakeAccess struct {
	mu    sync.Mutex
	roles map[string]string
	err   error
	calls int
}

func (f *fakeAccess) VerifyWorkflowAccess(_ context.Context, userID, _ string) (*services.AccessResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	role, ok := f.roles[userID]
	if !ok {
		return &services.AccessResult{HasAccess: false}, nil
	}
	return &services.AccessResult{HasAccess: true, Role: role}, nil
}

func (f *fakeAccess) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// fakeState implements StateLoader with a canned document.
type fakeState struct {
	mu    sync.Mutex
	state models.WorkflowState
	err   error
}

func (f *fakeState) GetWorkflowState(_ context.Context, workflowID string) (*models.WorkflowState, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	st := f.state
	st.ID = workflowID
	return &st, nil
}

func (f *fakeState) setErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

// fakeOpStore implements OperationStore and records what it was asked to
// persist.
type fakeOpStore struct {
	mu      sync.Mutex
	applied []services.OperationInput
	err     error
}

func (f *fakeOpStore) ApplyOperation(_ context.Context, in services.OperationInput) (time.Time, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return time.Time{}, f.err
	}
	f.applied = append(f.applied, in)
	return time.Now(), nil
}

func (f *fakeOpStore) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.applied)
}

func (f *fakeOpStore) last() services.OperationInput {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.applied[len(f.applied)-1]
}

type subblockWrite struct {
	workflowID, blockID, subblockID string
	value                           any
}

type variableWrite struct {
	workflowID, variableID, field string
	value                         any
}

// fakeFieldStore implements FieldStore and records merges.
type fakeFieldStore struct {
	mu        sync.Mutex
	exists    bool
	existsErr error
	mergeErr  error
	subblocks []subblockWrite
	variables []variableWrite
}

func (f *fakeFieldStore) WorkflowExists(_ context.Context, _ string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.exists, f.existsErr
}

func (f *fakeFieldStore) MergeSubblockValue(_ context.Context, workflowID, blockID, subblockID string, value any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.mergeErr != nil {
		return f.mergeErr
	}
	f.subblocks = append(f.subblocks, subblockWrite{workflowID, blockID, subblockID, value})
	return nil
}

func (f *fakeFieldStore) MergeVariableField(_ context.Context, workflowID, variableID, field string, value any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.mergeErr != nil {
		return f.mergeErr
	}
	f.variables = append(f.variables, variableWrite{workflowID, variableID, field, value})
	return nil
}

func (f *fakeFieldStore) subblockWrites() []subblockWrite {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]subblockWrite(nil), f.subblocks...)
}

func (f *fakeFieldStore) variableWrites() []variableWrite {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]variableWrite(nil), f.variables...)
}

type collabHarness struct {
	manager *Manager
	rooms   *Rooms
	updater *Updater
	access  *fakeAccess
	state   *fakeState
	store   *fakeOpStore
	fields  *fakeFieldStore
	server  *httptest.Server
}

func setupCollab(t *testing.T) *collabHarness {
	return setupCollabDebounce(t, debounceInterval)
}

// setupCollabDebounce wires a full manager over fakes behind an httptest
// server. Identity comes from the X-User-Id / X-User-Name request headers,
// standing in for the API layer's authenticator.
func setupCollabDebounce(t *testing.T, debounce time.Duration) *collabHarness {
	t.Helper()

	access := &fakeAccess{roles: map[string]string{}}
	state := &fakeState{state: models.WorkflowState{
		Name: "pipeline",
		Blocks: map[string]models.BlockState{
			"blk-1": {ID: "blk-1", Type: "agent", Name: "Agent", Enabled: true, SubBlocks: map[string]models.Subblock{}},
		},
		Variables: map[string]models.Variable{},
	}}
	store := &fakeOpStore{}
	fields := &fakeFieldStore{exists: true}

	rooms := NewRooms(access, state)
	ops := NewOperations(rooms, store)
	updater := NewUpdater(rooms, fields)
	updater.debounce = debounce
	manager := NewManager(rooms, ops, updater, 5*time.Second)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
		if err != nil {
			t.Logf("websocket accept error: %v", err)
			return
		}
		manager.HandleConnection(r.Context(), conn, r.Header.Get("X-User-Id"), r.Header.Get("X-User-Name"))
	}))
	t.Cleanup(server.Close)

	return &collabHarness{
		manager: manager,
		rooms:   rooms,
		updater: updater,
		access:  access,
		state:   state,
		store:   store,
		fields:  fields,
		server:  server,
	}
}

func (h *collabHarness) connect(t *testing.T, userID, userName string) *websocket.Conn {
	t.Helper()
	url := "ws" + h.server.URL[len("http"):]
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	header := http.Header{}
	if userID != "" {
		header.Set("X-User-Id", userID)
		header.Set("X-User-Name", userName)
	}
	conn, _, err := websocket.Dial(ctx, url, &websocket.DialOptions{HTTPHeader: header})
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

func sendEvent(t *testing.T, conn *websocket.Conn, event string, payload any) {
	t.Helper()
	data, err := json.Marshal(payload)
	require.NoError(t, err)
	frame, err := json.Marshal(Envelope{Event: event, Payload: data})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, conn.Write(ctx, websocket.MessageText, frame))
}

func readEvent(t *testing.T, conn *websocket.Conn) (string, map[string]any) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)

	var env struct {
		Event   string         `json:"event"`
		Payload map[string]any `json:"payload"`
	}
	require.NoError(t, json.Unmarshal(data, &env))
	return env.Event, env.Payload
}

// expectNoEvent asserts nothing arrives on the connection within 200ms.
func expectNoEvent(t *testing.T, conn *websocket.Conn) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	_, _, err := conn.Read(ctx)
	assert.Error(t, err, "expected no event on this connection")
}

// joinWorkflow joins and swallows the workflow-state reply.
func joinWorkflow(t *testing.T, conn *websocket.Conn, workflowID string) {
	t.Helper()
	sendEvent(t, conn, EventJoinWorkflow, JoinPayload{WorkflowID: workflowID})
	event, _ := readEvent(t, conn)
	require.Equal(t, EventWorkflowState, event)
}

func TestManager_UnknownEvent(t *testing.T) {
	h := setupCollab(t)
	conn := h.connect(t, "alice", "Alice")

	sendEvent(t, conn, "frobnicate", map[string]any{})
	event, payload := readEvent(t, conn)
	assert.Equal(t, EventError, event)
	assert.Equal(t, ErrTypeUnknownEvent, payload["type"])
	assert.Contains(t, payload["message"], "frobnicate")

	// The connection survives the error.
	sendEvent(t, conn, "another-bad-one", map[string]any{})
	event, _ = readEvent(t, conn)
	assert.Equal(t, EventError, event)
}

func TestManager_InvalidJSONIgnored(t *testing.T) {
	h := setupCollab(t)
	conn := h.connect(t, "alice", "Alice")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, conn.Write(ctx, websocket.MessageText, []byte("not json")))

	expectNoEvent(t, conn)

	// Still alive: a well-formed unknown event gets an answer.
	sendEvent(t, conn, "ping", nil)
	event, payload := readEvent(t, conn)
	assert.Equal(t, EventError, event)
	assert.Equal(t, ErrTypeUnknownEvent, payload["type"])
}

func TestManager_JoinRequiresAuthentication(t *testing.T) {
	h := setupCollab(t)
	conn := h.connect(t, "", "")

	sendEvent(t, conn, EventJoinWorkflow, JoinPayload{WorkflowID: "wf-1"})
	event, payload := readEvent(t, conn)
	assert.Equal(t, EventJoinWorkflowError, event)
	assert.Equal(t, "Authentication required", payload["error"])

	// Anonymous sockets stay connected.
	require.Eventually(t, func() bool { return h.manager.ActiveSockets() == 1 },
		2*time.Second, 10*time.Millisecond)
}

func TestManager_DisconnectCleansUpRoom(t *testing.T) {
	h := setupCollab(t)
	h.access.roles["alice"] = "admin"
	h.access.roles["bob"] = "write"

	alice := h.connect(t, "alice", "Alice")
	joinWorkflow(t, alice, "wf-1")

	bob := h.connect(t, "bob", "Bob")
	joinWorkflow(t, bob, "wf-1")

	// Alice sees Bob arrive.
	event, payload := readEvent(t, alice)
	require.Equal(t, EventPresenceUpdate, event)
	require.Len(t, payload["users"], 2)

	bob.Close(websocket.StatusNormalClosure, "")

	// Alice sees Bob go.
	event, payload = readEvent(t, alice)
	assert.Equal(t, EventPresenceUpdate, event)
	users := payload["users"].([]any)
	require.Len(t, users, 1)
	assert.Equal(t, "alice", users[0].(map[string]any)["userId"])

	require.Eventually(t, func() bool { return h.manager.ActiveSockets() == 1 },
		2*time.Second, 10*time.Millisecond)
	assert.Equal(t, 1, h.rooms.RoomCount())
}

func TestManager_ShutdownClosesSockets(t *testing.T) {
	h := setupCollab(t)
	h.access.roles["alice"] = "admin"

	conn := h.connect(t, "alice", "Alice")
	joinWorkflow(t, conn, "wf-1")

	h.manager.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, _, err := conn.Read(ctx)
	assert.Error(t, err)

	require.Eventually(t, func() bool { return h.manager.ActiveSockets() == 0 },
		2*time.Second, 10*time.Millisecond)

	// New sockets are refused after shutdown.
	late := h.connect(t, "alice", "Alice")
	lateCtx, lateCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer lateCancel()
	_, _, err = late.Read(lateCtx)
	assert.Error(t, err)
}
