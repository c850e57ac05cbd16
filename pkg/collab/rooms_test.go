package collab

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weft-labs/weft/pkg/services"
)

func TestRooms_JoinDeliversWorkflowState(t *testing.T) {
	h := setupCollab(t)
	h.access.roles["alice"] = "admin"

	conn := h.connect(t, "alice", "Alice")
	sendEvent(t, conn, EventJoinWorkflow, JoinPayload{WorkflowID: "wf-1"})

	event, payload := readEvent(t, conn)
	require.Equal(t, EventWorkflowState, event)
	assert.Equal(t, "wf-1", payload["id"])
	assert.Equal(t, "pipeline", payload["name"])
	blocks := payload["blocks"].(map[string]any)
	assert.Contains(t, blocks, "blk-1")

	assert.Equal(t, 1, h.rooms.RoomCount())
	presences := h.rooms.Presences("wf-1")
	require.Len(t, presences, 1)
	assert.Equal(t, "alice", presences[0].UserID)
	assert.Equal(t, "admin", presences[0].Role)
}

func TestRooms_JoinAccessDenied(t *testing.T) {
	h := setupCollab(t)

	conn := h.connect(t, "mallory", "Mallory")
	sendEvent(t, conn, EventJoinWorkflow, JoinPayload{WorkflowID: "wf-1"})

	event, payload := readEvent(t, conn)
	assert.Equal(t, EventJoinWorkflowError, event)
	assert.Equal(t, "Access denied", payload["error"])
	assert.Equal(t, 0, h.rooms.RoomCount())
}

func TestRooms_JoinWorkflowNotFound(t *testing.T) {
	h := setupCollab(t)
	h.access.err = services.ErrWorkflowNotFound

	conn := h.connect(t, "alice", "Alice")
	sendEvent(t, conn, EventJoinWorkflow, JoinPayload{WorkflowID: "wf-missing"})

	event, payload := readEvent(t, conn)
	assert.Equal(t, EventJoinWorkflowError, event)
	assert.Equal(t, "Workflow not found", payload["error"])
}

func TestRooms_JoinAccessCheckFailure(t *testing.T) {
	h := setupCollab(t)
	h.access.err = errors.New("database unreachable")

	conn := h.connect(t, "alice", "Alice")
	sendEvent(t, conn, EventJoinWorkflow, JoinPayload{WorkflowID: "wf-1"})

	event, payload := readEvent(t, conn)
	assert.Equal(t, EventJoinWorkflowError, event)
	assert.Equal(t, "Failed to verify workflow access", payload["error"])
}

func TestRooms_JoinStateLoadFailureKeepsMembership(t *testing.T) {
	h := setupCollab(t)
	h.access.roles["alice"] = "admin"
	h.state.setErr(errors.New("query timeout"))

	conn := h.connect(t, "alice", "Alice")
	sendEvent(t, conn, EventJoinWorkflow, JoinPayload{WorkflowID: "wf-1"})

	event, payload := readEvent(t, conn)
	require.Equal(t, EventJoinWorkflowError, event)
	assert.Equal(t, "Failed to load workflow state", payload["error"])

	// Membership stands; once storage recovers a sync works.
	require.Len(t, h.rooms.Presences("wf-1"), 1)
	h.state.setErr(nil)

	sendEvent(t, conn, EventRequestSync, JoinPayload{WorkflowID: "wf-1"})
	event, payload = readEvent(t, conn)
	assert.Equal(t, EventWorkflowState, event)
	assert.Equal(t, "wf-1", payload["id"])
}

func TestRooms_PresenceBroadcastOnJoinAndLeave(t *testing.T) {
	h := setupCollab(t)
	h.access.roles["alice"] = "admin"
	h.access.roles["bob"] = "write"

	alice := h.connect(t, "alice", "Alice")
	joinWorkflow(t, alice, "wf-1")

	bob := h.connect(t, "bob", "Bob")
	joinWorkflow(t, bob, "wf-1")

	event, payload := readEvent(t, alice)
	require.Equal(t, EventPresenceUpdate, event)
	assert.Equal(t, "wf-1", payload["workflowId"])
	users := payload["users"].([]any)
	require.Len(t, users, 2)

	roles := map[string]string{}
	for _, u := range users {
		m := u.(map[string]any)
		roles[m["userId"].(string)] = m["role"].(string)
	}
	assert.Equal(t, "admin", roles["alice"])
	assert.Equal(t, "write", roles["bob"])

	// Leaving shrinks the list for the others; the leaver hears nothing.
	sendEvent(t, bob, EventLeaveWorkflow, nil)
	event, payload = readEvent(t, alice)
	assert.Equal(t, EventPresenceUpdate, event)
	require.Len(t, payload["users"], 1)
	expectNoEvent(t, bob)
}

func TestRooms_JoinSwitchesRooms(t *testing.T) {
	h := setupCollab(t)
	h.access.roles["alice"] = "admin"
	h.access.roles["bob"] = "admin"

	alice := h.connect(t, "alice", "Alice")
	joinWorkflow(t, alice, "wf-1")

	bob := h.connect(t, "bob", "Bob")
	joinWorkflow(t, bob, "wf-1")

	event, _ := readEvent(t, alice)
	require.Equal(t, EventPresenceUpdate, event)

	// Bob moves to another workflow: Alice sees him leave, Bob gets the new
	// room's state.
	sendEvent(t, bob, EventJoinWorkflow, JoinPayload{WorkflowID: "wf-2"})
	event, payload := readEvent(t, bob)
	require.Equal(t, EventWorkflowState, event)
	assert.Equal(t, "wf-2", payload["id"])

	event, payload = readEvent(t, alice)
	assert.Equal(t, EventPresenceUpdate, event)
	users := payload["users"].([]any)
	require.Len(t, users, 1)
	assert.Equal(t, "alice", users[0].(map[string]any)["userId"])

	assert.Equal(t, 2, h.rooms.RoomCount())
	require.Len(t, h.rooms.Presences("wf-2"), 1)
}

func TestRooms_RequestSyncDoesNotJoin(t *testing.T) {
	h := setupCollab(t)
	h.access.roles["alice"] = "admin"

	conn := h.connect(t, "alice", "Alice")
	sendEvent(t, conn, EventRequestSync, JoinPayload{WorkflowID: "wf-1"})

	event, payload := readEvent(t, conn)
	assert.Equal(t, EventWorkflowState, event)
	assert.Equal(t, "wf-1", payload["id"])
	assert.Equal(t, 0, h.rooms.RoomCount())
}

func TestRooms_RequestSyncRequiresAuthentication(t *testing.T) {
	h := setupCollab(t)

	conn := h.connect(t, "", "")
	sendEvent(t, conn, EventRequestSync, JoinPayload{WorkflowID: "wf-1"})

	event, payload := readEvent(t, conn)
	assert.Equal(t, EventJoinWorkflowError, event)
	assert.Equal(t, "Authentication required", payload["error"])
}

func TestRooms_RequestSyncAccessDenied(t *testing.T) {
	h := setupCollab(t)

	conn := h.connect(t, "mallory", "Mallory")
	sendEvent(t, conn, EventRequestSync, JoinPayload{WorkflowID: "wf-1"})

	event, payload := readEvent(t, conn)
	assert.Equal(t, EventJoinWorkflowError, event)
	assert.Equal(t, "Access denied", payload["error"])
}

func TestRooms_JoinMissingWorkflowID(t *testing.T) {
	h := setupCollab(t)

	conn := h.connect(t, "alice", "Alice")
	sendEvent(t, conn, EventJoinWorkflow, map[string]any{})

	event, payload := readEvent(t, conn)
	assert.Equal(t, EventJoinWorkflowError, event)
	assert.Equal(t, "workflowId is required", payload["error"])
}
