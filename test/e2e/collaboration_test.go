package e2e

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weft-labs/weft/ent/permission"
	"github.com/weft-labs/weft/pkg/collab"
)

const waitTimeout = 5 * time.Second

// presenceUserIDs extracts the user ids from a presence-update payload.
func presenceUserIDs(evt *WSEvent) []string {
	users, _ := evt.Payload["users"].([]any)
	ids := make([]string, 0, len(users))
	for _, u := range users {
		if m, ok := u.(map[string]any); ok {
			if id, ok := m["userId"].(string); ok {
				ids = append(ids, id)
			}
		}
	}
	return ids
}

// presenceRole extracts one user's role from a presence-update payload.
func presenceRole(evt *WSEvent, userID string) string {
	users, _ := evt.Payload["users"].([]any)
	for _, u := range users {
		if m, ok := u.(map[string]any); ok {
			if m["userId"] == userID {
				role, _ := m["role"].(string)
				return role
			}
		}
	}
	return ""
}

func TestJoinAndPresence(t *testing.T) {
	app := NewTestApp(t)
	workflowID := app.CreateWorkflow("alice")

	alice := app.Connect("alice", "Alice")
	require.NoError(t, alice.Join(workflowID))

	// The joiner gets the current document; presence goes to everyone else.
	state, err := alice.WaitForEvent(collab.EventWorkflowState, waitTimeout)
	require.NoError(t, err)
	assert.Equal(t, workflowID, state.Payload["id"])
	assert.Equal(t, "Untitled workflow", state.Payload["name"])
	assert.Empty(t, alice.EventsByName(collab.EventPresenceUpdate))

	t.Run("stranger is rejected", func(t *testing.T) {
		mallory := app.Connect("mallory", "Mallory")
		require.NoError(t, mallory.Join(workflowID))

		evt, err := mallory.WaitForEvent(collab.EventJoinWorkflowError, waitTimeout)
		require.NoError(t, err)
		assert.Equal(t, "Access denied", evt.Payload["error"])
	})

	t.Run("anonymous socket is rejected", func(t *testing.T) {
		anon := app.Connect("", "")
		require.NoError(t, anon.Join(workflowID))

		evt, err := anon.WaitForEvent(collab.EventJoinWorkflowError, waitTimeout)
		require.NoError(t, err)
		assert.Equal(t, "Authentication required", evt.Payload["error"])
	})

	t.Run("unknown workflow is rejected", func(t *testing.T) {
		probe := app.Connect("alice", "Alice")
		require.NoError(t, probe.Join("no-such-workflow"))

		evt, err := probe.WaitForEvent(collab.EventJoinWorkflowError, waitTimeout)
		require.NoError(t, err)
		assert.Equal(t, "Workflow not found", evt.Payload["error"])
	})

	t.Run("second joiner updates presence", func(t *testing.T) {
		app.GrantRole(workflowID, "bob", permission.PermissionTypeRead)

		bob := app.Connect("bob", "Bob")
		require.NoError(t, bob.Join(workflowID))
		_, err := bob.WaitForEvent(collab.EventWorkflowState, waitTimeout)
		require.NoError(t, err)

		evt, err := alice.WaitForEvent(collab.EventPresenceUpdate, waitTimeout)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"alice", "bob"}, presenceUserIDs(evt))
		assert.Equal(t, "read", presenceRole(evt, "bob"))
		assert.Equal(t, "admin", presenceRole(evt, "alice"), "owner joins as admin without a grant")

		// Leaving shrinks the list for whoever stays.
		require.NoError(t, bob.Send(collab.EventLeaveWorkflow, nil))
		evt, err = alice.WaitForMatch(func(e WSEvent) bool {
			return e.Event == collab.EventPresenceUpdate && len(presenceUserIDs(&e)) == 1
		}, waitTimeout)
		require.NoError(t, err)
		assert.Equal(t, []string{"alice"}, presenceUserIDs(evt))
	})
}

func TestOperationRoundTrip(t *testing.T) {
	app := NewTestApp(t)
	workflowID := app.CreateWorkflow("alice")
	app.GrantRole(workflowID, "bob", permission.PermissionTypeWrite)

	alice := app.Connect("alice", "Alice")
	require.NoError(t, alice.Join(workflowID))
	_, err := alice.WaitForEvent(collab.EventWorkflowState, waitTimeout)
	require.NoError(t, err)

	bob := app.Connect("bob", "Bob")
	require.NoError(t, bob.Join(workflowID))
	_, err = bob.WaitForEvent(collab.EventWorkflowState, waitTimeout)
	require.NoError(t, err)

	require.NoError(t, alice.Send(collab.EventWorkflowOperation, collab.OperationMessage{
		OperationID: "op-1",
		Operation:   "add",
		Target:      "block",
		Payload: map[string]any{
			"id":       "block-1",
			"type":     "agent",
			"name":     "Research agent",
			"position": map[string]any{"x": 120, "y": 80},
		},
		Timestamp: time.Now().UnixMilli(),
	}))

	// Sender gets the ack with its own operation id and a server timestamp.
	confirmed, err := alice.WaitForEvent(collab.EventOperationConfirmed, waitTimeout)
	require.NoError(t, err)
	assert.Equal(t, "op-1", confirmed.Payload["operationId"])
	assert.Greater(t, confirmed.Payload["serverTimestamp"].(float64), float64(0))

	// The rest of the room gets the broadcast, sender excluded.
	broadcast, err := bob.WaitForEvent(collab.EventWorkflowOperation, waitTimeout)
	require.NoError(t, err)
	assert.Equal(t, "add", broadcast.Payload["operation"])
	assert.Equal(t, "block", broadcast.Payload["target"])
	assert.Equal(t, "alice", broadcast.Payload["userId"])
	payload := broadcast.Payload["payload"].(map[string]any)
	assert.Equal(t, "block-1", payload["id"])
	metadata := broadcast.Payload["metadata"].(map[string]any)
	assert.Equal(t, workflowID, metadata["workflowId"])
	assert.Equal(t, "op-1", metadata["operationId"])
	assert.Empty(t, alice.EventsByName(collab.EventWorkflowOperation), "sender must not receive its own echo")

	// Broadcast implies committed: the document already contains the block.
	state := app.State(workflowID)
	require.Contains(t, state.Blocks, "block-1")
	assert.Equal(t, "Research agent", state.Blocks["block-1"].Name)
	assert.Equal(t, 120.0, state.Blocks["block-1"].Position.X)
}

func TestOperationValidationEmitsBothForms(t *testing.T) {
	app := NewTestApp(t)
	workflowID := app.CreateWorkflow("alice")

	alice := app.Connect("alice", "Alice")
	require.NoError(t, alice.Join(workflowID))
	_, err := alice.WaitForEvent(collab.EventWorkflowState, waitTimeout)
	require.NoError(t, err)

	// Block add without a position fails schema validation.
	require.NoError(t, alice.Send(collab.EventWorkflowOperation, collab.OperationMessage{
		OperationID: "op-bad",
		Operation:   "add",
		Target:      "block",
		Payload:     map[string]any{"id": "block-1", "type": "agent"},
	}))

	failed, err := alice.WaitForEvent(collab.EventOperationFailed, waitTimeout)
	require.NoError(t, err)
	assert.Equal(t, "op-bad", failed.Payload["operationId"])
	assert.Equal(t, false, failed.Payload["retryable"])

	legacy, err := alice.WaitForEvent(collab.EventOperationError, waitTimeout)
	require.NoError(t, err)
	assert.Equal(t, collab.ErrTypeValidation, legacy.Payload["type"])
	assert.Equal(t, "add", legacy.Payload["operation"])

	assert.Empty(t, app.State(workflowID).Blocks, "rejected operation must not persist")

	t.Run("operation before join", func(t *testing.T) {
		drifter := app.Connect("alice", "Alice")
		require.NoError(t, drifter.Send(collab.EventWorkflowOperation, collab.OperationMessage{
			Operation: "add",
			Target:    "block",
		}))

		evt, err := drifter.WaitForEvent(collab.EventOperationError, waitTimeout)
		require.NoError(t, err)
		assert.Equal(t, collab.ErrTypeNotInRoom, evt.Payload["type"])
	})

	t.Run("unknown event name", func(t *testing.T) {
		require.NoError(t, alice.Send("workflow-teleport", map[string]any{}))

		evt, err := alice.WaitForEvent(collab.EventError, waitTimeout)
		require.NoError(t, err)
		assert.Equal(t, collab.ErrTypeUnknownEvent, evt.Payload["type"])
	})
}

func TestReadOnlyRoleIsForbidden(t *testing.T) {
	app := NewTestApp(t)
	workflowID := app.CreateWorkflow("alice")
	app.GrantRole(workflowID, "bob", permission.PermissionTypeRead)

	bob := app.Connect("bob", "Bob")
	require.NoError(t, bob.Join(workflowID))
	_, err := bob.WaitForEvent(collab.EventWorkflowState, waitTimeout)
	require.NoError(t, err)

	require.NoError(t, bob.Send(collab.EventWorkflowOperation, collab.OperationMessage{
		Operation: "add",
		Target:    "block",
		Payload: map[string]any{
			"id":       "block-1",
			"type":     "agent",
			"position": map[string]any{"x": 0, "y": 0},
		},
	}))

	evt, err := bob.WaitForEvent(collab.EventOperationForbidden, waitTimeout)
	require.NoError(t, err)
	assert.Equal(t, collab.ErrTypeInsufficientPermissions, evt.Payload["type"])
	assert.Equal(t, "add", evt.Payload["operation"])

	assert.Empty(t, app.State(workflowID).Blocks, "forbidden operation must not persist")
}

func TestSubblockUpdateCoalescing(t *testing.T) {
	app := NewTestApp(t)
	workflowID := app.CreateWorkflow("alice")
	app.GrantRole(workflowID, "bob", permission.PermissionTypeWrite)

	alice := app.Connect("alice", "Alice")
	require.NoError(t, alice.Join(workflowID))
	_, err := alice.WaitForEvent(collab.EventWorkflowState, waitTimeout)
	require.NoError(t, err)

	bob := app.Connect("bob", "Bob")
	require.NoError(t, bob.Join(workflowID))
	_, err = bob.WaitForEvent(collab.EventWorkflowState, waitTimeout)
	require.NoError(t, err)

	require.NoError(t, alice.Send(collab.EventWorkflowOperation, collab.OperationMessage{
		OperationID: "op-add",
		Operation:   "add",
		Target:      "block",
		Payload: map[string]any{
			"id":       "block-1",
			"type":     "agent",
			"position": map[string]any{"x": 0, "y": 0},
		},
	}))
	_, err = alice.WaitForEvent(collab.EventOperationConfirmed, waitTimeout)
	require.NoError(t, err)

	// A keystroke burst on one field: only the last value may reach storage
	// and the room.
	for i, value := range []string{"h", "he", "hello"} {
		require.NoError(t, alice.Send(collab.EventSubblockUpdate, collab.SubblockUpdateMessage{
			BlockID:     "block-1",
			SubblockID:  "prompt",
			Value:       value,
			Timestamp:   time.Now().UnixMilli(),
			OperationID: []string{"u-1", "u-2", "u-3"}[i],
		}))
	}

	// Every burst participant is acked once the single flush lands.
	for _, opID := range []string{"u-1", "u-2", "u-3"} {
		id := opID
		_, err := alice.WaitForMatch(func(e WSEvent) bool {
			return e.Event == collab.EventOperationConfirmed && e.Payload["operationId"] == id
		}, waitTimeout)
		require.NoError(t, err, "missing ack for %s", id)
	}

	// The room sees one broadcast carrying the final value.
	evt, err := bob.WaitForEvent(collab.EventSubblockUpdate, waitTimeout)
	require.NoError(t, err)
	assert.Equal(t, "block-1", evt.Payload["blockId"])
	assert.Equal(t, "prompt", evt.Payload["subblockId"])
	assert.Equal(t, "hello", evt.Payload["value"])

	time.Sleep(100 * time.Millisecond)
	assert.Len(t, bob.EventsByName(collab.EventSubblockUpdate), 1, "burst must coalesce into one broadcast")
	assert.Empty(t, alice.EventsByName(collab.EventSubblockUpdate), "contributors keep their optimistic value")

	state := app.State(workflowID)
	assert.Equal(t, "hello", state.Blocks["block-1"].SubBlocks["prompt"].Value)
}

func TestVariableUpdateRoundTrip(t *testing.T) {
	app := NewTestApp(t)
	workflowID := app.CreateWorkflow("alice")
	app.GrantRole(workflowID, "bob", permission.PermissionTypeWrite)

	alice := app.Connect("alice", "Alice")
	require.NoError(t, alice.Join(workflowID))
	_, err := alice.WaitForEvent(collab.EventWorkflowState, waitTimeout)
	require.NoError(t, err)

	bob := app.Connect("bob", "Bob")
	require.NoError(t, bob.Join(workflowID))
	_, err = bob.WaitForEvent(collab.EventWorkflowState, waitTimeout)
	require.NoError(t, err)

	require.NoError(t, alice.Send(collab.EventWorkflowOperation, collab.OperationMessage{
		OperationID: "op-var",
		Operation:   "add",
		Target:      "variable",
		Payload:     map[string]any{"id": "var-1", "name": "city", "type": "string", "value": "Oslo"},
	}))
	_, err = alice.WaitForEvent(collab.EventOperationConfirmed, waitTimeout)
	require.NoError(t, err)

	require.NoError(t, alice.Send(collab.EventVariableUpdate, collab.VariableUpdateMessage{
		VariableID:  "var-1",
		Field:       "value",
		Value:       "Bergen",
		Timestamp:   time.Now().UnixMilli(),
		OperationID: "u-var",
	}))

	evt, err := bob.WaitForEvent(collab.EventVariableUpdate, waitTimeout)
	require.NoError(t, err)
	assert.Equal(t, "var-1", evt.Payload["variableId"])
	assert.Equal(t, "value", evt.Payload["field"])
	assert.Equal(t, "Bergen", evt.Payload["value"])

	state := app.State(workflowID)
	assert.Equal(t, "Bergen", state.Variables["var-1"].Value)

	t.Run("update for vanished variable fails the operation", func(t *testing.T) {
		require.NoError(t, alice.Send(collab.EventVariableUpdate, collab.VariableUpdateMessage{
			VariableID:  "ghost",
			Field:       "value",
			Value:       "x",
			OperationID: "u-ghost",
		}))

		evt, err := alice.WaitForMatch(func(e WSEvent) bool {
			return e.Event == collab.EventOperationFailed && e.Payload["operationId"] == "u-ghost"
		}, waitTimeout)
		require.NoError(t, err)
		assert.Equal(t, "Variable no longer exists", evt.Payload["error"])
		assert.Equal(t, false, evt.Payload["retryable"])
	})
}

func TestPositionFastPath(t *testing.T) {
	app := NewTestApp(t)
	workflowID := app.CreateWorkflow("alice")
	app.GrantRole(workflowID, "bob", permission.PermissionTypeWrite)

	alice := app.Connect("alice", "Alice")
	require.NoError(t, alice.Join(workflowID))
	_, err := alice.WaitForEvent(collab.EventWorkflowState, waitTimeout)
	require.NoError(t, err)

	bob := app.Connect("bob", "Bob")
	require.NoError(t, bob.Join(workflowID))
	_, err = bob.WaitForEvent(collab.EventWorkflowState, waitTimeout)
	require.NoError(t, err)

	require.NoError(t, alice.Send(collab.EventWorkflowOperation, collab.OperationMessage{
		OperationID: "op-add",
		Operation:   "add",
		Target:      "block",
		Payload: map[string]any{
			"id":       "block-1",
			"type":     "agent",
			"position": map[string]any{"x": 0, "y": 0},
		},
	}))
	_, err = alice.WaitForEvent(collab.EventOperationConfirmed, waitTimeout)
	require.NoError(t, err)

	// Drag move: broadcast only, nothing persisted, no ack.
	require.NoError(t, alice.Send(collab.EventWorkflowOperation, collab.OperationMessage{
		OperationID: "op-drag",
		Operation:   "update-position",
		Target:      "block",
		Payload: map[string]any{
			"id":       "block-1",
			"position": map[string]any{"x": 50, "y": 10},
		},
	}))

	drag, err := bob.WaitForMatch(func(e WSEvent) bool {
		if e.Event != collab.EventWorkflowOperation {
			return false
		}
		return e.Payload["operation"] == "update-position"
	}, waitTimeout)
	require.NoError(t, err)
	metadata := drag.Payload["metadata"].(map[string]any)
	assert.Equal(t, true, metadata["isPositionUpdate"])
	assert.Equal(t, 0.0, app.State(workflowID).Blocks["block-1"].Position.X, "drag moves stay off storage")

	// Drag end: broadcast first, persistence and ack follow.
	require.NoError(t, alice.Send(collab.EventWorkflowOperation, collab.OperationMessage{
		OperationID: "op-commit",
		Operation:   "update-position",
		Target:      "block",
		Payload: map[string]any{
			"id":       "block-1",
			"position": map[string]any{"x": 200, "y": 100},
			"commit":   true,
		},
	}))

	_, err = alice.WaitForMatch(func(e WSEvent) bool {
		return e.Event == collab.EventOperationConfirmed && e.Payload["operationId"] == "op-commit"
	}, waitTimeout)
	require.NoError(t, err)

	state := app.State(workflowID)
	assert.Equal(t, 200.0, state.Blocks["block-1"].Position.X)
	assert.Equal(t, 100.0, state.Blocks["block-1"].Position.Y)
}

func TestRequestSyncWithoutMembership(t *testing.T) {
	app := NewTestApp(t)
	workflowID := app.CreateWorkflow("alice")
	app.GrantRole(workflowID, "bob", permission.PermissionTypeRead)

	// Sync needs access but not room membership.
	bob := app.Connect("bob", "Bob")
	require.NoError(t, bob.Send(collab.EventRequestSync, collab.JoinPayload{WorkflowID: workflowID}))

	state, err := bob.WaitForEvent(collab.EventWorkflowState, waitTimeout)
	require.NoError(t, err)
	assert.Equal(t, workflowID, state.Payload["id"])

	t.Run("stranger cannot sync", func(t *testing.T) {
		mallory := app.Connect("mallory", "Mallory")
		require.NoError(t, mallory.Send(collab.EventRequestSync, collab.JoinPayload{WorkflowID: workflowID}))

		evt, err := mallory.WaitForEvent(collab.EventJoinWorkflowError, waitTimeout)
		require.NoError(t, err)
		assert.Equal(t, "Access denied", evt.Payload["error"])
	})
}
