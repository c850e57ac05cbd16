package collab

import (
	"errors"
	"testing"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weft-labs/weft/pkg/services"
)

func addBlockPayload(id string) map[string]any {
	return map[string]any{
		"id":       id,
		"type":     "agent",
		"name":     "New Agent",
		"position": map[string]any{"x": 100, "y": 200},
	}
}

func TestOperations_PersistThenBroadcast(t *testing.T) {
	h := setupCollab(t)
	h.access.roles["alice"] = "admin"
	h.access.roles["bob"] = "write"

	alice := h.connect(t, "alice", "Alice")
	joinWorkflow(t, alice, "wf-1")
	bob := h.connect(t, "bob", "Bob")
	joinWorkflow(t, bob, "wf-1")
	readEvent(t, alice) // presence for bob

	sendEvent(t, alice, EventWorkflowOperation, OperationMessage{
		OperationID: "op-1",
		Operation:   "add",
		Target:      "block",
		Payload:     addBlockPayload("blk-2"),
		Timestamp:   123456,
	})

	event, payload := readEvent(t, alice)
	require.Equal(t, EventOperationConfirmed, event)
	assert.Equal(t, "op-1", payload["operationId"])
	assert.Greater(t, payload["serverTimestamp"].(float64), float64(0))

	event, payload = readEvent(t, bob)
	require.Equal(t, EventWorkflowOperation, event)
	assert.NotEmpty(t, payload["senderId"])
	assert.Equal(t, "alice", payload["userId"])
	assert.Equal(t, "Alice", payload["userName"])
	assert.Equal(t, "add", payload["operation"])
	assert.Equal(t, "block", payload["target"])
	assert.Equal(t, float64(123456), payload["timestamp"])
	metadata := payload["metadata"].(map[string]any)
	assert.Equal(t, "wf-1", metadata["workflowId"])
	assert.Equal(t, "op-1", metadata["operationId"])
	assert.Nil(t, metadata["isPositionUpdate"])

	require.Equal(t, 1, h.store.count())
	applied := h.store.last()
	assert.Equal(t, "wf-1", applied.WorkflowID)
	assert.Equal(t, "alice", applied.UserID)
	assert.Equal(t, "add", applied.Operation)
	assert.Equal(t, int64(123456), applied.Timestamp)

	// The sender never receives its own broadcast.
	expectNoEvent(t, alice)
}

func TestOperations_ReadRoleForbiddenWithoutRefetch(t *testing.T) {
	h := setupCollab(t)
	h.access.roles["carol"] = "read"

	carol := h.connect(t, "carol", "Carol")
	joinWorkflow(t, carol, "wf-1")
	checksAfterJoin := h.access.callCount()

	sendEvent(t, carol, EventWorkflowOperation, OperationMessage{
		OperationID: "op-1",
		Operation:   "add",
		Target:      "block",
		Payload:     addBlockPayload("blk-2"),
		Timestamp:   1,
	})

	event, payload := readEvent(t, carol)
	assert.Equal(t, EventOperationForbidden, event)
	assert.Equal(t, ErrTypeInsufficientPermissions, payload["type"])
	assert.Equal(t, "add", payload["operation"])
	assert.Equal(t, "block", payload["target"])

	assert.Equal(t, 0, h.store.count())
	// Authorisation came from the cached role, not a second access check.
	assert.Equal(t, checksAfterJoin, h.access.callCount())
}

func TestOperations_UnknownOperationEmitsBothErrorForms(t *testing.T) {
	h := setupCollab(t)
	h.access.roles["alice"] = "admin"

	alice := h.connect(t, "alice", "Alice")
	joinWorkflow(t, alice, "wf-1")

	sendEvent(t, alice, EventWorkflowOperation, OperationMessage{
		OperationID: "op-9",
		Operation:   "explode",
		Target:      "block",
		Timestamp:   1,
	})

	event, payload := readEvent(t, alice)
	require.Equal(t, EventOperationFailed, event)
	assert.Equal(t, "op-9", payload["operationId"])
	assert.Equal(t, false, payload["retryable"])

	event, payload = readEvent(t, alice)
	require.Equal(t, EventOperationError, event)
	assert.Equal(t, ErrTypeValidation, payload["type"])
	assert.Equal(t, "explode", payload["operation"])

	assert.Equal(t, 0, h.store.count())
}

func TestOperations_StoreValidationErrorNotRetryable(t *testing.T) {
	h := setupCollab(t)
	h.access.roles["alice"] = "admin"
	h.store.err = services.NewValidationError("id", "required")

	alice := h.connect(t, "alice", "Alice")
	joinWorkflow(t, alice, "wf-1")

	sendEvent(t, alice, EventWorkflowOperation, OperationMessage{
		OperationID: "op-1",
		Operation:   "add",
		Target:      "block",
		Payload:     map[string]any{},
		Timestamp:   1,
	})

	event, payload := readEvent(t, alice)
	require.Equal(t, EventOperationFailed, event)
	assert.Equal(t, false, payload["retryable"])

	event, _ = readEvent(t, alice)
	assert.Equal(t, EventOperationError, event)
}

func TestOperations_MissingTargetNotRetryable(t *testing.T) {
	h := setupCollab(t)
	h.access.roles["alice"] = "admin"
	h.store.err = services.ErrNotFound

	alice := h.connect(t, "alice", "Alice")
	joinWorkflow(t, alice, "wf-1")

	sendEvent(t, alice, EventWorkflowOperation, OperationMessage{
		OperationID: "op-1",
		Operation:   "remove",
		Target:      "edge",
		Payload:     map[string]any{"id": "edge-404"},
		Timestamp:   1,
	})

	event, payload := readEvent(t, alice)
	require.Equal(t, EventOperationFailed, event)
	assert.Equal(t, "Edge not found", payload["error"])
	assert.Equal(t, false, payload["retryable"])
}

func TestOperations_StorageFailureRetryableAndNotBroadcast(t *testing.T) {
	h := setupCollab(t)
	h.access.roles["alice"] = "admin"
	h.access.roles["bob"] = "write"
	h.store.err = errors.New("connection reset")

	alice := h.connect(t, "alice", "Alice")
	joinWorkflow(t, alice, "wf-1")
	bob := h.connect(t, "bob", "Bob")
	joinWorkflow(t, bob, "wf-1")
	readEvent(t, alice) // presence for bob

	sendEvent(t, alice, EventWorkflowOperation, OperationMessage{
		OperationID: "op-1",
		Operation:   "add",
		Target:      "block",
		Payload:     addBlockPayload("blk-2"),
		Timestamp:   1,
	})

	event, payload := readEvent(t, alice)
	require.Equal(t, EventOperationFailed, event)
	assert.Equal(t, true, payload["retryable"])

	// Persist-then-broadcast: a failed persist reaches nobody else.
	expectNoEvent(t, bob)
}

func TestOperations_PositionFastPathSkipsStorageAndAck(t *testing.T) {
	h := setupCollab(t)
	h.access.roles["alice"] = "admin"
	h.access.roles["bob"] = "write"
	h.access.roles["carol"] = "read"

	alice := h.connect(t, "alice", "Alice")
	joinWorkflow(t, alice, "wf-1")
	bob := h.connect(t, "bob", "Bob")
	joinWorkflow(t, bob, "wf-1")
	readEvent(t, alice) // presence for bob
	carol := h.connect(t, "carol", "Carol")
	joinWorkflow(t, carol, "wf-1")
	readEvent(t, alice) // presence for carol
	readEvent(t, bob)   // presence for carol

	sendEvent(t, alice, EventWorkflowOperation, OperationMessage{
		OperationID: "op-drag",
		Operation:   "update-position",
		Target:      "block",
		Payload: map[string]any{
			"id":       "blk-1",
			"position": map[string]any{"x": 10, "y": 20},
			"commit":   false,
		},
		Timestamp: 777,
	})

	for _, conn := range []*websocket.Conn{bob, carol} {
		event, payload := readEvent(t, conn)
		require.Equal(t, EventWorkflowOperation, event)
		assert.Equal(t, "update-position", payload["operation"])
		// Client clock is carried unchanged so receivers can re-order drags.
		assert.Equal(t, float64(777), payload["timestamp"])
		metadata := payload["metadata"].(map[string]any)
		assert.Equal(t, true, metadata["isPositionUpdate"])
	}

	assert.Equal(t, 0, h.store.count())
	// Non-commit drags are never acknowledged.
	expectNoEvent(t, alice)
}

func TestOperations_PositionDragAllowedForReadRole(t *testing.T) {
	h := setupCollab(t)
	h.access.roles["carol"] = "read"
	h.access.roles["bob"] = "write"

	carol := h.connect(t, "carol", "Carol")
	joinWorkflow(t, carol, "wf-1")
	bob := h.connect(t, "bob", "Bob")
	joinWorkflow(t, bob, "wf-1")
	readEvent(t, carol) // presence for bob

	// Drags skip the permission check entirely, so even a read-only user can
	// wiggle a block for the room. The commit is what stays gated.
	sendEvent(t, carol, EventWorkflowOperation, OperationMessage{
		Operation: "update-position",
		Target:    "block",
		Payload:   map[string]any{"id": "blk-1", "position": map[string]any{"x": 1, "y": 1}},
		Timestamp: 1,
	})

	event, payload := readEvent(t, bob)
	require.Equal(t, EventWorkflowOperation, event)
	metadata := payload["metadata"].(map[string]any)
	assert.Equal(t, true, metadata["isPositionUpdate"])
	assert.NotEmpty(t, metadata["operationId"])

	sendEvent(t, carol, EventWorkflowOperation, OperationMessage{
		OperationID: "op-commit",
		Operation:   "update-position",
		Target:      "block",
		Payload:     map[string]any{"id": "blk-1", "position": map[string]any{"x": 1, "y": 1}, "commit": true},
		Timestamp:   2,
	})

	event, payload = readEvent(t, carol)
	assert.Equal(t, EventOperationForbidden, event)
	assert.Equal(t, ErrTypeInsufficientPermissions, payload["type"])
	assert.Equal(t, 0, h.store.count())
}

func TestOperations_PositionCommitPersistsAsync(t *testing.T) {
	h := setupCollab(t)
	h.access.roles["alice"] = "admin"
	h.access.roles["bob"] = "write"

	alice := h.connect(t, "alice", "Alice")
	joinWorkflow(t, alice, "wf-1")
	bob := h.connect(t, "bob", "Bob")
	joinWorkflow(t, bob, "wf-1")
	readEvent(t, alice) // presence for bob

	sendEvent(t, alice, EventWorkflowOperation, OperationMessage{
		OperationID: "op-pos",
		Operation:   "update-position",
		Target:      "block",
		Payload: map[string]any{
			"id":       "blk-1",
			"position": map[string]any{"x": 300, "y": 400},
			"commit":   true,
		},
		Timestamp: 888,
	})

	event, payload := readEvent(t, bob)
	require.Equal(t, EventWorkflowOperation, event)
	assert.Equal(t, true, payload["metadata"].(map[string]any)["isPositionUpdate"])

	event, payload = readEvent(t, alice)
	require.Equal(t, EventOperationConfirmed, event)
	assert.Equal(t, "op-pos", payload["operationId"])

	require.Equal(t, 1, h.store.count())
	assert.Equal(t, "update-position", h.store.last().Operation)
}

func TestOperations_PositionCommitFailureRetryable(t *testing.T) {
	h := setupCollab(t)
	h.access.roles["alice"] = "admin"
	h.access.roles["bob"] = "write"
	h.store.err = errors.New("disk full")

	alice := h.connect(t, "alice", "Alice")
	joinWorkflow(t, alice, "wf-1")
	bob := h.connect(t, "bob", "Bob")
	joinWorkflow(t, bob, "wf-1")
	readEvent(t, alice) // presence for bob

	sendEvent(t, alice, EventWorkflowOperation, OperationMessage{
		OperationID: "op-pos",
		Operation:   "update-position",
		Target:      "block",
		Payload:     map[string]any{"id": "blk-1", "position": map[string]any{"x": 1, "y": 2}, "commit": true},
		Timestamp:   1,
	})

	// Broadcast-first: the room sees the move even though the persist fails.
	event, _ := readEvent(t, bob)
	require.Equal(t, EventWorkflowOperation, event)

	event, payload := readEvent(t, alice)
	require.Equal(t, EventOperationFailed, event)
	assert.Equal(t, "op-pos", payload["operationId"])
	assert.Equal(t, true, payload["retryable"])
	assert.Equal(t, "Failed to save block position", payload["error"])
}

func TestOperations_NotInRoom(t *testing.T) {
	h := setupCollab(t)
	h.access.roles["alice"] = "admin"

	alice := h.connect(t, "alice", "Alice")
	sendEvent(t, alice, EventWorkflowOperation, OperationMessage{
		Operation: "add",
		Target:    "block",
		Payload:   addBlockPayload("blk-2"),
		Timestamp: 1,
	})

	event, payload := readEvent(t, alice)
	assert.Equal(t, EventOperationError, event)
	assert.Equal(t, ErrTypeNotInRoom, payload["type"])
	assert.Equal(t, 0, h.store.count())
}

func TestOperations_GeneratedOperationIDInBroadcast(t *testing.T) {
	h := setupCollab(t)
	h.access.roles["alice"] = "admin"
	h.access.roles["bob"] = "write"

	alice := h.connect(t, "alice", "Alice")
	joinWorkflow(t, alice, "wf-1")
	bob := h.connect(t, "bob", "Bob")
	joinWorkflow(t, bob, "wf-1")
	readEvent(t, alice) // presence for bob

	// No client operation ID: the broadcast still carries one so receivers
	// can dedupe.
	sendEvent(t, alice, EventWorkflowOperation, OperationMessage{
		Operation: "add",
		Target:    "variable",
		Payload:   map[string]any{"variableId": "var-1", "name": "count", "type": "number"},
		Timestamp: 1,
	})

	event, _ := readEvent(t, alice)
	require.Equal(t, EventOperationConfirmed, event)

	event, payload := readEvent(t, bob)
	require.Equal(t, EventWorkflowOperation, event)
	metadata := payload["metadata"].(map[string]any)
	assert.NotEmpty(t, metadata["operationId"])

	assert.Equal(t, 1, h.store.count())
}
