package collab

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weft-labs/weft/pkg/services"
)

func TestUpdater_CoalescesToLatestValue(t *testing.T) {
	// A generous debounce keeps the five sends inside one window even on a
	// loaded machine.
	h := setupCollabDebounce(t, 75*time.Millisecond)
	h.access.roles["alice"] = "admin"
	h.access.roles["bob"] = "write"

	alice := h.connect(t, "alice", "Alice")
	joinWorkflow(t, alice, "wf-1")
	bob := h.connect(t, "bob", "Bob")
	joinWorkflow(t, bob, "wf-1")
	readEvent(t, alice) // presence for bob

	values := []string{"a", "b", "c", "d", "e"}
	for i, v := range values {
		sendEvent(t, alice, EventSubblockUpdate, SubblockUpdateMessage{
			BlockID:     "blk-1",
			SubblockID:  "prompt",
			Value:       v,
			Timestamp:   int64(i + 1),
			OperationID: "op-" + v,
		})
	}

	// One confirmation per coalesced operation.
	confirmed := map[string]bool{}
	for range values {
		event, payload := readEvent(t, alice)
		require.Equal(t, EventOperationConfirmed, event)
		confirmed[payload["operationId"].(string)] = true
		assert.Greater(t, payload["serverTimestamp"].(float64), float64(0))
	}
	for _, v := range values {
		assert.True(t, confirmed["op-"+v], "missing confirmation for op-%s", v)
	}

	// Exactly one write carrying the last value.
	writes := h.fields.subblockWrites()
	require.Len(t, writes, 1)
	assert.Equal(t, "wf-1", writes[0].workflowID)
	assert.Equal(t, "blk-1", writes[0].blockID)
	assert.Equal(t, "prompt", writes[0].subblockID)
	assert.Equal(t, "e", writes[0].value)

	// Exactly one broadcast to the rest of the room, none to the sender.
	event, payload := readEvent(t, bob)
	require.Equal(t, EventSubblockUpdate, event)
	assert.Equal(t, "blk-1", payload["blockId"])
	assert.Equal(t, "prompt", payload["subblockId"])
	assert.Equal(t, "e", payload["value"])
	expectNoEvent(t, bob)
	expectNoEvent(t, alice)
}

func TestUpdater_SenderExclusionCoversAllContributors(t *testing.T) {
	h := setupCollabDebounce(t, 75*time.Millisecond)
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

	sendEvent(t, alice, EventSubblockUpdate, SubblockUpdateMessage{
		BlockID: "blk-1", SubblockID: "prompt", Value: "x", Timestamp: 1, OperationID: "op-a",
	})
	sendEvent(t, bob, EventSubblockUpdate, SubblockUpdateMessage{
		BlockID: "blk-1", SubblockID: "prompt", Value: "y", Timestamp: 2, OperationID: "op-b",
	})

	// Both contributors are confirmed and excluded from the broadcast.
	event, payload := readEvent(t, alice)
	require.Equal(t, EventOperationConfirmed, event)
	assert.Equal(t, "op-a", payload["operationId"])
	event, payload = readEvent(t, bob)
	require.Equal(t, EventOperationConfirmed, event)
	assert.Equal(t, "op-b", payload["operationId"])

	writes := h.fields.subblockWrites()
	require.Len(t, writes, 1)

	// Carol, the only non-contributor, gets the merged value.
	event, payload = readEvent(t, carol)
	require.Equal(t, EventSubblockUpdate, event)
	assert.Equal(t, writes[0].value, payload["value"])

	expectNoEvent(t, alice)
	expectNoEvent(t, bob)
}

func TestUpdater_DistinctKeysFlushIndependently(t *testing.T) {
	h := setupCollab(t)
	h.access.roles["alice"] = "admin"
	h.access.roles["bob"] = "write"

	alice := h.connect(t, "alice", "Alice")
	joinWorkflow(t, alice, "wf-1")
	bob := h.connect(t, "bob", "Bob")
	joinWorkflow(t, bob, "wf-1")
	readEvent(t, alice) // presence for bob

	sendEvent(t, alice, EventSubblockUpdate, SubblockUpdateMessage{
		BlockID: "blk-1", SubblockID: "prompt", Value: "hello", Timestamp: 1, OperationID: "op-1",
	})
	sendEvent(t, alice, EventSubblockUpdate, SubblockUpdateMessage{
		BlockID: "blk-1", SubblockID: "model", Value: "opus", Timestamp: 2, OperationID: "op-2",
	})

	confirmed := map[string]bool{}
	for range 2 {
		event, payload := readEvent(t, alice)
		require.Equal(t, EventOperationConfirmed, event)
		confirmed[payload["operationId"].(string)] = true
	}
	assert.True(t, confirmed["op-1"] && confirmed["op-2"])

	got := map[string]any{}
	for range 2 {
		event, payload := readEvent(t, bob)
		require.Equal(t, EventSubblockUpdate, event)
		got[payload["subblockId"].(string)] = payload["value"]
	}
	assert.Equal(t, map[string]any{"prompt": "hello", "model": "opus"}, got)

	assert.Len(t, h.fields.subblockWrites(), 2)
}

func TestUpdater_VariableUpdateFlow(t *testing.T) {
	h := setupCollab(t)
	h.access.roles["alice"] = "admin"
	h.access.roles["bob"] = "write"

	alice := h.connect(t, "alice", "Alice")
	joinWorkflow(t, alice, "wf-1")
	bob := h.connect(t, "bob", "Bob")
	joinWorkflow(t, bob, "wf-1")
	readEvent(t, alice) // presence for bob

	sendEvent(t, alice, EventVariableUpdate, VariableUpdateMessage{
		VariableID:  "var-1",
		Field:       "value",
		Value:       float64(42),
		Timestamp:   9,
		OperationID: "op-v",
	})

	event, payload := readEvent(t, alice)
	require.Equal(t, EventOperationConfirmed, event)
	assert.Equal(t, "op-v", payload["operationId"])

	event, payload = readEvent(t, bob)
	require.Equal(t, EventVariableUpdate, event)
	assert.Equal(t, "var-1", payload["variableId"])
	assert.Equal(t, "value", payload["field"])
	assert.Equal(t, float64(42), payload["value"])
	assert.Equal(t, float64(9), payload["timestamp"])

	writes := h.fields.variableWrites()
	require.Len(t, writes, 1)
	assert.Equal(t, "var-1", writes[0].variableID)
	assert.Equal(t, "value", writes[0].field)
}

func TestUpdater_WorkflowGoneFailsEveryOp(t *testing.T) {
	h := setupCollab(t)
	h.access.roles["alice"] = "admin"
	h.access.roles["bob"] = "write"
	h.fields.exists = false

	alice := h.connect(t, "alice", "Alice")
	joinWorkflow(t, alice, "wf-1")
	bob := h.connect(t, "bob", "Bob")
	joinWorkflow(t, bob, "wf-1")
	readEvent(t, alice) // presence for bob

	sendEvent(t, alice, EventSubblockUpdate, SubblockUpdateMessage{
		BlockID: "blk-1", SubblockID: "prompt", Value: "v", Timestamp: 1, OperationID: "op-1",
	})

	event, payload := readEvent(t, alice)
	require.Equal(t, EventOperationFailed, event)
	assert.Equal(t, "op-1", payload["operationId"])
	assert.Equal(t, "Workflow not found", payload["error"])
	assert.Equal(t, false, payload["retryable"])

	// Failures stay with the sender.
	expectNoEvent(t, bob)
}

func TestUpdater_BlockVanishedNotRetryable(t *testing.T) {
	h := setupCollab(t)
	h.access.roles["alice"] = "admin"
	h.fields.mergeErr = services.ErrNotFound

	alice := h.connect(t, "alice", "Alice")
	joinWorkflow(t, alice, "wf-1")

	sendEvent(t, alice, EventSubblockUpdate, SubblockUpdateMessage{
		BlockID: "blk-404", SubblockID: "prompt", Value: "v", Timestamp: 1, OperationID: "op-1",
	})

	event, payload := readEvent(t, alice)
	require.Equal(t, EventOperationFailed, event)
	assert.Equal(t, "Block no longer exists", payload["error"])
	assert.Equal(t, false, payload["retryable"])
}

func TestUpdater_VariableVanishedNotRetryable(t *testing.T) {
	h := setupCollab(t)
	h.access.roles["alice"] = "admin"
	h.fields.mergeErr = services.ErrNotFound

	alice := h.connect(t, "alice", "Alice")
	joinWorkflow(t, alice, "wf-1")

	sendEvent(t, alice, EventVariableUpdate, VariableUpdateMessage{
		VariableID: "var-404", Field: "name", Value: "n", Timestamp: 1, OperationID: "op-1",
	})

	event, payload := readEvent(t, alice)
	require.Equal(t, EventOperationFailed, event)
	assert.Equal(t, "Variable no longer exists", payload["error"])
	assert.Equal(t, false, payload["retryable"])
}

func TestUpdater_TransientErrorRetryable(t *testing.T) {
	h := setupCollab(t)
	h.access.roles["alice"] = "admin"
	h.fields.mergeErr = errors.New("deadlock detected")

	alice := h.connect(t, "alice", "Alice")
	joinWorkflow(t, alice, "wf-1")

	sendEvent(t, alice, EventSubblockUpdate, SubblockUpdateMessage{
		BlockID: "blk-1", SubblockID: "prompt", Value: "v", Timestamp: 1, OperationID: "op-1",
	})

	event, payload := readEvent(t, alice)
	require.Equal(t, EventOperationFailed, event)
	assert.Equal(t, "Failed to save update", payload["error"])
	assert.Equal(t, true, payload["retryable"])
}

func TestUpdater_FlushDrainsSynchronously(t *testing.T) {
	// Debounce far beyond the test horizon: only Flush can produce the write.
	h := setupCollabDebounce(t, time.Hour)
	h.access.roles["alice"] = "admin"

	alice := h.connect(t, "alice", "Alice")
	joinWorkflow(t, alice, "wf-1")

	sendEvent(t, alice, EventSubblockUpdate, SubblockUpdateMessage{
		BlockID: "blk-1", SubblockID: "prompt", Value: "draft", Timestamp: 1, OperationID: "op-1",
	})

	require.Eventually(t, func() bool { return h.updater.pendingCount() == 1 },
		2*time.Second, 5*time.Millisecond)

	h.updater.Flush()

	assert.Equal(t, 0, h.updater.pendingCount())
	writes := h.fields.subblockWrites()
	require.Len(t, writes, 1)
	assert.Equal(t, "draft", writes[0].value)

	event, payload := readEvent(t, alice)
	assert.Equal(t, EventOperationConfirmed, event)
	assert.Equal(t, "op-1", payload["operationId"])
}

func TestUpdater_MissingIdentifiersRejected(t *testing.T) {
	h := setupCollab(t)
	h.access.roles["alice"] = "admin"

	alice := h.connect(t, "alice", "Alice")
	joinWorkflow(t, alice, "wf-1")

	sendEvent(t, alice, EventSubblockUpdate, SubblockUpdateMessage{
		SubblockID: "prompt", Value: "v", Timestamp: 1, OperationID: "op-1",
	})
	event, payload := readEvent(t, alice)
	require.Equal(t, EventOperationFailed, event)
	assert.Equal(t, "blockId is required", payload["error"])
	assert.Equal(t, false, payload["retryable"])
	event, payload = readEvent(t, alice)
	require.Equal(t, EventOperationError, event)
	assert.Equal(t, ErrTypeValidation, payload["type"])

	sendEvent(t, alice, EventVariableUpdate, VariableUpdateMessage{
		VariableID: "var-1", Value: "v", Timestamp: 1,
	})
	event, payload = readEvent(t, alice)
	require.Equal(t, EventOperationFailed, event)
	assert.Equal(t, "field is required", payload["error"])

	assert.Empty(t, h.fields.subblockWrites())
	assert.Empty(t, h.fields.variableWrites())
}

func TestUpdater_NotInRoom(t *testing.T) {
	h := setupCollab(t)
	h.access.roles["alice"] = "admin"

	alice := h.connect(t, "alice", "Alice")
	sendEvent(t, alice, EventSubblockUpdate, SubblockUpdateMessage{
		BlockID: "blk-1", SubblockID: "prompt", Value: "v", Timestamp: 1,
	})

	event, payload := readEvent(t, alice)
	assert.Equal(t, EventOperationError, event)
	assert.Equal(t, ErrTypeNotInRoom, payload["type"])
	assert.Empty(t, h.fields.subblockWrites())
}
