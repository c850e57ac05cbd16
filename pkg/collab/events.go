package collab

import "encoding/json"

// Client → server events.
const (
	EventJoinWorkflow      = "join-workflow"
	EventLeaveWorkflow     = "leave-workflow"
	EventRequestSync       = "request-sync"
	EventWorkflowOperation = "workflow-operation"
	EventSubblockUpdate    = "subblock-update"
	EventVariableUpdate    = "variable-update"
)

// Server → client events.
const (
	EventWorkflowState      = "workflow-state"
	EventPresenceUpdate     = "presence-update"
	EventOperationConfirmed = "operation-confirmed"
	EventOperationFailed    = "operation-failed"
	EventOperationError     = "operation-error"
	EventOperationForbidden = "operation-forbidden"
	EventError              = "error"
	EventJoinWorkflowError  = "join-workflow-error"
)

// Error type identifiers carried in error, operation-error and
// operation-forbidden payloads.
const (
	ErrTypeUnknownEvent            = "UNKNOWN_EVENT"
	ErrTypeValidation              = "VALIDATION_ERROR"
	ErrTypeInsufficientPermissions = "INSUFFICIENT_PERMISSIONS"
	ErrTypeNotInRoom               = "NOT_IN_ROOM"
	ErrTypeSyncFailed              = "SYNC_FAILED"
)

// Envelope is the frame exchanged in both directions:
// {"event": "<name>", "payload": {...}}.
type Envelope struct {
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// JoinPayload is the payload of join-workflow and request-sync.
type JoinPayload struct {
	WorkflowID string `json:"workflowId"`
}

// OperationMessage is the payload of workflow-operation. OperationID is
// client-assigned and threaded into every acknowledgement; Timestamp is the
// client wall clock in milliseconds.
type OperationMessage struct {
	OperationID string         `json:"operationId,omitempty"`
	Operation   string         `json:"operation"`
	Target      string         `json:"target"`
	Payload     map[string]any `json:"payload"`
	Timestamp   int64          `json:"timestamp"`
}

// SubblockUpdateMessage is the payload of subblock-update. Updates are
// coalesced per (workflow, block, subblock) key before they hit storage.
type SubblockUpdateMessage struct {
	BlockID     string `json:"blockId"`
	SubblockID  string `json:"subblockId"`
	Value       any    `json:"value"`
	Timestamp   int64  `json:"timestamp"`
	OperationID string `json:"operationId,omitempty"`
}

// VariableUpdateMessage is the payload of variable-update. Field is one of
// name, type or value.
type VariableUpdateMessage struct {
	VariableID  string `json:"variableId"`
	Field       string `json:"field"`
	Value       any    `json:"value"`
	Timestamp   int64  `json:"timestamp"`
	OperationID string `json:"operationId,omitempty"`
}

// ErrorPayload is the generic error event payload.
type ErrorPayload struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// JoinErrorPayload answers a failed join-workflow (and unauthenticated or
// unauthorised request-sync).
type JoinErrorPayload struct {
	Error string `json:"error"`
}

// ConfirmedPayload acknowledges a persisted operation.
type ConfirmedPayload struct {
	OperationID     string `json:"operationId,omitempty"`
	ServerTimestamp int64  `json:"serverTimestamp"`
}

// FailedPayload reports a failed operation. Retryable is false when the cause
// is schema validation or a vanished target, true for transient storage
// failures.
type FailedPayload struct {
	OperationID string `json:"operationId,omitempty"`
	Error       string `json:"error"`
	Retryable   bool   `json:"retryable"`
}

// OperationErrorPayload is the legacy error form, still emitted alongside
// operation-failed for validation failures until clients consume the new
// form exclusively.
type OperationErrorPayload struct {
	Type      string   `json:"type"`
	Message   string   `json:"message"`
	Operation string   `json:"operation,omitempty"`
	Target    string   `json:"target,omitempty"`
	Errors    []string `json:"errors,omitempty"`
}

// ForbiddenPayload reports a cached-role permission denial.
type ForbiddenPayload struct {
	Type      string `json:"type"`
	Message   string `json:"message"`
	Operation string `json:"operation,omitempty"`
	Target    string `json:"target,omitempty"`
}

// PresencePayload carries the room's current participants, unordered.
type PresencePayload struct {
	WorkflowID string         `json:"workflowId"`
	Users      []UserPresence `json:"users"`
}

// OperationBroadcast is the envelope re-broadcast to the rest of the room for
// a workflow-operation. SenderID lets clients drop their own echoes.
type OperationBroadcast struct {
	SenderID  string            `json:"senderId"`
	UserID    string            `json:"userId"`
	UserName  string            `json:"userName"`
	Operation string            `json:"operation"`
	Target    string            `json:"target"`
	Payload   map[string]any    `json:"payload"`
	Timestamp int64             `json:"timestamp"`
	Metadata  BroadcastMetadata `json:"metadata"`
}

// BroadcastMetadata travels with every operation broadcast. OperationID is
// always set: the client's if it supplied one, a fresh UUID otherwise.
type BroadcastMetadata struct {
	WorkflowID       string `json:"workflowId"`
	OperationID      string `json:"operationId"`
	IsPositionUpdate bool   `json:"isPositionUpdate,omitempty"`
}

// SubblockBroadcast re-broadcasts a flushed sub-block value to the room.
type SubblockBroadcast struct {
	BlockID    string `json:"blockId"`
	SubblockID string `json:"subblockId"`
	Value      any    `json:"value"`
	Timestamp  int64  `json:"timestamp"`
}

// VariableBroadcast re-broadcasts a flushed variable field to the room.
type VariableBroadcast struct {
	VariableID string `json:"variableId"`
	Field      string `json:"field"`
	Value      any    `json:"value"`
	Timestamp  int64  `json:"timestamp"`
}
