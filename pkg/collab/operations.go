package collab

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/weft-labs/weft/pkg/services"
)

// persistTimeout bounds the asynchronous persistence of committed position
// updates. The write must not outlive a stalled database by much, but it also
// must not be cancelled just because the sending socket disconnected.
const persistTimeout = 10 * time.Second

// OperationStore persists one validated workflow operation together with its
// audit row. Implemented by services.OperationService.
type OperationStore interface {
	ApplyOperation(ctx context.Context, in services.OperationInput) (time.Time, error)
}

// Operations handles workflow-operation messages: validation, cached-role
// authorisation, persistence and room broadcast.
type Operations struct {
	rooms  *Rooms
	store  OperationStore
	logger *slog.Logger

	// Tracks in-flight async position persists so shutdown can wait for them.
	wg sync.WaitGroup
}

// NewOperations creates the operations handler.
func NewOperations(rooms *Rooms, store OperationStore) *Operations {
	return &Operations{
		rooms:  rooms,
		store:  store,
		logger: slog.With("component", "collab.operations"),
	}
}

// checkRolePermission is the per-operation authorisation gate. It consults
// only the role cached in the presence record, never storage. Admin and write
// may perform every defined operation; read may perform none.
func checkRolePermission(role, operation string) (bool, string) {
	switch role {
	case "admin", "write":
		return true, ""
	case "read":
		return false, fmt.Sprintf("read-only access cannot perform %q", operation)
	default:
		return false, fmt.Sprintf("role %q cannot perform %q", role, operation)
	}
}

// Handle processes one workflow-operation message from a socket.
func (o *Operations) Handle(ctx context.Context, s *Socket, msg OperationMessage) {
	workflowID, ok := o.rooms.WorkflowOf(s.ID)
	if !ok {
		s.send(EventOperationError, OperationErrorPayload{
			Type:      ErrTypeNotInRoom,
			Message:   "join a workflow before sending operations",
			Operation: msg.Operation,
			Target:    msg.Target,
		})
		return
	}

	if !services.IsValidOperation(msg.Target, msg.Operation) {
		o.sendValidationFailure(s, msg, fmt.Sprintf("unknown operation %q for target %q", msg.Operation, msg.Target))
		return
	}

	if msg.Operation == services.OpUpdatePosition && msg.Target == services.TargetBlock {
		o.handlePositionUpdate(s, workflowID, msg)
		return
	}

	role, _ := o.rooms.CachedRole(s.ID)
	if allowed, reason := checkRolePermission(role, msg.Operation); !allowed {
		s.send(EventOperationForbidden, ForbiddenPayload{
			Type:      ErrTypeInsufficientPermissions,
			Message:   reason,
			Operation: msg.Operation,
			Target:    msg.Target,
		})
		return
	}

	serverTime, err := o.store.ApplyOperation(ctx, services.OperationInput{
		WorkflowID: workflowID,
		UserID:     s.UserID,
		Operation:  msg.Operation,
		Target:     msg.Target,
		Payload:    msg.Payload,
		Timestamp:  msg.Timestamp,
	})
	if err != nil {
		if services.IsValidationError(err) {
			o.sendValidationFailure(s, msg, err.Error())
			return
		}
		message, retryable := classifyPersistError(err, msg.Target)
		o.logger.Error("failed to apply operation",
			"workflow_id", workflowID, "operation", msg.Operation, "target", msg.Target, "error", err)
		s.send(EventOperationFailed, FailedPayload{OperationID: msg.OperationID, Error: message, Retryable: retryable})
		return
	}

	// Persist-then-broadcast: a client that re-fetches after seeing the
	// broadcast always finds the change committed.
	ms := serverTime.UnixMilli()
	o.rooms.TouchRoom(workflowID, s.ID, ms)
	o.rooms.Broadcast(workflowID, EventWorkflowOperation, o.broadcastFor(s, workflowID, msg, false), s.ID)
	s.send(EventOperationConfirmed, ConfirmedPayload{OperationID: msg.OperationID, ServerTimestamp: ms})
}

// handlePositionUpdate is the update-position fast path. Drag moves
// (commit absent or false) are broadcast straight to the room with no
// permission check and no storage write; the commit at drag end broadcasts
// first and persists in the background.
func (o *Operations) handlePositionUpdate(s *Socket, workflowID string, msg OperationMessage) {
	commit, _ := msg.Payload["commit"].(bool)

	if !commit {
		o.rooms.Broadcast(workflowID, EventWorkflowOperation, o.broadcastFor(s, workflowID, msg, true), s.ID)
		return
	}

	role, _ := o.rooms.CachedRole(s.ID)
	if allowed, reason := checkRolePermission(role, msg.Operation); !allowed {
		s.send(EventOperationForbidden, ForbiddenPayload{
			Type:      ErrTypeInsufficientPermissions,
			Message:   reason,
			Operation: msg.Operation,
			Target:    msg.Target,
		})
		return
	}

	o.rooms.Broadcast(workflowID, EventWorkflowOperation, o.broadcastFor(s, workflowID, msg, true), s.ID)

	o.wg.Add(1)
	go func() {
		defer o.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()

		serverTime, err := o.store.ApplyOperation(ctx, services.OperationInput{
			WorkflowID: workflowID,
			UserID:     s.UserID,
			Operation:  msg.Operation,
			Target:     msg.Target,
			Payload:    msg.Payload,
			Timestamp:  msg.Timestamp,
		})
		if err != nil {
			o.logger.Error("failed to persist position commit",
				"workflow_id", workflowID, "error", err)
			s.send(EventOperationFailed, FailedPayload{
				OperationID: msg.OperationID,
				Error:       "Failed to save block position",
				Retryable:   true,
			})
			return
		}
		ms := serverTime.UnixMilli()
		o.rooms.TouchRoom(workflowID, s.ID, ms)
		s.send(EventOperationConfirmed, ConfirmedPayload{OperationID: msg.OperationID, ServerTimestamp: ms})
	}()
}

// Wait blocks until all in-flight async persists finish. Shutdown path.
func (o *Operations) Wait() {
	o.wg.Wait()
}

// broadcastFor builds the room broadcast for one operation. The metadata
// operation ID is the client's when present, a fresh UUID otherwise, so
// receivers can always dedupe echoes.
func (o *Operations) broadcastFor(s *Socket, workflowID string, msg OperationMessage, position bool) OperationBroadcast {
	opID := msg.OperationID
	if opID == "" {
		opID = uuid.New().String()
	}
	return OperationBroadcast{
		SenderID:  s.ID,
		UserID:    s.UserID,
		UserName:  s.UserName,
		Operation: msg.Operation,
		Target:    msg.Target,
		Payload:   msg.Payload,
		Timestamp: msg.Timestamp,
		Metadata: BroadcastMetadata{
			WorkflowID:       workflowID,
			OperationID:      opID,
			IsPositionUpdate: position,
		},
	}
}

// sendValidationFailure emits the new operation-failed form and the legacy
// operation-error form for the same schema failure.
func (o *Operations) sendValidationFailure(s *Socket, msg OperationMessage, message string) {
	s.send(EventOperationFailed, FailedPayload{OperationID: msg.OperationID, Error: message, Retryable: false})
	s.send(EventOperationError, OperationErrorPayload{
		Type:      ErrTypeValidation,
		Message:   message,
		Operation: msg.Operation,
		Target:    msg.Target,
	})
}

// classifyPersistError words a persistence failure for the client and decides
// whether a retry could succeed.
func classifyPersistError(err error, target string) (string, bool) {
	switch {
	case errors.Is(err, services.ErrWorkflowNotFound):
		return "Workflow not found", false
	case errors.Is(err, services.ErrNotFound):
		switch target {
		case services.TargetBlock:
			return "Block not found", false
		case services.TargetEdge:
			return "Edge not found", false
		case services.TargetVariable:
			return "Variable not found", false
		}
		return "Target not found", false
	default:
		return "Failed to apply operation", true
	}
}
