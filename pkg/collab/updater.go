package collab

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/weft-labs/weft/pkg/services"
)

// debounceInterval is how long a field edit waits for a follow-up before it
// is flushed to storage. Keystroke bursts within the interval collapse into a
// single write carrying the last value seen.
const debounceInterval = 25 * time.Millisecond

// flushTimeout bounds one flush's storage round-trips.
const flushTimeout = 10 * time.Second

// FieldStore merges coalesced field edits into their JSON containers.
// Implemented by services.FieldService.
type FieldStore interface {
	WorkflowExists(ctx context.Context, workflowID string) (bool, error)
	MergeSubblockValue(ctx context.Context, workflowID, blockID, subblockID string, value any) error
	MergeVariableField(ctx context.Context, workflowID, variableID, field string, value any) error
}

type updateKind int

const (
	kindSubblock updateKind = iota
	kindVariable
)

// pendingUpdate is one debounce slot. It keeps only the latest value, but
// remembers every operation ID (for acks) and every contributing socket (for
// sender exclusion on the broadcast).
type pendingUpdate struct {
	kind       updateKind
	workflowID string
	blockID    string
	subblockID string
	variableID string
	field      string

	value     any
	timestamp int64

	ops          map[string]*Socket // operation ID → sender, acked after flush
	contributors map[string]*Socket // socket ID → sender, excluded from broadcast

	timer *time.Timer
}

// Updater coalesces subblock-update and variable-update events. Each key owns
// a trailing debounce timer; new arrivals within the interval re-arm it and
// replace the pending value.
type Updater struct {
	rooms    *Rooms
	fields   FieldStore
	logger   *slog.Logger
	debounce time.Duration

	mu      sync.Mutex
	pending map[string]*pendingUpdate

	// Tracks timer-fired flushes so Flush can wait for stragglers.
	wg sync.WaitGroup
}

// NewUpdater creates the coalescing updater.
func NewUpdater(rooms *Rooms, fields FieldStore) *Updater {
	return &Updater{
		rooms:    rooms,
		fields:   fields,
		logger:   slog.With("component", "collab.updater"),
		debounce: debounceInterval,
		pending:  make(map[string]*pendingUpdate),
	}
}

// QueueSubblock records a subblock-update for debounced persistence.
func (u *Updater) QueueSubblock(s *Socket, msg SubblockUpdateMessage) {
	workflowID, ok := u.rooms.WorkflowOf(s.ID)
	if !ok {
		s.send(EventOperationError, OperationErrorPayload{
			Type:    ErrTypeNotInRoom,
			Message: "join a workflow before sending updates",
		})
		return
	}
	if msg.BlockID == "" {
		u.sendValidationFailure(s, msg.OperationID, "blockId is required")
		return
	}
	if msg.SubblockID == "" {
		u.sendValidationFailure(s, msg.OperationID, "subblockId is required")
		return
	}

	key := "subblock\x00" + workflowID + "\x00" + msg.BlockID + "\x00" + msg.SubblockID
	u.mu.Lock()
	defer u.mu.Unlock()
	entry, ok := u.pending[key]
	if !ok {
		entry = &pendingUpdate{
			kind:         kindSubblock,
			workflowID:   workflowID,
			blockID:      msg.BlockID,
			subblockID:   msg.SubblockID,
			ops:          make(map[string]*Socket),
			contributors: make(map[string]*Socket),
		}
		u.pending[key] = entry
		entry.timer = time.AfterFunc(u.debounce, func() { u.flushKey(key) })
	} else {
		entry.timer.Reset(u.debounce)
	}
	entry.value = msg.Value
	entry.timestamp = msg.Timestamp
	if msg.OperationID != "" {
		entry.ops[msg.OperationID] = s
	}
	entry.contributors[s.ID] = s
}

// QueueVariable records a variable-update for debounced persistence.
func (u *Updater) QueueVariable(s *Socket, msg VariableUpdateMessage) {
	workflowID, ok := u.rooms.WorkflowOf(s.ID)
	if !ok {
		s.send(EventOperationError, OperationErrorPayload{
			Type:    ErrTypeNotInRoom,
			Message: "join a workflow before sending updates",
		})
		return
	}
	if msg.VariableID == "" {
		u.sendValidationFailure(s, msg.OperationID, "variableId is required")
		return
	}
	if msg.Field == "" {
		u.sendValidationFailure(s, msg.OperationID, "field is required")
		return
	}

	key := "variable\x00" + workflowID + "\x00" + msg.VariableID + "\x00" + msg.Field
	u.mu.Lock()
	defer u.mu.Unlock()
	entry, ok := u.pending[key]
	if !ok {
		entry = &pendingUpdate{
			kind:         kindVariable,
			workflowID:   workflowID,
			variableID:   msg.VariableID,
			field:        msg.Field,
			ops:          make(map[string]*Socket),
			contributors: make(map[string]*Socket),
		}
		u.pending[key] = entry
		entry.timer = time.AfterFunc(u.debounce, func() { u.flushKey(key) })
	} else {
		entry.timer.Reset(u.debounce)
	}
	entry.value = msg.Value
	entry.timestamp = msg.Timestamp
	if msg.OperationID != "" {
		entry.ops[msg.OperationID] = s
	}
	entry.contributors[s.ID] = s
}

// Flush synchronously drains every pending entry, then waits for any flush a
// timer fired concurrently. Shutdown path.
func (u *Updater) Flush() {
	u.mu.Lock()
	drained := make([]*pendingUpdate, 0, len(u.pending))
	for key, entry := range u.pending {
		entry.timer.Stop()
		delete(u.pending, key)
		drained = append(drained, entry)
	}
	u.mu.Unlock()

	for _, entry := range drained {
		u.flush(entry)
	}
	u.wg.Wait()
}

// flushKey runs when a key's debounce timer fires. A concurrent Flush may
// have already taken the entry; that is fine, the flush happened.
func (u *Updater) flushKey(key string) {
	u.mu.Lock()
	entry, ok := u.pending[key]
	if !ok {
		u.mu.Unlock()
		return
	}
	delete(u.pending, key)
	u.wg.Add(1)
	u.mu.Unlock()
	defer u.wg.Done()

	u.flush(entry)
}

// flush writes one coalesced value, broadcasts the result to the room minus
// every contributor, and acks each recorded operation.
func (u *Updater) flush(p *pendingUpdate) {
	ctx, cancel := context.WithTimeout(context.Background(), flushTimeout)
	defer cancel()

	exists, err := u.fields.WorkflowExists(ctx, p.workflowID)
	if err != nil {
		u.logger.Error("failed to check workflow before flush", "workflow_id", p.workflowID, "error", err)
		u.fail(p, "Failed to save update", true)
		return
	}
	if !exists {
		u.fail(p, "Workflow not found", false)
		return
	}

	switch p.kind {
	case kindSubblock:
		err = u.fields.MergeSubblockValue(ctx, p.workflowID, p.blockID, p.subblockID, p.value)
	case kindVariable:
		err = u.fields.MergeVariableField(ctx, p.workflowID, p.variableID, p.field, p.value)
	}
	if err != nil {
		switch {
		case errors.Is(err, services.ErrWorkflowNotFound):
			u.fail(p, "Workflow not found", false)
		case errors.Is(err, services.ErrNotFound):
			if p.kind == kindSubblock {
				u.fail(p, "Block no longer exists", false)
			} else {
				u.fail(p, "Variable no longer exists", false)
			}
		case services.IsValidationError(err):
			u.fail(p, err.Error(), false)
		default:
			u.logger.Error("failed to flush update", "workflow_id", p.workflowID, "error", err)
			u.fail(p, "Failed to save update", true)
		}
		return
	}

	// Contributors keep their local optimistic value; everyone else gets the
	// merged result.
	exclude := make([]string, 0, len(p.contributors))
	for id := range p.contributors {
		exclude = append(exclude, id)
	}
	switch p.kind {
	case kindSubblock:
		u.rooms.Broadcast(p.workflowID, EventSubblockUpdate, SubblockBroadcast{
			BlockID:    p.blockID,
			SubblockID: p.subblockID,
			Value:      p.value,
			Timestamp:  p.timestamp,
		}, exclude...)
	case kindVariable:
		u.rooms.Broadcast(p.workflowID, EventVariableUpdate, VariableBroadcast{
			VariableID: p.variableID,
			Field:      p.field,
			Value:      p.value,
			Timestamp:  p.timestamp,
		}, exclude...)
	}

	now := time.Now().UnixMilli()
	for opID, sock := range p.ops {
		if err := sock.send(EventOperationConfirmed, ConfirmedPayload{OperationID: opID, ServerTimestamp: now}); err != nil {
			u.logger.Warn("failed to ack update", "socket_id", sock.ID, "operation_id", opID, "error", err)
		}
	}
}

// fail reports a failed flush to every contributing operation. Other room
// members see nothing.
func (u *Updater) fail(p *pendingUpdate, message string, retryable bool) {
	for opID, sock := range p.ops {
		if err := sock.send(EventOperationFailed, FailedPayload{OperationID: opID, Error: message, Retryable: retryable}); err != nil {
			u.logger.Warn("failed to report flush failure", "socket_id", sock.ID, "operation_id", opID, "error", err)
		}
	}
}

func (u *Updater) sendValidationFailure(s *Socket, operationID, message string) {
	s.send(EventOperationFailed, FailedPayload{OperationID: operationID, Error: message, Retryable: false})
	s.send(EventOperationError, OperationErrorPayload{Type: ErrTypeValidation, Message: message})
}

// pendingCount reports the number of armed debounce slots. Used by tests to
// poll instead of sleeping.
func (u *Updater) pendingCount() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.pending)
}
