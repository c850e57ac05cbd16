// Package collab is the realtime collaboration plane: websocket rooms per
// workflow, presence tracking with cached roles, persist-then-broadcast
// operation handling and debounced field updates.
package collab

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
)

// Socket is one websocket client. Reads happen on the single goroutine that
// owns the connection; writes may come from any goroutine (broadcasts, async
// acks) and are serialised by writeMu.
type Socket struct {
	ID       string
	UserID   string
	UserName string

	conn         *websocket.Conn
	ctx          context.Context
	cancel       context.CancelFunc
	writeTimeout time.Duration
	writeMu      sync.Mutex
}

// send marshals one event envelope and writes it with the configured timeout.
func (s *Socket) send(event string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s payload: %w", event, err)
	}
	frame, err := json.Marshal(Envelope{Event: event, Payload: data})
	if err != nil {
		return fmt.Errorf("failed to marshal %s envelope: %w", event, err)
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	ctx, cancel := context.WithTimeout(s.ctx, s.writeTimeout)
	defer cancel()
	return s.conn.Write(ctx, websocket.MessageText, frame)
}

// Manager owns the socket index and the read loops. Each process has one
// Manager instance; rooms, operations and the updater hang off it.
type Manager struct {
	rooms   *Rooms
	ops     *Operations
	updater *Updater
	logger  *slog.Logger

	writeTimeout time.Duration

	mu      sync.RWMutex
	sockets map[string]*Socket
	closed  bool
}

// NewManager creates the collaboration manager.
func NewManager(rooms *Rooms, ops *Operations, updater *Updater, writeTimeout time.Duration) *Manager {
	return &Manager{
		rooms:        rooms,
		ops:          ops,
		updater:      updater,
		logger:       slog.With("component", "collab"),
		writeTimeout: writeTimeout,
		sockets:      make(map[string]*Socket),
	}
}

// HandleConnection manages the lifecycle of one websocket. Called by the HTTP
// handler after the upgrade, with the identity the authenticator resolved
// (empty strings for an anonymous socket). Blocks until the connection
// closes.
func (m *Manager) HandleConnection(parentCtx context.Context, conn *websocket.Conn, userID, userName string) {
	ctx, cancel := context.WithCancel(parentCtx)
	s := &Socket{
		ID:           uuid.New().String(),
		UserID:       userID,
		UserName:     userName,
		conn:         conn,
		ctx:          ctx,
		cancel:       cancel,
		writeTimeout: m.writeTimeout,
	}

	if !m.register(s) {
		cancel()
		conn.Close(websocket.StatusGoingAway, "server shutting down")
		return
	}
	defer m.unregister(s)

	m.logger.Info("socket connected", "socket_id", s.ID, "user_id", userID)

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			// Connection closed or errored; exit the read loop.
			return
		}

		var env Envelope
		if err := json.Unmarshal(data, &env); err != nil {
			m.logger.Warn("invalid socket message", "socket_id", s.ID, "error", err)
			continue
		}

		m.dispatch(ctx, s, env)
	}
}

// dispatch routes one decoded envelope to its handler. Payload decode
// failures answer with the event's own error contract; unknown event names
// answer error{type:UNKNOWN_EVENT}.
func (m *Manager) dispatch(ctx context.Context, s *Socket, env Envelope) {
	switch env.Event {
	case EventJoinWorkflow:
		var p JoinPayload
		if err := json.Unmarshal(env.Payload, &p); err != nil {
			s.send(EventJoinWorkflowError, JoinErrorPayload{Error: "workflowId is required"})
			return
		}
		m.rooms.JoinWorkflow(ctx, s, p.WorkflowID)

	case EventLeaveWorkflow:
		m.rooms.LeaveWorkflow(s)

	case EventRequestSync:
		var p JoinPayload
		if err := json.Unmarshal(env.Payload, &p); err != nil {
			s.send(EventError, ErrorPayload{Type: ErrTypeValidation, Message: "workflowId is required"})
			return
		}
		m.rooms.RequestSync(ctx, s, p.WorkflowID)

	case EventWorkflowOperation:
		var msg OperationMessage
		if err := json.Unmarshal(env.Payload, &msg); err != nil {
			s.send(EventOperationFailed, FailedPayload{Error: "invalid workflow-operation payload", Retryable: false})
			s.send(EventOperationError, OperationErrorPayload{Type: ErrTypeValidation, Message: "invalid workflow-operation payload"})
			return
		}
		m.ops.Handle(ctx, s, msg)

	case EventSubblockUpdate:
		var msg SubblockUpdateMessage
		if err := json.Unmarshal(env.Payload, &msg); err != nil {
			s.send(EventOperationFailed, FailedPayload{Error: "invalid subblock-update payload", Retryable: false})
			s.send(EventOperationError, OperationErrorPayload{Type: ErrTypeValidation, Message: "invalid subblock-update payload"})
			return
		}
		m.updater.QueueSubblock(s, msg)

	case EventVariableUpdate:
		var msg VariableUpdateMessage
		if err := json.Unmarshal(env.Payload, &msg); err != nil {
			s.send(EventOperationFailed, FailedPayload{Error: "invalid variable-update payload", Retryable: false})
			s.send(EventOperationError, OperationErrorPayload{Type: ErrTypeValidation, Message: "invalid variable-update payload"})
			return
		}
		m.updater.QueueVariable(s, msg)

	default:
		if err := s.send(EventError, ErrorPayload{
			Type:    ErrTypeUnknownEvent,
			Message: fmt.Sprintf("unknown event %q", env.Event),
		}); err != nil {
			m.logger.Warn("failed to send error", "socket_id", s.ID, "error", err)
		}
	}
}

// register adds the socket to the index. Returns false once Shutdown ran.
func (m *Manager) register(s *Socket) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return false
	}
	m.sockets[s.ID] = s
	m.rooms.Register(s)
	return true
}

func (m *Manager) unregister(s *Socket) {
	m.mu.Lock()
	delete(m.sockets, s.ID)
	m.mu.Unlock()

	m.rooms.Disconnect(s)
	s.cancel()
	s.conn.Close(websocket.StatusNormalClosure, "")
	m.logger.Info("socket disconnected", "socket_id", s.ID, "user_id", s.UserID)
}

// ActiveSockets returns the number of connected sockets.
func (m *Manager) ActiveSockets() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sockets)
}

// Shutdown stops accepting sockets, drains the coalescing updater, waits for
// in-flight async persists and closes every connection.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	m.closed = true
	targets := make([]*Socket, 0, len(m.sockets))
	for _, s := range m.sockets {
		targets = append(targets, s)
	}
	m.mu.Unlock()

	m.updater.Flush()
	m.ops.Wait()

	for _, s := range targets {
		s.cancel()
		s.conn.Close(websocket.StatusGoingAway, "server shutting down")
	}
}
