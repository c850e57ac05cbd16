package collab

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/weft-labs/weft/pkg/models"
	"github.com/weft-labs/weft/pkg/services"
)

// AccessChecker resolves a user's role on a workflow. Implemented by
// services.AccessService. The check runs once at join time; the resulting
// role is cached in the presence record and reused for every operation.
type AccessChecker interface {
	VerifyWorkflowAccess(ctx context.Context, userID, workflowID string) (*services.AccessResult, error)
}

// StateLoader assembles the full workflow document for workflow-state events.
// Implemented by services.WorkflowService.
type StateLoader interface {
	GetWorkflowState(ctx context.Context, workflowID string) (*models.WorkflowState, error)
}

// UserPresence is one participant's record inside a room. Role is the cached
// access-check result from join time.
type UserPresence struct {
	UserID       string `json:"userId"`
	UserName     string `json:"userName"`
	Role         string `json:"role"`
	JoinedAt     int64  `json:"joinedAt"`
	LastActivity int64  `json:"lastActivity"`
}

// Session is a socket's authenticated identity, recorded at connect time.
type Session struct {
	UserID   string
	UserName string
}

// Room tracks the live participants of one workflow.
type Room struct {
	WorkflowID        string
	ActiveConnections int
	LastModified      int64

	users   map[string]*UserPresence // socket ID → presence
	sockets map[string]*Socket       // socket ID → socket, for broadcasts
}

// Rooms is the room manager. Three indices under one lock: workflow → room,
// socket → workflow, socket → session.
type Rooms struct {
	mu         sync.RWMutex
	rooms      map[string]*Room
	socketRoom map[string]string
	sessions   map[string]Session

	access AccessChecker
	state  StateLoader
	logger *slog.Logger
}

// NewRooms creates a room manager backed by the given access checker and
// state loader.
func NewRooms(access AccessChecker, state StateLoader) *Rooms {
	return &Rooms{
		rooms:      make(map[string]*Room),
		socketRoom: make(map[string]string),
		sessions:   make(map[string]Session),
		access:     access,
		state:      state,
		logger:     slog.With("component", "collab.rooms"),
	}
}

// Register records the socket's session. Called once when the socket connects.
func (r *Rooms) Register(s *Socket) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ID] = Session{UserID: s.UserID, UserName: s.UserName}
}

// JoinWorkflow verifies access, moves the socket into the workflow's room,
// sends the current workflow state to the joiner and broadcasts the new
// presence list to everyone else.
func (r *Rooms) JoinWorkflow(ctx context.Context, s *Socket, workflowID string) {
	if workflowID == "" {
		s.send(EventJoinWorkflowError, JoinErrorPayload{Error: "workflowId is required"})
		return
	}
	if s.UserID == "" {
		s.send(EventJoinWorkflowError, JoinErrorPayload{Error: "Authentication required"})
		return
	}

	access, err := r.access.VerifyWorkflowAccess(ctx, s.UserID, workflowID)
	if err != nil {
		if errors.Is(err, services.ErrWorkflowNotFound) {
			s.send(EventJoinWorkflowError, JoinErrorPayload{Error: "Workflow not found"})
			return
		}
		r.logger.Error("access check failed", "socket_id", s.ID, "workflow_id", workflowID, "error", err)
		s.send(EventJoinWorkflowError, JoinErrorPayload{Error: "Failed to verify workflow access"})
		return
	}
	if !access.HasAccess {
		s.send(EventJoinWorkflowError, JoinErrorPayload{Error: "Access denied"})
		return
	}

	// Switching rooms leaves the old one first, presence broadcast included.
	r.leave(s)

	now := time.Now().UnixMilli()
	r.mu.Lock()
	room, ok := r.rooms[workflowID]
	if !ok {
		room = &Room{
			WorkflowID:   workflowID,
			LastModified: now,
			users:        make(map[string]*UserPresence),
			sockets:      make(map[string]*Socket),
		}
		r.rooms[workflowID] = room
	}
	room.ActiveConnections++
	room.users[s.ID] = &UserPresence{
		UserID:       s.UserID,
		UserName:     s.UserName,
		Role:         access.Role,
		JoinedAt:     now,
		LastActivity: now,
	}
	room.sockets[s.ID] = s
	r.socketRoom[s.ID] = workflowID
	r.mu.Unlock()

	r.logger.Info("socket joined workflow",
		"socket_id", s.ID, "workflow_id", workflowID, "user_id", s.UserID, "role", access.Role)

	state, err := r.state.GetWorkflowState(ctx, workflowID)
	if err != nil {
		// Membership stands; the client can request-sync once storage recovers.
		r.logger.Error("failed to load workflow state", "workflow_id", workflowID, "error", err)
		s.send(EventJoinWorkflowError, JoinErrorPayload{Error: "Failed to load workflow state"})
		return
	}
	s.send(EventWorkflowState, state)

	r.broadcastPresence(workflowID, s.ID)
}

// LeaveWorkflow removes the socket from its room and broadcasts the updated
// presence list to the remaining participants.
func (r *Rooms) LeaveWorkflow(s *Socket) {
	r.leave(s)
}

// Disconnect is the socket's final cleanup: leave the room and drop the
// session record.
func (r *Rooms) Disconnect(s *Socket) {
	r.leave(s)
	r.mu.Lock()
	delete(r.sessions, s.ID)
	r.mu.Unlock()
}

// RequestSync re-sends the current workflow state without changing room
// membership.
func (r *Rooms) RequestSync(ctx context.Context, s *Socket, workflowID string) {
	if workflowID == "" {
		s.send(EventError, ErrorPayload{Type: ErrTypeValidation, Message: "workflowId is required"})
		return
	}
	if s.UserID == "" {
		s.send(EventJoinWorkflowError, JoinErrorPayload{Error: "Authentication required"})
		return
	}

	access, err := r.access.VerifyWorkflowAccess(ctx, s.UserID, workflowID)
	if err != nil {
		if errors.Is(err, services.ErrWorkflowNotFound) {
			s.send(EventJoinWorkflowError, JoinErrorPayload{Error: "Workflow not found"})
			return
		}
		r.logger.Error("access check failed", "socket_id", s.ID, "workflow_id", workflowID, "error", err)
		s.send(EventError, ErrorPayload{Type: ErrTypeSyncFailed, Message: "Failed to verify workflow access"})
		return
	}
	if !access.HasAccess {
		s.send(EventJoinWorkflowError, JoinErrorPayload{Error: "Access denied"})
		return
	}

	state, err := r.state.GetWorkflowState(ctx, workflowID)
	if err != nil {
		r.logger.Error("failed to load workflow state", "workflow_id", workflowID, "error", err)
		s.send(EventError, ErrorPayload{Type: ErrTypeSyncFailed, Message: "Failed to load workflow state"})
		return
	}
	s.send(EventWorkflowState, state)
}

// leave removes the socket from its current room, if any, and broadcasts the
// shrunken presence list to whoever stays behind. Empty rooms are dropped.
func (r *Rooms) leave(s *Socket) {
	r.mu.Lock()
	workflowID, ok := r.socketRoom[s.ID]
	if !ok {
		r.mu.Unlock()
		return
	}
	delete(r.socketRoom, s.ID)

	room := r.rooms[workflowID]
	if room == nil {
		r.mu.Unlock()
		return
	}
	delete(room.users, s.ID)
	delete(room.sockets, s.ID)
	room.ActiveConnections--
	if room.ActiveConnections <= 0 {
		delete(r.rooms, workflowID)
		r.mu.Unlock()
		r.logger.Info("workflow room closed", "workflow_id", workflowID)
		return
	}
	r.mu.Unlock()

	r.broadcastPresence(workflowID, "")
}

// broadcastPresence sends the room's presence list to every member except
// exclude (empty string excludes nobody).
func (r *Rooms) broadcastPresence(workflowID, exclude string) {
	payload := PresencePayload{
		WorkflowID: workflowID,
		Users:      r.Presences(workflowID),
	}
	r.Broadcast(workflowID, EventPresenceUpdate, payload, exclude)
}

// Broadcast sends one event to every socket in the workflow's room except the
// excluded socket IDs. Socket pointers are snapshotted under the read lock;
// writes happen outside it so a slow client cannot stall joins and leaves.
func (r *Rooms) Broadcast(workflowID, event string, payload any, exclude ...string) {
	skip := make(map[string]bool, len(exclude))
	for _, id := range exclude {
		if id != "" {
			skip[id] = true
		}
	}

	r.mu.RLock()
	room, ok := r.rooms[workflowID]
	if !ok {
		r.mu.RUnlock()
		return
	}
	targets := make([]*Socket, 0, len(room.sockets))
	for id, sock := range room.sockets {
		if !skip[id] {
			targets = append(targets, sock)
		}
	}
	r.mu.RUnlock()

	for _, sock := range targets {
		if err := sock.send(event, payload); err != nil {
			r.logger.Warn("failed to send to socket", "socket_id", sock.ID, "event", event, "error", err)
		}
	}
}

// Presences returns an unordered snapshot of the room's participants.
func (r *Rooms) Presences(workflowID string) []UserPresence {
	r.mu.RLock()
	defer r.mu.RUnlock()
	room, ok := r.rooms[workflowID]
	if !ok {
		return nil
	}
	users := make([]UserPresence, 0, len(room.users))
	for _, p := range room.users {
		users = append(users, *p)
	}
	return users
}

// WorkflowOf returns the workflow the socket has joined, if any.
func (r *Rooms) WorkflowOf(socketID string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	workflowID, ok := r.socketRoom[socketID]
	return workflowID, ok
}

// CachedRole returns the role stored in the socket's presence record at join
// time. Operations must use this instead of re-querying storage.
func (r *Rooms) CachedRole(socketID string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	workflowID, ok := r.socketRoom[socketID]
	if !ok {
		return "", false
	}
	room, ok := r.rooms[workflowID]
	if !ok {
		return "", false
	}
	p, ok := room.users[socketID]
	if !ok {
		return "", false
	}
	return p.Role, true
}

// SessionOf returns the identity recorded when the socket connected.
func (r *Rooms) SessionOf(socketID string) (Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sess, ok := r.sessions[socketID]
	return sess, ok
}

// TouchRoom bumps the room's last-modified stamp and the socket's activity
// marker after a persisted operation.
func (r *Rooms) TouchRoom(workflowID, socketID string, ts int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	room, ok := r.rooms[workflowID]
	if !ok {
		return
	}
	if ts > room.LastModified {
		room.LastModified = ts
	}
	if p, ok := room.users[socketID]; ok {
		p.LastActivity = ts
	}
}

// RoomCount reports how many rooms currently have participants.
func (r *Rooms) RoomCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rooms)
}
