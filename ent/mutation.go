// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/weft-labs/weft/ent/permission"
	"github.com/weft-labs/weft/ent/predicate"
	"github.com/weft-labs/weft/ent/userratelimit"
	"github.com/weft-labs/weft/ent/workflow"
	"github.com/weft-labs/weft/ent/workflowblock"
	"github.com/weft-labs/weft/ent/workflowedge"
	"github.com/weft-labs/weft/ent/workflowoperation"
	"github.com/weft-labs/weft/pkg/models"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypePermission        = "Permission"
	TypeUserRateLimit     = "UserRateLimit"
	TypeWorkflow          = "Workflow"
	TypeWorkflowBlock     = "WorkflowBlock"
	TypeWorkflowEdge      = "WorkflowEdge"
	TypeWorkflowOperation = "WorkflowOperation"
)

// PermissionMutation represents an operation that mutates the Permission nodes in the graph.
type PermissionMutation struct {
	config
	op              Op
	typ             string
	id              *string
	user_id         *string
	entity_type     *string
	entity_id       *string
	permission_type *permission.PermissionType
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*Permission, error)
	predicates      []predicate.Permission
}

var _ ent.Mutation = (*PermissionMutation)(nil)

// permissionOption allows management of the mutation configuration using functional options.
type permissionOption func(*PermissionMutation)

// newPermissionMutation creates new mutation for the Permission entity.
func newPermissionMutation(c config, op Op, opts ...permissionOption) *PermissionMutation {
	m := &PermissionMutation{
		config:        c,
		op:            op,
		typ:           TypePermission,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPermissionID sets the ID field of the mutation.
func withPermissionID(id string) permissionOption {
	return func(m *PermissionMutation) {
		var (
			err   error
			once  sync.Once
			value *Permission
		)
		m.oldValue = func(ctx context.Context) (*Permission, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Permission.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPermission sets the old Permission of the mutation.
func withPermission(node *Permission) permissionOption {
	return func(m *PermissionMutation) {
		m.oldValue = func(context.Context) (*Permission, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PermissionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PermissionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Permission entities.
func (m *PermissionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PermissionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PermissionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Permission.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *PermissionMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *PermissionMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Permission entity.
// If the Permission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PermissionMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *PermissionMutation) ResetUserID() {
	m.user_id = nil
}

// SetEntityType sets the "entity_type" field.
func (m *PermissionMutation) SetEntityType(s string) {
	m.entity_type = &s
}

// EntityType returns the value of the "entity_type" field in the mutation.
func (m *PermissionMutation) EntityType() (r string, exists bool) {
	v := m.entity_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityType returns the old "entity_type" field's value of the Permission entity.
// If the Permission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PermissionMutation) OldEntityType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityType: %w", err)
	}
	return oldValue.EntityType, nil
}

// ResetEntityType resets all changes to the "entity_type" field.
func (m *PermissionMutation) ResetEntityType() {
	m.entity_type = nil
}

// SetEntityID sets the "entity_id" field.
func (m *PermissionMutation) SetEntityID(s string) {
	m.entity_id = &s
}

// EntityID returns the value of the "entity_id" field in the mutation.
func (m *PermissionMutation) EntityID() (r string, exists bool) {
	v := m.entity_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityID returns the old "entity_id" field's value of the Permission entity.
// If the Permission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PermissionMutation) OldEntityID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityID: %w", err)
	}
	return oldValue.EntityID, nil
}

// ResetEntityID resets all changes to the "entity_id" field.
func (m *PermissionMutation) ResetEntityID() {
	m.entity_id = nil
}

// SetPermissionType sets the "permission_type" field.
func (m *PermissionMutation) SetPermissionType(pt permission.PermissionType) {
	m.permission_type = &pt
}

// PermissionType returns the value of the "permission_type" field in the mutation.
func (m *PermissionMutation) PermissionType() (r permission.PermissionType, exists bool) {
	v := m.permission_type
	if v == nil {
		return
	}
	return *v, true
}

// OldPermissionType returns the old "permission_type" field's value of the Permission entity.
// If the Permission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PermissionMutation) OldPermissionType(ctx context.Context) (v permission.PermissionType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPermissionType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPermissionType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPermissionType: %w", err)
	}
	return oldValue.PermissionType, nil
}

// ResetPermissionType resets all changes to the "permission_type" field.
func (m *PermissionMutation) ResetPermissionType() {
	m.permission_type = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *PermissionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PermissionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Permission entity.
// If the Permission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PermissionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PermissionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PermissionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PermissionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Permission entity.
// If the Permission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PermissionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PermissionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the PermissionMutation builder.
func (m *PermissionMutation) Where(ps ...predicate.Permission) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PermissionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PermissionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Permission, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PermissionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PermissionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Permission).
func (m *PermissionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PermissionMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.user_id != nil {
		fields = append(fields, permission.FieldUserID)
	}
	if m.entity_type != nil {
		fields = append(fields, permission.FieldEntityType)
	}
	if m.entity_id != nil {
		fields = append(fields, permission.FieldEntityID)
	}
	if m.permission_type != nil {
		fields = append(fields, permission.FieldPermissionType)
	}
	if m.created_at != nil {
		fields = append(fields, permission.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, permission.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PermissionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case permission.FieldUserID:
		return m.UserID()
	case permission.FieldEntityType:
		return m.EntityType()
	case permission.FieldEntityID:
		return m.EntityID()
	case permission.FieldPermissionType:
		return m.PermissionType()
	case permission.FieldCreatedAt:
		return m.CreatedAt()
	case permission.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PermissionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case permission.FieldUserID:
		return m.OldUserID(ctx)
	case permission.FieldEntityType:
		return m.OldEntityType(ctx)
	case permission.FieldEntityID:
		return m.OldEntityID(ctx)
	case permission.FieldPermissionType:
		return m.OldPermissionType(ctx)
	case permission.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case permission.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Permission field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PermissionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case permission.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case permission.FieldEntityType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityType(v)
		return nil
	case permission.FieldEntityID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityID(v)
		return nil
	case permission.FieldPermissionType:
		v, ok := value.(permission.PermissionType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPermissionType(v)
		return nil
	case permission.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case permission.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Permission field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PermissionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PermissionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PermissionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Permission numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PermissionMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PermissionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PermissionMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Permission nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PermissionMutation) ResetField(name string) error {
	switch name {
	case permission.FieldUserID:
		m.ResetUserID()
		return nil
	case permission.FieldEntityType:
		m.ResetEntityType()
		return nil
	case permission.FieldEntityID:
		m.ResetEntityID()
		return nil
	case permission.FieldPermissionType:
		m.ResetPermissionType()
		return nil
	case permission.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case permission.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Permission field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PermissionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PermissionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PermissionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PermissionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PermissionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PermissionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PermissionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Permission unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PermissionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Permission edge %s", name)
}

// UserRateLimitMutation represents an operation that mutates the UserRateLimit nodes in the graph.
type UserRateLimitMutation struct {
	config
	op                       Op
	typ                      string
	id                       *string
	sync_api_requests        *int
	addsync_api_requests     *int
	async_api_requests       *int
	addasync_api_requests    *int
	api_endpoint_requests    *int
	addapi_endpoint_requests *int
	window_start             *time.Time
	last_request_at          *time.Time
	is_rate_limited          *bool
	rate_limit_reset_at      *time.Time
	clearedFields            map[string]struct{}
	done                     bool
	oldValue                 func(context.Context) (*UserRateLimit, error)
	predicates               []predicate.UserRateLimit
}

var _ ent.Mutation = (*UserRateLimitMutation)(nil)

// userratelimitOption allows management of the mutation configuration using functional options.
type userratelimitOption func(*UserRateLimitMutation)

// newUserRateLimitMutation creates new mutation for the UserRateLimit entity.
func newUserRateLimitMutation(c config, op Op, opts ...userratelimitOption) *UserRateLimitMutation {
	m := &UserRateLimitMutation{
		config:        c,
		op:            op,
		typ:           TypeUserRateLimit,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserRateLimitID sets the ID field of the mutation.
func withUserRateLimitID(id string) userratelimitOption {
	return func(m *UserRateLimitMutation) {
		var (
			err   error
			once  sync.Once
			value *UserRateLimit
		)
		m.oldValue = func(ctx context.Context) (*UserRateLimit, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UserRateLimit.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUserRateLimit sets the old UserRateLimit of the mutation.
func withUserRateLimit(node *UserRateLimit) userratelimitOption {
	return func(m *UserRateLimitMutation) {
		m.oldValue = func(context.Context) (*UserRateLimit, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserRateLimitMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserRateLimitMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of UserRateLimit entities.
func (m *UserRateLimitMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserRateLimitMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserRateLimitMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UserRateLimit.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSyncAPIRequests sets the "sync_api_requests" field.
func (m *UserRateLimitMutation) SetSyncAPIRequests(i int) {
	m.sync_api_requests = &i
	m.addsync_api_requests = nil
}

// SyncAPIRequests returns the value of the "sync_api_requests" field in the mutation.
func (m *UserRateLimitMutation) SyncAPIRequests() (r int, exists bool) {
	v := m.sync_api_requests
	if v == nil {
		return
	}
	return *v, true
}

// OldSyncAPIRequests returns the old "sync_api_requests" field's value of the UserRateLimit entity.
// If the UserRateLimit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserRateLimitMutation) OldSyncAPIRequests(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSyncAPIRequests is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSyncAPIRequests requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSyncAPIRequests: %w", err)
	}
	return oldValue.SyncAPIRequests, nil
}

// AddSyncAPIRequests adds i to the "sync_api_requests" field.
func (m *UserRateLimitMutation) AddSyncAPIRequests(i int) {
	if m.addsync_api_requests != nil {
		*m.addsync_api_requests += i
	} else {
		m.addsync_api_requests = &i
	}
}

// AddedSyncAPIRequests returns the value that was added to the "sync_api_requests" field in this mutation.
func (m *UserRateLimitMutation) AddedSyncAPIRequests() (r int, exists bool) {
	v := m.addsync_api_requests
	if v == nil {
		return
	}
	return *v, true
}

// ResetSyncAPIRequests resets all changes to the "sync_api_requests" field.
func (m *UserRateLimitMutation) ResetSyncAPIRequests() {
	m.sync_api_requests = nil
	m.addsync_api_requests = nil
}

// SetAsyncAPIRequests sets the "async_api_requests" field.
func (m *UserRateLimitMutation) SetAsyncAPIRequests(i int) {
	m.async_api_requests = &i
	m.addasync_api_requests = nil
}

// AsyncAPIRequests returns the value of the "async_api_requests" field in the mutation.
func (m *UserRateLimitMutation) AsyncAPIRequests() (r int, exists bool) {
	v := m.async_api_requests
	if v == nil {
		return
	}
	return *v, true
}

// OldAsyncAPIRequests returns the old "async_api_requests" field's value of the UserRateLimit entity.
// If the UserRateLimit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserRateLimitMutation) OldAsyncAPIRequests(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAsyncAPIRequests is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAsyncAPIRequests requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAsyncAPIRequests: %w", err)
	}
	return oldValue.AsyncAPIRequests, nil
}

// AddAsyncAPIRequests adds i to the "async_api_requests" field.
func (m *UserRateLimitMutation) AddAsyncAPIRequests(i int) {
	if m.addasync_api_requests != nil {
		*m.addasync_api_requests += i
	} else {
		m.addasync_api_requests = &i
	}
}

// AddedAsyncAPIRequests returns the value that was added to the "async_api_requests" field in this mutation.
func (m *UserRateLimitMutation) AddedAsyncAPIRequests() (r int, exists bool) {
	v := m.addasync_api_requests
	if v == nil {
		return
	}
	return *v, true
}

// ResetAsyncAPIRequests resets all changes to the "async_api_requests" field.
func (m *UserRateLimitMutation) ResetAsyncAPIRequests() {
	m.async_api_requests = nil
	m.addasync_api_requests = nil
}

// SetAPIEndpointRequests sets the "api_endpoint_requests" field.
func (m *UserRateLimitMutation) SetAPIEndpointRequests(i int) {
	m.api_endpoint_requests = &i
	m.addapi_endpoint_requests = nil
}

// APIEndpointRequests returns the value of the "api_endpoint_requests" field in the mutation.
func (m *UserRateLimitMutation) APIEndpointRequests() (r int, exists bool) {
	v := m.api_endpoint_requests
	if v == nil {
		return
	}
	return *v, true
}

// OldAPIEndpointRequests returns the old "api_endpoint_requests" field's value of the UserRateLimit entity.
// If the UserRateLimit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserRateLimitMutation) OldAPIEndpointRequests(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAPIEndpointRequests is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAPIEndpointRequests requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAPIEndpointRequests: %w", err)
	}
	return oldValue.APIEndpointRequests, nil
}

// AddAPIEndpointRequests adds i to the "api_endpoint_requests" field.
func (m *UserRateLimitMutation) AddAPIEndpointRequests(i int) {
	if m.addapi_endpoint_requests != nil {
		*m.addapi_endpoint_requests += i
	} else {
		m.addapi_endpoint_requests = &i
	}
}

// AddedAPIEndpointRequests returns the value that was added to the "api_endpoint_requests" field in this mutation.
func (m *UserRateLimitMutation) AddedAPIEndpointRequests() (r int, exists bool) {
	v := m.addapi_endpoint_requests
	if v == nil {
		return
	}
	return *v, true
}

// ResetAPIEndpointRequests resets all changes to the "api_endpoint_requests" field.
func (m *UserRateLimitMutation) ResetAPIEndpointRequests() {
	m.api_endpoint_requests = nil
	m.addapi_endpoint_requests = nil
}

// SetWindowStart sets the "window_start" field.
func (m *UserRateLimitMutation) SetWindowStart(t time.Time) {
	m.window_start = &t
}

// WindowStart returns the value of the "window_start" field in the mutation.
func (m *UserRateLimitMutation) WindowStart() (r time.Time, exists bool) {
	v := m.window_start
	if v == nil {
		return
	}
	return *v, true
}

// OldWindowStart returns the old "window_start" field's value of the UserRateLimit entity.
// If the UserRateLimit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserRateLimitMutation) OldWindowStart(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWindowStart is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWindowStart requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWindowStart: %w", err)
	}
	return oldValue.WindowStart, nil
}

// ResetWindowStart resets all changes to the "window_start" field.
func (m *UserRateLimitMutation) ResetWindowStart() {
	m.window_start = nil
}

// SetLastRequestAt sets the "last_request_at" field.
func (m *UserRateLimitMutation) SetLastRequestAt(t time.Time) {
	m.last_request_at = &t
}

// LastRequestAt returns the value of the "last_request_at" field in the mutation.
func (m *UserRateLimitMutation) LastRequestAt() (r time.Time, exists bool) {
	v := m.last_request_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastRequestAt returns the old "last_request_at" field's value of the UserRateLimit entity.
// If the UserRateLimit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserRateLimitMutation) OldLastRequestAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastRequestAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastRequestAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastRequestAt: %w", err)
	}
	return oldValue.LastRequestAt, nil
}

// ResetLastRequestAt resets all changes to the "last_request_at" field.
func (m *UserRateLimitMutation) ResetLastRequestAt() {
	m.last_request_at = nil
}

// SetIsRateLimited sets the "is_rate_limited" field.
func (m *UserRateLimitMutation) SetIsRateLimited(b bool) {
	m.is_rate_limited = &b
}

// IsRateLimited returns the value of the "is_rate_limited" field in the mutation.
func (m *UserRateLimitMutation) IsRateLimited() (r bool, exists bool) {
	v := m.is_rate_limited
	if v == nil {
		return
	}
	return *v, true
}

// OldIsRateLimited returns the old "is_rate_limited" field's value of the UserRateLimit entity.
// If the UserRateLimit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserRateLimitMutation) OldIsRateLimited(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsRateLimited is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsRateLimited requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsRateLimited: %w", err)
	}
	return oldValue.IsRateLimited, nil
}

// ResetIsRateLimited resets all changes to the "is_rate_limited" field.
func (m *UserRateLimitMutation) ResetIsRateLimited() {
	m.is_rate_limited = nil
}

// SetRateLimitResetAt sets the "rate_limit_reset_at" field.
func (m *UserRateLimitMutation) SetRateLimitResetAt(t time.Time) {
	m.rate_limit_reset_at = &t
}

// RateLimitResetAt returns the value of the "rate_limit_reset_at" field in the mutation.
func (m *UserRateLimitMutation) RateLimitResetAt() (r time.Time, exists bool) {
	v := m.rate_limit_reset_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRateLimitResetAt returns the old "rate_limit_reset_at" field's value of the UserRateLimit entity.
// If the UserRateLimit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserRateLimitMutation) OldRateLimitResetAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRateLimitResetAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRateLimitResetAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRateLimitResetAt: %w", err)
	}
	return oldValue.RateLimitResetAt, nil
}

// ClearRateLimitResetAt clears the value of the "rate_limit_reset_at" field.
func (m *UserRateLimitMutation) ClearRateLimitResetAt() {
	m.rate_limit_reset_at = nil
	m.clearedFields[userratelimit.FieldRateLimitResetAt] = struct{}{}
}

// RateLimitResetAtCleared returns if the "rate_limit_reset_at" field was cleared in this mutation.
func (m *UserRateLimitMutation) RateLimitResetAtCleared() bool {
	_, ok := m.clearedFields[userratelimit.FieldRateLimitResetAt]
	return ok
}

// ResetRateLimitResetAt resets all changes to the "rate_limit_reset_at" field.
func (m *UserRateLimitMutation) ResetRateLimitResetAt() {
	m.rate_limit_reset_at = nil
	delete(m.clearedFields, userratelimit.FieldRateLimitResetAt)
}

// Where appends a list predicates to the UserRateLimitMutation builder.
func (m *UserRateLimitMutation) Where(ps ...predicate.UserRateLimit) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserRateLimitMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserRateLimitMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UserRateLimit, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserRateLimitMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserRateLimitMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UserRateLimit).
func (m *UserRateLimitMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserRateLimitMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.sync_api_requests != nil {
		fields = append(fields, userratelimit.FieldSyncAPIRequests)
	}
	if m.async_api_requests != nil {
		fields = append(fields, userratelimit.FieldAsyncAPIRequests)
	}
	if m.api_endpoint_requests != nil {
		fields = append(fields, userratelimit.FieldAPIEndpointRequests)
	}
	if m.window_start != nil {
		fields = append(fields, userratelimit.FieldWindowStart)
	}
	if m.last_request_at != nil {
		fields = append(fields, userratelimit.FieldLastRequestAt)
	}
	if m.is_rate_limited != nil {
		fields = append(fields, userratelimit.FieldIsRateLimited)
	}
	if m.rate_limit_reset_at != nil {
		fields = append(fields, userratelimit.FieldRateLimitResetAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserRateLimitMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case userratelimit.FieldSyncAPIRequests:
		return m.SyncAPIRequests()
	case userratelimit.FieldAsyncAPIRequests:
		return m.AsyncAPIRequests()
	case userratelimit.FieldAPIEndpointRequests:
		return m.APIEndpointRequests()
	case userratelimit.FieldWindowStart:
		return m.WindowStart()
	case userratelimit.FieldLastRequestAt:
		return m.LastRequestAt()
	case userratelimit.FieldIsRateLimited:
		return m.IsRateLimited()
	case userratelimit.FieldRateLimitResetAt:
		return m.RateLimitResetAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserRateLimitMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case userratelimit.FieldSyncAPIRequests:
		return m.OldSyncAPIRequests(ctx)
	case userratelimit.FieldAsyncAPIRequests:
		return m.OldAsyncAPIRequests(ctx)
	case userratelimit.FieldAPIEndpointRequests:
		return m.OldAPIEndpointRequests(ctx)
	case userratelimit.FieldWindowStart:
		return m.OldWindowStart(ctx)
	case userratelimit.FieldLastRequestAt:
		return m.OldLastRequestAt(ctx)
	case userratelimit.FieldIsRateLimited:
		return m.OldIsRateLimited(ctx)
	case userratelimit.FieldRateLimitResetAt:
		return m.OldRateLimitResetAt(ctx)
	}
	return nil, fmt.Errorf("unknown UserRateLimit field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserRateLimitMutation) SetField(name string, value ent.Value) error {
	switch name {
	case userratelimit.FieldSyncAPIRequests:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSyncAPIRequests(v)
		return nil
	case userratelimit.FieldAsyncAPIRequests:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAsyncAPIRequests(v)
		return nil
	case userratelimit.FieldAPIEndpointRequests:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAPIEndpointRequests(v)
		return nil
	case userratelimit.FieldWindowStart:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWindowStart(v)
		return nil
	case userratelimit.FieldLastRequestAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastRequestAt(v)
		return nil
	case userratelimit.FieldIsRateLimited:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsRateLimited(v)
		return nil
	case userratelimit.FieldRateLimitResetAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRateLimitResetAt(v)
		return nil
	}
	return fmt.Errorf("unknown UserRateLimit field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserRateLimitMutation) AddedFields() []string {
	var fields []string
	if m.addsync_api_requests != nil {
		fields = append(fields, userratelimit.FieldSyncAPIRequests)
	}
	if m.addasync_api_requests != nil {
		fields = append(fields, userratelimit.FieldAsyncAPIRequests)
	}
	if m.addapi_endpoint_requests != nil {
		fields = append(fields, userratelimit.FieldAPIEndpointRequests)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserRateLimitMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case userratelimit.FieldSyncAPIRequests:
		return m.AddedSyncAPIRequests()
	case userratelimit.FieldAsyncAPIRequests:
		return m.AddedAsyncAPIRequests()
	case userratelimit.FieldAPIEndpointRequests:
		return m.AddedAPIEndpointRequests()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserRateLimitMutation) AddField(name string, value ent.Value) error {
	switch name {
	case userratelimit.FieldSyncAPIRequests:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSyncAPIRequests(v)
		return nil
	case userratelimit.FieldAsyncAPIRequests:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAsyncAPIRequests(v)
		return nil
	case userratelimit.FieldAPIEndpointRequests:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAPIEndpointRequests(v)
		return nil
	}
	return fmt.Errorf("unknown UserRateLimit numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserRateLimitMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(userratelimit.FieldRateLimitResetAt) {
		fields = append(fields, userratelimit.FieldRateLimitResetAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserRateLimitMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserRateLimitMutation) ClearField(name string) error {
	switch name {
	case userratelimit.FieldRateLimitResetAt:
		m.ClearRateLimitResetAt()
		return nil
	}
	return fmt.Errorf("unknown UserRateLimit nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserRateLimitMutation) ResetField(name string) error {
	switch name {
	case userratelimit.FieldSyncAPIRequests:
		m.ResetSyncAPIRequests()
		return nil
	case userratelimit.FieldAsyncAPIRequests:
		m.ResetAsyncAPIRequests()
		return nil
	case userratelimit.FieldAPIEndpointRequests:
		m.ResetAPIEndpointRequests()
		return nil
	case userratelimit.FieldWindowStart:
		m.ResetWindowStart()
		return nil
	case userratelimit.FieldLastRequestAt:
		m.ResetLastRequestAt()
		return nil
	case userratelimit.FieldIsRateLimited:
		m.ResetIsRateLimited()
		return nil
	case userratelimit.FieldRateLimitResetAt:
		m.ResetRateLimitResetAt()
		return nil
	}
	return fmt.Errorf("unknown UserRateLimit field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserRateLimitMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserRateLimitMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserRateLimitMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserRateLimitMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserRateLimitMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserRateLimitMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserRateLimitMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown UserRateLimit unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserRateLimitMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown UserRateLimit edge %s", name)
}

// WorkflowMutation represents an operation that mutates the Workflow nodes in the graph.
type WorkflowMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	user_id               *string
	name                  *string
	variables             *map[string]models.Variable
	created_at            *time.Time
	updated_at            *time.Time
	clearedFields         map[string]struct{}
	blocks                map[string]struct{}
	removedblocks         map[string]struct{}
	clearedblocks         bool
	workflow_edges        map[string]struct{}
	removedworkflow_edges map[string]struct{}
	clearedworkflow_edges bool
	operations            map[string]struct{}
	removedoperations     map[string]struct{}
	clearedoperations     bool
	done                  bool
	oldValue              func(context.Context) (*Workflow, error)
	predicates            []predicate.Workflow
}

var _ ent.Mutation = (*WorkflowMutation)(nil)

// workflowOption allows management of the mutation configuration using functional options.
type workflowOption func(*WorkflowMutation)

// newWorkflowMutation creates new mutation for the Workflow entity.
func newWorkflowMutation(c config, op Op, opts ...workflowOption) *WorkflowMutation {
	m := &WorkflowMutation{
		config:        c,
		op:            op,
		typ:           TypeWorkflow,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWorkflowID sets the ID field of the mutation.
func withWorkflowID(id string) workflowOption {
	return func(m *WorkflowMutation) {
		var (
			err   error
			once  sync.Once
			value *Workflow
		)
		m.oldValue = func(ctx context.Context) (*Workflow, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Workflow.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWorkflow sets the old Workflow of the mutation.
func withWorkflow(node *Workflow) workflowOption {
	return func(m *WorkflowMutation) {
		m.oldValue = func(context.Context) (*Workflow, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WorkflowMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WorkflowMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Workflow entities.
func (m *WorkflowMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WorkflowMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WorkflowMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Workflow.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *WorkflowMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *WorkflowMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *WorkflowMutation) ResetUserID() {
	m.user_id = nil
}

// SetName sets the "name" field.
func (m *WorkflowMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *WorkflowMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *WorkflowMutation) ResetName() {
	m.name = nil
}

// SetVariables sets the "variables" field.
func (m *WorkflowMutation) SetVariables(value map[string]models.Variable) {
	m.variables = &value
}

// Variables returns the value of the "variables" field in the mutation.
func (m *WorkflowMutation) Variables() (r map[string]models.Variable, exists bool) {
	v := m.variables
	if v == nil {
		return
	}
	return *v, true
}

// OldVariables returns the old "variables" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldVariables(ctx context.Context) (v map[string]models.Variable, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVariables is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVariables requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVariables: %w", err)
	}
	return oldValue.Variables, nil
}

// ClearVariables clears the value of the "variables" field.
func (m *WorkflowMutation) ClearVariables() {
	m.variables = nil
	m.clearedFields[workflow.FieldVariables] = struct{}{}
}

// VariablesCleared returns if the "variables" field was cleared in this mutation.
func (m *WorkflowMutation) VariablesCleared() bool {
	_, ok := m.clearedFields[workflow.FieldVariables]
	return ok
}

// ResetVariables resets all changes to the "variables" field.
func (m *WorkflowMutation) ResetVariables() {
	m.variables = nil
	delete(m.clearedFields, workflow.FieldVariables)
}

// SetCreatedAt sets the "created_at" field.
func (m *WorkflowMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WorkflowMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WorkflowMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *WorkflowMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *WorkflowMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *WorkflowMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddBlockIDs adds the "blocks" edge to the WorkflowBlock entity by ids.
func (m *WorkflowMutation) AddBlockIDs(ids ...string) {
	if m.blocks == nil {
		m.blocks = make(map[string]struct{})
	}
	for i := range ids {
		m.blocks[ids[i]] = struct{}{}
	}
}

// ClearBlocks clears the "blocks" edge to the WorkflowBlock entity.
func (m *WorkflowMutation) ClearBlocks() {
	m.clearedblocks = true
}

// BlocksCleared reports if the "blocks" edge to the WorkflowBlock entity was cleared.
func (m *WorkflowMutation) BlocksCleared() bool {
	return m.clearedblocks
}

// RemoveBlockIDs removes the "blocks" edge to the WorkflowBlock entity by IDs.
func (m *WorkflowMutation) RemoveBlockIDs(ids ...string) {
	if m.removedblocks == nil {
		m.removedblocks = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.blocks, ids[i])
		m.removedblocks[ids[i]] = struct{}{}
	}
}

// RemovedBlocks returns the removed IDs of the "blocks" edge to the WorkflowBlock entity.
func (m *WorkflowMutation) RemovedBlocksIDs() (ids []string) {
	for id := range m.removedblocks {
		ids = append(ids, id)
	}
	return
}

// BlocksIDs returns the "blocks" edge IDs in the mutation.
func (m *WorkflowMutation) BlocksIDs() (ids []string) {
	for id := range m.blocks {
		ids = append(ids, id)
	}
	return
}

// ResetBlocks resets all changes to the "blocks" edge.
func (m *WorkflowMutation) ResetBlocks() {
	m.blocks = nil
	m.clearedblocks = false
	m.removedblocks = nil
}

// AddWorkflowEdgeIDs adds the "workflow_edges" edge to the WorkflowEdge entity by ids.
func (m *WorkflowMutation) AddWorkflowEdgeIDs(ids ...string) {
	if m.workflow_edges == nil {
		m.workflow_edges = make(map[string]struct{})
	}
	for i := range ids {
		m.workflow_edges[ids[i]] = struct{}{}
	}
}

// ClearWorkflowEdges clears the "workflow_edges" edge to the WorkflowEdge entity.
func (m *WorkflowMutation) ClearWorkflowEdges() {
	m.clearedworkflow_edges = true
}

// WorkflowEdgesCleared reports if the "workflow_edges" edge to the WorkflowEdge entity was cleared.
func (m *WorkflowMutation) WorkflowEdgesCleared() bool {
	return m.clearedworkflow_edges
}

// RemoveWorkflowEdgeIDs removes the "workflow_edges" edge to the WorkflowEdge entity by IDs.
func (m *WorkflowMutation) RemoveWorkflowEdgeIDs(ids ...string) {
	if m.removedworkflow_edges == nil {
		m.removedworkflow_edges = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.workflow_edges, ids[i])
		m.removedworkflow_edges[ids[i]] = struct{}{}
	}
}

// RemovedWorkflowEdges returns the removed IDs of the "workflow_edges" edge to the WorkflowEdge entity.
func (m *WorkflowMutation) RemovedWorkflowEdgesIDs() (ids []string) {
	for id := range m.removedworkflow_edges {
		ids = append(ids, id)
	}
	return
}

// WorkflowEdgesIDs returns the "workflow_edges" edge IDs in the mutation.
func (m *WorkflowMutation) WorkflowEdgesIDs() (ids []string) {
	for id := range m.workflow_edges {
		ids = append(ids, id)
	}
	return
}

// ResetWorkflowEdges resets all changes to the "workflow_edges" edge.
func (m *WorkflowMutation) ResetWorkflowEdges() {
	m.workflow_edges = nil
	m.clearedworkflow_edges = false
	m.removedworkflow_edges = nil
}

// AddOperationIDs adds the "operations" edge to the WorkflowOperation entity by ids.
func (m *WorkflowMutation) AddOperationIDs(ids ...string) {
	if m.operations == nil {
		m.operations = make(map[string]struct{})
	}
	for i := range ids {
		m.operations[ids[i]] = struct{}{}
	}
}

// ClearOperations clears the "operations" edge to the WorkflowOperation entity.
func (m *WorkflowMutation) ClearOperations() {
	m.clearedoperations = true
}

// OperationsCleared reports if the "operations" edge to the WorkflowOperation entity was cleared.
func (m *WorkflowMutation) OperationsCleared() bool {
	return m.clearedoperations
}

// RemoveOperationIDs removes the "operations" edge to the WorkflowOperation entity by IDs.
func (m *WorkflowMutation) RemoveOperationIDs(ids ...string) {
	if m.removedoperations == nil {
		m.removedoperations = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.operations, ids[i])
		m.removedoperations[ids[i]] = struct{}{}
	}
}

// RemovedOperations returns the removed IDs of the "operations" edge to the WorkflowOperation entity.
func (m *WorkflowMutation) RemovedOperationsIDs() (ids []string) {
	for id := range m.removedoperations {
		ids = append(ids, id)
	}
	return
}

// OperationsIDs returns the "operations" edge IDs in the mutation.
func (m *WorkflowMutation) OperationsIDs() (ids []string) {
	for id := range m.operations {
		ids = append(ids, id)
	}
	return
}

// ResetOperations resets all changes to the "operations" edge.
func (m *WorkflowMutation) ResetOperations() {
	m.operations = nil
	m.clearedoperations = false
	m.removedoperations = nil
}

// Where appends a list predicates to the WorkflowMutation builder.
func (m *WorkflowMutation) Where(ps ...predicate.Workflow) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WorkflowMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WorkflowMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Workflow, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WorkflowMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WorkflowMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Workflow).
func (m *WorkflowMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WorkflowMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.user_id != nil {
		fields = append(fields, workflow.FieldUserID)
	}
	if m.name != nil {
		fields = append(fields, workflow.FieldName)
	}
	if m.variables != nil {
		fields = append(fields, workflow.FieldVariables)
	}
	if m.created_at != nil {
		fields = append(fields, workflow.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, workflow.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WorkflowMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case workflow.FieldUserID:
		return m.UserID()
	case workflow.FieldName:
		return m.Name()
	case workflow.FieldVariables:
		return m.Variables()
	case workflow.FieldCreatedAt:
		return m.CreatedAt()
	case workflow.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WorkflowMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case workflow.FieldUserID:
		return m.OldUserID(ctx)
	case workflow.FieldName:
		return m.OldName(ctx)
	case workflow.FieldVariables:
		return m.OldVariables(ctx)
	case workflow.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case workflow.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Workflow field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkflowMutation) SetField(name string, value ent.Value) error {
	switch name {
	case workflow.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case workflow.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case workflow.FieldVariables:
		v, ok := value.(map[string]models.Variable)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVariables(v)
		return nil
	case workflow.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case workflow.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Workflow field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WorkflowMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WorkflowMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkflowMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Workflow numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WorkflowMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(workflow.FieldVariables) {
		fields = append(fields, workflow.FieldVariables)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WorkflowMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WorkflowMutation) ClearField(name string) error {
	switch name {
	case workflow.FieldVariables:
		m.ClearVariables()
		return nil
	}
	return fmt.Errorf("unknown Workflow nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WorkflowMutation) ResetField(name string) error {
	switch name {
	case workflow.FieldUserID:
		m.ResetUserID()
		return nil
	case workflow.FieldName:
		m.ResetName()
		return nil
	case workflow.FieldVariables:
		m.ResetVariables()
		return nil
	case workflow.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case workflow.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Workflow field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WorkflowMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.blocks != nil {
		edges = append(edges, workflow.EdgeBlocks)
	}
	if m.workflow_edges != nil {
		edges = append(edges, workflow.EdgeWorkflowEdges)
	}
	if m.operations != nil {
		edges = append(edges, workflow.EdgeOperations)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WorkflowMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case workflow.EdgeBlocks:
		ids := make([]ent.Value, 0, len(m.blocks))
		for id := range m.blocks {
			ids = append(ids, id)
		}
		return ids
	case workflow.EdgeWorkflowEdges:
		ids := make([]ent.Value, 0, len(m.workflow_edges))
		for id := range m.workflow_edges {
			ids = append(ids, id)
		}
		return ids
	case workflow.EdgeOperations:
		ids := make([]ent.Value, 0, len(m.operations))
		for id := range m.operations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WorkflowMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedblocks != nil {
		edges = append(edges, workflow.EdgeBlocks)
	}
	if m.removedworkflow_edges != nil {
		edges = append(edges, workflow.EdgeWorkflowEdges)
	}
	if m.removedoperations != nil {
		edges = append(edges, workflow.EdgeOperations)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WorkflowMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case workflow.EdgeBlocks:
		ids := make([]ent.Value, 0, len(m.removedblocks))
		for id := range m.removedblocks {
			ids = append(ids, id)
		}
		return ids
	case workflow.EdgeWorkflowEdges:
		ids := make([]ent.Value, 0, len(m.removedworkflow_edges))
		for id := range m.removedworkflow_edges {
			ids = append(ids, id)
		}
		return ids
	case workflow.EdgeOperations:
		ids := make([]ent.Value, 0, len(m.removedoperations))
		for id := range m.removedoperations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WorkflowMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedblocks {
		edges = append(edges, workflow.EdgeBlocks)
	}
	if m.clearedworkflow_edges {
		edges = append(edges, workflow.EdgeWorkflowEdges)
	}
	if m.clearedoperations {
		edges = append(edges, workflow.EdgeOperations)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WorkflowMutation) EdgeCleared(name string) bool {
	switch name {
	case workflow.EdgeBlocks:
		return m.clearedblocks
	case workflow.EdgeWorkflowEdges:
		return m.clearedworkflow_edges
	case workflow.EdgeOperations:
		return m.clearedoperations
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WorkflowMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Workflow unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WorkflowMutation) ResetEdge(name string) error {
	switch name {
	case workflow.EdgeBlocks:
		m.ResetBlocks()
		return nil
	case workflow.EdgeWorkflowEdges:
		m.ResetWorkflowEdges()
		return nil
	case workflow.EdgeOperations:
		m.ResetOperations()
		return nil
	}
	return fmt.Errorf("unknown Workflow edge %s", name)
}

// WorkflowBlockMutation represents an operation that mutates the WorkflowBlock nodes in the graph.
type WorkflowBlockMutation struct {
	config
	op              Op
	typ             string
	id              *string
	_type           *string
	name            *string
	position_x      *float64
	addposition_x   *float64
	position_y      *float64
	addposition_y   *float64
	enabled         *bool
	parent_id       *string
	sub_blocks      *map[string]models.Subblock
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	workflow        *string
	clearedworkflow bool
	done            bool
	oldValue        func(context.Context) (*WorkflowBlock, error)
	predicates      []predicate.WorkflowBlock
}

var _ ent.Mutation = (*WorkflowBlockMutation)(nil)

// workflowblockOption allows management of the mutation configuration using functional options.
type workflowblockOption func(*WorkflowBlockMutation)

// newWorkflowBlockMutation creates new mutation for the WorkflowBlock entity.
func newWorkflowBlockMutation(c config, op Op, opts ...workflowblockOption) *WorkflowBlockMutation {
	m := &WorkflowBlockMutation{
		config:        c,
		op:            op,
		typ:           TypeWorkflowBlock,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWorkflowBlockID sets the ID field of the mutation.
func withWorkflowBlockID(id string) workflowblockOption {
	return func(m *WorkflowBlockMutation) {
		var (
			err   error
			once  sync.Once
			value *WorkflowBlock
		)
		m.oldValue = func(ctx context.Context) (*WorkflowBlock, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WorkflowBlock.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWorkflowBlock sets the old WorkflowBlock of the mutation.
func withWorkflowBlock(node *WorkflowBlock) workflowblockOption {
	return func(m *WorkflowBlockMutation) {
		m.oldValue = func(context.Context) (*WorkflowBlock, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WorkflowBlockMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WorkflowBlockMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of WorkflowBlock entities.
func (m *WorkflowBlockMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WorkflowBlockMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WorkflowBlockMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WorkflowBlock.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkflowID sets the "workflow_id" field.
func (m *WorkflowBlockMutation) SetWorkflowID(s string) {
	m.workflow = &s
}

// WorkflowID returns the value of the "workflow_id" field in the mutation.
func (m *WorkflowBlockMutation) WorkflowID() (r string, exists bool) {
	v := m.workflow
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkflowID returns the old "workflow_id" field's value of the WorkflowBlock entity.
// If the WorkflowBlock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowBlockMutation) OldWorkflowID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkflowID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkflowID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkflowID: %w", err)
	}
	return oldValue.WorkflowID, nil
}

// ResetWorkflowID resets all changes to the "workflow_id" field.
func (m *WorkflowBlockMutation) ResetWorkflowID() {
	m.workflow = nil
}

// SetType sets the "type" field.
func (m *WorkflowBlockMutation) SetType(s string) {
	m._type = &s
}

// GetType returns the value of the "type" field in the mutation.
func (m *WorkflowBlockMutation) GetType() (r string, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the WorkflowBlock entity.
// If the WorkflowBlock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowBlockMutation) OldType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *WorkflowBlockMutation) ResetType() {
	m._type = nil
}

// SetName sets the "name" field.
func (m *WorkflowBlockMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *WorkflowBlockMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the WorkflowBlock entity.
// If the WorkflowBlock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowBlockMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *WorkflowBlockMutation) ResetName() {
	m.name = nil
}

// SetPositionX sets the "position_x" field.
func (m *WorkflowBlockMutation) SetPositionX(f float64) {
	m.position_x = &f
	m.addposition_x = nil
}

// PositionX returns the value of the "position_x" field in the mutation.
func (m *WorkflowBlockMutation) PositionX() (r float64, exists bool) {
	v := m.position_x
	if v == nil {
		return
	}
	return *v, true
}

// OldPositionX returns the old "position_x" field's value of the WorkflowBlock entity.
// If the WorkflowBlock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowBlockMutation) OldPositionX(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPositionX is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPositionX requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPositionX: %w", err)
	}
	return oldValue.PositionX, nil
}

// AddPositionX adds f to the "position_x" field.
func (m *WorkflowBlockMutation) AddPositionX(f float64) {
	if m.addposition_x != nil {
		*m.addposition_x += f
	} else {
		m.addposition_x = &f
	}
}

// AddedPositionX returns the value that was added to the "position_x" field in this mutation.
func (m *WorkflowBlockMutation) AddedPositionX() (r float64, exists bool) {
	v := m.addposition_x
	if v == nil {
		return
	}
	return *v, true
}

// ResetPositionX resets all changes to the "position_x" field.
func (m *WorkflowBlockMutation) ResetPositionX() {
	m.position_x = nil
	m.addposition_x = nil
}

// SetPositionY sets the "position_y" field.
func (m *WorkflowBlockMutation) SetPositionY(f float64) {
	m.position_y = &f
	m.addposition_y = nil
}

// PositionY returns the value of the "position_y" field in the mutation.
func (m *WorkflowBlockMutation) PositionY() (r float64, exists bool) {
	v := m.position_y
	if v == nil {
		return
	}
	return *v, true
}

// OldPositionY returns the old "position_y" field's value of the WorkflowBlock entity.
// If the WorkflowBlock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowBlockMutation) OldPositionY(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPositionY is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPositionY requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPositionY: %w", err)
	}
	return oldValue.PositionY, nil
}

// AddPositionY adds f to the "position_y" field.
func (m *WorkflowBlockMutation) AddPositionY(f float64) {
	if m.addposition_y != nil {
		*m.addposition_y += f
	} else {
		m.addposition_y = &f
	}
}

// AddedPositionY returns the value that was added to the "position_y" field in this mutation.
func (m *WorkflowBlockMutation) AddedPositionY() (r float64, exists bool) {
	v := m.addposition_y
	if v == nil {
		return
	}
	return *v, true
}

// ResetPositionY resets all changes to the "position_y" field.
func (m *WorkflowBlockMutation) ResetPositionY() {
	m.position_y = nil
	m.addposition_y = nil
}

// SetEnabled sets the "enabled" field.
func (m *WorkflowBlockMutation) SetEnabled(b bool) {
	m.enabled = &b
}

// Enabled returns the value of the "enabled" field in the mutation.
func (m *WorkflowBlockMutation) Enabled() (r bool, exists bool) {
	v := m.enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabled returns the old "enabled" field's value of the WorkflowBlock entity.
// If the WorkflowBlock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowBlockMutation) OldEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnabled: %w", err)
	}
	return oldValue.Enabled, nil
}

// ResetEnabled resets all changes to the "enabled" field.
func (m *WorkflowBlockMutation) ResetEnabled() {
	m.enabled = nil
}

// SetParentID sets the "parent_id" field.
func (m *WorkflowBlockMutation) SetParentID(s string) {
	m.parent_id = &s
}

// ParentID returns the value of the "parent_id" field in the mutation.
func (m *WorkflowBlockMutation) ParentID() (r string, exists bool) {
	v := m.parent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldParentID returns the old "parent_id" field's value of the WorkflowBlock entity.
// If the WorkflowBlock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowBlockMutation) OldParentID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentID: %w", err)
	}
	return oldValue.ParentID, nil
}

// ClearParentID clears the value of the "parent_id" field.
func (m *WorkflowBlockMutation) ClearParentID() {
	m.parent_id = nil
	m.clearedFields[workflowblock.FieldParentID] = struct{}{}
}

// ParentIDCleared returns if the "parent_id" field was cleared in this mutation.
func (m *WorkflowBlockMutation) ParentIDCleared() bool {
	_, ok := m.clearedFields[workflowblock.FieldParentID]
	return ok
}

// ResetParentID resets all changes to the "parent_id" field.
func (m *WorkflowBlockMutation) ResetParentID() {
	m.parent_id = nil
	delete(m.clearedFields, workflowblock.FieldParentID)
}

// SetSubBlocks sets the "sub_blocks" field.
func (m *WorkflowBlockMutation) SetSubBlocks(value map[string]models.Subblock) {
	m.sub_blocks = &value
}

// SubBlocks returns the value of the "sub_blocks" field in the mutation.
func (m *WorkflowBlockMutation) SubBlocks() (r map[string]models.Subblock, exists bool) {
	v := m.sub_blocks
	if v == nil {
		return
	}
	return *v, true
}

// OldSubBlocks returns the old "sub_blocks" field's value of the WorkflowBlock entity.
// If the WorkflowBlock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowBlockMutation) OldSubBlocks(ctx context.Context) (v map[string]models.Subblock, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubBlocks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubBlocks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubBlocks: %w", err)
	}
	return oldValue.SubBlocks, nil
}

// ClearSubBlocks clears the value of the "sub_blocks" field.
func (m *WorkflowBlockMutation) ClearSubBlocks() {
	m.sub_blocks = nil
	m.clearedFields[workflowblock.FieldSubBlocks] = struct{}{}
}

// SubBlocksCleared returns if the "sub_blocks" field was cleared in this mutation.
func (m *WorkflowBlockMutation) SubBlocksCleared() bool {
	_, ok := m.clearedFields[workflowblock.FieldSubBlocks]
	return ok
}

// ResetSubBlocks resets all changes to the "sub_blocks" field.
func (m *WorkflowBlockMutation) ResetSubBlocks() {
	m.sub_blocks = nil
	delete(m.clearedFields, workflowblock.FieldSubBlocks)
}

// SetCreatedAt sets the "created_at" field.
func (m *WorkflowBlockMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WorkflowBlockMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the WorkflowBlock entity.
// If the WorkflowBlock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowBlockMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WorkflowBlockMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *WorkflowBlockMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *WorkflowBlockMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the WorkflowBlock entity.
// If the WorkflowBlock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowBlockMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *WorkflowBlockMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearWorkflow clears the "workflow" edge to the Workflow entity.
func (m *WorkflowBlockMutation) ClearWorkflow() {
	m.clearedworkflow = true
	m.clearedFields[workflowblock.FieldWorkflowID] = struct{}{}
}

// WorkflowCleared reports if the "workflow" edge to the Workflow entity was cleared.
func (m *WorkflowBlockMutation) WorkflowCleared() bool {
	return m.clearedworkflow
}

// WorkflowIDs returns the "workflow" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WorkflowID instead. It exists only for internal usage by the builders.
func (m *WorkflowBlockMutation) WorkflowIDs() (ids []string) {
	if id := m.workflow; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWorkflow resets all changes to the "workflow" edge.
func (m *WorkflowBlockMutation) ResetWorkflow() {
	m.workflow = nil
	m.clearedworkflow = false
}

// Where appends a list predicates to the WorkflowBlockMutation builder.
func (m *WorkflowBlockMutation) Where(ps ...predicate.WorkflowBlock) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WorkflowBlockMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WorkflowBlockMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WorkflowBlock, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WorkflowBlockMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WorkflowBlockMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WorkflowBlock).
func (m *WorkflowBlockMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WorkflowBlockMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.workflow != nil {
		fields = append(fields, workflowblock.FieldWorkflowID)
	}
	if m._type != nil {
		fields = append(fields, workflowblock.FieldType)
	}
	if m.name != nil {
		fields = append(fields, workflowblock.FieldName)
	}
	if m.position_x != nil {
		fields = append(fields, workflowblock.FieldPositionX)
	}
	if m.position_y != nil {
		fields = append(fields, workflowblock.FieldPositionY)
	}
	if m.enabled != nil {
		fields = append(fields, workflowblock.FieldEnabled)
	}
	if m.parent_id != nil {
		fields = append(fields, workflowblock.FieldParentID)
	}
	if m.sub_blocks != nil {
		fields = append(fields, workflowblock.FieldSubBlocks)
	}
	if m.created_at != nil {
		fields = append(fields, workflowblock.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, workflowblock.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WorkflowBlockMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case workflowblock.FieldWorkflowID:
		return m.WorkflowID()
	case workflowblock.FieldType:
		return m.GetType()
	case workflowblock.FieldName:
		return m.Name()
	case workflowblock.FieldPositionX:
		return m.PositionX()
	case workflowblock.FieldPositionY:
		return m.PositionY()
	case workflowblock.FieldEnabled:
		return m.Enabled()
	case workflowblock.FieldParentID:
		return m.ParentID()
	case workflowblock.FieldSubBlocks:
		return m.SubBlocks()
	case workflowblock.FieldCreatedAt:
		return m.CreatedAt()
	case workflowblock.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WorkflowBlockMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case workflowblock.FieldWorkflowID:
		return m.OldWorkflowID(ctx)
	case workflowblock.FieldType:
		return m.OldType(ctx)
	case workflowblock.FieldName:
		return m.OldName(ctx)
	case workflowblock.FieldPositionX:
		return m.OldPositionX(ctx)
	case workflowblock.FieldPositionY:
		return m.OldPositionY(ctx)
	case workflowblock.FieldEnabled:
		return m.OldEnabled(ctx)
	case workflowblock.FieldParentID:
		return m.OldParentID(ctx)
	case workflowblock.FieldSubBlocks:
		return m.OldSubBlocks(ctx)
	case workflowblock.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case workflowblock.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown WorkflowBlock field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkflowBlockMutation) SetField(name string, value ent.Value) error {
	switch name {
	case workflowblock.FieldWorkflowID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkflowID(v)
		return nil
	case workflowblock.FieldType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case workflowblock.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case workflowblock.FieldPositionX:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPositionX(v)
		return nil
	case workflowblock.FieldPositionY:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPositionY(v)
		return nil
	case workflowblock.FieldEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabled(v)
		return nil
	case workflowblock.FieldParentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentID(v)
		return nil
	case workflowblock.FieldSubBlocks:
		v, ok := value.(map[string]models.Subblock)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubBlocks(v)
		return nil
	case workflowblock.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case workflowblock.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown WorkflowBlock field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WorkflowBlockMutation) AddedFields() []string {
	var fields []string
	if m.addposition_x != nil {
		fields = append(fields, workflowblock.FieldPositionX)
	}
	if m.addposition_y != nil {
		fields = append(fields, workflowblock.FieldPositionY)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WorkflowBlockMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case workflowblock.FieldPositionX:
		return m.AddedPositionX()
	case workflowblock.FieldPositionY:
		return m.AddedPositionY()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkflowBlockMutation) AddField(name string, value ent.Value) error {
	switch name {
	case workflowblock.FieldPositionX:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPositionX(v)
		return nil
	case workflowblock.FieldPositionY:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPositionY(v)
		return nil
	}
	return fmt.Errorf("unknown WorkflowBlock numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WorkflowBlockMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(workflowblock.FieldParentID) {
		fields = append(fields, workflowblock.FieldParentID)
	}
	if m.FieldCleared(workflowblock.FieldSubBlocks) {
		fields = append(fields, workflowblock.FieldSubBlocks)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WorkflowBlockMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WorkflowBlockMutation) ClearField(name string) error {
	switch name {
	case workflowblock.FieldParentID:
		m.ClearParentID()
		return nil
	case workflowblock.FieldSubBlocks:
		m.ClearSubBlocks()
		return nil
	}
	return fmt.Errorf("unknown WorkflowBlock nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WorkflowBlockMutation) ResetField(name string) error {
	switch name {
	case workflowblock.FieldWorkflowID:
		m.ResetWorkflowID()
		return nil
	case workflowblock.FieldType:
		m.ResetType()
		return nil
	case workflowblock.FieldName:
		m.ResetName()
		return nil
	case workflowblock.FieldPositionX:
		m.ResetPositionX()
		return nil
	case workflowblock.FieldPositionY:
		m.ResetPositionY()
		return nil
	case workflowblock.FieldEnabled:
		m.ResetEnabled()
		return nil
	case workflowblock.FieldParentID:
		m.ResetParentID()
		return nil
	case workflowblock.FieldSubBlocks:
		m.ResetSubBlocks()
		return nil
	case workflowblock.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case workflowblock.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown WorkflowBlock field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WorkflowBlockMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.workflow != nil {
		edges = append(edges, workflowblock.EdgeWorkflow)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WorkflowBlockMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case workflowblock.EdgeWorkflow:
		if id := m.workflow; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WorkflowBlockMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WorkflowBlockMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WorkflowBlockMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedworkflow {
		edges = append(edges, workflowblock.EdgeWorkflow)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WorkflowBlockMutation) EdgeCleared(name string) bool {
	switch name {
	case workflowblock.EdgeWorkflow:
		return m.clearedworkflow
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WorkflowBlockMutation) ClearEdge(name string) error {
	switch name {
	case workflowblock.EdgeWorkflow:
		m.ClearWorkflow()
		return nil
	}
	return fmt.Errorf("unknown WorkflowBlock unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WorkflowBlockMutation) ResetEdge(name string) error {
	switch name {
	case workflowblock.EdgeWorkflow:
		m.ResetWorkflow()
		return nil
	}
	return fmt.Errorf("unknown WorkflowBlock edge %s", name)
}

// WorkflowEdgeMutation represents an operation that mutates the WorkflowEdge nodes in the graph.
type WorkflowEdgeMutation struct {
	config
	op              Op
	typ             string
	id              *string
	source_block_id *string
	target_block_id *string
	source_handle   *string
	target_handle   *string
	created_at      *time.Time
	clearedFields   map[string]struct{}
	workflow        *string
	clearedworkflow bool
	done            bool
	oldValue        func(context.Context) (*WorkflowEdge, error)
	predicates      []predicate.WorkflowEdge
}

var _ ent.Mutation = (*WorkflowEdgeMutation)(nil)

// workflowedgeOption allows management of the mutation configuration using functional options.
type workflowedgeOption func(*WorkflowEdgeMutation)

// newWorkflowEdgeMutation creates new mutation for the WorkflowEdge entity.
func newWorkflowEdgeMutation(c config, op Op, opts ...workflowedgeOption) *WorkflowEdgeMutation {
	m := &WorkflowEdgeMutation{
		config:        c,
		op:            op,
		typ:           TypeWorkflowEdge,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWorkflowEdgeID sets the ID field of the mutation.
func withWorkflowEdgeID(id string) workflowedgeOption {
	return func(m *WorkflowEdgeMutation) {
		var (
			err   error
			once  sync.Once
			value *WorkflowEdge
		)
		m.oldValue = func(ctx context.Context) (*WorkflowEdge, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WorkflowEdge.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWorkflowEdge sets the old WorkflowEdge of the mutation.
func withWorkflowEdge(node *WorkflowEdge) workflowedgeOption {
	return func(m *WorkflowEdgeMutation) {
		m.oldValue = func(context.Context) (*WorkflowEdge, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WorkflowEdgeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WorkflowEdgeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of WorkflowEdge entities.
func (m *WorkflowEdgeMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WorkflowEdgeMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WorkflowEdgeMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WorkflowEdge.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkflowID sets the "workflow_id" field.
func (m *WorkflowEdgeMutation) SetWorkflowID(s string) {
	m.workflow = &s
}

// WorkflowID returns the value of the "workflow_id" field in the mutation.
func (m *WorkflowEdgeMutation) WorkflowID() (r string, exists bool) {
	v := m.workflow
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkflowID returns the old "workflow_id" field's value of the WorkflowEdge entity.
// If the WorkflowEdge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowEdgeMutation) OldWorkflowID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkflowID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkflowID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkflowID: %w", err)
	}
	return oldValue.WorkflowID, nil
}

// ResetWorkflowID resets all changes to the "workflow_id" field.
func (m *WorkflowEdgeMutation) ResetWorkflowID() {
	m.workflow = nil
}

// SetSourceBlockID sets the "source_block_id" field.
func (m *WorkflowEdgeMutation) SetSourceBlockID(s string) {
	m.source_block_id = &s
}

// SourceBlockID returns the value of the "source_block_id" field in the mutation.
func (m *WorkflowEdgeMutation) SourceBlockID() (r string, exists bool) {
	v := m.source_block_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceBlockID returns the old "source_block_id" field's value of the WorkflowEdge entity.
// If the WorkflowEdge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowEdgeMutation) OldSourceBlockID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceBlockID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceBlockID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceBlockID: %w", err)
	}
	return oldValue.SourceBlockID, nil
}

// ResetSourceBlockID resets all changes to the "source_block_id" field.
func (m *WorkflowEdgeMutation) ResetSourceBlockID() {
	m.source_block_id = nil
}

// SetTargetBlockID sets the "target_block_id" field.
func (m *WorkflowEdgeMutation) SetTargetBlockID(s string) {
	m.target_block_id = &s
}

// TargetBlockID returns the value of the "target_block_id" field in the mutation.
func (m *WorkflowEdgeMutation) TargetBlockID() (r string, exists bool) {
	v := m.target_block_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetBlockID returns the old "target_block_id" field's value of the WorkflowEdge entity.
// If the WorkflowEdge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowEdgeMutation) OldTargetBlockID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetBlockID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetBlockID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetBlockID: %w", err)
	}
	return oldValue.TargetBlockID, nil
}

// ResetTargetBlockID resets all changes to the "target_block_id" field.
func (m *WorkflowEdgeMutation) ResetTargetBlockID() {
	m.target_block_id = nil
}

// SetSourceHandle sets the "source_handle" field.
func (m *WorkflowEdgeMutation) SetSourceHandle(s string) {
	m.source_handle = &s
}

// SourceHandle returns the value of the "source_handle" field in the mutation.
func (m *WorkflowEdgeMutation) SourceHandle() (r string, exists bool) {
	v := m.source_handle
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceHandle returns the old "source_handle" field's value of the WorkflowEdge entity.
// If the WorkflowEdge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowEdgeMutation) OldSourceHandle(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceHandle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceHandle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceHandle: %w", err)
	}
	return oldValue.SourceHandle, nil
}

// ClearSourceHandle clears the value of the "source_handle" field.
func (m *WorkflowEdgeMutation) ClearSourceHandle() {
	m.source_handle = nil
	m.clearedFields[workflowedge.FieldSourceHandle] = struct{}{}
}

// SourceHandleCleared returns if the "source_handle" field was cleared in this mutation.
func (m *WorkflowEdgeMutation) SourceHandleCleared() bool {
	_, ok := m.clearedFields[workflowedge.FieldSourceHandle]
	return ok
}

// ResetSourceHandle resets all changes to the "source_handle" field.
func (m *WorkflowEdgeMutation) ResetSourceHandle() {
	m.source_handle = nil
	delete(m.clearedFields, workflowedge.FieldSourceHandle)
}

// SetTargetHandle sets the "target_handle" field.
func (m *WorkflowEdgeMutation) SetTargetHandle(s string) {
	m.target_handle = &s
}

// TargetHandle returns the value of the "target_handle" field in the mutation.
func (m *WorkflowEdgeMutation) TargetHandle() (r string, exists bool) {
	v := m.target_handle
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetHandle returns the old "target_handle" field's value of the WorkflowEdge entity.
// If the WorkflowEdge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowEdgeMutation) OldTargetHandle(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetHandle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetHandle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetHandle: %w", err)
	}
	return oldValue.TargetHandle, nil
}

// ClearTargetHandle clears the value of the "target_handle" field.
func (m *WorkflowEdgeMutation) ClearTargetHandle() {
	m.target_handle = nil
	m.clearedFields[workflowedge.FieldTargetHandle] = struct{}{}
}

// TargetHandleCleared returns if the "target_handle" field was cleared in this mutation.
func (m *WorkflowEdgeMutation) TargetHandleCleared() bool {
	_, ok := m.clearedFields[workflowedge.FieldTargetHandle]
	return ok
}

// ResetTargetHandle resets all changes to the "target_handle" field.
func (m *WorkflowEdgeMutation) ResetTargetHandle() {
	m.target_handle = nil
	delete(m.clearedFields, workflowedge.FieldTargetHandle)
}

// SetCreatedAt sets the "created_at" field.
func (m *WorkflowEdgeMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WorkflowEdgeMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the WorkflowEdge entity.
// If the WorkflowEdge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowEdgeMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WorkflowEdgeMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearWorkflow clears the "workflow" edge to the Workflow entity.
func (m *WorkflowEdgeMutation) ClearWorkflow() {
	m.clearedworkflow = true
	m.clearedFields[workflowedge.FieldWorkflowID] = struct{}{}
}

// WorkflowCleared reports if the "workflow" edge to the Workflow entity was cleared.
func (m *WorkflowEdgeMutation) WorkflowCleared() bool {
	return m.clearedworkflow
}

// WorkflowIDs returns the "workflow" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WorkflowID instead. It exists only for internal usage by the builders.
func (m *WorkflowEdgeMutation) WorkflowIDs() (ids []string) {
	if id := m.workflow; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWorkflow resets all changes to the "workflow" edge.
func (m *WorkflowEdgeMutation) ResetWorkflow() {
	m.workflow = nil
	m.clearedworkflow = false
}

// Where appends a list predicates to the WorkflowEdgeMutation builder.
func (m *WorkflowEdgeMutation) Where(ps ...predicate.WorkflowEdge) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WorkflowEdgeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WorkflowEdgeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WorkflowEdge, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WorkflowEdgeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WorkflowEdgeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WorkflowEdge).
func (m *WorkflowEdgeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WorkflowEdgeMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.workflow != nil {
		fields = append(fields, workflowedge.FieldWorkflowID)
	}
	if m.source_block_id != nil {
		fields = append(fields, workflowedge.FieldSourceBlockID)
	}
	if m.target_block_id != nil {
		fields = append(fields, workflowedge.FieldTargetBlockID)
	}
	if m.source_handle != nil {
		fields = append(fields, workflowedge.FieldSourceHandle)
	}
	if m.target_handle != nil {
		fields = append(fields, workflowedge.FieldTargetHandle)
	}
	if m.created_at != nil {
		fields = append(fields, workflowedge.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WorkflowEdgeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case workflowedge.FieldWorkflowID:
		return m.WorkflowID()
	case workflowedge.FieldSourceBlockID:
		return m.SourceBlockID()
	case workflowedge.FieldTargetBlockID:
		return m.TargetBlockID()
	case workflowedge.FieldSourceHandle:
		return m.SourceHandle()
	case workflowedge.FieldTargetHandle:
		return m.TargetHandle()
	case workflowedge.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WorkflowEdgeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case workflowedge.FieldWorkflowID:
		return m.OldWorkflowID(ctx)
	case workflowedge.FieldSourceBlockID:
		return m.OldSourceBlockID(ctx)
	case workflowedge.FieldTargetBlockID:
		return m.OldTargetBlockID(ctx)
	case workflowedge.FieldSourceHandle:
		return m.OldSourceHandle(ctx)
	case workflowedge.FieldTargetHandle:
		return m.OldTargetHandle(ctx)
	case workflowedge.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown WorkflowEdge field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkflowEdgeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case workflowedge.FieldWorkflowID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkflowID(v)
		return nil
	case workflowedge.FieldSourceBlockID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceBlockID(v)
		return nil
	case workflowedge.FieldTargetBlockID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetBlockID(v)
		return nil
	case workflowedge.FieldSourceHandle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceHandle(v)
		return nil
	case workflowedge.FieldTargetHandle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetHandle(v)
		return nil
	case workflowedge.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown WorkflowEdge field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WorkflowEdgeMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WorkflowEdgeMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkflowEdgeMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown WorkflowEdge numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WorkflowEdgeMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(workflowedge.FieldSourceHandle) {
		fields = append(fields, workflowedge.FieldSourceHandle)
	}
	if m.FieldCleared(workflowedge.FieldTargetHandle) {
		fields = append(fields, workflowedge.FieldTargetHandle)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WorkflowEdgeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WorkflowEdgeMutation) ClearField(name string) error {
	switch name {
	case workflowedge.FieldSourceHandle:
		m.ClearSourceHandle()
		return nil
	case workflowedge.FieldTargetHandle:
		m.ClearTargetHandle()
		return nil
	}
	return fmt.Errorf("unknown WorkflowEdge nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WorkflowEdgeMutation) ResetField(name string) error {
	switch name {
	case workflowedge.FieldWorkflowID:
		m.ResetWorkflowID()
		return nil
	case workflowedge.FieldSourceBlockID:
		m.ResetSourceBlockID()
		return nil
	case workflowedge.FieldTargetBlockID:
		m.ResetTargetBlockID()
		return nil
	case workflowedge.FieldSourceHandle:
		m.ResetSourceHandle()
		return nil
	case workflowedge.FieldTargetHandle:
		m.ResetTargetHandle()
		return nil
	case workflowedge.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown WorkflowEdge field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WorkflowEdgeMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.workflow != nil {
		edges = append(edges, workflowedge.EdgeWorkflow)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WorkflowEdgeMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case workflowedge.EdgeWorkflow:
		if id := m.workflow; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WorkflowEdgeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WorkflowEdgeMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WorkflowEdgeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedworkflow {
		edges = append(edges, workflowedge.EdgeWorkflow)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WorkflowEdgeMutation) EdgeCleared(name string) bool {
	switch name {
	case workflowedge.EdgeWorkflow:
		return m.clearedworkflow
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WorkflowEdgeMutation) ClearEdge(name string) error {
	switch name {
	case workflowedge.EdgeWorkflow:
		m.ClearWorkflow()
		return nil
	}
	return fmt.Errorf("unknown WorkflowEdge unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WorkflowEdgeMutation) ResetEdge(name string) error {
	switch name {
	case workflowedge.EdgeWorkflow:
		m.ResetWorkflow()
		return nil
	}
	return fmt.Errorf("unknown WorkflowEdge edge %s", name)
}

// WorkflowOperationMutation represents an operation that mutates the WorkflowOperation nodes in the graph.
type WorkflowOperationMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	operation           *string
	target              *string
	payload             *map[string]interface{}
	user_id             *string
	client_timestamp    *int64
	addclient_timestamp *int64
	created_at          *time.Time
	clearedFields       map[string]struct{}
	workflow            *string
	clearedworkflow     bool
	done                bool
	oldValue            func(context.Context) (*WorkflowOperation, error)
	predicates          []predicate.WorkflowOperation
}

var _ ent.Mutation = (*WorkflowOperationMutation)(nil)

// workflowoperationOption allows management of the mutation configuration using functional options.
type workflowoperationOption func(*WorkflowOperationMutation)

// newWorkflowOperationMutation creates new mutation for the WorkflowOperation entity.
func newWorkflowOperationMutation(c config, op Op, opts ...workflowoperationOption) *WorkflowOperationMutation {
	m := &WorkflowOperationMutation{
		config:        c,
		op:            op,
		typ:           TypeWorkflowOperation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWorkflowOperationID sets the ID field of the mutation.
func withWorkflowOperationID(id string) workflowoperationOption {
	return func(m *WorkflowOperationMutation) {
		var (
			err   error
			once  sync.Once
			value *WorkflowOperation
		)
		m.oldValue = func(ctx context.Context) (*WorkflowOperation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WorkflowOperation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWorkflowOperation sets the old WorkflowOperation of the mutation.
func withWorkflowOperation(node *WorkflowOperation) workflowoperationOption {
	return func(m *WorkflowOperationMutation) {
		m.oldValue = func(context.Context) (*WorkflowOperation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WorkflowOperationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WorkflowOperationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of WorkflowOperation entities.
func (m *WorkflowOperationMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WorkflowOperationMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WorkflowOperationMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WorkflowOperation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkflowID sets the "workflow_id" field.
func (m *WorkflowOperationMutation) SetWorkflowID(s string) {
	m.workflow = &s
}

// WorkflowID returns the value of the "workflow_id" field in the mutation.
func (m *WorkflowOperationMutation) WorkflowID() (r string, exists bool) {
	v := m.workflow
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkflowID returns the old "workflow_id" field's value of the WorkflowOperation entity.
// If the WorkflowOperation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowOperationMutation) OldWorkflowID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkflowID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkflowID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkflowID: %w", err)
	}
	return oldValue.WorkflowID, nil
}

// ResetWorkflowID resets all changes to the "workflow_id" field.
func (m *WorkflowOperationMutation) ResetWorkflowID() {
	m.workflow = nil
}

// SetOperation sets the "operation" field.
func (m *WorkflowOperationMutation) SetOperation(s string) {
	m.operation = &s
}

// Operation returns the value of the "operation" field in the mutation.
func (m *WorkflowOperationMutation) Operation() (r string, exists bool) {
	v := m.operation
	if v == nil {
		return
	}
	return *v, true
}

// OldOperation returns the old "operation" field's value of the WorkflowOperation entity.
// If the WorkflowOperation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowOperationMutation) OldOperation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOperation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOperation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOperation: %w", err)
	}
	return oldValue.Operation, nil
}

// ResetOperation resets all changes to the "operation" field.
func (m *WorkflowOperationMutation) ResetOperation() {
	m.operation = nil
}

// SetTarget sets the "target" field.
func (m *WorkflowOperationMutation) SetTarget(s string) {
	m.target = &s
}

// Target returns the value of the "target" field in the mutation.
func (m *WorkflowOperationMutation) Target() (r string, exists bool) {
	v := m.target
	if v == nil {
		return
	}
	return *v, true
}

// OldTarget returns the old "target" field's value of the WorkflowOperation entity.
// If the WorkflowOperation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowOperationMutation) OldTarget(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTarget is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTarget requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTarget: %w", err)
	}
	return oldValue.Target, nil
}

// ResetTarget resets all changes to the "target" field.
func (m *WorkflowOperationMutation) ResetTarget() {
	m.target = nil
}

// SetPayload sets the "payload" field.
func (m *WorkflowOperationMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *WorkflowOperationMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the WorkflowOperation entity.
// If the WorkflowOperation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowOperationMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ClearPayload clears the value of the "payload" field.
func (m *WorkflowOperationMutation) ClearPayload() {
	m.payload = nil
	m.clearedFields[workflowoperation.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *WorkflowOperationMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[workflowoperation.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *WorkflowOperationMutation) ResetPayload() {
	m.payload = nil
	delete(m.clearedFields, workflowoperation.FieldPayload)
}

// SetUserID sets the "user_id" field.
func (m *WorkflowOperationMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *WorkflowOperationMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the WorkflowOperation entity.
// If the WorkflowOperation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowOperationMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *WorkflowOperationMutation) ResetUserID() {
	m.user_id = nil
}

// SetClientTimestamp sets the "client_timestamp" field.
func (m *WorkflowOperationMutation) SetClientTimestamp(i int64) {
	m.client_timestamp = &i
	m.addclient_timestamp = nil
}

// ClientTimestamp returns the value of the "client_timestamp" field in the mutation.
func (m *WorkflowOperationMutation) ClientTimestamp() (r int64, exists bool) {
	v := m.client_timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldClientTimestamp returns the old "client_timestamp" field's value of the WorkflowOperation entity.
// If the WorkflowOperation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowOperationMutation) OldClientTimestamp(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClientTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClientTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClientTimestamp: %w", err)
	}
	return oldValue.ClientTimestamp, nil
}

// AddClientTimestamp adds i to the "client_timestamp" field.
func (m *WorkflowOperationMutation) AddClientTimestamp(i int64) {
	if m.addclient_timestamp != nil {
		*m.addclient_timestamp += i
	} else {
		m.addclient_timestamp = &i
	}
}

// AddedClientTimestamp returns the value that was added to the "client_timestamp" field in this mutation.
func (m *WorkflowOperationMutation) AddedClientTimestamp() (r int64, exists bool) {
	v := m.addclient_timestamp
	if v == nil {
		return
	}
	return *v, true
}

// ResetClientTimestamp resets all changes to the "client_timestamp" field.
func (m *WorkflowOperationMutation) ResetClientTimestamp() {
	m.client_timestamp = nil
	m.addclient_timestamp = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *WorkflowOperationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WorkflowOperationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the WorkflowOperation entity.
// If the WorkflowOperation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowOperationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WorkflowOperationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearWorkflow clears the "workflow" edge to the Workflow entity.
func (m *WorkflowOperationMutation) ClearWorkflow() {
	m.clearedworkflow = true
	m.clearedFields[workflowoperation.FieldWorkflowID] = struct{}{}
}

// WorkflowCleared reports if the "workflow" edge to the Workflow entity was cleared.
func (m *WorkflowOperationMutation) WorkflowCleared() bool {
	return m.clearedworkflow
}

// WorkflowIDs returns the "workflow" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WorkflowID instead. It exists only for internal usage by the builders.
func (m *WorkflowOperationMutation) WorkflowIDs() (ids []string) {
	if id := m.workflow; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWorkflow resets all changes to the "workflow" edge.
func (m *WorkflowOperationMutation) ResetWorkflow() {
	m.workflow = nil
	m.clearedworkflow = false
}

// Where appends a list predicates to the WorkflowOperationMutation builder.
func (m *WorkflowOperationMutation) Where(ps ...predicate.WorkflowOperation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WorkflowOperationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WorkflowOperationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WorkflowOperation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WorkflowOperationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WorkflowOperationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WorkflowOperation).
func (m *WorkflowOperationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WorkflowOperationMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.workflow != nil {
		fields = append(fields, workflowoperation.FieldWorkflowID)
	}
	if m.operation != nil {
		fields = append(fields, workflowoperation.FieldOperation)
	}
	if m.target != nil {
		fields = append(fields, workflowoperation.FieldTarget)
	}
	if m.payload != nil {
		fields = append(fields, workflowoperation.FieldPayload)
	}
	if m.user_id != nil {
		fields = append(fields, workflowoperation.FieldUserID)
	}
	if m.client_timestamp != nil {
		fields = append(fields, workflowoperation.FieldClientTimestamp)
	}
	if m.created_at != nil {
		fields = append(fields, workflowoperation.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WorkflowOperationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case workflowoperation.FieldWorkflowID:
		return m.WorkflowID()
	case workflowoperation.FieldOperation:
		return m.Operation()
	case workflowoperation.FieldTarget:
		return m.Target()
	case workflowoperation.FieldPayload:
		return m.Payload()
	case workflowoperation.FieldUserID:
		return m.UserID()
	case workflowoperation.FieldClientTimestamp:
		return m.ClientTimestamp()
	case workflowoperation.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WorkflowOperationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case workflowoperation.FieldWorkflowID:
		return m.OldWorkflowID(ctx)
	case workflowoperation.FieldOperation:
		return m.OldOperation(ctx)
	case workflowoperation.FieldTarget:
		return m.OldTarget(ctx)
	case workflowoperation.FieldPayload:
		return m.OldPayload(ctx)
	case workflowoperation.FieldUserID:
		return m.OldUserID(ctx)
	case workflowoperation.FieldClientTimestamp:
		return m.OldClientTimestamp(ctx)
	case workflowoperation.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown WorkflowOperation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkflowOperationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case workflowoperation.FieldWorkflowID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkflowID(v)
		return nil
	case workflowoperation.FieldOperation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOperation(v)
		return nil
	case workflowoperation.FieldTarget:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTarget(v)
		return nil
	case workflowoperation.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case workflowoperation.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case workflowoperation.FieldClientTimestamp:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClientTimestamp(v)
		return nil
	case workflowoperation.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown WorkflowOperation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WorkflowOperationMutation) AddedFields() []string {
	var fields []string
	if m.addclient_timestamp != nil {
		fields = append(fields, workflowoperation.FieldClientTimestamp)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WorkflowOperationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case workflowoperation.FieldClientTimestamp:
		return m.AddedClientTimestamp()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkflowOperationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case workflowoperation.FieldClientTimestamp:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddClientTimestamp(v)
		return nil
	}
	return fmt.Errorf("unknown WorkflowOperation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WorkflowOperationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(workflowoperation.FieldPayload) {
		fields = append(fields, workflowoperation.FieldPayload)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WorkflowOperationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WorkflowOperationMutation) ClearField(name string) error {
	switch name {
	case workflowoperation.FieldPayload:
		m.ClearPayload()
		return nil
	}
	return fmt.Errorf("unknown WorkflowOperation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WorkflowOperationMutation) ResetField(name string) error {
	switch name {
	case workflowoperation.FieldWorkflowID:
		m.ResetWorkflowID()
		return nil
	case workflowoperation.FieldOperation:
		m.ResetOperation()
		return nil
	case workflowoperation.FieldTarget:
		m.ResetTarget()
		return nil
	case workflowoperation.FieldPayload:
		m.ResetPayload()
		return nil
	case workflowoperation.FieldUserID:
		m.ResetUserID()
		return nil
	case workflowoperation.FieldClientTimestamp:
		m.ResetClientTimestamp()
		return nil
	case workflowoperation.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown WorkflowOperation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WorkflowOperationMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.workflow != nil {
		edges = append(edges, workflowoperation.EdgeWorkflow)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WorkflowOperationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case workflowoperation.EdgeWorkflow:
		if id := m.workflow; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WorkflowOperationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WorkflowOperationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WorkflowOperationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedworkflow {
		edges = append(edges, workflowoperation.EdgeWorkflow)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WorkflowOperationMutation) EdgeCleared(name string) bool {
	switch name {
	case workflowoperation.EdgeWorkflow:
		return m.clearedworkflow
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WorkflowOperationMutation) ClearEdge(name string) error {
	switch name {
	case workflowoperation.EdgeWorkflow:
		m.ClearWorkflow()
		return nil
	}
	return fmt.Errorf("unknown WorkflowOperation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WorkflowOperationMutation) ResetEdge(name string) error {
	switch name {
	case workflowoperation.EdgeWorkflow:
		m.ResetWorkflow()
		return nil
	}
	return fmt.Errorf("unknown WorkflowOperation edge %s", name)
}
