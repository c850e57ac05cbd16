// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/weft-labs/weft/ent/userratelimit"
)

// UserRateLimitCreate is the builder for creating a UserRateLimit entity.
type UserRateLimitCreate struct {
	config
	mutation *UserRateLimitMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSyncAPIRequests sets the "sync_api_requests" field.
func (_c *UserRateLimitCreate) SetSyncAPIRequests(v int) *UserRateLimitCreate {
	_c.mutation.SetSyncAPIRequests(v)
	return _c
}

// SetNillableSyncAPIRequests sets the "sync_api_requests" field if the given value is not nil.
func (_c *UserRateLimitCreate) SetNillableSyncAPIRequests(v *int) *UserRateLimitCreate {
	if v != nil {
		_c.SetSyncAPIRequests(*v)
	}
	return _c
}

// SetAsyncAPIRequests sets the "async_api_requests" field.
func (_c *UserRateLimitCreate) SetAsyncAPIRequests(v int) *UserRateLimitCreate {
	_c.mutation.SetAsyncAPIRequests(v)
	return _c
}

// SetNillableAsyncAPIRequests sets the "async_api_requests" field if the given value is not nil.
func (_c *UserRateLimitCreate) SetNillableAsyncAPIRequests(v *int) *UserRateLimitCreate {
	if v != nil {
		_c.SetAsyncAPIRequests(*v)
	}
	return _c
}

// SetAPIEndpointRequests sets the "api_endpoint_requests" field.
func (_c *UserRateLimitCreate) SetAPIEndpointRequests(v int) *UserRateLimitCreate {
	_c.mutation.SetAPIEndpointRequests(v)
	return _c
}

// SetNillableAPIEndpointRequests sets the "api_endpoint_requests" field if the given value is not nil.
func (_c *UserRateLimitCreate) SetNillableAPIEndpointRequests(v *int) *UserRateLimitCreate {
	if v != nil {
		_c.SetAPIEndpointRequests(*v)
	}
	return _c
}

// SetWindowStart sets the "window_start" field.
func (_c *UserRateLimitCreate) SetWindowStart(v time.Time) *UserRateLimitCreate {
	_c.mutation.SetWindowStart(v)
	return _c
}

// SetNillableWindowStart sets the "window_start" field if the given value is not nil.
func (_c *UserRateLimitCreate) SetNillableWindowStart(v *time.Time) *UserRateLimitCreate {
	if v != nil {
		_c.SetWindowStart(*v)
	}
	return _c
}

// SetLastRequestAt sets the "last_request_at" field.
func (_c *UserRateLimitCreate) SetLastRequestAt(v time.Time) *UserRateLimitCreate {
	_c.mutation.SetLastRequestAt(v)
	return _c
}

// SetNillableLastRequestAt sets the "last_request_at" field if the given value is not nil.
func (_c *UserRateLimitCreate) SetNillableLastRequestAt(v *time.Time) *UserRateLimitCreate {
	if v != nil {
		_c.SetLastRequestAt(*v)
	}
	return _c
}

// SetIsRateLimited sets the "is_rate_limited" field.
func (_c *UserRateLimitCreate) SetIsRateLimited(v bool) *UserRateLimitCreate {
	_c.mutation.SetIsRateLimited(v)
	return _c
}

// SetNillableIsRateLimited sets the "is_rate_limited" field if the given value is not nil.
func (_c *UserRateLimitCreate) SetNillableIsRateLimited(v *bool) *UserRateLimitCreate {
	if v != nil {
		_c.SetIsRateLimited(*v)
	}
	return _c
}

// SetRateLimitResetAt sets the "rate_limit_reset_at" field.
func (_c *UserRateLimitCreate) SetRateLimitResetAt(v time.Time) *UserRateLimitCreate {
	_c.mutation.SetRateLimitResetAt(v)
	return _c
}

// SetNillableRateLimitResetAt sets the "rate_limit_reset_at" field if the given value is not nil.
func (_c *UserRateLimitCreate) SetNillableRateLimitResetAt(v *time.Time) *UserRateLimitCreate {
	if v != nil {
		_c.SetRateLimitResetAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *UserRateLimitCreate) SetID(v string) *UserRateLimitCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the UserRateLimitMutation object of the builder.
func (_c *UserRateLimitCreate) Mutation() *UserRateLimitMutation {
	return _c.mutation
}

// Save creates the UserRateLimit in the database.
func (_c *UserRateLimitCreate) Save(ctx context.Context) (*UserRateLimit, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UserRateLimitCreate) SaveX(ctx context.Context) *UserRateLimit {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserRateLimitCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserRateLimitCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UserRateLimitCreate) defaults() {
	if _, ok := _c.mutation.SyncAPIRequests(); !ok {
		v := userratelimit.DefaultSyncAPIRequests
		_c.mutation.SetSyncAPIRequests(v)
	}
	if _, ok := _c.mutation.AsyncAPIRequests(); !ok {
		v := userratelimit.DefaultAsyncAPIRequests
		_c.mutation.SetAsyncAPIRequests(v)
	}
	if _, ok := _c.mutation.APIEndpointRequests(); !ok {
		v := userratelimit.DefaultAPIEndpointRequests
		_c.mutation.SetAPIEndpointRequests(v)
	}
	if _, ok := _c.mutation.WindowStart(); !ok {
		v := userratelimit.DefaultWindowStart()
		_c.mutation.SetWindowStart(v)
	}
	if _, ok := _c.mutation.LastRequestAt(); !ok {
		v := userratelimit.DefaultLastRequestAt()
		_c.mutation.SetLastRequestAt(v)
	}
	if _, ok := _c.mutation.IsRateLimited(); !ok {
		v := userratelimit.DefaultIsRateLimited
		_c.mutation.SetIsRateLimited(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UserRateLimitCreate) check() error {
	if _, ok := _c.mutation.SyncAPIRequests(); !ok {
		return &ValidationError{Name: "sync_api_requests", err: errors.New(`ent: missing required field "UserRateLimit.sync_api_requests"`)}
	}
	if _, ok := _c.mutation.AsyncAPIRequests(); !ok {
		return &ValidationError{Name: "async_api_requests", err: errors.New(`ent: missing required field "UserRateLimit.async_api_requests"`)}
	}
	if _, ok := _c.mutation.APIEndpointRequests(); !ok {
		return &ValidationError{Name: "api_endpoint_requests", err: errors.New(`ent: missing required field "UserRateLimit.api_endpoint_requests"`)}
	}
	if _, ok := _c.mutation.WindowStart(); !ok {
		return &ValidationError{Name: "window_start", err: errors.New(`ent: missing required field "UserRateLimit.window_start"`)}
	}
	if _, ok := _c.mutation.LastRequestAt(); !ok {
		return &ValidationError{Name: "last_request_at", err: errors.New(`ent: missing required field "UserRateLimit.last_request_at"`)}
	}
	if _, ok := _c.mutation.IsRateLimited(); !ok {
		return &ValidationError{Name: "is_rate_limited", err: errors.New(`ent: missing required field "UserRateLimit.is_rate_limited"`)}
	}
	return nil
}

func (_c *UserRateLimitCreate) sqlSave(ctx context.Context) (*UserRateLimit, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected UserRateLimit.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *UserRateLimitCreate) createSpec() (*UserRateLimit, *sqlgraph.CreateSpec) {
	var (
		_node = &UserRateLimit{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(userratelimit.Table, sqlgraph.NewFieldSpec(userratelimit.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SyncAPIRequests(); ok {
		_spec.SetField(userratelimit.FieldSyncAPIRequests, field.TypeInt, value)
		_node.SyncAPIRequests = value
	}
	if value, ok := _c.mutation.AsyncAPIRequests(); ok {
		_spec.SetField(userratelimit.FieldAsyncAPIRequests, field.TypeInt, value)
		_node.AsyncAPIRequests = value
	}
	if value, ok := _c.mutation.APIEndpointRequests(); ok {
		_spec.SetField(userratelimit.FieldAPIEndpointRequests, field.TypeInt, value)
		_node.APIEndpointRequests = value
	}
	if value, ok := _c.mutation.WindowStart(); ok {
		_spec.SetField(userratelimit.FieldWindowStart, field.TypeTime, value)
		_node.WindowStart = value
	}
	if value, ok := _c.mutation.LastRequestAt(); ok {
		_spec.SetField(userratelimit.FieldLastRequestAt, field.TypeTime, value)
		_node.LastRequestAt = value
	}
	if value, ok := _c.mutation.IsRateLimited(); ok {
		_spec.SetField(userratelimit.FieldIsRateLimited, field.TypeBool, value)
		_node.IsRateLimited = value
	}
	if value, ok := _c.mutation.RateLimitResetAt(); ok {
		_spec.SetField(userratelimit.FieldRateLimitResetAt, field.TypeTime, value)
		_node.RateLimitResetAt = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.UserRateLimit.Create().
//		SetSyncAPIRequests(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.UserRateLimitUpsert) {
//			SetSyncAPIRequests(v+v).
//		}).
//		Exec(ctx)
func (_c *UserRateLimitCreate) OnConflict(opts ...sql.ConflictOption) *UserRateLimitUpsertOne {
	_c.conflict = opts
	return &UserRateLimitUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.UserRateLimit.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *UserRateLimitCreate) OnConflictColumns(columns ...string) *UserRateLimitUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &UserRateLimitUpsertOne{
		create: _c,
	}
}

type (
	// UserRateLimitUpsertOne is the builder for "upsert"-ing
	//  one UserRateLimit node.
	UserRateLimitUpsertOne struct {
		create *UserRateLimitCreate
	}

	// UserRateLimitUpsert is the "OnConflict" setter.
	UserRateLimitUpsert struct {
		*sql.UpdateSet
	}
)

// SetSyncAPIRequests sets the "sync_api_requests" field.
func (u *UserRateLimitUpsert) SetSyncAPIRequests(v int) *UserRateLimitUpsert {
	u.Set(userratelimit.FieldSyncAPIRequests, v)
	return u
}

// UpdateSyncAPIRequests sets the "sync_api_requests" field to the value that was provided on create.
func (u *UserRateLimitUpsert) UpdateSyncAPIRequests() *UserRateLimitUpsert {
	u.SetExcluded(userratelimit.FieldSyncAPIRequests)
	return u
}

// AddSyncAPIRequests adds v to the "sync_api_requests" field.
func (u *UserRateLimitUpsert) AddSyncAPIRequests(v int) *UserRateLimitUpsert {
	u.Add(userratelimit.FieldSyncAPIRequests, v)
	return u
}

// SetAsyncAPIRequests sets the "async_api_requests" field.
func (u *UserRateLimitUpsert) SetAsyncAPIRequests(v int) *UserRateLimitUpsert {
	u.Set(userratelimit.FieldAsyncAPIRequests, v)
	return u
}

// UpdateAsyncAPIRequests sets the "async_api_requests" field to the value that was provided on create.
func (u *UserRateLimitUpsert) UpdateAsyncAPIRequests() *UserRateLimitUpsert {
	u.SetExcluded(userratelimit.FieldAsyncAPIRequests)
	return u
}

// AddAsyncAPIRequests adds v to the "async_api_requests" field.
func (u *UserRateLimitUpsert) AddAsyncAPIRequests(v int) *UserRateLimitUpsert {
	u.Add(userratelimit.FieldAsyncAPIRequests, v)
	return u
}

// SetAPIEndpointRequests sets the "api_endpoint_requests" field.
func (u *UserRateLimitUpsert) SetAPIEndpointRequests(v int) *UserRateLimitUpsert {
	u.Set(userratelimit.FieldAPIEndpointRequests, v)
	return u
}

// UpdateAPIEndpointRequests sets the "api_endpoint_requests" field to the value that was provided on create.
func (u *UserRateLimitUpsert) UpdateAPIEndpointRequests() *UserRateLimitUpsert {
	u.SetExcluded(userratelimit.FieldAPIEndpointRequests)
	return u
}

// AddAPIEndpointRequests adds v to the "api_endpoint_requests" field.
func (u *UserRateLimitUpsert) AddAPIEndpointRequests(v int) *UserRateLimitUpsert {
	u.Add(userratelimit.FieldAPIEndpointRequests, v)
	return u
}

// SetWindowStart sets the "window_start" field.
func (u *UserRateLimitUpsert) SetWindowStart(v time.Time) *UserRateLimitUpsert {
	u.Set(userratelimit.FieldWindowStart, v)
	return u
}

// UpdateWindowStart sets the "window_start" field to the value that was provided on create.
func (u *UserRateLimitUpsert) UpdateWindowStart() *UserRateLimitUpsert {
	u.SetExcluded(userratelimit.FieldWindowStart)
	return u
}

// SetLastRequestAt sets the "last_request_at" field.
func (u *UserRateLimitUpsert) SetLastRequestAt(v time.Time) *UserRateLimitUpsert {
	u.Set(userratelimit.FieldLastRequestAt, v)
	return u
}

// UpdateLastRequestAt sets the "last_request_at" field to the value that was provided on create.
func (u *UserRateLimitUpsert) UpdateLastRequestAt() *UserRateLimitUpsert {
	u.SetExcluded(userratelimit.FieldLastRequestAt)
	return u
}

// SetIsRateLimited sets the "is_rate_limited" field.
func (u *UserRateLimitUpsert) SetIsRateLimited(v bool) *UserRateLimitUpsert {
	u.Set(userratelimit.FieldIsRateLimited, v)
	return u
}

// UpdateIsRateLimited sets the "is_rate_limited" field to the value that was provided on create.
func (u *UserRateLimitUpsert) UpdateIsRateLimited() *UserRateLimitUpsert {
	u.SetExcluded(userratelimit.FieldIsRateLimited)
	return u
}

// SetRateLimitResetAt sets the "rate_limit_reset_at" field.
func (u *UserRateLimitUpsert) SetRateLimitResetAt(v time.Time) *UserRateLimitUpsert {
	u.Set(userratelimit.FieldRateLimitResetAt, v)
	return u
}

// UpdateRateLimitResetAt sets the "rate_limit_reset_at" field to the value that was provided on create.
func (u *UserRateLimitUpsert) UpdateRateLimitResetAt() *UserRateLimitUpsert {
	u.SetExcluded(userratelimit.FieldRateLimitResetAt)
	return u
}

// ClearRateLimitResetAt clears the value of the "rate_limit_reset_at" field.
func (u *UserRateLimitUpsert) ClearRateLimitResetAt() *UserRateLimitUpsert {
	u.SetNull(userratelimit.FieldRateLimitResetAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.UserRateLimit.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(userratelimit.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *UserRateLimitUpsertOne) UpdateNewValues() *UserRateLimitUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(userratelimit.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.UserRateLimit.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *UserRateLimitUpsertOne) Ignore() *UserRateLimitUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *UserRateLimitUpsertOne) DoNothing() *UserRateLimitUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the UserRateLimitCreate.OnConflict
// documentation for more info.
func (u *UserRateLimitUpsertOne) Update(set func(*UserRateLimitUpsert)) *UserRateLimitUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&UserRateLimitUpsert{UpdateSet: update})
	}))
	return u
}

// SetSyncAPIRequests sets the "sync_api_requests" field.
func (u *UserRateLimitUpsertOne) SetSyncAPIRequests(v int) *UserRateLimitUpsertOne {
	return u.Update(func(s *UserRateLimitUpsert) {
		s.SetSyncAPIRequests(v)
	})
}

// AddSyncAPIRequests adds v to the "sync_api_requests" field.
func (u *UserRateLimitUpsertOne) AddSyncAPIRequests(v int) *UserRateLimitUpsertOne {
	return u.Update(func(s *UserRateLimitUpsert) {
		s.AddSyncAPIRequests(v)
	})
}

// UpdateSyncAPIRequests sets the "sync_api_requests" field to the value that was provided on create.
func (u *UserRateLimitUpsertOne) UpdateSyncAPIRequests() *UserRateLimitUpsertOne {
	return u.Update(func(s *UserRateLimitUpsert) {
		s.UpdateSyncAPIRequests()
	})
}

// SetAsyncAPIRequests sets the "async_api_requests" field.
func (u *UserRateLimitUpsertOne) SetAsyncAPIRequests(v int) *UserRateLimitUpsertOne {
	return u.Update(func(s *UserRateLimitUpsert) {
		s.SetAsyncAPIRequests(v)
	})
}

// AddAsyncAPIRequests adds v to the "async_api_requests" field.
func (u *UserRateLimitUpsertOne) AddAsyncAPIRequests(v int) *UserRateLimitUpsertOne {
	return u.Update(func(s *UserRateLimitUpsert) {
		s.AddAsyncAPIRequests(v)
	})
}

// UpdateAsyncAPIRequests sets the "async_api_requests" field to the value that was provided on create.
func (u *UserRateLimitUpsertOne) UpdateAsyncAPIRequests() *UserRateLimitUpsertOne {
	return u.Update(func(s *UserRateLimitUpsert) {
		s.UpdateAsyncAPIRequests()
	})
}

// SetAPIEndpointRequests sets the "api_endpoint_requests" field.
func (u *UserRateLimitUpsertOne) SetAPIEndpointRequests(v int) *UserRateLimitUpsertOne {
	return u.Update(func(s *UserRateLimitUpsert) {
		s.SetAPIEndpointRequests(v)
	})
}

// AddAPIEndpointRequests adds v to the "api_endpoint_requests" field.
func (u *UserRateLimitUpsertOne) AddAPIEndpointRequests(v int) *UserRateLimitUpsertOne {
	return u.Update(func(s *UserRateLimitUpsert) {
		s.AddAPIEndpointRequests(v)
	})
}

// UpdateAPIEndpointRequests sets the "api_endpoint_requests" field to the value that was provided on create.
func (u *UserRateLimitUpsertOne) UpdateAPIEndpointRequests() *UserRateLimitUpsertOne {
	return u.Update(func(s *UserRateLimitUpsert) {
		s.UpdateAPIEndpointRequests()
	})
}

// SetWindowStart sets the "window_start" field.
func (u *UserRateLimitUpsertOne) SetWindowStart(v time.Time) *UserRateLimitUpsertOne {
	return u.Update(func(s *UserRateLimitUpsert) {
		s.SetWindowStart(v)
	})
}

// UpdateWindowStart sets the "window_start" field to the value that was provided on create.
func (u *UserRateLimitUpsertOne) UpdateWindowStart() *UserRateLimitUpsertOne {
	return u.Update(func(s *UserRateLimitUpsert) {
		s.UpdateWindowStart()
	})
}

// SetLastRequestAt sets the "last_request_at" field.
func (u *UserRateLimitUpsertOne) SetLastRequestAt(v time.Time) *UserRateLimitUpsertOne {
	return u.Update(func(s *UserRateLimitUpsert) {
		s.SetLastRequestAt(v)
	})
}

// UpdateLastRequestAt sets the "last_request_at" field to the value that was provided on create.
func (u *UserRateLimitUpsertOne) UpdateLastRequestAt() *UserRateLimitUpsertOne {
	return u.Update(func(s *UserRateLimitUpsert) {
		s.UpdateLastRequestAt()
	})
}

// SetIsRateLimited sets the "is_rate_limited" field.
func (u *UserRateLimitUpsertOne) SetIsRateLimited(v bool) *UserRateLimitUpsertOne {
	return u.Update(func(s *UserRateLimitUpsert) {
		s.SetIsRateLimited(v)
	})
}

// UpdateIsRateLimited sets the "is_rate_limited" field to the value that was provided on create.
func (u *UserRateLimitUpsertOne) UpdateIsRateLimited() *UserRateLimitUpsertOne {
	return u.Update(func(s *UserRateLimitUpsert) {
		s.UpdateIsRateLimited()
	})
}

// SetRateLimitResetAt sets the "rate_limit_reset_at" field.
func (u *UserRateLimitUpsertOne) SetRateLimitResetAt(v time.Time) *UserRateLimitUpsertOne {
	return u.Update(func(s *UserRateLimitUpsert) {
		s.SetRateLimitResetAt(v)
	})
}

// UpdateRateLimitResetAt sets the "rate_limit_reset_at" field to the value that was provided on create.
func (u *UserRateLimitUpsertOne) UpdateRateLimitResetAt() *UserRateLimitUpsertOne {
	return u.Update(func(s *UserRateLimitUpsert) {
		s.UpdateRateLimitResetAt()
	})
}

// ClearRateLimitResetAt clears the value of the "rate_limit_reset_at" field.
func (u *UserRateLimitUpsertOne) ClearRateLimitResetAt() *UserRateLimitUpsertOne {
	return u.Update(func(s *UserRateLimitUpsert) {
		s.ClearRateLimitResetAt()
	})
}

// Exec executes the query.
func (u *UserRateLimitUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for UserRateLimitCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *UserRateLimitUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *UserRateLimitUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: UserRateLimitUpsertOne.ID is not supported by MySQL driver. Use UserRateLimitUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *UserRateLimitUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// UserRateLimitCreateBulk is the builder for creating many UserRateLimit entities in bulk.
type UserRateLimitCreateBulk struct {
	config
	err      error
	builders []*UserRateLimitCreate
	conflict []sql.ConflictOption
}

// Save creates the UserRateLimit entities in the database.
func (_c *UserRateLimitCreateBulk) Save(ctx context.Context) ([]*UserRateLimit, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UserRateLimit, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UserRateLimitMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *UserRateLimitCreateBulk) SaveX(ctx context.Context) []*UserRateLimit {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserRateLimitCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserRateLimitCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.UserRateLimit.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.UserRateLimitUpsert) {
//			SetSyncAPIRequests(v+v).
//		}).
//		Exec(ctx)
func (_c *UserRateLimitCreateBulk) OnConflict(opts ...sql.ConflictOption) *UserRateLimitUpsertBulk {
	_c.conflict = opts
	return &UserRateLimitUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.UserRateLimit.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *UserRateLimitCreateBulk) OnConflictColumns(columns ...string) *UserRateLimitUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &UserRateLimitUpsertBulk{
		create: _c,
	}
}

// UserRateLimitUpsertBulk is the builder for "upsert"-ing
// a bulk of UserRateLimit nodes.
type UserRateLimitUpsertBulk struct {
	create *UserRateLimitCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.UserRateLimit.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(userratelimit.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *UserRateLimitUpsertBulk) UpdateNewValues() *UserRateLimitUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(userratelimit.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.UserRateLimit.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *UserRateLimitUpsertBulk) Ignore() *UserRateLimitUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *UserRateLimitUpsertBulk) DoNothing() *UserRateLimitUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the UserRateLimitCreateBulk.OnConflict
// documentation for more info.
func (u *UserRateLimitUpsertBulk) Update(set func(*UserRateLimitUpsert)) *UserRateLimitUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&UserRateLimitUpsert{UpdateSet: update})
	}))
	return u
}

// SetSyncAPIRequests sets the "sync_api_requests" field.
func (u *UserRateLimitUpsertBulk) SetSyncAPIRequests(v int) *UserRateLimitUpsertBulk {
	return u.Update(func(s *UserRateLimitUpsert) {
		s.SetSyncAPIRequests(v)
	})
}

// AddSyncAPIRequests adds v to the "sync_api_requests" field.
func (u *UserRateLimitUpsertBulk) AddSyncAPIRequests(v int) *UserRateLimitUpsertBulk {
	return u.Update(func(s *UserRateLimitUpsert) {
		s.AddSyncAPIRequests(v)
	})
}

// UpdateSyncAPIRequests sets the "sync_api_requests" field to the value that was provided on create.
func (u *UserRateLimitUpsertBulk) UpdateSyncAPIRequests() *UserRateLimitUpsertBulk {
	return u.Update(func(s *UserRateLimitUpsert) {
		s.UpdateSyncAPIRequests()
	})
}

// SetAsyncAPIRequests sets the "async_api_requests" field.
func (u *UserRateLimitUpsertBulk) SetAsyncAPIRequests(v int) *UserRateLimitUpsertBulk {
	return u.Update(func(s *UserRateLimitUpsert) {
		s.SetAsyncAPIRequests(v)
	})
}

// AddAsyncAPIRequests adds v to the "async_api_requests" field.
func (u *UserRateLimitUpsertBulk) AddAsyncAPIRequests(v int) *UserRateLimitUpsertBulk {
	return u.Update(func(s *UserRateLimitUpsert) {
		s.AddAsyncAPIRequests(v)
	})
}

// UpdateAsyncAPIRequests sets the "async_api_requests" field to the value that was provided on create.
func (u *UserRateLimitUpsertBulk) UpdateAsyncAPIRequests() *UserRateLimitUpsertBulk {
	return u.Update(func(s *UserRateLimitUpsert) {
		s.UpdateAsyncAPIRequests()
	})
}

// SetAPIEndpointRequests sets the "api_endpoint_requests" field.
func (u *UserRateLimitUpsertBulk) SetAPIEndpointRequests(v int) *UserRateLimitUpsertBulk {
	return u.Update(func(s *UserRateLimitUpsert) {
		s.SetAPIEndpointRequests(v)
	})
}

// AddAPIEndpointRequests adds v to the "api_endpoint_requests" field.
func (u *UserRateLimitUpsertBulk) AddAPIEndpointRequests(v int) *UserRateLimitUpsertBulk {
	return u.Update(func(s *UserRateLimitUpsert) {
		s.AddAPIEndpointRequests(v)
	})
}

// UpdateAPIEndpointRequests sets the "api_endpoint_requests" field to the value that was provided on create.
func (u *UserRateLimitUpsertBulk) UpdateAPIEndpointRequests() *UserRateLimitUpsertBulk {
	return u.Update(func(s *UserRateLimitUpsert) {
		s.UpdateAPIEndpointRequests()
	})
}

// SetWindowStart sets the "window_start" field.
func (u *UserRateLimitUpsertBulk) SetWindowStart(v time.Time) *UserRateLimitUpsertBulk {
	return u.Update(func(s *UserRateLimitUpsert) {
		s.SetWindowStart(v)
	})
}

// UpdateWindowStart sets the "window_start" field to the value that was provided on create.
func (u *UserRateLimitUpsertBulk) UpdateWindowStart() *UserRateLimitUpsertBulk {
	return u.Update(func(s *UserRateLimitUpsert) {
		s.UpdateWindowStart()
	})
}

// SetLastRequestAt sets the "last_request_at" field.
func (u *UserRateLimitUpsertBulk) SetLastRequestAt(v time.Time) *UserRateLimitUpsertBulk {
	return u.Update(func(s *UserRateLimitUpsert) {
		s.SetLastRequestAt(v)
	})
}

// UpdateLastRequestAt sets the "last_request_at" field to the value that was provided on create.
func (u *UserRateLimitUpsertBulk) UpdateLastRequestAt() *UserRateLimitUpsertBulk {
	return u.Update(func(s *UserRateLimitUpsert) {
		s.UpdateLastRequestAt()
	})
}

// SetIsRateLimited sets the "is_rate_limited" field.
func (u *UserRateLimitUpsertBulk) SetIsRateLimited(v bool) *UserRateLimitUpsertBulk {
	return u.Update(func(s *UserRateLimitUpsert) {
		s.SetIsRateLimited(v)
	})
}

// UpdateIsRateLimited sets the "is_rate_limited" field to the value that was provided on create.
func (u *UserRateLimitUpsertBulk) UpdateIsRateLimited() *UserRateLimitUpsertBulk {
	return u.Update(func(s *UserRateLimitUpsert) {
		s.UpdateIsRateLimited()
	})
}

// SetRateLimitResetAt sets the "rate_limit_reset_at" field.
func (u *UserRateLimitUpsertBulk) SetRateLimitResetAt(v time.Time) *UserRateLimitUpsertBulk {
	return u.Update(func(s *UserRateLimitUpsert) {
		s.SetRateLimitResetAt(v)
	})
}

// UpdateRateLimitResetAt sets the "rate_limit_reset_at" field to the value that was provided on create.
func (u *UserRateLimitUpsertBulk) UpdateRateLimitResetAt() *UserRateLimitUpsertBulk {
	return u.Update(func(s *UserRateLimitUpsert) {
		s.UpdateRateLimitResetAt()
	})
}

// ClearRateLimitResetAt clears the value of the "rate_limit_reset_at" field.
func (u *UserRateLimitUpsertBulk) ClearRateLimitResetAt() *UserRateLimitUpsertBulk {
	return u.Update(func(s *UserRateLimitUpsert) {
		s.ClearRateLimitResetAt()
	})
}

// Exec executes the query.
func (u *UserRateLimitUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the UserRateLimitCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for UserRateLimitCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *UserRateLimitUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
