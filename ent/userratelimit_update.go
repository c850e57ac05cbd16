// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/weft-labs/weft/ent/predicate"
	"github.com/weft-labs/weft/ent/userratelimit"
)

// UserRateLimitUpdate is the builder for updating UserRateLimit entities.
type UserRateLimitUpdate struct {
	config
	hooks    []Hook
	mutation *UserRateLimitMutation
}

// Where appends a list predicates to the UserRateLimitUpdate builder.
func (_u *UserRateLimitUpdate) Where(ps ...predicate.UserRateLimit) *UserRateLimitUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSyncAPIRequests sets the "sync_api_requests" field.
func (_u *UserRateLimitUpdate) SetSyncAPIRequests(v int) *UserRateLimitUpdate {
	_u.mutation.ResetSyncAPIRequests()
	_u.mutation.SetSyncAPIRequests(v)
	return _u
}

// SetNillableSyncAPIRequests sets the "sync_api_requests" field if the given value is not nil.
func (_u *UserRateLimitUpdate) SetNillableSyncAPIRequests(v *int) *UserRateLimitUpdate {
	if v != nil {
		_u.SetSyncAPIRequests(*v)
	}
	return _u
}

// AddSyncAPIRequests adds value to the "sync_api_requests" field.
func (_u *UserRateLimitUpdate) AddSyncAPIRequests(v int) *UserRateLimitUpdate {
	_u.mutation.AddSyncAPIRequests(v)
	return _u
}

// SetAsyncAPIRequests sets the "async_api_requests" field.
func (_u *UserRateLimitUpdate) SetAsyncAPIRequests(v int) *UserRateLimitUpdate {
	_u.mutation.ResetAsyncAPIRequests()
	_u.mutation.SetAsyncAPIRequests(v)
	return _u
}

// SetNillableAsyncAPIRequests sets the "async_api_requests" field if the given value is not nil.
func (_u *UserRateLimitUpdate) SetNillableAsyncAPIRequests(v *int) *UserRateLimitUpdate {
	if v != nil {
		_u.SetAsyncAPIRequests(*v)
	}
	return _u
}

// AddAsyncAPIRequests adds value to the "async_api_requests" field.
func (_u *UserRateLimitUpdate) AddAsyncAPIRequests(v int) *UserRateLimitUpdate {
	_u.mutation.AddAsyncAPIRequests(v)
	return _u
}

// SetAPIEndpointRequests sets the "api_endpoint_requests" field.
func (_u *UserRateLimitUpdate) SetAPIEndpointRequests(v int) *UserRateLimitUpdate {
	_u.mutation.ResetAPIEndpointRequests()
	_u.mutation.SetAPIEndpointRequests(v)
	return _u
}

// SetNillableAPIEndpointRequests sets the "api_endpoint_requests" field if the given value is not nil.
func (_u *UserRateLimitUpdate) SetNillableAPIEndpointRequests(v *int) *UserRateLimitUpdate {
	if v != nil {
		_u.SetAPIEndpointRequests(*v)
	}
	return _u
}

// AddAPIEndpointRequests adds value to the "api_endpoint_requests" field.
func (_u *UserRateLimitUpdate) AddAPIEndpointRequests(v int) *UserRateLimitUpdate {
	_u.mutation.AddAPIEndpointRequests(v)
	return _u
}

// SetWindowStart sets the "window_start" field.
func (_u *UserRateLimitUpdate) SetWindowStart(v time.Time) *UserRateLimitUpdate {
	_u.mutation.SetWindowStart(v)
	return _u
}

// SetNillableWindowStart sets the "window_start" field if the given value is not nil.
func (_u *UserRateLimitUpdate) SetNillableWindowStart(v *time.Time) *UserRateLimitUpdate {
	if v != nil {
		_u.SetWindowStart(*v)
	}
	return _u
}

// SetLastRequestAt sets the "last_request_at" field.
func (_u *UserRateLimitUpdate) SetLastRequestAt(v time.Time) *UserRateLimitUpdate {
	_u.mutation.SetLastRequestAt(v)
	return _u
}

// SetNillableLastRequestAt sets the "last_request_at" field if the given value is not nil.
func (_u *UserRateLimitUpdate) SetNillableLastRequestAt(v *time.Time) *UserRateLimitUpdate {
	if v != nil {
		_u.SetLastRequestAt(*v)
	}
	return _u
}

// SetIsRateLimited sets the "is_rate_limited" field.
func (_u *UserRateLimitUpdate) SetIsRateLimited(v bool) *UserRateLimitUpdate {
	_u.mutation.SetIsRateLimited(v)
	return _u
}

// SetNillableIsRateLimited sets the "is_rate_limited" field if the given value is not nil.
func (_u *UserRateLimitUpdate) SetNillableIsRateLimited(v *bool) *UserRateLimitUpdate {
	if v != nil {
		_u.SetIsRateLimited(*v)
	}
	return _u
}

// SetRateLimitResetAt sets the "rate_limit_reset_at" field.
func (_u *UserRateLimitUpdate) SetRateLimitResetAt(v time.Time) *UserRateLimitUpdate {
	_u.mutation.SetRateLimitResetAt(v)
	return _u
}

// SetNillableRateLimitResetAt sets the "rate_limit_reset_at" field if the given value is not nil.
func (_u *UserRateLimitUpdate) SetNillableRateLimitResetAt(v *time.Time) *UserRateLimitUpdate {
	if v != nil {
		_u.SetRateLimitResetAt(*v)
	}
	return _u
}

// ClearRateLimitResetAt clears the value of the "rate_limit_reset_at" field.
func (_u *UserRateLimitUpdate) ClearRateLimitResetAt() *UserRateLimitUpdate {
	_u.mutation.ClearRateLimitResetAt()
	return _u
}

// Mutation returns the UserRateLimitMutation object of the builder.
func (_u *UserRateLimitUpdate) Mutation() *UserRateLimitMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UserRateLimitUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserRateLimitUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UserRateLimitUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserRateLimitUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *UserRateLimitUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(userratelimit.Table, userratelimit.Columns, sqlgraph.NewFieldSpec(userratelimit.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SyncAPIRequests(); ok {
		_spec.SetField(userratelimit.FieldSyncAPIRequests, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSyncAPIRequests(); ok {
		_spec.AddField(userratelimit.FieldSyncAPIRequests, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AsyncAPIRequests(); ok {
		_spec.SetField(userratelimit.FieldAsyncAPIRequests, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAsyncAPIRequests(); ok {
		_spec.AddField(userratelimit.FieldAsyncAPIRequests, field.TypeInt, value)
	}
	if value, ok := _u.mutation.APIEndpointRequests(); ok {
		_spec.SetField(userratelimit.FieldAPIEndpointRequests, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAPIEndpointRequests(); ok {
		_spec.AddField(userratelimit.FieldAPIEndpointRequests, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WindowStart(); ok {
		_spec.SetField(userratelimit.FieldWindowStart, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastRequestAt(); ok {
		_spec.SetField(userratelimit.FieldLastRequestAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.IsRateLimited(); ok {
		_spec.SetField(userratelimit.FieldIsRateLimited, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RateLimitResetAt(); ok {
		_spec.SetField(userratelimit.FieldRateLimitResetAt, field.TypeTime, value)
	}
	if _u.mutation.RateLimitResetAtCleared() {
		_spec.ClearField(userratelimit.FieldRateLimitResetAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userratelimit.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UserRateLimitUpdateOne is the builder for updating a single UserRateLimit entity.
type UserRateLimitUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserRateLimitMutation
}

// SetSyncAPIRequests sets the "sync_api_requests" field.
func (_u *UserRateLimitUpdateOne) SetSyncAPIRequests(v int) *UserRateLimitUpdateOne {
	_u.mutation.ResetSyncAPIRequests()
	_u.mutation.SetSyncAPIRequests(v)
	return _u
}

// SetNillableSyncAPIRequests sets the "sync_api_requests" field if the given value is not nil.
func (_u *UserRateLimitUpdateOne) SetNillableSyncAPIRequests(v *int) *UserRateLimitUpdateOne {
	if v != nil {
		_u.SetSyncAPIRequests(*v)
	}
	return _u
}

// AddSyncAPIRequests adds value to the "sync_api_requests" field.
func (_u *UserRateLimitUpdateOne) AddSyncAPIRequests(v int) *UserRateLimitUpdateOne {
	_u.mutation.AddSyncAPIRequests(v)
	return _u
}

// SetAsyncAPIRequests sets the "async_api_requests" field.
func (_u *UserRateLimitUpdateOne) SetAsyncAPIRequests(v int) *UserRateLimitUpdateOne {
	_u.mutation.ResetAsyncAPIRequests()
	_u.mutation.SetAsyncAPIRequests(v)
	return _u
}

// SetNillableAsyncAPIRequests sets the "async_api_requests" field if the given value is not nil.
func (_u *UserRateLimitUpdateOne) SetNillableAsyncAPIRequests(v *int) *UserRateLimitUpdateOne {
	if v != nil {
		_u.SetAsyncAPIRequests(*v)
	}
	return _u
}

// AddAsyncAPIRequests adds value to the "async_api_requests" field.
func (_u *UserRateLimitUpdateOne) AddAsyncAPIRequests(v int) *UserRateLimitUpdateOne {
	_u.mutation.AddAsyncAPIRequests(v)
	return _u
}

// SetAPIEndpointRequests sets the "api_endpoint_requests" field.
func (_u *UserRateLimitUpdateOne) SetAPIEndpointRequests(v int) *UserRateLimitUpdateOne {
	_u.mutation.ResetAPIEndpointRequests()
	_u.mutation.SetAPIEndpointRequests(v)
	return _u
}

// SetNillableAPIEndpointRequests sets the "api_endpoint_requests" field if the given value is not nil.
func (_u *UserRateLimitUpdateOne) SetNillableAPIEndpointRequests(v *int) *UserRateLimitUpdateOne {
	if v != nil {
		_u.SetAPIEndpointRequests(*v)
	}
	return _u
}

// AddAPIEndpointRequests adds value to the "api_endpoint_requests" field.
func (_u *UserRateLimitUpdateOne) AddAPIEndpointRequests(v int) *UserRateLimitUpdateOne {
	_u.mutation.AddAPIEndpointRequests(v)
	return _u
}

// SetWindowStart sets the "window_start" field.
func (_u *UserRateLimitUpdateOne) SetWindowStart(v time.Time) *UserRateLimitUpdateOne {
	_u.mutation.SetWindowStart(v)
	return _u
}

// SetNillableWindowStart sets the "window_start" field if the given value is not nil.
func (_u *UserRateLimitUpdateOne) SetNillableWindowStart(v *time.Time) *UserRateLimitUpdateOne {
	if v != nil {
		_u.SetWindowStart(*v)
	}
	return _u
}

// SetLastRequestAt sets the "last_request_at" field.
func (_u *UserRateLimitUpdateOne) SetLastRequestAt(v time.Time) *UserRateLimitUpdateOne {
	_u.mutation.SetLastRequestAt(v)
	return _u
}

// SetNillableLastRequestAt sets the "last_request_at" field if the given value is not nil.
func (_u *UserRateLimitUpdateOne) SetNillableLastRequestAt(v *time.Time) *UserRateLimitUpdateOne {
	if v != nil {
		_u.SetLastRequestAt(*v)
	}
	return _u
}

// SetIsRateLimited sets the "is_rate_limited" field.
func (_u *UserRateLimitUpdateOne) SetIsRateLimited(v bool) *UserRateLimitUpdateOne {
	_u.mutation.SetIsRateLimited(v)
	return _u
}

// SetNillableIsRateLimited sets the "is_rate_limited" field if the given value is not nil.
func (_u *UserRateLimitUpdateOne) SetNillableIsRateLimited(v *bool) *UserRateLimitUpdateOne {
	if v != nil {
		_u.SetIsRateLimited(*v)
	}
	return _u
}

// SetRateLimitResetAt sets the "rate_limit_reset_at" field.
func (_u *UserRateLimitUpdateOne) SetRateLimitResetAt(v time.Time) *UserRateLimitUpdateOne {
	_u.mutation.SetRateLimitResetAt(v)
	return _u
}

// SetNillableRateLimitResetAt sets the "rate_limit_reset_at" field if the given value is not nil.
func (_u *UserRateLimitUpdateOne) SetNillableRateLimitResetAt(v *time.Time) *UserRateLimitUpdateOne {
	if v != nil {
		_u.SetRateLimitResetAt(*v)
	}
	return _u
}

// ClearRateLimitResetAt clears the value of the "rate_limit_reset_at" field.
func (_u *UserRateLimitUpdateOne) ClearRateLimitResetAt() *UserRateLimitUpdateOne {
	_u.mutation.ClearRateLimitResetAt()
	return _u
}

// Mutation returns the UserRateLimitMutation object of the builder.
func (_u *UserRateLimitUpdateOne) Mutation() *UserRateLimitMutation {
	return _u.mutation
}

// Where appends a list predicates to the UserRateLimitUpdate builder.
func (_u *UserRateLimitUpdateOne) Where(ps ...predicate.UserRateLimit) *UserRateLimitUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UserRateLimitUpdateOne) Select(field string, fields ...string) *UserRateLimitUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UserRateLimit entity.
func (_u *UserRateLimitUpdateOne) Save(ctx context.Context) (*UserRateLimit, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserRateLimitUpdateOne) SaveX(ctx context.Context) *UserRateLimit {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UserRateLimitUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserRateLimitUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *UserRateLimitUpdateOne) sqlSave(ctx context.Context) (_node *UserRateLimit, err error) {
	_spec := sqlgraph.NewUpdateSpec(userratelimit.Table, userratelimit.Columns, sqlgraph.NewFieldSpec(userratelimit.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UserRateLimit.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, userratelimit.FieldID)
		for _, f := range fields {
			if !userratelimit.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != userratelimit.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SyncAPIRequests(); ok {
		_spec.SetField(userratelimit.FieldSyncAPIRequests, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSyncAPIRequests(); ok {
		_spec.AddField(userratelimit.FieldSyncAPIRequests, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AsyncAPIRequests(); ok {
		_spec.SetField(userratelimit.FieldAsyncAPIRequests, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAsyncAPIRequests(); ok {
		_spec.AddField(userratelimit.FieldAsyncAPIRequests, field.TypeInt, value)
	}
	if value, ok := _u.mutation.APIEndpointRequests(); ok {
		_spec.SetField(userratelimit.FieldAPIEndpointRequests, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAPIEndpointRequests(); ok {
		_spec.AddField(userratelimit.FieldAPIEndpointRequests, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WindowStart(); ok {
		_spec.SetField(userratelimit.FieldWindowStart, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastRequestAt(); ok {
		_spec.SetField(userratelimit.FieldLastRequestAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.IsRateLimited(); ok {
		_spec.SetField(userratelimit.FieldIsRateLimited, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RateLimitResetAt(); ok {
		_spec.SetField(userratelimit.FieldRateLimitResetAt, field.TypeTime, value)
	}
	if _u.mutation.RateLimitResetAtCleared() {
		_spec.ClearField(userratelimit.FieldRateLimitResetAt, field.TypeTime)
	}
	_node = &UserRateLimit{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userratelimit.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
