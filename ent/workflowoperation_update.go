// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/weft-labs/weft/ent/predicate"
	"github.com/weft-labs/weft/ent/workflowoperation"
)

// WorkflowOperationUpdate is the builder for updating WorkflowOperation entities.
type WorkflowOperationUpdate struct {
	config
	hooks    []Hook
	mutation *WorkflowOperationMutation
}

// Where appends a list predicates to the WorkflowOperationUpdate builder.
func (_u *WorkflowOperationUpdate) Where(ps ...predicate.WorkflowOperation) *WorkflowOperationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOperation sets the "operation" field.
func (_u *WorkflowOperationUpdate) SetOperation(v string) *WorkflowOperationUpdate {
	_u.mutation.SetOperation(v)
	return _u
}

// SetNillableOperation sets the "operation" field if the given value is not nil.
func (_u *WorkflowOperationUpdate) SetNillableOperation(v *string) *WorkflowOperationUpdate {
	if v != nil {
		_u.SetOperation(*v)
	}
	return _u
}

// SetTarget sets the "target" field.
func (_u *WorkflowOperationUpdate) SetTarget(v string) *WorkflowOperationUpdate {
	_u.mutation.SetTarget(v)
	return _u
}

// SetNillableTarget sets the "target" field if the given value is not nil.
func (_u *WorkflowOperationUpdate) SetNillableTarget(v *string) *WorkflowOperationUpdate {
	if v != nil {
		_u.SetTarget(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *WorkflowOperationUpdate) SetPayload(v map[string]interface{}) *WorkflowOperationUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *WorkflowOperationUpdate) ClearPayload() *WorkflowOperationUpdate {
	_u.mutation.ClearPayload()
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *WorkflowOperationUpdate) SetUserID(v string) *WorkflowOperationUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *WorkflowOperationUpdate) SetNillableUserID(v *string) *WorkflowOperationUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetClientTimestamp sets the "client_timestamp" field.
func (_u *WorkflowOperationUpdate) SetClientTimestamp(v int64) *WorkflowOperationUpdate {
	_u.mutation.ResetClientTimestamp()
	_u.mutation.SetClientTimestamp(v)
	return _u
}

// SetNillableClientTimestamp sets the "client_timestamp" field if the given value is not nil.
func (_u *WorkflowOperationUpdate) SetNillableClientTimestamp(v *int64) *WorkflowOperationUpdate {
	if v != nil {
		_u.SetClientTimestamp(*v)
	}
	return _u
}

// AddClientTimestamp adds value to the "client_timestamp" field.
func (_u *WorkflowOperationUpdate) AddClientTimestamp(v int64) *WorkflowOperationUpdate {
	_u.mutation.AddClientTimestamp(v)
	return _u
}

// Mutation returns the WorkflowOperationMutation object of the builder.
func (_u *WorkflowOperationUpdate) Mutation() *WorkflowOperationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WorkflowOperationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkflowOperationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WorkflowOperationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkflowOperationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkflowOperationUpdate) check() error {
	if _u.mutation.WorkflowCleared() && len(_u.mutation.WorkflowIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "WorkflowOperation.workflow"`)
	}
	return nil
}

func (_u *WorkflowOperationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workflowoperation.Table, workflowoperation.Columns, sqlgraph.NewFieldSpec(workflowoperation.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Operation(); ok {
		_spec.SetField(workflowoperation.FieldOperation, field.TypeString, value)
	}
	if value, ok := _u.mutation.Target(); ok {
		_spec.SetField(workflowoperation.FieldTarget, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(workflowoperation.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(workflowoperation.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(workflowoperation.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ClientTimestamp(); ok {
		_spec.SetField(workflowoperation.FieldClientTimestamp, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedClientTimestamp(); ok {
		_spec.AddField(workflowoperation.FieldClientTimestamp, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workflowoperation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WorkflowOperationUpdateOne is the builder for updating a single WorkflowOperation entity.
type WorkflowOperationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WorkflowOperationMutation
}

// SetOperation sets the "operation" field.
func (_u *WorkflowOperationUpdateOne) SetOperation(v string) *WorkflowOperationUpdateOne {
	_u.mutation.SetOperation(v)
	return _u
}

// SetNillableOperation sets the "operation" field if the given value is not nil.
func (_u *WorkflowOperationUpdateOne) SetNillableOperation(v *string) *WorkflowOperationUpdateOne {
	if v != nil {
		_u.SetOperation(*v)
	}
	return _u
}

// SetTarget sets the "target" field.
func (_u *WorkflowOperationUpdateOne) SetTarget(v string) *WorkflowOperationUpdateOne {
	_u.mutation.SetTarget(v)
	return _u
}

// SetNillableTarget sets the "target" field if the given value is not nil.
func (_u *WorkflowOperationUpdateOne) SetNillableTarget(v *string) *WorkflowOperationUpdateOne {
	if v != nil {
		_u.SetTarget(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *WorkflowOperationUpdateOne) SetPayload(v map[string]interface{}) *WorkflowOperationUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *WorkflowOperationUpdateOne) ClearPayload() *WorkflowOperationUpdateOne {
	_u.mutation.ClearPayload()
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *WorkflowOperationUpdateOne) SetUserID(v string) *WorkflowOperationUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *WorkflowOperationUpdateOne) SetNillableUserID(v *string) *WorkflowOperationUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetClientTimestamp sets the "client_timestamp" field.
func (_u *WorkflowOperationUpdateOne) SetClientTimestamp(v int64) *WorkflowOperationUpdateOne {
	_u.mutation.ResetClientTimestamp()
	_u.mutation.SetClientTimestamp(v)
	return _u
}

// SetNillableClientTimestamp sets the "client_timestamp" field if the given value is not nil.
func (_u *WorkflowOperationUpdateOne) SetNillableClientTimestamp(v *int64) *WorkflowOperationUpdateOne {
	if v != nil {
		_u.SetClientTimestamp(*v)
	}
	return _u
}

// AddClientTimestamp adds value to the "client_timestamp" field.
func (_u *WorkflowOperationUpdateOne) AddClientTimestamp(v int64) *WorkflowOperationUpdateOne {
	_u.mutation.AddClientTimestamp(v)
	return _u
}

// Mutation returns the WorkflowOperationMutation object of the builder.
func (_u *WorkflowOperationUpdateOne) Mutation() *WorkflowOperationMutation {
	return _u.mutation
}

// Where appends a list predicates to the WorkflowOperationUpdate builder.
func (_u *WorkflowOperationUpdateOne) Where(ps ...predicate.WorkflowOperation) *WorkflowOperationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WorkflowOperationUpdateOne) Select(field string, fields ...string) *WorkflowOperationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WorkflowOperation entity.
func (_u *WorkflowOperationUpdateOne) Save(ctx context.Context) (*WorkflowOperation, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkflowOperationUpdateOne) SaveX(ctx context.Context) *WorkflowOperation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WorkflowOperationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkflowOperationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkflowOperationUpdateOne) check() error {
	if _u.mutation.WorkflowCleared() && len(_u.mutation.WorkflowIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "WorkflowOperation.workflow"`)
	}
	return nil
}

func (_u *WorkflowOperationUpdateOne) sqlSave(ctx context.Context) (_node *WorkflowOperation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workflowoperation.Table, workflowoperation.Columns, sqlgraph.NewFieldSpec(workflowoperation.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WorkflowOperation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, workflowoperation.FieldID)
		for _, f := range fields {
			if !workflowoperation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != workflowoperation.FieldID {
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
	if value, ok := _u.mutation.Operation(); ok {
		_spec.SetField(workflowoperation.FieldOperation, field.TypeString, value)
	}
	if value, ok := _u.mutation.Target(); ok {
		_spec.SetField(workflowoperation.FieldTarget, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(workflowoperation.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(workflowoperation.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(workflowoperation.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ClientTimestamp(); ok {
		_spec.SetField(workflowoperation.FieldClientTimestamp, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedClientTimestamp(); ok {
		_spec.AddField(workflowoperation.FieldClientTimestamp, field.TypeInt64, value)
	}
	_node = &WorkflowOperation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workflowoperation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
