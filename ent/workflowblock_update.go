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
	"github.com/weft-labs/weft/ent/workflowblock"
	"github.com/weft-labs/weft/pkg/models"
)

// WorkflowBlockUpdate is the builder for updating WorkflowBlock entities.
type WorkflowBlockUpdate struct {
	config
	hooks    []Hook
	mutation *WorkflowBlockMutation
}

// Where appends a list predicates to the WorkflowBlockUpdate builder.
func (_u *WorkflowBlockUpdate) Where(ps ...predicate.WorkflowBlock) *WorkflowBlockUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetType sets the "type" field.
func (_u *WorkflowBlockUpdate) SetType(v string) *WorkflowBlockUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *WorkflowBlockUpdate) SetNillableType(v *string) *WorkflowBlockUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *WorkflowBlockUpdate) SetName(v string) *WorkflowBlockUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *WorkflowBlockUpdate) SetNillableName(v *string) *WorkflowBlockUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPositionX sets the "position_x" field.
func (_u *WorkflowBlockUpdate) SetPositionX(v float64) *WorkflowBlockUpdate {
	_u.mutation.ResetPositionX()
	_u.mutation.SetPositionX(v)
	return _u
}

// SetNillablePositionX sets the "position_x" field if the given value is not nil.
func (_u *WorkflowBlockUpdate) SetNillablePositionX(v *float64) *WorkflowBlockUpdate {
	if v != nil {
		_u.SetPositionX(*v)
	}
	return _u
}

// AddPositionX adds value to the "position_x" field.
func (_u *WorkflowBlockUpdate) AddPositionX(v float64) *WorkflowBlockUpdate {
	_u.mutation.AddPositionX(v)
	return _u
}

// SetPositionY sets the "position_y" field.
func (_u *WorkflowBlockUpdate) SetPositionY(v float64) *WorkflowBlockUpdate {
	_u.mutation.ResetPositionY()
	_u.mutation.SetPositionY(v)
	return _u
}

// SetNillablePositionY sets the "position_y" field if the given value is not nil.
func (_u *WorkflowBlockUpdate) SetNillablePositionY(v *float64) *WorkflowBlockUpdate {
	if v != nil {
		_u.SetPositionY(*v)
	}
	return _u
}

// AddPositionY adds value to the "position_y" field.
func (_u *WorkflowBlockUpdate) AddPositionY(v float64) *WorkflowBlockUpdate {
	_u.mutation.AddPositionY(v)
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *WorkflowBlockUpdate) SetEnabled(v bool) *WorkflowBlockUpdate {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *WorkflowBlockUpdate) SetNillableEnabled(v *bool) *WorkflowBlockUpdate {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetParentID sets the "parent_id" field.
func (_u *WorkflowBlockUpdate) SetParentID(v string) *WorkflowBlockUpdate {
	_u.mutation.SetParentID(v)
	return _u
}

// SetNillableParentID sets the "parent_id" field if the given value is not nil.
func (_u *WorkflowBlockUpdate) SetNillableParentID(v *string) *WorkflowBlockUpdate {
	if v != nil {
		_u.SetParentID(*v)
	}
	return _u
}

// ClearParentID clears the value of the "parent_id" field.
func (_u *WorkflowBlockUpdate) ClearParentID() *WorkflowBlockUpdate {
	_u.mutation.ClearParentID()
	return _u
}

// SetSubBlocks sets the "sub_blocks" field.
func (_u *WorkflowBlockUpdate) SetSubBlocks(v map[string]models.Subblock) *WorkflowBlockUpdate {
	_u.mutation.SetSubBlocks(v)
	return _u
}

// ClearSubBlocks clears the value of the "sub_blocks" field.
func (_u *WorkflowBlockUpdate) ClearSubBlocks() *WorkflowBlockUpdate {
	_u.mutation.ClearSubBlocks()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorkflowBlockUpdate) SetUpdatedAt(v time.Time) *WorkflowBlockUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *WorkflowBlockUpdate) SetNillableUpdatedAt(v *time.Time) *WorkflowBlockUpdate {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// Mutation returns the WorkflowBlockMutation object of the builder.
func (_u *WorkflowBlockUpdate) Mutation() *WorkflowBlockMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WorkflowBlockUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkflowBlockUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WorkflowBlockUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkflowBlockUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkflowBlockUpdate) check() error {
	if _u.mutation.WorkflowCleared() && len(_u.mutation.WorkflowIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "WorkflowBlock.workflow"`)
	}
	return nil
}

func (_u *WorkflowBlockUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workflowblock.Table, workflowblock.Columns, sqlgraph.NewFieldSpec(workflowblock.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(workflowblock.FieldType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(workflowblock.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.PositionX(); ok {
		_spec.SetField(workflowblock.FieldPositionX, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPositionX(); ok {
		_spec.AddField(workflowblock.FieldPositionX, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.PositionY(); ok {
		_spec.SetField(workflowblock.FieldPositionY, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPositionY(); ok {
		_spec.AddField(workflowblock.FieldPositionY, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(workflowblock.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ParentID(); ok {
		_spec.SetField(workflowblock.FieldParentID, field.TypeString, value)
	}
	if _u.mutation.ParentIDCleared() {
		_spec.ClearField(workflowblock.FieldParentID, field.TypeString)
	}
	if value, ok := _u.mutation.SubBlocks(); ok {
		_spec.SetField(workflowblock.FieldSubBlocks, field.TypeJSON, value)
	}
	if _u.mutation.SubBlocksCleared() {
		_spec.ClearField(workflowblock.FieldSubBlocks, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(workflowblock.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workflowblock.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WorkflowBlockUpdateOne is the builder for updating a single WorkflowBlock entity.
type WorkflowBlockUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WorkflowBlockMutation
}

// SetType sets the "type" field.
func (_u *WorkflowBlockUpdateOne) SetType(v string) *WorkflowBlockUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *WorkflowBlockUpdateOne) SetNillableType(v *string) *WorkflowBlockUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *WorkflowBlockUpdateOne) SetName(v string) *WorkflowBlockUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *WorkflowBlockUpdateOne) SetNillableName(v *string) *WorkflowBlockUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPositionX sets the "position_x" field.
func (_u *WorkflowBlockUpdateOne) SetPositionX(v float64) *WorkflowBlockUpdateOne {
	_u.mutation.ResetPositionX()
	_u.mutation.SetPositionX(v)
	return _u
}

// SetNillablePositionX sets the "position_x" field if the given value is not nil.
func (_u *WorkflowBlockUpdateOne) SetNillablePositionX(v *float64) *WorkflowBlockUpdateOne {
	if v != nil {
		_u.SetPositionX(*v)
	}
	return _u
}

// AddPositionX adds value to the "position_x" field.
func (_u *WorkflowBlockUpdateOne) AddPositionX(v float64) *WorkflowBlockUpdateOne {
	_u.mutation.AddPositionX(v)
	return _u
}

// SetPositionY sets the "position_y" field.
func (_u *WorkflowBlockUpdateOne) SetPositionY(v float64) *WorkflowBlockUpdateOne {
	_u.mutation.ResetPositionY()
	_u.mutation.SetPositionY(v)
	return _u
}

// SetNillablePositionY sets the "position_y" field if the given value is not nil.
func (_u *WorkflowBlockUpdateOne) SetNillablePositionY(v *float64) *WorkflowBlockUpdateOne {
	if v != nil {
		_u.SetPositionY(*v)
	}
	return _u
}

// AddPositionY adds value to the "position_y" field.
func (_u *WorkflowBlockUpdateOne) AddPositionY(v float64) *WorkflowBlockUpdateOne {
	_u.mutation.AddPositionY(v)
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *WorkflowBlockUpdateOne) SetEnabled(v bool) *WorkflowBlockUpdateOne {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *WorkflowBlockUpdateOne) SetNillableEnabled(v *bool) *WorkflowBlockUpdateOne {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetParentID sets the "parent_id" field.
func (_u *WorkflowBlockUpdateOne) SetParentID(v string) *WorkflowBlockUpdateOne {
	_u.mutation.SetParentID(v)
	return _u
}

// SetNillableParentID sets the "parent_id" field if the given value is not nil.
func (_u *WorkflowBlockUpdateOne) SetNillableParentID(v *string) *WorkflowBlockUpdateOne {
	if v != nil {
		_u.SetParentID(*v)
	}
	return _u
}

// ClearParentID clears the value of the "parent_id" field.
func (_u *WorkflowBlockUpdateOne) ClearParentID() *WorkflowBlockUpdateOne {
	_u.mutation.ClearParentID()
	return _u
}

// SetSubBlocks sets the "sub_blocks" field.
func (_u *WorkflowBlockUpdateOne) SetSubBlocks(v map[string]models.Subblock) *WorkflowBlockUpdateOne {
	_u.mutation.SetSubBlocks(v)
	return _u
}

// ClearSubBlocks clears the value of the "sub_blocks" field.
func (_u *WorkflowBlockUpdateOne) ClearSubBlocks() *WorkflowBlockUpdateOne {
	_u.mutation.ClearSubBlocks()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorkflowBlockUpdateOne) SetUpdatedAt(v time.Time) *WorkflowBlockUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *WorkflowBlockUpdateOne) SetNillableUpdatedAt(v *time.Time) *WorkflowBlockUpdateOne {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// Mutation returns the WorkflowBlockMutation object of the builder.
func (_u *WorkflowBlockUpdateOne) Mutation() *WorkflowBlockMutation {
	return _u.mutation
}

// Where appends a list predicates to the WorkflowBlockUpdate builder.
func (_u *WorkflowBlockUpdateOne) Where(ps ...predicate.WorkflowBlock) *WorkflowBlockUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WorkflowBlockUpdateOne) Select(field string, fields ...string) *WorkflowBlockUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WorkflowBlock entity.
func (_u *WorkflowBlockUpdateOne) Save(ctx context.Context) (*WorkflowBlock, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkflowBlockUpdateOne) SaveX(ctx context.Context) *WorkflowBlock {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WorkflowBlockUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkflowBlockUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkflowBlockUpdateOne) check() error {
	if _u.mutation.WorkflowCleared() && len(_u.mutation.WorkflowIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "WorkflowBlock.workflow"`)
	}
	return nil
}

func (_u *WorkflowBlockUpdateOne) sqlSave(ctx context.Context) (_node *WorkflowBlock, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workflowblock.Table, workflowblock.Columns, sqlgraph.NewFieldSpec(workflowblock.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WorkflowBlock.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, workflowblock.FieldID)
		for _, f := range fields {
			if !workflowblock.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != workflowblock.FieldID {
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
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(workflowblock.FieldType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(workflowblock.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.PositionX(); ok {
		_spec.SetField(workflowblock.FieldPositionX, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPositionX(); ok {
		_spec.AddField(workflowblock.FieldPositionX, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.PositionY(); ok {
		_spec.SetField(workflowblock.FieldPositionY, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPositionY(); ok {
		_spec.AddField(workflowblock.FieldPositionY, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(workflowblock.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ParentID(); ok {
		_spec.SetField(workflowblock.FieldParentID, field.TypeString, value)
	}
	if _u.mutation.ParentIDCleared() {
		_spec.ClearField(workflowblock.FieldParentID, field.TypeString)
	}
	if value, ok := _u.mutation.SubBlocks(); ok {
		_spec.SetField(workflowblock.FieldSubBlocks, field.TypeJSON, value)
	}
	if _u.mutation.SubBlocksCleared() {
		_spec.ClearField(workflowblock.FieldSubBlocks, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(workflowblock.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &WorkflowBlock{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workflowblock.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
