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
	"github.com/weft-labs/weft/ent/workflow"
	"github.com/weft-labs/weft/ent/workflowblock"
	"github.com/weft-labs/weft/pkg/models"
)

// WorkflowBlockCreate is the builder for creating a WorkflowBlock entity.
type WorkflowBlockCreate struct {
	config
	mutation *WorkflowBlockMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetWorkflowID sets the "workflow_id" field.
func (_c *WorkflowBlockCreate) SetWorkflowID(v string) *WorkflowBlockCreate {
	_c.mutation.SetWorkflowID(v)
	return _c
}

// SetType sets the "type" field.
func (_c *WorkflowBlockCreate) SetType(v string) *WorkflowBlockCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetName sets the "name" field.
func (_c *WorkflowBlockCreate) SetName(v string) *WorkflowBlockCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetPositionX sets the "position_x" field.
func (_c *WorkflowBlockCreate) SetPositionX(v float64) *WorkflowBlockCreate {
	_c.mutation.SetPositionX(v)
	return _c
}

// SetPositionY sets the "position_y" field.
func (_c *WorkflowBlockCreate) SetPositionY(v float64) *WorkflowBlockCreate {
	_c.mutation.SetPositionY(v)
	return _c
}

// SetEnabled sets the "enabled" field.
func (_c *WorkflowBlockCreate) SetEnabled(v bool) *WorkflowBlockCreate {
	_c.mutation.SetEnabled(v)
	return _c
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_c *WorkflowBlockCreate) SetNillableEnabled(v *bool) *WorkflowBlockCreate {
	if v != nil {
		_c.SetEnabled(*v)
	}
	return _c
}

// SetParentID sets the "parent_id" field.
func (_c *WorkflowBlockCreate) SetParentID(v string) *WorkflowBlockCreate {
	_c.mutation.SetParentID(v)
	return _c
}

// SetNillableParentID sets the "parent_id" field if the given value is not nil.
func (_c *WorkflowBlockCreate) SetNillableParentID(v *string) *WorkflowBlockCreate {
	if v != nil {
		_c.SetParentID(*v)
	}
	return _c
}

// SetSubBlocks sets the "sub_blocks" field.
func (_c *WorkflowBlockCreate) SetSubBlocks(v map[string]models.Subblock) *WorkflowBlockCreate {
	_c.mutation.SetSubBlocks(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *WorkflowBlockCreate) SetCreatedAt(v time.Time) *WorkflowBlockCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WorkflowBlockCreate) SetNillableCreatedAt(v *time.Time) *WorkflowBlockCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *WorkflowBlockCreate) SetUpdatedAt(v time.Time) *WorkflowBlockCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *WorkflowBlockCreate) SetNillableUpdatedAt(v *time.Time) *WorkflowBlockCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *WorkflowBlockCreate) SetID(v string) *WorkflowBlockCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetWorkflow sets the "workflow" edge to the Workflow entity.
func (_c *WorkflowBlockCreate) SetWorkflow(v *Workflow) *WorkflowBlockCreate {
	return _c.SetWorkflowID(v.ID)
}

// Mutation returns the WorkflowBlockMutation object of the builder.
func (_c *WorkflowBlockCreate) Mutation() *WorkflowBlockMutation {
	return _c.mutation
}

// Save creates the WorkflowBlock in the database.
func (_c *WorkflowBlockCreate) Save(ctx context.Context) (*WorkflowBlock, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WorkflowBlockCreate) SaveX(ctx context.Context) *WorkflowBlock {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkflowBlockCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkflowBlockCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WorkflowBlockCreate) defaults() {
	if _, ok := _c.mutation.Enabled(); !ok {
		v := workflowblock.DefaultEnabled
		_c.mutation.SetEnabled(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := workflowblock.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := workflowblock.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WorkflowBlockCreate) check() error {
	if _, ok := _c.mutation.WorkflowID(); !ok {
		return &ValidationError{Name: "workflow_id", err: errors.New(`ent: missing required field "WorkflowBlock.workflow_id"`)}
	}
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "WorkflowBlock.type"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "WorkflowBlock.name"`)}
	}
	if _, ok := _c.mutation.PositionX(); !ok {
		return &ValidationError{Name: "position_x", err: errors.New(`ent: missing required field "WorkflowBlock.position_x"`)}
	}
	if _, ok := _c.mutation.PositionY(); !ok {
		return &ValidationError{Name: "position_y", err: errors.New(`ent: missing required field "WorkflowBlock.position_y"`)}
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		return &ValidationError{Name: "enabled", err: errors.New(`ent: missing required field "WorkflowBlock.enabled"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "WorkflowBlock.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "WorkflowBlock.updated_at"`)}
	}
	if len(_c.mutation.WorkflowIDs()) == 0 {
		return &ValidationError{Name: "workflow", err: errors.New(`ent: missing required edge "WorkflowBlock.workflow"`)}
	}
	return nil
}

func (_c *WorkflowBlockCreate) sqlSave(ctx context.Context) (*WorkflowBlock, error) {
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
			return nil, fmt.Errorf("unexpected WorkflowBlock.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *WorkflowBlockCreate) createSpec() (*WorkflowBlock, *sqlgraph.CreateSpec) {
	var (
		_node = &WorkflowBlock{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(workflowblock.Table, sqlgraph.NewFieldSpec(workflowblock.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(workflowblock.FieldType, field.TypeString, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(workflowblock.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.PositionX(); ok {
		_spec.SetField(workflowblock.FieldPositionX, field.TypeFloat64, value)
		_node.PositionX = value
	}
	if value, ok := _c.mutation.PositionY(); ok {
		_spec.SetField(workflowblock.FieldPositionY, field.TypeFloat64, value)
		_node.PositionY = value
	}
	if value, ok := _c.mutation.Enabled(); ok {
		_spec.SetField(workflowblock.FieldEnabled, field.TypeBool, value)
		_node.Enabled = value
	}
	if value, ok := _c.mutation.ParentID(); ok {
		_spec.SetField(workflowblock.FieldParentID, field.TypeString, value)
		_node.ParentID = &value
	}
	if value, ok := _c.mutation.SubBlocks(); ok {
		_spec.SetField(workflowblock.FieldSubBlocks, field.TypeJSON, value)
		_node.SubBlocks = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(workflowblock.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(workflowblock.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.WorkflowIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   workflowblock.WorkflowTable,
			Columns: []string{workflowblock.WorkflowColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflow.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.WorkflowID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.WorkflowBlock.Create().
//		SetWorkflowID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.WorkflowBlockUpsert) {
//			SetWorkflowID(v+v).
//		}).
//		Exec(ctx)
func (_c *WorkflowBlockCreate) OnConflict(opts ...sql.ConflictOption) *WorkflowBlockUpsertOne {
	_c.conflict = opts
	return &WorkflowBlockUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.WorkflowBlock.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *WorkflowBlockCreate) OnConflictColumns(columns ...string) *WorkflowBlockUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &WorkflowBlockUpsertOne{
		create: _c,
	}
}

type (
	// WorkflowBlockUpsertOne is the builder for "upsert"-ing
	//  one WorkflowBlock node.
	WorkflowBlockUpsertOne struct {
		create *WorkflowBlockCreate
	}

	// WorkflowBlockUpsert is the "OnConflict" setter.
	WorkflowBlockUpsert struct {
		*sql.UpdateSet
	}
)

// SetType sets the "type" field.
func (u *WorkflowBlockUpsert) SetType(v string) *WorkflowBlockUpsert {
	u.Set(workflowblock.FieldType, v)
	return u
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *WorkflowBlockUpsert) UpdateType() *WorkflowBlockUpsert {
	u.SetExcluded(workflowblock.FieldType)
	return u
}

// SetName sets the "name" field.
func (u *WorkflowBlockUpsert) SetName(v string) *WorkflowBlockUpsert {
	u.Set(workflowblock.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *WorkflowBlockUpsert) UpdateName() *WorkflowBlockUpsert {
	u.SetExcluded(workflowblock.FieldName)
	return u
}

// SetPositionX sets the "position_x" field.
func (u *WorkflowBlockUpsert) SetPositionX(v float64) *WorkflowBlockUpsert {
	u.Set(workflowblock.FieldPositionX, v)
	return u
}

// UpdatePositionX sets the "position_x" field to the value that was provided on create.
func (u *WorkflowBlockUpsert) UpdatePositionX() *WorkflowBlockUpsert {
	u.SetExcluded(workflowblock.FieldPositionX)
	return u
}

// AddPositionX adds v to the "position_x" field.
func (u *WorkflowBlockUpsert) AddPositionX(v float64) *WorkflowBlockUpsert {
	u.Add(workflowblock.FieldPositionX, v)
	return u
}

// SetPositionY sets the "position_y" field.
func (u *WorkflowBlockUpsert) SetPositionY(v float64) *WorkflowBlockUpsert {
	u.Set(workflowblock.FieldPositionY, v)
	return u
}

// UpdatePositionY sets the "position_y" field to the value that was provided on create.
func (u *WorkflowBlockUpsert) UpdatePositionY() *WorkflowBlockUpsert {
	u.SetExcluded(workflowblock.FieldPositionY)
	return u
}

// AddPositionY adds v to the "position_y" field.
func (u *WorkflowBlockUpsert) AddPositionY(v float64) *WorkflowBlockUpsert {
	u.Add(workflowblock.FieldPositionY, v)
	return u
}

// SetEnabled sets the "enabled" field.
func (u *WorkflowBlockUpsert) SetEnabled(v bool) *WorkflowBlockUpsert {
	u.Set(workflowblock.FieldEnabled, v)
	return u
}

// UpdateEnabled sets the "enabled" field to the value that was provided on create.
func (u *WorkflowBlockUpsert) UpdateEnabled() *WorkflowBlockUpsert {
	u.SetExcluded(workflowblock.FieldEnabled)
	return u
}

// SetParentID sets the "parent_id" field.
func (u *WorkflowBlockUpsert) SetParentID(v string) *WorkflowBlockUpsert {
	u.Set(workflowblock.FieldParentID, v)
	return u
}

// UpdateParentID sets the "parent_id" field to the value that was provided on create.
func (u *WorkflowBlockUpsert) UpdateParentID() *WorkflowBlockUpsert {
	u.SetExcluded(workflowblock.FieldParentID)
	return u
}

// ClearParentID clears the value of the "parent_id" field.
func (u *WorkflowBlockUpsert) ClearParentID() *WorkflowBlockUpsert {
	u.SetNull(workflowblock.FieldParentID)
	return u
}

// SetSubBlocks sets the "sub_blocks" field.
func (u *WorkflowBlockUpsert) SetSubBlocks(v map[string]models.Subblock) *WorkflowBlockUpsert {
	u.Set(workflowblock.FieldSubBlocks, v)
	return u
}

// UpdateSubBlocks sets the "sub_blocks" field to the value that was provided on create.
func (u *WorkflowBlockUpsert) UpdateSubBlocks() *WorkflowBlockUpsert {
	u.SetExcluded(workflowblock.FieldSubBlocks)
	return u
}

// ClearSubBlocks clears the value of the "sub_blocks" field.
func (u *WorkflowBlockUpsert) ClearSubBlocks() *WorkflowBlockUpsert {
	u.SetNull(workflowblock.FieldSubBlocks)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *WorkflowBlockUpsert) SetUpdatedAt(v time.Time) *WorkflowBlockUpsert {
	u.Set(workflowblock.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *WorkflowBlockUpsert) UpdateUpdatedAt() *WorkflowBlockUpsert {
	u.SetExcluded(workflowblock.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.WorkflowBlock.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(workflowblock.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *WorkflowBlockUpsertOne) UpdateNewValues() *WorkflowBlockUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(workflowblock.FieldID)
		}
		if _, exists := u.create.mutation.WorkflowID(); exists {
			s.SetIgnore(workflowblock.FieldWorkflowID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(workflowblock.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.WorkflowBlock.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *WorkflowBlockUpsertOne) Ignore() *WorkflowBlockUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *WorkflowBlockUpsertOne) DoNothing() *WorkflowBlockUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the WorkflowBlockCreate.OnConflict
// documentation for more info.
func (u *WorkflowBlockUpsertOne) Update(set func(*WorkflowBlockUpsert)) *WorkflowBlockUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&WorkflowBlockUpsert{UpdateSet: update})
	}))
	return u
}

// SetType sets the "type" field.
func (u *WorkflowBlockUpsertOne) SetType(v string) *WorkflowBlockUpsertOne {
	return u.Update(func(s *WorkflowBlockUpsert) {
		s.SetType(v)
	})
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *WorkflowBlockUpsertOne) UpdateType() *WorkflowBlockUpsertOne {
	return u.Update(func(s *WorkflowBlockUpsert) {
		s.UpdateType()
	})
}

// SetName sets the "name" field.
func (u *WorkflowBlockUpsertOne) SetName(v string) *WorkflowBlockUpsertOne {
	return u.Update(func(s *WorkflowBlockUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *WorkflowBlockUpsertOne) UpdateName() *WorkflowBlockUpsertOne {
	return u.Update(func(s *WorkflowBlockUpsert) {
		s.UpdateName()
	})
}

// SetPositionX sets the "position_x" field.
func (u *WorkflowBlockUpsertOne) SetPositionX(v float64) *WorkflowBlockUpsertOne {
	return u.Update(func(s *WorkflowBlockUpsert) {
		s.SetPositionX(v)
	})
}

// AddPositionX adds v to the "position_x" field.
func (u *WorkflowBlockUpsertOne) AddPositionX(v float64) *WorkflowBlockUpsertOne {
	return u.Update(func(s *WorkflowBlockUpsert) {
		s.AddPositionX(v)
	})
}

// UpdatePositionX sets the "position_x" field to the value that was provided on create.
func (u *WorkflowBlockUpsertOne) UpdatePositionX() *WorkflowBlockUpsertOne {
	return u.Update(func(s *WorkflowBlockUpsert) {
		s.UpdatePositionX()
	})
}

// SetPositionY sets the "position_y" field.
func (u *WorkflowBlockUpsertOne) SetPositionY(v float64) *WorkflowBlockUpsertOne {
	return u.Update(func(s *WorkflowBlockUpsert) {
		s.SetPositionY(v)
	})
}

// AddPositionY adds v to the "position_y" field.
func (u *WorkflowBlockUpsertOne) AddPositionY(v float64) *WorkflowBlockUpsertOne {
	return u.Update(func(s *WorkflowBlockUpsert) {
		s.AddPositionY(v)
	})
}

// UpdatePositionY sets the "position_y" field to the value that was provided on create.
func (u *WorkflowBlockUpsertOne) UpdatePositionY() *WorkflowBlockUpsertOne {
	return u.Update(func(s *WorkflowBlockUpsert) {
		s.UpdatePositionY()
	})
}

// SetEnabled sets the "enabled" field.
func (u *WorkflowBlockUpsertOne) SetEnabled(v bool) *WorkflowBlockUpsertOne {
	return u.Update(func(s *WorkflowBlockUpsert) {
		s.SetEnabled(v)
	})
}

// UpdateEnabled sets the "enabled" field to the value that was provided on create.
func (u *WorkflowBlockUpsertOne) UpdateEnabled() *WorkflowBlockUpsertOne {
	return u.Update(func(s *WorkflowBlockUpsert) {
		s.UpdateEnabled()
	})
}

// SetParentID sets the "parent_id" field.
func (u *WorkflowBlockUpsertOne) SetParentID(v string) *WorkflowBlockUpsertOne {
	return u.Update(func(s *WorkflowBlockUpsert) {
		s.SetParentID(v)
	})
}

// UpdateParentID sets the "parent_id" field to the value that was provided on create.
func (u *WorkflowBlockUpsertOne) UpdateParentID() *WorkflowBlockUpsertOne {
	return u.Update(func(s *WorkflowBlockUpsert) {
		s.UpdateParentID()
	})
}

// ClearParentID clears the value of the "parent_id" field.
func (u *WorkflowBlockUpsertOne) ClearParentID() *WorkflowBlockUpsertOne {
	return u.Update(func(s *WorkflowBlockUpsert) {
		s.ClearParentID()
	})
}

// SetSubBlocks sets the "sub_blocks" field.
func (u *WorkflowBlockUpsertOne) SetSubBlocks(v map[string]models.Subblock) *WorkflowBlockUpsertOne {
	return u.Update(func(s *WorkflowBlockUpsert) {
		s.SetSubBlocks(v)
	})
}

// UpdateSubBlocks sets the "sub_blocks" field to the value that was provided on create.
func (u *WorkflowBlockUpsertOne) UpdateSubBlocks() *WorkflowBlockUpsertOne {
	return u.Update(func(s *WorkflowBlockUpsert) {
		s.UpdateSubBlocks()
	})
}

// ClearSubBlocks clears the value of the "sub_blocks" field.
func (u *WorkflowBlockUpsertOne) ClearSubBlocks() *WorkflowBlockUpsertOne {
	return u.Update(func(s *WorkflowBlockUpsert) {
		s.ClearSubBlocks()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *WorkflowBlockUpsertOne) SetUpdatedAt(v time.Time) *WorkflowBlockUpsertOne {
	return u.Update(func(s *WorkflowBlockUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *WorkflowBlockUpsertOne) UpdateUpdatedAt() *WorkflowBlockUpsertOne {
	return u.Update(func(s *WorkflowBlockUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *WorkflowBlockUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for WorkflowBlockCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *WorkflowBlockUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *WorkflowBlockUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: WorkflowBlockUpsertOne.ID is not supported by MySQL driver. Use WorkflowBlockUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *WorkflowBlockUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// WorkflowBlockCreateBulk is the builder for creating many WorkflowBlock entities in bulk.
type WorkflowBlockCreateBulk struct {
	config
	err      error
	builders []*WorkflowBlockCreate
	conflict []sql.ConflictOption
}

// Save creates the WorkflowBlock entities in the database.
func (_c *WorkflowBlockCreateBulk) Save(ctx context.Context) ([]*WorkflowBlock, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WorkflowBlock, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WorkflowBlockMutation)
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
func (_c *WorkflowBlockCreateBulk) SaveX(ctx context.Context) []*WorkflowBlock {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkflowBlockCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkflowBlockCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.WorkflowBlock.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.WorkflowBlockUpsert) {
//			SetWorkflowID(v+v).
//		}).
//		Exec(ctx)
func (_c *WorkflowBlockCreateBulk) OnConflict(opts ...sql.ConflictOption) *WorkflowBlockUpsertBulk {
	_c.conflict = opts
	return &WorkflowBlockUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.WorkflowBlock.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *WorkflowBlockCreateBulk) OnConflictColumns(columns ...string) *WorkflowBlockUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &WorkflowBlockUpsertBulk{
		create: _c,
	}
}

// WorkflowBlockUpsertBulk is the builder for "upsert"-ing
// a bulk of WorkflowBlock nodes.
type WorkflowBlockUpsertBulk struct {
	create *WorkflowBlockCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.WorkflowBlock.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(workflowblock.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *WorkflowBlockUpsertBulk) UpdateNewValues() *WorkflowBlockUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(workflowblock.FieldID)
			}
			if _, exists := b.mutation.WorkflowID(); exists {
				s.SetIgnore(workflowblock.FieldWorkflowID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(workflowblock.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.WorkflowBlock.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *WorkflowBlockUpsertBulk) Ignore() *WorkflowBlockUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *WorkflowBlockUpsertBulk) DoNothing() *WorkflowBlockUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the WorkflowBlockCreateBulk.OnConflict
// documentation for more info.
func (u *WorkflowBlockUpsertBulk) Update(set func(*WorkflowBlockUpsert)) *WorkflowBlockUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&WorkflowBlockUpsert{UpdateSet: update})
	}))
	return u
}

// SetType sets the "type" field.
func (u *WorkflowBlockUpsertBulk) SetType(v string) *WorkflowBlockUpsertBulk {
	return u.Update(func(s *WorkflowBlockUpsert) {
		s.SetType(v)
	})
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *WorkflowBlockUpsertBulk) UpdateType() *WorkflowBlockUpsertBulk {
	return u.Update(func(s *WorkflowBlockUpsert) {
		s.UpdateType()
	})
}

// SetName sets the "name" field.
func (u *WorkflowBlockUpsertBulk) SetName(v string) *WorkflowBlockUpsertBulk {
	return u.Update(func(s *WorkflowBlockUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *WorkflowBlockUpsertBulk) UpdateName() *WorkflowBlockUpsertBulk {
	return u.Update(func(s *WorkflowBlockUpsert) {
		s.UpdateName()
	})
}

// SetPositionX sets the "position_x" field.
func (u *WorkflowBlockUpsertBulk) SetPositionX(v float64) *WorkflowBlockUpsertBulk {
	return u.Update(func(s *WorkflowBlockUpsert) {
		s.SetPositionX(v)
	})
}

// AddPositionX adds v to the "position_x" field.
func (u *WorkflowBlockUpsertBulk) AddPositionX(v float64) *WorkflowBlockUpsertBulk {
	return u.Update(func(s *WorkflowBlockUpsert) {
		s.AddPositionX(v)
	})
}

// UpdatePositionX sets the "position_x" field to the value that was provided on create.
func (u *WorkflowBlockUpsertBulk) UpdatePositionX() *WorkflowBlockUpsertBulk {
	return u.Update(func(s *WorkflowBlockUpsert) {
		s.UpdatePositionX()
	})
}

// SetPositionY sets the "position_y" field.
func (u *WorkflowBlockUpsertBulk) SetPositionY(v float64) *WorkflowBlockUpsertBulk {
	return u.Update(func(s *WorkflowBlockUpsert) {
		s.SetPositionY(v)
	})
}

// AddPositionY adds v to the "position_y" field.
func (u *WorkflowBlockUpsertBulk) AddPositionY(v float64) *WorkflowBlockUpsertBulk {
	return u.Update(func(s *WorkflowBlockUpsert) {
		s.AddPositionY(v)
	})
}

// UpdatePositionY sets the "position_y" field to the value that was provided on create.
func (u *WorkflowBlockUpsertBulk) UpdatePositionY() *WorkflowBlockUpsertBulk {
	return u.Update(func(s *WorkflowBlockUpsert) {
		s.UpdatePositionY()
	})
}

// SetEnabled sets the "enabled" field.
func (u *WorkflowBlockUpsertBulk) SetEnabled(v bool) *WorkflowBlockUpsertBulk {
	return u.Update(func(s *WorkflowBlockUpsert) {
		s.SetEnabled(v)
	})
}

// UpdateEnabled sets the "enabled" field to the value that was provided on create.
func (u *WorkflowBlockUpsertBulk) UpdateEnabled() *WorkflowBlockUpsertBulk {
	return u.Update(func(s *WorkflowBlockUpsert) {
		s.UpdateEnabled()
	})
}

// SetParentID sets the "parent_id" field.
func (u *WorkflowBlockUpsertBulk) SetParentID(v string) *WorkflowBlockUpsertBulk {
	return u.Update(func(s *WorkflowBlockUpsert) {
		s.SetParentID(v)
	})
}

// UpdateParentID sets the "parent_id" field to the value that was provided on create.
func (u *WorkflowBlockUpsertBulk) UpdateParentID() *WorkflowBlockUpsertBulk {
	return u.Update(func(s *WorkflowBlockUpsert) {
		s.UpdateParentID()
	})
}

// ClearParentID clears the value of the "parent_id" field.
func (u *WorkflowBlockUpsertBulk) ClearParentID() *WorkflowBlockUpsertBulk {
	return u.Update(func(s *WorkflowBlockUpsert) {
		s.ClearParentID()
	})
}

// SetSubBlocks sets the "sub_blocks" field.
func (u *WorkflowBlockUpsertBulk) SetSubBlocks(v map[string]models.Subblock) *WorkflowBlockUpsertBulk {
	return u.Update(func(s *WorkflowBlockUpsert) {
		s.SetSubBlocks(v)
	})
}

// UpdateSubBlocks sets the "sub_blocks" field to the value that was provided on create.
func (u *WorkflowBlockUpsertBulk) UpdateSubBlocks() *WorkflowBlockUpsertBulk {
	return u.Update(func(s *WorkflowBlockUpsert) {
		s.UpdateSubBlocks()
	})
}

// ClearSubBlocks clears the value of the "sub_blocks" field.
func (u *WorkflowBlockUpsertBulk) ClearSubBlocks() *WorkflowBlockUpsertBulk {
	return u.Update(func(s *WorkflowBlockUpsert) {
		s.ClearSubBlocks()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *WorkflowBlockUpsertBulk) SetUpdatedAt(v time.Time) *WorkflowBlockUpsertBulk {
	return u.Update(func(s *WorkflowBlockUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *WorkflowBlockUpsertBulk) UpdateUpdatedAt() *WorkflowBlockUpsertBulk {
	return u.Update(func(s *WorkflowBlockUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *WorkflowBlockUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the WorkflowBlockCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for WorkflowBlockCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *WorkflowBlockUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
