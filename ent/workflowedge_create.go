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
	"github.com/weft-labs/weft/ent/workflowedge"
)

// WorkflowEdgeCreate is the builder for creating a WorkflowEdge entity.
type WorkflowEdgeCreate struct {
	config
	mutation *WorkflowEdgeMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetWorkflowID sets the "workflow_id" field.
func (_c *WorkflowEdgeCreate) SetWorkflowID(v string) *WorkflowEdgeCreate {
	_c.mutation.SetWorkflowID(v)
	return _c
}

// SetSourceBlockID sets the "source_block_id" field.
func (_c *WorkflowEdgeCreate) SetSourceBlockID(v string) *WorkflowEdgeCreate {
	_c.mutation.SetSourceBlockID(v)
	return _c
}

// SetTargetBlockID sets the "target_block_id" field.
func (_c *WorkflowEdgeCreate) SetTargetBlockID(v string) *WorkflowEdgeCreate {
	_c.mutation.SetTargetBlockID(v)
	return _c
}

// SetSourceHandle sets the "source_handle" field.
func (_c *WorkflowEdgeCreate) SetSourceHandle(v string) *WorkflowEdgeCreate {
	_c.mutation.SetSourceHandle(v)
	return _c
}

// SetNillableSourceHandle sets the "source_handle" field if the given value is not nil.
func (_c *WorkflowEdgeCreate) SetNillableSourceHandle(v *string) *WorkflowEdgeCreate {
	if v != nil {
		_c.SetSourceHandle(*v)
	}
	return _c
}

// SetTargetHandle sets the "target_handle" field.
func (_c *WorkflowEdgeCreate) SetTargetHandle(v string) *WorkflowEdgeCreate {
	_c.mutation.SetTargetHandle(v)
	return _c
}

// SetNillableTargetHandle sets the "target_handle" field if the given value is not nil.
func (_c *WorkflowEdgeCreate) SetNillableTargetHandle(v *string) *WorkflowEdgeCreate {
	if v != nil {
		_c.SetTargetHandle(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *WorkflowEdgeCreate) SetCreatedAt(v time.Time) *WorkflowEdgeCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WorkflowEdgeCreate) SetNillableCreatedAt(v *time.Time) *WorkflowEdgeCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *WorkflowEdgeCreate) SetID(v string) *WorkflowEdgeCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetWorkflow sets the "workflow" edge to the Workflow entity.
func (_c *WorkflowEdgeCreate) SetWorkflow(v *Workflow) *WorkflowEdgeCreate {
	return _c.SetWorkflowID(v.ID)
}

// Mutation returns the WorkflowEdgeMutation object of the builder.
func (_c *WorkflowEdgeCreate) Mutation() *WorkflowEdgeMutation {
	return _c.mutation
}

// Save creates the WorkflowEdge in the database.
func (_c *WorkflowEdgeCreate) Save(ctx context.Context) (*WorkflowEdge, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WorkflowEdgeCreate) SaveX(ctx context.Context) *WorkflowEdge {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkflowEdgeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkflowEdgeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WorkflowEdgeCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := workflowedge.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WorkflowEdgeCreate) check() error {
	if _, ok := _c.mutation.WorkflowID(); !ok {
		return &ValidationError{Name: "workflow_id", err: errors.New(`ent: missing required field "WorkflowEdge.workflow_id"`)}
	}
	if _, ok := _c.mutation.SourceBlockID(); !ok {
		return &ValidationError{Name: "source_block_id", err: errors.New(`ent: missing required field "WorkflowEdge.source_block_id"`)}
	}
	if _, ok := _c.mutation.TargetBlockID(); !ok {
		return &ValidationError{Name: "target_block_id", err: errors.New(`ent: missing required field "WorkflowEdge.target_block_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "WorkflowEdge.created_at"`)}
	}
	if len(_c.mutation.WorkflowIDs()) == 0 {
		return &ValidationError{Name: "workflow", err: errors.New(`ent: missing required edge "WorkflowEdge.workflow"`)}
	}
	return nil
}

func (_c *WorkflowEdgeCreate) sqlSave(ctx context.Context) (*WorkflowEdge, error) {
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
			return nil, fmt.Errorf("unexpected WorkflowEdge.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *WorkflowEdgeCreate) createSpec() (*WorkflowEdge, *sqlgraph.CreateSpec) {
	var (
		_node = &WorkflowEdge{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(workflowedge.Table, sqlgraph.NewFieldSpec(workflowedge.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SourceBlockID(); ok {
		_spec.SetField(workflowedge.FieldSourceBlockID, field.TypeString, value)
		_node.SourceBlockID = value
	}
	if value, ok := _c.mutation.TargetBlockID(); ok {
		_spec.SetField(workflowedge.FieldTargetBlockID, field.TypeString, value)
		_node.TargetBlockID = value
	}
	if value, ok := _c.mutation.SourceHandle(); ok {
		_spec.SetField(workflowedge.FieldSourceHandle, field.TypeString, value)
		_node.SourceHandle = &value
	}
	if value, ok := _c.mutation.TargetHandle(); ok {
		_spec.SetField(workflowedge.FieldTargetHandle, field.TypeString, value)
		_node.TargetHandle = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(workflowedge.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.WorkflowIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   workflowedge.WorkflowTable,
			Columns: []string{workflowedge.WorkflowColumn},
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
//	client.WorkflowEdge.Create().
//		SetWorkflowID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.WorkflowEdgeUpsert) {
//			SetWorkflowID(v+v).
//		}).
//		Exec(ctx)
func (_c *WorkflowEdgeCreate) OnConflict(opts ...sql.ConflictOption) *WorkflowEdgeUpsertOne {
	_c.conflict = opts
	return &WorkflowEdgeUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.WorkflowEdge.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *WorkflowEdgeCreate) OnConflictColumns(columns ...string) *WorkflowEdgeUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &WorkflowEdgeUpsertOne{
		create: _c,
	}
}

type (
	// WorkflowEdgeUpsertOne is the builder for "upsert"-ing
	//  one WorkflowEdge node.
	WorkflowEdgeUpsertOne struct {
		create *WorkflowEdgeCreate
	}

	// WorkflowEdgeUpsert is the "OnConflict" setter.
	WorkflowEdgeUpsert struct {
		*sql.UpdateSet
	}
)

// SetSourceBlockID sets the "source_block_id" field.
func (u *WorkflowEdgeUpsert) SetSourceBlockID(v string) *WorkflowEdgeUpsert {
	u.Set(workflowedge.FieldSourceBlockID, v)
	return u
}

// UpdateSourceBlockID sets the "source_block_id" field to the value that was provided on create.
func (u *WorkflowEdgeUpsert) UpdateSourceBlockID() *WorkflowEdgeUpsert {
	u.SetExcluded(workflowedge.FieldSourceBlockID)
	return u
}

// SetTargetBlockID sets the "target_block_id" field.
func (u *WorkflowEdgeUpsert) SetTargetBlockID(v string) *WorkflowEdgeUpsert {
	u.Set(workflowedge.FieldTargetBlockID, v)
	return u
}

// UpdateTargetBlockID sets the "target_block_id" field to the value that was provided on create.
func (u *WorkflowEdgeUpsert) UpdateTargetBlockID() *WorkflowEdgeUpsert {
	u.SetExcluded(workflowedge.FieldTargetBlockID)
	return u
}

// SetSourceHandle sets the "source_handle" field.
func (u *WorkflowEdgeUpsert) SetSourceHandle(v string) *WorkflowEdgeUpsert {
	u.Set(workflowedge.FieldSourceHandle, v)
	return u
}

// UpdateSourceHandle sets the "source_handle" field to the value that was provided on create.
func (u *WorkflowEdgeUpsert) UpdateSourceHandle() *WorkflowEdgeUpsert {
	u.SetExcluded(workflowedge.FieldSourceHandle)
	return u
}

// ClearSourceHandle clears the value of the "source_handle" field.
func (u *WorkflowEdgeUpsert) ClearSourceHandle() *WorkflowEdgeUpsert {
	u.SetNull(workflowedge.FieldSourceHandle)
	return u
}

// SetTargetHandle sets the "target_handle" field.
func (u *WorkflowEdgeUpsert) SetTargetHandle(v string) *WorkflowEdgeUpsert {
	u.Set(workflowedge.FieldTargetHandle, v)
	return u
}

// UpdateTargetHandle sets the "target_handle" field to the value that was provided on create.
func (u *WorkflowEdgeUpsert) UpdateTargetHandle() *WorkflowEdgeUpsert {
	u.SetExcluded(workflowedge.FieldTargetHandle)
	return u
}

// ClearTargetHandle clears the value of the "target_handle" field.
func (u *WorkflowEdgeUpsert) ClearTargetHandle() *WorkflowEdgeUpsert {
	u.SetNull(workflowedge.FieldTargetHandle)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.WorkflowEdge.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(workflowedge.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *WorkflowEdgeUpsertOne) UpdateNewValues() *WorkflowEdgeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(workflowedge.FieldID)
		}
		if _, exists := u.create.mutation.WorkflowID(); exists {
			s.SetIgnore(workflowedge.FieldWorkflowID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(workflowedge.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.WorkflowEdge.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *WorkflowEdgeUpsertOne) Ignore() *WorkflowEdgeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *WorkflowEdgeUpsertOne) DoNothing() *WorkflowEdgeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the WorkflowEdgeCreate.OnConflict
// documentation for more info.
func (u *WorkflowEdgeUpsertOne) Update(set func(*WorkflowEdgeUpsert)) *WorkflowEdgeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&WorkflowEdgeUpsert{UpdateSet: update})
	}))
	return u
}

// SetSourceBlockID sets the "source_block_id" field.
func (u *WorkflowEdgeUpsertOne) SetSourceBlockID(v string) *WorkflowEdgeUpsertOne {
	return u.Update(func(s *WorkflowEdgeUpsert) {
		s.SetSourceBlockID(v)
	})
}

// UpdateSourceBlockID sets the "source_block_id" field to the value that was provided on create.
func (u *WorkflowEdgeUpsertOne) UpdateSourceBlockID() *WorkflowEdgeUpsertOne {
	return u.Update(func(s *WorkflowEdgeUpsert) {
		s.UpdateSourceBlockID()
	})
}

// SetTargetBlockID sets the "target_block_id" field.
func (u *WorkflowEdgeUpsertOne) SetTargetBlockID(v string) *WorkflowEdgeUpsertOne {
	return u.Update(func(s *WorkflowEdgeUpsert) {
		s.SetTargetBlockID(v)
	})
}

// UpdateTargetBlockID sets the "target_block_id" field to the value that was provided on create.
func (u *WorkflowEdgeUpsertOne) UpdateTargetBlockID() *WorkflowEdgeUpsertOne {
	return u.Update(func(s *WorkflowEdgeUpsert) {
		s.UpdateTargetBlockID()
	})
}

// SetSourceHandle sets the "source_handle" field.
func (u *WorkflowEdgeUpsertOne) SetSourceHandle(v string) *WorkflowEdgeUpsertOne {
	return u.Update(func(s *WorkflowEdgeUpsert) {
		s.SetSourceHandle(v)
	})
}

// UpdateSourceHandle sets the "source_handle" field to the value that was provided on create.
func (u *WorkflowEdgeUpsertOne) UpdateSourceHandle() *WorkflowEdgeUpsertOne {
	return u.Update(func(s *WorkflowEdgeUpsert) {
		s.UpdateSourceHandle()
	})
}

// ClearSourceHandle clears the value of the "source_handle" field.
func (u *WorkflowEdgeUpsertOne) ClearSourceHandle() *WorkflowEdgeUpsertOne {
	return u.Update(func(s *WorkflowEdgeUpsert) {
		s.ClearSourceHandle()
	})
}

// SetTargetHandle sets the "target_handle" field.
func (u *WorkflowEdgeUpsertOne) SetTargetHandle(v string) *WorkflowEdgeUpsertOne {
	return u.Update(func(s *WorkflowEdgeUpsert) {
		s.SetTargetHandle(v)
	})
}

// UpdateTargetHandle sets the "target_handle" field to the value that was provided on create.
func (u *WorkflowEdgeUpsertOne) UpdateTargetHandle() *WorkflowEdgeUpsertOne {
	return u.Update(func(s *WorkflowEdgeUpsert) {
		s.UpdateTargetHandle()
	})
}

// ClearTargetHandle clears the value of the "target_handle" field.
func (u *WorkflowEdgeUpsertOne) ClearTargetHandle() *WorkflowEdgeUpsertOne {
	return u.Update(func(s *WorkflowEdgeUpsert) {
		s.ClearTargetHandle()
	})
}

// Exec executes the query.
func (u *WorkflowEdgeUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for WorkflowEdgeCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *WorkflowEdgeUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *WorkflowEdgeUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: WorkflowEdgeUpsertOne.ID is not supported by MySQL driver. Use WorkflowEdgeUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *WorkflowEdgeUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// WorkflowEdgeCreateBulk is the builder for creating many WorkflowEdge entities in bulk.
type WorkflowEdgeCreateBulk struct {
	config
	err      error
	builders []*WorkflowEdgeCreate
	conflict []sql.ConflictOption
}

// Save creates the WorkflowEdge entities in the database.
func (_c *WorkflowEdgeCreateBulk) Save(ctx context.Context) ([]*WorkflowEdge, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WorkflowEdge, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WorkflowEdgeMutation)
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
func (_c *WorkflowEdgeCreateBulk) SaveX(ctx context.Context) []*WorkflowEdge {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkflowEdgeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkflowEdgeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.WorkflowEdge.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.WorkflowEdgeUpsert) {
//			SetWorkflowID(v+v).
//		}).
//		Exec(ctx)
func (_c *WorkflowEdgeCreateBulk) OnConflict(opts ...sql.ConflictOption) *WorkflowEdgeUpsertBulk {
	_c.conflict = opts
	return &WorkflowEdgeUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.WorkflowEdge.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *WorkflowEdgeCreateBulk) OnConflictColumns(columns ...string) *WorkflowEdgeUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &WorkflowEdgeUpsertBulk{
		create: _c,
	}
}

// WorkflowEdgeUpsertBulk is the builder for "upsert"-ing
// a bulk of WorkflowEdge nodes.
type WorkflowEdgeUpsertBulk struct {
	create *WorkflowEdgeCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.WorkflowEdge.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(workflowedge.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *WorkflowEdgeUpsertBulk) UpdateNewValues() *WorkflowEdgeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(workflowedge.FieldID)
			}
			if _, exists := b.mutation.WorkflowID(); exists {
				s.SetIgnore(workflowedge.FieldWorkflowID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(workflowedge.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.WorkflowEdge.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *WorkflowEdgeUpsertBulk) Ignore() *WorkflowEdgeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *WorkflowEdgeUpsertBulk) DoNothing() *WorkflowEdgeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the WorkflowEdgeCreateBulk.OnConflict
// documentation for more info.
func (u *WorkflowEdgeUpsertBulk) Update(set func(*WorkflowEdgeUpsert)) *WorkflowEdgeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&WorkflowEdgeUpsert{UpdateSet: update})
	}))
	return u
}

// SetSourceBlockID sets the "source_block_id" field.
func (u *WorkflowEdgeUpsertBulk) SetSourceBlockID(v string) *WorkflowEdgeUpsertBulk {
	return u.Update(func(s *WorkflowEdgeUpsert) {
		s.SetSourceBlockID(v)
	})
}

// UpdateSourceBlockID sets the "source_block_id" field to the value that was provided on create.
func (u *WorkflowEdgeUpsertBulk) UpdateSourceBlockID() *WorkflowEdgeUpsertBulk {
	return u.Update(func(s *WorkflowEdgeUpsert) {
		s.UpdateSourceBlockID()
	})
}

// SetTargetBlockID sets the "target_block_id" field.
func (u *WorkflowEdgeUpsertBulk) SetTargetBlockID(v string) *WorkflowEdgeUpsertBulk {
	return u.Update(func(s *WorkflowEdgeUpsert) {
		s.SetTargetBlockID(v)
	})
}

// UpdateTargetBlockID sets the "target_block_id" field to the value that was provided on create.
func (u *WorkflowEdgeUpsertBulk) UpdateTargetBlockID() *WorkflowEdgeUpsertBulk {
	return u.Update(func(s *WorkflowEdgeUpsert) {
		s.UpdateTargetBlockID()
	})
}

// SetSourceHandle sets the "source_handle" field.
func (u *WorkflowEdgeUpsertBulk) SetSourceHandle(v string) *WorkflowEdgeUpsertBulk {
	return u.Update(func(s *WorkflowEdgeUpsert) {
		s.SetSourceHandle(v)
	})
}

// UpdateSourceHandle sets the "source_handle" field to the value that was provided on create.
func (u *WorkflowEdgeUpsertBulk) UpdateSourceHandle() *WorkflowEdgeUpsertBulk {
	return u.Update(func(s *WorkflowEdgeUpsert) {
		s.UpdateSourceHandle()
	})
}

// ClearSourceHandle clears the value of the "source_handle" field.
func (u *WorkflowEdgeUpsertBulk) ClearSourceHandle() *WorkflowEdgeUpsertBulk {
	return u.Update(func(s *WorkflowEdgeUpsert) {
		s.ClearSourceHandle()
	})
}

// SetTargetHandle sets the "target_handle" field.
func (u *WorkflowEdgeUpsertBulk) SetTargetHandle(v string) *WorkflowEdgeUpsertBulk {
	return u.Update(func(s *WorkflowEdgeUpsert) {
		s.SetTargetHandle(v)
	})
}

// UpdateTargetHandle sets the "target_handle" field to the value that was provided on create.
func (u *WorkflowEdgeUpsertBulk) UpdateTargetHandle() *WorkflowEdgeUpsertBulk {
	return u.Update(func(s *WorkflowEdgeUpsert) {
		s.UpdateTargetHandle()
	})
}

// ClearTargetHandle clears the value of the "target_handle" field.
func (u *WorkflowEdgeUpsertBulk) ClearTargetHandle() *WorkflowEdgeUpsertBulk {
	return u.Update(func(s *WorkflowEdgeUpsert) {
		s.ClearTargetHandle()
	})
}

// Exec executes the query.
func (u *WorkflowEdgeUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the WorkflowEdgeCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for WorkflowEdgeCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *WorkflowEdgeUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
