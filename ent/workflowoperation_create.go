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
	"github.com/weft-labs/weft/ent/workflowoperation"
)

// WorkflowOperationCreate is the builder for creating a WorkflowOperation entity.
type WorkflowOperationCreate struct {
	config
	mutation *WorkflowOperationMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetWorkflowID sets the "workflow_id" field.
func (_c *WorkflowOperationCreate) SetWorkflowID(v string) *WorkflowOperationCreate {
	_c.mutation.SetWorkflowID(v)
	return _c
}

// SetOperation sets the "operation" field.
func (_c *WorkflowOperationCreate) SetOperation(v string) *WorkflowOperationCreate {
	_c.mutation.SetOperation(v)
	return _c
}

// SetTarget sets the "target" field.
func (_c *WorkflowOperationCreate) SetTarget(v string) *WorkflowOperationCreate {
	_c.mutation.SetTarget(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *WorkflowOperationCreate) SetPayload(v map[string]interface{}) *WorkflowOperationCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *WorkflowOperationCreate) SetUserID(v string) *WorkflowOperationCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetClientTimestamp sets the "client_timestamp" field.
func (_c *WorkflowOperationCreate) SetClientTimestamp(v int64) *WorkflowOperationCreate {
	_c.mutation.SetClientTimestamp(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *WorkflowOperationCreate) SetCreatedAt(v time.Time) *WorkflowOperationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WorkflowOperationCreate) SetNillableCreatedAt(v *time.Time) *WorkflowOperationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *WorkflowOperationCreate) SetID(v string) *WorkflowOperationCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetWorkflow sets the "workflow" edge to the Workflow entity.
func (_c *WorkflowOperationCreate) SetWorkflow(v *Workflow) *WorkflowOperationCreate {
	return _c.SetWorkflowID(v.ID)
}

// Mutation returns the WorkflowOperationMutation object of the builder.
func (_c *WorkflowOperationCreate) Mutation() *WorkflowOperationMutation {
	return _c.mutation
}

// Save creates the WorkflowOperation in the database.
func (_c *WorkflowOperationCreate) Save(ctx context.Context) (*WorkflowOperation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WorkflowOperationCreate) SaveX(ctx context.Context) *WorkflowOperation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkflowOperationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkflowOperationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WorkflowOperationCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := workflowoperation.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WorkflowOperationCreate) check() error {
	if _, ok := _c.mutation.WorkflowID(); !ok {
		return &ValidationError{Name: "workflow_id", err: errors.New(`ent: missing required field "WorkflowOperation.workflow_id"`)}
	}
	if _, ok := _c.mutation.Operation(); !ok {
		return &ValidationError{Name: "operation", err: errors.New(`ent: missing required field "WorkflowOperation.operation"`)}
	}
	if _, ok := _c.mutation.Target(); !ok {
		return &ValidationError{Name: "target", err: errors.New(`ent: missing required field "WorkflowOperation.target"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "WorkflowOperation.user_id"`)}
	}
	if _, ok := _c.mutation.ClientTimestamp(); !ok {
		return &ValidationError{Name: "client_timestamp", err: errors.New(`ent: missing required field "WorkflowOperation.client_timestamp"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "WorkflowOperation.created_at"`)}
	}
	if len(_c.mutation.WorkflowIDs()) == 0 {
		return &ValidationError{Name: "workflow", err: errors.New(`ent: missing required edge "WorkflowOperation.workflow"`)}
	}
	return nil
}

func (_c *WorkflowOperationCreate) sqlSave(ctx context.Context) (*WorkflowOperation, error) {
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
			return nil, fmt.Errorf("unexpected WorkflowOperation.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *WorkflowOperationCreate) createSpec() (*WorkflowOperation, *sqlgraph.CreateSpec) {
	var (
		_node = &WorkflowOperation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(workflowoperation.Table, sqlgraph.NewFieldSpec(workflowoperation.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Operation(); ok {
		_spec.SetField(workflowoperation.FieldOperation, field.TypeString, value)
		_node.Operation = value
	}
	if value, ok := _c.mutation.Target(); ok {
		_spec.SetField(workflowoperation.FieldTarget, field.TypeString, value)
		_node.Target = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(workflowoperation.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(workflowoperation.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.ClientTimestamp(); ok {
		_spec.SetField(workflowoperation.FieldClientTimestamp, field.TypeInt64, value)
		_node.ClientTimestamp = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(workflowoperation.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.WorkflowIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   workflowoperation.WorkflowTable,
			Columns: []string{workflowoperation.WorkflowColumn},
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
//	client.WorkflowOperation.Create().
//		SetWorkflowID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.WorkflowOperationUpsert) {
//			SetWorkflowID(v+v).
//		}).
//		Exec(ctx)
func (_c *WorkflowOperationCreate) OnConflict(opts ...sql.ConflictOption) *WorkflowOperationUpsertOne {
	_c.conflict = opts
	return &WorkflowOperationUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.WorkflowOperation.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *WorkflowOperationCreate) OnConflictColumns(columns ...string) *WorkflowOperationUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &WorkflowOperationUpsertOne{
		create: _c,
	}
}

type (
	// WorkflowOperationUpsertOne is the builder for "upsert"-ing
	//  one WorkflowOperation node.
	WorkflowOperationUpsertOne struct {
		create *WorkflowOperationCreate
	}

	// WorkflowOperationUpsert is the "OnConflict" setter.
	WorkflowOperationUpsert struct {
		*sql.UpdateSet
	}
)

// SetOperation sets the "operation" field.
func (u *WorkflowOperationUpsert) SetOperation(v string) *WorkflowOperationUpsert {
	u.Set(workflowoperation.FieldOperation, v)
	return u
}

// UpdateOperation sets the "operation" field to the value that was provided on create.
func (u *WorkflowOperationUpsert) UpdateOperation() *WorkflowOperationUpsert {
	u.SetExcluded(workflowoperation.FieldOperation)
	return u
}

// SetTarget sets the "target" field.
func (u *WorkflowOperationUpsert) SetTarget(v string) *WorkflowOperationUpsert {
	u.Set(workflowoperation.FieldTarget, v)
	return u
}

// UpdateTarget sets the "target" field to the value that was provided on create.
func (u *WorkflowOperationUpsert) UpdateTarget() *WorkflowOperationUpsert {
	u.SetExcluded(workflowoperation.FieldTarget)
	return u
}

// SetPayload sets the "payload" field.
func (u *WorkflowOperationUpsert) SetPayload(v map[string]interface{}) *WorkflowOperationUpsert {
	u.Set(workflowoperation.FieldPayload, v)
	return u
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *WorkflowOperationUpsert) UpdatePayload() *WorkflowOperationUpsert {
	u.SetExcluded(workflowoperation.FieldPayload)
	return u
}

// ClearPayload clears the value of the "payload" field.
func (u *WorkflowOperationUpsert) ClearPayload() *WorkflowOperationUpsert {
	u.SetNull(workflowoperation.FieldPayload)
	return u
}

// SetUserID sets the "user_id" field.
func (u *WorkflowOperationUpsert) SetUserID(v string) *WorkflowOperationUpsert {
	u.Set(workflowoperation.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *WorkflowOperationUpsert) UpdateUserID() *WorkflowOperationUpsert {
	u.SetExcluded(workflowoperation.FieldUserID)
	return u
}

// SetClientTimestamp sets the "client_timestamp" field.
func (u *WorkflowOperationUpsert) SetClientTimestamp(v int64) *WorkflowOperationUpsert {
	u.Set(workflowoperation.FieldClientTimestamp, v)
	return u
}

// UpdateClientTimestamp sets the "client_timestamp" field to the value that was provided on create.
func (u *WorkflowOperationUpsert) UpdateClientTimestamp() *WorkflowOperationUpsert {
	u.SetExcluded(workflowoperation.FieldClientTimestamp)
	return u
}

// AddClientTimestamp adds v to the "client_timestamp" field.
func (u *WorkflowOperationUpsert) AddClientTimestamp(v int64) *WorkflowOperationUpsert {
	u.Add(workflowoperation.FieldClientTimestamp, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.WorkflowOperation.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(workflowoperation.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *WorkflowOperationUpsertOne) UpdateNewValues() *WorkflowOperationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(workflowoperation.FieldID)
		}
		if _, exists := u.create.mutation.WorkflowID(); exists {
			s.SetIgnore(workflowoperation.FieldWorkflowID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(workflowoperation.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.WorkflowOperation.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *WorkflowOperationUpsertOne) Ignore() *WorkflowOperationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *WorkflowOperationUpsertOne) DoNothing() *WorkflowOperationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the WorkflowOperationCreate.OnConflict
// documentation for more info.
func (u *WorkflowOperationUpsertOne) Update(set func(*WorkflowOperationUpsert)) *WorkflowOperationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&WorkflowOperationUpsert{UpdateSet: update})
	}))
	return u
}

// SetOperation sets the "operation" field.
func (u *WorkflowOperationUpsertOne) SetOperation(v string) *WorkflowOperationUpsertOne {
	return u.Update(func(s *WorkflowOperationUpsert) {
		s.SetOperation(v)
	})
}

// UpdateOperation sets the "operation" field to the value that was provided on create.
func (u *WorkflowOperationUpsertOne) UpdateOperation() *WorkflowOperationUpsertOne {
	return u.Update(func(s *WorkflowOperationUpsert) {
		s.UpdateOperation()
	})
}

// SetTarget sets the "target" field.
func (u *WorkflowOperationUpsertOne) SetTarget(v string) *WorkflowOperationUpsertOne {
	return u.Update(func(s *WorkflowOperationUpsert) {
		s.SetTarget(v)
	})
}

// UpdateTarget sets the "target" field to the value that was provided on create.
func (u *WorkflowOperationUpsertOne) UpdateTarget() *WorkflowOperationUpsertOne {
	return u.Update(func(s *WorkflowOperationUpsert) {
		s.UpdateTarget()
	})
}

// SetPayload sets the "payload" field.
func (u *WorkflowOperationUpsertOne) SetPayload(v map[string]interface{}) *WorkflowOperationUpsertOne {
	return u.Update(func(s *WorkflowOperationUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *WorkflowOperationUpsertOne) UpdatePayload() *WorkflowOperationUpsertOne {
	return u.Update(func(s *WorkflowOperationUpsert) {
		s.UpdatePayload()
	})
}

// ClearPayload clears the value of the "payload" field.
func (u *WorkflowOperationUpsertOne) ClearPayload() *WorkflowOperationUpsertOne {
	return u.Update(func(s *WorkflowOperationUpsert) {
		s.ClearPayload()
	})
}

// SetUserID sets the "user_id" field.
func (u *WorkflowOperationUpsertOne) SetUserID(v string) *WorkflowOperationUpsertOne {
	return u.Update(func(s *WorkflowOperationUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *WorkflowOperationUpsertOne) UpdateUserID() *WorkflowOperationUpsertOne {
	return u.Update(func(s *WorkflowOperationUpsert) {
		s.UpdateUserID()
	})
}

// SetClientTimestamp sets the "client_timestamp" field.
func (u *WorkflowOperationUpsertOne) SetClientTimestamp(v int64) *WorkflowOperationUpsertOne {
	return u.Update(func(s *WorkflowOperationUpsert) {
		s.SetClientTimestamp(v)
	})
}

// AddClientTimestamp adds v to the "client_timestamp" field.
func (u *WorkflowOperationUpsertOne) AddClientTimestamp(v int64) *WorkflowOperationUpsertOne {
	return u.Update(func(s *WorkflowOperationUpsert) {
		s.AddClientTimestamp(v)
	})
}

// UpdateClientTimestamp sets the "client_timestamp" field to the value that was provided on create.
func (u *WorkflowOperationUpsertOne) UpdateClientTimestamp() *WorkflowOperationUpsertOne {
	return u.Update(func(s *WorkflowOperationUpsert) {
		s.UpdateClientTimestamp()
	})
}

// Exec executes the query.
func (u *WorkflowOperationUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for WorkflowOperationCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *WorkflowOperationUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *WorkflowOperationUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: WorkflowOperationUpsertOne.ID is not supported by MySQL driver. Use WorkflowOperationUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *WorkflowOperationUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// WorkflowOperationCreateBulk is the builder for creating many WorkflowOperation entities in bulk.
type WorkflowOperationCreateBulk struct {
	config
	err      error
	builders []*WorkflowOperationCreate
	conflict []sql.ConflictOption
}

// Save creates the WorkflowOperation entities in the database.
func (_c *WorkflowOperationCreateBulk) Save(ctx context.Context) ([]*WorkflowOperation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WorkflowOperation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WorkflowOperationMutation)
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
func (_c *WorkflowOperationCreateBulk) SaveX(ctx context.Context) []*WorkflowOperation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkflowOperationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkflowOperationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.WorkflowOperation.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.WorkflowOperationUpsert) {
//			SetWorkflowID(v+v).
//		}).
//		Exec(ctx)
func (_c *WorkflowOperationCreateBulk) OnConflict(opts ...sql.ConflictOption) *WorkflowOperationUpsertBulk {
	_c.conflict = opts
	return &WorkflowOperationUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.WorkflowOperation.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *WorkflowOperationCreateBulk) OnConflictColumns(columns ...string) *WorkflowOperationUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &WorkflowOperationUpsertBulk{
		create: _c,
	}
}

// WorkflowOperationUpsertBulk is the builder for "upsert"-ing
// a bulk of WorkflowOperation nodes.
type WorkflowOperationUpsertBulk struct {
	create *WorkflowOperationCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.WorkflowOperation.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(workflowoperation.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *WorkflowOperationUpsertBulk) UpdateNewValues() *WorkflowOperationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(workflowoperation.FieldID)
			}
			if _, exists := b.mutation.WorkflowID(); exists {
				s.SetIgnore(workflowoperation.FieldWorkflowID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(workflowoperation.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.WorkflowOperation.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *WorkflowOperationUpsertBulk) Ignore() *WorkflowOperationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *WorkflowOperationUpsertBulk) DoNothing() *WorkflowOperationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the WorkflowOperationCreateBulk.OnConflict
// documentation for more info.
func (u *WorkflowOperationUpsertBulk) Update(set func(*WorkflowOperationUpsert)) *WorkflowOperationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&WorkflowOperationUpsert{UpdateSet: update})
	}))
	return u
}

// SetOperation sets the "operation" field.
func (u *WorkflowOperationUpsertBulk) SetOperation(v string) *WorkflowOperationUpsertBulk {
	return u.Update(func(s *WorkflowOperationUpsert) {
		s.SetOperation(v)
	})
}

// UpdateOperation sets the "operation" field to the value that was provided on create.
func (u *WorkflowOperationUpsertBulk) UpdateOperation() *WorkflowOperationUpsertBulk {
	return u.Update(func(s *WorkflowOperationUpsert) {
		s.UpdateOperation()
	})
}

// SetTarget sets the "target" field.
func (u *WorkflowOperationUpsertBulk) SetTarget(v string) *WorkflowOperationUpsertBulk {
	return u.Update(func(s *WorkflowOperationUpsert) {
		s.SetTarget(v)
	})
}

// UpdateTarget sets the "target" field to the value that was provided on create.
func (u *WorkflowOperationUpsertBulk) UpdateTarget() *WorkflowOperationUpsertBulk {
	return u.Update(func(s *WorkflowOperationUpsert) {
		s.UpdateTarget()
	})
}

// SetPayload sets the "payload" field.
func (u *WorkflowOperationUpsertBulk) SetPayload(v map[string]interface{}) *WorkflowOperationUpsertBulk {
	return u.Update(func(s *WorkflowOperationUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *WorkflowOperationUpsertBulk) UpdatePayload() *WorkflowOperationUpsertBulk {
	return u.Update(func(s *WorkflowOperationUpsert) {
		s.UpdatePayload()
	})
}

// ClearPayload clears the value of the "payload" field.
func (u *WorkflowOperationUpsertBulk) ClearPayload() *WorkflowOperationUpsertBulk {
	return u.Update(func(s *WorkflowOperationUpsert) {
		s.ClearPayload()
	})
}

// SetUserID sets the "user_id" field.
func (u *WorkflowOperationUpsertBulk) SetUserID(v string) *WorkflowOperationUpsertBulk {
	return u.Update(func(s *WorkflowOperationUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *WorkflowOperationUpsertBulk) UpdateUserID() *WorkflowOperationUpsertBulk {
	return u.Update(func(s *WorkflowOperationUpsert) {
		s.UpdateUserID()
	})
}

// SetClientTimestamp sets the "client_timestamp" field.
func (u *WorkflowOperationUpsertBulk) SetClientTimestamp(v int64) *WorkflowOperationUpsertBulk {
	return u.Update(func(s *WorkflowOperationUpsert) {
		s.SetClientTimestamp(v)
	})
}

// AddClientTimestamp adds v to the "client_timestamp" field.
func (u *WorkflowOperationUpsertBulk) AddClientTimestamp(v int64) *WorkflowOperationUpsertBulk {
	return u.Update(func(s *WorkflowOperationUpsert) {
		s.AddClientTimestamp(v)
	})
}

// UpdateClientTimestamp sets the "client_timestamp" field to the value that was provided on create.
func (u *WorkflowOperationUpsertBulk) UpdateClientTimestamp() *WorkflowOperationUpsertBulk {
	return u.Update(func(s *WorkflowOperationUpsert) {
		s.UpdateClientTimestamp()
	})
}

// Exec executes the query.
func (u *WorkflowOperationUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the WorkflowOperationCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for WorkflowOperationCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *WorkflowOperationUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
