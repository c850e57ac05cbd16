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
	"github.com/weft-labs/weft/ent/workflow"
	"github.com/weft-labs/weft/ent/workflowblock"
	"github.com/weft-labs/weft/ent/workflowedge"
	"github.com/weft-labs/weft/ent/workflowoperation"
	"github.com/weft-labs/weft/pkg/models"
)

// WorkflowUpdate is the builder for updating Workflow entities.
type WorkflowUpdate struct {
	config
	hooks    []Hook
	mutation *WorkflowMutation
}

// Where appends a list predicates to the WorkflowUpdate builder.
func (_u *WorkflowUpdate) Where(ps ...predicate.Workflow) *WorkflowUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *WorkflowUpdate) SetUserID(v string) *WorkflowUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *WorkflowUpdate) SetNillableUserID(v *string) *WorkflowUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *WorkflowUpdate) SetName(v string) *WorkflowUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *WorkflowUpdate) SetNillableName(v *string) *WorkflowUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetVariables sets the "variables" field.
func (_u *WorkflowUpdate) SetVariables(v map[string]models.Variable) *WorkflowUpdate {
	_u.mutation.SetVariables(v)
	return _u
}

// ClearVariables clears the value of the "variables" field.
func (_u *WorkflowUpdate) ClearVariables() *WorkflowUpdate {
	_u.mutation.ClearVariables()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorkflowUpdate) SetUpdatedAt(v time.Time) *WorkflowUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *WorkflowUpdate) SetNillableUpdatedAt(v *time.Time) *WorkflowUpdate {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// AddBlockIDs adds the "blocks" edge to the WorkflowBlock entity by IDs.
func (_u *WorkflowUpdate) AddBlockIDs(ids ...string) *WorkflowUpdate {
	_u.mutation.AddBlockIDs(ids...)
	return _u
}

// AddBlocks adds the "blocks" edges to the WorkflowBlock entity.
func (_u *WorkflowUpdate) AddBlocks(v ...*WorkflowBlock) *WorkflowUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBlockIDs(ids...)
}

// AddWorkflowEdgeIDs adds the "workflow_edges" edge to the WorkflowEdge entity by IDs.
func (_u *WorkflowUpdate) AddWorkflowEdgeIDs(ids ...string) *WorkflowUpdate {
	_u.mutation.AddWorkflowEdgeIDs(ids...)
	return _u
}

// AddWorkflowEdges adds the "workflow_edges" edges to the WorkflowEdge entity.
func (_u *WorkflowUpdate) AddWorkflowEdges(v ...*WorkflowEdge) *WorkflowUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddWorkflowEdgeIDs(ids...)
}

// AddOperationIDs adds the "operations" edge to the WorkflowOperation entity by IDs.
func (_u *WorkflowUpdate) AddOperationIDs(ids ...string) *WorkflowUpdate {
	_u.mutation.AddOperationIDs(ids...)
	return _u
}

// AddOperations adds the "operations" edges to the WorkflowOperation entity.
func (_u *WorkflowUpdate) AddOperations(v ...*WorkflowOperation) *WorkflowUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddOperationIDs(ids...)
}

// Mutation returns the WorkflowMutation object of the builder.
func (_u *WorkflowUpdate) Mutation() *WorkflowMutation {
	return _u.mutation
}

// ClearBlocks clears all "blocks" edges to the WorkflowBlock entity.
func (_u *WorkflowUpdate) ClearBlocks() *WorkflowUpdate {
	_u.mutation.ClearBlocks()
	return _u
}

// RemoveBlockIDs removes the "blocks" edge to WorkflowBlock entities by IDs.
func (_u *WorkflowUpdate) RemoveBlockIDs(ids ...string) *WorkflowUpdate {
	_u.mutation.RemoveBlockIDs(ids...)
	return _u
}

// RemoveBlocks removes "blocks" edges to WorkflowBlock entities.
func (_u *WorkflowUpdate) RemoveBlocks(v ...*WorkflowBlock) *WorkflowUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBlockIDs(ids...)
}

// ClearWorkflowEdges clears all "workflow_edges" edges to the WorkflowEdge entity.
func (_u *WorkflowUpdate) ClearWorkflowEdges() *WorkflowUpdate {
	_u.mutation.ClearWorkflowEdges()
	return _u
}

// RemoveWorkflowEdgeIDs removes the "workflow_edges" edge to WorkflowEdge entities by IDs.
func (_u *WorkflowUpdate) RemoveWorkflowEdgeIDs(ids ...string) *WorkflowUpdate {
	_u.mutation.RemoveWorkflowEdgeIDs(ids...)
	return _u
}

// RemoveWorkflowEdges removes "workflow_edges" edges to WorkflowEdge entities.
func (_u *WorkflowUpdate) RemoveWorkflowEdges(v ...*WorkflowEdge) *WorkflowUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveWorkflowEdgeIDs(ids...)
}

// ClearOperations clears all "operations" edges to the WorkflowOperation entity.
func (_u *WorkflowUpdate) ClearOperations() *WorkflowUpdate {
	_u.mutation.ClearOperations()
	return _u
}

// RemoveOperationIDs removes the "operations" edge to WorkflowOperation entities by IDs.
func (_u *WorkflowUpdate) RemoveOperationIDs(ids ...string) *WorkflowUpdate {
	_u.mutation.RemoveOperationIDs(ids...)
	return _u
}

// RemoveOperations removes "operations" edges to WorkflowOperation entities.
func (_u *WorkflowUpdate) RemoveOperations(v ...*WorkflowOperation) *WorkflowUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveOperationIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WorkflowUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkflowUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WorkflowUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkflowUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *WorkflowUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(workflow.Table, workflow.Columns, sqlgraph.NewFieldSpec(workflow.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(workflow.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(workflow.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Variables(); ok {
		_spec.SetField(workflow.FieldVariables, field.TypeJSON, value)
	}
	if _u.mutation.VariablesCleared() {
		_spec.ClearField(workflow.FieldVariables, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(workflow.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.BlocksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.BlocksTable,
			Columns: []string{workflow.BlocksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflowblock.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBlocksIDs(); len(nodes) > 0 && !_u.mutation.BlocksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.BlocksTable,
			Columns: []string{workflow.BlocksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflowblock.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BlocksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.BlocksTable,
			Columns: []string{workflow.BlocksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflowblock.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.WorkflowEdgesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.WorkflowEdgesTable,
			Columns: []string{workflow.WorkflowEdgesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflowedge.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedWorkflowEdgesIDs(); len(nodes) > 0 && !_u.mutation.WorkflowEdgesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.WorkflowEdgesTable,
			Columns: []string{workflow.WorkflowEdgesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflowedge.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WorkflowEdgesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.WorkflowEdgesTable,
			Columns: []string{workflow.WorkflowEdgesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflowedge.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.OperationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.OperationsTable,
			Columns: []string{workflow.OperationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflowoperation.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedOperationsIDs(); len(nodes) > 0 && !_u.mutation.OperationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.OperationsTable,
			Columns: []string{workflow.OperationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflowoperation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OperationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.OperationsTable,
			Columns: []string{workflow.OperationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflowoperation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workflow.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WorkflowUpdateOne is the builder for updating a single Workflow entity.
type WorkflowUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WorkflowMutation
}

// SetUserID sets the "user_id" field.
func (_u *WorkflowUpdateOne) SetUserID(v string) *WorkflowUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *WorkflowUpdateOne) SetNillableUserID(v *string) *WorkflowUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *WorkflowUpdateOne) SetName(v string) *WorkflowUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *WorkflowUpdateOne) SetNillableName(v *string) *WorkflowUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetVariables sets the "variables" field.
func (_u *WorkflowUpdateOne) SetVariables(v map[string]models.Variable) *WorkflowUpdateOne {
	_u.mutation.SetVariables(v)
	return _u
}

// ClearVariables clears the value of the "variables" field.
func (_u *WorkflowUpdateOne) ClearVariables() *WorkflowUpdateOne {
	_u.mutation.ClearVariables()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorkflowUpdateOne) SetUpdatedAt(v time.Time) *WorkflowUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *WorkflowUpdateOne) SetNillableUpdatedAt(v *time.Time) *WorkflowUpdateOne {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// AddBlockIDs adds the "blocks" edge to the WorkflowBlock entity by IDs.
func (_u *WorkflowUpdateOne) AddBlockIDs(ids ...string) *WorkflowUpdateOne {
	_u.mutation.AddBlockIDs(ids...)
	return _u
}

// AddBlocks adds the "blocks" edges to the WorkflowBlock entity.
func (_u *WorkflowUpdateOne) AddBlocks(v ...*WorkflowBlock) *WorkflowUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBlockIDs(ids...)
}

// AddWorkflowEdgeIDs adds the "workflow_edges" edge to the WorkflowEdge entity by IDs.
func (_u *WorkflowUpdateOne) AddWorkflowEdgeIDs(ids ...string) *WorkflowUpdateOne {
	_u.mutation.AddWorkflowEdgeIDs(ids...)
	return _u
}

// AddWorkflowEdges adds the "workflow_edges" edges to the WorkflowEdge entity.
func (_u *WorkflowUpdateOne) AddWorkflowEdges(v ...*WorkflowEdge) *WorkflowUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddWorkflowEdgeIDs(ids...)
}

// AddOperationIDs adds the "operations" edge to the WorkflowOperation entity by IDs.
func (_u *WorkflowUpdateOne) AddOperationIDs(ids ...string) *WorkflowUpdateOne {
	_u.mutation.AddOperationIDs(ids...)
	return _u
}

// AddOperations adds the "operations" edges to the WorkflowOperation entity.
func (_u *WorkflowUpdateOne) AddOperations(v ...*WorkflowOperation) *WorkflowUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddOperationIDs(ids...)
}

// Mutation returns the WorkflowMutation object of the builder.
func (_u *WorkflowUpdateOne) Mutation() *WorkflowMutation {
	return _u.mutation
}

// ClearBlocks clears all "blocks" edges to the WorkflowBlock entity.
func (_u *WorkflowUpdateOne) ClearBlocks() *WorkflowUpdateOne {
	_u.mutation.ClearBlocks()
	return _u
}

// RemoveBlockIDs removes the "blocks" edge to WorkflowBlock entities by IDs.
func (_u *WorkflowUpdateOne) RemoveBlockIDs(ids ...string) *WorkflowUpdateOne {
	_u.mutation.RemoveBlockIDs(ids...)
	return _u
}

// RemoveBlocks removes "blocks" edges to WorkflowBlock entities.
func (_u *WorkflowUpdateOne) RemoveBlocks(v ...*WorkflowBlock) *WorkflowUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBlockIDs(ids...)
}

// ClearWorkflowEdges clears all "workflow_edges" edges to the WorkflowEdge entity.
func (_u *WorkflowUpdateOne) ClearWorkflowEdges() *WorkflowUpdateOne {
	_u.mutation.ClearWorkflowEdges()
	return _u
}

// RemoveWorkflowEdgeIDs removes the "workflow_edges" edge to WorkflowEdge entities by IDs.
func (_u *WorkflowUpdateOne) RemoveWorkflowEdgeIDs(ids ...string) *WorkflowUpdateOne {
	_u.mutation.RemoveWorkflowEdgeIDs(ids...)
	return _u
}

// RemoveWorkflowEdges removes "workflow_edges" edges to WorkflowEdge entities.
func (_u *WorkflowUpdateOne) RemoveWorkflowEdges(v ...*WorkflowEdge) *WorkflowUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveWorkflowEdgeIDs(ids...)
}

// ClearOperations clears all "operations" edges to the WorkflowOperation entity.
func (_u *WorkflowUpdateOne) ClearOperations() *WorkflowUpdateOne {
	_u.mutation.ClearOperations()
	return _u
}

// RemoveOperationIDs removes the "operations" edge to WorkflowOperation entities by IDs.
func (_u *WorkflowUpdateOne) RemoveOperationIDs(ids ...string) *WorkflowUpdateOne {
	_u.mutation.RemoveOperationIDs(ids...)
	return _u
}

// RemoveOperations removes "operations" edges to WorkflowOperation entities.
func (_u *WorkflowUpdateOne) RemoveOperations(v ...*WorkflowOperation) *WorkflowUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveOperationIDs(ids...)
}

// Where appends a list predicates to the WorkflowUpdate builder.
func (_u *WorkflowUpdateOne) Where(ps ...predicate.Workflow) *WorkflowUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WorkflowUpdateOne) Select(field string, fields ...string) *WorkflowUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Workflow entity.
func (_u *WorkflowUpdateOne) Save(ctx context.Context) (*Workflow, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkflowUpdateOne) SaveX(ctx context.Context) *Workflow {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WorkflowUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkflowUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *WorkflowUpdateOne) sqlSave(ctx context.Context) (_node *Workflow, err error) {
	_spec := sqlgraph.NewUpdateSpec(workflow.Table, workflow.Columns, sqlgraph.NewFieldSpec(workflow.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Workflow.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, workflow.FieldID)
		for _, f := range fields {
			if !workflow.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != workflow.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(workflow.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(workflow.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Variables(); ok {
		_spec.SetField(workflow.FieldVariables, field.TypeJSON, value)
	}
	if _u.mutation.VariablesCleared() {
		_spec.ClearField(workflow.FieldVariables, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(workflow.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.BlocksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.BlocksTable,
			Columns: []string{workflow.BlocksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflowblock.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBlocksIDs(); len(nodes) > 0 && !_u.mutation.BlocksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.BlocksTable,
			Columns: []string{workflow.BlocksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflowblock.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BlocksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.BlocksTable,
			Columns: []string{workflow.BlocksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflowblock.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.WorkflowEdgesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.WorkflowEdgesTable,
			Columns: []string{workflow.WorkflowEdgesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflowedge.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedWorkflowEdgesIDs(); len(nodes) > 0 && !_u.mutation.WorkflowEdgesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.WorkflowEdgesTable,
			Columns: []string{workflow.WorkflowEdgesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflowedge.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WorkflowEdgesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.WorkflowEdgesTable,
			Columns: []string{workflow.WorkflowEdgesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflowedge.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.OperationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.OperationsTable,
			Columns: []string{workflow.OperationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflowoperation.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedOperationsIDs(); len(nodes) > 0 && !_u.mutation.OperationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.OperationsTable,
			Columns: []string{workflow.OperationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflowoperation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OperationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.OperationsTable,
			Columns: []string{workflow.OperationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflowoperation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Workflow{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workflow.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
