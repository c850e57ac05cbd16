// Code generated by ent, DO NOT EDIT.

package workflowedge

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/weft-labs/weft/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldContainsFold(FieldID, id))
}

// WorkflowID applies equality check predicate on the "workflow_id" field. It's identical to WorkflowIDEQ.
func WorkflowID(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldEQ(FieldWorkflowID, v))
}

// SourceBlockID applies equality check predicate on the "source_block_id" field. It's identical to SourceBlockIDEQ.
func SourceBlockID(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldEQ(FieldSourceBlockID, v))
}

// TargetBlockID applies equality check predicate on the "target_block_id" field. It's identical to TargetBlockIDEQ.
func TargetBlockID(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldEQ(FieldTargetBlockID, v))
}

// SourceHandle applies equality check predicate on the "source_handle" field. It's identical to SourceHandleEQ.
func SourceHandle(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldEQ(FieldSourceHandle, v))
}

// TargetHandle applies equality check predicate on the "target_handle" field. It's identical to TargetHandleEQ.
func TargetHandle(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldEQ(FieldTargetHandle, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldEQ(FieldCreatedAt, v))
}

// WorkflowIDEQ applies the EQ predicate on the "workflow_id" field.
func WorkflowIDEQ(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldEQ(FieldWorkflowID, v))
}

// WorkflowIDNEQ applies the NEQ predicate on the "workflow_id" field.
func WorkflowIDNEQ(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldNEQ(FieldWorkflowID, v))
}

// WorkflowIDIn applies the In predicate on the "workflow_id" field.
func WorkflowIDIn(vs ...string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldIn(FieldWorkflowID, vs...))
}

// WorkflowIDNotIn applies the NotIn predicate on the "workflow_id" field.
func WorkflowIDNotIn(vs ...string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldNotIn(FieldWorkflowID, vs...))
}

// WorkflowIDGT applies the GT predicate on the "workflow_id" field.
func WorkflowIDGT(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldGT(FieldWorkflowID, v))
}

// WorkflowIDGTE applies the GTE predicate on the "workflow_id" field.
func WorkflowIDGTE(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldGTE(FieldWorkflowID, v))
}

// WorkflowIDLT applies the LT predicate on the "workflow_id" field.
func WorkflowIDLT(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldLT(FieldWorkflowID, v))
}

// WorkflowIDLTE applies the LTE predicate on the "workflow_id" field.
func WorkflowIDLTE(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldLTE(FieldWorkflowID, v))
}

// WorkflowIDContains applies the Contains predicate on the "workflow_id" field.
func WorkflowIDContains(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldContains(FieldWorkflowID, v))
}

// WorkflowIDHasPrefix applies the HasPrefix predicate on the "workflow_id" field.
func WorkflowIDHasPrefix(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldHasPrefix(FieldWorkflowID, v))
}

// WorkflowIDHasSuffix applies the HasSuffix predicate on the "workflow_id" field.
func WorkflowIDHasSuffix(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldHasSuffix(FieldWorkflowID, v))
}

// WorkflowIDEqualFold applies the EqualFold predicate on the "workflow_id" field.
func WorkflowIDEqualFold(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldEqualFold(FieldWorkflowID, v))
}

// WorkflowIDContainsFold applies the ContainsFold predicate on the "workflow_id" field.
func WorkflowIDContainsFold(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldContainsFold(FieldWorkflowID, v))
}

// SourceBlockIDEQ applies the EQ predicate on the "source_block_id" field.
func SourceBlockIDEQ(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldEQ(FieldSourceBlockID, v))
}

// SourceBlockIDNEQ applies the NEQ predicate on the "source_block_id" field.
func SourceBlockIDNEQ(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldNEQ(FieldSourceBlockID, v))
}

// SourceBlockIDIn applies the In predicate on the "source_block_id" field.
func SourceBlockIDIn(vs ...string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldIn(FieldSourceBlockID, vs...))
}

// SourceBlockIDNotIn applies the NotIn predicate on the "source_block_id" field.
func SourceBlockIDNotIn(vs ...string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldNotIn(FieldSourceBlockID, vs...))
}

// SourceBlockIDGT applies the GT predicate on the "source_block_id" field.
func SourceBlockIDGT(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldGT(FieldSourceBlockID, v))
}

// SourceBlockIDGTE applies the GTE predicate on the "source_block_id" field.
func SourceBlockIDGTE(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldGTE(FieldSourceBlockID, v))
}

// SourceBlockIDLT applies the LT predicate on the "source_block_id" field.
func SourceBlockIDLT(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldLT(FieldSourceBlockID, v))
}

// SourceBlockIDLTE applies the LTE predicate on the "source_block_id" field.
func SourceBlockIDLTE(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldLTE(FieldSourceBlockID, v))
}

// SourceBlockIDContains applies the Contains predicate on the "source_block_id" field.
func SourceBlockIDContains(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldContains(FieldSourceBlockID, v))
}

// SourceBlockIDHasPrefix applies the HasPrefix predicate on the "source_block_id" field.
func SourceBlockIDHasPrefix(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldHasPrefix(FieldSourceBlockID, v))
}

// SourceBlockIDHasSuffix applies the HasSuffix predicate on the "source_block_id" field.
func SourceBlockIDHasSuffix(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldHasSuffix(FieldSourceBlockID, v))
}

// SourceBlockIDEqualFold applies the EqualFold predicate on the "source_block_id" field.
func SourceBlockIDEqualFold(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldEqualFold(FieldSourceBlockID, v))
}

// SourceBlockIDContainsFold applies the ContainsFold predicate on the "source_block_id" field.
func SourceBlockIDContainsFold(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldContainsFold(FieldSourceBlockID, v))
}

// TargetBlockIDEQ applies the EQ predicate on the "target_block_id" field.
func TargetBlockIDEQ(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldEQ(FieldTargetBlockID, v))
}

// TargetBlockIDNEQ applies the NEQ predicate on the "target_block_id" field.
func TargetBlockIDNEQ(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldNEQ(FieldTargetBlockID, v))
}

// TargetBlockIDIn applies the In predicate on the "target_block_id" field.
func TargetBlockIDIn(vs ...string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldIn(FieldTargetBlockID, vs...))
}

// TargetBlockIDNotIn applies the NotIn predicate on the "target_block_id" field.
func TargetBlockIDNotIn(vs ...string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldNotIn(FieldTargetBlockID, vs...))
}

// TargetBlockIDGT applies the GT predicate on the "target_block_id" field.
func TargetBlockIDGT(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldGT(FieldTargetBlockID, v))
}

// TargetBlockIDGTE applies the GTE predicate on the "target_block_id" field.
func TargetBlockIDGTE(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldGTE(FieldTargetBlockID, v))
}

// TargetBlockIDLT applies the LT predicate on the "target_block_id" field.
func TargetBlockIDLT(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldLT(FieldTargetBlockID, v))
}

// TargetBlockIDLTE applies the LTE predicate on the "target_block_id" field.
func TargetBlockIDLTE(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldLTE(FieldTargetBlockID, v))
}

// TargetBlockIDContains applies the Contains predicate on the "target_block_id" field.
func TargetBlockIDContains(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldContains(FieldTargetBlockID, v))
}

// TargetBlockIDHasPrefix applies the HasPrefix predicate on the "target_block_id" field.
func TargetBlockIDHasPrefix(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldHasPrefix(FieldTargetBlockID, v))
}

// TargetBlockIDHasSuffix applies the HasSuffix predicate on the "target_block_id" field.
func TargetBlockIDHasSuffix(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldHasSuffix(FieldTargetBlockID, v))
}

// TargetBlockIDEqualFold applies the EqualFold predicate on the "target_block_id" field.
func TargetBlockIDEqualFold(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldEqualFold(FieldTargetBlockID, v))
}

// TargetBlockIDContainsFold applies the ContainsFold predicate on the "target_block_id" field.
func TargetBlockIDContainsFold(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldContainsFold(FieldTargetBlockID, v))
}

// SourceHandleEQ applies the EQ predicate on the "source_handle" field.
func SourceHandleEQ(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldEQ(FieldSourceHandle, v))
}

// SourceHandleNEQ applies the NEQ predicate on the "source_handle" field.
func SourceHandleNEQ(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldNEQ(FieldSourceHandle, v))
}

// SourceHandleIn applies the In predicate on the "source_handle" field.
func SourceHandleIn(vs ...string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldIn(FieldSourceHandle, vs...))
}

// SourceHandleNotIn applies the NotIn predicate on the "source_handle" field.
func SourceHandleNotIn(vs ...string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldNotIn(FieldSourceHandle, vs...))
}

// SourceHandleGT applies the GT predicate on the "source_handle" field.
func SourceHandleGT(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldGT(FieldSourceHandle, v))
}

// SourceHandleGTE applies the GTE predicate on the "source_handle" field.
func SourceHandleGTE(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldGTE(FieldSourceHandle, v))
}

// SourceHandleLT applies the LT predicate on the "source_handle" field.
func SourceHandleLT(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldLT(FieldSourceHandle, v))
}

// SourceHandleLTE applies the LTE predicate on the "source_handle" field.
func SourceHandleLTE(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldLTE(FieldSourceHandle, v))
}

// SourceHandleContains applies the Contains predicate on the "source_handle" field.
func SourceHandleContains(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldContains(FieldSourceHandle, v))
}

// SourceHandleHasPrefix applies the HasPrefix predicate on the "source_handle" field.
func SourceHandleHasPrefix(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldHasPrefix(FieldSourceHandle, v))
}

// SourceHandleHasSuffix applies the HasSuffix predicate on the "source_handle" field.
func SourceHandleHasSuffix(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldHasSuffix(FieldSourceHandle, v))
}

// SourceHandleIsNil applies the IsNil predicate on the "source_handle" field.
func SourceHandleIsNil() predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldIsNull(FieldSourceHandle))
}

// SourceHandleNotNil applies the NotNil predicate on the "source_handle" field.
func SourceHandleNotNil() predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldNotNull(FieldSourceHandle))
}

// SourceHandleEqualFold applies the EqualFold predicate on the "source_handle" field.
func SourceHandleEqualFold(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldEqualFold(FieldSourceHandle, v))
}

// SourceHandleContainsFold applies the ContainsFold predicate on the "source_handle" field.
func SourceHandleContainsFold(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldContainsFold(FieldSourceHandle, v))
}

// TargetHandleEQ applies the EQ predicate on the "target_handle" field.
func TargetHandleEQ(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldEQ(FieldTargetHandle, v))
}

// TargetHandleNEQ applies the NEQ predicate on the "target_handle" field.
func TargetHandleNEQ(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldNEQ(FieldTargetHandle, v))
}

// TargetHandleIn applies the In predicate on the "target_handle" field.
func TargetHandleIn(vs ...string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldIn(FieldTargetHandle, vs...))
}

// TargetHandleNotIn applies the NotIn predicate on the "target_handle" field.
func TargetHandleNotIn(vs ...string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldNotIn(FieldTargetHandle, vs...))
}

// TargetHandleGT applies the GT predicate on the "target_handle" field.
func TargetHandleGT(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldGT(FieldTargetHandle, v))
}

// TargetHandleGTE applies the GTE predicate on the "target_handle" field.
func TargetHandleGTE(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldGTE(FieldTargetHandle, v))
}

// TargetHandleLT applies the LT predicate on the "target_handle" field.
func TargetHandleLT(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldLT(FieldTargetHandle, v))
}

// TargetHandleLTE applies the LTE predicate on the "target_handle" field.
func TargetHandleLTE(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldLTE(FieldTargetHandle, v))
}

// TargetHandleContains applies the Contains predicate on the "target_handle" field.
func TargetHandleContains(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldContains(FieldTargetHandle, v))
}

// TargetHandleHasPrefix applies the HasPrefix predicate on the "target_handle" field.
func TargetHandleHasPrefix(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldHasPrefix(FieldTargetHandle, v))
}

// TargetHandleHasSuffix applies the HasSuffix predicate on the "target_handle" field.
func TargetHandleHasSuffix(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldHasSuffix(FieldTargetHandle, v))
}

// TargetHandleIsNil applies the IsNil predicate on the "target_handle" field.
func TargetHandleIsNil() predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldIsNull(FieldTargetHandle))
}

// TargetHandleNotNil applies the NotNil predicate on the "target_handle" field.
func TargetHandleNotNil() predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldNotNull(FieldTargetHandle))
}

// TargetHandleEqualFold applies the EqualFold predicate on the "target_handle" field.
func TargetHandleEqualFold(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldEqualFold(FieldTargetHandle, v))
}

// TargetHandleContainsFold applies the ContainsFold predicate on the "target_handle" field.
func TargetHandleContainsFold(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldContainsFold(FieldTargetHandle, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldLTE(FieldCreatedAt, v))
}

// HasWorkflow applies the HasEdge predicate on the "workflow" edge.
func HasWorkflow() predicate.WorkflowEdge {
	return predicate.WorkflowEdge(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, WorkflowTable, WorkflowColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWorkflowWith applies the HasEdge predicate on the "workflow" edge with a given conditions (other predicates).
func HasWorkflowWith(preds ...predicate.Workflow) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(func(s *sql.Selector) {
		step := newWorkflowStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.WorkflowEdge) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.WorkflowEdge) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.WorkflowEdge) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.NotPredicates(p))
}
