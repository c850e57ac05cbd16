// Code generated by ent, DO NOT EDIT.

package workflowoperation

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/weft-labs/weft/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.WorkflowOperation {
	return predicate.WorkflowOperation(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.WorkflowOperation {
	return predicate.WorkflowOperation(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.WorkflowOperation {
	return predicate.WorkflowOperation(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.WorkflowOperation {
	return predicate.WorkflowOperation(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.WorkflowOperation {
	return predicate.WorkflowOperation(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.WorkflowOperation {
	return predicate.WorkflowOperation(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.WorkflowOperation {
	return predicate.WorkflowOperation(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.WorkflowOperation {
	return predicate.WorkflowOperation(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.WorkflowOperation {
	return predicate.WorkflowOperation(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.WorkflowOperation {
	return predicate.WorkflowOperation(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.WorkflowOperation {
	return predicate.WorkflowOperation(sql.FieldContainsFold(FieldID, id))
}

// WorkflowID applies equality check predicate on the "workflow_id" field. It's identical to WorkflowIDEQ.
func WorkflowID(v string) predicate.WorkflowOperation {
	return predicate.WorkflowOperation(sql.FieldEQ(FieldWorkflowID, v))
}

// Operation applies equality check predicate on the "operation" field. It's identical to OperationEQ.
func Operation(v string) predicate.WorkflowOperation {
	return predicate.WorkflowOperation(sql.FieldEQ(FieldOperation, v))
}

// Target applies equality check predicate on the "target" field. It's identical to TargetEQ.
func Target(v string) predicate.WorkflowOperation {
	return predicate.WorkflowOperation(sql.FieldEQ(FieldTarget, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.WorkflowOperation {
	return predicate.WorkflowOperation(sql.FieldEQ(FieldUserID, v))
}

// ClientTimestamp applies equality check predicate on the "client_timestamp" field. It's identical to ClientTimestampEQ.
func ClientTimestamp(v int64) predicate.WorkflowOperation {
	return predicate.WorkflowOperation(sql.FieldEQ(FieldClientTimestamp, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.WorkflowOperation {
	return predicate.WorkflowOperation(sql.FieldEQ(FieldCreatedAt, v))
}

// WorkflowIDEQ applies the EQ predicate on the "workflow_id" field.
func WorkflowIDEQ(v string) predicate.WorkflowOperation {
	return predicate.WorkflowOperation(sql.FieldEQ(FieldWorkflowID, v))
}

// WorkflowIDNEQ applies the NEQ predicate on the "workflow_id" field.
func WorkflowIDNEQ(v string) predicate.WorkflowOperation {
	return predicate.WorkflowOperation(sql.FieldNEQ(FieldWorkflowID, v))
}

// WorkflowIDIn applies the In predicate on the "workflow_id" field.
func WorkflowIDIn(vs ...string) predicate.WorkflowOperation {
	return predicate.WorkflowOperation(sql.FieldIn(FieldWorkflowID, vs...))
}

// WorkflowIDNotIn applies the NotIn predicate on the "workflow_id" field.
func WorkflowIDNotIn(vs ...string) predicate.WorkflowOperation {
	return predicate.WorkflowOperation(sql.FieldNotIn(FieldWorkflowID, vs...))
}

// WorkflowIDGT applies the GT predicate on the "workflow_id" field.
func WorkflowIDGT(v string) predicate.WorkflowOperation {
	return predicate.WorkflowOperation(sql.FieldGT(FieldWorkflowID, v))
}

// WorkflowIDGTE applies the GTE predicate on the "workflow_id" field.
func WorkflowIDGTE(v string) predicate.WorkflowOperation {
	return predicate.WorkflowOperation(sql.FieldGTE(FieldWorkflowID, v))
}

// WorkflowIDLT applies the LT predicate on the "workflow_id" field.
func WorkflowIDLT(v string) predicate.WorkflowOperation {
	return predicate.WorkflowOperation(sql.FieldLT(FieldWorkflowID, v))
}

// WorkflowIDLTE applies the LTE predicate on the "workflow_id" field.
func WorkflowIDLTE(v string) predicate.WorkflowOperation {
	return predicate.WorkflowOperation(sql.FieldLTE(FieldWorkflowID, v))
}

// WorkflowIDContains applies the Contains predicate on the "workflow_id" field.
func WorkflowIDContains(v string) predicate.WorkflowOperation {
	return predicate.WorkflowOperation(sql.FieldContains(FieldWorkflowID, v))
}

// WorkflowIDHasPrefix applies the HasPrefix predicate on the "workflow_id" field.
func WorkflowIDHasPrefix(v string) predicate.WorkflowOperation {
	return predicate.WorkflowOperation(sql.FieldHasPrefix(FieldWorkflowID, v))
}

// WorkflowIDHasSuffix applies the HasSuffix predicate on the "workflow_id" field.
func WorkflowIDHasSuffix(v string) predicate.WorkflowOperation {
	return predicate.WorkflowOperation(sql.FieldHasSuffix(FieldWorkflowID, v))
}

// WorkflowIDEqualFold applies the EqualFold predicate on the "workflow_id" field.
func WorkflowIDEqualFold(v string) predicate.WorkflowOperation {
	return predicate.WorkflowOperation(sql.FieldEqualFold(FieldWorkflowID, v))
}

// WorkflowIDContainsFold applies the ContainsFold predicate on the "workflow_id" field.
func WorkflowIDContainsFold(v string) predicate.WorkflowOperation {
	return predicate.WorkflowOperation(sql.FieldContainsFold(FieldWorkflowID, v))
}

// OperationEQ applies the EQ predicate on the "operation" field.
func OperationEQ(v string) predicate.WorkflowOperation {
	return predicate.WorkflowOperation(sql.FieldEQ(FieldOperation, v))
}

// OperationNEQ applies the NEQ predicate on the "operation" field.
func OperationNEQ(v string) predicate.WorkflowOperation {
	return predicate.WorkflowOperation(sql.FieldNEQ(FieldOperation, v))
}

// OperationIn applies the In predicate on the "operation" field.
func OperationIn(vs ...string) predicate.WorkflowOperation {
	return predicate.WorkflowOperation(sql.FieldIn(FieldOperation, vs...))
}

// OperationNotIn applies the NotIn predicate on the "operation" field.
func OperationNotIn(vs ...string) predicate.WorkflowOperation {
	return predicate.WorkflowOperation(sql.FieldNotIn(FieldOperation, vs...))
}

// OperationGT applies the GT predicate on the "operation" field.
func OperationGT(v string) predicate.WorkflowOperation {
	return predicate.WorkflowOperation(sql.FieldGT(FieldOperation, v))
}

// OperationGTE applies the GTE predicate on the "operation" field.
func OperationGTE(v string) predicate.WorkflowOperation {
	return predicate.WorkflowOperation(sql.FieldGTE(FieldOperation, v))
}

// OperationLT applies the LT predicate on the "operation" field.
func OperationLT(v string) predicate.WorkflowOperation {
	return predicate.WorkflowOperation(sql.FieldLT(FieldOperation, v))
}

// OperationLTE applies the LTE predicate on the "operation" field.
func OperationLTE(v string) predicate.WorkflowOperation {
	return predicate.WorkflowOperation(sql.FieldLTE(FieldOperation, v))
}

// OperationContains applies the Contains predicate on the "operation" field.
func OperationContains(v string) predicate.WorkflowOperation {
	return predicate.WorkflowOperation(sql.FieldContains(FieldOperation, v))
}

// OperationHasPrefix applies the HasPrefix predicate on the "operation" field.
func OperationHasPrefix(v string) predicate.WorkflowOperation {
	return predicate.WorkflowOperation(sql.FieldHasPrefix(FieldOperation, v))
}

// OperationHasSuffix applies the HasSuffix predicate on the "operation" field.
func OperationHasSuffix(v string) predicate.WorkflowOperation {
	return predicate.WorkflowOperation(sql.FieldHasSuffix(FieldOperation, v))
}

// OperationEqualFold applies the EqualFold predicate on the "operation" field.
func OperationEqualFold(v string) predicate.WorkflowOperation {
	return predicate.WorkflowOperation(sql.FieldEqualFold(FieldOperation, v))
}

// OperationContainsFold applies the ContainsFold predicate on the "operation" field.
func OperationContainsFold(v string) predicate.WorkflowOperation {
	return predicate.WorkflowOperation(sql.FieldContainsFold(FieldOperation, v))
}

// TargetEQ applies the EQ predicate on the "target" field.
func TargetEQ(v string) predicate.WorkflowOperation {
	return predicate.WorkflowOperation(sql.FieldEQ(FieldTarget, v))
}

// TargetNEQ applies the NEQ predicate on the "target" field.
func TargetNEQ(v string) predicate.WorkflowOperation {
	return predicate.WorkflowOperation(sql.FieldNEQ(FieldTarget, v))
}

// TargetIn applies the In predicate on the "target" field.
func TargetIn(vs ...string) predicate.WorkflowOperation {
	return predicate.WorkflowOperation(sql.FieldIn(FieldTarget, vs...))
}

// TargetNotIn applies the NotIn predicate on the "target" field.
func TargetNotIn(vs ...string) predicate.WorkflowOperation {
	return predicate.WorkflowOperation(sql.FieldNotIn(FieldTarget, vs...))
}

// TargetGT applies the GT predicate on the "target" field.
func TargetGT(v string) predicate.WorkflowOperation {
	return predicate.WorkflowOperation(sql.FieldGT(FieldTarget, v))
}

// TargetGTE applies the GTE predicate on the "target" field.
func TargetGTE(v string) predicate.WorkflowOperation {
	return predicate.WorkflowOperation(sql.FieldGTE(FieldTarget, v))
}

// TargetLT applies the LT predicate on the "target" field.
func TargetLT(v string) predicate.WorkflowOperation {
	return predicate.WorkflowOperation(sql.FieldLT(FieldTarget, v))
}

// TargetLTE applies the LTE predicate on the "target" field.
func TargetLTE(v string) predicate.WorkflowOperation {
	return predicate.WorkflowOperation(sql.FieldLTE(FieldTarget, v))
}

// TargetContains applies the Contains predicate on the "target" field.
func TargetContains(v string) predicate.WorkflowOperation {
	return predicate.WorkflowOperation(sql.FieldContains(FieldTarget, v))
}

// TargetHasPrefix applies the HasPrefix predicate on the "target" field.
func TargetHasPrefix(v string) predicate.WorkflowOperation {
	return predicate.WorkflowOperation(sql.FieldHasPrefix(FieldTarget, v))
}

// TargetHasSuffix applies the HasSuffix predicate on the "target" field.
func TargetHasSuffix(v string) predicate.WorkflowOperation {
	return predicate.WorkflowOperation(sql.FieldHasSuffix(FieldTarget, v))
}

// TargetEqualFold applies the EqualFold predicate on the "target" field.
func TargetEqualFold(v string) predicate.WorkflowOperation {
	return predicate.WorkflowOperation(sql.FieldEqualFold(FieldTarget, v))
}

// TargetContainsFold applies the ContainsFold predicate on the "target" field.
func TargetContainsFold(v string) predicate.WorkflowOperation {
	return predicate.WorkflowOperation(sql.FieldContainsFold(FieldTarget, v))
}

// PayloadIsNil applies the IsNil predicate on the "payload" field.
func PayloadIsNil() predicate.WorkflowOperation {
	return predicate.WorkflowOperation(sql.FieldIsNull(FieldPayload))
}

// PayloadNotNil applies the NotNil predicate on the "payload" field.
func PayloadNotNil() predicate.WorkflowOperation {
	return predicate.WorkflowOperation(sql.FieldNotNull(FieldPayload))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.WorkflowOperation {
	return predicate.WorkflowOperation(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.WorkflowOperation {
	return predicate.WorkflowOperation(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.WorkflowOperation {
	return predicate.WorkflowOperation(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.WorkflowOperation {
	return predicate.WorkflowOperation(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.WorkflowOperation {
	return predicate.WorkflowOperation(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.WorkflowOperation {
	return predicate.WorkflowOperation(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.WorkflowOperation {
	return predicate.WorkflowOperation(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.WorkflowOperation {
	return predicate.WorkflowOperation(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.WorkflowOperation {
	return predicate.WorkflowOperation(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.WorkflowOperation {
	return predicate.WorkflowOperation(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.WorkflowOperation {
	return predicate.WorkflowOperation(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.WorkflowOperation {
	return predicate.WorkflowOperation(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.WorkflowOperation {
	return predicate.WorkflowOperation(sql.FieldContainsFold(FieldUserID, v))
}

// ClientTimestampEQ applies the EQ predicate on the "client_timestamp" field.
func ClientTimestampEQ(v int64) predicate.WorkflowOperation {
	return predicate.WorkflowOperation(sql.FieldEQ(FieldClientTimestamp, v))
}

// ClientTimestampNEQ applies the NEQ predicate on the "client_timestamp" field.
func ClientTimestampNEQ(v int64) predicate.WorkflowOperation {
	return predicate.WorkflowOperation(sql.FieldNEQ(FieldClientTimestamp, v))
}

// ClientTimestampIn applies the In predicate on the "client_timestamp" field.
func ClientTimestampIn(vs ...int64) predicate.WorkflowOperation {
	return predicate.WorkflowOperation(sql.FieldIn(FieldClientTimestamp, vs...))
}

// ClientTimestampNotIn applies the NotIn predicate on the "client_timestamp" field.
func ClientTimestampNotIn(vs ...int64) predicate.WorkflowOperation {
	return predicate.WorkflowOperation(sql.FieldNotIn(FieldClientTimestamp, vs...))
}

// ClientTimestampGT applies the GT predicate on the "client_timestamp" field.
func ClientTimestampGT(v int64) predicate.WorkflowOperation {
	return predicate.WorkflowOperation(sql.FieldGT(FieldClientTimestamp, v))
}

// ClientTimestampGTE applies the GTE predicate on the "client_timestamp" field.
func ClientTimestampGTE(v int64) predicate.WorkflowOperation {
	return predicate.WorkflowOperation(sql.FieldGTE(FieldClientTimestamp, v))
}

// ClientTimestampLT applies the LT predicate on the "client_timestamp" field.
func ClientTimestampLT(v int64) predicate.WorkflowOperation {
	return predicate.WorkflowOperation(sql.FieldLT(FieldClientTimestamp, v))
}

// ClientTimestampLTE applies the LTE predicate on the "client_timestamp" field.
func ClientTimestampLTE(v int64) predicate.WorkflowOperation {
	return predicate.WorkflowOperation(sql.FieldLTE(FieldClientTimestamp, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.WorkflowOperation {
	return predicate.WorkflowOperation(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.WorkflowOperation {
	return predicate.WorkflowOperation(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.WorkflowOperation {
	return predicate.WorkflowOperation(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.WorkflowOperation {
	return predicate.WorkflowOperation(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.WorkflowOperation {
	return predicate.WorkflowOperation(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.WorkflowOperation {
	return predicate.WorkflowOperation(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.WorkflowOperation {
	return predicate.WorkflowOperation(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.WorkflowOperation {
	return predicate.WorkflowOperation(sql.FieldLTE(FieldCreatedAt, v))
}

// HasWorkflow applies the HasEdge predicate on the "workflow" edge.
func HasWorkflow() predicate.WorkflowOperation {
	return predicate.WorkflowOperation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, WorkflowTable, WorkflowColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWorkflowWith applies the HasEdge predicate on the "workflow" edge with a given conditions (other predicates).
func HasWorkflowWith(preds ...predicate.Workflow) predicate.WorkflowOperation {
	return predicate.WorkflowOperation(func(s *sql.Selector) {
		step := newWorkflowStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.WorkflowOperation) predicate.WorkflowOperation {
	return predicate.WorkflowOperation(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.WorkflowOperation) predicate.WorkflowOperation {
	return predicate.WorkflowOperation(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.WorkflowOperation) predicate.WorkflowOperation {
	return predicate.WorkflowOperation(sql.NotPredicates(p))
}
