// Code generated by ent, DO NOT EDIT.

package workflowblock

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/weft-labs/weft/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldContainsFold(FieldID, id))
}

// WorkflowID applies equality check predicate on the "workflow_id" field. It's identical to WorkflowIDEQ.
func WorkflowID(v string) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldEQ(FieldWorkflowID, v))
}

// Type applies equality check predicate on the "type" field. It's identical to TypeEQ.
func Type(v string) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldEQ(FieldType, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldEQ(FieldName, v))
}

// PositionX applies equality check predicate on the "position_x" field. It's identical to PositionXEQ.
func PositionX(v float64) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldEQ(FieldPositionX, v))
}

// PositionY applies equality check predicate on the "position_y" field. It's identical to PositionYEQ.
func PositionY(v float64) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldEQ(FieldPositionY, v))
}

// Enabled applies equality check predicate on the "enabled" field. It's identical to EnabledEQ.
func Enabled(v bool) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldEQ(FieldEnabled, v))
}

// ParentID applies equality check predicate on the "parent_id" field. It's identical to ParentIDEQ.
func ParentID(v string) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldEQ(FieldParentID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldEQ(FieldUpdatedAt, v))
}

// WorkflowIDEQ applies the EQ predicate on the "workflow_id" field.
func WorkflowIDEQ(v string) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldEQ(FieldWorkflowID, v))
}

// WorkflowIDNEQ applies the NEQ predicate on the "workflow_id" field.
func WorkflowIDNEQ(v string) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldNEQ(FieldWorkflowID, v))
}

// WorkflowIDIn applies the In predicate on the "workflow_id" field.
func WorkflowIDIn(vs ...string) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldIn(FieldWorkflowID, vs...))
}

// WorkflowIDNotIn applies the NotIn predicate on the "workflow_id" field.
func WorkflowIDNotIn(vs ...string) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldNotIn(FieldWorkflowID, vs...))
}

// WorkflowIDGT applies the GT predicate on the "workflow_id" field.
func WorkflowIDGT(v string) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldGT(FieldWorkflowID, v))
}

// WorkflowIDGTE applies the GTE predicate on the "workflow_id" field.
func WorkflowIDGTE(v string) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldGTE(FieldWorkflowID, v))
}

// WorkflowIDLT applies the LT predicate on the "workflow_id" field.
func WorkflowIDLT(v string) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldLT(FieldWorkflowID, v))
}

// WorkflowIDLTE applies the LTE predicate on the "workflow_id" field.
func WorkflowIDLTE(v string) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldLTE(FieldWorkflowID, v))
}

// WorkflowIDContains applies the Contains predicate on the "workflow_id" field.
func WorkflowIDContains(v string) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldContains(FieldWorkflowID, v))
}

// WorkflowIDHasPrefix applies the HasPrefix predicate on the "workflow_id" field.
func WorkflowIDHasPrefix(v string) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldHasPrefix(FieldWorkflowID, v))
}

// WorkflowIDHasSuffix applies the HasSuffix predicate on the "workflow_id" field.
func WorkflowIDHasSuffix(v string) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldHasSuffix(FieldWorkflowID, v))
}

// WorkflowIDEqualFold applies the EqualFold predicate on the "workflow_id" field.
func WorkflowIDEqualFold(v string) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldEqualFold(FieldWorkflowID, v))
}

// WorkflowIDContainsFold applies the ContainsFold predicate on the "workflow_id" field.
func WorkflowIDContainsFold(v string) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldContainsFold(FieldWorkflowID, v))
}

// TypeEQ applies the EQ predicate on the "type" field.
func TypeEQ(v string) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldEQ(FieldType, v))
}

// TypeNEQ applies the NEQ predicate on the "type" field.
func TypeNEQ(v string) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldNEQ(FieldType, v))
}

// TypeIn applies the In predicate on the "type" field.
func TypeIn(vs ...string) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldIn(FieldType, vs...))
}

// TypeNotIn applies the NotIn predicate on the "type" field.
func TypeNotIn(vs ...string) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldNotIn(FieldType, vs...))
}

// TypeGT applies the GT predicate on the "type" field.
func TypeGT(v string) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldGT(FieldType, v))
}

// TypeGTE applies the GTE predicate on the "type" field.
func TypeGTE(v string) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldGTE(FieldType, v))
}

// TypeLT applies the LT predicate on the "type" field.
func TypeLT(v string) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldLT(FieldType, v))
}

// TypeLTE applies the LTE predicate on the "type" field.
func TypeLTE(v string) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldLTE(FieldType, v))
}

// TypeContains applies the Contains predicate on the "type" field.
func TypeContains(v string) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldContains(FieldType, v))
}

// TypeHasPrefix applies the HasPrefix predicate on the "type" field.
func TypeHasPrefix(v string) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldHasPrefix(FieldType, v))
}

// TypeHasSuffix applies the HasSuffix predicate on the "type" field.
func TypeHasSuffix(v string) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldHasSuffix(FieldType, v))
}

// TypeEqualFold applies the EqualFold predicate on the "type" field.
func TypeEqualFold(v string) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldEqualFold(FieldType, v))
}

// TypeContainsFold applies the ContainsFold predicate on the "type" field.
func TypeContainsFold(v string) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldContainsFold(FieldType, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldContainsFold(FieldName, v))
}

// PositionXEQ applies the EQ predicate on the "position_x" field.
func PositionXEQ(v float64) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldEQ(FieldPositionX, v))
}

// PositionXNEQ applies the NEQ predicate on the "position_x" field.
func PositionXNEQ(v float64) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldNEQ(FieldPositionX, v))
}

// PositionXIn applies the In predicate on the "position_x" field.
func PositionXIn(vs ...float64) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldIn(FieldPositionX, vs...))
}

// PositionXNotIn applies the NotIn predicate on the "position_x" field.
func PositionXNotIn(vs ...float64) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldNotIn(FieldPositionX, vs...))
}

// PositionXGT applies the GT predicate on the "position_x" field.
func PositionXGT(v float64) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldGT(FieldPositionX, v))
}

// PositionXGTE applies the GTE predicate on the "position_x" field.
func PositionXGTE(v float64) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldGTE(FieldPositionX, v))
}

// PositionXLT applies the LT predicate on the "position_x" field.
func PositionXLT(v float64) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldLT(FieldPositionX, v))
}

// PositionXLTE applies the LTE predicate on the "position_x" field.
func PositionXLTE(v float64) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldLTE(FieldPositionX, v))
}

// PositionYEQ applies the EQ predicate on the "position_y" field.
func PositionYEQ(v float64) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldEQ(FieldPositionY, v))
}

// PositionYNEQ applies the NEQ predicate on the "position_y" field.
func PositionYNEQ(v float64) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldNEQ(FieldPositionY, v))
}

// PositionYIn applies the In predicate on the "position_y" field.
func PositionYIn(vs ...float64) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldIn(FieldPositionY, vs...))
}

// PositionYNotIn applies the NotIn predicate on the "position_y" field.
func PositionYNotIn(vs ...float64) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldNotIn(FieldPositionY, vs...))
}

// PositionYGT applies the GT predicate on the "position_y" field.
func PositionYGT(v float64) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldGT(FieldPositionY, v))
}

// PositionYGTE applies the GTE predicate on the "position_y" field.
func PositionYGTE(v float64) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldGTE(FieldPositionY, v))
}

// PositionYLT applies the LT predicate on the "position_y" field.
func PositionYLT(v float64) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldLT(FieldPositionY, v))
}

// PositionYLTE applies the LTE predicate on the "position_y" field.
func PositionYLTE(v float64) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldLTE(FieldPositionY, v))
}

// EnabledEQ applies the EQ predicate on the "enabled" field.
func EnabledEQ(v bool) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldEQ(FieldEnabled, v))
}

// EnabledNEQ applies the NEQ predicate on the "enabled" field.
func EnabledNEQ(v bool) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldNEQ(FieldEnabled, v))
}

// ParentIDEQ applies the EQ predicate on the "parent_id" field.
func ParentIDEQ(v string) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldEQ(FieldParentID, v))
}

// ParentIDNEQ applies the NEQ predicate on the "parent_id" field.
func ParentIDNEQ(v string) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldNEQ(FieldParentID, v))
}

// ParentIDIn applies the In predicate on the "parent_id" field.
func ParentIDIn(vs ...string) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldIn(FieldParentID, vs...))
}

// ParentIDNotIn applies the NotIn predicate on the "parent_id" field.
func ParentIDNotIn(vs ...string) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldNotIn(FieldParentID, vs...))
}

// ParentIDGT applies the GT predicate on the "parent_id" field.
func ParentIDGT(v string) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldGT(FieldParentID, v))
}

// ParentIDGTE applies the GTE predicate on the "parent_id" field.
func ParentIDGTE(v string) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldGTE(FieldParentID, v))
}

// ParentIDLT applies the LT predicate on the "parent_id" field.
func ParentIDLT(v string) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldLT(FieldParentID, v))
}

// ParentIDLTE applies the LTE predicate on the "parent_id" field.
func ParentIDLTE(v string) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldLTE(FieldParentID, v))
}

// ParentIDContains applies the Contains predicate on the "parent_id" field.
func ParentIDContains(v string) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldContains(FieldParentID, v))
}

// ParentIDHasPrefix applies the HasPrefix predicate on the "parent_id" field.
func ParentIDHasPrefix(v string) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldHasPrefix(FieldParentID, v))
}

// ParentIDHasSuffix applies the HasSuffix predicate on the "parent_id" field.
func ParentIDHasSuffix(v string) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldHasSuffix(FieldParentID, v))
}

// ParentIDIsNil applies the IsNil predicate on the "parent_id" field.
func ParentIDIsNil() predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldIsNull(FieldParentID))
}

// ParentIDNotNil applies the NotNil predicate on the "parent_id" field.
func ParentIDNotNil() predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldNotNull(FieldParentID))
}

// ParentIDEqualFold applies the EqualFold predicate on the "parent_id" field.
func ParentIDEqualFold(v string) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldEqualFold(FieldParentID, v))
}

// ParentIDContainsFold applies the ContainsFold predicate on the "parent_id" field.
func ParentIDContainsFold(v string) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldContainsFold(FieldParentID, v))
}

// SubBlocksIsNil applies the IsNil predicate on the "sub_blocks" field.
func SubBlocksIsNil() predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldIsNull(FieldSubBlocks))
}

// SubBlocksNotNil applies the NotNil predicate on the "sub_blocks" field.
func SubBlocksNotNil() predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldNotNull(FieldSubBlocks))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasWorkflow applies the HasEdge predicate on the "workflow" edge.
func HasWorkflow() predicate.WorkflowBlock {
	return predicate.WorkflowBlock(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, WorkflowTable, WorkflowColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWorkflowWith applies the HasEdge predicate on the "workflow" edge with a given conditions (other predicates).
func HasWorkflowWith(preds ...predicate.Workflow) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(func(s *sql.Selector) {
		step := newWorkflowStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.WorkflowBlock) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.WorkflowBlock) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.WorkflowBlock) predicate.WorkflowBlock {
	return predicate.WorkflowBlock(sql.NotPredicates(p))
}
