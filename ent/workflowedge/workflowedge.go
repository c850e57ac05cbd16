// Code generated by ent, DO NOT EDIT.

package workflowedge

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the workflowedge type in the database.
	Label = "workflow_edge"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "edge_id"
	// FieldWorkflowID holds the string denoting the workflow_id field in the database.
	FieldWorkflowID = "workflow_id"
	// FieldSourceBlockID holds the string denoting the source_block_id field in the database.
	FieldSourceBlockID = "source_block_id"
	// FieldTargetBlockID holds the string denoting the target_block_id field in the database.
	FieldTargetBlockID = "target_block_id"
	// FieldSourceHandle holds the string denoting the source_handle field in the database.
	FieldSourceHandle = "source_handle"
	// FieldTargetHandle holds the string denoting the target_handle field in the database.
	FieldTargetHandle = "target_handle"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeWorkflow holds the string denoting the workflow edge name in mutations.
	EdgeWorkflow = "workflow"
	// WorkflowFieldID holds the string denoting the ID field of the Workflow.
	WorkflowFieldID = "workflow_id"
	// Table holds the table name of the workflowedge in the database.
	Table = "workflow_edges"
	// WorkflowTable is the table that holds the workflow relation/edge.
	WorkflowTable = "workflow_edges"
	// WorkflowInverseTable is the table name for the Workflow entity.
	// It exists in this package in order to avoid circular dependency with the "workflow" package.
	WorkflowInverseTable = "workflows"
	// WorkflowColumn is the table column denoting the workflow relation/edge.
	WorkflowColumn = "workflow_id"
)

// Columns holds all SQL columns for workflowedge fields.
var Columns = []string{
	FieldID,
	FieldWorkflowID,
	FieldSourceBlockID,
	FieldTargetBlockID,
	FieldSourceHandle,
	FieldTargetHandle,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the WorkflowEdge queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByWorkflowID orders the results by the workflow_id field.
func ByWorkflowID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkflowID, opts...).ToFunc()
}

// BySourceBlockID orders the results by the source_block_id field.
func BySourceBlockID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceBlockID, opts...).ToFunc()
}

// ByTargetBlockID orders the results by the target_block_id field.
func ByTargetBlockID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetBlockID, opts...).ToFunc()
}

// BySourceHandle orders the results by the source_handle field.
func BySourceHandle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceHandle, opts...).ToFunc()
}

// ByTargetHandle orders the results by the target_handle field.
func ByTargetHandle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetHandle, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByWorkflowField orders the results by workflow field.
func ByWorkflowField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newWorkflowStep(), sql.OrderByField(field, opts...))
	}
}
func newWorkflowStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(WorkflowInverseTable, WorkflowFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, WorkflowTable, WorkflowColumn),
	)
}
