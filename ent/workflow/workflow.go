// Code generated by ent, DO NOT EDIT.

package workflow

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the workflow type in the database.
	Label = "workflow"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "workflow_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldVariables holds the string denoting the variables field in the database.
	FieldVariables = "variables"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeBlocks holds the string denoting the blocks edge name in mutations.
	EdgeBlocks = "blocks"
	// EdgeWorkflowEdges holds the string denoting the workflow_edges edge name in mutations.
	EdgeWorkflowEdges = "workflow_edges"
	// EdgeOperations holds the string denoting the operations edge name in mutations.
	EdgeOperations = "operations"
	// WorkflowBlockFieldID holds the string denoting the ID field of the WorkflowBlock.
	WorkflowBlockFieldID = "block_id"
	// WorkflowEdgeFieldID holds the string denoting the ID field of the WorkflowEdge.
	WorkflowEdgeFieldID = "edge_id"
	// WorkflowOperationFieldID holds the string denoting the ID field of the WorkflowOperation.
	WorkflowOperationFieldID = "operation_id"
	// Table holds the table name of the workflow in the database.
	Table = "workflows"
	// BlocksTable is the table that holds the blocks relation/edge.
	BlocksTable = "workflow_blocks"
	// BlocksInverseTable is the table name for the WorkflowBlock entity.
	// It exists in this package in order to avoid circular dependency with the "workflowblock" package.
	BlocksInverseTable = "workflow_blocks"
	// BlocksColumn is the table column denoting the blocks relation/edge.
	BlocksColumn = "workflow_id"
	// WorkflowEdgesTable is the table that holds the workflow_edges relation/edge.
	WorkflowEdgesTable = "workflow_edges"
	// WorkflowEdgesInverseTable is the table name for the WorkflowEdge entity.
	// It exists in this package in order to avoid circular dependency with the "workflowedge" package.
	WorkflowEdgesInverseTable = "workflow_edges"
	// WorkflowEdgesColumn is the table column denoting the workflow_edges relation/edge.
	WorkflowEdgesColumn = "workflow_id"
	// OperationsTable is the table that holds the operations relation/edge.
	OperationsTable = "workflow_operations"
	// OperationsInverseTable is the table name for the WorkflowOperation entity.
	// It exists in this package in order to avoid circular dependency with the "workflowoperation" package.
	OperationsInverseTable = "workflow_operations"
	// OperationsColumn is the table column denoting the operations relation/edge.
	OperationsColumn = "workflow_id"
)

// Columns holds all SQL columns for workflow fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldName,
	FieldVariables,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// DefaultName holds the default value on creation for the "name" field.
	DefaultName string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the Workflow queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByBlocksCount orders the results by blocks count.
func ByBlocksCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newBlocksStep(), opts...)
	}
}

// ByBlocks orders the results by blocks terms.
func ByBlocks(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newBlocksStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByWorkflowEdgesCount orders the results by workflow_edges count.
func ByWorkflowEdgesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newWorkflowEdgesStep(), opts...)
	}
}

// ByWorkflowEdges orders the results by workflow_edges terms.
func ByWorkflowEdges(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newWorkflowEdgesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByOperationsCount orders the results by operations count.
func ByOperationsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newOperationsStep(), opts...)
	}
}

// ByOperations orders the results by operations terms.
func ByOperations(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newOperationsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newBlocksStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(BlocksInverseTable, WorkflowBlockFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, BlocksTable, BlocksColumn),
	)
}
func newWorkflowEdgesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(WorkflowEdgesInverseTable, WorkflowEdgeFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, WorkflowEdgesTable, WorkflowEdgesColumn),
	)
}
func newOperationsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(OperationsInverseTable, WorkflowOperationFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, OperationsTable, OperationsColumn),
	)
}
