// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Permission is the predicate function for permission builders.
type Permission func(*sql.Selector)

// UserRateLimit is the predicate function for userratelimit builders.
type UserRateLimit func(*sql.Selector)

// Workflow is the predicate function for workflow builders.
type Workflow func(*sql.Selector)

// WorkflowBlock is the predicate function for workflowblock builders.
type WorkflowBlock func(*sql.Selector)

// WorkflowEdge is the predicate function for workflowedge builders.
type WorkflowEdge func(*sql.Selector)

// WorkflowOperation is the predicate function for workflowoperation builders.
type WorkflowOperation func(*sql.Selector)
