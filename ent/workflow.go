// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/weft-labs/weft/ent/workflow"
	"github.com/weft-labs/weft/pkg/models"
)

// Workflow is the model entity for the Workflow schema.
type Workflow struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Owner; implies admin role without a permissions row
	UserID string `json:"user_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Variables holds the value of the "variables" field.
	Variables map[string]models.Variable `json:"variables,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Bumped on every persisted mutation; feeds room lastModified
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the WorkflowQuery when eager-loading is set.
	Edges        WorkflowEdges `json:"edges"`
	selectValues sql.SelectValues
}

// WorkflowEdges holds the relations/edges for other nodes in the graph.
type WorkflowEdges struct {
	// Blocks holds the value of the blocks edge.
	Blocks []*WorkflowBlock `json:"blocks,omitempty"`
	// WorkflowEdges holds the value of the workflow_edges edge.
	WorkflowEdges []*WorkflowEdge `json:"workflow_edges,omitempty"`
	// Operations holds the value of the operations edge.
	Operations []*WorkflowOperation `json:"operations,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// BlocksOrErr returns the Blocks value or an error if the edge
// was not loaded in eager-loading.
func (e WorkflowEdges) BlocksOrErr() ([]*WorkflowBlock, error) {
	if e.loadedTypes[0] {
		return e.Blocks, nil
	}
	return nil, &NotLoadedError{edge: "blocks"}
}

// WorkflowEdgesOrErr returns the WorkflowEdges value or an error if the edge
// was not loaded in eager-loading.
func (e WorkflowEdges) WorkflowEdgesOrErr() ([]*WorkflowEdge, error) {
	if e.loadedTypes[1] {
		return e.WorkflowEdges, nil
	}
	return nil, &NotLoadedError{edge: "workflow_edges"}
}

// OperationsOrErr returns the Operations value or an error if the edge
// was not loaded in eager-loading.
func (e WorkflowEdges) OperationsOrErr() ([]*WorkflowOperation, error) {
	if e.loadedTypes[2] {
		return e.Operations, nil
	}
	return nil, &NotLoadedError{edge: "operations"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Workflow) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case workflow.FieldVariables:
			values[i] = new([]byte)
		case workflow.FieldID, workflow.FieldUserID, workflow.FieldName:
			values[i] = new(sql.NullString)
		case workflow.FieldCreatedAt, workflow.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Workflow fields.
func (_m *Workflow) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case workflow.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case workflow.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case workflow.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case workflow.FieldVariables:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field variables", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Variables); err != nil {
					return fmt.Errorf("unmarshal field variables: %w", err)
				}
			}
		case workflow.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case workflow.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Workflow.
// This includes values selected through modifiers, order, etc.
func (_m *Workflow) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryBlocks queries the "blocks" edge of the Workflow entity.
func (_m *Workflow) QueryBlocks() *WorkflowBlockQuery {
	return NewWorkflowClient(_m.config).QueryBlocks(_m)
}

// QueryWorkflowEdges queries the "workflow_edges" edge of the Workflow entity.
func (_m *Workflow) QueryWorkflowEdges() *WorkflowEdgeQuery {
	return NewWorkflowClient(_m.config).QueryWorkflowEdges(_m)
}

// QueryOperations queries the "operations" edge of the Workflow entity.
func (_m *Workflow) QueryOperations() *WorkflowOperationQuery {
	return NewWorkflowClient(_m.config).QueryOperations(_m)
}

// Update returns a builder for updating this Workflow.
// Note that you need to call Workflow.Unwrap() before calling this method if this Workflow
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Workflow) Update() *WorkflowUpdateOne {
	return NewWorkflowClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Workflow entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Workflow) Unwrap() *Workflow {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Workflow is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Workflow) String() string {
	var builder strings.Builder
	builder.WriteString("Workflow(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("variables=")
	builder.WriteString(fmt.Sprintf("%v", _m.Variables))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Workflows is a parsable slice of Workflow.
type Workflows []*Workflow
