package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WorkflowOperation holds the schema definition for the WorkflowOperation
// entity: the write-ahead audit record of collaborative mutations. One row is
// appended inside the same transaction as the mutation it records.
type WorkflowOperation struct {
	ent.Schema
}

// Fields of the WorkflowOperation.
func (WorkflowOperation) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("operation_id").
			Unique().
			Immutable(),
		field.String("workflow_id").
			Immutable(),
		field.String("operation").
			Comment("e.g. 'add', 'remove', 'update-position'"),
		field.String("target").
			Comment("'block', 'edge' or 'variable'"),
		field.JSON("payload", map[string]any{}).
			Optional(),
		field.String("user_id"),
		field.Int64("client_timestamp").
			Comment("Client wall clock, ms since epoch; preserved for replay ordering"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the WorkflowOperation.
func (WorkflowOperation) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("workflow", Workflow.Type).
			Ref("operations").
			Field("workflow_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the WorkflowOperation.
func (WorkflowOperation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workflow_id", "created_at"),
	}
}
