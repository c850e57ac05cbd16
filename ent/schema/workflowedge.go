package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WorkflowEdge holds the schema definition for the WorkflowEdge entity,
// a directed connection between two blocks on the canvas.
type WorkflowEdge struct {
	ent.Schema
}

// Fields of the WorkflowEdge.
func (WorkflowEdge) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("edge_id").
			Unique().
			Immutable(),
		field.String("workflow_id").
			Immutable(),
		field.String("source_block_id"),
		field.String("target_block_id"),
		field.String("source_handle").
			Optional().
			Nillable(),
		field.String("target_handle").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the WorkflowEdge.
func (WorkflowEdge) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("workflow", Workflow.Type).
			Ref("workflow_edges").
			Field("workflow_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the WorkflowEdge.
func (WorkflowEdge) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workflow_id"),
		index.Fields("workflow_id", "source_block_id"),
		index.Fields("workflow_id", "target_block_id"),
	}
}
