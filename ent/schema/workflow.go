package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/weft-labs/weft/pkg/models"
)

// Workflow holds the schema definition for the Workflow entity.
// Variables live as a JSON map on the workflow row, keyed by variable ID;
// the coalescing updater rewrites single fields inside that map.
type Workflow struct {
	ent.Schema
}

// Fields of the Workflow.
func (Workflow) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("workflow_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Comment("Owner; implies admin role without a permissions row"),
		field.String("name").
			Default("Untitled workflow"),
		field.JSON("variables", map[string]models.Variable{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			Comment("Bumped on every persisted mutation; feeds room lastModified"),
	}
}

// Edges of the Workflow.
func (Workflow) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("blocks", WorkflowBlock.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("workflow_edges", WorkflowEdge.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("operations", WorkflowOperation.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Workflow.
func (Workflow) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
	}
}
