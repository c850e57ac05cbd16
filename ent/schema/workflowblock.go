package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/weft-labs/weft/pkg/models"
)

// WorkflowBlock holds the schema definition for the WorkflowBlock entity.
// Sub-blocks (the block's editable fields) are a JSON map keyed by subblock
// ID; collaborative edits merge into that map one field at a time.
type WorkflowBlock struct {
	ent.Schema
}

// Fields of the WorkflowBlock.
func (WorkflowBlock) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("block_id").
			Unique().
			Immutable(),
		field.String("workflow_id").
			Immutable(),
		field.String("type").
			Comment("Block kind (agent, api, condition, ...)"),
		field.String("name"),
		field.Float("position_x"),
		field.Float("position_y"),
		field.Bool("enabled").
			Default(true),
		field.String("parent_id").
			Optional().
			Nillable().
			Comment("Containing subflow block, if any"),
		field.JSON("sub_blocks", map[string]models.Subblock{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now),
	}
}

// Edges of the WorkflowBlock.
func (WorkflowBlock) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("workflow", Workflow.Type).
			Ref("blocks").
			Field("workflow_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the WorkflowBlock.
func (WorkflowBlock) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workflow_id"),
	}
}
