package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Permission holds the schema definition for the Permission entity.
// Grants a user a role on an entity (today: workflows). Workflow owners
// have implicit admin and need no row here.
type Permission struct {
	ent.Schema
}

// Fields of the Permission.
func (Permission) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("permission_id").
			Unique().
			Immutable(),
		field.String("user_id"),
		field.String("entity_type").
			Comment("e.g. 'workflow'"),
		field.String("entity_id"),
		field.Enum("permission_type").
			Values("admin", "write", "read"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now),
	}
}

// Indexes of the Permission.
func (Permission) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "entity_type", "entity_id").
			Unique(),
		index.Fields("entity_type", "entity_id"),
	}
}
