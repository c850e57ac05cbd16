package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// UserRateLimit holds the schema definition for the UserRateLimit entity.
// One row per rate-limit key (user ID, or organisation ID for shared
// team/enterprise pools). The reset-or-increment happens in a single SQL
// statement (see pkg/ratelimit); within a window counters never decrease.
type UserRateLimit struct {
	ent.Schema
}

// Fields of the UserRateLimit.
func (UserRateLimit) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("reference_id").
			Unique().
			Immutable().
			Comment("User ID or organisation ID"),
		field.Int("sync_api_requests").
			Default(0),
		field.Int("async_api_requests").
			Default(0),
		field.Int("api_endpoint_requests").
			Default(0),
		field.Time("window_start").
			Default(time.Now),
		field.Time("last_request_at").
			Default(time.Now),
		field.Bool("is_rate_limited").
			Default(false),
		field.Time("rate_limit_reset_at").
			Optional().
			Nillable(),
	}
}
