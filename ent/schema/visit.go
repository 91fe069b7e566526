package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Visit holds the schema definition for the Visit entity.
// Visits are write-once analytics rows; there is no read API for them here.
type Visit struct {
	ent.Schema
}

// Fields of the Visit.
func (Visit) Fields() []ent.Field {
	return []ent.Field{
		field.String("short_code").
			NotEmpty().
			MaxLen(32),
		field.String("long_url").
			NotEmpty().
			MaxLen(2048),
		field.String("user_agent").
			Optional().
			MaxLen(512),
		field.String("ip_address").
			Optional().
			MaxLen(64),
		field.String("referer").
			Optional().
			MaxLen(2048),
		field.Time("visited_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Visit.
func (Visit) Edges() []ent.Edge {
	return nil
}

// Indexes of the Visit.
func (Visit) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("short_code"),
		index.Fields("visited_at"),
	}
}
