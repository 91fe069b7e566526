package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Link holds the schema definition for the Link entity.
type Link struct {
	ent.Schema
}

// Fields of the Link.
func (Link) Fields() []ent.Field {
	return []ent.Field{
		field.String("short_code").
			Unique().
			NotEmpty().
			MaxLen(32).
			Comment("The unique, lowercase short code for the link"),
		field.String("long_url").
			NotEmpty().
			MaxLen(2048).
			Comment("The destination URL"),
		field.Enum("state").
			Values("active", "inactive").
			Default("active").
			Comment("Only active links are resolvable"),
		field.Int64("click_count").
			Default(0).
			NonNegative().
			Comment("Number of times this link has been resolved"),
		field.String("contact_email").
			Optional().
			Comment("Optional contact for the link owner"),
		field.String("description").
			Optional().
			MaxLen(200).
			Comment("Optional free-form description"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("When the link was created"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("When the link was last updated"),
	}
}

// Edges of the Link.
func (Link) Edges() []ent.Edge {
	return nil
}

// Indexes of the Link.
func (Link) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("short_code").Unique(),
		index.Fields("state"),
	}
}
