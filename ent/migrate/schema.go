// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// LinksColumns holds the columns for the "links" table.
	LinksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "short_code", Type: field.TypeString, Unique: true, Size: 32},
		{Name: "long_url", Type: field.TypeString, Size: 2048},
		{Name: "state", Type: field.TypeEnum, Enums: []string{"active", "inactive"}, Default: "active"},
		{Name: "click_count", Type: field.TypeInt64, Default: 0},
		{Name: "contact_email", Type: field.TypeString, Nullable: true},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 200},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// LinksTable holds the schema information for the "links" table.
	LinksTable = &schema.Table{
		Name:       "links",
		Columns:    LinksColumns,
		PrimaryKey: []*schema.Column{LinksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "link_short_code",
				Unique:  true,
				Columns: []*schema.Column{LinksColumns[1]},
			},
			{
				Name:    "link_state",
				Unique:  false,
				Columns: []*schema.Column{LinksColumns[3]},
			},
		},
	}
	// VisitsColumns holds the columns for the "visits" table.
	VisitsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "short_code", Type: field.TypeString, Size: 32},
		{Name: "long_url", Type: field.TypeString, Size: 2048},
		{Name: "user_agent", Type: field.TypeString, Nullable: true, Size: 512},
		{Name: "ip_address", Type: field.TypeString, Nullable: true, Size: 64},
		{Name: "referer", Type: field.TypeString, Nullable: true, Size: 2048},
		{Name: "visited_at", Type: field.TypeTime},
	}
	// VisitsTable holds the schema information for the "visits" table.
	VisitsTable = &schema.Table{
		Name:       "visits",
		Columns:    VisitsColumns,
		PrimaryKey: []*schema.Column{VisitsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "visit_short_code",
				Unique:  false,
				Columns: []*schema.Column{VisitsColumns[1]},
			},
			{
				Name:    "visit_visited_at",
				Unique:  false,
				Columns: []*schema.Column{VisitsColumns[6]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		LinksTable,
		VisitsTable,
	}
)

func init() {
}
