// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Link is the predicate function for link builders.
type Link func(*sql.Selector)

// Visit is the predicate function for visit builders.
type Visit func(*sql.Selector)
