// Code generated by ent, DO NOT EDIT.

package link

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the link type in the database.
	Label = "link"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldShortCode holds the string denoting the short_code field in the database.
	FieldShortCode = "short_code"
	// FieldLongURL holds the string denoting the long_url field in the database.
	FieldLongURL = "long_url"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldClickCount holds the string denoting the click_count field in the database.
	FieldClickCount = "click_count"
	// FieldContactEmail holds the string denoting the contact_email field in the database.
	FieldContactEmail = "contact_email"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the link in the database.
	Table = "links"
)

// Columns holds all SQL columns for link fields.
var Columns = []string{
	FieldID,
	FieldShortCode,
	FieldLongURL,
	FieldState,
	FieldClickCount,
	FieldContactEmail,
	FieldDescription,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// ShortCodeValidator is a validator for the "short_code" field. It is called by the builders before save.
	ShortCodeValidator func(string) error
	// LongURLValidator is a validator for the "long_url" field. It is called by the builders before save.
	LongURLValidator func(string) error
	// DefaultClickCount holds the default value on creation for the "click_count" field.
	DefaultClickCount int64
	// ClickCountValidator is a validator for the "click_count" field. It is called by the builders before save.
	ClickCountValidator func(int64) error
	// DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	DescriptionValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// State defines the type for the "state" enum field.
type State string

// StateActive is the default value of the State enum.
const DefaultState = StateActive

// State values.
const (
	StateActive   State = "active"
	StateInactive State = "inactive"
)

func (s State) String() string {
	return string(s)
}

// StateValidator is a validator for the "state" field enum values. It is called by the builders before save.
func StateValidator(s State) error {
	switch s {
	case StateActive, StateInactive:
		return nil
	default:
		return fmt.Errorf("link: invalid enum value for state field: %q", s)
	}
}

// OrderOption defines the ordering options for the Link queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByShortCode orders the results by the short_code field.
func ByShortCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldShortCode, opts...).ToFunc()
}

// ByLongURL orders the results by the long_url field.
func ByLongURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLongURL, opts...).ToFunc()
}

// ByState orders the results by the state field.
func ByState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldState, opts...).ToFunc()
}

// ByClickCount orders the results by the click_count field.
func ByClickCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClickCount, opts...).ToFunc()
}

// ByContactEmail orders the results by the contact_email field.
func ByContactEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContactEmail, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
