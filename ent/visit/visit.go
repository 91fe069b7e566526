// Code generated by ent, DO NOT EDIT.

package visit

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the visit type in the database.
	Label = "visit"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldShortCode holds the string denoting the short_code field in the database.
	FieldShortCode = "short_code"
	// FieldLongURL holds the string denoting the long_url field in the database.
	FieldLongURL = "long_url"
	// FieldUserAgent holds the string denoting the user_agent field in the database.
	FieldUserAgent = "user_agent"
	// FieldIPAddress holds the string denoting the ip_address field in the database.
	FieldIPAddress = "ip_address"
	// FieldReferer holds the string denoting the referer field in the database.
	FieldReferer = "referer"
	// FieldVisitedAt holds the string denoting the visited_at field in the database.
	FieldVisitedAt = "visited_at"
	// Table holds the table name of the visit in the database.
	Table = "visits"
)

// Columns holds all SQL columns for visit fields.
var Columns = []string{
	FieldID,
	FieldShortCode,
	FieldLongURL,
	FieldUserAgent,
	FieldIPAddress,
	FieldReferer,
	FieldVisitedAt,
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
	// UserAgentValidator is a validator for the "user_agent" field. It is called by the builders before save.
	UserAgentValidator func(string) error
	// IPAddressValidator is a validator for the "ip_address" field. It is called by the builders before save.
	IPAddressValidator func(string) error
	// RefererValidator is a validator for the "referer" field. It is called by the builders before save.
	RefererValidator func(string) error
	// DefaultVisitedAt holds the default value on creation for the "visited_at" field.
	DefaultVisitedAt func() time.Time
)

// OrderOption defines the ordering options for the Visit queries.
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

// ByUserAgent orders the results by the user_agent field.
func ByUserAgent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserAgent, opts...).ToFunc()
}

// ByIPAddress orders the results by the ip_address field.
func ByIPAddress(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIPAddress, opts...).ToFunc()
}

// ByReferer orders the results by the referer field.
func ByReferer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReferer, opts...).ToFunc()
}

// ByVisitedAt orders the results by the visited_at field.
func ByVisitedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVisitedAt, opts...).ToFunc()
}
