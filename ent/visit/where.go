// Code generated by ent, DO NOT EDIT.

package visit

import (
	"go-shortlink/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Visit {
	return predicate.Visit(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Visit {
	return predicate.Visit(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Visit {
	return predicate.Visit(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Visit {
	return predicate.Visit(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Visit {
	return predicate.Visit(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Visit {
	return predicate.Visit(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Visit {
	return predicate.Visit(sql.FieldLTE(FieldID, id))
}

// ShortCode applies equality check predicate on the "short_code" field. It's identical to ShortCodeEQ.
func ShortCode(v string) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldShortCode, v))
}

// LongURL applies equality check predicate on the "long_url" field. It's identical to LongURLEQ.
func LongURL(v string) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldLongURL, v))
}

// UserAgent applies equality check predicate on the "user_agent" field. It's identical to UserAgentEQ.
func UserAgent(v string) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldUserAgent, v))
}

// IPAddress applies equality check predicate on the "ip_address" field. It's identical to IPAddressEQ.
func IPAddress(v string) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldIPAddress, v))
}

// Referer applies equality check predicate on the "referer" field. It's identical to RefererEQ.
func Referer(v string) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldReferer, v))
}

// VisitedAt applies equality check predicate on the "visited_at" field. It's identical to VisitedAtEQ.
func VisitedAt(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldVisitedAt, v))
}

// ShortCodeEQ applies the EQ predicate on the "short_code" field.
func ShortCodeEQ(v string) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldShortCode, v))
}

// ShortCodeNEQ applies the NEQ predicate on the "short_code" field.
func ShortCodeNEQ(v string) predicate.Visit {
	return predicate.Visit(sql.FieldNEQ(FieldShortCode, v))
}

// ShortCodeIn applies the In predicate on the "short_code" field.
func ShortCodeIn(vs ...string) predicate.Visit {
	return predicate.Visit(sql.FieldIn(FieldShortCode, vs...))
}

// ShortCodeNotIn applies the NotIn predicate on the "short_code" field.
func ShortCodeNotIn(vs ...string) predicate.Visit {
	return predicate.Visit(sql.FieldNotIn(FieldShortCode, vs...))
}

// ShortCodeGT applies the GT predicate on the "short_code" field.
func ShortCodeGT(v string) predicate.Visit {
	return predicate.Visit(sql.FieldGT(FieldShortCode, v))
}

// ShortCodeGTE applies the GTE predicate on the "short_code" field.
func ShortCodeGTE(v string) predicate.Visit {
	return predicate.Visit(sql.FieldGTE(FieldShortCode, v))
}

// ShortCodeLT applies the LT predicate on the "short_code" field.
func ShortCodeLT(v string) predicate.Visit {
	return predicate.Visit(sql.FieldLT(FieldShortCode, v))
}

// ShortCodeLTE applies the LTE predicate on the "short_code" field.
func ShortCodeLTE(v string) predicate.Visit {
	return predicate.Visit(sql.FieldLTE(FieldShortCode, v))
}

// ShortCodeContains applies the Contains predicate on the "short_code" field.
func ShortCodeContains(v string) predicate.Visit {
	return predicate.Visit(sql.FieldContains(FieldShortCode, v))
}

// ShortCodeHasPrefix applies the HasPrefix predicate on the "short_code" field.
func ShortCodeHasPrefix(v string) predicate.Visit {
	return predicate.Visit(sql.FieldHasPrefix(FieldShortCode, v))
}

// ShortCodeHasSuffix applies the HasSuffix predicate on the "short_code" field.
func ShortCodeHasSuffix(v string) predicate.Visit {
	return predicate.Visit(sql.FieldHasSuffix(FieldShortCode, v))
}

// ShortCodeEqualFold applies the EqualFold predicate on the "short_code" field.
func ShortCodeEqualFold(v string) predicate.Visit {
	return predicate.Visit(sql.FieldEqualFold(FieldShortCode, v))
}

// ShortCodeContainsFold applies the ContainsFold predicate on the "short_code" field.
func ShortCodeContainsFold(v string) predicate.Visit {
	return predicate.Visit(sql.FieldContainsFold(FieldShortCode, v))
}

// LongURLEQ applies the EQ predicate on the "long_url" field.
func LongURLEQ(v string) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldLongURL, v))
}

// LongURLNEQ applies the NEQ predicate on the "long_url" field.
func LongURLNEQ(v string) predicate.Visit {
	return predicate.Visit(sql.FieldNEQ(FieldLongURL, v))
}

// LongURLIn applies the In predicate on the "long_url" field.
func LongURLIn(vs ...string) predicate.Visit {
	return predicate.Visit(sql.FieldIn(FieldLongURL, vs...))
}

// LongURLNotIn applies the NotIn predicate on the "long_url" field.
func LongURLNotIn(vs ...string) predicate.Visit {
	return predicate.Visit(sql.FieldNotIn(FieldLongURL, vs...))
}

// LongURLGT applies the GT predicate on the "long_url" field.
func LongURLGT(v string) predicate.Visit {
	return predicate.Visit(sql.FieldGT(FieldLongURL, v))
}

// LongURLGTE applies the GTE predicate on the "long_url" field.
func LongURLGTE(v string) predicate.Visit {
	return predicate.Visit(sql.FieldGTE(FieldLongURL, v))
}

// LongURLLT applies the LT predicate on the "long_url" field.
func LongURLLT(v string) predicate.Visit {
	return predicate.Visit(sql.FieldLT(FieldLongURL, v))
}

// LongURLLTE applies the LTE predicate on the "long_url" field.
func LongURLLTE(v string) predicate.Visit {
	return predicate.Visit(sql.FieldLTE(FieldLongURL, v))
}

// LongURLContains applies the Contains predicate on the "long_url" field.
func LongURLContains(v string) predicate.Visit {
	return predicate.Visit(sql.FieldContains(FieldLongURL, v))
}

// LongURLHasPrefix applies the HasPrefix predicate on the "long_url" field.
func LongURLHasPrefix(v string) predicate.Visit {
	return predicate.Visit(sql.FieldHasPrefix(FieldLongURL, v))
}

// LongURLHasSuffix applies the HasSuffix predicate on the "long_url" field.
func LongURLHasSuffix(v string) predicate.Visit {
	return predicate.Visit(sql.FieldHasSuffix(FieldLongURL, v))
}

// LongURLEqualFold applies the EqualFold predicate on the "long_url" field.
func LongURLEqualFold(v string) predicate.Visit {
	return predicate.Visit(sql.FieldEqualFold(FieldLongURL, v))
}

// LongURLContainsFold applies the ContainsFold predicate on the "long_url" field.
func LongURLContainsFold(v string) predicate.Visit {
	return predicate.Visit(sql.FieldContainsFold(FieldLongURL, v))
}

// UserAgentEQ applies the EQ predicate on the "user_agent" field.
func UserAgentEQ(v string) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldUserAgent, v))
}

// UserAgentNEQ applies the NEQ predicate on the "user_agent" field.
func UserAgentNEQ(v string) predicate.Visit {
	return predicate.Visit(sql.FieldNEQ(FieldUserAgent, v))
}

// UserAgentIn applies the In predicate on the "user_agent" field.
func UserAgentIn(vs ...string) predicate.Visit {
	return predicate.Visit(sql.FieldIn(FieldUserAgent, vs...))
}

// UserAgentNotIn applies the NotIn predicate on the "user_agent" field.
func UserAgentNotIn(vs ...string) predicate.Visit {
	return predicate.Visit(sql.FieldNotIn(FieldUserAgent, vs...))
}

// UserAgentGT applies the GT predicate on the "user_agent" field.
func UserAgentGT(v string) predicate.Visit {
	return predicate.Visit(sql.FieldGT(FieldUserAgent, v))
}

// UserAgentGTE applies the GTE predicate on the "user_agent" field.
func UserAgentGTE(v string) predicate.Visit {
	return predicate.Visit(sql.FieldGTE(FieldUserAgent, v))
}

// UserAgentLT applies the LT predicate on the "user_agent" field.
func UserAgentLT(v string) predicate.Visit {
	return predicate.Visit(sql.FieldLT(FieldUserAgent, v))
}

// UserAgentLTE applies the LTE predicate on the "user_agent" field.
func UserAgentLTE(v string) predicate.Visit {
	return predicate.Visit(sql.FieldLTE(FieldUserAgent, v))
}

// UserAgentContains applies the Contains predicate on the "user_agent" field.
func UserAgentContains(v string) predicate.Visit {
	return predicate.Visit(sql.FieldContains(FieldUserAgent, v))
}

// UserAgentHasPrefix applies the HasPrefix predicate on the "user_agent" field.
func UserAgentHasPrefix(v string) predicate.Visit {
	return predicate.Visit(sql.FieldHasPrefix(FieldUserAgent, v))
}

// UserAgentHasSuffix applies the HasSuffix predicate on the "user_agent" field.
func UserAgentHasSuffix(v string) predicate.Visit {
	return predicate.Visit(sql.FieldHasSuffix(FieldUserAgent, v))
}

// UserAgentIsNil applies the IsNil predicate on the "user_agent" field.
func UserAgentIsNil() predicate.Visit {
	return predicate.Visit(sql.FieldIsNull(FieldUserAgent))
}

// UserAgentNotNil applies the NotNil predicate on the "user_agent" field.
func UserAgentNotNil() predicate.Visit {
	return predicate.Visit(sql.FieldNotNull(FieldUserAgent))
}

// UserAgentEqualFold applies the EqualFold predicate on the "user_agent" field.
func UserAgentEqualFold(v string) predicate.Visit {
	return predicate.Visit(sql.FieldEqualFold(FieldUserAgent, v))
}

// UserAgentContainsFold applies the ContainsFold predicate on the "user_agent" field.
func UserAgentContainsFold(v string) predicate.Visit {
	return predicate.Visit(sql.FieldContainsFold(FieldUserAgent, v))
}

// IPAddressEQ applies the EQ predicate on the "ip_address" field.
func IPAddressEQ(v string) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldIPAddress, v))
}

// IPAddressNEQ applies the NEQ predicate on the "ip_address" field.
func IPAddressNEQ(v string) predicate.Visit {
	return predicate.Visit(sql.FieldNEQ(FieldIPAddress, v))
}

// IPAddressIn applies the In predicate on the "ip_address" field.
func IPAddressIn(vs ...string) predicate.Visit {
	return predicate.Visit(sql.FieldIn(FieldIPAddress, vs...))
}

// IPAddressNotIn applies the NotIn predicate on the "ip_address" field.
func IPAddressNotIn(vs ...string) predicate.Visit {
	return predicate.Visit(sql.FieldNotIn(FieldIPAddress, vs...))
}

// IPAddressGT applies the GT predicate on the "ip_address" field.
func IPAddressGT(v string) predicate.Visit {
	return predicate.Visit(sql.FieldGT(FieldIPAddress, v))
}

// IPAddressGTE applies the GTE predicate on the "ip_address" field.
func IPAddressGTE(v string) predicate.Visit {
	return predicate.Visit(sql.FieldGTE(FieldIPAddress, v))
}

// IPAddressLT applies the LT predicate on the "ip_address" field.
func IPAddressLT(v string) predicate.Visit {
	return predicate.Visit(sql.FieldLT(FieldIPAddress, v))
}

// IPAddressLTE applies the LTE predicate on the "ip_address" field.
func IPAddressLTE(v string) predicate.Visit {
	return predicate.Visit(sql.FieldLTE(FieldIPAddress, v))
}

// IPAddressContains applies the Contains predicate on the "ip_address" field.
func IPAddressContains(v string) predicate.Visit {
	return predicate.Visit(sql.FieldContains(FieldIPAddress, v))
}

// IPAddressHasPrefix applies the HasPrefix predicate on the "ip_address" field.
func IPAddressHasPrefix(v string) predicate.Visit {
	return predicate.Visit(sql.FieldHasPrefix(FieldIPAddress, v))
}

// IPAddressHasSuffix applies the HasSuffix predicate on the "ip_address" field.
func IPAddressHasSuffix(v string) predicate.Visit {
	return predicate.Visit(sql.FieldHasSuffix(FieldIPAddress, v))
}

// IPAddressIsNil applies the IsNil predicate on the "ip_address" field.
func IPAddressIsNil() predicate.Visit {
	return predicate.Visit(sql.FieldIsNull(FieldIPAddress))
}

// IPAddressNotNil applies the NotNil predicate on the "ip_address" field.
func IPAddressNotNil() predicate.Visit {
	return predicate.Visit(sql.FieldNotNull(FieldIPAddress))
}

// IPAddressEqualFold applies the EqualFold predicate on the "ip_address" field.
func IPAddressEqualFold(v string) predicate.Visit {
	return predicate.Visit(sql.FieldEqualFold(FieldIPAddress, v))
}

// IPAddressContainsFold applies the ContainsFold predicate on the "ip_address" field.
func IPAddressContainsFold(v string) predicate.Visit {
	return predicate.Visit(sql.FieldContainsFold(FieldIPAddress, v))
}

// RefererEQ applies the EQ predicate on the "referer" field.
func RefererEQ(v string) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldReferer, v))
}

// RefererNEQ applies the NEQ predicate on the "referer" field.
func RefererNEQ(v string) predicate.Visit {
	return predicate.Visit(sql.FieldNEQ(FieldReferer, v))
}

// RefererIn applies the In predicate on the "referer" field.
func RefererIn(vs ...string) predicate.Visit {
	return predicate.Visit(sql.FieldIn(FieldReferer, vs...))
}

// RefererNotIn applies the NotIn predicate on the "referer" field.
func RefererNotIn(vs ...string) predicate.Visit {
	return predicate.Visit(sql.FieldNotIn(FieldReferer, vs...))
}

// RefererGT applies the GT predicate on the "referer" field.
func RefererGT(v string) predicate.Visit {
	return predicate.Visit(sql.FieldGT(FieldReferer, v))
}

// RefererGTE applies the GTE predicate on the "referer" field.
func RefererGTE(v string) predicate.Visit {
	return predicate.Visit(sql.FieldGTE(FieldReferer, v))
}

// RefererLT applies the LT predicate on the "referer" field.
func RefererLT(v string) predicate.Visit {
	return predicate.Visit(sql.FieldLT(FieldReferer, v))
}

// RefererLTE applies the LTE predicate on the "referer" field.
func RefererLTE(v string) predicate.Visit {
	return predicate.Visit(sql.FieldLTE(FieldReferer, v))
}

// RefererContains applies the Contains predicate on the "referer" field.
func RefererContains(v string) predicate.Visit {
	return predicate.Visit(sql.FieldContains(FieldReferer, v))
}

// RefererHasPrefix applies the HasPrefix predicate on the "referer" field.
func RefererHasPrefix(v string) predicate.Visit {
	return predicate.Visit(sql.FieldHasPrefix(FieldReferer, v))
}

// RefererHasSuffix applies the HasSuffix predicate on the "referer" field.
func RefererHasSuffix(v string) predicate.Visit {
	return predicate.Visit(sql.FieldHasSuffix(FieldReferer, v))
}

// RefererIsNil applies the IsNil predicate on the "referer" field.
func RefererIsNil() predicate.Visit {
	return predicate.Visit(sql.FieldIsNull(FieldReferer))
}

// RefererNotNil applies the NotNil predicate on the "referer" field.
func RefererNotNil() predicate.Visit {
	return predicate.Visit(sql.FieldNotNull(FieldReferer))
}

// RefererEqualFold applies the EqualFold predicate on the "referer" field.
func RefererEqualFold(v string) predicate.Visit {
	return predicate.Visit(sql.FieldEqualFold(FieldReferer, v))
}

// RefererContainsFold applies the ContainsFold predicate on the "referer" field.
func RefererContainsFold(v string) predicate.Visit {
	return predicate.Visit(sql.FieldContainsFold(FieldReferer, v))
}

// VisitedAtEQ applies the EQ predicate on the "visited_at" field.
func VisitedAtEQ(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldVisitedAt, v))
}

// VisitedAtNEQ applies the NEQ predicate on the "visited_at" field.
func VisitedAtNEQ(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldNEQ(FieldVisitedAt, v))
}

// VisitedAtIn applies the In predicate on the "visited_at" field.
func VisitedAtIn(vs ...time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldIn(FieldVisitedAt, vs...))
}

// VisitedAtNotIn applies the NotIn predicate on the "visited_at" field.
func VisitedAtNotIn(vs ...time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldNotIn(FieldVisitedAt, vs...))
}

// VisitedAtGT applies the GT predicate on the "visited_at" field.
func VisitedAtGT(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldGT(FieldVisitedAt, v))
}

// VisitedAtGTE applies the GTE predicate on the "visited_at" field.
func VisitedAtGTE(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldGTE(FieldVisitedAt, v))
}

// VisitedAtLT applies the LT predicate on the "visited_at" field.
func VisitedAtLT(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldLT(FieldVisitedAt, v))
}

// VisitedAtLTE applies the LTE predicate on the "visited_at" field.
func VisitedAtLTE(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldLTE(FieldVisitedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Visit) predicate.Visit {
	return predicate.Visit(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Visit) predicate.Visit {
	return predicate.Visit(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Visit) predicate.Visit {
	return predicate.Visit(sql.NotPredicates(p))
}
