// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"go-shortlink/ent/predicate"
	"go-shortlink/ent/visit"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// VisitUpdate is the builder for updating Visit entities.
type VisitUpdate struct {
	config
	hooks    []Hook
	mutation *VisitMutation
}

// Where appends a list predicates to the VisitUpdate builder.
func (_u *VisitUpdate) Where(ps ...predicate.Visit) *VisitUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetShortCode sets the "short_code" field.
func (_u *VisitUpdate) SetShortCode(v string) *VisitUpdate {
	_u.mutation.SetShortCode(v)
	return _u
}

// SetNillableShortCode sets the "short_code" field if the given value is not nil.
func (_u *VisitUpdate) SetNillableShortCode(v *string) *VisitUpdate {
	if v != nil {
		_u.SetShortCode(*v)
	}
	return _u
}

// SetLongURL sets the "long_url" field.
func (_u *VisitUpdate) SetLongURL(v string) *VisitUpdate {
	_u.mutation.SetLongURL(v)
	return _u
}

// SetNillableLongURL sets the "long_url" field if the given value is not nil.
func (_u *VisitUpdate) SetNillableLongURL(v *string) *VisitUpdate {
	if v != nil {
		_u.SetLongURL(*v)
	}
	return _u
}

// SetUserAgent sets the "user_agent" field.
func (_u *VisitUpdate) SetUserAgent(v string) *VisitUpdate {
	_u.mutation.SetUserAgent(v)
	return _u
}

// SetNillableUserAgent sets the "user_agent" field if the given value is not nil.
func (_u *VisitUpdate) SetNillableUserAgent(v *string) *VisitUpdate {
	if v != nil {
		_u.SetUserAgent(*v)
	}
	return _u
}

// ClearUserAgent clears the value of the "user_agent" field.
func (_u *VisitUpdate) ClearUserAgent() *VisitUpdate {
	_u.mutation.ClearUserAgent()
	return _u
}

// SetIPAddress sets the "ip_address" field.
func (_u *VisitUpdate) SetIPAddress(v string) *VisitUpdate {
	_u.mutation.SetIPAddress(v)
	return _u
}

// SetNillableIPAddress sets the "ip_address" field if the given value is not nil.
func (_u *VisitUpdate) SetNillableIPAddress(v *string) *VisitUpdate {
	if v != nil {
		_u.SetIPAddress(*v)
	}
	return _u
}

// ClearIPAddress clears the value of the "ip_address" field.
func (_u *VisitUpdate) ClearIPAddress() *VisitUpdate {
	_u.mutation.ClearIPAddress()
	return _u
}

// SetReferer sets the "referer" field.
func (_u *VisitUpdate) SetReferer(v string) *VisitUpdate {
	_u.mutation.SetReferer(v)
	return _u
}

// SetNillableReferer sets the "referer" field if the given value is not nil.
func (_u *VisitUpdate) SetNillableReferer(v *string) *VisitUpdate {
	if v != nil {
		_u.SetReferer(*v)
	}
	return _u
}

// ClearReferer clears the value of the "referer" field.
func (_u *VisitUpdate) ClearReferer() *VisitUpdate {
	_u.mutation.ClearReferer()
	return _u
}

// Mutation returns the VisitMutation object of the builder.
func (_u *VisitUpdate) Mutation() *VisitMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *VisitUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VisitUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *VisitUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VisitUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VisitUpdate) check() error {
	if v, ok := _u.mutation.ShortCode(); ok {
		if err := visit.ShortCodeValidator(v); err != nil {
			return &ValidationError{Name: "short_code", err: fmt.Errorf(`ent: validator failed for field "Visit.short_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LongURL(); ok {
		if err := visit.LongURLValidator(v); err != nil {
			return &ValidationError{Name: "long_url", err: fmt.Errorf(`ent: validator failed for field "Visit.long_url": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserAgent(); ok {
		if err := visit.UserAgentValidator(v); err != nil {
			return &ValidationError{Name: "user_agent", err: fmt.Errorf(`ent: validator failed for field "Visit.user_agent": %w`, err)}
		}
	}
	if v, ok := _u.mutation.IPAddress(); ok {
		if err := visit.IPAddressValidator(v); err != nil {
			return &ValidationError{Name: "ip_address", err: fmt.Errorf(`ent: validator failed for field "Visit.ip_address": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Referer(); ok {
		if err := visit.RefererValidator(v); err != nil {
			return &ValidationError{Name: "referer", err: fmt.Errorf(`ent: validator failed for field "Visit.referer": %w`, err)}
		}
	}
	return nil
}

func (_u *VisitUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(visit.Table, visit.Columns, sqlgraph.NewFieldSpec(visit.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ShortCode(); ok {
		_spec.SetField(visit.FieldShortCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.LongURL(); ok {
		_spec.SetField(visit.FieldLongURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserAgent(); ok {
		_spec.SetField(visit.FieldUserAgent, field.TypeString, value)
	}
	if _u.mutation.UserAgentCleared() {
		_spec.ClearField(visit.FieldUserAgent, field.TypeString)
	}
	if value, ok := _u.mutation.IPAddress(); ok {
		_spec.SetField(visit.FieldIPAddress, field.TypeString, value)
	}
	if _u.mutation.IPAddressCleared() {
		_spec.ClearField(visit.FieldIPAddress, field.TypeString)
	}
	if value, ok := _u.mutation.Referer(); ok {
		_spec.SetField(visit.FieldReferer, field.TypeString, value)
	}
	if _u.mutation.RefererCleared() {
		_spec.ClearField(visit.FieldReferer, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{visit.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// VisitUpdateOne is the builder for updating a single Visit entity.
type VisitUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VisitMutation
}

// SetShortCode sets the "short_code" field.
func (_u *VisitUpdateOne) SetShortCode(v string) *VisitUpdateOne {
	_u.mutation.SetShortCode(v)
	return _u
}

// SetNillableShortCode sets the "short_code" field if the given value is not nil.
func (_u *VisitUpdateOne) SetNillableShortCode(v *string) *VisitUpdateOne {
	if v != nil {
		_u.SetShortCode(*v)
	}
	return _u
}

// SetLongURL sets the "long_url" field.
func (_u *VisitUpdateOne) SetLongURL(v string) *VisitUpdateOne {
	_u.mutation.SetLongURL(v)
	return _u
}

// SetNillableLongURL sets the "long_url" field if the given value is not nil.
func (_u *VisitUpdateOne) SetNillableLongURL(v *string) *VisitUpdateOne {
	if v != nil {
		_u.SetLongURL(*v)
	}
	return _u
}

// SetUserAgent sets the "user_agent" field.
func (_u *VisitUpdateOne) SetUserAgent(v string) *VisitUpdateOne {
	_u.mutation.SetUserAgent(v)
	return _u
}

// SetNillableUserAgent sets the "user_agent" field if the given value is not nil.
func (_u *VisitUpdateOne) SetNillableUserAgent(v *string) *VisitUpdateOne {
	if v != nil {
		_u.SetUserAgent(*v)
	}
	return _u
}

// ClearUserAgent clears the value of the "user_agent" field.
func (_u *VisitUpdateOne) ClearUserAgent() *VisitUpdateOne {
	_u.mutation.ClearUserAgent()
	return _u
}

// SetIPAddress sets the "ip_address" field.
func (_u *VisitUpdateOne) SetIPAddress(v string) *VisitUpdateOne {
	_u.mutation.SetIPAddress(v)
	return _u
}

// SetNillableIPAddress sets the "ip_address" field if the given value is not nil.
func (_u *VisitUpdateOne) SetNillableIPAddress(v *string) *VisitUpdateOne {
	if v != nil {
		_u.SetIPAddress(*v)
	}
	return _u
}

// ClearIPAddress clears the value of the "ip_address" field.
func (_u *VisitUpdateOne) ClearIPAddress() *VisitUpdateOne {
	_u.mutation.ClearIPAddress()
	return _u
}

// SetReferer sets the "referer" field.
func (_u *VisitUpdateOne) SetReferer(v string) *VisitUpdateOne {
	_u.mutation.SetReferer(v)
	return _u
}

// SetNillableReferer sets the "referer" field if the given value is not nil.
func (_u *VisitUpdateOne) SetNillableReferer(v *string) *VisitUpdateOne {
	if v != nil {
		_u.SetReferer(*v)
	}
	return _u
}

// ClearReferer clears the value of the "referer" field.
func (_u *VisitUpdateOne) ClearReferer() *VisitUpdateOne {
	_u.mutation.ClearReferer()
	return _u
}

// Mutation returns the VisitMutation object of the builder.
func (_u *VisitUpdateOne) Mutation() *VisitMutation {
	return _u.mutation
}

// Where appends a list predicates to the VisitUpdate builder.
func (_u *VisitUpdateOne) Where(ps ...predicate.Visit) *VisitUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *VisitUpdateOne) Select(field string, fields ...string) *VisitUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Visit entity.
func (_u *VisitUpdateOne) Save(ctx context.Context) (*Visit, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VisitUpdateOne) SaveX(ctx context.Context) *Visit {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *VisitUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VisitUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VisitUpdateOne) check() error {
	if v, ok := _u.mutation.ShortCode(); ok {
		if err := visit.ShortCodeValidator(v); err != nil {
			return &ValidationError{Name: "short_code", err: fmt.Errorf(`ent: validator failed for field "Visit.short_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LongURL(); ok {
		if err := visit.LongURLValidator(v); err != nil {
			return &ValidationError{Name: "long_url", err: fmt.Errorf(`ent: validator failed for field "Visit.long_url": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserAgent(); ok {
		if err := visit.UserAgentValidator(v); err != nil {
			return &ValidationError{Name: "user_agent", err: fmt.Errorf(`ent: validator failed for field "Visit.user_agent": %w`, err)}
		}
	}
	if v, ok := _u.mutation.IPAddress(); ok {
		if err := visit.IPAddressValidator(v); err != nil {
			return &ValidationError{Name: "ip_address", err: fmt.Errorf(`ent: validator failed for field "Visit.ip_address": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Referer(); ok {
		if err := visit.RefererValidator(v); err != nil {
			return &ValidationError{Name: "referer", err: fmt.Errorf(`ent: validator failed for field "Visit.referer": %w`, err)}
		}
	}
	return nil
}

func (_u *VisitUpdateOne) sqlSave(ctx context.Context) (_node *Visit, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(visit.Table, visit.Columns, sqlgraph.NewFieldSpec(visit.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Visit.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, visit.FieldID)
		for _, f := range fields {
			if !visit.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != visit.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ShortCode(); ok {
		_spec.SetField(visit.FieldShortCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.LongURL(); ok {
		_spec.SetField(visit.FieldLongURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserAgent(); ok {
		_spec.SetField(visit.FieldUserAgent, field.TypeString, value)
	}
	if _u.mutation.UserAgentCleared() {
		_spec.ClearField(visit.FieldUserAgent, field.TypeString)
	}
	if value, ok := _u.mutation.IPAddress(); ok {
		_spec.SetField(visit.FieldIPAddress, field.TypeString, value)
	}
	if _u.mutation.IPAddressCleared() {
		_spec.ClearField(visit.FieldIPAddress, field.TypeString)
	}
	if value, ok := _u.mutation.Referer(); ok {
		_spec.SetField(visit.FieldReferer, field.TypeString, value)
	}
	if _u.mutation.RefererCleared() {
		_spec.ClearField(visit.FieldReferer, field.TypeString)
	}
	_node = &Visit{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{visit.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
