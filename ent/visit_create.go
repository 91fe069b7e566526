// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"go-shortlink/ent/visit"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// VisitCreate is the builder for creating a Visit entity.
type VisitCreate struct {
	config
	mutation *VisitMutation
	hooks    []Hook
}

// SetShortCode sets the "short_code" field.
func (_c *VisitCreate) SetShortCode(v string) *VisitCreate {
	_c.mutation.SetShortCode(v)
	return _c
}

// SetLongURL sets the "long_url" field.
func (_c *VisitCreate) SetLongURL(v string) *VisitCreate {
	_c.mutation.SetLongURL(v)
	return _c
}

// SetUserAgent sets the "user_agent" field.
func (_c *VisitCreate) SetUserAgent(v string) *VisitCreate {
	_c.mutation.SetUserAgent(v)
	return _c
}

// SetNillableUserAgent sets the "user_agent" field if the given value is not nil.
func (_c *VisitCreate) SetNillableUserAgent(v *string) *VisitCreate {
	if v != nil {
		_c.SetUserAgent(*v)
	}
	return _c
}

// SetIPAddress sets the "ip_address" field.
func (_c *VisitCreate) SetIPAddress(v string) *VisitCreate {
	_c.mutation.SetIPAddress(v)
	return _c
}

// SetNillableIPAddress sets the "ip_address" field if the given value is not nil.
func (_c *VisitCreate) SetNillableIPAddress(v *string) *VisitCreate {
	if v != nil {
		_c.SetIPAddress(*v)
	}
	return _c
}

// SetReferer sets the "referer" field.
func (_c *VisitCreate) SetReferer(v string) *VisitCreate {
	_c.mutation.SetReferer(v)
	return _c
}

// SetNillableReferer sets the "referer" field if the given value is not nil.
func (_c *VisitCreate) SetNillableReferer(v *string) *VisitCreate {
	if v != nil {
		_c.SetReferer(*v)
	}
	return _c
}

// SetVisitedAt sets the "visited_at" field.
func (_c *VisitCreate) SetVisitedAt(v time.Time) *VisitCreate {
	_c.mutation.SetVisitedAt(v)
	return _c
}

// SetNillableVisitedAt sets the "visited_at" field if the given value is not nil.
func (_c *VisitCreate) SetNillableVisitedAt(v *time.Time) *VisitCreate {
	if v != nil {
		_c.SetVisitedAt(*v)
	}
	return _c
}

// Mutation returns the VisitMutation object of the builder.
func (_c *VisitCreate) Mutation() *VisitMutation {
	return _c.mutation
}

// Save creates the Visit in the database.
func (_c *VisitCreate) Save(ctx context.Context) (*Visit, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *VisitCreate) SaveX(ctx context.Context) *Visit {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VisitCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VisitCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *VisitCreate) defaults() {
	if _, ok := _c.mutation.VisitedAt(); !ok {
		v := visit.DefaultVisitedAt()
		_c.mutation.SetVisitedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *VisitCreate) check() error {
	if _, ok := _c.mutation.ShortCode(); !ok {
		return &ValidationError{Name: "short_code", err: errors.New(`ent: missing required field "Visit.short_code"`)}
	}
	if v, ok := _c.mutation.ShortCode(); ok {
		if err := visit.ShortCodeValidator(v); err != nil {
			return &ValidationError{Name: "short_code", err: fmt.Errorf(`ent: validator failed for field "Visit.short_code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LongURL(); !ok {
		return &ValidationError{Name: "long_url", err: errors.New(`ent: missing required field "Visit.long_url"`)}
	}
	if v, ok := _c.mutation.LongURL(); ok {
		if err := visit.LongURLValidator(v); err != nil {
			return &ValidationError{Name: "long_url", err: fmt.Errorf(`ent: validator failed for field "Visit.long_url": %w`, err)}
		}
	}
	if v, ok := _c.mutation.UserAgent(); ok {
		if err := visit.UserAgentValidator(v); err != nil {
			return &ValidationError{Name: "user_agent", err: fmt.Errorf(`ent: validator failed for field "Visit.user_agent": %w`, err)}
		}
	}
	if v, ok := _c.mutation.IPAddress(); ok {
		if err := visit.IPAddressValidator(v); err != nil {
			return &ValidationError{Name: "ip_address", err: fmt.Errorf(`ent: validator failed for field "Visit.ip_address": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Referer(); ok {
		if err := visit.RefererValidator(v); err != nil {
			return &ValidationError{Name: "referer", err: fmt.Errorf(`ent: validator failed for field "Visit.referer": %w`, err)}
		}
	}
	if _, ok := _c.mutation.VisitedAt(); !ok {
		return &ValidationError{Name: "visited_at", err: errors.New(`ent: missing required field "Visit.visited_at"`)}
	}
	return nil
}

func (_c *VisitCreate) sqlSave(ctx context.Context) (*Visit, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *VisitCreate) createSpec() (*Visit, *sqlgraph.CreateSpec) {
	var (
		_node = &Visit{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(visit.Table, sqlgraph.NewFieldSpec(visit.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ShortCode(); ok {
		_spec.SetField(visit.FieldShortCode, field.TypeString, value)
		_node.ShortCode = value
	}
	if value, ok := _c.mutation.LongURL(); ok {
		_spec.SetField(visit.FieldLongURL, field.TypeString, value)
		_node.LongURL = value
	}
	if value, ok := _c.mutation.UserAgent(); ok {
		_spec.SetField(visit.FieldUserAgent, field.TypeString, value)
		_node.UserAgent = value
	}
	if value, ok := _c.mutation.IPAddress(); ok {
		_spec.SetField(visit.FieldIPAddress, field.TypeString, value)
		_node.IPAddress = value
	}
	if value, ok := _c.mutation.Referer(); ok {
		_spec.SetField(visit.FieldReferer, field.TypeString, value)
		_node.Referer = value
	}
	if value, ok := _c.mutation.VisitedAt(); ok {
		_spec.SetField(visit.FieldVisitedAt, field.TypeTime, value)
		_node.VisitedAt = value
	}
	return _node, _spec
}

// VisitCreateBulk is the builder for creating many Visit entities in bulk.
type VisitCreateBulk struct {
	config
	err      error
	builders []*VisitCreate
}

// Save creates the Visit entities in the database.
func (_c *VisitCreateBulk) Save(ctx context.Context) ([]*Visit, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Visit, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*VisitMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *VisitCreateBulk) SaveX(ctx context.Context) []*Visit {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VisitCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VisitCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
