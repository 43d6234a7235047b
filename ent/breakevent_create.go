// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/breet/ent/breakevent"
)

// BreakEventCreate is the builder for creating a BreakEvent entity.
type BreakEventCreate struct {
	config
	mutation *BreakEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *BreakEventCreate) SetSequence(v int64) *BreakEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *BreakEventCreate) SetTimestamp(v time.Time) *BreakEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *BreakEventCreate) SetNillableTimestamp(v *time.Time) *BreakEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetBreakID sets the "break_id" field.
func (_c *BreakEventCreate) SetBreakID(v string) *BreakEventCreate {
	_c.mutation.SetBreakID(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *BreakEventCreate) SetCategory(v string) *BreakEventCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_c *BreakEventCreate) SetNillableCategory(v *string) *BreakEventCreate {
	if v != nil {
		_c.SetCategory(*v)
	}
	return _c
}

// SetBreakName sets the "break_name" field.
func (_c *BreakEventCreate) SetBreakName(v string) *BreakEventCreate {
	_c.mutation.SetBreakName(v)
	return _c
}

// SetNillableBreakName sets the "break_name" field if the given value is not nil.
func (_c *BreakEventCreate) SetNillableBreakName(v *string) *BreakEventCreate {
	if v != nil {
		_c.SetBreakName(*v)
	}
	return _c
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_c *BreakEventCreate) SetDurationMinutes(v int) *BreakEventCreate {
	_c.mutation.SetDurationMinutes(v)
	return _c
}

// SetWorkDurationMinutes sets the "work_duration_minutes" field.
func (_c *BreakEventCreate) SetWorkDurationMinutes(v int) *BreakEventCreate {
	_c.mutation.SetWorkDurationMinutes(v)
	return _c
}

// SetNillableWorkDurationMinutes sets the "work_duration_minutes" field if the given value is not nil.
func (_c *BreakEventCreate) SetNillableWorkDurationMinutes(v *int) *BreakEventCreate {
	if v != nil {
		_c.SetWorkDurationMinutes(*v)
	}
	return _c
}

// SetLabel sets the "label" field.
func (_c *BreakEventCreate) SetLabel(v string) *BreakEventCreate {
	_c.mutation.SetLabel(v)
	return _c
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (_c *BreakEventCreate) SetNillableLabel(v *string) *BreakEventCreate {
	if v != nil {
		_c.SetLabel(*v)
	}
	return _c
}

// SetCompleted sets the "completed" field.
func (_c *BreakEventCreate) SetCompleted(v bool) *BreakEventCreate {
	_c.mutation.SetCompleted(v)
	return _c
}

// SetWorkEndAt sets the "work_end_at" field.
func (_c *BreakEventCreate) SetWorkEndAt(v time.Time) *BreakEventCreate {
	_c.mutation.SetWorkEndAt(v)
	return _c
}

// SetNillableWorkEndAt sets the "work_end_at" field if the given value is not nil.
func (_c *BreakEventCreate) SetNillableWorkEndAt(v *time.Time) *BreakEventCreate {
	if v != nil {
		_c.SetWorkEndAt(*v)
	}
	return _c
}

// SetSource sets the "source" field.
func (_c *BreakEventCreate) SetSource(v string) *BreakEventCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_c *BreakEventCreate) SetNillableSource(v *string) *BreakEventCreate {
	if v != nil {
		_c.SetSource(*v)
	}
	return _c
}

// SetCorrelationID sets the "correlation_id" field.
func (_c *BreakEventCreate) SetCorrelationID(v string) *BreakEventCreate {
	_c.mutation.SetCorrelationID(v)
	return _c
}

// SetNillableCorrelationID sets the "correlation_id" field if the given value is not nil.
func (_c *BreakEventCreate) SetNillableCorrelationID(v *string) *BreakEventCreate {
	if v != nil {
		_c.SetCorrelationID(*v)
	}
	return _c
}

// Mutation returns the BreakEventMutation object of the builder.
func (_c *BreakEventCreate) Mutation() *BreakEventMutation {
	return _c.mutation
}

// Save creates the BreakEvent in the database.
func (_c *BreakEventCreate) Save(ctx context.Context) (*BreakEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BreakEventCreate) SaveX(ctx context.Context) *BreakEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BreakEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BreakEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BreakEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := breakevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Category(); !ok {
		v := breakevent.DefaultCategory
		_c.mutation.SetCategory(v)
	}
	if _, ok := _c.mutation.BreakName(); !ok {
		v := breakevent.DefaultBreakName
		_c.mutation.SetBreakName(v)
	}
	if _, ok := _c.mutation.WorkDurationMinutes(); !ok {
		v := breakevent.DefaultWorkDurationMinutes
		_c.mutation.SetWorkDurationMinutes(v)
	}
	if _, ok := _c.mutation.Label(); !ok {
		v := breakevent.DefaultLabel
		_c.mutation.SetLabel(v)
	}
	if _, ok := _c.mutation.Source(); !ok {
		v := breakevent.DefaultSource
		_c.mutation.SetSource(v)
	}
	if _, ok := _c.mutation.CorrelationID(); !ok {
		v := breakevent.DefaultCorrelationID
		_c.mutation.SetCorrelationID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BreakEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "BreakEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "BreakEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.BreakID(); !ok {
		return &ValidationError{Name: "break_id", err: errors.New(`ent: missing required field "BreakEvent.break_id"`)}
	}
	if v, ok := _c.mutation.BreakID(); ok {
		if err := breakevent.BreakIDValidator(v); err != nil {
			return &ValidationError{Name: "break_id", err: fmt.Errorf(`ent: validator failed for field "BreakEvent.break_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "BreakEvent.category"`)}
	}
	if _, ok := _c.mutation.BreakName(); !ok {
		return &ValidationError{Name: "break_name", err: errors.New(`ent: missing required field "BreakEvent.break_name"`)}
	}
	if _, ok := _c.mutation.DurationMinutes(); !ok {
		return &ValidationError{Name: "duration_minutes", err: errors.New(`ent: missing required field "BreakEvent.duration_minutes"`)}
	}
	if _, ok := _c.mutation.WorkDurationMinutes(); !ok {
		return &ValidationError{Name: "work_duration_minutes", err: errors.New(`ent: missing required field "BreakEvent.work_duration_minutes"`)}
	}
	if _, ok := _c.mutation.Label(); !ok {
		return &ValidationError{Name: "label", err: errors.New(`ent: missing required field "BreakEvent.label"`)}
	}
	if _, ok := _c.mutation.Completed(); !ok {
		return &ValidationError{Name: "completed", err: errors.New(`ent: missing required field "BreakEvent.completed"`)}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "BreakEvent.source"`)}
	}
	if _, ok := _c.mutation.CorrelationID(); !ok {
		return &ValidationError{Name: "correlation_id", err: errors.New(`ent: missing required field "BreakEvent.correlation_id"`)}
	}
	return nil
}

func (_c *BreakEventCreate) sqlSave(ctx context.Context) (*BreakEvent, error) {
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

func (_c *BreakEventCreate) createSpec() (*BreakEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &BreakEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(breakevent.Table, sqlgraph.NewFieldSpec(breakevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(breakevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(breakevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.BreakID(); ok {
		_spec.SetField(breakevent.FieldBreakID, field.TypeString, value)
		_node.BreakID = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(breakevent.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.BreakName(); ok {
		_spec.SetField(breakevent.FieldBreakName, field.TypeString, value)
		_node.BreakName = value
	}
	if value, ok := _c.mutation.DurationMinutes(); ok {
		_spec.SetField(breakevent.FieldDurationMinutes, field.TypeInt, value)
		_node.DurationMinutes = value
	}
	if value, ok := _c.mutation.WorkDurationMinutes(); ok {
		_spec.SetField(breakevent.FieldWorkDurationMinutes, field.TypeInt, value)
		_node.WorkDurationMinutes = value
	}
	if value, ok := _c.mutation.Label(); ok {
		_spec.SetField(breakevent.FieldLabel, field.TypeString, value)
		_node.Label = value
	}
	if value, ok := _c.mutation.Completed(); ok {
		_spec.SetField(breakevent.FieldCompleted, field.TypeBool, value)
		_node.Completed = value
	}
	if value, ok := _c.mutation.WorkEndAt(); ok {
		_spec.SetField(breakevent.FieldWorkEndAt, field.TypeTime, value)
		_node.WorkEndAt = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(breakevent.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.CorrelationID(); ok {
		_spec.SetField(breakevent.FieldCorrelationID, field.TypeString, value)
		_node.CorrelationID = value
	}
	return _node, _spec
}

// BreakEventCreateBulk is the builder for creating many BreakEvent entities in bulk.
type BreakEventCreateBulk struct {
	config
	err      error
	builders []*BreakEventCreate
}

// Save creates the BreakEvent entities in the database.
func (_c *BreakEventCreateBulk) Save(ctx context.Context) ([]*BreakEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BreakEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BreakEventMutation)
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
func (_c *BreakEventCreateBulk) SaveX(ctx context.Context) []*BreakEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BreakEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BreakEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
