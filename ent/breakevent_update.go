// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/breet/ent/breakevent"
	"github.com/abhisek/breet/ent/predicate"
)

// BreakEventUpdate is the builder for updating BreakEvent entities.
type BreakEventUpdate struct {
	config
	hooks    []Hook
	mutation *BreakEventMutation
}

// Where appends a list predicates to the BreakEventUpdate builder.
func (_u *BreakEventUpdate) Where(ps ...predicate.BreakEvent) *BreakEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBreakID sets the "break_id" field.
func (_u *BreakEventUpdate) SetBreakID(v string) *BreakEventUpdate {
	_u.mutation.SetBreakID(v)
	return _u
}

// SetNillableBreakID sets the "break_id" field if the given value is not nil.
func (_u *BreakEventUpdate) SetNillableBreakID(v *string) *BreakEventUpdate {
	if v != nil {
		_u.SetBreakID(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *BreakEventUpdate) SetCategory(v string) *BreakEventUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *BreakEventUpdate) SetNillableCategory(v *string) *BreakEventUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetBreakName sets the "break_name" field.
func (_u *BreakEventUpdate) SetBreakName(v string) *BreakEventUpdate {
	_u.mutation.SetBreakName(v)
	return _u
}

// SetNillableBreakName sets the "break_name" field if the given value is not nil.
func (_u *BreakEventUpdate) SetNillableBreakName(v *string) *BreakEventUpdate {
	if v != nil {
		_u.SetBreakName(*v)
	}
	return _u
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_u *BreakEventUpdate) SetDurationMinutes(v int) *BreakEventUpdate {
	_u.mutation.ResetDurationMinutes()
	_u.mutation.SetDurationMinutes(v)
	return _u
}

// SetNillableDurationMinutes sets the "duration_minutes" field if the given value is not nil.
func (_u *BreakEventUpdate) SetNillableDurationMinutes(v *int) *BreakEventUpdate {
	if v != nil {
		_u.SetDurationMinutes(*v)
	}
	return _u
}

// AddDurationMinutes adds value to the "duration_minutes" field.
func (_u *BreakEventUpdate) AddDurationMinutes(v int) *BreakEventUpdate {
	_u.mutation.AddDurationMinutes(v)
	return _u
}

// SetWorkDurationMinutes sets the "work_duration_minutes" field.
func (_u *BreakEventUpdate) SetWorkDurationMinutes(v int) *BreakEventUpdate {
	_u.mutation.ResetWorkDurationMinutes()
	_u.mutation.SetWorkDurationMinutes(v)
	return _u
}

// SetNillableWorkDurationMinutes sets the "work_duration_minutes" field if the given value is not nil.
func (_u *BreakEventUpdate) SetNillableWorkDurationMinutes(v *int) *BreakEventUpdate {
	if v != nil {
		_u.SetWorkDurationMinutes(*v)
	}
	return _u
}

// AddWorkDurationMinutes adds value to the "work_duration_minutes" field.
func (_u *BreakEventUpdate) AddWorkDurationMinutes(v int) *BreakEventUpdate {
	_u.mutation.AddWorkDurationMinutes(v)
	return _u
}

// SetLabel sets the "label" field.
func (_u *BreakEventUpdate) SetLabel(v string) *BreakEventUpdate {
	_u.mutation.SetLabel(v)
	return _u
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (_u *BreakEventUpdate) SetNillableLabel(v *string) *BreakEventUpdate {
	if v != nil {
		_u.SetLabel(*v)
	}
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *BreakEventUpdate) SetCompleted(v bool) *BreakEventUpdate {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *BreakEventUpdate) SetNillableCompleted(v *bool) *BreakEventUpdate {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// SetWorkEndAt sets the "work_end_at" field.
func (_u *BreakEventUpdate) SetWorkEndAt(v time.Time) *BreakEventUpdate {
	_u.mutation.SetWorkEndAt(v)
	return _u
}

// SetNillableWorkEndAt sets the "work_end_at" field if the given value is not nil.
func (_u *BreakEventUpdate) SetNillableWorkEndAt(v *time.Time) *BreakEventUpdate {
	if v != nil {
		_u.SetWorkEndAt(*v)
	}
	return _u
}

// ClearWorkEndAt clears the value of the "work_end_at" field.
func (_u *BreakEventUpdate) ClearWorkEndAt() *BreakEventUpdate {
	_u.mutation.ClearWorkEndAt()
	return _u
}

// SetSource sets the "source" field.
func (_u *BreakEventUpdate) SetSource(v string) *BreakEventUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *BreakEventUpdate) SetNillableSource(v *string) *BreakEventUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetCorrelationID sets the "correlation_id" field.
func (_u *BreakEventUpdate) SetCorrelationID(v string) *BreakEventUpdate {
	_u.mutation.SetCorrelationID(v)
	return _u
}

// SetNillableCorrelationID sets the "correlation_id" field if the given value is not nil.
func (_u *BreakEventUpdate) SetNillableCorrelationID(v *string) *BreakEventUpdate {
	if v != nil {
		_u.SetCorrelationID(*v)
	}
	return _u
}

// Mutation returns the BreakEventMutation object of the builder.
func (_u *BreakEventUpdate) Mutation() *BreakEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BreakEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BreakEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BreakEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BreakEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BreakEventUpdate) check() error {
	if v, ok := _u.mutation.BreakID(); ok {
		if err := breakevent.BreakIDValidator(v); err != nil {
			return &ValidationError{Name: "break_id", err: fmt.Errorf(`ent: validator failed for field "BreakEvent.break_id": %w`, err)}
		}
	}
	return nil
}

func (_u *BreakEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(breakevent.Table, breakevent.Columns, sqlgraph.NewFieldSpec(breakevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.BreakID(); ok {
		_spec.SetField(breakevent.FieldBreakID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(breakevent.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.BreakName(); ok {
		_spec.SetField(breakevent.FieldBreakName, field.TypeString, value)
	}
	if value, ok := _u.mutation.DurationMinutes(); ok {
		_spec.SetField(breakevent.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMinutes(); ok {
		_spec.AddField(breakevent.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WorkDurationMinutes(); ok {
		_spec.SetField(breakevent.FieldWorkDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWorkDurationMinutes(); ok {
		_spec.AddField(breakevent.FieldWorkDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Label(); ok {
		_spec.SetField(breakevent.FieldLabel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(breakevent.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.WorkEndAt(); ok {
		_spec.SetField(breakevent.FieldWorkEndAt, field.TypeTime, value)
	}
	if _u.mutation.WorkEndAtCleared() {
		_spec.ClearField(breakevent.FieldWorkEndAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(breakevent.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrelationID(); ok {
		_spec.SetField(breakevent.FieldCorrelationID, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{breakevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BreakEventUpdateOne is the builder for updating a single BreakEvent entity.
type BreakEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BreakEventMutation
}

// SetBreakID sets the "break_id" field.
func (_u *BreakEventUpdateOne) SetBreakID(v string) *BreakEventUpdateOne {
	_u.mutation.SetBreakID(v)
	return _u
}

// SetNillableBreakID sets the "break_id" field if the given value is not nil.
func (_u *BreakEventUpdateOne) SetNillableBreakID(v *string) *BreakEventUpdateOne {
	if v != nil {
		_u.SetBreakID(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *BreakEventUpdateOne) SetCategory(v string) *BreakEventUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *BreakEventUpdateOne) SetNillableCategory(v *string) *BreakEventUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetBreakName sets the "break_name" field.
func (_u *BreakEventUpdateOne) SetBreakName(v string) *BreakEventUpdateOne {
	_u.mutation.SetBreakName(v)
	return _u
}

// SetNillableBreakName sets the "break_name" field if the given value is not nil.
func (_u *BreakEventUpdateOne) SetNillableBreakName(v *string) *BreakEventUpdateOne {
	if v != nil {
		_u.SetBreakName(*v)
	}
	return _u
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_u *BreakEventUpdateOne) SetDurationMinutes(v int) *BreakEventUpdateOne {
	_u.mutation.ResetDurationMinutes()
	_u.mutation.SetDurationMinutes(v)
	return _u
}

// SetNillableDurationMinutes sets the "duration_minutes" field if the given value is not nil.
func (_u *BreakEventUpdateOne) SetNillableDurationMinutes(v *int) *BreakEventUpdateOne {
	if v != nil {
		_u.SetDurationMinutes(*v)
	}
	return _u
}

// AddDurationMinutes adds value to the "duration_minutes" field.
func (_u *BreakEventUpdateOne) AddDurationMinutes(v int) *BreakEventUpdateOne {
	_u.mutation.AddDurationMinutes(v)
	return _u
}

// SetWorkDurationMinutes sets the "work_duration_minutes" field.
func (_u *BreakEventUpdateOne) SetWorkDurationMinutes(v int) *BreakEventUpdateOne {
	_u.mutation.ResetWorkDurationMinutes()
	_u.mutation.SetWorkDurationMinutes(v)
	return _u
}

// SetNillableWorkDurationMinutes sets the "work_duration_minutes" field if the given value is not nil.
func (_u *BreakEventUpdateOne) SetNillableWorkDurationMinutes(v *int) *BreakEventUpdateOne {
	if v != nil {
		_u.SetWorkDurationMinutes(*v)
	}
	return _u
}

// AddWorkDurationMinutes adds value to the "work_duration_minutes" field.
func (_u *BreakEventUpdateOne) AddWorkDurationMinutes(v int) *BreakEventUpdateOne {
	_u.mutation.AddWorkDurationMinutes(v)
	return _u
}

// SetLabel sets the "label" field.
func (_u *BreakEventUpdateOne) SetLabel(v string) *BreakEventUpdateOne {
	_u.mutation.SetLabel(v)
	return _u
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (_u *BreakEventUpdateOne) SetNillableLabel(v *string) *BreakEventUpdateOne {
	if v != nil {
		_u.SetLabel(*v)
	}
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *BreakEventUpdateOne) SetCompleted(v bool) *BreakEventUpdateOne {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *BreakEventUpdateOne) SetNillableCompleted(v *bool) *BreakEventUpdateOne {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// SetWorkEndAt sets the "work_end_at" field.
func (_u *BreakEventUpdateOne) SetWorkEndAt(v time.Time) *BreakEventUpdateOne {
	_u.mutation.SetWorkEndAt(v)
	return _u
}

// SetNillableWorkEndAt sets the "work_end_at" field if the given value is not nil.
func (_u *BreakEventUpdateOne) SetNillableWorkEndAt(v *time.Time) *BreakEventUpdateOne {
	if v != nil {
		_u.SetWorkEndAt(*v)
	}
	return _u
}

// ClearWorkEndAt clears the value of the "work_end_at" field.
func (_u *BreakEventUpdateOne) ClearWorkEndAt() *BreakEventUpdateOne {
	_u.mutation.ClearWorkEndAt()
	return _u
}

// SetSource sets the "source" field.
func (_u *BreakEventUpdateOne) SetSource(v string) *BreakEventUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *BreakEventUpdateOne) SetNillableSource(v *string) *BreakEventUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetCorrelationID sets the "correlation_id" field.
func (_u *BreakEventUpdateOne) SetCorrelationID(v string) *BreakEventUpdateOne {
	_u.mutation.SetCorrelationID(v)
	return _u
}

// SetNillableCorrelationID sets the "correlation_id" field if the given value is not nil.
func (_u *BreakEventUpdateOne) SetNillableCorrelationID(v *string) *BreakEventUpdateOne {
	if v != nil {
		_u.SetCorrelationID(*v)
	}
	return _u
}

// Mutation returns the BreakEventMutation object of the builder.
func (_u *BreakEventUpdateOne) Mutation() *BreakEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the BreakEventUpdate builder.
func (_u *BreakEventUpdateOne) Where(ps ...predicate.BreakEvent) *BreakEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BreakEventUpdateOne) Select(field string, fields ...string) *BreakEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BreakEvent entity.
func (_u *BreakEventUpdateOne) Save(ctx context.Context) (*BreakEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BreakEventUpdateOne) SaveX(ctx context.Context) *BreakEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BreakEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BreakEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BreakEventUpdateOne) check() error {
	if v, ok := _u.mutation.BreakID(); ok {
		if err := breakevent.BreakIDValidator(v); err != nil {
			return &ValidationError{Name: "break_id", err: fmt.Errorf(`ent: validator failed for field "BreakEvent.break_id": %w`, err)}
		}
	}
	return nil
}

func (_u *BreakEventUpdateOne) sqlSave(ctx context.Context) (_node *BreakEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(breakevent.Table, breakevent.Columns, sqlgraph.NewFieldSpec(breakevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BreakEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, breakevent.FieldID)
		for _, f := range fields {
			if !breakevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != breakevent.FieldID {
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
	if value, ok := _u.mutation.BreakID(); ok {
		_spec.SetField(breakevent.FieldBreakID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(breakevent.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.BreakName(); ok {
		_spec.SetField(breakevent.FieldBreakName, field.TypeString, value)
	}
	if value, ok := _u.mutation.DurationMinutes(); ok {
		_spec.SetField(breakevent.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMinutes(); ok {
		_spec.AddField(breakevent.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WorkDurationMinutes(); ok {
		_spec.SetField(breakevent.FieldWorkDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWorkDurationMinutes(); ok {
		_spec.AddField(breakevent.FieldWorkDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Label(); ok {
		_spec.SetField(breakevent.FieldLabel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(breakevent.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.WorkEndAt(); ok {
		_spec.SetField(breakevent.FieldWorkEndAt, field.TypeTime, value)
	}
	if _u.mutation.WorkEndAtCleared() {
		_spec.ClearField(breakevent.FieldWorkEndAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(breakevent.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrelationID(); ok {
		_spec.SetField(breakevent.FieldCorrelationID, field.TypeString, value)
	}
	_node = &BreakEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{breakevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
