// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fretwise/fretwise/ent/predicate"
	"github.com/fretwise/fretwise/ent/validationevent"
)

// ValidationEventUpdate is the builder for updating ValidationEvent entities.
type ValidationEventUpdate struct {
	config
	hooks    []Hook
	mutation *ValidationEventMutation
}

// Where appends a list predicates to the ValidationEventUpdate builder.
func (_u *ValidationEventUpdate) Where(ps ...predicate.ValidationEvent) *ValidationEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ValidationEventUpdate) SetUserID(v string) *ValidationEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ValidationEventUpdate) SetNillableUserID(v *string) *ValidationEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetLessonID sets the "lesson_id" field.
func (_u *ValidationEventUpdate) SetLessonID(v string) *ValidationEventUpdate {
	_u.mutation.SetLessonID(v)
	return _u
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_u *ValidationEventUpdate) SetNillableLessonID(v *string) *ValidationEventUpdate {
	if v != nil {
		_u.SetLessonID(*v)
	}
	return _u
}

// SetValidated sets the "validated" field.
func (_u *ValidationEventUpdate) SetValidated(v bool) *ValidationEventUpdate {
	_u.mutation.SetValidated(v)
	return _u
}

// SetNillableValidated sets the "validated" field if the given value is not nil.
func (_u *ValidationEventUpdate) SetNillableValidated(v *bool) *ValidationEventUpdate {
	if v != nil {
		_u.SetValidated(*v)
	}
	return _u
}

// SetPointsDelta sets the "points_delta" field.
func (_u *ValidationEventUpdate) SetPointsDelta(v int) *ValidationEventUpdate {
	_u.mutation.ResetPointsDelta()
	_u.mutation.SetPointsDelta(v)
	return _u
}

// SetNillablePointsDelta sets the "points_delta" field if the given value is not nil.
func (_u *ValidationEventUpdate) SetNillablePointsDelta(v *int) *ValidationEventUpdate {
	if v != nil {
		_u.SetPointsDelta(*v)
	}
	return _u
}

// AddPointsDelta adds value to the "points_delta" field.
func (_u *ValidationEventUpdate) AddPointsDelta(v int) *ValidationEventUpdate {
	_u.mutation.AddPointsDelta(v)
	return _u
}

// SetGradedBy sets the "graded_by" field.
func (_u *ValidationEventUpdate) SetGradedBy(v string) *ValidationEventUpdate {
	_u.mutation.SetGradedBy(v)
	return _u
}

// SetNillableGradedBy sets the "graded_by" field if the given value is not nil.
func (_u *ValidationEventUpdate) SetNillableGradedBy(v *string) *ValidationEventUpdate {
	if v != nil {
		_u.SetGradedBy(*v)
	}
	return _u
}

// ClearGradedBy clears the value of the "graded_by" field.
func (_u *ValidationEventUpdate) ClearGradedBy() *ValidationEventUpdate {
	_u.mutation.ClearGradedBy()
	return _u
}

// Mutation returns the ValidationEventMutation object of the builder.
func (_u *ValidationEventUpdate) Mutation() *ValidationEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ValidationEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ValidationEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ValidationEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ValidationEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ValidationEventUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := validationevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ValidationEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LessonID(); ok {
		if err := validationevent.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "ValidationEvent.lesson_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ValidationEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(validationevent.Table, validationevent.Columns, sqlgraph.NewFieldSpec(validationevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(validationevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonID(); ok {
		_spec.SetField(validationevent.FieldLessonID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Validated(); ok {
		_spec.SetField(validationevent.FieldValidated, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PointsDelta(); ok {
		_spec.SetField(validationevent.FieldPointsDelta, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPointsDelta(); ok {
		_spec.AddField(validationevent.FieldPointsDelta, field.TypeInt, value)
	}
	if value, ok := _u.mutation.GradedBy(); ok {
		_spec.SetField(validationevent.FieldGradedBy, field.TypeString, value)
	}
	if _u.mutation.GradedByCleared() {
		_spec.ClearField(validationevent.FieldGradedBy, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{validationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ValidationEventUpdateOne is the builder for updating a single ValidationEvent entity.
type ValidationEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ValidationEventMutation
}

// SetUserID sets the "user_id" field.
func (_u *ValidationEventUpdateOne) SetUserID(v string) *ValidationEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ValidationEventUpdateOne) SetNillableUserID(v *string) *ValidationEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetLessonID sets the "lesson_id" field.
func (_u *ValidationEventUpdateOne) SetLessonID(v string) *ValidationEventUpdateOne {
	_u.mutation.SetLessonID(v)
	return _u
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_u *ValidationEventUpdateOne) SetNillableLessonID(v *string) *ValidationEventUpdateOne {
	if v != nil {
		_u.SetLessonID(*v)
	}
	return _u
}

// SetValidated sets the "validated" field.
func (_u *ValidationEventUpdateOne) SetValidated(v bool) *ValidationEventUpdateOne {
	_u.mutation.SetValidated(v)
	return _u
}

// SetNillableValidated sets the "validated" field if the given value is not nil.
func (_u *ValidationEventUpdateOne) SetNillableValidated(v *bool) *ValidationEventUpdateOne {
	if v != nil {
		_u.SetValidated(*v)
	}
	return _u
}

// SetPointsDelta sets the "points_delta" field.
func (_u *ValidationEventUpdateOne) SetPointsDelta(v int) *ValidationEventUpdateOne {
	_u.mutation.ResetPointsDelta()
	_u.mutation.SetPointsDelta(v)
	return _u
}

// SetNillablePointsDelta sets the "points_delta" field if the given value is not nil.
func (_u *ValidationEventUpdateOne) SetNillablePointsDelta(v *int) *ValidationEventUpdateOne {
	if v != nil {
		_u.SetPointsDelta(*v)
	}
	return _u
}

// AddPointsDelta adds value to the "points_delta" field.
func (_u *ValidationEventUpdateOne) AddPointsDelta(v int) *ValidationEventUpdateOne {
	_u.mutation.AddPointsDelta(v)
	return _u
}

// SetGradedBy sets the "graded_by" field.
func (_u *ValidationEventUpdateOne) SetGradedBy(v string) *ValidationEventUpdateOne {
	_u.mutation.SetGradedBy(v)
	return _u
}

// SetNillableGradedBy sets the "graded_by" field if the given value is not nil.
func (_u *ValidationEventUpdateOne) SetNillableGradedBy(v *string) *ValidationEventUpdateOne {
	if v != nil {
		_u.SetGradedBy(*v)
	}
	return _u
}

// ClearGradedBy clears the value of the "graded_by" field.
func (_u *ValidationEventUpdateOne) ClearGradedBy() *ValidationEventUpdateOne {
	_u.mutation.ClearGradedBy()
	return _u
}

// Mutation returns the ValidationEventMutation object of the builder.
func (_u *ValidationEventUpdateOne) Mutation() *ValidationEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ValidationEventUpdate builder.
func (_u *ValidationEventUpdateOne) Where(ps ...predicate.ValidationEvent) *ValidationEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ValidationEventUpdateOne) Select(field string, fields ...string) *ValidationEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ValidationEvent entity.
func (_u *ValidationEventUpdateOne) Save(ctx context.Context) (*ValidationEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ValidationEventUpdateOne) SaveX(ctx context.Context) *ValidationEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ValidationEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ValidationEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ValidationEventUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := validationevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ValidationEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LessonID(); ok {
		if err := validationevent.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "ValidationEvent.lesson_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ValidationEventUpdateOne) sqlSave(ctx context.Context) (_node *ValidationEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(validationevent.Table, validationevent.Columns, sqlgraph.NewFieldSpec(validationevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ValidationEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, validationevent.FieldID)
		for _, f := range fields {
			if !validationevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != validationevent.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(validationevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonID(); ok {
		_spec.SetField(validationevent.FieldLessonID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Validated(); ok {
		_spec.SetField(validationevent.FieldValidated, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PointsDelta(); ok {
		_spec.SetField(validationevent.FieldPointsDelta, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPointsDelta(); ok {
		_spec.AddField(validationevent.FieldPointsDelta, field.TypeInt, value)
	}
	if value, ok := _u.mutation.GradedBy(); ok {
		_spec.SetField(validationevent.FieldGradedBy, field.TypeString, value)
	}
	if _u.mutation.GradedByCleared() {
		_spec.ClearField(validationevent.FieldGradedBy, field.TypeString)
	}
	_node = &ValidationEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{validationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
