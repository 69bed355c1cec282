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
	"github.com/fretwise/fretwise/ent/submissionevent"
)

// SubmissionEventUpdate is the builder for updating SubmissionEvent entities.
type SubmissionEventUpdate struct {
	config
	hooks    []Hook
	mutation *SubmissionEventMutation
}

// Where appends a list predicates to the SubmissionEventUpdate builder.
func (_u *SubmissionEventUpdate) Where(ps ...predicate.SubmissionEvent) *SubmissionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSubmissionID sets the "submission_id" field.
func (_u *SubmissionEventUpdate) SetSubmissionID(v string) *SubmissionEventUpdate {
	_u.mutation.SetSubmissionID(v)
	return _u
}

// SetNillableSubmissionID sets the "submission_id" field if the given value is not nil.
func (_u *SubmissionEventUpdate) SetNillableSubmissionID(v *string) *SubmissionEventUpdate {
	if v != nil {
		_u.SetSubmissionID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *SubmissionEventUpdate) SetUserID(v string) *SubmissionEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *SubmissionEventUpdate) SetNillableUserID(v *string) *SubmissionEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetLessonID sets the "lesson_id" field.
func (_u *SubmissionEventUpdate) SetLessonID(v string) *SubmissionEventUpdate {
	_u.mutation.SetLessonID(v)
	return _u
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_u *SubmissionEventUpdate) SetNillableLessonID(v *string) *SubmissionEventUpdate {
	if v != nil {
		_u.SetLessonID(*v)
	}
	return _u
}

// SetNewStatus sets the "new_status" field.
func (_u *SubmissionEventUpdate) SetNewStatus(v string) *SubmissionEventUpdate {
	_u.mutation.SetNewStatus(v)
	return _u
}

// SetNillableNewStatus sets the "new_status" field if the given value is not nil.
func (_u *SubmissionEventUpdate) SetNillableNewStatus(v *string) *SubmissionEventUpdate {
	if v != nil {
		_u.SetNewStatus(*v)
	}
	return _u
}

// SetUnlockedLessonID sets the "unlocked_lesson_id" field.
func (_u *SubmissionEventUpdate) SetUnlockedLessonID(v string) *SubmissionEventUpdate {
	_u.mutation.SetUnlockedLessonID(v)
	return _u
}

// SetNillableUnlockedLessonID sets the "unlocked_lesson_id" field if the given value is not nil.
func (_u *SubmissionEventUpdate) SetNillableUnlockedLessonID(v *string) *SubmissionEventUpdate {
	if v != nil {
		_u.SetUnlockedLessonID(*v)
	}
	return _u
}

// ClearUnlockedLessonID clears the value of the "unlocked_lesson_id" field.
func (_u *SubmissionEventUpdate) ClearUnlockedLessonID() *SubmissionEventUpdate {
	_u.mutation.ClearUnlockedLessonID()
	return _u
}

// Mutation returns the SubmissionEventMutation object of the builder.
func (_u *SubmissionEventUpdate) Mutation() *SubmissionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SubmissionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubmissionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SubmissionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubmissionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubmissionEventUpdate) check() error {
	if v, ok := _u.mutation.SubmissionID(); ok {
		if err := submissionevent.SubmissionIDValidator(v); err != nil {
			return &ValidationError{Name: "submission_id", err: fmt.Errorf(`ent: validator failed for field "SubmissionEvent.submission_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := submissionevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "SubmissionEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LessonID(); ok {
		if err := submissionevent.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "SubmissionEvent.lesson_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NewStatus(); ok {
		if err := submissionevent.NewStatusValidator(v); err != nil {
			return &ValidationError{Name: "new_status", err: fmt.Errorf(`ent: validator failed for field "SubmissionEvent.new_status": %w`, err)}
		}
	}
	return nil
}

func (_u *SubmissionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(submissionevent.Table, submissionevent.Columns, sqlgraph.NewFieldSpec(submissionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SubmissionID(); ok {
		_spec.SetField(submissionevent.FieldSubmissionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(submissionevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonID(); ok {
		_spec.SetField(submissionevent.FieldLessonID, field.TypeString, value)
	}
	if value, ok := _u.mutation.NewStatus(); ok {
		_spec.SetField(submissionevent.FieldNewStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.UnlockedLessonID(); ok {
		_spec.SetField(submissionevent.FieldUnlockedLessonID, field.TypeString, value)
	}
	if _u.mutation.UnlockedLessonIDCleared() {
		_spec.ClearField(submissionevent.FieldUnlockedLessonID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{submissionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SubmissionEventUpdateOne is the builder for updating a single SubmissionEvent entity.
type SubmissionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SubmissionEventMutation
}

// SetSubmissionID sets the "submission_id" field.
func (_u *SubmissionEventUpdateOne) SetSubmissionID(v string) *SubmissionEventUpdateOne {
	_u.mutation.SetSubmissionID(v)
	return _u
}

// SetNillableSubmissionID sets the "submission_id" field if the given value is not nil.
func (_u *SubmissionEventUpdateOne) SetNillableSubmissionID(v *string) *SubmissionEventUpdateOne {
	if v != nil {
		_u.SetSubmissionID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *SubmissionEventUpdateOne) SetUserID(v string) *SubmissionEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *SubmissionEventUpdateOne) SetNillableUserID(v *string) *SubmissionEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetLessonID sets the "lesson_id" field.
func (_u *SubmissionEventUpdateOne) SetLessonID(v string) *SubmissionEventUpdateOne {
	_u.mutation.SetLessonID(v)
	return _u
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_u *SubmissionEventUpdateOne) SetNillableLessonID(v *string) *SubmissionEventUpdateOne {
	if v != nil {
		_u.SetLessonID(*v)
	}
	return _u
}

// SetNewStatus sets the "new_status" field.
func (_u *SubmissionEventUpdateOne) SetNewStatus(v string) *SubmissionEventUpdateOne {
	_u.mutation.SetNewStatus(v)
	return _u
}

// SetNillableNewStatus sets the "new_status" field if the given value is not nil.
func (_u *SubmissionEventUpdateOne) SetNillableNewStatus(v *string) *SubmissionEventUpdateOne {
	if v != nil {
		_u.SetNewStatus(*v)
	}
	return _u
}

// SetUnlockedLessonID sets the "unlocked_lesson_id" field.
func (_u *SubmissionEventUpdateOne) SetUnlockedLessonID(v string) *SubmissionEventUpdateOne {
	_u.mutation.SetUnlockedLessonID(v)
	return _u
}

// SetNillableUnlockedLessonID sets the "unlocked_lesson_id" field if the given value is not nil.
func (_u *SubmissionEventUpdateOne) SetNillableUnlockedLessonID(v *string) *SubmissionEventUpdateOne {
	if v != nil {
		_u.SetUnlockedLessonID(*v)
	}
	return _u
}

// ClearUnlockedLessonID clears the value of the "unlocked_lesson_id" field.
func (_u *SubmissionEventUpdateOne) ClearUnlockedLessonID() *SubmissionEventUpdateOne {
	_u.mutation.ClearUnlockedLessonID()
	return _u
}

// Mutation returns the SubmissionEventMutation object of the builder.
func (_u *SubmissionEventUpdateOne) Mutation() *SubmissionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the SubmissionEventUpdate builder.
func (_u *SubmissionEventUpdateOne) Where(ps ...predicate.SubmissionEvent) *SubmissionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SubmissionEventUpdateOne) Select(field string, fields ...string) *SubmissionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SubmissionEvent entity.
func (_u *SubmissionEventUpdateOne) Save(ctx context.Context) (*SubmissionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubmissionEventUpdateOne) SaveX(ctx context.Context) *SubmissionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SubmissionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubmissionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubmissionEventUpdateOne) check() error {
	if v, ok := _u.mutation.SubmissionID(); ok {
		if err := submissionevent.SubmissionIDValidator(v); err != nil {
			return &ValidationError{Name: "submission_id", err: fmt.Errorf(`ent: validator failed for field "SubmissionEvent.submission_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := submissionevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "SubmissionEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LessonID(); ok {
		if err := submissionevent.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "SubmissionEvent.lesson_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NewStatus(); ok {
		if err := submissionevent.NewStatusValidator(v); err != nil {
			return &ValidationError{Name: "new_status", err: fmt.Errorf(`ent: validator failed for field "SubmissionEvent.new_status": %w`, err)}
		}
	}
	return nil
}

func (_u *SubmissionEventUpdateOne) sqlSave(ctx context.Context) (_node *SubmissionEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(submissionevent.Table, submissionevent.Columns, sqlgraph.NewFieldSpec(submissionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SubmissionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, submissionevent.FieldID)
		for _, f := range fields {
			if !submissionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != submissionevent.FieldID {
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
	if value, ok := _u.mutation.SubmissionID(); ok {
		_spec.SetField(submissionevent.FieldSubmissionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(submissionevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonID(); ok {
		_spec.SetField(submissionevent.FieldLessonID, field.TypeString, value)
	}
	if value, ok := _u.mutation.NewStatus(); ok {
		_spec.SetField(submissionevent.FieldNewStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.UnlockedLessonID(); ok {
		_spec.SetField(submissionevent.FieldUnlockedLessonID, field.TypeString, value)
	}
	if _u.mutation.UnlockedLessonIDCleared() {
		_spec.ClearField(submissionevent.FieldUnlockedLessonID, field.TypeString)
	}
	_node = &SubmissionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{submissionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
