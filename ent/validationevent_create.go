// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fretwise/fretwise/ent/validationevent"
)

// ValidationEventCreate is the builder for creating a ValidationEvent entity.
type ValidationEventCreate struct {
	config
	mutation *ValidationEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *ValidationEventCreate) SetSequence(v int64) *ValidationEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ValidationEventCreate) SetTimestamp(v time.Time) *ValidationEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ValidationEventCreate) SetNillableTimestamp(v *time.Time) *ValidationEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *ValidationEventCreate) SetUserID(v string) *ValidationEventCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetLessonID sets the "lesson_id" field.
func (_c *ValidationEventCreate) SetLessonID(v string) *ValidationEventCreate {
	_c.mutation.SetLessonID(v)
	return _c
}

// SetValidated sets the "validated" field.
func (_c *ValidationEventCreate) SetValidated(v bool) *ValidationEventCreate {
	_c.mutation.SetValidated(v)
	return _c
}

// SetPointsDelta sets the "points_delta" field.
func (_c *ValidationEventCreate) SetPointsDelta(v int) *ValidationEventCreate {
	_c.mutation.SetPointsDelta(v)
	return _c
}

// SetNillablePointsDelta sets the "points_delta" field if the given value is not nil.
func (_c *ValidationEventCreate) SetNillablePointsDelta(v *int) *ValidationEventCreate {
	if v != nil {
		_c.SetPointsDelta(*v)
	}
	return _c
}

// SetGradedBy sets the "graded_by" field.
func (_c *ValidationEventCreate) SetGradedBy(v string) *ValidationEventCreate {
	_c.mutation.SetGradedBy(v)
	return _c
}

// SetNillableGradedBy sets the "graded_by" field if the given value is not nil.
func (_c *ValidationEventCreate) SetNillableGradedBy(v *string) *ValidationEventCreate {
	if v != nil {
		_c.SetGradedBy(*v)
	}
	return _c
}

// Mutation returns the ValidationEventMutation object of the builder.
func (_c *ValidationEventCreate) Mutation() *ValidationEventMutation {
	return _c.mutation
}

// Save creates the ValidationEvent in the database.
func (_c *ValidationEventCreate) Save(ctx context.Context) (*ValidationEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ValidationEventCreate) SaveX(ctx context.Context) *ValidationEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ValidationEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ValidationEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ValidationEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := validationevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.PointsDelta(); !ok {
		v := validationevent.DefaultPointsDelta
		_c.mutation.SetPointsDelta(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ValidationEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ValidationEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ValidationEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ValidationEvent.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := validationevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ValidationEvent.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LessonID(); !ok {
		return &ValidationError{Name: "lesson_id", err: errors.New(`ent: missing required field "ValidationEvent.lesson_id"`)}
	}
	if v, ok := _c.mutation.LessonID(); ok {
		if err := validationevent.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "ValidationEvent.lesson_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Validated(); !ok {
		return &ValidationError{Name: "validated", err: errors.New(`ent: missing required field "ValidationEvent.validated"`)}
	}
	if _, ok := _c.mutation.PointsDelta(); !ok {
		return &ValidationError{Name: "points_delta", err: errors.New(`ent: missing required field "ValidationEvent.points_delta"`)}
	}
	return nil
}

func (_c *ValidationEventCreate) sqlSave(ctx context.Context) (*ValidationEvent, error) {
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

func (_c *ValidationEventCreate) createSpec() (*ValidationEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ValidationEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(validationevent.Table, sqlgraph.NewFieldSpec(validationevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(validationevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(validationevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(validationevent.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.LessonID(); ok {
		_spec.SetField(validationevent.FieldLessonID, field.TypeString, value)
		_node.LessonID = value
	}
	if value, ok := _c.mutation.Validated(); ok {
		_spec.SetField(validationevent.FieldValidated, field.TypeBool, value)
		_node.Validated = value
	}
	if value, ok := _c.mutation.PointsDelta(); ok {
		_spec.SetField(validationevent.FieldPointsDelta, field.TypeInt, value)
		_node.PointsDelta = value
	}
	if value, ok := _c.mutation.GradedBy(); ok {
		_spec.SetField(validationevent.FieldGradedBy, field.TypeString, value)
		_node.GradedBy = value
	}
	return _node, _spec
}

// ValidationEventCreateBulk is the builder for creating many ValidationEvent entities in bulk.
type ValidationEventCreateBulk struct {
	config
	err      error
	builders []*ValidationEventCreate
}

// Save creates the ValidationEvent entities in the database.
func (_c *ValidationEventCreateBulk) Save(ctx context.Context) ([]*ValidationEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ValidationEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ValidationEventMutation)
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
func (_c *ValidationEventCreateBulk) SaveX(ctx context.Context) []*ValidationEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ValidationEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ValidationEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
