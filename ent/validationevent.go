// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fretwise/fretwise/ent/validationevent"
)

// ValidationEvent is the model entity for the ValidationEvent schema.
type ValidationEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// LessonID holds the value of the "lesson_id" field.
	LessonID string `json:"lesson_id,omitempty"`
	// true for validate, false for un-validate
	Validated bool `json:"validated,omitempty"`
	// Reward applied to the user, after flooring at zero
	PointsDelta int `json:"points_delta,omitempty"`
	// Admin user id that performed the grading
	GradedBy     string `json:"graded_by,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ValidationEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case validationevent.FieldValidated:
			values[i] = new(sql.NullBool)
		case validationevent.FieldID, validationevent.FieldSequence, validationevent.FieldPointsDelta:
			values[i] = new(sql.NullInt64)
		case validationevent.FieldUserID, validationevent.FieldLessonID, validationevent.FieldGradedBy:
			values[i] = new(sql.NullString)
		case validationevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ValidationEvent fields.
func (_m *ValidationEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case validationevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case validationevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case validationevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case validationevent.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case validationevent.FieldLessonID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field lesson_id", values[i])
			} else if value.Valid {
				_m.LessonID = value.String
			}
		case validationevent.FieldValidated:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field validated", values[i])
			} else if value.Valid {
				_m.Validated = value.Bool
			}
		case validationevent.FieldPointsDelta:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field points_delta", values[i])
			} else if value.Valid {
				_m.PointsDelta = int(value.Int64)
			}
		case validationevent.FieldGradedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field graded_by", values[i])
			} else if value.Valid {
				_m.GradedBy = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ValidationEvent.
// This includes values selected through modifiers, order, etc.
func (_m *ValidationEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ValidationEvent.
// Note that you need to call ValidationEvent.Unwrap() before calling this method if this ValidationEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ValidationEvent) Update() *ValidationEventUpdateOne {
	return NewValidationEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ValidationEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ValidationEvent) Unwrap() *ValidationEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ValidationEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ValidationEvent) String() string {
	var builder strings.Builder
	builder.WriteString("ValidationEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("lesson_id=")
	builder.WriteString(_m.LessonID)
	builder.WriteString(", ")
	builder.WriteString("validated=")
	builder.WriteString(fmt.Sprintf("%v", _m.Validated))
	builder.WriteString(", ")
	builder.WriteString("points_delta=")
	builder.WriteString(fmt.Sprintf("%v", _m.PointsDelta))
	builder.WriteString(", ")
	builder.WriteString("graded_by=")
	builder.WriteString(_m.GradedBy)
	builder.WriteByte(')')
	return builder.String()
}

// ValidationEvents is a parsable slice of ValidationEvent.
type ValidationEvents []*ValidationEvent
