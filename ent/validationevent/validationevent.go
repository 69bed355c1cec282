// Code generated by ent, DO NOT EDIT.

package validationevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the validationevent type in the database.
	Label = "validation_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldLessonID holds the string denoting the lesson_id field in the database.
	FieldLessonID = "lesson_id"
	// FieldValidated holds the string denoting the validated field in the database.
	FieldValidated = "validated"
	// FieldPointsDelta holds the string denoting the points_delta field in the database.
	FieldPointsDelta = "points_delta"
	// FieldGradedBy holds the string denoting the graded_by field in the database.
	FieldGradedBy = "graded_by"
	// Table holds the table name of the validationevent in the database.
	Table = "validation_events"
)

// Columns holds all SQL columns for validationevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldUserID,
	FieldLessonID,
	FieldValidated,
	FieldPointsDelta,
	FieldGradedBy,
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
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	LessonIDValidator func(string) error
	// DefaultPointsDelta holds the default value on creation for the "points_delta" field.
	DefaultPointsDelta int
)

// OrderOption defines the ordering options for the ValidationEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByLessonID orders the results by the lesson_id field.
func ByLessonID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLessonID, opts...).ToFunc()
}

// ByValidated orders the results by the validated field.
func ByValidated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValidated, opts...).ToFunc()
}

// ByPointsDelta orders the results by the points_delta field.
func ByPointsDelta(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPointsDelta, opts...).ToFunc()
}

// ByGradedBy orders the results by the graded_by field.
func ByGradedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGradedBy, opts...).ToFunc()
}
