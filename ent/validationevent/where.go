// Code generated by ent, DO NOT EDIT.

package validationevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/fretwise/fretwise/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEQ(FieldTimestamp, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEQ(FieldUserID, v))
}

// LessonID applies equality check predicate on the "lesson_id" field. It's identical to LessonIDEQ.
func LessonID(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEQ(FieldLessonID, v))
}

// Validated applies equality check predicate on the "validated" field. It's identical to ValidatedEQ.
func Validated(v bool) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEQ(FieldValidated, v))
}

// PointsDelta applies equality check predicate on the "points_delta" field. It's identical to PointsDeltaEQ.
func PointsDelta(v int) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEQ(FieldPointsDelta, v))
}

// GradedBy applies equality check predicate on the "graded_by" field. It's identical to GradedByEQ.
func GradedBy(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEQ(FieldGradedBy, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldLTE(FieldTimestamp, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldContainsFold(FieldUserID, v))
}

// LessonIDEQ applies the EQ predicate on the "lesson_id" field.
func LessonIDEQ(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEQ(FieldLessonID, v))
}

// LessonIDNEQ applies the NEQ predicate on the "lesson_id" field.
func LessonIDNEQ(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldNEQ(FieldLessonID, v))
}

// LessonIDIn applies the In predicate on the "lesson_id" field.
func LessonIDIn(vs ...string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldIn(FieldLessonID, vs...))
}

// LessonIDNotIn applies the NotIn predicate on the "lesson_id" field.
func LessonIDNotIn(vs ...string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldNotIn(FieldLessonID, vs...))
}

// LessonIDGT applies the GT predicate on the "lesson_id" field.
func LessonIDGT(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldGT(FieldLessonID, v))
}

// LessonIDGTE applies the GTE predicate on the "lesson_id" field.
func LessonIDGTE(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldGTE(FieldLessonID, v))
}

// LessonIDLT applies the LT predicate on the "lesson_id" field.
func LessonIDLT(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldLT(FieldLessonID, v))
}

// LessonIDLTE applies the LTE predicate on the "lesson_id" field.
func LessonIDLTE(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldLTE(FieldLessonID, v))
}

// LessonIDContains applies the Contains predicate on the "lesson_id" field.
func LessonIDContains(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldContains(FieldLessonID, v))
}

// LessonIDHasPrefix applies the HasPrefix predicate on the "lesson_id" field.
func LessonIDHasPrefix(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldHasPrefix(FieldLessonID, v))
}

// LessonIDHasSuffix applies the HasSuffix predicate on the "lesson_id" field.
func LessonIDHasSuffix(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldHasSuffix(FieldLessonID, v))
}

// LessonIDEqualFold applies the EqualFold predicate on the "lesson_id" field.
func LessonIDEqualFold(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEqualFold(FieldLessonID, v))
}

// LessonIDContainsFold applies the ContainsFold predicate on the "lesson_id" field.
func LessonIDContainsFold(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldContainsFold(FieldLessonID, v))
}

// ValidatedEQ applies the EQ predicate on the "validated" field.
func ValidatedEQ(v bool) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEQ(FieldValidated, v))
}

// ValidatedNEQ applies the NEQ predicate on the "validated" field.
func ValidatedNEQ(v bool) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldNEQ(FieldValidated, v))
}

// PointsDeltaEQ applies the EQ predicate on the "points_delta" field.
func PointsDeltaEQ(v int) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEQ(FieldPointsDelta, v))
}

// PointsDeltaNEQ applies the NEQ predicate on the "points_delta" field.
func PointsDeltaNEQ(v int) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldNEQ(FieldPointsDelta, v))
}

// PointsDeltaIn applies the In predicate on the "points_delta" field.
func PointsDeltaIn(vs ...int) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldIn(FieldPointsDelta, vs...))
}

// PointsDeltaNotIn applies the NotIn predicate on the "points_delta" field.
func PointsDeltaNotIn(vs ...int) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldNotIn(FieldPointsDelta, vs...))
}

// PointsDeltaGT applies the GT predicate on the "points_delta" field.
func PointsDeltaGT(v int) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldGT(FieldPointsDelta, v))
}

// PointsDeltaGTE applies the GTE predicate on the "points_delta" field.
func PointsDeltaGTE(v int) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldGTE(FieldPointsDelta, v))
}

// PointsDeltaLT applies the LT predicate on the "points_delta" field.
func PointsDeltaLT(v int) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldLT(FieldPointsDelta, v))
}

// PointsDeltaLTE applies the LTE predicate on the "points_delta" field.
func PointsDeltaLTE(v int) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldLTE(FieldPointsDelta, v))
}

// GradedByEQ applies the EQ predicate on the "graded_by" field.
func GradedByEQ(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEQ(FieldGradedBy, v))
}

// GradedByNEQ applies the NEQ predicate on the "graded_by" field.
func GradedByNEQ(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldNEQ(FieldGradedBy, v))
}

// GradedByIn applies the In predicate on the "graded_by" field.
func GradedByIn(vs ...string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldIn(FieldGradedBy, vs...))
}

// GradedByNotIn applies the NotIn predicate on the "graded_by" field.
func GradedByNotIn(vs ...string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldNotIn(FieldGradedBy, vs...))
}

// GradedByGT applies the GT predicate on the "graded_by" field.
func GradedByGT(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldGT(FieldGradedBy, v))
}

// GradedByGTE applies the GTE predicate on the "graded_by" field.
func GradedByGTE(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldGTE(FieldGradedBy, v))
}

// GradedByLT applies the LT predicate on the "graded_by" field.
func GradedByLT(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldLT(FieldGradedBy, v))
}

// GradedByLTE applies the LTE predicate on the "graded_by" field.
func GradedByLTE(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldLTE(FieldGradedBy, v))
}

// GradedByContains applies the Contains predicate on the "graded_by" field.
func GradedByContains(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldContains(FieldGradedBy, v))
}

// GradedByHasPrefix applies the HasPrefix predicate on the "graded_by" field.
func GradedByHasPrefix(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldHasPrefix(FieldGradedBy, v))
}

// GradedByHasSuffix applies the HasSuffix predicate on the "graded_by" field.
func GradedByHasSuffix(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldHasSuffix(FieldGradedBy, v))
}

// GradedByIsNil applies the IsNil predicate on the "graded_by" field.
func GradedByIsNil() predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldIsNull(FieldGradedBy))
}

// GradedByNotNil applies the NotNil predicate on the "graded_by" field.
func GradedByNotNil() predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldNotNull(FieldGradedBy))
}

// GradedByEqualFold applies the EqualFold predicate on the "graded_by" field.
func GradedByEqualFold(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEqualFold(FieldGradedBy, v))
}

// GradedByContainsFold applies the ContainsFold predicate on the "graded_by" field.
func GradedByContainsFold(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldContainsFold(FieldGradedBy, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ValidationEvent) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ValidationEvent) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ValidationEvent) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.NotPredicates(p))
}
