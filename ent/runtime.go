// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/fretwise/fretwise/ent/schema"
	"github.com/fretwise/fretwise/ent/snapshot"
	"github.com/fretwise/fretwise/ent/submissionevent"
	"github.com/fretwise/fretwise/ent/validationevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[2].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
	submissioneventMixin := schema.SubmissionEvent{}.Mixin()
	submissioneventMixinFields0 := submissioneventMixin[0].Fields()
	_ = submissioneventMixinFields0
	submissioneventFields := schema.SubmissionEvent{}.Fields()
	_ = submissioneventFields
	// submissioneventDescTimestamp is the schema descriptor for timestamp field.
	submissioneventDescTimestamp := submissioneventMixinFields0[1].Descriptor()
	// submissionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	submissionevent.DefaultTimestamp = submissioneventDescTimestamp.Default.(func() time.Time)
	// submissioneventDescSubmissionID is the schema descriptor for submission_id field.
	submissioneventDescSubmissionID := submissioneventFields[0].Descriptor()
	// submissionevent.SubmissionIDValidator is a validator for the "submission_id" field. It is called by the builders before save.
	submissionevent.SubmissionIDValidator = submissioneventDescSubmissionID.Validators[0].(func(string) error)
	// submissioneventDescUserID is the schema descriptor for user_id field.
	submissioneventDescUserID := submissioneventFields[1].Descriptor()
	// submissionevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	submissionevent.UserIDValidator = submissioneventDescUserID.Validators[0].(func(string) error)
	// submissioneventDescLessonID is the schema descriptor for lesson_id field.
	submissioneventDescLessonID := submissioneventFields[2].Descriptor()
	// submissionevent.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	submissionevent.LessonIDValidator = submissioneventDescLessonID.Validators[0].(func(string) error)
	// submissioneventDescNewStatus is the schema descriptor for new_status field.
	submissioneventDescNewStatus := submissioneventFields[3].Descriptor()
	// submissionevent.NewStatusValidator is a validator for the "new_status" field. It is called by the builders before save.
	submissionevent.NewStatusValidator = submissioneventDescNewStatus.Validators[0].(func(string) error)
	validationeventMixin := schema.ValidationEvent{}.Mixin()
	validationeventMixinFields0 := validationeventMixin[0].Fields()
	_ = validationeventMixinFields0
	validationeventFields := schema.ValidationEvent{}.Fields()
	_ = validationeventFields
	// validationeventDescTimestamp is the schema descriptor for timestamp field.
	validationeventDescTimestamp := validationeventMixinFields0[1].Descriptor()
	// validationevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	validationevent.DefaultTimestamp = validationeventDescTimestamp.Default.(func() time.Time)
	// validationeventDescUserID is the schema descriptor for user_id field.
	validationeventDescUserID := validationeventFields[0].Descriptor()
	// validationevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	validationevent.UserIDValidator = validationeventDescUserID.Validators[0].(func(string) error)
	// validationeventDescLessonID is the schema descriptor for lesson_id field.
	validationeventDescLessonID := validationeventFields[1].Descriptor()
	// validationevent.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	validationevent.LessonIDValidator = validationeventDescLessonID.Validators[0].(func(string) error)
	// validationeventDescPointsDelta is the schema descriptor for points_delta field.
	validationeventDescPointsDelta := validationeventFields[3].Descriptor()
	// validationevent.DefaultPointsDelta holds the default value on creation for the points_delta field.
	validationevent.DefaultPointsDelta = validationeventDescPointsDelta.Default.(int)
}
