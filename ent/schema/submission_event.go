package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SubmissionEvent records a student finishing a lesson in the player:
// either a completion or a practice lesson handed in for review.
type SubmissionEvent struct {
	ent.Schema
}

func (SubmissionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SubmissionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("submission_id").
			NotEmpty().
			Comment("UUID assigned when the submit action fires"),
		field.String("user_id").NotEmpty(),
		field.String("lesson_id").NotEmpty(),
		field.String("new_status").
			NotEmpty().
			Comment("completed or pending_review"),
		field.String("unlocked_lesson_id").
			Optional().
			Comment("Lesson flipped from locked to active, if any"),
	}
}

func (SubmissionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("lesson_id"),
	}
}
