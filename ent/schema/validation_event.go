package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ValidationEvent records an admin grading a checkpoint for a user,
// in either direction. The validation history shown to students and
// the forecast engine's daysSinceLastAction both derive from it.
type ValidationEvent struct {
	ent.Schema
}

func (ValidationEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ValidationEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").NotEmpty(),
		field.String("lesson_id").NotEmpty(),
		field.Bool("validated").
			Comment("true for validate, false for un-validate"),
		field.Int("points_delta").
			Default(0).
			Comment("Reward applied to the user, after flooring at zero"),
		field.String("graded_by").
			Optional().
			Comment("Admin user id that performed the grading"),
	}
}

func (ValidationEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("lesson_id"),
	}
}
