package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// HintEvent records a hint (or solution reveal) shown to the learner.
type HintEvent struct {
	ent.Schema
}

func (HintEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (HintEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("student_id").
			NotEmpty().
			Comment("Student who received the hint"),
		field.Int("week").
			Positive().
			Comment("Week number of the lesson card"),
		field.String("question_id").
			NotEmpty().
			Comment("Stable item ID within the card"),
		field.Int("attempt").
			Comment("Wrong-answer count that triggered the hint"),
		field.String("hint_text").
			Comment("The hint shown"),
		field.Bool("revealed_solution").
			Default(false).
			Comment("Whether the full solution was revealed"),
	}
}

func (HintEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id", "week"),
		index.Fields("question_id"),
	}
}
