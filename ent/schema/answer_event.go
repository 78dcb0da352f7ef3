package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records one answer check against a lesson question.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("student_id").
			NotEmpty().
			Comment("Student who answered"),
		field.Int("week").
			Positive().
			Comment("Week number of the lesson card"),
		field.String("question_id").
			NotEmpty().
			Comment("Stable item ID within the card, e.g. c0.i1"),
		field.String("stage").
			NotEmpty().
			Comment("prereq, concept, or assessment"),
		field.String("question_type").
			NotEmpty().
			Comment("mcq, input, ordering, match, or fillblank"),
		field.String("response").
			Comment("The learner's answer as entered"),
		field.Bool("correct").
			Comment("Whether the answer was accepted"),
		field.String("corrected").
			Optional().
			Default("").
			Comment("Autocorrected form shown to the learner, if any"),
		field.Int("attempt").
			Comment("Wrong-answer count after this check"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id", "week"),
		index.Fields("question_id"),
		index.Fields("correct"),
	}
}
