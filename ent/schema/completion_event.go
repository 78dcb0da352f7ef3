package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CompletionEvent records a finished lesson with its frozen score and
// the certificate issued for it.
type CompletionEvent struct {
	ent.Schema
}

func (CompletionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (CompletionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("student_id").
			NotEmpty().
			Comment("Student who completed the lesson"),
		field.Int("week").
			Positive().
			Comment("Week number of the lesson card"),
		field.String("lesson_title").
			NotEmpty().
			Comment("Card title at completion time"),
		field.Int("score").
			Comment("Points earned in the assessment"),
		field.Int("total").
			Comment("Points possible in the assessment"),
		field.Int("percent").
			Comment("Score as a 0-100 percentage"),
		field.String("certificate_id").
			NotEmpty().
			Unique().
			Comment("Certificate UUID issued for this completion"),
	}
}

func (CompletionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id", "week"),
	}
}
