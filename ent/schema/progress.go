package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Progress holds the saved position of one student in one weekly card.
// There is exactly one row per (student, week); saves upsert it.
type Progress struct {
	ent.Schema
}

func (Progress) Fields() []ent.Field {
	return []ent.Field{
		field.String("student_id").
			NotEmpty().
			Comment("Student the progress belongs to"),
		field.Int("week").
			Positive().
			Comment("Week number of the lesson card"),
		field.String("stage").
			NotEmpty().
			Comment("goals, prereq, concept, assessment, or done"),
		field.Int("prereq_index").
			Default(0).
			Comment("Position within the prerequisite checks"),
		field.Int("concept_index").
			Default(0).
			Comment("Position within the concept list"),
		field.Int("item_index").
			Default(0).
			Comment("Position within the current concept flow"),
		field.JSON("assessment", map[string]any{}).
			Optional().
			Comment("Assessment position and frozen score as JSON"),
		field.Bool("completed").
			Default(false).
			Comment("Whether the lesson reached its terminal stage"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last save time"),
	}
}

func (Progress) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id", "week").Unique(),
		index.Fields("completed"),
	}
}
