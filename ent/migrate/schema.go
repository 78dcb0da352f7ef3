// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnswerEventsColumns holds the columns for the "answer_events" table.
	AnswerEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "student_id", Type: field.TypeString},
		{Name: "week", Type: field.TypeInt},
		{Name: "question_id", Type: field.TypeString},
		{Name: "stage", Type: field.TypeString},
		{Name: "question_type", Type: field.TypeString},
		{Name: "response", Type: field.TypeString},
		{Name: "correct", Type: field.TypeBool},
		{Name: "corrected", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "attempt", Type: field.TypeInt},
	}
	// AnswerEventsTable holds the schema information for the "answer_events" table.
	AnswerEventsTable = &schema.Table{
		Name:       "answer_events",
		Columns:    AnswerEventsColumns,
		PrimaryKey: []*schema.Column{AnswerEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "answerevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[1]},
			},
			{
				Name:    "answerevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[2]},
			},
			{
				Name:    "answerevent_student_id_week",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[3], AnswerEventsColumns[4]},
			},
			{
				Name:    "answerevent_question_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[5]},
			},
			{
				Name:    "answerevent_correct",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[9]},
			},
		},
	}
	// CompletionEventsColumns holds the columns for the "completion_events" table.
	CompletionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "student_id", Type: field.TypeString},
		{Name: "week", Type: field.TypeInt},
		{Name: "lesson_title", Type: field.TypeString},
		{Name: "score", Type: field.TypeInt},
		{Name: "total", Type: field.TypeInt},
		{Name: "percent", Type: field.TypeInt},
		{Name: "certificate_id", Type: field.TypeString, Unique: true},
	}
	// CompletionEventsTable holds the schema information for the "completion_events" table.
	CompletionEventsTable = &schema.Table{
		Name:       "completion_events",
		Columns:    CompletionEventsColumns,
		PrimaryKey: []*schema.Column{CompletionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "completionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{CompletionEventsColumns[1]},
			},
			{
				Name:    "completionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{CompletionEventsColumns[2]},
			},
			{
				Name:    "completionevent_student_id_week",
				Unique:  false,
				Columns: []*schema.Column{CompletionEventsColumns[3], CompletionEventsColumns[4]},
			},
		},
	}
	// HintEventsColumns holds the columns for the "hint_events" table.
	HintEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "student_id", Type: field.TypeString},
		{Name: "week", Type: field.TypeInt},
		{Name: "question_id", Type: field.TypeString},
		{Name: "attempt", Type: field.TypeInt},
		{Name: "hint_text", Type: field.TypeString},
		{Name: "revealed_solution", Type: field.TypeBool, Default: false},
	}
	// HintEventsTable holds the schema information for the "hint_events" table.
	HintEventsTable = &schema.Table{
		Name:       "hint_events",
		Columns:    HintEventsColumns,
		PrimaryKey: []*schema.Column{HintEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "hintevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{HintEventsColumns[1]},
			},
			{
				Name:    "hintevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{HintEventsColumns[2]},
			},
			{
				Name:    "hintevent_student_id_week",
				Unique:  false,
				Columns: []*schema.Column{HintEventsColumns[3], HintEventsColumns[4]},
			},
			{
				Name:    "hintevent_question_id",
				Unique:  false,
				Columns: []*schema.Column{HintEventsColumns[5]},
			},
		},
	}
	// ProgressesColumns holds the columns for the "progresses" table.
	ProgressesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "student_id", Type: field.TypeString},
		{Name: "week", Type: field.TypeInt},
		{Name: "stage", Type: field.TypeString},
		{Name: "prereq_index", Type: field.TypeInt, Default: 0},
		{Name: "concept_index", Type: field.TypeInt, Default: 0},
		{Name: "item_index", Type: field.TypeInt, Default: 0},
		{Name: "assessment", Type: field.TypeJSON, Nullable: true},
		{Name: "completed", Type: field.TypeBool, Default: false},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProgressesTable holds the schema information for the "progresses" table.
	ProgressesTable = &schema.Table{
		Name:       "progresses",
		Columns:    ProgressesColumns,
		PrimaryKey: []*schema.Column{ProgressesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "progress_student_id_week",
				Unique:  true,
				Columns: []*schema.Column{ProgressesColumns[1], ProgressesColumns[2]},
			},
			{
				Name:    "progress_completed",
				Unique:  false,
				Columns: []*schema.Column{ProgressesColumns[8]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnswerEventsTable,
		CompletionEventsTable,
		HintEventsTable,
		ProgressesTable,
	}
)

func init() {
}
