// Code generated by ent, DO NOT EDIT.

package progress

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the progress type in the database.
	Label = "progress"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldStudentID holds the string denoting the student_id field in the database.
	FieldStudentID = "student_id"
	// FieldWeek holds the string denoting the week field in the database.
	FieldWeek = "week"
	// FieldStage holds the string denoting the stage field in the database.
	FieldStage = "stage"
	// FieldPrereqIndex holds the string denoting the prereq_index field in the database.
	FieldPrereqIndex = "prereq_index"
	// FieldConceptIndex holds the string denoting the concept_index field in the database.
	FieldConceptIndex = "concept_index"
	// FieldItemIndex holds the string denoting the item_index field in the database.
	FieldItemIndex = "item_index"
	// FieldAssessment holds the string denoting the assessment field in the database.
	FieldAssessment = "assessment"
	// FieldCompleted holds the string denoting the completed field in the database.
	FieldCompleted = "completed"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the progress in the database.
	Table = "progresses"
)

// Columns holds all SQL columns for progress fields.
var Columns = []string{
	FieldID,
	FieldStudentID,
	FieldWeek,
	FieldStage,
	FieldPrereqIndex,
	FieldConceptIndex,
	FieldItemIndex,
	FieldAssessment,
	FieldCompleted,
	FieldUpdatedAt,
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
	// StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	StudentIDValidator func(string) error
	// WeekValidator is a validator for the "week" field. It is called by the builders before save.
	WeekValidator func(int) error
	// StageValidator is a validator for the "stage" field. It is called by the builders before save.
	StageValidator func(string) error
	// DefaultPrereqIndex holds the default value on creation for the "prereq_index" field.
	DefaultPrereqIndex int
	// DefaultConceptIndex holds the default value on creation for the "concept_index" field.
	DefaultConceptIndex int
	// DefaultItemIndex holds the default value on creation for the "item_index" field.
	DefaultItemIndex int
	// DefaultCompleted holds the default value on creation for the "completed" field.
	DefaultCompleted bool
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the Progress queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByStudentID orders the results by the student_id field.
func ByStudentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudentID, opts...).ToFunc()
}

// ByWeek orders the results by the week field.
func ByWeek(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWeek, opts...).ToFunc()
}

// ByStage orders the results by the stage field.
func ByStage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStage, opts...).ToFunc()
}

// ByPrereqIndex orders the results by the prereq_index field.
func ByPrereqIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrereqIndex, opts...).ToFunc()
}

// ByConceptIndex orders the results by the concept_index field.
func ByConceptIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConceptIndex, opts...).ToFunc()
}

// ByItemIndex orders the results by the item_index field.
func ByItemIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldItemIndex, opts...).ToFunc()
}

// ByCompleted orders the results by the completed field.
func ByCompleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompleted, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
