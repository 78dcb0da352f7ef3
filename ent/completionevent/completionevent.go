// Code generated by ent, DO NOT EDIT.

package completionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the completionevent type in the database.
	Label = "completion_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldStudentID holds the string denoting the student_id field in the database.
	FieldStudentID = "student_id"
	// FieldWeek holds the string denoting the week field in the database.
	FieldWeek = "week"
	// FieldLessonTitle holds the string denoting the lesson_title field in the database.
	FieldLessonTitle = "lesson_title"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldTotal holds the string denoting the total field in the database.
	FieldTotal = "total"
	// FieldPercent holds the string denoting the percent field in the database.
	FieldPercent = "percent"
	// FieldCertificateID holds the string denoting the certificate_id field in the database.
	FieldCertificateID = "certificate_id"
	// Table holds the table name of the completionevent in the database.
	Table = "completion_events"
)

// Columns holds all SQL columns for completionevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldStudentID,
	FieldWeek,
	FieldLessonTitle,
	FieldScore,
	FieldTotal,
	FieldPercent,
	FieldCertificateID,
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
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	StudentIDValidator func(string) error
	// WeekValidator is a validator for the "week" field. It is called by the builders before save.
	WeekValidator func(int) error
	// LessonTitleValidator is a validator for the "lesson_title" field. It is called by the builders before save.
	LessonTitleValidator func(string) error
	// CertificateIDValidator is a validator for the "certificate_id" field. It is called by the builders before save.
	CertificateIDValidator func(string) error
)

// OrderOption defines the ordering options for the CompletionEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByStudentID orders the results by the student_id field.
func ByStudentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudentID, opts...).ToFunc()
}

// ByWeek orders the results by the week field.
func ByWeek(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWeek, opts...).ToFunc()
}

// ByLessonTitle orders the results by the lesson_title field.
func ByLessonTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLessonTitle, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// ByTotal orders the results by the total field.
func ByTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotal, opts...).ToFunc()
}

// ByPercent orders the results by the percent field.
func ByPercent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPercent, opts...).ToFunc()
}

// ByCertificateID orders the results by the certificate_id field.
func ByCertificateID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCertificateID, opts...).ToFunc()
}
