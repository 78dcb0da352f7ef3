// Code generated by ent, DO NOT EDIT.

package completionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/hsaleh/durus/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// StudentID applies equality check predicate on the "student_id" field. It's identical to StudentIDEQ.
func StudentID(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEQ(FieldStudentID, v))
}

// Week applies equality check predicate on the "week" field. It's identical to WeekEQ.
func Week(v int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEQ(FieldWeek, v))
}

// LessonTitle applies equality check predicate on the "lesson_title" field. It's identical to LessonTitleEQ.
func LessonTitle(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEQ(FieldLessonTitle, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEQ(FieldScore, v))
}

// Total applies equality check predicate on the "total" field. It's identical to TotalEQ.
func Total(v int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEQ(FieldTotal, v))
}

// Percent applies equality check predicate on the "percent" field. It's identical to PercentEQ.
func Percent(v int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEQ(FieldPercent, v))
}

// CertificateID applies equality check predicate on the "certificate_id" field. It's identical to CertificateIDEQ.
func CertificateID(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEQ(FieldCertificateID, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldLTE(FieldTimestamp, v))
}

// StudentIDEQ applies the EQ predicate on the "student_id" field.
func StudentIDEQ(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEQ(FieldStudentID, v))
}

// StudentIDNEQ applies the NEQ predicate on the "student_id" field.
func StudentIDNEQ(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldNEQ(FieldStudentID, v))
}

// StudentIDIn applies the In predicate on the "student_id" field.
func StudentIDIn(vs ...string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldIn(FieldStudentID, vs...))
}

// StudentIDNotIn applies the NotIn predicate on the "student_id" field.
func StudentIDNotIn(vs ...string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldNotIn(FieldStudentID, vs...))
}

// StudentIDGT applies the GT predicate on the "student_id" field.
func StudentIDGT(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldGT(FieldStudentID, v))
}

// StudentIDGTE applies the GTE predicate on the "student_id" field.
func StudentIDGTE(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldGTE(FieldStudentID, v))
}

// StudentIDLT applies the LT predicate on the "student_id" field.
func StudentIDLT(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldLT(FieldStudentID, v))
}

// StudentIDLTE applies the LTE predicate on the "student_id" field.
func StudentIDLTE(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldLTE(FieldStudentID, v))
}

// StudentIDContains applies the Contains predicate on the "student_id" field.
func StudentIDContains(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldContains(FieldStudentID, v))
}

// StudentIDHasPrefix applies the HasPrefix predicate on the "student_id" field.
func StudentIDHasPrefix(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldHasPrefix(FieldStudentID, v))
}

// StudentIDHasSuffix applies the HasSuffix predicate on the "student_id" field.
func StudentIDHasSuffix(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldHasSuffix(FieldStudentID, v))
}

// StudentIDEqualFold applies the EqualFold predicate on the "student_id" field.
func StudentIDEqualFold(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEqualFold(FieldStudentID, v))
}

// StudentIDContainsFold applies the ContainsFold predicate on the "student_id" field.
func StudentIDContainsFold(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldContainsFold(FieldStudentID, v))
}

// WeekEQ applies the EQ predicate on the "week" field.
func WeekEQ(v int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEQ(FieldWeek, v))
}

// WeekNEQ applies the NEQ predicate on the "week" field.
func WeekNEQ(v int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldNEQ(FieldWeek, v))
}

// WeekIn applies the In predicate on the "week" field.
func WeekIn(vs ...int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldIn(FieldWeek, vs...))
}

// WeekNotIn applies the NotIn predicate on the "week" field.
func WeekNotIn(vs ...int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldNotIn(FieldWeek, vs...))
}

// WeekGT applies the GT predicate on the "week" field.
func WeekGT(v int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldGT(FieldWeek, v))
}

// WeekGTE applies the GTE predicate on the "week" field.
func WeekGTE(v int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldGTE(FieldWeek, v))
}

// WeekLT applies the LT predicate on the "week" field.
func WeekLT(v int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldLT(FieldWeek, v))
}

// WeekLTE applies the LTE predicate on the "week" field.
func WeekLTE(v int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldLTE(FieldWeek, v))
}

// LessonTitleEQ applies the EQ predicate on the "lesson_title" field.
func LessonTitleEQ(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEQ(FieldLessonTitle, v))
}

// LessonTitleNEQ applies the NEQ predicate on the "lesson_title" field.
func LessonTitleNEQ(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldNEQ(FieldLessonTitle, v))
}

// LessonTitleIn applies the In predicate on the "lesson_title" field.
func LessonTitleIn(vs ...string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldIn(FieldLessonTitle, vs...))
}

// LessonTitleNotIn applies the NotIn predicate on the "lesson_title" field.
func LessonTitleNotIn(vs ...string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldNotIn(FieldLessonTitle, vs...))
}

// LessonTitleGT applies the GT predicate on the "lesson_title" field.
func LessonTitleGT(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldGT(FieldLessonTitle, v))
}

// LessonTitleGTE applies the GTE predicate on the "lesson_title" field.
func LessonTitleGTE(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldGTE(FieldLessonTitle, v))
}

// LessonTitleLT applies the LT predicate on the "lesson_title" field.
func LessonTitleLT(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldLT(FieldLessonTitle, v))
}

// LessonTitleLTE applies the LTE predicate on the "lesson_title" field.
func LessonTitleLTE(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldLTE(FieldLessonTitle, v))
}

// LessonTitleContains applies the Contains predicate on the "lesson_title" field.
func LessonTitleContains(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldContains(FieldLessonTitle, v))
}

// LessonTitleHasPrefix applies the HasPrefix predicate on the "lesson_title" field.
func LessonTitleHasPrefix(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldHasPrefix(FieldLessonTitle, v))
}

// LessonTitleHasSuffix applies the HasSuffix predicate on the "lesson_title" field.
func LessonTitleHasSuffix(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldHasSuffix(FieldLessonTitle, v))
}

// LessonTitleEqualFold applies the EqualFold predicate on the "lesson_title" field.
func LessonTitleEqualFold(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEqualFold(FieldLessonTitle, v))
}

// LessonTitleContainsFold applies the ContainsFold predicate on the "lesson_title" field.
func LessonTitleContainsFold(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldContainsFold(FieldLessonTitle, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldLTE(FieldScore, v))
}

// TotalEQ applies the EQ predicate on the "total" field.
func TotalEQ(v int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEQ(FieldTotal, v))
}

// TotalNEQ applies the NEQ predicate on the "total" field.
func TotalNEQ(v int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldNEQ(FieldTotal, v))
}

// TotalIn applies the In predicate on the "total" field.
func TotalIn(vs ...int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldIn(FieldTotal, vs...))
}

// TotalNotIn applies the NotIn predicate on the "total" field.
func TotalNotIn(vs ...int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldNotIn(FieldTotal, vs...))
}

// TotalGT applies the GT predicate on the "total" field.
func TotalGT(v int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldGT(FieldTotal, v))
}

// TotalGTE applies the GTE predicate on the "total" field.
func TotalGTE(v int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldGTE(FieldTotal, v))
}

// TotalLT applies the LT predicate on the "total" field.
func TotalLT(v int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldLT(FieldTotal, v))
}

// TotalLTE applies the LTE predicate on the "total" field.
func TotalLTE(v int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldLTE(FieldTotal, v))
}

// PercentEQ applies the EQ predicate on the "percent" field.
func PercentEQ(v int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEQ(FieldPercent, v))
}

// PercentNEQ applies the NEQ predicate on the "percent" field.
func PercentNEQ(v int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldNEQ(FieldPercent, v))
}

// PercentIn applies the In predicate on the "percent" field.
func PercentIn(vs ...int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldIn(FieldPercent, vs...))
}

// PercentNotIn applies the NotIn predicate on the "percent" field.
func PercentNotIn(vs ...int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldNotIn(FieldPercent, vs...))
}

// PercentGT applies the GT predicate on the "percent" field.
func PercentGT(v int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldGT(FieldPercent, v))
}

// PercentGTE applies the GTE predicate on the "percent" field.
func PercentGTE(v int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldGTE(FieldPercent, v))
}

// PercentLT applies the LT predicate on the "percent" field.
func PercentLT(v int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldLT(FieldPercent, v))
}

// PercentLTE applies the LTE predicate on the "percent" field.
func PercentLTE(v int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldLTE(FieldPercent, v))
}

// CertificateIDEQ applies the EQ predicate on the "certificate_id" field.
func CertificateIDEQ(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEQ(FieldCertificateID, v))
}

// CertificateIDNEQ applies the NEQ predicate on the "certificate_id" field.
func CertificateIDNEQ(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldNEQ(FieldCertificateID, v))
}

// CertificateIDIn applies the In predicate on the "certificate_id" field.
func CertificateIDIn(vs ...string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldIn(FieldCertificateID, vs...))
}

// CertificateIDNotIn applies the NotIn predicate on the "certificate_id" field.
func CertificateIDNotIn(vs ...string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldNotIn(FieldCertificateID, vs...))
}

// CertificateIDGT applies the GT predicate on the "certificate_id" field.
func CertificateIDGT(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldGT(FieldCertificateID, v))
}

// CertificateIDGTE applies the GTE predicate on the "certificate_id" field.
func CertificateIDGTE(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldGTE(FieldCertificateID, v))
}

// CertificateIDLT applies the LT predicate on the "certificate_id" field.
func CertificateIDLT(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldLT(FieldCertificateID, v))
}

// CertificateIDLTE applies the LTE predicate on the "certificate_id" field.
func CertificateIDLTE(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldLTE(FieldCertificateID, v))
}

// CertificateIDContains applies the Contains predicate on the "certificate_id" field.
func CertificateIDContains(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldContains(FieldCertificateID, v))
}

// CertificateIDHasPrefix applies the HasPrefix predicate on the "certificate_id" field.
func CertificateIDHasPrefix(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldHasPrefix(FieldCertificateID, v))
}

// CertificateIDHasSuffix applies the HasSuffix predicate on the "certificate_id" field.
func CertificateIDHasSuffix(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldHasSuffix(FieldCertificateID, v))
}

// CertificateIDEqualFold applies the EqualFold predicate on the "certificate_id" field.
func CertificateIDEqualFold(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEqualFold(FieldCertificateID, v))
}

// CertificateIDContainsFold applies the ContainsFold predicate on the "certificate_id" field.
func CertificateIDContainsFold(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldContainsFold(FieldCertificateID, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CompletionEvent) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CompletionEvent) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CompletionEvent) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.NotPredicates(p))
}
