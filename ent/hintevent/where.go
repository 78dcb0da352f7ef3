// Code generated by ent, DO NOT EDIT.

package hintevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/hsaleh/durus/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldEQ(FieldTimestamp, v))
}

// StudentID applies equality check predicate on the "student_id" field. It's identical to StudentIDEQ.
func StudentID(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldEQ(FieldStudentID, v))
}

// Week applies equality check predicate on the "week" field. It's identical to WeekEQ.
func Week(v int) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldEQ(FieldWeek, v))
}

// QuestionID applies equality check predicate on the "question_id" field. It's identical to QuestionIDEQ.
func QuestionID(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldEQ(FieldQuestionID, v))
}

// Attempt applies equality check predicate on the "attempt" field. It's identical to AttemptEQ.
func Attempt(v int) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldEQ(FieldAttempt, v))
}

// HintText applies equality check predicate on the "hint_text" field. It's identical to HintTextEQ.
func HintText(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldEQ(FieldHintText, v))
}

// RevealedSolution applies equality check predicate on the "revealed_solution" field. It's identical to RevealedSolutionEQ.
func RevealedSolution(v bool) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldEQ(FieldRevealedSolution, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldLTE(FieldTimestamp, v))
}

// StudentIDEQ applies the EQ predicate on the "student_id" field.
func StudentIDEQ(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldEQ(FieldStudentID, v))
}

// StudentIDNEQ applies the NEQ predicate on the "student_id" field.
func StudentIDNEQ(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldNEQ(FieldStudentID, v))
}

// StudentIDIn applies the In predicate on the "student_id" field.
func StudentIDIn(vs ...string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldIn(FieldStudentID, vs...))
}

// StudentIDNotIn applies the NotIn predicate on the "student_id" field.
func StudentIDNotIn(vs ...string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldNotIn(FieldStudentID, vs...))
}

// StudentIDGT applies the GT predicate on the "student_id" field.
func StudentIDGT(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldGT(FieldStudentID, v))
}

// StudentIDGTE applies the GTE predicate on the "student_id" field.
func StudentIDGTE(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldGTE(FieldStudentID, v))
}

// StudentIDLT applies the LT predicate on the "student_id" field.
func StudentIDLT(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldLT(FieldStudentID, v))
}

// StudentIDLTE applies the LTE predicate on the "student_id" field.
func StudentIDLTE(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldLTE(FieldStudentID, v))
}

// StudentIDContains applies the Contains predicate on the "student_id" field.
func StudentIDContains(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldContains(FieldStudentID, v))
}

// StudentIDHasPrefix applies the HasPrefix predicate on the "student_id" field.
func StudentIDHasPrefix(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldHasPrefix(FieldStudentID, v))
}

// StudentIDHasSuffix applies the HasSuffix predicate on the "student_id" field.
func StudentIDHasSuffix(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldHasSuffix(FieldStudentID, v))
}

// StudentIDEqualFold applies the EqualFold predicate on the "student_id" field.
func StudentIDEqualFold(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldEqualFold(FieldStudentID, v))
}

// StudentIDContainsFold applies the ContainsFold predicate on the "student_id" field.
func StudentIDContainsFold(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldContainsFold(FieldStudentID, v))
}

// WeekEQ applies the EQ predicate on the "week" field.
func WeekEQ(v int) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldEQ(FieldWeek, v))
}

// WeekNEQ applies the NEQ predicate on the "week" field.
func WeekNEQ(v int) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldNEQ(FieldWeek, v))
}

// WeekIn applies the In predicate on the "week" field.
func WeekIn(vs ...int) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldIn(FieldWeek, vs...))
}

// WeekNotIn applies the NotIn predicate on the "week" field.
func WeekNotIn(vs ...int) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldNotIn(FieldWeek, vs...))
}

// WeekGT applies the GT predicate on the "week" field.
func WeekGT(v int) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldGT(FieldWeek, v))
}

// WeekGTE applies the GTE predicate on the "week" field.
func WeekGTE(v int) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldGTE(FieldWeek, v))
}

// WeekLT applies the LT predicate on the "week" field.
func WeekLT(v int) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldLT(FieldWeek, v))
}

// WeekLTE applies the LTE predicate on the "week" field.
func WeekLTE(v int) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldLTE(FieldWeek, v))
}

// QuestionIDEQ applies the EQ predicate on the "question_id" field.
func QuestionIDEQ(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldEQ(FieldQuestionID, v))
}

// QuestionIDNEQ applies the NEQ predicate on the "question_id" field.
func QuestionIDNEQ(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldNEQ(FieldQuestionID, v))
}

// QuestionIDIn applies the In predicate on the "question_id" field.
func QuestionIDIn(vs ...string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldIn(FieldQuestionID, vs...))
}

// QuestionIDNotIn applies the NotIn predicate on the "question_id" field.
func QuestionIDNotIn(vs ...string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldNotIn(FieldQuestionID, vs...))
}

// QuestionIDGT applies the GT predicate on the "question_id" field.
func QuestionIDGT(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldGT(FieldQuestionID, v))
}

// QuestionIDGTE applies the GTE predicate on the "question_id" field.
func QuestionIDGTE(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldGTE(FieldQuestionID, v))
}

// QuestionIDLT applies the LT predicate on the "question_id" field.
func QuestionIDLT(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldLT(FieldQuestionID, v))
}

// QuestionIDLTE applies the LTE predicate on the "question_id" field.
func QuestionIDLTE(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldLTE(FieldQuestionID, v))
}

// QuestionIDContains applies the Contains predicate on the "question_id" field.
func QuestionIDContains(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldContains(FieldQuestionID, v))
}

// QuestionIDHasPrefix applies the HasPrefix predicate on the "question_id" field.
func QuestionIDHasPrefix(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldHasPrefix(FieldQuestionID, v))
}

// QuestionIDHasSuffix applies the HasSuffix predicate on the "question_id" field.
func QuestionIDHasSuffix(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldHasSuffix(FieldQuestionID, v))
}

// QuestionIDEqualFold applies the EqualFold predicate on the "question_id" field.
func QuestionIDEqualFold(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldEqualFold(FieldQuestionID, v))
}

// QuestionIDContainsFold applies the ContainsFold predicate on the "question_id" field.
func QuestionIDContainsFold(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldContainsFold(FieldQuestionID, v))
}

// AttemptEQ applies the EQ predicate on the "attempt" field.
func AttemptEQ(v int) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldEQ(FieldAttempt, v))
}

// AttemptNEQ applies the NEQ predicate on the "attempt" field.
func AttemptNEQ(v int) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldNEQ(FieldAttempt, v))
}

// AttemptIn applies the In predicate on the "attempt" field.
func AttemptIn(vs ...int) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldIn(FieldAttempt, vs...))
}

// AttemptNotIn applies the NotIn predicate on the "attempt" field.
func AttemptNotIn(vs ...int) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldNotIn(FieldAttempt, vs...))
}

// AttemptGT applies the GT predicate on the "attempt" field.
func AttemptGT(v int) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldGT(FieldAttempt, v))
}

// AttemptGTE applies the GTE predicate on the "attempt" field.
func AttemptGTE(v int) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldGTE(FieldAttempt, v))
}

// AttemptLT applies the LT predicate on the "attempt" field.
func AttemptLT(v int) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldLT(FieldAttempt, v))
}

// AttemptLTE applies the LTE predicate on the "attempt" field.
func AttemptLTE(v int) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldLTE(FieldAttempt, v))
}

// HintTextEQ applies the EQ predicate on the "hint_text" field.
func HintTextEQ(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldEQ(FieldHintText, v))
}

// HintTextNEQ applies the NEQ predicate on the "hint_text" field.
func HintTextNEQ(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldNEQ(FieldHintText, v))
}

// HintTextIn applies the In predicate on the "hint_text" field.
func HintTextIn(vs ...string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldIn(FieldHintText, vs...))
}

// HintTextNotIn applies the NotIn predicate on the "hint_text" field.
func HintTextNotIn(vs ...string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldNotIn(FieldHintText, vs...))
}

// HintTextGT applies the GT predicate on the "hint_text" field.
func HintTextGT(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldGT(FieldHintText, v))
}

// HintTextGTE applies the GTE predicate on the "hint_text" field.
func HintTextGTE(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldGTE(FieldHintText, v))
}

// HintTextLT applies the LT predicate on the "hint_text" field.
func HintTextLT(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldLT(FieldHintText, v))
}

// HintTextLTE applies the LTE predicate on the "hint_text" field.
func HintTextLTE(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldLTE(FieldHintText, v))
}

// HintTextContains applies the Contains predicate on the "hint_text" field.
func HintTextContains(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldContains(FieldHintText, v))
}

// HintTextHasPrefix applies the HasPrefix predicate on the "hint_text" field.
func HintTextHasPrefix(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldHasPrefix(FieldHintText, v))
}

// HintTextHasSuffix applies the HasSuffix predicate on the "hint_text" field.
func HintTextHasSuffix(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldHasSuffix(FieldHintText, v))
}

// HintTextEqualFold applies the EqualFold predicate on the "hint_text" field.
func HintTextEqualFold(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldEqualFold(FieldHintText, v))
}

// HintTextContainsFold applies the ContainsFold predicate on the "hint_text" field.
func HintTextContainsFold(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldContainsFold(FieldHintText, v))
}

// RevealedSolutionEQ applies the EQ predicate on the "revealed_solution" field.
func RevealedSolutionEQ(v bool) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldEQ(FieldRevealedSolution, v))
}

// RevealedSolutionNEQ applies the NEQ predicate on the "revealed_solution" field.
func RevealedSolutionNEQ(v bool) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldNEQ(FieldRevealedSolution, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.HintEvent) predicate.HintEvent {
	return predicate.HintEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.HintEvent) predicate.HintEvent {
	return predicate.HintEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.HintEvent) predicate.HintEvent {
	return predicate.HintEvent(sql.NotPredicates(p))
}
