// Code generated by ent, DO NOT EDIT.

package progress

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/hsaleh/durus/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Progress {
	return predicate.Progress(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Progress {
	return predicate.Progress(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Progress {
	return predicate.Progress(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Progress {
	return predicate.Progress(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Progress {
	return predicate.Progress(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Progress {
	return predicate.Progress(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Progress {
	return predicate.Progress(sql.FieldLTE(FieldID, id))
}

// StudentID applies equality check predicate on the "student_id" field. It's identical to StudentIDEQ.
func StudentID(v string) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldStudentID, v))
}

// Week applies equality check predicate on the "week" field. It's identical to WeekEQ.
func Week(v int) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldWeek, v))
}

// Stage applies equality check predicate on the "stage" field. It's identical to StageEQ.
func Stage(v string) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldStage, v))
}

// PrereqIndex applies equality check predicate on the "prereq_index" field. It's identical to PrereqIndexEQ.
func PrereqIndex(v int) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldPrereqIndex, v))
}

// ConceptIndex applies equality check predicate on the "concept_index" field. It's identical to ConceptIndexEQ.
func ConceptIndex(v int) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldConceptIndex, v))
}

// ItemIndex applies equality check predicate on the "item_index" field. It's identical to ItemIndexEQ.
func ItemIndex(v int) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldItemIndex, v))
}

// Completed applies equality check predicate on the "completed" field. It's identical to CompletedEQ.
func Completed(v bool) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldCompleted, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldUpdatedAt, v))
}

// StudentIDEQ applies the EQ predicate on the "student_id" field.
func StudentIDEQ(v string) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldStudentID, v))
}

// StudentIDNEQ applies the NEQ predicate on the "student_id" field.
func StudentIDNEQ(v string) predicate.Progress {
	return predicate.Progress(sql.FieldNEQ(FieldStudentID, v))
}

// StudentIDIn applies the In predicate on the "student_id" field.
func StudentIDIn(vs ...string) predicate.Progress {
	return predicate.Progress(sql.FieldIn(FieldStudentID, vs...))
}

// StudentIDNotIn applies the NotIn predicate on the "student_id" field.
func StudentIDNotIn(vs ...string) predicate.Progress {
	return predicate.Progress(sql.FieldNotIn(FieldStudentID, vs...))
}

// StudentIDGT applies the GT predicate on the "student_id" field.
func StudentIDGT(v string) predicate.Progress {
	return predicate.Progress(sql.FieldGT(FieldStudentID, v))
}

// StudentIDGTE applies the GTE predicate on the "student_id" field.
func StudentIDGTE(v string) predicate.Progress {
	return predicate.Progress(sql.FieldGTE(FieldStudentID, v))
}

// StudentIDLT applies the LT predicate on the "student_id" field.
func StudentIDLT(v string) predicate.Progress {
	return predicate.Progress(sql.FieldLT(FieldStudentID, v))
}

// StudentIDLTE applies the LTE predicate on the "student_id" field.
func StudentIDLTE(v string) predicate.Progress {
	return predicate.Progress(sql.FieldLTE(FieldStudentID, v))
}

// StudentIDContains applies the Contains predicate on the "student_id" field.
func StudentIDContains(v string) predicate.Progress {
	return predicate.Progress(sql.FieldContains(FieldStudentID, v))
}

// StudentIDHasPrefix applies the HasPrefix predicate on the "student_id" field.
func StudentIDHasPrefix(v string) predicate.Progress {
	return predicate.Progress(sql.FieldHasPrefix(FieldStudentID, v))
}

// StudentIDHasSuffix applies the HasSuffix predicate on the "student_id" field.
func StudentIDHasSuffix(v string) predicate.Progress {
	return predicate.Progress(sql.FieldHasSuffix(FieldStudentID, v))
}

// StudentIDEqualFold applies the EqualFold predicate on the "student_id" field.
func StudentIDEqualFold(v string) predicate.Progress {
	return predicate.Progress(sql.FieldEqualFold(FieldStudentID, v))
}

// StudentIDContainsFold applies the ContainsFold predicate on the "student_id" field.
func StudentIDContainsFold(v string) predicate.Progress {
	return predicate.Progress(sql.FieldContainsFold(FieldStudentID, v))
}

// WeekEQ applies the EQ predicate on the "week" field.
func WeekEQ(v int) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldWeek, v))
}

// WeekNEQ applies the NEQ predicate on the "week" field.
func WeekNEQ(v int) predicate.Progress {
	return predicate.Progress(sql.FieldNEQ(FieldWeek, v))
}

// WeekIn applies the In predicate on the "week" field.
func WeekIn(vs ...int) predicate.Progress {
	return predicate.Progress(sql.FieldIn(FieldWeek, vs...))
}

// WeekNotIn applies the NotIn predicate on the "week" field.
func WeekNotIn(vs ...int) predicate.Progress {
	return predicate.Progress(sql.FieldNotIn(FieldWeek, vs...))
}

// WeekGT applies the GT predicate on the "week" field.
func WeekGT(v int) predicate.Progress {
	return predicate.Progress(sql.FieldGT(FieldWeek, v))
}

// WeekGTE applies the GTE predicate on the "week" field.
func WeekGTE(v int) predicate.Progress {
	return predicate.Progress(sql.FieldGTE(FieldWeek, v))
}

// WeekLT applies the LT predicate on the "week" field.
func WeekLT(v int) predicate.Progress {
	return predicate.Progress(sql.FieldLT(FieldWeek, v))
}

// WeekLTE applies the LTE predicate on the "week" field.
func WeekLTE(v int) predicate.Progress {
	return predicate.Progress(sql.FieldLTE(FieldWeek, v))
}

// StageEQ applies the EQ predicate on the "stage" field.
func StageEQ(v string) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldStage, v))
}

// StageNEQ applies the NEQ predicate on the "stage" field.
func StageNEQ(v string) predicate.Progress {
	return predicate.Progress(sql.FieldNEQ(FieldStage, v))
}

// StageIn applies the In predicate on the "stage" field.
func StageIn(vs ...string) predicate.Progress {
	return predicate.Progress(sql.FieldIn(FieldStage, vs...))
}

// StageNotIn applies the NotIn predicate on the "stage" field.
func StageNotIn(vs ...string) predicate.Progress {
	return predicate.Progress(sql.FieldNotIn(FieldStage, vs...))
}

// StageGT applies the GT predicate on the "stage" field.
func StageGT(v string) predicate.Progress {
	return predicate.Progress(sql.FieldGT(FieldStage, v))
}

// StageGTE applies the GTE predicate on the "stage" field.
func StageGTE(v string) predicate.Progress {
	return predicate.Progress(sql.FieldGTE(FieldStage, v))
}

// StageLT applies the LT predicate on the "stage" field.
func StageLT(v string) predicate.Progress {
	return predicate.Progress(sql.FieldLT(FieldStage, v))
}

// StageLTE applies the LTE predicate on the "stage" field.
func StageLTE(v string) predicate.Progress {
	return predicate.Progress(sql.FieldLTE(FieldStage, v))
}

// StageContains applies the Contains predicate on the "stage" field.
func StageContains(v string) predicate.Progress {
	return predicate.Progress(sql.FieldContains(FieldStage, v))
}

// StageHasPrefix applies the HasPrefix predicate on the "stage" field.
func StageHasPrefix(v string) predicate.Progress {
	return predicate.Progress(sql.FieldHasPrefix(FieldStage, v))
}

// StageHasSuffix applies the HasSuffix predicate on the "stage" field.
func StageHasSuffix(v string) predicate.Progress {
	return predicate.Progress(sql.FieldHasSuffix(FieldStage, v))
}

// StageEqualFold applies the EqualFold predicate on the "stage" field.
func StageEqualFold(v string) predicate.Progress {
	return predicate.Progress(sql.FieldEqualFold(FieldStage, v))
}

// StageContainsFold applies the ContainsFold predicate on the "stage" field.
func StageContainsFold(v string) predicate.Progress {
	return predicate.Progress(sql.FieldContainsFold(FieldStage, v))
}

// PrereqIndexEQ applies the EQ predicate on the "prereq_index" field.
func PrereqIndexEQ(v int) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldPrereqIndex, v))
}

// PrereqIndexNEQ applies the NEQ predicate on the "prereq_index" field.
func PrereqIndexNEQ(v int) predicate.Progress {
	return predicate.Progress(sql.FieldNEQ(FieldPrereqIndex, v))
}

// PrereqIndexIn applies the In predicate on the "prereq_index" field.
func PrereqIndexIn(vs ...int) predicate.Progress {
	return predicate.Progress(sql.FieldIn(FieldPrereqIndex, vs...))
}

// PrereqIndexNotIn applies the NotIn predicate on the "prereq_index" field.
func PrereqIndexNotIn(vs ...int) predicate.Progress {
	return predicate.Progress(sql.FieldNotIn(FieldPrereqIndex, vs...))
}

// PrereqIndexGT applies the GT predicate on the "prereq_index" field.
func PrereqIndexGT(v int) predicate.Progress {
	return predicate.Progress(sql.FieldGT(FieldPrereqIndex, v))
}

// PrereqIndexGTE applies the GTE predicate on the "prereq_index" field.
func PrereqIndexGTE(v int) predicate.Progress {
	return predicate.Progress(sql.FieldGTE(FieldPrereqIndex, v))
}

// PrereqIndexLT applies the LT predicate on the "prereq_index" field.
func PrereqIndexLT(v int) predicate.Progress {
	return predicate.Progress(sql.FieldLT(FieldPrereqIndex, v))
}

// PrereqIndexLTE applies the LTE predicate on the "prereq_index" field.
func PrereqIndexLTE(v int) predicate.Progress {
	return predicate.Progress(sql.FieldLTE(FieldPrereqIndex, v))
}

// ConceptIndexEQ applies the EQ predicate on the "concept_index" field.
func ConceptIndexEQ(v int) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldConceptIndex, v))
}

// ConceptIndexNEQ applies the NEQ predicate on the "concept_index" field.
func ConceptIndexNEQ(v int) predicate.Progress {
	return predicate.Progress(sql.FieldNEQ(FieldConceptIndex, v))
}

// ConceptIndexIn applies the In predicate on the "concept_index" field.
func ConceptIndexIn(vs ...int) predicate.Progress {
	return predicate.Progress(sql.FieldIn(FieldConceptIndex, vs...))
}

// ConceptIndexNotIn applies the NotIn predicate on the "concept_index" field.
func ConceptIndexNotIn(vs ...int) predicate.Progress {
	return predicate.Progress(sql.FieldNotIn(FieldConceptIndex, vs...))
}

// ConceptIndexGT applies the GT predicate on the "concept_index" field.
func ConceptIndexGT(v int) predicate.Progress {
	return predicate.Progress(sql.FieldGT(FieldConceptIndex, v))
}

// ConceptIndexGTE applies the GTE predicate on the "concept_index" field.
func ConceptIndexGTE(v int) predicate.Progress {
	return predicate.Progress(sql.FieldGTE(FieldConceptIndex, v))
}

// ConceptIndexLT applies the LT predicate on the "concept_index" field.
func ConceptIndexLT(v int) predicate.Progress {
	return predicate.Progress(sql.FieldLT(FieldConceptIndex, v))
}

// ConceptIndexLTE applies the LTE predicate on the "concept_index" field.
func ConceptIndexLTE(v int) predicate.Progress {
	return predicate.Progress(sql.FieldLTE(FieldConceptIndex, v))
}

// ItemIndexEQ applies the EQ predicate on the "item_index" field.
func ItemIndexEQ(v int) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldItemIndex, v))
}

// ItemIndexNEQ applies the NEQ predicate on the "item_index" field.
func ItemIndexNEQ(v int) predicate.Progress {
	return predicate.Progress(sql.FieldNEQ(FieldItemIndex, v))
}

// ItemIndexIn applies the In predicate on the "item_index" field.
func ItemIndexIn(vs ...int) predicate.Progress {
	return predicate.Progress(sql.FieldIn(FieldItemIndex, vs...))
}

// ItemIndexNotIn applies the NotIn predicate on the "item_index" field.
func ItemIndexNotIn(vs ...int) predicate.Progress {
	return predicate.Progress(sql.FieldNotIn(FieldItemIndex, vs...))
}

// ItemIndexGT applies the GT predicate on the "item_index" field.
func ItemIndexGT(v int) predicate.Progress {
	return predicate.Progress(sql.FieldGT(FieldItemIndex, v))
}

// ItemIndexGTE applies the GTE predicate on the "item_index" field.
func ItemIndexGTE(v int) predicate.Progress {
	return predicate.Progress(sql.FieldGTE(FieldItemIndex, v))
}

// ItemIndexLT applies the LT predicate on the "item_index" field.
func ItemIndexLT(v int) predicate.Progress {
	return predicate.Progress(sql.FieldLT(FieldItemIndex, v))
}

// ItemIndexLTE applies the LTE predicate on the "item_index" field.
func ItemIndexLTE(v int) predicate.Progress {
	return predicate.Progress(sql.FieldLTE(FieldItemIndex, v))
}

// AssessmentIsNil applies the IsNil predicate on the "assessment" field.
func AssessmentIsNil() predicate.Progress {
	return predicate.Progress(sql.FieldIsNull(FieldAssessment))
}

// AssessmentNotNil applies the NotNil predicate on the "assessment" field.
func AssessmentNotNil() predicate.Progress {
	return predicate.Progress(sql.FieldNotNull(FieldAssessment))
}

// CompletedEQ applies the EQ predicate on the "completed" field.
func CompletedEQ(v bool) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldCompleted, v))
}

// CompletedNEQ applies the NEQ predicate on the "completed" field.
func CompletedNEQ(v bool) predicate.Progress {
	return predicate.Progress(sql.FieldNEQ(FieldCompleted, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Progress {
	return predicate.Progress(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Progress {
	return predicate.Progress(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Progress {
	return predicate.Progress(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Progress {
	return predicate.Progress(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Progress {
	return predicate.Progress(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Progress {
	return predicate.Progress(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Progress {
	return predicate.Progress(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Progress) predicate.Progress {
	return predicate.Progress(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Progress) predicate.Progress {
	return predicate.Progress(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Progress) predicate.Progress {
	return predicate.Progress(sql.NotPredicates(p))
}
