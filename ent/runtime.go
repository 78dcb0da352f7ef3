// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/hsaleh/durus/ent/answerevent"
	"github.com/hsaleh/durus/ent/completionevent"
	"github.com/hsaleh/durus/ent/hintevent"
	"github.com/hsaleh/durus/ent/progress"
	"github.com/hsaleh/durus/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescStudentID is the schema descriptor for student_id field.
	answereventDescStudentID := answereventFields[0].Descriptor()
	// answerevent.StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	answerevent.StudentIDValidator = answereventDescStudentID.Validators[0].(func(string) error)
	// answereventDescWeek is the schema descriptor for week field.
	answereventDescWeek := answereventFields[1].Descriptor()
	// answerevent.WeekValidator is a validator for the "week" field. It is called by the builders before save.
	answerevent.WeekValidator = answereventDescWeek.Validators[0].(func(int) error)
	// answereventDescQuestionID is the schema descriptor for question_id field.
	answereventDescQuestionID := answereventFields[2].Descriptor()
	// answerevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	answerevent.QuestionIDValidator = answereventDescQuestionID.Validators[0].(func(string) error)
	// answereventDescStage is the schema descriptor for stage field.
	answereventDescStage := answereventFields[3].Descriptor()
	// answerevent.StageValidator is a validator for the "stage" field. It is called by the builders before save.
	answerevent.StageValidator = answereventDescStage.Validators[0].(func(string) error)
	// answereventDescQuestionType is the schema descriptor for question_type field.
	answereventDescQuestionType := answereventFields[4].Descriptor()
	// answerevent.QuestionTypeValidator is a validator for the "question_type" field. It is called by the builders before save.
	answerevent.QuestionTypeValidator = answereventDescQuestionType.Validators[0].(func(string) error)
	// answereventDescCorrected is the schema descriptor for corrected field.
	answereventDescCorrected := answereventFields[7].Descriptor()
	// answerevent.DefaultCorrected holds the default value on creation for the corrected field.
	answerevent.DefaultCorrected = answereventDescCorrected.Default.(string)
	completioneventMixin := schema.CompletionEvent{}.Mixin()
	completioneventMixinFields0 := completioneventMixin[0].Fields()
	_ = completioneventMixinFields0
	completioneventFields := schema.CompletionEvent{}.Fields()
	_ = completioneventFields
	// completioneventDescTimestamp is the schema descriptor for timestamp field.
	completioneventDescTimestamp := completioneventMixinFields0[1].Descriptor()
	// completionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	completionevent.DefaultTimestamp = completioneventDescTimestamp.Default.(func() time.Time)
	// completioneventDescStudentID is the schema descriptor for student_id field.
	completioneventDescStudentID := completioneventFields[0].Descriptor()
	// completionevent.StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	completionevent.StudentIDValidator = completioneventDescStudentID.Validators[0].(func(string) error)
	// completioneventDescWeek is the schema descriptor for week field.
	completioneventDescWeek := completioneventFields[1].Descriptor()
	// completionevent.WeekValidator is a validator for the "week" field. It is called by the builders before save.
	completionevent.WeekValidator = completioneventDescWeek.Validators[0].(func(int) error)
	// completioneventDescLessonTitle is the schema descriptor for lesson_title field.
	completioneventDescLessonTitle := completioneventFields[2].Descriptor()
	// completionevent.LessonTitleValidator is a validator for the "lesson_title" field. It is called by the builders before save.
	completionevent.LessonTitleValidator = completioneventDescLessonTitle.Validators[0].(func(string) error)
	// completioneventDescCertificateID is the schema descriptor for certificate_id field.
	completioneventDescCertificateID := completioneventFields[6].Descriptor()
	// completionevent.CertificateIDValidator is a validator for the "certificate_id" field. It is called by the builders before save.
	completionevent.CertificateIDValidator = completioneventDescCertificateID.Validators[0].(func(string) error)
	hinteventMixin := schema.HintEvent{}.Mixin()
	hinteventMixinFields0 := hinteventMixin[0].Fields()
	_ = hinteventMixinFields0
	hinteventFields := schema.HintEvent{}.Fields()
	_ = hinteventFields
	// hinteventDescTimestamp is the schema descriptor for timestamp field.
	hinteventDescTimestamp := hinteventMixinFields0[1].Descriptor()
	// hintevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	hintevent.DefaultTimestamp = hinteventDescTimestamp.Default.(func() time.Time)
	// hinteventDescStudentID is the schema descriptor for student_id field.
	hinteventDescStudentID := hinteventFields[0].Descriptor()
	// hintevent.StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	hintevent.StudentIDValidator = hinteventDescStudentID.Validators[0].(func(string) error)
	// hinteventDescWeek is the schema descriptor for week field.
	hinteventDescWeek := hinteventFields[1].Descriptor()
	// hintevent.WeekValidator is a validator for the "week" field. It is called by the builders before save.
	hintevent.WeekValidator = hinteventDescWeek.Validators[0].(func(int) error)
	// hinteventDescQuestionID is the schema descriptor for question_id field.
	hinteventDescQuestionID := hinteventFields[2].Descriptor()
	// hintevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	hintevent.QuestionIDValidator = hinteventDescQuestionID.Validators[0].(func(string) error)
	// hinteventDescRevealedSolution is the schema descriptor for revealed_solution field.
	hinteventDescRevealedSolution := hinteventFields[5].Descriptor()
	// hintevent.DefaultRevealedSolution holds the default value on creation for the revealed_solution field.
	hintevent.DefaultRevealedSolution = hinteventDescRevealedSolution.Default.(bool)
	progressFields := schema.Progress{}.Fields()
	_ = progressFields
	// progressDescStudentID is the schema descriptor for student_id field.
	progressDescStudentID := progressFields[0].Descriptor()
	// progress.StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	progress.StudentIDValidator = progressDescStudentID.Validators[0].(func(string) error)
	// progressDescWeek is the schema descriptor for week field.
	progressDescWeek := progressFields[1].Descriptor()
	// progress.WeekValidator is a validator for the "week" field. It is called by the builders before save.
	progress.WeekValidator = progressDescWeek.Validators[0].(func(int) error)
	// progressDescStage is the schema descriptor for stage field.
	progressDescStage := progressFields[2].Descriptor()
	// progress.StageValidator is a validator for the "stage" field. It is called by the builders before save.
	progress.StageValidator = progressDescStage.Validators[0].(func(string) error)
	// progressDescPrereqIndex is the schema descriptor for prereq_index field.
	progressDescPrereqIndex := progressFields[3].Descriptor()
	// progress.DefaultPrereqIndex holds the default value on creation for the prereq_index field.
	progress.DefaultPrereqIndex = progressDescPrereqIndex.Default.(int)
	// progressDescConceptIndex is the schema descriptor for concept_index field.
	progressDescConceptIndex := progressFields[4].Descriptor()
	// progress.DefaultConceptIndex holds the default value on creation for the concept_index field.
	progress.DefaultConceptIndex = progressDescConceptIndex.Default.(int)
	// progressDescItemIndex is the schema descriptor for item_index field.
	progressDescItemIndex := progressFields[5].Descriptor()
	// progress.DefaultItemIndex holds the default value on creation for the item_index field.
	progress.DefaultItemIndex = progressDescItemIndex.Default.(int)
	// progressDescCompleted is the schema descriptor for completed field.
	progressDescCompleted := progressFields[7].Descriptor()
	// progress.DefaultCompleted holds the default value on creation for the completed field.
	progress.DefaultCompleted = progressDescCompleted.Default.(bool)
	// progressDescUpdatedAt is the schema descriptor for updated_at field.
	progressDescUpdatedAt := progressFields[8].Descriptor()
	// progress.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	progress.DefaultUpdatedAt = progressDescUpdatedAt.Default.(func() time.Time)
	// progress.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	progress.UpdateDefaultUpdatedAt = progressDescUpdatedAt.UpdateDefault.(func() time.Time)
}
