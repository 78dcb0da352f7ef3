// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hsaleh/durus/ent/answerevent"
	"github.com/hsaleh/durus/ent/predicate"
)

// AnswerEventUpdate is the builder for updating AnswerEvent entities.
type AnswerEventUpdate struct {
	config
	hooks    []Hook
	mutation *AnswerEventMutation
}

// Where appends a list predicates to the AnswerEventUpdate builder.
func (_u *AnswerEventUpdate) Where(ps ...predicate.AnswerEvent) *AnswerEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *AnswerEventUpdate) SetStudentID(v string) *AnswerEventUpdate {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableStudentID(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetWeek sets the "week" field.
func (_u *AnswerEventUpdate) SetWeek(v int) *AnswerEventUpdate {
	_u.mutation.ResetWeek()
	_u.mutation.SetWeek(v)
	return _u
}

// SetNillableWeek sets the "week" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableWeek(v *int) *AnswerEventUpdate {
	if v != nil {
		_u.SetWeek(*v)
	}
	return _u
}

// AddWeek adds value to the "week" field.
func (_u *AnswerEventUpdate) AddWeek(v int) *AnswerEventUpdate {
	_u.mutation.AddWeek(v)
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *AnswerEventUpdate) SetQuestionID(v string) *AnswerEventUpdate {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableQuestionID(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetStage sets the "stage" field.
func (_u *AnswerEventUpdate) SetStage(v string) *AnswerEventUpdate {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableStage(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// SetQuestionType sets the "question_type" field.
func (_u *AnswerEventUpdate) SetQuestionType(v string) *AnswerEventUpdate {
	_u.mutation.SetQuestionType(v)
	return _u
}

// SetNillableQuestionType sets the "question_type" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableQuestionType(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetQuestionType(*v)
	}
	return _u
}

// SetResponse sets the "response" field.
func (_u *AnswerEventUpdate) SetResponse(v string) *AnswerEventUpdate {
	_u.mutation.SetResponse(v)
	return _u
}

// SetNillableResponse sets the "response" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableResponse(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetResponse(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AnswerEventUpdate) SetCorrect(v bool) *AnswerEventUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableCorrect(v *bool) *AnswerEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetCorrected sets the "corrected" field.
func (_u *AnswerEventUpdate) SetCorrected(v string) *AnswerEventUpdate {
	_u.mutation.SetCorrected(v)
	return _u
}

// SetNillableCorrected sets the "corrected" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableCorrected(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetCorrected(*v)
	}
	return _u
}

// ClearCorrected clears the value of the "corrected" field.
func (_u *AnswerEventUpdate) ClearCorrected() *AnswerEventUpdate {
	_u.mutation.ClearCorrected()
	return _u
}

// SetAttempt sets the "attempt" field.
func (_u *AnswerEventUpdate) SetAttempt(v int) *AnswerEventUpdate {
	_u.mutation.ResetAttempt()
	_u.mutation.SetAttempt(v)
	return _u
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableAttempt(v *int) *AnswerEventUpdate {
	if v != nil {
		_u.SetAttempt(*v)
	}
	return _u
}

// AddAttempt adds value to the "attempt" field.
func (_u *AnswerEventUpdate) AddAttempt(v int) *AnswerEventUpdate {
	_u.mutation.AddAttempt(v)
	return _u
}

// Mutation returns the AnswerEventMutation object of the builder.
func (_u *AnswerEventUpdate) Mutation() *AnswerEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnswerEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnswerEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerEventUpdate) check() error {
	if v, ok := _u.mutation.StudentID(); ok {
		if err := answerevent.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.student_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Week(); ok {
		if err := answerevent.WeekValidator(v); err != nil {
			return &ValidationError{Name: "week", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.week": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := answerevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.question_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Stage(); ok {
		if err := answerevent.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.stage": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionType(); ok {
		if err := answerevent.QuestionTypeValidator(v); err != nil {
			return &ValidationError{Name: "question_type", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.question_type": %w`, err)}
		}
	}
	return nil
}

func (_u *AnswerEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answerevent.Table, answerevent.Columns, sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(answerevent.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Week(); ok {
		_spec.SetField(answerevent.FieldWeek, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWeek(); ok {
		_spec.AddField(answerevent.FieldWeek, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(answerevent.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(answerevent.FieldStage, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionType(); ok {
		_spec.SetField(answerevent.FieldQuestionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Response(); ok {
		_spec.SetField(answerevent.FieldResponse, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(answerevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Corrected(); ok {
		_spec.SetField(answerevent.FieldCorrected, field.TypeString, value)
	}
	if _u.mutation.CorrectedCleared() {
		_spec.ClearField(answerevent.FieldCorrected, field.TypeString)
	}
	if value, ok := _u.mutation.Attempt(); ok {
		_spec.SetField(answerevent.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempt(); ok {
		_spec.AddField(answerevent.FieldAttempt, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnswerEventUpdateOne is the builder for updating a single AnswerEvent entity.
type AnswerEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnswerEventMutation
}

// SetStudentID sets the "student_id" field.
func (_u *AnswerEventUpdateOne) SetStudentID(v string) *AnswerEventUpdateOne {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableStudentID(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetWeek sets the "week" field.
func (_u *AnswerEventUpdateOne) SetWeek(v int) *AnswerEventUpdateOne {
	_u.mutation.ResetWeek()
	_u.mutation.SetWeek(v)
	return _u
}

// SetNillableWeek sets the "week" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableWeek(v *int) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetWeek(*v)
	}
	return _u
}

// AddWeek adds value to the "week" field.
func (_u *AnswerEventUpdateOne) AddWeek(v int) *AnswerEventUpdateOne {
	_u.mutation.AddWeek(v)
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *AnswerEventUpdateOne) SetQuestionID(v string) *AnswerEventUpdateOne {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableQuestionID(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetStage sets the "stage" field.
func (_u *AnswerEventUpdateOne) SetStage(v string) *AnswerEventUpdateOne {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableStage(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// SetQuestionType sets the "question_type" field.
func (_u *AnswerEventUpdateOne) SetQuestionType(v string) *AnswerEventUpdateOne {
	_u.mutation.SetQuestionType(v)
	return _u
}

// SetNillableQuestionType sets the "question_type" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableQuestionType(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetQuestionType(*v)
	}
	return _u
}

// SetResponse sets the "response" field.
func (_u *AnswerEventUpdateOne) SetResponse(v string) *AnswerEventUpdateOne {
	_u.mutation.SetResponse(v)
	return _u
}

// SetNillableResponse sets the "response" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableResponse(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetResponse(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AnswerEventUpdateOne) SetCorrect(v bool) *AnswerEventUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableCorrect(v *bool) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetCorrected sets the "corrected" field.
func (_u *AnswerEventUpdateOne) SetCorrected(v string) *AnswerEventUpdateOne {
	_u.mutation.SetCorrected(v)
	return _u
}

// SetNillableCorrected sets the "corrected" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableCorrected(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetCorrected(*v)
	}
	return _u
}

// ClearCorrected clears the value of the "corrected" field.
func (_u *AnswerEventUpdateOne) ClearCorrected() *AnswerEventUpdateOne {
	_u.mutation.ClearCorrected()
	return _u
}

// SetAttempt sets the "attempt" field.
func (_u *AnswerEventUpdateOne) SetAttempt(v int) *AnswerEventUpdateOne {
	_u.mutation.ResetAttempt()
	_u.mutation.SetAttempt(v)
	return _u
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableAttempt(v *int) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetAttempt(*v)
	}
	return _u
}

// AddAttempt adds value to the "attempt" field.
func (_u *AnswerEventUpdateOne) AddAttempt(v int) *AnswerEventUpdateOne {
	_u.mutation.AddAttempt(v)
	return _u
}

// Mutation returns the AnswerEventMutation object of the builder.
func (_u *AnswerEventUpdateOne) Mutation() *AnswerEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AnswerEventUpdate builder.
func (_u *AnswerEventUpdateOne) Where(ps ...predicate.AnswerEvent) *AnswerEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnswerEventUpdateOne) Select(field string, fields ...string) *AnswerEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AnswerEvent entity.
func (_u *AnswerEventUpdateOne) Save(ctx context.Context) (*AnswerEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerEventUpdateOne) SaveX(ctx context.Context) *AnswerEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnswerEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerEventUpdateOne) check() error {
	if v, ok := _u.mutation.StudentID(); ok {
		if err := answerevent.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.student_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Week(); ok {
		if err := answerevent.WeekValidator(v); err != nil {
			return &ValidationError{Name: "week", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.week": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := answerevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.question_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Stage(); ok {
		if err := answerevent.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.stage": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionType(); ok {
		if err := answerevent.QuestionTypeValidator(v); err != nil {
			return &ValidationError{Name: "question_type", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.question_type": %w`, err)}
		}
	}
	return nil
}

func (_u *AnswerEventUpdateOne) sqlSave(ctx context.Context) (_node *AnswerEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answerevent.Table, answerevent.Columns, sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnswerEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, answerevent.FieldID)
		for _, f := range fields {
			if !answerevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != answerevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(answerevent.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Week(); ok {
		_spec.SetField(answerevent.FieldWeek, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWeek(); ok {
		_spec.AddField(answerevent.FieldWeek, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(answerevent.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(answerevent.FieldStage, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionType(); ok {
		_spec.SetField(answerevent.FieldQuestionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Response(); ok {
		_spec.SetField(answerevent.FieldResponse, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(answerevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Corrected(); ok {
		_spec.SetField(answerevent.FieldCorrected, field.TypeString, value)
	}
	if _u.mutation.CorrectedCleared() {
		_spec.ClearField(answerevent.FieldCorrected, field.TypeString)
	}
	if value, ok := _u.mutation.Attempt(); ok {
		_spec.SetField(answerevent.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempt(); ok {
		_spec.AddField(answerevent.FieldAttempt, field.TypeInt, value)
	}
	_node = &AnswerEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
