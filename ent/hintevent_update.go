// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hsaleh/durus/ent/hintevent"
	"github.com/hsaleh/durus/ent/predicate"
)

// HintEventUpdate is the builder for updating HintEvent entities.
type HintEventUpdate struct {
	config
	hooks    []Hook
	mutation *HintEventMutation
}

// Where appends a list predicates to the HintEventUpdate builder.
func (_u *HintEventUpdate) Where(ps ...predicate.HintEvent) *HintEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *HintEventUpdate) SetStudentID(v string) *HintEventUpdate {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *HintEventUpdate) SetNillableStudentID(v *string) *HintEventUpdate {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetWeek sets the "week" field.
func (_u *HintEventUpdate) SetWeek(v int) *HintEventUpdate {
	_u.mutation.ResetWeek()
	_u.mutation.SetWeek(v)
	return _u
}

// SetNillableWeek sets the "week" field if the given value is not nil.
func (_u *HintEventUpdate) SetNillableWeek(v *int) *HintEventUpdate {
	if v != nil {
		_u.SetWeek(*v)
	}
	return _u
}

// AddWeek adds value to the "week" field.
func (_u *HintEventUpdate) AddWeek(v int) *HintEventUpdate {
	_u.mutation.AddWeek(v)
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *HintEventUpdate) SetQuestionID(v string) *HintEventUpdate {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *HintEventUpdate) SetNillableQuestionID(v *string) *HintEventUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetAttempt sets the "attempt" field.
func (_u *HintEventUpdate) SetAttempt(v int) *HintEventUpdate {
	_u.mutation.ResetAttempt()
	_u.mutation.SetAttempt(v)
	return _u
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_u *HintEventUpdate) SetNillableAttempt(v *int) *HintEventUpdate {
	if v != nil {
		_u.SetAttempt(*v)
	}
	return _u
}

// AddAttempt adds value to the "attempt" field.
func (_u *HintEventUpdate) AddAttempt(v int) *HintEventUpdate {
	_u.mutation.AddAttempt(v)
	return _u
}

// SetHintText sets the "hint_text" field.
func (_u *HintEventUpdate) SetHintText(v string) *HintEventUpdate {
	_u.mutation.SetHintText(v)
	return _u
}

// SetNillableHintText sets the "hint_text" field if the given value is not nil.
func (_u *HintEventUpdate) SetNillableHintText(v *string) *HintEventUpdate {
	if v != nil {
		_u.SetHintText(*v)
	}
	return _u
}

// SetRevealedSolution sets the "revealed_solution" field.
func (_u *HintEventUpdate) SetRevealedSolution(v bool) *HintEventUpdate {
	_u.mutation.SetRevealedSolution(v)
	return _u
}

// SetNillableRevealedSolution sets the "revealed_solution" field if the given value is not nil.
func (_u *HintEventUpdate) SetNillableRevealedSolution(v *bool) *HintEventUpdate {
	if v != nil {
		_u.SetRevealedSolution(*v)
	}
	return _u
}

// Mutation returns the HintEventMutation object of the builder.
func (_u *HintEventUpdate) Mutation() *HintEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *HintEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HintEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *HintEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HintEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HintEventUpdate) check() error {
	if v, ok := _u.mutation.StudentID(); ok {
		if err := hintevent.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "HintEvent.student_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Week(); ok {
		if err := hintevent.WeekValidator(v); err != nil {
			return &ValidationError{Name: "week", err: fmt.Errorf(`ent: validator failed for field "HintEvent.week": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := hintevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "HintEvent.question_id": %w`, err)}
		}
	}
	return nil
}

func (_u *HintEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(hintevent.Table, hintevent.Columns, sqlgraph.NewFieldSpec(hintevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(hintevent.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Week(); ok {
		_spec.SetField(hintevent.FieldWeek, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWeek(); ok {
		_spec.AddField(hintevent.FieldWeek, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(hintevent.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Attempt(); ok {
		_spec.SetField(hintevent.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempt(); ok {
		_spec.AddField(hintevent.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HintText(); ok {
		_spec.SetField(hintevent.FieldHintText, field.TypeString, value)
	}
	if value, ok := _u.mutation.RevealedSolution(); ok {
		_spec.SetField(hintevent.FieldRevealedSolution, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{hintevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// HintEventUpdateOne is the builder for updating a single HintEvent entity.
type HintEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *HintEventMutation
}

// SetStudentID sets the "student_id" field.
func (_u *HintEventUpdateOne) SetStudentID(v string) *HintEventUpdateOne {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *HintEventUpdateOne) SetNillableStudentID(v *string) *HintEventUpdateOne {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetWeek sets the "week" field.
func (_u *HintEventUpdateOne) SetWeek(v int) *HintEventUpdateOne {
	_u.mutation.ResetWeek()
	_u.mutation.SetWeek(v)
	return _u
}

// SetNillableWeek sets the "week" field if the given value is not nil.
func (_u *HintEventUpdateOne) SetNillableWeek(v *int) *HintEventUpdateOne {
	if v != nil {
		_u.SetWeek(*v)
	}
	return _u
}

// AddWeek adds value to the "week" field.
func (_u *HintEventUpdateOne) AddWeek(v int) *HintEventUpdateOne {
	_u.mutation.AddWeek(v)
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *HintEventUpdateOne) SetQuestionID(v string) *HintEventUpdateOne {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *HintEventUpdateOne) SetNillableQuestionID(v *string) *HintEventUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetAttempt sets the "attempt" field.
func (_u *HintEventUpdateOne) SetAttempt(v int) *HintEventUpdateOne {
	_u.mutation.ResetAttempt()
	_u.mutation.SetAttempt(v)
	return _u
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_u *HintEventUpdateOne) SetNillableAttempt(v *int) *HintEventUpdateOne {
	if v != nil {
		_u.SetAttempt(*v)
	}
	return _u
}

// AddAttempt adds value to the "attempt" field.
func (_u *HintEventUpdateOne) AddAttempt(v int) *HintEventUpdateOne {
	_u.mutation.AddAttempt(v)
	return _u
}

// SetHintText sets the "hint_text" field.
func (_u *HintEventUpdateOne) SetHintText(v string) *HintEventUpdateOne {
	_u.mutation.SetHintText(v)
	return _u
}

// SetNillableHintText sets the "hint_text" field if the given value is not nil.
func (_u *HintEventUpdateOne) SetNillableHintText(v *string) *HintEventUpdateOne {
	if v != nil {
		_u.SetHintText(*v)
	}
	return _u
}

// SetRevealedSolution sets the "revealed_solution" field.
func (_u *HintEventUpdateOne) SetRevealedSolution(v bool) *HintEventUpdateOne {
	_u.mutation.SetRevealedSolution(v)
	return _u
}

// SetNillableRevealedSolution sets the "revealed_solution" field if the given value is not nil.
func (_u *HintEventUpdateOne) SetNillableRevealedSolution(v *bool) *HintEventUpdateOne {
	if v != nil {
		_u.SetRevealedSolution(*v)
	}
	return _u
}

// Mutation returns the HintEventMutation object of the builder.
func (_u *HintEventUpdateOne) Mutation() *HintEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the HintEventUpdate builder.
func (_u *HintEventUpdateOne) Where(ps ...predicate.HintEvent) *HintEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *HintEventUpdateOne) Select(field string, fields ...string) *HintEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated HintEvent entity.
func (_u *HintEventUpdateOne) Save(ctx context.Context) (*HintEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HintEventUpdateOne) SaveX(ctx context.Context) *HintEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *HintEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HintEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HintEventUpdateOne) check() error {
	if v, ok := _u.mutation.StudentID(); ok {
		if err := hintevent.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "HintEvent.student_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Week(); ok {
		if err := hintevent.WeekValidator(v); err != nil {
			return &ValidationError{Name: "week", err: fmt.Errorf(`ent: validator failed for field "HintEvent.week": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := hintevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "HintEvent.question_id": %w`, err)}
		}
	}
	return nil
}

func (_u *HintEventUpdateOne) sqlSave(ctx context.Context) (_node *HintEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(hintevent.Table, hintevent.Columns, sqlgraph.NewFieldSpec(hintevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "HintEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, hintevent.FieldID)
		for _, f := range fields {
			if !hintevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != hintevent.FieldID {
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
		_spec.SetField(hintevent.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Week(); ok {
		_spec.SetField(hintevent.FieldWeek, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWeek(); ok {
		_spec.AddField(hintevent.FieldWeek, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(hintevent.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Attempt(); ok {
		_spec.SetField(hintevent.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempt(); ok {
		_spec.AddField(hintevent.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HintText(); ok {
		_spec.SetField(hintevent.FieldHintText, field.TypeString, value)
	}
	if value, ok := _u.mutation.RevealedSolution(); ok {
		_spec.SetField(hintevent.FieldRevealedSolution, field.TypeBool, value)
	}
	_node = &HintEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{hintevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
