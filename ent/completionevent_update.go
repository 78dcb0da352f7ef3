// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hsaleh/durus/ent/completionevent"
	"github.com/hsaleh/durus/ent/predicate"
)

// CompletionEventUpdate is the builder for updating CompletionEvent entities.
type CompletionEventUpdate struct {
	config
	hooks    []Hook
	mutation *CompletionEventMutation
}

// Where appends a list predicates to the CompletionEventUpdate builder.
func (_u *CompletionEventUpdate) Where(ps ...predicate.CompletionEvent) *CompletionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *CompletionEventUpdate) SetStudentID(v string) *CompletionEventUpdate {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *CompletionEventUpdate) SetNillableStudentID(v *string) *CompletionEventUpdate {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetWeek sets the "week" field.
func (_u *CompletionEventUpdate) SetWeek(v int) *CompletionEventUpdate {
	_u.mutation.ResetWeek()
	_u.mutation.SetWeek(v)
	return _u
}

// SetNillableWeek sets the "week" field if the given value is not nil.
func (_u *CompletionEventUpdate) SetNillableWeek(v *int) *CompletionEventUpdate {
	if v != nil {
		_u.SetWeek(*v)
	}
	return _u
}

// AddWeek adds value to the "week" field.
func (_u *CompletionEventUpdate) AddWeek(v int) *CompletionEventUpdate {
	_u.mutation.AddWeek(v)
	return _u
}

// SetLessonTitle sets the "lesson_title" field.
func (_u *CompletionEventUpdate) SetLessonTitle(v string) *CompletionEventUpdate {
	_u.mutation.SetLessonTitle(v)
	return _u
}

// SetNillableLessonTitle sets the "lesson_title" field if the given value is not nil.
func (_u *CompletionEventUpdate) SetNillableLessonTitle(v *string) *CompletionEventUpdate {
	if v != nil {
		_u.SetLessonTitle(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *CompletionEventUpdate) SetScore(v int) *CompletionEventUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *CompletionEventUpdate) SetNillableScore(v *int) *CompletionEventUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *CompletionEventUpdate) AddScore(v int) *CompletionEventUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetTotal sets the "total" field.
func (_u *CompletionEventUpdate) SetTotal(v int) *CompletionEventUpdate {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *CompletionEventUpdate) SetNillableTotal(v *int) *CompletionEventUpdate {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *CompletionEventUpdate) AddTotal(v int) *CompletionEventUpdate {
	_u.mutation.AddTotal(v)
	return _u
}

// SetPercent sets the "percent" field.
func (_u *CompletionEventUpdate) SetPercent(v int) *CompletionEventUpdate {
	_u.mutation.ResetPercent()
	_u.mutation.SetPercent(v)
	return _u
}

// SetNillablePercent sets the "percent" field if the given value is not nil.
func (_u *CompletionEventUpdate) SetNillablePercent(v *int) *CompletionEventUpdate {
	if v != nil {
		_u.SetPercent(*v)
	}
	return _u
}

// AddPercent adds value to the "percent" field.
func (_u *CompletionEventUpdate) AddPercent(v int) *CompletionEventUpdate {
	_u.mutation.AddPercent(v)
	return _u
}

// SetCertificateID sets the "certificate_id" field.
func (_u *CompletionEventUpdate) SetCertificateID(v string) *CompletionEventUpdate {
	_u.mutation.SetCertificateID(v)
	return _u
}

// SetNillableCertificateID sets the "certificate_id" field if the given value is not nil.
func (_u *CompletionEventUpdate) SetNillableCertificateID(v *string) *CompletionEventUpdate {
	if v != nil {
		_u.SetCertificateID(*v)
	}
	return _u
}

// Mutation returns the CompletionEventMutation object of the builder.
func (_u *CompletionEventUpdate) Mutation() *CompletionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CompletionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CompletionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CompletionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CompletionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CompletionEventUpdate) check() error {
	if v, ok := _u.mutation.StudentID(); ok {
		if err := completionevent.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "CompletionEvent.student_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Week(); ok {
		if err := completionevent.WeekValidator(v); err != nil {
			return &ValidationError{Name: "week", err: fmt.Errorf(`ent: validator failed for field "CompletionEvent.week": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LessonTitle(); ok {
		if err := completionevent.LessonTitleValidator(v); err != nil {
			return &ValidationError{Name: "lesson_title", err: fmt.Errorf(`ent: validator failed for field "CompletionEvent.lesson_title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CertificateID(); ok {
		if err := completionevent.CertificateIDValidator(v); err != nil {
			return &ValidationError{Name: "certificate_id", err: fmt.Errorf(`ent: validator failed for field "CompletionEvent.certificate_id": %w`, err)}
		}
	}
	return nil
}

func (_u *CompletionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(completionevent.Table, completionevent.Columns, sqlgraph.NewFieldSpec(completionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(completionevent.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Week(); ok {
		_spec.SetField(completionevent.FieldWeek, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWeek(); ok {
		_spec.AddField(completionevent.FieldWeek, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LessonTitle(); ok {
		_spec.SetField(completionevent.FieldLessonTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(completionevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(completionevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(completionevent.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(completionevent.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Percent(); ok {
		_spec.SetField(completionevent.FieldPercent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPercent(); ok {
		_spec.AddField(completionevent.FieldPercent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CertificateID(); ok {
		_spec.SetField(completionevent.FieldCertificateID, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{completionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CompletionEventUpdateOne is the builder for updating a single CompletionEvent entity.
type CompletionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CompletionEventMutation
}

// SetStudentID sets the "student_id" field.
func (_u *CompletionEventUpdateOne) SetStudentID(v string) *CompletionEventUpdateOne {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *CompletionEventUpdateOne) SetNillableStudentID(v *string) *CompletionEventUpdateOne {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetWeek sets the "week" field.
func (_u *CompletionEventUpdateOne) SetWeek(v int) *CompletionEventUpdateOne {
	_u.mutation.ResetWeek()
	_u.mutation.SetWeek(v)
	return _u
}

// SetNillableWeek sets the "week" field if the given value is not nil.
func (_u *CompletionEventUpdateOne) SetNillableWeek(v *int) *CompletionEventUpdateOne {
	if v != nil {
		_u.SetWeek(*v)
	}
	return _u
}

// AddWeek adds value to the "week" field.
func (_u *CompletionEventUpdateOne) AddWeek(v int) *CompletionEventUpdateOne {
	_u.mutation.AddWeek(v)
	return _u
}

// SetLessonTitle sets the "lesson_title" field.
func (_u *CompletionEventUpdateOne) SetLessonTitle(v string) *CompletionEventUpdateOne {
	_u.mutation.SetLessonTitle(v)
	return _u
}

// SetNillableLessonTitle sets the "lesson_title" field if the given value is not nil.
func (_u *CompletionEventUpdateOne) SetNillableLessonTitle(v *string) *CompletionEventUpdateOne {
	if v != nil {
		_u.SetLessonTitle(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *CompletionEventUpdateOne) SetScore(v int) *CompletionEventUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *CompletionEventUpdateOne) SetNillableScore(v *int) *CompletionEventUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *CompletionEventUpdateOne) AddScore(v int) *CompletionEventUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetTotal sets the "total" field.
func (_u *CompletionEventUpdateOne) SetTotal(v int) *CompletionEventUpdateOne {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *CompletionEventUpdateOne) SetNillableTotal(v *int) *CompletionEventUpdateOne {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *CompletionEventUpdateOne) AddTotal(v int) *CompletionEventUpdateOne {
	_u.mutation.AddTotal(v)
	return _u
}

// SetPercent sets the "percent" field.
func (_u *CompletionEventUpdateOne) SetPercent(v int) *CompletionEventUpdateOne {
	_u.mutation.ResetPercent()
	_u.mutation.SetPercent(v)
	return _u
}

// SetNillablePercent sets the "percent" field if the given value is not nil.
func (_u *CompletionEventUpdateOne) SetNillablePercent(v *int) *CompletionEventUpdateOne {
	if v != nil {
		_u.SetPercent(*v)
	}
	return _u
}

// AddPercent adds value to the "percent" field.
func (_u *CompletionEventUpdateOne) AddPercent(v int) *CompletionEventUpdateOne {
	_u.mutation.AddPercent(v)
	return _u
}

// SetCertificateID sets the "certificate_id" field.
func (_u *CompletionEventUpdateOne) SetCertificateID(v string) *CompletionEventUpdateOne {
	_u.mutation.SetCertificateID(v)
	return _u
}

// SetNillableCertificateID sets the "certificate_id" field if the given value is not nil.
func (_u *CompletionEventUpdateOne) SetNillableCertificateID(v *string) *CompletionEventUpdateOne {
	if v != nil {
		_u.SetCertificateID(*v)
	}
	return _u
}

// Mutation returns the CompletionEventMutation object of the builder.
func (_u *CompletionEventUpdateOne) Mutation() *CompletionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the CompletionEventUpdate builder.
func (_u *CompletionEventUpdateOne) Where(ps ...predicate.CompletionEvent) *CompletionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CompletionEventUpdateOne) Select(field string, fields ...string) *CompletionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CompletionEvent entity.
func (_u *CompletionEventUpdateOne) Save(ctx context.Context) (*CompletionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CompletionEventUpdateOne) SaveX(ctx context.Context) *CompletionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CompletionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CompletionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CompletionEventUpdateOne) check() error {
	if v, ok := _u.mutation.StudentID(); ok {
		if err := completionevent.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "CompletionEvent.student_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Week(); ok {
		if err := completionevent.WeekValidator(v); err != nil {
			return &ValidationError{Name: "week", err: fmt.Errorf(`ent: validator failed for field "CompletionEvent.week": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LessonTitle(); ok {
		if err := completionevent.LessonTitleValidator(v); err != nil {
			return &ValidationError{Name: "lesson_title", err: fmt.Errorf(`ent: validator failed for field "CompletionEvent.lesson_title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CertificateID(); ok {
		if err := completionevent.CertificateIDValidator(v); err != nil {
			return &ValidationError{Name: "certificate_id", err: fmt.Errorf(`ent: validator failed for field "CompletionEvent.certificate_id": %w`, err)}
		}
	}
	return nil
}

func (_u *CompletionEventUpdateOne) sqlSave(ctx context.Context) (_node *CompletionEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(completionevent.Table, completionevent.Columns, sqlgraph.NewFieldSpec(completionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CompletionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, completionevent.FieldID)
		for _, f := range fields {
			if !completionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != completionevent.FieldID {
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
		_spec.SetField(completionevent.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Week(); ok {
		_spec.SetField(completionevent.FieldWeek, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWeek(); ok {
		_spec.AddField(completionevent.FieldWeek, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LessonTitle(); ok {
		_spec.SetField(completionevent.FieldLessonTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(completionevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(completionevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(completionevent.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(completionevent.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Percent(); ok {
		_spec.SetField(completionevent.FieldPercent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPercent(); ok {
		_spec.AddField(completionevent.FieldPercent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CertificateID(); ok {
		_spec.SetField(completionevent.FieldCertificateID, field.TypeString, value)
	}
	_node = &CompletionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{completionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
