// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hsaleh/durus/ent/predicate"
	"github.com/hsaleh/durus/ent/progress"
)

// ProgressUpdate is the builder for updating Progress entities.
type ProgressUpdate struct {
	config
	hooks    []Hook
	mutation *ProgressMutation
}

// Where appends a list predicates to the ProgressUpdate builder.
func (_u *ProgressUpdate) Where(ps ...predicate.Progress) *ProgressUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *ProgressUpdate) SetStudentID(v string) *ProgressUpdate {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *ProgressUpdate) SetNillableStudentID(v *string) *ProgressUpdate {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetWeek sets the "week" field.
func (_u *ProgressUpdate) SetWeek(v int) *ProgressUpdate {
	_u.mutation.ResetWeek()
	_u.mutation.SetWeek(v)
	return _u
}

// SetNillableWeek sets the "week" field if the given value is not nil.
func (_u *ProgressUpdate) SetNillableWeek(v *int) *ProgressUpdate {
	if v != nil {
		_u.SetWeek(*v)
	}
	return _u
}

// AddWeek adds value to the "week" field.
func (_u *ProgressUpdate) AddWeek(v int) *ProgressUpdate {
	_u.mutation.AddWeek(v)
	return _u
}

// SetStage sets the "stage" field.
func (_u *ProgressUpdate) SetStage(v string) *ProgressUpdate {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *ProgressUpdate) SetNillableStage(v *string) *ProgressUpdate {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// SetPrereqIndex sets the "prereq_index" field.
func (_u *ProgressUpdate) SetPrereqIndex(v int) *ProgressUpdate {
	_u.mutation.ResetPrereqIndex()
	_u.mutation.SetPrereqIndex(v)
	return _u
}

// SetNillablePrereqIndex sets the "prereq_index" field if the given value is not nil.
func (_u *ProgressUpdate) SetNillablePrereqIndex(v *int) *ProgressUpdate {
	if v != nil {
		_u.SetPrereqIndex(*v)
	}
	return _u
}

// AddPrereqIndex adds value to the "prereq_index" field.
func (_u *ProgressUpdate) AddPrereqIndex(v int) *ProgressUpdate {
	_u.mutation.AddPrereqIndex(v)
	return _u
}

// SetConceptIndex sets the "concept_index" field.
func (_u *ProgressUpdate) SetConceptIndex(v int) *ProgressUpdate {
	_u.mutation.ResetConceptIndex()
	_u.mutation.SetConceptIndex(v)
	return _u
}

// SetNillableConceptIndex sets the "concept_index" field if the given value is not nil.
func (_u *ProgressUpdate) SetNillableConceptIndex(v *int) *ProgressUpdate {
	if v != nil {
		_u.SetConceptIndex(*v)
	}
	return _u
}

// AddConceptIndex adds value to the "concept_index" field.
func (_u *ProgressUpdate) AddConceptIndex(v int) *ProgressUpdate {
	_u.mutation.AddConceptIndex(v)
	return _u
}

// SetItemIndex sets the "item_index" field.
func (_u *ProgressUpdate) SetItemIndex(v int) *ProgressUpdate {
	_u.mutation.ResetItemIndex()
	_u.mutation.SetItemIndex(v)
	return _u
}

// SetNillableItemIndex sets the "item_index" field if the given value is not nil.
func (_u *ProgressUpdate) SetNillableItemIndex(v *int) *ProgressUpdate {
	if v != nil {
		_u.SetItemIndex(*v)
	}
	return _u
}

// AddItemIndex adds value to the "item_index" field.
func (_u *ProgressUpdate) AddItemIndex(v int) *ProgressUpdate {
	_u.mutation.AddItemIndex(v)
	return _u
}

// SetAssessment sets the "assessment" field.
func (_u *ProgressUpdate) SetAssessment(v map[string]interface{}) *ProgressUpdate {
	_u.mutation.SetAssessment(v)
	return _u
}

// ClearAssessment clears the value of the "assessment" field.
func (_u *ProgressUpdate) ClearAssessment() *ProgressUpdate {
	_u.mutation.ClearAssessment()
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *ProgressUpdate) SetCompleted(v bool) *ProgressUpdate {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *ProgressUpdate) SetNillableCompleted(v *bool) *ProgressUpdate {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProgressUpdate) SetUpdatedAt(v time.Time) *ProgressUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ProgressMutation object of the builder.
func (_u *ProgressUpdate) Mutation() *ProgressMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProgressUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProgressUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProgressUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProgressUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProgressUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := progress.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProgressUpdate) check() error {
	if v, ok := _u.mutation.StudentID(); ok {
		if err := progress.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "Progress.student_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Week(); ok {
		if err := progress.WeekValidator(v); err != nil {
			return &ValidationError{Name: "week", err: fmt.Errorf(`ent: validator failed for field "Progress.week": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Stage(); ok {
		if err := progress.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "Progress.stage": %w`, err)}
		}
	}
	return nil
}

func (_u *ProgressUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(progress.Table, progress.Columns, sqlgraph.NewFieldSpec(progress.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(progress.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Week(); ok {
		_spec.SetField(progress.FieldWeek, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWeek(); ok {
		_spec.AddField(progress.FieldWeek, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(progress.FieldStage, field.TypeString, value)
	}
	if value, ok := _u.mutation.PrereqIndex(); ok {
		_spec.SetField(progress.FieldPrereqIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPrereqIndex(); ok {
		_spec.AddField(progress.FieldPrereqIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ConceptIndex(); ok {
		_spec.SetField(progress.FieldConceptIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConceptIndex(); ok {
		_spec.AddField(progress.FieldConceptIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ItemIndex(); ok {
		_spec.SetField(progress.FieldItemIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedItemIndex(); ok {
		_spec.AddField(progress.FieldItemIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Assessment(); ok {
		_spec.SetField(progress.FieldAssessment, field.TypeJSON, value)
	}
	if _u.mutation.AssessmentCleared() {
		_spec.ClearField(progress.FieldAssessment, field.TypeJSON)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(progress.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(progress.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{progress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProgressUpdateOne is the builder for updating a single Progress entity.
type ProgressUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProgressMutation
}

// SetStudentID sets the "student_id" field.
func (_u *ProgressUpdateOne) SetStudentID(v string) *ProgressUpdateOne {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *ProgressUpdateOne) SetNillableStudentID(v *string) *ProgressUpdateOne {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetWeek sets the "week" field.
func (_u *ProgressUpdateOne) SetWeek(v int) *ProgressUpdateOne {
	_u.mutation.ResetWeek()
	_u.mutation.SetWeek(v)
	return _u
}

// SetNillableWeek sets the "week" field if the given value is not nil.
func (_u *ProgressUpdateOne) SetNillableWeek(v *int) *ProgressUpdateOne {
	if v != nil {
		_u.SetWeek(*v)
	}
	return _u
}

// AddWeek adds value to the "week" field.
func (_u *ProgressUpdateOne) AddWeek(v int) *ProgressUpdateOne {
	_u.mutation.AddWeek(v)
	return _u
}

// SetStage sets the "stage" field.
func (_u *ProgressUpdateOne) SetStage(v string) *ProgressUpdateOne {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *ProgressUpdateOne) SetNillableStage(v *string) *ProgressUpdateOne {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// SetPrereqIndex sets the "prereq_index" field.
func (_u *ProgressUpdateOne) SetPrereqIndex(v int) *ProgressUpdateOne {
	_u.mutation.ResetPrereqIndex()
	_u.mutation.SetPrereqIndex(v)
	return _u
}

// SetNillablePrereqIndex sets the "prereq_index" field if the given value is not nil.
func (_u *ProgressUpdateOne) SetNillablePrereqIndex(v *int) *ProgressUpdateOne {
	if v != nil {
		_u.SetPrereqIndex(*v)
	}
	return _u
}

// AddPrereqIndex adds value to the "prereq_index" field.
func (_u *ProgressUpdateOne) AddPrereqIndex(v int) *ProgressUpdateOne {
	_u.mutation.AddPrereqIndex(v)
	return _u
}

// SetConceptIndex sets the "concept_index" field.
func (_u *ProgressUpdateOne) SetConceptIndex(v int) *ProgressUpdateOne {
	_u.mutation.ResetConceptIndex()
	_u.mutation.SetConceptIndex(v)
	return _u
}

// SetNillableConceptIndex sets the "concept_index" field if the given value is not nil.
func (_u *ProgressUpdateOne) SetNillableConceptIndex(v *int) *ProgressUpdateOne {
	if v != nil {
		_u.SetConceptIndex(*v)
	}
	return _u
}

// AddConceptIndex adds value to the "concept_index" field.
func (_u *ProgressUpdateOne) AddConceptIndex(v int) *ProgressUpdateOne {
	_u.mutation.AddConceptIndex(v)
	return _u
}

// SetItemIndex sets the "item_index" field.
func (_u *ProgressUpdateOne) SetItemIndex(v int) *ProgressUpdateOne {
	_u.mutation.ResetItemIndex()
	_u.mutation.SetItemIndex(v)
	return _u
}

// SetNillableItemIndex sets the "item_index" field if the given value is not nil.
func (_u *ProgressUpdateOne) SetNillableItemIndex(v *int) *ProgressUpdateOne {
	if v != nil {
		_u.SetItemIndex(*v)
	}
	return _u
}

// AddItemIndex adds value to the "item_index" field.
func (_u *ProgressUpdateOne) AddItemIndex(v int) *ProgressUpdateOne {
	_u.mutation.AddItemIndex(v)
	return _u
}

// SetAssessment sets the "assessment" field.
func (_u *ProgressUpdateOne) SetAssessment(v map[string]interface{}) *ProgressUpdateOne {
	_u.mutation.SetAssessment(v)
	return _u
}

// ClearAssessment clears the value of the "assessment" field.
func (_u *ProgressUpdateOne) ClearAssessment() *ProgressUpdateOne {
	_u.mutation.ClearAssessment()
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *ProgressUpdateOne) SetCompleted(v bool) *ProgressUpdateOne {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *ProgressUpdateOne) SetNillableCompleted(v *bool) *ProgressUpdateOne {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProgressUpdateOne) SetUpdatedAt(v time.Time) *ProgressUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ProgressMutation object of the builder.
func (_u *ProgressUpdateOne) Mutation() *ProgressMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProgressUpdate builder.
func (_u *ProgressUpdateOne) Where(ps ...predicate.Progress) *ProgressUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProgressUpdateOne) Select(field string, fields ...string) *ProgressUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Progress entity.
func (_u *ProgressUpdateOne) Save(ctx context.Context) (*Progress, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProgressUpdateOne) SaveX(ctx context.Context) *Progress {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProgressUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProgressUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProgressUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := progress.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProgressUpdateOne) check() error {
	if v, ok := _u.mutation.StudentID(); ok {
		if err := progress.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "Progress.student_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Week(); ok {
		if err := progress.WeekValidator(v); err != nil {
			return &ValidationError{Name: "week", err: fmt.Errorf(`ent: validator failed for field "Progress.week": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Stage(); ok {
		if err := progress.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "Progress.stage": %w`, err)}
		}
	}
	return nil
}

func (_u *ProgressUpdateOne) sqlSave(ctx context.Context) (_node *Progress, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(progress.Table, progress.Columns, sqlgraph.NewFieldSpec(progress.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Progress.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, progress.FieldID)
		for _, f := range fields {
			if !progress.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != progress.FieldID {
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
		_spec.SetField(progress.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Week(); ok {
		_spec.SetField(progress.FieldWeek, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWeek(); ok {
		_spec.AddField(progress.FieldWeek, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(progress.FieldStage, field.TypeString, value)
	}
	if value, ok := _u.mutation.PrereqIndex(); ok {
		_spec.SetField(progress.FieldPrereqIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPrereqIndex(); ok {
		_spec.AddField(progress.FieldPrereqIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ConceptIndex(); ok {
		_spec.SetField(progress.FieldConceptIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConceptIndex(); ok {
		_spec.AddField(progress.FieldConceptIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ItemIndex(); ok {
		_spec.SetField(progress.FieldItemIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedItemIndex(); ok {
		_spec.AddField(progress.FieldItemIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Assessment(); ok {
		_spec.SetField(progress.FieldAssessment, field.TypeJSON, value)
	}
	if _u.mutation.AssessmentCleared() {
		_spec.ClearField(progress.FieldAssessment, field.TypeJSON)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(progress.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(progress.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Progress{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{progress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
