// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hsaleh/durus/ent/progress"
)

// ProgressCreate is the builder for creating a Progress entity.
type ProgressCreate struct {
	config
	mutation *ProgressMutation
	hooks    []Hook
}

// SetStudentID sets the "student_id" field.
func (_c *ProgressCreate) SetStudentID(v string) *ProgressCreate {
	_c.mutation.SetStudentID(v)
	return _c
}

// SetWeek sets the "week" field.
func (_c *ProgressCreate) SetWeek(v int) *ProgressCreate {
	_c.mutation.SetWeek(v)
	return _c
}

// SetStage sets the "stage" field.
func (_c *ProgressCreate) SetStage(v string) *ProgressCreate {
	_c.mutation.SetStage(v)
	return _c
}

// SetPrereqIndex sets the "prereq_index" field.
func (_c *ProgressCreate) SetPrereqIndex(v int) *ProgressCreate {
	_c.mutation.SetPrereqIndex(v)
	return _c
}

// SetNillablePrereqIndex sets the "prereq_index" field if the given value is not nil.
func (_c *ProgressCreate) SetNillablePrereqIndex(v *int) *ProgressCreate {
	if v != nil {
		_c.SetPrereqIndex(*v)
	}
	return _c
}

// SetConceptIndex sets the "concept_index" field.
func (_c *ProgressCreate) SetConceptIndex(v int) *ProgressCreate {
	_c.mutation.SetConceptIndex(v)
	return _c
}

// SetNillableConceptIndex sets the "concept_index" field if the given value is not nil.
func (_c *ProgressCreate) SetNillableConceptIndex(v *int) *ProgressCreate {
	if v != nil {
		_c.SetConceptIndex(*v)
	}
	return _c
}

// SetItemIndex sets the "item_index" field.
func (_c *ProgressCreate) SetItemIndex(v int) *ProgressCreate {
	_c.mutation.SetItemIndex(v)
	return _c
}

// SetNillableItemIndex sets the "item_index" field if the given value is not nil.
func (_c *ProgressCreate) SetNillableItemIndex(v *int) *ProgressCreate {
	if v != nil {
		_c.SetItemIndex(*v)
	}
	return _c
}

// SetAssessment sets the "assessment" field.
func (_c *ProgressCreate) SetAssessment(v map[string]interface{}) *ProgressCreate {
	_c.mutation.SetAssessment(v)
	return _c
}

// SetCompleted sets the "completed" field.
func (_c *ProgressCreate) SetCompleted(v bool) *ProgressCreate {
	_c.mutation.SetCompleted(v)
	return _c
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_c *ProgressCreate) SetNillableCompleted(v *bool) *ProgressCreate {
	if v != nil {
		_c.SetCompleted(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ProgressCreate) SetUpdatedAt(v time.Time) *ProgressCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ProgressCreate) SetNillableUpdatedAt(v *time.Time) *ProgressCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the ProgressMutation object of the builder.
func (_c *ProgressCreate) Mutation() *ProgressMutation {
	return _c.mutation
}

// Save creates the Progress in the database.
func (_c *ProgressCreate) Save(ctx context.Context) (*Progress, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProgressCreate) SaveX(ctx context.Context) *Progress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProgressCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProgressCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProgressCreate) defaults() {
	if _, ok := _c.mutation.PrereqIndex(); !ok {
		v := progress.DefaultPrereqIndex
		_c.mutation.SetPrereqIndex(v)
	}
	if _, ok := _c.mutation.ConceptIndex(); !ok {
		v := progress.DefaultConceptIndex
		_c.mutation.SetConceptIndex(v)
	}
	if _, ok := _c.mutation.ItemIndex(); !ok {
		v := progress.DefaultItemIndex
		_c.mutation.SetItemIndex(v)
	}
	if _, ok := _c.mutation.Completed(); !ok {
		v := progress.DefaultCompleted
		_c.mutation.SetCompleted(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := progress.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProgressCreate) check() error {
	if _, ok := _c.mutation.StudentID(); !ok {
		return &ValidationError{Name: "student_id", err: errors.New(`ent: missing required field "Progress.student_id"`)}
	}
	if v, ok := _c.mutation.StudentID(); ok {
		if err := progress.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "Progress.student_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Week(); !ok {
		return &ValidationError{Name: "week", err: errors.New(`ent: missing required field "Progress.week"`)}
	}
	if v, ok := _c.mutation.Week(); ok {
		if err := progress.WeekValidator(v); err != nil {
			return &ValidationError{Name: "week", err: fmt.Errorf(`ent: validator failed for field "Progress.week": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Stage(); !ok {
		return &ValidationError{Name: "stage", err: errors.New(`ent: missing required field "Progress.stage"`)}
	}
	if v, ok := _c.mutation.Stage(); ok {
		if err := progress.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "Progress.stage": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PrereqIndex(); !ok {
		return &ValidationError{Name: "prereq_index", err: errors.New(`ent: missing required field "Progress.prereq_index"`)}
	}
	if _, ok := _c.mutation.ConceptIndex(); !ok {
		return &ValidationError{Name: "concept_index", err: errors.New(`ent: missing required field "Progress.concept_index"`)}
	}
	if _, ok := _c.mutation.ItemIndex(); !ok {
		return &ValidationError{Name: "item_index", err: errors.New(`ent: missing required field "Progress.item_index"`)}
	}
	if _, ok := _c.mutation.Completed(); !ok {
		return &ValidationError{Name: "completed", err: errors.New(`ent: missing required field "Progress.completed"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Progress.updated_at"`)}
	}
	return nil
}

func (_c *ProgressCreate) sqlSave(ctx context.Context) (*Progress, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ProgressCreate) createSpec() (*Progress, *sqlgraph.CreateSpec) {
	var (
		_node = &Progress{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(progress.Table, sqlgraph.NewFieldSpec(progress.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.StudentID(); ok {
		_spec.SetField(progress.FieldStudentID, field.TypeString, value)
		_node.StudentID = value
	}
	if value, ok := _c.mutation.Week(); ok {
		_spec.SetField(progress.FieldWeek, field.TypeInt, value)
		_node.Week = value
	}
	if value, ok := _c.mutation.Stage(); ok {
		_spec.SetField(progress.FieldStage, field.TypeString, value)
		_node.Stage = value
	}
	if value, ok := _c.mutation.PrereqIndex(); ok {
		_spec.SetField(progress.FieldPrereqIndex, field.TypeInt, value)
		_node.PrereqIndex = value
	}
	if value, ok := _c.mutation.ConceptIndex(); ok {
		_spec.SetField(progress.FieldConceptIndex, field.TypeInt, value)
		_node.ConceptIndex = value
	}
	if value, ok := _c.mutation.ItemIndex(); ok {
		_spec.SetField(progress.FieldItemIndex, field.TypeInt, value)
		_node.ItemIndex = value
	}
	if value, ok := _c.mutation.Assessment(); ok {
		_spec.SetField(progress.FieldAssessment, field.TypeJSON, value)
		_node.Assessment = value
	}
	if value, ok := _c.mutation.Completed(); ok {
		_spec.SetField(progress.FieldCompleted, field.TypeBool, value)
		_node.Completed = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(progress.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ProgressCreateBulk is the builder for creating many Progress entities in bulk.
type ProgressCreateBulk struct {
	config
	err      error
	builders []*ProgressCreate
}

// Save creates the Progress entities in the database.
func (_c *ProgressCreateBulk) Save(ctx context.Context) ([]*Progress, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Progress, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProgressMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ProgressCreateBulk) SaveX(ctx context.Context) []*Progress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProgressCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProgressCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
