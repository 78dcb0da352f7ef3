// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hsaleh/durus/ent/completionevent"
)

// CompletionEventCreate is the builder for creating a CompletionEvent entity.
type CompletionEventCreate struct {
	config
	mutation *CompletionEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *CompletionEventCreate) SetSequence(v int64) *CompletionEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *CompletionEventCreate) SetTimestamp(v time.Time) *CompletionEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *CompletionEventCreate) SetNillableTimestamp(v *time.Time) *CompletionEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetStudentID sets the "student_id" field.
func (_c *CompletionEventCreate) SetStudentID(v string) *CompletionEventCreate {
	_c.mutation.SetStudentID(v)
	return _c
}

// SetWeek sets the "week" field.
func (_c *CompletionEventCreate) SetWeek(v int) *CompletionEventCreate {
	_c.mutation.SetWeek(v)
	return _c
}

// SetLessonTitle sets the "lesson_title" field.
func (_c *CompletionEventCreate) SetLessonTitle(v string) *CompletionEventCreate {
	_c.mutation.SetLessonTitle(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *CompletionEventCreate) SetScore(v int) *CompletionEventCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetTotal sets the "total" field.
func (_c *CompletionEventCreate) SetTotal(v int) *CompletionEventCreate {
	_c.mutation.SetTotal(v)
	return _c
}

// SetPercent sets the "percent" field.
func (_c *CompletionEventCreate) SetPercent(v int) *CompletionEventCreate {
	_c.mutation.SetPercent(v)
	return _c
}

// SetCertificateID sets the "certificate_id" field.
func (_c *CompletionEventCreate) SetCertificateID(v string) *CompletionEventCreate {
	_c.mutation.SetCertificateID(v)
	return _c
}

// Mutation returns the CompletionEventMutation object of the builder.
func (_c *CompletionEventCreate) Mutation() *CompletionEventMutation {
	return _c.mutation
}

// Save creates the CompletionEvent in the database.
func (_c *CompletionEventCreate) Save(ctx context.Context) (*CompletionEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CompletionEventCreate) SaveX(ctx context.Context) *CompletionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CompletionEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CompletionEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CompletionEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := completionevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CompletionEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "CompletionEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "CompletionEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.StudentID(); !ok {
		return &ValidationError{Name: "student_id", err: errors.New(`ent: missing required field "CompletionEvent.student_id"`)}
	}
	if v, ok := _c.mutation.StudentID(); ok {
		if err := completionevent.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "CompletionEvent.student_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Week(); !ok {
		return &ValidationError{Name: "week", err: errors.New(`ent: missing required field "CompletionEvent.week"`)}
	}
	if v, ok := _c.mutation.Week(); ok {
		if err := completionevent.WeekValidator(v); err != nil {
			return &ValidationError{Name: "week", err: fmt.Errorf(`ent: validator failed for field "CompletionEvent.week": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LessonTitle(); !ok {
		return &ValidationError{Name: "lesson_title", err: errors.New(`ent: missing required field "CompletionEvent.lesson_title"`)}
	}
	if v, ok := _c.mutation.LessonTitle(); ok {
		if err := completionevent.LessonTitleValidator(v); err != nil {
			return &ValidationError{Name: "lesson_title", err: fmt.Errorf(`ent: validator failed for field "CompletionEvent.lesson_title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "CompletionEvent.score"`)}
	}
	if _, ok := _c.mutation.Total(); !ok {
		return &ValidationError{Name: "total", err: errors.New(`ent: missing required field "CompletionEvent.total"`)}
	}
	if _, ok := _c.mutation.Percent(); !ok {
		return &ValidationError{Name: "percent", err: errors.New(`ent: missing required field "CompletionEvent.percent"`)}
	}
	if _, ok := _c.mutation.CertificateID(); !ok {
		return &ValidationError{Name: "certificate_id", err: errors.New(`ent: missing required field "CompletionEvent.certificate_id"`)}
	}
	if v, ok := _c.mutation.CertificateID(); ok {
		if err := completionevent.CertificateIDValidator(v); err != nil {
			return &ValidationError{Name: "certificate_id", err: fmt.Errorf(`ent: validator failed for field "CompletionEvent.certificate_id": %w`, err)}
		}
	}
	return nil
}

func (_c *CompletionEventCreate) sqlSave(ctx context.Context) (*CompletionEvent, error) {
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

func (_c *CompletionEventCreate) createSpec() (*CompletionEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &CompletionEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(completionevent.Table, sqlgraph.NewFieldSpec(completionevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(completionevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(completionevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.StudentID(); ok {
		_spec.SetField(completionevent.FieldStudentID, field.TypeString, value)
		_node.StudentID = value
	}
	if value, ok := _c.mutation.Week(); ok {
		_spec.SetField(completionevent.FieldWeek, field.TypeInt, value)
		_node.Week = value
	}
	if value, ok := _c.mutation.LessonTitle(); ok {
		_spec.SetField(completionevent.FieldLessonTitle, field.TypeString, value)
		_node.LessonTitle = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(completionevent.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.Total(); ok {
		_spec.SetField(completionevent.FieldTotal, field.TypeInt, value)
		_node.Total = value
	}
	if value, ok := _c.mutation.Percent(); ok {
		_spec.SetField(completionevent.FieldPercent, field.TypeInt, value)
		_node.Percent = value
	}
	if value, ok := _c.mutation.CertificateID(); ok {
		_spec.SetField(completionevent.FieldCertificateID, field.TypeString, value)
		_node.CertificateID = value
	}
	return _node, _spec
}

// CompletionEventCreateBulk is the builder for creating many CompletionEvent entities in bulk.
type CompletionEventCreateBulk struct {
	config
	err      error
	builders []*CompletionEventCreate
}

// Save creates the CompletionEvent entities in the database.
func (_c *CompletionEventCreateBulk) Save(ctx context.Context) ([]*CompletionEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CompletionEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CompletionEventMutation)
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
func (_c *CompletionEventCreateBulk) SaveX(ctx context.Context) []*CompletionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CompletionEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CompletionEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
