// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/hsaleh/durus/ent/answerevent"
	"github.com/hsaleh/durus/ent/completionevent"
	"github.com/hsaleh/durus/ent/hintevent"
	"github.com/hsaleh/durus/ent/predicate"
	"github.com/hsaleh/durus/ent/progress"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAnswerEvent     = "AnswerEvent"
	TypeCompletionEvent = "CompletionEvent"
	TypeHintEvent       = "HintEvent"
	TypeProgress        = "Progress"
)

// AnswerEventMutation represents an operation that mutates the AnswerEvent nodes in the graph.
type AnswerEventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	sequence      *int64
	addsequence   *int64
	timestamp     *time.Time
	student_id    *string
	week          *int
	addweek       *int
	question_id   *string
	stage         *string
	question_type *string
	response      *string
	correct       *bool
	corrected     *string
	attempt       *int
	addattempt    *int
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*AnswerEvent, error)
	predicates    []predicate.AnswerEvent
}

var _ ent.Mutation = (*AnswerEventMutation)(nil)

// answereventOption allows management of the mutation configuration using functional options.
type answereventOption func(*AnswerEventMutation)

// newAnswerEventMutation creates new mutation for the AnswerEvent entity.
func newAnswerEventMutation(c config, op Op, opts ...answereventOption) *AnswerEventMutation {
	m := &AnswerEventMutation{
		config:        c,
		op:            op,
		typ:           TypeAnswerEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAnswerEventID sets the ID field of the mutation.
func withAnswerEventID(id int) answereventOption {
	return func(m *AnswerEventMutation) {
		var (
			err   error
			once  sync.Once
			value *AnswerEvent
		)
		m.oldValue = func(ctx context.Context) (*AnswerEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AnswerEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAnswerEvent sets the old AnswerEvent of the mutation.
func withAnswerEvent(node *AnswerEvent) answereventOption {
	return func(m *AnswerEventMutation) {
		m.oldValue = func(context.Context) (*AnswerEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AnswerEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AnswerEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AnswerEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AnswerEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AnswerEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *AnswerEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *AnswerEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the AnswerEvent entity.
// If the AnswerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *AnswerEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *AnswerEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *AnswerEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *AnswerEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *AnswerEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the AnswerEvent entity.
// If the AnswerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *AnswerEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetStudentID sets the "student_id" field.
func (m *AnswerEventMutation) SetStudentID(s string) {
	m.student_id = &s
}

// StudentID returns the value of the "student_id" field in the mutation.
func (m *AnswerEventMutation) StudentID() (r string, exists bool) {
	v := m.student_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStudentID returns the old "student_id" field's value of the AnswerEvent entity.
// If the AnswerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerEventMutation) OldStudentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudentID: %w", err)
	}
	return oldValue.StudentID, nil
}

// ResetStudentID resets all changes to the "student_id" field.
func (m *AnswerEventMutation) ResetStudentID() {
	m.student_id = nil
}

// SetWeek sets the "week" field.
func (m *AnswerEventMutation) SetWeek(i int) {
	m.week = &i
	m.addweek = nil
}

// Week returns the value of the "week" field in the mutation.
func (m *AnswerEventMutation) Week() (r int, exists bool) {
	v := m.week
	if v == nil {
		return
	}
	return *v, true
}

// OldWeek returns the old "week" field's value of the AnswerEvent entity.
// If the AnswerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerEventMutation) OldWeek(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWeek is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWeek requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWeek: %w", err)
	}
	return oldValue.Week, nil
}

// AddWeek adds i to the "week" field.
func (m *AnswerEventMutation) AddWeek(i int) {
	if m.addweek != nil {
		*m.addweek += i
	} else {
		m.addweek = &i
	}
}

// AddedWeek returns the value that was added to the "week" field in this mutation.
func (m *AnswerEventMutation) AddedWeek() (r int, exists bool) {
	v := m.addweek
	if v == nil {
		return
	}
	return *v, true
}

// ResetWeek resets all changes to the "week" field.
func (m *AnswerEventMutation) ResetWeek() {
	m.week = nil
	m.addweek = nil
}

// SetQuestionID sets the "question_id" field.
func (m *AnswerEventMutation) SetQuestionID(s string) {
	m.question_id = &s
}

// QuestionID returns the value of the "question_id" field in the mutation.
func (m *AnswerEventMutation) QuestionID() (r string, exists bool) {
	v := m.question_id
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionID returns the old "question_id" field's value of the AnswerEvent entity.
// If the AnswerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerEventMutation) OldQuestionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionID: %w", err)
	}
	return oldValue.QuestionID, nil
}

// ResetQuestionID resets all changes to the "question_id" field.
func (m *AnswerEventMutation) ResetQuestionID() {
	m.question_id = nil
}

// SetStage sets the "stage" field.
func (m *AnswerEventMutation) SetStage(s string) {
	m.stage = &s
}

// Stage returns the value of the "stage" field in the mutation.
func (m *AnswerEventMutation) Stage() (r string, exists bool) {
	v := m.stage
	if v == nil {
		return
	}
	return *v, true
}

// OldStage returns the old "stage" field's value of the AnswerEvent entity.
// If the AnswerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerEventMutation) OldStage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStage: %w", err)
	}
	return oldValue.Stage, nil
}

// ResetStage resets all changes to the "stage" field.
func (m *AnswerEventMutation) ResetStage() {
	m.stage = nil
}

// SetQuestionType sets the "question_type" field.
func (m *AnswerEventMutation) SetQuestionType(s string) {
	m.question_type = &s
}

// QuestionType returns the value of the "question_type" field in the mutation.
func (m *AnswerEventMutation) QuestionType() (r string, exists bool) {
	v := m.question_type
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionType returns the old "question_type" field's value of the AnswerEvent entity.
// If the AnswerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerEventMutation) OldQuestionType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionType: %w", err)
	}
	return oldValue.QuestionType, nil
}

// ResetQuestionType resets all changes to the "question_type" field.
func (m *AnswerEventMutation) ResetQuestionType() {
	m.question_type = nil
}

// SetResponse sets the "response" field.
func (m *AnswerEventMutation) SetResponse(s string) {
	m.response = &s
}

// Response returns the value of the "response" field in the mutation.
func (m *AnswerEventMutation) Response() (r string, exists bool) {
	v := m.response
	if v == nil {
		return
	}
	return *v, true
}

// OldResponse returns the old "response" field's value of the AnswerEvent entity.
// If the AnswerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerEventMutation) OldResponse(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponse is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponse requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponse: %w", err)
	}
	return oldValue.Response, nil
}

// ResetResponse resets all changes to the "response" field.
func (m *AnswerEventMutation) ResetResponse() {
	m.response = nil
}

// SetCorrect sets the "correct" field.
func (m *AnswerEventMutation) SetCorrect(b bool) {
	m.correct = &b
}

// Correct returns the value of the "correct" field in the mutation.
func (m *AnswerEventMutation) Correct() (r bool, exists bool) {
	v := m.correct
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrect returns the old "correct" field's value of the AnswerEvent entity.
// If the AnswerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerEventMutation) OldCorrect(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrect: %w", err)
	}
	return oldValue.Correct, nil
}

// ResetCorrect resets all changes to the "correct" field.
func (m *AnswerEventMutation) ResetCorrect() {
	m.correct = nil
}

// SetCorrected sets the "corrected" field.
func (m *AnswerEventMutation) SetCorrected(s string) {
	m.corrected = &s
}

// Corrected returns the value of the "corrected" field in the mutation.
func (m *AnswerEventMutation) Corrected() (r string, exists bool) {
	v := m.corrected
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrected returns the old "corrected" field's value of the AnswerEvent entity.
// If the AnswerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerEventMutation) OldCorrected(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrected is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrected requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrected: %w", err)
	}
	return oldValue.Corrected, nil
}

// ClearCorrected clears the value of the "corrected" field.
func (m *AnswerEventMutation) ClearCorrected() {
	m.corrected = nil
	m.clearedFields[answerevent.FieldCorrected] = struct{}{}
}

// CorrectedCleared returns if the "corrected" field was cleared in this mutation.
func (m *AnswerEventMutation) CorrectedCleared() bool {
	_, ok := m.clearedFields[answerevent.FieldCorrected]
	return ok
}

// ResetCorrected resets all changes to the "corrected" field.
func (m *AnswerEventMutation) ResetCorrected() {
	m.corrected = nil
	delete(m.clearedFields, answerevent.FieldCorrected)
}

// SetAttempt sets the "attempt" field.
func (m *AnswerEventMutation) SetAttempt(i int) {
	m.attempt = &i
	m.addattempt = nil
}

// Attempt returns the value of the "attempt" field in the mutation.
func (m *AnswerEventMutation) Attempt() (r int, exists bool) {
	v := m.attempt
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempt returns the old "attempt" field's value of the AnswerEvent entity.
// If the AnswerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerEventMutation) OldAttempt(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempt: %w", err)
	}
	return oldValue.Attempt, nil
}

// AddAttempt adds i to the "attempt" field.
func (m *AnswerEventMutation) AddAttempt(i int) {
	if m.addattempt != nil {
		*m.addattempt += i
	} else {
		m.addattempt = &i
	}
}

// AddedAttempt returns the value that was added to the "attempt" field in this mutation.
func (m *AnswerEventMutation) AddedAttempt() (r int, exists bool) {
	v := m.addattempt
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempt resets all changes to the "attempt" field.
func (m *AnswerEventMutation) ResetAttempt() {
	m.attempt = nil
	m.addattempt = nil
}

// Where appends a list predicates to the AnswerEventMutation builder.
func (m *AnswerEventMutation) Where(ps ...predicate.AnswerEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AnswerEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AnswerEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AnswerEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AnswerEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AnswerEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AnswerEvent).
func (m *AnswerEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AnswerEventMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.sequence != nil {
		fields = append(fields, answerevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, answerevent.FieldTimestamp)
	}
	if m.student_id != nil {
		fields = append(fields, answerevent.FieldStudentID)
	}
	if m.week != nil {
		fields = append(fields, answerevent.FieldWeek)
	}
	if m.question_id != nil {
		fields = append(fields, answerevent.FieldQuestionID)
	}
	if m.stage != nil {
		fields = append(fields, answerevent.FieldStage)
	}
	if m.question_type != nil {
		fields = append(fields, answerevent.FieldQuestionType)
	}
	if m.response != nil {
		fields = append(fields, answerevent.FieldResponse)
	}
	if m.correct != nil {
		fields = append(fields, answerevent.FieldCorrect)
	}
	if m.corrected != nil {
		fields = append(fields, answerevent.FieldCorrected)
	}
	if m.attempt != nil {
		fields = append(fields, answerevent.FieldAttempt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AnswerEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case answerevent.FieldSequence:
		return m.Sequence()
	case answerevent.FieldTimestamp:
		return m.Timestamp()
	case answerevent.FieldStudentID:
		return m.StudentID()
	case answerevent.FieldWeek:
		return m.Week()
	case answerevent.FieldQuestionID:
		return m.QuestionID()
	case answerevent.FieldStage:
		return m.Stage()
	case answerevent.FieldQuestionType:
		return m.QuestionType()
	case answerevent.FieldResponse:
		return m.Response()
	case answerevent.FieldCorrect:
		return m.Correct()
	case answerevent.FieldCorrected:
		return m.Corrected()
	case answerevent.FieldAttempt:
		return m.Attempt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AnswerEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case answerevent.FieldSequence:
		return m.OldSequence(ctx)
	case answerevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case answerevent.FieldStudentID:
		return m.OldStudentID(ctx)
	case answerevent.FieldWeek:
		return m.OldWeek(ctx)
	case answerevent.FieldQuestionID:
		return m.OldQuestionID(ctx)
	case answerevent.FieldStage:
		return m.OldStage(ctx)
	case answerevent.FieldQuestionType:
		return m.OldQuestionType(ctx)
	case answerevent.FieldResponse:
		return m.OldResponse(ctx)
	case answerevent.FieldCorrect:
		return m.OldCorrect(ctx)
	case answerevent.FieldCorrected:
		return m.OldCorrected(ctx)
	case answerevent.FieldAttempt:
		return m.OldAttempt(ctx)
	}
	return nil, fmt.Errorf("unknown AnswerEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnswerEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case answerevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case answerevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case answerevent.FieldStudentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudentID(v)
		return nil
	case answerevent.FieldWeek:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWeek(v)
		return nil
	case answerevent.FieldQuestionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionID(v)
		return nil
	case answerevent.FieldStage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStage(v)
		return nil
	case answerevent.FieldQuestionType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionType(v)
		return nil
	case answerevent.FieldResponse:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponse(v)
		return nil
	case answerevent.FieldCorrect:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrect(v)
		return nil
	case answerevent.FieldCorrected:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrected(v)
		return nil
	case answerevent.FieldAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempt(v)
		return nil
	}
	return fmt.Errorf("unknown AnswerEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AnswerEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, answerevent.FieldSequence)
	}
	if m.addweek != nil {
		fields = append(fields, answerevent.FieldWeek)
	}
	if m.addattempt != nil {
		fields = append(fields, answerevent.FieldAttempt)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AnswerEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case answerevent.FieldSequence:
		return m.AddedSequence()
	case answerevent.FieldWeek:
		return m.AddedWeek()
	case answerevent.FieldAttempt:
		return m.AddedAttempt()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnswerEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case answerevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case answerevent.FieldWeek:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWeek(v)
		return nil
	case answerevent.FieldAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempt(v)
		return nil
	}
	return fmt.Errorf("unknown AnswerEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AnswerEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(answerevent.FieldCorrected) {
		fields = append(fields, answerevent.FieldCorrected)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AnswerEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AnswerEventMutation) ClearField(name string) error {
	switch name {
	case answerevent.FieldCorrected:
		m.ClearCorrected()
		return nil
	}
	return fmt.Errorf("unknown AnswerEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AnswerEventMutation) ResetField(name string) error {
	switch name {
	case answerevent.FieldSequence:
		m.ResetSequence()
		return nil
	case answerevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case answerevent.FieldStudentID:
		m.ResetStudentID()
		return nil
	case answerevent.FieldWeek:
		m.ResetWeek()
		return nil
	case answerevent.FieldQuestionID:
		m.ResetQuestionID()
		return nil
	case answerevent.FieldStage:
		m.ResetStage()
		return nil
	case answerevent.FieldQuestionType:
		m.ResetQuestionType()
		return nil
	case answerevent.FieldResponse:
		m.ResetResponse()
		return nil
	case answerevent.FieldCorrect:
		m.ResetCorrect()
		return nil
	case answerevent.FieldCorrected:
		m.ResetCorrected()
		return nil
	case answerevent.FieldAttempt:
		m.ResetAttempt()
		return nil
	}
	return fmt.Errorf("unknown AnswerEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AnswerEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AnswerEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AnswerEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AnswerEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AnswerEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AnswerEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AnswerEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AnswerEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AnswerEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AnswerEvent edge %s", name)
}

// CompletionEventMutation represents an operation that mutates the CompletionEvent nodes in the graph.
type CompletionEventMutation struct {
	config
	op             Op
	typ            string
	id             *int
	sequence       *int64
	addsequence    *int64
	timestamp      *time.Time
	student_id     *string
	week           *int
	addweek        *int
	lesson_title   *string
	score          *int
	addscore       *int
	total          *int
	addtotal       *int
	percent        *int
	addpercent     *int
	certificate_id *string
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*CompletionEvent, error)
	predicates     []predicate.CompletionEvent
}

var _ ent.Mutation = (*CompletionEventMutation)(nil)

// completioneventOption allows management of the mutation configuration using functional options.
type completioneventOption func(*CompletionEventMutation)

// newCompletionEventMutation creates new mutation for the CompletionEvent entity.
func newCompletionEventMutation(c config, op Op, opts ...completioneventOption) *CompletionEventMutation {
	m := &CompletionEventMutation{
		config:        c,
		op:            op,
		typ:           TypeCompletionEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCompletionEventID sets the ID field of the mutation.
func withCompletionEventID(id int) completioneventOption {
	return func(m *CompletionEventMutation) {
		var (
			err   error
			once  sync.Once
			value *CompletionEvent
		)
		m.oldValue = func(ctx context.Context) (*CompletionEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CompletionEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCompletionEvent sets the old CompletionEvent of the mutation.
func withCompletionEvent(node *CompletionEvent) completioneventOption {
	return func(m *CompletionEventMutation) {
		m.oldValue = func(context.Context) (*CompletionEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CompletionEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CompletionEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CompletionEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CompletionEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CompletionEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *CompletionEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *CompletionEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the CompletionEvent entity.
// If the CompletionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompletionEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *CompletionEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *CompletionEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *CompletionEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *CompletionEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *CompletionEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the CompletionEvent entity.
// If the CompletionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompletionEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *CompletionEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetStudentID sets the "student_id" field.
func (m *CompletionEventMutation) SetStudentID(s string) {
	m.student_id = &s
}

// StudentID returns the value of the "student_id" field in the mutation.
func (m *CompletionEventMutation) StudentID() (r string, exists bool) {
	v := m.student_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStudentID returns the old "student_id" field's value of the CompletionEvent entity.
// If the CompletionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompletionEventMutation) OldStudentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudentID: %w", err)
	}
	return oldValue.StudentID, nil
}

// ResetStudentID resets all changes to the "student_id" field.
func (m *CompletionEventMutation) ResetStudentID() {
	m.student_id = nil
}

// SetWeek sets the "week" field.
func (m *CompletionEventMutation) SetWeek(i int) {
	m.week = &i
	m.addweek = nil
}

// Week returns the value of the "week" field in the mutation.
func (m *CompletionEventMutation) Week() (r int, exists bool) {
	v := m.week
	if v == nil {
		return
	}
	return *v, true
}

// OldWeek returns the old "week" field's value of the CompletionEvent entity.
// If the CompletionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompletionEventMutation) OldWeek(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWeek is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWeek requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWeek: %w", err)
	}
	return oldValue.Week, nil
}

// AddWeek adds i to the "week" field.
func (m *CompletionEventMutation) AddWeek(i int) {
	if m.addweek != nil {
		*m.addweek += i
	} else {
		m.addweek = &i
	}
}

// AddedWeek returns the value that was added to the "week" field in this mutation.
func (m *CompletionEventMutation) AddedWeek() (r int, exists bool) {
	v := m.addweek
	if v == nil {
		return
	}
	return *v, true
}

// ResetWeek resets all changes to the "week" field.
func (m *CompletionEventMutation) ResetWeek() {
	m.week = nil
	m.addweek = nil
}

// SetLessonTitle sets the "lesson_title" field.
func (m *CompletionEventMutation) SetLessonTitle(s string) {
	m.lesson_title = &s
}

// LessonTitle returns the value of the "lesson_title" field in the mutation.
func (m *CompletionEventMutation) LessonTitle() (r string, exists bool) {
	v := m.lesson_title
	if v == nil {
		return
	}
	return *v, true
}

// OldLessonTitle returns the old "lesson_title" field's value of the CompletionEvent entity.
// If the CompletionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompletionEventMutation) OldLessonTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLessonTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLessonTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLessonTitle: %w", err)
	}
	return oldValue.LessonTitle, nil
}

// ResetLessonTitle resets all changes to the "lesson_title" field.
func (m *CompletionEventMutation) ResetLessonTitle() {
	m.lesson_title = nil
}

// SetScore sets the "score" field.
func (m *CompletionEventMutation) SetScore(i int) {
	m.score = &i
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *CompletionEventMutation) Score() (r int, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the CompletionEvent entity.
// If the CompletionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompletionEventMutation) OldScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds i to the "score" field.
func (m *CompletionEventMutation) AddScore(i int) {
	if m.addscore != nil {
		*m.addscore += i
	} else {
		m.addscore = &i
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *CompletionEventMutation) AddedScore() (r int, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *CompletionEventMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetTotal sets the "total" field.
func (m *CompletionEventMutation) SetTotal(i int) {
	m.total = &i
	m.addtotal = nil
}

// Total returns the value of the "total" field in the mutation.
func (m *CompletionEventMutation) Total() (r int, exists bool) {
	v := m.total
	if v == nil {
		return
	}
	return *v, true
}

// OldTotal returns the old "total" field's value of the CompletionEvent entity.
// If the CompletionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompletionEventMutation) OldTotal(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotal: %w", err)
	}
	return oldValue.Total, nil
}

// AddTotal adds i to the "total" field.
func (m *CompletionEventMutation) AddTotal(i int) {
	if m.addtotal != nil {
		*m.addtotal += i
	} else {
		m.addtotal = &i
	}
}

// AddedTotal returns the value that was added to the "total" field in this mutation.
func (m *CompletionEventMutation) AddedTotal() (r int, exists bool) {
	v := m.addtotal
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotal resets all changes to the "total" field.
func (m *CompletionEventMutation) ResetTotal() {
	m.total = nil
	m.addtotal = nil
}

// SetPercent sets the "percent" field.
func (m *CompletionEventMutation) SetPercent(i int) {
	m.percent = &i
	m.addpercent = nil
}

// Percent returns the value of the "percent" field in the mutation.
func (m *CompletionEventMutation) Percent() (r int, exists bool) {
	v := m.percent
	if v == nil {
		return
	}
	return *v, true
}

// OldPercent returns the old "percent" field's value of the CompletionEvent entity.
// If the CompletionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompletionEventMutation) OldPercent(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPercent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPercent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPercent: %w", err)
	}
	return oldValue.Percent, nil
}

// AddPercent adds i to the "percent" field.
func (m *CompletionEventMutation) AddPercent(i int) {
	if m.addpercent != nil {
		*m.addpercent += i
	} else {
		m.addpercent = &i
	}
}

// AddedPercent returns the value that was added to the "percent" field in this mutation.
func (m *CompletionEventMutation) AddedPercent() (r int, exists bool) {
	v := m.addpercent
	if v == nil {
		return
	}
	return *v, true
}

// ResetPercent resets all changes to the "percent" field.
func (m *CompletionEventMutation) ResetPercent() {
	m.percent = nil
	m.addpercent = nil
}

// SetCertificateID sets the "certificate_id" field.
func (m *CompletionEventMutation) SetCertificateID(s string) {
	m.certificate_id = &s
}

// CertificateID returns the value of the "certificate_id" field in the mutation.
func (m *CompletionEventMutation) CertificateID() (r string, exists bool) {
	v := m.certificate_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCertificateID returns the old "certificate_id" field's value of the CompletionEvent entity.
// If the CompletionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompletionEventMutation) OldCertificateID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCertificateID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCertificateID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCertificateID: %w", err)
	}
	return oldValue.CertificateID, nil
}

// ResetCertificateID resets all changes to the "certificate_id" field.
func (m *CompletionEventMutation) ResetCertificateID() {
	m.certificate_id = nil
}

// Where appends a list predicates to the CompletionEventMutation builder.
func (m *CompletionEventMutation) Where(ps ...predicate.CompletionEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CompletionEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CompletionEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CompletionEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CompletionEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CompletionEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CompletionEvent).
func (m *CompletionEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CompletionEventMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.sequence != nil {
		fields = append(fields, completionevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, completionevent.FieldTimestamp)
	}
	if m.student_id != nil {
		fields = append(fields, completionevent.FieldStudentID)
	}
	if m.week != nil {
		fields = append(fields, completionevent.FieldWeek)
	}
	if m.lesson_title != nil {
		fields = append(fields, completionevent.FieldLessonTitle)
	}
	if m.score != nil {
		fields = append(fields, completionevent.FieldScore)
	}
	if m.total != nil {
		fields = append(fields, completionevent.FieldTotal)
	}
	if m.percent != nil {
		fields = append(fields, completionevent.FieldPercent)
	}
	if m.certificate_id != nil {
		fields = append(fields, completionevent.FieldCertificateID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CompletionEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case completionevent.FieldSequence:
		return m.Sequence()
	case completionevent.FieldTimestamp:
		return m.Timestamp()
	case completionevent.FieldStudentID:
		return m.StudentID()
	case completionevent.FieldWeek:
		return m.Week()
	case completionevent.FieldLessonTitle:
		return m.LessonTitle()
	case completionevent.FieldScore:
		return m.Score()
	case completionevent.FieldTotal:
		return m.Total()
	case completionevent.FieldPercent:
		return m.Percent()
	case completionevent.FieldCertificateID:
		return m.CertificateID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CompletionEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case completionevent.FieldSequence:
		return m.OldSequence(ctx)
	case completionevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case completionevent.FieldStudentID:
		return m.OldStudentID(ctx)
	case completionevent.FieldWeek:
		return m.OldWeek(ctx)
	case completionevent.FieldLessonTitle:
		return m.OldLessonTitle(ctx)
	case completionevent.FieldScore:
		return m.OldScore(ctx)
	case completionevent.FieldTotal:
		return m.OldTotal(ctx)
	case completionevent.FieldPercent:
		return m.OldPercent(ctx)
	case completionevent.FieldCertificateID:
		return m.OldCertificateID(ctx)
	}
	return nil, fmt.Errorf("unknown CompletionEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CompletionEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case completionevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case completionevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case completionevent.FieldStudentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudentID(v)
		return nil
	case completionevent.FieldWeek:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWeek(v)
		return nil
	case completionevent.FieldLessonTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLessonTitle(v)
		return nil
	case completionevent.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case completionevent.FieldTotal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotal(v)
		return nil
	case completionevent.FieldPercent:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPercent(v)
		return nil
	case completionevent.FieldCertificateID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCertificateID(v)
		return nil
	}
	return fmt.Errorf("unknown CompletionEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CompletionEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, completionevent.FieldSequence)
	}
	if m.addweek != nil {
		fields = append(fields, completionevent.FieldWeek)
	}
	if m.addscore != nil {
		fields = append(fields, completionevent.FieldScore)
	}
	if m.addtotal != nil {
		fields = append(fields, completionevent.FieldTotal)
	}
	if m.addpercent != nil {
		fields = append(fields, completionevent.FieldPercent)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CompletionEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case completionevent.FieldSequence:
		return m.AddedSequence()
	case completionevent.FieldWeek:
		return m.AddedWeek()
	case completionevent.FieldScore:
		return m.AddedScore()
	case completionevent.FieldTotal:
		return m.AddedTotal()
	case completionevent.FieldPercent:
		return m.AddedPercent()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CompletionEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case completionevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case completionevent.FieldWeek:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWeek(v)
		return nil
	case completionevent.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	case completionevent.FieldTotal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotal(v)
		return nil
	case completionevent.FieldPercent:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPercent(v)
		return nil
	}
	return fmt.Errorf("unknown CompletionEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CompletionEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CompletionEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CompletionEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown CompletionEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CompletionEventMutation) ResetField(name string) error {
	switch name {
	case completionevent.FieldSequence:
		m.ResetSequence()
		return nil
	case completionevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case completionevent.FieldStudentID:
		m.ResetStudentID()
		return nil
	case completionevent.FieldWeek:
		m.ResetWeek()
		return nil
	case completionevent.FieldLessonTitle:
		m.ResetLessonTitle()
		return nil
	case completionevent.FieldScore:
		m.ResetScore()
		return nil
	case completionevent.FieldTotal:
		m.ResetTotal()
		return nil
	case completionevent.FieldPercent:
		m.ResetPercent()
		return nil
	case completionevent.FieldCertificateID:
		m.ResetCertificateID()
		return nil
	}
	return fmt.Errorf("unknown CompletionEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CompletionEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CompletionEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CompletionEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CompletionEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CompletionEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CompletionEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CompletionEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown CompletionEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CompletionEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown CompletionEvent edge %s", name)
}

// HintEventMutation represents an operation that mutates the HintEvent nodes in the graph.
type HintEventMutation struct {
	config
	op                Op
	typ               string
	id                *int
	sequence          *int64
	addsequence       *int64
	timestamp         *time.Time
	student_id        *string
	week              *int
	addweek           *int
	question_id       *string
	attempt           *int
	addattempt        *int
	hint_text         *string
	revealed_solution *bool
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*HintEvent, error)
	predicates        []predicate.HintEvent
}

var _ ent.Mutation = (*HintEventMutation)(nil)

// hinteventOption allows management of the mutation configuration using functional options.
type hinteventOption func(*HintEventMutation)

// newHintEventMutation creates new mutation for the HintEvent entity.
func newHintEventMutation(c config, op Op, opts ...hinteventOption) *HintEventMutation {
	m := &HintEventMutation{
		config:        c,
		op:            op,
		typ:           TypeHintEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withHintEventID sets the ID field of the mutation.
func withHintEventID(id int) hinteventOption {
	return func(m *HintEventMutation) {
		var (
			err   error
			once  sync.Once
			value *HintEvent
		)
		m.oldValue = func(ctx context.Context) (*HintEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().HintEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withHintEvent sets the old HintEvent of the mutation.
func withHintEvent(node *HintEvent) hinteventOption {
	return func(m *HintEventMutation) {
		m.oldValue = func(context.Context) (*HintEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m HintEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m HintEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *HintEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *HintEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().HintEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *HintEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *HintEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the HintEvent entity.
// If the HintEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HintEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *HintEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *HintEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *HintEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *HintEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *HintEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the HintEvent entity.
// If the HintEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HintEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *HintEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetStudentID sets the "student_id" field.
func (m *HintEventMutation) SetStudentID(s string) {
	m.student_id = &s
}

// StudentID returns the value of the "student_id" field in the mutation.
func (m *HintEventMutation) StudentID() (r string, exists bool) {
	v := m.student_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStudentID returns the old "student_id" field's value of the HintEvent entity.
// If the HintEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HintEventMutation) OldStudentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudentID: %w", err)
	}
	return oldValue.StudentID, nil
}

// ResetStudentID resets all changes to the "student_id" field.
func (m *HintEventMutation) ResetStudentID() {
	m.student_id = nil
}

// SetWeek sets the "week" field.
func (m *HintEventMutation) SetWeek(i int) {
	m.week = &i
	m.addweek = nil
}

// Week returns the value of the "week" field in the mutation.
func (m *HintEventMutation) Week() (r int, exists bool) {
	v := m.week
	if v == nil {
		return
	}
	return *v, true
}

// OldWeek returns the old "week" field's value of the HintEvent entity.
// If the HintEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HintEventMutation) OldWeek(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWeek is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWeek requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWeek: %w", err)
	}
	return oldValue.Week, nil
}

// AddWeek adds i to the "week" field.
func (m *HintEventMutation) AddWeek(i int) {
	if m.addweek != nil {
		*m.addweek += i
	} else {
		m.addweek = &i
	}
}

// AddedWeek returns the value that was added to the "week" field in this mutation.
func (m *HintEventMutation) AddedWeek() (r int, exists bool) {
	v := m.addweek
	if v == nil {
		return
	}
	return *v, true
}

// ResetWeek resets all changes to the "week" field.
func (m *HintEventMutation) ResetWeek() {
	m.week = nil
	m.addweek = nil
}

// SetQuestionID sets the "question_id" field.
func (m *HintEventMutation) SetQuestionID(s string) {
	m.question_id = &s
}

// QuestionID returns the value of the "question_id" field in the mutation.
func (m *HintEventMutation) QuestionID() (r string, exists bool) {
	v := m.question_id
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionID returns the old "question_id" field's value of the HintEvent entity.
// If the HintEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HintEventMutation) OldQuestionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionID: %w", err)
	}
	return oldValue.QuestionID, nil
}

// ResetQuestionID resets all changes to the "question_id" field.
func (m *HintEventMutation) ResetQuestionID() {
	m.question_id = nil
}

// SetAttempt sets the "attempt" field.
func (m *HintEventMutation) SetAttempt(i int) {
	m.attempt = &i
	m.addattempt = nil
}

// Attempt returns the value of the "attempt" field in the mutation.
func (m *HintEventMutation) Attempt() (r int, exists bool) {
	v := m.attempt
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempt returns the old "attempt" field's value of the HintEvent entity.
// If the HintEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HintEventMutation) OldAttempt(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempt: %w", err)
	}
	return oldValue.Attempt, nil
}

// AddAttempt adds i to the "attempt" field.
func (m *HintEventMutation) AddAttempt(i int) {
	if m.addattempt != nil {
		*m.addattempt += i
	} else {
		m.addattempt = &i
	}
}

// AddedAttempt returns the value that was added to the "attempt" field in this mutation.
func (m *HintEventMutation) AddedAttempt() (r int, exists bool) {
	v := m.addattempt
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempt resets all changes to the "attempt" field.
func (m *HintEventMutation) ResetAttempt() {
	m.attempt = nil
	m.addattempt = nil
}

// SetHintText sets the "hint_text" field.
func (m *HintEventMutation) SetHintText(s string) {
	m.hint_text = &s
}

// HintText returns the value of the "hint_text" field in the mutation.
func (m *HintEventMutation) HintText() (r string, exists bool) {
	v := m.hint_text
	if v == nil {
		return
	}
	return *v, true
}

// OldHintText returns the old "hint_text" field's value of the HintEvent entity.
// If the HintEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HintEventMutation) OldHintText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHintText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHintText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHintText: %w", err)
	}
	return oldValue.HintText, nil
}

// ResetHintText resets all changes to the "hint_text" field.
func (m *HintEventMutation) ResetHintText() {
	m.hint_text = nil
}

// SetRevealedSolution sets the "revealed_solution" field.
func (m *HintEventMutation) SetRevealedSolution(b bool) {
	m.revealed_solution = &b
}

// RevealedSolution returns the value of the "revealed_solution" field in the mutation.
func (m *HintEventMutation) RevealedSolution() (r bool, exists bool) {
	v := m.revealed_solution
	if v == nil {
		return
	}
	return *v, true
}

// OldRevealedSolution returns the old "revealed_solution" field's value of the HintEvent entity.
// If the HintEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HintEventMutation) OldRevealedSolution(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRevealedSolution is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRevealedSolution requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRevealedSolution: %w", err)
	}
	return oldValue.RevealedSolution, nil
}

// ResetRevealedSolution resets all changes to the "revealed_solution" field.
func (m *HintEventMutation) ResetRevealedSolution() {
	m.revealed_solution = nil
}

// Where appends a list predicates to the HintEventMutation builder.
func (m *HintEventMutation) Where(ps ...predicate.HintEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the HintEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *HintEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.HintEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *HintEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *HintEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (HintEvent).
func (m *HintEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *HintEventMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.sequence != nil {
		fields = append(fields, hintevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, hintevent.FieldTimestamp)
	}
	if m.student_id != nil {
		fields = append(fields, hintevent.FieldStudentID)
	}
	if m.week != nil {
		fields = append(fields, hintevent.FieldWeek)
	}
	if m.question_id != nil {
		fields = append(fields, hintevent.FieldQuestionID)
	}
	if m.attempt != nil {
		fields = append(fields, hintevent.FieldAttempt)
	}
	if m.hint_text != nil {
		fields = append(fields, hintevent.FieldHintText)
	}
	if m.revealed_solution != nil {
		fields = append(fields, hintevent.FieldRevealedSolution)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *HintEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case hintevent.FieldSequence:
		return m.Sequence()
	case hintevent.FieldTimestamp:
		return m.Timestamp()
	case hintevent.FieldStudentID:
		return m.StudentID()
	case hintevent.FieldWeek:
		return m.Week()
	case hintevent.FieldQuestionID:
		return m.QuestionID()
	case hintevent.FieldAttempt:
		return m.Attempt()
	case hintevent.FieldHintText:
		return m.HintText()
	case hintevent.FieldRevealedSolution:
		return m.RevealedSolution()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *HintEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case hintevent.FieldSequence:
		return m.OldSequence(ctx)
	case hintevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case hintevent.FieldStudentID:
		return m.OldStudentID(ctx)
	case hintevent.FieldWeek:
		return m.OldWeek(ctx)
	case hintevent.FieldQuestionID:
		return m.OldQuestionID(ctx)
	case hintevent.FieldAttempt:
		return m.OldAttempt(ctx)
	case hintevent.FieldHintText:
		return m.OldHintText(ctx)
	case hintevent.FieldRevealedSolution:
		return m.OldRevealedSolution(ctx)
	}
	return nil, fmt.Errorf("unknown HintEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *HintEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case hintevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case hintevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case hintevent.FieldStudentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudentID(v)
		return nil
	case hintevent.FieldWeek:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWeek(v)
		return nil
	case hintevent.FieldQuestionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionID(v)
		return nil
	case hintevent.FieldAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempt(v)
		return nil
	case hintevent.FieldHintText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHintText(v)
		return nil
	case hintevent.FieldRevealedSolution:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRevealedSolution(v)
		return nil
	}
	return fmt.Errorf("unknown HintEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *HintEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, hintevent.FieldSequence)
	}
	if m.addweek != nil {
		fields = append(fields, hintevent.FieldWeek)
	}
	if m.addattempt != nil {
		fields = append(fields, hintevent.FieldAttempt)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *HintEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case hintevent.FieldSequence:
		return m.AddedSequence()
	case hintevent.FieldWeek:
		return m.AddedWeek()
	case hintevent.FieldAttempt:
		return m.AddedAttempt()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *HintEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case hintevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case hintevent.FieldWeek:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWeek(v)
		return nil
	case hintevent.FieldAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempt(v)
		return nil
	}
	return fmt.Errorf("unknown HintEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *HintEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *HintEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *HintEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown HintEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *HintEventMutation) ResetField(name string) error {
	switch name {
	case hintevent.FieldSequence:
		m.ResetSequence()
		return nil
	case hintevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case hintevent.FieldStudentID:
		m.ResetStudentID()
		return nil
	case hintevent.FieldWeek:
		m.ResetWeek()
		return nil
	case hintevent.FieldQuestionID:
		m.ResetQuestionID()
		return nil
	case hintevent.FieldAttempt:
		m.ResetAttempt()
		return nil
	case hintevent.FieldHintText:
		m.ResetHintText()
		return nil
	case hintevent.FieldRevealedSolution:
		m.ResetRevealedSolution()
		return nil
	}
	return fmt.Errorf("unknown HintEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *HintEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *HintEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *HintEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *HintEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *HintEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *HintEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *HintEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown HintEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *HintEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown HintEvent edge %s", name)
}

// ProgressMutation represents an operation that mutates the Progress nodes in the graph.
type ProgressMutation struct {
	config
	op               Op
	typ              string
	id               *int
	student_id       *string
	week             *int
	addweek          *int
	stage            *string
	prereq_index     *int
	addprereq_index  *int
	concept_index    *int
	addconcept_index *int
	item_index       *int
	additem_index    *int
	assessment       *map[string]interface{}
	completed        *bool
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*Progress, error)
	predicates       []predicate.Progress
}

var _ ent.Mutation = (*ProgressMutation)(nil)

// progressOption allows management of the mutation configuration using functional options.
type progressOption func(*ProgressMutation)

// newProgressMutation creates new mutation for the Progress entity.
func newProgressMutation(c config, op Op, opts ...progressOption) *ProgressMutation {
	m := &ProgressMutation{
		config:        c,
		op:            op,
		typ:           TypeProgress,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProgressID sets the ID field of the mutation.
func withProgressID(id int) progressOption {
	return func(m *ProgressMutation) {
		var (
			err   error
			once  sync.Once
			value *Progress
		)
		m.oldValue = func(ctx context.Context) (*Progress, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Progress.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProgress sets the old Progress of the mutation.
func withProgress(node *Progress) progressOption {
	return func(m *ProgressMutation) {
		m.oldValue = func(context.Context) (*Progress, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProgressMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProgressMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProgressMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProgressMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Progress.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStudentID sets the "student_id" field.
func (m *ProgressMutation) SetStudentID(s string) {
	m.student_id = &s
}

// StudentID returns the value of the "student_id" field in the mutation.
func (m *ProgressMutation) StudentID() (r string, exists bool) {
	v := m.student_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStudentID returns the old "student_id" field's value of the Progress entity.
// If the Progress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressMutation) OldStudentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudentID: %w", err)
	}
	return oldValue.StudentID, nil
}

// ResetStudentID resets all changes to the "student_id" field.
func (m *ProgressMutation) ResetStudentID() {
	m.student_id = nil
}

// SetWeek sets the "week" field.
func (m *ProgressMutation) SetWeek(i int) {
	m.week = &i
	m.addweek = nil
}

// Week returns the value of the "week" field in the mutation.
func (m *ProgressMutation) Week() (r int, exists bool) {
	v := m.week
	if v == nil {
		return
	}
	return *v, true
}

// OldWeek returns the old "week" field's value of the Progress entity.
// If the Progress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressMutation) OldWeek(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWeek is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWeek requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWeek: %w", err)
	}
	return oldValue.Week, nil
}

// AddWeek adds i to the "week" field.
func (m *ProgressMutation) AddWeek(i int) {
	if m.addweek != nil {
		*m.addweek += i
	} else {
		m.addweek = &i
	}
}

// AddedWeek returns the value that was added to the "week" field in this mutation.
func (m *ProgressMutation) AddedWeek() (r int, exists bool) {
	v := m.addweek
	if v == nil {
		return
	}
	return *v, true
}

// ResetWeek resets all changes to the "week" field.
func (m *ProgressMutation) ResetWeek() {
	m.week = nil
	m.addweek = nil
}

// SetStage sets the "stage" field.
func (m *ProgressMutation) SetStage(s string) {
	m.stage = &s
}

// Stage returns the value of the "stage" field in the mutation.
func (m *ProgressMutation) Stage() (r string, exists bool) {
	v := m.stage
	if v == nil {
		return
	}
	return *v, true
}

// OldStage returns the old "stage" field's value of the Progress entity.
// If the Progress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressMutation) OldStage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStage: %w", err)
	}
	return oldValue.Stage, nil
}

// ResetStage resets all changes to the "stage" field.
func (m *ProgressMutation) ResetStage() {
	m.stage = nil
}

// SetPrereqIndex sets the "prereq_index" field.
func (m *ProgressMutation) SetPrereqIndex(i int) {
	m.prereq_index = &i
	m.addprereq_index = nil
}

// PrereqIndex returns the value of the "prereq_index" field in the mutation.
func (m *ProgressMutation) PrereqIndex() (r int, exists bool) {
	v := m.prereq_index
	if v == nil {
		return
	}
	return *v, true
}

// OldPrereqIndex returns the old "prereq_index" field's value of the Progress entity.
// If the Progress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressMutation) OldPrereqIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrereqIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrereqIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrereqIndex: %w", err)
	}
	return oldValue.PrereqIndex, nil
}

// AddPrereqIndex adds i to the "prereq_index" field.
func (m *ProgressMutation) AddPrereqIndex(i int) {
	if m.addprereq_index != nil {
		*m.addprereq_index += i
	} else {
		m.addprereq_index = &i
	}
}

// AddedPrereqIndex returns the value that was added to the "prereq_index" field in this mutation.
func (m *ProgressMutation) AddedPrereqIndex() (r int, exists bool) {
	v := m.addprereq_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetPrereqIndex resets all changes to the "prereq_index" field.
func (m *ProgressMutation) ResetPrereqIndex() {
	m.prereq_index = nil
	m.addprereq_index = nil
}

// SetConceptIndex sets the "concept_index" field.
func (m *ProgressMutation) SetConceptIndex(i int) {
	m.concept_index = &i
	m.addconcept_index = nil
}

// ConceptIndex returns the value of the "concept_index" field in the mutation.
func (m *ProgressMutation) ConceptIndex() (r int, exists bool) {
	v := m.concept_index
	if v == nil {
		return
	}
	return *v, true
}

// OldConceptIndex returns the old "concept_index" field's value of the Progress entity.
// If the Progress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressMutation) OldConceptIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConceptIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConceptIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConceptIndex: %w", err)
	}
	return oldValue.ConceptIndex, nil
}

// AddConceptIndex adds i to the "concept_index" field.
func (m *ProgressMutation) AddConceptIndex(i int) {
	if m.addconcept_index != nil {
		*m.addconcept_index += i
	} else {
		m.addconcept_index = &i
	}
}

// AddedConceptIndex returns the value that was added to the "concept_index" field in this mutation.
func (m *ProgressMutation) AddedConceptIndex() (r int, exists bool) {
	v := m.addconcept_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetConceptIndex resets all changes to the "concept_index" field.
func (m *ProgressMutation) ResetConceptIndex() {
	m.concept_index = nil
	m.addconcept_index = nil
}

// SetItemIndex sets the "item_index" field.
func (m *ProgressMutation) SetItemIndex(i int) {
	m.item_index = &i
	m.additem_index = nil
}

// ItemIndex returns the value of the "item_index" field in the mutation.
func (m *ProgressMutation) ItemIndex() (r int, exists bool) {
	v := m.item_index
	if v == nil {
		return
	}
	return *v, true
}

// OldItemIndex returns the old "item_index" field's value of the Progress entity.
// If the Progress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressMutation) OldItemIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemIndex: %w", err)
	}
	return oldValue.ItemIndex, nil
}

// AddItemIndex adds i to the "item_index" field.
func (m *ProgressMutation) AddItemIndex(i int) {
	if m.additem_index != nil {
		*m.additem_index += i
	} else {
		m.additem_index = &i
	}
}

// AddedItemIndex returns the value that was added to the "item_index" field in this mutation.
func (m *ProgressMutation) AddedItemIndex() (r int, exists bool) {
	v := m.additem_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetItemIndex resets all changes to the "item_index" field.
func (m *ProgressMutation) ResetItemIndex() {
	m.item_index = nil
	m.additem_index = nil
}

// SetAssessment sets the "assessment" field.
func (m *ProgressMutation) SetAssessment(value map[string]interface{}) {
	m.assessment = &value
}

// Assessment returns the value of the "assessment" field in the mutation.
func (m *ProgressMutation) Assessment() (r map[string]interface{}, exists bool) {
	v := m.assessment
	if v == nil {
		return
	}
	return *v, true
}

// OldAssessment returns the old "assessment" field's value of the Progress entity.
// If the Progress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressMutation) OldAssessment(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssessment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssessment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssessment: %w", err)
	}
	return oldValue.Assessment, nil
}

// ClearAssessment clears the value of the "assessment" field.
func (m *ProgressMutation) ClearAssessment() {
	m.assessment = nil
	m.clearedFields[progress.FieldAssessment] = struct{}{}
}

// AssessmentCleared returns if the "assessment" field was cleared in this mutation.
func (m *ProgressMutation) AssessmentCleared() bool {
	_, ok := m.clearedFields[progress.FieldAssessment]
	return ok
}

// ResetAssessment resets all changes to the "assessment" field.
func (m *ProgressMutation) ResetAssessment() {
	m.assessment = nil
	delete(m.clearedFields, progress.FieldAssessment)
}

// SetCompleted sets the "completed" field.
func (m *ProgressMutation) SetCompleted(b bool) {
	m.completed = &b
}

// Completed returns the value of the "completed" field in the mutation.
func (m *ProgressMutation) Completed() (r bool, exists bool) {
	v := m.completed
	if v == nil {
		return
	}
	return *v, true
}

// OldCompleted returns the old "completed" field's value of the Progress entity.
// If the Progress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressMutation) OldCompleted(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompleted: %w", err)
	}
	return oldValue.Completed, nil
}

// ResetCompleted resets all changes to the "completed" field.
func (m *ProgressMutation) ResetCompleted() {
	m.completed = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProgressMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProgressMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Progress entity.
// If the Progress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ProgressMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ProgressMutation builder.
func (m *ProgressMutation) Where(ps ...predicate.Progress) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProgressMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProgressMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Progress, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProgressMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProgressMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Progress).
func (m *ProgressMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProgressMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.student_id != nil {
		fields = append(fields, progress.FieldStudentID)
	}
	if m.week != nil {
		fields = append(fields, progress.FieldWeek)
	}
	if m.stage != nil {
		fields = append(fields, progress.FieldStage)
	}
	if m.prereq_index != nil {
		fields = append(fields, progress.FieldPrereqIndex)
	}
	if m.concept_index != nil {
		fields = append(fields, progress.FieldConceptIndex)
	}
	if m.item_index != nil {
		fields = append(fields, progress.FieldItemIndex)
	}
	if m.assessment != nil {
		fields = append(fields, progress.FieldAssessment)
	}
	if m.completed != nil {
		fields = append(fields, progress.FieldCompleted)
	}
	if m.updated_at != nil {
		fields = append(fields, progress.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProgressMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case progress.FieldStudentID:
		return m.StudentID()
	case progress.FieldWeek:
		return m.Week()
	case progress.FieldStage:
		return m.Stage()
	case progress.FieldPrereqIndex:
		return m.PrereqIndex()
	case progress.FieldConceptIndex:
		return m.ConceptIndex()
	case progress.FieldItemIndex:
		return m.ItemIndex()
	case progress.FieldAssessment:
		return m.Assessment()
	case progress.FieldCompleted:
		return m.Completed()
	case progress.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProgressMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case progress.FieldStudentID:
		return m.OldStudentID(ctx)
	case progress.FieldWeek:
		return m.OldWeek(ctx)
	case progress.FieldStage:
		return m.OldStage(ctx)
	case progress.FieldPrereqIndex:
		return m.OldPrereqIndex(ctx)
	case progress.FieldConceptIndex:
		return m.OldConceptIndex(ctx)
	case progress.FieldItemIndex:
		return m.OldItemIndex(ctx)
	case progress.FieldAssessment:
		return m.OldAssessment(ctx)
	case progress.FieldCompleted:
		return m.OldCompleted(ctx)
	case progress.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Progress field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProgressMutation) SetField(name string, value ent.Value) error {
	switch name {
	case progress.FieldStudentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudentID(v)
		return nil
	case progress.FieldWeek:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWeek(v)
		return nil
	case progress.FieldStage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStage(v)
		return nil
	case progress.FieldPrereqIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrereqIndex(v)
		return nil
	case progress.FieldConceptIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConceptIndex(v)
		return nil
	case progress.FieldItemIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemIndex(v)
		return nil
	case progress.FieldAssessment:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssessment(v)
		return nil
	case progress.FieldCompleted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompleted(v)
		return nil
	case progress.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Progress field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProgressMutation) AddedFields() []string {
	var fields []string
	if m.addweek != nil {
		fields = append(fields, progress.FieldWeek)
	}
	if m.addprereq_index != nil {
		fields = append(fields, progress.FieldPrereqIndex)
	}
	if m.addconcept_index != nil {
		fields = append(fields, progress.FieldConceptIndex)
	}
	if m.additem_index != nil {
		fields = append(fields, progress.FieldItemIndex)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProgressMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case progress.FieldWeek:
		return m.AddedWeek()
	case progress.FieldPrereqIndex:
		return m.AddedPrereqIndex()
	case progress.FieldConceptIndex:
		return m.AddedConceptIndex()
	case progress.FieldItemIndex:
		return m.AddedItemIndex()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProgressMutation) AddField(name string, value ent.Value) error {
	switch name {
	case progress.FieldWeek:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWeek(v)
		return nil
	case progress.FieldPrereqIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPrereqIndex(v)
		return nil
	case progress.FieldConceptIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConceptIndex(v)
		return nil
	case progress.FieldItemIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddItemIndex(v)
		return nil
	}
	return fmt.Errorf("unknown Progress numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProgressMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(progress.FieldAssessment) {
		fields = append(fields, progress.FieldAssessment)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProgressMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProgressMutation) ClearField(name string) error {
	switch name {
	case progress.FieldAssessment:
		m.ClearAssessment()
		return nil
	}
	return fmt.Errorf("unknown Progress nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProgressMutation) ResetField(name string) error {
	switch name {
	case progress.FieldStudentID:
		m.ResetStudentID()
		return nil
	case progress.FieldWeek:
		m.ResetWeek()
		return nil
	case progress.FieldStage:
		m.ResetStage()
		return nil
	case progress.FieldPrereqIndex:
		m.ResetPrereqIndex()
		return nil
	case progress.FieldConceptIndex:
		m.ResetConceptIndex()
		return nil
	case progress.FieldItemIndex:
		m.ResetItemIndex()
		return nil
	case progress.FieldAssessment:
		m.ResetAssessment()
		return nil
	case progress.FieldCompleted:
		m.ResetCompleted()
		return nil
	case progress.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Progress field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProgressMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProgressMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProgressMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProgressMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProgressMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProgressMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProgressMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Progress unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProgressMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Progress edge %s", name)
}
