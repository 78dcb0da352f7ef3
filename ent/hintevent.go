// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/hsaleh/durus/ent/hintevent"
)

// HintEvent is the model entity for the HintEvent schema.
type HintEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing position in the lesson event log
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Student who received the hint
	StudentID string `json:"student_id,omitempty"`
	// Week number of the lesson card
	Week int `json:"week,omitempty"`
	// Stable item ID within the card
	QuestionID string `json:"question_id,omitempty"`
	// Wrong-answer count that triggered the hint
	Attempt int `json:"attempt,omitempty"`
	// The hint shown
	HintText string `json:"hint_text,omitempty"`
	// Whether the full solution was revealed
	RevealedSolution bool `json:"revealed_solution,omitempty"`
	selectValues     sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*HintEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case hintevent.FieldRevealedSolution:
			values[i] = new(sql.NullBool)
		case hintevent.FieldID, hintevent.FieldSequence, hintevent.FieldWeek, hintevent.FieldAttempt:
			values[i] = new(sql.NullInt64)
		case hintevent.FieldStudentID, hintevent.FieldQuestionID, hintevent.FieldHintText:
			values[i] = new(sql.NullString)
		case hintevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the HintEvent fields.
func (_m *HintEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case hintevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case hintevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case hintevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case hintevent.FieldStudentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field student_id", values[i])
			} else if value.Valid {
				_m.StudentID = value.String
			}
		case hintevent.FieldWeek:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field week", values[i])
			} else if value.Valid {
				_m.Week = int(value.Int64)
			}
		case hintevent.FieldQuestionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_id", values[i])
			} else if value.Valid {
				_m.QuestionID = value.String
			}
		case hintevent.FieldAttempt:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempt", values[i])
			} else if value.Valid {
				_m.Attempt = int(value.Int64)
			}
		case hintevent.FieldHintText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field hint_text", values[i])
			} else if value.Valid {
				_m.HintText = value.String
			}
		case hintevent.FieldRevealedSolution:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field revealed_solution", values[i])
			} else if value.Valid {
				_m.RevealedSolution = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the HintEvent.
// This includes values selected through modifiers, order, etc.
func (_m *HintEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this HintEvent.
// Note that you need to call HintEvent.Unwrap() before calling this method if this HintEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *HintEvent) Update() *HintEventUpdateOne {
	return NewHintEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the HintEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *HintEvent) Unwrap() *HintEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: HintEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *HintEvent) String() string {
	var builder strings.Builder
	builder.WriteString("HintEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("student_id=")
	builder.WriteString(_m.StudentID)
	builder.WriteString(", ")
	builder.WriteString("week=")
	builder.WriteString(fmt.Sprintf("%v", _m.Week))
	builder.WriteString(", ")
	builder.WriteString("question_id=")
	builder.WriteString(_m.QuestionID)
	builder.WriteString(", ")
	builder.WriteString("attempt=")
	builder.WriteString(fmt.Sprintf("%v", _m.Attempt))
	builder.WriteString(", ")
	builder.WriteString("hint_text=")
	builder.WriteString(_m.HintText)
	builder.WriteString(", ")
	builder.WriteString("revealed_solution=")
	builder.WriteString(fmt.Sprintf("%v", _m.RevealedSolution))
	builder.WriteByte(')')
	return builder.String()
}

// HintEvents is a parsable slice of HintEvent.
type HintEvents []*HintEvent
