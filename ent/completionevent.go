// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/hsaleh/durus/ent/completionevent"
)

// CompletionEvent is the model entity for the CompletionEvent schema.
type CompletionEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing position in the lesson event log
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Student who completed the lesson
	StudentID string `json:"student_id,omitempty"`
	// Week number of the lesson card
	Week int `json:"week,omitempty"`
	// Card title at completion time
	LessonTitle string `json:"lesson_title,omitempty"`
	// Points earned in the assessment
	Score int `json:"score,omitempty"`
	// Points possible in the assessment
	Total int `json:"total,omitempty"`
	// Score as a 0-100 percentage
	Percent int `json:"percent,omitempty"`
	// Certificate UUID issued for this completion
	CertificateID string `json:"certificate_id,omitempty"`
	selectValues  sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CompletionEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case completionevent.FieldID, completionevent.FieldSequence, completionevent.FieldWeek, completionevent.FieldScore, completionevent.FieldTotal, completionevent.FieldPercent:
			values[i] = new(sql.NullInt64)
		case completionevent.FieldStudentID, completionevent.FieldLessonTitle, completionevent.FieldCertificateID:
			values[i] = new(sql.NullString)
		case completionevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CompletionEvent fields.
func (_m *CompletionEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case completionevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case completionevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case completionevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case completionevent.FieldStudentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field student_id", values[i])
			} else if value.Valid {
				_m.StudentID = value.String
			}
		case completionevent.FieldWeek:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field week", values[i])
			} else if value.Valid {
				_m.Week = int(value.Int64)
			}
		case completionevent.FieldLessonTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field lesson_title", values[i])
			} else if value.Valid {
				_m.LessonTitle = value.String
			}
		case completionevent.FieldScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = int(value.Int64)
			}
		case completionevent.FieldTotal:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total", values[i])
			} else if value.Valid {
				_m.Total = int(value.Int64)
			}
		case completionevent.FieldPercent:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field percent", values[i])
			} else if value.Valid {
				_m.Percent = int(value.Int64)
			}
		case completionevent.FieldCertificateID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field certificate_id", values[i])
			} else if value.Valid {
				_m.CertificateID = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CompletionEvent.
// This includes values selected through modifiers, order, etc.
func (_m *CompletionEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this CompletionEvent.
// Note that you need to call CompletionEvent.Unwrap() before calling this method if this CompletionEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CompletionEvent) Update() *CompletionEventUpdateOne {
	return NewCompletionEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CompletionEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CompletionEvent) Unwrap() *CompletionEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CompletionEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CompletionEvent) String() string {
	var builder strings.Builder
	builder.WriteString("CompletionEvent(")
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
	builder.WriteString("lesson_title=")
	builder.WriteString(_m.LessonTitle)
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("total=")
	builder.WriteString(fmt.Sprintf("%v", _m.Total))
	builder.WriteString(", ")
	builder.WriteString("percent=")
	builder.WriteString(fmt.Sprintf("%v", _m.Percent))
	builder.WriteString(", ")
	builder.WriteString("certificate_id=")
	builder.WriteString(_m.CertificateID)
	builder.WriteByte(')')
	return builder.String()
}

// CompletionEvents is a parsable slice of CompletionEvent.
type CompletionEvents []*CompletionEvent
