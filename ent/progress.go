// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/hsaleh/durus/ent/progress"
)

// Progress is the model entity for the Progress schema.
type Progress struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Student the progress belongs to
	StudentID string `json:"student_id,omitempty"`
	// Week number of the lesson card
	Week int `json:"week,omitempty"`
	// goals, prereq, concept, assessment, or done
	Stage string `json:"stage,omitempty"`
	// Position within the prerequisite checks
	PrereqIndex int `json:"prereq_index,omitempty"`
	// Position within the concept list
	ConceptIndex int `json:"concept_index,omitempty"`
	// Position within the current concept flow
	ItemIndex int `json:"item_index,omitempty"`
	// Assessment position and frozen score as JSON
	Assessment map[string]interface{} `json:"assessment,omitempty"`
	// Whether the lesson reached its terminal stage
	Completed bool `json:"completed,omitempty"`
	// Last save time
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Progress) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case progress.FieldAssessment:
			values[i] = new([]byte)
		case progress.FieldCompleted:
			values[i] = new(sql.NullBool)
		case progress.FieldID, progress.FieldWeek, progress.FieldPrereqIndex, progress.FieldConceptIndex, progress.FieldItemIndex:
			values[i] = new(sql.NullInt64)
		case progress.FieldStudentID, progress.FieldStage:
			values[i] = new(sql.NullString)
		case progress.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Progress fields.
func (_m *Progress) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case progress.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case progress.FieldStudentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field student_id", values[i])
			} else if value.Valid {
				_m.StudentID = value.String
			}
		case progress.FieldWeek:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field week", values[i])
			} else if value.Valid {
				_m.Week = int(value.Int64)
			}
		case progress.FieldStage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stage", values[i])
			} else if value.Valid {
				_m.Stage = value.String
			}
		case progress.FieldPrereqIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field prereq_index", values[i])
			} else if value.Valid {
				_m.PrereqIndex = int(value.Int64)
			}
		case progress.FieldConceptIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field concept_index", values[i])
			} else if value.Valid {
				_m.ConceptIndex = int(value.Int64)
			}
		case progress.FieldItemIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field item_index", values[i])
			} else if value.Valid {
				_m.ItemIndex = int(value.Int64)
			}
		case progress.FieldAssessment:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field assessment", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Assessment); err != nil {
					return fmt.Errorf("unmarshal field assessment: %w", err)
				}
			}
		case progress.FieldCompleted:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field completed", values[i])
			} else if value.Valid {
				_m.Completed = value.Bool
			}
		case progress.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Progress.
// This includes values selected through modifiers, order, etc.
func (_m *Progress) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Progress.
// Note that you need to call Progress.Unwrap() before calling this method if this Progress
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Progress) Update() *ProgressUpdateOne {
	return NewProgressClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Progress entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Progress) Unwrap() *Progress {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Progress is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Progress) String() string {
	var builder strings.Builder
	builder.WriteString("Progress(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("student_id=")
	builder.WriteString(_m.StudentID)
	builder.WriteString(", ")
	builder.WriteString("week=")
	builder.WriteString(fmt.Sprintf("%v", _m.Week))
	builder.WriteString(", ")
	builder.WriteString("stage=")
	builder.WriteString(_m.Stage)
	builder.WriteString(", ")
	builder.WriteString("prereq_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.PrereqIndex))
	builder.WriteString(", ")
	builder.WriteString("concept_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConceptIndex))
	builder.WriteString(", ")
	builder.WriteString("item_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.ItemIndex))
	builder.WriteString(", ")
	builder.WriteString("assessment=")
	builder.WriteString(fmt.Sprintf("%v", _m.Assessment))
	builder.WriteString(", ")
	builder.WriteString("completed=")
	builder.WriteString(fmt.Sprintf("%v", _m.Completed))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Progresses is a parsable slice of Progress.
type Progresses []*Progress
