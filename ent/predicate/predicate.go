// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AnswerEvent is the predicate function for answerevent builders.
type AnswerEvent func(*sql.Selector)

// CompletionEvent is the predicate function for completionevent builders.
type CompletionEvent func(*sql.Selector)

// HintEvent is the predicate function for hintevent builders.
type HintEvent func(*sql.Selector)

// Progress is the predicate function for progress builders.
type Progress func(*sql.Selector)
