package store

import (
	"context"
	"time"
)

// AssessmentProgress is the saved assessment position and frozen score.
type AssessmentProgress struct {
	CurrentIndex int  `json:"current_index"`
	Attempts     int  `json:"attempts"`
	Score        int  `json:"score"`
	Total        int  `json:"total"`
	Completed    bool `json:"completed"`
}

// Progress is the saved position of one student in one weekly card.
type Progress struct {
	StudentID    string
	Week         int
	Stage        string
	PrereqIndex  int
	ConceptIndex int
	ItemIndex    int
	Assessment   AssessmentProgress
	Completed    bool
	UpdatedAt    time.Time
}

// ProgressRepo manages per-student, per-week lesson positions.
type ProgressRepo interface {
	// Save upserts the progress row for (StudentID, Week).
	Save(ctx context.Context, p *Progress) error

	// Load returns the saved progress, or nil if none exists.
	Load(ctx context.Context, studentID string, week int) (*Progress, error)

	// List returns all saved progress rows for a student, newest first.
	List(ctx context.Context, studentID string) ([]*Progress, error)

	// MarkComplete flags the progress row as completed.
	MarkComplete(ctx context.Context, studentID string, week int) error

	// Reset deletes the progress row so the lesson restarts fresh.
	Reset(ctx context.Context, studentID string, week int) error
}

// AnswerEventData captures one answer check against a question.
type AnswerEventData struct {
	StudentID    string
	Week         int
	QuestionID   string
	Stage        string
	QuestionType string
	Response     string
	Correct      bool
	Corrected    string
	Attempt      int
}

// HintEventData captures a hint or solution reveal shown to the learner.
type HintEventData struct {
	StudentID        string
	Week             int
	QuestionID       string
	Attempt          int
	HintText         string
	RevealedSolution bool
}

// CompletionEventData captures a finished lesson and its certificate.
type CompletionEventData struct {
	StudentID     string
	Week          int
	LessonTitle   string
	Score         int
	Total         int
	Percent       int
	CertificateID string
}

// Completion is a recorded lesson completion, read back for listings.
type Completion struct {
	Week          int
	LessonTitle   string
	Score         int
	Total         int
	Percent       int
	CertificateID string
	Timestamp     time.Time
}

// EventRepo provides append access to the lesson event log.
type EventRepo interface {
	// AppendAnswer records an answer check.
	AppendAnswer(ctx context.Context, data AnswerEventData) error

	// AppendHint records a hint or solution reveal.
	AppendHint(ctx context.Context, data HintEventData) error

	// AppendCompletion records a finished lesson.
	AppendCompletion(ctx context.Context, data CompletionEventData) error

	// Completions returns a student's recorded completions, newest first.
	Completions(ctx context.Context, studentID string) ([]Completion, error)
}
