// Package completion records finished lessons and issues certificates.
package completion

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/hsaleh/durus/internal/engine"
	"github.com/hsaleh/durus/internal/lesson"
	"github.com/hsaleh/durus/internal/store"
)

// Certificate is the receipt issued for a finished lesson.
type Certificate struct {
	ID          string
	StudentID   string
	Week        int
	LessonTitle string
	Score       engine.Score
}

// Recorder persists a lesson completion. The player calls it exactly
// once, when the attempt first reaches the terminal stage.
type Recorder interface {
	Record(ctx context.Context, studentID string, doc *lesson.Lesson, score engine.Score) (*Certificate, error)
}

// StoreRecorder records completions in the event log and flags the
// progress row complete.
type StoreRecorder struct {
	Events   store.EventRepo
	Progress store.ProgressRepo
}

func (r *StoreRecorder) Record(ctx context.Context, studentID string, doc *lesson.Lesson, score engine.Score) (*Certificate, error) {
	cert := &Certificate{
		ID:          uuid.NewString(),
		StudentID:   studentID,
		Week:        doc.Week,
		LessonTitle: doc.Title,
		Score:       score,
	}

	err := r.Events.AppendCompletion(ctx, store.CompletionEventData{
		StudentID:     studentID,
		Week:          doc.Week,
		LessonTitle:   doc.Title,
		Score:         score.Score,
		Total:         score.Total,
		Percent:       score.Percent(),
		CertificateID: cert.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("record completion: %w", err)
	}

	if err := r.Progress.MarkComplete(ctx, studentID, doc.Week); err != nil {
		return nil, fmt.Errorf("flag progress: %w", err)
	}

	return cert, nil
}

// NopRecorder issues a certificate without persisting anything. Preview
// mode uses it so authors can walk a draft card with no database.
type NopRecorder struct{}

func (NopRecorder) Record(_ context.Context, studentID string, doc *lesson.Lesson, score engine.Score) (*Certificate, error) {
	return &Certificate{
		ID:          uuid.NewString(),
		StudentID:   studentID,
		Week:        doc.Week,
		LessonTitle: doc.Title,
		Score:       score,
	}, nil
}
