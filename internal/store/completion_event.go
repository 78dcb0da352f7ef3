package store

import (
	"context"
	"fmt"

	"github.com/hsaleh/durus/ent"
	"github.com/hsaleh/durus/ent/completionevent"
)

func (r *eventRepo) AppendCompletion(ctx context.Context, data CompletionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.CompletionEvent.Create().
		SetSequence(seqNum).
		SetStudentID(data.StudentID).
		SetWeek(data.Week).
		SetLessonTitle(data.LessonTitle).
		SetScore(data.Score).
		SetTotal(data.Total).
		SetPercent(data.Percent).
		SetCertificateID(data.CertificateID).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save completion event: %w", err)
	}
	return nil
}

func (r *eventRepo) Completions(ctx context.Context, studentID string) ([]Completion, error) {
	rows, err := r.client.CompletionEvent.Query().
		Where(completionevent.StudentID(studentID)).
		Order(ent.Desc(completionevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query completions: %w", err)
	}

	out := make([]Completion, 0, len(rows))
	for _, row := range rows {
		out = append(out, Completion{
			Week:          row.Week,
			LessonTitle:   row.LessonTitle,
			Score:         row.Score,
			Total:         row.Total,
			Percent:       row.Percent,
			CertificateID: row.CertificateID,
			Timestamp:     row.Timestamp,
		})
	}
	return out, nil
}
