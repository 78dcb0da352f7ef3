package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendHint(ctx context.Context, data HintEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.HintEvent.Create().
		SetSequence(seqNum).
		SetStudentID(data.StudentID).
		SetWeek(data.Week).
		SetQuestionID(data.QuestionID).
		SetAttempt(data.Attempt).
		SetHintText(data.HintText).
		SetRevealedSolution(data.RevealedSolution).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save hint event: %w", err)
	}
	return nil
}
