package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendAnswer(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetStudentID(data.StudentID).
		SetWeek(data.Week).
		SetQuestionID(data.QuestionID).
		SetStage(data.Stage).
		SetQuestionType(data.QuestionType).
		SetResponse(data.Response).
		SetCorrect(data.Correct).
		SetCorrected(data.Corrected).
		SetAttempt(data.Attempt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}
