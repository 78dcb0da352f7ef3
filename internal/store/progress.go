package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hsaleh/durus/ent"
	"github.com/hsaleh/durus/ent/progress"
)

// progressRepo implements ProgressRepo using the ent client.
type progressRepo struct {
	client *ent.Client
}

func (r *progressRepo) Save(ctx context.Context, p *Progress) error {
	assessMap, err := assessmentToMap(p.Assessment)
	if err != nil {
		return fmt.Errorf("marshal assessment: %w", err)
	}

	existing, err := r.client.Progress.Query().
		Where(progress.StudentID(p.StudentID), progress.Week(p.Week)).
		First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query progress: %w", err)
	}

	if existing == nil {
		_, err = r.client.Progress.Create().
			SetStudentID(p.StudentID).
			SetWeek(p.Week).
			SetStage(p.Stage).
			SetPrereqIndex(p.PrereqIndex).
			SetConceptIndex(p.ConceptIndex).
			SetItemIndex(p.ItemIndex).
			SetAssessment(assessMap).
			SetCompleted(p.Completed).
			Save(ctx)
	} else {
		_, err = existing.Update().
			SetStage(p.Stage).
			SetPrereqIndex(p.PrereqIndex).
			SetConceptIndex(p.ConceptIndex).
			SetItemIndex(p.ItemIndex).
			SetAssessment(assessMap).
			SetCompleted(p.Completed).
			Save(ctx)
	}
	if err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

func (r *progressRepo) Load(ctx context.Context, studentID string, week int) (*Progress, error) {
	row, err := r.client.Progress.Query().
		Where(progress.StudentID(studentID), progress.Week(week)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("load progress: %w", err)
	}
	return entProgressToProgress(row)
}

func (r *progressRepo) List(ctx context.Context, studentID string) ([]*Progress, error) {
	rows, err := r.client.Progress.Query().
		Where(progress.StudentID(studentID)).
		Order(ent.Desc(progress.FieldUpdatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}

	out := make([]*Progress, 0, len(rows))
	for _, row := range rows {
		p, err := entProgressToProgress(row)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *progressRepo) MarkComplete(ctx context.Context, studentID string, week int) error {
	n, err := r.client.Progress.Update().
		Where(progress.StudentID(studentID), progress.Week(week)).
		SetCompleted(true).
		SetStage("done").
		Save(ctx)
	if err != nil {
		return fmt.Errorf("mark complete: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("mark complete: no progress for student %q week %d", studentID, week)
	}
	return nil
}

func (r *progressRepo) Reset(ctx context.Context, studentID string, week int) error {
	_, err := r.client.Progress.Delete().
		Where(progress.StudentID(studentID), progress.Week(week)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("reset progress: %w", err)
	}
	return nil
}

// assessmentToMap converts AssessmentProgress to map[string]any for ent
// JSON storage.
func assessmentToMap(a AssessmentProgress) (map[string]any, error) {
	b, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// entProgressToProgress converts an ent Progress row to a store Progress.
func entProgressToProgress(row *ent.Progress) (*Progress, error) {
	var assess AssessmentProgress
	if row.Assessment != nil {
		b, err := json.Marshal(row.Assessment)
		if err != nil {
			return nil, fmt.Errorf("marshal ent assessment: %w", err)
		}
		if err := json.Unmarshal(b, &assess); err != nil {
			return nil, fmt.Errorf("unmarshal assessment: %w", err)
		}
	}
	return &Progress{
		StudentID:    row.StudentID,
		Week:         row.Week,
		Stage:        row.Stage,
		PrereqIndex:  row.PrereqIndex,
		ConceptIndex: row.ConceptIndex,
		ItemIndex:    row.ItemIndex,
		Assessment:   assess,
		Completed:    row.Completed,
		UpdatedAt:    row.UpdatedAt,
	}, nil
}
