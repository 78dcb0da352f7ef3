package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestProgressSaveAndLoad(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	// No progress yet.
	p, err := repo.Load(ctx, "hala", 3)
	if err != nil {
		t.Fatalf("load (empty): %v", err)
	}
	if p != nil {
		t.Fatal("expected nil progress when none exists")
	}

	err = repo.Save(ctx, &Progress{
		StudentID:    "hala",
		Week:         3,
		Stage:        "concept",
		ConceptIndex: 1,
		ItemIndex:    2,
		PrereqIndex:  1,
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	p, err = repo.Load(ctx, "hala", 3)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if p == nil {
		t.Fatal("expected non-nil progress")
	}
	if p.Stage != "concept" || p.ConceptIndex != 1 || p.ItemIndex != 2 {
		t.Errorf("loaded = %+v, want concept(1,2)", p)
	}
}

func TestProgressSaveUpserts(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	base := &Progress{StudentID: "hala", Week: 1, Stage: "goals"}
	if err := repo.Save(ctx, base); err != nil {
		t.Fatalf("first save: %v", err)
	}

	base.Stage = "assessment"
	base.Assessment = AssessmentProgress{CurrentIndex: 1, Score: 2, Total: 3}
	if err := repo.Save(ctx, base); err != nil {
		t.Fatalf("second save: %v", err)
	}

	count, err := s.Client().Progress.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("rows = %d, want a single upserted row", count)
	}

	p, err := repo.Load(ctx, "hala", 1)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if p.Stage != "assessment" || p.Assessment.Score != 2 || p.Assessment.Total != 3 {
		t.Errorf("loaded = %+v, want updated assessment state", p)
	}
}

func TestProgressPerStudentIsolation(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	if err := repo.Save(ctx, &Progress{StudentID: "hala", Week: 1, Stage: "concept"}); err != nil {
		t.Fatalf("save hala: %v", err)
	}
	if err := repo.Save(ctx, &Progress{StudentID: "omar", Week: 1, Stage: "goals"}); err != nil {
		t.Fatalf("save omar: %v", err)
	}

	p, err := repo.Load(ctx, "omar", 1)
	if err != nil {
		t.Fatalf("load omar: %v", err)
	}
	if p.Stage != "goals" {
		t.Errorf("omar stage = %q, want goals untouched by hala's save", p.Stage)
	}
}

func TestProgressMarkCompleteAndReset(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	if err := repo.MarkComplete(ctx, "hala", 2); err == nil {
		t.Error("mark complete without a row should fail")
	}

	if err := repo.Save(ctx, &Progress{StudentID: "hala", Week: 2, Stage: "assessment"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.MarkComplete(ctx, "hala", 2); err != nil {
		t.Fatalf("mark complete: %v", err)
	}

	p, err := repo.Load(ctx, "hala", 2)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !p.Completed || p.Stage != "done" {
		t.Errorf("loaded = %+v, want completed/done", p)
	}

	if err := repo.Reset(ctx, "hala", 2); err != nil {
		t.Fatalf("reset: %v", err)
	}
	p, err = repo.Load(ctx, "hala", 2)
	if err != nil {
		t.Fatalf("load after reset: %v", err)
	}
	if p != nil {
		t.Error("reset should delete the row")
	}

	// Resetting an absent row is a no-op.
	if err := repo.Reset(ctx, "hala", 2); err != nil {
		t.Errorf("second reset: %v", err)
	}
}

func TestProgressList(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	for week := 1; week <= 3; week++ {
		if err := repo.Save(ctx, &Progress{StudentID: "hala", Week: week, Stage: "concept"}); err != nil {
			t.Fatalf("save week %d: %v", week, err)
		}
	}
	if err := repo.Save(ctx, &Progress{StudentID: "omar", Week: 1, Stage: "goals"}); err != nil {
		t.Fatalf("save omar: %v", err)
	}

	rows, err := repo.List(ctx, "hala")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want hala's 3 weeks only", len(rows))
	}
}

func TestEventAppendAndSequence(t *testing.T) {
	s := openTestStore(t)
	events := s.EventRepo()
	ctx := context.Background()

	err := events.AppendAnswer(ctx, AnswerEventData{
		StudentID:    "hala",
		Week:         1,
		QuestionID:   "c0.i1",
		Stage:        "concept",
		QuestionType: "input",
		Response:     "٢٥",
		Correct:      true,
		Attempt:      0,
	})
	if err != nil {
		t.Fatalf("append answer: %v", err)
	}

	err = events.AppendHint(ctx, HintEventData{
		StudentID:  "hala",
		Week:       1,
		QuestionID: "c0.i1",
		Attempt:    1,
		HintText:   "راجع الشرح",
	})
	if err != nil {
		t.Fatalf("append hint: %v", err)
	}

	answers, err := s.Client().AnswerEvent.Query().All(ctx)
	if err != nil {
		t.Fatalf("query answers: %v", err)
	}
	hints, err := s.Client().HintEvent.Query().All(ctx)
	if err != nil {
		t.Fatalf("query hints: %v", err)
	}
	if len(answers) != 1 || len(hints) != 1 {
		t.Fatalf("events = %d answers, %d hints, want 1 each", len(answers), len(hints))
	}

	// The shared counter orders events across tables.
	if answers[0].Sequence >= hints[0].Sequence {
		t.Errorf("sequence %d then %d, want the answer strictly first",
			answers[0].Sequence, hints[0].Sequence)
	}
}

func TestCompletions(t *testing.T) {
	s := openTestStore(t)
	events := s.EventRepo()
	ctx := context.Background()

	for week := 1; week <= 2; week++ {
		err := events.AppendCompletion(ctx, CompletionEventData{
			StudentID:     "hala",
			Week:          week,
			LessonTitle:   "درس",
			Score:         week,
			Total:         2,
			Percent:       week * 50,
			CertificateID: string(rune('a' + week)),
		})
		if err != nil {
			t.Fatalf("append completion %d: %v", week, err)
		}
	}

	got, err := events.Completions(ctx, "hala")
	if err != nil {
		t.Fatalf("completions: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("completions = %d, want 2", len(got))
	}
	if got[0].Week != 2 {
		t.Errorf("first = week %d, want newest first", got[0].Week)
	}

	other, err := events.Completions(ctx, "omar")
	if err != nil {
		t.Fatalf("completions (other): %v", err)
	}
	if len(other) != 0 {
		t.Error("other students' completions should not leak")
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"answer_events", "hint_events", "completion_events"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s: %v", table, err)
		}
	}
}
