package completion

import (
	"context"
	"testing"

	"github.com/hsaleh/durus/internal/engine"
	"github.com/hsaleh/durus/internal/lesson"
	"github.com/hsaleh/durus/internal/store"
)

func TestStoreRecorder(t *testing.T) {
	s, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	ctx := context.Background()

	progress := s.ProgressRepo()
	if err := progress.Save(ctx, &store.Progress{StudentID: "hala", Week: 4, Stage: "done"}); err != nil {
		t.Fatalf("seed progress: %v", err)
	}

	rec := &StoreRecorder{Events: s.EventRepo(), Progress: progress}
	doc := &lesson.Lesson{Week: 4, Title: "المضاعفات"}

	cert, err := rec.Record(ctx, "hala", doc, engine.Score{Score: 3, Total: 4})
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if cert.ID == "" {
		t.Error("certificate should carry a fresh ID")
	}
	if cert.Week != 4 || cert.LessonTitle != "المضاعفات" {
		t.Errorf("certificate = %+v, want lesson identity copied", cert)
	}

	got, err := s.EventRepo().Completions(ctx, "hala")
	if err != nil {
		t.Fatalf("completions: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("completions = %d, want 1", len(got))
	}
	if got[0].Percent != 75 || got[0].CertificateID != cert.ID {
		t.Errorf("recorded = %+v, want 75%% under the issued certificate", got[0])
	}

	p, err := progress.Load(ctx, "hala", 4)
	if err != nil {
		t.Fatalf("load progress: %v", err)
	}
	if !p.Completed {
		t.Error("progress row should be flagged complete")
	}
}

func TestNopRecorder(t *testing.T) {
	doc := &lesson.Lesson{Week: 1, Title: "تجربة"}
	cert, err := NopRecorder{}.Record(context.Background(), "anon", doc, engine.Score{})
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if cert.ID == "" || cert.Week != 1 {
		t.Errorf("certificate = %+v, want issued without persistence", cert)
	}
}
