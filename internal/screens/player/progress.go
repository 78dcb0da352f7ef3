package player

import (
	"hash/fnv"
	"math/rand"

	"github.com/hsaleh/durus/internal/engine"
	"github.com/hsaleh/durus/internal/store"
)

// progressFromState converts the engine position to a progress row.
func progressFromState(studentID string, week int, st engine.State) *store.Progress {
	return &store.Progress{
		StudentID:    studentID,
		Week:         week,
		Stage:        st.Stage.String(),
		PrereqIndex:  st.PrereqIndex,
		ConceptIndex: st.ConceptIndex,
		ItemIndex:    st.ItemIndex,
		Assessment: store.AssessmentProgress{
			CurrentIndex: st.Assessment.CurrentIndex,
			Attempts:     st.Assessment.Attempts,
			Score:        st.Assessment.Score,
			Total:        st.Assessment.Total,
			Completed:    st.Assessment.Completed,
		},
		Completed: st.Stage == engine.StageDone,
	}
}

// stateFromProgress converts a saved progress row back to an engine
// position. The caller clamps it against the current card content.
func stateFromProgress(p *store.Progress) engine.State {
	return engine.State{
		Stage:        engine.StageFromString(p.Stage),
		PrereqIndex:  p.PrereqIndex,
		ConceptIndex: p.ConceptIndex,
		ItemIndex:    p.ItemIndex,
		Assessment: engine.AssessmentState{
			CurrentIndex: p.Assessment.CurrentIndex,
			Attempts:     p.Assessment.Attempts,
			Score:        p.Assessment.Score,
			Total:        p.Assessment.Total,
			Completed:    p.Assessment.Completed,
		},
	}
}

// shuffledCopy returns items in a presentation order derived from the
// question ID, so the arrangement is stable across re-renders and
// resumes but does not give away the answer. A shuffle that lands on
// the original order is rotated by one.
func shuffledCopy(items []string, id string) []string {
	out := make([]string, len(items))
	copy(out, items)
	if len(out) < 2 {
		return out
	}

	h := fnv.New64a()
	h.Write([]byte(id))
	rng := rand.New(rand.NewSource(int64(h.Sum64())))
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})

	same := true
	for i := range out {
		if out[i] != items[i] {
			same = false
			break
		}
	}
	if same {
		out = append(out[1:], out[0])
	}
	return out
}
