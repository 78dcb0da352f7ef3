package engine

import "github.com/hsaleh/durus/internal/lesson"

// Advance returns the position after one successful "continue" from
// st. It never skips: from any reachable position it moves exactly one
// step forward in lesson order, crossing stage boundaries as needed.
func Advance(st State, l *lesson.Lesson) State {
	switch st.Stage {
	case StageGoals:
		st.Stage = StagePrereq
		st.PrereqIndex = 0

	case StagePrereq:
		if st.PrereqIndex+1 < len(l.Prerequisites) {
			st.PrereqIndex++
		} else {
			st.Stage = StageConcept
			st.ConceptIndex = 0
			st.ItemIndex = 0
			if !hasAnyFlow(l) {
				return enterPostConcepts(st, l)
			}
		}

	case StageConcept:
		flow := conceptFlow(l, st.ConceptIndex)
		switch {
		case st.ItemIndex+1 < len(flow):
			st.ItemIndex++
		case st.ConceptIndex+1 < len(l.Concepts):
			st.ConceptIndex++
			st.ItemIndex = 0
		default:
			return enterPostConcepts(st, l)
		}

	case StageAssessment:
		if l.Assessment != nil && st.Assessment.CurrentIndex+1 < len(l.Assessment.Questions) {
			st.Assessment.CurrentIndex++
		} else {
			st.Assessment.Completed = true
			st.Stage = StageDone
		}

	case StageDone:
		// Terminal.
	}
	return st
}

// Back steps one stage backwards: goals has no back target, concept
// returns to the last prerequisite, and assessment jumps to the last
// item of the last concept.
func Back(st State, l *lesson.Lesson) State {
	switch st.Stage {
	case StagePrereq:
		st.Stage = StageGoals
	case StageConcept:
		st.Stage = StagePrereq
		if n := len(l.Prerequisites); n > 0 {
			st.PrereqIndex = n - 1
		} else {
			st.PrereqIndex = 0
		}
	case StageAssessment:
		st.Stage = StageConcept
		if n := len(l.Concepts); n > 0 {
			st.ConceptIndex = n - 1
			if fl := len(conceptFlow(l, st.ConceptIndex)); fl > 0 {
				st.ItemIndex = fl - 1
			} else {
				st.ItemIndex = 0
			}
		} else {
			st.ConceptIndex = 0
			st.ItemIndex = 0
		}
	}
	return st
}

// Clamp bounds every index of st into the valid range for l. Saved
// positions can point past the end when authored content shrank
// between sessions; clamping resumes at the nearest valid item instead
// of failing.
func Clamp(st State, l *lesson.Lesson) State {
	st.PrereqIndex = clampIndex(st.PrereqIndex, len(l.Prerequisites))

	st.ConceptIndex = clampIndex(st.ConceptIndex, len(l.Concepts))
	st.ItemIndex = clampIndex(st.ItemIndex, len(conceptFlow(l, st.ConceptIndex)))

	if st.Stage == StageAssessment {
		if l.Assessment == nil || len(l.Assessment.Questions) == 0 {
			st.Stage = StageConcept
		} else {
			st.Assessment.CurrentIndex = clampIndex(st.Assessment.CurrentIndex, len(l.Assessment.Questions))
		}
	}
	return st
}

// Less orders two positions in lesson flow order:
// goals < prereq < concept(0,0) < ... < assessment < done.
func Less(a, b State) bool {
	if a.Stage != b.Stage {
		return a.Stage < b.Stage
	}
	switch a.Stage {
	case StagePrereq:
		return a.PrereqIndex < b.PrereqIndex
	case StageConcept:
		if a.ConceptIndex != b.ConceptIndex {
			return a.ConceptIndex < b.ConceptIndex
		}
		return a.ItemIndex < b.ItemIndex
	case StageAssessment:
		return a.Assessment.CurrentIndex < b.Assessment.CurrentIndex
	}
	return false
}

// enterPostConcepts branches into the assessment when one is authored,
// otherwise straight to the terminal stage.
func enterPostConcepts(st State, l *lesson.Lesson) State {
	if l.Assessment != nil && len(l.Assessment.Questions) > 0 {
		st.Stage = StageAssessment
		st.Assessment.CurrentIndex = 0
	} else {
		st.Stage = StageDone
	}
	return st
}

// conceptFlow returns the flow of concept ci, or nil out of range.
func conceptFlow(l *lesson.Lesson, ci int) []lesson.FlowItem {
	if ci < 0 || ci >= len(l.Concepts) {
		return nil
	}
	return l.Concepts[ci].Flow
}

// hasAnyFlow reports whether any concept has at least one item.
func hasAnyFlow(l *lesson.Lesson) bool {
	for i := range l.Concepts {
		if len(l.Concepts[i].Flow) > 0 {
			return true
		}
	}
	return false
}

// clampIndex bounds i into [0, n). Empty ranges clamp to 0.
func clampIndex(i, n int) int {
	if i < 0 || n == 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
