// Package engine drives a lesson card through its pedagogical stages:
// goals, prerequisite check, per-concept flow, and final assessment.
package engine

// Stage is the coarse position within a lesson.
type Stage int

const (
	StageGoals Stage = iota
	StagePrereq
	StageConcept
	StageAssessment
	StageDone
)

// String returns the persistence tag for the stage.
func (s Stage) String() string {
	switch s {
	case StageGoals:
		return "goals"
	case StagePrereq:
		return "prereq"
	case StageConcept:
		return "concept"
	case StageAssessment:
		return "assessment"
	case StageDone:
		return "done"
	}
	return "unknown"
}

// StageFromString parses a persistence tag back to a Stage. Unknown
// tags map to StageGoals so corrupt saves restart rather than crash.
func StageFromString(s string) Stage {
	switch s {
	case "prereq":
		return StagePrereq
	case "concept":
		return StageConcept
	case "assessment":
		return StageAssessment
	case "done":
		return StageDone
	default:
		return StageGoals
	}
}

// AssessmentState tracks position and outcome within the assessment.
type AssessmentState struct {
	CurrentIndex int
	Attempts     int
	Score        int
	Total        int
	Completed    bool
}

// State is the full lesson position. It is a small value type:
// transition functions take a State and return the next one, so each
// transition can be tested in isolation.
type State struct {
	Stage        Stage
	ConceptIndex int
	ItemIndex    int
	PrereqIndex  int
	Assessment   AssessmentState
}

// Initial returns the starting position of a fresh attempt.
func Initial() State {
	return State{Stage: StageGoals}
}
