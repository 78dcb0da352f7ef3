// Package judge decides accept/reject for free-text Arabic answers
// against a model answer, with tolerance for spelling variation.
package judge

import (
	"strings"

	"github.com/hsaleh/durus/internal/arabic"
)

// DefaultMaxEditDistance is the edit-distance tolerance used when a
// spec does not set one.
const DefaultMaxEditDistance = 2

// Reason explains why an answer was accepted or rejected.
type Reason string

const (
	ReasonForbidden Reason = "forbidden" // contains a forbidden word
	ReasonEmpty     Reason = "empty"     // nothing left after normalization
	ReasonMatch     Reason = "match"     // exact match to the model answer
	ReasonAccepted  Reason = "accepted"  // matched an accepted phrase
	ReasonDistance  Reason = "distance"  // within edit-distance tolerance
	ReasonCore      Reason = "core"      // contains a core keyword
	ReasonWrong     Reason = "wrong"     // none of the above
)

// Spec describes what counts as a correct answer.
type Spec struct {
	// ModelAnswer is the canonical correct answer.
	ModelAnswer string

	// AcceptedPhrases are alternative full answers accepted verbatim.
	AcceptedPhrases []string

	// AcceptedCore are keywords whose presence alone earns acceptance.
	AcceptedCore []string

	// ForbiddenWords reject the answer outright when present,
	// regardless of any other match.
	ForbiddenWords []string

	// MaxEditDistance is the Levenshtein tolerance against the model
	// answer. Zero means DefaultMaxEditDistance; negative disables the
	// distance tier.
	MaxEditDistance int

	// KeepAl disables definite-article stripping during normalization.
	KeepAl bool

	// NoCorrection suppresses attaching the model answer as a
	// correction on non-exact accepts.
	NoCorrection bool
}

// Verdict is the outcome of evaluating one answer.
type Verdict struct {
	OK     bool
	Reason Reason

	// Corrected carries the model answer when the student was accepted
	// with a non-exact match, for display as an autocorrection.
	Corrected string

	// Score is a 0-100 confidence grade for the accepted tier.
	Score int
}

// Evaluate judges studentRaw against spec. Tiers are checked in order
// and short-circuit: forbidden words, emptiness, exact match, accepted
// phrase, edit distance, core keyword. The forbidden check runs first
// so a forbidden word rejects even an otherwise matching answer.
func Evaluate(studentRaw string, spec Spec) Verdict {
	opts := arabic.Options{KeepAl: spec.KeepAl}
	student := arabic.Normalize(studentRaw, opts)
	words := strings.Fields(student)

	for _, fw := range spec.ForbiddenWords {
		nfw := arabic.Normalize(fw, opts)
		if nfw == "" {
			continue
		}
		for _, w := range words {
			if w == nfw {
				return Verdict{Reason: ReasonForbidden}
			}
		}
	}

	if student == "" {
		return Verdict{Reason: ReasonEmpty}
	}

	model := arabic.Normalize(spec.ModelAnswer, opts)
	if student == model {
		return Verdict{OK: true, Reason: ReasonMatch, Score: 100}
	}

	for _, p := range spec.AcceptedPhrases {
		if student == arabic.Normalize(p, opts) {
			return accept(ReasonAccepted, 100, studentRaw, spec)
		}
	}

	maxDist := spec.MaxEditDistance
	if maxDist == 0 {
		maxDist = DefaultMaxEditDistance
	}
	if maxDist > 0 && arabic.Levenshtein(student, model) <= maxDist {
		return accept(ReasonDistance, 90, studentRaw, spec)
	}

	if len(spec.AcceptedCore) > 0 {
		core := make(map[string]bool, len(spec.AcceptedCore))
		for _, c := range spec.AcceptedCore {
			core[arabic.Normalize(c, opts)] = true
		}
		for _, w := range words {
			if core[w] {
				return accept(ReasonCore, 80, studentRaw, spec)
			}
		}
	}

	return Verdict{Reason: ReasonWrong}
}

// accept builds a positive verdict, attaching the model answer as a
// correction when it differs from the student's input.
func accept(reason Reason, score int, studentRaw string, spec Spec) Verdict {
	v := Verdict{OK: true, Reason: reason, Score: score}
	if !spec.NoCorrection && strings.TrimSpace(studentRaw) != spec.ModelAnswer {
		v.Corrected = spec.ModelAnswer
	}
	return v
}
