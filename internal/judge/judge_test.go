package judge

import "testing"

func TestEvaluate_ExactMatch(t *testing.T) {
	v := Evaluate("الرياض", Spec{ModelAnswer: "الرياض"})
	if !v.OK || v.Reason != ReasonMatch || v.Score != 100 {
		t.Fatalf("verdict = %+v, want exact match", v)
	}
	if v.Corrected != "" {
		t.Errorf("exact match should carry no correction, got %q", v.Corrected)
	}
}

func TestEvaluate_MatchIdempotence(t *testing.T) {
	// Any non-empty answer matches itself exactly.
	for _, s := range []string{"قلم", "مَدْرَسَة", "٢٥", "hello"} {
		v := Evaluate(s, Spec{ModelAnswer: s})
		if !v.OK || v.Reason != ReasonMatch {
			t.Errorf("Evaluate(%q, model=%q) = %+v, want match", s, s, v)
		}
	}
}

func TestEvaluate_NormalizedVariantsMatch(t *testing.T) {
	// Missing article and teh marbuta variant still match exactly
	// after normalization.
	v := Evaluate("رياض", Spec{ModelAnswer: "الرياض"})
	if !v.OK || v.Reason != ReasonMatch {
		t.Fatalf("verdict = %+v, want match via normalization", v)
	}
}

func TestEvaluate_ForbiddenPrecedence(t *testing.T) {
	// Forbidden word rejects even when the answer also matches.
	v := Evaluate("الرياض", Spec{
		ModelAnswer:    "الرياض",
		ForbiddenWords: []string{"رياض"},
	})
	if v.OK || v.Reason != ReasonForbidden {
		t.Fatalf("verdict = %+v, want forbidden rejection", v)
	}
	if v.Score != 0 {
		t.Errorf("score = %d, want 0", v.Score)
	}
}

func TestEvaluate_ForbiddenBeforeEmpty(t *testing.T) {
	// A forbidden-only answer reports forbidden, not empty... but an
	// answer that normalizes to nothing with no forbidden hit is empty.
	v := Evaluate("   ؟ ", Spec{ModelAnswer: "قلم"})
	if v.OK || v.Reason != ReasonEmpty {
		t.Fatalf("verdict = %+v, want empty rejection", v)
	}
}

func TestEvaluate_AcceptedPhrase(t *testing.T) {
	v := Evaluate("مدينة الرياض", Spec{
		ModelAnswer:     "الرياض",
		AcceptedPhrases: []string{"مدينة الرياض"},
	})
	if !v.OK || v.Reason != ReasonAccepted {
		t.Fatalf("verdict = %+v, want accepted phrase", v)
	}
	if v.Corrected != "الرياض" {
		t.Errorf("corrected = %q, want model answer", v.Corrected)
	}
}

func TestEvaluate_DistanceBoundary(t *testing.T) {
	// "mosque" vs two-edit misspelling: accepted at distance 2,
	// rejected at distance 3.
	spec := Spec{ModelAnswer: "مسجد", MaxEditDistance: 2}

	two := Evaluate("مسجدان", spec) // two insertions
	if !two.OK || two.Reason != ReasonDistance || two.Score != 90 {
		t.Fatalf("2-edit verdict = %+v, want distance accept", two)
	}

	three := Evaluate("مساجدان", spec) // three edits
	if three.OK {
		t.Fatalf("3-edit verdict = %+v, want rejection", three)
	}
	if three.Reason != ReasonWrong {
		t.Errorf("reason = %q, want wrong", three.Reason)
	}
}

func TestEvaluate_DistanceDisabled(t *testing.T) {
	v := Evaluate("قلب", Spec{ModelAnswer: "قلم", MaxEditDistance: -1})
	if v.OK {
		t.Fatalf("verdict = %+v, distance tier should be disabled", v)
	}
}

func TestEvaluate_CoreKeyword(t *testing.T) {
	v := Evaluate("اعتقد انها عاصمة المملكه", Spec{
		ModelAnswer:  "الرياض هي العاصمة",
		AcceptedCore: []string{"عاصمة"},
	})
	if !v.OK || v.Reason != ReasonCore || v.Score != 80 {
		t.Fatalf("verdict = %+v, want core accept", v)
	}
}

func TestEvaluate_Wrong(t *testing.T) {
	v := Evaluate("جدة تماما", Spec{ModelAnswer: "الرياض"})
	if v.OK || v.Reason != ReasonWrong || v.Score != 0 {
		t.Fatalf("verdict = %+v, want wrong", v)
	}
}

func TestEvaluate_NoCorrection(t *testing.T) {
	v := Evaluate("مدينة الرياض", Spec{
		ModelAnswer:     "الرياض",
		AcceptedPhrases: []string{"مدينة الرياض"},
		NoCorrection:    true,
	})
	if !v.OK {
		t.Fatalf("verdict = %+v, want accept", v)
	}
	if v.Corrected != "" {
		t.Errorf("corrected = %q, want suppressed", v.Corrected)
	}
}

func TestEvaluate_ArabicDigits(t *testing.T) {
	v := Evaluate("٢٥", Spec{ModelAnswer: "25"})
	if !v.OK || v.Reason != ReasonMatch {
		t.Fatalf("verdict = %+v, want digit-folded match", v)
	}
}
