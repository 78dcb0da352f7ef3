package lesson

import "testing"

func boolPtr(b bool) *bool { return &b }

func TestNormalize_LegacyFlowSynthesis(t *testing.T) {
	l := &Lesson{
		Title: "درس",
		Concepts: []Concept{{
			Title:    "الجمع",
			Goal:     "نتعلم الجمع",
			Explain:  "الجمع هو ضم الأعداد",
			Example:  "١ + ١ = ٢",
			Example2: "٢ + ٣ = ٥",
			Mistake:  "لا تنس حمل العشرات",
			Note:     "تذكر الترتيب",
			Question: &Question{Text: "كم ٢ + ٢؟", Answer: "٤"},
		}},
	}
	Normalize(l)

	flow := l.Concepts[0].Flow
	wantTypes := []ItemType{
		ItemExplain, ItemExplain, ItemExample, ItemExample,
		ItemMistake, ItemNote, ItemInput,
	}
	if len(flow) != len(wantTypes) {
		t.Fatalf("flow length = %d, want %d", len(flow), len(wantTypes))
	}
	for i, want := range wantTypes {
		if flow[i].Type != want {
			t.Errorf("flow[%d].Type = %q, want %q", i, flow[i].Type, want)
		}
	}

	// The legacy question got a canonical shape with an inferred type.
	q := flow[6].Question
	if q == nil {
		t.Fatal("legacy question not canonicalized")
	}
	if q.Type != QuestionInput {
		t.Errorf("inferred type = %q, want input", q.Type)
	}
	if q.Points != 1 {
		t.Errorf("points = %d, want default 1", q.Points)
	}
}

func TestNormalize_LegacyFlowSkipsAbsentFields(t *testing.T) {
	l := &Lesson{
		Title:    "درس",
		Concepts: []Concept{{Title: "مفهوم", Explain: "شرح"}},
	}
	Normalize(l)
	if n := len(l.Concepts[0].Flow); n != 1 {
		t.Fatalf("flow length = %d, want 1", n)
	}
}

func TestNormalize_AuthoredFlowKeptByReference(t *testing.T) {
	l := &Lesson{
		Title: "درس",
		Concepts: []Concept{{
			Title: "مفهوم",
			Flow: []FlowItem{
				{Type: ItemExplain, Text: "شرح"},
				{Type: itemLegacyQuestion, Choices: []string{"٢", "٣", "٤"}, CorrectIndex: 1},
			},
		}},
	}
	Normalize(l)

	flow := l.Concepts[0].Flow
	if flow[1].Type != ItemMCQ {
		t.Errorf("shape-inferred type = %q, want mcq", flow[1].Type)
	}
	if flow[1].Question == nil || flow[1].Question.Type != QuestionMCQ {
		t.Fatal("flat mcq fields not folded into canonical question")
	}

	// Stability: the canonical question is the same object on repeat
	// access, so runtime state keyed by its ID survives re-render.
	q1 := l.Concepts[0].Flow[1].Question
	q2 := l.Concepts[0].Flow[1].Question
	if q1 != q2 {
		t.Error("canonical question is not a stable reference")
	}
}

func TestNormalize_IDAssignment(t *testing.T) {
	l := &Lesson{
		Title:         "درس",
		Prerequisites: []PrereqItem{{Kind: PrereqInput, Text: "س", Answer: "ج"}},
		Concepts: []Concept{
			{Flow: []FlowItem{{Type: ItemExplain, Text: "أ"}, {Type: ItemExplain, Text: "ب"}}},
			{Flow: []FlowItem{{Type: ItemExplain, Text: "ج"}}},
		},
		Assessment: &Assessment{Questions: []Question{{Text: "س١", Answer: "ج١"}}},
	}
	Normalize(l)

	if got := l.Prerequisites[0].ID; got != "p0" {
		t.Errorf("prereq ID = %q, want p0", got)
	}
	if got := l.Concepts[1].Flow[0].ID; got != "c1.i0" {
		t.Errorf("item ID = %q, want c1.i0", got)
	}
	if got := l.Assessment.Questions[0].ID; got != "a0" {
		t.Errorf("assessment ID = %q, want a0", got)
	}
}

func TestNormalize_PrereqQuestion(t *testing.T) {
	l := &Lesson{
		Title: "درس",
		Prerequisites: []PrereqItem{
			{Kind: PrereqText, Text: "مرحبا"},
			{Kind: PrereqMCQ, Text: "اختر", Choices: []string{"أ", "ب"}, CorrectIndex: 0},
			{Kind: PrereqInput, Text: "اكتب", Answer: "قلم", IsRequired: boolPtr(false)},
		},
		Concepts: []Concept{{Flow: []FlowItem{{Type: ItemExplain, Text: "ش"}}}},
	}
	Normalize(l)

	if l.Prerequisites[0].Question != nil {
		t.Error("text prereq should have no question")
	}
	if q := l.Prerequisites[1].Question; q == nil || q.Type != QuestionMCQ {
		t.Error("mcq prereq not canonicalized")
	}
	p := &l.Prerequisites[2]
	if p.Question == nil || p.Question.Type != QuestionInput {
		t.Fatal("input prereq not canonicalized")
	}
	if p.Required() {
		t.Error("isRequired:false not honored")
	}
}

func TestNormalize_GoalPadding(t *testing.T) {
	l := &Lesson{
		Title: "درس",
		Goals: []Goal{{Text: "هدف أول"}},
		Concepts: []Concept{
			{Title: "أول", Flow: []FlowItem{{Type: ItemExplain, Text: "ش"}}},
			{Title: "ثان", Flow: []FlowItem{{Type: ItemExplain, Text: "ش"}}},
			{Title: "", Flow: []FlowItem{{Type: ItemExplain, Text: "ش"}}},
		},
	}
	Normalize(l)

	if len(l.Goals) != 3 {
		t.Fatalf("goals length = %d, want 3", len(l.Goals))
	}
	if l.Goals[0].Text != "هدف أول" {
		t.Error("authored goal overwritten")
	}
	if l.Goals[1].Text != "ثان" {
		t.Errorf("goal[1] = %q, want concept title", l.Goals[1].Text)
	}
	if l.Goals[2].Text == "" {
		t.Error("goal[2] should fall back to an ordinal placeholder")
	}
}

func TestNormalize_HintCap(t *testing.T) {
	l := &Lesson{
		Title: "درس",
		Concepts: []Concept{{Flow: []FlowItem{{
			Type:    ItemInput,
			Text:    "س",
			Answer:  "ج",
			Hints:   []string{"١", "٢", "٣", "٤"},
		}}}},
	}
	Normalize(l)
	if n := len(l.Concepts[0].Flow[0].Question.Hints); n != 3 {
		t.Errorf("hints = %d, want capped at 3", n)
	}
}

func TestNormalize_NonexampleAlias(t *testing.T) {
	l := &Lesson{
		Title:    "درس",
		Concepts: []Concept{{Flow: []FlowItem{{Type: "nonexample", Text: "خطأ شائع"}}}},
	}
	Normalize(l)
	if got := l.Concepts[0].Flow[0].Type; got != ItemMistake {
		t.Errorf("type = %q, want mistake", got)
	}
}

func TestQuestionMalformed(t *testing.T) {
	tests := []struct {
		name string
		q    Question
		want bool
	}{
		{"mcq ok", Question{Type: QuestionMCQ, Choices: []string{"أ", "ب"}, CorrectIndex: 1}, false},
		{"mcq no choices", Question{Type: QuestionMCQ}, true},
		{"mcq index out of range", Question{Type: QuestionMCQ, Choices: []string{"أ"}, CorrectIndex: 3}, true},
		{"input ok", Question{Type: QuestionInput, Answer: "ج"}, false},
		{"input accepted phrases only", Question{Type: QuestionInput, AcceptedPhrases: []string{"ج"}}, false},
		{"input no reference answer", Question{Type: QuestionInput}, true},
		{"ordering ok", Question{Type: QuestionOrdering, Items: []string{"أ", "ب"}}, false},
		{"ordering single item", Question{Type: QuestionOrdering, Items: []string{"أ"}}, true},
		{"match ok", Question{Type: QuestionMatch, Pairs: []Pair{{Left: "س", Right: "ج"}}}, false},
		{"match no pairs", Question{Type: QuestionMatch}, true},
		{"fillblank ok", Question{Type: QuestionFillBlank, Blanks: []string{"ج"}}, false},
		{"fillblank no blanks", Question{Type: QuestionFillBlank}, true},
		{"unknown type", Question{Type: "riddle"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.q.Malformed(); got != tt.want {
				t.Errorf("Malformed() = %v, want %v", got, tt.want)
			}
		})
	}
}
