// Package lesson defines the authored lesson-card document and the
// normalization pass that prepares it for the player engine.
package lesson

// ItemType tags one step within a concept's flow.
type ItemType string

const (
	ItemExplain   ItemType = "explain"
	ItemExample   ItemType = "example"
	ItemMistake   ItemType = "mistake" // common-mistake callout ("nonexample" in old cards)
	ItemNote      ItemType = "note"
	ItemDetail    ItemType = "detail"
	ItemVideo     ItemType = "video"
	ItemImage     ItemType = "image"
	ItemMCQ       ItemType = "mcq"
	ItemInput     ItemType = "input"
	ItemOrdering  ItemType = "ordering"
	ItemMatch     ItemType = "match"
	ItemFillBlank ItemType = "fillblank"

	// itemLegacyQuestion marks old cards where the question type was
	// inferred from shape. Rewritten by Normalize.
	itemLegacyQuestion ItemType = "question"
)

// IsQuestion reports whether the item type carries a question.
func (t ItemType) IsQuestion() bool {
	switch t {
	case ItemMCQ, ItemInput, ItemOrdering, ItemMatch, ItemFillBlank, itemLegacyQuestion:
		return true
	}
	return false
}

// IsMedia reports whether the item type carries a URL instead of text.
func (t ItemType) IsMedia() bool {
	return t == ItemVideo || t == ItemImage
}

// QuestionType tags the interaction shape of a question.
type QuestionType string

const (
	QuestionMCQ       QuestionType = "mcq"
	QuestionInput     QuestionType = "input"
	QuestionOrdering  QuestionType = "ordering"
	QuestionMatch     QuestionType = "match"
	QuestionFillBlank QuestionType = "fillblank"
)

// Validation holds per-question checking options.
type Validation struct {
	// NumericOnly forces the numeric comparison path for input answers.
	NumericOnly bool `json:"numericOnly,omitempty"`

	// FuzzyAutocorrect enables tolerant matching for text answers.
	FuzzyAutocorrect bool `json:"fuzzyAutocorrect,omitempty"`
}

// Pair is one left/right pairing in a match question.
type Pair struct {
	Left  string `json:"left"`
	Right string `json:"right"`
}

// Question is the canonical question shape shared by flow items,
// prerequisites, and assessment questions. Normalize fills defaults
// and assigns the ID.
type Question struct {
	ID   string       `json:"-"`
	Type QuestionType `json:"type"`
	Text string       `json:"text"`

	// IsRequired defaults to true when absent. Use Required().
	IsRequired *bool `json:"isRequired,omitempty"`

	Hints    []string    `json:"hints,omitempty"`
	Solution string      `json:"solution,omitempty"`
	Validate *Validation `json:"validation,omitempty"`

	// Points is the assessment weight. Normalize defaults it to 1.
	Points int `json:"points,omitempty"`

	// mcq
	Choices      []string `json:"choices,omitempty"`
	CorrectIndex int      `json:"correctIndex,omitempty"`

	// input
	Answer      string `json:"answer,omitempty"`
	Placeholder string `json:"placeholder,omitempty"`

	// ordering: the items in correct order.
	Items []string `json:"items,omitempty"`

	// match
	Pairs []Pair `json:"pairs,omitempty"`

	// fillblank: one expected answer per [[blank]] token in Text.
	Blanks []string `json:"blanks,omitempty"`

	// Judge tuning for free-text answers.
	AcceptedPhrases []string `json:"acceptedPhrases,omitempty"`
	AcceptedCore    []string `json:"acceptedCore,omitempty"`
	ForbiddenWords  []string `json:"forbiddenWords,omitempty"`
	MaxEditDistance int      `json:"maxEditDistance,omitempty"`
}

// Required reports whether the question must be answered to advance.
func (q *Question) Required() bool {
	return q.IsRequired == nil || *q.IsRequired
}

// Malformed reports whether the question is missing the fields its
// type needs to be answerable. Schema validation admits the shape;
// this is the per-type content check the renderer consults, so bad
// authored data degrades to an inline error instead of a broken
// interactive control.
func (q *Question) Malformed() bool {
	switch q.Type {
	case QuestionMCQ:
		return len(q.Choices) == 0 || q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Choices)
	case QuestionInput:
		return q.Answer == "" && len(q.AcceptedPhrases) == 0 && len(q.AcceptedCore) == 0
	case QuestionOrdering:
		return len(q.Items) < 2
	case QuestionMatch:
		return len(q.Pairs) == 0
	case QuestionFillBlank:
		return len(q.Blanks) == 0
	}
	return true
}

// FlowItem is one step within a concept: explanatory text, media, or a
// question. Question items carry the canonical Question after
// Normalize; old cards authored question fields flat on the item.
type FlowItem struct {
	ID   string   `json:"-"`
	Type ItemType `json:"type"`

	Text    string   `json:"text,omitempty"`
	Details []string `json:"details,omitempty"`
	URL     string   `json:"url,omitempty"`

	// Question is the canonical question for question-bearing items.
	Question *Question `json:"q,omitempty"`

	// Legacy flat question fields, folded into Question by Normalize.
	IsRequired      *bool       `json:"isRequired,omitempty"`
	Hints           []string    `json:"hints,omitempty"`
	Solution        string      `json:"solution,omitempty"`
	Validate        *Validation `json:"validation,omitempty"`
	Choices         []string    `json:"choices,omitempty"`
	CorrectIndex    int         `json:"correctIndex,omitempty"`
	Answer          string      `json:"answer,omitempty"`
	Placeholder     string      `json:"placeholder,omitempty"`
	Items           []string    `json:"items,omitempty"`
	Pairs           []Pair      `json:"pairs,omitempty"`
	Blanks          []string    `json:"blanks,omitempty"`
	AcceptedPhrases []string    `json:"acceptedPhrases,omitempty"`
	AcceptedCore    []string    `json:"acceptedCore,omitempty"`
	ForbiddenWords  []string    `json:"forbiddenWords,omitempty"`
}

// PrereqKind tags a prerequisite item.
type PrereqKind string

const (
	PrereqText  PrereqKind = "text"
	PrereqInput PrereqKind = "input"
	PrereqMCQ   PrereqKind = "mcq"
)

// PrereqItem is a lightweight pre-lesson check. Input and mcq kinds
// get a canonical Question from Normalize so they validate the same
// way flow questions do.
type PrereqItem struct {
	ID   string     `json:"-"`
	Kind PrereqKind `json:"type"`
	Text string     `json:"text"`

	IsRequired *bool       `json:"isRequired,omitempty"`
	Hints      []string    `json:"hints,omitempty"`
	Answer     string      `json:"answer,omitempty"`
	Validate   *Validation `json:"validation,omitempty"`
	Choices    []string    `json:"choices,omitempty"`
	CorrectIndex int       `json:"correctIndex,omitempty"`

	Question *Question `json:"-"`
}

// Required reports whether the prerequisite must be answered.
func (p *PrereqItem) Required() bool {
	return p.IsRequired == nil || *p.IsRequired
}

// Goal is a display-only learning goal, one per concept.
type Goal struct {
	Text string `json:"text"`
}

// Concept is one learning-goal-sized section with an ordered flow.
// Old cards authored fixed fields instead of a flow; Normalize
// synthesizes the flow from them.
type Concept struct {
	Title string     `json:"title"`
	Flow  []FlowItem `json:"flow,omitempty"`

	// Legacy fixed layout.
	Goal     string    `json:"goal,omitempty"`
	Explain  string    `json:"explain,omitempty"`
	Example  string    `json:"example,omitempty"`
	Example2 string    `json:"example2,omitempty"`
	Mistake  string    `json:"mistake,omitempty"`
	Note     string    `json:"note,omitempty"`
	Question *Question `json:"question,omitempty"`
}

// Assessment is the final graded block of a card.
type Assessment struct {
	Title       string     `json:"title,omitempty"`
	Description string     `json:"description,omitempty"`
	Questions   []Question `json:"questions"`
}

// Lesson is one weekly card: immutable for the session once
// normalized.
type Lesson struct {
	Week          int          `json:"week,omitempty"`
	Title         string       `json:"title"`
	Goals         []Goal       `json:"goals,omitempty"`
	Prerequisites []PrereqItem `json:"prerequisites,omitempty"`
	Concepts      []Concept    `json:"concepts"`
	Assessment    *Assessment  `json:"assessment,omitempty"`
}
