package lesson

import (
	"fmt"
	"strings"
)

// Normalize prepares a freshly parsed lesson for the player: it
// synthesizes flows for legacy concepts, canonicalizes every question,
// pads goals to match concepts, and assigns stable item IDs. It runs
// exactly once, at load time; afterwards the document is treated as
// immutable and shape inference never happens again.
func Normalize(l *Lesson) {
	for ci := range l.Concepts {
		c := &l.Concepts[ci]
		if len(c.Flow) == 0 {
			c.Flow = legacyFlow(c)
		}
		for ii := range c.Flow {
			item := &c.Flow[ii]
			item.ID = fmt.Sprintf("c%d.i%d", ci, ii)
			if item.Type == "nonexample" {
				item.Type = ItemMistake
			}
			if item.Type.IsQuestion() {
				canonicalizeItem(item)
			}
		}
	}

	for i := range l.Prerequisites {
		p := &l.Prerequisites[i]
		p.ID = fmt.Sprintf("p%d", i)
		if p.Kind == "" {
			p.Kind = PrereqText
		}
		canonicalizePrereq(p)
	}

	if l.Assessment != nil {
		for i := range l.Assessment.Questions {
			q := &l.Assessment.Questions[i]
			q.ID = fmt.Sprintf("a%d", i)
			canonicalizeQuestion(q)
		}
	}

	padGoals(l)
}

// legacyFlow synthesizes a flow from the fixed-field layout of old
// cards, in authoring order, skipping absent fields.
func legacyFlow(c *Concept) []FlowItem {
	var flow []FlowItem
	add := func(t ItemType, text string) {
		if strings.TrimSpace(text) != "" {
			flow = append(flow, FlowItem{Type: t, Text: text})
		}
	}
	add(ItemExplain, c.Goal)
	add(ItemExplain, c.Explain)
	add(ItemExample, c.Example)
	add(ItemExample, c.Example2)
	add(ItemMistake, c.Mistake)
	add(ItemNote, c.Note)
	if c.Question != nil {
		q := *c.Question
		flow = append(flow, FlowItem{Type: itemLegacyQuestion, Text: q.Text, Question: &q})
	}
	return flow
}

// canonicalizeItem builds the item's canonical Question from either
// the authored q object or the legacy flat fields, then rewrites a
// legacy "question" type tag to the inferred concrete type.
func canonicalizeItem(item *FlowItem) {
	q := item.Question
	if q == nil {
		q = &Question{
			Text:            item.Text,
			IsRequired:      item.IsRequired,
			Hints:           item.Hints,
			Solution:        item.Solution,
			Validate:        item.Validate,
			Choices:         item.Choices,
			CorrectIndex:    item.CorrectIndex,
			Answer:          item.Answer,
			Placeholder:     item.Placeholder,
			Items:           item.Items,
			Pairs:           item.Pairs,
			Blanks:          item.Blanks,
			AcceptedPhrases: item.AcceptedPhrases,
			AcceptedCore:    item.AcceptedCore,
			ForbiddenWords:  item.ForbiddenWords,
		}
		item.Question = q
	}
	if q.Text == "" {
		q.Text = item.Text
	}
	if q.Type == "" {
		q.Type = inferQuestionType(item.Type, q)
	}
	q.ID = item.ID
	canonicalizeQuestion(q)
	item.Type = ItemType(q.Type)
}

// canonicalizePrereq gives answerable prerequisites a canonical
// Question so the checker treats them like any other question.
func canonicalizePrereq(p *PrereqItem) {
	if p.Kind == PrereqText {
		return
	}
	q := &Question{
		ID:           p.ID,
		Text:         p.Text,
		IsRequired:   p.IsRequired,
		Hints:        p.Hints,
		Answer:       p.Answer,
		Validate:     p.Validate,
		Choices:      p.Choices,
		CorrectIndex: p.CorrectIndex,
	}
	switch p.Kind {
	case PrereqMCQ:
		q.Type = QuestionMCQ
	default:
		q.Type = QuestionInput
	}
	canonicalizeQuestion(q)
	p.Question = q
}

// canonicalizeQuestion fills defaults on a canonical question.
func canonicalizeQuestion(q *Question) {
	if q.Type == "" {
		q.Type = inferQuestionType("", q)
	}
	if q.Points <= 0 {
		q.Points = 1
	}
	if len(q.Hints) > 3 {
		q.Hints = q.Hints[:3]
	}
	if q.Type == QuestionInput && q.Placeholder == "" {
		q.Placeholder = "اكتب إجابتك هنا"
	}
}

// inferQuestionType resolves the concrete type for legacy items that
// were tagged "question" (or not tagged at all) and relied on shape.
func inferQuestionType(itemType ItemType, q *Question) QuestionType {
	switch itemType {
	case ItemMCQ:
		return QuestionMCQ
	case ItemInput:
		return QuestionInput
	case ItemOrdering:
		return QuestionOrdering
	case ItemMatch:
		return QuestionMatch
	case ItemFillBlank:
		return QuestionFillBlank
	}
	switch {
	case len(q.Choices) > 0:
		return QuestionMCQ
	case len(q.Pairs) > 0:
		return QuestionMatch
	case len(q.Items) > 0:
		return QuestionOrdering
	case len(q.Blanks) > 0:
		return QuestionFillBlank
	default:
		return QuestionInput
	}
}

// padGoals keeps goals and concepts the same length: a missing goal
// falls back to the concept title, or an ordinal placeholder when the
// title is empty too.
func padGoals(l *Lesson) {
	if len(l.Goals) > len(l.Concepts) {
		l.Goals = l.Goals[:len(l.Concepts)]
		return
	}
	for i := len(l.Goals); i < len(l.Concepts); i++ {
		text := l.Concepts[i].Title
		if strings.TrimSpace(text) == "" {
			text = fmt.Sprintf("الهدف %d", i+1)
		}
		l.Goals = append(l.Goals, Goal{Text: text})
	}
}
