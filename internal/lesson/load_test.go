package lesson

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleCard = `{
	"week": 3,
	"title": "الأسبوع الثالث",
	"goals": [{"text": "نتعرف على العواصم"}],
	"prerequisites": [
		{"type": "text", "text": "مراجعة سريعة"},
		{"type": "mcq", "text": "اختر", "choices": ["أ", "ب"], "correctIndex": 1}
	],
	"concepts": [
		{
			"title": "العواصم",
			"flow": [
				{"type": "explain", "text": "لكل دولة عاصمة"},
				{"type": "input", "text": "ما عاصمة السعودية؟", "answer": "الرياض"}
			]
		}
	],
	"assessment": {
		"title": "تقييم",
		"questions": [
			{"type": "mcq", "text": "اختر العاصمة", "choices": ["جدة", "الرياض"], "correctIndex": 1, "points": 2}
		]
	}
}`

func TestParse_ValidCard(t *testing.T) {
	l, err := Parse([]byte(sampleCard))
	require.NoError(t, err)

	require.Equal(t, 3, l.Week)
	require.Equal(t, "الأسبوع الثالث", l.Title)
	require.Len(t, l.Concepts, 1)
	require.Len(t, l.Concepts[0].Flow, 2)

	// Normalization ran: canonical question and IDs are in place.
	q := l.Concepts[0].Flow[1].Question
	require.NotNil(t, q)
	require.Equal(t, QuestionInput, q.Type)
	require.Equal(t, "c0.i1", q.ID)

	require.NotNil(t, l.Assessment)
	require.Equal(t, 2, l.Assessment.Questions[0].Points)
}

func TestParse_InvalidJSON(t *testing.T) {
	_, err := Parse([]byte("{not json"))
	require.Error(t, err)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestParse_SchemaViolation(t *testing.T) {
	// Missing required title.
	_, err := Parse([]byte(`{"concepts": []}`))
	require.Error(t, err)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	// Unknown flow item type.
	_, err = Parse([]byte(`{"title": "t", "concepts": [{"flow": [{"type": "hologram"}]}]}`))
	require.Error(t, err)
}

func TestLoadFile_AttachesPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "week-1.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"concepts": []}`), 0o644))

	_, err := LoadFile(path)
	require.Error(t, err)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, path, verr.Path)
}

func TestLibrary_ListAndLoadWeek(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	write("b.json", `{"week": 2, "title": "الأسبوع الثاني", "concepts": [{"flow": [{"type": "explain", "text": "ش"}]}]}`)
	write("a.json", `{"week": 1, "title": "الأسبوع الأول", "concepts": [{"flow": [{"type": "explain", "text": "ش"}]}]}`)
	write("junk.txt", "not a card")
	write("broken.json", "{")

	lib := NewLibrary(dir)
	cards, err := lib.List()
	require.NoError(t, err)
	require.Len(t, cards, 2)
	require.Equal(t, 1, cards[0].Week)
	require.Equal(t, 2, cards[1].Week)

	l, err := lib.LoadWeek(2)
	require.NoError(t, err)
	require.Equal(t, "الأسبوع الثاني", l.Title)

	_, err = lib.LoadWeek(9)
	require.Error(t, err)
}
