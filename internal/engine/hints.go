package engine

import "github.com/hsaleh/durus/internal/lesson"

// Generic hints used when a question has no authored hint for the
// attempt.
var genericHints = []string{
	"اقرأ السؤال مرة أخرى بتمعّن",
	"راجع الشرح في الأعلى ثم حاول من جديد",
}

// HintForAttempt returns the escalation step after a wrong answer:
// attempts 1 and 2 surface the per-question authored hints (or generic
// fallbacks), the 3rd and later attempts additionally reveal the
// authored solution. The learner may keep retrying indefinitely.
func HintForAttempt(q *lesson.Question, attempt int) (hint string, revealSolution bool) {
	switch {
	case attempt <= 0:
		return "", false
	case attempt == 1:
		return hintAt(q, 0), false
	case attempt == 2:
		return hintAt(q, 1), false
	default:
		if len(q.Hints) > 2 {
			hint = q.Hints[2]
		}
		return hint, q.Solution != ""
	}
}

func hintAt(q *lesson.Question, i int) string {
	if i < len(q.Hints) && q.Hints[i] != "" {
		return q.Hints[i]
	}
	return genericHints[i%len(genericHints)]
}
