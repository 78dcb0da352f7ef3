package player

import (
	"github.com/hsaleh/durus/internal/completion"
	"github.com/hsaleh/durus/internal/engine"
)

// lessonReadyMsg is sent when the card and saved progress have loaded.
type lessonReadyMsg struct {
	Eng *engine.Engine
	Err error
}

// progressSavedMsg confirms a background progress save.
type progressSavedMsg struct {
	Err error
}

// autoAdvanceMsg fires after the post-answer pause. The token must
// match the screen's current one; a stale token means the learner
// already moved on (or pressed a key) and the advance is dropped.
type autoAdvanceMsg struct {
	Token int
}

// completionRecordedMsg is sent once the finished lesson is persisted
// and a certificate issued.
type completionRecordedMsg struct {
	Cert *completion.Certificate
	Err  error
}
