package drill

import (
	"time"

	engine "github.com/abhisek/kotoba/internal/drill"
	"github.com/abhisek/kotoba/internal/vocab"
)

// wordsReadyMsg is sent when word generation for a load finishes.
type wordsReadyMsg struct {
	Token engine.Token
	Items []vocab.Item
	Err   error
}

// feedbackDoneMsg is sent when the feedback delay for an answer ends.
type feedbackDoneMsg struct {
	Token engine.Token
}

// complimentMsg carries an encouragement line for a pending answer.
type complimentMsg struct {
	Token engine.Token
	Text  string
}

// spinnerTickMsg animates the loading indicator.
type spinnerTickMsg time.Time
