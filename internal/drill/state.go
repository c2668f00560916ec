package drill

import (
	"errors"
	"time"

	"github.com/abhisek/kotoba/internal/achievements"
	"github.com/abhisek/kotoba/internal/history"
	"github.com/abhisek/kotoba/internal/kana"
	"github.com/abhisek/kotoba/internal/scoring"
	"github.com/abhisek/kotoba/internal/vocab"
)

// FeedbackDelay is how long answer feedback stays on screen before the
// drill advances.
const FeedbackDelay = 2000 * time.Millisecond

// ReviewCategory is the category recorded for review sessions.
const ReviewCategory = "review"

// NoWordsMessage is shown when generation produced nothing usable.
const NoWordsMessage = "No words available. Try widening your selection."

var (
	// ErrNoWords means the generator returned zero usable items.
	ErrNoWords = errors.New("no words available")
	// ErrNoDueItems means a review was requested with nothing due.
	ErrNoDueItems = errors.New("no items due for review")
	// ErrInvalidState means the operation is not allowed in the current state.
	ErrInvalidState = errors.New("invalid drill state")
)

// State is the orchestrator's lifecycle state.
type State int

const (
	StateIdle State = iota
	StateConfiguring
	StateLoading
	StateActive
	StateReviewActive
	StateFinished
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateConfiguring:
		return "configuring"
	case StateLoading:
		return "loading"
	case StateActive:
		return "active"
	case StateReviewActive:
		return "review"
	case StateFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Running reports whether items are being presented.
func (s State) Running() bool {
	return s == StateActive || s == StateReviewActive
}

// Feedback is the result shown for the current item.
type Feedback int

const (
	FeedbackNone Feedback = iota
	FeedbackCorrect
	FeedbackIncorrect
)

func (f Feedback) String() string {
	switch f {
	case FeedbackCorrect:
		return "correct"
	case FeedbackIncorrect:
		return "incorrect"
	default:
		return "none"
	}
}

// Token identifies one pending feedback display or one pending load.
// Zero is never issued.
type Token uint64

// Config describes the drill the learner asked for.
type Config struct {
	Category   kana.Category
	Difficulty scoring.Difficulty
	Topic      string
	WordCount  int  // queue length in fixed-length mode
	Endless    bool // loop the queue until the learner finishes
}

// Answer reports the outcome of one submitted answer.
type Answer struct {
	Item     vocab.Item
	Given    string
	Feedback Feedback
	Points   int
	Token    Token

	// Unlocked lists achievements this answer's SRS change unlocked.
	Unlocked []achievements.Achievement
}

// Correct reports whether the answer was right.
func (a Answer) Correct() bool { return a.Feedback == FeedbackCorrect }

// Snapshot is a read-only view of the orchestrator for presentation.
type Snapshot struct {
	State      State
	SessionID  string
	Config     Config
	Position   int
	QueueLen   int
	Current    vocab.Item
	HasItem    bool
	Feedback   Feedback
	Token      Token
	Score      int
	Streak     int
	Multiplier float64
	MaxStreak  int
	Answered   int
	Correct    int
	Compliment string
	LastPoints int
	LastAnswer string
	LastError  string
	Endless    bool
	Review     bool
	ItemShown  time.Time

	// Set once a session finishes.
	Result   *history.Result
	Unlocked []achievements.Achievement
}
