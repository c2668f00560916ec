package achievements

import (
	"github.com/abhisek/kotoba/internal/history"
	"github.com/abhisek/kotoba/internal/srs"
)

// RuleKind selects how a Rule is evaluated.
type RuleKind string

const (
	// KindLevelCount: at least Count items at level >= MinLevel.
	KindLevelCount RuleKind = "level-count"
	// KindSessionAccuracy: one session with accuracy >= Threshold and
	// at least MinAnswered answers.
	KindSessionAccuracy RuleKind = "session-accuracy"
	// KindAccuracySessions: at least Count sessions with accuracy >= Threshold.
	KindAccuracySessions RuleKind = "accuracy-sessions"
	// KindStreak: one session with max streak >= Threshold.
	KindStreak RuleKind = "streak"
	// KindSessionsCompleted: at least Count sessions in history.
	KindSessionsCompleted RuleKind = "sessions-completed"
	// KindScore: one session scoring >= Threshold.
	KindScore RuleKind = "score"
)

// Rule is a declarative unlock condition.
type Rule struct {
	Kind        RuleKind
	Threshold   float64
	MinLevel    int
	MinAnswered int
	Count       int
}

// Inputs are the read-only data rules are evaluated over.
type Inputs struct {
	History []history.Result
	Records []srs.Record
}

// Met reports whether the rule holds for in. Unknown kinds never hold.
func (r Rule) Met(in Inputs) bool {
	switch r.Kind {
	case KindLevelCount:
		n := 0
		for _, rec := range in.Records {
			if rec.Level >= r.MinLevel {
				n++
			}
		}
		return n >= r.Count

	case KindSessionAccuracy:
		for _, res := range in.History {
			if res.Answered >= r.MinAnswered && res.Accuracy >= r.Threshold {
				return true
			}
		}
		return false

	case KindAccuracySessions:
		n := 0
		for _, res := range in.History {
			if res.Answered > 0 && res.Accuracy >= r.Threshold {
				n++
			}
		}
		return n >= r.Count

	case KindStreak:
		for _, res := range in.History {
			if float64(res.MaxStreak) >= r.Threshold {
				return true
			}
		}
		return false

	case KindSessionsCompleted:
		return len(in.History) >= r.Count

	case KindScore:
		for _, res := range in.History {
			if float64(res.Score) >= r.Threshold {
				return true
			}
		}
		return false
	}
	return false
}
