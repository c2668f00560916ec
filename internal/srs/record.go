package srs

import (
	"time"

	"github.com/abhisek/kotoba/internal/vocab"
)

// Record is the scheduling state of one vocabulary item.
type Record struct {
	Item           vocab.Item
	Level          int
	Interval       time.Duration
	NextReviewAt   time.Time
	LastReviewedAt time.Time
	TimesCorrect   int
	TimesIncorrect int
}

// Key returns the record's identity key.
func (r Record) Key() string { return r.Item.Key() }

// IsDue reports whether the item should be reviewed at now.
// Mastered items are never due.
func (r Record) IsDue(now time.Time) bool {
	return r.Level < MaxLevel && !now.Before(r.NextReviewAt)
}

// Mastered reports whether the item reached the top level.
func (r Record) Mastered() bool { return r.Level >= MaxLevel }

// Overdue returns how long past its review time the item is.
// Returns 0 if not yet due.
func (r Record) Overdue(now time.Time) time.Duration {
	if now.Before(r.NextReviewAt) {
		return 0
	}
	return now.Sub(r.NextReviewAt)
}

// next computes the record that results from answering r at now.
func (r Record) next(item vocab.Item, correct bool, now time.Time) Record {
	out := r
	out.Item = item
	out.LastReviewedAt = now

	if correct {
		out.Level = min(clampLevel(r.Level)+1, MaxLevel)
		out.Interval = IntervalTable[out.Level]
		out.NextReviewAt = now.Add(out.Interval)
		out.TimesCorrect++
		return out
	}

	out.Level = 0
	out.Interval = IntervalTable[0]
	out.NextReviewAt = now.Add(RelearnDelay)
	out.TimesIncorrect++
	return out
}
