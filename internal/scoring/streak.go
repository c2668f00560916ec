package scoring

import "math"

const (
	// StreakIncrement is added to the multiplier per consecutive correct answer.
	StreakIncrement = 0.1

	// MaxMultiplier caps the streak multiplier.
	MaxMultiplier = 2.0
)

// Tracker holds the per-session run of consecutive correct answers.
type Tracker struct {
	Streak     int
	Multiplier float64
	MaxStreak  int
}

// NewTracker returns a tracker with no streak and a neutral multiplier.
func NewTracker() Tracker {
	return Tracker{Multiplier: 1.0}
}

// Record updates the tracker for one answer.
func (t *Tracker) Record(correct bool) {
	if !correct {
		t.Streak = 0
		t.Multiplier = 1.0
		return
	}
	t.Streak++
	if t.Streak > t.MaxStreak {
		t.MaxStreak = t.Streak
	}
	t.Multiplier = MultiplierFor(t.Streak)
}

// MultiplierFor returns the multiplier earned by a streak of n.
func MultiplierFor(n int) float64 {
	if n <= 0 {
		return 1.0
	}
	m := 1 + float64(n)*StreakIncrement
	m = math.Round(m*100) / 100
	return math.Min(MaxMultiplier, m)
}
