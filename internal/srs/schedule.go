package srs

import "time"

// MaxLevel is the mastered level. Items at MaxLevel are never due.
const MaxLevel = 8

// RelearnDelay is how soon a missed item comes back.
const RelearnDelay = 5 * time.Minute

// IntervalTable maps each level to its review interval.
var IntervalTable = [MaxLevel + 1]time.Duration{
	0,
	time.Hour,
	24 * time.Hour,
	3 * 24 * time.Hour,
	7 * 24 * time.Hour,
	14 * 24 * time.Hour,
	30 * 24 * time.Hour,
	90 * 24 * time.Hour,
	180 * 24 * time.Hour,
}

// IntervalFor returns the interval for a level, clamping out-of-range
// levels to the table bounds.
func IntervalFor(level int) time.Duration {
	return IntervalTable[clampLevel(level)]
}

func clampLevel(level int) int {
	if level < 0 {
		return 0
	}
	if level > MaxLevel {
		return MaxLevel
	}
	return level
}

// Clock is a time source. Production code uses SystemClock; tests
// inject a fixed or stepping clock.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// ClockFunc adapts a function to a Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }
