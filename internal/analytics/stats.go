package analytics

import (
	"sort"
	"time"

	"github.com/abhisek/kotoba/internal/history"
	"github.com/abhisek/kotoba/internal/srs"
)

// Level thresholds used by stats and achievements.
const (
	LearnedLevel = 1
	StrongLevel  = 4
)

// MasteryStats summarizes the SRS table.
type MasteryStats struct {
	ByLevel  [srs.MaxLevel + 1]int
	Total    int
	Learned  int
	Strong   int
	Mastered int
	Due      int
}

// Mastery computes level distribution and due count at now.
func Mastery(records []srs.Record, now time.Time) MasteryStats {
	var st MasteryStats
	for _, r := range records {
		lvl := min(max(r.Level, 0), srs.MaxLevel)
		st.ByLevel[lvl]++
		st.Total++
		if lvl >= LearnedLevel {
			st.Learned++
		}
		if lvl >= StrongLevel {
			st.Strong++
		}
		if lvl == srs.MaxLevel {
			st.Mastered++
		}
		if r.IsDue(now) {
			st.Due++
		}
	}
	return st
}

// CountAtLeast returns how many records reached level.
func CountAtLeast(records []srs.Record, level int) int {
	n := 0
	for _, r := range records {
		if r.Level >= level {
			n++
		}
	}
	return n
}

// Summary aggregates session history.
type Summary struct {
	Sessions        int
	Answered        int
	Correct         int
	TotalScore      int
	BestScore       int
	BestStreak      int
	AverageAccuracy float64
}

// Summarize aggregates results.
func Summarize(results []history.Result) Summary {
	var s Summary
	var accSum float64
	for _, r := range results {
		s.Sessions++
		s.Answered += r.Answered
		s.Correct += r.Correct
		s.TotalScore += r.Score
		s.BestScore = max(s.BestScore, r.Score)
		s.BestStreak = max(s.BestStreak, r.MaxStreak)
		accSum += r.Accuracy
	}
	if s.Sessions > 0 {
		s.AverageAccuracy = accSum / float64(s.Sessions)
	}
	return s
}

// Leeches returns up to limit records with the most misses, ties by key.
// Records that were never missed are excluded.
func Leeches(records []srs.Record, limit int) []srs.Record {
	var out []srs.Record
	for _, r := range records {
		if r.TimesIncorrect > 0 {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TimesIncorrect != out[j].TimesIncorrect {
			return out[i].TimesIncorrect > out[j].TimesIncorrect
		}
		return out[i].Key() < out[j].Key()
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
