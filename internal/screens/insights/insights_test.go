package insights

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/kotoba/internal/history"
	"github.com/abhisek/kotoba/internal/router"
	"github.com/abhisek/kotoba/internal/scoring"
	"github.com/abhisek/kotoba/internal/srs"
	"github.com/abhisek/kotoba/internal/vocab"
)

var now = time.Date(2026, 4, 10, 9, 0, 0, 0, time.UTC)

var (
	neko = vocab.Item{Native: "ねこ", Romaji: "neko", Meaning: "cat"}
	inu  = vocab.Item{Native: "いぬ", Romaji: "inu", Meaning: "dog"}
)

func loadedInsights(t *testing.T, records []srs.Record, results []history.Result) *InsightsScreen {
	t.Helper()
	s := New(Deps{
		Records: srs.NewScheduler(records, nil, nil),
		Results: history.New(results, nil, nil),
		Clock:   srs.ClockFunc(func() time.Time { return now }),
	})
	s.Update(s.Init()())
	return s
}

func TestEmpty(t *testing.T) {
	s := loadedInsights(t, nil, nil)
	if !strings.Contains(s.View(100, 40), "No drills recorded yet") {
		t.Error("expected empty overview")
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	if !strings.Contains(s.View(100, 40), "No misses yet") {
		t.Error("expected empty weak spots")
	}
}

func TestOverview(t *testing.T) {
	records := []srs.Record{
		{Item: neko, Level: 2, NextReviewAt: now.Add(-time.Hour), TimesCorrect: 2},
		{Item: inu, Level: srs.MaxLevel, TimesCorrect: 8},
	}
	results := []history.Result{
		{ID: "a", Category: "hiragana", Difficulty: scoring.DifficultyMedium, Score: 1200, Accuracy: 50, Answered: 2, Correct: 1, MaxStreak: 1},
	}
	s := loadedInsights(t, records, results)

	if s.data.Mastery.Total != 2 || s.data.Mastery.Mastered != 1 || s.data.Mastery.Due != 1 {
		t.Errorf("unexpected mastery stats: %+v", s.data.Mastery)
	}
	view := s.View(120, 40)
	for _, want := range []string{"1 drills", "best 1200 pts", "Mastered", "1 due"} {
		if !strings.Contains(view, want) {
			t.Errorf("overview missing %q", want)
		}
	}
}

func TestWeakSpots(t *testing.T) {
	records := []srs.Record{{Item: neko, TimesIncorrect: 3}}
	results := []history.Result{
		{ID: "b", Struggled: []vocab.Item{neko, inu}},
		{ID: "a", Struggled: []vocab.Item{neko}},
	}
	s := loadedInsights(t, records, results)

	if len(s.data.Report.Items) == 0 || s.data.Report.Items[0].Item != neko {
		t.Fatalf("expected neko first, got %+v", s.data.Report.Items)
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	view := s.View(120, 40)
	for _, want := range []string{"neko", "×2", "Leeches", "missed 3"} {
		if !strings.Contains(view, want) {
			t.Errorf("weak spots missing %q", want)
		}
	}
}

func TestEscPops(t *testing.T) {
	s := loadedInsights(t, nil, nil)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Fatal("expected PopScreenMsg")
	}
}
