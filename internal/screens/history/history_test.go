package history

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/kotoba/internal/history"
	"github.com/abhisek/kotoba/internal/router"
	"github.com/abhisek/kotoba/internal/scoring"
	"github.com/abhisek/kotoba/internal/vocab"
)

func loadedScreen(t *testing.T, results ...history.Result) *HistoryScreen {
	t.Helper()
	s := New(history.New(results, nil, nil))
	s.Update(s.Init()())
	return s
}

func sampleResults() []history.Result {
	return []history.Result{
		{
			ID:         "b",
			Timestamp:  time.Date(2026, 4, 2, 9, 0, 0, 0, time.UTC),
			Category:   "katakana",
			Difficulty: scoring.DifficultyHard,
			Score:      4200,
			Accuracy:   75,
			Answered:   4,
			Correct:    3,
			Struggled:  []vocab.Item{{Native: "テレビ", Romaji: "terebi", Meaning: "television"}},
		},
		{
			ID:         "a",
			Timestamp:  time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC),
			Category:   "review",
			Difficulty: scoring.DifficultyMedium,
			Score:      900,
			Accuracy:   100,
			Answered:   1,
			Correct:    1,
			Review:     true,
		},
	}
}

func TestEmptyHistory(t *testing.T) {
	s := loadedScreen(t)
	if !strings.Contains(s.View(100, 30), "No drills yet") {
		t.Error("expected empty message")
	}
}

func TestListAndExpand(t *testing.T) {
	s := loadedScreen(t, sampleResults()...)

	view := s.View(120, 30)
	if !strings.Contains(view, "Katakana") || !strings.Contains(view, "Review") {
		t.Errorf("expected both categories in view:\n%s", view)
	}
	if strings.Contains(view, "terebi") {
		t.Error("details should be collapsed by default")
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !strings.Contains(s.View(120, 30), "terebi") {
		t.Error("expected struggled word after expanding")
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !strings.Contains(s.View(120, 30), "Perfect run") {
		t.Error("expected perfect-run note for second result")
	}
}

func TestSelectionBounds(t *testing.T) {
	s := loadedScreen(t, sampleResults()...)
	s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if s.selected != 0 {
		t.Errorf("selected = %d, want 0", s.selected)
	}
	for range 5 {
		s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	if s.selected != 1 {
		t.Errorf("selected = %d, want 1", s.selected)
	}
}

func TestEscPops(t *testing.T) {
	s := loadedScreen(t)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Fatal("expected PopScreenMsg")
	}
}

func TestCategoryLabel(t *testing.T) {
	tests := []struct{ id, want string }{
		{"hiragana", "Hiragana"},
		{"review", "Review"},
		{"mystery", "mystery"},
	}
	for _, tt := range tests {
		if got := CategoryLabel(tt.id); got != tt.want {
			t.Errorf("CategoryLabel(%q) = %q, want %q", tt.id, got, tt.want)
		}
	}
}
