package app

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/kotoba/internal/achievements"
	engine "github.com/abhisek/kotoba/internal/drill"
	"github.com/abhisek/kotoba/internal/history"
	"github.com/abhisek/kotoba/internal/router"
	"github.com/abhisek/kotoba/internal/screen"
	"github.com/abhisek/kotoba/internal/srs"
	"github.com/abhisek/kotoba/internal/ui/layout"
	"github.com/abhisek/kotoba/internal/vocab"
)

var now = time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)

type nameRecorder struct{ names []string }

func (n *nameRecorder) SaveDisplayName(_ context.Context, name string) error {
	n.names = append(n.names, name)
	return nil
}

// escScreen optionally consumes esc and records what it received.
type escScreen struct {
	handles bool
	got     []string
}

func (s *escScreen) Init() tea.Cmd { return nil }
func (s *escScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		s.got = append(s.got, k.String())
	}
	return s, nil
}
func (s *escScreen) View(int, int) string { return "esc screen" }
func (s *escScreen) Title() string        { return "Esc" }
func (s *escScreen) HandlesEsc() bool     { return s.handles }
func (s *escScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Z", Description: "Zap"}}
}

func testDeps(learner string) Deps {
	clock := srs.ClockFunc(func() time.Time { return now })
	sched := srs.NewScheduler([]srs.Record{
		{Item: vocab.Item{Native: "ねこ", Romaji: "neko"}, Level: 1, NextReviewAt: now.Add(-time.Minute)},
		{Item: vocab.Item{Native: "いぬ", Romaji: "inu"}, Level: 2, NextReviewAt: now.Add(time.Hour)},
	}, nil, nil)
	hist := history.New(nil, nil, nil)
	eval := achievements.NewEvaluator(nil, achievements.UnlockedSet{"first-steps": now.Add(-time.Hour)}, nil, nil)
	return Deps{
		Orchestrator: engine.New(engine.Deps{Scheduler: sched, History: hist, Achievements: eval, Clock: clock}),
		Scheduler:    sched,
		History:      hist,
		Achievements: eval,
		Learner:      learner,
		Clock:        clock,
	}
}

func sized(m AppModel) AppModel {
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return next.(AppModel)
}

func TestStats(t *testing.T) {
	m := newAppModel(testDeps("Ken"))
	st := m.stats()
	if st.Learned != 2 || st.Due != 1 || st.Unlocked != 1 || !st.RecentUnlock {
		t.Errorf("unexpected stats: %+v", st)
	}
	if m.dueCount() != 1 {
		t.Errorf("dueCount = %d, want 1", m.dueCount())
	}
}

func TestHeaderShowsLearnerAndDue(t *testing.T) {
	m := sized(newAppModel(testDeps("Ken")))
	view := fmt.Sprint(m.View().Content)
	if !strings.Contains(view, "Ken") || !strings.Contains(view, "1 due") {
		t.Errorf("header missing learner or due count:\n%s", view)
	}
}

func TestEscPopsUnlessHandled(t *testing.T) {
	tests := []struct {
		name    string
		handles bool
		wantPop bool
	}{
		{"pops", false, true},
		{"handled by screen", true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := sized(newAppModel(testDeps("Ken")))
			s := &escScreen{handles: tt.handles}
			m.router.Push(s)

			_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
			var popped bool
			if cmd != nil {
				_, popped = cmd().(router.PopScreenMsg)
			}
			if popped != tt.wantPop {
				t.Errorf("popped = %v, want %v", popped, tt.wantPop)
			}
			if tt.handles && (len(s.got) != 1 || s.got[0] != "esc") {
				t.Errorf("screen did not receive esc: %v", s.got)
			}
		})
	}
}

func TestFooterUsesScreenHints(t *testing.T) {
	m := sized(newAppModel(testDeps("Ken")))
	m.router.Push(&escScreen{})
	hints := m.footerHints()
	if hints[0].Key != "Z" || hints[len(hints)-1].Key != "Ctrl+C" {
		t.Errorf("unexpected hints: %+v", hints)
	}
}

func TestWelcomeNameFlowsToHome(t *testing.T) {
	deps := testDeps("")
	names := &nameRecorder{}
	deps.Names = names
	m := sized(newAppModel(deps))

	// Skip the splash, then type a name.
	m.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	for _, r := range "Yui" {
		m.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected transition command")
	}
	m.Update(cmd())

	if len(names.names) != 1 || names.names[0] != "Yui" {
		t.Errorf("saved names = %v, want [Yui]", names.names)
	}
	if m.profile.name != "Yui" || m.drillDeps().Learner != "Yui" {
		t.Errorf("profile name = %q", m.profile.name)
	}
	if got := m.router.Active().Title(); got != "Home" {
		t.Errorf("active screen = %q, want Home", got)
	}
	if m.router.Depth() != 1 {
		t.Errorf("depth = %d, want home as root", m.router.Depth())
	}
}

func TestHomeAfterWelcome(t *testing.T) {
	m := newAppModel(testDeps("Ken"))
	h := m.newHome()
	if h.Title() != "Home" {
		t.Errorf("home Title = %q", h.Title())
	}
}
