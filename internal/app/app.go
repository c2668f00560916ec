// Package app wires the screens into the root Bubble Tea model.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/kotoba/internal/achievements"
	"github.com/abhisek/kotoba/internal/analytics"
	engine "github.com/abhisek/kotoba/internal/drill"
	"github.com/abhisek/kotoba/internal/history"
	"github.com/abhisek/kotoba/internal/router"
	"github.com/abhisek/kotoba/internal/screen"
	drillscreen "github.com/abhisek/kotoba/internal/screens/drill"
	historyscreen "github.com/abhisek/kotoba/internal/screens/history"
	"github.com/abhisek/kotoba/internal/screens/home"
	"github.com/abhisek/kotoba/internal/screens/insights"
	"github.com/abhisek/kotoba/internal/screens/setup"
	"github.com/abhisek/kotoba/internal/screens/vault"
	"github.com/abhisek/kotoba/internal/screens/welcome"
	"github.com/abhisek/kotoba/internal/srs"
	"github.com/abhisek/kotoba/internal/ui/layout"
	"github.com/abhisek/kotoba/internal/wordgen"
)

// recentUnlockWindow is how long a fresh achievement cheers the mascot.
const recentUnlockWindow = 24 * time.Hour

// NameSaver persists the learner's display name.
type NameSaver interface {
	SaveDisplayName(ctx context.Context, name string) error
}

// Deps are the engine objects the TUI drives.
type Deps struct {
	Orchestrator *engine.Orchestrator
	Scheduler    *srs.Scheduler
	History      *history.History
	Achievements *achievements.Evaluator
	Generator    wordgen.Generator
	Encourager   drillscreen.Encourager
	Names        NameSaver

	// Learner is the stored display name; empty asks for one.
	Learner  string
	Defaults engine.Config
	Online   bool
	Clock    srs.Clock
	Logger   *slog.Logger
}

// profile is shared by the closures handed to screens.
type profile struct {
	name string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	deps    Deps
	profile *profile
	router  *router.Router
	width   int
	height  int
}

// newAppModel creates an AppModel starting on the welcome screen.
func newAppModel(deps Deps) AppModel {
	if deps.Clock == nil {
		deps.Clock = srs.SystemClock{}
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	m := AppModel{deps: deps, profile: &profile{name: deps.Learner}}

	onName := func(name string) {
		m.profile.name = name
		if deps.Names == nil {
			return
		}
		if err := deps.Names.SaveDisplayName(context.Background(), name); err != nil {
			deps.Logger.Warn("persist display name", "error", err)
		}
	}
	m.router = router.New(welcome.New(deps.Learner, onName, func(string) screen.Screen {
		return m.newHome()
	}))
	return m
}

func (m AppModel) drillDeps() drillscreen.Deps {
	return drillscreen.Deps{
		Orchestrator: m.deps.Orchestrator,
		Generator:    m.deps.Generator,
		Encourager:   m.deps.Encourager,
		Learner:      m.profile.name,
		Logger:       m.deps.Logger,
	}
}

func (m AppModel) newHome() screen.Screen {
	d := m.deps
	return home.New(home.Deps{
		Stats:  m.stats,
		Online: d.Online,
		Screens: home.Screens{
			Setup: func() screen.Screen {
				return setup.New(setup.Deps{
					Orchestrator: d.Orchestrator,
					Defaults:     d.Defaults,
					StartDrill: func(cfg engine.Config) screen.Screen {
						return drillscreen.New(m.drillDeps(), cfg)
					},
				})
			},
			Review: func() screen.Screen {
				return drillscreen.NewReview(m.drillDeps(), engine.Config{Difficulty: d.Defaults.Difficulty})
			},
			History: func() screen.Screen {
				return historyscreen.New(d.History)
			},
			Insights: func() screen.Screen {
				return insights.New(insights.Deps{Records: d.Scheduler, Results: d.History, Clock: d.Clock})
			},
			Achievements: func() screen.Screen {
				return vault.New(d.Achievements)
			},
		},
	})
}

// stats computes the home dashboard numbers.
func (m AppModel) stats() home.Stats {
	now := m.deps.Clock.Now()
	var st home.Stats
	if m.deps.Scheduler != nil {
		mastery := analytics.Mastery(m.deps.Scheduler.Records(), now)
		st.Learned = mastery.Learned
		st.Due = mastery.Due
	}
	if m.deps.Achievements != nil {
		unlocked := m.deps.Achievements.Unlocked()
		st.Unlocked = len(unlocked)
		for _, u := range unlocked {
			if now.Sub(u.At) < recentUnlockWindow {
				st.RecentUnlock = true
				break
			}
		}
	}
	return st
}

func (m AppModel) dueCount() int {
	if m.deps.Scheduler == nil {
		return 0
	}
	return m.deps.Scheduler.DueCount(m.deps.Clock.Now())
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			if m.deps.Orchestrator != nil {
				m.deps.Orchestrator.Exit()
			}
			return m, tea.Quit
		case "esc":
			if h, ok := m.router.Active().(screen.EscHandler); ok && h.HandlesEsc() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) footerHints() []layout.KeyHint {
	if p, ok := m.router.Active().(screen.KeyHintProvider); ok {
		if hints := p.KeyHints(); len(hints) > 0 {
			return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
		}
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.profile.name, m.dueCount(), m.width)
	footer := layout.RenderFooter(m.footerHints(), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := max(m.height-headerHeight-footerHeight, 0)

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(deps Deps) error {
	p := tea.NewProgram(newAppModel(deps))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
