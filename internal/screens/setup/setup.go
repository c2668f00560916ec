// Package setup is the drill configuration screen.
package setup

import (
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	engine "github.com/abhisek/kotoba/internal/drill"
	"github.com/abhisek/kotoba/internal/kana"
	"github.com/abhisek/kotoba/internal/router"
	"github.com/abhisek/kotoba/internal/scoring"
	"github.com/abhisek/kotoba/internal/screen"
	"github.com/abhisek/kotoba/internal/ui/components"
	"github.com/abhisek/kotoba/internal/ui/layout"
	"github.com/abhisek/kotoba/internal/ui/theme"
)

// MaxTopicLength caps the free-text topic hint.
const MaxTopicLength = 40

// Endless is the count option that loops the queue.
const Endless = "Endless"

// CountOptions are the selectable queue lengths.
var CountOptions = []string{"5", "10", "20", Endless}

const (
	fieldCategory = iota
	fieldDifficulty
	fieldWords
	fieldTopic
	fieldStart
	numFields
)

// Deps are what the setup screen needs from the app.
type Deps struct {
	Orchestrator *engine.Orchestrator
	// Defaults preselects category, difficulty and word count.
	Defaults engine.Config
	// StartDrill builds the drill screen for a chosen configuration.
	StartDrill func(cfg engine.Config) screen.Screen
}

// SetupScreen lets the learner choose what to drill.
type SetupScreen struct {
	deps       Deps
	categories []kana.Category

	category   components.Choice
	difficulty components.Choice
	count      components.Choice
	topic      components.TextInput
	focus      int
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)

// New creates a setup screen with deps.Defaults preselected.
func New(deps Deps) *SetupScreen {
	cats := kana.Categories()
	catNames := make([]string, len(cats))
	catSel := 0
	for i, c := range cats {
		catNames[i] = c.Name
		if c.ID == deps.Defaults.Category.ID {
			catSel = i
		}
	}

	diffs := scoring.AllDifficulties()
	diffNames := make([]string, len(diffs))
	diffSel := 1
	for i, d := range diffs {
		diffNames[i] = d.DisplayName()
		if d == deps.Defaults.Difficulty {
			diffSel = i
		}
	}

	countSel := 1
	for i, opt := range CountOptions {
		if deps.Defaults.Endless && opt == Endless {
			countSel = i
		} else if !deps.Defaults.Endless && opt == strconv.Itoa(deps.Defaults.WordCount) {
			countSel = i
		}
	}

	s := &SetupScreen{
		deps:       deps,
		categories: cats,
		category:   components.NewChoice("Category", catNames, catSel),
		difficulty: components.NewChoice("Difficulty", diffNames, diffSel),
		count:      components.NewChoice("Words", CountOptions, countSel),
		topic:      components.NewTextInput("optional, e.g. food", false, MaxTopicLength),
	}
	s.topic.Model.Blur()
	s.setFocus(fieldCategory)
	return s
}

// Init moves the orchestrator into Configuring.
func (s *SetupScreen) Init() tea.Cmd {
	_ = s.deps.Orchestrator.Configure()
	return nil
}

func (s *SetupScreen) Title() string {
	return "New Drill"
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Field"},
		{Key: "←→", Description: "Change"},
		{Key: "Enter", Description: "Start"},
		{Key: "Esc", Description: "Back"},
	}
}

// Config returns the configuration currently selected.
func (s *SetupScreen) Config() engine.Config {
	cfg := engine.Config{
		Category:   s.categories[s.category.Selected],
		Difficulty: scoring.AllDifficulties()[s.difficulty.Selected],
		Topic:      strings.TrimSpace(s.topic.Value()),
	}
	if v := s.count.Value(); v == Endless {
		cfg.Endless = true
	} else {
		cfg.WordCount, _ = strconv.Atoi(v)
	}
	return cfg
}

func (s *SetupScreen) setFocus(f int) {
	s.focus = (f + numFields) % numFields
	s.category.Focused = s.focus == fieldCategory
	s.difficulty.Focused = s.focus == fieldDifficulty
	s.count.Focused = s.focus == fieldWords
	if s.focus == fieldTopic {
		s.topic.Model.Focus()
	} else {
		s.topic.Model.Blur()
	}
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "shift+tab":
		s.setFocus(s.focus - 1)
		return s, nil
	case "down", "tab":
		s.setFocus(s.focus + 1)
		return s, nil
	case "enter":
		return s, s.start()
	}

	var cmd tea.Cmd
	switch s.focus {
	case fieldCategory:
		s.category, cmd = s.category.Update(msg)
	case fieldDifficulty:
		s.difficulty, cmd = s.difficulty.Update(msg)
	case fieldWords:
		s.count, cmd = s.count.Update(msg)
	case fieldTopic:
		s.topic, cmd = s.topic.Update(msg)
	}
	return s, cmd
}

func (s *SetupScreen) start() tea.Cmd {
	if s.deps.StartDrill == nil {
		return nil
	}
	next := s.deps.StartDrill(s.Config())
	return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
}

func (s *SetupScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(layout.Section(width, "What would you like to practice?"))
	b.WriteString("\n\n")

	var form strings.Builder
	form.WriteString(s.category.View())
	form.WriteString("\n")
	form.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
		Render(strings.Repeat(" ", 12) + s.categories[s.category.Selected].Description))
	form.WriteString("\n\n")
	form.WriteString(s.difficulty.View())
	form.WriteString("\n\n")
	form.WriteString(s.count.View())
	form.WriteString("\n\n")

	topicLabel := lipgloss.NewStyle().Foreground(theme.TextDim).Width(12)
	if s.focus == fieldTopic {
		topicLabel = topicLabel.Foreground(theme.Primary).Bold(true)
	}
	form.WriteString(topicLabel.Render("Topic") + s.topic.View())
	form.WriteString("\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, form.String()))
	b.WriteString("\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		components.ArcadeButton("START", s.focus == fieldStart, false, 20)))
	b.WriteString("\n")

	if msg := s.deps.Orchestrator.Snapshot().LastError; msg != "" {
		b.WriteString("\n")
		b.WriteString(layout.Center(width, theme.Error, msg))
	}
	return b.String()
}
