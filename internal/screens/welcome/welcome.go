package welcome

import (
	"strings"
	"time"
	"unicode/utf8"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/kotoba/internal/router"
	"github.com/abhisek/kotoba/internal/screen"
	"github.com/abhisek/kotoba/internal/ui/components"
	"github.com/abhisek/kotoba/internal/ui/layout"
	"github.com/abhisek/kotoba/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 500 * time.Millisecond
	phase2End    = 1500 * time.Millisecond
	totalDur     = 4500 * time.Millisecond

	// MaxNameLength caps the display name in runes.
	MaxNameLength = 24
)

const mascotArt = `  ╭───────────╮
  │  ┌─────┐  │
  │  │ ◉ ◉ │  │
  │  │  ▽  │  │
  │  ├─────┤  │
  │  │ あア│  │
  │  └─────┘  │
  ╰───────────╯`

// sparkle frames cycle around the mascot
var sparkleFrames = []string{"★", "✦"}

type tickMsg time.Time

// WelcomeScreen shows a splash animation, asks for a display name when
// none is stored, then transitions to the home screen.
type WelcomeScreen struct {
	homeFactory  func(name string) screen.Screen
	onName       func(name string)
	name         string
	askName      bool
	input        components.TextInput
	errMsg       string
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)
var _ screen.KeyHintProvider = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen for the learner called name. An empty
// name prompts for one once the animation has played; onName receives
// the entered name before the home screen is built.
func New(name string, onName func(name string), homeFactory func(name string) screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		homeFactory: homeFactory,
		onName:      onName,
		name:        name,
		input:       components.NewTextInput("Your name", false, MaxNameLength),
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	if w.askName {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Continue"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{{Key: "any key", Description: "Continue"}}
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tick()

	case tea.KeyPressMsg:
		if w.askName {
			return w.updateName(msg)
		}
		// Any key skips the rest of the animation.
		w.elapsed = totalDur
		if w.name == "" {
			w.askName = true
			return w, w.input.Init()
		}
		return w, w.transition()
	}

	if w.askName {
		var cmd tea.Cmd
		w.input, cmd = w.input.Update(msg)
		return w, cmd
	}
	return w, nil
}

func (w *WelcomeScreen) updateName(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	if msg.String() != "enter" {
		var cmd tea.Cmd
		w.input, cmd = w.input.Update(msg)
		w.errMsg = ""
		return w, cmd
	}

	name, err := NormalizeName(w.input.Value())
	if err != "" {
		w.errMsg = err
		return w, nil
	}
	w.name = name
	if w.onName != nil {
		w.onName(name)
	}
	return w, w.transition()
}

// NormalizeName trims and validates a display name. The second result
// is a user-facing problem, empty when the name is acceptable.
func NormalizeName(raw string) (string, string) {
	name := strings.Join(strings.Fields(raw), " ")
	switch {
	case name == "":
		return "", "Please enter a name."
	case utf8.RuneCountInString(name) > MaxNameLength:
		return "", "That name is too long."
	}
	return name, ""
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	homeScreen := w.homeFactory(w.name)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: homeScreen}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	mascotStyle := lipgloss.NewStyle().Foreground(theme.Primary)

	// Phase 1+: mascot
	rendered := mascotStyle.Render(mascotArt)

	// Phase 2+: sparkles around mascot
	if w.elapsed >= phase1End {
		sparkle := sparkleFrames[w.tickCount%len(sparkleFrames)]
		s1 := lipgloss.NewStyle().Foreground(theme.Accent).Render(sparkle)
		s2 := lipgloss.NewStyle().Foreground(theme.Secondary).Render(sparkle)

		lines := strings.Split(rendered, "\n")
		for i, pair := range map[int][2]string{0: {s1, s2}, 3: {s2, s1}, 6: {s1, s2}} {
			if i < len(lines) {
				lines[i] = pair[0] + "  " + lines[i] + "  " + pair[1]
			}
		}
		rendered = strings.Join(lines, "\n")
	}

	sections = append(sections, rendered)

	// Phase 3+: banner + tagline
	if w.elapsed >= phase2End {
		sections = append(sections, "", RenderBanner(width), "")
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render("One word at a time."))
		sections = append(sections, "")

		switch {
		case w.askName:
			sections = append(sections,
				lipgloss.NewStyle().Foreground(theme.Text).Render("What should we call you?"),
				w.input.View())
			if w.errMsg != "" {
				sections = append(sections, lipgloss.NewStyle().Foreground(theme.Error).Render(w.errMsg))
			}
		case w.name != "":
			sections = append(sections,
				lipgloss.NewStyle().Foreground(theme.Secondary).Render("おかえり, "+w.name+"!"),
				theme.Hint.Render("press any key to continue"))
		default:
			sections = append(sections, theme.Hint.Render("press any key to continue"))
		}
	}

	content := strings.Join(sections, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
