package history

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/kotoba/internal/history"
	"github.com/abhisek/kotoba/internal/kana"
	"github.com/abhisek/kotoba/internal/router"
	"github.com/abhisek/kotoba/internal/screen"
	"github.com/abhisek/kotoba/internal/ui/layout"
	"github.com/abhisek/kotoba/internal/ui/theme"
)

// Source supplies past results, newest first.
type Source interface {
	Results() []history.Result
}

type historyLoadedMsg struct {
	Results []history.Result
}

// HistoryScreen lists past drills with their struggled words.
type HistoryScreen struct {
	source   Source
	results  []history.Result
	selected int
	expanded map[int]bool
	loaded   bool
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(source Source) *HistoryScreen {
	return &HistoryScreen{
		source:   source,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	src := s.source
	return func() tea.Msg {
		return historyLoadedMsg{Results: src.Results()}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		s.results = msg.Results
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.results)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

// CategoryLabel names a recorded category ID for display.
func CategoryLabel(id string) string {
	if cat, err := kana.CategoryByID(id); err == nil {
		return cat.Name
	}
	if id == "review" {
		return "Review"
	}
	return id
}

func (s *HistoryScreen) View(width, height int) string {
	if !s.loaded {
		return layout.Center(width, theme.TextDim, "\n\n  Loading history...")
	}
	if len(s.results) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No drills yet. Start practicing!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, r := range s.results {
		dateStr := r.Timestamp.Format("Jan 02 15:04")
		secs := int(r.Duration.Seconds())

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %-18s %-6s %6d pts  %3.0f%%  %d/%d  %d:%02d",
			prefix, dateStr, CategoryLabel(r.Category), r.Difficulty.DisplayName(),
			r.Score, r.Accuracy, r.Correct, r.Answered, secs/60, secs%60)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			b.WriteString(renderDetails(width, r))
		}
	}

	return b.String()
}

func renderDetails(width int, r history.Result) string {
	dim := lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true)
	var b strings.Builder

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		dim.Render(fmt.Sprintf("    best streak %d", r.MaxStreak))))
	b.WriteString("\n")

	if len(r.Struggled) == 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			dim.Render("    No misses. Perfect run!")))
		b.WriteString("\n")
		return b.String()
	}

	for _, it := range r.Struggled {
		line := fmt.Sprintf("    %s  %s  %s", it.Native, it.Romaji, it.Meaning)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Error).Render(line)))
		b.WriteString("\n")
	}
	return b.String()
}
