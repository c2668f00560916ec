package summary

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/kotoba/internal/achievements"
	"github.com/abhisek/kotoba/internal/history"
	"github.com/abhisek/kotoba/internal/router"
	"github.com/abhisek/kotoba/internal/screen"
	"github.com/abhisek/kotoba/internal/ui/layout"
	"github.com/abhisek/kotoba/internal/ui/theme"
)

// maxStruggledShown caps the struggled list on screen.
const maxStruggledShown = 8

// SummaryScreen displays the result of a finished drill.
type SummaryScreen struct {
	result   history.Result
	unlocked []achievements.Achievement
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)
var _ screen.EscHandler = (*SummaryScreen)(nil)

// New creates a SummaryScreen for result and the achievements it unlocked.
func New(result history.Result, unlocked []achievements.Achievement) *SummaryScreen {
	return &SummaryScreen{result: result, unlocked: unlocked}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	if s.result.Review {
		return "Review Complete"
	}
	return "Drill Summary"
}

func (s *SummaryScreen) HandlesEsc() bool { return true }

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter":
			// Back to whatever launched the drill: setup or home.
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "esc":
			return s, func() tea.Msg { return router.PopToRootMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	r := s.result
	var b strings.Builder

	heading := "Drill complete!"
	if r.Review {
		heading = "Review complete!"
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(heading))
	b.WriteString("\n\n")

	mins := int(r.Duration.Minutes())
	secs := int(r.Duration.Seconds()) % 60
	b.WriteString(layout.Center(width, theme.TextDim,
		fmt.Sprintf("%s · %s · %d:%02d", categoryLabel(r), r.Difficulty.DisplayName(), mins, secs)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.ArcadeYellow).
		Bold(true).
		Render(fmt.Sprintf("%d points", r.Score)))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Answered: %d        Correct: %d        Accuracy: %.0f%%        Best streak: %d",
		r.Answered, r.Correct, r.Accuracy, r.MaxStreak)
	b.WriteString(layout.Center(width, theme.Text, statsLine))
	b.WriteString("\n\n")

	if len(r.Struggled) > 0 {
		b.WriteString(layout.Section(width, "Words to revisit"))
		b.WriteString("\n\n")
		for i, it := range r.Struggled {
			if i == maxStruggledShown {
				b.WriteString(layout.Center(width, theme.TextDim,
					fmt.Sprintf("... %d more", len(r.Struggled)-maxStruggledShown)))
				b.WriteString("\n")
				break
			}
			line := fmt.Sprintf("%s  %s  %s", it.Native, it.Romaji, it.Meaning)
			b.WriteString(layout.Center(width, theme.Error, line))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if len(s.unlocked) > 0 {
		b.WriteString(layout.Section(width, "Achievements unlocked"))
		b.WriteString("\n\n")
		for _, a := range s.unlocked {
			line := fmt.Sprintf("%s %s %s: %s", a.Icon(), a.Rarity.DisplayName(), a.Name, a.Description)
			b.WriteString(layout.Center(width, RarityColor(a.Rarity), line))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func categoryLabel(r history.Result) string {
	if r.Review {
		return "Review"
	}
	return r.Category
}

// RarityColor returns the theme color for an achievement rarity.
func RarityColor(r achievements.Rarity) color.Color {
	switch r {
	case achievements.RarityCommon:
		return theme.Text
	case achievements.RarityRare:
		return theme.Secondary
	case achievements.RarityEpic:
		return theme.Primary
	case achievements.RarityLegendary:
		return theme.Accent
	default:
		return theme.Text
	}
}
