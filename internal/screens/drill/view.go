package drill

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	engine "github.com/abhisek/kotoba/internal/drill"
	"github.com/abhisek/kotoba/internal/scoring"
	"github.com/abhisek/kotoba/internal/ui/layout"
	"github.com/abhisek/kotoba/internal/ui/theme"
)

// renderInfoLine renders the progress, score and streak bar.
func (s *DrillScreen) renderInfoLine(width int) string {
	snap := s.snap

	progress := fmt.Sprintf("Word %d/%d", snap.Position+1, snap.QueueLen)
	if snap.Endless {
		progress = fmt.Sprintf("Word %d  ∞", snap.Answered+1)
	}
	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  " + snap.Config.Difficulty.DisplayName() + "  " + progress)

	streak := ""
	if snap.Streak > 0 {
		streak = lipgloss.NewStyle().Foreground(theme.Accent).
			Render(fmt.Sprintf("  🔥 %d  x%.1f", snap.Streak, snap.Multiplier))
	}
	infoRight := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true).
		Render(fmt.Sprintf("%d pts", snap.Score)) + streak

	line := infoLeft
	if pad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4; pad > 0 {
		line += strings.Repeat(" ", pad) + infoRight
	}
	return line + "\n" + layout.Divider(width)
}

// renderItem renders the word being asked and the answer input.
func (s *DrillScreen) renderItem(width int) string {
	item := s.snap.Current

	var b strings.Builder
	b.WriteString(s.renderInfoLine(width))
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Native.Render(spaced(item.Native))))
	b.WriteString("\n\n")

	if s.snap.Config.Difficulty == scoring.DifficultyEasy && item.Meaning != "" {
		b.WriteString(layout.Center(width, theme.TextDim, "“"+item.Meaning+"”"))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render("Romaji: " + s.input.View()))
	return b.String()
}

// renderFeedback renders the outcome of the last answer.
func (s *DrillScreen) renderFeedback(width int) string {
	snap := s.snap
	item := snap.Current

	var b strings.Builder
	b.WriteString(s.renderInfoLine(width))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Native.Render(spaced(item.Native))))
	b.WriteString("\n\n")

	if snap.Feedback == engine.FeedbackCorrect {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Correct.Render(fmt.Sprintf("Correct!  +%d", snap.LastPoints))))
	} else {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Incorrect.Render("Not quite")))
		b.WriteString("\n")
		b.WriteString(layout.Center(width, theme.TextDim,
			fmt.Sprintf("You typed %q. It reads %s.", snap.LastAnswer, item.Romaji)))
	}
	b.WriteString("\n")

	if item.Meaning != "" {
		b.WriteString(layout.Center(width, theme.Text, item.Romaji+"  ·  "+item.Meaning))
		b.WriteString("\n")
	}

	if snap.Compliment != "" {
		b.WriteString("\n")
		b.WriteString(layout.Center(width, theme.Accent, snap.Compliment))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(layout.Center(width, theme.TextDim, "Press any key to continue..."))
	return b.String()
}

// spaced puts a space between runes so short words read at a glance.
func spaced(s string) string {
	return strings.Join(strings.Split(s, ""), " ")
}

func renderQuitConfirm(width int, endless bool) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	if endless {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Body.Bold(true).Render("Leave endless drill?")))
		b.WriteString("\n\n")
		b.WriteString(layout.Center(width, theme.Success, "[F] Finish and save results"))
		b.WriteString("\n")
		b.WriteString(layout.Center(width, theme.Error, "[Y] Quit without saving"))
		b.WriteString("\n")
		b.WriteString(layout.Center(width, theme.Primary, "[N] No, keep going"))
		return b.String()
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Body.Bold(true).Render("Quit this drill?")))
	b.WriteString("\n")
	b.WriteString(layout.Center(width, theme.TextDim, "This run will not be recorded."))
	b.WriteString("\n\n")
	b.WriteString(layout.Center(width, theme.Error, "[Y] Yes, quit"))
	b.WriteString("\n")
	b.WriteString(layout.Center(width, theme.Primary, "[N] No, keep going"))
	return b.String()
}

func renderLoading(width int, spin string) string {
	return layout.Center(width, theme.TextDim, "\n\n\n"+spin+" Picking words for you...")
}

func renderError(width int, errMsg string) string {
	return layout.Center(width, theme.Error,
		fmt.Sprintf("\n\n\n%s\n\nPress any key to go back.", errMsg))
}
