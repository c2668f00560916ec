package home

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/kotoba/internal/ui/components"
	"github.com/abhisek/kotoba/internal/ui/theme"
)

const bannerWide = ` ██╗  ██╗ ██████╗ ████████╗ ██████╗ ██████╗  █████╗
 ██║ ██╔╝██╔═══██╗╚══██╔══╝██╔═══██╗██╔══██╗██╔══██╗
 █████╔╝ ██║   ██║   ██║   ██║   ██║██████╔╝███████║
 ██╔═██╗ ██║   ██║   ██║   ██║   ██║██╔══██╗██╔══██║
 ██║  ██╗╚██████╔╝   ██║   ╚██████╔╝██████╔╝██║  ██║
 ╚═╝  ╚═╝ ╚═════╝    ╚═╝    ╚═════╝ ╚═════╝ ╚═╝  ╚═╝`

const bannerNarrow = "K · O · T · O · B · A"

const buttonWidth = 22

func centered(cw int, s string) string {
	return lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(s)
}

func bold(c color.Color, s string) string {
	return lipgloss.NewStyle().Foreground(c).Bold(true).Render(s)
}

func renderTitle(cw int, compact bool) string {
	art := bannerWide
	if compact {
		art = bannerNarrow
	}
	return centered(cw, bold(theme.ArcadeYellow, art))
}

// renderStatsBar shows learned words, badges and the review queue. The
// compact form drops the labels.
func renderStatsBar(st Stats, cw int, compact bool) string {
	learned, badges, due := "★ %d LEARNED", "◆ %d BADGES", "⚡ %d DUE"
	sep := "  "
	if compact {
		learned, badges, due = "★%d", "◆%d", "⚡%d"
		sep = " "
	}

	queue := bold(theme.ArcadeCyan, fmt.Sprintf(due, st.Due))
	if st.Due == 0 {
		idle := "⚡ NONE DUE"
		if compact {
			idle = "⚡0"
		}
		queue = lipgloss.NewStyle().Foreground(theme.TextDim).Render(idle)
	}

	line := strings.Join([]string{
		bold(theme.ArcadeYellow, fmt.Sprintf(learned, st.Learned)),
		bold(theme.Accent, fmt.Sprintf(badges, st.Unlocked)),
		queue,
	}, sep)

	return lipgloss.NewStyle().
		Width(cw-2).
		Padding(0, 1).
		Align(lipgloss.Center).
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Render(line)
}

// renderMenu draws bordered buttons, or plain lines when the terminal is
// too short for borders.
func renderMenu(items []string, selected, cw int, disabled map[int]bool, tiny bool) string {
	lines := make([]string, len(items))
	for i, label := range items {
		if !tiny {
			lines[i] = components.ArcadeButton(label, i == selected, disabled[i], buttonWidth)
			continue
		}
		switch {
		case disabled[i]:
			lines[i] = lipgloss.NewStyle().Foreground(theme.TextDim).Render("   " + label)
		case i == selected:
			lines[i] = lipgloss.NewStyle().
				Bold(true).
				Foreground(theme.BgDark).
				Background(theme.ArcadeYellow).
				Render(" ▸ " + label + " ")
		default:
			lines[i] = lipgloss.NewStyle().Foreground(theme.Text).Render("   " + label)
		}
	}
	return centered(cw, strings.Join(lines, "\n"))
}

func renderOfflineBanner(cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Foreground(theme.Accent).
		Render("⚠ Offline: using the built-in word list (set an LLM API key, see kotoba --help)")
}
