package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/kotoba/internal/ui/theme"
)

// ContentWidth is the shared inner width of the home screen boxes: the
// frame minus its border and padding, clamped to 20..60.
func ContentWidth(frameWidth int) int {
	return min(max(frameWidth-6, 20), 60)
}

// CabinetFrame centres content inside a double red border filling
// width x height.
func CabinetFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width-2).
		Height(height-2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// ArcadeCard is a padded rounded box cw cells wide.
func ArcadeCard(content string, cw int) string {
	return lipgloss.NewStyle().
		Width(cw-2).
		Padding(1, 2).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(content)
}

// ArcadeButton renders a menu entry. The selected entry is highlighted in
// yellow with a pointer; a disabled one is dimmed.
func ArcadeButton(label string, selected, disabled bool, width int) string {
	base := lipgloss.NewStyle().
		Width(width).
		Padding(0, 1).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border)

	if disabled {
		return base.Foreground(theme.TextDim).Render(label)
	}
	if !selected {
		return base.Foreground(theme.Text).Render(label)
	}
	return base.
		Bold(true).
		Foreground(theme.BgDark).
		Background(theme.ArcadeYellow).
		BorderForeground(theme.ArcadeYellow).
		Render("▸ " + label)
}
