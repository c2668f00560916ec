// Package layout draws the frame around every screen: a header bar with
// the app name, screen title and due count, the screen body, and a footer
// of key hints.
package layout

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/kotoba/internal/ui/theme"
)

// Below this size the frame is replaced by a resize prompt.
const (
	MinWidth  = 80
	MinHeight = 24
)

// KeyHint is one "key description" pair in the footer.
type KeyHint struct {
	Key         string
	Description string
}

func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage fills the terminal with a resize prompt.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(fmt.Sprintf("Terminal too small!\n\nPlease resize to at\nleast %d x %d\n\nCurrent: %d x %d",
			MinWidth, MinHeight, width, height))
}

func paint(c color.Color, s string) string {
	return lipgloss.NewStyle().Foreground(c).Render(s)
}

// bar boxes a single line of content across the full width.
func bar(width int, content string) string {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(content)
}

// RenderHeader draws the brand on the left, title centred and the learner
// with the due-word count on the right.
func RenderHeader(title, learner string, due int, width int) string {
	brand := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  言葉 Kotoba")
	center := paint(theme.Text, title)

	dueColor := theme.TextDim
	if due > 0 {
		dueColor = theme.Accent
	}
	status := paint(dueColor, fmt.Sprintf("⚡ %d due", due))
	if learner != "" {
		status = paint(theme.Secondary, learner) + "   " + status
	}

	inner := max(width-4, 0)
	bw, cw, sw := lipgloss.Width(brand), lipgloss.Width(center), lipgloss.Width(status)
	gapL := max((inner-cw)/2-bw, 1)
	gapR := max(inner-bw-gapL-cw-sw, 1)

	return bar(width, brand+strings.Repeat(" ", gapL)+center+strings.Repeat(" ", gapR)+status)
}

// RenderFooter draws the key hints.
func RenderFooter(hints []KeyHint, width int) string {
	var b strings.Builder
	b.WriteString("  ")
	for i, h := range hints {
		if i > 0 {
			b.WriteString("   ")
		}
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(h.Key))
		b.WriteString(" ")
		b.WriteString(paint(theme.TextDim, h.Description))
	}
	return bar(width, b.String())
}

// RenderFrame stacks header, body and footer, sizing the body to whatever
// height remains.
func RenderFrame(header, content, footer string, width, height int) string {
	bodyHeight := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	body := lipgloss.NewStyle().Width(width).Height(bodyHeight).Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// Center renders text centred across width in the given colour.
func Center(width int, fg color.Color, text string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(fg).
		Render(text)
}

// Divider is a horizontal rule of up to 60 cells, centred.
func Divider(width int) string {
	rule := paint(theme.Border, strings.Repeat("─", max(0, min(width-8, 60))))
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, rule)
}

// Section is a dim heading over a divider.
func Section(width int, heading string) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, paint(theme.TextDim, heading)) +
		"\n" + Divider(width)
}
