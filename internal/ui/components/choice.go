package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/kotoba/internal/ui/theme"
)

// Choice is a labelled horizontal selector cycled with left/right.
type Choice struct {
	Label    string
	Options  []string
	Selected int
	Focused  bool
}

// NewChoice creates a selector with selected as the initial option.
func NewChoice(label string, options []string, selected int) Choice {
	if selected < 0 || selected >= len(options) {
		selected = 0
	}
	return Choice{Label: label, Options: options, Selected: selected}
}

// Update cycles the selection while focused.
func (c Choice) Update(msg tea.Msg) (Choice, tea.Cmd) {
	if !c.Focused || len(c.Options) == 0 {
		return c, nil
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "left", "h":
		c.Selected = (c.Selected - 1 + len(c.Options)) % len(c.Options)
	case "right", "l", "space":
		c.Selected = (c.Selected + 1) % len(c.Options)
	}
	return c, nil
}

// Value returns the selected option, or "" if there are none.
func (c Choice) Value() string {
	if len(c.Options) == 0 {
		return ""
	}
	return c.Options[c.Selected]
}

// View renders "Label  ‹ a  [b]  c ›".
func (c Choice) View() string {
	labelStyle := lipgloss.NewStyle().Foreground(theme.TextDim).Width(12)
	if c.Focused {
		labelStyle = labelStyle.Foreground(theme.Primary).Bold(true)
	}

	parts := make([]string, len(c.Options))
	for i, opt := range c.Options {
		switch {
		case i == c.Selected && c.Focused:
			parts[i] = lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.ArcadeYellow).
				Bold(true).
				Render(" " + opt + " ")
		case i == c.Selected:
			parts[i] = lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("[" + opt + "]")
		default:
			parts[i] = lipgloss.NewStyle().Foreground(theme.TextDim).Render(opt)
		}
	}
	return labelStyle.Render(c.Label) + "‹ " + strings.Join(parts, "  ") + " ›"
}
