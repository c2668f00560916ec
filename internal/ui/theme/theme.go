// Package theme holds the shared palette and text styles.
package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Ink and paper with a red seal accent. The arcade colours are only used
// by the home screen marquee.
var (
	Primary   = lipgloss.Color("#E11D48")
	Secondary = lipgloss.Color("#14B8A6")
	Accent    = lipgloss.Color("#F59E0B")
	Success   = lipgloss.Color("#22C55E")
	Error     = lipgloss.Color("#F43F5E")
	Text      = lipgloss.Color("#F8FAFC")
	TextDim   = lipgloss.Color("#94A3B8")
	BgDark    = lipgloss.Color("#0F172A")
	BgCard    = lipgloss.Color("#1E293B")
	Border    = lipgloss.Color("#334155")

	ArcadeYellow = lipgloss.Color("#FACC15")
	ArcadeCyan   = lipgloss.Color("#22D3EE")
)

func ink(c color.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }

func bar(c color.Color) lipgloss.Style { return lipgloss.NewStyle().Background(c) }

var (
	Body   = ink(Text)
	Hint   = ink(TextDim).Italic(true)
	Native = ink(Text).Bold(true)

	Selected   = ink(Primary).Bold(true)
	Unselected = ink(Text)

	Correct   = ink(Success).Bold(true)
	Incorrect = ink(Error).Bold(true)

	ProgressFilled = bar(Secondary)
	ProgressEmpty  = bar(Border)
)
