package home

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/kotoba/internal/ui/theme"
)

// MascotVariant is the mood of the little kana box on the home screen.
type MascotVariant int

const (
	MascotIdle MascotVariant = iota
	MascotCelebrating
	MascotAlert
)

var mascots = map[MascotVariant]struct {
	art string
	fg  color.Color
}{
	MascotIdle: {fg: theme.Primary, art: `┌─────┐
│ ◉ ◉ │
│  ▽  │
│ あア│
└─────┘`},
	MascotCelebrating: {fg: theme.ArcadeYellow, art: `┌─────┐
│ ★ ★ │
│  ▿  │
│ あア│
└─╥═╥─┘
  ╚═╝`},
	MascotAlert: {fg: theme.Accent, art: `┌─────┐
│ ◉ ◉ │ !
│  ▽  │
│ あア│
└─────┘`},
}

// RenderMascot draws v, falling back to the idle mascot.
func RenderMascot(v MascotVariant) string {
	m, ok := mascots[v]
	if !ok {
		m = mascots[MascotIdle]
	}
	return lipgloss.NewStyle().Foreground(m.fg).Render(m.art)
}

// PickMascot raises the alert once three or more words are due; otherwise
// a recent unlock gets the celebrating mascot.
func PickMascot(st Stats) MascotVariant {
	switch {
	case st.Due >= 3:
		return MascotAlert
	case st.RecentUnlock:
		return MascotCelebrating
	}
	return MascotIdle
}
