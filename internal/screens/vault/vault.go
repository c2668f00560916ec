// Package vault shows the achievement catalog with unlock dates.
package vault

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/kotoba/internal/achievements"
	"github.com/abhisek/kotoba/internal/router"
	"github.com/abhisek/kotoba/internal/screen"
	"github.com/abhisek/kotoba/internal/screens/summary"
	"github.com/abhisek/kotoba/internal/ui/layout"
	"github.com/abhisek/kotoba/internal/ui/theme"
)

// Source is the achievement state the vault reads.
type Source interface {
	Catalog() []achievements.Achievement
	Unlocked() []achievements.Unlocked
}

type vaultLoadedMsg struct {
	Catalog  []achievements.Achievement
	Unlocked map[string]time.Time
}

// VaultScreen displays achievements grouped by category.
type VaultScreen struct {
	source       Source
	catalog      []achievements.Achievement
	unlocked     map[string]time.Time
	selectedCat  int // index into AllCategories
	scrollOffset int
	loaded       bool
}

var _ screen.Screen = (*VaultScreen)(nil)
var _ screen.KeyHintProvider = (*VaultScreen)(nil)

// New creates a new VaultScreen.
func New(source Source) *VaultScreen {
	return &VaultScreen{source: source}
}

func (s *VaultScreen) Init() tea.Cmd {
	src := s.source
	return func() tea.Msg {
		set := make(map[string]time.Time)
		for _, u := range src.Unlocked() {
			set[u.ID] = u.At
		}
		return vaultLoadedMsg{Catalog: src.Catalog(), Unlocked: set}
	}
}

func (s *VaultScreen) Title() string {
	return "Achievements"
}

func (s *VaultScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Switch category"},
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *VaultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case vaultLoadedMsg:
		s.catalog = msg.Catalog
		s.unlocked = msg.Unlocked
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		cats := achievements.AllCategories()
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "tab", "right", "l":
			s.selectedCat = (s.selectedCat + 1) % len(cats)
			s.scrollOffset = 0
			return s, nil
		case "shift+tab", "left", "h":
			s.selectedCat = (s.selectedCat - 1 + len(cats)) % len(cats)
			s.scrollOffset = 0
			return s, nil
		case "up", "k":
			if s.scrollOffset > 0 {
				s.scrollOffset--
			}
			return s, nil
		case "down", "j":
			if s.scrollOffset < len(s.filtered())-1 {
				s.scrollOffset++
			}
			return s, nil
		}
	}
	return s, nil
}

func (s *VaultScreen) View(width, height int) string {
	if !s.loaded {
		return layout.Center(width, theme.TextDim, "\n\n  Loading achievements...")
	}

	var b strings.Builder

	b.WriteString(layout.Center(width, theme.Text,
		fmt.Sprintf("\nUnlocked: %d of %d\n", len(s.unlocked), len(s.catalog))))
	b.WriteString("\n")

	var tabs []string
	for i, c := range achievements.AllCategories() {
		got, total := s.countIn(c)
		label := fmt.Sprintf("%s %s (%d/%d)", c.Icon(), c.DisplayName(), got, total)
		if i == s.selectedCat {
			tabs = append(tabs, lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(label))
		} else {
			tabs = append(tabs, lipgloss.NewStyle().Foreground(theme.TextDim).Render(label))
		}
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(tabs, "   ")))
	b.WriteString("\n\n")
	b.WriteString(layout.Divider(width))
	b.WriteString("\n\n")

	filtered := s.filtered()
	if len(filtered) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("Nothing in this category"))
		return b.String()
	}

	maxVisible := max(height-10, 3)
	start := s.scrollOffset
	end := min(start+maxVisible, len(filtered))

	for _, a := range filtered[start:end] {
		at, ok := s.unlocked[a.ID]
		var line string
		style := lipgloss.NewStyle()
		if ok {
			line = fmt.Sprintf("  ★ %-10s %-16s %-36s %s",
				a.Rarity.DisplayName(), a.Name, a.Description, at.Format("Jan 02, 2006"))
			style = style.Foreground(summary.RarityColor(a.Rarity))
		} else {
			line = fmt.Sprintf("  ☆ %-10s %-16s %-36s %s",
				a.Rarity.DisplayName(), a.Name, a.Description, "locked")
			style = style.Foreground(theme.TextDim)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	if end < len(filtered) {
		b.WriteString("\n")
		b.WriteString(layout.Center(width, theme.TextDim,
			fmt.Sprintf("... %d more", len(filtered)-end)))
	}

	return b.String()
}

func (s *VaultScreen) filtered() []achievements.Achievement {
	cat := achievements.AllCategories()[s.selectedCat]
	var out []achievements.Achievement
	for _, a := range s.catalog {
		if a.Category == cat {
			out = append(out, a)
		}
	}
	return out
}

func (s *VaultScreen) countIn(c achievements.Category) (unlocked, total int) {
	for _, a := range s.catalog {
		if a.Category != c {
			continue
		}
		total++
		if _, ok := s.unlocked[a.ID]; ok {
			unlocked++
		}
	}
	return unlocked, total
}
