package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/kotoba/internal/router"
	"github.com/abhisek/kotoba/internal/screen"
	"github.com/abhisek/kotoba/internal/ui/components"
)

// Stats are the dashboard numbers shown on the home screen.
type Stats struct {
	Learned      int
	Due          int
	Unlocked     int
	RecentUnlock bool // an achievement unlocked in the last day
}

// Screens builds the screens reachable from the home menu.
type Screens struct {
	Setup        func() screen.Screen
	Review       func() screen.Screen
	History      func() screen.Screen
	Insights     func() screen.Screen
	Achievements func() screen.Screen
}

// Deps are what the home screen needs.
type Deps struct {
	// Stats is called on every refresh so counts follow progress.
	Stats   func() Stats
	Screens Screens
	// Online is false when words come from the offline generator.
	Online bool
}

const (
	itemStart = iota
	itemReview
	itemHistory
	itemInsights
	itemAchievements
	itemExit
)

// HomeScreen is the main menu.
type HomeScreen struct {
	deps  Deps
	menu  components.Menu
	stats Stats
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps Deps) *HomeScreen {
	h := &HomeScreen{deps: deps}
	h.refresh()
	return h
}

// refresh reloads stats and rebuilds the menu, keeping the selection
// unless it became disabled.
func (h *HomeScreen) refresh() {
	if h.deps.Stats != nil {
		h.stats = h.deps.Stats()
	}

	prev := h.menu.Selected
	h.menu = components.NewMenu(h.menuItems())
	if prev < len(h.menu.Items) && !h.menu.Items[prev].Disabled {
		h.menu.Selected = prev
	}
}

func push(factory func() screen.Screen) func() tea.Cmd {
	return func() tea.Cmd {
		if factory == nil {
			return nil
		}
		next := factory()
		return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
	}
}

func (h *HomeScreen) menuItems() []components.MenuItem {
	sc := h.deps.Screens

	review := "REVIEW"
	if h.stats.Due > 0 {
		review = fmt.Sprintf("REVIEW (%d)", h.stats.Due)
	}

	items := make([]components.MenuItem, itemExit+1)
	items[itemStart] = components.MenuItem{Label: "START DRILL", Action: push(sc.Setup)}
	items[itemReview] = components.MenuItem{Label: review, Action: push(sc.Review), Disabled: h.stats.Due == 0}
	items[itemHistory] = components.MenuItem{Label: "HISTORY", Action: push(sc.History)}
	items[itemInsights] = components.MenuItem{Label: "INSIGHTS", Action: push(sc.Insights)}
	items[itemAchievements] = components.MenuItem{Label: "ACHIEVEMENTS", Action: push(sc.Achievements)}
	items[itemExit] = components.MenuItem{Label: "EXIT", Action: func() tea.Cmd { return tea.Quit }}
	return items
}

// Init refreshes the dashboard; the router calls it when returning home.
func (h *HomeScreen) Init() tea.Cmd {
	h.refresh()
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		// Progress may have moved on a screen we just came back from.
		h.refresh()
	}
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || width < 100
	tiny := termHeight < 22

	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, compact))

	if !compact {
		sections = append(sections, centered(cw, RenderMascot(PickMascot(h.stats))))
	}
	sections = append(sections, renderStatsBar(h.stats, cw, compact))
	if !h.deps.Online {
		sections = append(sections, renderOfflineBanner(cw))
	}
	sections = append(sections,
		renderMenu(h.menu.Labels(), h.menu.Selected, cw, h.menu.DisabledSet(), tiny))

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
